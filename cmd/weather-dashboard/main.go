package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/vkuzmenko/weather-dashboard/internal/api/http"
	"github.com/vkuzmenko/weather-dashboard/internal/config"
	"github.com/vkuzmenko/weather-dashboard/internal/dashboard"
	"github.com/vkuzmenko/weather-dashboard/internal/geolocate"
	"github.com/vkuzmenko/weather-dashboard/internal/scheduler"
	"github.com/vkuzmenko/weather-dashboard/internal/weather"
	"github.com/vkuzmenko/weather-dashboard/internal/weather/providers"
)

func main() {
	// A missing or placeholder API key is caught here, once; no queries run
	// against a known-bad credential.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provider := providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey)

	// Device location: fixed coordinates when configured, otherwise the
	// geocoder lookup of the configured address.
	var locator weather.Locator
	if cfg.HasDefaultLoc {
		locator = &geolocate.Fixed{Lat: cfg.DefaultLat, Lon: cfg.DefaultLon, Set: true}
	} else {
		locator = geolocate.NewGeocoder(cfg.GeocoderAPIKey, cfg.LocatorCity, cfg.LocatorCountry)
	}

	manager := dashboard.NewManager(provider, locator, time.Local)

	// Auto-refresh for live sessions.
	sched := scheduler.New(manager, cfg.RefreshInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "weather-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response; anything unclassified lands here
			// as a generic failure instead of crashing the process.
			code := fiber.StatusInternalServerError
			message := "unexpected error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": message,
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-dashboard",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, manager)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
