package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/vkuzmenko/weather-dashboard/internal/dashboard"
	"github.com/vkuzmenko/weather-dashboard/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app. The command
// surface (search / locate / unit) and the read-only dashboard snapshot
// are all scoped to a session id, so independent dashboards don't interact.
func RegisterRoutes(app *fiber.App, manager *dashboard.Manager) {
	v1 := app.Group("/api/v1")

	v1.Post("/sessions", func(c *fiber.Ctx) error {
		id, _ := manager.Create()
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	})

	v1.Delete("/sessions/:id", func(c *fiber.Ctx) error {
		if !manager.Remove(c.Params("id")) {
			return fiber.NewError(fiber.StatusNotFound, "unknown session")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	v1.Get("/sessions/:id/dashboard", func(c *fiber.Ctx) error {
		sess, err := session(manager, c)
		if err != nil {
			return err
		}
		return c.JSON(sess.Snapshot())
	})

	v1.Post("/sessions/:id/search", func(c *fiber.Ctx) error {
		sess, err := session(manager, c)
		if err != nil {
			return err
		}

		var req searchQuery
		req.City = c.Query("city")
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := sess.Search(c.Context(), req.City); err != nil {
			return queryError(err)
		}
		return c.JSON(sess.Snapshot())
	})

	v1.Post("/sessions/:id/locate", func(c *fiber.Ctx) error {
		sess, err := session(manager, c)
		if err != nil {
			return err
		}

		if err := sess.Locate(c.Context()); err != nil {
			return queryError(err)
		}
		return c.JSON(sess.Snapshot())
	})

	v1.Post("/sessions/:id/unit", func(c *fiber.Ctx) error {
		sess, err := session(manager, c)
		if err != nil {
			return err
		}

		unit, err := weather.ParseUnit(c.Query("unit"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		sess.SwitchUnit(unit)
		return c.JSON(sess.Snapshot())
	})
}

// searchQuery holds the query parameters of the search command.
type searchQuery struct {
	City string `validate:"required"`
}

func session(manager *dashboard.Manager, c *fiber.Ctx) (*dashboard.Session, error) {
	sess, ok := manager.Get(c.Params("id"))
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "unknown session")
	}
	return sess, nil
}

// queryError maps the error taxonomy onto status codes.
func queryError(err error) error {
	var netErr *weather.NetworkError
	var geoErr *weather.GeolocationError
	switch {
	case errors.Is(err, weather.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "location not found")
	case errors.As(err, &netErr):
		return fiber.NewError(fiber.StatusBadGateway, netErr.Error())
	case errors.As(err, &geoErr):
		return fiber.NewError(fiber.StatusServiceUnavailable, geoErr.Error())
	default:
		return err
	}
}
