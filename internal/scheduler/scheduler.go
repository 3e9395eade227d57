package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/vkuzmenko/weather-dashboard/internal/dashboard"
)

// Scheduler periodically refreshes every live dashboard session. Sessions
// without a resolved location skip silently; the job is cancellable so
// shutdown is deterministic rather than relying on process teardown.
type Scheduler struct {
	scheduler *gocron.Scheduler
	manager   *dashboard.Manager
	interval  time.Duration
}

// New creates a new Scheduler.
func New(manager *dashboard.Manager, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		manager:   manager,
		interval:  interval,
	}
}

// Start schedules the refresh job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	interval := s.interval
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	_, err := s.scheduler.Every(interval).Do(func() {
		sessions := s.manager.Sessions()
		if len(sessions) == 0 {
			return
		}
		log.Printf("scheduler: refreshing %d dashboard session(s)", len(sessions))

		var wg sync.WaitGroup
		for _, sess := range sessions {
			sess := sess
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := sess.Refresh(ctx); err != nil {
					log.Printf("scheduler: refresh failed: %v", err)
				}
			}()
		}
		wg.Wait()
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
