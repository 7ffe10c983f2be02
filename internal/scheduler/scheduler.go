package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"fleetrental/internal/logger"
	"fleetrental/internal/monitor"
)

// Scheduler runs the reachability sweep on a fixed interval.
type Scheduler struct {
	cron    *cron.Cron
	monitor *monitor.Monitor
}

func New(mon *monitor.Monitor, sweepInterval time.Duration) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(time.UTC))

	s := &Scheduler{
		cron:    c,
		monitor: mon,
	}

	spec := fmt.Sprintf("@every %s", sweepInterval)
	if _, err := c.AddFunc(spec, s.runSweep); err != nil {
		return nil, fmt.Errorf("register sweep job: %w", err)
	}

	return s, nil
}

func (s *Scheduler) runSweep() {
	if err := s.monitor.Sweep(context.Background()); err != nil {
		logger.Error("reachability sweep failed", "error", err)
	}
}

func (s *Scheduler) Start() {
	logger.Info("starting scheduler")
	s.cron.Start()
}

// Stop waits for a running sweep to finish before returning.
func (s *Scheduler) Stop() {
	logger.Info("stopping scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("scheduler stopped")
}
