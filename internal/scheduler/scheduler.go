package scheduler

import (
	"context"
	"log/slog"
	"time"

	"gearup/internal/pkg/clock"
	"gearup/internal/usecase/commands"
)

const sweepTimeout = 5 * time.Minute

// Scheduler runs the daily lifecycle sweeps: payment reminders three
// days ahead, then cancellation of overdue recurring bookings two days
// ahead. One run per day at the configured hour.
type Scheduler struct {
	lifecycle commands.LifecycleCommands
	clock     clock.Clock
	sweepHour int
	logger    *slog.Logger

	stop chan struct{}
	done chan struct{}
}

func New(lifecycle commands.LifecycleCommands, clk clock.Clock, sweepHour int, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		lifecycle: lifecycle,
		clock:     clk,
		sweepHour: sweepHour,
		logger:    logger,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	go s.loop()
}

func (s *Scheduler) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Scheduler) loop() {
	defer close(s.done)

	for {
		now := s.clock.Now()
		next := nextRunAfter(now, s.sweepHour)
		s.logger.Info("next lifecycle sweep scheduled", "at", next)

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-s.stop:
			timer.Stop()
			return
		case <-timer.C:
			s.RunSweeps(context.Background())
		}
	}
}

// RunSweeps executes one full sweep cycle. Reminders go first so a user
// cancelled today was warned yesterday. Errors are logged, never fatal;
// the next day's run retries naturally.
func (s *Scheduler) RunSweeps(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	reminded, err := s.lifecycle.RemindUpcoming(ctx)
	if err != nil {
		s.logger.Error("reminder sweep failed", "error", err)
	} else {
		s.logger.Info("reminder sweep finished", "reminders", reminded)
	}

	removed, err := s.lifecycle.CancelOverdue(ctx)
	if err != nil {
		s.logger.Error("cancellation sweep failed", "error", err)
	} else {
		s.logger.Info("cancellation sweep finished", "bookings_removed", removed)
	}
}

// nextRunAfter returns the next occurrence of sweepHour strictly after
// now, in now's location.
func nextRunAfter(now time.Time, sweepHour int) time.Time {
	run := time.Date(now.Year(), now.Month(), now.Day(), sweepHour, 0, 0, 0, now.Location())
	if !run.After(now) {
		run = run.AddDate(0, 0, 1)
	}
	return run
}
