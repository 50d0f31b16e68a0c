package components

import (
	"context"
	"log/slog"

	"gearup/internal/pkg/clock"
	"gearup/internal/pkg/config"
	"gearup/internal/scheduler"
	"gearup/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(runScheduler),
)

func NewScheduler(lifecycle commands.LifecycleCommands, clk clock.Clock, cfg config.Config, logger *slog.Logger) *scheduler.Scheduler {
	return scheduler.New(lifecycle, clk, cfg.Scheduler.SweepHour, logger)
}

func runScheduler(lc fx.Lifecycle, s *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
