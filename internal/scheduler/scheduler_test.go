//go:build unit

package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gearup/internal/pkg/clock"
	"gearup/internal/pkg/errs"
	commandsmock "gearup/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestNextRunAfter(t *testing.T) {
	day := func(hour, min int) time.Time {
		return time.Date(2026, 9, 4, hour, min, 0, 0, time.UTC)
	}

	t.Run("before the sweep hour runs the same day", func(t *testing.T) {
		assert.Equal(t, day(9, 0), nextRunAfter(day(7, 30), 9))
	})

	t.Run("after the sweep hour waits for tomorrow", func(t *testing.T) {
		assert.Equal(t, day(9, 0).AddDate(0, 0, 1), nextRunAfter(day(10, 15), 9))
	})

	t.Run("exactly at the sweep hour waits for tomorrow", func(t *testing.T) {
		assert.Equal(t, day(9, 0).AddDate(0, 0, 1), nextRunAfter(day(9, 0), 9))
	})

	t.Run("keeps the caller's location", func(t *testing.T) {
		loc := time.FixedZone("LK", 5*3600+1800)
		now := time.Date(2026, 9, 4, 7, 0, 0, 0, loc)
		next := nextRunAfter(now, 9)
		assert.Equal(t, loc, next.Location())
		assert.Equal(t, 9, next.Hour())
	})
}

func TestRunSweeps(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := time.Date(2026, 9, 4, 9, 0, 0, 0, time.UTC)

	t.Run("reminders run before cancellations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lifecycle := commandsmock.NewMockLifecycleCommands(ctrl)

		remind := lifecycle.EXPECT().RemindUpcoming(gomock.Any()).Return(2, nil)
		lifecycle.EXPECT().CancelOverdue(gomock.Any()).Return(int64(3), nil).After(remind)

		s := New(lifecycle, clock.NewMockClock(now), 9, logger)
		s.RunSweeps(context.Background())
	})

	t.Run("reminder failure does not stop the cancellation sweep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lifecycle := commandsmock.NewMockLifecycleCommands(ctrl)

		lifecycle.EXPECT().RemindUpcoming(gomock.Any()).Return(0, errs.New("db down"))
		lifecycle.EXPECT().CancelOverdue(gomock.Any()).Return(int64(0), nil)

		s := New(lifecycle, clock.NewMockClock(now), 9, logger)
		s.RunSweeps(context.Background())
	})
}
