//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gearup/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, hour int) booking.Slot {
	t.Helper()
	s, err := booking.SlotForHour(hour)
	require.NoError(t, err)
	return s
}

func TestNewSingle(t *testing.T) {
	courtID, userID := uuid.New(), uuid.New()
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	b := booking.NewSingle(courtID, userID, date, mustSlot(t, 18), false)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, courtID, b.CourtID())
	assert.Equal(t, userID, b.UserID())
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.False(t, b.IsRecurring())
	assert.Equal(t, 1, b.WeekNumber())
	assert.False(t, b.PaymentReceived())
	assert.False(t, b.IsCancelled())
}

func TestNewSeries(t *testing.T) {
	courtID, userID := uuid.New(), uuid.New()
	start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	slot := mustSlot(t, 18)

	t.Run("three bookings a week apart, numbered 1..3", func(t *testing.T) {
		series := booking.NewSeries(courtID, userID, start, slot, true)
		require.Len(t, series, booking.SeriesLength)

		for i, b := range series {
			assert.Equal(t, i+1, b.WeekNumber())
			assert.Equal(t, start.AddDate(0, 0, 7*i), b.Date())
			assert.True(t, b.IsRecurring())
			assert.Equal(t, booking.StatusConfirmed, b.Status())
		}
		require.NoError(t, booking.ValidateSeries(series))
	})

	t.Run("payment covers week 1 only", func(t *testing.T) {
		series := booking.NewSeries(courtID, userID, start, slot, true)
		assert.True(t, series[0].PaymentReceived())
		assert.False(t, series[1].PaymentReceived())
		assert.False(t, series[2].PaymentReceived())
	})

	t.Run("unpaid series has no paid weeks", func(t *testing.T) {
		series := booking.NewSeries(courtID, userID, start, slot, false)
		for _, b := range series {
			assert.False(t, b.PaymentReceived())
		}
	})
}

func TestCancel(t *testing.T) {
	b := booking.NewSingle(uuid.New(), uuid.New(), time.Now(), mustSlot(t, 10), false)

	require.NoError(t, b.Cancel())
	assert.Equal(t, booking.StatusCancelled, b.Status())
	assert.True(t, b.IsCancelled())
	assert.False(t, b.IsActive())

	// Status and the cancelled flag move together, and only once.
	assert.ErrorIs(t, b.Cancel(), booking.ErrAlreadyCancelled)
}

func TestMarkPaid(t *testing.T) {
	b := booking.NewSingle(uuid.New(), uuid.New(), time.Now(), mustSlot(t, 10), false)
	paymentID := uuid.New()

	b.MarkPaid(paymentID)

	assert.True(t, b.PaymentReceived())
	require.NotNil(t, b.PaymentID())
	assert.Equal(t, paymentID, *b.PaymentID())
}

func TestValidateSeries(t *testing.T) {
	courtID, userID := uuid.New(), uuid.New()
	start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	slot := mustSlot(t, 18)

	t.Run("wrong length", func(t *testing.T) {
		series := booking.NewSeries(courtID, userID, start, slot, false)
		assert.ErrorIs(t, booking.ValidateSeries(series[:2]), booking.ErrSeriesShape)
	})

	t.Run("mixed courts", func(t *testing.T) {
		series := booking.NewSeries(courtID, userID, start, slot, false)
		other := booking.NewSeries(uuid.New(), userID, start, slot, false)
		series[2] = other[2]
		assert.ErrorIs(t, booking.ValidateSeries(series), booking.ErrSeriesShape)
	})

	t.Run("broken week spacing", func(t *testing.T) {
		series := booking.NewSeries(courtID, userID, start, slot, false)
		shifted := booking.NewSeries(courtID, userID, start.AddDate(0, 0, 1), slot, false)
		series[1] = shifted[1]
		assert.ErrorIs(t, booking.ValidateSeries(series), booking.ErrSeriesShape)
	})

	t.Run("bad week numbers", func(t *testing.T) {
		series := booking.NewSeries(courtID, userID, start, slot, false)
		series[0], series[1] = series[1], series[0]
		assert.ErrorIs(t, booking.ValidateSeries(series), booking.ErrInvalidWeekNumber)
	})
}
