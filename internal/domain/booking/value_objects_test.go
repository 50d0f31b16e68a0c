//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gearup/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot(t *testing.T) {
	t.Run("valid labels", func(t *testing.T) {
		cases := []string{"00:00-01:00", "09:00-10:00", "12:00-13:00", "23:00-00:00"}
		for _, label := range cases {
			t.Run(label, func(t *testing.T) {
				s, err := booking.NewSlot(label)
				require.NoError(t, err)
				assert.Equal(t, label, s.String())
			})
		}
	})

	t.Run("invalid labels", func(t *testing.T) {
		cases := []string{
			"",
			"9:00-10:00",
			"09:00 - 10:00",
			"09:00-11:00",
			"09:30-10:30",
			"24:00-01:00",
			"23:00-24:00",
			"garbage",
		}
		for _, label := range cases {
			t.Run("rejects "+label, func(t *testing.T) {
				_, err := booking.NewSlot(label)
				assert.ErrorIs(t, err, booking.ErrInvalidSlot)
			})
		}
	})

	t.Run("hour 23 wraps to midnight", func(t *testing.T) {
		s, err := booking.SlotForHour(23)
		require.NoError(t, err)
		assert.Equal(t, "23:00-00:00", s.String())
		assert.Equal(t, 23, s.Hour())
	})

	t.Run("hour out of range", func(t *testing.T) {
		_, err := booking.SlotForHour(24)
		assert.ErrorIs(t, err, booking.ErrInvalidSlot)
		_, err = booking.SlotForHour(-1)
		assert.ErrorIs(t, err, booking.ErrInvalidSlot)
	})
}

func TestDailySlots(t *testing.T) {
	slots := booking.DailySlots()
	require.Len(t, slots, booking.SlotsPerDay)

	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = s.String()
		assert.Equal(t, i, s.Hour())
	}

	assert.Equal(t, "00:00-01:00", labels[0])
	assert.Equal(t, "23:00-00:00", labels[23])

	// Labels must round-trip through NewSlot and stay in hour order.
	rebuilt := make([]string, 0, len(labels))
	for _, label := range labels {
		s, err := booking.NewSlot(label)
		require.NoError(t, err)
		rebuilt = append(rebuilt, s.String())
	}
	if diff := cmp.Diff(labels, rebuilt); diff != "" {
		t.Errorf("slot labels mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeDate(t *testing.T) {
	in := time.Date(2026, 3, 14, 15, 9, 26, 535, time.FixedZone("X", 3600))
	got := booking.NormalizeDate(in)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate(t *testing.T) {
	got, err := booking.ParseDate("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", booking.FormatDate(got))

	_, err = booking.ParseDate("01-09-2026")
	assert.ErrorIs(t, err, booking.ErrInvalidDate)

	_, err = booking.ParseDate("2026-13-40")
	assert.ErrorIs(t, err, booking.ErrInvalidDate)
}
