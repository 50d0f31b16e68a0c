package booking

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidSlot = errors.New("invalid time slot label")
	ErrInvalidDate = errors.New("invalid booking date")
)

// Slot is one of the 24 canonical one-hour intervals of a day,
// labeled "HH:00-HH:00" (hour 23 wraps to "00:00").
type Slot struct {
	label string
}

var slotIndex = func() map[string]int {
	m := make(map[string]int, SlotsPerDay)
	for i := 0; i < SlotsPerDay; i++ {
		m[slotLabel(i)] = i
	}
	return m
}()

const SlotsPerDay = 24

func slotLabel(hour int) string {
	return fmt.Sprintf("%02d:00-%02d:00", hour, (hour+1)%24)
}

func NewSlot(label string) (Slot, error) {
	if _, ok := slotIndex[label]; !ok {
		return Slot{}, ErrInvalidSlot
	}
	return Slot{label: label}, nil
}

// SlotForHour returns the canonical slot starting at the given hour (0..23).
func SlotForHour(hour int) (Slot, error) {
	if hour < 0 || hour >= SlotsPerDay {
		return Slot{}, ErrInvalidSlot
	}
	return Slot{label: slotLabel(hour)}, nil
}

func (s Slot) String() string {
	return s.label
}

func (s Slot) Hour() int {
	return slotIndex[s.label]
}

func (s Slot) IsZero() bool {
	return s.label == ""
}

// DailySlots returns the canonical ordered sequence of the 24 hourly slots.
func DailySlots() []Slot {
	slots := make([]Slot, SlotsPerDay)
	for i := 0; i < SlotsPerDay; i++ {
		slots[i] = Slot{label: slotLabel(i)}
	}
	return slots
}

// NormalizeDate strips the time-of-day component. Booking dates are
// calendar dates; all date arithmetic happens in UTC.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a "YYYY-MM-DD" calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// FormatDate renders a calendar date as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
