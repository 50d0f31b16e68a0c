package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidWeekNumber = errors.New("week number must be between 1 and 3")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrSeriesShape       = errors.New("series must be three bookings for the same court, user and slot spaced 7 days apart")
)

// Booking is a reservation of one court for one hourly slot on one date.
// Court, date and slot never change after creation; only status,
// payment_received and the cancellation flags are mutated.
type Booking struct {
	id              uuid.UUID
	courtID         uuid.UUID
	userID          uuid.UUID
	date            time.Time
	slot            Slot
	status          Status
	recurring       bool
	weekNumber      int
	paymentReceived bool
	cancelled       bool
	paymentID       *uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

// NewSingle creates a confirmed one-time booking (week number 1).
func NewSingle(courtID, userID uuid.UUID, date time.Time, slot Slot, paid bool) *Booking {
	return &Booking{
		id:              uuid.New(),
		courtID:         courtID,
		userID:          userID,
		date:            NormalizeDate(date),
		slot:            slot,
		status:          StatusConfirmed,
		recurring:       false,
		weekNumber:      1,
		paymentReceived: paid,
	}
}

// NewSeries creates the three weekly bookings of a recurring series,
// dated startDate, startDate+7d and startDate+14d. Only week 1 may start
// out paid; weeks 2 and 3 must be paid before their deadlines.
func NewSeries(courtID, userID uuid.UUID, startDate time.Time, slot Slot, firstWeekPaid bool) []*Booking {
	start := NormalizeDate(startDate)
	series := make([]*Booking, SeriesLength)
	for i := 0; i < SeriesLength; i++ {
		series[i] = &Booking{
			id:              uuid.New(),
			courtID:         courtID,
			userID:          userID,
			date:            start.AddDate(0, 0, 7*i),
			slot:            slot,
			status:          StatusConfirmed,
			recurring:       true,
			weekNumber:      i + 1,
			paymentReceived: firstWeekPaid && i == 0,
		}
	}
	return series
}

func Reconstruct(
	id, courtID, userID uuid.UUID,
	date time.Time,
	slot Slot,
	status Status,
	recurring bool,
	weekNumber int,
	paymentReceived, cancelled bool,
	paymentID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		courtID:         courtID,
		userID:          userID,
		date:            date,
		slot:            slot,
		status:          status,
		recurring:       recurring,
		weekNumber:      weekNumber,
		paymentReceived: paymentReceived,
		cancelled:       cancelled,
		paymentID:       paymentID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Cancel flips status and the cancellation flag together; they are never
// allowed to diverge.
func (b *Booking) Cancel() error {
	if b.cancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	b.cancelled = true
	return nil
}

func (b *Booking) MarkPaid(paymentID uuid.UUID) {
	b.paymentReceived = true
	id := paymentID
	b.paymentID = &id
}

func (b *Booking) IsActive() bool {
	return !b.cancelled
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) CourtID() uuid.UUID    { return b.courtID }
func (b *Booking) UserID() uuid.UUID     { return b.userID }
func (b *Booking) Date() time.Time       { return b.date }
func (b *Booking) Slot() Slot            { return b.slot }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) IsRecurring() bool     { return b.recurring }
func (b *Booking) WeekNumber() int       { return b.weekNumber }
func (b *Booking) PaymentReceived() bool { return b.paymentReceived }
func (b *Booking) IsCancelled() bool     { return b.cancelled }
func (b *Booking) PaymentID() *uuid.UUID { return b.paymentID }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }

// ValidateSeries checks the shape of a recurring series: exactly three
// bookings sharing court, user and slot, dated 7 days apart, numbered 1..3.
func ValidateSeries(series []*Booking) error {
	if len(series) != SeriesLength {
		return ErrSeriesShape
	}
	first := series[0]
	for i, b := range series {
		if b.weekNumber != i+1 {
			return ErrInvalidWeekNumber
		}
		if b.courtID != first.courtID || b.userID != first.userID || b.slot != first.slot {
			return ErrSeriesShape
		}
		if !b.date.Equal(first.date.AddDate(0, 0, 7*i)) {
			return ErrSeriesShape
		}
	}
	return nil
}
