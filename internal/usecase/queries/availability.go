package queries

import (
	"context"
	"time"

	"gearup/internal/domain/booking"
	"gearup/internal/domain/court"
	"gearup/internal/infra"
	"gearup/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCourtNotFound = errs.New("court not found")

type BookingReadStore interface {
	ListActiveByCourtDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]*booking.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error)
}

type CourtReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*court.Court, error)
}

type AvailabilityQueries interface {
	ForCourtDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]SlotAvailability, error)
}

type availabilityQueriesImpl struct {
	bookings BookingReadStore
	courts   CourtReadStore
}

func NewAvailabilityQueries(bookings BookingReadStore, courts CourtReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{bookings: bookings, courts: courts}
}

// ForCourtDate walks the canonical 24 hourly slots and marks each one
// occupied iff a non-cancelled booking holds it. Pure read.
func (q *availabilityQueriesImpl) ForCourtDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]SlotAvailability, error) {
	if _, err := q.courts.FindByID(ctx, courtID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	booked, err := q.bookings.ListActiveByCourtDate(ctx, courtID, booking.NormalizeDate(date))
	if err != nil {
		return nil, err
	}

	occupied := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		occupied[b.Slot().String()] = struct{}{}
	}

	slots := booking.DailySlots()
	result := make([]SlotAvailability, len(slots))
	for i, s := range slots {
		_, taken := occupied[s.String()]
		result[i] = SlotAvailability{
			TimeSlot:  s.String(),
			Available: !taken,
		}
	}
	return result, nil
}
