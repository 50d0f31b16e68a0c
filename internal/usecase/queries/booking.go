package queries

import (
	"context"

	"gearup/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
}

func NewBookingQueries(bookings BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings}
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	bs, err := q.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*BookingView, len(bs))
	for i, b := range bs {
		result[i] = ToBookingView(b)
	}
	return result, nil
}

func ToBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:              b.ID(),
		CourtID:         b.CourtID(),
		UserID:          b.UserID(),
		Date:            booking.FormatDate(b.Date()),
		TimeSlot:        b.Slot().String(),
		Status:          b.Status().String(),
		IsRecurring:     b.IsRecurring(),
		WeekNumber:      b.WeekNumber(),
		PaymentReceived: b.PaymentReceived(),
		IsCancelled:     b.IsCancelled(),
		CreatedAt:       b.CreatedAt(),
	}
}
