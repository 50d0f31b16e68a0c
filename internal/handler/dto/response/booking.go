package response

import (
	"time"

	"gearup/internal/domain/booking"
	"gearup/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	CourtID         uuid.UUID `json:"court_id"`
	Date            string    `json:"date"`
	TimeSlot        string    `json:"time_slot"`
	Status          string    `json:"status"`
	IsRecurring     bool      `json:"is_recurring"`
	WeekNumber      int       `json:"week_number"`
	PaymentReceived bool      `json:"payment_received"`
	IsCancelled     bool      `json:"is_cancelled"`
	CreatedAt       time.Time `json:"created_at"`
}

type SlotResponse struct {
	TimeSlot  string `json:"time_slot"`
	Available bool   `json:"available"`
}

type QuoteResponse struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func FromBooking(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID(),
		CourtID:         b.CourtID(),
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

func FromBookingView(v *queries.BookingView) BookingResponse {
	return BookingResponse{
		ID:              v.ID,
		CourtID:         v.CourtID,
		Date:            v.Date,
		TimeSlot:        v.TimeSlot,
		Status:          v.Status,
		IsRecurring:     v.IsRecurring,
		WeekNumber:      v.WeekNumber,
		PaymentReceived: v.PaymentReceived,
		IsCancelled:     v.IsCancelled,
		CreatedAt:       v.CreatedAt,
	}
}

func FromSlotAvailability(s queries.SlotAvailability) SlotResponse {
	return SlotResponse{TimeSlot: s.TimeSlot, Available: s.Available}
}
