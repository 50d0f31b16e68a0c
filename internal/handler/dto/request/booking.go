package request

import (
	"github.com/google/uuid"
)

// CreateBookingRequest books a slot directly, without going through the
// payment gateway. Date is "YYYY-MM-DD"; TimeSlot is "HH:00-HH:00".
type CreateBookingRequest struct {
	CourtID     uuid.UUID `json:"court_id" binding:"required"`
	Date        string    `json:"date" binding:"required"`
	TimeSlot    string    `json:"time_slot" binding:"required"`
	IsRecurring bool      `json:"is_recurring"`
}

type PayBookingRequest struct {
	Method string `json:"method" binding:"required"`
}
