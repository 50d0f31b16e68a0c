package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type SlotAvailability struct {
	TimeSlot  string `json:"time_slot"`
	Available bool   `json:"available"`
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	CourtID         uuid.UUID `json:"court_id"`
	UserID          uuid.UUID `json:"user_id"`
	Date            string    `json:"date"`
	TimeSlot        string    `json:"time_slot"`
	Status          string    `json:"status"`
	IsRecurring     bool      `json:"is_recurring"`
	WeekNumber      int       `json:"week_number"`
	PaymentReceived bool      `json:"payment_received"`
	IsCancelled     bool      `json:"is_cancelled"`
	CreatedAt       time.Time `json:"created_at"`
}

type CourtView struct {
	ID        uuid.UUID `json:"id"`
	VenueID   uuid.UUID `json:"venue_id"`
	Name      string    `json:"name"`
	SportType string    `json:"sport_type"`
}

type VenueView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Contact  string    `json:"contact"`
}
