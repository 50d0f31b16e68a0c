package response

import (
	"gearup/internal/domain/court"
	"gearup/internal/domain/venue"
	"gearup/internal/usecase/queries"

	"github.com/google/uuid"
)

type VenueResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Contact  string    `json:"contact"`
}

type CourtResponse struct {
	ID        uuid.UUID `json:"id"`
	VenueID   uuid.UUID `json:"venue_id"`
	Name      string    `json:"name"`
	SportType string    `json:"sport_type"`
}

func FromVenue(v *venue.Venue) VenueResponse {
	return VenueResponse{ID: v.ID(), Name: v.Name(), Location: v.Location(), Contact: v.Contact()}
}

func FromVenueView(v *queries.VenueView) VenueResponse {
	return VenueResponse{ID: v.ID, Name: v.Name, Location: v.Location, Contact: v.Contact}
}

func FromCourt(c *court.Court) CourtResponse {
	return CourtResponse{ID: c.ID(), VenueID: c.VenueID(), Name: c.Name(), SportType: c.SportType().String()}
}

func FromCourtView(c *queries.CourtView) CourtResponse {
	return CourtResponse{ID: c.ID, VenueID: c.VenueID, Name: c.Name, SportType: c.SportType}
}
