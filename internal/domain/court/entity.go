package court

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidName      = errors.New("court name cannot be empty")
	ErrInvalidSportType = errors.New("invalid sport type")
)

type SportType string

const (
	SportFootball SportType = "FOOTBALL"
	SportCricket  SportType = "CRICKET"
	SportBoth     SportType = "BOTH"
)

func NewSportType(s string) (SportType, error) {
	st := SportType(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case SportFootball, SportCricket, SportBoth:
		return st, nil
	default:
		return "", ErrInvalidSportType
	}
}

func (s SportType) String() string {
	return string(s)
}

// Court is read-only to the reservation core; administration lives behind
// the venue endpoints.
type Court struct {
	id        uuid.UUID
	venueID   uuid.UUID
	name      string
	sportType SportType
}

func NewCourt(venueID uuid.UUID, name string, sportType SportType) (*Court, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	return &Court{
		id:        uuid.New(),
		venueID:   venueID,
		name:      name,
		sportType: sportType,
	}, nil
}

func ReconstructCourt(id, venueID uuid.UUID, name string, sportType SportType) *Court {
	return &Court{id: id, venueID: venueID, name: name, sportType: sportType}
}

func (c *Court) ID() uuid.UUID        { return c.id }
func (c *Court) VenueID() uuid.UUID   { return c.venueID }
func (c *Court) Name() string         { return c.name }
func (c *Court) SportType() SportType { return c.sportType }
