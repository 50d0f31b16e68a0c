package venue

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidName = errors.New("venue name cannot be empty")

type Venue struct {
	id       uuid.UUID
	name     string
	location string
	contact  string
}

func NewVenue(name, location, contact string) (*Venue, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	return &Venue{
		id:       uuid.New(),
		name:     name,
		location: strings.TrimSpace(location),
		contact:  strings.TrimSpace(contact),
	}, nil
}

func ReconstructVenue(id uuid.UUID, name, location, contact string) *Venue {
	return &Venue{id: id, name: name, location: location, contact: contact}
}

func (v *Venue) ID() uuid.UUID   { return v.id }
func (v *Venue) Name() string    { return v.name }
func (v *Venue) Location() string { return v.location }
func (v *Venue) Contact() string { return v.contact }
