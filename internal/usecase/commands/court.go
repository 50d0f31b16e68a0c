package commands

import (
	"context"

	"gearup/internal/domain/court"
	"gearup/internal/domain/venue"
	"gearup/internal/infra"
	"gearup/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrVenueNotFound = errs.New("venue not found")

type CourtCommands interface {
	CreateVenue(ctx context.Context, name, location, contact string) (*venue.Venue, error)
	CreateCourt(ctx context.Context, venueID uuid.UUID, name string, sportType court.SportType) (*court.Court, error)
}

type courtCommandsImpl struct {
	courts CourtStore
	venues VenueStore
}

func NewCourtCommands(courts CourtStore, venues VenueStore) CourtCommands {
	return &courtCommandsImpl{courts: courts, venues: venues}
}

func (c *courtCommandsImpl) CreateVenue(ctx context.Context, name, location, contact string) (*venue.Venue, error) {
	v, err := venue.NewVenue(name, location, contact)
	if err != nil {
		return nil, err
	}
	if err := c.venues.Create(ctx, v); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return v, nil
}

func (c *courtCommandsImpl) CreateCourt(ctx context.Context, venueID uuid.UUID, name string, sportType court.SportType) (*court.Court, error) {
	if _, err := c.venues.FindByID(ctx, venueID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	ct, err := court.NewCourt(venueID, name, sportType)
	if err != nil {
		return nil, err
	}
	if err := c.courts.Create(ctx, ct); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrVenueNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return ct, nil
}
