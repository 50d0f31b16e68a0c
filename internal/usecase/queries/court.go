package queries

import (
	"context"

	"gearup/internal/domain/court"
	"gearup/internal/domain/venue"
	"gearup/internal/infra"
	"gearup/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrVenueNotFound = errs.New("venue not found")

type VenueReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*venue.Venue, error)
	List(ctx context.Context) ([]*venue.Venue, error)
}

type CourtListReadStore interface {
	ListByVenue(ctx context.Context, venueID uuid.UUID) ([]*court.Court, error)
}

type VenueQueries interface {
	ListVenues(ctx context.Context) ([]*VenueView, error)
	ListCourts(ctx context.Context, venueID uuid.UUID) ([]*CourtView, error)
}

type venueQueriesImpl struct {
	venues VenueReadStore
	courts CourtListReadStore
}

func NewVenueQueries(venues VenueReadStore, courts CourtListReadStore) VenueQueries {
	return &venueQueriesImpl{venues: venues, courts: courts}
}

func (q *venueQueriesImpl) ListVenues(ctx context.Context) ([]*VenueView, error) {
	vs, err := q.venues.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*VenueView, len(vs))
	for i, v := range vs {
		result[i] = &VenueView{
			ID:       v.ID(),
			Name:     v.Name(),
			Location: v.Location(),
			Contact:  v.Contact(),
		}
	}
	return result, nil
}

func (q *venueQueriesImpl) ListCourts(ctx context.Context, venueID uuid.UUID) ([]*CourtView, error) {
	if _, err := q.venues.FindByID(ctx, venueID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	cs, err := q.courts.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	result := make([]*CourtView, len(cs))
	for i, c := range cs {
		result[i] = &CourtView{
			ID:        c.ID(),
			VenueID:   c.VenueID(),
			Name:      c.Name(),
			SportType: c.SportType().String(),
		}
	}
	return result, nil
}
