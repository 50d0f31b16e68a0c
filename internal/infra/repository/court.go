package repository

import (
	"context"

	"gearup/internal/domain/court"
	"gearup/internal/domain/venue"
	"gearup/internal/infra"
	"gearup/internal/infra/db"

	"github.com/google/uuid"
)

type CourtRepository struct {
	db db.DBTX
}

func NewCourtRepository(pool db.DBTX) *CourtRepository {
	return &CourtRepository{db: pool}
}

func (r *CourtRepository) Create(ctx context.Context, c *court.Court) error {
	query := `
		INSERT INTO courts (id, venue_id, name, sport_type)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, c.ID(), c.VenueID(), c.Name(), c.SportType().String())
	if err != nil {
		return infra.WrapRepoErr("failed to create court", err)
	}
	return nil
}

func (r *CourtRepository) FindByID(ctx context.Context, id uuid.UUID) (*court.Court, error) {
	query := `SELECT id, venue_id, name, sport_type FROM courts WHERE id = $1`

	var (
		courtID, venueID uuid.UUID
		name, sportType  string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&courtID, &venueID, &name, &sportType)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find court by id", err)
	}

	return court.ReconstructCourt(courtID, venueID, name, court.SportType(sportType)), nil
}

func (r *CourtRepository) ListByVenue(ctx context.Context, venueID uuid.UUID) ([]*court.Court, error) {
	query := `SELECT id, venue_id, name, sport_type FROM courts WHERE venue_id = $1 ORDER BY name`

	rows, err := r.db.Query(ctx, query, venueID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courts by venue", err)
	}
	defer rows.Close()

	var result []*court.Court
	for rows.Next() {
		var (
			id, vID         uuid.UUID
			name, sportType string
		)
		if err := rows.Scan(&id, &vID, &name, &sportType); err != nil {
			return nil, infra.WrapRepoErr("failed to scan court row", err)
		}
		result = append(result, court.ReconstructCourt(id, vID, name, court.SportType(sportType)))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate court rows", err)
	}
	return result, nil
}

type VenueRepository struct {
	db db.DBTX
}

func NewVenueRepository(pool db.DBTX) *VenueRepository {
	return &VenueRepository{db: pool}
}

func (r *VenueRepository) Create(ctx context.Context, v *venue.Venue) error {
	query := `
		INSERT INTO venues (id, name, location, contact)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, v.ID(), v.Name(), v.Location(), v.Contact())
	if err != nil {
		return infra.WrapRepoErr("failed to create venue", err)
	}
	return nil
}

func (r *VenueRepository) FindByID(ctx context.Context, id uuid.UUID) (*venue.Venue, error) {
	query := `SELECT id, name, location, contact FROM venues WHERE id = $1`

	var (
		venueID                 uuid.UUID
		name, location, contact string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&venueID, &name, &location, &contact)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find venue by id", err)
	}

	return venue.ReconstructVenue(venueID, name, location, contact), nil
}

func (r *VenueRepository) List(ctx context.Context) ([]*venue.Venue, error) {
	query := `SELECT id, name, location, contact FROM venues ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venues", err)
	}
	defer rows.Close()

	var result []*venue.Venue
	for rows.Next() {
		var (
			id                      uuid.UUID
			name, location, contact string
		)
		if err := rows.Scan(&id, &name, &location, &contact); err != nil {
			return nil, infra.WrapRepoErr("failed to scan venue row", err)
		}
		result = append(result, venue.ReconstructVenue(id, name, location, contact))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate venue rows", err)
	}
	return result, nil
}
