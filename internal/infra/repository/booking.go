package repository

import (
	"context"
	"time"

	"gearup/internal/domain/booking"
	"gearup/internal/infra"
	"gearup/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(pool db.DBTX) *BookingRepository {
	return &BookingRepository{db: pool}
}

const bookingColumns = `id, user_id, court_id, date, time_slot, status, is_recurring,
	week_number, payment_received, is_cancelled, payment_id, created_at, updated_at`

// Create inserts one booking. A unique violation on the live-slot index
// surfaces as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, court_id, date, time_slot, status,
			is_recurring, week_number, payment_received, is_cancelled, payment_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := tx.Exec(ctx, query,
		b.ID(),
		b.UserID(),
		b.CourtID(),
		b.Date(),
		b.Slot().String(),
		b.Status().String(),
		b.IsRecurring(),
		b.WeekNumber(),
		b.PaymentReceived(),
		b.IsCancelled(),
		b.PaymentID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}

	return nil
}

// CreateMany inserts a whole series; the caller supplies the transaction
// that makes it all-or-nothing.
func (r *BookingRepository) CreateMany(ctx context.Context, tx db.DBTX, bs []*booking.Booking) error {
	for _, b := range bs {
		if err := r.Create(ctx, tx, b); err != nil {
			return err
		}
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return b, nil
}

// ExistsActive reports whether a non-cancelled booking occupies the slot.
func (r *BookingRepository) ExistsActive(ctx context.Context, courtID uuid.UUID, date time.Time, slot booking.Slot) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE court_id = $1 AND date = $2 AND time_slot = $3 AND NOT is_cancelled
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, courtID, date, slot.String()).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check slot occupancy", err)
	}
	return exists, nil
}

func (r *BookingRepository) ListActiveByCourtDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]*booking.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE court_id = $1 AND date = $2 AND NOT is_cancelled
		ORDER BY time_slot
	`

	rows, err := r.db.Query(ctx, query, courtID, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by court and date", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY date, time_slot
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// ListRecurringUnpaidByDate feeds the lifecycle sweeps: recurring bookings
// on exactly the given date that are still unpaid and not cancelled.
func (r *BookingRepository) ListRecurringUnpaidByDate(ctx context.Context, date time.Time) ([]*booking.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE date = $1 AND is_recurring AND NOT payment_received AND NOT is_cancelled
		ORDER BY user_id, week_number
	`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recurring unpaid bookings", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// DeleteUnpaidRecurringByUser removes every unpaid recurring booking of one
// user. payment_received is re-checked inside the DELETE so a payment that
// landed after selection is never discarded.
func (r *BookingRepository) DeleteUnpaidRecurringByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `
		DELETE FROM bookings
		WHERE user_id = $1 AND is_recurring AND NOT payment_received
	`

	tag, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete unpaid recurring bookings", err)
	}
	return tag.RowsAffected(), nil
}

// SaveCancellation persists a cancelled entity. The WHERE clause keeps a
// concurrent cancel from touching the row twice.
func (r *BookingRepository) SaveCancellation(ctx context.Context, tx db.DBTX, b *booking.Booking) error {
	query := `
		UPDATE bookings
		SET status = $2, is_cancelled = TRUE, updated_at = now()
		WHERE id = $1 AND NOT is_cancelled
	`

	tag, err := tx.Exec(ctx, query, b.ID(), b.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to cancel booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking already cancelled", nil, infra.KindConflict)
	}
	return nil
}

// MarkPaid flips payment_received and links the payment row.
func (r *BookingRepository) MarkPaid(ctx context.Context, tx db.DBTX, bookingID, paymentID uuid.UUID) error {
	query := `
		UPDATE bookings
		SET payment_received = TRUE, payment_id = $2, updated_at = now()
		WHERE id = $1
	`

	tag, err := tx.Exec(ctx, query, bookingID, paymentID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark booking paid", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*booking.Booking, error) {
	var (
		id, userID, courtID uuid.UUID
		date                time.Time
		slotLabel, status   string
		recurring           bool
		weekNumber          int
		paid, cancelled     bool
		paymentID           *uuid.UUID
		createdAt           time.Time
		updatedAt           time.Time
	)

	err := row.Scan(&id, &userID, &courtID, &date, &slotLabel, &status,
		&recurring, &weekNumber, &paid, &cancelled, &paymentID, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	slot, err := booking.NewSlot(slotLabel)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(
		id, courtID, userID,
		booking.NormalizeDate(date),
		slot,
		booking.Status(status),
		recurring,
		weekNumber,
		paid, cancelled,
		paymentID,
		createdAt, updatedAt,
	), nil
}

func collectBookings(rows interface {
	rowScanner
	Next() bool
	Err() error
}) ([]*booking.Booking, error) {
	var result []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}
