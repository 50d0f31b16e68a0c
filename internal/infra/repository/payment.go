package repository

import (
	"context"
	"time"

	"gearup/internal/domain/payment"
	"gearup/internal/infra"
	"gearup/internal/infra/db"

	"github.com/google/uuid"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(pool db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: pool}
}

func (r *PaymentRepository) Create(ctx context.Context, tx db.DBTX, p *payment.Payment) error {
	query := `
		INSERT INTO payments (id, method, paid, paid_at, booking_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := tx.Exec(ctx, query, p.ID(), p.Method().String(), p.Paid(), p.PaidAt(), p.BookingID())
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*payment.Payment, error) {
	query := `SELECT id, method, paid, paid_at, booking_id FROM payments WHERE booking_id = $1`

	var (
		id         uuid.UUID
		method     string
		paid       bool
		paidAt     time.Time
		bookingRef *uuid.UUID
	)
	err := r.db.QueryRow(ctx, query, bookingID).Scan(&id, &method, &paid, &paidAt, &bookingRef)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payment by booking id", err)
	}

	return payment.ReconstructPayment(id, payment.Method(method), paid, paidAt, bookingRef), nil
}

// PaymentOrder is the correlation record written at initiate time and
// claimed exactly once at reconcile time.
type PaymentOrder struct {
	OrderID   uuid.UUID
	UserID    uuid.UUID
	CourtID   uuid.UUID
	Date      time.Time
	TimeSlot  string
	Recurring bool
	Status    string
}

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

type PaymentOrderRepository struct {
	db db.DBTX
}

func NewPaymentOrderRepository(pool db.DBTX) *PaymentOrderRepository {
	return &PaymentOrderRepository{db: pool}
}

func (r *PaymentOrderRepository) Create(ctx context.Context, o *PaymentOrder) error {
	query := `
		INSERT INTO payment_orders (order_id, user_id, court_id, date, time_slot, is_recurring, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query, o.OrderID, o.UserID, o.CourtID, o.Date, o.TimeSlot, o.Recurring, OrderStatusPending)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment order", err)
	}
	return nil
}

func (r *PaymentOrderRepository) FindByID(ctx context.Context, orderID uuid.UUID) (*PaymentOrder, error) {
	query := `
		SELECT order_id, user_id, court_id, date, time_slot, is_recurring, status
		FROM payment_orders WHERE order_id = $1
	`

	var o PaymentOrder
	err := r.db.QueryRow(ctx, query, orderID).Scan(
		&o.OrderID, &o.UserID, &o.CourtID, &o.Date, &o.TimeSlot, &o.Recurring, &o.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find payment order", err)
	}
	return &o, nil
}

// Claim flips a pending order to completed and reports whether this call
// won the claim. A replayed provider callback loses the claim and must not
// create bookings again.
func (r *PaymentOrderRepository) Claim(ctx context.Context, tx db.DBTX, orderID uuid.UUID) (bool, error) {
	query := `
		UPDATE payment_orders
		SET status = $2, completed_at = now()
		WHERE order_id = $1 AND status = $3
	`

	tag, err := tx.Exec(ctx, query, orderID, OrderStatusCompleted, OrderStatusPending)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim payment order", err)
	}
	return tag.RowsAffected() == 1, nil
}
