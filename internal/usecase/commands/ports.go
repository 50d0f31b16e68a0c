package commands

import (
	"context"
	"time"

	"gearup/internal/domain/booking"
	"gearup/internal/domain/court"
	"gearup/internal/domain/payment"
	"gearup/internal/domain/user"
	"gearup/internal/domain/venue"
	"gearup/internal/infra/db"
	"gearup/internal/infra/repository"

	"github.com/google/uuid"
)

// Write-side ports. Implemented by internal/infra/repository; mocked in
// unit tests.

type BookingStore interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	CreateMany(ctx context.Context, tx db.DBTX, bs []*booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ExistsActive(ctx context.Context, courtID uuid.UUID, date time.Time, slot booking.Slot) (bool, error)
	ListRecurringUnpaidByDate(ctx context.Context, date time.Time) ([]*booking.Booking, error)
	DeleteUnpaidRecurringByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	SaveCancellation(ctx context.Context, tx db.DBTX, b *booking.Booking) error
	MarkPaid(ctx context.Context, tx db.DBTX, bookingID, paymentID uuid.UUID) error
}

type CourtStore interface {
	Create(ctx context.Context, c *court.Court) error
	FindByID(ctx context.Context, id uuid.UUID) (*court.Court, error)
}

type VenueStore interface {
	Create(ctx context.Context, v *venue.Venue) error
	FindByID(ctx context.Context, id uuid.UUID) (*venue.Venue, error)
}

type UserStore interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

type PaymentStore interface {
	Create(ctx context.Context, tx db.DBTX, p *payment.Payment) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*payment.Payment, error)
}

type PaymentOrderStore interface {
	Create(ctx context.Context, o *repository.PaymentOrder) error
	FindByID(ctx context.Context, orderID uuid.UUID) (*repository.PaymentOrder, error)
	Claim(ctx context.Context, tx db.DBTX, orderID uuid.UUID) (bool, error)
}

type NotificationStore interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
