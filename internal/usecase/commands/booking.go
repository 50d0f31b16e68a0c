package commands

import (
	"context"
	"fmt"
	"time"

	"gearup/internal/domain/booking"
	"gearup/internal/infra"
	"gearup/internal/infra/db"
	"gearup/internal/infra/repository"
	"gearup/internal/pkg/config"
	"gearup/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSlotConflict            = errs.New("slot is already booked")
	ErrCourtNotFound           = errs.New("court not found")
	ErrUserNotFound            = errs.New("user not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// WeekConflict reports which week of a recurring series collided. It is
// always marked with ErrSlotConflict so callers can match either way.
type WeekConflict struct {
	Week int
}

func (e *WeekConflict) Error() string {
	return fmt.Sprintf("slot is already booked in week %d", e.Week)
}

func weekConflict(week int) error {
	return errs.Mark(&WeekConflict{Week: week}, ErrSlotConflict)
}

type BookRequest struct {
	UserID    uuid.UUID
	CourtID   uuid.UUID
	Date      time.Time
	Slot      booking.Slot
	Recurring bool
}

type QuoteResult struct {
	Amount   int64
	Currency string
}

type BookingCommands interface {
	Quote(ctx context.Context, req BookRequest) (*QuoteResult, error)
	Book(ctx context.Context, req BookRequest) ([]*booking.Booking, error)
	ConfirmFromPayment(ctx context.Context, tx db.DBTX, order *repository.PaymentOrder) ([]*booking.Booking, error)
	Cancel(ctx context.Context, userID, bookingID uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookings BookingStore
	courts   CourtStore
	users    UserStore
	txRunner db.TxRunner
	amount   int64
	currency string
}

func NewBookingCommands(
	bookings BookingStore,
	courts CourtStore,
	users UserStore,
	txRunner db.TxRunner,
	cfg config.PaymentConfig,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings: bookings,
		courts:   courts,
		users:    users,
		txRunner: txRunner,
		amount:   cfg.Amount,
		currency: cfg.Currency,
	}
}

// Quote verifies the requested slot (all three weeks for a recurring
// request) is free right now and returns the price. It writes nothing;
// the insert-time unique index remains the authority on conflicts.
func (c *bookingCommandsImpl) Quote(ctx context.Context, req BookRequest) (*QuoteResult, error) {
	if err := c.checkCourt(ctx, req.CourtID); err != nil {
		return nil, err
	}
	if err := c.checkConflicts(ctx, req); err != nil {
		return nil, err
	}
	return &QuoteResult{Amount: c.amount, Currency: c.currency}, nil
}

// Book creates the booking(s) without payment. Used for the free path;
// nothing created here is ever marked paid.
func (c *bookingCommandsImpl) Book(ctx context.Context, req BookRequest) ([]*booking.Booking, error) {
	if err := c.checkCourt(ctx, req.CourtID); err != nil {
		return nil, err
	}
	if _, err := c.users.FindByID(ctx, req.UserID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := c.checkConflicts(ctx, req); err != nil {
		return nil, err
	}

	created, err := c.createBookings(ctx, req, false)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ConfirmFromPayment creates the booking(s) a settled payment bought,
// inside the caller's transaction so order claim and booking creation
// commit together. Week 1 is the paid week.
func (c *bookingCommandsImpl) ConfirmFromPayment(ctx context.Context, tx db.DBTX, order *repository.PaymentOrder) ([]*booking.Booking, error) {
	slot, err := booking.NewSlot(order.TimeSlot)
	if err != nil {
		return nil, err
	}

	var series []*booking.Booking
	if order.Recurring {
		series = booking.NewSeries(order.CourtID, order.UserID, order.Date, slot, true)
		if err := booking.ValidateSeries(series); err != nil {
			return nil, err
		}
		err = c.bookings.CreateMany(ctx, tx, series)
	} else {
		series = []*booking.Booking{booking.NewSingle(order.CourtID, order.UserID, order.Date, slot, true)}
		err = c.bookings.Create(ctx, tx, series[0])
	}
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrSlotConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return series, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, userID, bookingID uuid.UUID) error {
	b, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if b.UserID() != userID {
		return ErrBookingNotFound
	}
	if err := b.Cancel(); err != nil {
		return err
	}

	return c.txRunner.WithinTx(ctx, func(tx db.DBTX) error {
		if err := c.bookings.SaveCancellation(ctx, tx, b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return booking.ErrAlreadyCancelled
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *bookingCommandsImpl) checkCourt(ctx context.Context, courtID uuid.UUID) error {
	if _, err := c.courts.FindByID(ctx, courtID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCourtNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// checkConflicts probes every date the request would occupy. For a
// recurring request the failing week is reported so the caller can tell
// the user which week blocked the series.
func (c *bookingCommandsImpl) checkConflicts(ctx context.Context, req BookRequest) error {
	weeks := 1
	if req.Recurring {
		weeks = booking.SeriesLength
	}

	start := booking.NormalizeDate(req.Date)
	for i := 0; i < weeks; i++ {
		taken, err := c.bookings.ExistsActive(ctx, req.CourtID, start.AddDate(0, 0, 7*i), req.Slot)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if taken {
			if req.Recurring {
				return weekConflict(i + 1)
			}
			return ErrSlotConflict
		}
	}
	return nil
}

func (c *bookingCommandsImpl) createBookings(ctx context.Context, req BookRequest, paid bool) ([]*booking.Booking, error) {
	var created []*booking.Booking

	err := c.txRunner.WithinTx(ctx, func(tx db.DBTX) error {
		if req.Recurring {
			series := booking.NewSeries(req.CourtID, req.UserID, req.Date, req.Slot, paid)
			if err := c.bookings.CreateMany(ctx, tx, series); err != nil {
				return err
			}
			created = series
			return nil
		}

		b := booking.NewSingle(req.CourtID, req.UserID, req.Date, req.Slot, paid)
		if err := c.bookings.Create(ctx, tx, b); err != nil {
			return err
		}
		created = []*booking.Booking{b}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrSlotConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return created, nil
}
