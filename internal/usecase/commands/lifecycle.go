package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"gearup/internal/domain/booking"
	"gearup/internal/infra"
	"gearup/internal/pkg/clock"
	"gearup/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	reminderLeadDays     = 3
	cancellationLeadDays = 2

	jobKindPaymentReminder = "payment_reminder"
)

type LifecycleCommands interface {
	RemindUpcoming(ctx context.Context) (int, error)
	CancelOverdue(ctx context.Context) (int64, error)
}

type lifecycleCommandsImpl struct {
	bookings      BookingStore
	users         UserStore
	notifications NotificationStore
	clock         clock.Clock
	logger        *slog.Logger
}

func NewLifecycleCommands(
	bookings BookingStore,
	users UserStore,
	notifications NotificationStore,
	clk clock.Clock,
	logger *slog.Logger,
) LifecycleCommands {
	return &lifecycleCommandsImpl{
		bookings:      bookings,
		users:         users,
		notifications: notifications,
		clock:         clk,
		logger:        logger,
	}
}

type reminderPayload struct {
	BookingID  uuid.UUID `json:"booking_id"`
	CourtID    uuid.UUID `json:"court_id"`
	Date       string    `json:"date"`
	TimeSlot   string    `json:"time_slot"`
	WeekNumber int       `json:"week_number"`
}

// RemindUpcoming enqueues a payment reminder for every recurring booking
// that is still unpaid three days before its date. A user whose record
// has gone missing is logged and skipped, never fatal to the sweep.
func (c *lifecycleCommandsImpl) RemindUpcoming(ctx context.Context) (int, error) {
	target := booking.NormalizeDate(c.clock.Now().AddDate(0, 0, reminderLeadDays))

	due, err := c.bookings.ListRecurringUnpaidByDate(ctx, target)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	sent := 0
	for _, b := range due {
		u, err := c.users.FindByID(ctx, b.UserID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				c.logger.Warn("booking owner not found, skipping reminder",
					"booking_id", b.ID(), "user_id", b.UserID())
				continue
			}
			return sent, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		payload, err := json.Marshal(reminderPayload{
			BookingID:  b.ID(),
			CourtID:    b.CourtID(),
			Date:       booking.FormatDate(b.Date()),
			TimeSlot:   b.Slot().String(),
			WeekNumber: b.WeekNumber(),
		})
		if err != nil {
			return sent, errs.Wrap(err, "failed to encode reminder payload")
		}

		if err := c.notifications.CreateJob(ctx, jobKindPaymentReminder, u.Email().Value(), payload, c.clock.Now()); err != nil {
			return sent, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		c.logger.Info("payment reminder queued",
			"booking_id", b.ID(), "user_id", b.UserID(),
			"date", booking.FormatDate(b.Date()), "week", b.WeekNumber())
		sent++
	}
	return sent, nil
}

// CancelOverdue drops every unpaid recurring booking of any user who
// still owes for a slot two days out. The whole tail of the series goes,
// not just the overdue week; the DELETE re-checks payment state so a
// payment racing the sweep survives.
func (c *lifecycleCommandsImpl) CancelOverdue(ctx context.Context) (int64, error) {
	target := booking.NormalizeDate(c.clock.Now().AddDate(0, 0, cancellationLeadDays))

	overdue, err := c.bookings.ListRecurringUnpaidByDate(ctx, target)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	seen := make(map[uuid.UUID]struct{}, len(overdue))
	var removed int64
	for _, b := range overdue {
		if _, done := seen[b.UserID()]; done {
			continue
		}
		seen[b.UserID()] = struct{}{}

		n, err := c.bookings.DeleteUnpaidRecurringByUser(ctx, b.UserID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				c.logger.Warn("no unpaid recurring bookings left for user",
					"user_id", b.UserID())
				continue
			}
			return removed, errs.Mark(err, ErrDatabaseOperationFailed)
		}

		c.logger.Info("unpaid recurring bookings removed",
			"user_id", b.UserID(), "count", n)
		removed += n
	}
	return removed, nil
}
