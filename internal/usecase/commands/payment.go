package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"gearup/internal/domain/booking"
	"gearup/internal/domain/payment"
	"gearup/internal/infra"
	"gearup/internal/infra/db"
	"gearup/internal/infra/repository"
	"gearup/internal/pkg/clock"
	"gearup/internal/pkg/config"
	"gearup/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound    = errs.New("payment order not found")
	ErrMerchantMismatch = errs.New("merchant id does not match")
	ErrPaymentRejected  = errs.New("payment was not successful")
)

// Provider status codes. The gateway reports "2" on a settled charge;
// everything else is a non-success we acknowledge without acting on.
const statusCodeSuccess = "2"

type InitiateRequest struct {
	UserID    uuid.UUID
	CourtID   uuid.UUID
	Date      time.Time
	Slot      booking.Slot
	Recurring bool
}

// CheckoutSession is everything the client needs to redirect the payer
// to the hosted checkout page.
type CheckoutSession struct {
	OrderID     uuid.UUID
	CheckoutURL string
	Amount      int64
	Currency    string
}

// ProviderNotification is the server-to-server callback payload. The
// custom fields echo back the booking parameters sent at initiate time.
type ProviderNotification struct {
	MerchantID string
	OrderID    string
	PaymentRef string
	Amount     string
	Currency   string
	StatusCode string
	Method     string
}

type PaymentCommands interface {
	Initiate(ctx context.Context, req InitiateRequest) (*CheckoutSession, error)
	Reconcile(ctx context.Context, n ProviderNotification) error
	PayBooking(ctx context.Context, userID, bookingID uuid.UUID, method payment.Method) (*payment.Payment, error)
}

type paymentCommandsImpl struct {
	orders   PaymentOrderStore
	payments PaymentStore
	bookings BookingStore
	users    UserStore
	booking  BookingCommands
	txRunner db.TxRunner
	cfg      config.PaymentConfig
	clock    clock.Clock
	logger   *slog.Logger
}

func NewPaymentCommands(
	orders PaymentOrderStore,
	payments PaymentStore,
	bookings BookingStore,
	users UserStore,
	bookingCmds BookingCommands,
	txRunner db.TxRunner,
	cfg config.PaymentConfig,
	clk clock.Clock,
	logger *slog.Logger,
) PaymentCommands {
	return &paymentCommandsImpl{
		orders:   orders,
		payments: payments,
		bookings: bookings,
		users:    users,
		booking:  bookingCmds,
		txRunner: txRunner,
		cfg:      cfg,
		clock:    clk,
		logger:   logger,
	}
}

// Initiate checks the slot is available, records a pending order and
// builds the hosted checkout URL. No booking exists until the provider
// confirms payment.
func (c *paymentCommandsImpl) Initiate(ctx context.Context, req InitiateRequest) (*CheckoutSession, error) {
	quote, err := c.booking.Quote(ctx, BookRequest{
		UserID:    req.UserID,
		CourtID:   req.CourtID,
		Date:      req.Date,
		Slot:      req.Slot,
		Recurring: req.Recurring,
	})
	if err != nil {
		return nil, err
	}

	payer, err := c.users.FindByID(ctx, req.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	order := &repository.PaymentOrder{
		OrderID:   uuid.New(),
		UserID:    req.UserID,
		CourtID:   req.CourtID,
		Date:      booking.NormalizeDate(req.Date),
		TimeSlot:  req.Slot.String(),
		Recurring: req.Recurring,
	}
	if err := c.orders.Create(ctx, order); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CheckoutSession{
		OrderID:     order.OrderID,
		CheckoutURL: c.buildCheckoutURL(order, payer.Name(), payer.Email().Value(), quote.Amount),
		Amount:      quote.Amount,
		Currency:    quote.Currency,
	}, nil
}

func (c *paymentCommandsImpl) buildCheckoutURL(order *repository.PaymentOrder, payerName, payerEmail string, amount int64) string {
	item := "Court booking " + order.TimeSlot
	if order.Recurring {
		item = "Permanent court booking " + order.TimeSlot
	}

	params := url.Values{}
	params.Set("merchant_id", c.cfg.MerchantID)
	params.Set("return_url", c.cfg.ReturnURL)
	params.Set("cancel_url", c.cfg.CancelURL)
	params.Set("notify_url", c.cfg.NotifyURL)
	params.Set("order_id", order.OrderID.String())
	params.Set("items", item)
	params.Set("currency", c.cfg.Currency)
	params.Set("amount", fmt.Sprintf("%d.00", amount))
	params.Set("first_name", payerName)
	params.Set("email", payerEmail)
	params.Set("custom_1", order.CourtID.String())
	params.Set("custom_2", booking.FormatDate(order.Date))
	params.Set("custom_3", order.TimeSlot)
	params.Set("custom_4", fmt.Sprintf("%t", order.Recurring))

	return c.cfg.CheckoutURL + "?" + params.Encode()
}

// Reconcile handles the provider callback. Exactly one callback per
// order wins the claim and creates the bookings; replays and races see
// an already-completed order and return without side effects. A
// non-success status code is rejected and leaves the order pending.
func (c *paymentCommandsImpl) Reconcile(ctx context.Context, n ProviderNotification) error {
	if n.MerchantID != c.cfg.MerchantID {
		return ErrMerchantMismatch
	}

	orderID, err := uuid.Parse(n.OrderID)
	if err != nil {
		return ErrOrderNotFound
	}

	order, err := c.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if n.StatusCode != statusCodeSuccess {
		c.logger.Warn("payment not successful, order left pending",
			"order_id", orderID, "status_code", n.StatusCode)
		return ErrPaymentRejected
	}

	method := payment.MethodOnline
	if m, err := payment.NewMethod(n.Method); err == nil {
		method = m
	}

	err = c.txRunner.WithinTx(ctx, func(tx db.DBTX) error {
		claimed, err := c.orders.Claim(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if !claimed {
			c.logger.Info("duplicate payment notification ignored", "order_id", orderID)
			return nil
		}

		created, err := c.booking.ConfirmFromPayment(ctx, tx, order)
		if err != nil {
			return err
		}

		// The paid week is always the first booking of the series.
		pay := payment.NewSettled(method, created[0].ID(), c.clock.Now())
		if err := c.payments.Create(ctx, tx, pay); err != nil {
			return err
		}
		created[0].MarkPaid(pay.ID())
		if err := c.bookings.MarkPaid(ctx, tx, created[0].ID(), pay.ID()); err != nil {
			return err
		}

		c.logger.Info("payment reconciled",
			"order_id", orderID, "payment_ref", n.PaymentRef, "bookings", len(created))
		return nil
	})
	if err != nil {
		if errs.Is(err, ErrSlotConflict) {
			return ErrSlotConflict
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// PayBooking settles a single existing booking directly, e.g. a cash
// payment recorded at the venue or a later week of a series.
func (c *paymentCommandsImpl) PayBooking(ctx context.Context, userID, bookingID uuid.UUID, method payment.Method) (*payment.Payment, error) {
	b, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if b.UserID() != userID {
		return nil, ErrBookingNotFound
	}
	if b.PaymentReceived() {
		return nil, payment.ErrAlreadyPaid
	}

	pay := payment.NewSettled(method, b.ID(), c.clock.Now())
	err = c.txRunner.WithinTx(ctx, func(tx db.DBTX) error {
		if err := c.payments.Create(ctx, tx, pay); err != nil {
			return err
		}
		return c.bookings.MarkPaid(ctx, tx, b.ID(), pay.ID())
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	b.MarkPaid(pay.ID())
	return pay, nil
}
