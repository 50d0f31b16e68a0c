//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"
	"time"

	"gearup/internal/domain/booking"
	"gearup/internal/domain/payment"
	"gearup/internal/domain/user"
	"gearup/internal/infra/db"
	"gearup/internal/infra/repository"
	"gearup/internal/pkg/clock"
	"gearup/internal/pkg/config"
	"gearup/internal/usecase/commands"
	commandsmock "gearup/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	orders      *commandsmock.MockPaymentOrderStore
	payments    *commandsmock.MockPaymentStore
	bookings    *commandsmock.MockBookingStore
	users       *commandsmock.MockUserStore
	bookingCmds *commandsmock.MockBookingCommands
	clock       *clock.MockClock
	cfg         config.PaymentConfig
	cmd         commands.PaymentCommands

	userID  uuid.UUID
	courtID uuid.UUID
	date    time.Time
	slot    booking.Slot
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.orders = commandsmock.NewMockPaymentOrderStore(s.ctrl)
	s.payments = commandsmock.NewMockPaymentStore(s.ctrl)
	s.bookings = commandsmock.NewMockBookingStore(s.ctrl)
	s.users = commandsmock.NewMockUserStore(s.ctrl)
	s.bookingCmds = commandsmock.NewMockBookingCommands(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	s.cfg = config.NewTestConfig().Payment

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.cmd = commands.NewPaymentCommands(
		s.orders, s.payments, s.bookings, s.users, s.bookingCmds,
		stubTxRunner{}, s.cfg, s.clock, logger,
	)

	s.userID = uuid.New()
	s.courtID = uuid.New()
	s.date = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	slot, err := booking.SlotForHour(18)
	s.Require().NoError(err)
	s.slot = slot
}

func (s *PaymentCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func (s *PaymentCommandsTestSuite) pendingOrder(recurring bool) *repository.PaymentOrder {
	return &repository.PaymentOrder{
		OrderID:   uuid.New(),
		UserID:    s.userID,
		CourtID:   s.courtID,
		Date:      s.date,
		TimeSlot:  s.slot.String(),
		Recurring: recurring,
		Status:    repository.OrderStatusPending,
	}
}

func (s *PaymentCommandsTestSuite) notification(orderID uuid.UUID, statusCode string) commands.ProviderNotification {
	return commands.ProviderNotification{
		MerchantID: s.cfg.MerchantID,
		OrderID:    orderID.String(),
		PaymentRef: "320031234567",
		Amount:     "1000.00",
		Currency:   "LKR",
		StatusCode: statusCode,
		Method:     "VISA",
	}
}

func (s *PaymentCommandsTestSuite) TestInitiate() {
	s.Run("builds the hosted checkout session", func() {
		req := commands.InitiateRequest{
			UserID: s.userID, CourtID: s.courtID, Date: s.date, Slot: s.slot, Recurring: true,
		}
		s.bookingCmds.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(&commands.QuoteResult{Amount: 1000, Currency: "LKR"}, nil)

		email, err := user.NewEmail("payer@example.com")
		s.Require().NoError(err)
		s.users.EXPECT().FindByID(gomock.Any(), s.userID).
			Return(user.ReconstructUser(s.userID, email, "Payer", "hash", user.RoleUser, time.Now()), nil)

		var stored *repository.PaymentOrder
		s.orders.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *repository.PaymentOrder) error {
				stored = o
				return nil
			})

		session, err := s.cmd.Initiate(context.Background(), req)
		s.Require().NoError(err)
		s.Require().NotNil(stored)
		s.Equal(stored.OrderID, session.OrderID)
		s.Equal(int64(1000), session.Amount)
		s.Equal("LKR", session.Currency)

		parsed, err := url.Parse(session.CheckoutURL)
		s.Require().NoError(err)
		s.True(strings.HasPrefix(session.CheckoutURL, s.cfg.CheckoutURL))

		q := parsed.Query()
		s.Equal(s.cfg.MerchantID, q.Get("merchant_id"))
		s.Equal(stored.OrderID.String(), q.Get("order_id"))
		s.Equal("1000.00", q.Get("amount"))
		s.Equal("Permanent court booking "+s.slot.String(), q.Get("items"))
		s.Equal("payer@example.com", q.Get("email"))
		s.Equal(s.courtID.String(), q.Get("custom_1"))
		s.Equal("2026-09-07", q.Get("custom_2"))
		s.Equal(s.slot.String(), q.Get("custom_3"))
		s.Equal("true", q.Get("custom_4"))
	})

	s.Run("conflicting slot aborts before any order is written", func() {
		s.bookingCmds.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrSlotConflict)

		_, err := s.cmd.Initiate(context.Background(), commands.InitiateRequest{
			UserID: s.userID, CourtID: s.courtID, Date: s.date, Slot: s.slot,
		})
		s.ErrorIs(err, commands.ErrSlotConflict)
	})
}

func (s *PaymentCommandsTestSuite) TestReconcile() {
	s.Run("wrong merchant id is rejected outright", func() {
		n := s.notification(uuid.New(), "2")
		n.MerchantID = "someone-else"

		err := s.cmd.Reconcile(context.Background(), n)
		s.ErrorIs(err, commands.ErrMerchantMismatch)
	})

	s.Run("unknown order", func() {
		orderID := uuid.New()
		s.orders.EXPECT().FindByID(gomock.Any(), orderID).Return(nil, notFoundErr())

		err := s.cmd.Reconcile(context.Background(), s.notification(orderID, "2"))
		s.ErrorIs(err, commands.ErrOrderNotFound)
	})

	s.Run("non-success status is rejected and leaves the order pending", func() {
		order := s.pendingOrder(false)
		s.orders.EXPECT().FindByID(gomock.Any(), order.OrderID).Return(order, nil)
		// No Claim expectation: a failed charge must not touch the order.

		err := s.cmd.Reconcile(context.Background(), s.notification(order.OrderID, "-2"))
		s.ErrorIs(err, commands.ErrPaymentRejected)
	})

	s.Run("replayed notification loses the claim and does nothing", func() {
		order := s.pendingOrder(false)
		s.orders.EXPECT().FindByID(gomock.Any(), order.OrderID).Return(order, nil)
		s.orders.EXPECT().Claim(gomock.Any(), gomock.Any(), order.OrderID).Return(false, nil)

		err := s.cmd.Reconcile(context.Background(), s.notification(order.OrderID, "2"))
		s.NoError(err)
	})

	s.Run("settled charge claims the order and creates paid bookings", func() {
		order := s.pendingOrder(true)
		series := booking.NewSeries(s.courtID, s.userID, s.date, s.slot, true)

		s.orders.EXPECT().FindByID(gomock.Any(), order.OrderID).Return(order, nil)

		claim := s.orders.EXPECT().Claim(gomock.Any(), gomock.Any(), order.OrderID).Return(true, nil)
		confirm := s.bookingCmds.EXPECT().ConfirmFromPayment(gomock.Any(), gomock.Any(), order).
			Return(series, nil).After(claim)

		var pay *payment.Payment
		create := s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, p *payment.Payment) error {
				pay = p
				return nil
			}).After(confirm)
		s.bookings.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), series[0].ID(), gomock.Any()).
			Return(nil).After(create)

		err := s.cmd.Reconcile(context.Background(), s.notification(order.OrderID, "2"))
		s.Require().NoError(err)

		s.Require().NotNil(pay)
		s.True(pay.Paid())
		// "VISA" is a provider-specific string, not a modeled method.
		s.Equal(payment.MethodOnline, pay.Method())
		s.Equal(s.clock.Now(), pay.PaidAt())
		s.Require().NotNil(pay.BookingID())
		s.Equal(series[0].ID(), *pay.BookingID())

		// The week-1 booking carries the payment link both ways.
		s.Require().NotNil(series[0].PaymentID())
		s.Equal(pay.ID(), *series[0].PaymentID())
	})

	s.Run("slot stolen between initiate and notify", func() {
		order := s.pendingOrder(false)
		s.orders.EXPECT().FindByID(gomock.Any(), order.OrderID).Return(order, nil)
		s.orders.EXPECT().Claim(gomock.Any(), gomock.Any(), order.OrderID).Return(true, nil)
		s.bookingCmds.EXPECT().ConfirmFromPayment(gomock.Any(), gomock.Any(), order).
			Return(nil, commands.ErrSlotConflict)

		err := s.cmd.Reconcile(context.Background(), s.notification(order.OrderID, "2"))
		s.ErrorIs(err, commands.ErrSlotConflict)
	})
}

func (s *PaymentCommandsTestSuite) TestPayBooking() {
	s.Run("records a cash payment for a later week", func() {
		b := booking.NewSingle(s.courtID, s.userID, s.date, s.slot, false)
		s.bookings.EXPECT().FindByID(gomock.Any(), b.ID()).Return(b, nil)
		s.payments.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.bookings.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), b.ID(), gomock.Any()).Return(nil)

		pay, err := s.cmd.PayBooking(context.Background(), s.userID, b.ID(), payment.MethodCash)
		s.Require().NoError(err)
		s.Equal(payment.MethodCash, pay.Method())
		s.True(pay.Paid())

		s.True(b.PaymentReceived())
		s.Require().NotNil(b.PaymentID())
		s.Equal(pay.ID(), *b.PaymentID())
	})

	s.Run("already paid", func() {
		b := booking.NewSingle(s.courtID, s.userID, s.date, s.slot, true)
		s.bookings.EXPECT().FindByID(gomock.Any(), b.ID()).Return(b, nil)

		_, err := s.cmd.PayBooking(context.Background(), s.userID, b.ID(), payment.MethodCash)
		s.ErrorIs(err, payment.ErrAlreadyPaid)
	})

	s.Run("someone else's booking", func() {
		b := booking.NewSingle(s.courtID, uuid.New(), s.date, s.slot, false)
		s.bookings.EXPECT().FindByID(gomock.Any(), b.ID()).Return(b, nil)

		_, err := s.cmd.PayBooking(context.Background(), uuid.New(), b.ID(), payment.MethodCash)
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})
}
