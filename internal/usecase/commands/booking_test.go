//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gearup/internal/domain/booking"
	"gearup/internal/domain/court"
	"gearup/internal/domain/user"
	"gearup/internal/infra"
	"gearup/internal/infra/db"
	"gearup/internal/infra/repository"
	"gearup/internal/pkg/config"
	"gearup/internal/usecase/commands"
	commandsmock "gearup/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// stubTxRunner runs the unit of work without a real transaction.
type stubTxRunner struct{}

func (stubTxRunner) WithinTx(_ context.Context, fn func(tx db.DBTX) error) error {
	return fn(nil)
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func conflictErr() error {
	return infra.WrapRepoErr("duplicate key", nil, infra.KindConflict)
}

type BookingCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	bookings *commandsmock.MockBookingStore
	courts   *commandsmock.MockCourtStore
	users    *commandsmock.MockUserStore
	cmd      commands.BookingCommands

	courtID uuid.UUID
	userID  uuid.UUID
	date    time.Time
	slot    booking.Slot
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bookings = commandsmock.NewMockBookingStore(s.ctrl)
	s.courts = commandsmock.NewMockCourtStore(s.ctrl)
	s.users = commandsmock.NewMockUserStore(s.ctrl)
	s.cmd = commands.NewBookingCommands(s.bookings, s.courts, s.users, stubTxRunner{}, config.NewTestConfig().Payment)

	s.courtID = uuid.New()
	s.userID = uuid.New()
	s.date = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	slot, err := booking.SlotForHour(18)
	s.Require().NoError(err)
	s.slot = slot
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) request(recurring bool) commands.BookRequest {
	return commands.BookRequest{
		UserID:    s.userID,
		CourtID:   s.courtID,
		Date:      s.date,
		Slot:      s.slot,
		Recurring: recurring,
	}
}

func (s *BookingCommandsTestSuite) expectCourt() {
	s.courts.EXPECT().FindByID(gomock.Any(), s.courtID).
		Return(court.ReconstructCourt(s.courtID, uuid.New(), "Court 1", court.SportFootball), nil)
}

func (s *BookingCommandsTestSuite) expectUser() {
	email, err := user.NewEmail("player@example.com")
	s.Require().NoError(err)
	s.users.EXPECT().FindByID(gomock.Any(), s.userID).
		Return(user.ReconstructUser(s.userID, email, "Player", "hash", user.RoleUser, time.Now()), nil)
}

func (s *BookingCommandsTestSuite) TestQuote() {
	s.Run("free slot returns the static price", func() {
		s.expectCourt()
		s.bookings.EXPECT().ExistsActive(gomock.Any(), s.courtID, s.date, s.slot).Return(false, nil)

		quote, err := s.cmd.Quote(context.Background(), s.request(false))
		s.Require().NoError(err)
		s.Equal(int64(1000), quote.Amount)
		s.Equal("LKR", quote.Currency)
	})

	s.Run("unknown court", func() {
		s.courts.EXPECT().FindByID(gomock.Any(), s.courtID).Return(nil, notFoundErr())

		_, err := s.cmd.Quote(context.Background(), s.request(false))
		s.ErrorIs(err, commands.ErrCourtNotFound)
	})

	s.Run("occupied slot", func() {
		s.expectCourt()
		s.bookings.EXPECT().ExistsActive(gomock.Any(), s.courtID, s.date, s.slot).Return(true, nil)

		_, err := s.cmd.Quote(context.Background(), s.request(false))
		s.ErrorIs(err, commands.ErrSlotConflict)
	})

	s.Run("recurring request probes all three weeks", func() {
		s.expectCourt()
		s.bookings.EXPECT().ExistsActive(gomock.Any(), s.courtID, s.date, s.slot).Return(false, nil)
		s.bookings.EXPECT().ExistsActive(gomock.Any(), s.courtID, s.date.AddDate(0, 0, 7), s.slot).Return(false, nil)
		s.bookings.EXPECT().ExistsActive(gomock.Any(), s.courtID, s.date.AddDate(0, 0, 14), s.slot).Return(false, nil)

		_, err := s.cmd.Quote(context.Background(), s.request(true))
		s.NoError(err)
	})

	s.Run("recurring conflict reports the failing week", func() {
		s.expectCourt()
		s.bookings.EXPECT().ExistsActive(gomock.Any(), s.courtID, s.date, s.slot).Return(false, nil)
		s.bookings.EXPECT().ExistsActive(gomock.Any(), s.courtID, s.date.AddDate(0, 0, 7), s.slot).Return(true, nil)

		_, err := s.cmd.Quote(context.Background(), s.request(true))
		s.ErrorIs(err, commands.ErrSlotConflict)

		var wc *commands.WeekConflict
		s.Require().ErrorAs(err, &wc)
		s.Equal(2, wc.Week)
	})
}

func (s *BookingCommandsTestSuite) TestBook() {
	s.Run("single booking, never paid on the free path", func() {
		s.expectCourt()
		s.expectUser()
		s.bookings.EXPECT().ExistsActive(gomock.Any(), s.courtID, s.date, s.slot).Return(false, nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, b *booking.Booking) error {
				s.False(b.PaymentReceived())
				s.False(b.IsRecurring())
				return nil
			})

		created, err := s.cmd.Book(context.Background(), s.request(false))
		s.Require().NoError(err)
		s.Require().Len(created, 1)
		s.Equal(s.courtID, created[0].CourtID())
	})

	s.Run("recurring booking creates the whole series unpaid", func() {
		s.expectCourt()
		s.expectUser()
		for i := 0; i < booking.SeriesLength; i++ {
			s.bookings.EXPECT().ExistsActive(gomock.Any(), s.courtID, s.date.AddDate(0, 0, 7*i), s.slot).Return(false, nil)
		}
		s.bookings.EXPECT().CreateMany(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, bs []*booking.Booking) error {
				s.Require().Len(bs, booking.SeriesLength)
				s.NoError(booking.ValidateSeries(bs))
				for _, b := range bs {
					s.False(b.PaymentReceived())
				}
				return nil
			})

		created, err := s.cmd.Book(context.Background(), s.request(true))
		s.Require().NoError(err)
		s.Len(created, booking.SeriesLength)
	})

	s.Run("insert-time conflict maps to slot conflict", func() {
		s.expectCourt()
		s.expectUser()
		s.bookings.EXPECT().ExistsActive(gomock.Any(), s.courtID, s.date, s.slot).Return(false, nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(conflictErr())

		_, err := s.cmd.Book(context.Background(), s.request(false))
		s.ErrorIs(err, commands.ErrSlotConflict)
	})

	s.Run("unknown user", func() {
		s.expectCourt()
		s.users.EXPECT().FindByID(gomock.Any(), s.userID).Return(nil, notFoundErr())

		_, err := s.cmd.Book(context.Background(), s.request(false))
		s.ErrorIs(err, commands.ErrUserNotFound)
	})
}

func (s *BookingCommandsTestSuite) TestConfirmFromPayment() {
	order := &repository.PaymentOrder{
		OrderID:   uuid.New(),
		UserID:    s.userID,
		CourtID:   s.courtID,
		Date:      s.date,
		TimeSlot:  s.slot.String(),
		Recurring: true,
	}

	s.Run("recurring order creates a paid-week-1 series", func() {
		s.bookings.EXPECT().CreateMany(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, bs []*booking.Booking) error {
				s.Require().Len(bs, booking.SeriesLength)
				s.True(bs[0].PaymentReceived())
				s.False(bs[1].PaymentReceived())
				s.False(bs[2].PaymentReceived())
				return nil
			})

		created, err := s.cmd.ConfirmFromPayment(context.Background(), nil, order)
		s.Require().NoError(err)
		s.Len(created, booking.SeriesLength)
	})

	s.Run("single order creates one paid booking", func() {
		single := *order
		single.Recurring = false

		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, b *booking.Booking) error {
				s.True(b.PaymentReceived())
				return nil
			})

		created, err := s.cmd.ConfirmFromPayment(context.Background(), nil, &single)
		s.Require().NoError(err)
		s.Len(created, 1)
	})

	s.Run("unique index violation surfaces as conflict", func() {
		s.bookings.EXPECT().CreateMany(gomock.Any(), gomock.Any(), gomock.Any()).Return(conflictErr())

		_, err := s.cmd.ConfirmFromPayment(context.Background(), nil, order)
		s.ErrorIs(err, commands.ErrSlotConflict)
	})
}

func (s *BookingCommandsTestSuite) TestCancel() {
	s.Run("owner cancels", func() {
		b := booking.NewSingle(s.courtID, s.userID, s.date, s.slot, false)
		s.bookings.EXPECT().FindByID(gomock.Any(), b.ID()).Return(b, nil)
		s.bookings.EXPECT().SaveCancellation(gomock.Any(), gomock.Any(), b).Return(nil)

		s.NoError(s.cmd.Cancel(context.Background(), s.userID, b.ID()))
		s.True(b.IsCancelled())
	})

	s.Run("someone else's booking looks like not found", func() {
		b := booking.NewSingle(s.courtID, uuid.New(), s.date, s.slot, false)
		s.bookings.EXPECT().FindByID(gomock.Any(), b.ID()).Return(b, nil)

		err := s.cmd.Cancel(context.Background(), s.userID, b.ID())
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})

	s.Run("already cancelled", func() {
		b := booking.NewSingle(s.courtID, s.userID, s.date, s.slot, false)
		s.Require().NoError(b.Cancel())
		s.bookings.EXPECT().FindByID(gomock.Any(), b.ID()).Return(b, nil)

		err := s.cmd.Cancel(context.Background(), s.userID, b.ID())
		s.ErrorIs(err, booking.ErrAlreadyCancelled)
	})
}
