//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"gearup/internal/domain/booking"
	"gearup/internal/domain/payment"
	"gearup/internal/handler/api"
	resdto "gearup/internal/handler/dto/response"
	"gearup/internal/usecase/commands"
	"gearup/internal/usecase/queries"
	"gearup/tests/common/httptest"
	commandsmock "gearup/tests/mock/commands"
	queriesmock "gearup/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	bookingCommands *commandsmock.MockBookingCommands
	paymentCommands *commandsmock.MockPaymentCommands
	bookingQueries  *queriesmock.MockBookingQueries
	handler         *api.BookingHandler

	userID  uuid.UUID
	courtID uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.bookingCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.paymentCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.bookingQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.bookingCommands, s.paymentCommands, s.bookingQueries)

	s.userID = uuid.New()
	s.courtID = uuid.New()

	// Stand-in for the auth middleware.
	authed := func(c *gin.Context) {
		c.Set("user_id", s.userID)
	}

	bookings := s.router.Group("/bookings", authed)
	bookings.POST("", s.handler.CreateBooking)
	bookings.POST("/quote", s.handler.QuoteBooking)
	bookings.GET("/me", s.handler.GetMyBookings)
	bookings.DELETE("/:id", s.handler.CancelBooking)
	bookings.POST("/:id/payment", s.handler.PayBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) bookingBody(recurring bool) map[string]any {
	return map[string]any{
		"court_id":     s.courtID.String(),
		"date":         "2026-09-07",
		"time_slot":    "18:00-19:00",
		"is_recurring": recurring,
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	s.Run("success: 201 with the created series", func() {
		slot, err := booking.SlotForHour(18)
		s.Require().NoError(err)
		start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
		series := booking.NewSeries(s.courtID, s.userID, start, slot, false)

		s.bookingCommands.EXPECT().
			Book(gomock.Any(), commands.BookRequest{
				UserID: s.userID, CourtID: s.courtID, Date: start, Slot: slot, Recurring: true,
			}).
			Return(series, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.bookingBody(true), "")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Require().Len(response, booking.SeriesLength)
		s.Equal(1, response[0].WeekNumber)
		s.Equal("2026-09-07", response[0].Date)
		s.Equal("2026-09-21", response[2].Date)
	})

	s.Run("error: 409 with the failing week on a series conflict", func() {
		s.bookingCommands.EXPECT().Book(gomock.Any(), gomock.Any()).
			Return(nil, &commands.WeekConflict{Week: 2})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.bookingBody(true), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "week 2")
	})

	s.Run("error: 409 on a plain slot conflict", func() {
		s.bookingCommands.EXPECT().Book(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrSlotConflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.bookingBody(false), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")
	})

	s.Run("error: 404 on unknown court", func() {
		s.bookingCommands.EXPECT().Book(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrCourtNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.bookingBody(false), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Court not found")
	})

	s.Run("error: 400 on malformed date", func() {
		body := s.bookingBody(false)
		body["date"] = "07-09-2026"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date format")
	})

	s.Run("error: 400 on malformed time slot", func() {
		body := s.bookingBody(false)
		body["time_slot"] = "18:30-19:30"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "time slot")
	})
}

func (s *BookingHandlerTestSuite) TestQuoteBooking() {
	s.Run("success: returns price and currency", func() {
		s.bookingCommands.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(&commands.QuoteResult{Amount: 1000, Currency: "LKR"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/quote", s.bookingBody(false), "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(1000), response.Amount)
		s.Equal("LKR", response.Currency)
	})
}

func (s *BookingHandlerTestSuite) TestGetMyBookings() {
	s.Run("success: lists the user's bookings", func() {
		views := []*queries.BookingView{
			{ID: uuid.New(), CourtID: s.courtID, Date: "2026-09-07", TimeSlot: "18:00-19:00", Status: "CONFIRMED", WeekNumber: 1},
			{ID: uuid.New(), CourtID: s.courtID, Date: "2026-09-14", TimeSlot: "18:00-19:00", Status: "CONFIRMED", WeekNumber: 2},
		}
		s.bookingQueries.EXPECT().ListByUser(gomock.Any(), s.userID).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/me", nil, "")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("2026-09-14", response[1].Date)
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: 204", func() {
		s.bookingCommands.EXPECT().Cancel(gomock.Any(), s.userID, bookingID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when not found or not owned", func() {
		s.bookingCommands.EXPECT().Cancel(gomock.Any(), s.userID, bookingID).
			Return(commands.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 409 when already cancelled", func() {
		s.bookingCommands.EXPECT().Cancel(gomock.Any(), s.userID, bookingID).
			Return(booking.ErrAlreadyCancelled)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already cancelled")
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestPayBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/payment"
	body := map[string]any{"method": "CASH"}

	s.Run("success: records the payment", func() {
		pay := payment.NewSettled(payment.MethodCash, bookingID, time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC))
		s.paymentCommands.EXPECT().
			PayBooking(gomock.Any(), s.userID, bookingID, payment.MethodCash).
			Return(pay, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("CASH", response.Method)
		s.True(response.Paid)
	})

	s.Run("error: 409 when already paid", func() {
		s.paymentCommands.EXPECT().
			PayBooking(gomock.Any(), s.userID, bookingID, payment.MethodCash).
			Return(nil, payment.ErrAlreadyPaid)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already paid")
	})

	s.Run("error: 400 on an unknown method", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"method": "BARTER"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "payment method")
	})
}
