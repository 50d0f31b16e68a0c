//go:build unit

package api_test

import (
	"net/http"
	"net/url"
	"testing"

	"gearup/internal/handler/api"
	resdto "gearup/internal/handler/dto/response"
	"gearup/internal/usecase/commands"
	"gearup/tests/common/httptest"
	commandsmock "gearup/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	paymentCommands *commandsmock.MockPaymentCommands
	handler         *api.PaymentHandler

	userID uuid.UUID
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.paymentCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.paymentCommands)

	s.userID = uuid.New()

	s.router.POST("/payments/notify", s.handler.NotifyPayment)
	s.router.POST("/payments/initiate", func(c *gin.Context) {
		c.Set("user_id", s.userID)
		s.handler.InitiatePayment(c)
	})
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func notifyForm(orderID uuid.UUID, statusCode string) url.Values {
	return url.Values{
		"merchant_id":      {"1211149"},
		"order_id":         {orderID.String()},
		"payment_id":       {"320031234567"},
		"payhere_amount":   {"1000.00"},
		"payhere_currency": {"LKR"},
		"status_code":      {statusCode},
		"method":           {"VISA"},
	}
}

func (s *PaymentHandlerTestSuite) TestNotifyPayment() {
	notifyURL := "/payments/notify"

	s.Run("success: acknowledges the provider", func() {
		orderID := uuid.New()
		s.paymentCommands.EXPECT().
			Reconcile(gomock.Any(), commands.ProviderNotification{
				MerchantID: "1211149",
				OrderID:    orderID.String(),
				PaymentRef: "320031234567",
				Amount:     "1000.00",
				Currency:   "LKR",
				StatusCode: "2",
				Method:     "VISA",
			}).
			Return(nil)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, notifyURL, notifyForm(orderID, "2"))

		var response map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("ok", response["status"])
	})

	s.Run("error: 400 on a declined charge", func() {
		s.paymentCommands.EXPECT().Reconcile(gomock.Any(), gomock.Any()).
			Return(commands.ErrPaymentRejected)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, notifyURL, notifyForm(uuid.New(), "-2"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "not successful")
	})

	s.Run("error: 400 on an unknown merchant", func() {
		s.paymentCommands.EXPECT().Reconcile(gomock.Any(), gomock.Any()).
			Return(commands.ErrMerchantMismatch)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, notifyURL, notifyForm(uuid.New(), "2"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "merchant")
	})

	s.Run("error: 404 on an unknown order", func() {
		s.paymentCommands.EXPECT().Reconcile(gomock.Any(), gomock.Any()).
			Return(commands.ErrOrderNotFound)

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, notifyURL, notifyForm(uuid.New(), "2"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})

	s.Run("error: 400 when required fields are missing", func() {
		form := notifyForm(uuid.New(), "2")
		form.Del("status_code")

		rec := httptest.PerformFormRequest(s.T(), s.router, http.MethodPost, notifyURL, form)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "notification")
	})
}

func (s *PaymentHandlerTestSuite) TestInitiatePayment() {
	initiateURL := "/payments/initiate"
	body := map[string]any{
		"court_id":     uuid.New().String(),
		"date":         "2026-09-07",
		"time_slot":    "18:00-19:00",
		"is_recurring": true,
	}

	s.Run("success: returns the checkout session", func() {
		orderID := uuid.New()
		s.paymentCommands.EXPECT().Initiate(gomock.Any(), gomock.Any()).
			Return(&commands.CheckoutSession{
				OrderID:     orderID,
				CheckoutURL: "https://sandbox.payhere.lk/pay/checkout?order_id=" + orderID.String(),
				Amount:      1000,
				Currency:    "LKR",
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, initiateURL, body, "")

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(orderID, response.OrderID)
		s.Contains(response.CheckoutURL, orderID.String())
	})

	s.Run("error: 409 when the slot is taken", func() {
		s.paymentCommands.EXPECT().Initiate(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrSlotConflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, initiateURL, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")
	})
}
