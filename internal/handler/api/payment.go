package api

import (
	"errors"
	"net/http"

	"gearup/internal/domain/booking"
	reqdto "gearup/internal/handler/dto/request"
	resdto "gearup/internal/handler/dto/response"
	"gearup/internal/handler/middleware"
	"gearup/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
	}
}

// @Summary Initiate payment
// @Description Start a hosted checkout for a booking request
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.InitiatePaymentRequest true "Payment request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments/initiate [post]
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := booking.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	slot, err := booking.NewSlot(req.TimeSlot)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time slot",
		})
		return
	}

	session, err := h.paymentCommands.Initiate(c.Request.Context(), commands.InitiateRequest{
		UserID:    userID,
		CourtID:   req.CourtID,
		Date:      date,
		Slot:      slot,
		Recurring: req.IsRecurring,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutSession(session))
}

// @Summary Payment notification
// @Description Server-to-server callback from the payment provider
// @Tags payments
// @Accept x-www-form-urlencoded
// @Produce json
// @Param merchant_id formData string true "Merchant ID"
// @Param order_id formData string true "Order ID"
// @Param status_code formData string true "Provider status code"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /payments/notify [post]
func (h *PaymentHandler) NotifyPayment(c *gin.Context) {
	var req reqdto.PaymentNotifyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid notification format",
		})
		return
	}

	err := h.paymentCommands.Reconcile(c.Request.Context(), commands.ProviderNotification{
		MerchantID: req.MerchantID,
		OrderID:    req.OrderID,
		PaymentRef: req.PaymentID,
		Amount:     req.Amount,
		Currency:   req.Currency,
		StatusCode: req.StatusCode,
		Method:     req.Method,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentRejected):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Payment not successful",
			})
		case errors.Is(err, commands.ErrMerchantMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown merchant",
			})
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, commands.ErrSlotConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is already booked",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
