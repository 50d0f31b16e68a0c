package api

import (
	"errors"
	"net/http"

	"gearup/internal/domain/booking"
	"gearup/internal/domain/payment"
	reqdto "gearup/internal/handler/dto/request"
	resdto "gearup/internal/handler/dto/response"
	"gearup/internal/handler/middleware"
	"gearup/internal/usecase/commands"
	"gearup/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	paymentCommands commands.PaymentCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	paymentCommands commands.PaymentCommands,
	bookingQueries queries.BookingQueries,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		paymentCommands: paymentCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Book a slot directly (single or recurring), without payment
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	req, ok := bindBookRequest(c, userID)
	if !ok {
		return
	}

	created, err := h.bookingCommands.Book(c.Request.Context(), req)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	response := make([]resdto.BookingResponse, len(created))
	for i, b := range created {
		response[i] = resdto.FromBooking(b)
	}
	c.JSON(http.StatusCreated, response)
}

// @Summary Quote booking
// @Description Check availability and price for a booking request
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/quote [post]
func (h *BookingHandler) QuoteBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	req, ok := bindBookRequest(c, userID)
	if !ok {
		return
	}

	quote, err := h.bookingCommands.Quote(c.Request.Context(), req)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.QuoteResponse{
		Amount:   quote.Amount,
		Currency: quote.Currency,
	})
}

// @Summary My bookings
// @Description List all bookings of the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings/me [get]
func (h *BookingHandler) GetMyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]resdto.BookingResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromBookingView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Cancel booking
// @Description Cancel one of the current user's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	if err := h.bookingCommands.Cancel(c.Request.Context(), userID, bookingID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, booking.ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is already cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Pay booking
// @Description Record a direct payment for an existing booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.PayBookingRequest true "Payment request"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/payment [post]
func (h *BookingHandler) PayBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.PayBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	method, err := payment.NewMethod(req.Method)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid payment method",
		})
		return
	}

	pay, err := h.paymentCommands.PayBooking(c.Request.Context(), userID, bookingID, method)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, payment.ErrAlreadyPaid):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking is already paid",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPayment(pay))
}

func bindBookRequest(c *gin.Context, userID uuid.UUID) (commands.BookRequest, bool) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return commands.BookRequest{}, false
	}

	date, err := booking.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return commands.BookRequest{}, false
	}

	slot, err := booking.NewSlot(req.TimeSlot)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time slot",
		})
		return commands.BookRequest{}, false
	}

	return commands.BookRequest{
		UserID:    userID,
		CourtID:   req.CourtID,
		Date:      date,
		Slot:      slot,
		Recurring: req.IsRecurring,
	}, true
}

func respondBookingError(c *gin.Context, err error) {
	var wc *commands.WeekConflict
	switch {
	case errors.As(err, &wc):
		c.JSON(http.StatusConflict, gin.H{
			"error": wc.Error(),
			"week":  wc.Week,
		})
	case errors.Is(err, commands.ErrSlotConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Slot is already booked",
		})
	case errors.Is(err, commands.ErrCourtNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Court not found",
		})
	case errors.Is(err, commands.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "User not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
