package request

import (
	"github.com/google/uuid"
)

type InitiatePaymentRequest struct {
	CourtID     uuid.UUID `json:"court_id" binding:"required"`
	Date        string    `json:"date" binding:"required"`
	TimeSlot    string    `json:"time_slot" binding:"required"`
	IsRecurring bool      `json:"is_recurring"`
}

// PaymentNotifyRequest is the form-encoded server callback posted by the
// payment provider. custom_1..4 echo the booking parameters sent at
// checkout time; reconciliation trusts the stored order, not the echo.
type PaymentNotifyRequest struct {
	MerchantID string `form:"merchant_id" binding:"required"`
	OrderID    string `form:"order_id" binding:"required"`
	PaymentID  string `form:"payment_id"`
	Amount     string `form:"payhere_amount"`
	Currency   string `form:"payhere_currency"`
	StatusCode string `form:"status_code" binding:"required"`
	Method     string `form:"method"`
	Custom1    string `form:"custom_1"`
	Custom2    string `form:"custom_2"`
	Custom3    string `form:"custom_3"`
	Custom4    string `form:"custom_4"`
}
