package response

import (
	"time"

	"gearup/internal/domain/payment"
	"gearup/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutResponse struct {
	OrderID     uuid.UUID `json:"order_id"`
	CheckoutURL string    `json:"checkout_url"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
}

type PaymentResponse struct {
	ID        uuid.UUID  `json:"id"`
	Method    string     `json:"method"`
	Paid      bool       `json:"paid"`
	PaidAt    time.Time  `json:"paid_at"`
	BookingID *uuid.UUID `json:"booking_id,omitempty"`
}

func FromCheckoutSession(s *commands.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{
		OrderID:     s.OrderID,
		CheckoutURL: s.CheckoutURL,
		Amount:      s.Amount,
		Currency:    s.Currency,
	}
}

func FromPayment(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID(),
		Method:    p.Method().String(),
		Paid:      p.Paid(),
		PaidAt:    p.PaidAt(),
		BookingID: p.BookingID(),
	}
}
