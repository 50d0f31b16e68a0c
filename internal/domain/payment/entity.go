package payment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidMethod = errors.New("invalid payment method")
	ErrAlreadyPaid   = errors.New("booking is already paid")
)

type Method string

const (
	MethodCard   Method = "CARD"
	MethodOnline Method = "ONLINE"
	MethodCash   Method = "CASH"
)

func NewMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	switch m {
	case MethodCard, MethodOnline, MethodCash:
		return m, nil
	default:
		return "", ErrInvalidMethod
	}
}

func (m Method) String() string {
	return string(m)
}

// Payment records one settled (or pending) charge. It points at its
// booking by id only; the booking side carries an optional payment id.
type Payment struct {
	id        uuid.UUID
	method    Method
	paid      bool
	paidAt    time.Time
	bookingID *uuid.UUID
}

// NewSettled creates a paid payment attached to a booking.
func NewSettled(method Method, bookingID uuid.UUID, now time.Time) *Payment {
	id := bookingID
	return &Payment{
		id:        uuid.New(),
		method:    method,
		paid:      true,
		paidAt:    now,
		bookingID: &id,
	}
}

func ReconstructPayment(id uuid.UUID, method Method, paid bool, paidAt time.Time, bookingID *uuid.UUID) *Payment {
	return &Payment{id: id, method: method, paid: paid, paidAt: paidAt, bookingID: bookingID}
}

func (p *Payment) ID() uuid.UUID         { return p.id }
func (p *Payment) Method() Method        { return p.method }
func (p *Payment) Paid() bool            { return p.paid }
func (p *Payment) PaidAt() time.Time     { return p.paidAt }
func (p *Payment) BookingID() *uuid.UUID { return p.bookingID }
