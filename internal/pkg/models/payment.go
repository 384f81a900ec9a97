package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PaymentMethod identifies how an order is paid
type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "CASH"
	PaymentMethodCard  PaymentMethod = "CARD"
	PaymentMethodClick PaymentMethod = "CLICK"
	PaymentMethodPayme PaymentMethod = "PAYME"
)

// PaymentStatus represents the state machine of a payment attempt.
// Allowed transitions: PENDING -> SUCCESS | FAILED | CANCELLED,
// SUCCESS -> CANCELLED (reversal only).
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusSuccess   PaymentStatus = "SUCCESS"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// Payment represents one attempt to satisfy an order's total.
// OrderID is unique: at most one non-cancelled payment per order.
type Payment struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	OrderID         uuid.UUID     `json:"order_id" db:"order_id"`
	UserID          uuid.UUID     `json:"user_id" db:"user_id"`
	Amount          float64       `json:"amount" db:"amount"`
	Method          PaymentMethod `json:"method" db:"method"`
	Status          PaymentStatus `json:"status" db:"status"`
	ExternalTransID string        `json:"external_trans_id" db:"external_trans_id"`
	IsDeleted       bool          `json:"-" db:"is_deleted"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// ReferenceID derives a stable numeric identifier from the payment id,
// echoed back to the gateway as prepare_id and confirm_id. The gateway
// protocol requires an integer; the first 8 hex digits of the UUID give a
// deterministic value so repeated callbacks see the same identifier.
func (p *Payment) ReferenceID() int64 {
	hexID := strings.ReplaceAll(p.ID.String(), "-", "")
	if len(hexID) < 8 {
		return 0
	}
	ref, err := strconv.ParseInt(hexID[:8], 16, 64)
	if err != nil {
		return 0
	}
	return ref
}

// CreateInvoiceRequest is the caller-facing request to open a gateway invoice
type CreateInvoiceRequest struct {
	OrderID     uuid.UUID     `json:"order_id"`
	Method      PaymentMethod `json:"method"`
	PhoneNumber string        `json:"phone_number"`
}

// TokenPaymentRequest is the caller-facing request to pay with a saved card
type TokenPaymentRequest struct {
	OrderID uuid.UUID `json:"order_id"`
	CardID  uuid.UUID `json:"card_id"`
}
