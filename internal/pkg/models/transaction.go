package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType classifies a ledger entry
type TransactionType string

const (
	TransactionTypePayment TransactionType = "PAYMENT"
	TransactionTypeRefund  TransactionType = "REFUND"
)

// TransactionStatus tracks resolution of the underlying money movement
type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "PENDING"
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFailed  TransactionStatus = "FAILED"
)

// Transaction is an append-only ledger record of a money-movement event.
// Only the status field is ever updated in place.
type Transaction struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	UserID      uuid.UUID         `json:"user_id" db:"user_id"`
	OrderID     uuid.UUID         `json:"order_id" db:"order_id"`
	PaymentID   *uuid.UUID        `json:"payment_id" db:"payment_id"`
	Type        TransactionType   `json:"type" db:"type"`
	Status      TransactionStatus `json:"status" db:"status"`
	Amount      float64           `json:"amount" db:"amount"`
	Description string            `json:"description" db:"description"`
	Metadata    Metadata          `json:"metadata" db:"metadata"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
}
