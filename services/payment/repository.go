package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/bekzodtm/shoppay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/bekzodtm/shoppay/services/payment PaymentRepo

// PaymentRepo is the persistence boundary for the reconciliation engine.
// Every method that moves more than one row executes as a single database
// transaction; no other component writes order, payment or transaction rows.
type PaymentRepo interface {
	// Reads
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetPaymentByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Payment, error)

	// PREPARE: upsert the payment row keyed by order id to PENDING and
	// record the callback in a PENDING ledger transaction, atomically.
	PreparePayment(ctx context.Context, payment *models.Payment, txn *models.Transaction) (*models.Payment, error)

	// COMPLETE: lock the payment row, flip it to SUCCESS, mark the order
	// PAID and append a SUCCESS ledger transaction, atomically. Returns
	// the payment and true when it was already SUCCESS (idempotent replay).
	ConfirmPayment(ctx context.Context, orderID uuid.UUID, txn *models.Transaction) (*models.Payment, bool, error)

	// Provider-reported failure: mark a PENDING payment FAILED and append
	// a FAILED ledger transaction, atomically.
	FailPayment(ctx context.Context, orderID uuid.UUID, txn *models.Transaction) (*models.Payment, error)

	// Reversal: cancel a SUCCESS payment, cancel its order and append a
	// REFUND ledger transaction, atomically.
	CancelPayment(ctx context.Context, orderID uuid.UUID, txn *models.Transaction) (*models.Payment, error)

	// Invoice/direct flows: insert payment + ledger transaction, flipping
	// the order to PAID in the same unit when the provider already
	// confirmed the charge.
	CreatePayment(ctx context.Context, payment *models.Payment, txn *models.Transaction, markOrderPaid bool) error

	// Saved-card vault
	CreateCard(ctx context.Context, card *models.SavedCard) error
	GetCardByID(ctx context.Context, userID, cardID uuid.UUID) (*models.SavedCard, error)
	ActivateCard(ctx context.Context, cardID uuid.UUID, cardNumber string) error
	DeactivateCard(ctx context.Context, cardID uuid.UUID) error
	ListCards(ctx context.Context, userID uuid.UUID) ([]*models.SavedCard, error)
	TouchCardUsage(ctx context.Context, cardID uuid.UUID) error

	// Verification attempt throttling
	IncrVerifyAttempts(ctx context.Context, cardID uuid.UUID) (int64, error)
	ClearVerifyAttempts(ctx context.Context, cardID uuid.UUID) error
}
