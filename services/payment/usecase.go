package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/bekzodtm/shoppay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/bekzodtm/shoppay/services/payment PaymentUC

// PaymentUC is the payment reconciliation engine interface
type PaymentUC interface {
	// Gateway webhook protocol. These never return an error: every code
	// path produces a well-formed protocol response for the gateway.
	HandlePrepare(ctx context.Context, req *models.WebhookRequest) *models.PrepareResponse
	HandleComplete(ctx context.Context, req *models.WebhookRequest) *models.CompleteResponse

	// Internal payment flows
	CreateInvoice(ctx context.Context, userID uuid.UUID, req *models.CreateInvoiceRequest) (*models.Payment, error)
	PayWithSavedCard(ctx context.Context, userID uuid.UUID, req *models.TokenPaymentRequest) (*models.Payment, error)
	CancelPayment(ctx context.Context, orderID uuid.UUID) error
	GetOrderPayment(ctx context.Context, orderID uuid.UUID) (*models.Payment, error)

	// Saved-card vault
	RequestCardToken(ctx context.Context, userID uuid.UUID, req *models.CardTokenRequest) (*models.SavedCard, error)
	VerifyCard(ctx context.Context, userID uuid.UUID, req *models.CardVerifyRequest) (*models.SavedCard, error)
	DeleteCard(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) error
	ListCards(ctx context.Context, userID uuid.UUID) ([]*models.SavedCard, error)
}
