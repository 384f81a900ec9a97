package payment

import (
	"context"

	"github.com/bekzodtm/shoppay/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/bekzodtm/shoppay/services/payment PaymentProvider,ProviderFactory,SignatureVerifier

// SignatureVerifier checks the authenticity of inbound gateway callbacks
// against the shared merchant secret. No side effects.
type SignatureVerifier interface {
	Verify(req *models.WebhookRequest) bool
}

// PaymentProvider abstracts one external payment provider. Implementations
// fold transport and provider-side failures into GatewayResult.Success=false;
// a non-nil error means the request could not even be constructed.
type PaymentProvider interface {
	Name() string

	CreateInvoice(ctx context.Context, req *models.GatewayInvoiceRequest) (*models.GatewayResult, error)
	CheckInvoice(ctx context.Context, invoiceID string) (*models.GatewayResult, error)

	RequestCardToken(ctx context.Context, req *models.GatewayCardTokenRequest) (*models.GatewayResult, error)
	VerifyCardToken(ctx context.Context, token, smsCode string) (*models.GatewayResult, error)
	PayWithToken(ctx context.Context, req *models.GatewayTokenPaymentRequest) (*models.GatewayResult, error)
	DeleteCardToken(ctx context.Context, token string) (*models.GatewayResult, error)

	CheckPayment(ctx context.Context, paymentID string) (*models.GatewayResult, error)
	CheckPaymentByOrder(ctx context.Context, orderID, paymentDate string) (*models.GatewayResult, error)
	ReversePayment(ctx context.Context, paymentID string) (*models.GatewayResult, error)
}

// ProviderFactory selects the provider implementation for a payment method.
// Offline methods (cash, card on delivery) map to a null provider; an
// unknown method is a programming error surfaced as models.ErrUnsupportedMethod.
type ProviderFactory interface {
	ProviderFor(method models.PaymentMethod) (PaymentProvider, error)
}
