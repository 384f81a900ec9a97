package gateway

import (
	"context"

	"github.com/bekzodtm/shoppay/internal/pkg/models"
)

// NullProvider serves offline payment methods (cash, card on delivery).
// Every operation succeeds without a remote call; nothing is ever confirmed
// by a provider, so payments stay PENDING until settled locally.
type NullProvider struct{}

// Name returns the provider identifier
func (p *NullProvider) Name() string {
	return "none"
}

func (p *NullProvider) CreateInvoice(ctx context.Context, req *models.GatewayInvoiceRequest) (*models.GatewayResult, error) {
	return &models.GatewayResult{Success: true}, nil
}

func (p *NullProvider) CheckInvoice(ctx context.Context, invoiceID string) (*models.GatewayResult, error) {
	return &models.GatewayResult{Success: true}, nil
}

func (p *NullProvider) RequestCardToken(ctx context.Context, req *models.GatewayCardTokenRequest) (*models.GatewayResult, error) {
	return &models.GatewayResult{Success: false, ErrorNote: "card tokenization requires a remote provider"}, nil
}

func (p *NullProvider) VerifyCardToken(ctx context.Context, token, smsCode string) (*models.GatewayResult, error) {
	return &models.GatewayResult{Success: false, ErrorNote: "card tokenization requires a remote provider"}, nil
}

func (p *NullProvider) PayWithToken(ctx context.Context, req *models.GatewayTokenPaymentRequest) (*models.GatewayResult, error) {
	return &models.GatewayResult{Success: false, ErrorNote: "token payment requires a remote provider"}, nil
}

func (p *NullProvider) DeleteCardToken(ctx context.Context, token string) (*models.GatewayResult, error) {
	return &models.GatewayResult{Success: false, ErrorNote: "card tokenization requires a remote provider"}, nil
}

func (p *NullProvider) CheckPayment(ctx context.Context, paymentID string) (*models.GatewayResult, error) {
	return &models.GatewayResult{Success: true}, nil
}

func (p *NullProvider) CheckPaymentByOrder(ctx context.Context, orderID, paymentDate string) (*models.GatewayResult, error) {
	return &models.GatewayResult{Success: true}, nil
}

// ReversePayment succeeds immediately: there is nothing to undo remotely,
// the engine still records the local cancellation.
func (p *NullProvider) ReversePayment(ctx context.Context, paymentID string) (*models.GatewayResult, error) {
	return &models.GatewayResult{Success: true}, nil
}
