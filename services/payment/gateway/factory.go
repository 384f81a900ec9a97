package gateway

import (
	"fmt"

	"github.com/bekzodtm/shoppay/internal/pkg/models"
	"github.com/bekzodtm/shoppay/services/payment"
	"github.com/bekzodtm/shoppay/services/payment/gateway/click"
	"github.com/bekzodtm/shoppay/services/payment/gateway/payme"
)

// Factory selects the provider implementation for a payment method
type Factory struct {
	providers map[models.PaymentMethod]payment.PaymentProvider
}

// NewFactory builds the provider registry. Offline methods map to the null
// provider: the engine treats them as "no external call needed".
func NewFactory(cfg *models.Config) *Factory {
	null := &NullProvider{}
	return &Factory{
		providers: map[models.PaymentMethod]payment.PaymentProvider{
			models.PaymentMethodCash:  null,
			models.PaymentMethodCard:  null,
			models.PaymentMethodClick: click.NewClient(cfg.Click),
			models.PaymentMethodPayme: payme.NewClient(cfg.Payme),
		},
	}
}

// ProviderFor returns the provider for a payment method. An unknown method
// is a programming error, not a recoverable condition.
func (f *Factory) ProviderFor(method models.PaymentMethod) (payment.PaymentProvider, error) {
	provider, ok := f.providers[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrUnsupportedMethod, method)
	}
	return provider, nil
}
