package usecase

import (
	"time"

	"github.com/bekzodtm/shoppay/internal/pkg/constants"
	"github.com/bekzodtm/shoppay/internal/pkg/logger"
	"github.com/bekzodtm/shoppay/internal/pkg/models"
	"github.com/bekzodtm/shoppay/services/payment"
)

// PaymentUC implements the payment reconciliation engine
type PaymentUC struct {
	cfg       *models.Config
	repo      payment.PaymentRepo
	factory   payment.ProviderFactory
	verifier  payment.SignatureVerifier
	publisher payment.EventPublisher
}

// NewPaymentUC creates a new payment usecase instance
func NewPaymentUC(
	cfg *models.Config,
	repo payment.PaymentRepo,
	factory payment.ProviderFactory,
	verifier payment.SignatureVerifier,
	publisher payment.EventPublisher,
) *PaymentUC {
	return &PaymentUC{
		cfg:       cfg,
		repo:      repo,
		factory:   factory,
		verifier:  verifier,
		publisher: publisher,
	}
}

// publishEvent emits a payment lifecycle event. The transition is already
// committed, so a publish failure is logged and swallowed.
func (uc *PaymentUC) publishEvent(subject string, p *models.Payment) {
	event := models.PaymentEvent{
		PaymentID: p.ID,
		OrderID:   p.OrderID,
		UserID:    p.UserID,
		Amount:    p.Amount,
		Method:    p.Method,
		Status:    p.Status,
		Timestamp: time.Now().UTC(),
	}

	if err := uc.publisher.PublishJSON(subject, event); err != nil {
		logger.Warn("Failed to publish payment event",
			logger.String("subject", subject),
			logger.String("payment_id", p.ID.String()),
			logger.Err(err),
		)
	}
}

// eventSubjectFor maps a payment status to its lifecycle subject
func eventSubjectFor(status models.PaymentStatus) string {
	switch status {
	case models.PaymentStatusSuccess:
		return constants.SubjectPaymentCompleted
	case models.PaymentStatusFailed:
		return constants.SubjectPaymentFailed
	case models.PaymentStatusCancelled:
		return constants.SubjectPaymentCancelled
	default:
		return constants.SubjectPaymentPrepared
	}
}
