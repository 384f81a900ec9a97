package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bekzodtm/shoppay/internal/pkg/constants"
	"github.com/bekzodtm/shoppay/internal/pkg/logger"
	"github.com/bekzodtm/shoppay/internal/pkg/models"
)

// CreateInvoice opens a gateway invoice for an order and records the pending
// payment. If the provider confirms the charge immediately, the order is
// flipped to PAID in the same atomic unit.
func (uc *PaymentUC) CreateInvoice(ctx context.Context, userID uuid.UUID, req *models.CreateInvoiceRequest) (*models.Payment, error) {
	order, err := uc.validatePayableOrder(ctx, userID, req.OrderID)
	if err != nil {
		return nil, err
	}

	provider, err := uc.factory.ProviderFor(req.Method)
	if err != nil {
		return nil, err
	}

	result, err := provider.CreateInvoice(ctx, &models.GatewayInvoiceRequest{
		OrderID:     order.ID.String(),
		Amount:      order.TotalAmount,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	if !result.Success {
		return nil, fmt.Errorf("%w: %s", models.ErrGatewayUnavailable, result.ErrorNote)
	}

	return uc.recordProviderPayment(ctx, order, req.Method, result, "invoice created")
}

// PayWithSavedCard charges an order with a previously verified card token
func (uc *PaymentUC) PayWithSavedCard(ctx context.Context, userID uuid.UUID, req *models.TokenPaymentRequest) (*models.Payment, error) {
	card, err := uc.repo.GetCardByID(ctx, userID, req.CardID)
	if err != nil {
		return nil, err
	}
	if !card.IsActive {
		return nil, models.ErrCardNotFound
	}

	order, err := uc.validatePayableOrder(ctx, userID, req.OrderID)
	if err != nil {
		return nil, err
	}

	provider, err := uc.factory.ProviderFor(card.Method)
	if err != nil {
		return nil, err
	}

	result, err := provider.PayWithToken(ctx, &models.GatewayTokenPaymentRequest{
		CardToken: card.CardToken,
		OrderID:   order.ID.String(),
		Amount:    order.TotalAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to pay with token: %w", err)
	}
	if !result.Success {
		return nil, fmt.Errorf("%w: %s", models.ErrGatewayUnavailable, result.ErrorNote)
	}

	pmt, err := uc.recordProviderPayment(ctx, order, card.Method, result, "saved card payment")
	if err != nil {
		return nil, err
	}

	// Usage bookkeeping is non-essential: the charge is already committed
	if err := uc.repo.TouchCardUsage(ctx, card.ID); err != nil {
		logger.Warn("Failed to record card usage",
			logger.String("card_id", card.ID.String()),
			logger.Err(err),
		)
	}

	return pmt, nil
}

// CancelPayment reverses a completed payment. The provider reversal must
// succeed first; only then are the payment, order and ledger mutated, in one
// atomic unit. A reversal rejected or timed out leaves local state untouched.
func (uc *PaymentUC) CancelPayment(ctx context.Context, orderID uuid.UUID) error {
	pmt, err := uc.repo.GetPaymentByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	if pmt.Status != models.PaymentStatusSuccess {
		return models.ErrInvalidPaymentState
	}

	provider, err := uc.factory.ProviderFor(pmt.Method)
	if err != nil {
		return err
	}

	result, err := provider.ReversePayment(ctx, pmt.ExternalTransID)
	if err != nil {
		return fmt.Errorf("failed to reverse payment: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("%w: %s", models.ErrGatewayUnavailable, result.ErrorNote)
	}

	txn := &models.Transaction{
		UserID:      pmt.UserID,
		OrderID:     pmt.OrderID,
		Type:        models.TransactionTypeRefund,
		Status:      models.TransactionStatusSuccess,
		Amount:      pmt.Amount,
		Description: "payment reversal",
	}

	cancelled, err := uc.repo.CancelPayment(ctx, orderID, txn)
	if err != nil {
		return err
	}

	uc.publishEvent(constants.SubjectPaymentCancelled, cancelled)
	return nil
}

// GetOrderPayment returns the payment attached to an order for display
func (uc *PaymentUC) GetOrderPayment(ctx context.Context, orderID uuid.UUID) (*models.Payment, error) {
	return uc.repo.GetPaymentByOrderID(ctx, orderID)
}

// validatePayableOrder checks that the order exists, belongs to the caller,
// is still pending and carries no payment yet
func (uc *PaymentUC) validatePayableOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {
	order, err := uc.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != userID {
		return nil, models.ErrOrderNotOwned
	}
	if order.Status != models.OrderStatusPending {
		return nil, models.ErrOrderNotPending
	}

	if _, err := uc.repo.GetPaymentByOrderID(ctx, orderID); err == nil {
		return nil, models.ErrPaymentExists
	} else if !errors.Is(err, models.ErrPaymentNotFound) {
		return nil, err
	}

	return order, nil
}

// recordProviderPayment persists the payment and ledger transaction for an
// internally initiated flow, mirroring the provider's immediate response
func (uc *PaymentUC) recordProviderPayment(ctx context.Context, order *models.Order, method models.PaymentMethod, result *models.GatewayResult, description string) (*models.Payment, error) {
	status := models.PaymentStatusPending
	txnStatus := models.TransactionStatusPending
	if result.Confirmed {
		status = models.PaymentStatusSuccess
		txnStatus = models.TransactionStatusSuccess
	}

	externalID := result.PaymentID
	if externalID == "" {
		externalID = result.InvoiceID
	}

	pmt := &models.Payment{
		OrderID:         order.ID,
		UserID:          order.UserID,
		Amount:          order.TotalAmount,
		Method:          method,
		Status:          status,
		ExternalTransID: externalID,
	}
	txn := &models.Transaction{
		UserID:      order.UserID,
		OrderID:     order.ID,
		Type:        models.TransactionTypePayment,
		Status:      txnStatus,
		Amount:      order.TotalAmount,
		Description: description,
		Metadata: models.Metadata{
			"invoice_id": result.InvoiceID,
			"payment_id": result.PaymentID,
		},
	}

	if err := uc.repo.CreatePayment(ctx, pmt, txn, result.Confirmed); err != nil {
		return nil, err
	}

	uc.publishEvent(eventSubjectFor(pmt.Status), pmt)
	return pmt, nil
}
