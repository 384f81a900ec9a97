package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/bekzodtm/shoppay/internal/pkg/constants"
	"github.com/bekzodtm/shoppay/internal/pkg/logger"
	"github.com/bekzodtm/shoppay/internal/pkg/models"
)

// amountTolerance absorbs floating rounding between the order total and the
// amount the gateway reports
const amountTolerance = 0.01

// HandlePrepare validates a PREPARE callback and records the pending payment.
// No money has moved yet; the call is idempotent and repeated deliveries
// return the same prepare id.
func (uc *PaymentUC) HandlePrepare(ctx context.Context, req *models.WebhookRequest) *models.PrepareResponse {
	resp := &models.PrepareResponse{
		TransID:         req.TransID,
		MerchantTransID: req.MerchantTransID,
	}

	if !uc.verifier.Verify(req) {
		logger.Warn("Rejected webhook with invalid signature",
			logger.Int64("trans_id", req.TransID),
			logger.String("merchant_trans_id", req.MerchantTransID),
		)
		resp.Error = models.WebhookCodeInvalidSignature
		resp.ErrorNote = "invalid signature"
		return resp
	}

	orderID, err := uuid.Parse(req.MerchantTransID)
	if err != nil {
		resp.Error = models.WebhookCodeOrderNotFound
		resp.ErrorNote = "order not found"
		return resp
	}

	order, err := uc.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			resp.Error = models.WebhookCodeOrderNotFound
			resp.ErrorNote = "order not found"
			return resp
		}
		return uc.prepareInternalError(resp, err)
	}

	if order.Status != models.OrderStatusPending {
		resp.Error = models.WebhookCodeAlreadyPaid
		resp.ErrorNote = "order already processed"
		return resp
	}

	if math.Abs(order.TotalAmount-req.Amount) > amountTolerance {
		resp.Error = models.WebhookCodeIncorrectAmount
		resp.ErrorNote = "incorrect amount"
		return resp
	}

	existing, err := uc.repo.GetPaymentByOrderID(ctx, orderID)
	if err != nil && !errors.Is(err, models.ErrPaymentNotFound) {
		return uc.prepareInternalError(resp, err)
	}
	if existing != nil && existing.Status == models.PaymentStatusSuccess {
		resp.Error = models.WebhookCodeAlreadyPaid
		resp.ErrorNote = "payment already completed"
		return resp
	}

	pending := &models.Payment{
		OrderID:         order.ID,
		UserID:          order.UserID,
		Amount:          req.Amount,
		Method:          models.PaymentMethodClick,
		ExternalTransID: fmt.Sprintf("%d", req.TransID),
	}
	txn := &models.Transaction{
		UserID:      order.UserID,
		OrderID:     order.ID,
		Type:        models.TransactionTypePayment,
		Status:      models.TransactionStatusPending,
		Amount:      req.Amount,
		Description: "gateway prepare callback",
		Metadata:    webhookMetadata(req),
	}

	prepared, err := uc.repo.PreparePayment(ctx, pending, txn)
	if err != nil {
		if errors.Is(err, models.ErrInvalidPaymentState) {
			resp.Error = models.WebhookCodeAlreadyPaid
			resp.ErrorNote = "payment already completed"
			return resp
		}
		return uc.prepareInternalError(resp, err)
	}

	uc.publishEvent(constants.SubjectPaymentPrepared, prepared)

	resp.PrepareID = prepared.ReferenceID()
	return resp
}

// HandleComplete finalizes a payment after the gateway confirms the charge.
// Duplicate deliveries short-circuit on the already-SUCCESS payment and
// return the same confirm id without touching state.
func (uc *PaymentUC) HandleComplete(ctx context.Context, req *models.WebhookRequest) *models.CompleteResponse {
	resp := &models.CompleteResponse{
		TransID:         req.TransID,
		MerchantTransID: req.MerchantTransID,
	}

	if !uc.verifier.Verify(req) {
		logger.Warn("Rejected webhook with invalid signature",
			logger.Int64("trans_id", req.TransID),
			logger.String("merchant_trans_id", req.MerchantTransID),
		)
		resp.Error = models.WebhookCodeInvalidSignature
		resp.ErrorNote = "invalid signature"
		return resp
	}

	orderID, err := uuid.Parse(req.MerchantTransID)
	if err != nil {
		resp.Error = models.WebhookCodeOrderNotFound
		resp.ErrorNote = "order not found"
		return resp
	}

	order, err := uc.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			resp.Error = models.WebhookCodeOrderNotFound
			resp.ErrorNote = "order not found"
			return resp
		}
		return uc.completeInternalError(resp, err)
	}

	pmt, err := uc.repo.GetPaymentByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, models.ErrPaymentNotFound) {
			resp.Error = models.WebhookCodePaymentNotFound
			resp.ErrorNote = "payment not found"
			return resp
		}
		return uc.completeInternalError(resp, err)
	}

	if req.Action != models.WebhookActionComplete {
		resp.Error = models.WebhookCodeInvalidAction
		resp.ErrorNote = "invalid action"
		return resp
	}

	// The prepare id echoed back must correlate with the payment created at
	// PREPARE time
	if req.PrepareID != pmt.ReferenceID() {
		resp.Error = models.WebhookCodePaymentNotFound
		resp.ErrorNote = "payment not found"
		return resp
	}

	if math.Abs(order.TotalAmount-req.Amount) > amountTolerance {
		resp.Error = models.WebhookCodeIncorrectAmount
		resp.ErrorNote = "incorrect amount"
		return resp
	}

	// Provider-reported failure: terminal for this payment attempt, the
	// provider's own code is echoed back and never retried.
	if req.Error < 0 {
		txn := &models.Transaction{
			UserID:      order.UserID,
			OrderID:     order.ID,
			Type:        models.TransactionTypePayment,
			Status:      models.TransactionStatusFailed,
			Amount:      req.Amount,
			Description: fmt.Sprintf("gateway reported failure: %s", req.ErrorNote),
			Metadata:    webhookMetadata(req),
		}

		failed, err := uc.repo.FailPayment(ctx, orderID, txn)
		if err != nil {
			return uc.completeInternalError(resp, err)
		}
		if failed.Status == models.PaymentStatusFailed {
			uc.publishEvent(constants.SubjectPaymentFailed, failed)
		}

		resp.Error = req.Error
		resp.ErrorNote = req.ErrorNote
		return resp
	}

	// Idempotent replay of an already applied completion
	if pmt.Status == models.PaymentStatusSuccess {
		resp.ConfirmID = pmt.ReferenceID()
		return resp
	}

	if pmt.Status != models.PaymentStatusPending {
		resp.Error = models.WebhookCodeAlreadyPaid
		resp.ErrorNote = "payment in terminal state"
		return resp
	}

	txn := &models.Transaction{
		UserID:      order.UserID,
		OrderID:     order.ID,
		Type:        models.TransactionTypePayment,
		Status:      models.TransactionStatusSuccess,
		Amount:      pmt.Amount,
		Description: "gateway complete callback",
		Metadata:    webhookMetadata(req),
	}

	confirmed, alreadyApplied, err := uc.repo.ConfirmPayment(ctx, orderID, txn)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPaymentNotFound):
			resp.Error = models.WebhookCodePaymentNotFound
			resp.ErrorNote = "payment not found"
			return resp
		case errors.Is(err, models.ErrInvalidPaymentState):
			resp.Error = models.WebhookCodeAlreadyPaid
			resp.ErrorNote = "payment in terminal state"
			return resp
		default:
			return uc.completeInternalError(resp, err)
		}
	}

	if !alreadyApplied {
		uc.publishEvent(constants.SubjectPaymentCompleted, confirmed)
	}

	resp.ConfirmID = confirmed.ReferenceID()
	return resp
}

func (uc *PaymentUC) prepareInternalError(resp *models.PrepareResponse, err error) *models.PrepareResponse {
	logger.Error("Webhook prepare failed",
		logger.String("merchant_trans_id", resp.MerchantTransID),
		logger.Err(err),
	)
	resp.Error = models.WebhookCodeInternalError
	resp.ErrorNote = "internal error"
	return resp
}

func (uc *PaymentUC) completeInternalError(resp *models.CompleteResponse, err error) *models.CompleteResponse {
	logger.Error("Webhook complete failed",
		logger.String("merchant_trans_id", resp.MerchantTransID),
		logger.Err(err),
	)
	resp.Error = models.WebhookCodeInternalError
	resp.ErrorNote = "internal error"
	return resp
}

// webhookMetadata captures the raw callback fields for the ledger record
func webhookMetadata(req *models.WebhookRequest) models.Metadata {
	return models.Metadata{
		"trans_id":   req.TransID,
		"service_id": req.ServiceID,
		"pay_doc_id": req.PayDocID,
		"amount":     req.Amount,
		"action":     req.Action,
		"error":      req.Error,
		"error_note": req.ErrorNote,
		"sign_time":  req.SignTime,
	}
}
