package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bekzodtm/shoppay/internal/pkg/logger"
	"github.com/bekzodtm/shoppay/internal/pkg/middleware"
	"github.com/bekzodtm/shoppay/internal/pkg/models"
	"github.com/bekzodtm/shoppay/internal/utils"
	"github.com/bekzodtm/shoppay/services/payment"
)

// PaymentHandler handles internal payment API requests
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// CreateInvoice handles invoice creation requests
func (h *PaymentHandler) CreateInvoice(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateInvoiceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	pmt, err := h.paymentUC.CreateInvoice(c.Request().Context(), userID, &req)
	if err != nil {
		return paymentErrorResponse(c, err, "Failed to create invoice")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Invoice created successfully", pmt)
}

// PayWithCard handles saved-card payment requests
func (h *PaymentHandler) PayWithCard(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.TokenPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	pmt, err := h.paymentUC.PayWithSavedCard(c.Request().Context(), userID, &req)
	if err != nil {
		return paymentErrorResponse(c, err, "Failed to process payment")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Payment processed successfully", pmt)
}

// GetOrderPayment returns the payment attached to an order
func (h *PaymentHandler) GetOrderPayment(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	pmt, err := h.paymentUC.GetOrderPayment(c.Request().Context(), orderID)
	if err != nil {
		return paymentErrorResponse(c, err, "Failed to retrieve payment")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment retrieved successfully", pmt)
}

// CancelPayment handles reversal requests for completed payments
func (h *PaymentHandler) CancelPayment(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	if err := h.paymentUC.CancelPayment(c.Request().Context(), orderID); err != nil {
		return paymentErrorResponse(c, err, "Failed to cancel payment")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Payment cancelled successfully", nil)
}

// paymentErrorResponse maps engine errors onto HTTP responses
func paymentErrorResponse(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, models.ErrOrderNotFound),
		errors.Is(err, models.ErrPaymentNotFound),
		errors.Is(err, models.ErrCardNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, models.ErrOrderNotOwned):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, models.ErrOrderNotPending),
		errors.Is(err, models.ErrPaymentExists),
		errors.Is(err, models.ErrInvalidPaymentState),
		errors.Is(err, models.ErrTooManyAttempts):
		return utils.ConflictResponse(c, err.Error())
	case errors.Is(err, models.ErrCardVerifyFailed):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrGatewayUnavailable):
		return utils.ServiceUnavailableResponse(c, err.Error())
	default:
		logger.Error("Payment request failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
