package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bekzodtm/shoppay/internal/pkg/logger"
	"github.com/bekzodtm/shoppay/internal/pkg/models"
	"github.com/bekzodtm/shoppay/services/payment"
)

// WebhookHandler handles the gateway's PREPARE/COMPLETE callbacks. The
// gateway expects a protocol-shaped body on every code path, so handlers
// always answer 200 with a response struct and never propagate errors.
type WebhookHandler struct {
	paymentUC payment.PaymentUC
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(paymentUC payment.PaymentUC) *WebhookHandler {
	return &WebhookHandler{
		paymentUC: paymentUC,
	}
}

// Prepare handles the PREPARE phase callback
func (h *WebhookHandler) Prepare(c echo.Context) error {
	var req models.WebhookRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Malformed prepare callback", logger.Err(err))
		return c.JSON(http.StatusOK, &models.PrepareResponse{
			Error:     models.WebhookCodeInternalError,
			ErrorNote: "malformed request",
		})
	}

	resp := h.paymentUC.HandlePrepare(c.Request().Context(), &req)
	return c.JSON(http.StatusOK, resp)
}

// Complete handles the COMPLETE phase callback
func (h *WebhookHandler) Complete(c echo.Context) error {
	var req models.WebhookRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Malformed complete callback", logger.Err(err))
		return c.JSON(http.StatusOK, &models.CompleteResponse{
			Error:     models.WebhookCodeInternalError,
			ErrorNote: "malformed request",
		})
	}

	resp := h.paymentUC.HandleComplete(c.Request().Context(), &req)
	return c.JSON(http.StatusOK, resp)
}
