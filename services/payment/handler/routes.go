package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bekzodtm/shoppay/internal/pkg/middleware"
	"github.com/bekzodtm/shoppay/internal/pkg/models"
	"github.com/bekzodtm/shoppay/services/payment"
	httphandler "github.com/bekzodtm/shoppay/services/payment/handler/http"
)

// Handler registers all payment service routes
type Handler struct {
	cfg     *models.Config
	webhook *httphandler.WebhookHandler
	payment *httphandler.PaymentHandler
	card    *httphandler.CardHandler
}

// NewHandler creates a new payment service handler
func NewHandler(cfg *models.Config, paymentUC payment.PaymentUC) *Handler {
	return &Handler{
		cfg:     cfg,
		webhook: httphandler.NewWebhookHandler(paymentUC),
		payment: httphandler.NewPaymentHandler(paymentUC),
		card:    httphandler.NewCardHandler(paymentUC),
	}
}

// RegisterRoutes registers all routes for the payment service.
// Webhook callbacks authenticate by signature, not JWT, so they sit
// outside the protected group.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/v1/payments/click/prepare", h.webhook.Prepare)
	e.POST("/v1/payments/click/complete", h.webhook.Complete)

	v1 := e.Group("/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))

	v1.POST("/payments/invoice", h.payment.CreateInvoice)
	v1.POST("/payments/card", h.payment.PayWithCard)
	v1.GET("/orders/:id/payment", h.payment.GetOrderPayment)
	v1.POST("/orders/:id/payment/cancel", h.payment.CancelPayment, middleware.RequireRole("admin"))

	v1.POST("/cards", h.card.RequestToken)
	v1.POST("/cards/verify", h.card.Verify)
	v1.GET("/cards", h.card.List)
	v1.DELETE("/cards/:id", h.card.Delete)
}
