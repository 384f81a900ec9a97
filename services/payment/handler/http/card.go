package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bekzodtm/shoppay/internal/pkg/middleware"
	"github.com/bekzodtm/shoppay/internal/pkg/models"
	"github.com/bekzodtm/shoppay/internal/utils"
	"github.com/bekzodtm/shoppay/services/payment"
)

// CardHandler handles saved-card vault requests
type CardHandler struct {
	paymentUC payment.PaymentUC
}

// NewCardHandler creates a new card handler
func NewCardHandler(paymentUC payment.PaymentUC) *CardHandler {
	return &CardHandler{
		paymentUC: paymentUC,
	}
}

// RequestToken tokenizes a card with the provider and stores it unverified
func (h *CardHandler) RequestToken(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CardTokenRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	card, err := h.paymentUC.RequestCardToken(c.Request().Context(), userID, &req)
	if err != nil {
		return paymentErrorResponse(c, err, "Failed to request card token")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Card token requested, verification code sent", card)
}

// Verify confirms card ownership with the SMS code and activates the card
func (h *CardHandler) Verify(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CardVerifyRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	card, err := h.paymentUC.VerifyCard(c.Request().Context(), userID, &req)
	if err != nil {
		return paymentErrorResponse(c, err, "Failed to verify card")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Card verified successfully", card)
}

// List returns the caller's active cards
func (h *CardHandler) List(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	cards, err := h.paymentUC.ListCards(c.Request().Context(), userID)
	if err != nil {
		return paymentErrorResponse(c, err, "Failed to list cards")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Cards retrieved successfully", cards)
}

// Delete removes a saved card
func (h *CardHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid card ID")
	}

	if err := h.paymentUC.DeleteCard(c.Request().Context(), userID, cardID); err != nil {
		return paymentErrorResponse(c, err, "Failed to delete card")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Card deleted successfully", nil)
}
