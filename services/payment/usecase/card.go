package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bekzodtm/shoppay/internal/pkg/logger"
	"github.com/bekzodtm/shoppay/internal/pkg/models"
	"github.com/bekzodtm/shoppay/internal/utils"
)

// maxVerifyAttempts bounds SMS verification attempts per card within the
// repository's attempt window
const maxVerifyAttempts = 3

// RequestCardToken tokenizes a card with the provider and stores the
// reference inactive. The card cannot pay until SMS verification activates it.
func (uc *PaymentUC) RequestCardToken(ctx context.Context, userID uuid.UUID, req *models.CardTokenRequest) (*models.SavedCard, error) {
	provider, err := uc.factory.ProviderFor(req.Method)
	if err != nil {
		return nil, err
	}

	result, err := provider.RequestCardToken(ctx, &models.GatewayCardTokenRequest{
		CardNumber:  req.CardNumber,
		ExpireDate:  req.ExpireDate,
		IsTemporary: req.IsTemporary,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request card token: %w", err)
	}
	if !result.Success {
		return nil, fmt.Errorf("%w: %s", models.ErrGatewayUnavailable, result.ErrorNote)
	}

	masked := result.CardNumber
	if masked == "" {
		masked = utils.MaskPAN(req.CardNumber)
	}

	card := &models.SavedCard{
		UserID:      userID,
		Method:      req.Method,
		CardToken:   result.CardToken,
		MaskedPAN:   masked,
		PhoneNumber: req.PhoneNumber,
		IsTemporary: req.IsTemporary,
	}

	if err := uc.repo.CreateCard(ctx, card); err != nil {
		return nil, err
	}

	return card, nil
}

// VerifyCard confirms card ownership with the SMS code the provider sent.
// Successful verification stores the full card number and activates the card.
func (uc *PaymentUC) VerifyCard(ctx context.Context, userID uuid.UUID, req *models.CardVerifyRequest) (*models.SavedCard, error) {
	card, err := uc.repo.GetCardByID(ctx, userID, req.CardID)
	if err != nil {
		return nil, err
	}
	if card.IsActive {
		return card, nil
	}

	attempts, err := uc.repo.IncrVerifyAttempts(ctx, card.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count verification attempts: %w", err)
	}
	if attempts > maxVerifyAttempts {
		logger.Warn("Card verification throttled",
			logger.String("card_id", card.ID.String()),
			logger.Int64("attempts", attempts),
		)
		return nil, models.ErrTooManyAttempts
	}

	provider, err := uc.factory.ProviderFor(card.Method)
	if err != nil {
		return nil, err
	}

	result, err := provider.VerifyCardToken(ctx, card.CardToken, req.SMSCode)
	if err != nil {
		return nil, fmt.Errorf("failed to verify card token: %w", err)
	}
	if !result.Success {
		return nil, fmt.Errorf("%w: %s", models.ErrCardVerifyFailed, result.ErrorNote)
	}

	if err := uc.repo.ActivateCard(ctx, card.ID, result.CardNumber); err != nil {
		return nil, err
	}

	if err := uc.repo.ClearVerifyAttempts(ctx, card.ID); err != nil {
		logger.Warn("Failed to clear verification attempts",
			logger.String("card_id", card.ID.String()),
			logger.Err(err),
		)
	}

	card.IsActive = true
	card.CardNumber = &result.CardNumber
	return card, nil
}

// DeleteCard removes a card token. The provider must confirm deletion first;
// if the remote delete fails, the local record stays active (fail-closed).
func (uc *PaymentUC) DeleteCard(ctx context.Context, userID uuid.UUID, cardID uuid.UUID) error {
	card, err := uc.repo.GetCardByID(ctx, userID, cardID)
	if err != nil {
		return err
	}

	provider, err := uc.factory.ProviderFor(card.Method)
	if err != nil {
		return err
	}

	result, err := provider.DeleteCardToken(ctx, card.CardToken)
	if err != nil {
		return fmt.Errorf("failed to delete card token: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("%w: %s", models.ErrGatewayUnavailable, result.ErrorNote)
	}

	return uc.repo.DeactivateCard(ctx, card.ID)
}

// ListCards returns the caller's active cards for profile display
func (uc *PaymentUC) ListCards(ctx context.Context, userID uuid.UUID) ([]*models.SavedCard, error) {
	return uc.repo.ListCards(ctx, userID)
}
