package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bekzodtm/shoppay/internal/pkg/models"
)

const selectCardColumns = `
	id, user_id, method, card_token, masked_pan, card_number, phone_number,
	is_temporary, is_active, last_used_at, is_deleted, created_at, updated_at
`

// verifyAttemptWindow bounds how long failed SMS attempts are counted
const verifyAttemptWindow = 10 * time.Minute

// CreateCard stores a freshly tokenized card. Cards start inactive and are
// unusable for payment until verification activates them.
func (r *PaymentRepo) CreateCard(ctx context.Context, card *models.SavedCard) error {
	now := time.Now()
	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	card.IsActive = false
	card.CreatedAt = now
	card.UpdatedAt = now

	query := `
		INSERT INTO saved_cards (
			id, user_id, method, card_token, masked_pan, card_number, phone_number,
			is_temporary, is_active, last_used_at, is_deleted, created_at, updated_at
		) VALUES (
			:id, :user_id, :method, :card_token, :masked_pan, :card_number, :phone_number,
			:is_temporary, :is_active, :last_used_at, :is_deleted, :created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, card); err != nil {
		return fmt.Errorf("failed to insert card: %w", err)
	}

	return nil
}

// GetCardByID retrieves a user's card, filtering out soft-deleted rows
func (r *PaymentRepo) GetCardByID(ctx context.Context, userID, cardID uuid.UUID) (*models.SavedCard, error) {
	query := `
		SELECT ` + selectCardColumns + `
		FROM saved_cards
		WHERE id = $1 AND user_id = $2 AND is_deleted = false
	`

	var card models.SavedCard
	err := r.db.GetContext(ctx, &card, query, cardID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return &card, nil
}

// ActivateCard marks a card verified, storing the full card number supplied
// by the provider
func (r *PaymentRepo) ActivateCard(ctx context.Context, cardID uuid.UUID, cardNumber string) error {
	query := `
		UPDATE saved_cards
		SET is_active = true, card_number = $1, updated_at = $2
		WHERE id = $3 AND is_deleted = false
	`
	result, err := r.db.ExecContext(ctx, query, cardNumber, time.Now(), cardID)
	if err != nil {
		return fmt.Errorf("failed to activate card: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return models.ErrCardNotFound
	}

	return nil
}

// DeactivateCard soft-deletes a card after the provider confirmed token
// removal
func (r *PaymentRepo) DeactivateCard(ctx context.Context, cardID uuid.UUID) error {
	query := `
		UPDATE saved_cards
		SET is_active = false, is_deleted = true, updated_at = $1
		WHERE id = $2 AND is_deleted = false
	`
	result, err := r.db.ExecContext(ctx, query, time.Now(), cardID)
	if err != nil {
		return fmt.Errorf("failed to deactivate card: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return models.ErrCardNotFound
	}

	return nil
}

// ListCards returns a user's active cards
func (r *PaymentRepo) ListCards(ctx context.Context, userID uuid.UUID) ([]*models.SavedCard, error) {
	query := `
		SELECT ` + selectCardColumns + `
		FROM saved_cards
		WHERE user_id = $1 AND is_active = true AND is_deleted = false
		ORDER BY created_at DESC
	`

	var cards []*models.SavedCard
	if err := r.db.SelectContext(ctx, &cards, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return cards, nil
}

// TouchCardUsage records when a card was last charged
func (r *PaymentRepo) TouchCardUsage(ctx context.Context, cardID uuid.UUID) error {
	query := `UPDATE saved_cards SET last_used_at = $1, updated_at = $1 WHERE id = $2`
	if _, err := r.db.ExecContext(ctx, query, time.Now(), cardID); err != nil {
		return fmt.Errorf("failed to touch card usage: %w", err)
	}

	return nil
}

// IncrVerifyAttempts counts an SMS verification attempt within the bounded
// window
func (r *PaymentRepo) IncrVerifyAttempts(ctx context.Context, cardID uuid.UUID) (int64, error) {
	key := fmt.Sprintf("card:verify:attempts:%s", cardID)
	return r.redisClient.IncrWithExpiry(ctx, key, verifyAttemptWindow)
}

// ClearVerifyAttempts resets the attempt counter after a successful
// verification
func (r *PaymentRepo) ClearVerifyAttempts(ctx context.Context, cardID uuid.UUID) error {
	key := fmt.Sprintf("card:verify:attempts:%s", cardID)
	return r.redisClient.Delete(ctx, key)
}
