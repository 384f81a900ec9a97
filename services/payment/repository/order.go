package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bekzodtm/shoppay/internal/pkg/models"
)

// GetOrderByID retrieves an order by id, filtering out soft-deleted rows
func (r *PaymentRepo) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	query := `
		SELECT id, user_id, total_amount, status, is_deleted, created_at, updated_at
		FROM orders
		WHERE id = $1 AND is_deleted = false
	`

	var order models.Order
	err := r.db.GetContext(ctx, &order, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}
