package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bekzodtm/shoppay/internal/pkg/models"
)

const selectPaymentColumns = `
	id, order_id, user_id, amount, method, status, external_trans_id,
	is_deleted, created_at, updated_at
`

// GetPaymentByOrderID retrieves the non-deleted payment attached to an order
func (r *PaymentRepo) GetPaymentByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Payment, error) {
	query := `
		SELECT ` + selectPaymentColumns + `
		FROM payments
		WHERE order_id = $1 AND is_deleted = false
	`

	var payment models.Payment
	err := r.db.GetContext(ctx, &payment, query, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &payment, nil
}

// PreparePayment upserts the payment row keyed by order id to PENDING and
// records the callback in a PENDING ledger transaction, in one database
// transaction. A payment that already reached SUCCESS is never overwritten;
// the guard on the upsert makes concurrent completions safe.
func (r *PaymentRepo) PreparePayment(ctx context.Context, payment *models.Payment, txn *models.Transaction) (*models.Payment, error) {
	now := time.Now()
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	payment.Status = models.PaymentStatusPending
	payment.CreatedAt = now
	payment.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO payments (
			id, order_id, user_id, amount, method, status, external_trans_id,
			is_deleted, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8, $8)
		ON CONFLICT (order_id) DO UPDATE SET
			amount = EXCLUDED.amount,
			method = EXCLUDED.method,
			status = EXCLUDED.status,
			external_trans_id = EXCLUDED.external_trans_id,
			updated_at = EXCLUDED.updated_at
		WHERE payments.status <> 'SUCCESS'
		RETURNING ` + selectPaymentColumns + `
	`

	var upserted models.Payment
	err = tx.QueryRowxContext(ctx, query,
		payment.ID,
		payment.OrderID,
		payment.UserID,
		payment.Amount,
		payment.Method,
		payment.Status,
		payment.ExternalTransID,
		now,
	).StructScan(&upserted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Upsert guard fired: the payment already reached SUCCESS
			return nil, models.ErrInvalidPaymentState
		}
		return nil, fmt.Errorf("failed to upsert payment: %w", err)
	}

	txn.PaymentID = &upserted.ID
	if err := insertTransaction(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &upserted, nil
}

// ConfirmPayment finalizes a payment: under a row lock on the payment it
// flips the payment to SUCCESS, the order to PAID and appends a SUCCESS
// ledger transaction. All three writes commit together or not at all.
// Returns true when the payment was already SUCCESS (idempotent replay).
func (r *PaymentRepo) ConfirmPayment(ctx context.Context, orderID uuid.UUID, txn *models.Transaction) (*models.Payment, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	payment, err := lockPaymentByOrderID(ctx, tx, orderID)
	if err != nil {
		return nil, false, err
	}

	// Concurrent completion may have won the lock first
	if payment.Status == models.PaymentStatusSuccess {
		return payment, true, nil
	}
	if payment.Status != models.PaymentStatusPending {
		return nil, false, models.ErrInvalidPaymentState
	}

	now := time.Now()
	if _, err := tx.ExecContext(ctx,
		`UPDATE payments SET status = $1, updated_at = $2 WHERE id = $3`,
		models.PaymentStatusSuccess, now, payment.ID,
	); err != nil {
		return nil, false, fmt.Errorf("failed to update payment status: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		models.OrderStatusPaid, now, orderID,
	); err != nil {
		return nil, false, fmt.Errorf("failed to update order status: %w", err)
	}

	txn.PaymentID = &payment.ID
	if err := insertTransaction(ctx, tx, txn); err != nil {
		return nil, false, err
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	payment.Status = models.PaymentStatusSuccess
	payment.UpdatedAt = now
	return payment, false, nil
}

// FailPayment records a provider-reported failure. Only a PENDING payment is
// mutated; a payment in any other state is returned untouched so a late or
// duplicate error callback cannot regress it.
func (r *PaymentRepo) FailPayment(ctx context.Context, orderID uuid.UUID, txn *models.Transaction) (*models.Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	payment, err := lockPaymentByOrderID(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if payment.Status != models.PaymentStatusPending {
		return payment, nil
	}

	now := time.Now()
	if _, err := tx.ExecContext(ctx,
		`UPDATE payments SET status = $1, updated_at = $2 WHERE id = $3`,
		models.PaymentStatusFailed, now, payment.ID,
	); err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	txn.PaymentID = &payment.ID
	if err := insertTransaction(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	payment.Status = models.PaymentStatusFailed
	payment.UpdatedAt = now
	return payment, nil
}

// CancelPayment reverses a SUCCESS payment: the payment is cancelled and
// soft-deleted, the order cancelled and a REFUND ledger transaction appended,
// in one database transaction.
func (r *PaymentRepo) CancelPayment(ctx context.Context, orderID uuid.UUID, txn *models.Transaction) (*models.Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	payment, err := lockPaymentByOrderID(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if payment.Status != models.PaymentStatusSuccess {
		return nil, models.ErrInvalidPaymentState
	}

	now := time.Now()
	if _, err := tx.ExecContext(ctx,
		`UPDATE payments SET status = $1, is_deleted = true, updated_at = $2 WHERE id = $3`,
		models.PaymentStatusCancelled, now, payment.ID,
	); err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		models.OrderStatusCancelled, now, orderID,
	); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	txn.PaymentID = &payment.ID
	if err := insertTransaction(ctx, tx, txn); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	payment.Status = models.PaymentStatusCancelled
	payment.IsDeleted = true
	payment.UpdatedAt = now
	return payment, nil
}

// CreatePayment inserts a new payment and its ledger transaction for the
// invoice and direct flows, flipping the order to PAID in the same unit when
// the provider already confirmed the charge.
func (r *PaymentRepo) CreatePayment(ctx context.Context, payment *models.Payment, txn *models.Transaction, markOrderPaid bool) error {
	now := time.Now()
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	payment.CreatedAt = now
	payment.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO payments (
			id, order_id, user_id, amount, method, status, external_trans_id,
			is_deleted, created_at, updated_at
		) VALUES (
			:id, :order_id, :user_id, :amount, :method, :status, :external_trans_id,
			:is_deleted, :created_at, :updated_at
		)
	`
	if _, err := tx.NamedExecContext(ctx, query, payment); err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	txn.PaymentID = &payment.ID
	if err := insertTransaction(ctx, tx, txn); err != nil {
		return err
	}

	if markOrderPaid {
		if _, err := tx.ExecContext(ctx,
			`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
			models.OrderStatusPaid, now, payment.OrderID,
		); err != nil {
			return fmt.Errorf("failed to update order status: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// lockPaymentByOrderID loads the order's payment under FOR UPDATE so
// concurrent webhook deliveries serialize on the row
func lockPaymentByOrderID(ctx context.Context, tx *sqlx.Tx, orderID uuid.UUID) (*models.Payment, error) {
	query := `
		SELECT ` + selectPaymentColumns + `
		FROM payments
		WHERE order_id = $1 AND is_deleted = false
		FOR UPDATE
	`

	var payment models.Payment
	err := tx.QueryRowxContext(ctx, query, orderID).StructScan(&payment)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to lock payment: %w", err)
	}

	return &payment, nil
}

// insertTransaction appends a ledger transaction inside an open database
// transaction
func insertTransaction(ctx context.Context, tx *sqlx.Tx, txn *models.Transaction) error {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO transactions (
			id, user_id, order_id, payment_id, type, status, amount,
			description, metadata, created_at
		) VALUES (
			:id, :user_id, :order_id, :payment_id, :type, :status, :amount,
			:description, :metadata, :created_at
		)
	`
	if _, err := tx.NamedExecContext(ctx, query, txn); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}
