package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/benx421/catalog/internal/db"
	"github.com/benx421/catalog/internal/models"
	"github.com/google/uuid"
)

// PasswordResetRepository defines the interface for reset-code data access
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *models.PasswordReset) error
	FindNewestUnconsumed(ctx context.Context, userID uuid.UUID, code string) (*models.PasswordReset, error)
	MarkConsumed(ctx context.Context, id uuid.UUID) error
}

// passwordResetRepository implements PasswordResetRepository
type passwordResetRepository struct {
	db db.Queryer
}

// NewPasswordResetRepository creates a new PasswordResetRepository
func NewPasswordResetRepository(q db.Queryer) PasswordResetRepository {
	return &passwordResetRepository{db: q}
}

// Create inserts a fresh unconsumed reset row. Earlier outstanding rows for
// the same user are left untouched.
func (r *passwordResetRepository) Create(ctx context.Context, reset *models.PasswordReset) error {
	query := `
		INSERT INTO password_resets (user_id, code)
		VALUES ($1, $2)
		RETURNING id, consumed, created_at
	`

	err := r.db.QueryRowContext(ctx, query, reset.UserID, reset.Code).
		Scan(&reset.ID, &reset.Consumed, &reset.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create password reset: %w", err)
	}

	return nil
}

// FindNewestUnconsumed returns the most recently created unconsumed row for
// the user matching the code exactly. Codes do not expire by time.
func (r *passwordResetRepository) FindNewestUnconsumed(ctx context.Context, userID uuid.UUID, code string) (*models.PasswordReset, error) {
	query := `
		SELECT id, user_id, code, consumed, created_at
		FROM password_resets
		WHERE user_id = $1 AND code = $2 AND NOT consumed
		ORDER BY created_at DESC
		LIMIT 1
	`

	var reset models.PasswordReset
	err := r.db.QueryRowContext(ctx, query, userID, code).
		Scan(&reset.ID, &reset.UserID, &reset.Code, &reset.Consumed, &reset.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find password reset: %w", err)
	}

	return &reset, nil
}

// MarkConsumed flips the consumed flag for exactly one row. The guard on
// consumed means a row can be claimed only once even under concurrent resets.
func (r *passwordResetRepository) MarkConsumed(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE password_resets
		SET consumed = TRUE
		WHERE id = $1 AND NOT consumed
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to consume password reset: %w", err)
	}

	return requireRow(result)
}
