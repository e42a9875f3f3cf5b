package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/kassasync/internal/models"
	"github.com/iudanet/kassasync/internal/server/storage"
)

// CreateOperator creates a new operator in the storage
func (s *Storage) CreateOperator(ctx context.Context, operator *models.Operator) error {
	query := `
		INSERT INTO operators (id, login, auth_key_hash, public_salt, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		operator.ID,
		operator.Login,
		operator.AuthKeyHash,
		operator.PublicSalt,
		operator.CreatedAt,
		operator.UpdatedAt,
	)

	if err != nil {
		// Проверяем на duplicate login
		if strings.Contains(err.Error(), "UNIQUE constraint failed: operators.login") {
			return storage.ErrOperatorAlreadyExists
		}
		return fmt.Errorf("failed to insert operator: %w", err)
	}

	return nil
}

// GetOperatorByLogin retrieves operator by login
func (s *Storage) GetOperatorByLogin(ctx context.Context, login string) (*models.Operator, error) {
	query := `
		SELECT id, login, auth_key_hash, public_salt, created_at, updated_at
		FROM operators
		WHERE login = ?
	`

	return s.scanOperator(s.db.QueryRowContext(ctx, query, login))
}

// GetOperatorByID retrieves operator by ID
func (s *Storage) GetOperatorByID(ctx context.Context, operatorID string) (*models.Operator, error) {
	query := `
		SELECT id, login, auth_key_hash, public_salt, created_at, updated_at
		FROM operators
		WHERE id = ?
	`

	return s.scanOperator(s.db.QueryRowContext(ctx, query, operatorID))
}

// TouchOperator updates the updated_at timestamp
func (s *Storage) TouchOperator(ctx context.Context, operatorID string, at time.Time) error {
	query := `UPDATE operators SET updated_at = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, at, operatorID)
	if err != nil {
		return fmt.Errorf("failed to touch operator: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrOperatorNotFound
	}

	return nil
}

func (s *Storage) scanOperator(row *sql.Row) (*models.Operator, error) {
	operator := &models.Operator{}

	err := row.Scan(
		&operator.ID,
		&operator.Login,
		&operator.AuthKeyHash,
		&operator.PublicSalt,
		&operator.CreatedAt,
		&operator.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}

	return operator, nil
}
