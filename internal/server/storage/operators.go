package storage

import (
	"context"
	"time"

	"github.com/iudanet/kassasync/internal/models"
)

// OperatorStorage defines interface for operator account persistence
type OperatorStorage interface {
	// CreateOperator creates a new operator in the storage
	// Returns ErrOperatorAlreadyExists if login is taken
	CreateOperator(ctx context.Context, operator *models.Operator) error

	// GetOperatorByLogin retrieves operator by login
	// Returns ErrOperatorNotFound if operator doesn't exist
	GetOperatorByLogin(ctx context.Context, login string) (*models.Operator, error)

	// GetOperatorByID retrieves operator by ID
	// Returns ErrOperatorNotFound if operator doesn't exist
	GetOperatorByID(ctx context.Context, operatorID string) (*models.Operator, error)

	// TouchOperator updates the updated_at timestamp after a successful login
	TouchOperator(ctx context.Context, operatorID string, at time.Time) error
}
