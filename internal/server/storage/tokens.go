package storage

import (
	"context"

	"github.com/iudanet/kassasync/internal/models"
)

// TokenStorage defines interface for refresh token persistence.
// Токены хранятся только в виде SHA-256 хеша: утечка базы не дает
// действующих refresh token.
type TokenStorage interface {
	// SaveRefreshToken stores a new refresh token
	SaveRefreshToken(ctx context.Context, token *models.RefreshToken) error

	// GetRefreshToken retrieves refresh token by its hash
	// Returns ErrTokenNotFound if token doesn't exist
	GetRefreshToken(ctx context.Context, tokenHash string) (*models.RefreshToken, error)

	// DeleteRefreshToken deletes refresh token by its hash
	// Returns ErrTokenNotFound if token doesn't exist
	DeleteRefreshToken(ctx context.Context, tokenHash string) error

	// DeleteOperatorTokens deletes all refresh tokens of an operator
	// Returns number of deleted tokens
	DeleteOperatorTokens(ctx context.Context, operatorID string) (int, error)

	// DeleteExpiredTokens removes all expired tokens
	// Returns number of deleted tokens
	DeleteExpiredTokens(ctx context.Context) (int, error)
}
