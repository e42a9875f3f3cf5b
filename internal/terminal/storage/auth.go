package storage

import "context"

//go:generate moq -out authstorage_mock.go . AuthStorage

// AuthData represents the operator session persisted on the terminal.
type AuthData struct {
	Login        string `json:"login"`
	OperatorID   string `json:"operator_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	PublicSalt   string `json:"public_salt"`
	ExpiresAt    int64  `json:"expires_at"` // unix time истечения access token
}

// AuthStorage defines interface for storing the operator session on the terminal.
type AuthStorage interface {
	// SaveAuth stores session data
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored session data
	// Returns ErrAuthNotFound if no session exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored session data (logout)
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if a non-expired session exists
	IsAuthenticated(ctx context.Context) (bool, error)
}
