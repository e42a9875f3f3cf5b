package storage

import "errors"

// Common storage errors
var (
	// ErrOperatorNotFound indicates that operator was not found in storage
	ErrOperatorNotFound = errors.New("operator not found")

	// ErrOperatorAlreadyExists indicates that operator with this login already exists
	ErrOperatorAlreadyExists = errors.New("operator already exists")

	// ErrTokenNotFound indicates that refresh token was not found
	ErrTokenNotFound = errors.New("refresh token not found")

	// ErrInvalidToken indicates that token format is invalid
	ErrInvalidToken = errors.New("invalid token")
)
