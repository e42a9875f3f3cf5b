package storage

import "errors"

// Common terminal storage errors
var (
	// ErrRecordNotFound indicates that record is not present in the local store
	ErrRecordNotFound = errors.New("record not found")

	// ErrOutboxEntryNotFound indicates that outbox entry was not found
	ErrOutboxEntryNotFound = errors.New("outbox entry not found")

	// ErrConflictNotFound indicates that pending conflict was not found
	ErrConflictNotFound = errors.New("pending conflict not found")

	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrVectorRegression indicates an attempt to overwrite a record with a
	// vector timestamp that does not dominate the stored one
	ErrVectorRegression = errors.New("vector timestamp regression")
)
