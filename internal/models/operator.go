package models

import "time"

// Operator представляет оператора (кассира), зарегистрированного на сервере.
// Аутентификация нужна только для sync API; движок синхронизации о ней
// не знает.
type Operator struct {
	ID          string    `json:"id"`            // UUID оператора
	Login       string    `json:"login"`         // уникальный логин
	AuthKeyHash string    `json:"auth_key_hash"` // SHA-256 хеш производного auth_key
	PublicSalt  string    `json:"public_salt"`   // base64 encoded salt (32 bytes)
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RefreshToken представляет refresh token оператора.
type RefreshToken struct {
	ID         string    `json:"id"`          // UUID токена
	OperatorID string    `json:"operator_id"` // владелец
	TokenHash  string    `json:"token_hash"`  // SHA-256 хеш токена
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}
