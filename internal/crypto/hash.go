package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

var (
	// ErrEmptyAuthKey auth_key не может быть пустым
	ErrEmptyAuthKey = errors.New("auth key cannot be empty")
	// ErrEmptyAuthKeyHash сохраненный хеш не может быть пустым
	ErrEmptyAuthKeyHash = errors.New("hashed auth key cannot be empty")
	// ErrAuthKeyMismatch auth_key не соответствует сохраненному хешу
	ErrAuthKeyMismatch = errors.New("invalid auth key")
)

// HashAuthKey возвращает hex-encoded SHA256 от auth_key.
// Хеш детерминирован: терминал и сервер считают его независимо,
// сам auth_key уже растянут через Argon2id.
func HashAuthKey(authKey []byte) (string, error) {
	if len(authKey) == 0 {
		return "", ErrEmptyAuthKey
	}

	sum := sha256.Sum256(authKey)
	return hex.EncodeToString(sum[:]), nil
}

// VerifyAuthKey сравнивает auth_key с сохраненным хешем за константное
// время. Используется при аутентификации оператора.
func VerifyAuthKey(authKey []byte, hashedAuthKey string) error {
	if len(authKey) == 0 {
		return ErrEmptyAuthKey
	}
	if hashedAuthKey == "" {
		return ErrEmptyAuthKeyHash
	}

	sum := sha256.Sum256(authKey)
	computed := hex.EncodeToString(sum[:])

	if subtle.ConstantTimeCompare([]byte(computed), []byte(hashedAuthKey)) != 1 {
		return ErrAuthKeyMismatch
	}

	return nil
}
