package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAuthKey(t *testing.T) {
	tests := []struct {
		name    string
		errMsg  string
		authKey []byte
		wantErr bool
	}{
		{
			name:    "valid key",
			authKey: []byte("operator_auth_key_0123456789abcdef"),
		},
		{
			name:    "empty key",
			authKey: []byte{},
			wantErr: true,
			errMsg:  "auth key cannot be empty",
		},
		{
			name:    "nil key",
			authKey: nil,
			wantErr: true,
			errMsg:  "auth key cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashAuthKey(tt.authKey)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Empty(t, hash)
				return
			}

			require.NoError(t, err)
			// hex-encoded SHA256: 64 символа
			assert.Regexp(t, "^[a-f0-9]{64}$", hash)
		})
	}
}

func TestHashAuthKey_Deterministic(t *testing.T) {
	// Терминал и сервер хешируют независимо: хеш обязан совпадать
	authKey := []byte("operator_auth_key")

	hash1, err := HashAuthKey(authKey)
	require.NoError(t, err)

	hash2, err := HashAuthKey(authKey)
	require.NoError(t, err)

	assert.Equal(t, hash1, hash2)
}

func TestHashAuthKey_KnownVector(t *testing.T) {
	hash, err := HashAuthKey([]byte("test"))
	require.NoError(t, err)
	// SHA256("test")
	assert.Equal(t, "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08", hash)
}

func TestVerifyAuthKey(t *testing.T) {
	validAuthKey := []byte("cashier_auth_key")
	validHash, err := HashAuthKey(validAuthKey)
	require.NoError(t, err)

	tests := []struct {
		name          string
		hashedAuthKey string
		errMsg        string
		authKey       []byte
		wantErr       bool
	}{
		{
			name:          "matching key",
			authKey:       validAuthKey,
			hashedAuthKey: validHash,
		},
		{
			name:          "wrong key",
			authKey:       []byte("wrong_auth_key"),
			hashedAuthKey: validHash,
			wantErr:       true,
			errMsg:        "invalid auth key",
		},
		{
			name:          "empty key",
			authKey:       []byte{},
			hashedAuthKey: validHash,
			wantErr:       true,
			errMsg:        "auth key cannot be empty",
		},
		{
			name:          "empty hash",
			authKey:       validAuthKey,
			hashedAuthKey: "",
			wantErr:       true,
			errMsg:        "hashed auth key cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyAuthKey(tt.authKey, tt.hashedAuthKey)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestHashAndVerify_RoundTrip(t *testing.T) {
	authKeys := [][]byte{
		[]byte("auth_key_1"),
		[]byte("another_auth_key_12345"),
		[]byte("very_long_auth_key_with_many_characters_0123456789"),
	}

	for _, authKey := range authKeys {
		t.Run(string(authKey), func(t *testing.T) {
			hash, err := HashAuthKey(authKey)
			require.NoError(t, err)

			require.NoError(t, VerifyAuthKey(authKey, hash))

			wrongKey := append(append([]byte{}, authKey...), []byte("_wrong")...)
			require.ErrorIs(t, VerifyAuthKey(wrongKey, hash), ErrAuthKeyMismatch)
		})
	}
}
