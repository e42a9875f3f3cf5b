package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/kassasync/internal/crypto"
	httpapi "github.com/iudanet/kassasync/internal/terminal/api"
	"github.com/iudanet/kassasync/internal/terminal/storage"
	"github.com/iudanet/kassasync/internal/validation"
	pkgapi "github.com/iudanet/kassasync/pkg/api"
)

//go:generate moq -out service_mock.go . Service

// refreshSkew запас до истечения access token, после которого токен
// обновляется превентивно
const refreshSkew = 30 * time.Second

// Service определяет интерфейс сессии оператора на терминале.
type Service interface {
	// Register регистрирует нового оператора на сервере
	Register(ctx context.Context, login, password string) (*RegisterResult, error)

	// Login выполняет аутентификацию и сохраняет сессию локально
	Login(ctx context.Context, login, password string) (*LoginResult, error)

	// Logout удаляет локальную сессию. Сервер не уведомляется:
	// refresh token истечет сам.
	Logout(ctx context.Context) error

	// Session возвращает сохраненную сессию оператора
	Session(ctx context.Context) (*storage.AuthData, error)

	// IsAuthenticated проверяет наличие непросроченной сессии
	IsAuthenticated(ctx context.Context) (bool, error)

	// AccessToken возвращает действующий access token, превентивно
	// обновляя его по refresh token при приближении истечения.
	AccessToken(ctx context.Context) (string, error)
}

// service предоставляет функции авторизации оператора
type service struct {
	apiClient httpapi.ClientAPI
	authStore storage.AuthStorage
	logger    *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(apiClient httpapi.ClientAPI, authStore storage.AuthStorage, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		authStore: authStore,
		logger:    logger,
	}
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	OperatorID string // UUID оператора
	Login      string
	PublicSalt string // public salt (base64)
}

// Register регистрирует нового оператора
func (s *service) Register(ctx context.Context, login, password string) (*RegisterResult, error) {
	// Валидация входных данных
	if err := validation.ValidateLogin(login); err != nil {
		return nil, fmt.Errorf("invalid login: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	// 1. Генерируем публичную соль
	publicSaltBase64, err := crypto.GenerateSaltBase64()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	// 2. Деривируем auth_key из пароля
	authKey, err := crypto.DeriveAuthKeyFromBase64Salt(password, login, publicSaltBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to derive auth key: %w", err)
	}

	// 3. Хешируем auth_key для отправки на сервер
	authKeyHash, err := crypto.HashAuthKey(authKey)
	if err != nil {
		return nil, fmt.Errorf("failed to hash auth key: %w", err)
	}

	// 4. Отправляем запрос на регистрацию
	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Login:       login,
		AuthKeyHash: authKeyHash,
		PublicSalt:  publicSaltBase64,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("Operator registered", "login", login, "operator_id", resp.OperatorID)

	return &RegisterResult{
		OperatorID: resp.OperatorID,
		Login:      login,
		PublicSalt: publicSaltBase64,
	}, nil
}

// LoginResult содержит результат авторизации
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	Login        string
	PublicSalt   string
	ExpiresIn    int64
}

// Login выполняет аутентификацию оператора и сохраняет сессию
func (s *service) Login(ctx context.Context, login, password string) (*LoginResult, error) {
	if err := validation.ValidateLogin(login); err != nil {
		return nil, fmt.Errorf("invalid login: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	// 1. Получаем public_salt с сервера
	saltResp, err := s.apiClient.GetSalt(ctx, login)
	if err != nil {
		return nil, fmt.Errorf("failed to get salt: %w", err)
	}

	// 2. Деривируем auth_key и хешируем его
	authKey, err := crypto.DeriveAuthKeyFromBase64Salt(password, login, saltResp.PublicSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive auth key: %w", err)
	}

	authKeyHash, err := crypto.HashAuthKey(authKey)
	if err != nil {
		return nil, fmt.Errorf("failed to hash auth key: %w", err)
	}

	// 3. Отправляем запрос на логин
	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{
		Login:       login,
		AuthKeyHash: authKeyHash,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	// 4. Сохраняем сессию локально
	if err := s.saveSession(ctx, login, saltResp.PublicSalt, resp); err != nil {
		return nil, err
	}

	s.logger.Info("Operator logged in", "login", login)

	return &LoginResult{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		Login:        login,
		PublicSalt:   saltResp.PublicSalt,
	}, nil
}

// Logout удаляет локальную сессию оператора
func (s *service) Logout(ctx context.Context) error {
	if err := s.authStore.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}
	return nil
}

// Session возвращает сохраненную сессию оператора
func (s *service) Session(ctx context.Context) (*storage.AuthData, error) {
	return s.authStore.GetAuth(ctx)
}

// IsAuthenticated проверяет наличие непросроченной сессии
func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	return s.authStore.IsAuthenticated(ctx)
}

// AccessToken возвращает действующий access token. Если токен истек или
// вот-вот истечет, он обновляется по refresh token и сессия
// перезаписывается.
func (s *service) AccessToken(ctx context.Context) (string, error) {
	auth, err := s.authStore.GetAuth(ctx)
	if err != nil {
		return "", fmt.Errorf("not authenticated: %w", err)
	}

	if time.Now().Add(refreshSkew).Unix() < auth.ExpiresAt {
		return auth.AccessToken, nil
	}

	resp, err := s.apiClient.Refresh(ctx, pkgapi.RefreshRequest{RefreshToken: auth.RefreshToken})
	if err != nil {
		return "", fmt.Errorf("token refresh failed: %w", err)
	}

	auth.AccessToken = resp.AccessToken
	auth.RefreshToken = resp.RefreshToken
	auth.ExpiresAt = time.Now().Unix() + resp.ExpiresIn

	if err := s.authStore.SaveAuth(ctx, auth); err != nil {
		return "", fmt.Errorf("failed to save refreshed session: %w", err)
	}

	s.logger.Debug("Access token refreshed", "login", auth.Login)

	return resp.AccessToken, nil
}

func (s *service) saveSession(ctx context.Context, login, publicSalt string, tokens *pkgapi.TokenResponse) error {
	auth := &storage.AuthData{
		Login:        login,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		PublicSalt:   publicSalt,
		ExpiresAt:    time.Now().Unix() + tokens.ExpiresIn,
	}

	if err := s.authStore.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}
