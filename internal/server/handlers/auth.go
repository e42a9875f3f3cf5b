package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/kassasync/internal/models"
	"github.com/iudanet/kassasync/internal/server/storage"
	"github.com/iudanet/kassasync/internal/validation"
	"github.com/iudanet/kassasync/pkg/api"
)

// AuthHandler обрабатывает запросы авторизации операторов
type AuthHandler struct {
	logger          *slog.Logger
	operatorStorage storage.OperatorStorage
	tokenStorage    storage.TokenStorage
	jwtConfig       JWTConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, operatorStorage storage.OperatorStorage, tokenStorage storage.TokenStorage, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:          logger,
		operatorStorage: operatorStorage,
		tokenStorage:    tokenStorage,
		jwtConfig:       jwtConfig,
	}
}

// Register обрабатывает POST /api/v1/auth/register
// Регистрация нового оператора
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateLogin(req.Login); err != nil {
		h.logger.WarnContext(ctx, "invalid login", slog.String("login", req.Login), slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.AuthKeyHash == "" {
		h.sendError(w, "auth_key_hash is required", http.StatusBadRequest)
		return
	}
	if req.PublicSalt == "" {
		h.sendError(w, "public_salt is required", http.StatusBadRequest)
		return
	}

	now := time.Now()
	operator := &models.Operator{
		ID:          uuid.New().String(),
		Login:       req.Login,
		AuthKeyHash: req.AuthKeyHash, // SHA256 хеш auth_key от терминала
		PublicSalt:  req.PublicSalt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.operatorStorage.CreateOperator(ctx, operator); err != nil {
		if errors.Is(err, storage.ErrOperatorAlreadyExists) {
			h.logger.WarnContext(ctx, "operator already exists", slog.String("login", req.Login))
			h.sendError(w, "login already taken", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create operator", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "operator registered successfully",
		slog.String("login", req.Login),
		slog.String("operator_id", operator.ID))

	resp := api.RegisterResponse{
		OperatorID: operator.ID,
		Message:    "Operator registered successfully",
	}

	h.sendJSON(w, resp, http.StatusCreated)
}

// GetSalt обрабатывает GET /api/v1/auth/salt/{login}
// Получение public_salt оператора
func (h *AuthHandler) GetSalt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	login := r.PathValue("login")
	if login == "" {
		h.sendError(w, "login is required", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateLogin(login); err != nil {
		h.logger.WarnContext(ctx, "invalid login", slog.String("login", login), slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	operator, err := h.operatorStorage.GetOperatorByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, storage.ErrOperatorNotFound) {
			h.logger.WarnContext(ctx, "operator not found", slog.String("login", login))
			h.sendError(w, "operator not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get operator", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.SaltResponse{
		PublicSalt: operator.PublicSalt,
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Login обрабатывает POST /api/v1/auth/login
// Аутентификация оператора
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateLogin(req.Login); err != nil {
		h.logger.WarnContext(ctx, "invalid login", slog.String("login", req.Login), slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.AuthKeyHash == "" {
		h.sendError(w, "auth_key_hash is required", http.StatusBadRequest)
		return
	}

	operator, err := h.operatorStorage.GetOperatorByLogin(ctx, req.Login)
	if err != nil {
		if errors.Is(err, storage.ErrOperatorNotFound) {
			h.logger.WarnContext(ctx, "login failed: operator not found", slog.String("login", req.Login))
			h.sendError(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get operator", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Терминал присылает SHA256 хеш от auth_key (детерминированный),
	// сервер сравнивает с сохраненным хешем
	if operator.AuthKeyHash != req.AuthKeyHash {
		h.logger.WarnContext(ctx, "login failed: invalid auth key", slog.String("login", req.Login))
		h.sendError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	accessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, operator.ID, operator.Login)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	refreshToken, expiresAt, err := GenerateRefreshToken(h.jwtConfig)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate refresh token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	token := &models.RefreshToken{
		ID:         uuid.New().String(),
		OperatorID: operator.ID,
		TokenHash:  HashRefreshToken(refreshToken),
		ExpiresAt:  expiresAt,
		CreatedAt:  time.Now(),
	}

	if err := h.tokenStorage.SaveRefreshToken(ctx, token); err != nil {
		h.logger.ErrorContext(ctx, "failed to save refresh token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.operatorStorage.TouchOperator(ctx, operator.ID, time.Now()); err != nil {
		// Не критичная ошибка, логируем но не прерываем
		h.logger.WarnContext(ctx, "failed to touch operator", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "operator logged in successfully",
		slog.String("login", req.Login),
		slog.String("operator_id", operator.ID))

	resp := api.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Refresh обрабатывает POST /api/v1/auth/refresh
// Обновление access token с помощью refresh token. Старый refresh
// token отзывается, выдается новая пара.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode refresh request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.RefreshToken == "" {
		h.sendError(w, "refresh_token is required", http.StatusBadRequest)
		return
	}

	tokenHash := HashRefreshToken(req.RefreshToken)

	storedToken, err := h.tokenStorage.GetRefreshToken(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			h.logger.WarnContext(ctx, "refresh token not found")
			h.sendError(w, "invalid refresh token", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get refresh token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if time.Now().After(storedToken.ExpiresAt) {
		h.logger.WarnContext(ctx, "refresh token expired", slog.String("operator_id", storedToken.OperatorID))
		h.sendError(w, "refresh token expired", http.StatusUnauthorized)
		return
	}

	operator, err := h.operatorStorage.GetOperatorByID(ctx, storedToken.OperatorID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get operator", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	newAccessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, operator.ID, operator.Login)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	newRefreshToken, newExpiresAt, err := GenerateRefreshToken(h.jwtConfig)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate refresh token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.tokenStorage.DeleteRefreshToken(ctx, tokenHash); err != nil {
		h.logger.WarnContext(ctx, "failed to delete old refresh token", slog.Any("error", err))
		// Продолжаем выполнение
	}

	newToken := &models.RefreshToken{
		ID:         uuid.New().String(),
		OperatorID: operator.ID,
		TokenHash:  HashRefreshToken(newRefreshToken),
		ExpiresAt:  newExpiresAt,
		CreatedAt:  time.Now(),
	}

	if err := h.tokenStorage.SaveRefreshToken(ctx, newToken); err != nil {
		h.logger.ErrorContext(ctx, "failed to save refresh token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "tokens refreshed successfully", slog.String("operator_id", operator.ID))

	resp := api.TokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
		ExpiresIn:    expiresIn,
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// sendJSON отправляет JSON ответ
func (h *AuthHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *AuthHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
