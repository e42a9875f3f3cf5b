package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/kassasync/internal/server/handlers"
	"github.com/iudanet/kassasync/pkg/api"
)

// AuthMiddleware проверяет JWT access token в заголовке Authorization
// и кладет идентификатор и логин оператора в контекст запроса.
// Sync-эндпоинты работают только с аутентифицированным терминалом.
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header")
				sendUnauthorized(w, "missing token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				logger.Warn("Invalid Authorization header format", "header", authHeader)
				sendUnauthorized(w, "invalid token format")
				return
			}

			claims, err := handlers.ValidateAccessToken(jwtConfig, parts[1])
			if err != nil {
				logger.Warn("Invalid access token", "error", err)
				sendUnauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), handlers.OperatorIDKey, claims.OperatorID)
			ctx = context.WithValue(ctx, handlers.LoginKey, claims.Login)

			logger.Debug("Operator authenticated", "operator_id", claims.OperatorID, "login", claims.Login)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sendUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{
		Error:   http.StatusText(http.StatusUnauthorized),
		Message: message,
	})
}
