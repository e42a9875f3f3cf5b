package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// Pinger проверка доступности хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы.
// Этот эндпоинт опрашивают мониторы связности терминалов: не-200 ответ
// означает для них "сервер недоступен", и терминал продолжает копить
// изменения в outbox.
type HealthHandler struct {
	logger *slog.Logger
	db     Pinger
}

// NewHealthHandler создает handler для health check
func NewHealthHandler(logger *slog.Logger, db Pinger) *HealthHandler {
	return &HealthHandler{
		logger: logger,
		db:     db,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status string `json:"status"`
}

// Health обрабатывает GET /api/v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := http.StatusOK
	resp := HealthResponse{Status: "ok"}

	if err := h.db.Ping(ctx); err != nil {
		h.logger.ErrorContext(ctx, "health check: storage unavailable", slog.Any("error", err))
		status = http.StatusServiceUnavailable
		resp.Status = "degraded"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.ErrorContext(ctx, "failed to encode health response", slog.Any("error", err))
	}
}
