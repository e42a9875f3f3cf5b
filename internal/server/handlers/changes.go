package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/kassasync/internal/models"
	"github.com/iudanet/kassasync/internal/server/metrics"
	"github.com/iudanet/kassasync/internal/server/storage"
	"github.com/iudanet/kassasync/internal/vclock"
	"github.com/iudanet/kassasync/pkg/api"
)

// contextKey тип для ключей контекста
type contextKey string

const (
	// OperatorIDKey ключ для хранения operator_id в контексте
	OperatorIDKey contextKey = "operator_id"
	// LoginKey ключ для хранения login в контексте
	LoginKey contextKey = "login"
)

// GetOperatorID извлекает operator_id из контекста запроса
func GetOperatorID(ctx context.Context) (string, bool) {
	operatorID, ok := ctx.Value(OperatorIDKey).(string)
	return operatorID, ok
}

// GetLogin извлекает login из контекста запроса
func GetLogin(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(LoginKey).(string)
	return login, ok
}

const (
	defaultPageLimit = 100
	maxPageLimit     = 1000
)

// ChangesHandler обрабатывает push и pull журнала изменений
type ChangesHandler struct {
	logger  *slog.Logger
	storage storage.ChangeLogStorage
	metrics *metrics.Metrics
}

// NewChangesHandler создает новый handler журнала изменений
func NewChangesHandler(logger *slog.Logger, storage storage.ChangeLogStorage, m *metrics.Metrics) *ChangesHandler {
	return &ChangesHandler{
		logger:  logger,
		storage: storage,
		metrics: m,
	}
}

// HandleChanges обрабатывает GET и POST запросы журнала изменений
func (h *ChangesHandler) HandleChanges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if _, ok := GetOperatorID(ctx); !ok {
		h.logger.Error("operator ID not found in context")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handlePull(w, r)
	case http.MethodPost:
		h.handlePush(w, r)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// handlePush обрабатывает POST /api/v1/changes.
// Каждая запись пакета проверяется независимо: некорректные получают
// постоянный отказ, остальные добавляются в журнал одной транзакцией.
func (h *ChangesHandler) handlePush(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode push request", slog.Any("error", err))
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	statuses := make([]api.RecordStatus, len(req.Changes))
	valid := make([]*models.ChangeRecord, 0, len(req.Changes))
	validIdx := make([]int, 0, len(req.Changes))

	for i, wireChange := range req.Changes {
		change := fromWire(wireChange)
		statuses[i] = api.RecordStatus{
			RecordID:   change.RecordID,
			RecordType: string(change.RecordType),
		}

		if err := change.Validate(); err != nil {
			// Повтор бесполезен: терминал должен перестать слать запись
			statuses[i].Reason = api.RejectReasonValidation
			statuses[i].Message = err.Error()
			h.metrics.ChangesRejected.WithLabelValues(api.RejectReasonValidation).Inc()
			h.logger.WarnContext(ctx, "rejected invalid change",
				slog.String("record_id", change.RecordID),
				slog.Any("error", err))
			continue
		}

		valid = append(valid, change)
		validIdx = append(validIdx, i)
	}

	if len(valid) > 0 {
		seqs, err := h.storage.AppendChanges(ctx, valid)
		if err != nil {
			// Временная ошибка хранилища: весь пакет можно повторить
			h.logger.ErrorContext(ctx, "failed to append changes", slog.Any("error", err))
			for _, i := range validIdx {
				statuses[i].Reason = api.RejectReasonStorage
				statuses[i].Message = "storage temporarily unavailable"
				statuses[i].Retryable = true
				h.metrics.ChangesRejected.WithLabelValues(api.RejectReasonStorage).Inc()
			}
		} else {
			for n, i := range validIdx {
				statuses[i].Accepted = true
				statuses[i].Seq = seqs[n]
			}
			h.metrics.ChangesPushed.Add(float64(len(valid)))
		}
	}

	h.updateLogSize(ctx)

	h.logger.InfoContext(ctx, "push completed",
		slog.Int("received", len(req.Changes)),
		slog.Int("accepted", len(valid)))

	h.sendJSON(w, api.PushResponse{Statuses: statuses}, http.StatusOK)
}

// handlePull обрабатывает GET /api/v1/changes?since=N&limit=M
func (h *ChangesHandler) handlePull(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var since int64
	if sinceStr := r.URL.Query().Get("since"); sinceStr != "" {
		var err error
		since, err = strconv.ParseInt(sinceStr, 10, 64)
		if err != nil || since < 0 {
			http.Error(w, "invalid since parameter", http.StatusBadRequest)
			return
		}
	}

	limit := defaultPageLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid limit parameter", http.StatusBadRequest)
			return
		}
		limit = min(parsed, maxPageLimit)
	}

	h.metrics.PullRequests.Inc()

	changes, hasMore, err := h.storage.ChangesSince(ctx, since, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read change log", slog.Any("error", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.PullResponse{
		Changes: make([]api.ChangeRecord, 0, len(changes)),
		MaxSeq:  since,
		HasMore: hasMore,
	}
	for _, change := range changes {
		resp.Changes = append(resp.Changes, toWire(change))
		if change.Seq > resp.MaxSeq {
			resp.MaxSeq = change.Seq
		}
	}

	h.logger.DebugContext(ctx, "pull completed",
		slog.Int64("since", since),
		slog.Int("returned", len(changes)),
		slog.Bool("has_more", hasMore))

	h.sendJSON(w, resp, http.StatusOK)
}

// updateLogSize обновляет gauge размера журнала. Ошибка не критична.
func (h *ChangesHandler) updateLogSize(ctx context.Context) {
	count, err := h.storage.ChangeCount(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to count change log", slog.Any("error", err))
		return
	}
	h.metrics.ChangeLogSize.Set(float64(count))
}

func (h *ChangesHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

func fromWire(c api.ChangeRecord) *models.ChangeRecord {
	return &models.ChangeRecord{
		WallTime:   c.WallTime,
		RecordID:   c.RecordID,
		RecordType: models.RecordType(c.RecordType),
		Operation:  models.Operation(c.Operation),
		NodeID:     c.NodeID,
		Payload:    c.Payload,
		Vector:     vclock.Vector(c.Vector),
	}
}

func toWire(c *models.ChangeRecord) api.ChangeRecord {
	return api.ChangeRecord{
		WallTime:   c.WallTime,
		RecordID:   c.RecordID,
		RecordType: string(c.RecordType),
		Operation:  string(c.Operation),
		NodeID:     c.NodeID,
		Payload:    c.Payload,
		Vector:     c.Vector,
		Seq:        c.Seq,
	}
}
