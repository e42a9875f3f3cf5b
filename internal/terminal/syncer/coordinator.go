package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/iudanet/kassasync/internal/models"
	httpapi "github.com/iudanet/kassasync/internal/terminal/api"
	"github.com/iudanet/kassasync/internal/terminal/conflict"
	"github.com/iudanet/kassasync/internal/terminal/storage"
	"github.com/iudanet/kassasync/internal/vclock"
	"github.com/iudanet/kassasync/pkg/api"
)

// ErrCycleInProgress возвращается, когда цикл синхронизации уже выполняется.
// Планировщик трактует эту ошибку как no-op.
var ErrCycleInProgress = errors.New("sync cycle already in progress")

// State состояние координатора синхронизации
type State int32

const (
	// StateIdle синхронизация не выполняется
	StateIdle State = iota
	// StatePushing отправка локальных изменений на сервер
	StatePushing
	// StatePulling загрузка серверного журнала
	StatePulling
	// StateApplying применение загруженных изменений
	StateApplying
)

// String возвращает текстовое представление состояния.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePushing:
		return "pushing"
	case StatePulling:
		return "pulling"
	case StateApplying:
		return "applying"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}

// TokenSource выдает действующий access token, при необходимости обновляя
// его по refresh token. Реализуется auth-сервисом.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Config параметры координатора
type Config struct {
	// PageLimit размер страницы pull-запроса
	PageLimit int
	// MaxAttempts предел попыток отправки одной записи outbox,
	// после которого запись уходит в набор постоянных отказов
	MaxAttempts int
	// BackoffCap верхняя граница экспоненциальной задержки повторов
	BackoffCap time.Duration
	// RemoteWins автоматически разрешать конкурентные изменения в пользу
	// серверной стороны вместо создания конфликта. По умолчанию выключено:
	// молчаливая перезапись локальных данных недопустима.
	RemoteWins bool
}

// DefaultConfig возвращает параметры по умолчанию
func DefaultConfig() Config {
	return Config{
		PageLimit:   100,
		MaxAttempts: 5,
		BackoffCap:  64 * time.Second,
	}
}

// CycleResult итоги одного цикла синхронизации
type CycleResult struct {
	Pushed       int   // подтвержденных сервером записей outbox
	PushFailed   int   // записей, получивших отказ или ошибку транспорта
	Pulled       int   // загруженных из серверного журнала записей
	Applied      int   // примененных к локальному хранилищу
	Ignored      int   // устаревших, дубликатов и собственного эха
	Conflicts    int   // новых конфликтов, ожидающих оператора
	CursorBefore int64 // курсор до цикла
	CursorAfter  int64 // курсор после цикла
}

// Coordinator выполняет полный цикл синхронизации терминала:
// push локальных изменений, затем постраничный pull серверного журнала
// с применением каждой записи через детектор конфликтов.
//
// Циклы взаимно исключены: повторный запуск во время работающего цикла
// возвращает ErrCycleInProgress.
type Coordinator struct {
	client    httpapi.ClientAPI
	records   storage.RecordStorage
	outbox    storage.OutboxStorage
	conflicts storage.ConflictStorage
	metadata  storage.MetadataStorage
	tokens    TokenSource
	logger    *slog.Logger
	cfg       Config

	mu    sync.Mutex
	state atomic.Int32
}

// NewCoordinator создает координатор синхронизации
func NewCoordinator(
	client httpapi.ClientAPI,
	records storage.RecordStorage,
	outbox storage.OutboxStorage,
	conflicts storage.ConflictStorage,
	metadata storage.MetadataStorage,
	tokens TokenSource,
	cfg Config,
	logger *slog.Logger,
) *Coordinator {
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = DefaultConfig().PageLimit
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultConfig().MaxAttempts
	}
	if cfg.BackoffCap <= 0 {
		cfg.BackoffCap = DefaultConfig().BackoffCap
	}

	return &Coordinator{
		client:    client,
		records:   records,
		outbox:    outbox,
		conflicts: conflicts,
		metadata:  metadata,
		tokens:    tokens,
		cfg:       cfg,
		logger:    logger,
	}
}

// State возвращает текущее состояние координатора
func (c *Coordinator) State() State {
	return State(c.state.Load())
}

func (c *Coordinator) setState(s State) {
	prev := State(c.state.Swap(int32(s)))
	if prev != s {
		c.logger.Debug("Sync state transition", "from", prev.String(), "to", s.String())
	}
}

// RunCycle выполняет один полный цикл синхронизации.
// Если цикл уже выполняется, возвращает ErrCycleInProgress.
func (c *Coordinator) RunCycle(ctx context.Context) (*CycleResult, error) {
	if !c.mu.TryLock() {
		return nil, ErrCycleInProgress
	}
	defer c.mu.Unlock()
	defer c.setState(StateIdle)

	nodeID, err := c.metadata.EnsureNodeID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get node id: %w", err)
	}

	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}

	result := &CycleResult{}
	if result.CursorBefore, err = c.metadata.GetSyncCursor(ctx); err != nil {
		return nil, fmt.Errorf("failed to read sync cursor: %w", err)
	}

	c.logger.Info("Starting sync cycle", "node_id", nodeID, "cursor", result.CursorBefore)

	if err := c.push(ctx, token, result); err != nil {
		return result, err
	}

	if err := c.pullAndApply(ctx, token, nodeID, result); err != nil {
		return result, err
	}

	if result.CursorAfter, err = c.metadata.GetSyncCursor(ctx); err != nil {
		return result, fmt.Errorf("failed to read sync cursor: %w", err)
	}

	c.logger.Info("Sync cycle finished",
		"pushed", result.Pushed,
		"push_failed", result.PushFailed,
		"pulled", result.Pulled,
		"applied", result.Applied,
		"ignored", result.Ignored,
		"conflicts", result.Conflicts,
		"cursor", result.CursorAfter)

	return result, nil
}

// push отправляет готовые к отправке записи outbox одним пакетом и
// разбирает постатусный ответ сервера.
func (c *Coordinator) push(ctx context.Context, token string, result *CycleResult) error {
	c.setState(StatePushing)

	now := time.Now()
	entries, err := c.outbox.DueEntries(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to load due outbox entries: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}

	req := api.PushRequest{Changes: make([]api.ChangeRecord, 0, len(entries))}
	for _, entry := range entries {
		req.Changes = append(req.Changes, toWireChange(entry.Change))
	}

	resp, err := c.client.PushChanges(ctx, token, req)
	if err != nil {
		// Транспортная ошибка: каждая запись пакета получает одну
		// неудачную попытку, отправка уйдет на следующий цикл
		result.PushFailed += len(entries)
		for _, entry := range entries {
			c.scoreFailure(ctx, entry, err.Error(), now)
		}

		var statusErr *httpapi.StatusError
		if errors.As(err, &statusErr) {
			// Сервер ответил - связь есть, pull имеет смысл
			c.logger.Warn("Push rejected by server", "error", err)
			return nil
		}

		// Сервер недоступен, продолжать цикл бессмысленно
		return fmt.Errorf("push failed: %w", err)
	}

	if len(resp.Statuses) != len(entries) {
		return fmt.Errorf("push response mismatch: sent %d, got %d statuses", len(entries), len(resp.Statuses))
	}

	for i, status := range resp.Statuses {
		entry := entries[i]

		switch {
		case status.Accepted:
			if err := c.outbox.MarkSynced(ctx, entry.Change); err != nil &&
				!errors.Is(err, storage.ErrOutboxEntryNotFound) {
				return fmt.Errorf("failed to ack outbox entry %s: %w", entry.Change.Key(), err)
			}
			result.Pushed++

		case status.Retryable:
			result.PushFailed++
			c.scoreFailure(ctx, entry, status.Message, now)

		default:
			// Постоянный отказ: повтор бесполезен, ждем оператора
			result.PushFailed++
			if err := c.outbox.MoveToFailed(ctx, entry.Change.Key(), status.Message); err != nil {
				c.logger.Error("Failed to move entry to failed set",
					"record", entry.Change.Key(), "error", err)
			}
			c.logger.Warn("Change permanently rejected",
				"record", entry.Change.Key(),
				"reason", status.Reason,
				"message", status.Message)
		}
	}

	return nil
}

// scoreFailure фиксирует неудачную попытку отправки: либо назначает
// следующую попытку с экспоненциальной задержкой, либо перемещает запись
// в набор постоянных отказов при исчерпании лимита.
func (c *Coordinator) scoreFailure(ctx context.Context, entry *models.OutboxEntry, errText string, now time.Time) {
	key := entry.Change.Key()

	if entry.AttemptCount+1 >= c.cfg.MaxAttempts {
		if err := c.outbox.MoveToFailed(ctx, key, errText); err != nil {
			c.logger.Error("Failed to move entry to failed set", "record", key, "error", err)
		}
		c.logger.Warn("Change exhausted retry attempts", "record", key, "attempts", entry.AttemptCount+1)
		return
	}

	// AttemptCount еще не учитывает текущую неудачу, так что это
	// 0-индексированный номер только что провалившейся попытки
	next := now.Add(backoffDelay(entry.AttemptCount, c.cfg.BackoffCap))
	if err := c.outbox.RecordFailure(ctx, key, errText, next); err != nil {
		c.logger.Error("Failed to record push failure", "record", key, "error", err)
	}
}

// backoffDelay возвращает задержку min(2^attempt, cap) секунд.
func backoffDelay(attempt int, maxDelay time.Duration) time.Duration {
	if attempt > 30 {
		return maxDelay
	}
	d := time.Duration(1<<uint(attempt)) * time.Second
	if d > maxDelay {
		return maxDelay
	}
	return d
}

// pullAndApply постранично загружает серверный журнал после курсора и
// применяет каждую запись через детектор конфликтов.
func (c *Coordinator) pullAndApply(ctx context.Context, token, nodeID string, result *CycleResult) error {
	for {
		c.setState(StatePulling)

		since, err := c.metadata.GetSyncCursor(ctx)
		if err != nil {
			return fmt.Errorf("failed to read sync cursor: %w", err)
		}

		page, err := c.fetchPage(ctx, token, since)
		if err != nil {
			return fmt.Errorf("pull failed: %w", err)
		}

		result.Pulled += len(page.Changes)

		c.setState(StateApplying)
		for i := range page.Changes {
			// Отмена между единицами работы, но не посреди коммита
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := c.applyRemote(ctx, nodeID, page.Changes[i], result); err != nil {
				return err
			}
		}

		if !page.HasMore {
			return nil
		}
	}
}

// fetchPage запрашивает одну страницу журнала, повторяя временные сбои.
func (c *Coordinator) fetchPage(ctx context.Context, token string, since int64) (*api.PullResponse, error) {
	var page *api.PullResponse

	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		page, err = c.client.PullChanges(ctx, token, since, c.cfg.PageLimit)
		if err == nil {
			return nil
		}

		var statusErr *httpapi.StatusError
		if errors.As(err, &statusErr) && !statusErr.IsTransient() {
			return err
		}
		return retry.RetryableError(err)
	})
	if err != nil {
		return nil, err
	}

	return page, nil
}

// applyRemote применяет одну запись серверного журнала.
// Курсор продвигается для каждой записи, включая проигнорированные:
// прогресс репликации измеряется обработанными, а не примененными seq.
func (c *Coordinator) applyRemote(ctx context.Context, nodeID string, wire api.ChangeRecord, result *CycleResult) error {
	change, err := fromWireChange(wire)
	if err != nil {
		// Некорректная запись журнала: пропускаем, курсор продвигаем,
		// иначе репликация застрянет на ней навсегда
		c.logger.Error("Skipping malformed journal record", "seq", wire.Seq, "error", err)
		result.Ignored++
		return c.advanceCursor(ctx, wire.Seq)
	}

	// Собственное эхо: изменение уже отражено локально при мутации
	if change.NodeID == nodeID {
		result.Ignored++
		return c.advanceCursor(ctx, change.Seq)
	}

	local, err := c.records.GetRecord(ctx, change.RecordType, change.RecordID)
	if err != nil && !errors.Is(err, storage.ErrRecordNotFound) {
		return fmt.Errorf("failed to read local record %s: %w", change.Key(), err)
	}

	switch conflict.Classify(local, change.Vector) {
	case conflict.DecisionApply:
		if err := c.applyChange(ctx, change, change.Vector); err != nil {
			return err
		}
		result.Applied++

	case conflict.DecisionIgnore:
		result.Ignored++
		return c.advanceCursor(ctx, change.Seq)

	case conflict.DecisionConflict:
		if c.cfg.RemoteWins {
			// Политика по умолчанию remote_wins: серверное состояние
			// принимается, метка сливается, чтобы не регрессировать
			if err := c.applyChange(ctx, change, local.Vector.Merge(change.Vector)); err != nil {
				return err
			}
			result.Applied++
			return nil
		}

		created, err := c.flagConflict(ctx, local, change)
		if err != nil {
			return err
		}
		if created {
			result.Conflicts++
			c.logger.Warn("Concurrent change flagged as conflict",
				"record", change.Key(), "remote_node", change.NodeID)
		}
	}

	return nil
}

// applyChange записывает удаленное состояние и продвигает курсор одной
// транзакцией.
func (c *Coordinator) applyChange(ctx context.Context, change *models.ChangeRecord, vec vclock.Vector) error {
	rec := &models.StoredRecord{
		RecordID:   change.RecordID,
		RecordType: change.RecordType,
		Payload:    change.Payload,
		Vector:     vec,
		Deleted:    change.Operation == models.OperationDelete,
		Synced:     true,
		UpdatedAt:  change.WallTime,
	}

	if err := c.records.ApplyRemoteChange(ctx, rec, change.Seq); err != nil {
		return fmt.Errorf("failed to apply remote change %s: %w", change.Key(), err)
	}

	return nil
}

// flagConflict сохраняет конкурентную пару как конфликт для оператора.
func (c *Coordinator) flagConflict(ctx context.Context, local *models.StoredRecord, change *models.ChangeRecord) (bool, error) {
	pending := &models.PendingConflict{
		RecordID:      change.RecordID,
		RecordType:    change.RecordType,
		LocalPayload:  local.Payload,
		LocalVector:   local.Vector,
		LocalDeleted:  local.Deleted,
		RemotePayload: change.Payload,
		RemoteVector:  change.Vector,
		RemoteDeleted: change.Operation == models.OperationDelete,
		RemoteNodeID:  change.NodeID,
		RemoteSeq:     change.Seq,
		Resolution:    models.ResolutionUnresolved,
		DetectedAt:    time.Now(),
	}

	created, err := c.conflicts.SaveConflict(ctx, pending, change.Seq)
	if err != nil {
		return false, fmt.Errorf("failed to save conflict %s: %w", change.Key(), err)
	}

	return created, nil
}

func (c *Coordinator) advanceCursor(ctx context.Context, seq int64) error {
	if err := c.metadata.AdvanceSyncCursor(ctx, seq); err != nil {
		return fmt.Errorf("failed to advance sync cursor: %w", err)
	}
	return nil
}
