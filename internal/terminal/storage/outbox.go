package storage

import (
	"context"
	"time"

	"github.com/iudanet/kassasync/internal/models"
)

//go:generate moq -out outboxstorage_mock.go . OutboxStorage

// OutboxStorage определяет интерфейс локального журнала изменений (outbox).
// Outbox одновременно является очередью ретраев: записи несут счетчик
// попыток и время следующей допустимой отправки.
//
// Инвариант: не более одной активной записи на доменную сущность.
// Коалесцирование выполняет ApplyLocalChange в RecordStorage.
type OutboxStorage interface {
	// PendingEntries возвращает все активные записи outbox в порядке создания.
	PendingEntries(ctx context.Context) ([]*models.OutboxEntry, error)

	// DueEntries возвращает записи, для которых наступило время отправки
	// (NextAttemptAt <= now), в порядке создания.
	DueEntries(ctx context.Context, now time.Time) ([]*models.OutboxEntry, error)

	// PendingCount возвращает количество активных записей outbox.
	PendingCount(ctx context.Context) (int, error)

	// MarkSynced атомарно подтверждает доставку: удаляет запись из outbox
	// и помечает запись хранилища как синхронизированную.
	// Возвращает ErrOutboxEntryNotFound, если записи нет (двойное
	// подтверждение невозможно).
	MarkSynced(ctx context.Context, change *models.ChangeRecord) error

	// RecordFailure фиксирует временный отказ: инкрементирует счетчик
	// попыток, сохраняет текст ошибки и назначает время следующей попытки.
	RecordFailure(ctx context.Context, key string, errText string, nextAttempt time.Time) error

	// MoveToFailed перемещает запись в набор постоянных отказов.
	// Запись больше не ретраится автоматически и ждет ручного вмешательства.
	MoveToFailed(ctx context.Context, key string, errText string) error

	// FailedEntries возвращает записи из набора постоянных отказов.
	FailedEntries(ctx context.Context) ([]*models.OutboxEntry, error)

	// RetryFailed возвращает запись из набора постоянных отказов в
	// активную очередь со сброшенным счетчиком попыток.
	RetryFailed(ctx context.Context, key string) error
}
