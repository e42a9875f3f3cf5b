package storage

import (
	"context"

	"github.com/iudanet/kassasync/internal/models"
)

//go:generate moq -out conflictstorage_mock.go . ConflictStorage

// ConflictStorage определяет интерфейс хранилища ожидающих конфликтов.
// Конфликт создается детектором при конкурентных изменениях и
// уничтожается только явным разрешением - никогда автоматически.
type ConflictStorage interface {
	// SaveConflict атомарно сохраняет конфликт и продвигает курсор до seq.
	// Если неразрешенный конфликт для этой записи уже существует,
	// повторная доставка не создает второй: возвращается created=false,
	// но курсор все равно продвигается.
	SaveConflict(ctx context.Context, conflict *models.PendingConflict, seq int64) (created bool, err error)

	// GetConflict возвращает конфликт по типу и идентификатору записи.
	// Возвращает ErrConflictNotFound, если конфликта нет.
	GetConflict(ctx context.Context, rt models.RecordType, id string) (*models.PendingConflict, error)

	// ListConflicts возвращает неразрешенные конфликты.
	ListConflicts(ctx context.Context) ([]*models.PendingConflict, error)

	// ApplyResolution атомарно применяет разрешение конфликта: помечает
	// конфликт разрешенным, записывает выбранное состояние и ставит его
	// в outbox как новую локальную мутацию (разрешение реплицируется на
	// остальные терминалы обычным путем).
	ApplyResolution(ctx context.Context, conflict *models.PendingConflict,
		rec *models.StoredRecord, change *models.ChangeRecord) error
}
