package storage

import (
	"context"

	"github.com/iudanet/kassasync/internal/models"
)

//go:generate moq -out recordstorage_mock.go . RecordStorage

// RecordStorage определяет интерфейс локального авторитетного хранилища
// терминала. Все мутации атомарны: составные операции (запись + outbox,
// запись + курсор) выполняются в одной транзакции, чтобы рассинхронизация
// "что отражает хранилище" и "что утверждает курсор" была невозможна.
type RecordStorage interface {
	// GetRecord возвращает запись по типу и идентификатору.
	// Возвращает ErrRecordNotFound, если записи нет.
	// Soft-deleted записи возвращаются с Deleted=true.
	GetRecord(ctx context.Context, rt models.RecordType, id string) (*models.StoredRecord, error)

	// ListRecords возвращает все неудаленные записи указанного типа.
	ListRecords(ctx context.Context, rt models.RecordType) ([]*models.StoredRecord, error)

	// ApplyLocalChange атомарно применяет локальную мутацию: записывает
	// новое состояние (Synced=false) и добавляет/коалесцирует запись
	// outbox. Это единственный путь локальной записи - мутация либо
	// полностью применена, либо полностью отвергнута.
	ApplyLocalChange(ctx context.Context, rec *models.StoredRecord, change *models.ChangeRecord) error

	// ApplyRemoteChange атомарно применяет удаленное изменение: записывает
	// новое состояние (Synced=true) и продвигает курсор синхронизации
	// до seq. Метка записи не должна регрессировать.
	ApplyRemoteChange(ctx context.Context, rec *models.StoredRecord, seq int64) error
}
