package storage

import "context"

//go:generate moq -out metadatastorage_mock.go . MetadataStorage

// MetadataStorage определяет интерфейс служебных метаданных терминала:
// идентификатор узла и курсор синхронизации.
type MetadataStorage interface {
	// EnsureNodeID возвращает стабильный идентификатор терминала,
	// генерируя и сохраняя его при первом запуске.
	EnsureNodeID(ctx context.Context) (string, error)

	// GetSyncCursor возвращает наибольший серверный seq, успешно
	// примененный локально. 0 - синхронизация еще не выполнялась.
	GetSyncCursor(ctx context.Context) (int64, error)

	// AdvanceSyncCursor продвигает курсор до seq. Значение меньше или
	// равное текущему игнорируется - курсор монотонно не убывает.
	AdvanceSyncCursor(ctx context.Context, seq int64) error
}
