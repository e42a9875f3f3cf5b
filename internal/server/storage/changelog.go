package storage

import (
	"context"

	"github.com/iudanet/kassasync/internal/models"
)

// ChangeLogStorage определяет интерфейс серверного журнала изменений.
// Журнал append-only: записи никогда не обновляются и не удаляются,
// а назначенный при вставке seq задает глобальный порядок репликации.
type ChangeLogStorage interface {
	// AppendChanges атомарно добавляет пакет изменений в журнал и
	// возвращает присвоенные seq в порядке записей. Либо пакет
	// добавлен целиком, либо не добавлено ничего.
	AppendChanges(ctx context.Context, changes []*models.ChangeRecord) ([]int64, error)

	// ChangesSince возвращает до limit записей с seq > since в порядке
	// возрастания seq и признак наличия следующей страницы.
	ChangesSince(ctx context.Context, since int64, limit int) ([]*models.ChangeRecord, bool, error)

	// MaxSeq возвращает наибольший присвоенный seq. 0 - журнал пуст.
	MaxSeq(ctx context.Context) (int64, error)

	// ChangeCount возвращает размер журнала. Используется метриками.
	ChangeCount(ctx context.Context) (int64, error)
}
