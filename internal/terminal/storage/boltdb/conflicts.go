package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/kassasync/internal/models"
	"github.com/iudanet/kassasync/internal/terminal/storage"
)

// SaveConflict атомарно сохраняет обнаруженный конфликт и продвигает
// курсор синхронизации до seq. Повторная доставка того же конкурентного
// изменения не создает второй конфликт.
func (s *Storage) SaveConflict(ctx context.Context, conflict *models.PendingConflict, seq int64) (bool, error) {
	if s.db == nil {
		return false, storage.ErrStorageClosed
	}

	created := false

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketConflicts)
		key := []byte(conflict.Key())

		if data := bucket.Get(key); data != nil {
			existing := &models.PendingConflict{}
			if err := json.Unmarshal(data, existing); err != nil {
				return fmt.Errorf("failed to unmarshal conflict: %w", err)
			}
			// Уже есть неразрешенный конфликт - не дублируем, но курсор
			// продвигаем: репликация этот seq обработала
			if existing.Resolution == models.ResolutionUnresolved {
				return advanceCursor(tx, seq)
			}
		}

		data, err := json.Marshal(conflict)
		if err != nil {
			return fmt.Errorf("failed to marshal conflict: %w", err)
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save conflict: %w", err)
		}

		created = true
		return advanceCursor(tx, seq)
	})
	if err != nil {
		return false, fmt.Errorf("conflict transaction failed: %w", err)
	}

	return created, nil
}

// GetConflict returns the conflict for the given record
func (s *Storage) GetConflict(ctx context.Context, rt models.RecordType, id string) (*models.PendingConflict, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var conflict *models.PendingConflict

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketConflicts).Get([]byte(models.RecordKey(rt, id)))
		if data == nil {
			return storage.ErrConflictNotFound
		}

		conflict = &models.PendingConflict{}
		if err := json.Unmarshal(data, conflict); err != nil {
			return fmt.Errorf("failed to unmarshal conflict: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return conflict, nil
}

// ListConflicts returns all unresolved conflicts
func (s *Storage) ListConflicts(ctx context.Context) ([]*models.PendingConflict, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var conflicts []*models.PendingConflict

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketConflicts).ForEach(func(k, v []byte) error {
			conflict := &models.PendingConflict{}
			if err := json.Unmarshal(v, conflict); err != nil {
				return fmt.Errorf("failed to unmarshal conflict %s: %w", k, err)
			}
			if conflict.Resolution == models.ResolutionUnresolved {
				conflicts = append(conflicts, conflict)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list conflicts: %w", err)
	}

	return conflicts, nil
}

// ApplyResolution атомарно применяет разрешение конфликта: конфликт
// помечается разрешенным, выбранное состояние записывается в хранилище
// и ставится в outbox как новая локальная мутация.
func (s *Storage) ApplyResolution(ctx context.Context, conflict *models.PendingConflict,
	rec *models.StoredRecord, change *models.ChangeRecord,
) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(conflict)
		if err != nil {
			return fmt.Errorf("failed to marshal conflict: %w", err)
		}

		if err := tx.Bucket(bucketConflicts).Put([]byte(conflict.Key()), data); err != nil {
			return fmt.Errorf("failed to save resolved conflict: %w", err)
		}

		return putLocalChange(tx, rec, change)
	})
	if err != nil {
		return fmt.Errorf("resolution transaction failed: %w", err)
	}

	return nil
}
