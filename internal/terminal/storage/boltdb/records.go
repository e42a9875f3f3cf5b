package boltdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/kassasync/internal/models"
	"github.com/iudanet/kassasync/internal/terminal/storage"
)

// GetRecord retrieves a stored record by type and id
func (s *Storage) GetRecord(ctx context.Context, rt models.RecordType, id string) (*models.StoredRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var rec *models.StoredRecord

	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		rec, err = getRecord(tx, models.RecordKey(rt, id))
		return err
	})
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// ListRecords returns all non-deleted records of the given type
func (s *Storage) ListRecords(ctx context.Context, rt models.RecordType) ([]*models.StoredRecord, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var records []*models.StoredRecord
	prefix := []byte(string(rt) + "/")

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketRecords).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var rec models.StoredRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("failed to unmarshal record %s: %w", k, err)
			}
			// Скрываем soft-deleted записи
			if !rec.Deleted {
				records = append(records, &rec)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	return records, nil
}

// ApplyLocalChange атомарно применяет локальную мутацию: новое состояние
// записи (Synced=false) и коалесцированная запись outbox попадают в
// хранилище одной транзакцией. Любая ошибка откатывает обе части -
// частично записанная мутация невозможна.
func (s *Storage) ApplyLocalChange(ctx context.Context, rec *models.StoredRecord, change *models.ChangeRecord) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return putLocalChange(tx, rec, change)
	})
	if err != nil {
		return fmt.Errorf("local change transaction failed: %w", err)
	}

	return nil
}

// ApplyRemoteChange атомарно применяет удаленное изменение и продвигает
// курсор синхронизации до seq.
func (s *Storage) ApplyRemoteChange(ctx context.Context, rec *models.StoredRecord, seq int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		key := models.RecordKey(rec.RecordType, rec.RecordID)

		if err := checkVectorRegression(tx, key, rec); err != nil {
			return err
		}

		if err := putRecord(tx, key, rec); err != nil {
			return err
		}

		return advanceCursor(tx, seq)
	})
	if err != nil {
		return fmt.Errorf("remote change transaction failed: %w", err)
	}

	return nil
}

// getRecord читает запись внутри открытой транзакции.
func getRecord(tx *bbolt.Tx, key string) (*models.StoredRecord, error) {
	data := tx.Bucket(bucketRecords).Get([]byte(key))
	if data == nil {
		return nil, storage.ErrRecordNotFound
	}

	rec := &models.StoredRecord{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return rec, nil
}

// putRecord сохраняет запись внутри открытой транзакции.
func putRecord(tx *bbolt.Tx, key string, rec *models.StoredRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := tx.Bucket(bucketRecords).Put([]byte(key), data); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

// checkVectorRegression следит за инвариантом хранилища: метка записи
// никогда не регрессирует. Новая метка обязана доминировать над
// существующей или совпадать с ней.
func checkVectorRegression(tx *bbolt.Tx, key string, rec *models.StoredRecord) error {
	existing, err := getRecord(tx, key)
	if err != nil {
		if err == storage.ErrRecordNotFound {
			return nil
		}
		return err
	}

	if !rec.Vector.Descends(existing.Vector) {
		return fmt.Errorf("%w: record %s, stored %s, incoming %s",
			storage.ErrVectorRegression, key, existing.Vector, rec.Vector)
	}

	return nil
}

// putLocalChange записывает состояние локальной мутации и коалесцирует
// outbox внутри открытой транзакции. Используется и при обычной мутации,
// и при разрешении конфликта.
func putLocalChange(tx *bbolt.Tx, rec *models.StoredRecord, change *models.ChangeRecord) error {
	key := models.RecordKey(rec.RecordType, rec.RecordID)

	if err := checkVectorRegression(tx, key, rec); err != nil {
		return err
	}

	if err := putRecord(tx, key, rec); err != nil {
		return err
	}

	return coalesceOutboxEntry(tx, key, change, time.Now())
}
