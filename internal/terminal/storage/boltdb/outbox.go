package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/kassasync/internal/models"
	"github.com/iudanet/kassasync/internal/terminal/storage"
	"github.com/iudanet/kassasync/internal/vclock"
)

// coalesceOutboxEntry добавляет изменение в outbox, схлопывая его с уже
// ожидающей записью той же сущности. Правила (см. контракт outbox):
//   - записи нет: создается новая
//   - ожидался insert, пришел update: остается insert с новым payload
//     (сервер еще не видел запись - update был бы отвергнут)
//   - пришел delete: заменяет любую ожидающую запись целиком
//   - иначе: ожидающая запись заменяется новым изменением
//
// Коалесцирование сбрасывает состояние ретраев: payload новый, прежние
// отказы к нему не относятся.
func coalesceOutboxEntry(tx *bbolt.Tx, key string, change *models.ChangeRecord, now time.Time) error {
	bucket := tx.Bucket(bucketOutbox)

	entry := &models.OutboxEntry{
		Change:        change,
		AttemptCount:  0,
		NextAttemptAt: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if data := bucket.Get([]byte(key)); data != nil {
		existing := &models.OutboxEntry{}
		if err := json.Unmarshal(data, existing); err != nil {
			return fmt.Errorf("failed to unmarshal outbox entry: %w", err)
		}

		// Сохраняем момент появления сущности в очереди
		entry.CreatedAt = existing.CreatedAt

		if existing.Change.Operation == models.OperationInsert &&
			change.Operation == models.OperationUpdate {
			entry.Change = change.Clone()
			entry.Change.Operation = models.OperationInsert
		}
	}

	return putOutboxEntry(bucket, key, entry)
}

// PendingEntries returns all active outbox entries ordered by creation time
func (s *Storage) PendingEntries(ctx context.Context) ([]*models.OutboxEntry, error) {
	return s.listOutbox(bucketOutbox, nil)
}

// DueEntries returns active outbox entries whose next attempt time has passed
func (s *Storage) DueEntries(ctx context.Context, now time.Time) ([]*models.OutboxEntry, error) {
	return s.listOutbox(bucketOutbox, func(e *models.OutboxEntry) bool {
		return e.Due(now)
	})
}

// PendingCount returns the number of active outbox entries
func (s *Storage) PendingCount(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var count int
	err := s.db.View(func(tx *bbolt.Tx) error {
		count = tx.Bucket(bucketOutbox).Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count outbox entries: %w", err)
	}

	return count, nil
}

// MarkSynced атомарно подтверждает доставку изменения: запись outbox
// удаляется, запись хранилища помечается синхронизированной.
//
// Если за время полета запроса локальная мутация коалесцировала в outbox
// более новый payload, подтверждение старого изменения не трогает ни
// очередь, ни флаг synced - новая версия уйдет следующим циклом.
func (s *Storage) MarkSynced(ctx context.Context, change *models.ChangeRecord) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	key := change.Key()

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrOutboxEntryNotFound
		}

		entry := &models.OutboxEntry{}
		if err := json.Unmarshal(data, entry); err != nil {
			return fmt.Errorf("failed to unmarshal outbox entry: %w", err)
		}

		// Подтверждение относится к устаревшему payload - очередь не трогаем
		if entry.Change.Vector.Compare(change.Vector) != vclock.Equal {
			return nil
		}

		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete outbox entry: %w", err)
		}

		// Помечаем запись синхронизированной, только если хранилище все
		// еще отражает именно это изменение
		rec, err := getRecord(tx, key)
		if err != nil {
			if err == storage.ErrRecordNotFound {
				return nil
			}
			return err
		}

		if rec.Vector.Compare(change.Vector) == vclock.Equal {
			rec.Synced = true
			return putRecord(tx, key, rec)
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

// RecordFailure фиксирует временный отказ отправки записи.
func (s *Storage) RecordFailure(ctx context.Context, key string, errText string, nextAttempt time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketOutbox)

		entry, err := getOutboxEntry(bucket, key)
		if err != nil {
			return err
		}

		entry.AttemptCount++
		entry.LastError = errText
		entry.NextAttemptAt = nextAttempt
		entry.UpdatedAt = time.Now()

		return putOutboxEntry(bucket, key, entry)
	})
}

// MoveToFailed перемещает запись в набор постоянных отказов.
func (s *Storage) MoveToFailed(ctx context.Context, key string, errText string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		active := tx.Bucket(bucketOutbox)

		entry, err := getOutboxEntry(active, key)
		if err != nil {
			return err
		}

		entry.AttemptCount++
		entry.LastError = errText
		entry.UpdatedAt = time.Now()

		if err := putOutboxEntry(tx.Bucket(bucketOutboxFailed), key, entry); err != nil {
			return err
		}

		if err := active.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete outbox entry: %w", err)
		}

		return nil
	})
}

// FailedEntries returns entries from the permanent-failure set
func (s *Storage) FailedEntries(ctx context.Context) ([]*models.OutboxEntry, error) {
	return s.listOutbox(bucketOutboxFailed, nil)
}

// RetryFailed возвращает запись из набора постоянных отказов в активную
// очередь со сброшенным счетчиком попыток.
func (s *Storage) RetryFailed(ctx context.Context, key string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		failed := tx.Bucket(bucketOutboxFailed)

		entry, err := getOutboxEntry(failed, key)
		if err != nil {
			return err
		}

		now := time.Now()
		entry.AttemptCount = 0
		entry.LastError = ""
		entry.NextAttemptAt = now
		entry.UpdatedAt = now

		if err := putOutboxEntry(tx.Bucket(bucketOutbox), key, entry); err != nil {
			return err
		}

		if err := failed.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete failed entry: %w", err)
		}

		return nil
	})
}

// listOutbox возвращает записи указанного bucket, опционально фильтруя,
// в порядке создания.
func (s *Storage) listOutbox(bucketName []byte, keep func(*models.OutboxEntry) bool) ([]*models.OutboxEntry, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entries []*models.OutboxEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).ForEach(func(k, v []byte) error {
			entry := &models.OutboxEntry{}
			if err := json.Unmarshal(v, entry); err != nil {
				return fmt.Errorf("failed to unmarshal outbox entry %s: %w", k, err)
			}
			if keep == nil || keep(entry) {
				entries = append(entries, entry)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list outbox entries: %w", err)
	}

	// Ключи bbolt лексикографические, порядок отправки - по времени создания
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	return entries, nil
}

func getOutboxEntry(bucket *bbolt.Bucket, key string) (*models.OutboxEntry, error) {
	data := bucket.Get([]byte(key))
	if data == nil {
		return nil, storage.ErrOutboxEntryNotFound
	}

	entry := &models.OutboxEntry{}
	if err := json.Unmarshal(data, entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal outbox entry: %w", err)
	}

	return entry, nil
}

func putOutboxEntry(bucket *bbolt.Bucket, key string, entry *models.OutboxEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal outbox entry: %w", err)
	}

	if err := bucket.Put([]byte(key), data); err != nil {
		return fmt.Errorf("failed to save outbox entry: %w", err)
	}

	return nil
}
