package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/iudanet/kassasync/internal/terminal/storage"
)

const (
	keyNodeID     = "node_id"
	keySyncCursor = "sync_cursor"
)

// EnsureNodeID возвращает стабильный идентификатор терминала.
// При первом запуске генерирует UUID и сохраняет его - идентификатор
// переживает рестарты и используется как ключ векторной метки.
func (s *Storage) EnsureNodeID(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var nodeID string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)

		if data := bucket.Get([]byte(keyNodeID)); data != nil {
			nodeID = string(data)
			return nil
		}

		nodeID = uuid.New().String()
		if err := bucket.Put([]byte(keyNodeID), []byte(nodeID)); err != nil {
			return fmt.Errorf("failed to save node id: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to ensure node id: %w", err)
	}

	return nodeID, nil
}

// GetSyncCursor возвращает наибольший серверный seq, примененный локально.
// Возвращает 0, если синхронизация еще не выполнялась.
func (s *Storage) GetSyncCursor(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var cursor int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		cursor = readCursor(tx)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get sync cursor: %w", err)
	}

	return cursor, nil
}

// AdvanceSyncCursor продвигает курсор до seq. Меньшие и равные значения
// игнорируются - курсор монотонно не убывает.
func (s *Storage) AdvanceSyncCursor(ctx context.Context, seq int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return advanceCursor(tx, seq)
	})
	if err != nil {
		return fmt.Errorf("failed to advance sync cursor: %w", err)
	}

	return nil
}

// readCursor читает курсор внутри открытой транзакции.
func readCursor(tx *bbolt.Tx) int64 {
	data := tx.Bucket(bucketMetadata).Get([]byte(keySyncCursor))
	if data == nil {
		return 0
	}
	return int64(binary.BigEndian.Uint64(data))
}

// advanceCursor продвигает курсор внутри открытой транзакции.
// Регрессия невозможна: значения меньше текущего игнорируются.
func advanceCursor(tx *bbolt.Tx, seq int64) error {
	if seq <= readCursor(tx) {
		return nil
	}

	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(seq))

	if err := tx.Bucket(bucketMetadata).Put([]byte(keySyncCursor), buf); err != nil {
		return fmt.Errorf("failed to save sync cursor: %w", err)
	}

	return nil
}
