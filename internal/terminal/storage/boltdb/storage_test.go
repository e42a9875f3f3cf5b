package boltdb

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/kassasync/internal/models"
	"github.com/iudanet/kassasync/internal/vclock"
)

// newTestStorage открывает временную БД для теста.
func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "terminal.db")
	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

// makeChange строит локальное изменение для тестов.
func makeChange(id string, op models.Operation, payload string, v vclock.Vector) *models.ChangeRecord {
	return &models.ChangeRecord{
		RecordID:   id,
		RecordType: models.RecordTypeProduct,
		Operation:  op,
		NodeID:     "term-1",
		Payload:    json.RawMessage(payload),
		Vector:     v,
		WallTime:   time.Now(),
	}
}

func makeStored(change *models.ChangeRecord, synced bool) *models.StoredRecord {
	return &models.StoredRecord{
		RecordID:   change.RecordID,
		RecordType: change.RecordType,
		Payload:    change.Payload,
		Vector:     change.Vector,
		Deleted:    change.Operation == models.OperationDelete,
		Synced:     synced,
		UpdatedAt:  time.Now(),
	}
}

func TestNew_Success(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "terminal.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что бакеты существуют
	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketRecords, bucketOutbox, bucketOutboxFailed, bucketConflicts, bucketMetadata, bucketAuth} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	invalidPath := string([]byte{0})
	store, err := New(context.Background(), invalidPath)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestEnsureNodeID_Stable(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "terminal.db")
	ctx := context.Background()

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	nodeID, err := store.EnsureNodeID(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, nodeID)

	again, err := store.EnsureNodeID(ctx)
	require.NoError(t, err)
	assert.Equal(t, nodeID, again)

	// Идентификатор переживает переоткрытие БД
	require.NoError(t, store.Close())
	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	afterReopen, err := store.EnsureNodeID(ctx)
	require.NoError(t, err)
	assert.Equal(t, nodeID, afterReopen)
}

func TestSyncCursor_Monotonic(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	cursor, err := store.GetSyncCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), cursor)

	require.NoError(t, store.AdvanceSyncCursor(ctx, 10))
	cursor, err = store.GetSyncCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), cursor)

	// Попытка регрессии игнорируется
	require.NoError(t, store.AdvanceSyncCursor(ctx, 4))
	cursor, err = store.GetSyncCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), cursor)

	require.NoError(t, store.AdvanceSyncCursor(ctx, 11))
	cursor, err = store.GetSyncCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(11), cursor)
}
