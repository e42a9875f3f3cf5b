package boltdb

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/kassasync/internal/models"
	"github.com/iudanet/kassasync/internal/terminal/storage"
	"github.com/iudanet/kassasync/internal/vclock"
)

func TestApplyLocalChange_WritesRecordAndOutbox(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	change := makeChange("p1", models.OperationInsert, `{"id":"p1","name":"cable"}`, vclock.Vector{"term-1": 1})
	require.NoError(t, store.ApplyLocalChange(ctx, makeStored(change, false), change))

	rec, err := store.GetRecord(ctx, models.RecordTypeProduct, "p1")
	require.NoError(t, err)
	assert.False(t, rec.Synced)
	assert.JSONEq(t, `{"id":"p1","name":"cable"}`, string(rec.Payload))

	entries, err := store.PendingEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.OperationInsert, entries[0].Change.Operation)
	assert.Equal(t, 0, entries[0].AttemptCount)
}

func TestApplyLocalChange_VectorRegressionRejected(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	change := makeChange("p1", models.OperationInsert, `{"id":"p1"}`, vclock.Vector{"term-1": 2})
	require.NoError(t, store.ApplyLocalChange(ctx, makeStored(change, false), change))

	// Метка, не доминирующая над сохраненной, отвергается целиком
	stale := makeChange("p1", models.OperationUpdate, `{"id":"p1","v":"old"}`, vclock.Vector{"term-2": 1})
	err := store.ApplyLocalChange(ctx, makeStored(stale, false), stale)
	require.ErrorIs(t, err, storage.ErrVectorRegression)

	// Состояние не изменилось
	rec, err := store.GetRecord(ctx, models.RecordTypeProduct, "p1")
	require.NoError(t, err)
	assert.Equal(t, vclock.Vector{"term-1": 2}, rec.Vector)
}

// TestOutbox_CoalescesRapidEdits проверяет главный контракт outbox:
// три быстрых правки одной записи в офлайне дают ровно одну запись
// очереди с payload третьей правки.
func TestOutbox_CoalescesRapidEdits(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	v1 := vclock.Vector{"term-1": 1}
	c1 := makeChange("p1", models.OperationInsert, `{"id":"p1","price":100}`, v1)
	require.NoError(t, store.ApplyLocalChange(ctx, makeStored(c1, false), c1))

	v2 := v1.Increment("term-1")
	c2 := makeChange("p1", models.OperationUpdate, `{"id":"p1","price":200}`, v2)
	require.NoError(t, store.ApplyLocalChange(ctx, makeStored(c2, false), c2))

	v3 := v2.Increment("term-1")
	c3 := makeChange("p1", models.OperationUpdate, `{"id":"p1","price":300}`, v3)
	require.NoError(t, store.ApplyLocalChange(ctx, makeStored(c3, false), c3))

	entries, err := store.PendingEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1, "должна остаться одна запись outbox")

	entry := entries[0]
	// Insert+Update коалесцируется в Insert: сервер записи еще не видел
	assert.Equal(t, models.OperationInsert, entry.Change.Operation)
	assert.JSONEq(t, `{"id":"p1","price":300}`, string(entry.Change.Payload))
	assert.Equal(t, vclock.Vector{"term-1": 3}, entry.Change.Vector)
}

func TestOutbox_DeleteReplacesPending(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	v1 := vclock.Vector{"term-1": 1}
	c1 := makeChange("p1", models.OperationInsert, `{"id":"p1"}`, v1)
	require.NoError(t, store.ApplyLocalChange(ctx, makeStored(c1, false), c1))

	v2 := v1.Increment("term-1")
	c2 := makeChange("p1", models.OperationDelete, `{"id":"p1"}`, v2)
	require.NoError(t, store.ApplyLocalChange(ctx, makeStored(c2, false), c2))

	entries, err := store.PendingEntries(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.OperationDelete, entries[0].Change.Operation)

	// Запись скрыта из списков, но сохранила метку
	list, err := store.ListRecords(ctx, models.RecordTypeProduct)
	require.NoError(t, err)
	assert.Empty(t, list)

	rec, err := store.GetRecord(ctx, models.RecordTypeProduct, "p1")
	require.NoError(t, err)
	assert.True(t, rec.Deleted)
	assert.Equal(t, vclock.Vector{"term-1": 2}, rec.Vector)
}

func TestApplyRemoteChange_AdvancesCursorAtomically(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	remote := &models.StoredRecord{
		RecordID:   "p9",
		RecordType: models.RecordTypeProduct,
		Payload:    json.RawMessage(`{"id":"p9"}`),
		Vector:     vclock.Vector{"term-2": 1},
		Synced:     true,
	}
	require.NoError(t, store.ApplyRemoteChange(ctx, remote, 42))

	rec, err := store.GetRecord(ctx, models.RecordTypeProduct, "p9")
	require.NoError(t, err)
	assert.True(t, rec.Synced)

	cursor, err := store.GetSyncCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cursor)
}

func TestListRecords_FiltersByType(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	p := makeChange("p1", models.OperationInsert, `{"id":"p1"}`, vclock.Vector{"term-1": 1})
	require.NoError(t, store.ApplyLocalChange(ctx, makeStored(p, false), p))

	c := &models.ChangeRecord{
		RecordID:   "c1",
		RecordType: models.RecordTypeCustomer,
		Operation:  models.OperationInsert,
		NodeID:     "term-1",
		Payload:    json.RawMessage(`{"id":"c1"}`),
		Vector:     vclock.Vector{"term-1": 2},
	}
	require.NoError(t, store.ApplyLocalChange(ctx, makeStored(c, false), c))

	products, err := store.ListRecords(ctx, models.RecordTypeProduct)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].RecordID)

	customers, err := store.ListRecords(ctx, models.RecordTypeCustomer)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "c1", customers[0].RecordID)
}

func TestGetRecord_NotFound(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.GetRecord(context.Background(), models.RecordTypeProduct, "missing")
	assert.ErrorIs(t, err, storage.ErrRecordNotFound)
}
