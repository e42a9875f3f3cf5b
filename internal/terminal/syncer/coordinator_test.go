package syncer

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/kassasync/internal/models"
	httpapi "github.com/iudanet/kassasync/internal/terminal/api"
	"github.com/iudanet/kassasync/internal/terminal/storage"
	"github.com/iudanet/kassasync/internal/vclock"
	"github.com/iudanet/kassasync/pkg/api"
)

const testNodeID = "term-1"

type staticTokens struct{}

func (staticTokens) AccessToken(ctx context.Context) (string, error) {
	return "test-token", nil
}

// fixture собирает координатор на моках. Мутабельные поля задают
// поведение, моки пишут вызовы сами.
type fixture struct {
	client    *httpapi.ClientAPIMock
	records   *storage.RecordStorageMock
	outbox    *storage.OutboxStorageMock
	conflicts *storage.ConflictStorageMock
	metadata  *storage.MetadataStorageMock

	mu     sync.Mutex
	cursor int64
	due    []*models.OutboxEntry
	local  map[string]*models.StoredRecord
}

func newFixture() *fixture {
	f := &fixture{local: make(map[string]*models.StoredRecord)}

	f.client = &httpapi.ClientAPIMock{
		PushChangesFunc: func(ctx context.Context, token string, req api.PushRequest) (*api.PushResponse, error) {
			statuses := make([]api.RecordStatus, len(req.Changes))
			for i, ch := range req.Changes {
				statuses[i] = api.RecordStatus{RecordID: ch.RecordID, RecordType: ch.RecordType, Accepted: true, Seq: int64(i + 1)}
			}
			return &api.PushResponse{Statuses: statuses}, nil
		},
		PullChangesFunc: func(ctx context.Context, token string, since int64, limit int) (*api.PullResponse, error) {
			return &api.PullResponse{MaxSeq: since}, nil
		},
	}

	f.records = &storage.RecordStorageMock{
		GetRecordFunc: func(ctx context.Context, rt models.RecordType, id string) (*models.StoredRecord, error) {
			rec, ok := f.local[models.RecordKey(rt, id)]
			if !ok {
				return nil, storage.ErrRecordNotFound
			}
			return rec, nil
		},
		ApplyRemoteChangeFunc: func(ctx context.Context, rec *models.StoredRecord, seq int64) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.local[models.RecordKey(rec.RecordType, rec.RecordID)] = rec
			if seq > f.cursor {
				f.cursor = seq
			}
			return nil
		},
	}

	f.outbox = &storage.OutboxStorageMock{
		DueEntriesFunc: func(ctx context.Context, now time.Time) ([]*models.OutboxEntry, error) {
			return f.due, nil
		},
		MarkSyncedFunc: func(ctx context.Context, change *models.ChangeRecord) error {
			return nil
		},
		RecordFailureFunc: func(ctx context.Context, key, errText string, nextAttempt time.Time) error {
			return nil
		},
		MoveToFailedFunc: func(ctx context.Context, key, errText string) error {
			return nil
		},
	}

	f.conflicts = &storage.ConflictStorageMock{
		SaveConflictFunc: func(ctx context.Context, conflict *models.PendingConflict, seq int64) (bool, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			if seq > f.cursor {
				f.cursor = seq
			}
			return true, nil
		},
	}

	f.metadata = &storage.MetadataStorageMock{
		EnsureNodeIDFunc: func(ctx context.Context) (string, error) {
			return testNodeID, nil
		},
		GetSyncCursorFunc: func(ctx context.Context) (int64, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			return f.cursor, nil
		},
		AdvanceSyncCursorFunc: func(ctx context.Context, seq int64) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			if seq > f.cursor {
				f.cursor = seq
			}
			return nil
		},
	}

	return f
}

func (f *fixture) coordinator(cfg Config) *Coordinator {
	return NewCoordinator(f.client, f.records, f.outbox, f.conflicts, f.metadata,
		staticTokens{}, cfg, slog.Default())
}

func dueEntry(id string, attempts int, v vclock.Vector) *models.OutboxEntry {
	return &models.OutboxEntry{
		Change: &models.ChangeRecord{
			RecordID:   id,
			RecordType: models.RecordTypeProduct,
			Operation:  models.OperationInsert,
			NodeID:     testNodeID,
			Payload:    json.RawMessage(`{"id":"` + id + `"}`),
			Vector:     v,
			WallTime:   time.Now(),
		},
		AttemptCount: attempts,
	}
}

func wireChange(id, node string, seq int64, v map[string]uint64) api.ChangeRecord {
	return api.ChangeRecord{
		RecordID:   id,
		RecordType: "product",
		Operation:  "update",
		NodeID:     node,
		Payload:    json.RawMessage(`{"id":"` + id + `"}`),
		Vector:     v,
		Seq:        seq,
		WallTime:   time.Now(),
	}
}

func TestRunCycle_PushAccepted(t *testing.T) {
	f := newFixture()
	f.due = []*models.OutboxEntry{
		dueEntry("p1", 0, vclock.Vector{testNodeID: 1}),
		dueEntry("p2", 0, vclock.Vector{testNodeID: 2}),
	}

	result, err := f.coordinator(DefaultConfig()).RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Pushed)
	assert.Zero(t, result.PushFailed)
	assert.Len(t, f.outbox.MarkSyncedCalls(), 2)
}

func TestRunCycle_TransientRejectSchedulesBackoff(t *testing.T) {
	f := newFixture()
	f.due = []*models.OutboxEntry{dueEntry("p1", 0, vclock.Vector{testNodeID: 1})}
	f.client.PushChangesFunc = func(ctx context.Context, token string, req api.PushRequest) (*api.PushResponse, error) {
		return &api.PushResponse{Statuses: []api.RecordStatus{
			{RecordID: "p1", RecordType: "product", Reason: api.RejectReasonStorage, Message: "db busy", Retryable: true},
		}}, nil
	}

	before := time.Now()
	result, err := f.coordinator(DefaultConfig()).RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.PushFailed)
	require.Len(t, f.outbox.RecordFailureCalls(), 1)

	// Первая неудача (попытка 0): следующая попытка через 2^0 = 1 секунду
	call := f.outbox.RecordFailureCalls()[0]
	assert.Equal(t, "product/p1", call.Key)
	assert.WithinDuration(t, before.Add(1*time.Second), call.NextAttempt, 500*time.Millisecond)
}

func TestRunCycle_BackoffGrowsWithAttempts(t *testing.T) {
	f := newFixture()
	// Две попытки уже провалились: третья неудача ждет 2^2 = 4 секунды
	f.due = []*models.OutboxEntry{dueEntry("p1", 2, vclock.Vector{testNodeID: 1})}
	f.client.PushChangesFunc = func(ctx context.Context, token string, req api.PushRequest) (*api.PushResponse, error) {
		return &api.PushResponse{Statuses: []api.RecordStatus{
			{RecordID: "p1", RecordType: "product", Reason: api.RejectReasonStorage, Message: "db busy", Retryable: true},
		}}, nil
	}

	before := time.Now()
	_, err := f.coordinator(DefaultConfig()).RunCycle(context.Background())
	require.NoError(t, err)

	require.Len(t, f.outbox.RecordFailureCalls(), 1)
	call := f.outbox.RecordFailureCalls()[0]
	assert.WithinDuration(t, before.Add(4*time.Second), call.NextAttempt, 500*time.Millisecond)
}

func TestRunCycle_PermanentRejectMovesToFailed(t *testing.T) {
	f := newFixture()
	f.due = []*models.OutboxEntry{dueEntry("p1", 0, vclock.Vector{testNodeID: 1})}
	f.client.PushChangesFunc = func(ctx context.Context, token string, req api.PushRequest) (*api.PushResponse, error) {
		return &api.PushResponse{Statuses: []api.RecordStatus{
			{RecordID: "p1", RecordType: "product", Reason: api.RejectReasonValidation, Message: "bad payload"},
		}}, nil
	}

	result, err := f.coordinator(DefaultConfig()).RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.PushFailed)
	require.Len(t, f.outbox.MoveToFailedCalls(), 1)
	assert.Empty(t, f.outbox.RecordFailureCalls())
}

func TestRunCycle_AttemptCapExhausted(t *testing.T) {
	f := newFixture()
	// Четыре попытки уже были, пятая неудача исчерпывает лимит
	f.due = []*models.OutboxEntry{dueEntry("p1", 4, vclock.Vector{testNodeID: 1})}
	f.client.PushChangesFunc = func(ctx context.Context, token string, req api.PushRequest) (*api.PushResponse, error) {
		return &api.PushResponse{Statuses: []api.RecordStatus{
			{RecordID: "p1", RecordType: "product", Reason: api.RejectReasonStorage, Message: "db busy", Retryable: true},
		}}, nil
	}

	_, err := f.coordinator(DefaultConfig()).RunCycle(context.Background())
	require.NoError(t, err)

	require.Len(t, f.outbox.MoveToFailedCalls(), 1)
	assert.Empty(t, f.outbox.RecordFailureCalls())
}

func TestRunCycle_ConnectivityFailureAbortsCycle(t *testing.T) {
	f := newFixture()
	f.due = []*models.OutboxEntry{dueEntry("p1", 0, vclock.Vector{testNodeID: 1})}
	f.client.PushChangesFunc = func(ctx context.Context, token string, req api.PushRequest) (*api.PushResponse, error) {
		return nil, errors.New("dial tcp: connection refused")
	}

	_, err := f.coordinator(DefaultConfig()).RunCycle(context.Background())
	require.Error(t, err)

	// Сервер недоступен - pull не выполняется, но попытка засчитана
	assert.Empty(t, f.client.PullChangesCalls())
	assert.Len(t, f.outbox.RecordFailureCalls(), 1)
}

func TestRunCycle_ServerErrorStillPulls(t *testing.T) {
	f := newFixture()
	f.due = []*models.OutboxEntry{dueEntry("p1", 0, vclock.Vector{testNodeID: 1})}
	f.client.PushChangesFunc = func(ctx context.Context, token string, req api.PushRequest) (*api.PushResponse, error) {
		return nil, &httpapi.StatusError{StatusCode: 503, Message: "maintenance"}
	}

	result, err := f.coordinator(DefaultConfig()).RunCycle(context.Background())
	require.NoError(t, err)

	// Сервер ответил - связь есть, pull имеет смысл
	assert.Equal(t, 1, result.PushFailed)
	assert.NotEmpty(t, f.client.PullChangesCalls())
}

func TestRunCycle_SelfEchoAdvancesCursor(t *testing.T) {
	f := newFixture()
	f.client.PullChangesFunc = func(ctx context.Context, token string, since int64, limit int) (*api.PullResponse, error) {
		if since >= 5 {
			return &api.PullResponse{MaxSeq: since}, nil
		}
		return &api.PullResponse{
			Changes: []api.ChangeRecord{wireChange("p1", testNodeID, 5, map[string]uint64{testNodeID: 1})},
			MaxSeq:  5,
		}, nil
	}

	result, err := f.coordinator(DefaultConfig()).RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Ignored)
	assert.Zero(t, result.Applied)
	assert.Equal(t, int64(5), result.CursorAfter)
	assert.Empty(t, f.records.ApplyRemoteChangeCalls())
}

func TestRunCycle_AppliesIgnoresAndFlags(t *testing.T) {
	f := newFixture()
	f.local["product/stale"] = &models.StoredRecord{
		RecordID: "stale", RecordType: models.RecordTypeProduct,
		Vector: vclock.Vector{"term-2": 3},
	}
	f.local["product/both"] = &models.StoredRecord{
		RecordID: "both", RecordType: models.RecordTypeProduct,
		Payload: json.RawMessage(`{"id":"both","local":true}`),
		Vector:  vclock.Vector{testNodeID: 2},
	}

	served := false
	f.client.PullChangesFunc = func(ctx context.Context, token string, since int64, limit int) (*api.PullResponse, error) {
		if served {
			return &api.PullResponse{MaxSeq: since}, nil
		}
		served = true
		return &api.PullResponse{
			Changes: []api.ChangeRecord{
				wireChange("fresh", "term-2", 10, map[string]uint64{"term-2": 1}),
				wireChange("stale", "term-2", 11, map[string]uint64{"term-2": 2}),
				wireChange("both", "term-2", 12, map[string]uint64{"term-2": 7}),
			},
			MaxSeq: 12,
		}, nil
	}

	result, err := f.coordinator(DefaultConfig()).RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, result.Pulled)
	assert.Equal(t, 1, result.Applied)   // fresh: записи не было
	assert.Equal(t, 1, result.Ignored)   // stale: удаленная метка устарела
	assert.Equal(t, 1, result.Conflicts) // both: конкурентные правки

	// Курсор дошел до максимального seq, включая проигнорированные записи
	assert.Equal(t, int64(12), result.CursorAfter)

	require.Len(t, f.conflicts.SaveConflictCalls(), 1)
	saved := f.conflicts.SaveConflictCalls()[0]
	assert.Equal(t, "both", saved.Conflict.RecordID)
	assert.Equal(t, int64(12), saved.Seq)
	assert.Equal(t, "term-2", saved.Conflict.RemoteNodeID)
}

func TestRunCycle_RemoteWinsAutoResolves(t *testing.T) {
	f := newFixture()
	f.local["product/both"] = &models.StoredRecord{
		RecordID: "both", RecordType: models.RecordTypeProduct,
		Vector: vclock.Vector{testNodeID: 2},
	}

	served := false
	f.client.PullChangesFunc = func(ctx context.Context, token string, since int64, limit int) (*api.PullResponse, error) {
		if served {
			return &api.PullResponse{MaxSeq: since}, nil
		}
		served = true
		return &api.PullResponse{
			Changes: []api.ChangeRecord{wireChange("both", "term-2", 12, map[string]uint64{"term-2": 7})},
			MaxSeq:  12,
		}, nil
	}

	cfg := DefaultConfig()
	cfg.RemoteWins = true
	result, err := f.coordinator(cfg).RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Applied)
	assert.Zero(t, result.Conflicts)

	// Метка слита, чтобы не регрессировать относительно локальной
	require.Len(t, f.records.ApplyRemoteChangeCalls(), 1)
	applied := f.records.ApplyRemoteChangeCalls()[0]
	assert.Equal(t, vclock.Vector{testNodeID: 2, "term-2": 7}, applied.Rec.Vector)
}

func TestRunCycle_PagedPull(t *testing.T) {
	f := newFixture()
	f.client.PullChangesFunc = func(ctx context.Context, token string, since int64, limit int) (*api.PullResponse, error) {
		switch since {
		case 0:
			return &api.PullResponse{
				Changes: []api.ChangeRecord{wireChange("a", "term-2", 1, map[string]uint64{"term-2": 1})},
				MaxSeq:  1,
				HasMore: true,
			}, nil
		case 1:
			return &api.PullResponse{
				Changes: []api.ChangeRecord{wireChange("b", "term-2", 2, map[string]uint64{"term-2": 2})},
				MaxSeq:  2,
			}, nil
		default:
			return &api.PullResponse{MaxSeq: since}, nil
		}
	}

	result, err := f.coordinator(DefaultConfig()).RunCycle(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Pulled)
	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, int64(2), result.CursorAfter)
}

func TestRunCycle_MutualExclusion(t *testing.T) {
	f := newFixture()

	entered := make(chan struct{})
	release := make(chan struct{})
	f.client.PullChangesFunc = func(ctx context.Context, token string, since int64, limit int) (*api.PullResponse, error) {
		close(entered)
		<-release
		return &api.PullResponse{MaxSeq: since}, nil
	}

	coord := f.coordinator(DefaultConfig())

	done := make(chan error, 1)
	go func() {
		_, err := coord.RunCycle(context.Background())
		done <- err
	}()

	<-entered
	_, err := coord.RunCycle(context.Background())
	assert.ErrorIs(t, err, ErrCycleInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StateIdle, coord.State())
}

func TestRunCycle_CancellationBetweenRecords(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())

	f.client.PullChangesFunc = func(ctx context.Context, token string, since int64, limit int) (*api.PullResponse, error) {
		cancel()
		return &api.PullResponse{
			Changes: []api.ChangeRecord{wireChange("a", "term-2", 1, map[string]uint64{"term-2": 1})},
			MaxSeq:  1,
		}, nil
	}

	_, err := f.coordinator(DefaultConfig()).RunCycle(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, f.records.ApplyRemoteChangeCalls())
}

func TestBackoffDelay(t *testing.T) {
	maxDelay := 64 * time.Second

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{6, 64 * time.Second},
		{7, 64 * time.Second}, // ограничено потолком
		{40, 64 * time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, backoffDelay(tt.attempt, maxDelay), "attempt %d", tt.attempt)
	}
}
