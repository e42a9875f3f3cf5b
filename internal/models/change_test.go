package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/kassasync/internal/vclock"
)

func validChange() *ChangeRecord {
	return &ChangeRecord{
		RecordID:   "rec-1",
		RecordType: RecordTypeProduct,
		Operation:  OperationInsert,
		NodeID:     "term-1",
		Payload:    json.RawMessage(`{"id":"rec-1","name":"cable"}`),
		Vector:     vclock.Vector{"term-1": 1},
		WallTime:   time.Now(),
	}
}

func TestChangeRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ChangeRecord)
		wantErr bool
	}{
		{
			name:    "valid insert",
			mutate:  func(c *ChangeRecord) {},
			wantErr: false,
		},
		{
			name:    "empty record id",
			mutate:  func(c *ChangeRecord) { c.RecordID = "" },
			wantErr: true,
		},
		{
			name:    "unknown record type",
			mutate:  func(c *ChangeRecord) { c.RecordType = "receipt" },
			wantErr: true,
		},
		{
			name:    "unknown operation",
			mutate:  func(c *ChangeRecord) { c.Operation = "upsert" },
			wantErr: true,
		},
		{
			name:    "empty node id",
			mutate:  func(c *ChangeRecord) { c.NodeID = "" },
			wantErr: true,
		},
		{
			name:    "empty vector",
			mutate:  func(c *ChangeRecord) { c.Vector = nil },
			wantErr: true,
		},
		{
			name: "empty payload on update",
			mutate: func(c *ChangeRecord) {
				c.Operation = OperationUpdate
				c.Payload = nil
			},
			wantErr: true,
		},
		{
			name: "delete without payload is valid",
			mutate: func(c *ChangeRecord) {
				c.Operation = OperationDelete
				c.Payload = nil
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validChange()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChangeRecord_Key(t *testing.T) {
	c := validChange()
	assert.Equal(t, "product/rec-1", c.Key())
	assert.Equal(t, c.Key(), RecordKey(RecordTypeProduct, "rec-1"))
}

func TestChangeRecord_Clone(t *testing.T) {
	c := validChange()
	clone := c.Clone()

	require.Equal(t, c, clone)

	// Изменение клона не должно затрагивать оригинал
	clone.Payload[0] = 'X'
	clone.Vector["term-2"] = 7
	assert.NotEqual(t, c.Payload, clone.Payload)
	assert.Equal(t, uint64(0), c.Vector.Counter("term-2"))
}

func TestOutboxEntry_Due(t *testing.T) {
	now := time.Now()
	entry := &OutboxEntry{Change: validChange(), NextAttemptAt: now.Add(30 * time.Second)}

	assert.False(t, entry.Due(now))
	assert.True(t, entry.Due(now.Add(30*time.Second)))
	assert.True(t, entry.Due(now.Add(time.Minute)))
}

func TestResolution_Valid(t *testing.T) {
	assert.True(t, ResolutionLocalWins.Valid())
	assert.True(t, ResolutionRemoteWins.Valid())
	assert.True(t, ResolutionMerged.Valid())
	assert.False(t, ResolutionUnresolved.Valid(), "unresolved is a state, not a command")
	assert.False(t, Resolution("discard").Valid())
}
