package conflict

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/kassasync/internal/models"
	"github.com/iudanet/kassasync/internal/vclock"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		local  *models.StoredRecord
		remote vclock.Vector
		want   Decision
	}{
		{
			name:   "no local copy is a pure insert",
			local:  nil,
			remote: vclock.Vector{"term-2": 1},
			want:   DecisionApply,
		},
		{
			name:   "remote strictly newer",
			local:  &models.StoredRecord{Vector: vclock.Vector{"term-1": 1}},
			remote: vclock.Vector{"term-1": 1, "term-2": 1},
			want:   DecisionApply,
		},
		{
			name:   "remote strictly older",
			local:  &models.StoredRecord{Vector: vclock.Vector{"term-1": 2, "term-2": 1}},
			remote: vclock.Vector{"term-1": 1},
			want:   DecisionIgnore,
		},
		{
			name:   "duplicate delivery",
			local:  &models.StoredRecord{Vector: vclock.Vector{"term-2": 3}},
			remote: vclock.Vector{"term-2": 3},
			want:   DecisionIgnore,
		},
		{
			name:   "concurrent edits",
			local:  &models.StoredRecord{Vector: vclock.Vector{"term-1": 2}},
			remote: vclock.Vector{"term-2": 1},
			want:   DecisionConflict,
		},
		{
			name: "concurrent with unsynced local edit still conflicts",
			local: &models.StoredRecord{
				Vector: vclock.Vector{"term-1": 3},
				Synced: false,
			},
			remote: vclock.Vector{"term-1": 2, "term-2": 1},
			want:   DecisionConflict,
		},
		{
			name:   "delete vs edit is an ordinary concurrent pair",
			local:  &models.StoredRecord{Vector: vclock.Vector{"term-1": 2}, Deleted: true},
			remote: vclock.Vector{"term-1": 1, "term-2": 1},
			want:   DecisionConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.local, tt.remote))
		})
	}
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "apply", DecisionApply.String())
	assert.Equal(t, "ignore", DecisionIgnore.String())
	assert.Equal(t, "conflict", DecisionConflict.String())
}
