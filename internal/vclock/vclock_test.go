package vclock

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector_Increment(t *testing.T) {
	v := New()

	v1 := v.Increment("term-1")
	assert.Equal(t, uint64(1), v1.Counter("term-1"))
	assert.Equal(t, uint64(0), v.Counter("term-1"), "original vector must not change")

	v2 := v1.Increment("term-1")
	assert.Equal(t, uint64(2), v2.Counter("term-1"))
	assert.Equal(t, uint64(1), v1.Counter("term-1"), "increment must copy")
}

func TestVector_Increment_Descends(t *testing.T) {
	v := New().Increment("term-1").Increment("term-2")

	next := v.Increment("term-1")
	assert.Equal(t, After, next.Compare(v), "incremented vector must strictly descend")
	assert.Equal(t, Before, v.Compare(next))
}

func TestVector_Merge(t *testing.T) {
	a := Vector{"term-1": 3, "term-2": 1}
	b := Vector{"term-2": 5, "term-3": 2}

	merged := a.Merge(b)

	assert.Equal(t, Vector{"term-1": 3, "term-2": 5, "term-3": 2}, merged)
	assert.True(t, merged.Descends(a), "merge must dominate both inputs")
	assert.True(t, merged.Descends(b), "merge must dominate both inputs")

	// Исходные метки не изменяются
	assert.Equal(t, Vector{"term-1": 3, "term-2": 1}, a)
	assert.Equal(t, Vector{"term-2": 5, "term-3": 2}, b)
}

func TestVector_Compare(t *testing.T) {
	tests := []struct {
		name     string
		a        Vector
		b        Vector
		expected Ordering
	}{
		{
			name:     "empty vectors are equal",
			a:        New(),
			b:        New(),
			expected: Equal,
		},
		{
			name:     "identical vectors",
			a:        Vector{"t1": 2, "t2": 1},
			b:        Vector{"t1": 2, "t2": 1},
			expected: Equal,
		},
		{
			name:     "strictly dominated",
			a:        Vector{"t1": 1},
			b:        Vector{"t1": 2},
			expected: Before,
		},
		{
			name:     "dominated with missing entry",
			a:        Vector{"t1": 1},
			b:        Vector{"t1": 1, "t2": 1},
			expected: Before,
		},
		{
			name:     "dominating",
			a:        Vector{"t1": 3, "t2": 2},
			b:        Vector{"t1": 3, "t2": 1},
			expected: After,
		},
		{
			name:     "concurrent single entries",
			a:        Vector{"t1": 1},
			b:        Vector{"t2": 1},
			expected: Concurrent,
		},
		{
			name:     "concurrent crossing counters",
			a:        Vector{"t1": 2, "t2": 1},
			b:        Vector{"t1": 1, "t2": 2},
			expected: Concurrent,
		},
		{
			name:     "empty before non-empty",
			a:        New(),
			b:        Vector{"t1": 1},
			expected: Before,
		},
		{
			name:     "zero entries do not affect comparison",
			a:        Vector{"t1": 1, "t2": 0},
			b:        Vector{"t1": 1},
			expected: Equal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Compare(tt.b))
		})
	}
}

// TestVector_Compare_Antisymmetry проверяет, что для любой пары меток
// выполняется ровно одно отношение и Compare антисимметричен.
func TestVector_Compare_Antisymmetry(t *testing.T) {
	vectors := []Vector{
		New(),
		{"t1": 1},
		{"t2": 1},
		{"t1": 1, "t2": 1},
		{"t1": 2, "t2": 1},
		{"t1": 1, "t2": 2},
		{"t1": 3, "t2": 3, "t3": 1},
	}

	inverse := map[Ordering]Ordering{
		Equal:      Equal,
		Before:     After,
		After:      Before,
		Concurrent: Concurrent,
	}

	for _, a := range vectors {
		for _, b := range vectors {
			ab := a.Compare(b)
			ba := b.Compare(a)
			assert.Equal(t, inverse[ab], ba,
				"compare(%s, %s)=%s but compare(%s, %s)=%s", a, b, ab, b, a, ba)
		}
	}
}

func TestVector_JSONRoundTrip(t *testing.T) {
	v := Vector{"term-1": 5, "term-2": 2}

	data, err := json.Marshal(v)
	require.NoError(t, err)

	var decoded Vector
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, v, decoded)
	assert.Equal(t, Equal, v.Compare(decoded))
}

func TestVector_String(t *testing.T) {
	assert.Equal(t, "{}", New().String())
	assert.Equal(t, "{a:1 b:2}", Vector{"b": 2, "a": 1}.String(), "output must be sorted by node")
}

func TestOrdering_String(t *testing.T) {
	assert.Equal(t, "equal", Equal.String())
	assert.Equal(t, "before", Before.String())
	assert.Equal(t, "after", After.String())
	assert.Equal(t, "concurrent", Concurrent.String())
}
