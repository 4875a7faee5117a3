package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileWeight(t *testing.T) {
	base := map[int]int{0: 40, 1: 30, 2: 20} // sum 90

	tests := []struct {
		name     string
		index    int
		proposed int
		accepted bool
	}{
		{"over budget by a lot", 1, 61, false},
		{"over budget by exactly the rule", 1, 60, false}, // others 60 + 60 = 120
		{"within budget", 1, 29, true},
		{"exactly at budget", 1, 40, true}, // others 60 + 40 = 100
		{"zero weight", 1, 0, true},
		{"negative weight", 1, -5, false},
		{"new index within budget", 3, 10, true},
		{"new index over budget", 3, 11, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, accepted := ReconcileWeight(base, tt.index, tt.proposed)
			assert.Equal(t, tt.accepted, accepted)
			if accepted {
				assert.Equal(t, tt.proposed, result[tt.index])
			} else {
				// Rejection keeps the mapping unchanged.
				assert.Equal(t, map[int]int{0: 40, 1: 30, 2: 20}, result)
			}
			// The input map is never mutated either way.
			assert.Equal(t, map[int]int{0: 40, 1: 30, 2: 20}, base)
		})
	}
}

func TestReconcileWeight_AcceptReturnsCopy(t *testing.T) {
	base := map[int]int{0: 50}
	updated, accepted := ReconcileWeight(base, 0, 60)
	require.True(t, accepted)

	updated[0] = 99
	assert.Equal(t, 50, base[0])
}

func TestSumWeights(t *testing.T) {
	assert.Equal(t, 0, SumWeights(nil))
	assert.Equal(t, 0, SumWeights(map[int]int{}))
	assert.Equal(t, 90, SumWeights(map[int]int{0: 40, 1: 30, 2: 20}))
}

func TestGroupValid(t *testing.T) {
	assert.True(t, GroupValid(map[int]int{0: 100}))
	assert.True(t, GroupValid(map[int]int{0: 10}), "no lower bound on group totals")
	assert.False(t, GroupValid(map[int]int{0: 60, 1: 41}))
}
