package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hiring-console/internal/types"
)

func TestClassify(t *testing.T) {
	threshold := types.SectionThreshold{AutoReject: 30, ManualReview: 70}

	tests := []struct {
		name  string
		score int
		want  types.SectionStatus
	}{
		{"well below autoReject", 0, types.StatusFail},
		{"just below autoReject", 29, types.StatusFail},
		{"exactly autoReject", 30, types.StatusManualReview},
		{"between cut points", 50, types.StatusManualReview},
		{"just below manualReview", 69, types.StatusManualReview},
		{"exactly manualReview", 70, types.StatusPass},
		{"top score", 100, types.StatusPass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(threshold, tt.score))
		})
	}
}

func TestClassify_DegenerateBands(t *testing.T) {
	// Equal cut points leave no manual review band.
	equal := types.SectionThreshold{AutoReject: 50, ManualReview: 50}
	assert.Equal(t, types.StatusFail, Classify(equal, 49))
	assert.Equal(t, types.StatusPass, Classify(equal, 50))

	// Zero threshold passes everything.
	assert.Equal(t, types.StatusPass, Classify(types.SectionThreshold{}, 0))
}

func TestClassifySections(t *testing.T) {
	thresholds := map[types.Section]types.SectionThreshold{
		types.SectionRequiredQualifications: {AutoReject: 50, ManualReview: 80},
		types.SectionResume:                 {AutoReject: 20, ManualReview: 60},
	}
	scores := map[types.Section]int{
		types.SectionRequiredQualifications: 90,
		types.SectionResume:                 10,
	}

	outcomes := ClassifySections(thresholds, scores)

	require.Len(t, outcomes, 2)
	assert.Equal(t, types.SectionRequiredQualifications, outcomes[0].Section)
	assert.Equal(t, types.StatusPass, outcomes[0].Status)
	assert.Equal(t, types.SectionResume, outcomes[1].Section)
	assert.Equal(t, types.StatusFail, outcomes[1].Status)
}

func TestClassifySections_MissingThresholdPasses(t *testing.T) {
	scores := map[types.Section]int{types.SectionPreScreening: 5}

	outcomes := ClassifySections(nil, scores)

	require.Len(t, outcomes, 1)
	assert.Equal(t, types.StatusPass, outcomes[0].Status)
}
