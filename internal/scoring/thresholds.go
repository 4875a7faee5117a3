package scoring

import (
	"github.com/jonathan/hiring-console/internal/types"
)

// Classify places a 0-100 section score into the band defined by the
// threshold: below autoReject is a fail (reject), from autoReject up to but
// excluding manualReview is a manual review, and manualReview or above is a
// pass (accept).
func Classify(threshold types.SectionThreshold, score int) types.SectionStatus {
	switch {
	case score < threshold.AutoReject:
		return types.StatusFail
	case score < threshold.ManualReview:
		return types.StatusManualReview
	default:
		return types.StatusPass
	}
}

// ClassifySections classifies every known section score of an applicant
// against the job's per-section thresholds. Sections without a configured
// threshold default to the zero threshold, which passes everything.
func ClassifySections(thresholds map[types.Section]types.SectionThreshold, scores map[types.Section]int) []types.SectionOutcome {
	outcomes := make([]types.SectionOutcome, 0, len(scores))
	for _, section := range types.Sections() {
		score, ok := scores[section]
		if !ok {
			continue
		}
		outcomes = append(outcomes, types.SectionOutcome{
			Section: section,
			Score:   score,
			Status:  Classify(thresholds[section], score),
		})
	}
	return outcomes
}
