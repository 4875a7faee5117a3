package scoring

import (
	"fmt"

	"github.com/jonathan/hiring-console/internal/types"
)

// ValidateAutomation checks a full automation payload before it is
// persisted: every weight group within budget, every threshold band in
// order, and every rule well-formed. Unlike schedule validation this blocks
// the save, since a broken automation setup silently misclassifies
// candidates.
func ValidateAutomation(a *types.Automation) error {
	if a == nil {
		return fmt.Errorf("automation payload is required")
	}

	sectionTotal := 0
	for section, weight := range a.SectionWeights {
		if !section.IsValid() {
			return fmt.Errorf("unknown section %q in sectionWeights", section)
		}
		if weight < 0 || weight > WeightBudget {
			return fmt.Errorf("section %s weight %d out of range 0-100", section, weight)
		}
		sectionTotal += weight
	}
	if sectionTotal > WeightBudget {
		return fmt.Errorf("section weights total %d exceeds %d", sectionTotal, WeightBudget)
	}

	if !GroupValid(a.PreferredQualScore) {
		return fmt.Errorf("preferred qualification weights total %d exceeds %d",
			SumWeights(a.PreferredQualScore), WeightBudget)
	}
	if !GroupValid(a.ResumeItemScore) {
		return fmt.Errorf("resume item weights total %d exceeds %d",
			SumWeights(a.ResumeItemScore), WeightBudget)
	}

	for section, threshold := range a.SectionThresholds {
		if !section.IsValid() {
			return fmt.Errorf("unknown section %q in sectionThresholds", section)
		}
		if err := threshold.Validate(); err != nil {
			return fmt.Errorf("section %s: %w", section, err)
		}
	}

	if _, err := NewRuleList(a.JobRules); err != nil {
		return err
	}

	return nil
}
