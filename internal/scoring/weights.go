// Package scoring provides the weight reconciliation, threshold
// classification, and automation rule logic behind candidate screening.
package scoring

// WeightBudget is the total every weight group must stay within.
const WeightBudget = 100

// SumWeights returns the total of all weights in a group.
func SumWeights(weights map[int]int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	return total
}

// GroupValid reports whether a weight group fits the budget. There is no
// lower bound; a group summing to less than 100 is fine.
func GroupValid(weights map[int]int) bool {
	return SumWeights(weights) <= WeightBudget
}

// ReconcileWeight applies a proposed new weight for one item if the group
// total stays within budget. On acceptance it returns a new map with the
// value substituted; on rejection the input map is returned untouched. This
// is a hard clamp: no renormalization or redistribution of the other weights
// ever happens, and no error is surfaced.
func ReconcileWeight(weights map[int]int, index, proposed int) (map[int]int, bool) {
	othersTotal := 0
	for k, w := range weights {
		if k != index {
			othersTotal += w
		}
	}
	if proposed < 0 || othersTotal+proposed > WeightBudget {
		return weights, false
	}

	updated := make(map[int]int, len(weights)+1)
	for k, w := range weights {
		updated[k] = w
	}
	updated[index] = proposed
	return updated, true
}
