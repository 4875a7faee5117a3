// Package schedule provides overlap detection and validation for interview
// availability schedules.
package schedule

import (
	"github.com/jonathan/hiring-console/internal/types"
)

// DetectOverlaps returns a mapping from slot ID to the IDs of the other slots
// it overlaps with, for the slots of a single day or date. The mapping is
// empty when nothing overlaps.
//
// Boundaries are inclusive: a slot ending at 10:00 and one starting at 10:00
// are reported as overlapping. O(n²) over the slot list, which is fine for
// user-entered schedules.
func DetectOverlaps(slots []types.TimeSlot) map[string][]string {
	overlaps := make(map[string][]string)
	for i := range slots {
		for j := range slots {
			if i == j {
				continue
			}
			if slotsOverlap(&slots[i], &slots[j]) {
				overlaps[slots[i].ID] = append(overlaps[slots[i].ID], slots[j].ID)
			}
		}
	}
	return overlaps
}

// slotsOverlap reports whether two slots overlap, boundary-inclusive.
// Slots with malformed times never overlap anything; ValidateWeekly and
// ValidateDates surface those separately.
func slotsOverlap(a, b *types.TimeSlot) bool {
	aStart, err := a.StartMinutes()
	if err != nil {
		return false
	}
	aEnd, err := a.EndMinutes()
	if err != nil {
		return false
	}
	bStart, err := b.StartMinutes()
	if err != nil {
		return false
	}
	bEnd, err := b.EndMinutes()
	if err != nil {
		return false
	}
	return aStart <= bEnd && bStart <= aEnd
}
