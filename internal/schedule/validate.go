package schedule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/hiring-console/internal/types"
)

const (
	// minSlotMinutes is the duration below which a slot draws a warning.
	minSlotMinutes = 15
	// maxGapMinutes is the idle gap between sorted-adjacent slots above which
	// a warning is emitted.
	maxGapMinutes = 120
)

// Result is the outcome of validating a schedule. Errors are hard findings
// (overlaps, malformed times), warnings are advisory (short slots, large
// gaps). Callers decide whether to act on either; saves are not blocked here.
type Result struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidateWeekly validates a full weekly schedule. It never panics; malformed
// input degrades to error strings in the result.
func ValidateWeekly(weekly *types.WeeklySchedule) Result {
	result := Result{Errors: []string{}, Warnings: []string{}}
	if weekly != nil {
		for _, day := range weekly.Days {
			if !day.IsAvailable {
				continue
			}
			validateDaySlots(dayLabel(day.Day), day.TimeSlots, &result)
		}
	}
	result.IsValid = len(result.Errors) == 0
	return result
}

// ValidateDates validates a date-specific schedule.
func ValidateDates(dates *types.DateSchedule) Result {
	result := Result{Errors: []string{}, Warnings: []string{}}
	if dates != nil {
		for _, date := range dates.Dates {
			if !date.IsAvailable {
				continue
			}
			validateDaySlots(date.Date, date.TimeSlots, &result)
		}
	}
	result.IsValid = len(result.Errors) == 0
	return result
}

// validateDaySlots applies the per-day rules: pairwise overlaps (errors),
// short slots and large gaps (warnings).
func validateDaySlots(label string, slots []types.TimeSlot, result *Result) {
	valid := make([]types.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if err := slot.Validate(); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Invalid time slot on %s: %v", label, err))
			continue
		}
		valid = append(valid, slot)
	}

	if len(valid) >= 2 {
		for i := 0; i < len(valid); i++ {
			for j := i + 1; j < len(valid); j++ {
				if slotsOverlap(&valid[i], &valid[j]) {
					result.Errors = append(result.Errors, fmt.Sprintf(
						"Overlapping time slots on %s: %s-%s and %s-%s",
						label,
						valid[i].StartTime, valid[i].EndTime,
						valid[j].StartTime, valid[j].EndTime,
					))
				}
			}
		}
	}

	for _, slot := range valid {
		duration, _ := slot.DurationMinutes()
		if duration < minSlotMinutes {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"Very short time slot on %s: %s-%s (%d minutes)",
				label, slot.StartTime, slot.EndTime, duration,
			))
		}
	}

	if len(valid) >= 2 {
		// Lexicographic sort on fixed-width HH:MM equals numeric sort.
		sorted := make([]types.TimeSlot, len(valid))
		copy(sorted, valid)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].StartTime < sorted[j].StartTime
		})
		for i := 0; i < len(sorted)-1; i++ {
			currentEnd, _ := sorted[i].EndMinutes()
			nextStart, _ := sorted[i+1].StartMinutes()
			gap := nextStart - currentEnd
			if gap > maxGapMinutes {
				result.Warnings = append(result.Warnings, fmt.Sprintf(
					"Large gap on %s: %d minutes between %s and %s",
					label, gap, sorted[i].EndTime, sorted[i+1].StartTime,
				))
			}
		}
	}
}

// dayLabel renders a weekday the way the review UI shows it ("monday" ->
// "Monday").
func dayLabel(w types.Weekday) string {
	name := string(w)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
