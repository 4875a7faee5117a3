package types

import (
	"fmt"

	"github.com/google/uuid"
)

// Availability entry kinds on the wire.
const (
	EntryTypeWeekDay = "weekDay"
	EntryTypeDate    = "date"
)

// SlotRange is the wire form of a time slot.
type SlotRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// AvailabilityEntry is one element of the availability write payload and of
// the read envelope. Weekly entries set Day, date entries set Date.
// Unavailable days and dates are omitted entirely rather than sent empty.
type AvailabilityEntry struct {
	Type  string      `json:"type" validate:"required,oneof=weekDay date"`
	Day   Weekday     `json:"day,omitempty"`
	Date  string      `json:"date,omitempty"`
	Slots []SlotRange `json:"slots"`
}

// AvailabilityPayload is the envelope returned by the availability read API.
type AvailabilityPayload struct {
	Timezone       string              `json:"timezone"`
	Availabilities []AvailabilityEntry `json:"availabilities"`
}

// AvailabilityResponse is the top-level availability read response.
type AvailabilityResponse struct {
	Status       bool                `json:"status"`
	Availability AvailabilityPayload `json:"availability"`
}

// EntriesFromSchedules flattens a weekly and a date schedule into wire
// entries. Only available days/dates with at least one slot are emitted, and
// slot order within each entry is preserved.
func EntriesFromSchedules(weekly *WeeklySchedule, dates *DateSchedule) []AvailabilityEntry {
	var entries []AvailabilityEntry
	if weekly != nil {
		for _, day := range weekly.Days {
			if !day.IsAvailable || len(day.TimeSlots) == 0 {
				continue
			}
			entries = append(entries, AvailabilityEntry{
				Type:  EntryTypeWeekDay,
				Day:   day.Day,
				Slots: slotRanges(day.TimeSlots),
			})
		}
	}
	if dates != nil {
		for _, date := range dates.Dates {
			if !date.IsAvailable || len(date.TimeSlots) == 0 {
				continue
			}
			entries = append(entries, AvailabilityEntry{
				Type:  EntryTypeDate,
				Date:  date.Date,
				Slots: slotRanges(date.TimeSlots),
			})
		}
	}
	return entries
}

// SchedulesFromEntries reconstructs the weekly and date schedules from wire
// entries. Days absent from the entries stay unavailable; slot order is
// preserved as received, never re-sorted.
func SchedulesFromEntries(entries []AvailabilityEntry) (*WeeklySchedule, *DateSchedule, error) {
	weekly := NewWeeklySchedule()
	dates := &DateSchedule{}

	for _, entry := range entries {
		switch entry.Type {
		case EntryTypeWeekDay:
			day := weekly.Day(entry.Day)
			if day == nil {
				return nil, nil, fmt.Errorf("unknown weekday %q in availability entry", entry.Day)
			}
			day.IsAvailable = true
			day.TimeSlots = timeSlots(entry.Slots)
		case EntryTypeDate:
			if err := dates.AddDate(DateAvailability{
				Date:        entry.Date,
				IsAvailable: true,
				TimeSlots:   timeSlots(entry.Slots),
			}); err != nil {
				return nil, nil, err
			}
		default:
			return nil, nil, fmt.Errorf("unknown availability entry type %q", entry.Type)
		}
	}
	return weekly, dates, nil
}

func slotRanges(slots []TimeSlot) []SlotRange {
	ranges := make([]SlotRange, 0, len(slots))
	for _, slot := range slots {
		ranges = append(ranges, SlotRange{From: slot.StartTime, To: slot.EndTime})
	}
	return ranges
}

func timeSlots(ranges []SlotRange) []TimeSlot {
	slots := make([]TimeSlot, 0, len(ranges))
	for _, r := range ranges {
		slots = append(slots, TimeSlot{
			ID:        uuid.NewString(),
			StartTime: r.From,
			EndTime:   r.To,
		})
	}
	return slots
}
