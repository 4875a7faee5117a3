package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntriesFromSchedules_OmitsUnavailableDays(t *testing.T) {
	weekly := NewWeeklySchedule()
	monday := weekly.Day(Monday)
	monday.IsAvailable = true
	monday.TimeSlots = []TimeSlot{
		{ID: "a", StartTime: "09:00", EndTime: "10:00"},
		{ID: "b", StartTime: "14:00", EndTime: "15:00"},
	}
	// Available but no slots: still omitted.
	weekly.Day(Tuesday).IsAvailable = true

	entries := EntriesFromSchedules(weekly, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, EntryTypeWeekDay, entries[0].Type)
	assert.Equal(t, Monday, entries[0].Day)
	assert.Equal(t, []SlotRange{{From: "09:00", To: "10:00"}, {From: "14:00", To: "15:00"}}, entries[0].Slots)
}

func TestEntriesFromSchedules_IncludesDates(t *testing.T) {
	dates := &DateSchedule{}
	require.NoError(t, dates.AddDate(DateAvailability{
		Date:        "2026-09-15",
		IsAvailable: true,
		TimeSlots:   []TimeSlot{{ID: "x", StartTime: "11:00", EndTime: "12:00"}},
	}))

	entries := EntriesFromSchedules(nil, dates)

	require.Len(t, entries, 1)
	assert.Equal(t, EntryTypeDate, entries[0].Type)
	assert.Equal(t, "2026-09-15", entries[0].Date)
}

func TestSchedulesRoundTrip_PreservesSlotOrder(t *testing.T) {
	weekly := NewWeeklySchedule()
	monday := weekly.Day(Monday)
	monday.IsAvailable = true
	// Deliberately not time-sorted; order is insertion order.
	monday.TimeSlots = []TimeSlot{
		{ID: "late", StartTime: "14:00", EndTime: "15:00"},
		{ID: "early", StartTime: "09:00", EndTime: "10:00"},
	}

	entries := EntriesFromSchedules(weekly, nil)
	reloaded, _, err := SchedulesFromEntries(entries)
	require.NoError(t, err)

	available := 0
	for _, day := range reloaded.Days {
		if day.IsAvailable {
			available++
		}
	}
	assert.Equal(t, 1, available)

	slots := reloaded.Day(Monday).TimeSlots
	require.Len(t, slots, 2)
	assert.Equal(t, "14:00", slots[0].StartTime)
	assert.Equal(t, "09:00", slots[1].StartTime)
}

func TestSchedulesFromEntries_RejectsUnknownDay(t *testing.T) {
	_, _, err := SchedulesFromEntries([]AvailabilityEntry{
		{Type: EntryTypeWeekDay, Day: Weekday("funday")},
	})
	assert.Error(t, err)
}

func TestSchedulesFromEntries_RejectsDuplicateDates(t *testing.T) {
	_, _, err := SchedulesFromEntries([]AvailabilityEntry{
		{Type: EntryTypeDate, Date: "2026-09-15"},
		{Type: EntryTypeDate, Date: "2026-09-15"},
	})
	assert.Error(t, err)
}

func TestAvailabilityEntries_DecodeBareArrayBody(t *testing.T) {
	// Writes send the entry array directly, without the read envelope.
	body := `[
		{"type": "weekDay", "day": "monday", "slots": [{"from": "09:00", "to": "10:00"}]},
		{"type": "date", "date": "2026-09-15", "slots": [{"from": "11:00", "to": "12:00"}]}
	]`

	var entries []AvailabilityEntry
	require.NoError(t, json.Unmarshal([]byte(body), &entries))
	require.Len(t, entries, 2)

	weekly, dates, err := SchedulesFromEntries(entries)
	require.NoError(t, err)

	monday := weekly.Day(Monday)
	require.True(t, monday.IsAvailable)
	require.Len(t, monday.TimeSlots, 1)
	assert.Equal(t, "09:00", monday.TimeSlots[0].StartTime)

	require.Len(t, dates.Dates, 1)
	assert.Equal(t, "2026-09-15", dates.Dates[0].Date)
}

func TestAvailabilityResponse_WireShape(t *testing.T) {
	resp := AvailabilityResponse{
		Status: true,
		Availability: AvailabilityPayload{
			Timezone: "America/New_York",
			Availabilities: []AvailabilityEntry{
				{Type: EntryTypeWeekDay, Day: Monday, Slots: []SlotRange{{From: "09:00", To: "17:00"}}},
			},
		},
	}

	jsonBytes, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"status":true`)
	assert.Contains(t, string(jsonBytes), `"timezone":"America/New_York"`)
	assert.Contains(t, string(jsonBytes), `"type":"weekDay"`)
	assert.Contains(t, string(jsonBytes), `"from":"09:00"`)
}
