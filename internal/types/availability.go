package types

import (
	"fmt"
	"time"
)

// Weekday is a lowercase weekday name as used on the wire.
type Weekday string

// Weekday values, in the fixed Monday-first order schedules are stored in.
const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists all seven weekdays in schedule order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// IsValid reports whether w is one of the seven weekday names.
func (w Weekday) IsValid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// DayAvailability holds the availability for one weekday in a weekly schedule.
// TimeSlots keep the order the user entered them in; they are not time-sorted.
type DayAvailability struct {
	Day         Weekday    `json:"day"`
	IsAvailable bool       `json:"isAvailable"`
	TimeSlots   []TimeSlot `json:"timeSlots"`
}

// DateAvailability holds the availability for one specific calendar date.
type DateAvailability struct {
	Date        string     `json:"date" validate:"required,datetime=2006-01-02"`
	IsAvailable bool       `json:"isAvailable"`
	TimeSlots   []TimeSlot `json:"timeSlots"`
}

// WeeklySchedule is a full seven-day schedule, Monday through Sunday.
type WeeklySchedule struct {
	Days []DayAvailability `json:"days"`
}

// NewWeeklySchedule returns a schedule with all seven days present and
// unavailable, in Monday-first order.
func NewWeeklySchedule() *WeeklySchedule {
	days := make([]DayAvailability, 0, 7)
	for _, w := range Weekdays() {
		days = append(days, DayAvailability{Day: w})
	}
	return &WeeklySchedule{Days: days}
}

// Day returns the availability entry for the given weekday, or nil if the
// weekday name is unknown.
func (s *WeeklySchedule) Day(w Weekday) *DayAvailability {
	for i := range s.Days {
		if s.Days[i].Day == w {
			return &s.Days[i]
		}
	}
	return nil
}

// DateSchedule is an ordered list of date-specific availability entries,
// keyed by unique date.
type DateSchedule struct {
	Dates []DateAvailability `json:"dates"`
}

// AddDate appends a date entry. Duplicate dates are rejected so a schedule
// never carries two entries for the same day.
func (s *DateSchedule) AddDate(entry DateAvailability) error {
	if _, err := time.Parse("2006-01-02", entry.Date); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", entry.Date)
	}
	for _, existing := range s.Dates {
		if existing.Date == entry.Date {
			return fmt.Errorf("date %s already present in schedule", entry.Date)
		}
	}
	s.Dates = append(s.Dates, entry)
	return nil
}

// RemoveDate deletes the entry for the given date, if present.
func (s *DateSchedule) RemoveDate(date string) {
	for i, existing := range s.Dates {
		if existing.Date == date {
			s.Dates = append(s.Dates[:i], s.Dates[i+1:]...)
			return
		}
	}
}
