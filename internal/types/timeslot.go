// Package types provides type definitions for structured data used throughout the hiring-console system.
package types

import (
	"fmt"
	"regexp"
	"strconv"
)

// hhmmPattern matches zero-padded 24-hour clock times like "09:00" or "23:45".
var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// TimeSlot represents one bookable interval within a day or date.
// Times are "HH:MM" strings on a 24-hour clock.
type TimeSlot struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

// ParseHHMM converts an "HH:MM" string to minutes since midnight.
func ParseHHMM(s string) (int, error) {
	if !hhmmPattern.MatchString(s) {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hours, _ := strconv.Atoi(s[:2])
	minutes, _ := strconv.Atoi(s[3:])
	return hours*60 + minutes, nil
}

// StartMinutes returns the start time as minutes since midnight.
func (ts *TimeSlot) StartMinutes() (int, error) {
	return ParseHHMM(ts.StartTime)
}

// EndMinutes returns the end time as minutes since midnight.
func (ts *TimeSlot) EndMinutes() (int, error) {
	return ParseHHMM(ts.EndTime)
}

// DurationMinutes returns the slot length in minutes.
// Returns an error if either time is malformed.
func (ts *TimeSlot) DurationMinutes() (int, error) {
	start, err := ts.StartMinutes()
	if err != nil {
		return 0, err
	}
	end, err := ts.EndMinutes()
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

// Validate checks that both times are well-formed HH:MM and that the slot
// starts before it ends.
func (ts *TimeSlot) Validate() error {
	start, err := ts.StartMinutes()
	if err != nil {
		return err
	}
	end, err := ts.EndMinutes()
	if err != nil {
		return err
	}
	if start >= end {
		return fmt.Errorf("time slot %s-%s: start must be before end", ts.StartTime, ts.EndTime)
	}
	return nil
}
