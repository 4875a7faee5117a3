package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func resetCheckFlags() {
	checkAvailability = ""
	checkAutomation = ""
}

func TestRunCheck_RequiresInput(t *testing.T) {
	resetCheckFlags()
	err := runCheck(nil, nil)
	assert.Error(t, err)
}

func TestRunCheck_ValidAvailability(t *testing.T) {
	resetCheckFlags()
	checkAvailability = writeTempJSON(t, "availability.json", `[
		{"type": "weekDay", "day": "monday", "slots": [{"from": "09:00", "to": "17:00"}]}
	]`)

	assert.NoError(t, runCheck(nil, nil))
}

func TestRunCheck_OverlappingSlotsFail(t *testing.T) {
	resetCheckFlags()
	checkAvailability = writeTempJSON(t, "availability.json", `[
		{"type": "weekDay", "day": "monday", "slots": [
			{"from": "08:00", "to": "09:00"},
			{"from": "08:30", "to": "09:30"}
		]}
	]`)

	assert.Error(t, runCheck(nil, nil))
}

func TestRunCheck_SchemaViolation(t *testing.T) {
	resetCheckFlags()
	checkAvailability = writeTempJSON(t, "availability.json", `[{"type": "fortnight", "slots": []}]`)

	assert.Error(t, runCheck(nil, nil))
}

func TestRunCheck_ValidAutomation(t *testing.T) {
	resetCheckFlags()
	checkAutomation = writeTempJSON(t, "automation.json", `{
		"sectionWeights": {"resume": 50, "preScreening": 50},
		"sectionThresholds": {"resume": {"autoReject": 30, "manualReview": 70}},
		"jobRules": [
			{"condition": {"sectionCount": "all", "status": "pass"}, "action": "scheduleInterview"}
		]
	}`)

	assert.NoError(t, runCheck(nil, nil))
}

func TestRunCheck_InvertedThresholdFails(t *testing.T) {
	resetCheckFlags()
	checkAutomation = writeTempJSON(t, "automation.json", `{
		"sectionThresholds": {"resume": {"autoReject": 80, "manualReview": 40}}
	}`)

	assert.Error(t, runCheck(nil, nil))
}

func TestRunCheck_MissingFile(t *testing.T) {
	resetCheckFlags()
	checkAutomation = filepath.Join(t.TempDir(), "does-not-exist.json")
	assert.Error(t, runCheck(nil, nil))
}
