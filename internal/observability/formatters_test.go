package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/hiring-console/internal/schedule"
	"github.com/jonathan/hiring-console/internal/types"
)

func TestPrintScheduleResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScheduleResult("Weekly schedule", schedule.Result{
		IsValid:  false,
		Errors:   []string{"Overlapping time slots on Monday: 08:00-09:00 and 08:30-09:30"},
		Warnings: []string{"Very short time slot on Tuesday: 09:00-09:10 (10 minutes)"},
	})

	out := buf.String()
	assert.Contains(t, out, "Weekly schedule")
	assert.Contains(t, out, "1 error(s)")
	assert.Contains(t, out, "error: Overlapping time slots")
	assert.Contains(t, out, "warning: Very short time slot")
}

func TestPrintScheduleResult_Valid(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScheduleResult("Weekly schedule", schedule.Result{IsValid: true})
	assert.Contains(t, buf.String(), "valid")
}

func TestPrintAutomationSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAutomationSummary(&types.Automation{
		SectionWeights: map[types.Section]int{
			types.SectionResume: 40,
		},
		SectionThresholds: map[types.Section]types.SectionThreshold{
			types.SectionResume: {AutoReject: 30, ManualReview: 70},
		},
		JobRules: []types.AutomationRule{
			{
				Condition: types.RuleCondition{SectionCount: types.AllSections(), Status: types.StatusPass},
				Action:    types.ActionScheduleInterview,
			},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "resume: weight 40")
	assert.Contains(t, out, "If all sections pass")
}

func TestPrintAutomationSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAutomationSummary(nil)
	assert.Contains(t, buf.String(), "not configured")
}
