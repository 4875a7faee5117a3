package types

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Section is one of the fixed scoring categories that make up a candidate's
// overall score. The set is a closed enumeration rather than an open
// string-keyed map so exhaustiveness is checkable.
type Section string

// Section values as they appear in the automation payload.
const (
	SectionRequiredQualifications  Section = "requiredQualifications"
	SectionPreferredQualifications Section = "preferredQualifications"
	SectionPreScreening            Section = "preScreening"
	SectionResume                  Section = "resume"
)

// Sections lists every scoring section in payload order.
func Sections() []Section {
	return []Section{
		SectionRequiredQualifications,
		SectionPreferredQualifications,
		SectionPreScreening,
		SectionResume,
	}
}

// IsValid reports whether s is a known scoring section.
func (s Section) IsValid() bool {
	switch s {
	case SectionRequiredQualifications, SectionPreferredQualifications, SectionPreScreening, SectionResume:
		return true
	}
	return false
}

// WeightedItem is one labeled item with a percentage contribution toward a
// group total that must not exceed 100.
type WeightedItem struct {
	Label  string `json:"label"`
	Weight int    `json:"weight" validate:"min=0,max=100"`
}

// SectionThreshold holds the two cut points partitioning a section's 0-100
// score into Reject / Manual Review / Accept bands.
type SectionThreshold struct {
	AutoReject   int `json:"autoReject" validate:"min=0,max=100"`
	ManualReview int `json:"manualReview" validate:"min=0,max=100"`
}

// Validate checks the range of both cut points and the band ordering.
// An inverted band (autoReject above manualReview) is rejected here rather
// than silently accepted, since the two values are edited independently.
func (t *SectionThreshold) Validate() error {
	if t.AutoReject < 0 || t.AutoReject > 100 {
		return fmt.Errorf("autoReject %d out of range 0-100", t.AutoReject)
	}
	if t.ManualReview < 0 || t.ManualReview > 100 {
		return fmt.Errorf("manualReview %d out of range 0-100", t.ManualReview)
	}
	if t.AutoReject > t.ManualReview {
		return fmt.Errorf("inverted threshold band: autoReject %d above manualReview %d", t.AutoReject, t.ManualReview)
	}
	return nil
}

// SectionStatus is a candidate's outcome for one section.
type SectionStatus string

// SectionStatus values.
const (
	StatusPass         SectionStatus = "pass"
	StatusManualReview SectionStatus = "manualReview"
	StatusFail         SectionStatus = "fail"
)

// IsValid reports whether s is a known section status.
func (s SectionStatus) IsValid() bool {
	switch s {
	case StatusPass, StatusManualReview, StatusFail:
		return true
	}
	return false
}

// RuleAction is what an automation rule does when it fires.
type RuleAction string

// RuleAction values.
const (
	ActionScheduleInterview RuleAction = "scheduleInterview"
	ActionSendTemplate      RuleAction = "sendTemplate"
	ActionRejectCandidate   RuleAction = "rejectCandidate"
)

// IsValid reports whether a is a known rule action.
func (a RuleAction) IsValid() bool {
	switch a {
	case ActionScheduleInterview, ActionSendTemplate, ActionRejectCandidate:
		return true
	}
	return false
}

// SectionCount is the "how many sections" part of a rule condition: either an
// explicit count or the literal "all". On the wire it is a number or the
// string "all".
type SectionCount struct {
	All bool
	N   int
}

// AllSections is the SectionCount matching every section.
func AllSections() SectionCount {
	return SectionCount{All: true}
}

// CountOf returns a SectionCount for an explicit number of sections.
func CountOf(n int) SectionCount {
	return SectionCount{N: n}
}

// IsSet reports whether the count was provided at all.
func (c SectionCount) IsSet() bool {
	return c.All || c.N > 0
}

// String renders the count the way the authoring UI previews it.
func (c SectionCount) String() string {
	if c.All {
		return "all"
	}
	return strconv.Itoa(c.N)
}

// MarshalJSON encodes the count as "all" or a bare number.
func (c SectionCount) MarshalJSON() ([]byte, error) {
	if c.All {
		return json.Marshal("all")
	}
	return json.Marshal(c.N)
}

// UnmarshalJSON accepts either the string "all" or a positive number.
func (c *SectionCount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "all" {
			return fmt.Errorf("invalid sectionCount %q: expected \"all\" or a number", s)
		}
		*c = SectionCount{All: true}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid sectionCount %s: expected \"all\" or a number", string(data))
	}
	*c = SectionCount{N: n}
	return nil
}

// RuleCondition is the condition half of an automation rule.
type RuleCondition struct {
	SectionCount SectionCount  `json:"sectionCount"`
	Status       SectionStatus `json:"status"`
}

// AutomationRule is one user-authored condition-action rule. Rules live in an
// ordered list and are evaluated first-match in authoring order.
type AutomationRule struct {
	Condition RuleCondition `json:"condition"`
	Action    RuleAction    `json:"action"`
	Template  string        `json:"template,omitempty"`
}

// UnmarshalJSON accepts both rule encodings seen on the wire: the nested
// form {condition: {sectionCount, status}, action, template} and the flat
// form {sectionCount, status, action, template}. Marshalling always emits
// the nested form.
func (r *AutomationRule) UnmarshalJSON(data []byte) error {
	var aux struct {
		Condition    *RuleCondition `json:"condition"`
		SectionCount *SectionCount  `json:"sectionCount"`
		Status       SectionStatus  `json:"status"`
		Action       RuleAction     `json:"action"`
		Template     string         `json:"template"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.Action = aux.Action
	r.Template = aux.Template
	if aux.Condition != nil {
		r.Condition = *aux.Condition
		return nil
	}
	r.Condition = RuleCondition{Status: aux.Status}
	if aux.SectionCount != nil {
		r.Condition.SectionCount = *aux.SectionCount
	}
	return nil
}

// Validate checks that the rule is well-formed: the section count is set, the
// status and action are known values, and sendTemplate names a template.
func (r *AutomationRule) Validate() error {
	if !r.Condition.SectionCount.IsSet() {
		return fmt.Errorf("rule condition: sectionCount must be set")
	}
	if !r.Condition.SectionCount.All && r.Condition.SectionCount.N < 1 {
		return fmt.Errorf("rule condition: sectionCount must be at least 1, got %d", r.Condition.SectionCount.N)
	}
	if !r.Condition.Status.IsValid() {
		return fmt.Errorf("rule condition: unknown status %q", r.Condition.Status)
	}
	if !r.Action.IsValid() {
		return fmt.Errorf("rule action: unknown action %q", r.Action)
	}
	if r.Action == ActionSendTemplate && r.Template == "" {
		return fmt.Errorf("rule action sendTemplate requires a template")
	}
	return nil
}

// QuestionCriteria holds per-question scoring guidance for pre-screening
// questions.
type QuestionCriteria struct {
	CorrectAnswer   string `json:"correctAnswer"`
	IncorrectAnswer string `json:"incorrectAnswer"`
	Instructions    string `json:"instructions"`
}

// Automation is the per-job automation payload: section weights and
// thresholds, item-level scoring, the ordered rule list, and question
// handling.
type Automation struct {
	SectionWeights     map[Section]int              `json:"sectionWeights"`
	SectionThresholds  map[Section]SectionThreshold `json:"sectionThresholds"`
	PreferredQualScore map[int]int                  `json:"preferredQualScoring"`
	ResumeItems        []string                     `json:"resumeItems"`
	ResumeItemScore    map[int]int                  `json:"resumeItemScoring"`
	JobRules           []AutomationRule             `json:"jobRules"`
	QuestionAutoFail   map[int]bool                 `json:"questionAutoFail"`
	QuestionCriteria   map[int]QuestionCriteria     `json:"questionCriteria"`
}
