package scoring

import (
	"fmt"

	"github.com/jonathan/hiring-console/internal/types"
)

// RuleList is an ordered sequence of automation rules. Order is authoring
// order and determines evaluation priority; no de-duplication or conflict
// detection is performed between rules.
type RuleList struct {
	rules []types.AutomationRule
}

// NewRuleList builds a rule list from existing rules, validating each.
func NewRuleList(rules []types.AutomationRule) (*RuleList, error) {
	list := &RuleList{}
	for i, rule := range rules {
		if err := list.Append(rule); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}
	return list, nil
}

// Append adds a rule at the end of the list if it is well-formed.
func (l *RuleList) Append(rule types.AutomationRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	l.rules = append(l.rules, rule)
	return nil
}

// Delete removes the rule at the given index. Out-of-range indexes are an
// error; there are no cascading effects.
func (l *RuleList) Delete(index int) error {
	if index < 0 || index >= len(l.rules) {
		return fmt.Errorf("rule index %d out of range (have %d rules)", index, len(l.rules))
	}
	l.rules = append(l.rules[:index], l.rules[index+1:]...)
	return nil
}

// Rules returns the rules in authoring order.
func (l *RuleList) Rules() []types.AutomationRule {
	return l.rules
}

// Len returns the number of rules.
func (l *RuleList) Len() int {
	return len(l.rules)
}

// EvaluateRules finds the rule that fires for an applicant's section
// outcomes: first match in authoring order wins, and at most one rule fires.
// A rule with sectionCount "all" matches when every section has the rule's
// status; an explicit count matches when at least that many sections do.
// Returns the fired rule's index, or -1 when nothing matches.
//
// This powers the authoring-time preview; live firing against incoming
// applicants happens in the screening backend.
func EvaluateRules(rules []types.AutomationRule, outcomes []types.SectionOutcome) int {
	counts := make(map[types.SectionStatus]int)
	for _, outcome := range outcomes {
		counts[outcome.Status]++
	}

	for i, rule := range rules {
		matched := counts[rule.Condition.Status]
		if rule.Condition.SectionCount.All {
			if len(outcomes) > 0 && matched == len(outcomes) {
				return i
			}
			continue
		}
		if matched >= rule.Condition.SectionCount.N {
			return i
		}
	}
	return -1
}

// PreviewText renders a rule the way the authoring UI summarizes it, e.g.
// "If all sections pass, schedule an interview".
func PreviewText(rule types.AutomationRule) string {
	var subject string
	if rule.Condition.SectionCount.All {
		subject = "all sections"
	} else if rule.Condition.SectionCount.N == 1 {
		subject = "1 section"
	} else {
		subject = fmt.Sprintf("%d sections", rule.Condition.SectionCount.N)
	}

	var status string
	switch rule.Condition.Status {
	case types.StatusPass:
		status = "pass"
	case types.StatusManualReview:
		status = "need manual review"
	case types.StatusFail:
		status = "fail"
	default:
		status = string(rule.Condition.Status)
	}

	var action string
	switch rule.Action {
	case types.ActionScheduleInterview:
		action = "schedule an interview"
	case types.ActionSendTemplate:
		action = fmt.Sprintf("send the %q template", rule.Template)
	case types.ActionRejectCandidate:
		action = "reject the candidate"
	default:
		action = string(rule.Action)
	}

	return fmt.Sprintf("If %s %s, %s", subject, status, action)
}
