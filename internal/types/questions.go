package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// QuestionType is the answer shape of a custom screening question.
type QuestionType string

// QuestionType values.
const (
	QuestionBoolean QuestionType = "boolean"
	QuestionString  QuestionType = "string"
	QuestionSelect  QuestionType = "select"
)

// CustomQuestion is a recruiter-authored screening question attached to a job.
type CustomQuestion struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type" validate:"required,oneof=boolean string select"`
	Question    string       `json:"question" validate:"required,min=1"`
	Required    bool         `json:"required"`
	Options     []string     `json:"options,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
}

// Validate checks the question shape. Select questions need at least two
// options to choose between.
func (q *CustomQuestion) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return err
	}
	if q.Type == QuestionSelect && len(q.Options) < 2 {
		return fmt.Errorf("select question %q requires at least 2 options, got %d", q.Question, len(q.Options))
	}
	return nil
}
