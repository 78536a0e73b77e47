package quizgen

import (
	"errors"
	"fmt"
)

// ErrMissingInput is returned when the passage is empty. No provider call
// is made in that case.
var ErrMissingInput = errors.New("no text provided")

// ErrCountOutOfRange is returned when a per-category question count is
// negative or above MaxPerCategory.
var ErrCountOutOfRange = fmt.Errorf("question counts must be between 0 and %d", MaxPerCategory)

// ErrNoQuestions is returned when the provider replied but no questions
// could be parsed from the reply.
var ErrNoQuestions = errors.New("no questions were generated")

// BudgetError is returned when the requested output exceeds the fixed
// token ceiling. The request is rejected outright; no partial or reduced
// request is attempted.
type BudgetError struct {
	RequestedUnits int
}

func (e *BudgetError) Error() string {
	return "token limit exceeded, try fewer questions"
}

// UserMessage returns the actionable message shown to the learner.
func (e *BudgetError) UserMessage() string {
	return "Token limit exceeded. Try fewer questions."
}
