package quizgen

import "strings"

const (
	// MaxInputWords caps the passage size. Longer passages are truncated
	// to their leading words, never rejected.
	MaxInputWords = 4000

	// MaxOutputUnits is the fixed ceiling on the output budget.
	MaxOutputUnits = 3000

	// UnitsPerQuestion is the per-question output cost estimate.
	UnitsPerQuestion = 120
)

// PlanBudget bounds the passage and prices the requested output.
// It returns the (possibly truncated) passage and the output budget to
// hand to the provider, or a *BudgetError when the request is not
// fundable at the fixed ceiling.
func PlanBudget(passage string, totalQuestions int) (string, int, error) {
	requested := UnitsPerQuestion * totalQuestions
	if requested > MaxOutputUnits {
		return "", 0, &BudgetError{RequestedUnits: requested}
	}

	words := strings.Fields(passage)
	if len(words) > MaxInputWords {
		passage = strings.Join(words[:MaxInputWords], " ")
	}

	return passage, requested, nil
}
