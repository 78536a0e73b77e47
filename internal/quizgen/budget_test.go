package quizgen

import (
	"errors"
	"strings"
	"testing"
)

func TestPlanBudget_ShortPassageUnmodified(t *testing.T) {
	passage := "photosynthesis converts light into chemical energy"

	got, budget, err := PlanBudget(passage, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != passage {
		t.Errorf("passage modified: %q", got)
	}
	if budget != 6*UnitsPerQuestion {
		t.Errorf("budget = %d, want %d", budget, 6*UnitsPerQuestion)
	}
}

func TestPlanBudget_LongPassageTruncated(t *testing.T) {
	words := make([]string, MaxInputWords+250)
	for i := range words {
		words[i] = "word"
	}
	passage := strings.Join(words, " ")

	got, _, err := PlanBudget(passage, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(strings.Fields(got)); n != MaxInputWords {
		t.Errorf("truncated word count = %d, want %d", n, MaxInputWords)
	}
}

func TestPlanBudget_TruncationPreservesOrder(t *testing.T) {
	words := make([]string, MaxInputWords+1)
	for i := range words {
		words[i] = string(rune('a' + i%26))
	}
	passage := strings.Join(words, " ")

	got, _, err := PlanBudget(passage, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(passage, got) {
		t.Error("truncated passage is not a prefix of the original")
	}
}

func TestPlanBudget_ExceedsCeiling(t *testing.T) {
	// 26 questions * 120 units = 3120 > 3000.
	_, _, err := PlanBudget("some text", 26)

	var budgetErr *BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected *BudgetError, got: %v", err)
	}
	if budgetErr.RequestedUnits != 26*UnitsPerQuestion {
		t.Errorf("RequestedUnits = %d, want %d", budgetErr.RequestedUnits, 26*UnitsPerQuestion)
	}
	if budgetErr.UserMessage() == "" {
		t.Error("expected a user-facing message")
	}
}

func TestPlanBudget_ExactCeilingSucceeds(t *testing.T) {
	// 25 questions * 120 units = 3000, exactly at the ceiling.
	_, budget, err := PlanBudget("some text", 25)
	if err != nil {
		t.Fatalf("unexpected error at boundary: %v", err)
	}
	if budget != MaxOutputUnits {
		t.Errorf("budget = %d, want %d", budget, MaxOutputUnits)
	}
}
