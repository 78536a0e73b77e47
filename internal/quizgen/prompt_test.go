package quizgen

import (
	"strings"
	"testing"
)

func testRequest() Request {
	return Request{
		Passage:      "The mitochondria is the powerhouse of the cell.",
		Difficulty:   DifficultyMedium,
		MCQs:         2,
		FillInBlanks: 1,
		TrueFalse:    3,
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	req := testRequest()
	a := BuildPrompt(req, req.Passage)
	b := BuildPrompt(req, req.Passage)
	if a != b {
		t.Fatal("expected byte-identical prompts for identical inputs")
	}
}

func TestBuildPrompt_Counts(t *testing.T) {
	req := testRequest()
	prompt := BuildPrompt(req, req.Passage)

	want := "Generate exactly 2 multiple-choice questions, 1 fill-in-the-blank questions, and 3 True/False questions"
	if !strings.Contains(prompt, want) {
		t.Errorf("prompt missing count clause %q", want)
	}
}

func TestBuildPrompt_DifficultyClause(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		want       string
	}{
		{DifficultyEasy, "Make questions straightforward and basic."},
		{DifficultyMedium, "Make questions moderately challenging."},
		{DifficultyHard, "Make questions challenging and require deep understanding."},
		{Difficulty("bogus"), "Make questions moderately challenging."},
	}

	for _, tt := range tests {
		req := testRequest()
		req.Difficulty = tt.difficulty
		prompt := BuildPrompt(req, req.Passage)
		if !strings.Contains(prompt, tt.want) {
			t.Errorf("difficulty %q: prompt missing %q", tt.difficulty, tt.want)
		}
	}
}

func TestBuildPrompt_ContainsPassageAndGrammar(t *testing.T) {
	req := testRequest()
	prompt := BuildPrompt(req, req.Passage)

	for _, want := range []string{
		req.Passage,
		"MCQs:",
		"F-I-Bs:",
		"T or F:",
		"Answer: [Exact text of the correct option]",
		"the EXACT TEXT of the correct option, not the letter",
		`Avoid "All of the above"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"easy", DifficultyEasy},
		{"EASY", DifficultyEasy},
		{"Hard", DifficultyHard},
		{"medium", DifficultyMedium},
		{"", DifficultyMedium},
		{"nonsense", DifficultyMedium},
	}
	for _, tt := range tests {
		if got := ParseDifficulty(tt.in); got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
