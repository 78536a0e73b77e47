package quizgen

import "strings"

// Category identifies the kind of a generated question.
type Category string

const (
	CategoryMultipleChoice Category = "multiple_choice"
	CategoryFillInBlank    Category = "fill_in_blank"
	CategoryTrueFalse      Category = "true_false"
)

// Label returns the category's display label, which doubles as the block
// header in the generation reply grammar.
func (c Category) Label() string {
	switch c {
	case CategoryMultipleChoice:
		return "MCQs"
	case CategoryFillInBlank:
		return "F-I-Bs"
	case CategoryTrueFalse:
		return "T or F"
	default:
		return string(c)
	}
}

// Difficulty is the requested difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty parses a difficulty string case-insensitively,
// defaulting to medium for anything unrecognized.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy
	case "hard":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Question is one generated quiz item.
type Question struct {
	// Category is set when the question is first recognized; a question
	// whose category block was never seen is discarded by the parser.
	Category Category

	// Text is the question prompt. Blank markers are preserved verbatim
	// for fill-in-the-blank questions.
	Text string

	// Options holds the answer choices, populated only for multiple
	// choice (4 expected, but under-delivery is passed through as-is).
	Options []string

	// Answer is the canonical correct answer. For multiple choice it is
	// the full text of the correct option, never a letter. Empty when the
	// provider omitted the Answer line; an empty answer matches nothing.
	Answer string
}

// MaxPerCategory bounds the requested count for each question category.
const MaxPerCategory = 10

// Request is the ephemeral generation request: created per user action,
// consumed immediately, never persisted.
type Request struct {
	Passage      string
	Difficulty   Difficulty
	MCQs         int
	FillInBlanks int
	TrueFalse    int
}

// TotalQuestions returns the total requested question count.
func (r Request) TotalQuestions() int {
	return r.MCQs + r.FillInBlanks + r.TrueFalse
}

// Validate checks the request before any provider call is made.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Passage) == "" {
		return ErrMissingInput
	}
	for _, n := range []int{r.MCQs, r.FillInBlanks, r.TrueFalse} {
		if n < 0 || n > MaxPerCategory {
			return ErrCountOutOfRange
		}
	}
	return nil
}
