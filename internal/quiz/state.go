package quiz

import (
	"time"

	"github.com/abhisek/quizcraft/internal/quizgen"
)

// FeedbackHold is how long per-question feedback stays on screen before
// the session advances on its own.
const FeedbackHold = 800 * time.Millisecond

// State is the lifecycle state of a quiz session.
type State int

const (
	StateConfiguring State = iota // Collecting passage, counts and difficulty
	StateGenerating               // Provider call in flight
	StatePresenting               // Showing the current question, accepting an answer
	StateFeedback                 // Showing correctness feedback, input locked
	StateFinished                 // All questions answered, summary available
)

// String returns a short label for logging and summaries.
func (s State) String() string {
	switch s {
	case StateConfiguring:
		return "configuring"
	case StateGenerating:
		return "generating"
	case StatePresenting:
		return "presenting"
	case StateFeedback:
		return "feedback"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// AnsweredQuestion records one evaluated answer.
type AnsweredQuestion struct {
	Question  quizgen.Question
	Submitted string
	Correct   bool
}

// Session holds the runtime data of one quiz run. It is created when
// generation completes and discarded on reset; only the summary record
// built at the end is persisted.
type Session struct {
	// ID is the UUID for this run.
	ID string

	// Questions is the parsed question list. It may be shorter than the
	// requested total when the provider under-delivers; the run simply
	// covers what was parsed.
	Questions []quizgen.Question

	// Index is the position of the current question.
	Index int

	// Score is the count of correct answers so far.
	Score int

	// Answers accumulates evaluated answers in question order.
	Answers []AnsweredQuestion

	// Difficulty is the difficulty the questions were generated at.
	Difficulty quizgen.Difficulty
}

// Current returns the question at the session cursor, or nil when the
// cursor has moved past the end.
func (s *Session) Current() *quizgen.Question {
	if s == nil || s.Index < 0 || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// AttemptRecord is the summary persisted once per finished run.
type AttemptRecord struct {
	UserID          string
	TotalQuestions  int
	CorrectAnswers  int
	ScorePercentage float64
	Difficulty      string
	QuizType        string
}
