package quiz

import (
	"github.com/abhisek/quizcraft/internal/quizgen"
)

// generatedMsg is sent when quiz generation completes or fails.
type generatedMsg struct {
	Epoch     int
	Questions []quizgen.Question
	Err       error
}

// feedbackElapsedMsg is sent when the feedback hold timer fires. It
// carries the epoch and question index it was armed with so a stale
// timer can be discarded.
type feedbackElapsedMsg struct {
	Epoch int
	Index int
}
