package quiz

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/quizcraft/internal/quizgen"
)

// Machine drives a quiz session through its lifecycle. It is not safe
// for concurrent use; the UI event loop owns it and async work
// re-enters through epoch-stamped completions.
//
// The epoch counter invalidates stale async results: generation
// completions and feedback timers carry the epoch they were started
// under, and a reset or restart bumps the counter so late arrivals
// from an abandoned run are discarded instead of mutating the new one.
type Machine struct {
	state   State
	epoch   int
	session *Session

	// recorded latches once BuildRecord hands out the summary, so a
	// finished run is persisted at most once.
	recorded bool
}

// NewMachine returns a machine ready to configure a run.
func NewMachine() *Machine {
	return &Machine{state: StateConfiguring}
}

// State returns the current lifecycle state.
func (m *Machine) State() State { return m.state }

// Epoch returns the current epoch. Async work started now must present
// this value back to CompleteGeneration, FailGeneration or
// AdvanceFeedback.
func (m *Machine) Epoch() int { return m.epoch }

// Session returns the active session, nil before generation completes.
func (m *Machine) Session() *Session { return m.session }

// BeginGeneration moves into the generating state and returns the epoch
// the caller must stamp on the completion. Allowed from configuring or
// finished (play again); any other state is a no-op returning ok=false.
func (m *Machine) BeginGeneration() (epoch int, ok bool) {
	if m.state != StateConfiguring && m.state != StateFinished {
		return 0, false
	}
	m.epoch++
	m.state = StateGenerating
	m.session = nil
	m.recorded = false
	return m.epoch, true
}

// CompleteGeneration installs the parsed questions and starts
// presenting. Completions from a stale epoch are discarded.
func (m *Machine) CompleteGeneration(epoch int, questions []quizgen.Question, difficulty quizgen.Difficulty) bool {
	if epoch != m.epoch || m.state != StateGenerating {
		return false
	}
	if len(questions) == 0 {
		m.state = StateConfiguring
		return false
	}
	m.session = &Session{
		ID:         uuid.NewString(),
		Questions:  questions,
		Difficulty: difficulty,
	}
	m.state = StatePresenting
	return true
}

// FailGeneration returns to configuration after a failed provider
// call. Stale failures are discarded.
func (m *Machine) FailGeneration(epoch int) bool {
	if epoch != m.epoch || m.state != StateGenerating {
		return false
	}
	m.state = StateConfiguring
	return true
}

// Submit evaluates the submitted answer against the current question
// and moves into feedback. While feedback is showing, further submits
// are no-ops that return the already-evaluated answer, so a double
// keypress cannot score a question twice.
func (m *Machine) Submit(submitted string) (AnsweredQuestion, bool) {
	if m.state == StateFeedback && len(m.session.Answers) > 0 {
		return m.session.Answers[len(m.session.Answers)-1], false
	}
	q := m.session.Current()
	if m.state != StatePresenting || q == nil {
		return AnsweredQuestion{}, false
	}

	answered := AnsweredQuestion{
		Question:  *q,
		Submitted: submitted,
		Correct:   quizgen.Matches(submitted, q.Answer),
	}
	m.session.Answers = append(m.session.Answers, answered)
	if answered.Correct {
		m.session.Score++
	}
	m.state = StateFeedback
	return answered, true
}

// SubmitOption submits a multiple-choice selection by option index.
// Matching runs against the option's full text; the recorded answer
// keeps the letter prefix for the summary.
func (m *Machine) SubmitOption(i int) (AnsweredQuestion, bool) {
	q := m.session.Current()
	if m.state != StatePresenting || q == nil || i < 0 || i >= len(q.Options) {
		if m.state == StateFeedback {
			return m.Submit("")
		}
		return AnsweredQuestion{}, false
	}

	answered, ok := m.Submit(q.Options[i])
	if ok {
		answered.Submitted = fmt.Sprintf("%c) %s", 'a'+i, q.Options[i])
		m.session.Answers[len(m.session.Answers)-1] = answered
	}
	return answered, ok
}

// AdvanceFeedback moves past the feedback hold to the next question, or
// to finished after the last one. The caller passes the epoch and
// question index the hold timer was armed with; a timer from a previous
// run or a previous question is discarded.
func (m *Machine) AdvanceFeedback(epoch, index int) bool {
	if epoch != m.epoch || m.state != StateFeedback || m.session == nil || index != m.session.Index {
		return false
	}
	m.session.Index++
	if m.session.Index >= len(m.session.Questions) {
		m.state = StateFinished
	} else {
		m.state = StatePresenting
	}
	return true
}

// Reset abandons the run and returns to configuration. The epoch bump
// invalidates any generation or feedback timer still in flight.
func (m *Machine) Reset() {
	m.epoch++
	m.state = StateConfiguring
	m.session = nil
	m.recorded = false
}

// BuildRecord assembles the persistence summary for a finished run.
// It hands the record out exactly once; later calls return ok=false,
// as do calls before the run finishes or for an empty run.
func (m *Machine) BuildRecord(userID string) (AttemptRecord, bool) {
	if m.state != StateFinished || m.recorded || m.session == nil || len(m.session.Questions) == 0 {
		return AttemptRecord{}, false
	}
	m.recorded = true

	total := len(m.session.Questions)
	rec := AttemptRecord{
		UserID:          userID,
		TotalQuestions:  total,
		CorrectAnswers:  m.session.Score,
		ScorePercentage: 100 * float64(m.session.Score) / float64(total),
		Difficulty:      string(m.session.Difficulty),
		QuizType:        quizTypeLabel(m.session.Questions),
	}
	return rec, true
}

// quizTypeLabel joins the distinct category labels in encounter order,
// e.g. "MCQs, T or F".
func quizTypeLabel(questions []quizgen.Question) string {
	categories := quizgen.Categories(questions)
	labels := make([]string, len(categories))
	for i, c := range categories {
		labels[i] = c.Label()
	}
	return strings.Join(labels, ", ")
}
