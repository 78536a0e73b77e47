package quiz

import (
	"testing"

	"github.com/abhisek/quizcraft/internal/quizgen"
)

func twoQuestions() []quizgen.Question {
	return []quizgen.Question{
		{
			Category: quizgen.CategoryMultipleChoice,
			Text:     "What does the mitochondria produce?",
			Options:  []string{"ATP", "Chlorophyll", "Hemoglobin", "Keratin"},
			Answer:   "ATP",
		},
		{
			Category: quizgen.CategoryTrueFalse,
			Text:     "Mitochondria have their own DNA.",
			Answer:   "True",
		},
	}
}

// startPresenting runs a machine through generation and returns it with
// the given questions installed.
func startPresenting(t *testing.T, questions []quizgen.Question) (*Machine, int) {
	t.Helper()
	m := NewMachine()
	epoch, ok := m.BeginGeneration()
	if !ok {
		t.Fatal("BeginGeneration refused from configuring")
	}
	if !m.CompleteGeneration(epoch, questions, quizgen.DifficultyMedium) {
		t.Fatal("CompleteGeneration refused a fresh epoch")
	}
	return m, epoch
}

func TestMachine_FullRun(t *testing.T) {
	m, epoch := startPresenting(t, twoQuestions())

	if m.State() != StatePresenting {
		t.Fatalf("state = %v, want presenting", m.State())
	}

	answered, ok := m.SubmitOption(0)
	if !ok || !answered.Correct {
		t.Fatalf("SubmitOption(0) = (%+v, %v), want correct", answered, ok)
	}
	if answered.Submitted != "a) ATP" {
		t.Errorf("recorded answer = %q, want letter-prefixed option", answered.Submitted)
	}
	if m.State() != StateFeedback {
		t.Fatalf("state after submit = %v, want feedback", m.State())
	}

	if !m.AdvanceFeedback(epoch, 0) {
		t.Fatal("AdvanceFeedback refused the armed epoch and index")
	}
	if m.State() != StatePresenting {
		t.Fatalf("state = %v, want presenting", m.State())
	}

	answered, ok = m.Submit("True")
	if !ok || !answered.Correct {
		t.Fatalf("Submit(True) = (%+v, %v), want correct", answered, ok)
	}
	if !m.AdvanceFeedback(epoch, 1) {
		t.Fatal("AdvanceFeedback refused after last question")
	}
	if m.State() != StateFinished {
		t.Fatalf("state = %v, want finished", m.State())
	}

	rec, ok := m.BuildRecord("user-1")
	if !ok {
		t.Fatal("BuildRecord refused a finished run")
	}
	if rec.TotalQuestions != 2 || rec.CorrectAnswers != 2 {
		t.Errorf("record = %+v, want 2/2", rec)
	}
	if rec.ScorePercentage != 100.0 {
		t.Errorf("score = %v, want 100.0", rec.ScorePercentage)
	}
	if rec.QuizType != "MCQs, T or F" {
		t.Errorf("quiz type = %q", rec.QuizType)
	}
	if rec.Difficulty != "medium" {
		t.Errorf("difficulty = %q", rec.Difficulty)
	}
}

func TestMachine_DoubleSubmitScoresOnce(t *testing.T) {
	m, _ := startPresenting(t, twoQuestions())

	first, ok := m.SubmitOption(0)
	if !ok {
		t.Fatal("first submit refused")
	}
	second, ok := m.SubmitOption(0)
	if ok {
		t.Fatal("second submit during feedback should be a no-op")
	}
	if second.Submitted != first.Submitted || second.Correct != first.Correct {
		t.Errorf("no-op submit returned %+v, want the first evaluation %+v", second, first)
	}
	if m.Session().Score != 1 {
		t.Errorf("score = %d after double submit, want 1", m.Session().Score)
	}
	if len(m.Session().Answers) != 1 {
		t.Errorf("answers = %d after double submit, want 1", len(m.Session().Answers))
	}
}

func TestMachine_WrongAnswerNotScored(t *testing.T) {
	m, epoch := startPresenting(t, twoQuestions())

	answered, ok := m.SubmitOption(1)
	if !ok || answered.Correct {
		t.Fatalf("SubmitOption(1) = (%+v, %v), want incorrect", answered, ok)
	}
	m.AdvanceFeedback(epoch, 0)
	m.Submit("False")
	m.AdvanceFeedback(epoch, 1)

	rec, ok := m.BuildRecord("user-1")
	if !ok {
		t.Fatal("BuildRecord refused")
	}
	if rec.CorrectAnswers != 0 || rec.ScorePercentage != 0.0 {
		t.Errorf("record = %+v, want 0/2", rec)
	}
}

func TestMachine_StaleGenerationDiscarded(t *testing.T) {
	m := NewMachine()
	old, _ := m.BeginGeneration()
	m.Reset()

	if m.CompleteGeneration(old, twoQuestions(), quizgen.DifficultyEasy) {
		t.Fatal("stale generation completion was accepted")
	}
	if m.State() != StateConfiguring || m.Session() != nil {
		t.Errorf("state = %v session = %v after stale completion", m.State(), m.Session())
	}
}

func TestMachine_StaleFeedbackTimerDiscarded(t *testing.T) {
	m, epoch := startPresenting(t, twoQuestions())
	m.SubmitOption(0)

	// A timer armed for question 0 fires after the run was reset and
	// a new one reached question 0 again.
	m.Reset()
	newEpoch, _ := m.BeginGeneration()
	m.CompleteGeneration(newEpoch, twoQuestions(), quizgen.DifficultyMedium)
	m.SubmitOption(0)

	if m.AdvanceFeedback(epoch, 0) {
		t.Fatal("feedback timer from a dead run advanced the new one")
	}
	if m.Session().Index != 0 {
		t.Errorf("index = %d, want 0", m.Session().Index)
	}
	if !m.AdvanceFeedback(newEpoch, 0) {
		t.Fatal("current-epoch timer refused")
	}
}

func TestMachine_DuplicateTimerSameRunDiscarded(t *testing.T) {
	m, epoch := startPresenting(t, twoQuestions())
	m.SubmitOption(0)

	if !m.AdvanceFeedback(epoch, 0) {
		t.Fatal("first timer refused")
	}
	if m.AdvanceFeedback(epoch, 0) {
		t.Fatal("duplicate timer for an already-advanced question was accepted")
	}
	if m.Session().Index != 1 {
		t.Errorf("index = %d, want 1", m.Session().Index)
	}
}

func TestMachine_EmptyGenerationReturnsToConfiguring(t *testing.T) {
	m := NewMachine()
	epoch, _ := m.BeginGeneration()

	if m.CompleteGeneration(epoch, nil, quizgen.DifficultyMedium) {
		t.Fatal("empty question list should not start a run")
	}
	if m.State() != StateConfiguring {
		t.Errorf("state = %v, want configuring", m.State())
	}
}

func TestMachine_FailGeneration(t *testing.T) {
	m := NewMachine()
	epoch, _ := m.BeginGeneration()

	if !m.FailGeneration(epoch) {
		t.Fatal("FailGeneration refused the current epoch")
	}
	if m.State() != StateConfiguring {
		t.Errorf("state = %v, want configuring", m.State())
	}
	if m.FailGeneration(epoch) {
		t.Fatal("second failure for the same epoch was accepted")
	}
}

func TestMachine_UnderDeliveryRunsShorterQuiz(t *testing.T) {
	// Requested counts live outside the machine; it runs whatever was
	// parsed, here a single question.
	m, epoch := startPresenting(t, twoQuestions()[:1])

	m.SubmitOption(0)
	m.AdvanceFeedback(epoch, 0)

	if m.State() != StateFinished {
		t.Fatalf("state = %v, want finished after the only question", m.State())
	}
	rec, _ := m.BuildRecord("user-1")
	if rec.TotalQuestions != 1 {
		t.Errorf("total = %d, want the delivered count", rec.TotalQuestions)
	}
}

func TestMachine_BuildRecordExactlyOnce(t *testing.T) {
	m, epoch := startPresenting(t, twoQuestions()[:1])
	m.SubmitOption(0)
	m.AdvanceFeedback(epoch, 0)

	if _, ok := m.BuildRecord("user-1"); !ok {
		t.Fatal("first BuildRecord refused")
	}
	if _, ok := m.BuildRecord("user-1"); ok {
		t.Fatal("second BuildRecord handed out a duplicate record")
	}
}

func TestMachine_BuildRecordRequiresFinished(t *testing.T) {
	m, _ := startPresenting(t, twoQuestions())
	if _, ok := m.BuildRecord("user-1"); ok {
		t.Fatal("BuildRecord succeeded mid-run")
	}
}

func TestMachine_PlayAgainFromFinished(t *testing.T) {
	m, epoch := startPresenting(t, twoQuestions()[:1])
	m.SubmitOption(0)
	m.AdvanceFeedback(epoch, 0)

	next, ok := m.BeginGeneration()
	if !ok {
		t.Fatal("BeginGeneration refused from finished")
	}
	if next == epoch {
		t.Error("epoch did not advance for the new run")
	}
	if m.Session() != nil {
		t.Error("previous session survived into the new run")
	}
}

func TestMachine_SubmitBeforeRunIsNoOp(t *testing.T) {
	m := NewMachine()
	if _, ok := m.Submit("anything"); ok {
		t.Fatal("Submit accepted with no active run")
	}
	if _, ok := m.SubmitOption(0); ok {
		t.Fatal("SubmitOption accepted with no active run")
	}
}
