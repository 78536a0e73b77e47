package quizgen

import (
	"errors"
	"testing"
)

const sampleReply = `MCQs:
Q1: What does the mitochondria produce?
a) ATP
b) Chlorophyll
c) Hemoglobin
d) Keratin
Answer: ATP

F-I-Bs:
Q1: The __________ is the powerhouse of the cell.
Answer: mitochondria

T or F:
Q1: Mitochondria have their own DNA.
Answer: True
`

func TestParse_AllThreeCategories(t *testing.T) {
	questions, err := Parse(sampleReply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(questions))
	}

	wantCategories := []Category{CategoryMultipleChoice, CategoryFillInBlank, CategoryTrueFalse}
	for i, want := range wantCategories {
		if questions[i].Category != want {
			t.Errorf("question %d category = %q, want %q", i, questions[i].Category, want)
		}
	}

	mcq := questions[0]
	if len(mcq.Options) != 4 {
		t.Fatalf("MCQ options = %d, want 4", len(mcq.Options))
	}
	if mcq.Options[0] != "ATP" || mcq.Options[3] != "Keratin" {
		t.Errorf("MCQ options out of order: %v", mcq.Options)
	}
	if mcq.Answer != "ATP" {
		t.Errorf("MCQ answer = %q, want ATP", mcq.Answer)
	}

	fib := questions[1]
	if fib.Text != "The __________ is the powerhouse of the cell." {
		t.Errorf("FIB text lost its blank marker: %q", fib.Text)
	}

	tf := questions[2]
	if tf.Answer != "True" {
		t.Errorf("TF answer = %q, want True", tf.Answer)
	}
	if len(tf.Options) != 0 {
		t.Errorf("TF should have no options, got %v", tf.Options)
	}
}

func TestParse_EmbeddedTrueFalseAnswerStripped(t *testing.T) {
	reply := `T or F:
Q1: Mitochondria have their own DNA. Answer: True
Answer: True
`
	questions, err := Parse(reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
	if questions[0].Text != "Mitochondria have their own DNA." {
		t.Errorf("embedded answer not stripped: %q", questions[0].Text)
	}
	if questions[0].Answer != "True" {
		t.Errorf("dedicated answer line lost: %q", questions[0].Answer)
	}
}

func TestParse_StrayLinesIgnored(t *testing.T) {
	reply := `Here are your questions!

MCQs:
Q1: Pick one.
a) first
b) second
c) third
d) fourth
Answer: first
Hope this helps.
`
	questions, err := Parse(reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(questions))
	}
}

func TestParse_QuestionBeforeAnyHeaderDiscarded(t *testing.T) {
	reply := `Q1: An orphan question.
a) stray option
Answer: stray answer

T or F:
Q1: A real statement.
Answer: False
`
	questions, err := Parse(reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1 (orphan discarded)", len(questions))
	}
	if questions[0].Category != CategoryTrueFalse {
		t.Errorf("category = %q, want true_false", questions[0].Category)
	}
	if questions[0].Answer != "False" {
		t.Errorf("orphan answer leaked into the real question: %q", questions[0].Answer)
	}
}

func TestParse_MissingAnswerKeepsEmpty(t *testing.T) {
	reply := `F-I-Bs:
Q1: The __________ cycle fixes carbon.
`
	questions, err := Parse(reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if questions[0].Answer != "" {
		t.Errorf("answer = %q, want empty", questions[0].Answer)
	}
}

func TestParse_UnderfilledMCQEmittedAsIs(t *testing.T) {
	reply := `MCQs:
Q1: Sparse question?
a) only
b) two
Answer: only
`
	questions, err := Parse(reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions[0].Options) != 2 {
		t.Errorf("options = %d, want 2 (no backfill)", len(questions[0].Options))
	}
}

func TestParse_NoQuestions(t *testing.T) {
	for _, reply := range []string{
		"",
		"I cannot generate questions from this text.",
		"MCQs:\n\nF-I-Bs:\n",
	} {
		_, err := Parse(reply)
		if !errors.Is(err, ErrNoQuestions) {
			t.Errorf("Parse(%q) error = %v, want ErrNoQuestions", reply, err)
		}
	}
}

func TestParse_WhitespaceTolerated(t *testing.T) {
	reply := "   MCQs:\r\n  Q1: Indented question?\r\n  a) yes\r\n  b) no\r\n  c) maybe\r\n  d) unsure\r\n  Answer: yes\r\n"
	questions, err := Parse(reply)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if questions[0].Text != "Indented question?" {
		t.Errorf("text = %q", questions[0].Text)
	}
	if questions[0].Answer != "yes" {
		t.Errorf("answer = %q", questions[0].Answer)
	}
}

func TestCategories_DistinctEncounterOrder(t *testing.T) {
	questions := []Question{
		{Category: CategoryTrueFalse},
		{Category: CategoryMultipleChoice},
		{Category: CategoryTrueFalse},
	}
	got := Categories(questions)
	if len(got) != 2 {
		t.Fatalf("got %d categories, want 2", len(got))
	}
	if got[0] != CategoryTrueFalse || got[1] != CategoryMultipleChoice {
		t.Errorf("encounter order not preserved: %v", got)
	}
}
