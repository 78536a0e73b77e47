package quizgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/quizcraft/internal/llm"
)

func TestGenerate_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: sampleReply})
	gen := New(mock, DefaultConfig())

	questions, err := gen.Generate(context.Background(), Request{
		Passage:      "Mitochondria are organelles.",
		Difficulty:   DifficultyMedium,
		MCQs:         1,
		FillInBlanks: 1,
		TrueFalse:    1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(questions))
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.MaxTokens != 3*UnitsPerQuestion {
		t.Errorf("MaxTokens = %d, want %d", req.MaxTokens, 3*UnitsPerQuestion)
	}
	if req.Temperature != 0.2 {
		t.Errorf("Temperature = %v, want 0.2", req.Temperature)
	}
	if len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, "Mitochondria are organelles.") {
		t.Error("prompt does not carry the passage")
	}
}

func TestGenerate_MissingInputSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Request{Passage: "   ", MCQs: 2})
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got: %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no provider call, got %d", mock.CallCount())
	}
}

func TestGenerate_BudgetExceededSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Request{
		Passage:      "text",
		MCQs:         10,
		FillInBlanks: 10,
		TrueFalse:    10,
	})
	var budgetErr *BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected *BudgetError, got: %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no provider call, got %d", mock.CallCount())
	}
}

func TestGenerate_CountOutOfRange(t *testing.T) {
	gen := New(llm.NewMockProvider(), DefaultConfig())

	_, err := gen.Generate(context.Background(), Request{Passage: "text", MCQs: 11})
	if !errors.Is(err, ErrCountOutOfRange) {
		t.Fatalf("expected ErrCountOutOfRange, got: %v", err)
	}
}

func TestGenerate_UnparsableReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "Sorry, I can't help with that."})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Request{Passage: "text", MCQs: 1})
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got: %v", err)
	}
}

func TestGenerate_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrRateLimit{Err: errors.New("429")},
	})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Request{Passage: "text", MCQs: 1})
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %v", err)
	}
}

func TestGenerateText_ReturnsRawReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: sampleReply})
	gen := New(mock, DefaultConfig())

	raw, err := gen.GenerateText(context.Background(), Request{Passage: "text", MCQs: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw != sampleReply {
		t.Error("raw reply was altered")
	}
}
