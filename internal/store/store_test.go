package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func sampleAttempt(userID string, correct int) QuizAttemptData {
	return QuizAttemptData{
		UserID:          userID,
		TotalQuestions:  4,
		CorrectAnswers:  correct,
		ScorePercentage: 100 * float64(correct) / 4,
		Difficulty:      "medium",
		QuizType:        "MCQs, T or F",
	}
}

func TestAttemptAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	if err := repo.Append(ctx, sampleAttempt("user-1", 3)); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := repo.Append(ctx, sampleAttempt("user-1", 4)); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := repo.Append(ctx, sampleAttempt("user-2", 1)); err != nil {
		t.Fatalf("append attempt: %v", err)
	}

	attempts, err := repo.ListByUser(ctx, "user-1", QueryOpts{})
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("got %d attempts for user-1, want 2", len(attempts))
	}
	for _, a := range attempts {
		if a.UserID != "user-1" {
			t.Errorf("attempt %d belongs to %q", a.ID, a.UserID)
		}
		if a.CreatedAt.IsZero() {
			t.Errorf("attempt %d has no created_at", a.ID)
		}
	}
	if attempts[0].CorrectAnswers != 4 {
		t.Errorf("newest attempt first: got correct=%d, want 4", attempts[0].CorrectAnswers)
	}
}

func TestAttemptListLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.Append(ctx, sampleAttempt("user-1", i%5)); err != nil {
			t.Fatalf("append attempt: %v", err)
		}
	}

	attempts, err := repo.ListByUser(ctx, "user-1", QueryOpts{Limit: 3})
	if err != nil {
		t.Fatalf("list attempts: %v", err)
	}
	if len(attempts) != 3 {
		t.Errorf("got %d attempts, want 3", len(attempts))
	}
}

func TestAttemptStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	stats, err := repo.Stats(ctx, "user-1")
	if err != nil {
		t.Fatalf("stats on empty store: %v", err)
	}
	if stats.Attempts != 0 || stats.AvgScore != 0 {
		t.Errorf("empty stats = %+v, want zeros", stats)
	}

	if err := repo.Append(ctx, sampleAttempt("user-1", 4)); err != nil { // 100%
		t.Fatalf("append attempt: %v", err)
	}
	if err := repo.Append(ctx, sampleAttempt("user-1", 2)); err != nil { // 50%
		t.Fatalf("append attempt: %v", err)
	}
	if err := repo.Append(ctx, sampleAttempt("user-2", 0)); err != nil {
		t.Fatalf("append attempt: %v", err)
	}

	stats, err = repo.Stats(ctx, "user-1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", stats.Attempts)
	}
	if stats.TotalQuestions != 8 || stats.TotalCorrect != 6 {
		t.Errorf("totals = %d/%d, want 6/8", stats.TotalCorrect, stats.TotalQuestions)
	}
	if stats.AvgScore != 75.0 {
		t.Errorf("avg score = %v, want 75.0", stats.AvgScore)
	}
}

func TestLLMRequestEventAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "groq",
		Model:        "llama-3.3-70b-versatile",
		Purpose:      "quiz-gen",
		InputTokens:  512,
		OutputTokens: 240,
		LatencyMs:    830,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append event: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "groq",
		Model:        "llama-3.3-70b-versatile",
		Purpose:      "quiz-gen",
		Success:      false,
		ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append event: %v", err)
	}

	events, err := repo.ListLLMRequests(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	var failures int
	for _, e := range events {
		if !e.Success {
			failures++
			if e.ErrorMessage != "rate limited" {
				t.Errorf("error message = %q", e.ErrorMessage)
			}
		}
	}
	if failures != 1 {
		t.Errorf("failures = %d, want 1", failures)
	}
}

func TestLLMRequestEventTimeFilter(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "quiz-gen", Success: true,
	}); err != nil {
		t.Fatalf("append event: %v", err)
	}

	events, err := repo.ListLLMRequests(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events in the future, want 0", len(events))
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	p := t.TempDir() + "/nested/quizcraft.db"
	t.Setenv("QUIZCRAFT_DB", p)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default db path: %v", err)
	}
	if got != p {
		t.Errorf("path = %q, want %q", got, p)
	}
}
