package store

import (
	"context"
	"time"
)

// QueryOpts configures listing queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	From  time.Time // created >= From
	To    time.Time // created <= To
}

// QuizAttemptData is the insert payload for one completed quiz.
type QuizAttemptData struct {
	UserID          string
	TotalQuestions  int
	CorrectAnswers  int
	ScorePercentage float64
	Difficulty      string
	QuizType        string
}

// QuizAttempt is a persisted attempt row.
type QuizAttempt struct {
	ID        int
	CreatedAt time.Time
	QuizAttemptData
}

// AttemptStats aggregates a user's attempt history.
type AttemptStats struct {
	Attempts       int
	TotalQuestions int
	TotalCorrect   int
	AvgScore       float64
}

// AttemptRepo manages quiz attempt records. Attempts are insert-only.
type AttemptRepo interface {
	// Append stores a new attempt.
	Append(ctx context.Context, data QuizAttemptData) error

	// ListByUser returns a user's attempts, newest first.
	ListByUser(ctx context.Context, userID string, opts QueryOpts) ([]QuizAttempt, error)

	// Stats aggregates a user's history.
	Stats(ctx context.Context, userID string) (AttemptStats, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a persisted request event row.
type LLMRequestEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// ListLLMRequests returns events newest first.
	ListLLMRequests(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)
}
