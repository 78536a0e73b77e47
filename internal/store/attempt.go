package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abhisek/quizcraft/ent"
	"github.com/abhisek/quizcraft/ent/quizattempt"
)

// attemptRepo implements AttemptRepo using the ent client. Aggregation
// drops to raw SQL because ent can't express a multi-column aggregate
// in one round trip.
type attemptRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *attemptRepo) Append(ctx context.Context, data QuizAttemptData) error {
	_, err := r.client.QuizAttempt.Create().
		SetUserID(data.UserID).
		SetTotalQuestions(data.TotalQuestions).
		SetCorrectAnswers(data.CorrectAnswers).
		SetScorePercentage(data.ScorePercentage).
		SetDifficulty(data.Difficulty).
		SetQuizType(data.QuizType).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) ListByUser(ctx context.Context, userID string, opts QueryOpts) ([]QuizAttempt, error) {
	query := r.client.QuizAttempt.Query().
		Where(quizattempt.UserID(userID)).
		Order(ent.Desc(quizattempt.FieldCreatedAt))

	if !opts.From.IsZero() {
		query = query.Where(quizattempt.CreatedAtGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(quizattempt.CreatedAtLTE(opts.To))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz attempts: %w", err)
	}

	attempts := make([]QuizAttempt, 0, len(rows))
	for _, row := range rows {
		attempts = append(attempts, entAttemptToAttempt(row))
	}
	return attempts, nil
}

func (r *attemptRepo) Stats(ctx context.Context, userID string) (AttemptStats, error) {
	var stats AttemptStats
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(total_questions), 0),
		        COALESCE(SUM(correct_answers), 0),
		        COALESCE(AVG(score_percentage), 0)
		 FROM quiz_attempts WHERE user_id = ?`,
		userID,
	).Scan(&stats.Attempts, &stats.TotalQuestions, &stats.TotalCorrect, &stats.AvgScore)
	if err != nil {
		return AttemptStats{}, fmt.Errorf("aggregate quiz attempts: %w", err)
	}
	return stats, nil
}

func entAttemptToAttempt(a *ent.QuizAttempt) QuizAttempt {
	return QuizAttempt{
		ID:        a.ID,
		CreatedAt: a.CreatedAt,
		QuizAttemptData: QuizAttemptData{
			UserID:          a.UserID,
			TotalQuestions:  a.TotalQuestions,
			CorrectAnswers:  a.CorrectAnswers,
			ScorePercentage: a.ScorePercentage,
			Difficulty:      a.Difficulty,
			QuizType:        a.QuizType,
		},
	}
}
