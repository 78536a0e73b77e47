package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAttempt is the durable summary of one completed quiz.
// Insert-only: the session engine writes a row when a quiz finishes
// and an authenticated user is present; rows are never updated.
type QuizAttempt struct {
	ent.Schema
}

func (QuizAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Owning user; anonymous attempts are never recorded"),
		field.Int("total_questions").
			Positive().
			Comment("Number of questions in the quiz"),
		field.Int("correct_answers").
			Min(0).
			Comment("Final score"),
		field.Float("score_percentage").
			Comment("100 * correct / total"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium or hard"),
		field.String("quiz_type").
			Comment("Comma-joined distinct category labels in encounter order"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (QuizAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("created_at"),
	}
}
