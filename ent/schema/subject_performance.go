package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SubjectPerformance accumulates lifetime stats for one user, subject and
// exam board. Totals are monotonic; accuracy is always recomputed from the
// cumulative marks, never averaged from percentages.
type SubjectPerformance struct {
	ent.Schema
}

func (SubjectPerformance) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("subject_id").
			NotEmpty(),
		field.String("exam_board").
			NotEmpty(),
		field.Int("total_questions_answered").
			Default(0),
		field.Int("marks_earned").
			Default(0).
			Comment("Cumulative marks earned across all completed sessions"),
		field.Int("marks_available").
			Default(0).
			Comment("Cumulative marks available across all completed sessions"),
		field.Float("accuracy_rate").
			Default(0).
			Comment("marks_earned / marks_available * 100"),
		field.Float("study_hours").
			Default(0),
		field.Time("last_activity_date"),
	}
}

func (SubjectPerformance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subject_id", "exam_board").
			Unique(),
	}
}
