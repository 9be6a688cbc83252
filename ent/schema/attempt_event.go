package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one graded answer submission. Every submission is
// appended, including attempts later superseded by a retry, so the full
// history survives beyond the in-memory session ledger.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("user_id").
			NotEmpty(),
		field.String("subject_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.String("user_answer"),
		field.Int("marks_awarded"),
		field.Int("marks_available"),
		field.String("assessment").
			Comment("Oracle assessment label, including the degraded one"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id", "topic_id"),
	}
}
