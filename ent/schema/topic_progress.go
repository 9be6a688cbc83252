package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicProgress is the durable rolling score for one user and topic.
// Only the mastery aggregator writes it.
type TopicProgress struct {
	ent.Schema
}

func (TopicProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("subject_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.Int("attempts").
			Default(0).
			Comment("Completed sessions for this topic"),
		field.Int("average_score").
			Default(0).
			Min(0).
			Max(100).
			Comment("Blended percentage score"),
		field.Time("last_attempt_at"),
	}
}

func (TopicProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id").
			Unique(),
		index.Fields("user_id", "subject_id"),
	}
}
