package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord is a dated high-score marker written when a session's
// immediate score reaches the mastery threshold. One row per user, topic
// and calendar day; a second mastery on the same day overwrites the score.
// Used for trend displays, distinct from the rolling TopicProgress.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("subject_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.String("day").
			NotEmpty().
			Comment("Calendar day in YYYY-MM-DD form"),
		field.Int("score").
			Min(0).
			Max(100),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subject_id", "topic_id", "day").
			Unique(),
		index.Fields("user_id", "topic_id"),
	}
}
