package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WeakTopic marks a topic as needing targeted practice for one user.
// Membership is recomputed on every session completion, so a row either
// exists or it doesn't; there is no stale flag to drift.
type WeakTopic struct {
	ent.Schema
}

func (WeakTopic) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("subject_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.Time("entered_at").
			Default(time.Now),
	}
}

func (WeakTopic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic_id").
			Unique(),
		index.Fields("user_id"),
	}
}
