package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRecord is the persisted form of one in-progress (or just
// completed) practice session. Exactly one record exists per
// (user, subject, topic); saves replace the whole document.
type SessionRecord struct {
	ent.Schema
}

func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("subject_id").
			NotEmpty(),
		field.String("topic_id").
			NotEmpty(),
		field.String("session_id").
			NotEmpty().
			Comment("UUID minted when the session was first created"),
		field.JSON("question_order", []string{}).
			Comment("Shuffled question IDs, frozen for the session's lifetime"),
		field.Int("current_index").
			Default(0),
		field.String("user_answer").
			Default("").
			Comment("Draft answer text for the current question"),
		field.Bool("show_feedback").
			Default(false),
		field.JSON("attempts", json.RawMessage{}).
			Optional().
			Comment("Attempt list as raw JSON; the store normalizes shape drift on load"),
		field.Time("started_at"),
		field.Time("last_saved"),
		field.Time("aggregated_at").
			Optional().
			Nillable().
			Comment("Set once the mastery aggregator has processed this completion"),
	}
}

func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "subject_id", "topic_id").
			Unique(),
	}
}
