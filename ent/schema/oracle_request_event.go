package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OracleRequestEvent records a single call to the grading oracle.
type OracleRequestEvent struct {
	ent.Schema
}

func (OracleRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (OracleRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty(),
		field.String("model").
			NotEmpty(),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.Int("marks_awarded").
			Default(0).
			Comment("Awarded marks on success, 0 otherwise"),
		field.String("error_message").
			Default(""),
	}
}

func (OracleRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("success"),
	}
}
