// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/revisely/revisely/ent/weaktopic"
)

// WeakTopic is the model entity for the WeakTopic schema.
type WeakTopic struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID string `json:"subject_id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID string `json:"topic_id,omitempty"`
	// EnteredAt holds the value of the "entered_at" field.
	EnteredAt    time.Time `json:"entered_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WeakTopic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case weaktopic.FieldID:
			values[i] = new(sql.NullInt64)
		case weaktopic.FieldUserID, weaktopic.FieldSubjectID, weaktopic.FieldTopicID:
			values[i] = new(sql.NullString)
		case weaktopic.FieldEnteredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WeakTopic fields.
func (_m *WeakTopic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case weaktopic.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case weaktopic.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case weaktopic.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case weaktopic.FieldTopicID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = value.String
			}
		case weaktopic.FieldEnteredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field entered_at", values[i])
			} else if value.Valid {
				_m.EnteredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WeakTopic.
// This includes values selected through modifiers, order, etc.
func (_m *WeakTopic) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WeakTopic.
// Note that you need to call WeakTopic.Unwrap() before calling this method if this WeakTopic
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WeakTopic) Update() *WeakTopicUpdateOne {
	return NewWeakTopicClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WeakTopic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WeakTopic) Unwrap() *WeakTopic {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WeakTopic is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WeakTopic) String() string {
	var builder strings.Builder
	builder.WriteString("WeakTopic(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(_m.TopicID)
	builder.WriteString(", ")
	builder.WriteString("entered_at=")
	builder.WriteString(_m.EnteredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WeakTopics is a parsable slice of WeakTopic.
type WeakTopics []*WeakTopic
