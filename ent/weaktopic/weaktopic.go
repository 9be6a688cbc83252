// Code generated by ent, DO NOT EDIT.

package weaktopic

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the weaktopic type in the database.
	Label = "weak_topic"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldEnteredAt holds the string denoting the entered_at field in the database.
	FieldEnteredAt = "entered_at"
	// Table holds the table name of the weaktopic in the database.
	Table = "weak_topics"
)

// Columns holds all SQL columns for weaktopic fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSubjectID,
	FieldTopicID,
	FieldEnteredAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	SubjectIDValidator func(string) error
	// TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	TopicIDValidator func(string) error
	// DefaultEnteredAt holds the default value on creation for the "entered_at" field.
	DefaultEnteredAt func() time.Time
)

// OrderOption defines the ordering options for the WeakTopic queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByEnteredAt orders the results by the entered_at field.
func ByEnteredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnteredAt, opts...).ToFunc()
}
