// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/revisely/revisely/ent/subjectperformance"
)

// SubjectPerformance is the model entity for the SubjectPerformance schema.
type SubjectPerformance struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// SubjectID holds the value of the "subject_id" field.
	SubjectID string `json:"subject_id,omitempty"`
	// ExamBoard holds the value of the "exam_board" field.
	ExamBoard string `json:"exam_board,omitempty"`
	// TotalQuestionsAnswered holds the value of the "total_questions_answered" field.
	TotalQuestionsAnswered int `json:"total_questions_answered,omitempty"`
	// Cumulative marks earned across all completed sessions
	MarksEarned int `json:"marks_earned,omitempty"`
	// Cumulative marks available across all completed sessions
	MarksAvailable int `json:"marks_available,omitempty"`
	// marks_earned / marks_available * 100
	AccuracyRate float64 `json:"accuracy_rate,omitempty"`
	// StudyHours holds the value of the "study_hours" field.
	StudyHours float64 `json:"study_hours,omitempty"`
	// LastActivityDate holds the value of the "last_activity_date" field.
	LastActivityDate time.Time `json:"last_activity_date,omitempty"`
	selectValues     sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubjectPerformance) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subjectperformance.FieldAccuracyRate, subjectperformance.FieldStudyHours:
			values[i] = new(sql.NullFloat64)
		case subjectperformance.FieldID, subjectperformance.FieldTotalQuestionsAnswered, subjectperformance.FieldMarksEarned, subjectperformance.FieldMarksAvailable:
			values[i] = new(sql.NullInt64)
		case subjectperformance.FieldUserID, subjectperformance.FieldSubjectID, subjectperformance.FieldExamBoard:
			values[i] = new(sql.NullString)
		case subjectperformance.FieldLastActivityDate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubjectPerformance fields.
func (_m *SubjectPerformance) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subjectperformance.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case subjectperformance.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case subjectperformance.FieldSubjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.String
			}
		case subjectperformance.FieldExamBoard:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exam_board", values[i])
			} else if value.Valid {
				_m.ExamBoard = value.String
			}
		case subjectperformance.FieldTotalQuestionsAnswered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_questions_answered", values[i])
			} else if value.Valid {
				_m.TotalQuestionsAnswered = int(value.Int64)
			}
		case subjectperformance.FieldMarksEarned:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field marks_earned", values[i])
			} else if value.Valid {
				_m.MarksEarned = int(value.Int64)
			}
		case subjectperformance.FieldMarksAvailable:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field marks_available", values[i])
			} else if value.Valid {
				_m.MarksAvailable = int(value.Int64)
			}
		case subjectperformance.FieldAccuracyRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy_rate", values[i])
			} else if value.Valid {
				_m.AccuracyRate = value.Float64
			}
		case subjectperformance.FieldStudyHours:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field study_hours", values[i])
			} else if value.Valid {
				_m.StudyHours = value.Float64
			}
		case subjectperformance.FieldLastActivityDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_activity_date", values[i])
			} else if value.Valid {
				_m.LastActivityDate = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubjectPerformance.
// This includes values selected through modifiers, order, etc.
func (_m *SubjectPerformance) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SubjectPerformance.
// Note that you need to call SubjectPerformance.Unwrap() before calling this method if this SubjectPerformance
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubjectPerformance) Update() *SubjectPerformanceUpdateOne {
	return NewSubjectPerformanceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubjectPerformance entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubjectPerformance) Unwrap() *SubjectPerformance {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubjectPerformance is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubjectPerformance) String() string {
	var builder strings.Builder
	builder.WriteString("SubjectPerformance(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(_m.SubjectID)
	builder.WriteString(", ")
	builder.WriteString("exam_board=")
	builder.WriteString(_m.ExamBoard)
	builder.WriteString(", ")
	builder.WriteString("total_questions_answered=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalQuestionsAnswered))
	builder.WriteString(", ")
	builder.WriteString("marks_earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.MarksEarned))
	builder.WriteString(", ")
	builder.WriteString("marks_available=")
	builder.WriteString(fmt.Sprintf("%v", _m.MarksAvailable))
	builder.WriteString(", ")
	builder.WriteString("accuracy_rate=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccuracyRate))
	builder.WriteString(", ")
	builder.WriteString("study_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudyHours))
	builder.WriteString(", ")
	builder.WriteString("last_activity_date=")
	builder.WriteString(_m.LastActivityDate.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SubjectPerformances is a parsable slice of SubjectPerformance.
type SubjectPerformances []*SubjectPerformance
