// Code generated by ent, DO NOT EDIT.

package subjectperformance

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the subjectperformance type in the database.
	Label = "subject_performance"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldExamBoard holds the string denoting the exam_board field in the database.
	FieldExamBoard = "exam_board"
	// FieldTotalQuestionsAnswered holds the string denoting the total_questions_answered field in the database.
	FieldTotalQuestionsAnswered = "total_questions_answered"
	// FieldMarksEarned holds the string denoting the marks_earned field in the database.
	FieldMarksEarned = "marks_earned"
	// FieldMarksAvailable holds the string denoting the marks_available field in the database.
	FieldMarksAvailable = "marks_available"
	// FieldAccuracyRate holds the string denoting the accuracy_rate field in the database.
	FieldAccuracyRate = "accuracy_rate"
	// FieldStudyHours holds the string denoting the study_hours field in the database.
	FieldStudyHours = "study_hours"
	// FieldLastActivityDate holds the string denoting the last_activity_date field in the database.
	FieldLastActivityDate = "last_activity_date"
	// Table holds the table name of the subjectperformance in the database.
	Table = "subject_performances"
)

// Columns holds all SQL columns for subjectperformance fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldSubjectID,
	FieldExamBoard,
	FieldTotalQuestionsAnswered,
	FieldMarksEarned,
	FieldMarksAvailable,
	FieldAccuracyRate,
	FieldStudyHours,
	FieldLastActivityDate,
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
	// ExamBoardValidator is a validator for the "exam_board" field. It is called by the builders before save.
	ExamBoardValidator func(string) error
	// DefaultTotalQuestionsAnswered holds the default value on creation for the "total_questions_answered" field.
	DefaultTotalQuestionsAnswered int
	// DefaultMarksEarned holds the default value on creation for the "marks_earned" field.
	DefaultMarksEarned int
	// DefaultMarksAvailable holds the default value on creation for the "marks_available" field.
	DefaultMarksAvailable int
	// DefaultAccuracyRate holds the default value on creation for the "accuracy_rate" field.
	DefaultAccuracyRate float64
	// DefaultStudyHours holds the default value on creation for the "study_hours" field.
	DefaultStudyHours float64
)

// OrderOption defines the ordering options for the SubjectPerformance queries.
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

// ByExamBoard orders the results by the exam_board field.
func ByExamBoard(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamBoard, opts...).ToFunc()
}

// ByTotalQuestionsAnswered orders the results by the total_questions_answered field.
func ByTotalQuestionsAnswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestionsAnswered, opts...).ToFunc()
}

// ByMarksEarned orders the results by the marks_earned field.
func ByMarksEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarksEarned, opts...).ToFunc()
}

// ByMarksAvailable orders the results by the marks_available field.
func ByMarksAvailable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarksAvailable, opts...).ToFunc()
}

// ByAccuracyRate orders the results by the accuracy_rate field.
func ByAccuracyRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracyRate, opts...).ToFunc()
}

// ByStudyHours orders the results by the study_hours field.
func ByStudyHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyHours, opts...).ToFunc()
}

// ByLastActivityDate orders the results by the last_activity_date field.
func ByLastActivityDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActivityDate, opts...).ToFunc()
}
