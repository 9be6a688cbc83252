// Code generated by ent, DO NOT EDIT.

package subjectperformance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/revisely/revisely/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldUserID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldSubjectID, v))
}

// ExamBoard applies equality check predicate on the "exam_board" field. It's identical to ExamBoardEQ.
func ExamBoard(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldExamBoard, v))
}

// TotalQuestionsAnswered applies equality check predicate on the "total_questions_answered" field. It's identical to TotalQuestionsAnsweredEQ.
func TotalQuestionsAnswered(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldTotalQuestionsAnswered, v))
}

// MarksEarned applies equality check predicate on the "marks_earned" field. It's identical to MarksEarnedEQ.
func MarksEarned(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldMarksEarned, v))
}

// MarksAvailable applies equality check predicate on the "marks_available" field. It's identical to MarksAvailableEQ.
func MarksAvailable(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldMarksAvailable, v))
}

// AccuracyRate applies equality check predicate on the "accuracy_rate" field. It's identical to AccuracyRateEQ.
func AccuracyRate(v float64) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldAccuracyRate, v))
}

// StudyHours applies equality check predicate on the "study_hours" field. It's identical to StudyHoursEQ.
func StudyHours(v float64) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldStudyHours, v))
}

// LastActivityDate applies equality check predicate on the "last_activity_date" field. It's identical to LastActivityDateEQ.
func LastActivityDate(v time.Time) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldLastActivityDate, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldContainsFold(FieldUserID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldContainsFold(FieldSubjectID, v))
}

// ExamBoardEQ applies the EQ predicate on the "exam_board" field.
func ExamBoardEQ(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldExamBoard, v))
}

// ExamBoardNEQ applies the NEQ predicate on the "exam_board" field.
func ExamBoardNEQ(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNEQ(FieldExamBoard, v))
}

// ExamBoardIn applies the In predicate on the "exam_board" field.
func ExamBoardIn(vs ...string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldIn(FieldExamBoard, vs...))
}

// ExamBoardNotIn applies the NotIn predicate on the "exam_board" field.
func ExamBoardNotIn(vs ...string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNotIn(FieldExamBoard, vs...))
}

// ExamBoardGT applies the GT predicate on the "exam_board" field.
func ExamBoardGT(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGT(FieldExamBoard, v))
}

// ExamBoardGTE applies the GTE predicate on the "exam_board" field.
func ExamBoardGTE(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGTE(FieldExamBoard, v))
}

// ExamBoardLT applies the LT predicate on the "exam_board" field.
func ExamBoardLT(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLT(FieldExamBoard, v))
}

// ExamBoardLTE applies the LTE predicate on the "exam_board" field.
func ExamBoardLTE(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLTE(FieldExamBoard, v))
}

// ExamBoardContains applies the Contains predicate on the "exam_board" field.
func ExamBoardContains(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldContains(FieldExamBoard, v))
}

// ExamBoardHasPrefix applies the HasPrefix predicate on the "exam_board" field.
func ExamBoardHasPrefix(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldHasPrefix(FieldExamBoard, v))
}

// ExamBoardHasSuffix applies the HasSuffix predicate on the "exam_board" field.
func ExamBoardHasSuffix(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldHasSuffix(FieldExamBoard, v))
}

// ExamBoardEqualFold applies the EqualFold predicate on the "exam_board" field.
func ExamBoardEqualFold(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEqualFold(FieldExamBoard, v))
}

// ExamBoardContainsFold applies the ContainsFold predicate on the "exam_board" field.
func ExamBoardContainsFold(v string) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldContainsFold(FieldExamBoard, v))
}

// TotalQuestionsAnsweredEQ applies the EQ predicate on the "total_questions_answered" field.
func TotalQuestionsAnsweredEQ(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldTotalQuestionsAnswered, v))
}

// TotalQuestionsAnsweredNEQ applies the NEQ predicate on the "total_questions_answered" field.
func TotalQuestionsAnsweredNEQ(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNEQ(FieldTotalQuestionsAnswered, v))
}

// TotalQuestionsAnsweredIn applies the In predicate on the "total_questions_answered" field.
func TotalQuestionsAnsweredIn(vs ...int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldIn(FieldTotalQuestionsAnswered, vs...))
}

// TotalQuestionsAnsweredNotIn applies the NotIn predicate on the "total_questions_answered" field.
func TotalQuestionsAnsweredNotIn(vs ...int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNotIn(FieldTotalQuestionsAnswered, vs...))
}

// TotalQuestionsAnsweredGT applies the GT predicate on the "total_questions_answered" field.
func TotalQuestionsAnsweredGT(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGT(FieldTotalQuestionsAnswered, v))
}

// TotalQuestionsAnsweredGTE applies the GTE predicate on the "total_questions_answered" field.
func TotalQuestionsAnsweredGTE(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGTE(FieldTotalQuestionsAnswered, v))
}

// TotalQuestionsAnsweredLT applies the LT predicate on the "total_questions_answered" field.
func TotalQuestionsAnsweredLT(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLT(FieldTotalQuestionsAnswered, v))
}

// TotalQuestionsAnsweredLTE applies the LTE predicate on the "total_questions_answered" field.
func TotalQuestionsAnsweredLTE(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLTE(FieldTotalQuestionsAnswered, v))
}

// MarksEarnedEQ applies the EQ predicate on the "marks_earned" field.
func MarksEarnedEQ(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldMarksEarned, v))
}

// MarksEarnedNEQ applies the NEQ predicate on the "marks_earned" field.
func MarksEarnedNEQ(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNEQ(FieldMarksEarned, v))
}

// MarksEarnedIn applies the In predicate on the "marks_earned" field.
func MarksEarnedIn(vs ...int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldIn(FieldMarksEarned, vs...))
}

// MarksEarnedNotIn applies the NotIn predicate on the "marks_earned" field.
func MarksEarnedNotIn(vs ...int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNotIn(FieldMarksEarned, vs...))
}

// MarksEarnedGT applies the GT predicate on the "marks_earned" field.
func MarksEarnedGT(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGT(FieldMarksEarned, v))
}

// MarksEarnedGTE applies the GTE predicate on the "marks_earned" field.
func MarksEarnedGTE(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGTE(FieldMarksEarned, v))
}

// MarksEarnedLT applies the LT predicate on the "marks_earned" field.
func MarksEarnedLT(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLT(FieldMarksEarned, v))
}

// MarksEarnedLTE applies the LTE predicate on the "marks_earned" field.
func MarksEarnedLTE(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLTE(FieldMarksEarned, v))
}

// MarksAvailableEQ applies the EQ predicate on the "marks_available" field.
func MarksAvailableEQ(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldMarksAvailable, v))
}

// MarksAvailableNEQ applies the NEQ predicate on the "marks_available" field.
func MarksAvailableNEQ(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNEQ(FieldMarksAvailable, v))
}

// MarksAvailableIn applies the In predicate on the "marks_available" field.
func MarksAvailableIn(vs ...int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldIn(FieldMarksAvailable, vs...))
}

// MarksAvailableNotIn applies the NotIn predicate on the "marks_available" field.
func MarksAvailableNotIn(vs ...int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNotIn(FieldMarksAvailable, vs...))
}

// MarksAvailableGT applies the GT predicate on the "marks_available" field.
func MarksAvailableGT(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGT(FieldMarksAvailable, v))
}

// MarksAvailableGTE applies the GTE predicate on the "marks_available" field.
func MarksAvailableGTE(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGTE(FieldMarksAvailable, v))
}

// MarksAvailableLT applies the LT predicate on the "marks_available" field.
func MarksAvailableLT(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLT(FieldMarksAvailable, v))
}

// MarksAvailableLTE applies the LTE predicate on the "marks_available" field.
func MarksAvailableLTE(v int) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLTE(FieldMarksAvailable, v))
}

// AccuracyRateEQ applies the EQ predicate on the "accuracy_rate" field.
func AccuracyRateEQ(v float64) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldAccuracyRate, v))
}

// AccuracyRateNEQ applies the NEQ predicate on the "accuracy_rate" field.
func AccuracyRateNEQ(v float64) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNEQ(FieldAccuracyRate, v))
}

// AccuracyRateIn applies the In predicate on the "accuracy_rate" field.
func AccuracyRateIn(vs ...float64) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldIn(FieldAccuracyRate, vs...))
}

// AccuracyRateNotIn applies the NotIn predicate on the "accuracy_rate" field.
func AccuracyRateNotIn(vs ...float64) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNotIn(FieldAccuracyRate, vs...))
}

// AccuracyRateGT applies the GT predicate on the "accuracy_rate" field.
func AccuracyRateGT(v float64) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGT(FieldAccuracyRate, v))
}

// AccuracyRateGTE applies the GTE predicate on the "accuracy_rate" field.
func AccuracyRateGTE(v float64) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGTE(FieldAccuracyRate, v))
}

// AccuracyRateLT applies the LT predicate on the "accuracy_rate" field.
func AccuracyRateLT(v float64) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLT(FieldAccuracyRate, v))
}

// AccuracyRateLTE applies the LTE predicate on the "accuracy_rate" field.
func AccuracyRateLTE(v float64) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLTE(FieldAccuracyRate, v))
}

// StudyHoursEQ applies the EQ predicate on the "study_hours" field.
func StudyHoursEQ(v float64) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldStudyHours, v))
}

// StudyHoursNEQ applies the NEQ predicate on the "study_hours" field.
func StudyHoursNEQ(v float64) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNEQ(FieldStudyHours, v))
}

// StudyHoursIn applies the In predicate on the "study_hours" field.
func StudyHoursIn(vs ...float64) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldIn(FieldStudyHours, vs...))
}

// StudyHoursNotIn applies the NotIn predicate on the "study_hours" field.
func StudyHoursNotIn(vs ...float64) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNotIn(FieldStudyHours, vs...))
}

// StudyHoursGT applies the GT predicate on the "study_hours" field.
func StudyHoursGT(v float64) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGT(FieldStudyHours, v))
}

// StudyHoursGTE applies the GTE predicate on the "study_hours" field.
func StudyHoursGTE(v float64) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGTE(FieldStudyHours, v))
}

// StudyHoursLT applies the LT predicate on the "study_hours" field.
func StudyHoursLT(v float64) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLT(FieldStudyHours, v))
}

// StudyHoursLTE applies the LTE predicate on the "study_hours" field.
func StudyHoursLTE(v float64) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLTE(FieldStudyHours, v))
}

// LastActivityDateEQ applies the EQ predicate on the "last_activity_date" field.
func LastActivityDateEQ(v time.Time) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldEQ(FieldLastActivityDate, v))
}

// LastActivityDateNEQ applies the NEQ predicate on the "last_activity_date" field.
func LastActivityDateNEQ(v time.Time) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNEQ(FieldLastActivityDate, v))
}

// LastActivityDateIn applies the In predicate on the "last_activity_date" field.
func LastActivityDateIn(vs ...time.Time) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldIn(FieldLastActivityDate, vs...))
}

// LastActivityDateNotIn applies the NotIn predicate on the "last_activity_date" field.
func LastActivityDateNotIn(vs ...time.Time) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldNotIn(FieldLastActivityDate, vs...))
}

// LastActivityDateGT applies the GT predicate on the "last_activity_date" field.
func LastActivityDateGT(v time.Time) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGT(FieldLastActivityDate, v))
}

// LastActivityDateGTE applies the GTE predicate on the "last_activity_date" field.
func LastActivityDateGTE(v time.Time) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldGTE(FieldLastActivityDate, v))
}

// LastActivityDateLT applies the LT predicate on the "last_activity_date" field.
func LastActivityDateLT(v time.Time) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLT(FieldLastActivityDate, v))
}

// LastActivityDateLTE applies the LTE predicate on the "last_activity_date" field.
func LastActivityDateLTE(v time.Time) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.FieldLTE(FieldLastActivityDate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubjectPerformance) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubjectPerformance) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubjectPerformance) predicate.SubjectPerformance {
	return predicate.SubjectPerformance(sql.NotPredicates(p))
}
