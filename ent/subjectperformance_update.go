// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/revisely/revisely/ent/predicate"
	"github.com/revisely/revisely/ent/subjectperformance"
)

// SubjectPerformanceUpdate is the builder for updating SubjectPerformance entities.
type SubjectPerformanceUpdate struct {
	config
	hooks    []Hook
	mutation *SubjectPerformanceMutation
}

// Where appends a list predicates to the SubjectPerformanceUpdate builder.
func (_u *SubjectPerformanceUpdate) Where(ps ...predicate.SubjectPerformance) *SubjectPerformanceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SubjectPerformanceUpdate) SetUserID(v string) *SubjectPerformanceUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubjectPerformanceUpdate) SetNillableUserID(v *string) *SubjectPerformanceUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *SubjectPerformanceUpdate) SetSubjectID(v string) *SubjectPerformanceUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *SubjectPerformanceUpdate) SetNillableSubjectID(v *string) *SubjectPerformanceUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetExamBoard sets the "exam_board" field.
func (_u *SubjectPerformanceUpdate) SetExamBoard(v string) *SubjectPerformanceUpdate {
	_u.mutation.SetExamBoard(v)
	return _u
}

// SetNillableExamBoard sets the "exam_board" field if the given value is not nil.
func (_u *SubjectPerformanceUpdate) SetNillableExamBoard(v *string) *SubjectPerformanceUpdate {
	if v != nil {
		_u.SetExamBoard(*v)
	}
	return _u
}

// SetTotalQuestionsAnswered sets the "total_questions_answered" field.
func (_u *SubjectPerformanceUpdate) SetTotalQuestionsAnswered(v int) *SubjectPerformanceUpdate {
	_u.mutation.ResetTotalQuestionsAnswered()
	_u.mutation.SetTotalQuestionsAnswered(v)
	return _u
}

// SetNillableTotalQuestionsAnswered sets the "total_questions_answered" field if the given value is not nil.
func (_u *SubjectPerformanceUpdate) SetNillableTotalQuestionsAnswered(v *int) *SubjectPerformanceUpdate {
	if v != nil {
		_u.SetTotalQuestionsAnswered(*v)
	}
	return _u
}

// AddTotalQuestionsAnswered adds value to the "total_questions_answered" field.
func (_u *SubjectPerformanceUpdate) AddTotalQuestionsAnswered(v int) *SubjectPerformanceUpdate {
	_u.mutation.AddTotalQuestionsAnswered(v)
	return _u
}

// SetMarksEarned sets the "marks_earned" field.
func (_u *SubjectPerformanceUpdate) SetMarksEarned(v int) *SubjectPerformanceUpdate {
	_u.mutation.ResetMarksEarned()
	_u.mutation.SetMarksEarned(v)
	return _u
}

// SetNillableMarksEarned sets the "marks_earned" field if the given value is not nil.
func (_u *SubjectPerformanceUpdate) SetNillableMarksEarned(v *int) *SubjectPerformanceUpdate {
	if v != nil {
		_u.SetMarksEarned(*v)
	}
	return _u
}

// AddMarksEarned adds value to the "marks_earned" field.
func (_u *SubjectPerformanceUpdate) AddMarksEarned(v int) *SubjectPerformanceUpdate {
	_u.mutation.AddMarksEarned(v)
	return _u
}

// SetMarksAvailable sets the "marks_available" field.
func (_u *SubjectPerformanceUpdate) SetMarksAvailable(v int) *SubjectPerformanceUpdate {
	_u.mutation.ResetMarksAvailable()
	_u.mutation.SetMarksAvailable(v)
	return _u
}

// SetNillableMarksAvailable sets the "marks_available" field if the given value is not nil.
func (_u *SubjectPerformanceUpdate) SetNillableMarksAvailable(v *int) *SubjectPerformanceUpdate {
	if v != nil {
		_u.SetMarksAvailable(*v)
	}
	return _u
}

// AddMarksAvailable adds value to the "marks_available" field.
func (_u *SubjectPerformanceUpdate) AddMarksAvailable(v int) *SubjectPerformanceUpdate {
	_u.mutation.AddMarksAvailable(v)
	return _u
}

// SetAccuracyRate sets the "accuracy_rate" field.
func (_u *SubjectPerformanceUpdate) SetAccuracyRate(v float64) *SubjectPerformanceUpdate {
	_u.mutation.ResetAccuracyRate()
	_u.mutation.SetAccuracyRate(v)
	return _u
}

// SetNillableAccuracyRate sets the "accuracy_rate" field if the given value is not nil.
func (_u *SubjectPerformanceUpdate) SetNillableAccuracyRate(v *float64) *SubjectPerformanceUpdate {
	if v != nil {
		_u.SetAccuracyRate(*v)
	}
	return _u
}

// AddAccuracyRate adds value to the "accuracy_rate" field.
func (_u *SubjectPerformanceUpdate) AddAccuracyRate(v float64) *SubjectPerformanceUpdate {
	_u.mutation.AddAccuracyRate(v)
	return _u
}

// SetStudyHours sets the "study_hours" field.
func (_u *SubjectPerformanceUpdate) SetStudyHours(v float64) *SubjectPerformanceUpdate {
	_u.mutation.ResetStudyHours()
	_u.mutation.SetStudyHours(v)
	return _u
}

// SetNillableStudyHours sets the "study_hours" field if the given value is not nil.
func (_u *SubjectPerformanceUpdate) SetNillableStudyHours(v *float64) *SubjectPerformanceUpdate {
	if v != nil {
		_u.SetStudyHours(*v)
	}
	return _u
}

// AddStudyHours adds value to the "study_hours" field.
func (_u *SubjectPerformanceUpdate) AddStudyHours(v float64) *SubjectPerformanceUpdate {
	_u.mutation.AddStudyHours(v)
	return _u
}

// SetLastActivityDate sets the "last_activity_date" field.
func (_u *SubjectPerformanceUpdate) SetLastActivityDate(v time.Time) *SubjectPerformanceUpdate {
	_u.mutation.SetLastActivityDate(v)
	return _u
}

// SetNillableLastActivityDate sets the "last_activity_date" field if the given value is not nil.
func (_u *SubjectPerformanceUpdate) SetNillableLastActivityDate(v *time.Time) *SubjectPerformanceUpdate {
	if v != nil {
		_u.SetLastActivityDate(*v)
	}
	return _u
}

// Mutation returns the SubjectPerformanceMutation object of the builder.
func (_u *SubjectPerformanceUpdate) Mutation() *SubjectPerformanceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubjectPerformanceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectPerformanceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubjectPerformanceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectPerformanceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectPerformanceUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := subjectperformance.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SubjectPerformance.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := subjectperformance.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "SubjectPerformance.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamBoard(); ok {
		if err := subjectperformance.ExamBoardValidator(v); err != nil {
			return &ValidationError{Name: "exam_board", err: fmt.Errorf(`ent: validator failed for field "SubjectPerformance.exam_board": %w`, err)}
		}
	}
	return nil
}

func (_u *SubjectPerformanceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subjectperformance.Table, subjectperformance.Columns, sqlgraph.NewFieldSpec(subjectperformance.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(subjectperformance.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(subjectperformance.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamBoard(); ok {
		_spec.SetField(subjectperformance.FieldExamBoard, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestionsAnswered(); ok {
		_spec.SetField(subjectperformance.FieldTotalQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestionsAnswered(); ok {
		_spec.AddField(subjectperformance.FieldTotalQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MarksEarned(); ok {
		_spec.SetField(subjectperformance.FieldMarksEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMarksEarned(); ok {
		_spec.AddField(subjectperformance.FieldMarksEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MarksAvailable(); ok {
		_spec.SetField(subjectperformance.FieldMarksAvailable, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMarksAvailable(); ok {
		_spec.AddField(subjectperformance.FieldMarksAvailable, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AccuracyRate(); ok {
		_spec.SetField(subjectperformance.FieldAccuracyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracyRate(); ok {
		_spec.AddField(subjectperformance.FieldAccuracyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StudyHours(); ok {
		_spec.SetField(subjectperformance.FieldStudyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStudyHours(); ok {
		_spec.AddField(subjectperformance.FieldStudyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastActivityDate(); ok {
		_spec.SetField(subjectperformance.FieldLastActivityDate, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subjectperformance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubjectPerformanceUpdateOne is the builder for updating a single SubjectPerformance entity.
type SubjectPerformanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubjectPerformanceMutation
}

// SetUserID sets the "user_id" field.
func (_u *SubjectPerformanceUpdateOne) SetUserID(v string) *SubjectPerformanceUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubjectPerformanceUpdateOne) SetNillableUserID(v *string) *SubjectPerformanceUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *SubjectPerformanceUpdateOne) SetSubjectID(v string) *SubjectPerformanceUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *SubjectPerformanceUpdateOne) SetNillableSubjectID(v *string) *SubjectPerformanceUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetExamBoard sets the "exam_board" field.
func (_u *SubjectPerformanceUpdateOne) SetExamBoard(v string) *SubjectPerformanceUpdateOne {
	_u.mutation.SetExamBoard(v)
	return _u
}

// SetNillableExamBoard sets the "exam_board" field if the given value is not nil.
func (_u *SubjectPerformanceUpdateOne) SetNillableExamBoard(v *string) *SubjectPerformanceUpdateOne {
	if v != nil {
		_u.SetExamBoard(*v)
	}
	return _u
}

// SetTotalQuestionsAnswered sets the "total_questions_answered" field.
func (_u *SubjectPerformanceUpdateOne) SetTotalQuestionsAnswered(v int) *SubjectPerformanceUpdateOne {
	_u.mutation.ResetTotalQuestionsAnswered()
	_u.mutation.SetTotalQuestionsAnswered(v)
	return _u
}

// SetNillableTotalQuestionsAnswered sets the "total_questions_answered" field if the given value is not nil.
func (_u *SubjectPerformanceUpdateOne) SetNillableTotalQuestionsAnswered(v *int) *SubjectPerformanceUpdateOne {
	if v != nil {
		_u.SetTotalQuestionsAnswered(*v)
	}
	return _u
}

// AddTotalQuestionsAnswered adds value to the "total_questions_answered" field.
func (_u *SubjectPerformanceUpdateOne) AddTotalQuestionsAnswered(v int) *SubjectPerformanceUpdateOne {
	_u.mutation.AddTotalQuestionsAnswered(v)
	return _u
}

// SetMarksEarned sets the "marks_earned" field.
func (_u *SubjectPerformanceUpdateOne) SetMarksEarned(v int) *SubjectPerformanceUpdateOne {
	_u.mutation.ResetMarksEarned()
	_u.mutation.SetMarksEarned(v)
	return _u
}

// SetNillableMarksEarned sets the "marks_earned" field if the given value is not nil.
func (_u *SubjectPerformanceUpdateOne) SetNillableMarksEarned(v *int) *SubjectPerformanceUpdateOne {
	if v != nil {
		_u.SetMarksEarned(*v)
	}
	return _u
}

// AddMarksEarned adds value to the "marks_earned" field.
func (_u *SubjectPerformanceUpdateOne) AddMarksEarned(v int) *SubjectPerformanceUpdateOne {
	_u.mutation.AddMarksEarned(v)
	return _u
}

// SetMarksAvailable sets the "marks_available" field.
func (_u *SubjectPerformanceUpdateOne) SetMarksAvailable(v int) *SubjectPerformanceUpdateOne {
	_u.mutation.ResetMarksAvailable()
	_u.mutation.SetMarksAvailable(v)
	return _u
}

// SetNillableMarksAvailable sets the "marks_available" field if the given value is not nil.
func (_u *SubjectPerformanceUpdateOne) SetNillableMarksAvailable(v *int) *SubjectPerformanceUpdateOne {
	if v != nil {
		_u.SetMarksAvailable(*v)
	}
	return _u
}

// AddMarksAvailable adds value to the "marks_available" field.
func (_u *SubjectPerformanceUpdateOne) AddMarksAvailable(v int) *SubjectPerformanceUpdateOne {
	_u.mutation.AddMarksAvailable(v)
	return _u
}

// SetAccuracyRate sets the "accuracy_rate" field.
func (_u *SubjectPerformanceUpdateOne) SetAccuracyRate(v float64) *SubjectPerformanceUpdateOne {
	_u.mutation.ResetAccuracyRate()
	_u.mutation.SetAccuracyRate(v)
	return _u
}

// SetNillableAccuracyRate sets the "accuracy_rate" field if the given value is not nil.
func (_u *SubjectPerformanceUpdateOne) SetNillableAccuracyRate(v *float64) *SubjectPerformanceUpdateOne {
	if v != nil {
		_u.SetAccuracyRate(*v)
	}
	return _u
}

// AddAccuracyRate adds value to the "accuracy_rate" field.
func (_u *SubjectPerformanceUpdateOne) AddAccuracyRate(v float64) *SubjectPerformanceUpdateOne {
	_u.mutation.AddAccuracyRate(v)
	return _u
}

// SetStudyHours sets the "study_hours" field.
func (_u *SubjectPerformanceUpdateOne) SetStudyHours(v float64) *SubjectPerformanceUpdateOne {
	_u.mutation.ResetStudyHours()
	_u.mutation.SetStudyHours(v)
	return _u
}

// SetNillableStudyHours sets the "study_hours" field if the given value is not nil.
func (_u *SubjectPerformanceUpdateOne) SetNillableStudyHours(v *float64) *SubjectPerformanceUpdateOne {
	if v != nil {
		_u.SetStudyHours(*v)
	}
	return _u
}

// AddStudyHours adds value to the "study_hours" field.
func (_u *SubjectPerformanceUpdateOne) AddStudyHours(v float64) *SubjectPerformanceUpdateOne {
	_u.mutation.AddStudyHours(v)
	return _u
}

// SetLastActivityDate sets the "last_activity_date" field.
func (_u *SubjectPerformanceUpdateOne) SetLastActivityDate(v time.Time) *SubjectPerformanceUpdateOne {
	_u.mutation.SetLastActivityDate(v)
	return _u
}

// SetNillableLastActivityDate sets the "last_activity_date" field if the given value is not nil.
func (_u *SubjectPerformanceUpdateOne) SetNillableLastActivityDate(v *time.Time) *SubjectPerformanceUpdateOne {
	if v != nil {
		_u.SetLastActivityDate(*v)
	}
	return _u
}

// Mutation returns the SubjectPerformanceMutation object of the builder.
func (_u *SubjectPerformanceUpdateOne) Mutation() *SubjectPerformanceMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubjectPerformanceUpdate builder.
func (_u *SubjectPerformanceUpdateOne) Where(ps ...predicate.SubjectPerformance) *SubjectPerformanceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubjectPerformanceUpdateOne) Select(field string, fields ...string) *SubjectPerformanceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubjectPerformance entity.
func (_u *SubjectPerformanceUpdateOne) Save(ctx context.Context) (*SubjectPerformance, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectPerformanceUpdateOne) SaveX(ctx context.Context) *SubjectPerformance {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubjectPerformanceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectPerformanceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectPerformanceUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := subjectperformance.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SubjectPerformance.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := subjectperformance.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "SubjectPerformance.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExamBoard(); ok {
		if err := subjectperformance.ExamBoardValidator(v); err != nil {
			return &ValidationError{Name: "exam_board", err: fmt.Errorf(`ent: validator failed for field "SubjectPerformance.exam_board": %w`, err)}
		}
	}
	return nil
}

func (_u *SubjectPerformanceUpdateOne) sqlSave(ctx context.Context) (_node *SubjectPerformance, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subjectperformance.Table, subjectperformance.Columns, sqlgraph.NewFieldSpec(subjectperformance.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubjectPerformance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subjectperformance.FieldID)
		for _, f := range fields {
			if !subjectperformance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subjectperformance.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(subjectperformance.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(subjectperformance.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamBoard(); ok {
		_spec.SetField(subjectperformance.FieldExamBoard, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestionsAnswered(); ok {
		_spec.SetField(subjectperformance.FieldTotalQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestionsAnswered(); ok {
		_spec.AddField(subjectperformance.FieldTotalQuestionsAnswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MarksEarned(); ok {
		_spec.SetField(subjectperformance.FieldMarksEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMarksEarned(); ok {
		_spec.AddField(subjectperformance.FieldMarksEarned, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MarksAvailable(); ok {
		_spec.SetField(subjectperformance.FieldMarksAvailable, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMarksAvailable(); ok {
		_spec.AddField(subjectperformance.FieldMarksAvailable, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AccuracyRate(); ok {
		_spec.SetField(subjectperformance.FieldAccuracyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracyRate(); ok {
		_spec.AddField(subjectperformance.FieldAccuracyRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.StudyHours(); ok {
		_spec.SetField(subjectperformance.FieldStudyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStudyHours(); ok {
		_spec.AddField(subjectperformance.FieldStudyHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastActivityDate(); ok {
		_spec.SetField(subjectperformance.FieldLastActivityDate, field.TypeTime, value)
	}
	_node = &SubjectPerformance{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subjectperformance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
