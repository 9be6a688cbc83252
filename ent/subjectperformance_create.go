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
	"github.com/revisely/revisely/ent/subjectperformance"
)

// SubjectPerformanceCreate is the builder for creating a SubjectPerformance entity.
type SubjectPerformanceCreate struct {
	config
	mutation *SubjectPerformanceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *SubjectPerformanceCreate) SetUserID(v string) *SubjectPerformanceCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *SubjectPerformanceCreate) SetSubjectID(v string) *SubjectPerformanceCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetExamBoard sets the "exam_board" field.
func (_c *SubjectPerformanceCreate) SetExamBoard(v string) *SubjectPerformanceCreate {
	_c.mutation.SetExamBoard(v)
	return _c
}

// SetTotalQuestionsAnswered sets the "total_questions_answered" field.
func (_c *SubjectPerformanceCreate) SetTotalQuestionsAnswered(v int) *SubjectPerformanceCreate {
	_c.mutation.SetTotalQuestionsAnswered(v)
	return _c
}

// SetNillableTotalQuestionsAnswered sets the "total_questions_answered" field if the given value is not nil.
func (_c *SubjectPerformanceCreate) SetNillableTotalQuestionsAnswered(v *int) *SubjectPerformanceCreate {
	if v != nil {
		_c.SetTotalQuestionsAnswered(*v)
	}
	return _c
}

// SetMarksEarned sets the "marks_earned" field.
func (_c *SubjectPerformanceCreate) SetMarksEarned(v int) *SubjectPerformanceCreate {
	_c.mutation.SetMarksEarned(v)
	return _c
}

// SetNillableMarksEarned sets the "marks_earned" field if the given value is not nil.
func (_c *SubjectPerformanceCreate) SetNillableMarksEarned(v *int) *SubjectPerformanceCreate {
	if v != nil {
		_c.SetMarksEarned(*v)
	}
	return _c
}

// SetMarksAvailable sets the "marks_available" field.
func (_c *SubjectPerformanceCreate) SetMarksAvailable(v int) *SubjectPerformanceCreate {
	_c.mutation.SetMarksAvailable(v)
	return _c
}

// SetNillableMarksAvailable sets the "marks_available" field if the given value is not nil.
func (_c *SubjectPerformanceCreate) SetNillableMarksAvailable(v *int) *SubjectPerformanceCreate {
	if v != nil {
		_c.SetMarksAvailable(*v)
	}
	return _c
}

// SetAccuracyRate sets the "accuracy_rate" field.
func (_c *SubjectPerformanceCreate) SetAccuracyRate(v float64) *SubjectPerformanceCreate {
	_c.mutation.SetAccuracyRate(v)
	return _c
}

// SetNillableAccuracyRate sets the "accuracy_rate" field if the given value is not nil.
func (_c *SubjectPerformanceCreate) SetNillableAccuracyRate(v *float64) *SubjectPerformanceCreate {
	if v != nil {
		_c.SetAccuracyRate(*v)
	}
	return _c
}

// SetStudyHours sets the "study_hours" field.
func (_c *SubjectPerformanceCreate) SetStudyHours(v float64) *SubjectPerformanceCreate {
	_c.mutation.SetStudyHours(v)
	return _c
}

// SetNillableStudyHours sets the "study_hours" field if the given value is not nil.
func (_c *SubjectPerformanceCreate) SetNillableStudyHours(v *float64) *SubjectPerformanceCreate {
	if v != nil {
		_c.SetStudyHours(*v)
	}
	return _c
}

// SetLastActivityDate sets the "last_activity_date" field.
func (_c *SubjectPerformanceCreate) SetLastActivityDate(v time.Time) *SubjectPerformanceCreate {
	_c.mutation.SetLastActivityDate(v)
	return _c
}

// Mutation returns the SubjectPerformanceMutation object of the builder.
func (_c *SubjectPerformanceCreate) Mutation() *SubjectPerformanceMutation {
	return _c.mutation
}

// Save creates the SubjectPerformance in the database.
func (_c *SubjectPerformanceCreate) Save(ctx context.Context) (*SubjectPerformance, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubjectPerformanceCreate) SaveX(ctx context.Context) *SubjectPerformance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectPerformanceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectPerformanceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubjectPerformanceCreate) defaults() {
	if _, ok := _c.mutation.TotalQuestionsAnswered(); !ok {
		v := subjectperformance.DefaultTotalQuestionsAnswered
		_c.mutation.SetTotalQuestionsAnswered(v)
	}
	if _, ok := _c.mutation.MarksEarned(); !ok {
		v := subjectperformance.DefaultMarksEarned
		_c.mutation.SetMarksEarned(v)
	}
	if _, ok := _c.mutation.MarksAvailable(); !ok {
		v := subjectperformance.DefaultMarksAvailable
		_c.mutation.SetMarksAvailable(v)
	}
	if _, ok := _c.mutation.AccuracyRate(); !ok {
		v := subjectperformance.DefaultAccuracyRate
		_c.mutation.SetAccuracyRate(v)
	}
	if _, ok := _c.mutation.StudyHours(); !ok {
		v := subjectperformance.DefaultStudyHours
		_c.mutation.SetStudyHours(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubjectPerformanceCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SubjectPerformance.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := subjectperformance.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SubjectPerformance.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "SubjectPerformance.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := subjectperformance.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "SubjectPerformance.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamBoard(); !ok {
		return &ValidationError{Name: "exam_board", err: errors.New(`ent: missing required field "SubjectPerformance.exam_board"`)}
	}
	if v, ok := _c.mutation.ExamBoard(); ok {
		if err := subjectperformance.ExamBoardValidator(v); err != nil {
			return &ValidationError{Name: "exam_board", err: fmt.Errorf(`ent: validator failed for field "SubjectPerformance.exam_board": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuestionsAnswered(); !ok {
		return &ValidationError{Name: "total_questions_answered", err: errors.New(`ent: missing required field "SubjectPerformance.total_questions_answered"`)}
	}
	if _, ok := _c.mutation.MarksEarned(); !ok {
		return &ValidationError{Name: "marks_earned", err: errors.New(`ent: missing required field "SubjectPerformance.marks_earned"`)}
	}
	if _, ok := _c.mutation.MarksAvailable(); !ok {
		return &ValidationError{Name: "marks_available", err: errors.New(`ent: missing required field "SubjectPerformance.marks_available"`)}
	}
	if _, ok := _c.mutation.AccuracyRate(); !ok {
		return &ValidationError{Name: "accuracy_rate", err: errors.New(`ent: missing required field "SubjectPerformance.accuracy_rate"`)}
	}
	if _, ok := _c.mutation.StudyHours(); !ok {
		return &ValidationError{Name: "study_hours", err: errors.New(`ent: missing required field "SubjectPerformance.study_hours"`)}
	}
	if _, ok := _c.mutation.LastActivityDate(); !ok {
		return &ValidationError{Name: "last_activity_date", err: errors.New(`ent: missing required field "SubjectPerformance.last_activity_date"`)}
	}
	return nil
}

func (_c *SubjectPerformanceCreate) sqlSave(ctx context.Context) (*SubjectPerformance, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubjectPerformanceCreate) createSpec() (*SubjectPerformance, *sqlgraph.CreateSpec) {
	var (
		_node = &SubjectPerformance{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subjectperformance.Table, sqlgraph.NewFieldSpec(subjectperformance.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(subjectperformance.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(subjectperformance.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.ExamBoard(); ok {
		_spec.SetField(subjectperformance.FieldExamBoard, field.TypeString, value)
		_node.ExamBoard = value
	}
	if value, ok := _c.mutation.TotalQuestionsAnswered(); ok {
		_spec.SetField(subjectperformance.FieldTotalQuestionsAnswered, field.TypeInt, value)
		_node.TotalQuestionsAnswered = value
	}
	if value, ok := _c.mutation.MarksEarned(); ok {
		_spec.SetField(subjectperformance.FieldMarksEarned, field.TypeInt, value)
		_node.MarksEarned = value
	}
	if value, ok := _c.mutation.MarksAvailable(); ok {
		_spec.SetField(subjectperformance.FieldMarksAvailable, field.TypeInt, value)
		_node.MarksAvailable = value
	}
	if value, ok := _c.mutation.AccuracyRate(); ok {
		_spec.SetField(subjectperformance.FieldAccuracyRate, field.TypeFloat64, value)
		_node.AccuracyRate = value
	}
	if value, ok := _c.mutation.StudyHours(); ok {
		_spec.SetField(subjectperformance.FieldStudyHours, field.TypeFloat64, value)
		_node.StudyHours = value
	}
	if value, ok := _c.mutation.LastActivityDate(); ok {
		_spec.SetField(subjectperformance.FieldLastActivityDate, field.TypeTime, value)
		_node.LastActivityDate = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SubjectPerformance.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubjectPerformanceUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *SubjectPerformanceCreate) OnConflict(opts ...sql.ConflictOption) *SubjectPerformanceUpsertOne {
	_c.conflict = opts
	return &SubjectPerformanceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SubjectPerformance.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubjectPerformanceCreate) OnConflictColumns(columns ...string) *SubjectPerformanceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubjectPerformanceUpsertOne{
		create: _c,
	}
}

type (
	// SubjectPerformanceUpsertOne is the builder for "upsert"-ing
	//  one SubjectPerformance node.
	SubjectPerformanceUpsertOne struct {
		create *SubjectPerformanceCreate
	}

	// SubjectPerformanceUpsert is the "OnConflict" setter.
	SubjectPerformanceUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *SubjectPerformanceUpsert) SetUserID(v string) *SubjectPerformanceUpsert {
	u.Set(subjectperformance.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SubjectPerformanceUpsert) UpdateUserID() *SubjectPerformanceUpsert {
	u.SetExcluded(subjectperformance.FieldUserID)
	return u
}

// SetSubjectID sets the "subject_id" field.
func (u *SubjectPerformanceUpsert) SetSubjectID(v string) *SubjectPerformanceUpsert {
	u.Set(subjectperformance.FieldSubjectID, v)
	return u
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *SubjectPerformanceUpsert) UpdateSubjectID() *SubjectPerformanceUpsert {
	u.SetExcluded(subjectperformance.FieldSubjectID)
	return u
}

// SetExamBoard sets the "exam_board" field.
func (u *SubjectPerformanceUpsert) SetExamBoard(v string) *SubjectPerformanceUpsert {
	u.Set(subjectperformance.FieldExamBoard, v)
	return u
}

// UpdateExamBoard sets the "exam_board" field to the value that was provided on create.
func (u *SubjectPerformanceUpsert) UpdateExamBoard() *SubjectPerformanceUpsert {
	u.SetExcluded(subjectperformance.FieldExamBoard)
	return u
}

// SetTotalQuestionsAnswered sets the "total_questions_answered" field.
func (u *SubjectPerformanceUpsert) SetTotalQuestionsAnswered(v int) *SubjectPerformanceUpsert {
	u.Set(subjectperformance.FieldTotalQuestionsAnswered, v)
	return u
}

// UpdateTotalQuestionsAnswered sets the "total_questions_answered" field to the value that was provided on create.
func (u *SubjectPerformanceUpsert) UpdateTotalQuestionsAnswered() *SubjectPerformanceUpsert {
	u.SetExcluded(subjectperformance.FieldTotalQuestionsAnswered)
	return u
}

// AddTotalQuestionsAnswered adds v to the "total_questions_answered" field.
func (u *SubjectPerformanceUpsert) AddTotalQuestionsAnswered(v int) *SubjectPerformanceUpsert {
	u.Add(subjectperformance.FieldTotalQuestionsAnswered, v)
	return u
}

// SetMarksEarned sets the "marks_earned" field.
func (u *SubjectPerformanceUpsert) SetMarksEarned(v int) *SubjectPerformanceUpsert {
	u.Set(subjectperformance.FieldMarksEarned, v)
	return u
}

// UpdateMarksEarned sets the "marks_earned" field to the value that was provided on create.
func (u *SubjectPerformanceUpsert) UpdateMarksEarned() *SubjectPerformanceUpsert {
	u.SetExcluded(subjectperformance.FieldMarksEarned)
	return u
}

// AddMarksEarned adds v to the "marks_earned" field.
func (u *SubjectPerformanceUpsert) AddMarksEarned(v int) *SubjectPerformanceUpsert {
	u.Add(subjectperformance.FieldMarksEarned, v)
	return u
}

// SetMarksAvailable sets the "marks_available" field.
func (u *SubjectPerformanceUpsert) SetMarksAvailable(v int) *SubjectPerformanceUpsert {
	u.Set(subjectperformance.FieldMarksAvailable, v)
	return u
}

// UpdateMarksAvailable sets the "marks_available" field to the value that was provided on create.
func (u *SubjectPerformanceUpsert) UpdateMarksAvailable() *SubjectPerformanceUpsert {
	u.SetExcluded(subjectperformance.FieldMarksAvailable)
	return u
}

// AddMarksAvailable adds v to the "marks_available" field.
func (u *SubjectPerformanceUpsert) AddMarksAvailable(v int) *SubjectPerformanceUpsert {
	u.Add(subjectperformance.FieldMarksAvailable, v)
	return u
}

// SetAccuracyRate sets the "accuracy_rate" field.
func (u *SubjectPerformanceUpsert) SetAccuracyRate(v float64) *SubjectPerformanceUpsert {
	u.Set(subjectperformance.FieldAccuracyRate, v)
	return u
}

// UpdateAccuracyRate sets the "accuracy_rate" field to the value that was provided on create.
func (u *SubjectPerformanceUpsert) UpdateAccuracyRate() *SubjectPerformanceUpsert {
	u.SetExcluded(subjectperformance.FieldAccuracyRate)
	return u
}

// AddAccuracyRate adds v to the "accuracy_rate" field.
func (u *SubjectPerformanceUpsert) AddAccuracyRate(v float64) *SubjectPerformanceUpsert {
	u.Add(subjectperformance.FieldAccuracyRate, v)
	return u
}

// SetStudyHours sets the "study_hours" field.
func (u *SubjectPerformanceUpsert) SetStudyHours(v float64) *SubjectPerformanceUpsert {
	u.Set(subjectperformance.FieldStudyHours, v)
	return u
}

// UpdateStudyHours sets the "study_hours" field to the value that was provided on create.
func (u *SubjectPerformanceUpsert) UpdateStudyHours() *SubjectPerformanceUpsert {
	u.SetExcluded(subjectperformance.FieldStudyHours)
	return u
}

// AddStudyHours adds v to the "study_hours" field.
func (u *SubjectPerformanceUpsert) AddStudyHours(v float64) *SubjectPerformanceUpsert {
	u.Add(subjectperformance.FieldStudyHours, v)
	return u
}

// SetLastActivityDate sets the "last_activity_date" field.
func (u *SubjectPerformanceUpsert) SetLastActivityDate(v time.Time) *SubjectPerformanceUpsert {
	u.Set(subjectperformance.FieldLastActivityDate, v)
	return u
}

// UpdateLastActivityDate sets the "last_activity_date" field to the value that was provided on create.
func (u *SubjectPerformanceUpsert) UpdateLastActivityDate() *SubjectPerformanceUpsert {
	u.SetExcluded(subjectperformance.FieldLastActivityDate)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SubjectPerformance.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SubjectPerformanceUpsertOne) UpdateNewValues() *SubjectPerformanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SubjectPerformance.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SubjectPerformanceUpsertOne) Ignore() *SubjectPerformanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubjectPerformanceUpsertOne) DoNothing() *SubjectPerformanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubjectPerformanceCreate.OnConflict
// documentation for more info.
func (u *SubjectPerformanceUpsertOne) Update(set func(*SubjectPerformanceUpsert)) *SubjectPerformanceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubjectPerformanceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *SubjectPerformanceUpsertOne) SetUserID(v string) *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SubjectPerformanceUpsertOne) UpdateUserID() *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.UpdateUserID()
	})
}

// SetSubjectID sets the "subject_id" field.
func (u *SubjectPerformanceUpsertOne) SetSubjectID(v string) *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.SetSubjectID(v)
	})
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *SubjectPerformanceUpsertOne) UpdateSubjectID() *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.UpdateSubjectID()
	})
}

// SetExamBoard sets the "exam_board" field.
func (u *SubjectPerformanceUpsertOne) SetExamBoard(v string) *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.SetExamBoard(v)
	})
}

// UpdateExamBoard sets the "exam_board" field to the value that was provided on create.
func (u *SubjectPerformanceUpsertOne) UpdateExamBoard() *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.UpdateExamBoard()
	})
}

// SetTotalQuestionsAnswered sets the "total_questions_answered" field.
func (u *SubjectPerformanceUpsertOne) SetTotalQuestionsAnswered(v int) *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.SetTotalQuestionsAnswered(v)
	})
}

// AddTotalQuestionsAnswered adds v to the "total_questions_answered" field.
func (u *SubjectPerformanceUpsertOne) AddTotalQuestionsAnswered(v int) *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.AddTotalQuestionsAnswered(v)
	})
}

// UpdateTotalQuestionsAnswered sets the "total_questions_answered" field to the value that was provided on create.
func (u *SubjectPerformanceUpsertOne) UpdateTotalQuestionsAnswered() *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.UpdateTotalQuestionsAnswered()
	})
}

// SetMarksEarned sets the "marks_earned" field.
func (u *SubjectPerformanceUpsertOne) SetMarksEarned(v int) *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.SetMarksEarned(v)
	})
}

// AddMarksEarned adds v to the "marks_earned" field.
func (u *SubjectPerformanceUpsertOne) AddMarksEarned(v int) *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.AddMarksEarned(v)
	})
}

// UpdateMarksEarned sets the "marks_earned" field to the value that was provided on create.
func (u *SubjectPerformanceUpsertOne) UpdateMarksEarned() *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.UpdateMarksEarned()
	})
}

// SetMarksAvailable sets the "marks_available" field.
func (u *SubjectPerformanceUpsertOne) SetMarksAvailable(v int) *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.SetMarksAvailable(v)
	})
}

// AddMarksAvailable adds v to the "marks_available" field.
func (u *SubjectPerformanceUpsertOne) AddMarksAvailable(v int) *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.AddMarksAvailable(v)
	})
}

// UpdateMarksAvailable sets the "marks_available" field to the value that was provided on create.
func (u *SubjectPerformanceUpsertOne) UpdateMarksAvailable() *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.UpdateMarksAvailable()
	})
}

// SetAccuracyRate sets the "accuracy_rate" field.
func (u *SubjectPerformanceUpsertOne) SetAccuracyRate(v float64) *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.SetAccuracyRate(v)
	})
}

// AddAccuracyRate adds v to the "accuracy_rate" field.
func (u *SubjectPerformanceUpsertOne) AddAccuracyRate(v float64) *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.AddAccuracyRate(v)
	})
}

// UpdateAccuracyRate sets the "accuracy_rate" field to the value that was provided on create.
func (u *SubjectPerformanceUpsertOne) UpdateAccuracyRate() *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.UpdateAccuracyRate()
	})
}

// SetStudyHours sets the "study_hours" field.
func (u *SubjectPerformanceUpsertOne) SetStudyHours(v float64) *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.SetStudyHours(v)
	})
}

// AddStudyHours adds v to the "study_hours" field.
func (u *SubjectPerformanceUpsertOne) AddStudyHours(v float64) *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.AddStudyHours(v)
	})
}

// UpdateStudyHours sets the "study_hours" field to the value that was provided on create.
func (u *SubjectPerformanceUpsertOne) UpdateStudyHours() *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.UpdateStudyHours()
	})
}

// SetLastActivityDate sets the "last_activity_date" field.
func (u *SubjectPerformanceUpsertOne) SetLastActivityDate(v time.Time) *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.SetLastActivityDate(v)
	})
}

// UpdateLastActivityDate sets the "last_activity_date" field to the value that was provided on create.
func (u *SubjectPerformanceUpsertOne) UpdateLastActivityDate() *SubjectPerformanceUpsertOne {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.UpdateLastActivityDate()
	})
}

// Exec executes the query.
func (u *SubjectPerformanceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubjectPerformanceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubjectPerformanceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SubjectPerformanceUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SubjectPerformanceUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SubjectPerformanceCreateBulk is the builder for creating many SubjectPerformance entities in bulk.
type SubjectPerformanceCreateBulk struct {
	config
	err      error
	builders []*SubjectPerformanceCreate
	conflict []sql.ConflictOption
}

// Save creates the SubjectPerformance entities in the database.
func (_c *SubjectPerformanceCreateBulk) Save(ctx context.Context) ([]*SubjectPerformance, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubjectPerformance, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubjectPerformanceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SubjectPerformanceCreateBulk) SaveX(ctx context.Context) []*SubjectPerformance {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectPerformanceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectPerformanceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SubjectPerformance.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubjectPerformanceUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *SubjectPerformanceCreateBulk) OnConflict(opts ...sql.ConflictOption) *SubjectPerformanceUpsertBulk {
	_c.conflict = opts
	return &SubjectPerformanceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SubjectPerformance.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubjectPerformanceCreateBulk) OnConflictColumns(columns ...string) *SubjectPerformanceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubjectPerformanceUpsertBulk{
		create: _c,
	}
}

// SubjectPerformanceUpsertBulk is the builder for "upsert"-ing
// a bulk of SubjectPerformance nodes.
type SubjectPerformanceUpsertBulk struct {
	create *SubjectPerformanceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SubjectPerformance.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SubjectPerformanceUpsertBulk) UpdateNewValues() *SubjectPerformanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SubjectPerformance.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SubjectPerformanceUpsertBulk) Ignore() *SubjectPerformanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubjectPerformanceUpsertBulk) DoNothing() *SubjectPerformanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubjectPerformanceCreateBulk.OnConflict
// documentation for more info.
func (u *SubjectPerformanceUpsertBulk) Update(set func(*SubjectPerformanceUpsert)) *SubjectPerformanceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubjectPerformanceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *SubjectPerformanceUpsertBulk) SetUserID(v string) *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SubjectPerformanceUpsertBulk) UpdateUserID() *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.UpdateUserID()
	})
}

// SetSubjectID sets the "subject_id" field.
func (u *SubjectPerformanceUpsertBulk) SetSubjectID(v string) *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.SetSubjectID(v)
	})
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *SubjectPerformanceUpsertBulk) UpdateSubjectID() *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.UpdateSubjectID()
	})
}

// SetExamBoard sets the "exam_board" field.
func (u *SubjectPerformanceUpsertBulk) SetExamBoard(v string) *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.SetExamBoard(v)
	})
}

// UpdateExamBoard sets the "exam_board" field to the value that was provided on create.
func (u *SubjectPerformanceUpsertBulk) UpdateExamBoard() *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.UpdateExamBoard()
	})
}

// SetTotalQuestionsAnswered sets the "total_questions_answered" field.
func (u *SubjectPerformanceUpsertBulk) SetTotalQuestionsAnswered(v int) *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.SetTotalQuestionsAnswered(v)
	})
}

// AddTotalQuestionsAnswered adds v to the "total_questions_answered" field.
func (u *SubjectPerformanceUpsertBulk) AddTotalQuestionsAnswered(v int) *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.AddTotalQuestionsAnswered(v)
	})
}

// UpdateTotalQuestionsAnswered sets the "total_questions_answered" field to the value that was provided on create.
func (u *SubjectPerformanceUpsertBulk) UpdateTotalQuestionsAnswered() *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.UpdateTotalQuestionsAnswered()
	})
}

// SetMarksEarned sets the "marks_earned" field.
func (u *SubjectPerformanceUpsertBulk) SetMarksEarned(v int) *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.SetMarksEarned(v)
	})
}

// AddMarksEarned adds v to the "marks_earned" field.
func (u *SubjectPerformanceUpsertBulk) AddMarksEarned(v int) *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.AddMarksEarned(v)
	})
}

// UpdateMarksEarned sets the "marks_earned" field to the value that was provided on create.
func (u *SubjectPerformanceUpsertBulk) UpdateMarksEarned() *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.UpdateMarksEarned()
	})
}

// SetMarksAvailable sets the "marks_available" field.
func (u *SubjectPerformanceUpsertBulk) SetMarksAvailable(v int) *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.SetMarksAvailable(v)
	})
}

// AddMarksAvailable adds v to the "marks_available" field.
func (u *SubjectPerformanceUpsertBulk) AddMarksAvailable(v int) *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.AddMarksAvailable(v)
	})
}

// UpdateMarksAvailable sets the "marks_available" field to the value that was provided on create.
func (u *SubjectPerformanceUpsertBulk) UpdateMarksAvailable() *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.UpdateMarksAvailable()
	})
}

// SetAccuracyRate sets the "accuracy_rate" field.
func (u *SubjectPerformanceUpsertBulk) SetAccuracyRate(v float64) *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.SetAccuracyRate(v)
	})
}

// AddAccuracyRate adds v to the "accuracy_rate" field.
func (u *SubjectPerformanceUpsertBulk) AddAccuracyRate(v float64) *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.AddAccuracyRate(v)
	})
}

// UpdateAccuracyRate sets the "accuracy_rate" field to the value that was provided on create.
func (u *SubjectPerformanceUpsertBulk) UpdateAccuracyRate() *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.UpdateAccuracyRate()
	})
}

// SetStudyHours sets the "study_hours" field.
func (u *SubjectPerformanceUpsertBulk) SetStudyHours(v float64) *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.SetStudyHours(v)
	})
}

// AddStudyHours adds v to the "study_hours" field.
func (u *SubjectPerformanceUpsertBulk) AddStudyHours(v float64) *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.AddStudyHours(v)
	})
}

// UpdateStudyHours sets the "study_hours" field to the value that was provided on create.
func (u *SubjectPerformanceUpsertBulk) UpdateStudyHours() *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.UpdateStudyHours()
	})
}

// SetLastActivityDate sets the "last_activity_date" field.
func (u *SubjectPerformanceUpsertBulk) SetLastActivityDate(v time.Time) *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.SetLastActivityDate(v)
	})
}

// UpdateLastActivityDate sets the "last_activity_date" field to the value that was provided on create.
func (u *SubjectPerformanceUpsertBulk) UpdateLastActivityDate() *SubjectPerformanceUpsertBulk {
	return u.Update(func(s *SubjectPerformanceUpsert) {
		s.UpdateLastActivityDate()
	})
}

// Exec executes the query.
func (u *SubjectPerformanceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SubjectPerformanceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubjectPerformanceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubjectPerformanceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
