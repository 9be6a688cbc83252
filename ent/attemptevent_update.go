// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/revisely/revisely/ent/attemptevent"
	"github.com/revisely/revisely/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AttemptEventUpdate) SetUserID(v string) *AttemptEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableUserID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *AttemptEventUpdate) SetSubjectID(v string) *AttemptEventUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSubjectID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *AttemptEventUpdate) SetTopicID(v string) *AttemptEventUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableTopicID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AttemptEventUpdate) SetQuestionID(v string) *AttemptEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *AttemptEventUpdate) SetUserAnswer(v string) *AttemptEventUpdate {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableUserAnswer(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetMarksAwarded sets the "marks_awarded" field.
func (_u *AttemptEventUpdate) SetMarksAwarded(v int) *AttemptEventUpdate {
	_u.mutation.ResetMarksAwarded()
	_u.mutation.SetMarksAwarded(v)
	return _u
}

// SetNillableMarksAwarded sets the "marks_awarded" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableMarksAwarded(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetMarksAwarded(*v)
	}
	return _u
}

// AddMarksAwarded adds value to the "marks_awarded" field.
func (_u *AttemptEventUpdate) AddMarksAwarded(v int) *AttemptEventUpdate {
	_u.mutation.AddMarksAwarded(v)
	return _u
}

// SetMarksAvailable sets the "marks_available" field.
func (_u *AttemptEventUpdate) SetMarksAvailable(v int) *AttemptEventUpdate {
	_u.mutation.ResetMarksAvailable()
	_u.mutation.SetMarksAvailable(v)
	return _u
}

// SetNillableMarksAvailable sets the "marks_available" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableMarksAvailable(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetMarksAvailable(*v)
	}
	return _u
}

// AddMarksAvailable adds value to the "marks_available" field.
func (_u *AttemptEventUpdate) AddMarksAvailable(v int) *AttemptEventUpdate {
	_u.mutation.AddMarksAvailable(v)
	return _u
}

// SetAssessment sets the "assessment" field.
func (_u *AttemptEventUpdate) SetAssessment(v string) *AttemptEventUpdate {
	_u.mutation.SetAssessment(v)
	return _u
}

// SetNillableAssessment sets the "assessment" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAssessment(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAssessment(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := attemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := attemptevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := attemptevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := attemptevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(attemptevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(attemptevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(attemptevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(attemptevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(attemptevent.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.MarksAwarded(); ok {
		_spec.SetField(attemptevent.FieldMarksAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMarksAwarded(); ok {
		_spec.AddField(attemptevent.FieldMarksAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MarksAvailable(); ok {
		_spec.SetField(attemptevent.FieldMarksAvailable, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMarksAvailable(); ok {
		_spec.AddField(attemptevent.FieldMarksAvailable, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Assessment(); ok {
		_spec.SetField(attemptevent.FieldAssessment, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AttemptEventUpdateOne) SetUserID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableUserID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *AttemptEventUpdateOne) SetSubjectID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSubjectID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *AttemptEventUpdateOne) SetTopicID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableTopicID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AttemptEventUpdateOne) SetQuestionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *AttemptEventUpdateOne) SetUserAnswer(v string) *AttemptEventUpdateOne {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableUserAnswer(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetMarksAwarded sets the "marks_awarded" field.
func (_u *AttemptEventUpdateOne) SetMarksAwarded(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetMarksAwarded()
	_u.mutation.SetMarksAwarded(v)
	return _u
}

// SetNillableMarksAwarded sets the "marks_awarded" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableMarksAwarded(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetMarksAwarded(*v)
	}
	return _u
}

// AddMarksAwarded adds value to the "marks_awarded" field.
func (_u *AttemptEventUpdateOne) AddMarksAwarded(v int) *AttemptEventUpdateOne {
	_u.mutation.AddMarksAwarded(v)
	return _u
}

// SetMarksAvailable sets the "marks_available" field.
func (_u *AttemptEventUpdateOne) SetMarksAvailable(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetMarksAvailable()
	_u.mutation.SetMarksAvailable(v)
	return _u
}

// SetNillableMarksAvailable sets the "marks_available" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableMarksAvailable(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetMarksAvailable(*v)
	}
	return _u
}

// AddMarksAvailable adds value to the "marks_available" field.
func (_u *AttemptEventUpdateOne) AddMarksAvailable(v int) *AttemptEventUpdateOne {
	_u.mutation.AddMarksAvailable(v)
	return _u
}

// SetAssessment sets the "assessment" field.
func (_u *AttemptEventUpdateOne) SetAssessment(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAssessment(v)
	return _u
}

// SetNillableAssessment sets the "assessment" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAssessment(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAssessment(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := attemptevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := attemptevent.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := attemptevent.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := attemptevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(attemptevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(attemptevent.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(attemptevent.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(attemptevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(attemptevent.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.MarksAwarded(); ok {
		_spec.SetField(attemptevent.FieldMarksAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMarksAwarded(); ok {
		_spec.AddField(attemptevent.FieldMarksAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MarksAvailable(); ok {
		_spec.SetField(attemptevent.FieldMarksAvailable, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMarksAvailable(); ok {
		_spec.AddField(attemptevent.FieldMarksAvailable, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Assessment(); ok {
		_spec.SetField(attemptevent.FieldAssessment, field.TypeString, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
