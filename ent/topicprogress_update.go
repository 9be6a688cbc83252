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
	"github.com/revisely/revisely/ent/topicprogress"
)

// TopicProgressUpdate is the builder for updating TopicProgress entities.
type TopicProgressUpdate struct {
	config
	hooks    []Hook
	mutation *TopicProgressMutation
}

// Where appends a list predicates to the TopicProgressUpdate builder.
func (_u *TopicProgressUpdate) Where(ps ...predicate.TopicProgress) *TopicProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *TopicProgressUpdate) SetUserID(v string) *TopicProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableUserID(v *string) *TopicProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *TopicProgressUpdate) SetSubjectID(v string) *TopicProgressUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableSubjectID(v *string) *TopicProgressUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *TopicProgressUpdate) SetTopicID(v string) *TopicProgressUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableTopicID(v *string) *TopicProgressUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TopicProgressUpdate) SetAttempts(v int) *TopicProgressUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableAttempts(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TopicProgressUpdate) AddAttempts(v int) *TopicProgressUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *TopicProgressUpdate) SetAverageScore(v int) *TopicProgressUpdate {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableAverageScore(v *int) *TopicProgressUpdate {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *TopicProgressUpdate) AddAverageScore(v int) *TopicProgressUpdate {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *TopicProgressUpdate) SetLastAttemptAt(v time.Time) *TopicProgressUpdate {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *TopicProgressUpdate) SetNillableLastAttemptAt(v *time.Time) *TopicProgressUpdate {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// Mutation returns the TopicProgressMutation object of the builder.
func (_u *TopicProgressUpdate) Mutation() *TopicProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := topicprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := topicprogress.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := topicprogress.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AverageScore(); ok {
		if err := topicprogress.AverageScoreValidator(v); err != nil {
			return &ValidationError{Name: "average_score", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.average_score": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicprogress.Table, topicprogress.Columns, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(topicprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(topicprogress.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(topicprogress.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(topicprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(topicprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(topicprogress.FieldAverageScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(topicprogress.FieldAverageScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(topicprogress.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicProgressUpdateOne is the builder for updating a single TopicProgress entity.
type TopicProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *TopicProgressUpdateOne) SetUserID(v string) *TopicProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableUserID(v *string) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *TopicProgressUpdateOne) SetSubjectID(v string) *TopicProgressUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableSubjectID(v *string) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *TopicProgressUpdateOne) SetTopicID(v string) *TopicProgressUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableTopicID(v *string) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *TopicProgressUpdateOne) SetAttempts(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableAttempts(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *TopicProgressUpdateOne) AddAttempts(v int) *TopicProgressUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetAverageScore sets the "average_score" field.
func (_u *TopicProgressUpdateOne) SetAverageScore(v int) *TopicProgressUpdateOne {
	_u.mutation.ResetAverageScore()
	_u.mutation.SetAverageScore(v)
	return _u
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableAverageScore(v *int) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetAverageScore(*v)
	}
	return _u
}

// AddAverageScore adds value to the "average_score" field.
func (_u *TopicProgressUpdateOne) AddAverageScore(v int) *TopicProgressUpdateOne {
	_u.mutation.AddAverageScore(v)
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *TopicProgressUpdateOne) SetLastAttemptAt(v time.Time) *TopicProgressUpdateOne {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *TopicProgressUpdateOne) SetNillableLastAttemptAt(v *time.Time) *TopicProgressUpdateOne {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// Mutation returns the TopicProgressMutation object of the builder.
func (_u *TopicProgressUpdateOne) Mutation() *TopicProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicProgressUpdate builder.
func (_u *TopicProgressUpdateOne) Where(ps ...predicate.TopicProgress) *TopicProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicProgressUpdateOne) Select(field string, fields ...string) *TopicProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicProgress entity.
func (_u *TopicProgressUpdateOne) Save(ctx context.Context) (*TopicProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicProgressUpdateOne) SaveX(ctx context.Context) *TopicProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := topicprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := topicprogress.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := topicprogress.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AverageScore(); ok {
		if err := topicprogress.AverageScoreValidator(v); err != nil {
			return &ValidationError{Name: "average_score", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.average_score": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicProgressUpdateOne) sqlSave(ctx context.Context) (_node *TopicProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicprogress.Table, topicprogress.Columns, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicprogress.FieldID)
		for _, f := range fields {
			if !topicprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicprogress.FieldID {
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
		_spec.SetField(topicprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(topicprogress.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(topicprogress.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(topicprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(topicprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AverageScore(); ok {
		_spec.SetField(topicprogress.FieldAverageScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAverageScore(); ok {
		_spec.AddField(topicprogress.FieldAverageScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(topicprogress.FieldLastAttemptAt, field.TypeTime, value)
	}
	_node = &TopicProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
