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
	"github.com/revisely/revisely/ent/weaktopic"
)

// WeakTopicUpdate is the builder for updating WeakTopic entities.
type WeakTopicUpdate struct {
	config
	hooks    []Hook
	mutation *WeakTopicMutation
}

// Where appends a list predicates to the WeakTopicUpdate builder.
func (_u *WeakTopicUpdate) Where(ps ...predicate.WeakTopic) *WeakTopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *WeakTopicUpdate) SetUserID(v string) *WeakTopicUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WeakTopicUpdate) SetNillableUserID(v *string) *WeakTopicUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *WeakTopicUpdate) SetSubjectID(v string) *WeakTopicUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *WeakTopicUpdate) SetNillableSubjectID(v *string) *WeakTopicUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *WeakTopicUpdate) SetTopicID(v string) *WeakTopicUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *WeakTopicUpdate) SetNillableTopicID(v *string) *WeakTopicUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetEnteredAt sets the "entered_at" field.
func (_u *WeakTopicUpdate) SetEnteredAt(v time.Time) *WeakTopicUpdate {
	_u.mutation.SetEnteredAt(v)
	return _u
}

// SetNillableEnteredAt sets the "entered_at" field if the given value is not nil.
func (_u *WeakTopicUpdate) SetNillableEnteredAt(v *time.Time) *WeakTopicUpdate {
	if v != nil {
		_u.SetEnteredAt(*v)
	}
	return _u
}

// Mutation returns the WeakTopicMutation object of the builder.
func (_u *WeakTopicUpdate) Mutation() *WeakTopicMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WeakTopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeakTopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WeakTopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeakTopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WeakTopicUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := weaktopic.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "WeakTopic.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := weaktopic.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "WeakTopic.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := weaktopic.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "WeakTopic.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *WeakTopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weaktopic.Table, weaktopic.Columns, sqlgraph.NewFieldSpec(weaktopic.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(weaktopic.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(weaktopic.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(weaktopic.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnteredAt(); ok {
		_spec.SetField(weaktopic.FieldEnteredAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weaktopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WeakTopicUpdateOne is the builder for updating a single WeakTopic entity.
type WeakTopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WeakTopicMutation
}

// SetUserID sets the "user_id" field.
func (_u *WeakTopicUpdateOne) SetUserID(v string) *WeakTopicUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WeakTopicUpdateOne) SetNillableUserID(v *string) *WeakTopicUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *WeakTopicUpdateOne) SetSubjectID(v string) *WeakTopicUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *WeakTopicUpdateOne) SetNillableSubjectID(v *string) *WeakTopicUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *WeakTopicUpdateOne) SetTopicID(v string) *WeakTopicUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *WeakTopicUpdateOne) SetNillableTopicID(v *string) *WeakTopicUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetEnteredAt sets the "entered_at" field.
func (_u *WeakTopicUpdateOne) SetEnteredAt(v time.Time) *WeakTopicUpdateOne {
	_u.mutation.SetEnteredAt(v)
	return _u
}

// SetNillableEnteredAt sets the "entered_at" field if the given value is not nil.
func (_u *WeakTopicUpdateOne) SetNillableEnteredAt(v *time.Time) *WeakTopicUpdateOne {
	if v != nil {
		_u.SetEnteredAt(*v)
	}
	return _u
}

// Mutation returns the WeakTopicMutation object of the builder.
func (_u *WeakTopicUpdateOne) Mutation() *WeakTopicMutation {
	return _u.mutation
}

// Where appends a list predicates to the WeakTopicUpdate builder.
func (_u *WeakTopicUpdateOne) Where(ps ...predicate.WeakTopic) *WeakTopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WeakTopicUpdateOne) Select(field string, fields ...string) *WeakTopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WeakTopic entity.
func (_u *WeakTopicUpdateOne) Save(ctx context.Context) (*WeakTopic, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeakTopicUpdateOne) SaveX(ctx context.Context) *WeakTopic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WeakTopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeakTopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WeakTopicUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := weaktopic.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "WeakTopic.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := weaktopic.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "WeakTopic.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := weaktopic.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "WeakTopic.topic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *WeakTopicUpdateOne) sqlSave(ctx context.Context) (_node *WeakTopic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weaktopic.Table, weaktopic.Columns, sqlgraph.NewFieldSpec(weaktopic.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WeakTopic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, weaktopic.FieldID)
		for _, f := range fields {
			if !weaktopic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != weaktopic.FieldID {
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
		_spec.SetField(weaktopic.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(weaktopic.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(weaktopic.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EnteredAt(); ok {
		_spec.SetField(weaktopic.FieldEnteredAt, field.TypeTime, value)
	}
	_node = &WeakTopic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weaktopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
