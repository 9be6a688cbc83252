// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/revisely/revisely/ent/predicate"
	"github.com/revisely/revisely/ent/sessionrecord"
)

// SessionRecordUpdate is the builder for updating SessionRecord entities.
type SessionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SessionRecordMutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdate) Where(ps ...predicate.SessionRecord) *SessionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionRecordUpdate) SetUserID(v string) *SessionRecordUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableUserID(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *SessionRecordUpdate) SetSubjectID(v string) *SessionRecordUpdate {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableSubjectID(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *SessionRecordUpdate) SetTopicID(v string) *SessionRecordUpdate {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableTopicID(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionRecordUpdate) SetSessionID(v string) *SessionRecordUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableSessionID(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionOrder sets the "question_order" field.
func (_u *SessionRecordUpdate) SetQuestionOrder(v []string) *SessionRecordUpdate {
	_u.mutation.SetQuestionOrder(v)
	return _u
}

// AppendQuestionOrder appends value to the "question_order" field.
func (_u *SessionRecordUpdate) AppendQuestionOrder(v []string) *SessionRecordUpdate {
	_u.mutation.AppendQuestionOrder(v)
	return _u
}

// SetCurrentIndex sets the "current_index" field.
func (_u *SessionRecordUpdate) SetCurrentIndex(v int) *SessionRecordUpdate {
	_u.mutation.ResetCurrentIndex()
	_u.mutation.SetCurrentIndex(v)
	return _u
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableCurrentIndex(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetCurrentIndex(*v)
	}
	return _u
}

// AddCurrentIndex adds value to the "current_index" field.
func (_u *SessionRecordUpdate) AddCurrentIndex(v int) *SessionRecordUpdate {
	_u.mutation.AddCurrentIndex(v)
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *SessionRecordUpdate) SetUserAnswer(v string) *SessionRecordUpdate {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableUserAnswer(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetShowFeedback sets the "show_feedback" field.
func (_u *SessionRecordUpdate) SetShowFeedback(v bool) *SessionRecordUpdate {
	_u.mutation.SetShowFeedback(v)
	return _u
}

// SetNillableShowFeedback sets the "show_feedback" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableShowFeedback(v *bool) *SessionRecordUpdate {
	if v != nil {
		_u.SetShowFeedback(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SessionRecordUpdate) SetAttempts(v json.RawMessage) *SessionRecordUpdate {
	_u.mutation.SetAttempts(v)
	return _u
}

// AppendAttempts appends value to the "attempts" field.
func (_u *SessionRecordUpdate) AppendAttempts(v json.RawMessage) *SessionRecordUpdate {
	_u.mutation.AppendAttempts(v)
	return _u
}

// ClearAttempts clears the value of the "attempts" field.
func (_u *SessionRecordUpdate) ClearAttempts() *SessionRecordUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionRecordUpdate) SetStartedAt(v time.Time) *SessionRecordUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableStartedAt(v *time.Time) *SessionRecordUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetLastSaved sets the "last_saved" field.
func (_u *SessionRecordUpdate) SetLastSaved(v time.Time) *SessionRecordUpdate {
	_u.mutation.SetLastSaved(v)
	return _u
}

// SetNillableLastSaved sets the "last_saved" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableLastSaved(v *time.Time) *SessionRecordUpdate {
	if v != nil {
		_u.SetLastSaved(*v)
	}
	return _u
}

// SetAggregatedAt sets the "aggregated_at" field.
func (_u *SessionRecordUpdate) SetAggregatedAt(v time.Time) *SessionRecordUpdate {
	_u.mutation.SetAggregatedAt(v)
	return _u
}

// SetNillableAggregatedAt sets the "aggregated_at" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableAggregatedAt(v *time.Time) *SessionRecordUpdate {
	if v != nil {
		_u.SetAggregatedAt(*v)
	}
	return _u
}

// ClearAggregatedAt clears the value of the "aggregated_at" field.
func (_u *SessionRecordUpdate) ClearAggregatedAt() *SessionRecordUpdate {
	_u.mutation.ClearAggregatedAt()
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdate) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := sessionrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := sessionrecord.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := sessionrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(sessionrecord.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(sessionrecord.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionOrder(); ok {
		_spec.SetField(sessionrecord.FieldQuestionOrder, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionOrder(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrecord.FieldQuestionOrder, value)
		})
	}
	if value, ok := _u.mutation.CurrentIndex(); ok {
		_spec.SetField(sessionrecord.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIndex(); ok {
		_spec.AddField(sessionrecord.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(sessionrecord.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShowFeedback(); ok {
		_spec.SetField(sessionrecord.FieldShowFeedback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(sessionrecord.FieldAttempts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttempts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrecord.FieldAttempts, value)
		})
	}
	if _u.mutation.AttemptsCleared() {
		_spec.ClearField(sessionrecord.FieldAttempts, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sessionrecord.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSaved(); ok {
		_spec.SetField(sessionrecord.FieldLastSaved, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AggregatedAt(); ok {
		_spec.SetField(sessionrecord.FieldAggregatedAt, field.TypeTime, value)
	}
	if _u.mutation.AggregatedAtCleared() {
		_spec.ClearField(sessionrecord.FieldAggregatedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionRecordUpdateOne is the builder for updating a single SessionRecord entity.
type SessionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionRecordMutation
}

// SetUserID sets the "user_id" field.
func (_u *SessionRecordUpdateOne) SetUserID(v string) *SessionRecordUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableUserID(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *SessionRecordUpdateOne) SetSubjectID(v string) *SessionRecordUpdateOne {
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableSubjectID(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// SetTopicID sets the "topic_id" field.
func (_u *SessionRecordUpdateOne) SetTopicID(v string) *SessionRecordUpdateOne {
	_u.mutation.SetTopicID(v)
	return _u
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableTopicID(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetTopicID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionRecordUpdateOne) SetSessionID(v string) *SessionRecordUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableSessionID(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionOrder sets the "question_order" field.
func (_u *SessionRecordUpdateOne) SetQuestionOrder(v []string) *SessionRecordUpdateOne {
	_u.mutation.SetQuestionOrder(v)
	return _u
}

// AppendQuestionOrder appends value to the "question_order" field.
func (_u *SessionRecordUpdateOne) AppendQuestionOrder(v []string) *SessionRecordUpdateOne {
	_u.mutation.AppendQuestionOrder(v)
	return _u
}

// SetCurrentIndex sets the "current_index" field.
func (_u *SessionRecordUpdateOne) SetCurrentIndex(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetCurrentIndex()
	_u.mutation.SetCurrentIndex(v)
	return _u
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableCurrentIndex(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetCurrentIndex(*v)
	}
	return _u
}

// AddCurrentIndex adds value to the "current_index" field.
func (_u *SessionRecordUpdateOne) AddCurrentIndex(v int) *SessionRecordUpdateOne {
	_u.mutation.AddCurrentIndex(v)
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *SessionRecordUpdateOne) SetUserAnswer(v string) *SessionRecordUpdateOne {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableUserAnswer(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetShowFeedback sets the "show_feedback" field.
func (_u *SessionRecordUpdateOne) SetShowFeedback(v bool) *SessionRecordUpdateOne {
	_u.mutation.SetShowFeedback(v)
	return _u
}

// SetNillableShowFeedback sets the "show_feedback" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableShowFeedback(v *bool) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetShowFeedback(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SessionRecordUpdateOne) SetAttempts(v json.RawMessage) *SessionRecordUpdateOne {
	_u.mutation.SetAttempts(v)
	return _u
}

// AppendAttempts appends value to the "attempts" field.
func (_u *SessionRecordUpdateOne) AppendAttempts(v json.RawMessage) *SessionRecordUpdateOne {
	_u.mutation.AppendAttempts(v)
	return _u
}

// ClearAttempts clears the value of the "attempts" field.
func (_u *SessionRecordUpdateOne) ClearAttempts() *SessionRecordUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionRecordUpdateOne) SetStartedAt(v time.Time) *SessionRecordUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableStartedAt(v *time.Time) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetLastSaved sets the "last_saved" field.
func (_u *SessionRecordUpdateOne) SetLastSaved(v time.Time) *SessionRecordUpdateOne {
	_u.mutation.SetLastSaved(v)
	return _u
}

// SetNillableLastSaved sets the "last_saved" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableLastSaved(v *time.Time) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetLastSaved(*v)
	}
	return _u
}

// SetAggregatedAt sets the "aggregated_at" field.
func (_u *SessionRecordUpdateOne) SetAggregatedAt(v time.Time) *SessionRecordUpdateOne {
	_u.mutation.SetAggregatedAt(v)
	return _u
}

// SetNillableAggregatedAt sets the "aggregated_at" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableAggregatedAt(v *time.Time) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetAggregatedAt(*v)
	}
	return _u
}

// ClearAggregatedAt clears the value of the "aggregated_at" field.
func (_u *SessionRecordUpdateOne) ClearAggregatedAt() *SessionRecordUpdateOne {
	_u.mutation.ClearAggregatedAt()
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdateOne) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdateOne) Where(ps ...predicate.SessionRecord) *SessionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionRecordUpdateOne) Select(field string, fields ...string) *SessionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionRecord entity.
func (_u *SessionRecordUpdateOne) Save(ctx context.Context) (*SessionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) SaveX(ctx context.Context) *SessionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := sessionrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubjectID(); ok {
		if err := sessionrecord.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.subject_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TopicID(); ok {
		if err := sessionrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.topic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdateOne) sqlSave(ctx context.Context) (_node *SessionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionrecord.FieldID)
		for _, f := range fields {
			if !sessionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionrecord.FieldID {
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
		_spec.SetField(sessionrecord.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(sessionrecord.FieldSubjectID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TopicID(); ok {
		_spec.SetField(sessionrecord.FieldTopicID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionOrder(); ok {
		_spec.SetField(sessionrecord.FieldQuestionOrder, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionOrder(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrecord.FieldQuestionOrder, value)
		})
	}
	if value, ok := _u.mutation.CurrentIndex(); ok {
		_spec.SetField(sessionrecord.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIndex(); ok {
		_spec.AddField(sessionrecord.FieldCurrentIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(sessionrecord.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.ShowFeedback(); ok {
		_spec.SetField(sessionrecord.FieldShowFeedback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(sessionrecord.FieldAttempts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttempts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrecord.FieldAttempts, value)
		})
	}
	if _u.mutation.AttemptsCleared() {
		_spec.ClearField(sessionrecord.FieldAttempts, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(sessionrecord.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastSaved(); ok {
		_spec.SetField(sessionrecord.FieldLastSaved, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AggregatedAt(); ok {
		_spec.SetField(sessionrecord.FieldAggregatedAt, field.TypeTime, value)
	}
	if _u.mutation.AggregatedAtCleared() {
		_spec.ClearField(sessionrecord.FieldAggregatedAt, field.TypeTime)
	}
	_node = &SessionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
