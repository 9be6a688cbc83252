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
	"entgo.io/ent/schema/field"
	"github.com/revisely/revisely/ent/sessionrecord"
)

// SessionRecordCreate is the builder for creating a SessionRecord entity.
type SessionRecordCreate struct {
	config
	mutation *SessionRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *SessionRecordCreate) SetUserID(v string) *SessionRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *SessionRecordCreate) SetSubjectID(v string) *SessionRecordCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *SessionRecordCreate) SetTopicID(v string) *SessionRecordCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionRecordCreate) SetSessionID(v string) *SessionRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionOrder sets the "question_order" field.
func (_c *SessionRecordCreate) SetQuestionOrder(v []string) *SessionRecordCreate {
	_c.mutation.SetQuestionOrder(v)
	return _c
}

// SetCurrentIndex sets the "current_index" field.
func (_c *SessionRecordCreate) SetCurrentIndex(v int) *SessionRecordCreate {
	_c.mutation.SetCurrentIndex(v)
	return _c
}

// SetNillableCurrentIndex sets the "current_index" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableCurrentIndex(v *int) *SessionRecordCreate {
	if v != nil {
		_c.SetCurrentIndex(*v)
	}
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *SessionRecordCreate) SetUserAnswer(v string) *SessionRecordCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableUserAnswer(v *string) *SessionRecordCreate {
	if v != nil {
		_c.SetUserAnswer(*v)
	}
	return _c
}

// SetShowFeedback sets the "show_feedback" field.
func (_c *SessionRecordCreate) SetShowFeedback(v bool) *SessionRecordCreate {
	_c.mutation.SetShowFeedback(v)
	return _c
}

// SetNillableShowFeedback sets the "show_feedback" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableShowFeedback(v *bool) *SessionRecordCreate {
	if v != nil {
		_c.SetShowFeedback(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *SessionRecordCreate) SetAttempts(v json.RawMessage) *SessionRecordCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SessionRecordCreate) SetStartedAt(v time.Time) *SessionRecordCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetLastSaved sets the "last_saved" field.
func (_c *SessionRecordCreate) SetLastSaved(v time.Time) *SessionRecordCreate {
	_c.mutation.SetLastSaved(v)
	return _c
}

// SetAggregatedAt sets the "aggregated_at" field.
func (_c *SessionRecordCreate) SetAggregatedAt(v time.Time) *SessionRecordCreate {
	_c.mutation.SetAggregatedAt(v)
	return _c
}

// SetNillableAggregatedAt sets the "aggregated_at" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableAggregatedAt(v *time.Time) *SessionRecordCreate {
	if v != nil {
		_c.SetAggregatedAt(*v)
	}
	return _c
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_c *SessionRecordCreate) Mutation() *SessionRecordMutation {
	return _c.mutation
}

// Save creates the SessionRecord in the database.
func (_c *SessionRecordCreate) Save(ctx context.Context) (*SessionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionRecordCreate) SaveX(ctx context.Context) *SessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionRecordCreate) defaults() {
	if _, ok := _c.mutation.CurrentIndex(); !ok {
		v := sessionrecord.DefaultCurrentIndex
		_c.mutation.SetCurrentIndex(v)
	}
	if _, ok := _c.mutation.UserAnswer(); !ok {
		v := sessionrecord.DefaultUserAnswer
		_c.mutation.SetUserAnswer(v)
	}
	if _, ok := _c.mutation.ShowFeedback(); !ok {
		v := sessionrecord.DefaultShowFeedback
		_c.mutation.SetShowFeedback(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SessionRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := sessionrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "SessionRecord.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := sessionrecord.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "SessionRecord.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := sessionrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionRecord.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionOrder(); !ok {
		return &ValidationError{Name: "question_order", err: errors.New(`ent: missing required field "SessionRecord.question_order"`)}
	}
	if _, ok := _c.mutation.CurrentIndex(); !ok {
		return &ValidationError{Name: "current_index", err: errors.New(`ent: missing required field "SessionRecord.current_index"`)}
	}
	if _, ok := _c.mutation.UserAnswer(); !ok {
		return &ValidationError{Name: "user_answer", err: errors.New(`ent: missing required field "SessionRecord.user_answer"`)}
	}
	if _, ok := _c.mutation.ShowFeedback(); !ok {
		return &ValidationError{Name: "show_feedback", err: errors.New(`ent: missing required field "SessionRecord.show_feedback"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "SessionRecord.started_at"`)}
	}
	if _, ok := _c.mutation.LastSaved(); !ok {
		return &ValidationError{Name: "last_saved", err: errors.New(`ent: missing required field "SessionRecord.last_saved"`)}
	}
	return nil
}

func (_c *SessionRecordCreate) sqlSave(ctx context.Context) (*SessionRecord, error) {
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

func (_c *SessionRecordCreate) createSpec() (*SessionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionrecord.Table, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(sessionrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(sessionrecord.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(sessionrecord.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionOrder(); ok {
		_spec.SetField(sessionrecord.FieldQuestionOrder, field.TypeJSON, value)
		_node.QuestionOrder = value
	}
	if value, ok := _c.mutation.CurrentIndex(); ok {
		_spec.SetField(sessionrecord.FieldCurrentIndex, field.TypeInt, value)
		_node.CurrentIndex = value
	}
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(sessionrecord.FieldUserAnswer, field.TypeString, value)
		_node.UserAnswer = value
	}
	if value, ok := _c.mutation.ShowFeedback(); ok {
		_spec.SetField(sessionrecord.FieldShowFeedback, field.TypeBool, value)
		_node.ShowFeedback = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(sessionrecord.FieldAttempts, field.TypeJSON, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(sessionrecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.LastSaved(); ok {
		_spec.SetField(sessionrecord.FieldLastSaved, field.TypeTime, value)
		_node.LastSaved = value
	}
	if value, ok := _c.mutation.AggregatedAt(); ok {
		_spec.SetField(sessionrecord.FieldAggregatedAt, field.TypeTime, value)
		_node.AggregatedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionRecord.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionRecordUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionRecordCreate) OnConflict(opts ...sql.ConflictOption) *SessionRecordUpsertOne {
	_c.conflict = opts
	return &SessionRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionRecordCreate) OnConflictColumns(columns ...string) *SessionRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionRecordUpsertOne{
		create: _c,
	}
}

type (
	// SessionRecordUpsertOne is the builder for "upsert"-ing
	//  one SessionRecord node.
	SessionRecordUpsertOne struct {
		create *SessionRecordCreate
	}

	// SessionRecordUpsert is the "OnConflict" setter.
	SessionRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *SessionRecordUpsert) SetUserID(v string) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateUserID() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldUserID)
	return u
}

// SetSubjectID sets the "subject_id" field.
func (u *SessionRecordUpsert) SetSubjectID(v string) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldSubjectID, v)
	return u
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateSubjectID() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldSubjectID)
	return u
}

// SetTopicID sets the "topic_id" field.
func (u *SessionRecordUpsert) SetTopicID(v string) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldTopicID, v)
	return u
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateTopicID() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldTopicID)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *SessionRecordUpsert) SetSessionID(v string) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateSessionID() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldSessionID)
	return u
}

// SetQuestionOrder sets the "question_order" field.
func (u *SessionRecordUpsert) SetQuestionOrder(v []string) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldQuestionOrder, v)
	return u
}

// UpdateQuestionOrder sets the "question_order" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateQuestionOrder() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldQuestionOrder)
	return u
}

// SetCurrentIndex sets the "current_index" field.
func (u *SessionRecordUpsert) SetCurrentIndex(v int) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldCurrentIndex, v)
	return u
}

// UpdateCurrentIndex sets the "current_index" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateCurrentIndex() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldCurrentIndex)
	return u
}

// AddCurrentIndex adds v to the "current_index" field.
func (u *SessionRecordUpsert) AddCurrentIndex(v int) *SessionRecordUpsert {
	u.Add(sessionrecord.FieldCurrentIndex, v)
	return u
}

// SetUserAnswer sets the "user_answer" field.
func (u *SessionRecordUpsert) SetUserAnswer(v string) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldUserAnswer, v)
	return u
}

// UpdateUserAnswer sets the "user_answer" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateUserAnswer() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldUserAnswer)
	return u
}

// SetShowFeedback sets the "show_feedback" field.
func (u *SessionRecordUpsert) SetShowFeedback(v bool) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldShowFeedback, v)
	return u
}

// UpdateShowFeedback sets the "show_feedback" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateShowFeedback() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldShowFeedback)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *SessionRecordUpsert) SetAttempts(v json.RawMessage) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateAttempts() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldAttempts)
	return u
}

// ClearAttempts clears the value of the "attempts" field.
func (u *SessionRecordUpsert) ClearAttempts() *SessionRecordUpsert {
	u.SetNull(sessionrecord.FieldAttempts)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *SessionRecordUpsert) SetStartedAt(v time.Time) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateStartedAt() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldStartedAt)
	return u
}

// SetLastSaved sets the "last_saved" field.
func (u *SessionRecordUpsert) SetLastSaved(v time.Time) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldLastSaved, v)
	return u
}

// UpdateLastSaved sets the "last_saved" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateLastSaved() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldLastSaved)
	return u
}

// SetAggregatedAt sets the "aggregated_at" field.
func (u *SessionRecordUpsert) SetAggregatedAt(v time.Time) *SessionRecordUpsert {
	u.Set(sessionrecord.FieldAggregatedAt, v)
	return u
}

// UpdateAggregatedAt sets the "aggregated_at" field to the value that was provided on create.
func (u *SessionRecordUpsert) UpdateAggregatedAt() *SessionRecordUpsert {
	u.SetExcluded(sessionrecord.FieldAggregatedAt)
	return u
}

// ClearAggregatedAt clears the value of the "aggregated_at" field.
func (u *SessionRecordUpsert) ClearAggregatedAt() *SessionRecordUpsert {
	u.SetNull(sessionrecord.FieldAggregatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.SessionRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SessionRecordUpsertOne) UpdateNewValues() *SessionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionRecordUpsertOne) Ignore() *SessionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionRecordUpsertOne) DoNothing() *SessionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionRecordCreate.OnConflict
// documentation for more info.
func (u *SessionRecordUpsertOne) Update(set func(*SessionRecordUpsert)) *SessionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *SessionRecordUpsertOne) SetUserID(v string) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateUserID() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateUserID()
	})
}

// SetSubjectID sets the "subject_id" field.
func (u *SessionRecordUpsertOne) SetSubjectID(v string) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetSubjectID(v)
	})
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateSubjectID() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateSubjectID()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *SessionRecordUpsertOne) SetTopicID(v string) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateTopicID() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateTopicID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *SessionRecordUpsertOne) SetSessionID(v string) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateSessionID() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateSessionID()
	})
}

// SetQuestionOrder sets the "question_order" field.
func (u *SessionRecordUpsertOne) SetQuestionOrder(v []string) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetQuestionOrder(v)
	})
}

// UpdateQuestionOrder sets the "question_order" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateQuestionOrder() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateQuestionOrder()
	})
}

// SetCurrentIndex sets the "current_index" field.
func (u *SessionRecordUpsertOne) SetCurrentIndex(v int) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetCurrentIndex(v)
	})
}

// AddCurrentIndex adds v to the "current_index" field.
func (u *SessionRecordUpsertOne) AddCurrentIndex(v int) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.AddCurrentIndex(v)
	})
}

// UpdateCurrentIndex sets the "current_index" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateCurrentIndex() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateCurrentIndex()
	})
}

// SetUserAnswer sets the "user_answer" field.
func (u *SessionRecordUpsertOne) SetUserAnswer(v string) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetUserAnswer(v)
	})
}

// UpdateUserAnswer sets the "user_answer" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateUserAnswer() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateUserAnswer()
	})
}

// SetShowFeedback sets the "show_feedback" field.
func (u *SessionRecordUpsertOne) SetShowFeedback(v bool) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetShowFeedback(v)
	})
}

// UpdateShowFeedback sets the "show_feedback" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateShowFeedback() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateShowFeedback()
	})
}

// SetAttempts sets the "attempts" field.
func (u *SessionRecordUpsertOne) SetAttempts(v json.RawMessage) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateAttempts() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateAttempts()
	})
}

// ClearAttempts clears the value of the "attempts" field.
func (u *SessionRecordUpsertOne) ClearAttempts() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.ClearAttempts()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *SessionRecordUpsertOne) SetStartedAt(v time.Time) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateStartedAt() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateStartedAt()
	})
}

// SetLastSaved sets the "last_saved" field.
func (u *SessionRecordUpsertOne) SetLastSaved(v time.Time) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetLastSaved(v)
	})
}

// UpdateLastSaved sets the "last_saved" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateLastSaved() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateLastSaved()
	})
}

// SetAggregatedAt sets the "aggregated_at" field.
func (u *SessionRecordUpsertOne) SetAggregatedAt(v time.Time) *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetAggregatedAt(v)
	})
}

// UpdateAggregatedAt sets the "aggregated_at" field to the value that was provided on create.
func (u *SessionRecordUpsertOne) UpdateAggregatedAt() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateAggregatedAt()
	})
}

// ClearAggregatedAt clears the value of the "aggregated_at" field.
func (u *SessionRecordUpsertOne) ClearAggregatedAt() *SessionRecordUpsertOne {
	return u.Update(func(s *SessionRecordUpsert) {
		s.ClearAggregatedAt()
	})
}

// Exec executes the query.
func (u *SessionRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionRecordCreateBulk is the builder for creating many SessionRecord entities in bulk.
type SessionRecordCreateBulk struct {
	config
	err      error
	builders []*SessionRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the SessionRecord entities in the database.
func (_c *SessionRecordCreateBulk) Save(ctx context.Context) ([]*SessionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionRecordMutation)
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
func (_c *SessionRecordCreateBulk) SaveX(ctx context.Context) []*SessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SessionRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionRecordUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionRecordUpsertBulk {
	_c.conflict = opts
	return &SessionRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SessionRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionRecordCreateBulk) OnConflictColumns(columns ...string) *SessionRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionRecordUpsertBulk{
		create: _c,
	}
}

// SessionRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of SessionRecord nodes.
type SessionRecordUpsertBulk struct {
	create *SessionRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SessionRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *SessionRecordUpsertBulk) UpdateNewValues() *SessionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SessionRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionRecordUpsertBulk) Ignore() *SessionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionRecordUpsertBulk) DoNothing() *SessionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionRecordCreateBulk.OnConflict
// documentation for more info.
func (u *SessionRecordUpsertBulk) Update(set func(*SessionRecordUpsert)) *SessionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *SessionRecordUpsertBulk) SetUserID(v string) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateUserID() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateUserID()
	})
}

// SetSubjectID sets the "subject_id" field.
func (u *SessionRecordUpsertBulk) SetSubjectID(v string) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetSubjectID(v)
	})
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateSubjectID() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateSubjectID()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *SessionRecordUpsertBulk) SetTopicID(v string) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateTopicID() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateTopicID()
	})
}

// SetSessionID sets the "session_id" field.
func (u *SessionRecordUpsertBulk) SetSessionID(v string) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateSessionID() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateSessionID()
	})
}

// SetQuestionOrder sets the "question_order" field.
func (u *SessionRecordUpsertBulk) SetQuestionOrder(v []string) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetQuestionOrder(v)
	})
}

// UpdateQuestionOrder sets the "question_order" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateQuestionOrder() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateQuestionOrder()
	})
}

// SetCurrentIndex sets the "current_index" field.
func (u *SessionRecordUpsertBulk) SetCurrentIndex(v int) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetCurrentIndex(v)
	})
}

// AddCurrentIndex adds v to the "current_index" field.
func (u *SessionRecordUpsertBulk) AddCurrentIndex(v int) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.AddCurrentIndex(v)
	})
}

// UpdateCurrentIndex sets the "current_index" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateCurrentIndex() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateCurrentIndex()
	})
}

// SetUserAnswer sets the "user_answer" field.
func (u *SessionRecordUpsertBulk) SetUserAnswer(v string) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetUserAnswer(v)
	})
}

// UpdateUserAnswer sets the "user_answer" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateUserAnswer() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateUserAnswer()
	})
}

// SetShowFeedback sets the "show_feedback" field.
func (u *SessionRecordUpsertBulk) SetShowFeedback(v bool) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetShowFeedback(v)
	})
}

// UpdateShowFeedback sets the "show_feedback" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateShowFeedback() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateShowFeedback()
	})
}

// SetAttempts sets the "attempts" field.
func (u *SessionRecordUpsertBulk) SetAttempts(v json.RawMessage) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateAttempts() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateAttempts()
	})
}

// ClearAttempts clears the value of the "attempts" field.
func (u *SessionRecordUpsertBulk) ClearAttempts() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.ClearAttempts()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *SessionRecordUpsertBulk) SetStartedAt(v time.Time) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateStartedAt() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateStartedAt()
	})
}

// SetLastSaved sets the "last_saved" field.
func (u *SessionRecordUpsertBulk) SetLastSaved(v time.Time) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetLastSaved(v)
	})
}

// UpdateLastSaved sets the "last_saved" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateLastSaved() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateLastSaved()
	})
}

// SetAggregatedAt sets the "aggregated_at" field.
func (u *SessionRecordUpsertBulk) SetAggregatedAt(v time.Time) *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.SetAggregatedAt(v)
	})
}

// UpdateAggregatedAt sets the "aggregated_at" field to the value that was provided on create.
func (u *SessionRecordUpsertBulk) UpdateAggregatedAt() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.UpdateAggregatedAt()
	})
}

// ClearAggregatedAt clears the value of the "aggregated_at" field.
func (u *SessionRecordUpsertBulk) ClearAggregatedAt() *SessionRecordUpsertBulk {
	return u.Update(func(s *SessionRecordUpsert) {
		s.ClearAggregatedAt()
	})
}

// Exec executes the query.
func (u *SessionRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
