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
	"github.com/revisely/revisely/ent/oraclerequestevent"
)

// OracleRequestEventCreate is the builder for creating a OracleRequestEvent entity.
type OracleRequestEventCreate struct {
	config
	mutation *OracleRequestEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *OracleRequestEventCreate) SetSequence(v int64) *OracleRequestEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *OracleRequestEventCreate) SetTimestamp(v time.Time) *OracleRequestEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *OracleRequestEventCreate) SetNillableTimestamp(v *time.Time) *OracleRequestEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *OracleRequestEventCreate) SetProvider(v string) *OracleRequestEventCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *OracleRequestEventCreate) SetModel(v string) *OracleRequestEventCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *OracleRequestEventCreate) SetInputTokens(v int) *OracleRequestEventCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *OracleRequestEventCreate) SetNillableInputTokens(v *int) *OracleRequestEventCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *OracleRequestEventCreate) SetOutputTokens(v int) *OracleRequestEventCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *OracleRequestEventCreate) SetNillableOutputTokens(v *int) *OracleRequestEventCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *OracleRequestEventCreate) SetLatencyMs(v int64) *OracleRequestEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *OracleRequestEventCreate) SetNillableLatencyMs(v *int64) *OracleRequestEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *OracleRequestEventCreate) SetSuccess(v bool) *OracleRequestEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetMarksAwarded sets the "marks_awarded" field.
func (_c *OracleRequestEventCreate) SetMarksAwarded(v int) *OracleRequestEventCreate {
	_c.mutation.SetMarksAwarded(v)
	return _c
}

// SetNillableMarksAwarded sets the "marks_awarded" field if the given value is not nil.
func (_c *OracleRequestEventCreate) SetNillableMarksAwarded(v *int) *OracleRequestEventCreate {
	if v != nil {
		_c.SetMarksAwarded(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *OracleRequestEventCreate) SetErrorMessage(v string) *OracleRequestEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *OracleRequestEventCreate) SetNillableErrorMessage(v *string) *OracleRequestEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the OracleRequestEventMutation object of the builder.
func (_c *OracleRequestEventCreate) Mutation() *OracleRequestEventMutation {
	return _c.mutation
}

// Save creates the OracleRequestEvent in the database.
func (_c *OracleRequestEventCreate) Save(ctx context.Context) (*OracleRequestEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OracleRequestEventCreate) SaveX(ctx context.Context) *OracleRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OracleRequestEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OracleRequestEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OracleRequestEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := oraclerequestevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := oraclerequestevent.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := oraclerequestevent.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := oraclerequestevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.MarksAwarded(); !ok {
		v := oraclerequestevent.DefaultMarksAwarded
		_c.mutation.SetMarksAwarded(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := oraclerequestevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OracleRequestEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "OracleRequestEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "OracleRequestEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "OracleRequestEvent.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := oraclerequestevent.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "OracleRequestEvent.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "OracleRequestEvent.model"`)}
	}
	if v, ok := _c.mutation.Model(); ok {
		if err := oraclerequestevent.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "OracleRequestEvent.model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "OracleRequestEvent.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "OracleRequestEvent.output_tokens"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "OracleRequestEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "OracleRequestEvent.success"`)}
	}
	if _, ok := _c.mutation.MarksAwarded(); !ok {
		return &ValidationError{Name: "marks_awarded", err: errors.New(`ent: missing required field "OracleRequestEvent.marks_awarded"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "OracleRequestEvent.error_message"`)}
	}
	return nil
}

func (_c *OracleRequestEventCreate) sqlSave(ctx context.Context) (*OracleRequestEvent, error) {
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

func (_c *OracleRequestEventCreate) createSpec() (*OracleRequestEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &OracleRequestEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(oraclerequestevent.Table, sqlgraph.NewFieldSpec(oraclerequestevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(oraclerequestevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(oraclerequestevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(oraclerequestevent.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(oraclerequestevent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(oraclerequestevent.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(oraclerequestevent.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(oraclerequestevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(oraclerequestevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.MarksAwarded(); ok {
		_spec.SetField(oraclerequestevent.FieldMarksAwarded, field.TypeInt, value)
		_node.MarksAwarded = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(oraclerequestevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OracleRequestEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OracleRequestEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *OracleRequestEventCreate) OnConflict(opts ...sql.ConflictOption) *OracleRequestEventUpsertOne {
	_c.conflict = opts
	return &OracleRequestEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OracleRequestEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OracleRequestEventCreate) OnConflictColumns(columns ...string) *OracleRequestEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OracleRequestEventUpsertOne{
		create: _c,
	}
}

type (
	// OracleRequestEventUpsertOne is the builder for "upsert"-ing
	//  one OracleRequestEvent node.
	OracleRequestEventUpsertOne struct {
		create *OracleRequestEventCreate
	}

	// OracleRequestEventUpsert is the "OnConflict" setter.
	OracleRequestEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetProvider sets the "provider" field.
func (u *OracleRequestEventUpsert) SetProvider(v string) *OracleRequestEventUpsert {
	u.Set(oraclerequestevent.FieldProvider, v)
	return u
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *OracleRequestEventUpsert) UpdateProvider() *OracleRequestEventUpsert {
	u.SetExcluded(oraclerequestevent.FieldProvider)
	return u
}

// SetModel sets the "model" field.
func (u *OracleRequestEventUpsert) SetModel(v string) *OracleRequestEventUpsert {
	u.Set(oraclerequestevent.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *OracleRequestEventUpsert) UpdateModel() *OracleRequestEventUpsert {
	u.SetExcluded(oraclerequestevent.FieldModel)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *OracleRequestEventUpsert) SetInputTokens(v int) *OracleRequestEventUpsert {
	u.Set(oraclerequestevent.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *OracleRequestEventUpsert) UpdateInputTokens() *OracleRequestEventUpsert {
	u.SetExcluded(oraclerequestevent.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *OracleRequestEventUpsert) AddInputTokens(v int) *OracleRequestEventUpsert {
	u.Add(oraclerequestevent.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *OracleRequestEventUpsert) SetOutputTokens(v int) *OracleRequestEventUpsert {
	u.Set(oraclerequestevent.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *OracleRequestEventUpsert) UpdateOutputTokens() *OracleRequestEventUpsert {
	u.SetExcluded(oraclerequestevent.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *OracleRequestEventUpsert) AddOutputTokens(v int) *OracleRequestEventUpsert {
	u.Add(oraclerequestevent.FieldOutputTokens, v)
	return u
}

// SetLatencyMs sets the "latency_ms" field.
func (u *OracleRequestEventUpsert) SetLatencyMs(v int64) *OracleRequestEventUpsert {
	u.Set(oraclerequestevent.FieldLatencyMs, v)
	return u
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *OracleRequestEventUpsert) UpdateLatencyMs() *OracleRequestEventUpsert {
	u.SetExcluded(oraclerequestevent.FieldLatencyMs)
	return u
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *OracleRequestEventUpsert) AddLatencyMs(v int64) *OracleRequestEventUpsert {
	u.Add(oraclerequestevent.FieldLatencyMs, v)
	return u
}

// SetSuccess sets the "success" field.
func (u *OracleRequestEventUpsert) SetSuccess(v bool) *OracleRequestEventUpsert {
	u.Set(oraclerequestevent.FieldSuccess, v)
	return u
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *OracleRequestEventUpsert) UpdateSuccess() *OracleRequestEventUpsert {
	u.SetExcluded(oraclerequestevent.FieldSuccess)
	return u
}

// SetMarksAwarded sets the "marks_awarded" field.
func (u *OracleRequestEventUpsert) SetMarksAwarded(v int) *OracleRequestEventUpsert {
	u.Set(oraclerequestevent.FieldMarksAwarded, v)
	return u
}

// UpdateMarksAwarded sets the "marks_awarded" field to the value that was provided on create.
func (u *OracleRequestEventUpsert) UpdateMarksAwarded() *OracleRequestEventUpsert {
	u.SetExcluded(oraclerequestevent.FieldMarksAwarded)
	return u
}

// AddMarksAwarded adds v to the "marks_awarded" field.
func (u *OracleRequestEventUpsert) AddMarksAwarded(v int) *OracleRequestEventUpsert {
	u.Add(oraclerequestevent.FieldMarksAwarded, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *OracleRequestEventUpsert) SetErrorMessage(v string) *OracleRequestEventUpsert {
	u.Set(oraclerequestevent.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *OracleRequestEventUpsert) UpdateErrorMessage() *OracleRequestEventUpsert {
	u.SetExcluded(oraclerequestevent.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.OracleRequestEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OracleRequestEventUpsertOne) UpdateNewValues() *OracleRequestEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(oraclerequestevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(oraclerequestevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OracleRequestEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *OracleRequestEventUpsertOne) Ignore() *OracleRequestEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OracleRequestEventUpsertOne) DoNothing() *OracleRequestEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OracleRequestEventCreate.OnConflict
// documentation for more info.
func (u *OracleRequestEventUpsertOne) Update(set func(*OracleRequestEventUpsert)) *OracleRequestEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OracleRequestEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *OracleRequestEventUpsertOne) SetProvider(v string) *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *OracleRequestEventUpsertOne) UpdateProvider() *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *OracleRequestEventUpsertOne) SetModel(v string) *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *OracleRequestEventUpsertOne) UpdateModel() *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.UpdateModel()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *OracleRequestEventUpsertOne) SetInputTokens(v int) *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *OracleRequestEventUpsertOne) AddInputTokens(v int) *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *OracleRequestEventUpsertOne) UpdateInputTokens() *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *OracleRequestEventUpsertOne) SetOutputTokens(v int) *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *OracleRequestEventUpsertOne) AddOutputTokens(v int) *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *OracleRequestEventUpsertOne) UpdateOutputTokens() *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *OracleRequestEventUpsertOne) SetLatencyMs(v int64) *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *OracleRequestEventUpsertOne) AddLatencyMs(v int64) *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *OracleRequestEventUpsertOne) UpdateLatencyMs() *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetSuccess sets the "success" field.
func (u *OracleRequestEventUpsertOne) SetSuccess(v bool) *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *OracleRequestEventUpsertOne) UpdateSuccess() *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.UpdateSuccess()
	})
}

// SetMarksAwarded sets the "marks_awarded" field.
func (u *OracleRequestEventUpsertOne) SetMarksAwarded(v int) *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.SetMarksAwarded(v)
	})
}

// AddMarksAwarded adds v to the "marks_awarded" field.
func (u *OracleRequestEventUpsertOne) AddMarksAwarded(v int) *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.AddMarksAwarded(v)
	})
}

// UpdateMarksAwarded sets the "marks_awarded" field to the value that was provided on create.
func (u *OracleRequestEventUpsertOne) UpdateMarksAwarded() *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.UpdateMarksAwarded()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *OracleRequestEventUpsertOne) SetErrorMessage(v string) *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *OracleRequestEventUpsertOne) UpdateErrorMessage() *OracleRequestEventUpsertOne {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.UpdateErrorMessage()
	})
}

// Exec executes the query.
func (u *OracleRequestEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OracleRequestEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OracleRequestEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *OracleRequestEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *OracleRequestEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// OracleRequestEventCreateBulk is the builder for creating many OracleRequestEvent entities in bulk.
type OracleRequestEventCreateBulk struct {
	config
	err      error
	builders []*OracleRequestEventCreate
	conflict []sql.ConflictOption
}

// Save creates the OracleRequestEvent entities in the database.
func (_c *OracleRequestEventCreateBulk) Save(ctx context.Context) ([]*OracleRequestEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OracleRequestEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OracleRequestEventMutation)
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
func (_c *OracleRequestEventCreateBulk) SaveX(ctx context.Context) []*OracleRequestEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OracleRequestEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OracleRequestEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.OracleRequestEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.OracleRequestEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *OracleRequestEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *OracleRequestEventUpsertBulk {
	_c.conflict = opts
	return &OracleRequestEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.OracleRequestEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *OracleRequestEventCreateBulk) OnConflictColumns(columns ...string) *OracleRequestEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &OracleRequestEventUpsertBulk{
		create: _c,
	}
}

// OracleRequestEventUpsertBulk is the builder for "upsert"-ing
// a bulk of OracleRequestEvent nodes.
type OracleRequestEventUpsertBulk struct {
	create *OracleRequestEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.OracleRequestEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *OracleRequestEventUpsertBulk) UpdateNewValues() *OracleRequestEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(oraclerequestevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(oraclerequestevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.OracleRequestEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *OracleRequestEventUpsertBulk) Ignore() *OracleRequestEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *OracleRequestEventUpsertBulk) DoNothing() *OracleRequestEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the OracleRequestEventCreateBulk.OnConflict
// documentation for more info.
func (u *OracleRequestEventUpsertBulk) Update(set func(*OracleRequestEventUpsert)) *OracleRequestEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&OracleRequestEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetProvider sets the "provider" field.
func (u *OracleRequestEventUpsertBulk) SetProvider(v string) *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.SetProvider(v)
	})
}

// UpdateProvider sets the "provider" field to the value that was provided on create.
func (u *OracleRequestEventUpsertBulk) UpdateProvider() *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.UpdateProvider()
	})
}

// SetModel sets the "model" field.
func (u *OracleRequestEventUpsertBulk) SetModel(v string) *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *OracleRequestEventUpsertBulk) UpdateModel() *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.UpdateModel()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *OracleRequestEventUpsertBulk) SetInputTokens(v int) *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *OracleRequestEventUpsertBulk) AddInputTokens(v int) *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *OracleRequestEventUpsertBulk) UpdateInputTokens() *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *OracleRequestEventUpsertBulk) SetOutputTokens(v int) *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *OracleRequestEventUpsertBulk) AddOutputTokens(v int) *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *OracleRequestEventUpsertBulk) UpdateOutputTokens() *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetLatencyMs sets the "latency_ms" field.
func (u *OracleRequestEventUpsertBulk) SetLatencyMs(v int64) *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.SetLatencyMs(v)
	})
}

// AddLatencyMs adds v to the "latency_ms" field.
func (u *OracleRequestEventUpsertBulk) AddLatencyMs(v int64) *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.AddLatencyMs(v)
	})
}

// UpdateLatencyMs sets the "latency_ms" field to the value that was provided on create.
func (u *OracleRequestEventUpsertBulk) UpdateLatencyMs() *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.UpdateLatencyMs()
	})
}

// SetSuccess sets the "success" field.
func (u *OracleRequestEventUpsertBulk) SetSuccess(v bool) *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.SetSuccess(v)
	})
}

// UpdateSuccess sets the "success" field to the value that was provided on create.
func (u *OracleRequestEventUpsertBulk) UpdateSuccess() *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.UpdateSuccess()
	})
}

// SetMarksAwarded sets the "marks_awarded" field.
func (u *OracleRequestEventUpsertBulk) SetMarksAwarded(v int) *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.SetMarksAwarded(v)
	})
}

// AddMarksAwarded adds v to the "marks_awarded" field.
func (u *OracleRequestEventUpsertBulk) AddMarksAwarded(v int) *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.AddMarksAwarded(v)
	})
}

// UpdateMarksAwarded sets the "marks_awarded" field to the value that was provided on create.
func (u *OracleRequestEventUpsertBulk) UpdateMarksAwarded() *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.UpdateMarksAwarded()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *OracleRequestEventUpsertBulk) SetErrorMessage(v string) *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *OracleRequestEventUpsertBulk) UpdateErrorMessage() *OracleRequestEventUpsertBulk {
	return u.Update(func(s *OracleRequestEventUpsert) {
		s.UpdateErrorMessage()
	})
}

// Exec executes the query.
func (u *OracleRequestEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the OracleRequestEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for OracleRequestEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *OracleRequestEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
