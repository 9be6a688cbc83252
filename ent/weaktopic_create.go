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
	"github.com/revisely/revisely/ent/weaktopic"
)

// WeakTopicCreate is the builder for creating a WeakTopic entity.
type WeakTopicCreate struct {
	config
	mutation *WeakTopicMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *WeakTopicCreate) SetUserID(v string) *WeakTopicCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *WeakTopicCreate) SetSubjectID(v string) *WeakTopicCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *WeakTopicCreate) SetTopicID(v string) *WeakTopicCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetEnteredAt sets the "entered_at" field.
func (_c *WeakTopicCreate) SetEnteredAt(v time.Time) *WeakTopicCreate {
	_c.mutation.SetEnteredAt(v)
	return _c
}

// SetNillableEnteredAt sets the "entered_at" field if the given value is not nil.
func (_c *WeakTopicCreate) SetNillableEnteredAt(v *time.Time) *WeakTopicCreate {
	if v != nil {
		_c.SetEnteredAt(*v)
	}
	return _c
}

// Mutation returns the WeakTopicMutation object of the builder.
func (_c *WeakTopicCreate) Mutation() *WeakTopicMutation {
	return _c.mutation
}

// Save creates the WeakTopic in the database.
func (_c *WeakTopicCreate) Save(ctx context.Context) (*WeakTopic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WeakTopicCreate) SaveX(ctx context.Context) *WeakTopic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeakTopicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeakTopicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WeakTopicCreate) defaults() {
	if _, ok := _c.mutation.EnteredAt(); !ok {
		v := weaktopic.DefaultEnteredAt()
		_c.mutation.SetEnteredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WeakTopicCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "WeakTopic.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := weaktopic.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "WeakTopic.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "WeakTopic.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := weaktopic.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "WeakTopic.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "WeakTopic.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := weaktopic.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "WeakTopic.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EnteredAt(); !ok {
		return &ValidationError{Name: "entered_at", err: errors.New(`ent: missing required field "WeakTopic.entered_at"`)}
	}
	return nil
}

func (_c *WeakTopicCreate) sqlSave(ctx context.Context) (*WeakTopic, error) {
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

func (_c *WeakTopicCreate) createSpec() (*WeakTopic, *sqlgraph.CreateSpec) {
	var (
		_node = &WeakTopic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(weaktopic.Table, sqlgraph.NewFieldSpec(weaktopic.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(weaktopic.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(weaktopic.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(weaktopic.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.EnteredAt(); ok {
		_spec.SetField(weaktopic.FieldEnteredAt, field.TypeTime, value)
		_node.EnteredAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WeakTopic.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WeakTopicUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *WeakTopicCreate) OnConflict(opts ...sql.ConflictOption) *WeakTopicUpsertOne {
	_c.conflict = opts
	return &WeakTopicUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WeakTopic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WeakTopicCreate) OnConflictColumns(columns ...string) *WeakTopicUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WeakTopicUpsertOne{
		create: _c,
	}
}

type (
	// WeakTopicUpsertOne is the builder for "upsert"-ing
	//  one WeakTopic node.
	WeakTopicUpsertOne struct {
		create *WeakTopicCreate
	}

	// WeakTopicUpsert is the "OnConflict" setter.
	WeakTopicUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *WeakTopicUpsert) SetUserID(v string) *WeakTopicUpsert {
	u.Set(weaktopic.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *WeakTopicUpsert) UpdateUserID() *WeakTopicUpsert {
	u.SetExcluded(weaktopic.FieldUserID)
	return u
}

// SetSubjectID sets the "subject_id" field.
func (u *WeakTopicUpsert) SetSubjectID(v string) *WeakTopicUpsert {
	u.Set(weaktopic.FieldSubjectID, v)
	return u
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *WeakTopicUpsert) UpdateSubjectID() *WeakTopicUpsert {
	u.SetExcluded(weaktopic.FieldSubjectID)
	return u
}

// SetTopicID sets the "topic_id" field.
func (u *WeakTopicUpsert) SetTopicID(v string) *WeakTopicUpsert {
	u.Set(weaktopic.FieldTopicID, v)
	return u
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *WeakTopicUpsert) UpdateTopicID() *WeakTopicUpsert {
	u.SetExcluded(weaktopic.FieldTopicID)
	return u
}

// SetEnteredAt sets the "entered_at" field.
func (u *WeakTopicUpsert) SetEnteredAt(v time.Time) *WeakTopicUpsert {
	u.Set(weaktopic.FieldEnteredAt, v)
	return u
}

// UpdateEnteredAt sets the "entered_at" field to the value that was provided on create.
func (u *WeakTopicUpsert) UpdateEnteredAt() *WeakTopicUpsert {
	u.SetExcluded(weaktopic.FieldEnteredAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.WeakTopic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WeakTopicUpsertOne) UpdateNewValues() *WeakTopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WeakTopic.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WeakTopicUpsertOne) Ignore() *WeakTopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WeakTopicUpsertOne) DoNothing() *WeakTopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WeakTopicCreate.OnConflict
// documentation for more info.
func (u *WeakTopicUpsertOne) Update(set func(*WeakTopicUpsert)) *WeakTopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WeakTopicUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *WeakTopicUpsertOne) SetUserID(v string) *WeakTopicUpsertOne {
	return u.Update(func(s *WeakTopicUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *WeakTopicUpsertOne) UpdateUserID() *WeakTopicUpsertOne {
	return u.Update(func(s *WeakTopicUpsert) {
		s.UpdateUserID()
	})
}

// SetSubjectID sets the "subject_id" field.
func (u *WeakTopicUpsertOne) SetSubjectID(v string) *WeakTopicUpsertOne {
	return u.Update(func(s *WeakTopicUpsert) {
		s.SetSubjectID(v)
	})
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *WeakTopicUpsertOne) UpdateSubjectID() *WeakTopicUpsertOne {
	return u.Update(func(s *WeakTopicUpsert) {
		s.UpdateSubjectID()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *WeakTopicUpsertOne) SetTopicID(v string) *WeakTopicUpsertOne {
	return u.Update(func(s *WeakTopicUpsert) {
		s.SetTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *WeakTopicUpsertOne) UpdateTopicID() *WeakTopicUpsertOne {
	return u.Update(func(s *WeakTopicUpsert) {
		s.UpdateTopicID()
	})
}

// SetEnteredAt sets the "entered_at" field.
func (u *WeakTopicUpsertOne) SetEnteredAt(v time.Time) *WeakTopicUpsertOne {
	return u.Update(func(s *WeakTopicUpsert) {
		s.SetEnteredAt(v)
	})
}

// UpdateEnteredAt sets the "entered_at" field to the value that was provided on create.
func (u *WeakTopicUpsertOne) UpdateEnteredAt() *WeakTopicUpsertOne {
	return u.Update(func(s *WeakTopicUpsert) {
		s.UpdateEnteredAt()
	})
}

// Exec executes the query.
func (u *WeakTopicUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WeakTopicCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WeakTopicUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WeakTopicUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WeakTopicUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WeakTopicCreateBulk is the builder for creating many WeakTopic entities in bulk.
type WeakTopicCreateBulk struct {
	config
	err      error
	builders []*WeakTopicCreate
	conflict []sql.ConflictOption
}

// Save creates the WeakTopic entities in the database.
func (_c *WeakTopicCreateBulk) Save(ctx context.Context) ([]*WeakTopic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WeakTopic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WeakTopicMutation)
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
func (_c *WeakTopicCreateBulk) SaveX(ctx context.Context) []*WeakTopic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeakTopicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeakTopicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WeakTopic.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WeakTopicUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *WeakTopicCreateBulk) OnConflict(opts ...sql.ConflictOption) *WeakTopicUpsertBulk {
	_c.conflict = opts
	return &WeakTopicUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WeakTopic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WeakTopicCreateBulk) OnConflictColumns(columns ...string) *WeakTopicUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WeakTopicUpsertBulk{
		create: _c,
	}
}

// WeakTopicUpsertBulk is the builder for "upsert"-ing
// a bulk of WeakTopic nodes.
type WeakTopicUpsertBulk struct {
	create *WeakTopicCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WeakTopic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *WeakTopicUpsertBulk) UpdateNewValues() *WeakTopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WeakTopic.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WeakTopicUpsertBulk) Ignore() *WeakTopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WeakTopicUpsertBulk) DoNothing() *WeakTopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WeakTopicCreateBulk.OnConflict
// documentation for more info.
func (u *WeakTopicUpsertBulk) Update(set func(*WeakTopicUpsert)) *WeakTopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WeakTopicUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *WeakTopicUpsertBulk) SetUserID(v string) *WeakTopicUpsertBulk {
	return u.Update(func(s *WeakTopicUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *WeakTopicUpsertBulk) UpdateUserID() *WeakTopicUpsertBulk {
	return u.Update(func(s *WeakTopicUpsert) {
		s.UpdateUserID()
	})
}

// SetSubjectID sets the "subject_id" field.
func (u *WeakTopicUpsertBulk) SetSubjectID(v string) *WeakTopicUpsertBulk {
	return u.Update(func(s *WeakTopicUpsert) {
		s.SetSubjectID(v)
	})
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *WeakTopicUpsertBulk) UpdateSubjectID() *WeakTopicUpsertBulk {
	return u.Update(func(s *WeakTopicUpsert) {
		s.UpdateSubjectID()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *WeakTopicUpsertBulk) SetTopicID(v string) *WeakTopicUpsertBulk {
	return u.Update(func(s *WeakTopicUpsert) {
		s.SetTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *WeakTopicUpsertBulk) UpdateTopicID() *WeakTopicUpsertBulk {
	return u.Update(func(s *WeakTopicUpsert) {
		s.UpdateTopicID()
	})
}

// SetEnteredAt sets the "entered_at" field.
func (u *WeakTopicUpsertBulk) SetEnteredAt(v time.Time) *WeakTopicUpsertBulk {
	return u.Update(func(s *WeakTopicUpsert) {
		s.SetEnteredAt(v)
	})
}

// UpdateEnteredAt sets the "entered_at" field to the value that was provided on create.
func (u *WeakTopicUpsertBulk) UpdateEnteredAt() *WeakTopicUpsertBulk {
	return u.Update(func(s *WeakTopicUpsert) {
		s.UpdateEnteredAt()
	})
}

// Exec executes the query.
func (u *WeakTopicUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WeakTopicCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WeakTopicCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WeakTopicUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
