// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/revisely/revisely/ent/masteryrecord"
)

// MasteryRecordCreate is the builder for creating a MasteryRecord entity.
type MasteryRecordCreate struct {
	config
	mutation *MasteryRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *MasteryRecordCreate) SetUserID(v string) *MasteryRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *MasteryRecordCreate) SetSubjectID(v string) *MasteryRecordCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *MasteryRecordCreate) SetTopicID(v string) *MasteryRecordCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *MasteryRecordCreate) SetDay(v string) *MasteryRecordCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *MasteryRecordCreate) SetScore(v int) *MasteryRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (_c *MasteryRecordCreate) Mutation() *MasteryRecordMutation {
	return _c.mutation
}

// Save creates the MasteryRecord in the database.
func (_c *MasteryRecordCreate) Save(ctx context.Context) (*MasteryRecord, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MasteryRecordCreate) SaveX(ctx context.Context) *MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MasteryRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MasteryRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := masteryrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "MasteryRecord.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := masteryrecord.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "MasteryRecord.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := masteryrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "MasteryRecord.day"`)}
	}
	if v, ok := _c.mutation.Day(); ok {
		if err := masteryrecord.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.day": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "MasteryRecord.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := masteryrecord.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.score": %w`, err)}
		}
	}
	return nil
}

func (_c *MasteryRecordCreate) sqlSave(ctx context.Context) (*MasteryRecord, error) {
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

func (_c *MasteryRecordCreate) createSpec() (*MasteryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(masteryrecord.Table, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(masteryrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(masteryrecord.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(masteryrecord.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(masteryrecord.FieldDay, field.TypeString, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(masteryrecord.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MasteryRecord.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MasteryRecordUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *MasteryRecordCreate) OnConflict(opts ...sql.ConflictOption) *MasteryRecordUpsertOne {
	_c.conflict = opts
	return &MasteryRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MasteryRecordCreate) OnConflictColumns(columns ...string) *MasteryRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MasteryRecordUpsertOne{
		create: _c,
	}
}

type (
	// MasteryRecordUpsertOne is the builder for "upsert"-ing
	//  one MasteryRecord node.
	MasteryRecordUpsertOne struct {
		create *MasteryRecordCreate
	}

	// MasteryRecordUpsert is the "OnConflict" setter.
	MasteryRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *MasteryRecordUpsert) SetUserID(v string) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateUserID() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldUserID)
	return u
}

// SetSubjectID sets the "subject_id" field.
func (u *MasteryRecordUpsert) SetSubjectID(v string) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldSubjectID, v)
	return u
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateSubjectID() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldSubjectID)
	return u
}

// SetTopicID sets the "topic_id" field.
func (u *MasteryRecordUpsert) SetTopicID(v string) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldTopicID, v)
	return u
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateTopicID() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldTopicID)
	return u
}

// SetDay sets the "day" field.
func (u *MasteryRecordUpsert) SetDay(v string) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldDay, v)
	return u
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateDay() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldDay)
	return u
}

// SetScore sets the "score" field.
func (u *MasteryRecordUpsert) SetScore(v int) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateScore() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *MasteryRecordUpsert) AddScore(v int) *MasteryRecordUpsert {
	u.Add(masteryrecord.FieldScore, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MasteryRecordUpsertOne) UpdateNewValues() *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MasteryRecordUpsertOne) Ignore() *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MasteryRecordUpsertOne) DoNothing() *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MasteryRecordCreate.OnConflict
// documentation for more info.
func (u *MasteryRecordUpsertOne) Update(set func(*MasteryRecordUpsert)) *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MasteryRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *MasteryRecordUpsertOne) SetUserID(v string) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateUserID() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateUserID()
	})
}

// SetSubjectID sets the "subject_id" field.
func (u *MasteryRecordUpsertOne) SetSubjectID(v string) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetSubjectID(v)
	})
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateSubjectID() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateSubjectID()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *MasteryRecordUpsertOne) SetTopicID(v string) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateTopicID() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateTopicID()
	})
}

// SetDay sets the "day" field.
func (u *MasteryRecordUpsertOne) SetDay(v string) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateDay() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateDay()
	})
}

// SetScore sets the "score" field.
func (u *MasteryRecordUpsertOne) SetScore(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *MasteryRecordUpsertOne) AddScore(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateScore() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateScore()
	})
}

// Exec executes the query.
func (u *MasteryRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MasteryRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MasteryRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MasteryRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MasteryRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MasteryRecordCreateBulk is the builder for creating many MasteryRecord entities in bulk.
type MasteryRecordCreateBulk struct {
	config
	err      error
	builders []*MasteryRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the MasteryRecord entities in the database.
func (_c *MasteryRecordCreateBulk) Save(ctx context.Context) ([]*MasteryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MasteryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryRecordMutation)
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
func (_c *MasteryRecordCreateBulk) SaveX(ctx context.Context) []*MasteryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MasteryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MasteryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MasteryRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MasteryRecordUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *MasteryRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *MasteryRecordUpsertBulk {
	_c.conflict = opts
	return &MasteryRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MasteryRecordCreateBulk) OnConflictColumns(columns ...string) *MasteryRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MasteryRecordUpsertBulk{
		create: _c,
	}
}

// MasteryRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of MasteryRecord nodes.
type MasteryRecordUpsertBulk struct {
	create *MasteryRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MasteryRecordUpsertBulk) UpdateNewValues() *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MasteryRecordUpsertBulk) Ignore() *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MasteryRecordUpsertBulk) DoNothing() *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MasteryRecordCreateBulk.OnConflict
// documentation for more info.
func (u *MasteryRecordUpsertBulk) Update(set func(*MasteryRecordUpsert)) *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MasteryRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *MasteryRecordUpsertBulk) SetUserID(v string) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateUserID() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateUserID()
	})
}

// SetSubjectID sets the "subject_id" field.
func (u *MasteryRecordUpsertBulk) SetSubjectID(v string) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetSubjectID(v)
	})
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateSubjectID() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateSubjectID()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *MasteryRecordUpsertBulk) SetTopicID(v string) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateTopicID() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateTopicID()
	})
}

// SetDay sets the "day" field.
func (u *MasteryRecordUpsertBulk) SetDay(v string) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateDay() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateDay()
	})
}

// SetScore sets the "score" field.
func (u *MasteryRecordUpsertBulk) SetScore(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *MasteryRecordUpsertBulk) AddScore(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateScore() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateScore()
	})
}

// Exec executes the query.
func (u *MasteryRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MasteryRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MasteryRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MasteryRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
