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
	"github.com/revisely/revisely/ent/topicprogress"
)

// TopicProgressCreate is the builder for creating a TopicProgress entity.
type TopicProgressCreate struct {
	config
	mutation *TopicProgressMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *TopicProgressCreate) SetUserID(v string) *TopicProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *TopicProgressCreate) SetSubjectID(v string) *TopicProgressCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *TopicProgressCreate) SetTopicID(v string) *TopicProgressCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *TopicProgressCreate) SetAttempts(v int) *TopicProgressCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableAttempts(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetAverageScore sets the "average_score" field.
func (_c *TopicProgressCreate) SetAverageScore(v int) *TopicProgressCreate {
	_c.mutation.SetAverageScore(v)
	return _c
}

// SetNillableAverageScore sets the "average_score" field if the given value is not nil.
func (_c *TopicProgressCreate) SetNillableAverageScore(v *int) *TopicProgressCreate {
	if v != nil {
		_c.SetAverageScore(*v)
	}
	return _c
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_c *TopicProgressCreate) SetLastAttemptAt(v time.Time) *TopicProgressCreate {
	_c.mutation.SetLastAttemptAt(v)
	return _c
}

// Mutation returns the TopicProgressMutation object of the builder.
func (_c *TopicProgressCreate) Mutation() *TopicProgressMutation {
	return _c.mutation
}

// Save creates the TopicProgress in the database.
func (_c *TopicProgressCreate) Save(ctx context.Context) (*TopicProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicProgressCreate) SaveX(ctx context.Context) *TopicProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicProgressCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := topicprogress.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		v := topicprogress.DefaultAverageScore
		_c.mutation.SetAverageScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TopicProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := topicprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "TopicProgress.subject_id"`)}
	}
	if v, ok := _c.mutation.SubjectID(); ok {
		if err := topicprogress.SubjectIDValidator(v); err != nil {
			return &ValidationError{Name: "subject_id", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.subject_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "TopicProgress.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := topicprogress.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "TopicProgress.attempts"`)}
	}
	if _, ok := _c.mutation.AverageScore(); !ok {
		return &ValidationError{Name: "average_score", err: errors.New(`ent: missing required field "TopicProgress.average_score"`)}
	}
	if v, ok := _c.mutation.AverageScore(); ok {
		if err := topicprogress.AverageScoreValidator(v); err != nil {
			return &ValidationError{Name: "average_score", err: fmt.Errorf(`ent: validator failed for field "TopicProgress.average_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastAttemptAt(); !ok {
		return &ValidationError{Name: "last_attempt_at", err: errors.New(`ent: missing required field "TopicProgress.last_attempt_at"`)}
	}
	return nil
}

func (_c *TopicProgressCreate) sqlSave(ctx context.Context) (*TopicProgress, error) {
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

func (_c *TopicProgressCreate) createSpec() (*TopicProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicprogress.Table, sqlgraph.NewFieldSpec(topicprogress.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(topicprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(topicprogress.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(topicprogress.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(topicprogress.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.AverageScore(); ok {
		_spec.SetField(topicprogress.FieldAverageScore, field.TypeInt, value)
		_node.AverageScore = value
	}
	if value, ok := _c.mutation.LastAttemptAt(); ok {
		_spec.SetField(topicprogress.FieldLastAttemptAt, field.TypeTime, value)
		_node.LastAttemptAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TopicProgress.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TopicProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *TopicProgressCreate) OnConflict(opts ...sql.ConflictOption) *TopicProgressUpsertOne {
	_c.conflict = opts
	return &TopicProgressUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TopicProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TopicProgressCreate) OnConflictColumns(columns ...string) *TopicProgressUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TopicProgressUpsertOne{
		create: _c,
	}
}

type (
	// TopicProgressUpsertOne is the builder for "upsert"-ing
	//  one TopicProgress node.
	TopicProgressUpsertOne struct {
		create *TopicProgressCreate
	}

	// TopicProgressUpsert is the "OnConflict" setter.
	TopicProgressUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *TopicProgressUpsert) SetUserID(v string) *TopicProgressUpsert {
	u.Set(topicprogress.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateUserID() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldUserID)
	return u
}

// SetSubjectID sets the "subject_id" field.
func (u *TopicProgressUpsert) SetSubjectID(v string) *TopicProgressUpsert {
	u.Set(topicprogress.FieldSubjectID, v)
	return u
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateSubjectID() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldSubjectID)
	return u
}

// SetTopicID sets the "topic_id" field.
func (u *TopicProgressUpsert) SetTopicID(v string) *TopicProgressUpsert {
	u.Set(topicprogress.FieldTopicID, v)
	return u
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateTopicID() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldTopicID)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *TopicProgressUpsert) SetAttempts(v int) *TopicProgressUpsert {
	u.Set(topicprogress.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateAttempts() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *TopicProgressUpsert) AddAttempts(v int) *TopicProgressUpsert {
	u.Add(topicprogress.FieldAttempts, v)
	return u
}

// SetAverageScore sets the "average_score" field.
func (u *TopicProgressUpsert) SetAverageScore(v int) *TopicProgressUpsert {
	u.Set(topicprogress.FieldAverageScore, v)
	return u
}

// UpdateAverageScore sets the "average_score" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateAverageScore() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldAverageScore)
	return u
}

// AddAverageScore adds v to the "average_score" field.
func (u *TopicProgressUpsert) AddAverageScore(v int) *TopicProgressUpsert {
	u.Add(topicprogress.FieldAverageScore, v)
	return u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (u *TopicProgressUpsert) SetLastAttemptAt(v time.Time) *TopicProgressUpsert {
	u.Set(topicprogress.FieldLastAttemptAt, v)
	return u
}

// UpdateLastAttemptAt sets the "last_attempt_at" field to the value that was provided on create.
func (u *TopicProgressUpsert) UpdateLastAttemptAt() *TopicProgressUpsert {
	u.SetExcluded(topicprogress.FieldLastAttemptAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TopicProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TopicProgressUpsertOne) UpdateNewValues() *TopicProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TopicProgress.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TopicProgressUpsertOne) Ignore() *TopicProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TopicProgressUpsertOne) DoNothing() *TopicProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TopicProgressCreate.OnConflict
// documentation for more info.
func (u *TopicProgressUpsertOne) Update(set func(*TopicProgressUpsert)) *TopicProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TopicProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *TopicProgressUpsertOne) SetUserID(v string) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateUserID() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateUserID()
	})
}

// SetSubjectID sets the "subject_id" field.
func (u *TopicProgressUpsertOne) SetSubjectID(v string) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetSubjectID(v)
	})
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateSubjectID() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateSubjectID()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *TopicProgressUpsertOne) SetTopicID(v string) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateTopicID() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateTopicID()
	})
}

// SetAttempts sets the "attempts" field.
func (u *TopicProgressUpsertOne) SetAttempts(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *TopicProgressUpsertOne) AddAttempts(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateAttempts() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateAttempts()
	})
}

// SetAverageScore sets the "average_score" field.
func (u *TopicProgressUpsertOne) SetAverageScore(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetAverageScore(v)
	})
}

// AddAverageScore adds v to the "average_score" field.
func (u *TopicProgressUpsertOne) AddAverageScore(v int) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddAverageScore(v)
	})
}

// UpdateAverageScore sets the "average_score" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateAverageScore() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateAverageScore()
	})
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (u *TopicProgressUpsertOne) SetLastAttemptAt(v time.Time) *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetLastAttemptAt(v)
	})
}

// UpdateLastAttemptAt sets the "last_attempt_at" field to the value that was provided on create.
func (u *TopicProgressUpsertOne) UpdateLastAttemptAt() *TopicProgressUpsertOne {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateLastAttemptAt()
	})
}

// Exec executes the query.
func (u *TopicProgressUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TopicProgressCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TopicProgressUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TopicProgressUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TopicProgressUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TopicProgressCreateBulk is the builder for creating many TopicProgress entities in bulk.
type TopicProgressCreateBulk struct {
	config
	err      error
	builders []*TopicProgressCreate
	conflict []sql.ConflictOption
}

// Save creates the TopicProgress entities in the database.
func (_c *TopicProgressCreateBulk) Save(ctx context.Context) ([]*TopicProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicProgressMutation)
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
func (_c *TopicProgressCreateBulk) SaveX(ctx context.Context) []*TopicProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TopicProgress.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TopicProgressUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *TopicProgressCreateBulk) OnConflict(opts ...sql.ConflictOption) *TopicProgressUpsertBulk {
	_c.conflict = opts
	return &TopicProgressUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TopicProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TopicProgressCreateBulk) OnConflictColumns(columns ...string) *TopicProgressUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TopicProgressUpsertBulk{
		create: _c,
	}
}

// TopicProgressUpsertBulk is the builder for "upsert"-ing
// a bulk of TopicProgress nodes.
type TopicProgressUpsertBulk struct {
	create *TopicProgressCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TopicProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TopicProgressUpsertBulk) UpdateNewValues() *TopicProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TopicProgress.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TopicProgressUpsertBulk) Ignore() *TopicProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TopicProgressUpsertBulk) DoNothing() *TopicProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TopicProgressCreateBulk.OnConflict
// documentation for more info.
func (u *TopicProgressUpsertBulk) Update(set func(*TopicProgressUpsert)) *TopicProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TopicProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *TopicProgressUpsertBulk) SetUserID(v string) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateUserID() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateUserID()
	})
}

// SetSubjectID sets the "subject_id" field.
func (u *TopicProgressUpsertBulk) SetSubjectID(v string) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetSubjectID(v)
	})
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateSubjectID() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateSubjectID()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *TopicProgressUpsertBulk) SetTopicID(v string) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateTopicID() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateTopicID()
	})
}

// SetAttempts sets the "attempts" field.
func (u *TopicProgressUpsertBulk) SetAttempts(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *TopicProgressUpsertBulk) AddAttempts(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateAttempts() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateAttempts()
	})
}

// SetAverageScore sets the "average_score" field.
func (u *TopicProgressUpsertBulk) SetAverageScore(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetAverageScore(v)
	})
}

// AddAverageScore adds v to the "average_score" field.
func (u *TopicProgressUpsertBulk) AddAverageScore(v int) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.AddAverageScore(v)
	})
}

// UpdateAverageScore sets the "average_score" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateAverageScore() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateAverageScore()
	})
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (u *TopicProgressUpsertBulk) SetLastAttemptAt(v time.Time) *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.SetLastAttemptAt(v)
	})
}

// UpdateLastAttemptAt sets the "last_attempt_at" field to the value that was provided on create.
func (u *TopicProgressUpsertBulk) UpdateLastAttemptAt() *TopicProgressUpsertBulk {
	return u.Update(func(s *TopicProgressUpsert) {
		s.UpdateLastAttemptAt()
	})
}

// Exec executes the query.
func (u *TopicProgressUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TopicProgressCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TopicProgressCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TopicProgressUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
