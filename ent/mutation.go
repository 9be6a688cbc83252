// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/revisely/revisely/ent/attemptevent"
	"github.com/revisely/revisely/ent/masteryrecord"
	"github.com/revisely/revisely/ent/oraclerequestevent"
	"github.com/revisely/revisely/ent/predicate"
	"github.com/revisely/revisely/ent/sessionrecord"
	"github.com/revisely/revisely/ent/subjectperformance"
	"github.com/revisely/revisely/ent/topicprogress"
	"github.com/revisely/revisely/ent/weaktopic"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttemptEvent       = "AttemptEvent"
	TypeMasteryRecord      = "MasteryRecord"
	TypeOracleRequestEvent = "OracleRequestEvent"
	TypeSessionRecord      = "SessionRecord"
	TypeSubjectPerformance = "SubjectPerformance"
	TypeTopicProgress      = "TopicProgress"
	TypeWeakTopic          = "WeakTopic"
)

// AttemptEventMutation represents an operation that mutates the AttemptEvent nodes in the graph.
type AttemptEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	session_id         *string
	user_id            *string
	subject_id         *string
	topic_id           *string
	question_id        *string
	user_answer        *string
	marks_awarded      *int
	addmarks_awarded   *int
	marks_available    *int
	addmarks_available *int
	assessment         *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*AttemptEvent, error)
	predicates         []predicate.AttemptEvent
}

var _ ent.Mutation = (*AttemptEventMutation)(nil)

// attempteventOption allows management of the mutation configuration using functional options.
type attempteventOption func(*AttemptEventMutation)

// newAttemptEventMutation creates new mutation for the AttemptEvent entity.
func newAttemptEventMutation(c config, op Op, opts ...attempteventOption) *AttemptEventMutation {
	m := &AttemptEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAttemptEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptEventID sets the ID field of the mutation.
func withAttemptEventID(id int) attempteventOption {
	return func(m *AttemptEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AttemptEvent
		)
		m.oldValue = func(ctx context.Context) (*AttemptEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttemptEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttemptEvent sets the old AttemptEvent of the mutation.
func withAttemptEvent(node *AttemptEvent) attempteventOption {
	return func(m *AttemptEventMutation) {
		m.oldValue = func(context.Context) (*AttemptEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttemptEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AttemptEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AttemptEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AttemptEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AttemptEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AttemptEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AttemptEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AttemptEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AttemptEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *AttemptEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AttemptEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AttemptEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *AttemptEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AttemptEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AttemptEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *AttemptEventMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *AttemptEventMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *AttemptEventMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *AttemptEventMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *AttemptEventMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *AttemptEventMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AttemptEventMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AttemptEventMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AttemptEventMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetUserAnswer sets the "user_answer" field.
func (m *AttemptEventMutation) SetUserAnswer(s string) {
	m.user_answer = &s
}

// UserAnswer returns the value of the "user_answer" field in the mutation.
func (m *AttemptEventMutation) UserAnswer() (r string, exists bool) {
	v := m.user_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAnswer returns the old "user_answer" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldUserAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAnswer: %w", err)
	}
	return oldValue.UserAnswer, nil
}

// ResetUserAnswer resets all changes to the "user_answer" field.
func (m *AttemptEventMutation) ResetUserAnswer() {
	m.user_answer = nil
}

// SetMarksAwarded sets the "marks_awarded" field.
func (m *AttemptEventMutation) SetMarksAwarded(i int) {
	m.marks_awarded = &i
	m.addmarks_awarded = nil
}

// MarksAwarded returns the value of the "marks_awarded" field in the mutation.
func (m *AttemptEventMutation) MarksAwarded() (r int, exists bool) {
	v := m.marks_awarded
	if v == nil {
		return
	}
	return *v, true
}

// OldMarksAwarded returns the old "marks_awarded" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldMarksAwarded(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarksAwarded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarksAwarded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarksAwarded: %w", err)
	}
	return oldValue.MarksAwarded, nil
}

// AddMarksAwarded adds i to the "marks_awarded" field.
func (m *AttemptEventMutation) AddMarksAwarded(i int) {
	if m.addmarks_awarded != nil {
		*m.addmarks_awarded += i
	} else {
		m.addmarks_awarded = &i
	}
}

// AddedMarksAwarded returns the value that was added to the "marks_awarded" field in this mutation.
func (m *AttemptEventMutation) AddedMarksAwarded() (r int, exists bool) {
	v := m.addmarks_awarded
	if v == nil {
		return
	}
	return *v, true
}

// ResetMarksAwarded resets all changes to the "marks_awarded" field.
func (m *AttemptEventMutation) ResetMarksAwarded() {
	m.marks_awarded = nil
	m.addmarks_awarded = nil
}

// SetMarksAvailable sets the "marks_available" field.
func (m *AttemptEventMutation) SetMarksAvailable(i int) {
	m.marks_available = &i
	m.addmarks_available = nil
}

// MarksAvailable returns the value of the "marks_available" field in the mutation.
func (m *AttemptEventMutation) MarksAvailable() (r int, exists bool) {
	v := m.marks_available
	if v == nil {
		return
	}
	return *v, true
}

// OldMarksAvailable returns the old "marks_available" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldMarksAvailable(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarksAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarksAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarksAvailable: %w", err)
	}
	return oldValue.MarksAvailable, nil
}

// AddMarksAvailable adds i to the "marks_available" field.
func (m *AttemptEventMutation) AddMarksAvailable(i int) {
	if m.addmarks_available != nil {
		*m.addmarks_available += i
	} else {
		m.addmarks_available = &i
	}
}

// AddedMarksAvailable returns the value that was added to the "marks_available" field in this mutation.
func (m *AttemptEventMutation) AddedMarksAvailable() (r int, exists bool) {
	v := m.addmarks_available
	if v == nil {
		return
	}
	return *v, true
}

// ResetMarksAvailable resets all changes to the "marks_available" field.
func (m *AttemptEventMutation) ResetMarksAvailable() {
	m.marks_available = nil
	m.addmarks_available = nil
}

// SetAssessment sets the "assessment" field.
func (m *AttemptEventMutation) SetAssessment(s string) {
	m.assessment = &s
}

// Assessment returns the value of the "assessment" field in the mutation.
func (m *AttemptEventMutation) Assessment() (r string, exists bool) {
	v := m.assessment
	if v == nil {
		return
	}
	return *v, true
}

// OldAssessment returns the old "assessment" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldAssessment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssessment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssessment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssessment: %w", err)
	}
	return oldValue.Assessment, nil
}

// ResetAssessment resets all changes to the "assessment" field.
func (m *AttemptEventMutation) ResetAssessment() {
	m.assessment = nil
}

// Where appends a list predicates to the AttemptEventMutation builder.
func (m *AttemptEventMutation) Where(ps ...predicate.AttemptEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttemptEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttemptEvent).
func (m *AttemptEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, attemptevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, attemptevent.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, attemptevent.FieldUserID)
	}
	if m.subject_id != nil {
		fields = append(fields, attemptevent.FieldSubjectID)
	}
	if m.topic_id != nil {
		fields = append(fields, attemptevent.FieldTopicID)
	}
	if m.question_id != nil {
		fields = append(fields, attemptevent.FieldQuestionID)
	}
	if m.user_answer != nil {
		fields = append(fields, attemptevent.FieldUserAnswer)
	}
	if m.marks_awarded != nil {
		fields = append(fields, attemptevent.FieldMarksAwarded)
	}
	if m.marks_available != nil {
		fields = append(fields, attemptevent.FieldMarksAvailable)
	}
	if m.assessment != nil {
		fields = append(fields, attemptevent.FieldAssessment)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.Sequence()
	case attemptevent.FieldTimestamp:
		return m.Timestamp()
	case attemptevent.FieldSessionID:
		return m.SessionID()
	case attemptevent.FieldUserID:
		return m.UserID()
	case attemptevent.FieldSubjectID:
		return m.SubjectID()
	case attemptevent.FieldTopicID:
		return m.TopicID()
	case attemptevent.FieldQuestionID:
		return m.QuestionID()
	case attemptevent.FieldUserAnswer:
		return m.UserAnswer()
	case attemptevent.FieldMarksAwarded:
		return m.MarksAwarded()
	case attemptevent.FieldMarksAvailable:
		return m.MarksAvailable()
	case attemptevent.FieldAssessment:
		return m.Assessment()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attemptevent.FieldSequence:
		return m.OldSequence(ctx)
	case attemptevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case attemptevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case attemptevent.FieldUserID:
		return m.OldUserID(ctx)
	case attemptevent.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case attemptevent.FieldTopicID:
		return m.OldTopicID(ctx)
	case attemptevent.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case attemptevent.FieldUserAnswer:
		return m.OldUserAnswer(ctx)
	case attemptevent.FieldMarksAwarded:
		return m.OldMarksAwarded(ctx)
	case attemptevent.FieldMarksAvailable:
		return m.OldMarksAvailable(ctx)
	case attemptevent.FieldAssessment:
		return m.OldAssessment(ctx)
	}
	return nil, fmt.Errorf("unknown AttemptEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case attemptevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case attemptevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case attemptevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case attemptevent.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case attemptevent.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case attemptevent.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case attemptevent.FieldUserAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAnswer(v)
		return nil
	case attemptevent.FieldMarksAwarded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarksAwarded(v)
		return nil
	case attemptevent.FieldMarksAvailable:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarksAvailable(v)
		return nil
	case attemptevent.FieldAssessment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssessment(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.addmarks_awarded != nil {
		fields = append(fields, attemptevent.FieldMarksAwarded)
	}
	if m.addmarks_available != nil {
		fields = append(fields, attemptevent.FieldMarksAvailable)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.AddedSequence()
	case attemptevent.FieldMarksAwarded:
		return m.AddedMarksAwarded()
	case attemptevent.FieldMarksAvailable:
		return m.AddedMarksAvailable()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case attemptevent.FieldMarksAwarded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMarksAwarded(v)
		return nil
	case attemptevent.FieldMarksAvailable:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMarksAvailable(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AttemptEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptEventMutation) ResetField(name string) error {
	switch name {
	case attemptevent.FieldSequence:
		m.ResetSequence()
		return nil
	case attemptevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case attemptevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case attemptevent.FieldUserID:
		m.ResetUserID()
		return nil
	case attemptevent.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case attemptevent.FieldTopicID:
		m.ResetTopicID()
		return nil
	case attemptevent.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case attemptevent.FieldUserAnswer:
		m.ResetUserAnswer()
		return nil
	case attemptevent.FieldMarksAwarded:
		m.ResetMarksAwarded()
		return nil
	case attemptevent.FieldMarksAvailable:
		m.ResetMarksAvailable()
		return nil
	case attemptevent.FieldAssessment:
		m.ResetAssessment()
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent edge %s", name)
}

// MasteryRecordMutation represents an operation that mutates the MasteryRecord nodes in the graph.
type MasteryRecordMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	subject_id    *string
	topic_id      *string
	day           *string
	score         *int
	addscore      *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MasteryRecord, error)
	predicates    []predicate.MasteryRecord
}

var _ ent.Mutation = (*MasteryRecordMutation)(nil)

// masteryrecordOption allows management of the mutation configuration using functional options.
type masteryrecordOption func(*MasteryRecordMutation)

// newMasteryRecordMutation creates new mutation for the MasteryRecord entity.
func newMasteryRecordMutation(c config, op Op, opts ...masteryrecordOption) *MasteryRecordMutation {
	m := &MasteryRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeMasteryRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMasteryRecordID sets the ID field of the mutation.
func withMasteryRecordID(id int) masteryrecordOption {
	return func(m *MasteryRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *MasteryRecord
		)
		m.oldValue = func(ctx context.Context) (*MasteryRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MasteryRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMasteryRecord sets the old MasteryRecord of the mutation.
func withMasteryRecord(node *MasteryRecord) masteryrecordOption {
	return func(m *MasteryRecordMutation) {
		m.oldValue = func(context.Context) (*MasteryRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MasteryRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MasteryRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MasteryRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MasteryRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MasteryRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *MasteryRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MasteryRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MasteryRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *MasteryRecordMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *MasteryRecordMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *MasteryRecordMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *MasteryRecordMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *MasteryRecordMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *MasteryRecordMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetDay sets the "day" field.
func (m *MasteryRecordMutation) SetDay(s string) {
	m.day = &s
}

// Day returns the value of the "day" field in the mutation.
func (m *MasteryRecordMutation) Day() (r string, exists bool) {
	v := m.day
	if v == nil {
		return
	}
	return *v, true
}

// OldDay returns the old "day" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldDay(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDay: %w", err)
	}
	return oldValue.Day, nil
}

// ResetDay resets all changes to the "day" field.
func (m *MasteryRecordMutation) ResetDay() {
	m.day = nil
}

// SetScore sets the "score" field.
func (m *MasteryRecordMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *MasteryRecordMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *MasteryRecordMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *MasteryRecordMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *MasteryRecordMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// Where appends a list predicates to the MasteryRecordMutation builder.
func (m *MasteryRecordMutation) Where(ps ...predicate.MasteryRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MasteryRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MasteryRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MasteryRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MasteryRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MasteryRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MasteryRecord).
func (m *MasteryRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MasteryRecordMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, masteryrecord.FieldUserID)
	}
	if m.subject_id != nil {
		fields = append(fields, masteryrecord.FieldSubjectID)
	}
	if m.topic_id != nil {
		fields = append(fields, masteryrecord.FieldTopicID)
	}
	if m.day != nil {
		fields = append(fields, masteryrecord.FieldDay)
	}
	if m.score != nil {
		fields = append(fields, masteryrecord.FieldScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MasteryRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case masteryrecord.FieldUserID:
		return m.UserID()
	case masteryrecord.FieldSubjectID:
		return m.SubjectID()
	case masteryrecord.FieldTopicID:
		return m.TopicID()
	case masteryrecord.FieldDay:
		return m.Day()
	case masteryrecord.FieldScore:
		return m.Score()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MasteryRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case masteryrecord.FieldUserID:
		return m.OldUserID(ctx)
	case masteryrecord.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case masteryrecord.FieldTopicID:
		return m.OldTopicID(ctx)
	case masteryrecord.FieldDay:
		return m.OldDay(ctx)
	case masteryrecord.FieldScore:
		return m.OldScore(ctx)
	}
	return nil, fmt.Errorf("unknown MasteryRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case masteryrecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case masteryrecord.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case masteryrecord.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case masteryrecord.FieldDay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDay(v)
		return nil
	case masteryrecord.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MasteryRecordMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, masteryrecord.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MasteryRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case masteryrecord.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case masteryrecord.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MasteryRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MasteryRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MasteryRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MasteryRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MasteryRecordMutation) ResetField(name string) error {
	switch name {
	case masteryrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case masteryrecord.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case masteryrecord.FieldTopicID:
		m.ResetTopicID()
		return nil
	case masteryrecord.FieldDay:
		m.ResetDay()
		return nil
	case masteryrecord.FieldScore:
		m.ResetScore()
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MasteryRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MasteryRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MasteryRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MasteryRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MasteryRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MasteryRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MasteryRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MasteryRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MasteryRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MasteryRecord edge %s", name)
}

// OracleRequestEventMutation represents an operation that mutates the OracleRequestEvent nodes in the graph.
type OracleRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	marks_awarded    *int
	addmarks_awarded *int
	error_message    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*OracleRequestEvent, error)
	predicates       []predicate.OracleRequestEvent
}

var _ ent.Mutation = (*OracleRequestEventMutation)(nil)

// oraclerequesteventOption allows management of the mutation configuration using functional options.
type oraclerequesteventOption func(*OracleRequestEventMutation)

// newOracleRequestEventMutation creates new mutation for the OracleRequestEvent entity.
func newOracleRequestEventMutation(c config, op Op, opts ...oraclerequesteventOption) *OracleRequestEventMutation {
	m := &OracleRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeOracleRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOracleRequestEventID sets the ID field of the mutation.
func withOracleRequestEventID(id int) oraclerequesteventOption {
	return func(m *OracleRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *OracleRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*OracleRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OracleRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOracleRequestEvent sets the old OracleRequestEvent of the mutation.
func withOracleRequestEvent(node *OracleRequestEvent) oraclerequesteventOption {
	return func(m *OracleRequestEventMutation) {
		m.oldValue = func(context.Context) (*OracleRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OracleRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OracleRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OracleRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OracleRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OracleRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *OracleRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *OracleRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *OracleRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *OracleRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *OracleRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *OracleRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *OracleRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *OracleRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *OracleRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *OracleRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *OracleRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *OracleRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *OracleRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *OracleRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *OracleRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *OracleRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *OracleRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *OracleRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *OracleRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *OracleRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *OracleRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *OracleRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *OracleRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *OracleRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *OracleRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *OracleRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *OracleRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *OracleRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *OracleRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *OracleRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *OracleRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *OracleRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetMarksAwarded sets the "marks_awarded" field.
func (m *OracleRequestEventMutation) SetMarksAwarded(i int) {
	m.marks_awarded = &i
	m.addmarks_awarded = nil
}

// MarksAwarded returns the value of the "marks_awarded" field in the mutation.
func (m *OracleRequestEventMutation) MarksAwarded() (r int, exists bool) {
	v := m.marks_awarded
	if v == nil {
		return
	}
	return *v, true
}

// OldMarksAwarded returns the old "marks_awarded" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldMarksAwarded(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarksAwarded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarksAwarded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarksAwarded: %w", err)
	}
	return oldValue.MarksAwarded, nil
}

// AddMarksAwarded adds i to the "marks_awarded" field.
func (m *OracleRequestEventMutation) AddMarksAwarded(i int) {
	if m.addmarks_awarded != nil {
		*m.addmarks_awarded += i
	} else {
		m.addmarks_awarded = &i
	}
}

// AddedMarksAwarded returns the value that was added to the "marks_awarded" field in this mutation.
func (m *OracleRequestEventMutation) AddedMarksAwarded() (r int, exists bool) {
	v := m.addmarks_awarded
	if v == nil {
		return
	}
	return *v, true
}

// ResetMarksAwarded resets all changes to the "marks_awarded" field.
func (m *OracleRequestEventMutation) ResetMarksAwarded() {
	m.marks_awarded = nil
	m.addmarks_awarded = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *OracleRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *OracleRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the OracleRequestEvent entity.
// If the OracleRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OracleRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *OracleRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// Where appends a list predicates to the OracleRequestEventMutation builder.
func (m *OracleRequestEventMutation) Where(ps ...predicate.OracleRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OracleRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OracleRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OracleRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OracleRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OracleRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OracleRequestEvent).
func (m *OracleRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OracleRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, oraclerequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, oraclerequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, oraclerequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, oraclerequestevent.FieldModel)
	}
	if m.input_tokens != nil {
		fields = append(fields, oraclerequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, oraclerequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, oraclerequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, oraclerequestevent.FieldSuccess)
	}
	if m.marks_awarded != nil {
		fields = append(fields, oraclerequestevent.FieldMarksAwarded)
	}
	if m.error_message != nil {
		fields = append(fields, oraclerequestevent.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OracleRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case oraclerequestevent.FieldSequence:
		return m.Sequence()
	case oraclerequestevent.FieldTimestamp:
		return m.Timestamp()
	case oraclerequestevent.FieldProvider:
		return m.Provider()
	case oraclerequestevent.FieldModel:
		return m.Model()
	case oraclerequestevent.FieldInputTokens:
		return m.InputTokens()
	case oraclerequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case oraclerequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case oraclerequestevent.FieldSuccess:
		return m.Success()
	case oraclerequestevent.FieldMarksAwarded:
		return m.MarksAwarded()
	case oraclerequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OracleRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case oraclerequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case oraclerequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case oraclerequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case oraclerequestevent.FieldModel:
		return m.OldModel(ctx)
	case oraclerequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case oraclerequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case oraclerequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case oraclerequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case oraclerequestevent.FieldMarksAwarded:
		return m.OldMarksAwarded(ctx)
	case oraclerequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown OracleRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OracleRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case oraclerequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case oraclerequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case oraclerequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case oraclerequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case oraclerequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case oraclerequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case oraclerequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case oraclerequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case oraclerequestevent.FieldMarksAwarded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarksAwarded(v)
		return nil
	case oraclerequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown OracleRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OracleRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, oraclerequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, oraclerequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, oraclerequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, oraclerequestevent.FieldLatencyMs)
	}
	if m.addmarks_awarded != nil {
		fields = append(fields, oraclerequestevent.FieldMarksAwarded)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OracleRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case oraclerequestevent.FieldSequence:
		return m.AddedSequence()
	case oraclerequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case oraclerequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case oraclerequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	case oraclerequestevent.FieldMarksAwarded:
		return m.AddedMarksAwarded()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OracleRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case oraclerequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case oraclerequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case oraclerequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case oraclerequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case oraclerequestevent.FieldMarksAwarded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMarksAwarded(v)
		return nil
	}
	return fmt.Errorf("unknown OracleRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OracleRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OracleRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OracleRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OracleRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OracleRequestEventMutation) ResetField(name string) error {
	switch name {
	case oraclerequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case oraclerequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case oraclerequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case oraclerequestevent.FieldModel:
		m.ResetModel()
		return nil
	case oraclerequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case oraclerequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case oraclerequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case oraclerequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case oraclerequestevent.FieldMarksAwarded:
		m.ResetMarksAwarded()
		return nil
	case oraclerequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown OracleRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OracleRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OracleRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OracleRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OracleRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OracleRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OracleRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OracleRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown OracleRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OracleRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown OracleRequestEvent edge %s", name)
}

// SessionRecordMutation represents an operation that mutates the SessionRecord nodes in the graph.
type SessionRecordMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	user_id              *string
	subject_id           *string
	topic_id             *string
	session_id           *string
	question_order       *[]string
	appendquestion_order []string
	current_index        *int
	addcurrent_index     *int
	user_answer          *string
	show_feedback        *bool
	attempts             *json.RawMessage
	appendattempts       json.RawMessage
	started_at           *time.Time
	last_saved           *time.Time
	aggregated_at        *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*SessionRecord, error)
	predicates           []predicate.SessionRecord
}

var _ ent.Mutation = (*SessionRecordMutation)(nil)

// sessionrecordOption allows management of the mutation configuration using functional options.
type sessionrecordOption func(*SessionRecordMutation)

// newSessionRecordMutation creates new mutation for the SessionRecord entity.
func newSessionRecordMutation(c config, op Op, opts ...sessionrecordOption) *SessionRecordMutation {
	m := &SessionRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionRecordID sets the ID field of the mutation.
func withSessionRecordID(id int) sessionrecordOption {
	return func(m *SessionRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionRecord
		)
		m.oldValue = func(ctx context.Context) (*SessionRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionRecord sets the old SessionRecord of the mutation.
func withSessionRecord(node *SessionRecord) sessionrecordOption {
	return func(m *SessionRecordMutation) {
		m.oldValue = func(context.Context) (*SessionRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SessionRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SessionRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SessionRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *SessionRecordMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *SessionRecordMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *SessionRecordMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *SessionRecordMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *SessionRecordMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *SessionRecordMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionRecordMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionRecordMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionRecordMutation) ResetSessionID() {
	m.session_id = nil
}

// SetQuestionOrder sets the "question_order" field.
func (m *SessionRecordMutation) SetQuestionOrder(s []string) {
	m.question_order = &s
	m.appendquestion_order = nil
}

// QuestionOrder returns the value of the "question_order" field in the mutation.
func (m *SessionRecordMutation) QuestionOrder() (r []string, exists bool) {
	v := m.question_order
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionOrder returns the old "question_order" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldQuestionOrder(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionOrder: %w", err)
	}
	return oldValue.QuestionOrder, nil
}

// AppendQuestionOrder adds s to the "question_order" field.
func (m *SessionRecordMutation) AppendQuestionOrder(s []string) {
	m.appendquestion_order = append(m.appendquestion_order, s...)
}

// AppendedQuestionOrder returns the list of values that were appended to the "question_order" field in this mutation.
func (m *SessionRecordMutation) AppendedQuestionOrder() ([]string, bool) {
	if len(m.appendquestion_order) == 0 {
		return nil, false
	}
	return m.appendquestion_order, true
}

// ResetQuestionOrder resets all changes to the "question_order" field.
func (m *SessionRecordMutation) ResetQuestionOrder() {
	m.question_order = nil
	m.appendquestion_order = nil
}

// SetCurrentIndex sets the "current_index" field.
func (m *SessionRecordMutation) SetCurrentIndex(i int) {
	m.current_index = &i
	m.addcurrent_index = nil
}

// CurrentIndex returns the value of the "current_index" field in the mutation.
func (m *SessionRecordMutation) CurrentIndex() (r int, exists bool) {
	v := m.current_index
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentIndex returns the old "current_index" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldCurrentIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentIndex: %w", err)
	}
	return oldValue.CurrentIndex, nil
}

// AddCurrentIndex adds i to the "current_index" field.
func (m *SessionRecordMutation) AddCurrentIndex(i int) {
	if m.addcurrent_index != nil {
		*m.addcurrent_index += i
	} else {
		m.addcurrent_index = &i
	}
}

// AddedCurrentIndex returns the value that was added to the "current_index" field in this mutation.
func (m *SessionRecordMutation) AddedCurrentIndex() (r int, exists bool) {
	v := m.addcurrent_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentIndex resets all changes to the "current_index" field.
func (m *SessionRecordMutation) ResetCurrentIndex() {
	m.current_index = nil
	m.addcurrent_index = nil
}

// SetUserAnswer sets the "user_answer" field.
func (m *SessionRecordMutation) SetUserAnswer(s string) {
	m.user_answer = &s
}

// UserAnswer returns the value of the "user_answer" field in the mutation.
func (m *SessionRecordMutation) UserAnswer() (r string, exists bool) {
	v := m.user_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAnswer returns the old "user_answer" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldUserAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAnswer: %w", err)
	}
	return oldValue.UserAnswer, nil
}

// ResetUserAnswer resets all changes to the "user_answer" field.
func (m *SessionRecordMutation) ResetUserAnswer() {
	m.user_answer = nil
}

// SetShowFeedback sets the "show_feedback" field.
func (m *SessionRecordMutation) SetShowFeedback(b bool) {
	m.show_feedback = &b
}

// ShowFeedback returns the value of the "show_feedback" field in the mutation.
func (m *SessionRecordMutation) ShowFeedback() (r bool, exists bool) {
	v := m.show_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldShowFeedback returns the old "show_feedback" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldShowFeedback(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShowFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShowFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShowFeedback: %w", err)
	}
	return oldValue.ShowFeedback, nil
}

// ResetShowFeedback resets all changes to the "show_feedback" field.
func (m *SessionRecordMutation) ResetShowFeedback() {
	m.show_feedback = nil
}

// SetAttempts sets the "attempts" field.
func (m *SessionRecordMutation) SetAttempts(jm json.RawMessage) {
	m.attempts = &jm
	m.appendattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *SessionRecordMutation) Attempts() (r json.RawMessage, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldAttempts(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AppendAttempts adds jm to the "attempts" field.
func (m *SessionRecordMutation) AppendAttempts(jm json.RawMessage) {
	m.appendattempts = append(m.appendattempts, jm...)
}

// AppendedAttempts returns the list of values that were appended to the "attempts" field in this mutation.
func (m *SessionRecordMutation) AppendedAttempts() (json.RawMessage, bool) {
	if len(m.appendattempts) == 0 {
		return nil, false
	}
	return m.appendattempts, true
}

// ClearAttempts clears the value of the "attempts" field.
func (m *SessionRecordMutation) ClearAttempts() {
	m.attempts = nil
	m.appendattempts = nil
	m.clearedFields[sessionrecord.FieldAttempts] = struct{}{}
}

// AttemptsCleared returns if the "attempts" field was cleared in this mutation.
func (m *SessionRecordMutation) AttemptsCleared() bool {
	_, ok := m.clearedFields[sessionrecord.FieldAttempts]
	return ok
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *SessionRecordMutation) ResetAttempts() {
	m.attempts = nil
	m.appendattempts = nil
	delete(m.clearedFields, sessionrecord.FieldAttempts)
}

// SetStartedAt sets the "started_at" field.
func (m *SessionRecordMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionRecordMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionRecordMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetLastSaved sets the "last_saved" field.
func (m *SessionRecordMutation) SetLastSaved(t time.Time) {
	m.last_saved = &t
}

// LastSaved returns the value of the "last_saved" field in the mutation.
func (m *SessionRecordMutation) LastSaved() (r time.Time, exists bool) {
	v := m.last_saved
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSaved returns the old "last_saved" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldLastSaved(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSaved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSaved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSaved: %w", err)
	}
	return oldValue.LastSaved, nil
}

// ResetLastSaved resets all changes to the "last_saved" field.
func (m *SessionRecordMutation) ResetLastSaved() {
	m.last_saved = nil
}

// SetAggregatedAt sets the "aggregated_at" field.
func (m *SessionRecordMutation) SetAggregatedAt(t time.Time) {
	m.aggregated_at = &t
}

// AggregatedAt returns the value of the "aggregated_at" field in the mutation.
func (m *SessionRecordMutation) AggregatedAt() (r time.Time, exists bool) {
	v := m.aggregated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAggregatedAt returns the old "aggregated_at" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldAggregatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAggregatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAggregatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAggregatedAt: %w", err)
	}
	return oldValue.AggregatedAt, nil
}

// ClearAggregatedAt clears the value of the "aggregated_at" field.
func (m *SessionRecordMutation) ClearAggregatedAt() {
	m.aggregated_at = nil
	m.clearedFields[sessionrecord.FieldAggregatedAt] = struct{}{}
}

// AggregatedAtCleared returns if the "aggregated_at" field was cleared in this mutation.
func (m *SessionRecordMutation) AggregatedAtCleared() bool {
	_, ok := m.clearedFields[sessionrecord.FieldAggregatedAt]
	return ok
}

// ResetAggregatedAt resets all changes to the "aggregated_at" field.
func (m *SessionRecordMutation) ResetAggregatedAt() {
	m.aggregated_at = nil
	delete(m.clearedFields, sessionrecord.FieldAggregatedAt)
}

// Where appends a list predicates to the SessionRecordMutation builder.
func (m *SessionRecordMutation) Where(ps ...predicate.SessionRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionRecord).
func (m *SessionRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionRecordMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.user_id != nil {
		fields = append(fields, sessionrecord.FieldUserID)
	}
	if m.subject_id != nil {
		fields = append(fields, sessionrecord.FieldSubjectID)
	}
	if m.topic_id != nil {
		fields = append(fields, sessionrecord.FieldTopicID)
	}
	if m.session_id != nil {
		fields = append(fields, sessionrecord.FieldSessionID)
	}
	if m.question_order != nil {
		fields = append(fields, sessionrecord.FieldQuestionOrder)
	}
	if m.current_index != nil {
		fields = append(fields, sessionrecord.FieldCurrentIndex)
	}
	if m.user_answer != nil {
		fields = append(fields, sessionrecord.FieldUserAnswer)
	}
	if m.show_feedback != nil {
		fields = append(fields, sessionrecord.FieldShowFeedback)
	}
	if m.attempts != nil {
		fields = append(fields, sessionrecord.FieldAttempts)
	}
	if m.started_at != nil {
		fields = append(fields, sessionrecord.FieldStartedAt)
	}
	if m.last_saved != nil {
		fields = append(fields, sessionrecord.FieldLastSaved)
	}
	if m.aggregated_at != nil {
		fields = append(fields, sessionrecord.FieldAggregatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionrecord.FieldUserID:
		return m.UserID()
	case sessionrecord.FieldSubjectID:
		return m.SubjectID()
	case sessionrecord.FieldTopicID:
		return m.TopicID()
	case sessionrecord.FieldSessionID:
		return m.SessionID()
	case sessionrecord.FieldQuestionOrder:
		return m.QuestionOrder()
	case sessionrecord.FieldCurrentIndex:
		return m.CurrentIndex()
	case sessionrecord.FieldUserAnswer:
		return m.UserAnswer()
	case sessionrecord.FieldShowFeedback:
		return m.ShowFeedback()
	case sessionrecord.FieldAttempts:
		return m.Attempts()
	case sessionrecord.FieldStartedAt:
		return m.StartedAt()
	case sessionrecord.FieldLastSaved:
		return m.LastSaved()
	case sessionrecord.FieldAggregatedAt:
		return m.AggregatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionrecord.FieldUserID:
		return m.OldUserID(ctx)
	case sessionrecord.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case sessionrecord.FieldTopicID:
		return m.OldTopicID(ctx)
	case sessionrecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionrecord.FieldQuestionOrder:
		return m.OldQuestionOrder(ctx)
	case sessionrecord.FieldCurrentIndex:
		return m.OldCurrentIndex(ctx)
	case sessionrecord.FieldUserAnswer:
		return m.OldUserAnswer(ctx)
	case sessionrecord.FieldShowFeedback:
		return m.OldShowFeedback(ctx)
	case sessionrecord.FieldAttempts:
		return m.OldAttempts(ctx)
	case sessionrecord.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case sessionrecord.FieldLastSaved:
		return m.OldLastSaved(ctx)
	case sessionrecord.FieldAggregatedAt:
		return m.OldAggregatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SessionRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionrecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case sessionrecord.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case sessionrecord.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case sessionrecord.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionrecord.FieldQuestionOrder:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionOrder(v)
		return nil
	case sessionrecord.FieldCurrentIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentIndex(v)
		return nil
	case sessionrecord.FieldUserAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAnswer(v)
		return nil
	case sessionrecord.FieldShowFeedback:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShowFeedback(v)
		return nil
	case sessionrecord.FieldAttempts:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case sessionrecord.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case sessionrecord.FieldLastSaved:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSaved(v)
		return nil
	case sessionrecord.FieldAggregatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAggregatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SessionRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionRecordMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_index != nil {
		fields = append(fields, sessionrecord.FieldCurrentIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionrecord.FieldCurrentIndex:
		return m.AddedCurrentIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionrecord.FieldCurrentIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentIndex(v)
		return nil
	}
	return fmt.Errorf("unknown SessionRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionrecord.FieldAttempts) {
		fields = append(fields, sessionrecord.FieldAttempts)
	}
	if m.FieldCleared(sessionrecord.FieldAggregatedAt) {
		fields = append(fields, sessionrecord.FieldAggregatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionRecordMutation) ClearField(name string) error {
	switch name {
	case sessionrecord.FieldAttempts:
		m.ClearAttempts()
		return nil
	case sessionrecord.FieldAggregatedAt:
		m.ClearAggregatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionRecordMutation) ResetField(name string) error {
	switch name {
	case sessionrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case sessionrecord.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case sessionrecord.FieldTopicID:
		m.ResetTopicID()
		return nil
	case sessionrecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionrecord.FieldQuestionOrder:
		m.ResetQuestionOrder()
		return nil
	case sessionrecord.FieldCurrentIndex:
		m.ResetCurrentIndex()
		return nil
	case sessionrecord.FieldUserAnswer:
		m.ResetUserAnswer()
		return nil
	case sessionrecord.FieldShowFeedback:
		m.ResetShowFeedback()
		return nil
	case sessionrecord.FieldAttempts:
		m.ResetAttempts()
		return nil
	case sessionrecord.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case sessionrecord.FieldLastSaved:
		m.ResetLastSaved()
		return nil
	case sessionrecord.FieldAggregatedAt:
		m.ResetAggregatedAt()
		return nil
	}
	return fmt.Errorf("unknown SessionRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionRecord edge %s", name)
}

// SubjectPerformanceMutation represents an operation that mutates the SubjectPerformance nodes in the graph.
type SubjectPerformanceMutation struct {
	config
	op                          Op
	typ                         string
	id                          *int
	user_id                     *string
	subject_id                  *string
	exam_board                  *string
	total_questions_answered    *int
	addtotal_questions_answered *int
	marks_earned                *int
	addmarks_earned             *int
	marks_available             *int
	addmarks_available          *int
	accuracy_rate               *float64
	addaccuracy_rate            *float64
	study_hours                 *float64
	addstudy_hours              *float64
	last_activity_date          *time.Time
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*SubjectPerformance, error)
	predicates                  []predicate.SubjectPerformance
}

var _ ent.Mutation = (*SubjectPerformanceMutation)(nil)

// subjectperformanceOption allows management of the mutation configuration using functional options.
type subjectperformanceOption func(*SubjectPerformanceMutation)

// newSubjectPerformanceMutation creates new mutation for the SubjectPerformance entity.
func newSubjectPerformanceMutation(c config, op Op, opts ...subjectperformanceOption) *SubjectPerformanceMutation {
	m := &SubjectPerformanceMutation{
		config:        c,
		op:            op,
		typ:           TypeSubjectPerformance,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubjectPerformanceID sets the ID field of the mutation.
func withSubjectPerformanceID(id int) subjectperformanceOption {
	return func(m *SubjectPerformanceMutation) {
		var (
			err   error
			once  sync.Once
			value *SubjectPerformance
		)
		m.oldValue = func(ctx context.Context) (*SubjectPerformance, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubjectPerformance.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubjectPerformance sets the old SubjectPerformance of the mutation.
func withSubjectPerformance(node *SubjectPerformance) subjectperformanceOption {
	return func(m *SubjectPerformanceMutation) {
		m.oldValue = func(context.Context) (*SubjectPerformance, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubjectPerformanceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubjectPerformanceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubjectPerformanceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubjectPerformanceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubjectPerformance.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SubjectPerformanceMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SubjectPerformanceMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SubjectPerformance entity.
// If the SubjectPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectPerformanceMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SubjectPerformanceMutation) ResetUserID() {
	m.user_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *SubjectPerformanceMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *SubjectPerformanceMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the SubjectPerformance entity.
// If the SubjectPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectPerformanceMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *SubjectPerformanceMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetExamBoard sets the "exam_board" field.
func (m *SubjectPerformanceMutation) SetExamBoard(s string) {
	m.exam_board = &s
}

// ExamBoard returns the value of the "exam_board" field in the mutation.
func (m *SubjectPerformanceMutation) ExamBoard() (r string, exists bool) {
	v := m.exam_board
	if v == nil {
		return
	}
	return *v, true
}

// OldExamBoard returns the old "exam_board" field's value of the SubjectPerformance entity.
// If the SubjectPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectPerformanceMutation) OldExamBoard(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExamBoard is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExamBoard requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExamBoard: %w", err)
	}
	return oldValue.ExamBoard, nil
}

// ResetExamBoard resets all changes to the "exam_board" field.
func (m *SubjectPerformanceMutation) ResetExamBoard() {
	m.exam_board = nil
}

// SetTotalQuestionsAnswered sets the "total_questions_answered" field.
func (m *SubjectPerformanceMutation) SetTotalQuestionsAnswered(i int) {
	m.total_questions_answered = &i
	m.addtotal_questions_answered = nil
}

// TotalQuestionsAnswered returns the value of the "total_questions_answered" field in the mutation.
func (m *SubjectPerformanceMutation) TotalQuestionsAnswered() (r int, exists bool) {
	v := m.total_questions_answered
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalQuestionsAnswered returns the old "total_questions_answered" field's value of the SubjectPerformance entity.
// If the SubjectPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectPerformanceMutation) OldTotalQuestionsAnswered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalQuestionsAnswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalQuestionsAnswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalQuestionsAnswered: %w", err)
	}
	return oldValue.TotalQuestionsAnswered, nil
}

// AddTotalQuestionsAnswered adds i to the "total_questions_answered" field.
func (m *SubjectPerformanceMutation) AddTotalQuestionsAnswered(i int) {
	if m.addtotal_questions_answered != nil {
		*m.addtotal_questions_answered += i
	} else {
		m.addtotal_questions_answered = &i
	}
}

// AddedTotalQuestionsAnswered returns the value that was added to the "total_questions_answered" field in this mutation.
func (m *SubjectPerformanceMutation) AddedTotalQuestionsAnswered() (r int, exists bool) {
	v := m.addtotal_questions_answered
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalQuestionsAnswered resets all changes to the "total_questions_answered" field.
func (m *SubjectPerformanceMutation) ResetTotalQuestionsAnswered() {
	m.total_questions_answered = nil
	m.addtotal_questions_answered = nil
}

// SetMarksEarned sets the "marks_earned" field.
func (m *SubjectPerformanceMutation) SetMarksEarned(i int) {
	m.marks_earned = &i
	m.addmarks_earned = nil
}

// MarksEarned returns the value of the "marks_earned" field in the mutation.
func (m *SubjectPerformanceMutation) MarksEarned() (r int, exists bool) {
	v := m.marks_earned
	if v == nil {
		return
	}
	return *v, true
}

// OldMarksEarned returns the old "marks_earned" field's value of the SubjectPerformance entity.
// If the SubjectPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectPerformanceMutation) OldMarksEarned(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarksEarned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarksEarned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarksEarned: %w", err)
	}
	return oldValue.MarksEarned, nil
}

// AddMarksEarned adds i to the "marks_earned" field.
func (m *SubjectPerformanceMutation) AddMarksEarned(i int) {
	if m.addmarks_earned != nil {
		*m.addmarks_earned += i
	} else {
		m.addmarks_earned = &i
	}
}

// AddedMarksEarned returns the value that was added to the "marks_earned" field in this mutation.
func (m *SubjectPerformanceMutation) AddedMarksEarned() (r int, exists bool) {
	v := m.addmarks_earned
	if v == nil {
		return
	}
	return *v, true
}

// ResetMarksEarned resets all changes to the "marks_earned" field.
func (m *SubjectPerformanceMutation) ResetMarksEarned() {
	m.marks_earned = nil
	m.addmarks_earned = nil
}

// SetMarksAvailable sets the "marks_available" field.
func (m *SubjectPerformanceMutation) SetMarksAvailable(i int) {
	m.marks_available = &i
	m.addmarks_available = nil
}

// MarksAvailable returns the value of the "marks_available" field in the mutation.
func (m *SubjectPerformanceMutation) MarksAvailable() (r int, exists bool) {
	v := m.marks_available
	if v == nil {
		return
	}
	return *v, true
}

// OldMarksAvailable returns the old "marks_available" field's value of the SubjectPerformance entity.
// If the SubjectPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectPerformanceMutation) OldMarksAvailable(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarksAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarksAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarksAvailable: %w", err)
	}
	return oldValue.MarksAvailable, nil
}

// AddMarksAvailable adds i to the "marks_available" field.
func (m *SubjectPerformanceMutation) AddMarksAvailable(i int) {
	if m.addmarks_available != nil {
		*m.addmarks_available += i
	} else {
		m.addmarks_available = &i
	}
}

// AddedMarksAvailable returns the value that was added to the "marks_available" field in this mutation.
func (m *SubjectPerformanceMutation) AddedMarksAvailable() (r int, exists bool) {
	v := m.addmarks_available
	if v == nil {
		return
	}
	return *v, true
}

// ResetMarksAvailable resets all changes to the "marks_available" field.
func (m *SubjectPerformanceMutation) ResetMarksAvailable() {
	m.marks_available = nil
	m.addmarks_available = nil
}

// SetAccuracyRate sets the "accuracy_rate" field.
func (m *SubjectPerformanceMutation) SetAccuracyRate(f float64) {
	m.accuracy_rate = &f
	m.addaccuracy_rate = nil
}

// AccuracyRate returns the value of the "accuracy_rate" field in the mutation.
func (m *SubjectPerformanceMutation) AccuracyRate() (r float64, exists bool) {
	v := m.accuracy_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldAccuracyRate returns the old "accuracy_rate" field's value of the SubjectPerformance entity.
// If the SubjectPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectPerformanceMutation) OldAccuracyRate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccuracyRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccuracyRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccuracyRate: %w", err)
	}
	return oldValue.AccuracyRate, nil
}

// AddAccuracyRate adds f to the "accuracy_rate" field.
func (m *SubjectPerformanceMutation) AddAccuracyRate(f float64) {
	if m.addaccuracy_rate != nil {
		*m.addaccuracy_rate += f
	} else {
		m.addaccuracy_rate = &f
	}
}

// AddedAccuracyRate returns the value that was added to the "accuracy_rate" field in this mutation.
func (m *SubjectPerformanceMutation) AddedAccuracyRate() (r float64, exists bool) {
	v := m.addaccuracy_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetAccuracyRate resets all changes to the "accuracy_rate" field.
func (m *SubjectPerformanceMutation) ResetAccuracyRate() {
	m.accuracy_rate = nil
	m.addaccuracy_rate = nil
}

// SetStudyHours sets the "study_hours" field.
func (m *SubjectPerformanceMutation) SetStudyHours(f float64) {
	m.study_hours = &f
	m.addstudy_hours = nil
}

// StudyHours returns the value of the "study_hours" field in the mutation.
func (m *SubjectPerformanceMutation) StudyHours() (r float64, exists bool) {
	v := m.study_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyHours returns the old "study_hours" field's value of the SubjectPerformance entity.
// If the SubjectPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectPerformanceMutation) OldStudyHours(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyHours: %w", err)
	}
	return oldValue.StudyHours, nil
}

// AddStudyHours adds f to the "study_hours" field.
func (m *SubjectPerformanceMutation) AddStudyHours(f float64) {
	if m.addstudy_hours != nil {
		*m.addstudy_hours += f
	} else {
		m.addstudy_hours = &f
	}
}

// AddedStudyHours returns the value that was added to the "study_hours" field in this mutation.
func (m *SubjectPerformanceMutation) AddedStudyHours() (r float64, exists bool) {
	v := m.addstudy_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudyHours resets all changes to the "study_hours" field.
func (m *SubjectPerformanceMutation) ResetStudyHours() {
	m.study_hours = nil
	m.addstudy_hours = nil
}

// SetLastActivityDate sets the "last_activity_date" field.
func (m *SubjectPerformanceMutation) SetLastActivityDate(t time.Time) {
	m.last_activity_date = &t
}

// LastActivityDate returns the value of the "last_activity_date" field in the mutation.
func (m *SubjectPerformanceMutation) LastActivityDate() (r time.Time, exists bool) {
	v := m.last_activity_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActivityDate returns the old "last_activity_date" field's value of the SubjectPerformance entity.
// If the SubjectPerformance object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubjectPerformanceMutation) OldLastActivityDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActivityDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActivityDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActivityDate: %w", err)
	}
	return oldValue.LastActivityDate, nil
}

// ResetLastActivityDate resets all changes to the "last_activity_date" field.
func (m *SubjectPerformanceMutation) ResetLastActivityDate() {
	m.last_activity_date = nil
}

// Where appends a list predicates to the SubjectPerformanceMutation builder.
func (m *SubjectPerformanceMutation) Where(ps ...predicate.SubjectPerformance) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubjectPerformanceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubjectPerformanceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubjectPerformance, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubjectPerformanceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubjectPerformanceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubjectPerformance).
func (m *SubjectPerformanceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubjectPerformanceMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, subjectperformance.FieldUserID)
	}
	if m.subject_id != nil {
		fields = append(fields, subjectperformance.FieldSubjectID)
	}
	if m.exam_board != nil {
		fields = append(fields, subjectperformance.FieldExamBoard)
	}
	if m.total_questions_answered != nil {
		fields = append(fields, subjectperformance.FieldTotalQuestionsAnswered)
	}
	if m.marks_earned != nil {
		fields = append(fields, subjectperformance.FieldMarksEarned)
	}
	if m.marks_available != nil {
		fields = append(fields, subjectperformance.FieldMarksAvailable)
	}
	if m.accuracy_rate != nil {
		fields = append(fields, subjectperformance.FieldAccuracyRate)
	}
	if m.study_hours != nil {
		fields = append(fields, subjectperformance.FieldStudyHours)
	}
	if m.last_activity_date != nil {
		fields = append(fields, subjectperformance.FieldLastActivityDate)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubjectPerformanceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subjectperformance.FieldUserID:
		return m.UserID()
	case subjectperformance.FieldSubjectID:
		return m.SubjectID()
	case subjectperformance.FieldExamBoard:
		return m.ExamBoard()
	case subjectperformance.FieldTotalQuestionsAnswered:
		return m.TotalQuestionsAnswered()
	case subjectperformance.FieldMarksEarned:
		return m.MarksEarned()
	case subjectperformance.FieldMarksAvailable:
		return m.MarksAvailable()
	case subjectperformance.FieldAccuracyRate:
		return m.AccuracyRate()
	case subjectperformance.FieldStudyHours:
		return m.StudyHours()
	case subjectperformance.FieldLastActivityDate:
		return m.LastActivityDate()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubjectPerformanceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subjectperformance.FieldUserID:
		return m.OldUserID(ctx)
	case subjectperformance.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case subjectperformance.FieldExamBoard:
		return m.OldExamBoard(ctx)
	case subjectperformance.FieldTotalQuestionsAnswered:
		return m.OldTotalQuestionsAnswered(ctx)
	case subjectperformance.FieldMarksEarned:
		return m.OldMarksEarned(ctx)
	case subjectperformance.FieldMarksAvailable:
		return m.OldMarksAvailable(ctx)
	case subjectperformance.FieldAccuracyRate:
		return m.OldAccuracyRate(ctx)
	case subjectperformance.FieldStudyHours:
		return m.OldStudyHours(ctx)
	case subjectperformance.FieldLastActivityDate:
		return m.OldLastActivityDate(ctx)
	}
	return nil, fmt.Errorf("unknown SubjectPerformance field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectPerformanceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subjectperformance.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case subjectperformance.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case subjectperformance.FieldExamBoard:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExamBoard(v)
		return nil
	case subjectperformance.FieldTotalQuestionsAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalQuestionsAnswered(v)
		return nil
	case subjectperformance.FieldMarksEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarksEarned(v)
		return nil
	case subjectperformance.FieldMarksAvailable:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarksAvailable(v)
		return nil
	case subjectperformance.FieldAccuracyRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccuracyRate(v)
		return nil
	case subjectperformance.FieldStudyHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyHours(v)
		return nil
	case subjectperformance.FieldLastActivityDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActivityDate(v)
		return nil
	}
	return fmt.Errorf("unknown SubjectPerformance field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubjectPerformanceMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_questions_answered != nil {
		fields = append(fields, subjectperformance.FieldTotalQuestionsAnswered)
	}
	if m.addmarks_earned != nil {
		fields = append(fields, subjectperformance.FieldMarksEarned)
	}
	if m.addmarks_available != nil {
		fields = append(fields, subjectperformance.FieldMarksAvailable)
	}
	if m.addaccuracy_rate != nil {
		fields = append(fields, subjectperformance.FieldAccuracyRate)
	}
	if m.addstudy_hours != nil {
		fields = append(fields, subjectperformance.FieldStudyHours)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubjectPerformanceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subjectperformance.FieldTotalQuestionsAnswered:
		return m.AddedTotalQuestionsAnswered()
	case subjectperformance.FieldMarksEarned:
		return m.AddedMarksEarned()
	case subjectperformance.FieldMarksAvailable:
		return m.AddedMarksAvailable()
	case subjectperformance.FieldAccuracyRate:
		return m.AddedAccuracyRate()
	case subjectperformance.FieldStudyHours:
		return m.AddedStudyHours()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubjectPerformanceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subjectperformance.FieldTotalQuestionsAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalQuestionsAnswered(v)
		return nil
	case subjectperformance.FieldMarksEarned:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMarksEarned(v)
		return nil
	case subjectperformance.FieldMarksAvailable:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMarksAvailable(v)
		return nil
	case subjectperformance.FieldAccuracyRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAccuracyRate(v)
		return nil
	case subjectperformance.FieldStudyHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudyHours(v)
		return nil
	}
	return fmt.Errorf("unknown SubjectPerformance numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubjectPerformanceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubjectPerformanceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubjectPerformanceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SubjectPerformance nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubjectPerformanceMutation) ResetField(name string) error {
	switch name {
	case subjectperformance.FieldUserID:
		m.ResetUserID()
		return nil
	case subjectperformance.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case subjectperformance.FieldExamBoard:
		m.ResetExamBoard()
		return nil
	case subjectperformance.FieldTotalQuestionsAnswered:
		m.ResetTotalQuestionsAnswered()
		return nil
	case subjectperformance.FieldMarksEarned:
		m.ResetMarksEarned()
		return nil
	case subjectperformance.FieldMarksAvailable:
		m.ResetMarksAvailable()
		return nil
	case subjectperformance.FieldAccuracyRate:
		m.ResetAccuracyRate()
		return nil
	case subjectperformance.FieldStudyHours:
		m.ResetStudyHours()
		return nil
	case subjectperformance.FieldLastActivityDate:
		m.ResetLastActivityDate()
		return nil
	}
	return fmt.Errorf("unknown SubjectPerformance field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubjectPerformanceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubjectPerformanceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubjectPerformanceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubjectPerformanceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubjectPerformanceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubjectPerformanceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubjectPerformanceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SubjectPerformance unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubjectPerformanceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SubjectPerformance edge %s", name)
}

// TopicProgressMutation represents an operation that mutates the TopicProgress nodes in the graph.
type TopicProgressMutation struct {
	config
	op               Op
	typ              string
	id               *int
	user_id          *string
	subject_id       *string
	topic_id         *string
	attempts         *int
	addattempts      *int
	average_score    *int
	addaverage_score *int
	last_attempt_at  *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*TopicProgress, error)
	predicates       []predicate.TopicProgress
}

var _ ent.Mutation = (*TopicProgressMutation)(nil)

// topicprogressOption allows management of the mutation configuration using functional options.
type topicprogressOption func(*TopicProgressMutation)

// newTopicProgressMutation creates new mutation for the TopicProgress entity.
func newTopicProgressMutation(c config, op Op, opts ...topicprogressOption) *TopicProgressMutation {
	m := &TopicProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicProgressID sets the ID field of the mutation.
func withTopicProgressID(id int) topicprogressOption {
	return func(m *TopicProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicProgress
		)
		m.oldValue = func(ctx context.Context) (*TopicProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicProgress sets the old TopicProgress of the mutation.
func withTopicProgress(node *TopicProgress) topicprogressOption {
	return func(m *TopicProgressMutation) {
		m.oldValue = func(context.Context) (*TopicProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TopicProgressMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TopicProgressMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TopicProgressMutation) ResetUserID() {
	m.user_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *TopicProgressMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *TopicProgressMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *TopicProgressMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *TopicProgressMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *TopicProgressMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *TopicProgressMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetAttempts sets the "attempts" field.
func (m *TopicProgressMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *TopicProgressMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *TopicProgressMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *TopicProgressMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *TopicProgressMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetAverageScore sets the "average_score" field.
func (m *TopicProgressMutation) SetAverageScore(i int) {
	m.average_score = &i
	m.addaverage_score = nil
}

// AverageScore returns the value of the "average_score" field in the mutation.
func (m *TopicProgressMutation) AverageScore() (r int, exists bool) {
	v := m.average_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageScore returns the old "average_score" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldAverageScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageScore: %w", err)
	}
	return oldValue.AverageScore, nil
}

// AddAverageScore adds i to the "average_score" field.
func (m *TopicProgressMutation) AddAverageScore(i int) {
	if m.addaverage_score != nil {
		*m.addaverage_score += i
	} else {
		m.addaverage_score = &i
	}
}

// AddedAverageScore returns the value that was added to the "average_score" field in this mutation.
func (m *TopicProgressMutation) AddedAverageScore() (r int, exists bool) {
	v := m.addaverage_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageScore resets all changes to the "average_score" field.
func (m *TopicProgressMutation) ResetAverageScore() {
	m.average_score = nil
	m.addaverage_score = nil
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (m *TopicProgressMutation) SetLastAttemptAt(t time.Time) {
	m.last_attempt_at = &t
}

// LastAttemptAt returns the value of the "last_attempt_at" field in the mutation.
func (m *TopicProgressMutation) LastAttemptAt() (r time.Time, exists bool) {
	v := m.last_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastAttemptAt returns the old "last_attempt_at" field's value of the TopicProgress entity.
// If the TopicProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProgressMutation) OldLastAttemptAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastAttemptAt: %w", err)
	}
	return oldValue.LastAttemptAt, nil
}

// ResetLastAttemptAt resets all changes to the "last_attempt_at" field.
func (m *TopicProgressMutation) ResetLastAttemptAt() {
	m.last_attempt_at = nil
}

// Where appends a list predicates to the TopicProgressMutation builder.
func (m *TopicProgressMutation) Where(ps ...predicate.TopicProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicProgress).
func (m *TopicProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicProgressMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, topicprogress.FieldUserID)
	}
	if m.subject_id != nil {
		fields = append(fields, topicprogress.FieldSubjectID)
	}
	if m.topic_id != nil {
		fields = append(fields, topicprogress.FieldTopicID)
	}
	if m.attempts != nil {
		fields = append(fields, topicprogress.FieldAttempts)
	}
	if m.average_score != nil {
		fields = append(fields, topicprogress.FieldAverageScore)
	}
	if m.last_attempt_at != nil {
		fields = append(fields, topicprogress.FieldLastAttemptAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topicprogress.FieldUserID:
		return m.UserID()
	case topicprogress.FieldSubjectID:
		return m.SubjectID()
	case topicprogress.FieldTopicID:
		return m.TopicID()
	case topicprogress.FieldAttempts:
		return m.Attempts()
	case topicprogress.FieldAverageScore:
		return m.AverageScore()
	case topicprogress.FieldLastAttemptAt:
		return m.LastAttemptAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topicprogress.FieldUserID:
		return m.OldUserID(ctx)
	case topicprogress.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case topicprogress.FieldTopicID:
		return m.OldTopicID(ctx)
	case topicprogress.FieldAttempts:
		return m.OldAttempts(ctx)
	case topicprogress.FieldAverageScore:
		return m.OldAverageScore(ctx)
	case topicprogress.FieldLastAttemptAt:
		return m.OldLastAttemptAt(ctx)
	}
	return nil, fmt.Errorf("unknown TopicProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topicprogress.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case topicprogress.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case topicprogress.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case topicprogress.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case topicprogress.FieldAverageScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageScore(v)
		return nil
	case topicprogress.FieldLastAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastAttemptAt(v)
		return nil
	}
	return fmt.Errorf("unknown TopicProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicProgressMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, topicprogress.FieldAttempts)
	}
	if m.addaverage_score != nil {
		fields = append(fields, topicprogress.FieldAverageScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topicprogress.FieldAttempts:
		return m.AddedAttempts()
	case topicprogress.FieldAverageScore:
		return m.AddedAverageScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topicprogress.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case topicprogress.FieldAverageScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageScore(v)
		return nil
	}
	return fmt.Errorf("unknown TopicProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicProgressMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicProgressMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TopicProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicProgressMutation) ResetField(name string) error {
	switch name {
	case topicprogress.FieldUserID:
		m.ResetUserID()
		return nil
	case topicprogress.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case topicprogress.FieldTopicID:
		m.ResetTopicID()
		return nil
	case topicprogress.FieldAttempts:
		m.ResetAttempts()
		return nil
	case topicprogress.FieldAverageScore:
		m.ResetAverageScore()
		return nil
	case topicprogress.FieldLastAttemptAt:
		m.ResetLastAttemptAt()
		return nil
	}
	return fmt.Errorf("unknown TopicProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TopicProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TopicProgress edge %s", name)
}

// WeakTopicMutation represents an operation that mutates the WeakTopic nodes in the graph.
type WeakTopicMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	subject_id    *string
	topic_id      *string
	entered_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WeakTopic, error)
	predicates    []predicate.WeakTopic
}

var _ ent.Mutation = (*WeakTopicMutation)(nil)

// weaktopicOption allows management of the mutation configuration using functional options.
type weaktopicOption func(*WeakTopicMutation)

// newWeakTopicMutation creates new mutation for the WeakTopic entity.
func newWeakTopicMutation(c config, op Op, opts ...weaktopicOption) *WeakTopicMutation {
	m := &WeakTopicMutation{
		config:        c,
		op:            op,
		typ:           TypeWeakTopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWeakTopicID sets the ID field of the mutation.
func withWeakTopicID(id int) weaktopicOption {
	return func(m *WeakTopicMutation) {
		var (
			err   error
			once  sync.Once
			value *WeakTopic
		)
		m.oldValue = func(ctx context.Context) (*WeakTopic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WeakTopic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWeakTopic sets the old WeakTopic of the mutation.
func withWeakTopic(node *WeakTopic) weaktopicOption {
	return func(m *WeakTopicMutation) {
		m.oldValue = func(context.Context) (*WeakTopic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WeakTopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WeakTopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WeakTopicMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WeakTopicMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WeakTopic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *WeakTopicMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *WeakTopicMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the WeakTopic entity.
// If the WeakTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeakTopicMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *WeakTopicMutation) ResetUserID() {
	m.user_id = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *WeakTopicMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *WeakTopicMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the WeakTopic entity.
// If the WeakTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeakTopicMutation) OldSubjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *WeakTopicMutation) ResetSubjectID() {
	m.subject_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *WeakTopicMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *WeakTopicMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the WeakTopic entity.
// If the WeakTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeakTopicMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *WeakTopicMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetEnteredAt sets the "entered_at" field.
func (m *WeakTopicMutation) SetEnteredAt(t time.Time) {
	m.entered_at = &t
}

// EnteredAt returns the value of the "entered_at" field in the mutation.
func (m *WeakTopicMutation) EnteredAt() (r time.Time, exists bool) {
	v := m.entered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEnteredAt returns the old "entered_at" field's value of the WeakTopic entity.
// If the WeakTopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WeakTopicMutation) OldEnteredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnteredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnteredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnteredAt: %w", err)
	}
	return oldValue.EnteredAt, nil
}

// ResetEnteredAt resets all changes to the "entered_at" field.
func (m *WeakTopicMutation) ResetEnteredAt() {
	m.entered_at = nil
}

// Where appends a list predicates to the WeakTopicMutation builder.
func (m *WeakTopicMutation) Where(ps ...predicate.WeakTopic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WeakTopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WeakTopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WeakTopic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WeakTopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WeakTopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WeakTopic).
func (m *WeakTopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WeakTopicMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, weaktopic.FieldUserID)
	}
	if m.subject_id != nil {
		fields = append(fields, weaktopic.FieldSubjectID)
	}
	if m.topic_id != nil {
		fields = append(fields, weaktopic.FieldTopicID)
	}
	if m.entered_at != nil {
		fields = append(fields, weaktopic.FieldEnteredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WeakTopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case weaktopic.FieldUserID:
		return m.UserID()
	case weaktopic.FieldSubjectID:
		return m.SubjectID()
	case weaktopic.FieldTopicID:
		return m.TopicID()
	case weaktopic.FieldEnteredAt:
		return m.EnteredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WeakTopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case weaktopic.FieldUserID:
		return m.OldUserID(ctx)
	case weaktopic.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case weaktopic.FieldTopicID:
		return m.OldTopicID(ctx)
	case weaktopic.FieldEnteredAt:
		return m.OldEnteredAt(ctx)
	}
	return nil, fmt.Errorf("unknown WeakTopic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WeakTopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case weaktopic.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case weaktopic.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case weaktopic.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case weaktopic.FieldEnteredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnteredAt(v)
		return nil
	}
	return fmt.Errorf("unknown WeakTopic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WeakTopicMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WeakTopicMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WeakTopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown WeakTopic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WeakTopicMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WeakTopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WeakTopicMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WeakTopic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WeakTopicMutation) ResetField(name string) error {
	switch name {
	case weaktopic.FieldUserID:
		m.ResetUserID()
		return nil
	case weaktopic.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case weaktopic.FieldTopicID:
		m.ResetTopicID()
		return nil
	case weaktopic.FieldEnteredAt:
		m.ResetEnteredAt()
		return nil
	}
	return fmt.Errorf("unknown WeakTopic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WeakTopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WeakTopicMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WeakTopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WeakTopicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WeakTopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WeakTopicMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WeakTopicMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WeakTopic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WeakTopicMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WeakTopic edge %s", name)
}
