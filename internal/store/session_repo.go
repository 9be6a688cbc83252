package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/revisely/revisely/ent"
	"github.com/revisely/revisely/ent/sessionrecord"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Save(ctx context.Context, doc *SessionDocument) error {
	attempts, err := json.Marshal(doc.Attempts)
	if err != nil {
		return fmt.Errorf("marshal attempts: %w", err)
	}

	builder := r.client.SessionRecord.Create().
		SetUserID(doc.Key.UserID).
		SetSubjectID(doc.Key.SubjectID).
		SetTopicID(doc.Key.TopicID).
		SetSessionID(doc.SessionID).
		SetQuestionOrder(doc.QuestionIDs).
		SetCurrentIndex(doc.CurrentIndex).
		SetUserAnswer(doc.UserAnswer).
		SetShowFeedback(doc.ShowFeedback).
		SetAttempts(json.RawMessage(attempts)).
		SetStartedAt(doc.StartedAt).
		SetLastSaved(doc.LastSaved)

	if doc.AggregatedAt != nil {
		builder = builder.SetAggregatedAt(*doc.AggregatedAt)
	}

	upsert := builder.
		OnConflictColumns(
			sessionrecord.FieldUserID,
			sessionrecord.FieldSubjectID,
			sessionrecord.FieldTopicID,
		).
		UpdateNewValues()
	if doc.AggregatedAt == nil {
		// A fresh session replacing a completed record must not
		// inherit the old aggregated marker, or the next load would
		// treat it as already finished.
		upsert = upsert.ClearAggregatedAt()
	}

	if err := upsert.Exec(ctx); err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}

func (r *sessionRepo) Load(ctx context.Context, key SessionKey) (*SessionDocument, error) {
	rec, err := r.client.SessionRecord.Query().
		Where(
			sessionrecord.UserID(key.UserID),
			sessionrecord.SubjectID(key.SubjectID),
			sessionrecord.TopicID(key.TopicID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session record: %w", err)
	}

	attempts, ok := decodeAttempts(rec.Attempts)
	if !ok {
		// Unparseable state fails closed: the caller starts fresh.
		return nil, nil
	}

	return &SessionDocument{
		Key:          key,
		SessionID:    rec.SessionID,
		QuestionIDs:  rec.QuestionOrder,
		CurrentIndex: rec.CurrentIndex,
		UserAnswer:   rec.UserAnswer,
		ShowFeedback: rec.ShowFeedback,
		Attempts:     attempts,
		StartedAt:    rec.StartedAt,
		LastSaved:    rec.LastSaved,
		AggregatedAt: rec.AggregatedAt,
	}, nil
}

func (r *sessionRepo) MarkAggregated(ctx context.Context, key SessionKey, at time.Time) error {
	_, err := r.client.SessionRecord.Update().
		Where(
			sessionrecord.UserID(key.UserID),
			sessionrecord.SubjectID(key.SubjectID),
			sessionrecord.TopicID(key.TopicID),
		).
		SetAggregatedAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark session aggregated: %w", err)
	}
	return nil
}

func (r *sessionRepo) Clear(ctx context.Context, key SessionKey, sessionID string) error {
	_, err := r.client.SessionRecord.Delete().
		Where(
			sessionrecord.UserID(key.UserID),
			sessionrecord.SubjectID(key.SubjectID),
			sessionrecord.TopicID(key.TopicID),
			sessionrecord.SessionID(sessionID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear session record: %w", err)
	}
	return nil
}

// decodeAttempts normalizes the persisted attempts field. The expected
// shape is a JSON array, but older writers stored a JSON-encoded string
// containing the array. Anything else is unparseable.
func decodeAttempts(raw json.RawMessage) ([]AttemptDoc, bool) {
	if len(raw) == 0 {
		return nil, true
	}

	var attempts []AttemptDoc
	if err := json.Unmarshal(raw, &attempts); err == nil {
		return attempts, true
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, false
	}
	if err := json.Unmarshal([]byte(encoded), &attempts); err != nil {
		return nil, false
	}
	return attempts, true
}
