package store

import (
	"context"
	"fmt"

	"github.com/revisely/revisely/ent"
)

// eventRepo appends domain events, assigning each a global sequence
// number from the shared counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendOracleRequest(ctx context.Context, data OracleRequestEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	err = r.client.OracleRequestEvent.Create().
		SetSequence(seq).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetMarksAwarded(data.MarksAwarded).
		SetErrorMessage(data.ErrorMessage).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("append oracle request event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	err = r.client.AttemptEvent.Create().
		SetSequence(seq).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetSubjectID(data.SubjectID).
		SetTopicID(data.TopicID).
		SetQuestionID(data.QuestionID).
		SetUserAnswer(data.UserAnswer).
		SetMarksAwarded(data.MarksAwarded).
		SetMarksAvailable(data.MarksAvailable).
		SetAssessment(data.Assessment).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("append attempt event: %w", err)
	}
	return nil
}
