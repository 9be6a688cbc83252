package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/revisely/revisely/ent"
	"github.com/revisely/revisely/ent/masteryrecord"
	"github.com/revisely/revisely/ent/sessionrecord"
	"github.com/revisely/revisely/ent/subjectperformance"
	"github.com/revisely/revisely/ent/topicprogress"
	"github.com/revisely/revisely/ent/weaktopic"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) TopicProgress(ctx context.Context, userID, topicID string) (*TopicProgressData, error) {
	tp, err := r.client.TopicProgress.Query().
		Where(
			topicprogress.UserID(userID),
			topicprogress.TopicID(topicID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query topic progress: %w", err)
	}
	return topicProgressData(tp), nil
}

func (r *progressRepo) UpsertTopicProgress(ctx context.Context, data *TopicProgressData) error {
	err := r.client.TopicProgress.Create().
		SetUserID(data.UserID).
		SetSubjectID(data.SubjectID).
		SetTopicID(data.TopicID).
		SetAttempts(data.Attempts).
		SetAverageScore(data.AverageScore).
		SetLastAttemptAt(data.LastAttemptAt).
		OnConflictColumns(
			topicprogress.FieldUserID,
			topicprogress.FieldTopicID,
		).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert topic progress: %w", err)
	}
	return nil
}

func (r *progressRepo) TopicProgressBySubject(ctx context.Context, userID, subjectID string) ([]*TopicProgressData, error) {
	rows, err := r.client.TopicProgress.Query().
		Where(
			topicprogress.UserID(userID),
			topicprogress.SubjectID(subjectID),
		).
		Order(ent.Desc(topicprogress.FieldLastAttemptAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topic progress by subject: %w", err)
	}

	out := make([]*TopicProgressData, len(rows))
	for i, tp := range rows {
		out[i] = topicProgressData(tp)
	}
	return out, nil
}

func (r *progressRepo) SetWeakTopic(ctx context.Context, userID, subjectID, topicID string, weak bool) error {
	if !weak {
		_, err := r.client.WeakTopic.Delete().
			Where(
				weaktopic.UserID(userID),
				weaktopic.TopicID(topicID),
			).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("remove weak topic: %w", err)
		}
		return nil
	}

	err := r.client.WeakTopic.Create().
		SetUserID(userID).
		SetSubjectID(subjectID).
		SetTopicID(topicID).
		OnConflictColumns(
			weaktopic.FieldUserID,
			weaktopic.FieldTopicID,
		).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert weak topic: %w", err)
	}
	return nil
}

func (r *progressRepo) WeakTopics(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.client.WeakTopic.Query().
		Where(weaktopic.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query weak topics: %w", err)
	}

	ids := make([]string, len(rows))
	for i, wt := range rows {
		ids[i] = wt.TopicID
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *progressRepo) SubjectPerformance(ctx context.Context, userID, subjectID, examBoard string) (*SubjectPerformanceData, error) {
	sp, err := r.client.SubjectPerformance.Query().
		Where(
			subjectperformance.UserID(userID),
			subjectperformance.SubjectID(subjectID),
			subjectperformance.ExamBoard(examBoard),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query subject performance: %w", err)
	}

	return &SubjectPerformanceData{
		UserID:                 sp.UserID,
		SubjectID:              sp.SubjectID,
		ExamBoard:              sp.ExamBoard,
		TotalQuestionsAnswered: sp.TotalQuestionsAnswered,
		MarksEarned:            sp.MarksEarned,
		MarksAvailable:         sp.MarksAvailable,
		AccuracyRate:           sp.AccuracyRate,
		StudyHours:             sp.StudyHours,
		LastActivityDate:       sp.LastActivityDate,
	}, nil
}

func (r *progressRepo) UpsertSubjectPerformance(ctx context.Context, data *SubjectPerformanceData) error {
	err := r.client.SubjectPerformance.Create().
		SetUserID(data.UserID).
		SetSubjectID(data.SubjectID).
		SetExamBoard(data.ExamBoard).
		SetTotalQuestionsAnswered(data.TotalQuestionsAnswered).
		SetMarksEarned(data.MarksEarned).
		SetMarksAvailable(data.MarksAvailable).
		SetAccuracyRate(data.AccuracyRate).
		SetStudyHours(data.StudyHours).
		SetLastActivityDate(data.LastActivityDate).
		OnConflictColumns(
			subjectperformance.FieldUserID,
			subjectperformance.FieldSubjectID,
			subjectperformance.FieldExamBoard,
		).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert subject performance: %w", err)
	}
	return nil
}

func (r *progressRepo) UpsertMasteryRecord(ctx context.Context, data MasteryRecordData) error {
	err := r.client.MasteryRecord.Create().
		SetUserID(data.UserID).
		SetSubjectID(data.SubjectID).
		SetTopicID(data.TopicID).
		SetDay(data.Day).
		SetScore(data.Score).
		OnConflictColumns(
			masteryrecord.FieldUserID,
			masteryrecord.FieldSubjectID,
			masteryrecord.FieldTopicID,
			masteryrecord.FieldDay,
		).
		UpdateScore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert mastery record: %w", err)
	}
	return nil
}

func (r *progressRepo) MasteryRecords(ctx context.Context, userID, subjectID string) ([]MasteryRecordData, error) {
	rows, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.UserID(userID),
			masteryrecord.SubjectID(subjectID),
		).
		Order(ent.Asc(masteryrecord.FieldDay)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery records: %w", err)
	}

	out := make([]MasteryRecordData, len(rows))
	for i, mr := range rows {
		out[i] = MasteryRecordData{
			UserID:    mr.UserID,
			SubjectID: mr.SubjectID,
			TopicID:   mr.TopicID,
			Day:       mr.Day,
			Score:     mr.Score,
		}
	}
	return out, nil
}

func (r *progressRepo) Reset(ctx context.Context, userID string) error {
	if _, err := r.client.TopicProgress.Delete().
		Where(topicprogress.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("reset topic progress: %w", err)
	}
	if _, err := r.client.WeakTopic.Delete().
		Where(weaktopic.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("reset weak topics: %w", err)
	}
	if _, err := r.client.SubjectPerformance.Delete().
		Where(subjectperformance.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("reset subject performance: %w", err)
	}
	if _, err := r.client.MasteryRecord.Delete().
		Where(masteryrecord.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("reset mastery records: %w", err)
	}
	if _, err := r.client.SessionRecord.Delete().
		Where(sessionrecord.UserID(userID)).Exec(ctx); err != nil {
		return fmt.Errorf("reset session records: %w", err)
	}
	return nil
}

func topicProgressData(tp *ent.TopicProgress) *TopicProgressData {
	return &TopicProgressData{
		UserID:        tp.UserID,
		SubjectID:     tp.SubjectID,
		TopicID:       tp.TopicID,
		Attempts:      tp.Attempts,
		AverageScore:  tp.AverageScore,
		LastAttemptAt: tp.LastAttemptAt,
	}
}
