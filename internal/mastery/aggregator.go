// Package mastery turns completed sessions into durable learner
// progress: the rolling per-topic score, the weak-topic set, lifetime
// subject stats and dated mastery records. The Aggregator is the only
// writer of that state; everything else reads.
package mastery

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/revisely/revisely/internal/store"
)

// Completion carries everything the aggregator needs from one finished
// session.
type Completion struct {
	UserID    string
	SubjectID string
	ExamBoard string
	TopicID   string

	// MarksEarned and MarksAvailable are the session totals from the
	// attempt ledger, counting only the current attempt per question.
	MarksEarned    int
	MarksAvailable int

	// QuestionsAnswered is the number of distinct questions graded.
	QuestionsAnswered int

	// Elapsed is the session's wall-clock duration.
	Elapsed time.Duration

	// CompletedAt is when the session finished.
	CompletedAt time.Time
}

// Score is the session's immediate percentage score, rounded. A session
// with no marks available scores 0.
func (c Completion) Score() int {
	if c.MarksAvailable <= 0 {
		return 0
	}
	return int(math.Round(float64(c.MarksEarned) / float64(c.MarksAvailable) * 100))
}

// Aggregator folds session completions into durable progress.
type Aggregator struct {
	progress store.ProgressRepo
	logger   *slog.Logger
	now      func() time.Time
}

// NewAggregator creates an Aggregator writing through progress. A nil
// logger discards log output.
func NewAggregator(progress store.ProgressRepo, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Aggregator{progress: progress, logger: logger, now: time.Now}
}

// Aggregate applies one session completion: blends the topic score,
// recomputes weak-set membership, accumulates subject stats, and
// records a dated mastery score when the session reached the mastery
// bar. Any storage error is returned so the caller can keep the session
// resumable and retry.
func (a *Aggregator) Aggregate(ctx context.Context, c Completion) error {
	newScore := c.Score()

	average, err := a.updateTopicProgress(ctx, c, newScore)
	if err != nil {
		return err
	}

	weak := average < MasteryThreshold && newScore < WeakEntryThreshold
	if err := a.progress.SetWeakTopic(ctx, c.UserID, c.SubjectID, c.TopicID, weak); err != nil {
		return fmt.Errorf("update weak set: %w", err)
	}

	if err := a.updateSubjectPerformance(ctx, c); err != nil {
		return err
	}

	if newScore >= MasteryThreshold {
		rec := store.MasteryRecordData{
			UserID:    c.UserID,
			SubjectID: c.SubjectID,
			TopicID:   c.TopicID,
			Day:       c.CompletedAt.UTC().Format("2006-01-02"),
			Score:     newScore,
		}
		if err := a.progress.UpsertMasteryRecord(ctx, rec); err != nil {
			return fmt.Errorf("record mastery: %w", err)
		}
	}

	a.logger.Info("session aggregated",
		"user_id", c.UserID,
		"topic_id", c.TopicID,
		"score", newScore,
		"average", average,
		"weak", weak)
	return nil
}

// updateTopicProgress applies the blending rule and returns the
// post-update average.
func (a *Aggregator) updateTopicProgress(ctx context.Context, c Completion, newScore int) (int, error) {
	existing, err := a.progress.TopicProgress(ctx, c.UserID, c.TopicID)
	if err != nil {
		return 0, fmt.Errorf("load topic progress: %w", err)
	}

	data := &store.TopicProgressData{
		UserID:        c.UserID,
		SubjectID:     c.SubjectID,
		TopicID:       c.TopicID,
		LastAttemptAt: a.now(),
	}

	if existing == nil {
		data.Attempts = 1
		data.AverageScore = newScore
	} else {
		data.Attempts = existing.Attempts + 1
		data.AverageScore = blend(existing.AverageScore, newScore)
	}

	if err := a.progress.UpsertTopicProgress(ctx, data); err != nil {
		return 0, fmt.Errorf("save topic progress: %w", err)
	}
	return data.AverageScore, nil
}

// blend combines an existing average with a new session score. An
// improved score replaces the average outright. A same-or-worse score
// is averaged in, softening the dip. A zero score leaves the average
// untouched so a blank-answer session cannot erase history.
func blend(oldScore, newScore int) int {
	switch {
	case newScore > oldScore:
		return newScore
	case newScore > 0:
		return int(math.Round(float64(oldScore+newScore) / 2))
	default:
		return oldScore
	}
}

func (a *Aggregator) updateSubjectPerformance(ctx context.Context, c Completion) error {
	sp, err := a.progress.SubjectPerformance(ctx, c.UserID, c.SubjectID, c.ExamBoard)
	if err != nil {
		return fmt.Errorf("load subject performance: %w", err)
	}
	if sp == nil {
		sp = &store.SubjectPerformanceData{
			UserID:    c.UserID,
			SubjectID: c.SubjectID,
			ExamBoard: c.ExamBoard,
		}
	}

	sp.TotalQuestionsAnswered += c.QuestionsAnswered
	sp.MarksEarned += c.MarksEarned
	sp.MarksAvailable += c.MarksAvailable

	// Accuracy comes from cumulative marks, never from averaging
	// per-session percentages.
	if sp.MarksAvailable > 0 {
		sp.AccuracyRate = float64(sp.MarksEarned) / float64(sp.MarksAvailable) * 100
	}

	// Every session counts for at least one minute of study time.
	elapsed := c.Elapsed
	if elapsed < time.Minute {
		elapsed = time.Minute
	}
	sp.StudyHours += elapsed.Minutes() / 60

	sp.LastActivityDate = a.now().UTC().Truncate(24 * time.Hour)

	if err := a.progress.UpsertSubjectPerformance(ctx, sp); err != nil {
		return fmt.Errorf("save subject performance: %w", err)
	}
	return nil
}
