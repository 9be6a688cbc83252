package mastery

import (
	"context"
	"testing"
	"time"

	"github.com/revisely/revisely/internal/store"
)

func testAggregator(t *testing.T) (*Aggregator, store.ProgressRepo) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	progress := s.ProgressRepo()
	a := NewAggregator(progress, nil)
	a.now = func() time.Time { return time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC) }
	return a, progress
}

func completion(earned, available int) Completion {
	return Completion{
		UserID:            "user-1",
		SubjectID:         "biology",
		ExamBoard:         "AQA",
		TopicID:           "cell-biology",
		MarksEarned:       earned,
		MarksAvailable:    available,
		QuestionsAnswered: 3,
		Elapsed:           10 * time.Minute,
		CompletedAt:       time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
	}
}

func TestCompletionScore(t *testing.T) {
	tests := []struct {
		earned    int
		available int
		want      int
	}{
		{8, 10, 80},
		{1, 3, 33},
		{2, 3, 67},
		{0, 10, 0},
		{5, 0, 0}, // no marks available scores 0
		{10, 10, 100},
	}

	for _, tt := range tests {
		c := completion(tt.earned, tt.available)
		if got := c.Score(); got != tt.want {
			t.Errorf("Score(%d/%d) = %d, want %d", tt.earned, tt.available, got, tt.want)
		}
	}
}

func TestAggregateFirstCompletion(t *testing.T) {
	a, progress := testAggregator(t)
	ctx := context.Background()

	// 8/10 = 80%, no prior progress.
	if err := a.Aggregate(ctx, completion(8, 10)); err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	tp, err := progress.TopicProgress(ctx, "user-1", "cell-biology")
	if err != nil {
		t.Fatalf("topic progress: %v", err)
	}
	if tp == nil {
		t.Fatal("expected progress row after first completion")
	}
	if tp.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", tp.Attempts)
	}
	if tp.AverageScore != 80 {
		t.Errorf("AverageScore = %d, want 80", tp.AverageScore)
	}

	// 80 is below mastery but not below weak entry, so not weak.
	weak, err := progress.WeakTopics(ctx, "user-1")
	if err != nil {
		t.Fatalf("weak topics: %v", err)
	}
	if len(weak) != 0 {
		t.Errorf("WeakTopics = %v, want empty", weak)
	}
}

func TestAggregateBlendsWorseScore(t *testing.T) {
	a, progress := testAggregator(t)
	ctx := context.Background()

	if err := a.Aggregate(ctx, completion(8, 10)); err != nil {
		t.Fatalf("first session: %v", err)
	}
	// Second session: 6/10 = 60%. Blended = round((80+60)/2) = 70.
	if err := a.Aggregate(ctx, completion(6, 10)); err != nil {
		t.Fatalf("second session: %v", err)
	}

	tp, err := progress.TopicProgress(ctx, "user-1", "cell-biology")
	if err != nil {
		t.Fatalf("topic progress: %v", err)
	}
	if tp.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", tp.Attempts)
	}
	if tp.AverageScore != 70 {
		t.Errorf("AverageScore = %d, want 70", tp.AverageScore)
	}

	// Average 70 < 85 and session score 60 < 70: topic is weak.
	weak, err := progress.WeakTopics(ctx, "user-1")
	if err != nil {
		t.Fatalf("weak topics: %v", err)
	}
	if len(weak) != 1 || weak[0] != "cell-biology" {
		t.Errorf("WeakTopics = %v, want [cell-biology]", weak)
	}
}

func TestAggregateZeroScoreLeavesAverage(t *testing.T) {
	a, progress := testAggregator(t)
	ctx := context.Background()

	if err := a.Aggregate(ctx, completion(8, 10)); err != nil {
		t.Fatalf("first session: %v", err)
	}
	if err := a.Aggregate(ctx, completion(6, 10)); err != nil {
		t.Fatalf("second session: %v", err)
	}
	// Third session: all-blank answers, 0/10. Average stays at 70.
	if err := a.Aggregate(ctx, completion(0, 10)); err != nil {
		t.Fatalf("third session: %v", err)
	}

	tp, err := progress.TopicProgress(ctx, "user-1", "cell-biology")
	if err != nil {
		t.Fatalf("topic progress: %v", err)
	}
	if tp.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", tp.Attempts)
	}
	if tp.AverageScore != 70 {
		t.Errorf("AverageScore = %d, want 70", tp.AverageScore)
	}
}

func TestAggregateImprovementReplacesAverage(t *testing.T) {
	a, progress := testAggregator(t)
	ctx := context.Background()

	if err := a.Aggregate(ctx, completion(5, 10)); err != nil {
		t.Fatalf("first session: %v", err)
	}
	// 9/10 = 90 > 50: the better score replaces the average outright.
	if err := a.Aggregate(ctx, completion(9, 10)); err != nil {
		t.Fatalf("second session: %v", err)
	}

	tp, err := progress.TopicProgress(ctx, "user-1", "cell-biology")
	if err != nil {
		t.Fatalf("topic progress: %v", err)
	}
	if tp.AverageScore != 90 {
		t.Errorf("AverageScore = %d, want 90", tp.AverageScore)
	}
}

func TestAggregateWeakSetRecompute(t *testing.T) {
	a, progress := testAggregator(t)
	ctx := context.Background()

	// Enter the weak set with a poor first session: 30%.
	if err := a.Aggregate(ctx, completion(3, 10)); err != nil {
		t.Fatalf("weak session: %v", err)
	}
	weak, err := progress.WeakTopics(ctx, "user-1")
	if err != nil {
		t.Fatalf("weak topics: %v", err)
	}
	if len(weak) != 1 {
		t.Fatalf("WeakTopics = %v, want one entry", weak)
	}

	// Strong follow-up: 100% replaces the average (100 >= 85), topic
	// graduates out of the weak set.
	if err := a.Aggregate(ctx, completion(10, 10)); err != nil {
		t.Fatalf("strong session: %v", err)
	}
	weak, err = progress.WeakTopics(ctx, "user-1")
	if err != nil {
		t.Fatalf("weak topics: %v", err)
	}
	if len(weak) != 0 {
		t.Errorf("WeakTopics = %v, want empty after graduation", weak)
	}
}

func TestAggregateSubjectAccumulation(t *testing.T) {
	a, progress := testAggregator(t)
	ctx := context.Background()

	c1 := completion(8, 10)
	c1.Elapsed = 30 * time.Minute
	if err := a.Aggregate(ctx, c1); err != nil {
		t.Fatalf("first session: %v", err)
	}
	c2 := completion(2, 10)
	c2.Elapsed = 10 * time.Second // counts as one minute
	if err := a.Aggregate(ctx, c2); err != nil {
		t.Fatalf("second session: %v", err)
	}

	sp, err := progress.SubjectPerformance(ctx, "user-1", "biology", "AQA")
	if err != nil {
		t.Fatalf("subject performance: %v", err)
	}
	if sp == nil {
		t.Fatal("expected subject performance row")
	}
	if sp.TotalQuestionsAnswered != 6 {
		t.Errorf("TotalQuestionsAnswered = %d, want 6", sp.TotalQuestionsAnswered)
	}
	if sp.MarksEarned != 10 || sp.MarksAvailable != 20 {
		t.Errorf("marks = %d/%d, want 10/20", sp.MarksEarned, sp.MarksAvailable)
	}
	// Cumulative accuracy, not an average of 80% and 20%.
	if sp.AccuracyRate != 50 {
		t.Errorf("AccuracyRate = %v, want 50", sp.AccuracyRate)
	}
	want := 0.5 + 1.0/60
	if diff := sp.StudyHours - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("StudyHours = %v, want %v", sp.StudyHours, want)
	}
}

func TestAggregateMasteryRecordOnHighScore(t *testing.T) {
	a, progress := testAggregator(t)
	ctx := context.Background()

	// 9/10 = 90 >= 85: dated mastery record written.
	if err := a.Aggregate(ctx, completion(9, 10)); err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	// A below-bar session on another topic writes nothing.
	below := completion(7, 10)
	below.TopicID = "organisation"
	if err := a.Aggregate(ctx, below); err != nil {
		t.Fatalf("below-bar aggregate: %v", err)
	}

	recs, err := progress.MasteryRecords(ctx, "user-1", "biology")
	if err != nil {
		t.Fatalf("mastery records: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(recs))
	}
	want := store.MasteryRecordData{
		UserID: "user-1", SubjectID: "biology", TopicID: "cell-biology",
		Day: "2026-08-31", Score: 90,
	}
	if recs[0] != want {
		t.Errorf("record = %+v, want %+v", recs[0], want)
	}
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name     string
		old, new int
		want     int
	}{
		{"improvement replaces", 50, 90, 90},
		{"equal blends", 80, 80, 80},
		{"worse blends", 80, 60, 70},
		{"worse blends rounds", 80, 65, 73}, // 72.5 rounds up
		{"zero keeps old", 70, 0, 70},
		{"zero on zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blend(tt.old, tt.new); got != tt.want {
				t.Errorf("blend(%d, %d) = %d, want %d", tt.old, tt.new, got, tt.want)
			}
		})
	}
}
