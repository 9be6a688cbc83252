package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testKey() SessionKey {
	return SessionKey{UserID: "user-1", SubjectID: "biology", TopicID: "cell-biology"}
}

func testDocument() *SessionDocument {
	now := time.Now().UTC().Truncate(time.Second)
	return &SessionDocument{
		Key:          testKey(),
		SessionID:    "sess-123",
		QuestionIDs:  []string{"q3", "q1", "q2"},
		CurrentIndex: 1,
		UserAnswer:   "mitochondria",
		ShowFeedback: true,
		Attempts: []AttemptDoc{
			{
				QuestionID:     "q3",
				UserAnswer:     "the cell membrane",
				MarksAwarded:   2,
				MarksAvailable: 3,
				Assessment:     "good",
				Feedback:       FeedbackDoc{Critique: "missing detail on transport"},
				SubmittedAt:    now,
			},
		},
		StartedAt: now.Add(-5 * time.Minute),
		LastSaved: now,
	}
}

func TestSessionSaveAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	// No session yet.
	doc, err := repo.Load(ctx, testKey())
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if doc != nil {
		t.Fatal("expected nil document when none exists")
	}

	want := testDocument()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx, testKey())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected document after save")
	}
	if got.SessionID != want.SessionID {
		t.Errorf("SessionID = %q, want %q", got.SessionID, want.SessionID)
	}
	if got.CurrentIndex != want.CurrentIndex {
		t.Errorf("CurrentIndex = %d, want %d", got.CurrentIndex, want.CurrentIndex)
	}
	if len(got.QuestionIDs) != 3 || got.QuestionIDs[0] != "q3" {
		t.Errorf("QuestionIDs = %v, want %v", got.QuestionIDs, want.QuestionIDs)
	}
	if !got.ShowFeedback {
		t.Error("ShowFeedback = false, want true")
	}
	if len(got.Attempts) != 1 {
		t.Fatalf("len(Attempts) = %d, want 1", len(got.Attempts))
	}
	if got.Attempts[0].MarksAwarded != 2 {
		t.Errorf("Attempts[0].MarksAwarded = %d, want 2", got.Attempts[0].MarksAwarded)
	}
	if got.AggregatedAt != nil {
		t.Error("expected nil AggregatedAt on fresh session")
	}
}

func TestSessionSaveReplacesExisting(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	doc := testDocument()
	if err := repo.Save(ctx, doc); err != nil {
		t.Fatalf("first save: %v", err)
	}

	doc.CurrentIndex = 2
	doc.UserAnswer = ""
	doc.ShowFeedback = false
	if err := repo.Save(ctx, doc); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.Load(ctx, testKey())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.CurrentIndex != 2 {
		t.Errorf("CurrentIndex = %d, want 2", got.CurrentIndex)
	}
	if got.UserAnswer != "" {
		t.Errorf("UserAnswer = %q, want empty", got.UserAnswer)
	}
	if got.ShowFeedback {
		t.Error("ShowFeedback = true, want false")
	}
}

func TestSessionMarkAggregated(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, testDocument()); err != nil {
		t.Fatalf("save: %v", err)
	}

	at := time.Now().UTC().Truncate(time.Second)
	if err := repo.MarkAggregated(ctx, testKey(), at); err != nil {
		t.Fatalf("mark aggregated: %v", err)
	}

	got, err := repo.Load(ctx, testKey())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.AggregatedAt == nil {
		t.Fatal("expected non-nil AggregatedAt")
	}
	if !got.AggregatedAt.Equal(at) {
		t.Errorf("AggregatedAt = %v, want %v", got.AggregatedAt, at)
	}
}

func TestSessionClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	// Clearing an absent key is not an error.
	if err := repo.Clear(ctx, testKey(), "sess-123"); err != nil {
		t.Fatalf("clear (absent): %v", err)
	}

	if err := repo.Save(ctx, testDocument()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Clear(ctx, testKey(), "sess-123"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, err := repo.Load(ctx, testKey())
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil document after clear")
	}
}

func TestSessionClearSkipsNewerSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	doc := testDocument()
	doc.SessionID = "sess-replacement"
	if err := repo.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	// A clear scoped to a session that no longer owns the record must
	// leave it untouched.
	if err := repo.Clear(ctx, testKey(), "sess-123"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got, err := repo.Load(ctx, testKey())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected record to survive a stale clear")
	}
	if got.SessionID != "sess-replacement" {
		t.Errorf("SessionID = %q, want %q", got.SessionID, "sess-replacement")
	}
}

func TestSessionSaveClearsStaleAggregatedAt(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, testDocument()); err != nil {
		t.Fatalf("save: %v", err)
	}
	at := time.Now().UTC().Truncate(time.Second)
	if err := repo.MarkAggregated(ctx, testKey(), at); err != nil {
		t.Fatalf("mark aggregated: %v", err)
	}

	// A fresh session saved over the completed record must not inherit
	// the aggregated marker through the upsert.
	fresh := testDocument()
	fresh.SessionID = "sess-456"
	fresh.Attempts = nil
	if err := repo.Save(ctx, fresh); err != nil {
		t.Fatalf("save fresh: %v", err)
	}

	got, err := repo.Load(ctx, testKey())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected document after save")
	}
	if got.SessionID != "sess-456" {
		t.Errorf("SessionID = %q, want %q", got.SessionID, "sess-456")
	}
	if got.AggregatedAt != nil {
		t.Errorf("AggregatedAt = %v, want nil", got.AggregatedAt)
	}
}

func TestSessionLoadCorruptAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, testDocument()); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Corrupt the persisted attempts column directly.
	_, err := s.DB().Exec(
		`UPDATE session_records SET attempts = '{"not":"an array"}' WHERE user_id = ?`,
		testKey().UserID,
	)
	if err != nil {
		t.Fatalf("corrupt attempts: %v", err)
	}

	got, err := repo.Load(ctx, testKey())
	if err != nil {
		t.Fatalf("load corrupt: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil document for unparseable attempts")
	}
}

func TestSessionLoadStringEncodedAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, testDocument()); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Older writers stored the attempts array JSON-encoded inside a string.
	encoded := `"[{\"question_id\":\"q3\",\"marks_awarded\":2,\"marks_available\":3}]"`
	_, err := s.DB().Exec(
		`UPDATE session_records SET attempts = ? WHERE user_id = ?`,
		encoded, testKey().UserID,
	)
	if err != nil {
		t.Fatalf("rewrite attempts: %v", err)
	}

	got, err := repo.Load(ctx, testKey())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected document for string-encoded attempts")
	}
	if len(got.Attempts) != 1 || got.Attempts[0].QuestionID != "q3" {
		t.Errorf("Attempts = %+v, want single q3 attempt", got.Attempts)
	}
}

func TestTopicProgressUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	got, err := repo.TopicProgress(ctx, "user-1", "cell-biology")
	if err != nil {
		t.Fatalf("topic progress (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil progress when none exists")
	}

	now := time.Now().UTC().Truncate(time.Second)
	data := &TopicProgressData{
		UserID:        "user-1",
		SubjectID:     "biology",
		TopicID:       "cell-biology",
		Attempts:      1,
		AverageScore:  60,
		LastAttemptAt: now,
	}
	if err := repo.UpsertTopicProgress(ctx, data); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	data.Attempts = 2
	data.AverageScore = 72
	if err := repo.UpsertTopicProgress(ctx, data); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err = repo.TopicProgress(ctx, "user-1", "cell-biology")
	if err != nil {
		t.Fatalf("topic progress: %v", err)
	}
	if got.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", got.Attempts)
	}
	if got.AverageScore != 72 {
		t.Errorf("AverageScore = %d, want 72", got.AverageScore)
	}
}

func TestTopicProgressBySubject(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	for i, topicID := range []string{"cell-biology", "organisation", "infection"} {
		err := repo.UpsertTopicProgress(ctx, &TopicProgressData{
			UserID:        "user-1",
			SubjectID:     "biology",
			TopicID:       topicID,
			Attempts:      1,
			AverageScore:  50 + i*10,
			LastAttemptAt: now.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("upsert %s: %v", topicID, err)
		}
	}
	// Different subject, must not appear.
	err := repo.UpsertTopicProgress(ctx, &TopicProgressData{
		UserID: "user-1", SubjectID: "chemistry", TopicID: "bonding",
		Attempts: 1, AverageScore: 40, LastAttemptAt: now,
	})
	if err != nil {
		t.Fatalf("upsert chemistry: %v", err)
	}

	rows, err := repo.TopicProgressBySubject(ctx, "user-1", "biology")
	if err != nil {
		t.Fatalf("by subject: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	// Newest attempt first.
	if rows[0].TopicID != "infection" {
		t.Errorf("rows[0].TopicID = %q, want %q", rows[0].TopicID, "infection")
	}
}

func TestWeakTopicSetAndRemove(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	if err := repo.SetWeakTopic(ctx, "user-1", "biology", "cell-biology", true); err != nil {
		t.Fatalf("set weak: %v", err)
	}
	// Setting twice is idempotent.
	if err := repo.SetWeakTopic(ctx, "user-1", "biology", "cell-biology", true); err != nil {
		t.Fatalf("set weak again: %v", err)
	}
	if err := repo.SetWeakTopic(ctx, "user-1", "biology", "bioenergetics", true); err != nil {
		t.Fatalf("set weak second topic: %v", err)
	}

	ids, err := repo.WeakTopics(ctx, "user-1")
	if err != nil {
		t.Fatalf("weak topics: %v", err)
	}
	if len(ids) != 2 || ids[0] != "bioenergetics" || ids[1] != "cell-biology" {
		t.Errorf("WeakTopics = %v, want sorted [bioenergetics cell-biology]", ids)
	}

	if err := repo.SetWeakTopic(ctx, "user-1", "biology", "cell-biology", false); err != nil {
		t.Fatalf("remove weak: %v", err)
	}
	// Removing an absent row is idempotent too.
	if err := repo.SetWeakTopic(ctx, "user-1", "biology", "cell-biology", false); err != nil {
		t.Fatalf("remove weak again: %v", err)
	}

	ids, err = repo.WeakTopics(ctx, "user-1")
	if err != nil {
		t.Fatalf("weak topics after remove: %v", err)
	}
	if len(ids) != 1 || ids[0] != "bioenergetics" {
		t.Errorf("WeakTopics = %v, want [bioenergetics]", ids)
	}
}

func TestSubjectPerformanceUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	got, err := repo.SubjectPerformance(ctx, "user-1", "biology", "AQA")
	if err != nil {
		t.Fatalf("subject performance (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil performance when none exists")
	}

	now := time.Now().UTC().Truncate(time.Second)
	data := &SubjectPerformanceData{
		UserID:                 "user-1",
		SubjectID:              "biology",
		ExamBoard:              "AQA",
		TotalQuestionsAnswered: 5,
		MarksEarned:            12,
		MarksAvailable:         20,
		AccuracyRate:           60,
		StudyHours:             0.25,
		LastActivityDate:       now,
	}
	if err := repo.UpsertSubjectPerformance(ctx, data); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	data.TotalQuestionsAnswered = 10
	data.MarksEarned = 26
	data.MarksAvailable = 40
	data.AccuracyRate = 65
	if err := repo.UpsertSubjectPerformance(ctx, data); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err = repo.SubjectPerformance(ctx, "user-1", "biology", "AQA")
	if err != nil {
		t.Fatalf("subject performance: %v", err)
	}
	if got.TotalQuestionsAnswered != 10 {
		t.Errorf("TotalQuestionsAnswered = %d, want 10", got.TotalQuestionsAnswered)
	}
	if got.AccuracyRate != 65 {
		t.Errorf("AccuracyRate = %v, want 65", got.AccuracyRate)
	}
}

func TestMasteryRecordUpsertSameDay(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	rec := MasteryRecordData{
		UserID:    "user-1",
		SubjectID: "biology",
		TopicID:   "cell-biology",
		Day:       "2026-08-31",
		Score:     85,
	}
	if err := repo.UpsertMasteryRecord(ctx, rec); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Same day again overwrites the score instead of adding a row.
	rec.Score = 92
	if err := repo.UpsertMasteryRecord(ctx, rec); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var count, score int
	err := s.DB().QueryRow(
		`SELECT COUNT(*), MAX(score) FROM mastery_records WHERE user_id = ?`,
		"user-1",
	).Scan(&count, &score)
	if err != nil {
		t.Fatalf("count mastery records: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if score != 92 {
		t.Errorf("score = %d, want 92", score)
	}
}

func TestProgressReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	progress := s.ProgressRepo()
	sessions := s.SessionRepo()

	now := time.Now().UTC()
	err := progress.UpsertTopicProgress(ctx, &TopicProgressData{
		UserID: "user-1", SubjectID: "biology", TopicID: "cell-biology",
		Attempts: 1, AverageScore: 60, LastAttemptAt: now,
	})
	if err != nil {
		t.Fatalf("upsert progress: %v", err)
	}
	if err := progress.SetWeakTopic(ctx, "user-1", "biology", "cell-biology", true); err != nil {
		t.Fatalf("set weak: %v", err)
	}
	if err := sessions.Save(ctx, testDocument()); err != nil {
		t.Fatalf("save session: %v", err)
	}
	// Another user's data must survive the reset.
	err = progress.UpsertTopicProgress(ctx, &TopicProgressData{
		UserID: "user-2", SubjectID: "biology", TopicID: "cell-biology",
		Attempts: 3, AverageScore: 80, LastAttemptAt: now,
	})
	if err != nil {
		t.Fatalf("upsert other user: %v", err)
	}

	if err := progress.Reset(ctx, "user-1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	tp, err := progress.TopicProgress(ctx, "user-1", "cell-biology")
	if err != nil {
		t.Fatalf("topic progress after reset: %v", err)
	}
	if tp != nil {
		t.Error("expected nil topic progress after reset")
	}
	ids, err := progress.WeakTopics(ctx, "user-1")
	if err != nil {
		t.Fatalf("weak topics after reset: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("WeakTopics = %v, want empty", ids)
	}
	doc, err := sessions.Load(ctx, testKey())
	if err != nil {
		t.Fatalf("load session after reset: %v", err)
	}
	if doc != nil {
		t.Error("expected nil session after reset")
	}

	other, err := progress.TopicProgress(ctx, "user-2", "cell-biology")
	if err != nil {
		t.Fatalf("other user progress: %v", err)
	}
	if other == nil || other.Attempts != 3 {
		t.Errorf("other user progress = %+v, want attempts 3", other)
	}
}

func TestEventSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	events := s.EventRepo()
	ctx := context.Background()

	err := events.AppendAttempt(ctx, AttemptEventData{
		SessionID: "sess-1", UserID: "user-1", SubjectID: "biology",
		TopicID: "cell-biology", QuestionID: "q1",
		UserAnswer: "osmosis", MarksAwarded: 1, MarksAvailable: 2,
		Assessment: "good",
	})
	if err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	err = events.AppendOracleRequest(ctx, OracleRequestEventData{
		Provider: "anthropic", Model: "claude-haiku",
		InputTokens: 100, OutputTokens: 50, LatencyMs: 800,
		Success: true, MarksAwarded: 1,
	})
	if err != nil {
		t.Fatalf("append oracle request: %v", err)
	}

	// The shared counter orders events across tables.
	var attemptSeq, oracleSeq int64
	if err := s.DB().QueryRow(`SELECT sequence FROM attempt_events`).Scan(&attemptSeq); err != nil {
		t.Fatalf("query attempt sequence: %v", err)
	}
	if err := s.DB().QueryRow(`SELECT sequence FROM oracle_request_events`).Scan(&oracleSeq); err != nil {
		t.Fatalf("query oracle sequence: %v", err)
	}
	if oracleSeq != attemptSeq+1 {
		t.Errorf("oracle sequence = %d, want %d", oracleSeq, attemptSeq+1)
	}
}
