package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/revisely/revisely/internal/curriculum"
	"github.com/revisely/revisely/internal/grading"
	"github.com/revisely/revisely/internal/mastery"
	"github.com/revisely/revisely/internal/notify"
	"github.com/revisely/revisely/internal/oracle"
	"github.com/revisely/revisely/internal/pool"
	"github.com/revisely/revisely/internal/store"
)

func testSubject() *curriculum.Subject {
	return &curriculum.Subject{
		ID:        "biology",
		Name:      "Biology",
		ExamBoard: "AQA",
	}
}

func testTopic() curriculum.Topic {
	return curriculum.Topic{
		ID:   "cell-biology",
		Name: "Cell Biology",
		Questions: []curriculum.Question{
			{ID: "q1", Text: "Name the organelle where respiration happens.", Marks: 2, ModelAnswer: "The mitochondria."},
			{ID: "q2", Text: "Describe the function of the cell membrane.", Marks: 3, ModelAnswer: "It controls what enters and leaves the cell."},
			{ID: "q3", Text: "Explain how substances move by osmosis.", Marks: 5, ModelAnswer: "Water moves across a partially permeable membrane down its concentration gradient."},
		},
	}
}

type testHarness struct {
	engine   *Engine
	store    *store.Store
	oracle   *oracle.MockClient
	notifier *notify.Recording
	progress store.ProgressRepo
}

func newHarness(t *testing.T, verdicts ...oracle.MockVerdict) *testHarness {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	mock := oracle.NewMockClient(verdicts...)
	notifier := &notify.Recording{}
	progress := s.ProgressRepo()

	e := NewEngine(
		pool.New(nil),
		grading.NewAdapter(mock, nil),
		s.SessionRepo(),
		s.EventRepo(),
		mastery.NewAggregator(progress, nil),
		notifier,
		nil,
	)
	e.GraceDelay = 0

	return &testHarness{engine: e, store: s, oracle: mock, notifier: notifier, progress: progress}
}

func verdict(marks int) oracle.MockVerdict {
	return oracle.MockVerdict{
		Result: &oracle.Result{MarksAwarded: marks, Feedback: "marked", Assessment: "good"},
	}
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestStartFreshSession(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	state, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if state.Phase != PhaseAwaitingAnswer {
		t.Errorf("Phase = %v, want %v", state.Phase, PhaseAwaitingAnswer)
	}
	if state.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0", state.CurrentIndex)
	}
	if state.SessionID == "" {
		t.Error("expected non-empty SessionID")
	}

	// The shuffle preserves the question set.
	seen := make(map[string]bool)
	for _, q := range state.Questions {
		seen[q.ID] = true
	}
	for _, id := range []string{"q1", "q2", "q3"} {
		if !seen[id] {
			t.Errorf("question %s missing from session", id)
		}
	}

	// The fresh session is persisted immediately.
	doc, err := h.store.SessionRepo().Load(ctx, state.Key)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc == nil {
		t.Fatal("expected persisted session document")
	}
}

func TestStartNoGradeableContent(t *testing.T) {
	h := newHarness(t)

	topic := curriculum.Topic{
		ID:   "graphs",
		Name: "Graph Skills",
		Questions: []curriculum.Question{
			{ID: "g1", Text: "Draw a graph of the results.", Marks: 4},
			{ID: "g2", Text: "Sketch the cell and label the nucleus.", Marks: 3},
		},
	}

	_, err := h.engine.Start(context.Background(), "user-1", testSubject(), topic)
	if !errors.Is(err, ErrNoContent) {
		t.Fatalf("err = %v, want ErrNoContent", err)
	}
}

func TestSubmitEmptyAnswerRejected(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	state, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	err = h.engine.Submit(ctx, state, "   \n\t ")
	if !errors.Is(err, ErrEmptyAnswer) {
		t.Fatalf("err = %v, want ErrEmptyAnswer", err)
	}
	if state.Phase != PhaseAwaitingAnswer {
		t.Errorf("Phase = %v, want unchanged %v", state.Phase, PhaseAwaitingAnswer)
	}
	if h.oracle.CallCount() != 0 {
		t.Errorf("oracle calls = %d, want 0", h.oracle.CallCount())
	}
}

func TestSubmitGradesAndShowsFeedback(t *testing.T) {
	h := newHarness(t, verdict(2))
	ctx := context.Background()

	state, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	q := state.CurrentQuestion()
	if err := h.engine.Submit(ctx, state, "  my answer  "); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if state.Phase != PhaseShowingFeedback {
		t.Errorf("Phase = %v, want %v", state.Phase, PhaseShowingFeedback)
	}
	if state.UserAnswer != "my answer" {
		t.Errorf("UserAnswer = %q, want trimmed %q", state.UserAnswer, "my answer")
	}

	a := state.CurrentAttempt()
	if a == nil {
		t.Fatal("expected a current attempt")
	}
	if a.MarksAwarded != 2 {
		t.Errorf("MarksAwarded = %d, want 2", a.MarksAwarded)
	}
	if a.Feedback.ModelAnswer != q.ModelAnswer {
		t.Errorf("Feedback.ModelAnswer = %q, want %q", a.Feedback.ModelAnswer, q.ModelAnswer)
	}

	// The submission lands in the audit log.
	var count int
	err = h.store.DB().QueryRow(
		`SELECT COUNT(*) FROM attempt_events WHERE session_id = ?`, state.SessionID,
	).Scan(&count)
	if err != nil {
		t.Fatalf("count attempt events: %v", err)
	}
	if count != 1 {
		t.Errorf("attempt events = %d, want 1", count)
	}
}

func TestSubmitNotesLostMarks(t *testing.T) {
	h := newHarness(t, verdict(1))
	ctx := context.Background()

	state, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	marks := state.CurrentQuestion().Marks

	if err := h.engine.Submit(ctx, state, "partial answer"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	waitFor(t, func() bool { return len(h.notifier.Notes()) == 1 }, "note request never sent")
	note := h.notifier.Notes()[0]
	if note.MarksLost != marks-1 {
		t.Errorf("MarksLost = %d, want %d", note.MarksLost, marks-1)
	}
	if note.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", note.UserID, "user-1")
	}
}

func TestSubmitFullMarksSendsNoNote(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	state, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	h.oracle.AddVerdict(verdict(state.CurrentQuestion().Marks))

	if err := h.engine.Submit(ctx, state, "a full-marks answer"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Give any stray goroutine a moment, then confirm nothing arrived.
	time.Sleep(20 * time.Millisecond)
	if n := len(h.notifier.Notes()); n != 0 {
		t.Errorf("notes = %d, want 0", n)
	}
}

func TestRetrySupersedesAttempt(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	state, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	marks := state.CurrentQuestion().Marks
	h.oracle.AddVerdict(verdict(1))
	h.oracle.AddVerdict(verdict(marks))

	if err := h.engine.Submit(ctx, state, "first try"); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if err := h.engine.Retry(ctx, state); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if state.Phase != PhaseAwaitingAnswer {
		t.Errorf("Phase = %v, want %v", state.Phase, PhaseAwaitingAnswer)
	}
	if state.UserAnswer != "" {
		t.Errorf("UserAnswer = %q, want cleared", state.UserAnswer)
	}

	if err := h.engine.Submit(ctx, state, "second try"); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	if got := state.Ledger.TotalMarksEarned(); got != marks {
		t.Errorf("TotalMarksEarned = %d, want %d", got, marks)
	}
	if got := len(state.Ledger.History()); got != 2 {
		t.Errorf("len(history) = %d, want 2", got)
	}
}

func TestNextAdvancesAndRevisitRestores(t *testing.T) {
	h := newHarness(t, verdict(1))
	ctx := context.Background()

	state, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := h.engine.Submit(ctx, state, "first answer"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := h.engine.Next(ctx, state); err != nil {
		t.Fatalf("next: %v", err)
	}
	if state.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", state.CurrentIndex)
	}
	if state.Phase != PhaseAwaitingAnswer {
		t.Errorf("Phase = %v, want %v", state.Phase, PhaseAwaitingAnswer)
	}

	// Jumping back to an attempted question lands on its feedback.
	if err := h.engine.Jump(ctx, state, 0); err != nil {
		t.Fatalf("jump: %v", err)
	}
	if state.Phase != PhaseShowingFeedback {
		t.Errorf("Phase after jump = %v, want %v", state.Phase, PhaseShowingFeedback)
	}
	if state.UserAnswer != "first answer" {
		t.Errorf("UserAnswer = %q, want restored %q", state.UserAnswer, "first answer")
	}
}

func TestJumpOutOfRange(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	state, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := h.engine.Jump(ctx, state, -1); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("jump(-1) err = %v, want ErrInvalidIndex", err)
	}
	if err := h.engine.Jump(ctx, state, len(state.Questions)); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("jump(len) err = %v, want ErrInvalidIndex", err)
	}
}

// runSession answers every question with the given marks keyed by
// question ID and finishes the session.
func runSession(t *testing.T, h *testHarness, state *State, marksByID map[string]int) {
	t.Helper()
	ctx := context.Background()
	for {
		q := state.CurrentQuestion()
		h.oracle.AddVerdict(verdict(marksByID[q.ID]))
		if err := h.engine.Submit(ctx, state, "an answer for "+q.ID); err != nil {
			t.Fatalf("submit %s: %v", q.ID, err)
		}
		if err := h.engine.Next(ctx, state); err != nil {
			t.Fatalf("next after %s: %v", q.ID, err)
		}
		if state.Phase == PhaseComplete {
			return
		}
	}
}

func TestFinishAggregatesAndClears(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	state, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// Scores [2,1,5] of [2,3,5]: 8/10 = 80%.
	runSession(t, h, state, map[string]int{"q1": 2, "q2": 1, "q3": 5})

	tp, err := h.progress.TopicProgress(ctx, "user-1", "cell-biology")
	if err != nil {
		t.Fatalf("topic progress: %v", err)
	}
	if tp == nil {
		t.Fatal("expected progress row after completion")
	}
	if tp.Attempts != 1 || tp.AverageScore != 80 {
		t.Errorf("progress = attempts %d score %d, want 1 / 80", tp.Attempts, tp.AverageScore)
	}

	// 80 is not below the weak-entry bar.
	weak, err := h.progress.WeakTopics(ctx, "user-1")
	if err != nil {
		t.Fatalf("weak topics: %v", err)
	}
	if len(weak) != 0 {
		t.Errorf("WeakTopics = %v, want empty", weak)
	}

	// The completion fact reaches the reward ledger.
	waitFor(t, func() bool { return len(h.notifier.Completions()) == 1 }, "completion never reported")
	report := h.notifier.Completions()[0]
	if report.MarksEarned != 8 || report.TotalMarks != 10 {
		t.Errorf("report = %d/%d, want 8/10", report.MarksEarned, report.TotalMarks)
	}

	// With zero grace the record is cleared synchronously.
	doc, err := h.store.SessionRepo().Load(ctx, state.Key)
	if err != nil {
		t.Fatalf("load after finish: %v", err)
	}
	if doc != nil {
		t.Error("expected session record cleared after aggregation")
	}
}

func TestStartAfterCompletionBeginsFresh(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.engine.GraceDelay = time.Hour

	first, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	runSession(t, h, first, map[string]int{"q1": 2, "q2": 3, "q3": 5})

	// Inside the grace window the completed record is still there.
	doc, err := h.store.SessionRepo().Load(ctx, first.Key)
	if err != nil {
		t.Fatalf("load after finish: %v", err)
	}
	if doc == nil {
		t.Fatal("expected record to survive until the grace delay")
	}
	if doc.AggregatedAt == nil {
		t.Fatal("expected aggregated marker on completed record")
	}

	// Starting again must begin a fresh session, not resume the
	// completed one.
	second, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if second.SessionID == first.SessionID {
		t.Fatal("expected a fresh session after completion")
	}
	if got := len(second.Ledger.History()); got != 0 {
		t.Fatalf("len(history) = %d, want 0", got)
	}

	h.oracle.AddVerdict(verdict(1))
	if err := h.engine.Submit(ctx, second, "answer one"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// The fresh session must not inherit the old aggregated marker, or
	// this resume would discard it.
	resumed, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.SessionID != second.SessionID {
		t.Errorf("SessionID = %q, want resumed %q", resumed.SessionID, second.SessionID)
	}
	if got := len(resumed.Ledger.History()); got != 1 {
		t.Errorf("len(history) = %d, want 1 restored attempt", got)
	}
	if resumed.Phase != PhaseShowingFeedback {
		t.Errorf("Phase = %v, want %v", resumed.Phase, PhaseShowingFeedback)
	}
}

func TestFinishClearsRecordAfterGrace(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.engine.GraceDelay = 50 * time.Millisecond

	state, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	runSession(t, h, state, map[string]int{"q1": 2, "q2": 3, "q3": 5})

	doc, err := h.store.SessionRepo().Load(ctx, state.Key)
	if err != nil {
		t.Fatalf("load after finish: %v", err)
	}
	if doc == nil {
		t.Fatal("expected record to survive until the grace delay")
	}

	waitFor(t, func() bool {
		doc, err := h.store.SessionRepo().Load(ctx, state.Key)
		return err == nil && doc == nil
	}, "record never cleared after the grace delay")
}

func TestGraceClearSkipsReplacementSession(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.engine.GraceDelay = 50 * time.Millisecond

	first, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	runSession(t, h, first, map[string]int{"q1": 2, "q2": 3, "q3": 5})

	// A session started inside the grace window must survive the
	// finished session's pending clear.
	second, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("second start: %v", err)
	}

	time.Sleep(150 * time.Millisecond)

	doc, err := h.store.SessionRepo().Load(ctx, second.Key)
	if err != nil {
		t.Fatalf("load after grace: %v", err)
	}
	if doc == nil {
		t.Fatal("pending clear removed the replacement session's record")
	}
	if doc.SessionID != second.SessionID {
		t.Errorf("SessionID = %q, want %q", doc.SessionID, second.SessionID)
	}
}

// failingAggregator fails a set number of times before delegating.
type failingAggregator struct {
	inner    Aggregator
	failures int
	calls    int
}

func (f *failingAggregator) Aggregate(ctx context.Context, c mastery.Completion) error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("storage unavailable")
	}
	return f.inner.Aggregate(ctx, c)
}

func TestFinishRetryAfterAggregationFailure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	failing := &failingAggregator{inner: h.engine.aggregator, failures: 1}
	h.engine.aggregator = failing

	state, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// Answer everything, but the final Next fails at aggregation.
	for range state.Questions {
		h.oracle.AddVerdict(verdict(1))
		if err := h.engine.Submit(ctx, state, "an answer"); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if state.CurrentIndex+1 < len(state.Questions) {
			if err := h.engine.Next(ctx, state); err != nil {
				t.Fatalf("next: %v", err)
			}
		}
	}
	if err := h.engine.Next(ctx, state); err == nil {
		t.Fatal("expected aggregation failure from final next")
	}

	// The session survives for a retry.
	if state.Phase != PhaseShowingFeedback {
		t.Errorf("Phase = %v, want %v", state.Phase, PhaseShowingFeedback)
	}
	doc, err := h.store.SessionRepo().Load(ctx, state.Key)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc == nil {
		t.Fatal("expected session record to survive failed aggregation")
	}

	// The retry completes the session.
	if err := h.engine.Next(ctx, state); err != nil {
		t.Fatalf("retry next: %v", err)
	}
	if state.Phase != PhaseComplete {
		t.Errorf("Phase = %v, want %v", state.Phase, PhaseComplete)
	}
	if failing.calls != 2 {
		t.Errorf("aggregator calls = %d, want 2", failing.calls)
	}
}

func TestFinishIsIdempotent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	failing := &failingAggregator{inner: h.engine.aggregator}
	h.engine.aggregator = failing

	state, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	runSession(t, h, state, map[string]int{"q1": 2, "q2": 3, "q3": 5})

	// A repeated finish must not aggregate again.
	if err := h.engine.Finish(ctx, state); err != nil {
		t.Fatalf("second finish: %v", err)
	}
	if failing.calls != 1 {
		t.Errorf("aggregator calls = %d, want 1", failing.calls)
	}
}

func TestResumeRestoresSession(t *testing.T) {
	h := newHarness(t, verdict(1), verdict(2))
	ctx := context.Background()

	state, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := h.engine.Submit(ctx, state, "answer one"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := h.engine.Next(ctx, state); err != nil {
		t.Fatalf("next: %v", err)
	}
	if err := h.engine.Submit(ctx, state, "answer two"); err != nil {
		t.Fatalf("submit two: %v", err)
	}

	// A new start for the same key resumes, not restarts.
	resumed, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.SessionID != state.SessionID {
		t.Errorf("SessionID = %q, want resumed %q", resumed.SessionID, state.SessionID)
	}
	if resumed.CurrentIndex != state.CurrentIndex {
		t.Errorf("CurrentIndex = %d, want %d", resumed.CurrentIndex, state.CurrentIndex)
	}
	if resumed.Phase != PhaseShowingFeedback {
		t.Errorf("Phase = %v, want %v", resumed.Phase, PhaseShowingFeedback)
	}
	for i, q := range state.Questions {
		if resumed.Questions[i].ID != q.ID {
			t.Errorf("Questions[%d] = %s, want %s", i, resumed.Questions[i].ID, q.ID)
		}
	}
	if got := len(resumed.Ledger.History()); got != 2 {
		t.Errorf("len(history) = %d, want 2", got)
	}
}

func TestResumeDropsDeadQuestions(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	// Persist a session referencing a question that no longer exists.
	key := store.SessionKey{UserID: "user-1", SubjectID: "biology", TopicID: "cell-biology"}
	doc := &store.SessionDocument{
		Key:          key,
		SessionID:    "sess-old",
		QuestionIDs:  []string{"q2", "removed-question", "q1"},
		CurrentIndex: 2,
		StartedAt:    time.Now().Add(-time.Hour),
		LastSaved:    time.Now(),
	}
	if err := h.store.SessionRepo().Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	state, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if state.SessionID != "sess-old" {
		t.Fatalf("SessionID = %q, want resumed %q", state.SessionID, "sess-old")
	}
	if len(state.Questions) != 2 {
		t.Fatalf("len(Questions) = %d, want 2", len(state.Questions))
	}
	if state.Questions[0].ID != "q2" || state.Questions[1].ID != "q1" {
		t.Errorf("question order = [%s %s], want [q2 q1]",
			state.Questions[0].ID, state.Questions[1].ID)
	}
	// The index is clamped into the shortened order.
	if state.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want clamped 1", state.CurrentIndex)
	}
}

// blockingClient parks Grade until released, to exercise the in-flight
// guard.
type blockingClient struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingClient) Grade(context.Context, oracle.Request) (*oracle.Result, error) {
	close(b.entered)
	<-b.release
	return &oracle.Result{MarksAwarded: 1, Assessment: "good"}, nil
}

func (b *blockingClient) ModelID() string { return "blocking" }

func TestDoubleSubmitRejected(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	blocking := &blockingClient{entered: make(chan struct{}), release: make(chan struct{})}
	h.engine.grader = grading.NewAdapter(blocking, nil)

	state, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	firstDone := make(chan error, 1)
	go func() { firstDone <- h.engine.Submit(ctx, state, "slow answer") }()

	<-blocking.entered
	if err := h.engine.Submit(ctx, state, "second answer"); !errors.Is(err, ErrGradeInFlight) {
		t.Errorf("second submit err = %v, want ErrGradeInFlight", err)
	}

	close(blocking.release)
	if err := <-firstDone; err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if got := len(state.Ledger.History()); got != 1 {
		t.Errorf("len(history) = %d, want 1", got)
	}
}

// failingSessionRepo fails every write but supports reads.
type failingSessionRepo struct {
	store.SessionRepo
}

func (f *failingSessionRepo) Save(context.Context, *store.SessionDocument) error {
	return errors.New("disk full")
}

func TestSaveFailureDoesNotBlockSession(t *testing.T) {
	h := newHarness(t, verdict(1))
	ctx := context.Background()

	h.engine.sessions = &failingSessionRepo{SessionRepo: h.store.SessionRepo()}

	state, err := h.engine.Start(ctx, "user-1", testSubject(), testTopic())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := h.engine.Submit(ctx, state, "an answer"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if state.Phase != PhaseShowingFeedback {
		t.Errorf("Phase = %v, want %v despite failed save", state.Phase, PhaseShowingFeedback)
	}
}
