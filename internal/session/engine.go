// Package session runs one practice session: a frozen question order, a
// three-phase state machine, and an attempt ledger. The Engine owns the
// transitions; persistence, grading, aggregation and notification are
// injected collaborators.
package session

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/revisely/revisely/internal/curriculum"
	"github.com/revisely/revisely/internal/grading"
	"github.com/revisely/revisely/internal/mastery"
	"github.com/revisely/revisely/internal/notify"
	"github.com/revisely/revisely/internal/pool"
	"github.com/revisely/revisely/internal/store"
)

// DefaultGraceDelay is how long a completed session record stays in the
// store after aggregation, so the completion screen can still read it.
const DefaultGraceDelay = 30 * time.Second

// Aggregator folds a session completion into durable progress. A
// returned error means nothing was (fully) applied and the completion
// may be retried.
type Aggregator interface {
	Aggregate(ctx context.Context, c mastery.Completion) error
}

// Engine drives practice sessions through the state machine.
type Engine struct {
	pool       *pool.Builder
	grader     *grading.Adapter
	sessions   store.SessionRepo
	events     store.EventRepo
	aggregator Aggregator
	notifier   notify.Notifier
	logger     *slog.Logger

	// GraceDelay postpones clearing a completed session record. Zero
	// clears synchronously, which tests rely on.
	GraceDelay time.Duration

	now   func() time.Time
	newID func() string
}

// NewEngine wires an Engine. A nil logger discards log output; a nil
// notifier is replaced by notify.Noop.
func NewEngine(
	p *pool.Builder,
	grader *grading.Adapter,
	sessions store.SessionRepo,
	events store.EventRepo,
	aggregator Aggregator,
	notifier notify.Notifier,
	logger *slog.Logger,
) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Engine{
		pool:       p,
		grader:     grader,
		sessions:   sessions,
		events:     events,
		aggregator: aggregator,
		notifier:   notifier,
		logger:     logger,
		GraceDelay: DefaultGraceDelay,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Start resumes the persisted session for (user, subject, topic) or
// creates a fresh one. A persisted session whose question IDs no longer
// resolve against the live topic is discarded. Returns ErrNoContent
// when the topic has no gradeable questions.
func (e *Engine) Start(ctx context.Context, userID string, subject *curriculum.Subject, topic curriculum.Topic) (*State, error) {
	key := store.SessionKey{UserID: userID, SubjectID: subject.ID, TopicID: topic.ID}

	doc, err := e.sessions.Load(ctx, key)
	if err != nil {
		// A broken store degrades to a fresh session instead of
		// blocking the learner.
		e.logger.Warn("session load failed, starting fresh", "error", err)
		doc = nil
	}

	if doc != nil && doc.AggregatedAt == nil {
		questions := e.pool.Resolve(topic, doc.QuestionIDs)
		if len(questions) > 0 {
			return e.resume(subject, key, doc, questions), nil
		}
		e.logger.Info("persisted questions no longer resolve, starting fresh",
			"topic_id", topic.ID)
	}

	questions := e.pool.Build(topic)
	if len(questions) == 0 {
		return nil, ErrNoContent
	}

	state := &State{
		Key:         key,
		SessionID:   e.newID(),
		SubjectName: subject.Name,
		ExamBoard:   subject.ExamBoard,
		Questions:   questions,
		Phase:       PhaseAwaitingAnswer,
		Ledger:      NewLedger(),
		StartedAt:   e.now(),
	}
	e.save(ctx, state)
	return state, nil
}

func (e *Engine) resume(subject *curriculum.Subject, key store.SessionKey, doc *store.SessionDocument, questions []curriculum.Question) *State {
	state := &State{
		Key:          key,
		SessionID:    doc.SessionID,
		SubjectName:  subject.Name,
		ExamBoard:    subject.ExamBoard,
		Questions:    questions,
		CurrentIndex: doc.CurrentIndex,
		UserAnswer:   doc.UserAnswer,
		Phase:        PhaseAwaitingAnswer,
		Ledger:       RestoreLedger(restoreAttempts(doc.Attempts)),
		StartedAt:    doc.StartedAt,
		AggregatedAt: doc.AggregatedAt,
	}

	// Dropped questions may have shifted or shortened the order.
	if state.CurrentIndex >= len(questions) {
		state.CurrentIndex = len(questions) - 1
	}
	if doc.ShowFeedback && state.CurrentAttempt() != nil {
		state.Phase = PhaseShowingFeedback
	}
	return state
}

// Submit grades the answer for the current question and moves to the
// feedback phase. An empty answer or a submit outside the answering
// phase is rejected with the state unchanged.
func (e *Engine) Submit(ctx context.Context, state *State, answer string) error {
	if state.Phase == PhaseComplete {
		return ErrSessionComplete
	}
	if state.Phase != PhaseAwaitingAnswer {
		return ErrNotAwaitingAnswer
	}
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return ErrEmptyAnswer
	}
	if !state.gradeInFlight.CompareAndSwap(false, true) {
		return ErrGradeInFlight
	}
	defer state.gradeInFlight.Store(false)

	q := state.CurrentQuestion()
	verdict := e.grader.Grade(ctx, state.SubjectName, q, trimmed)

	attempt := Attempt{
		QuestionID:     q.ID,
		UserAnswer:     trimmed,
		MarksAwarded:   verdict.MarksAwarded,
		MarksAvailable: q.Marks,
		Assessment:     verdict.Assessment,
		Feedback: Feedback{
			ModelAnswer:   q.ModelAnswer,
			CriteriaText:  strings.Join(q.MarkingCriteria, "\n"),
			Critique:      verdict.Feedback,
			SpecReference: q.SpecReference,
		},
		SubmittedAt: e.now(),
	}
	state.Ledger.Append(attempt)
	state.UserAnswer = trimmed
	state.Phase = PhaseShowingFeedback

	if err := e.events.AppendAttempt(ctx, store.AttemptEventData{
		SessionID:      state.SessionID,
		UserID:         state.Key.UserID,
		SubjectID:      state.Key.SubjectID,
		TopicID:        state.Key.TopicID,
		QuestionID:     q.ID,
		UserAnswer:     trimmed,
		MarksAwarded:   verdict.MarksAwarded,
		MarksAvailable: q.Marks,
		Assessment:     verdict.Assessment,
	}); err != nil {
		e.logger.Warn("attempt event not recorded", "error", err)
	}

	if marksLost := q.Marks - verdict.MarksAwarded; marksLost > 0 {
		e.noteLostMarks(state, q, trimmed, marksLost)
	}

	e.save(ctx, state)
	return nil
}

// noteLostMarks requests a revision note in the background. Failures
// are logged and swallowed.
func (e *Engine) noteLostMarks(state *State, q *curriculum.Question, answer string, marksLost int) {
	req := notify.NoteRequest{
		UserID:     state.Key.UserID,
		QuestionID: q.ID,
		Question:   q.Text,
		UserAnswer: answer,
		MarksLost:  marksLost,
		SubjectID:  state.Key.SubjectID,
		TopicID:    state.Key.TopicID,
	}
	go func() {
		if err := e.notifier.NoteLostMarks(context.Background(), req); err != nil {
			e.logger.Warn("note request failed", "question_id", req.QuestionID, "error", err)
		}
	}()
}

// Retry returns to the answering phase for the current question. The
// superseded attempt stays in the ledger's history.
func (e *Engine) Retry(ctx context.Context, state *State) error {
	if state.Phase == PhaseComplete {
		return ErrSessionComplete
	}
	if state.Phase != PhaseShowingFeedback {
		return ErrNotShowingFeedback
	}

	state.UserAnswer = ""
	state.Phase = PhaseAwaitingAnswer
	e.save(ctx, state)
	return nil
}

// Next advances past the current question's feedback. On the last
// question it finishes the session instead: the completion is
// aggregated and the state becomes terminal. If aggregation fails the
// session stays on the last question's feedback so Next can be retried.
func (e *Engine) Next(ctx context.Context, state *State) error {
	if state.Phase == PhaseComplete {
		return ErrSessionComplete
	}
	if state.Phase != PhaseShowingFeedback {
		return ErrNotShowingFeedback
	}

	if state.CurrentIndex+1 >= len(state.Questions) {
		return e.Finish(ctx, state)
	}
	return e.land(ctx, state, state.CurrentIndex+1)
}

// Jump moves to an arbitrary question, landing in the feedback phase if
// it already has an attempt. Valid from any non-terminal state.
func (e *Engine) Jump(ctx context.Context, state *State, index int) error {
	if state.Phase == PhaseComplete {
		return ErrSessionComplete
	}
	if index < 0 || index >= len(state.Questions) {
		return ErrInvalidIndex
	}
	return e.land(ctx, state, index)
}

// land positions the session on a question, restoring any previous
// attempt's answer and feedback.
func (e *Engine) land(ctx context.Context, state *State, index int) error {
	state.CurrentIndex = index
	if a := state.CurrentAttempt(); a != nil {
		state.UserAnswer = a.UserAnswer
		state.Phase = PhaseShowingFeedback
	} else {
		state.UserAnswer = ""
		state.Phase = PhaseAwaitingAnswer
	}
	e.save(ctx, state)
	return nil
}

// Finish aggregates the completed session into durable progress and
// makes the state terminal. It runs the aggregator at most once per
// session: a retry after a failed aggregation picks up where it left
// off, and a second Finish after success only repeats the cleanup.
func (e *Engine) Finish(ctx context.Context, state *State) error {
	if state.AggregatedAt == nil {
		completion := mastery.Completion{
			UserID:            state.Key.UserID,
			SubjectID:         state.Key.SubjectID,
			ExamBoard:         state.ExamBoard,
			TopicID:           state.Key.TopicID,
			MarksEarned:       state.Ledger.TotalMarksEarned(),
			MarksAvailable:    state.Ledger.TotalMarksAvailable(state.Questions),
			QuestionsAnswered: state.Ledger.QuestionsAnswered(),
			Elapsed:           e.now().Sub(state.StartedAt),
			CompletedAt:       e.now(),
		}
		if err := e.aggregator.Aggregate(ctx, completion); err != nil {
			// The session record survives so Finish can be retried
			// without losing the ledger.
			return err
		}

		at := e.now()
		state.AggregatedAt = &at
		if err := e.sessions.MarkAggregated(ctx, state.Key, at); err != nil {
			e.logger.Warn("aggregated marker not persisted", "error", err)
		}

		report := notify.CompletionReport{
			UserID:      state.Key.UserID,
			SubjectID:   state.Key.SubjectID,
			TopicID:     state.Key.TopicID,
			SessionID:   state.SessionID,
			MarksEarned: completion.MarksEarned,
			TotalMarks:  completion.MarksAvailable,
		}
		go func() {
			if err := e.notifier.ReportCompletion(context.Background(), report); err != nil {
				e.logger.Warn("completion report failed", "session_id", report.SessionID, "error", err)
			}
		}()
	}

	state.Phase = PhaseComplete
	e.clearAfterGrace(state.Key, state.SessionID)
	return nil
}

// clearAfterGrace removes the session record once the completion screen
// has had time to read it. The clear is scoped to sessionID so a timer
// left over from a finished session cannot delete a newer session
// started for the same key in the meantime.
func (e *Engine) clearAfterGrace(key store.SessionKey, sessionID string) {
	drop := func() {
		if err := e.sessions.Clear(context.Background(), key, sessionID); err != nil {
			e.logger.Warn("session record not cleared", "error", err)
		}
	}
	if e.GraceDelay <= 0 {
		drop()
		return
	}
	time.AfterFunc(e.GraceDelay, drop)
}

// save persists the state. Persistence failures are logged, never
// fatal: the session keeps running in memory.
func (e *Engine) save(ctx context.Context, state *State) {
	if err := e.sessions.Save(ctx, state.document(e.now())); err != nil {
		e.logger.Warn("session save failed", "session_id", state.SessionID, "error", err)
	}
}
