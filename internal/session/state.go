package session

import (
	"sync/atomic"
	"time"

	"github.com/revisely/revisely/internal/curriculum"
	"github.com/revisely/revisely/internal/store"
)

// Phase is the session state machine's current state.
type Phase int

const (
	// PhaseAwaitingAnswer means the current question is shown and the
	// learner is composing an answer.
	PhaseAwaitingAnswer Phase = iota

	// PhaseShowingFeedback means the current question has a graded
	// attempt on display.
	PhaseShowingFeedback

	// PhaseComplete is terminal: every question is behind the learner
	// and the completion has been aggregated.
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAnswer:
		return "awaiting-answer"
	case PhaseShowingFeedback:
		return "showing-feedback"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// State is the runtime state of one practice session. It is mutated
// only by the Engine.
type State struct {
	// Key identifies the session's owner, subject and topic.
	Key store.SessionKey

	// SessionID is the UUID grouping this session's events.
	SessionID string

	// SubjectName and ExamBoard come from the curriculum and feed the
	// grading prompt and the aggregator.
	SubjectName string
	ExamBoard   string

	// Questions is the session's frozen question order.
	Questions []curriculum.Question

	// CurrentIndex points at the question on screen.
	CurrentIndex int

	// UserAnswer is the answer text for the current question: the
	// draft while answering, the submitted text while showing feedback.
	UserAnswer string

	// Phase is the state machine position.
	Phase Phase

	// Ledger holds every attempt of this session.
	Ledger *Ledger

	// StartedAt is when the session was first created, surviving
	// resume.
	StartedAt time.Time

	// AggregatedAt is set once the mastery aggregator has processed
	// this session's completion.
	AggregatedAt *time.Time

	// gradeInFlight guards against a double submit while a grade
	// request is running.
	gradeInFlight atomic.Bool
}

// CurrentQuestion returns the question on screen.
func (s *State) CurrentQuestion() *curriculum.Question {
	return &s.Questions[s.CurrentIndex]
}

// CurrentAttempt returns the scoring attempt for the question on
// screen, or nil if it has not been attempted.
func (s *State) CurrentAttempt() *Attempt {
	return s.Ledger.Current(s.CurrentQuestion().ID)
}

// document converts the state to its persisted form.
func (s *State) document(now time.Time) *store.SessionDocument {
	ids := make([]string, len(s.Questions))
	for i := range s.Questions {
		ids[i] = s.Questions[i].ID
	}

	history := s.Ledger.History()
	attempts := make([]store.AttemptDoc, len(history))
	for i, a := range history {
		attempts[i] = store.AttemptDoc{
			QuestionID:     a.QuestionID,
			UserAnswer:     a.UserAnswer,
			MarksAwarded:   a.MarksAwarded,
			MarksAvailable: a.MarksAvailable,
			Assessment:     a.Assessment,
			Feedback: store.FeedbackDoc{
				ModelAnswer:   a.Feedback.ModelAnswer,
				CriteriaText:  a.Feedback.CriteriaText,
				Critique:      a.Feedback.Critique,
				SpecReference: a.Feedback.SpecReference,
			},
			Superseded:  a.Superseded,
			SubmittedAt: a.SubmittedAt,
		}
	}

	return &store.SessionDocument{
		Key:          s.Key,
		SessionID:    s.SessionID,
		QuestionIDs:  ids,
		CurrentIndex: s.CurrentIndex,
		UserAnswer:   s.UserAnswer,
		ShowFeedback: s.Phase == PhaseShowingFeedback,
		Attempts:     attempts,
		StartedAt:    s.StartedAt,
		LastSaved:    now,
		AggregatedAt: s.AggregatedAt,
	}
}

// restoreAttempts converts persisted attempts back to ledger entries.
func restoreAttempts(docs []store.AttemptDoc) []Attempt {
	attempts := make([]Attempt, len(docs))
	for i, d := range docs {
		attempts[i] = Attempt{
			QuestionID:     d.QuestionID,
			UserAnswer:     d.UserAnswer,
			MarksAwarded:   d.MarksAwarded,
			MarksAvailable: d.MarksAvailable,
			Assessment:     d.Assessment,
			Feedback: Feedback{
				ModelAnswer:   d.Feedback.ModelAnswer,
				CriteriaText:  d.Feedback.CriteriaText,
				Critique:      d.Feedback.Critique,
				SpecReference: d.Feedback.SpecReference,
			},
			Superseded:  d.Superseded,
			SubmittedAt: d.SubmittedAt,
		}
	}
	return attempts
}
