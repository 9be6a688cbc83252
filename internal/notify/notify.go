// Package notify reports session facts to external collaborators: the
// note-generation service that writes revision notes for dropped marks,
// and the reward ledger that decides point awards. Both directions are
// best-effort; a failed notification never fails the session.
package notify

import "context"

// NoteRequest asks the note service to generate a revision note for a
// question the learner lost marks on.
type NoteRequest struct {
	UserID     string `json:"user_id"`
	QuestionID string `json:"question_id"`
	Question   string `json:"question"`
	UserAnswer string `json:"user_answer"`
	MarksLost  int    `json:"marks_lost"`
	SubjectID  string `json:"subject_id"`
	TopicID    string `json:"topic_id"`
}

// CompletionReport states the facts of a finished session. The reward
// ledger computes point awards on its own; the core only reports.
type CompletionReport struct {
	UserID      string `json:"user_id"`
	SubjectID   string `json:"subject_id"`
	TopicID     string `json:"topic_id"`
	SessionID   string `json:"session_id"`
	MarksEarned int    `json:"marks_earned"`
	TotalMarks  int    `json:"total_marks"`
}

// Notifier delivers session facts to external collaborators. Both
// methods are fire-and-forget from the caller's point of view: errors
// are for the implementation's own logging, and callers must treat them
// as non-fatal.
type Notifier interface {
	// NoteLostMarks requests a revision note for a mark-losing attempt.
	NoteLostMarks(ctx context.Context, req NoteRequest) error

	// ReportCompletion reports a completed session to the reward ledger.
	ReportCompletion(ctx context.Context, report CompletionReport) error
}

// Noop is a Notifier that does nothing, for setups without a broker.
type Noop struct{}

func (Noop) NoteLostMarks(context.Context, NoteRequest) error         { return nil }
func (Noop) ReportCompletion(context.Context, CompletionReport) error { return nil }
