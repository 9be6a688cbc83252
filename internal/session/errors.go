package session

import "errors"

var (
	// ErrNoContent means the topic has no gradeable questions left
	// after filtering, so no session can start.
	ErrNoContent = errors.New("no practice content available for this topic")

	// ErrEmptyAnswer rejects a submission whose answer is blank after
	// trimming. The state is unchanged and the user is re-prompted.
	ErrEmptyAnswer = errors.New("answer is empty")

	// ErrGradeInFlight rejects a second submit for the same question
	// while a grade request is already running.
	ErrGradeInFlight = errors.New("a grade request is already in flight")

	// ErrNotAwaitingAnswer rejects submit outside the answering phase.
	ErrNotAwaitingAnswer = errors.New("session is not awaiting an answer")

	// ErrNotShowingFeedback rejects retry or next outside the feedback
	// phase.
	ErrNotShowingFeedback = errors.New("session is not showing feedback")

	// ErrSessionComplete rejects any transition on a finished session.
	ErrSessionComplete = errors.New("session is complete")

	// ErrInvalidIndex rejects a jump outside the question sequence.
	ErrInvalidIndex = errors.New("question index out of range")
)
