package notify

import (
	"context"
	"sync"
)

// Recording is a Notifier that captures everything sent through it, for
// tests. It can be made to fail on demand.
type Recording struct {
	mu          sync.Mutex
	notes       []NoteRequest
	completions []CompletionReport

	// Err, when set, is returned by both methods. Calls are still
	// recorded.
	Err error
}

func (r *Recording) NoteLostMarks(_ context.Context, req NoteRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, req)
	return r.Err
}

func (r *Recording) ReportCompletion(_ context.Context, report CompletionReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completions = append(r.completions, report)
	return r.Err
}

// Notes returns a copy of the recorded note requests.
func (r *Recording) Notes() []NoteRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]NoteRequest, len(r.notes))
	copy(out, r.notes)
	return out
}

// Completions returns a copy of the recorded completion reports.
func (r *Recording) Completions() []CompletionReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]CompletionReport, len(r.completions))
	copy(out, r.completions)
	return out
}
