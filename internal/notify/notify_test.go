package notify

import (
	"context"
	"errors"
	"testing"
)

func TestNoopNeverFails(t *testing.T) {
	var n Noop
	ctx := context.Background()

	if err := n.NoteLostMarks(ctx, NoteRequest{UserID: "user-1"}); err != nil {
		t.Errorf("NoteLostMarks: %v", err)
	}
	if err := n.ReportCompletion(ctx, CompletionReport{UserID: "user-1"}); err != nil {
		t.Errorf("ReportCompletion: %v", err)
	}
}

func TestRecordingCaptures(t *testing.T) {
	r := &Recording{}
	ctx := context.Background()

	req := NoteRequest{UserID: "user-1", QuestionID: "q1", MarksLost: 2}
	if err := r.NoteLostMarks(ctx, req); err != nil {
		t.Fatalf("NoteLostMarks: %v", err)
	}
	report := CompletionReport{UserID: "user-1", MarksEarned: 8, TotalMarks: 10}
	if err := r.ReportCompletion(ctx, report); err != nil {
		t.Fatalf("ReportCompletion: %v", err)
	}

	notes := r.Notes()
	if len(notes) != 1 || notes[0] != req {
		t.Errorf("Notes() = %+v, want [%+v]", notes, req)
	}
	completions := r.Completions()
	if len(completions) != 1 || completions[0] != report {
		t.Errorf("Completions() = %+v, want [%+v]", completions, report)
	}
}

func TestRecordingFailsOnDemand(t *testing.T) {
	wantErr := errors.New("broker down")
	r := &Recording{Err: wantErr}

	err := r.NoteLostMarks(context.Background(), NoteRequest{})
	if !errors.Is(err, wantErr) {
		t.Errorf("NoteLostMarks error = %v, want %v", err, wantErr)
	}
	// The call is still recorded.
	if len(r.Notes()) != 1 {
		t.Errorf("len(Notes()) = %d, want 1", len(r.Notes()))
	}
}
