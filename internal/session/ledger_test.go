package session

import (
	"testing"
	"time"

	"github.com/revisely/revisely/internal/curriculum"
)

func attempt(questionID string, awarded, available int) Attempt {
	return Attempt{
		QuestionID:     questionID,
		UserAnswer:     "an answer",
		MarksAwarded:   awarded,
		MarksAvailable: available,
		SubmittedAt:    time.Now(),
	}
}

func TestLedgerAppendSupersedes(t *testing.T) {
	l := NewLedger()
	l.Append(attempt("q1", 1, 3))
	l.Append(attempt("q2", 2, 2))
	l.Append(attempt("q1", 3, 3)) // retry of q1

	history := l.History()
	if len(history) != 3 {
		t.Fatalf("len(history) = %d, want 3", len(history))
	}
	if !history[0].Superseded {
		t.Error("first q1 attempt not marked superseded")
	}
	if history[1].Superseded || history[2].Superseded {
		t.Error("current attempts marked superseded")
	}

	current := l.Current("q1")
	if current == nil {
		t.Fatal("expected current attempt for q1")
	}
	if current.MarksAwarded != 3 {
		t.Errorf("current q1 marks = %d, want 3", current.MarksAwarded)
	}
	if l.Current("q9") != nil {
		t.Error("expected nil current for unattempted question")
	}
}

func TestLedgerTotals(t *testing.T) {
	questions := []curriculum.Question{
		{ID: "q1", Marks: 2},
		{ID: "q2", Marks: 3},
		{ID: "q3", Marks: 5},
	}

	l := NewLedger()
	l.Append(attempt("q1", 2, 2)) // correct
	l.Append(attempt("q2", 1, 3)) // partial
	l.Append(attempt("q3", 0, 5)) // wrong

	if got := l.TotalMarksEarned(); got != 3 {
		t.Errorf("TotalMarksEarned = %d, want 3", got)
	}
	// Available marks cover every question, attempted or not.
	if got := l.TotalMarksAvailable(questions); got != 10 {
		t.Errorf("TotalMarksAvailable = %d, want 10", got)
	}
	if got := l.CountCorrect(); got != 1 {
		t.Errorf("CountCorrect = %d, want 1", got)
	}
	if got := l.CountPartial(); got != 1 {
		t.Errorf("CountPartial = %d, want 1", got)
	}
	if got := l.QuestionsAnswered(); got != 3 {
		t.Errorf("QuestionsAnswered = %d, want 3", got)
	}
}

func TestLedgerTotalsExcludeSuperseded(t *testing.T) {
	l := NewLedger()
	l.Append(attempt("q1", 1, 5))
	l.Append(attempt("q1", 5, 5)) // retry improved to full marks

	if got := l.TotalMarksEarned(); got != 5 {
		t.Errorf("TotalMarksEarned = %d, want 5", got)
	}
	if got := l.CountCorrect(); got != 1 {
		t.Errorf("CountCorrect = %d, want 1", got)
	}
	if got := l.CountPartial(); got != 0 {
		t.Errorf("CountPartial = %d, want 0", got)
	}
	if got := l.QuestionsAnswered(); got != 1 {
		t.Errorf("QuestionsAnswered = %d, want 1", got)
	}
}

func TestRestoreLedgerRoundTrip(t *testing.T) {
	l := NewLedger()
	l.Append(attempt("q1", 1, 3))
	l.Append(attempt("q1", 2, 3))

	restored := RestoreLedger(l.History())
	if len(restored.History()) != 2 {
		t.Fatalf("len(history) = %d, want 2", len(restored.History()))
	}
	if restored.TotalMarksEarned() != 2 {
		t.Errorf("TotalMarksEarned = %d, want 2", restored.TotalMarksEarned())
	}
}
