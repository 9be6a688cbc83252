package session

import (
	"time"

	"github.com/revisely/revisely/internal/curriculum"
)

// Feedback is what the learner sees after an attempt is graded.
type Feedback struct {
	ModelAnswer   string
	CriteriaText  string
	Critique      string
	SpecReference string
}

// Attempt records one graded submission. A retry produces a new Attempt
// for the same question; the earlier one stays in the ledger marked
// superseded and stops counting towards totals.
type Attempt struct {
	QuestionID     string
	UserAnswer     string
	MarksAwarded   int
	MarksAvailable int
	Assessment     string
	Feedback       Feedback
	Superseded     bool
	SubmittedAt    time.Time
}

// Ledger is the in-memory attempt history for one session. Appends keep
// every attempt but only the latest per question scores.
type Ledger struct {
	attempts []Attempt
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// RestoreLedger rebuilds a ledger from persisted attempts, preserving
// their order and superseded flags.
func RestoreLedger(attempts []Attempt) *Ledger {
	l := &Ledger{attempts: make([]Attempt, len(attempts))}
	copy(l.attempts, attempts)
	return l
}

// Append records an attempt, superseding any earlier current attempt
// for the same question.
func (l *Ledger) Append(a Attempt) {
	for i := range l.attempts {
		if l.attempts[i].QuestionID == a.QuestionID {
			l.attempts[i].Superseded = true
		}
	}
	l.attempts = append(l.attempts, a)
}

// Current returns the scoring attempt for a question, or nil if the
// question has not been attempted.
func (l *Ledger) Current(questionID string) *Attempt {
	for i := range l.attempts {
		if l.attempts[i].QuestionID == questionID && !l.attempts[i].Superseded {
			return &l.attempts[i]
		}
	}
	return nil
}

// History returns every attempt in submission order, superseded ones
// included.
func (l *Ledger) History() []Attempt {
	out := make([]Attempt, len(l.attempts))
	copy(out, l.attempts)
	return out
}

// TotalMarksEarned sums the current attempt per distinct question.
func (l *Ledger) TotalMarksEarned() int {
	total := 0
	for i := range l.attempts {
		if !l.attempts[i].Superseded {
			total += l.attempts[i].MarksAwarded
		}
	}
	return total
}

// TotalMarksAvailable sums the marks of every question in the session,
// attempted or not.
func (l *Ledger) TotalMarksAvailable(questions []curriculum.Question) int {
	total := 0
	for i := range questions {
		total += questions[i].Marks
	}
	return total
}

// CountCorrect counts current attempts that earned full marks.
func (l *Ledger) CountCorrect() int {
	count := 0
	for i := range l.attempts {
		a := &l.attempts[i]
		if !a.Superseded && a.MarksAwarded == a.MarksAvailable {
			count++
		}
	}
	return count
}

// CountPartial counts current attempts that earned some but not all
// marks.
func (l *Ledger) CountPartial() int {
	count := 0
	for i := range l.attempts {
		a := &l.attempts[i]
		if !a.Superseded && a.MarksAwarded > 0 && a.MarksAwarded < a.MarksAvailable {
			count++
		}
	}
	return count
}

// QuestionsAnswered counts distinct questions with a current attempt.
func (l *Ledger) QuestionsAnswered() int {
	count := 0
	for i := range l.attempts {
		if !l.attempts[i].Superseded {
			count++
		}
	}
	return count
}
