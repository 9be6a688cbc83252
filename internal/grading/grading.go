// Package grading turns a question and a candidate answer into a verdict
// the session engine can always rely on. It wraps an oracle.Client and
// absorbs every oracle failure with a heuristic fallback, so Grade never
// returns an error.
package grading

import (
	"context"
	"log/slog"
	"math"

	"github.com/revisely/revisely/internal/curriculum"
	"github.com/revisely/revisely/internal/oracle"
)

// AssessmentDegraded marks a verdict produced by the fallback heuristic
// instead of the oracle, so the caller can surface that grading was
// unavailable without failing the session.
const AssessmentDegraded = "unavailable"

// fallbackFeedback is shown when the oracle could not mark the answer.
const fallbackFeedback = "We couldn't mark this answer automatically right now. " +
	"Compare your answer with the model answer below and keep going."

// Verdict is the grading outcome for one submitted answer. Marks are
// always within [0, question marks], whatever path produced them.
type Verdict struct {
	MarksAwarded int
	Feedback     string
	Assessment   string

	// Degraded reports whether the verdict came from the fallback.
	Degraded bool
}

// Adapter grades answers through an oracle client, falling back to the
// heuristic when the oracle fails.
type Adapter struct {
	client oracle.Client
	logger *slog.Logger
}

// NewAdapter wraps client. A nil logger discards log output.
func NewAdapter(client oracle.Client, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{client: client, logger: logger}
}

// Grade marks answer against q. It never returns an error: oracle
// failures produce a degraded Verdict via the fallback heuristic.
func (a *Adapter) Grade(ctx context.Context, subject string, q *curriculum.Question, answer string) Verdict {
	res, err := a.client.Grade(ctx, oracle.Request{
		Question:        q.Text,
		UserAnswer:      answer,
		ModelAnswer:     q.ModelAnswer,
		MarkingCriteria: q.MarkingCriteria,
		TotalMarks:      q.Marks,
		Subject:         subject,
	})
	if err != nil {
		a.logger.Warn("grading oracle failed, using fallback",
			"question_id", q.ID,
			"error", err)
		return fallbackVerdict(answer, q.Marks)
	}

	return Verdict{
		MarksAwarded: clampMarks(res.MarksAwarded, q.Marks),
		Feedback:     res.Feedback,
		Assessment:   res.Assessment,
	}
}

// fallbackVerdict awards 30% of the available marks (rounded) for a
// substantial answer and 0 otherwise.
func fallbackVerdict(answer string, totalMarks int) Verdict {
	marks := 0
	if substantial(answer) {
		marks = int(math.Round(float64(totalMarks) * 0.3))
	}
	return Verdict{
		MarksAwarded: clampMarks(marks, totalMarks),
		Feedback:     fallbackFeedback,
		Assessment:   AssessmentDegraded,
		Degraded:     true,
	}
}

func clampMarks(marks, total int) int {
	if marks < 0 {
		return 0
	}
	if marks > total {
		return total
	}
	return marks
}
