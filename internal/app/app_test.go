package app

import (
	"context"
	"strings"
	"testing"

	"github.com/revisely/revisely/internal/curriculum"
	"github.com/revisely/revisely/internal/grading"
	"github.com/revisely/revisely/internal/mastery"
	"github.com/revisely/revisely/internal/oracle"
	"github.com/revisely/revisely/internal/pool"
	"github.com/revisely/revisely/internal/session"
	"github.com/revisely/revisely/internal/store"
)

func testEngine(t *testing.T, verdicts ...oracle.MockVerdict) *session.Engine {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	e := session.NewEngine(
		pool.New(nil),
		grading.NewAdapter(oracle.NewMockClient(verdicts...), nil),
		s.SessionRepo(),
		s.EventRepo(),
		mastery.NewAggregator(s.ProgressRepo(), nil),
		nil,
		nil,
	)
	e.GraceDelay = 0
	return e
}

func testOptions(t *testing.T, engine *session.Engine, input string, out *strings.Builder) Options {
	t.Helper()
	return Options{
		Engine: engine,
		UserID: "user-1",
		Subject: &curriculum.Subject{
			ID: "biology", Name: "Biology", ExamBoard: "AQA",
		},
		Topic: curriculum.Topic{
			ID:   "cell-biology",
			Name: "Cell Biology",
			Questions: []curriculum.Question{
				{ID: "q1", Text: "Name the site of respiration.", Marks: 2, ModelAnswer: "The mitochondria."},
			},
		},
		In:  strings.NewReader(input),
		Out: out,
	}
}

func TestRunCompletesSession(t *testing.T) {
	engine := testEngine(t, oracle.MockVerdict{
		Result: &oracle.Result{MarksAwarded: 2, Feedback: "Spot on.", Assessment: "excellent"},
	})

	var out strings.Builder
	opts := testOptions(t, engine, "the mitochondria\nnext\n", &out)

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "2/2 marks (excellent)") {
		t.Errorf("output missing feedback line:\n%s", got)
	}
	if !strings.Contains(got, "Session complete: 2/2 marks") {
		t.Errorf("output missing completion summary:\n%s", got)
	}
}

func TestRunQuitLeavesSessionResumable(t *testing.T) {
	engine := testEngine(t)

	var out strings.Builder
	opts := testOptions(t, engine, "quit\n", &out)

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Session saved") {
		t.Errorf("output missing save notice:\n%s", out.String())
	}
}

func TestRunNoContentTopic(t *testing.T) {
	engine := testEngine(t)

	var out strings.Builder
	opts := testOptions(t, engine, "", &out)
	opts.Topic = curriculum.Topic{
		ID:   "graphs",
		Name: "Graph Skills",
		Questions: []curriculum.Question{
			{ID: "g1", Text: "Draw a graph of the data.", Marks: 4},
		},
	}

	if err := Run(context.Background(), opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "No gradeable questions") {
		t.Errorf("output missing no-content notice:\n%s", out.String())
	}
}
