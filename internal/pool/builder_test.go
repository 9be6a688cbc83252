package pool

import (
	"testing"

	"github.com/revisely/revisely/internal/curriculum"
)

func q(id, text string) curriculum.Question {
	return curriculum.Question{ID: id, Text: text, Marks: 2}
}

func TestFilterRemovesVisualQuestions(t *testing.T) {
	b := New(nil)

	questions := []curriculum.Question{
		q("q1", "Describe the process of osmosis."),
		q("q2", "Draw a diagram of a plant cell."),
		q("q3", "Sketch the distance-time graph for the journey."),
		q("q4", "Explain why metals conduct electricity."),
		q("q5", "Using the table below, calculate the mean."),
	}

	got := b.Filter(questions)
	if len(got) != 2 {
		t.Fatalf("filtered length = %d, want 2", len(got))
	}
	if got[0].ID != "q1" || got[1].ID != "q4" {
		t.Errorf("kept %s, %s; want q1, q4", got[0].ID, got[1].ID)
	}
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	b := New(nil)
	got := b.Filter([]curriculum.Question{q("q1", "DRAW a labelled DIAGRAM.")})
	if len(got) != 0 {
		t.Errorf("filtered length = %d, want 0", len(got))
	}
}

func TestBuildPreservesQuestionSet(t *testing.T) {
	b := New(nil)
	topic := curriculum.Topic{
		ID: "t1",
		Questions: []curriculum.Question{
			q("q1", "Define respiration."),
			q("q2", "State Newton's first law."),
			q("q3", "Explain diffusion."),
			q("q4", "Define an isotope."),
		},
	}

	got := b.Build(topic)
	if len(got) != 4 {
		t.Fatalf("built length = %d, want 4", len(got))
	}

	seen := make(map[string]bool)
	for _, question := range got {
		if seen[question.ID] {
			t.Errorf("duplicate question %s in built order", question.ID)
		}
		seen[question.ID] = true
	}
	for _, id := range []string{"q1", "q2", "q3", "q4"} {
		if !seen[id] {
			t.Errorf("question %s missing from built order", id)
		}
	}
}

func TestBuildAllVisualYieldsEmpty(t *testing.T) {
	b := New(nil)
	topic := curriculum.Topic{
		ID: "t1",
		Questions: []curriculum.Question{
			q("q1", "Draw the circuit."),
			q("q2", "Complete the diagram."),
		},
	}

	if got := b.Build(topic); len(got) != 0 {
		t.Errorf("built length = %d, want 0", len(got))
	}
}

func TestResolveDropsDeadAndVisualIDs(t *testing.T) {
	b := New(nil)
	topic := curriculum.Topic{
		ID: "t1",
		Questions: []curriculum.Question{
			q("q1", "Define respiration."),
			q("q2", "Draw the cell."), // text changed since the session was saved
			q("q3", "Explain diffusion."),
		},
	}

	got := b.Resolve(topic, []string{"q3", "q-retired", "q2", "q1"})
	if len(got) != 2 {
		t.Fatalf("resolved length = %d, want 2", len(got))
	}
	// Persisted order preserved.
	if got[0].ID != "q3" || got[1].ID != "q1" {
		t.Errorf("resolved order = %s, %s; want q3, q1", got[0].ID, got[1].ID)
	}
}

func TestCustomDenylist(t *testing.T) {
	b := New([]string{"essay"})
	got := b.Filter([]curriculum.Question{
		q("q1", "Write an essay on enzymes."),
		q("q2", "Draw a diagram."), // custom list replaces the default
	})
	if len(got) != 1 || got[0].ID != "q2" {
		t.Errorf("custom denylist not applied: got %d questions", len(got))
	}
}
