package grading

import (
	"context"
	"testing"

	"github.com/revisely/revisely/internal/curriculum"
	"github.com/revisely/revisely/internal/oracle"
)

func testQuestion(marks int) *curriculum.Question {
	return &curriculum.Question{
		ID:              "q1",
		Text:            "Explain how plants make glucose.",
		Marks:           marks,
		ModelAnswer:     "Photosynthesis uses light energy to convert carbon dioxide and water into glucose.",
		MarkingCriteria: []string{"Names photosynthesis", "Mentions light energy", "Names reactants", "Names glucose as product"},
	}
}

func TestGradeUsesOracleVerdict(t *testing.T) {
	mock := oracle.NewMockClient(oracle.MockVerdict{
		Result: &oracle.Result{
			MarksAwarded: 3,
			Feedback:     "Good coverage, but name the reactants.",
			Assessment:   "good",
		},
	})
	a := NewAdapter(mock, nil)

	v := a.Grade(context.Background(), "biology", testQuestion(4), "Photosynthesis uses light to make glucose.")

	if v.MarksAwarded != 3 {
		t.Errorf("MarksAwarded = %d, want 3", v.MarksAwarded)
	}
	if v.Assessment != "good" {
		t.Errorf("Assessment = %q, want %q", v.Assessment, "good")
	}
	if v.Degraded {
		t.Error("Degraded = true, want false")
	}
	if mock.CallCount() != 1 {
		t.Errorf("oracle calls = %d, want 1", mock.CallCount())
	}
	if got := mock.Calls[0].TotalMarks; got != 4 {
		t.Errorf("request TotalMarks = %d, want 4", got)
	}
}

func TestGradeClampsOracleMarks(t *testing.T) {
	tests := []struct {
		name    string
		awarded int
		want    int
	}{
		{"above total", 7, 4},
		{"negative", -1, 0},
		{"within range", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := oracle.NewMockClient(oracle.MockVerdict{
				Result: &oracle.Result{MarksAwarded: tt.awarded, Assessment: "good"},
			})
			a := NewAdapter(mock, nil)

			v := a.Grade(context.Background(), "biology", testQuestion(4), "an answer")
			if v.MarksAwarded != tt.want {
				t.Errorf("MarksAwarded = %d, want %d", v.MarksAwarded, tt.want)
			}
		})
	}
}

func TestGradeFallbackSubstantialAnswer(t *testing.T) {
	// Empty queue makes the mock fail every call.
	mock := oracle.NewMockClient()
	a := NewAdapter(mock, nil)

	// 4 marks, substantial answer: 30% of 4 rounds to 1.
	v := a.Grade(context.Background(), "biology", testQuestion(4), "photosynthesis converts light energy")

	if v.MarksAwarded != 1 {
		t.Errorf("MarksAwarded = %d, want 1", v.MarksAwarded)
	}
	if v.Assessment != AssessmentDegraded {
		t.Errorf("Assessment = %q, want %q", v.Assessment, AssessmentDegraded)
	}
	if !v.Degraded {
		t.Error("Degraded = false, want true")
	}
	if v.Feedback == "" {
		t.Error("expected non-empty fallback feedback")
	}
}

func TestGradeFallbackRounding(t *testing.T) {
	tests := []struct {
		marks int
		want  int
	}{
		{1, 0},  // 0.3 rounds down
		{2, 1},  // 0.6 rounds up
		{4, 1},  // 1.2 rounds down
		{5, 2},  // 1.5 rounds up
		{6, 2},  // 1.8 rounds up
		{10, 3}, // 3.0 exact
	}

	for _, tt := range tests {
		mock := oracle.NewMockClient()
		a := NewAdapter(mock, nil)

		v := a.Grade(context.Background(), "biology", testQuestion(tt.marks), "a substantial answer")
		if v.MarksAwarded != tt.want {
			t.Errorf("marks=%d: MarksAwarded = %d, want %d", tt.marks, v.MarksAwarded, tt.want)
		}
	}
}

func TestGradeFallbackInsubstantialAnswer(t *testing.T) {
	mock := oracle.NewMockClient()
	a := NewAdapter(mock, nil)

	v := a.Grade(context.Background(), "biology", testQuestion(4), "ab")

	if v.MarksAwarded != 0 {
		t.Errorf("MarksAwarded = %d, want 0", v.MarksAwarded)
	}
	if !v.Degraded {
		t.Error("Degraded = false, want true")
	}
}

func TestSubstantial(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"empty", "", false},
		{"whitespace only", "   \t\n", false},
		{"too short", "ab", false},
		{"too short after trim", "  ab  ", false},
		{"digits only", "12345", false},
		{"punctuation only", "???!!!", false},
		{"minimal word", "cat", true},
		{"sentence", "the mitochondria is the powerhouse", true},
		{"unicode letters", "größer", true},
		{"mixed digits and letters", "2x larger", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := substantial(tt.answer); got != tt.want {
				t.Errorf("substantial(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}
