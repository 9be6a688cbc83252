package curriculum

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSeedRegistryValid(t *testing.T) {
	subjects := Subjects()
	if len(subjects) == 0 {
		t.Fatal("seed curriculum has no subjects")
	}

	for _, s := range subjects {
		if s.ExamBoard == "" {
			t.Errorf("subject %q has no exam board", s.ID)
		}
		for _, topic := range s.Topics {
			if len(topic.Questions) == 0 {
				t.Errorf("topic %q has no questions", topic.ID)
			}
			for _, q := range topic.Questions {
				if q.Marks <= 0 {
					t.Errorf("question %q: marks = %d, want > 0", q.ID, q.Marks)
				}
				if len(q.MarkingCriteria) == 0 {
					t.Errorf("question %q has no marking criteria", q.ID)
				}
			}
		}
	}
}

func TestGetTopic(t *testing.T) {
	topic, err := GetTopic("bio-cell-structure")
	if err != nil {
		t.Fatalf("get topic: %v", err)
	}
	if topic.Name != "Cell Structure" {
		t.Errorf("name = %q, want Cell Structure", topic.Name)
	}

	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("expected error for unknown topic")
	}
}

func TestFindQuestion(t *testing.T) {
	topic, err := GetTopic("chem-atomic-structure")
	if err != nil {
		t.Fatalf("get topic: %v", err)
	}

	if _, ok := topic.FindQuestion("chem-as-01"); !ok {
		t.Error("expected to find chem-as-01")
	}
	if _, ok := topic.FindQuestion("retired-question"); ok {
		t.Error("found a question that does not exist")
	}
}

func TestBuildRegistryRejectsDuplicates(t *testing.T) {
	tests := []struct {
		name     string
		subjects []Subject
	}{
		{
			name: "duplicate subject",
			subjects: []Subject{
				{ID: "s1", Name: "A"},
				{ID: "s1", Name: "B"},
			},
		},
		{
			name: "duplicate topic",
			subjects: []Subject{
				{ID: "s1", Name: "A", Topics: []Topic{{ID: "t1"}, {ID: "t1"}}},
			},
		},
		{
			name: "duplicate question",
			subjects: []Subject{
				{ID: "s1", Name: "A", Topics: []Topic{{
					ID: "t1",
					Questions: []Question{
						{ID: "q1", Text: "a", Marks: 1},
						{ID: "q1", Text: "b", Marks: 1},
					},
				}}},
			},
		},
		{
			name: "zero marks",
			subjects: []Subject{
				{ID: "s1", Name: "A", Topics: []Topic{{
					ID:        "t1",
					Questions: []Question{{ID: "q1", Text: "a", Marks: 0}},
				}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := buildRegistry(tt.subjects); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadNormalizesStringEncodedTopics(t *testing.T) {
	// Older exports carried topics as a JSON-encoded string.
	doc := `[{
		"id": "physics",
		"name": "Physics",
		"exam_board": "OCR",
		"topics": "[{\"id\":\"phy-forces\",\"name\":\"Forces\",\"questions\":[{\"id\":\"q1\",\"text\":\"Define a newton.\",\"marks\":1,\"model_answer\":\"The force giving 1 kg an acceleration of 1 m/s2.\",\"marking_criteria\":[\"Correct definition\"],\"spec_reference\":\"1.1\"}]}]"
	}]`

	path := filepath.Join(t.TempDir(), "curriculum.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	prev := reg
	t.Cleanup(func() { reg = prev })

	if err := Load(path); err != nil {
		t.Fatalf("load: %v", err)
	}

	topic, err := GetTopic("phy-forces")
	if err != nil {
		t.Fatalf("get topic after load: %v", err)
	}
	if len(topic.Questions) != 1 {
		t.Errorf("questions = %d, want 1", len(topic.Questions))
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"not": "an array"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	prev := reg
	if err := Load(path); err == nil {
		t.Error("expected parse error")
	}
	if reg != prev {
		t.Error("failed load must leave the registry untouched")
	}
}
