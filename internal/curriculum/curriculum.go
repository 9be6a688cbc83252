package curriculum

import (
	"fmt"
	"sort"
)

// Question is a single exam-style question. Questions are immutable:
// the engine reads them from the curriculum and never writes back.
type Question struct {
	ID              string   `json:"id"`
	Text            string   `json:"text"`
	Marks           int      `json:"marks"`
	ModelAnswer     string   `json:"model_answer"`
	MarkingCriteria []string `json:"marking_criteria"`
	SpecReference   string   `json:"spec_reference"`
}

// Topic groups the questions for one area of a subject.
type Topic struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Subject is a course of study with an exam board and a set of topics.
type Subject struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ExamBoard string  `json:"exam_board"`
	Topics    []Topic `json:"topics"`
}

// registry holds the loaded curriculum with lookup indices.
type registry struct {
	subjects  []Subject
	byID      map[string]*Subject
	topicByID map[string]*Topic // topic IDs are globally unique
}

// reg is the package-level registry singleton, set by init() in seed.go
// and replaced by Load.
var reg *registry

func buildRegistry(subjects []Subject) (*registry, error) {
	r := &registry{
		subjects:  subjects,
		byID:      make(map[string]*Subject, len(subjects)),
		topicByID: make(map[string]*Topic),
	}

	for i := range r.subjects {
		s := &r.subjects[i]
		if s.ID == "" {
			return nil, fmt.Errorf("subject %q has empty ID", s.Name)
		}
		if _, dup := r.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate subject ID %q", s.ID)
		}
		r.byID[s.ID] = s

		for j := range s.Topics {
			t := &s.Topics[j]
			if t.ID == "" {
				return nil, fmt.Errorf("topic %q in subject %q has empty ID", t.Name, s.ID)
			}
			if _, dup := r.topicByID[t.ID]; dup {
				return nil, fmt.Errorf("duplicate topic ID %q", t.ID)
			}
			r.topicByID[t.ID] = t

			seen := make(map[string]bool, len(t.Questions))
			for _, q := range t.Questions {
				if q.ID == "" {
					return nil, fmt.Errorf("topic %q has a question with empty ID", t.ID)
				}
				if seen[q.ID] {
					return nil, fmt.Errorf("duplicate question ID %q in topic %q", q.ID, t.ID)
				}
				seen[q.ID] = true
				if q.Marks <= 0 {
					return nil, fmt.Errorf("question %q has non-positive marks %d", q.ID, q.Marks)
				}
			}
		}
	}

	return r, nil
}

// Subjects returns all subjects sorted by name.
func Subjects() []Subject {
	out := make([]Subject, len(reg.subjects))
	copy(out, reg.subjects)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// GetSubject returns the subject with the given ID.
func GetSubject(id string) (Subject, error) {
	s, ok := reg.byID[id]
	if !ok {
		return Subject{}, fmt.Errorf("unknown subject: %q", id)
	}
	return *s, nil
}

// GetTopic returns the topic with the given ID from any subject.
func GetTopic(id string) (Topic, error) {
	t, ok := reg.topicByID[id]
	if !ok {
		return Topic{}, fmt.Errorf("unknown topic: %q", id)
	}
	return *t, nil
}

// FindQuestion returns the question with the given ID within a topic,
// or false if the topic no longer carries it.
func (t Topic) FindQuestion(id string) (Question, bool) {
	for _, q := range t.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
