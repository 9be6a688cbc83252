package curriculum

import (
	"encoding/json"
	"fmt"
	"os"
)

// fileSubject mirrors Subject for file loading, tolerating the two shapes
// the topics field has appeared in: a JSON array, or a JSON-encoded string
// containing an array. Older exports used the string form.
type fileSubject struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	ExamBoard string          `json:"exam_board"`
	Topics    json.RawMessage `json:"topics"`
}

// Load replaces the curriculum registry with the contents of a JSON file.
// The file holds an array of subjects. Validation failures leave the
// current registry untouched.
func Load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read curriculum: %w", err)
	}

	var fileSubjects []fileSubject
	if err := json.Unmarshal(raw, &fileSubjects); err != nil {
		return fmt.Errorf("parse curriculum: %w", err)
	}

	subjects := make([]Subject, 0, len(fileSubjects))
	for _, fs := range fileSubjects {
		topics, err := decodeTopics(fs.Topics)
		if err != nil {
			return fmt.Errorf("subject %q: %w", fs.ID, err)
		}
		subjects = append(subjects, Subject{
			ID:        fs.ID,
			Name:      fs.Name,
			ExamBoard: fs.ExamBoard,
			Topics:    topics,
		})
	}

	r, err := buildRegistry(subjects)
	if err != nil {
		return fmt.Errorf("validate curriculum: %w", err)
	}
	reg = r
	return nil
}

// decodeTopics normalizes the topics field. Both an array and a
// JSON-encoded string holding an array are accepted.
func decodeTopics(raw json.RawMessage) ([]Topic, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var topics []Topic
	if err := json.Unmarshal(raw, &topics); err == nil {
		return topics, nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, fmt.Errorf("topics is neither an array nor a string")
	}
	if err := json.Unmarshal([]byte(encoded), &topics); err != nil {
		return nil, fmt.Errorf("decode string-encoded topics: %w", err)
	}
	return topics, nil
}
