package oracle

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradeReq(totalMarks int) Request {
	return Request{
		Question:        "Explain osmosis.",
		UserAnswer:      "Water moves across a membrane from dilute to concentrated solution.",
		ModelAnswer:     "Movement of water from a dilute to a concentrated solution through a partially permeable membrane.",
		MarkingCriteria: []string{"Movement of water", "Down the water concentration gradient", "Partially permeable membrane"},
		TotalMarks:      totalMarks,
		Subject:         "Biology",
	}
}

func TestParseVerdict_Valid(t *testing.T) {
	raw := json.RawMessage(`{"marks_awarded":2,"feedback":"Two criteria met; the membrane detail was missing.","assessment":"good"}`)

	result, err := parseVerdict(raw, gradeReq(3))
	require.NoError(t, err)
	assert.Equal(t, 2, result.MarksAwarded)
	assert.Equal(t, "good", result.Assessment)
	assert.NotEmpty(t, result.Feedback)
}

func TestParseVerdict_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed JSON", `{"marks_awarded":`},
		{"missing field", `{"marks_awarded":2,"feedback":"ok"}`},
		{"wrong type", `{"marks_awarded":"two","feedback":"ok","assessment":"good"}`},
		{"unknown assessment", `{"marks_awarded":2,"feedback":"ok","assessment":"amazing"}`},
		{"negative marks", `{"marks_awarded":-1,"feedback":"ok","assessment":"needs-work"}`},
		{"marks above maximum", `{"marks_awarded":5,"feedback":"ok","assessment":"excellent"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseVerdict(json.RawMessage(tt.raw), gradeReq(3))
			require.Error(t, err)
			var inv *ErrInvalidVerdict
			require.ErrorAs(t, err, &inv)
		})
	}
}

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage(gradeReq(3))

	for _, want := range []string{
		"Subject: Biology",
		"Maximum marks: 3",
		"Explain osmosis.",
		"1. Movement of water",
		"3. Partially permeable membrane",
		"Student's answer:",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}
