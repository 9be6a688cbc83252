package oracle

import "encoding/json"

// verdictSchemaName identifies the grading verdict schema to providers
// (tool name for Anthropic, schema name for OpenAI).
const verdictSchemaName = "grading-verdict"

// verdictSchema is the JSON Schema every oracle response must conform to.
// The upper mark bound is request-dependent, so it is enforced in
// parseVerdict rather than here.
var verdictSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"marks_awarded": map[string]any{
			"type":        "integer",
			"minimum":     0,
			"description": "Whole marks awarded, never above the stated maximum",
		},
		"feedback": map[string]any{
			"type":        "string",
			"description": "Specific, encouraging critique of the answer",
		},
		"assessment": map[string]any{
			"type":        "string",
			"enum":        []any{"excellent", "good", "needs-work"},
			"description": "Short label summarising the attempt",
		},
	},
	"required":             []any{"marks_awarded", "feedback", "assessment"},
	"additionalProperties": false,
}

// verdictOutput is the wire shape of an oracle verdict.
type verdictOutput struct {
	MarksAwarded int    `json:"marks_awarded"`
	Feedback     string `json:"feedback"`
	Assessment   string `json:"assessment"`
}

// parseVerdict validates raw oracle output and converts it to a Result.
// It enforces the per-request mark bound the static schema cannot express.
func parseVerdict(raw json.RawMessage, req Request) (*Result, error) {
	if err := validateVerdict(raw); err != nil {
		return nil, err
	}

	var out verdictOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &ErrInvalidVerdict{Content: raw, Err: err}
	}

	if out.MarksAwarded < 0 || out.MarksAwarded > req.TotalMarks {
		return nil, &ErrInvalidVerdict{
			Content: raw,
			Err:     fmtMarkBoundError(out.MarksAwarded, req.TotalMarks),
		}
	}

	return &Result{
		MarksAwarded: out.MarksAwarded,
		Feedback:     out.Feedback,
		Assessment:   out.Assessment,
	}, nil
}
