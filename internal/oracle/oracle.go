// Package oracle talks to the external grading service: an LLM asked to
// mark a free-text answer against a model answer and marking criteria.
// The package owns the provider clients, retry behaviour, and the audit
// trail of every request. It never falls back on its own; degraded
// grading lives in internal/grading, which wraps a Client.
package oracle

import "context"

// Client is the grading-oracle abstraction. Implementations call a
// specific provider and return a structurally valid Result or an error
// from the taxonomy in errors.go.
type Client interface {
	// Grade marks a candidate answer. The returned marks are guaranteed
	// to be within [0, req.TotalMarks].
	Grade(ctx context.Context, req Request) (*Result, error)

	// ModelID returns the model identifier this client is configured to use.
	ModelID() string
}

// Request carries everything the oracle needs to mark one answer.
type Request struct {
	Question        string
	UserAnswer      string
	ModelAnswer     string
	MarkingCriteria []string
	TotalMarks      int
	Subject         string
}

// Result is the oracle's verdict on one answer.
type Result struct {
	// MarksAwarded is the awarded mark in [0, TotalMarks].
	MarksAwarded int

	// Feedback is the examiner-style critique shown to the student.
	Feedback string

	// Assessment is a short label summarising the attempt
	// (e.g. "excellent", "good", "needs-work").
	Assessment string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
