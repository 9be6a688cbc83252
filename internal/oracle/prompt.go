package oracle

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an experienced exam marker grading a student's written answer.

Rules:
- Award whole marks only, from 0 up to the stated maximum. Never exceed it.
- Award a mark for each marking criterion the answer satisfies, judged on meaning rather than exact wording.
- Do not penalise spelling or grammar unless the meaning is ambiguous.
- Feedback must be specific and encouraging: name what earned marks and what was missing, in two or three sentences a teenager can act on.
- Set "assessment" to "excellent" for full marks, "good" for more than half, "needs-work" otherwise.
- Grade only what is written. Do not invent content the student did not provide.`

// buildUserMessage formats a grading request for the oracle.
func buildUserMessage(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", req.Subject)
	fmt.Fprintf(&b, "Question: %s\n", req.Question)
	fmt.Fprintf(&b, "Maximum marks: %d\n", req.TotalMarks)
	fmt.Fprintf(&b, "Model answer: %s\n", req.ModelAnswer)

	b.WriteString("\nMarking criteria (one mark each):\n")
	for i, c := range req.MarkingCriteria {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c)
	}

	b.WriteString("\nStudent's answer:\n")
	b.WriteString(req.UserAnswer)

	return b.String()
}
