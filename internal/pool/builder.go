// Package pool builds the ordered question sequence for one practice
// session: questions unsuitable for free-text grading are filtered out and
// the remainder is shuffled once. The resulting order is frozen into the
// session state and never reshuffled on resume.
package pool

import (
	"math/rand/v2"
	"strings"

	"github.com/revisely/revisely/internal/curriculum"
)

// DefaultDenylist lists the markers of visually-dependent questions. The
// grading oracle works on free text only, so anything that asks the student
// to draw or read a figure cannot be assessed.
var DefaultDenylist = []string{
	"diagram",
	"graph",
	"chart",
	"sketch",
	"draw",
	"plot",
	"figure",
	"label the",
	"table below",
}

// Builder filters and orders topic questions for sessions.
type Builder struct {
	denylist []string
}

// New creates a Builder with the given denylist. A nil denylist uses
// DefaultDenylist.
func New(denylist []string) *Builder {
	if denylist == nil {
		denylist = DefaultDenylist
	}
	return &Builder{denylist: denylist}
}

// Build returns the questions of a topic in a fresh random order, with
// visually-dependent questions removed. An empty result means the topic has
// no gradeable content and the caller must not start a session.
func (b *Builder) Build(topic curriculum.Topic) []curriculum.Question {
	filtered := b.Filter(topic.Questions)
	rand.Shuffle(len(filtered), func(i, j int) {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	})
	return filtered
}

// Resolve maps persisted question IDs back onto the live topic, preserving
// the persisted order. IDs no longer in the curriculum are dropped, and the
// denylist is re-applied in case a question's text changed since the
// session was saved.
func (b *Builder) Resolve(topic curriculum.Topic, ids []string) []curriculum.Question {
	out := make([]curriculum.Question, 0, len(ids))
	for _, id := range ids {
		q, ok := topic.FindQuestion(id)
		if !ok {
			continue
		}
		if b.blocked(q) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Filter returns the questions that pass the denylist, preserving order.
func (b *Builder) Filter(questions []curriculum.Question) []curriculum.Question {
	out := make([]curriculum.Question, 0, len(questions))
	for _, q := range questions {
		if !b.blocked(q) {
			out = append(out, q)
		}
	}
	return out
}

func (b *Builder) blocked(q curriculum.Question) bool {
	text := strings.ToLower(q.Text)
	for _, marker := range b.denylist {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
