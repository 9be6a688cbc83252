// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// MasteryRecord is the predicate function for masteryrecord builders.
type MasteryRecord func(*sql.Selector)

// OracleRequestEvent is the predicate function for oraclerequestevent builders.
type OracleRequestEvent func(*sql.Selector)

// SessionRecord is the predicate function for sessionrecord builders.
type SessionRecord func(*sql.Selector)

// SubjectPerformance is the predicate function for subjectperformance builders.
type SubjectPerformance func(*sql.Selector)

// TopicProgress is the predicate function for topicprogress builders.
type TopicProgress func(*sql.Selector)

// WeakTopic is the predicate function for weaktopic builders.
type WeakTopic func(*sql.Selector)
