// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "user_answer", Type: field.TypeString},
		{Name: "marks_awarded", Type: field.TypeInt},
		{Name: "marks_available", Type: field.TypeInt},
		{Name: "assessment", Type: field.TypeString},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_user_id_topic_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4], AttemptEventsColumns[6]},
			},
		},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "day", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_user_id_subject_id_topic_id_day",
				Unique:  true,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2], MasteryRecordsColumns[3], MasteryRecordsColumns[4]},
			},
			{
				Name:    "masteryrecord_user_id_topic_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[3]},
			},
		},
	}
	// OracleRequestEventsColumns holds the columns for the "oracle_request_events" table.
	OracleRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "marks_awarded", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// OracleRequestEventsTable holds the schema information for the "oracle_request_events" table.
	OracleRequestEventsTable = &schema.Table{
		Name:       "oracle_request_events",
		Columns:    OracleRequestEventsColumns,
		PrimaryKey: []*schema.Column{OracleRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "oraclerequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[1]},
			},
			{
				Name:    "oraclerequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[2]},
			},
			{
				Name:    "oraclerequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[8]},
			},
		},
	}
	// SessionRecordsColumns holds the columns for the "session_records" table.
	SessionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_order", Type: field.TypeJSON},
		{Name: "current_index", Type: field.TypeInt, Default: 0},
		{Name: "user_answer", Type: field.TypeString, Default: ""},
		{Name: "show_feedback", Type: field.TypeBool, Default: false},
		{Name: "attempts", Type: field.TypeJSON, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "last_saved", Type: field.TypeTime},
		{Name: "aggregated_at", Type: field.TypeTime, Nullable: true},
	}
	// SessionRecordsTable holds the schema information for the "session_records" table.
	SessionRecordsTable = &schema.Table{
		Name:       "session_records",
		Columns:    SessionRecordsColumns,
		PrimaryKey: []*schema.Column{SessionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrecord_user_id_subject_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{SessionRecordsColumns[1], SessionRecordsColumns[2], SessionRecordsColumns[3]},
			},
		},
	}
	// SubjectPerformancesColumns holds the columns for the "subject_performances" table.
	SubjectPerformancesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "exam_board", Type: field.TypeString},
		{Name: "total_questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "marks_earned", Type: field.TypeInt, Default: 0},
		{Name: "marks_available", Type: field.TypeInt, Default: 0},
		{Name: "accuracy_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "study_hours", Type: field.TypeFloat64, Default: 0},
		{Name: "last_activity_date", Type: field.TypeTime},
	}
	// SubjectPerformancesTable holds the schema information for the "subject_performances" table.
	SubjectPerformancesTable = &schema.Table{
		Name:       "subject_performances",
		Columns:    SubjectPerformancesColumns,
		PrimaryKey: []*schema.Column{SubjectPerformancesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subjectperformance_user_id_subject_id_exam_board",
				Unique:  true,
				Columns: []*schema.Column{SubjectPerformancesColumns[1], SubjectPerformancesColumns[2], SubjectPerformancesColumns[3]},
			},
		},
	}
	// TopicProgressesColumns holds the columns for the "topic_progresses" table.
	TopicProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "average_score", Type: field.TypeInt, Default: 0},
		{Name: "last_attempt_at", Type: field.TypeTime},
	}
	// TopicProgressesTable holds the schema information for the "topic_progresses" table.
	TopicProgressesTable = &schema.Table{
		Name:       "topic_progresses",
		Columns:    TopicProgressesColumns,
		PrimaryKey: []*schema.Column{TopicProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicprogress_user_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{TopicProgressesColumns[1], TopicProgressesColumns[3]},
			},
			{
				Name:    "topicprogress_user_id_subject_id",
				Unique:  false,
				Columns: []*schema.Column{TopicProgressesColumns[1], TopicProgressesColumns[2]},
			},
		},
	}
	// WeakTopicsColumns holds the columns for the "weak_topics" table.
	WeakTopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeString},
		{Name: "entered_at", Type: field.TypeTime},
	}
	// WeakTopicsTable holds the schema information for the "weak_topics" table.
	WeakTopicsTable = &schema.Table{
		Name:       "weak_topics",
		Columns:    WeakTopicsColumns,
		PrimaryKey: []*schema.Column{WeakTopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "weaktopic_user_id_topic_id",
				Unique:  true,
				Columns: []*schema.Column{WeakTopicsColumns[1], WeakTopicsColumns[3]},
			},
			{
				Name:    "weaktopic_user_id",
				Unique:  false,
				Columns: []*schema.Column{WeakTopicsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		MasteryRecordsTable,
		OracleRequestEventsTable,
		SessionRecordsTable,
		SubjectPerformancesTable,
		TopicProgressesTable,
		WeakTopicsTable,
	}
)

func init() {
}
