package store

import (
	"context"
	"time"
)

// SessionKey identifies the single active session per user, subject and
// topic.
type SessionKey struct {
	UserID    string
	SubjectID string
	TopicID   string
}

// FeedbackDoc is the persisted feedback for one attempt.
type FeedbackDoc struct {
	ModelAnswer   string `json:"model_answer"`
	CriteriaText  string `json:"criteria_text"`
	Critique      string `json:"critique"`
	SpecReference string `json:"spec_reference"`
}

// AttemptDoc is the persisted form of one graded submission.
type AttemptDoc struct {
	QuestionID     string      `json:"question_id"`
	UserAnswer     string      `json:"user_answer"`
	MarksAwarded   int         `json:"marks_awarded"`
	MarksAvailable int         `json:"marks_available"`
	Assessment     string      `json:"assessment"`
	Feedback       FeedbackDoc `json:"feedback"`
	Superseded     bool        `json:"superseded"`
	SubmittedAt    time.Time   `json:"submitted_at"`
}

// SessionDocument is the whole-document form of a persisted session.
// Every save replaces the previous document for the same key.
type SessionDocument struct {
	Key          SessionKey
	SessionID    string
	QuestionIDs  []string
	CurrentIndex int
	UserAnswer   string
	ShowFeedback bool
	Attempts     []AttemptDoc
	StartedAt    time.Time
	LastSaved    time.Time
	AggregatedAt *time.Time
}

// SessionRepo persists in-progress sessions.
type SessionRepo interface {
	// Save stores the document, replacing any existing one for its key.
	Save(ctx context.Context, doc *SessionDocument) error

	// Load returns the document for a key, or nil if absent.
	// Unparseable persisted state is treated as absent, never an error:
	// the caller degrades to a fresh session.
	Load(ctx context.Context, key SessionKey) (*SessionDocument, error)

	// MarkAggregated records that the mastery aggregator has processed
	// this session's completion.
	MarkAggregated(ctx context.Context, key SessionKey, at time.Time) error

	// Clear removes the document for a key, but only while it still
	// belongs to sessionID: a record already replaced by a newer
	// session is left alone. Clearing an absent key is not an error.
	Clear(ctx context.Context, key SessionKey, sessionID string) error
}

// TopicProgressData is the durable rolling score for one user and topic.
type TopicProgressData struct {
	UserID        string
	SubjectID     string
	TopicID       string
	Attempts      int
	AverageScore  int
	LastAttemptAt time.Time
}

// SubjectPerformanceData accumulates lifetime stats per user, subject and
// exam board.
type SubjectPerformanceData struct {
	UserID                 string
	SubjectID              string
	ExamBoard              string
	TotalQuestionsAnswered int
	MarksEarned            int
	MarksAvailable         int
	AccuracyRate           float64
	StudyHours             float64
	LastActivityDate       time.Time
}

// MasteryRecordData is a dated mastery marker for trend displays.
type MasteryRecordData struct {
	UserID    string
	SubjectID string
	TopicID   string
	Day       string // YYYY-MM-DD
	Score     int
}

// ProgressRepo persists durable learner progress. Only the mastery
// aggregator writes through it; everything else reads.
type ProgressRepo interface {
	// TopicProgress returns the progress row for a user and topic, or
	// nil if the topic has never been completed.
	TopicProgress(ctx context.Context, userID, topicID string) (*TopicProgressData, error)

	// UpsertTopicProgress creates or replaces the progress row.
	UpsertTopicProgress(ctx context.Context, data *TopicProgressData) error

	// TopicProgressBySubject lists all progress rows for a user and
	// subject, newest attempt first.
	TopicProgressBySubject(ctx context.Context, userID, subjectID string) ([]*TopicProgressData, error)

	// SetWeakTopic inserts or removes a weak-topic row. Both directions
	// are idempotent.
	SetWeakTopic(ctx context.Context, userID, subjectID, topicID string, weak bool) error

	// WeakTopics returns the user's weak topic IDs, sorted.
	WeakTopics(ctx context.Context, userID string) ([]string, error)

	// SubjectPerformance returns the performance row, or nil if absent.
	SubjectPerformance(ctx context.Context, userID, subjectID, examBoard string) (*SubjectPerformanceData, error)

	// UpsertSubjectPerformance creates or replaces the performance row.
	UpsertSubjectPerformance(ctx context.Context, data *SubjectPerformanceData) error

	// UpsertMasteryRecord creates or overwrites the dated mastery score.
	UpsertMasteryRecord(ctx context.Context, data MasteryRecordData) error

	// MasteryRecords lists the user's dated mastery scores for a
	// subject, oldest day first.
	MasteryRecords(ctx context.Context, userID, subjectID string) ([]MasteryRecordData, error)

	// Reset deletes all durable progress for a user.
	Reset(ctx context.Context, userID string) error
}

// OracleRequestEventData captures one grading-oracle call.
type OracleRequestEventData struct {
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	MarksAwarded int
	ErrorMessage string
}

// AttemptEventData captures one graded submission for the audit log.
type AttemptEventData struct {
	SessionID      string
	UserID         string
	SubjectID      string
	TopicID        string
	QuestionID     string
	UserAnswer     string
	MarksAwarded   int
	MarksAvailable int
	Assessment     string
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendOracleRequest records a grading-oracle call event.
	AppendOracleRequest(ctx context.Context, data OracleRequestEventData) error

	// AppendAttempt records a graded submission event.
	AppendAttempt(ctx context.Context, data AttemptEventData) error
}
