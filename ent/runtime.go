// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/revisely/revisely/ent/attemptevent"
	"github.com/revisely/revisely/ent/masteryrecord"
	"github.com/revisely/revisely/ent/oraclerequestevent"
	"github.com/revisely/revisely/ent/schema"
	"github.com/revisely/revisely/ent/sessionrecord"
	"github.com/revisely/revisely/ent/subjectperformance"
	"github.com/revisely/revisely/ent/topicprogress"
	"github.com/revisely/revisely/ent/weaktopic"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescUserID is the schema descriptor for user_id field.
	attempteventDescUserID := attempteventFields[1].Descriptor()
	// attemptevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attemptevent.UserIDValidator = attempteventDescUserID.Validators[0].(func(string) error)
	// attempteventDescSubjectID is the schema descriptor for subject_id field.
	attempteventDescSubjectID := attempteventFields[2].Descriptor()
	// attemptevent.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	attemptevent.SubjectIDValidator = attempteventDescSubjectID.Validators[0].(func(string) error)
	// attempteventDescTopicID is the schema descriptor for topic_id field.
	attempteventDescTopicID := attempteventFields[3].Descriptor()
	// attemptevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	attemptevent.TopicIDValidator = attempteventDescTopicID.Validators[0].(func(string) error)
	// attempteventDescQuestionID is the schema descriptor for question_id field.
	attempteventDescQuestionID := attempteventFields[4].Descriptor()
	// attemptevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attemptevent.QuestionIDValidator = attempteventDescQuestionID.Validators[0].(func(string) error)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescUserID is the schema descriptor for user_id field.
	masteryrecordDescUserID := masteryrecordFields[0].Descriptor()
	// masteryrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	masteryrecord.UserIDValidator = masteryrecordDescUserID.Validators[0].(func(string) error)
	// masteryrecordDescSubjectID is the schema descriptor for subject_id field.
	masteryrecordDescSubjectID := masteryrecordFields[1].Descriptor()
	// masteryrecord.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	masteryrecord.SubjectIDValidator = masteryrecordDescSubjectID.Validators[0].(func(string) error)
	// masteryrecordDescTopicID is the schema descriptor for topic_id field.
	masteryrecordDescTopicID := masteryrecordFields[2].Descriptor()
	// masteryrecord.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	masteryrecord.TopicIDValidator = masteryrecordDescTopicID.Validators[0].(func(string) error)
	// masteryrecordDescDay is the schema descriptor for day field.
	masteryrecordDescDay := masteryrecordFields[3].Descriptor()
	// masteryrecord.DayValidator is a validator for the "day" field. It is called by the builders before save.
	masteryrecord.DayValidator = masteryrecordDescDay.Validators[0].(func(string) error)
	// masteryrecordDescScore is the schema descriptor for score field.
	masteryrecordDescScore := masteryrecordFields[4].Descriptor()
	// masteryrecord.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	masteryrecord.ScoreValidator = func() func(int) error {
		validators := masteryrecordDescScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(score int) error {
			for _, fn := range fns {
				if err := fn(score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	oraclerequesteventMixin := schema.OracleRequestEvent{}.Mixin()
	oraclerequesteventMixinFields0 := oraclerequesteventMixin[0].Fields()
	_ = oraclerequesteventMixinFields0
	oraclerequesteventFields := schema.OracleRequestEvent{}.Fields()
	_ = oraclerequesteventFields
	// oraclerequesteventDescTimestamp is the schema descriptor for timestamp field.
	oraclerequesteventDescTimestamp := oraclerequesteventMixinFields0[1].Descriptor()
	// oraclerequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	oraclerequestevent.DefaultTimestamp = oraclerequesteventDescTimestamp.Default.(func() time.Time)
	// oraclerequesteventDescProvider is the schema descriptor for provider field.
	oraclerequesteventDescProvider := oraclerequesteventFields[0].Descriptor()
	// oraclerequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	oraclerequestevent.ProviderValidator = oraclerequesteventDescProvider.Validators[0].(func(string) error)
	// oraclerequesteventDescModel is the schema descriptor for model field.
	oraclerequesteventDescModel := oraclerequesteventFields[1].Descriptor()
	// oraclerequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	oraclerequestevent.ModelValidator = oraclerequesteventDescModel.Validators[0].(func(string) error)
	// oraclerequesteventDescInputTokens is the schema descriptor for input_tokens field.
	oraclerequesteventDescInputTokens := oraclerequesteventFields[2].Descriptor()
	// oraclerequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	oraclerequestevent.DefaultInputTokens = oraclerequesteventDescInputTokens.Default.(int)
	// oraclerequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	oraclerequesteventDescOutputTokens := oraclerequesteventFields[3].Descriptor()
	// oraclerequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	oraclerequestevent.DefaultOutputTokens = oraclerequesteventDescOutputTokens.Default.(int)
	// oraclerequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	oraclerequesteventDescLatencyMs := oraclerequesteventFields[4].Descriptor()
	// oraclerequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	oraclerequestevent.DefaultLatencyMs = oraclerequesteventDescLatencyMs.Default.(int64)
	// oraclerequesteventDescMarksAwarded is the schema descriptor for marks_awarded field.
	oraclerequesteventDescMarksAwarded := oraclerequesteventFields[6].Descriptor()
	// oraclerequestevent.DefaultMarksAwarded holds the default value on creation for the marks_awarded field.
	oraclerequestevent.DefaultMarksAwarded = oraclerequesteventDescMarksAwarded.Default.(int)
	// oraclerequesteventDescErrorMessage is the schema descriptor for error_message field.
	oraclerequesteventDescErrorMessage := oraclerequesteventFields[7].Descriptor()
	// oraclerequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	oraclerequestevent.DefaultErrorMessage = oraclerequesteventDescErrorMessage.Default.(string)
	sessionrecordFields := schema.SessionRecord{}.Fields()
	_ = sessionrecordFields
	// sessionrecordDescUserID is the schema descriptor for user_id field.
	sessionrecordDescUserID := sessionrecordFields[0].Descriptor()
	// sessionrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionrecord.UserIDValidator = sessionrecordDescUserID.Validators[0].(func(string) error)
	// sessionrecordDescSubjectID is the schema descriptor for subject_id field.
	sessionrecordDescSubjectID := sessionrecordFields[1].Descriptor()
	// sessionrecord.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	sessionrecord.SubjectIDValidator = sessionrecordDescSubjectID.Validators[0].(func(string) error)
	// sessionrecordDescTopicID is the schema descriptor for topic_id field.
	sessionrecordDescTopicID := sessionrecordFields[2].Descriptor()
	// sessionrecord.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	sessionrecord.TopicIDValidator = sessionrecordDescTopicID.Validators[0].(func(string) error)
	// sessionrecordDescSessionID is the schema descriptor for session_id field.
	sessionrecordDescSessionID := sessionrecordFields[3].Descriptor()
	// sessionrecord.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionrecord.SessionIDValidator = sessionrecordDescSessionID.Validators[0].(func(string) error)
	// sessionrecordDescCurrentIndex is the schema descriptor for current_index field.
	sessionrecordDescCurrentIndex := sessionrecordFields[5].Descriptor()
	// sessionrecord.DefaultCurrentIndex holds the default value on creation for the current_index field.
	sessionrecord.DefaultCurrentIndex = sessionrecordDescCurrentIndex.Default.(int)
	// sessionrecordDescUserAnswer is the schema descriptor for user_answer field.
	sessionrecordDescUserAnswer := sessionrecordFields[6].Descriptor()
	// sessionrecord.DefaultUserAnswer holds the default value on creation for the user_answer field.
	sessionrecord.DefaultUserAnswer = sessionrecordDescUserAnswer.Default.(string)
	// sessionrecordDescShowFeedback is the schema descriptor for show_feedback field.
	sessionrecordDescShowFeedback := sessionrecordFields[7].Descriptor()
	// sessionrecord.DefaultShowFeedback holds the default value on creation for the show_feedback field.
	sessionrecord.DefaultShowFeedback = sessionrecordDescShowFeedback.Default.(bool)
	subjectperformanceFields := schema.SubjectPerformance{}.Fields()
	_ = subjectperformanceFields
	// subjectperformanceDescUserID is the schema descriptor for user_id field.
	subjectperformanceDescUserID := subjectperformanceFields[0].Descriptor()
	// subjectperformance.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	subjectperformance.UserIDValidator = subjectperformanceDescUserID.Validators[0].(func(string) error)
	// subjectperformanceDescSubjectID is the schema descriptor for subject_id field.
	subjectperformanceDescSubjectID := subjectperformanceFields[1].Descriptor()
	// subjectperformance.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	subjectperformance.SubjectIDValidator = subjectperformanceDescSubjectID.Validators[0].(func(string) error)
	// subjectperformanceDescExamBoard is the schema descriptor for exam_board field.
	subjectperformanceDescExamBoard := subjectperformanceFields[2].Descriptor()
	// subjectperformance.ExamBoardValidator is a validator for the "exam_board" field. It is called by the builders before save.
	subjectperformance.ExamBoardValidator = subjectperformanceDescExamBoard.Validators[0].(func(string) error)
	// subjectperformanceDescTotalQuestionsAnswered is the schema descriptor for total_questions_answered field.
	subjectperformanceDescTotalQuestionsAnswered := subjectperformanceFields[3].Descriptor()
	// subjectperformance.DefaultTotalQuestionsAnswered holds the default value on creation for the total_questions_answered field.
	subjectperformance.DefaultTotalQuestionsAnswered = subjectperformanceDescTotalQuestionsAnswered.Default.(int)
	// subjectperformanceDescMarksEarned is the schema descriptor for marks_earned field.
	subjectperformanceDescMarksEarned := subjectperformanceFields[4].Descriptor()
	// subjectperformance.DefaultMarksEarned holds the default value on creation for the marks_earned field.
	subjectperformance.DefaultMarksEarned = subjectperformanceDescMarksEarned.Default.(int)
	// subjectperformanceDescMarksAvailable is the schema descriptor for marks_available field.
	subjectperformanceDescMarksAvailable := subjectperformanceFields[5].Descriptor()
	// subjectperformance.DefaultMarksAvailable holds the default value on creation for the marks_available field.
	subjectperformance.DefaultMarksAvailable = subjectperformanceDescMarksAvailable.Default.(int)
	// subjectperformanceDescAccuracyRate is the schema descriptor for accuracy_rate field.
	subjectperformanceDescAccuracyRate := subjectperformanceFields[6].Descriptor()
	// subjectperformance.DefaultAccuracyRate holds the default value on creation for the accuracy_rate field.
	subjectperformance.DefaultAccuracyRate = subjectperformanceDescAccuracyRate.Default.(float64)
	// subjectperformanceDescStudyHours is the schema descriptor for study_hours field.
	subjectperformanceDescStudyHours := subjectperformanceFields[7].Descriptor()
	// subjectperformance.DefaultStudyHours holds the default value on creation for the study_hours field.
	subjectperformance.DefaultStudyHours = subjectperformanceDescStudyHours.Default.(float64)
	topicprogressFields := schema.TopicProgress{}.Fields()
	_ = topicprogressFields
	// topicprogressDescUserID is the schema descriptor for user_id field.
	topicprogressDescUserID := topicprogressFields[0].Descriptor()
	// topicprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	topicprogress.UserIDValidator = topicprogressDescUserID.Validators[0].(func(string) error)
	// topicprogressDescSubjectID is the schema descriptor for subject_id field.
	topicprogressDescSubjectID := topicprogressFields[1].Descriptor()
	// topicprogress.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	topicprogress.SubjectIDValidator = topicprogressDescSubjectID.Validators[0].(func(string) error)
	// topicprogressDescTopicID is the schema descriptor for topic_id field.
	topicprogressDescTopicID := topicprogressFields[2].Descriptor()
	// topicprogress.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	topicprogress.TopicIDValidator = topicprogressDescTopicID.Validators[0].(func(string) error)
	// topicprogressDescAttempts is the schema descriptor for attempts field.
	topicprogressDescAttempts := topicprogressFields[3].Descriptor()
	// topicprogress.DefaultAttempts holds the default value on creation for the attempts field.
	topicprogress.DefaultAttempts = topicprogressDescAttempts.Default.(int)
	// topicprogressDescAverageScore is the schema descriptor for average_score field.
	topicprogressDescAverageScore := topicprogressFields[4].Descriptor()
	// topicprogress.DefaultAverageScore holds the default value on creation for the average_score field.
	topicprogress.DefaultAverageScore = topicprogressDescAverageScore.Default.(int)
	// topicprogress.AverageScoreValidator is a validator for the "average_score" field. It is called by the builders before save.
	topicprogress.AverageScoreValidator = func() func(int) error {
		validators := topicprogressDescAverageScore.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(average_score int) error {
			for _, fn := range fns {
				if err := fn(average_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	weaktopicFields := schema.WeakTopic{}.Fields()
	_ = weaktopicFields
	// weaktopicDescUserID is the schema descriptor for user_id field.
	weaktopicDescUserID := weaktopicFields[0].Descriptor()
	// weaktopic.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	weaktopic.UserIDValidator = weaktopicDescUserID.Validators[0].(func(string) error)
	// weaktopicDescSubjectID is the schema descriptor for subject_id field.
	weaktopicDescSubjectID := weaktopicFields[1].Descriptor()
	// weaktopic.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	weaktopic.SubjectIDValidator = weaktopicDescSubjectID.Validators[0].(func(string) error)
	// weaktopicDescTopicID is the schema descriptor for topic_id field.
	weaktopicDescTopicID := weaktopicFields[2].Descriptor()
	// weaktopic.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	weaktopic.TopicIDValidator = weaktopicDescTopicID.Validators[0].(func(string) error)
	// weaktopicDescEnteredAt is the schema descriptor for entered_at field.
	weaktopicDescEnteredAt := weaktopicFields[3].Descriptor()
	// weaktopic.DefaultEnteredAt holds the default value on creation for the entered_at field.
	weaktopic.DefaultEnteredAt = weaktopicDescEnteredAt.Default.(func() time.Time)
}
