// Code generated by ent, DO NOT EDIT.

package weaktopic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/revisely/revisely/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldEQ(FieldUserID, v))
}

// SubjectID applies equality check predicate on the "subject_id" field. It's identical to SubjectIDEQ.
func SubjectID(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldEQ(FieldSubjectID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldEQ(FieldTopicID, v))
}

// EnteredAt applies equality check predicate on the "entered_at" field. It's identical to EnteredAtEQ.
func EnteredAt(v time.Time) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldEQ(FieldEnteredAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldContainsFold(FieldUserID, v))
}

// SubjectIDEQ applies the EQ predicate on the "subject_id" field.
func SubjectIDEQ(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldEQ(FieldSubjectID, v))
}

// SubjectIDNEQ applies the NEQ predicate on the "subject_id" field.
func SubjectIDNEQ(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldNEQ(FieldSubjectID, v))
}

// SubjectIDIn applies the In predicate on the "subject_id" field.
func SubjectIDIn(vs ...string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldIn(FieldSubjectID, vs...))
}

// SubjectIDNotIn applies the NotIn predicate on the "subject_id" field.
func SubjectIDNotIn(vs ...string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldNotIn(FieldSubjectID, vs...))
}

// SubjectIDGT applies the GT predicate on the "subject_id" field.
func SubjectIDGT(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldGT(FieldSubjectID, v))
}

// SubjectIDGTE applies the GTE predicate on the "subject_id" field.
func SubjectIDGTE(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldGTE(FieldSubjectID, v))
}

// SubjectIDLT applies the LT predicate on the "subject_id" field.
func SubjectIDLT(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldLT(FieldSubjectID, v))
}

// SubjectIDLTE applies the LTE predicate on the "subject_id" field.
func SubjectIDLTE(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldLTE(FieldSubjectID, v))
}

// SubjectIDContains applies the Contains predicate on the "subject_id" field.
func SubjectIDContains(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldContains(FieldSubjectID, v))
}

// SubjectIDHasPrefix applies the HasPrefix predicate on the "subject_id" field.
func SubjectIDHasPrefix(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldHasPrefix(FieldSubjectID, v))
}

// SubjectIDHasSuffix applies the HasSuffix predicate on the "subject_id" field.
func SubjectIDHasSuffix(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldHasSuffix(FieldSubjectID, v))
}

// SubjectIDEqualFold applies the EqualFold predicate on the "subject_id" field.
func SubjectIDEqualFold(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldEqualFold(FieldSubjectID, v))
}

// SubjectIDContainsFold applies the ContainsFold predicate on the "subject_id" field.
func SubjectIDContainsFold(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldContainsFold(FieldSubjectID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldLTE(FieldTopicID, v))
}

// TopicIDContains applies the Contains predicate on the "topic_id" field.
func TopicIDContains(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldContains(FieldTopicID, v))
}

// TopicIDHasPrefix applies the HasPrefix predicate on the "topic_id" field.
func TopicIDHasPrefix(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldHasPrefix(FieldTopicID, v))
}

// TopicIDHasSuffix applies the HasSuffix predicate on the "topic_id" field.
func TopicIDHasSuffix(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldHasSuffix(FieldTopicID, v))
}

// TopicIDEqualFold applies the EqualFold predicate on the "topic_id" field.
func TopicIDEqualFold(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldEqualFold(FieldTopicID, v))
}

// TopicIDContainsFold applies the ContainsFold predicate on the "topic_id" field.
func TopicIDContainsFold(v string) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldContainsFold(FieldTopicID, v))
}

// EnteredAtEQ applies the EQ predicate on the "entered_at" field.
func EnteredAtEQ(v time.Time) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldEQ(FieldEnteredAt, v))
}

// EnteredAtNEQ applies the NEQ predicate on the "entered_at" field.
func EnteredAtNEQ(v time.Time) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldNEQ(FieldEnteredAt, v))
}

// EnteredAtIn applies the In predicate on the "entered_at" field.
func EnteredAtIn(vs ...time.Time) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldIn(FieldEnteredAt, vs...))
}

// EnteredAtNotIn applies the NotIn predicate on the "entered_at" field.
func EnteredAtNotIn(vs ...time.Time) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldNotIn(FieldEnteredAt, vs...))
}

// EnteredAtGT applies the GT predicate on the "entered_at" field.
func EnteredAtGT(v time.Time) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldGT(FieldEnteredAt, v))
}

// EnteredAtGTE applies the GTE predicate on the "entered_at" field.
func EnteredAtGTE(v time.Time) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldGTE(FieldEnteredAt, v))
}

// EnteredAtLT applies the LT predicate on the "entered_at" field.
func EnteredAtLT(v time.Time) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldLT(FieldEnteredAt, v))
}

// EnteredAtLTE applies the LTE predicate on the "entered_at" field.
func EnteredAtLTE(v time.Time) predicate.WeakTopic {
	return predicate.WeakTopic(sql.FieldLTE(FieldEnteredAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WeakTopic) predicate.WeakTopic {
	return predicate.WeakTopic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WeakTopic) predicate.WeakTopic {
	return predicate.WeakTopic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WeakTopic) predicate.WeakTopic {
	return predicate.WeakTopic(sql.NotPredicates(p))
}
