// Code generated by ent, DO NOT EDIT.

package summarycache

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/inbox-hero/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldUpdateTime, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldMessageID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldContent, v))
}

// HadAttachments applies equality check predicate on the "had_attachments" field. It's identical to HadAttachmentsEQ.
func HadAttachments(v bool) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldHadAttachments, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLTE(FieldUpdateTime, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldContainsFold(FieldMessageID, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldContainsFold(FieldContent, v))
}

// HadAttachmentsEQ applies the EQ predicate on the "had_attachments" field.
func HadAttachmentsEQ(v bool) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldEQ(FieldHadAttachments, v))
}

// HadAttachmentsNEQ applies the NEQ predicate on the "had_attachments" field.
func HadAttachmentsNEQ(v bool) predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNEQ(FieldHadAttachments, v))
}

// AttachmentErrorsIsNil applies the IsNil predicate on the "attachment_errors" field.
func AttachmentErrorsIsNil() predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldIsNull(FieldAttachmentErrors))
}

// AttachmentErrorsNotNil applies the NotNil predicate on the "attachment_errors" field.
func AttachmentErrorsNotNil() predicate.SummaryCache {
	return predicate.SummaryCache(sql.FieldNotNull(FieldAttachmentErrors))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SummaryCache) predicate.SummaryCache {
	return predicate.SummaryCache(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SummaryCache) predicate.SummaryCache {
	return predicate.SummaryCache(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SummaryCache) predicate.SummaryCache {
	return predicate.SummaryCache(sql.NotPredicates(p))
}
