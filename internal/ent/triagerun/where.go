// Code generated by ent, DO NOT EDIT.

package triagerun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/inbox-hero/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldEQ(FieldUpdateTime, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldEQ(FieldEndTime, v))
}

// ReportContent applies equality check predicate on the "report_content" field. It's identical to ReportContentEQ.
func ReportContent(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldEQ(FieldReportContent, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldEQ(FieldErrorMessage, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldLTE(FieldUpdateTime, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldLTE(FieldEndTime, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldNotIn(FieldStatus, vs...))
}

// ReportContentEQ applies the EQ predicate on the "report_content" field.
func ReportContentEQ(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldEQ(FieldReportContent, v))
}

// ReportContentNEQ applies the NEQ predicate on the "report_content" field.
func ReportContentNEQ(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldNEQ(FieldReportContent, v))
}

// ReportContentIn applies the In predicate on the "report_content" field.
func ReportContentIn(vs ...string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldIn(FieldReportContent, vs...))
}

// ReportContentNotIn applies the NotIn predicate on the "report_content" field.
func ReportContentNotIn(vs ...string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldNotIn(FieldReportContent, vs...))
}

// ReportContentGT applies the GT predicate on the "report_content" field.
func ReportContentGT(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldGT(FieldReportContent, v))
}

// ReportContentGTE applies the GTE predicate on the "report_content" field.
func ReportContentGTE(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldGTE(FieldReportContent, v))
}

// ReportContentLT applies the LT predicate on the "report_content" field.
func ReportContentLT(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldLT(FieldReportContent, v))
}

// ReportContentLTE applies the LTE predicate on the "report_content" field.
func ReportContentLTE(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldLTE(FieldReportContent, v))
}

// ReportContentContains applies the Contains predicate on the "report_content" field.
func ReportContentContains(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldContains(FieldReportContent, v))
}

// ReportContentHasPrefix applies the HasPrefix predicate on the "report_content" field.
func ReportContentHasPrefix(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldHasPrefix(FieldReportContent, v))
}

// ReportContentHasSuffix applies the HasSuffix predicate on the "report_content" field.
func ReportContentHasSuffix(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldHasSuffix(FieldReportContent, v))
}

// ReportContentIsNil applies the IsNil predicate on the "report_content" field.
func ReportContentIsNil() predicate.TriageRun {
	return predicate.TriageRun(sql.FieldIsNull(FieldReportContent))
}

// ReportContentNotNil applies the NotNil predicate on the "report_content" field.
func ReportContentNotNil() predicate.TriageRun {
	return predicate.TriageRun(sql.FieldNotNull(FieldReportContent))
}

// ReportContentEqualFold applies the EqualFold predicate on the "report_content" field.
func ReportContentEqualFold(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldEqualFold(FieldReportContent, v))
}

// ReportContentContainsFold applies the ContainsFold predicate on the "report_content" field.
func ReportContentContainsFold(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldContainsFold(FieldReportContent, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.TriageRun {
	return predicate.TriageRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.TriageRun {
	return predicate.TriageRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.TriageRun {
	return predicate.TriageRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TriageRun) predicate.TriageRun {
	return predicate.TriageRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TriageRun) predicate.TriageRun {
	return predicate.TriageRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TriageRun) predicate.TriageRun {
	return predicate.TriageRun(sql.NotPredicates(p))
}
