// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/inbox-hero/internal/ent/predicate"
	"github.com/fachebot/inbox-hero/internal/ent/triagerun"
)

// TriageRunUpdate is the builder for updating TriageRun entities.
type TriageRunUpdate struct {
	config
	hooks    []Hook
	mutation *TriageRunMutation
}

// Where appends a list predicates to the TriageRunUpdate builder.
func (_u *TriageRunUpdate) Where(ps ...predicate.TriageRun) *TriageRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *TriageRunUpdate) SetUpdateTime(v time.Time) *TriageRunUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TriageRunUpdate) SetStartTime(v time.Time) *TriageRunUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TriageRunUpdate) SetNillableStartTime(v *time.Time) *TriageRunUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TriageRunUpdate) SetEndTime(v time.Time) *TriageRunUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TriageRunUpdate) SetNillableEndTime(v *time.Time) *TriageRunUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TriageRunUpdate) SetStatus(v triagerun.Status) *TriageRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TriageRunUpdate) SetNillableStatus(v *triagerun.Status) *TriageRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReportContent sets the "report_content" field.
func (_u *TriageRunUpdate) SetReportContent(v string) *TriageRunUpdate {
	_u.mutation.SetReportContent(v)
	return _u
}

// SetNillableReportContent sets the "report_content" field if the given value is not nil.
func (_u *TriageRunUpdate) SetNillableReportContent(v *string) *TriageRunUpdate {
	if v != nil {
		_u.SetReportContent(*v)
	}
	return _u
}

// ClearReportContent clears the value of the "report_content" field.
func (_u *TriageRunUpdate) ClearReportContent() *TriageRunUpdate {
	_u.mutation.ClearReportContent()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TriageRunUpdate) SetErrorMessage(v string) *TriageRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TriageRunUpdate) SetNillableErrorMessage(v *string) *TriageRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TriageRunUpdate) ClearErrorMessage() *TriageRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the TriageRunMutation object of the builder.
func (_u *TriageRunUpdate) Mutation() *TriageRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TriageRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriageRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TriageRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriageRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TriageRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := triagerun.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriageRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := triagerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TriageRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TriageRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triagerun.Table, triagerun.Columns, sqlgraph.NewFieldSpec(triagerun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(triagerun.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(triagerun.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(triagerun.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(triagerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReportContent(); ok {
		_spec.SetField(triagerun.FieldReportContent, field.TypeString, value)
	}
	if _u.mutation.ReportContentCleared() {
		_spec.ClearField(triagerun.FieldReportContent, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(triagerun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(triagerun.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triagerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TriageRunUpdateOne is the builder for updating a single TriageRun entity.
type TriageRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TriageRunMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *TriageRunUpdateOne) SetUpdateTime(v time.Time) *TriageRunUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *TriageRunUpdateOne) SetStartTime(v time.Time) *TriageRunUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *TriageRunUpdateOne) SetNillableStartTime(v *time.Time) *TriageRunUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *TriageRunUpdateOne) SetEndTime(v time.Time) *TriageRunUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *TriageRunUpdateOne) SetNillableEndTime(v *time.Time) *TriageRunUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TriageRunUpdateOne) SetStatus(v triagerun.Status) *TriageRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TriageRunUpdateOne) SetNillableStatus(v *triagerun.Status) *TriageRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReportContent sets the "report_content" field.
func (_u *TriageRunUpdateOne) SetReportContent(v string) *TriageRunUpdateOne {
	_u.mutation.SetReportContent(v)
	return _u
}

// SetNillableReportContent sets the "report_content" field if the given value is not nil.
func (_u *TriageRunUpdateOne) SetNillableReportContent(v *string) *TriageRunUpdateOne {
	if v != nil {
		_u.SetReportContent(*v)
	}
	return _u
}

// ClearReportContent clears the value of the "report_content" field.
func (_u *TriageRunUpdateOne) ClearReportContent() *TriageRunUpdateOne {
	_u.mutation.ClearReportContent()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TriageRunUpdateOne) SetErrorMessage(v string) *TriageRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TriageRunUpdateOne) SetNillableErrorMessage(v *string) *TriageRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TriageRunUpdateOne) ClearErrorMessage() *TriageRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the TriageRunMutation object of the builder.
func (_u *TriageRunUpdateOne) Mutation() *TriageRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the TriageRunUpdate builder.
func (_u *TriageRunUpdateOne) Where(ps ...predicate.TriageRun) *TriageRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TriageRunUpdateOne) Select(field string, fields ...string) *TriageRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TriageRun entity.
func (_u *TriageRunUpdateOne) Save(ctx context.Context) (*TriageRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TriageRunUpdateOne) SaveX(ctx context.Context) *TriageRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TriageRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TriageRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TriageRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := triagerun.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TriageRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := triagerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TriageRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TriageRunUpdateOne) sqlSave(ctx context.Context) (_node *TriageRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(triagerun.Table, triagerun.Columns, sqlgraph.NewFieldSpec(triagerun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TriageRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, triagerun.FieldID)
		for _, f := range fields {
			if !triagerun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != triagerun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(triagerun.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(triagerun.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(triagerun.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(triagerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReportContent(); ok {
		_spec.SetField(triagerun.FieldReportContent, field.TypeString, value)
	}
	if _u.mutation.ReportContentCleared() {
		_spec.ClearField(triagerun.FieldReportContent, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(triagerun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(triagerun.FieldErrorMessage, field.TypeString)
	}
	_node = &TriageRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{triagerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
