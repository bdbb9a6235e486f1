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
	"github.com/fachebot/inbox-hero/internal/ent/draft"
	"github.com/fachebot/inbox-hero/internal/ent/predicate"
)

// DraftUpdate is the builder for updating Draft entities.
type DraftUpdate struct {
	config
	hooks    []Hook
	mutation *DraftMutation
}

// Where appends a list predicates to the DraftUpdate builder.
func (_u *DraftUpdate) Where(ps ...predicate.Draft) *DraftUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *DraftUpdate) SetUpdateTime(v time.Time) *DraftUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *DraftUpdate) SetMessageID(v string) *DraftUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *DraftUpdate) SetNillableMessageID(v *string) *DraftUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetRecipient sets the "recipient" field.
func (_u *DraftUpdate) SetRecipient(v string) *DraftUpdate {
	_u.mutation.SetRecipient(v)
	return _u
}

// SetNillableRecipient sets the "recipient" field if the given value is not nil.
func (_u *DraftUpdate) SetNillableRecipient(v *string) *DraftUpdate {
	if v != nil {
		_u.SetRecipient(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *DraftUpdate) SetSubject(v string) *DraftUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *DraftUpdate) SetNillableSubject(v *string) *DraftUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *DraftUpdate) SetContent(v string) *DraftUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DraftUpdate) SetNillableContent(v *string) *DraftUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetDraftID sets the "draft_id" field.
func (_u *DraftUpdate) SetDraftID(v string) *DraftUpdate {
	_u.mutation.SetDraftID(v)
	return _u
}

// SetNillableDraftID sets the "draft_id" field if the given value is not nil.
func (_u *DraftUpdate) SetNillableDraftID(v *string) *DraftUpdate {
	if v != nil {
		_u.SetDraftID(*v)
	}
	return _u
}

// ClearDraftID clears the value of the "draft_id" field.
func (_u *DraftUpdate) ClearDraftID() *DraftUpdate {
	_u.mutation.ClearDraftID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DraftUpdate) SetStatus(v draft.Status) *DraftUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DraftUpdate) SetNillableStatus(v *draft.Status) *DraftUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DraftUpdate) SetErrorMessage(v string) *DraftUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DraftUpdate) SetNillableErrorMessage(v *string) *DraftUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DraftUpdate) ClearErrorMessage() *DraftUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the DraftMutation object of the builder.
func (_u *DraftUpdate) Mutation() *DraftMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DraftUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DraftUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DraftUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DraftUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DraftUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := draft.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DraftUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := draft.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Draft.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DraftUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(draft.Table, draft.Columns, sqlgraph.NewFieldSpec(draft.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(draft.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(draft.FieldMessageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recipient(); ok {
		_spec.SetField(draft.FieldRecipient, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(draft.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(draft.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.DraftID(); ok {
		_spec.SetField(draft.FieldDraftID, field.TypeString, value)
	}
	if _u.mutation.DraftIDCleared() {
		_spec.ClearField(draft.FieldDraftID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(draft.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(draft.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(draft.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{draft.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DraftUpdateOne is the builder for updating a single Draft entity.
type DraftUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DraftMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *DraftUpdateOne) SetUpdateTime(v time.Time) *DraftUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *DraftUpdateOne) SetMessageID(v string) *DraftUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *DraftUpdateOne) SetNillableMessageID(v *string) *DraftUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetRecipient sets the "recipient" field.
func (_u *DraftUpdateOne) SetRecipient(v string) *DraftUpdateOne {
	_u.mutation.SetRecipient(v)
	return _u
}

// SetNillableRecipient sets the "recipient" field if the given value is not nil.
func (_u *DraftUpdateOne) SetNillableRecipient(v *string) *DraftUpdateOne {
	if v != nil {
		_u.SetRecipient(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *DraftUpdateOne) SetSubject(v string) *DraftUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *DraftUpdateOne) SetNillableSubject(v *string) *DraftUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *DraftUpdateOne) SetContent(v string) *DraftUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DraftUpdateOne) SetNillableContent(v *string) *DraftUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetDraftID sets the "draft_id" field.
func (_u *DraftUpdateOne) SetDraftID(v string) *DraftUpdateOne {
	_u.mutation.SetDraftID(v)
	return _u
}

// SetNillableDraftID sets the "draft_id" field if the given value is not nil.
func (_u *DraftUpdateOne) SetNillableDraftID(v *string) *DraftUpdateOne {
	if v != nil {
		_u.SetDraftID(*v)
	}
	return _u
}

// ClearDraftID clears the value of the "draft_id" field.
func (_u *DraftUpdateOne) ClearDraftID() *DraftUpdateOne {
	_u.mutation.ClearDraftID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DraftUpdateOne) SetStatus(v draft.Status) *DraftUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DraftUpdateOne) SetNillableStatus(v *draft.Status) *DraftUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DraftUpdateOne) SetErrorMessage(v string) *DraftUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DraftUpdateOne) SetNillableErrorMessage(v *string) *DraftUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DraftUpdateOne) ClearErrorMessage() *DraftUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the DraftMutation object of the builder.
func (_u *DraftUpdateOne) Mutation() *DraftMutation {
	return _u.mutation
}

// Where appends a list predicates to the DraftUpdate builder.
func (_u *DraftUpdateOne) Where(ps ...predicate.Draft) *DraftUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DraftUpdateOne) Select(field string, fields ...string) *DraftUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Draft entity.
func (_u *DraftUpdateOne) Save(ctx context.Context) (*Draft, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DraftUpdateOne) SaveX(ctx context.Context) *Draft {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DraftUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DraftUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DraftUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := draft.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DraftUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := draft.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Draft.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DraftUpdateOne) sqlSave(ctx context.Context) (_node *Draft, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(draft.Table, draft.Columns, sqlgraph.NewFieldSpec(draft.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Draft.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, draft.FieldID)
		for _, f := range fields {
			if !draft.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != draft.FieldID {
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
		_spec.SetField(draft.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(draft.FieldMessageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recipient(); ok {
		_spec.SetField(draft.FieldRecipient, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(draft.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(draft.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.DraftID(); ok {
		_spec.SetField(draft.FieldDraftID, field.TypeString, value)
	}
	if _u.mutation.DraftIDCleared() {
		_spec.ClearField(draft.FieldDraftID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(draft.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(draft.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(draft.FieldErrorMessage, field.TypeString)
	}
	_node = &Draft{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{draft.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
