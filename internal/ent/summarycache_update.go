// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/inbox-hero/internal/ent/predicate"
	"github.com/fachebot/inbox-hero/internal/ent/summarycache"
)

// SummaryCacheUpdate is the builder for updating SummaryCache entities.
type SummaryCacheUpdate struct {
	config
	hooks    []Hook
	mutation *SummaryCacheMutation
}

// Where appends a list predicates to the SummaryCacheUpdate builder.
func (_u *SummaryCacheUpdate) Where(ps ...predicate.SummaryCache) *SummaryCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdateTime sets the "update_time" field.
func (_u *SummaryCacheUpdate) SetUpdateTime(v time.Time) *SummaryCacheUpdate {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *SummaryCacheUpdate) SetMessageID(v string) *SummaryCacheUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *SummaryCacheUpdate) SetNillableMessageID(v *string) *SummaryCacheUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *SummaryCacheUpdate) SetContent(v string) *SummaryCacheUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SummaryCacheUpdate) SetNillableContent(v *string) *SummaryCacheUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetHadAttachments sets the "had_attachments" field.
func (_u *SummaryCacheUpdate) SetHadAttachments(v bool) *SummaryCacheUpdate {
	_u.mutation.SetHadAttachments(v)
	return _u
}

// SetNillableHadAttachments sets the "had_attachments" field if the given value is not nil.
func (_u *SummaryCacheUpdate) SetNillableHadAttachments(v *bool) *SummaryCacheUpdate {
	if v != nil {
		_u.SetHadAttachments(*v)
	}
	return _u
}

// SetAttachmentErrors sets the "attachment_errors" field.
func (_u *SummaryCacheUpdate) SetAttachmentErrors(v []string) *SummaryCacheUpdate {
	_u.mutation.SetAttachmentErrors(v)
	return _u
}

// AppendAttachmentErrors appends value to the "attachment_errors" field.
func (_u *SummaryCacheUpdate) AppendAttachmentErrors(v []string) *SummaryCacheUpdate {
	_u.mutation.AppendAttachmentErrors(v)
	return _u
}

// ClearAttachmentErrors clears the value of the "attachment_errors" field.
func (_u *SummaryCacheUpdate) ClearAttachmentErrors() *SummaryCacheUpdate {
	_u.mutation.ClearAttachmentErrors()
	return _u
}

// Mutation returns the SummaryCacheMutation object of the builder.
func (_u *SummaryCacheUpdate) Mutation() *SummaryCacheMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SummaryCacheUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SummaryCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SummaryCacheUpdate) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := summarycache.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

func (_u *SummaryCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(summarycache.Table, summarycache.Columns, sqlgraph.NewFieldSpec(summarycache.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdateTime(); ok {
		_spec.SetField(summarycache.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(summarycache.FieldMessageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(summarycache.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.HadAttachments(); ok {
		_spec.SetField(summarycache.FieldHadAttachments, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttachmentErrors(); ok {
		_spec.SetField(summarycache.FieldAttachmentErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttachmentErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summarycache.FieldAttachmentErrors, value)
		})
	}
	if _u.mutation.AttachmentErrorsCleared() {
		_spec.ClearField(summarycache.FieldAttachmentErrors, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summarycache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SummaryCacheUpdateOne is the builder for updating a single SummaryCache entity.
type SummaryCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SummaryCacheMutation
}

// SetUpdateTime sets the "update_time" field.
func (_u *SummaryCacheUpdateOne) SetUpdateTime(v time.Time) *SummaryCacheUpdateOne {
	_u.mutation.SetUpdateTime(v)
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *SummaryCacheUpdateOne) SetMessageID(v string) *SummaryCacheUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *SummaryCacheUpdateOne) SetNillableMessageID(v *string) *SummaryCacheUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *SummaryCacheUpdateOne) SetContent(v string) *SummaryCacheUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SummaryCacheUpdateOne) SetNillableContent(v *string) *SummaryCacheUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetHadAttachments sets the "had_attachments" field.
func (_u *SummaryCacheUpdateOne) SetHadAttachments(v bool) *SummaryCacheUpdateOne {
	_u.mutation.SetHadAttachments(v)
	return _u
}

// SetNillableHadAttachments sets the "had_attachments" field if the given value is not nil.
func (_u *SummaryCacheUpdateOne) SetNillableHadAttachments(v *bool) *SummaryCacheUpdateOne {
	if v != nil {
		_u.SetHadAttachments(*v)
	}
	return _u
}

// SetAttachmentErrors sets the "attachment_errors" field.
func (_u *SummaryCacheUpdateOne) SetAttachmentErrors(v []string) *SummaryCacheUpdateOne {
	_u.mutation.SetAttachmentErrors(v)
	return _u
}

// AppendAttachmentErrors appends value to the "attachment_errors" field.
func (_u *SummaryCacheUpdateOne) AppendAttachmentErrors(v []string) *SummaryCacheUpdateOne {
	_u.mutation.AppendAttachmentErrors(v)
	return _u
}

// ClearAttachmentErrors clears the value of the "attachment_errors" field.
func (_u *SummaryCacheUpdateOne) ClearAttachmentErrors() *SummaryCacheUpdateOne {
	_u.mutation.ClearAttachmentErrors()
	return _u
}

// Mutation returns the SummaryCacheMutation object of the builder.
func (_u *SummaryCacheUpdateOne) Mutation() *SummaryCacheMutation {
	return _u.mutation
}

// Where appends a list predicates to the SummaryCacheUpdate builder.
func (_u *SummaryCacheUpdateOne) Where(ps ...predicate.SummaryCache) *SummaryCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SummaryCacheUpdateOne) Select(field string, fields ...string) *SummaryCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SummaryCache entity.
func (_u *SummaryCacheUpdateOne) Save(ctx context.Context) (*SummaryCache, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryCacheUpdateOne) SaveX(ctx context.Context) *SummaryCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SummaryCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SummaryCacheUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdateTime(); !ok {
		v := summarycache.UpdateDefaultUpdateTime()
		_u.mutation.SetUpdateTime(v)
	}
}

func (_u *SummaryCacheUpdateOne) sqlSave(ctx context.Context) (_node *SummaryCache, err error) {
	_spec := sqlgraph.NewUpdateSpec(summarycache.Table, summarycache.Columns, sqlgraph.NewFieldSpec(summarycache.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SummaryCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summarycache.FieldID)
		for _, f := range fields {
			if !summarycache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != summarycache.FieldID {
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
		_spec.SetField(summarycache.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(summarycache.FieldMessageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(summarycache.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.HadAttachments(); ok {
		_spec.SetField(summarycache.FieldHadAttachments, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AttachmentErrors(); ok {
		_spec.SetField(summarycache.FieldAttachmentErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAttachmentErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summarycache.FieldAttachmentErrors, value)
		})
	}
	if _u.mutation.AttachmentErrorsCleared() {
		_spec.ClearField(summarycache.FieldAttachmentErrors, field.TypeJSON)
	}
	_node = &SummaryCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summarycache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
