// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/inbox-hero/internal/ent/draft"
)

// DraftCreate is the builder for creating a Draft entity.
type DraftCreate struct {
	config
	mutation *DraftMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *DraftCreate) SetCreateTime(v time.Time) *DraftCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *DraftCreate) SetNillableCreateTime(v *time.Time) *DraftCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *DraftCreate) SetUpdateTime(v time.Time) *DraftCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *DraftCreate) SetNillableUpdateTime(v *time.Time) *DraftCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *DraftCreate) SetMessageID(v string) *DraftCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetRecipient sets the "recipient" field.
func (_c *DraftCreate) SetRecipient(v string) *DraftCreate {
	_c.mutation.SetRecipient(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *DraftCreate) SetSubject(v string) *DraftCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *DraftCreate) SetContent(v string) *DraftCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetDraftID sets the "draft_id" field.
func (_c *DraftCreate) SetDraftID(v string) *DraftCreate {
	_c.mutation.SetDraftID(v)
	return _c
}

// SetNillableDraftID sets the "draft_id" field if the given value is not nil.
func (_c *DraftCreate) SetNillableDraftID(v *string) *DraftCreate {
	if v != nil {
		_c.SetDraftID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DraftCreate) SetStatus(v draft.Status) *DraftCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DraftCreate) SetNillableStatus(v *draft.Status) *DraftCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DraftCreate) SetErrorMessage(v string) *DraftCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DraftCreate) SetNillableErrorMessage(v *string) *DraftCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the DraftMutation object of the builder.
func (_c *DraftCreate) Mutation() *DraftMutation {
	return _c.mutation
}

// Save creates the Draft in the database.
func (_c *DraftCreate) Save(ctx context.Context) (*Draft, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DraftCreate) SaveX(ctx context.Context) *Draft {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DraftCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DraftCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DraftCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := draft.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := draft.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := draft.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DraftCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "Draft.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "Draft.update_time"`)}
	}
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "Draft.message_id"`)}
	}
	if _, ok := _c.mutation.Recipient(); !ok {
		return &ValidationError{Name: "recipient", err: errors.New(`ent: missing required field "Draft.recipient"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Draft.subject"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Draft.content"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Draft.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := draft.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Draft.status": %w`, err)}
		}
	}
	return nil
}

func (_c *DraftCreate) sqlSave(ctx context.Context) (*Draft, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DraftCreate) createSpec() (*Draft, *sqlgraph.CreateSpec) {
	var (
		_node = &Draft{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(draft.Table, sqlgraph.NewFieldSpec(draft.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(draft.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(draft.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(draft.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.Recipient(); ok {
		_spec.SetField(draft.FieldRecipient, field.TypeString, value)
		_node.Recipient = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(draft.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(draft.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.DraftID(); ok {
		_spec.SetField(draft.FieldDraftID, field.TypeString, value)
		_node.DraftID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(draft.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(draft.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// DraftCreateBulk is the builder for creating many Draft entities in bulk.
type DraftCreateBulk struct {
	config
	err      error
	builders []*DraftCreate
}

// Save creates the Draft entities in the database.
func (_c *DraftCreateBulk) Save(ctx context.Context) ([]*Draft, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Draft, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DraftMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DraftCreateBulk) SaveX(ctx context.Context) []*Draft {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DraftCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DraftCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
