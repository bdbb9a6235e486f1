// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/inbox-hero/internal/ent/summarycache"
)

// SummaryCacheCreate is the builder for creating a SummaryCache entity.
type SummaryCacheCreate struct {
	config
	mutation *SummaryCacheMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (_c *SummaryCacheCreate) SetCreateTime(v time.Time) *SummaryCacheCreate {
	_c.mutation.SetCreateTime(v)
	return _c
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (_c *SummaryCacheCreate) SetNillableCreateTime(v *time.Time) *SummaryCacheCreate {
	if v != nil {
		_c.SetCreateTime(*v)
	}
	return _c
}

// SetUpdateTime sets the "update_time" field.
func (_c *SummaryCacheCreate) SetUpdateTime(v time.Time) *SummaryCacheCreate {
	_c.mutation.SetUpdateTime(v)
	return _c
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (_c *SummaryCacheCreate) SetNillableUpdateTime(v *time.Time) *SummaryCacheCreate {
	if v != nil {
		_c.SetUpdateTime(*v)
	}
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *SummaryCacheCreate) SetMessageID(v string) *SummaryCacheCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *SummaryCacheCreate) SetContent(v string) *SummaryCacheCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetHadAttachments sets the "had_attachments" field.
func (_c *SummaryCacheCreate) SetHadAttachments(v bool) *SummaryCacheCreate {
	_c.mutation.SetHadAttachments(v)
	return _c
}

// SetNillableHadAttachments sets the "had_attachments" field if the given value is not nil.
func (_c *SummaryCacheCreate) SetNillableHadAttachments(v *bool) *SummaryCacheCreate {
	if v != nil {
		_c.SetHadAttachments(*v)
	}
	return _c
}

// SetAttachmentErrors sets the "attachment_errors" field.
func (_c *SummaryCacheCreate) SetAttachmentErrors(v []string) *SummaryCacheCreate {
	_c.mutation.SetAttachmentErrors(v)
	return _c
}

// Mutation returns the SummaryCacheMutation object of the builder.
func (_c *SummaryCacheCreate) Mutation() *SummaryCacheMutation {
	return _c.mutation
}

// Save creates the SummaryCache in the database.
func (_c *SummaryCacheCreate) Save(ctx context.Context) (*SummaryCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SummaryCacheCreate) SaveX(ctx context.Context) *SummaryCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SummaryCacheCreate) defaults() {
	if _, ok := _c.mutation.CreateTime(); !ok {
		v := summarycache.DefaultCreateTime()
		_c.mutation.SetCreateTime(v)
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		v := summarycache.DefaultUpdateTime()
		_c.mutation.SetUpdateTime(v)
	}
	if _, ok := _c.mutation.HadAttachments(); !ok {
		v := summarycache.DefaultHadAttachments
		_c.mutation.SetHadAttachments(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SummaryCacheCreate) check() error {
	if _, ok := _c.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "SummaryCache.create_time"`)}
	}
	if _, ok := _c.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "SummaryCache.update_time"`)}
	}
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "SummaryCache.message_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "SummaryCache.content"`)}
	}
	if _, ok := _c.mutation.HadAttachments(); !ok {
		return &ValidationError{Name: "had_attachments", err: errors.New(`ent: missing required field "SummaryCache.had_attachments"`)}
	}
	return nil
}

func (_c *SummaryCacheCreate) sqlSave(ctx context.Context) (*SummaryCache, error) {
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

func (_c *SummaryCacheCreate) createSpec() (*SummaryCache, *sqlgraph.CreateSpec) {
	var (
		_node = &SummaryCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(summarycache.Table, sqlgraph.NewFieldSpec(summarycache.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CreateTime(); ok {
		_spec.SetField(summarycache.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := _c.mutation.UpdateTime(); ok {
		_spec.SetField(summarycache.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(summarycache.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(summarycache.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.HadAttachments(); ok {
		_spec.SetField(summarycache.FieldHadAttachments, field.TypeBool, value)
		_node.HadAttachments = value
	}
	if value, ok := _c.mutation.AttachmentErrors(); ok {
		_spec.SetField(summarycache.FieldAttachmentErrors, field.TypeJSON, value)
		_node.AttachmentErrors = value
	}
	return _node, _spec
}

// SummaryCacheCreateBulk is the builder for creating many SummaryCache entities in bulk.
type SummaryCacheCreateBulk struct {
	config
	err      error
	builders []*SummaryCacheCreate
}

// Save creates the SummaryCache entities in the database.
func (_c *SummaryCacheCreateBulk) Save(ctx context.Context) ([]*SummaryCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SummaryCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SummaryCacheMutation)
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
func (_c *SummaryCacheCreateBulk) SaveX(ctx context.Context) []*SummaryCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SummaryCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SummaryCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
