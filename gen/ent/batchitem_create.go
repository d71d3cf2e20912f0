// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/plateworks/menugen/gen/ent/batch"
	"github.com/plateworks/menugen/gen/ent/batchitem"
)

// BatchItemCreate is the builder for creating a BatchItem entity.
type BatchItemCreate struct {
	config
	mutation *BatchItemMutation
	hooks    []Hook
}

// SetBatchID sets the "batch_id" field.
func (_c *BatchItemCreate) SetBatchID(v uuid.UUID) *BatchItemCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *BatchItemCreate) SetPosition(v int) *BatchItemCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetName sets the "name" field.
func (_c *BatchItemCreate) SetName(v string) *BatchItemCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *BatchItemCreate) SetPrompt(v string) *BatchItemCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BatchItemCreate) SetStatus(v string) *BatchItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *BatchItemCreate) SetFailureReason(v string) *BatchItemCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableFailureReason(v *string) *BatchItemCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetFailureMessage sets the "failure_message" field.
func (_c *BatchItemCreate) SetFailureMessage(v string) *BatchItemCreate {
	_c.mutation.SetFailureMessage(v)
	return _c
}

// SetNillableFailureMessage sets the "failure_message" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableFailureMessage(v *string) *BatchItemCreate {
	if v != nil {
		_c.SetFailureMessage(*v)
	}
	return _c
}

// SetImagePath sets the "image_path" field.
func (_c *BatchItemCreate) SetImagePath(v string) *BatchItemCreate {
	_c.mutation.SetImagePath(v)
	return _c
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableImagePath(v *string) *BatchItemCreate {
	if v != nil {
		_c.SetImagePath(*v)
	}
	return _c
}

// SetWidth sets the "width" field.
func (_c *BatchItemCreate) SetWidth(v int) *BatchItemCreate {
	_c.mutation.SetWidth(v)
	return _c
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableWidth(v *int) *BatchItemCreate {
	if v != nil {
		_c.SetWidth(*v)
	}
	return _c
}

// SetHeight sets the "height" field.
func (_c *BatchItemCreate) SetHeight(v int) *BatchItemCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableHeight(v *int) *BatchItemCreate {
	if v != nil {
		_c.SetHeight(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BatchItemCreate) SetID(v uuid.UUID) *BatchItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BatchItemCreate) SetNillableID(v *uuid.UUID) *BatchItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_c *BatchItemCreate) SetBatch(v *Batch) *BatchItemCreate {
	return _c.SetBatchID(v.ID)
}

// Mutation returns the BatchItemMutation object of the builder.
func (_c *BatchItemCreate) Mutation() *BatchItemMutation {
	return _c.mutation
}

// Save creates the BatchItem in the database.
func (_c *BatchItemCreate) Save(ctx context.Context) (*BatchItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BatchItemCreate) SaveX(ctx context.Context) *BatchItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BatchItemCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := batchitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BatchItemCreate) check() error {
	if _, ok := _c.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "BatchItem.batch_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "BatchItem.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := batchitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "BatchItem.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "BatchItem.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := batchitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "BatchItem.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "BatchItem.prompt"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BatchItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := batchitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchItem.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FailureReason(); ok {
		if err := batchitem.FailureReasonValidator(v); err != nil {
			return &ValidationError{Name: "failure_reason", err: fmt.Errorf(`ent: validator failed for field "BatchItem.failure_reason": %w`, err)}
		}
	}
	if len(_c.mutation.BatchIDs()) == 0 {
		return &ValidationError{Name: "batch", err: errors.New(`ent: missing required edge "BatchItem.batch"`)}
	}
	return nil
}

func (_c *BatchItemCreate) sqlSave(ctx context.Context) (*BatchItem, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BatchItemCreate) createSpec() (*BatchItem, *sqlgraph.CreateSpec) {
	var (
		_node = &BatchItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(batchitem.Table, sqlgraph.NewFieldSpec(batchitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(batchitem.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(batchitem.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(batchitem.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(batchitem.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(batchitem.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.FailureMessage(); ok {
		_spec.SetField(batchitem.FieldFailureMessage, field.TypeString, value)
		_node.FailureMessage = &value
	}
	if value, ok := _c.mutation.ImagePath(); ok {
		_spec.SetField(batchitem.FieldImagePath, field.TypeString, value)
		_node.ImagePath = &value
	}
	if value, ok := _c.mutation.Width(); ok {
		_spec.SetField(batchitem.FieldWidth, field.TypeInt, value)
		_node.Width = &value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(batchitem.FieldHeight, field.TypeInt, value)
		_node.Height = &value
	}
	if nodes := _c.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   batchitem.BatchTable,
			Columns: []string{batchitem.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BatchID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BatchItemCreateBulk is the builder for creating many BatchItem entities in bulk.
type BatchItemCreateBulk struct {
	config
	err      error
	builders []*BatchItemCreate
}

// Save creates the BatchItem entities in the database.
func (_c *BatchItemCreateBulk) Save(ctx context.Context) ([]*BatchItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BatchItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatchItemMutation)
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
func (_c *BatchItemCreateBulk) SaveX(ctx context.Context) []*BatchItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
