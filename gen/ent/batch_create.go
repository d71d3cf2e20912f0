// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/plateworks/menugen/gen/ent/batch"
	"github.com/plateworks/menugen/gen/ent/batchitem"
)

// BatchCreate is the builder for creating a Batch entity.
type BatchCreate struct {
	config
	mutation *BatchMutation
	hooks    []Hook
}

// SetSource sets the "source" field.
func (_c *BatchCreate) SetSource(v string) *BatchCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *BatchCreate) SetRawText(v string) *BatchCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetImagePath sets the "image_path" field.
func (_c *BatchCreate) SetImagePath(v string) *BatchCreate {
	_c.mutation.SetImagePath(v)
	return _c
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_c *BatchCreate) SetNillableImagePath(v *string) *BatchCreate {
	if v != nil {
		_c.SetImagePath(*v)
	}
	return _c
}

// SetSize sets the "size" field.
func (_c *BatchCreate) SetSize(v string) *BatchCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetMaxItems sets the "max_items" field.
func (_c *BatchCreate) SetMaxItems(v int) *BatchCreate {
	_c.mutation.SetMaxItems(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BatchCreate) SetStatus(v string) *BatchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetParsedItems sets the "parsed_items" field.
func (_c *BatchCreate) SetParsedItems(v int) *BatchCreate {
	_c.mutation.SetParsedItems(v)
	return _c
}

// SetNillableParsedItems sets the "parsed_items" field if the given value is not nil.
func (_c *BatchCreate) SetNillableParsedItems(v *int) *BatchCreate {
	if v != nil {
		_c.SetParsedItems(*v)
	}
	return _c
}

// SetAttempted sets the "attempted" field.
func (_c *BatchCreate) SetAttempted(v int) *BatchCreate {
	_c.mutation.SetAttempted(v)
	return _c
}

// SetNillableAttempted sets the "attempted" field if the given value is not nil.
func (_c *BatchCreate) SetNillableAttempted(v *int) *BatchCreate {
	if v != nil {
		_c.SetAttempted(*v)
	}
	return _c
}

// SetTruncated sets the "truncated" field.
func (_c *BatchCreate) SetTruncated(v int) *BatchCreate {
	_c.mutation.SetTruncated(v)
	return _c
}

// SetNillableTruncated sets the "truncated" field if the given value is not nil.
func (_c *BatchCreate) SetNillableTruncated(v *int) *BatchCreate {
	if v != nil {
		_c.SetTruncated(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *BatchCreate) SetErrorMessage(v string) *BatchCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *BatchCreate) SetNillableErrorMessage(v *string) *BatchCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_c *BatchCreate) SetOcrConfidence(v float32) *BatchCreate {
	_c.mutation.SetOcrConfidence(v)
	return _c
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_c *BatchCreate) SetNillableOcrConfidence(v *float32) *BatchCreate {
	if v != nil {
		_c.SetOcrConfidence(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BatchCreate) SetCreatedAt(v time.Time) *BatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BatchCreate) SetNillableCreatedAt(v *time.Time) *BatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *BatchCreate) SetFinishedAt(v time.Time) *BatchCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *BatchCreate) SetNillableFinishedAt(v *time.Time) *BatchCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BatchCreate) SetID(v uuid.UUID) *BatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BatchCreate) SetNillableID(v *uuid.UUID) *BatchCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddItemIDs adds the "items" edge to the BatchItem entity by IDs.
func (_c *BatchCreate) AddItemIDs(ids ...uuid.UUID) *BatchCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the BatchItem entity.
func (_c *BatchCreate) AddItems(v ...*BatchItem) *BatchCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the BatchMutation object of the builder.
func (_c *BatchCreate) Mutation() *BatchMutation {
	return _c.mutation
}

// Save creates the Batch in the database.
func (_c *BatchCreate) Save(ctx context.Context) (*Batch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BatchCreate) SaveX(ctx context.Context) *Batch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BatchCreate) defaults() {
	if _, ok := _c.mutation.ParsedItems(); !ok {
		v := batch.DefaultParsedItems
		_c.mutation.SetParsedItems(v)
	}
	if _, ok := _c.mutation.Attempted(); !ok {
		v := batch.DefaultAttempted
		_c.mutation.SetAttempted(v)
	}
	if _, ok := _c.mutation.Truncated(); !ok {
		v := batch.DefaultTruncated
		_c.mutation.SetTruncated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := batch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := batch.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BatchCreate) check() error {
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Batch.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := batch.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Batch.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RawText(); !ok {
		return &ValidationError{Name: "raw_text", err: errors.New(`ent: missing required field "Batch.raw_text"`)}
	}
	if _, ok := _c.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "Batch.size"`)}
	}
	if v, ok := _c.mutation.Size(); ok {
		if err := batch.SizeValidator(v); err != nil {
			return &ValidationError{Name: "size", err: fmt.Errorf(`ent: validator failed for field "Batch.size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxItems(); !ok {
		return &ValidationError{Name: "max_items", err: errors.New(`ent: missing required field "Batch.max_items"`)}
	}
	if v, ok := _c.mutation.MaxItems(); ok {
		if err := batch.MaxItemsValidator(v); err != nil {
			return &ValidationError{Name: "max_items", err: fmt.Errorf(`ent: validator failed for field "Batch.max_items": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Batch.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ParsedItems(); !ok {
		return &ValidationError{Name: "parsed_items", err: errors.New(`ent: missing required field "Batch.parsed_items"`)}
	}
	if _, ok := _c.mutation.Attempted(); !ok {
		return &ValidationError{Name: "attempted", err: errors.New(`ent: missing required field "Batch.attempted"`)}
	}
	if _, ok := _c.mutation.Truncated(); !ok {
		return &ValidationError{Name: "truncated", err: errors.New(`ent: missing required field "Batch.truncated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Batch.created_at"`)}
	}
	return nil
}

func (_c *BatchCreate) sqlSave(ctx context.Context) (*Batch, error) {
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

func (_c *BatchCreate) createSpec() (*Batch, *sqlgraph.CreateSpec) {
	var (
		_node = &Batch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(batch.Table, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(batch.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(batch.FieldRawText, field.TypeString, value)
		_node.RawText = value
	}
	if value, ok := _c.mutation.ImagePath(); ok {
		_spec.SetField(batch.FieldImagePath, field.TypeString, value)
		_node.ImagePath = &value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(batch.FieldSize, field.TypeString, value)
		_node.Size = value
	}
	if value, ok := _c.mutation.MaxItems(); ok {
		_spec.SetField(batch.FieldMaxItems, field.TypeInt, value)
		_node.MaxItems = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ParsedItems(); ok {
		_spec.SetField(batch.FieldParsedItems, field.TypeInt, value)
		_node.ParsedItems = value
	}
	if value, ok := _c.mutation.Attempted(); ok {
		_spec.SetField(batch.FieldAttempted, field.TypeInt, value)
		_node.Attempted = value
	}
	if value, ok := _c.mutation.Truncated(); ok {
		_spec.SetField(batch.FieldTruncated, field.TypeInt, value)
		_node.Truncated = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(batch.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.OcrConfidence(); ok {
		_spec.SetField(batch.FieldOcrConfidence, field.TypeFloat32, value)
		_node.OcrConfidence = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(batch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(batch.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.ItemsTable,
			Columns: []string{batch.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batchitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BatchCreateBulk is the builder for creating many Batch entities in bulk.
type BatchCreateBulk struct {
	config
	err      error
	builders []*BatchCreate
}

// Save creates the Batch entities in the database.
func (_c *BatchCreateBulk) Save(ctx context.Context) ([]*Batch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Batch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatchMutation)
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
func (_c *BatchCreateBulk) SaveX(ctx context.Context) []*Batch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
