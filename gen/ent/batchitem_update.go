// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/plateworks/menugen/gen/ent/batch"
	"github.com/plateworks/menugen/gen/ent/batchitem"
	"github.com/plateworks/menugen/gen/ent/predicate"
)

// BatchItemUpdate is the builder for updating BatchItem entities.
type BatchItemUpdate struct {
	config
	hooks    []Hook
	mutation *BatchItemMutation
}

// Where appends a list predicates to the BatchItemUpdate builder.
func (_u *BatchItemUpdate) Where(ps ...predicate.BatchItem) *BatchItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *BatchItemUpdate) SetBatchID(v uuid.UUID) *BatchItemUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableBatchID(v *uuid.UUID) *BatchItemUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *BatchItemUpdate) SetPosition(v int) *BatchItemUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillablePosition(v *int) *BatchItemUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *BatchItemUpdate) AddPosition(v int) *BatchItemUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetName sets the "name" field.
func (_u *BatchItemUpdate) SetName(v string) *BatchItemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableName(v *string) *BatchItemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *BatchItemUpdate) SetPrompt(v string) *BatchItemUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillablePrompt(v *string) *BatchItemUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchItemUpdate) SetStatus(v string) *BatchItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableStatus(v *string) *BatchItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *BatchItemUpdate) SetFailureReason(v string) *BatchItemUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableFailureReason(v *string) *BatchItemUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *BatchItemUpdate) ClearFailureReason() *BatchItemUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetFailureMessage sets the "failure_message" field.
func (_u *BatchItemUpdate) SetFailureMessage(v string) *BatchItemUpdate {
	_u.mutation.SetFailureMessage(v)
	return _u
}

// SetNillableFailureMessage sets the "failure_message" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableFailureMessage(v *string) *BatchItemUpdate {
	if v != nil {
		_u.SetFailureMessage(*v)
	}
	return _u
}

// ClearFailureMessage clears the value of the "failure_message" field.
func (_u *BatchItemUpdate) ClearFailureMessage() *BatchItemUpdate {
	_u.mutation.ClearFailureMessage()
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *BatchItemUpdate) SetImagePath(v string) *BatchItemUpdate {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableImagePath(v *string) *BatchItemUpdate {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// ClearImagePath clears the value of the "image_path" field.
func (_u *BatchItemUpdate) ClearImagePath() *BatchItemUpdate {
	_u.mutation.ClearImagePath()
	return _u
}

// SetWidth sets the "width" field.
func (_u *BatchItemUpdate) SetWidth(v int) *BatchItemUpdate {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableWidth(v *int) *BatchItemUpdate {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *BatchItemUpdate) AddWidth(v int) *BatchItemUpdate {
	_u.mutation.AddWidth(v)
	return _u
}

// ClearWidth clears the value of the "width" field.
func (_u *BatchItemUpdate) ClearWidth() *BatchItemUpdate {
	_u.mutation.ClearWidth()
	return _u
}

// SetHeight sets the "height" field.
func (_u *BatchItemUpdate) SetHeight(v int) *BatchItemUpdate {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *BatchItemUpdate) SetNillableHeight(v *int) *BatchItemUpdate {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *BatchItemUpdate) AddHeight(v int) *BatchItemUpdate {
	_u.mutation.AddHeight(v)
	return _u
}

// ClearHeight clears the value of the "height" field.
func (_u *BatchItemUpdate) ClearHeight() *BatchItemUpdate {
	_u.mutation.ClearHeight()
	return _u
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *BatchItemUpdate) SetBatch(v *Batch) *BatchItemUpdate {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the BatchItemMutation object of the builder.
func (_u *BatchItemUpdate) Mutation() *BatchItemMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *BatchItemUpdate) ClearBatch() *BatchItemUpdate {
	_u.mutation.ClearBatch()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatchItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatchItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchItemUpdate) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := batchitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "BatchItem.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := batchitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "BatchItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := batchitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchItem.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureReason(); ok {
		if err := batchitem.FailureReasonValidator(v); err != nil {
			return &ValidationError{Name: "failure_reason", err: fmt.Errorf(`ent: validator failed for field "BatchItem.failure_reason": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BatchItem.batch"`)
	}
	return nil
}

func (_u *BatchItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchitem.Table, batchitem.Columns, sqlgraph.NewFieldSpec(batchitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(batchitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(batchitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(batchitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(batchitem.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batchitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(batchitem.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(batchitem.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.FailureMessage(); ok {
		_spec.SetField(batchitem.FieldFailureMessage, field.TypeString, value)
	}
	if _u.mutation.FailureMessageCleared() {
		_spec.ClearField(batchitem.FieldFailureMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(batchitem.FieldImagePath, field.TypeString, value)
	}
	if _u.mutation.ImagePathCleared() {
		_spec.ClearField(batchitem.FieldImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(batchitem.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(batchitem.FieldWidth, field.TypeInt, value)
	}
	if _u.mutation.WidthCleared() {
		_spec.ClearField(batchitem.FieldWidth, field.TypeInt)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(batchitem.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(batchitem.FieldHeight, field.TypeInt, value)
	}
	if _u.mutation.HeightCleared() {
		_spec.ClearField(batchitem.FieldHeight, field.TypeInt)
	}
	if _u.mutation.BatchCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatchItemUpdateOne is the builder for updating a single BatchItem entity.
type BatchItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchItemMutation
}

// SetBatchID sets the "batch_id" field.
func (_u *BatchItemUpdateOne) SetBatchID(v uuid.UUID) *BatchItemUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableBatchID(v *uuid.UUID) *BatchItemUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *BatchItemUpdateOne) SetPosition(v int) *BatchItemUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillablePosition(v *int) *BatchItemUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *BatchItemUpdateOne) AddPosition(v int) *BatchItemUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetName sets the "name" field.
func (_u *BatchItemUpdateOne) SetName(v string) *BatchItemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableName(v *string) *BatchItemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *BatchItemUpdateOne) SetPrompt(v string) *BatchItemUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillablePrompt(v *string) *BatchItemUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchItemUpdateOne) SetStatus(v string) *BatchItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableStatus(v *string) *BatchItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *BatchItemUpdateOne) SetFailureReason(v string) *BatchItemUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableFailureReason(v *string) *BatchItemUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *BatchItemUpdateOne) ClearFailureReason() *BatchItemUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetFailureMessage sets the "failure_message" field.
func (_u *BatchItemUpdateOne) SetFailureMessage(v string) *BatchItemUpdateOne {
	_u.mutation.SetFailureMessage(v)
	return _u
}

// SetNillableFailureMessage sets the "failure_message" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableFailureMessage(v *string) *BatchItemUpdateOne {
	if v != nil {
		_u.SetFailureMessage(*v)
	}
	return _u
}

// ClearFailureMessage clears the value of the "failure_message" field.
func (_u *BatchItemUpdateOne) ClearFailureMessage() *BatchItemUpdateOne {
	_u.mutation.ClearFailureMessage()
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *BatchItemUpdateOne) SetImagePath(v string) *BatchItemUpdateOne {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableImagePath(v *string) *BatchItemUpdateOne {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// ClearImagePath clears the value of the "image_path" field.
func (_u *BatchItemUpdateOne) ClearImagePath() *BatchItemUpdateOne {
	_u.mutation.ClearImagePath()
	return _u
}

// SetWidth sets the "width" field.
func (_u *BatchItemUpdateOne) SetWidth(v int) *BatchItemUpdateOne {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableWidth(v *int) *BatchItemUpdateOne {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *BatchItemUpdateOne) AddWidth(v int) *BatchItemUpdateOne {
	_u.mutation.AddWidth(v)
	return _u
}

// ClearWidth clears the value of the "width" field.
func (_u *BatchItemUpdateOne) ClearWidth() *BatchItemUpdateOne {
	_u.mutation.ClearWidth()
	return _u
}

// SetHeight sets the "height" field.
func (_u *BatchItemUpdateOne) SetHeight(v int) *BatchItemUpdateOne {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *BatchItemUpdateOne) SetNillableHeight(v *int) *BatchItemUpdateOne {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *BatchItemUpdateOne) AddHeight(v int) *BatchItemUpdateOne {
	_u.mutation.AddHeight(v)
	return _u
}

// ClearHeight clears the value of the "height" field.
func (_u *BatchItemUpdateOne) ClearHeight() *BatchItemUpdateOne {
	_u.mutation.ClearHeight()
	return _u
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *BatchItemUpdateOne) SetBatch(v *Batch) *BatchItemUpdateOne {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the BatchItemMutation object of the builder.
func (_u *BatchItemUpdateOne) Mutation() *BatchItemMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *BatchItemUpdateOne) ClearBatch() *BatchItemUpdateOne {
	_u.mutation.ClearBatch()
	return _u
}

// Where appends a list predicates to the BatchItemUpdate builder.
func (_u *BatchItemUpdateOne) Where(ps ...predicate.BatchItem) *BatchItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatchItemUpdateOne) Select(field string, fields ...string) *BatchItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BatchItem entity.
func (_u *BatchItemUpdateOne) Save(ctx context.Context) (*BatchItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchItemUpdateOne) SaveX(ctx context.Context) *BatchItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatchItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchItemUpdateOne) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := batchitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "BatchItem.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := batchitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "BatchItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := batchitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BatchItem.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureReason(); ok {
		if err := batchitem.FailureReasonValidator(v); err != nil {
			return &ValidationError{Name: "failure_reason", err: fmt.Errorf(`ent: validator failed for field "BatchItem.failure_reason": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BatchItem.batch"`)
	}
	return nil
}

func (_u *BatchItemUpdateOne) sqlSave(ctx context.Context) (_node *BatchItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batchitem.Table, batchitem.Columns, sqlgraph.NewFieldSpec(batchitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BatchItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batchitem.FieldID)
		for _, f := range fields {
			if !batchitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batchitem.FieldID {
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
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(batchitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(batchitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(batchitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(batchitem.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batchitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(batchitem.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(batchitem.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.FailureMessage(); ok {
		_spec.SetField(batchitem.FieldFailureMessage, field.TypeString, value)
	}
	if _u.mutation.FailureMessageCleared() {
		_spec.ClearField(batchitem.FieldFailureMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(batchitem.FieldImagePath, field.TypeString, value)
	}
	if _u.mutation.ImagePathCleared() {
		_spec.ClearField(batchitem.FieldImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(batchitem.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(batchitem.FieldWidth, field.TypeInt, value)
	}
	if _u.mutation.WidthCleared() {
		_spec.ClearField(batchitem.FieldWidth, field.TypeInt)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(batchitem.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(batchitem.FieldHeight, field.TypeInt, value)
	}
	if _u.mutation.HeightCleared() {
		_spec.ClearField(batchitem.FieldHeight, field.TypeInt)
	}
	if _u.mutation.BatchCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BatchItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batchitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
