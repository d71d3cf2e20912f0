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
	"github.com/google/uuid"
	"github.com/plateworks/menugen/gen/ent/batch"
	"github.com/plateworks/menugen/gen/ent/batchitem"
	"github.com/plateworks/menugen/gen/ent/predicate"
)

// BatchUpdate is the builder for updating Batch entities.
type BatchUpdate struct {
	config
	hooks    []Hook
	mutation *BatchMutation
}

// Where appends a list predicates to the BatchUpdate builder.
func (_u *BatchUpdate) Where(ps ...predicate.Batch) *BatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSource sets the "source" field.
func (_u *BatchUpdate) SetSource(v string) *BatchUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableSource(v *string) *BatchUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *BatchUpdate) SetRawText(v string) *BatchUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableRawText(v *string) *BatchUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *BatchUpdate) SetImagePath(v string) *BatchUpdate {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableImagePath(v *string) *BatchUpdate {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// ClearImagePath clears the value of the "image_path" field.
func (_u *BatchUpdate) ClearImagePath() *BatchUpdate {
	_u.mutation.ClearImagePath()
	return _u
}

// SetSize sets the "size" field.
func (_u *BatchUpdate) SetSize(v string) *BatchUpdate {
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableSize(v *string) *BatchUpdate {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// SetMaxItems sets the "max_items" field.
func (_u *BatchUpdate) SetMaxItems(v int) *BatchUpdate {
	_u.mutation.ResetMaxItems()
	_u.mutation.SetMaxItems(v)
	return _u
}

// SetNillableMaxItems sets the "max_items" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableMaxItems(v *int) *BatchUpdate {
	if v != nil {
		_u.SetMaxItems(*v)
	}
	return _u
}

// AddMaxItems adds value to the "max_items" field.
func (_u *BatchUpdate) AddMaxItems(v int) *BatchUpdate {
	_u.mutation.AddMaxItems(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchUpdate) SetStatus(v string) *BatchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableStatus(v *string) *BatchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParsedItems sets the "parsed_items" field.
func (_u *BatchUpdate) SetParsedItems(v int) *BatchUpdate {
	_u.mutation.ResetParsedItems()
	_u.mutation.SetParsedItems(v)
	return _u
}

// SetNillableParsedItems sets the "parsed_items" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableParsedItems(v *int) *BatchUpdate {
	if v != nil {
		_u.SetParsedItems(*v)
	}
	return _u
}

// AddParsedItems adds value to the "parsed_items" field.
func (_u *BatchUpdate) AddParsedItems(v int) *BatchUpdate {
	_u.mutation.AddParsedItems(v)
	return _u
}

// SetAttempted sets the "attempted" field.
func (_u *BatchUpdate) SetAttempted(v int) *BatchUpdate {
	_u.mutation.ResetAttempted()
	_u.mutation.SetAttempted(v)
	return _u
}

// SetNillableAttempted sets the "attempted" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableAttempted(v *int) *BatchUpdate {
	if v != nil {
		_u.SetAttempted(*v)
	}
	return _u
}

// AddAttempted adds value to the "attempted" field.
func (_u *BatchUpdate) AddAttempted(v int) *BatchUpdate {
	_u.mutation.AddAttempted(v)
	return _u
}

// SetTruncated sets the "truncated" field.
func (_u *BatchUpdate) SetTruncated(v int) *BatchUpdate {
	_u.mutation.ResetTruncated()
	_u.mutation.SetTruncated(v)
	return _u
}

// SetNillableTruncated sets the "truncated" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableTruncated(v *int) *BatchUpdate {
	if v != nil {
		_u.SetTruncated(*v)
	}
	return _u
}

// AddTruncated adds value to the "truncated" field.
func (_u *BatchUpdate) AddTruncated(v int) *BatchUpdate {
	_u.mutation.AddTruncated(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BatchUpdate) SetErrorMessage(v string) *BatchUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableErrorMessage(v *string) *BatchUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BatchUpdate) ClearErrorMessage() *BatchUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *BatchUpdate) SetOcrConfidence(v float32) *BatchUpdate {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableOcrConfidence(v *float32) *BatchUpdate {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *BatchUpdate) AddOcrConfidence(v float32) *BatchUpdate {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *BatchUpdate) ClearOcrConfidence() *BatchUpdate {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BatchUpdate) SetCreatedAt(v time.Time) *BatchUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableCreatedAt(v *time.Time) *BatchUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *BatchUpdate) SetFinishedAt(v time.Time) *BatchUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableFinishedAt(v *time.Time) *BatchUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *BatchUpdate) ClearFinishedAt() *BatchUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddItemIDs adds the "items" edge to the BatchItem entity by IDs.
func (_u *BatchUpdate) AddItemIDs(ids ...uuid.UUID) *BatchUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the BatchItem entity.
func (_u *BatchUpdate) AddItems(v ...*BatchItem) *BatchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the BatchMutation object of the builder.
func (_u *BatchUpdate) Mutation() *BatchMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the BatchItem entity.
func (_u *BatchUpdate) ClearItems() *BatchUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to BatchItem entities by IDs.
func (_u *BatchUpdate) RemoveItemIDs(ids ...uuid.UUID) *BatchUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to BatchItem entities.
func (_u *BatchUpdate) RemoveItems(v ...*BatchItem) *BatchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchUpdate) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := batch.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Batch.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Size(); ok {
		if err := batch.SizeValidator(v); err != nil {
			return &ValidationError{Name: "size", err: fmt.Errorf(`ent: validator failed for field "Batch.size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxItems(); ok {
		if err := batch.MaxItemsValidator(v); err != nil {
			return &ValidationError{Name: "max_items", err: fmt.Errorf(`ent: validator failed for field "Batch.max_items": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batch.Table, batch.Columns, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(batch.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(batch.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(batch.FieldImagePath, field.TypeString, value)
	}
	if _u.mutation.ImagePathCleared() {
		_spec.ClearField(batch.FieldImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(batch.FieldSize, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxItems(); ok {
		_spec.SetField(batch.FieldMaxItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxItems(); ok {
		_spec.AddField(batch.FieldMaxItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParsedItems(); ok {
		_spec.SetField(batch.FieldParsedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParsedItems(); ok {
		_spec.AddField(batch.FieldParsedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempted(); ok {
		_spec.SetField(batch.FieldAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempted(); ok {
		_spec.AddField(batch.FieldAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Truncated(); ok {
		_spec.SetField(batch.FieldTruncated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTruncated(); ok {
		_spec.AddField(batch.FieldTruncated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(batch.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(batch.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(batch.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(batch.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(batch.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(batch.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(batch.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(batch.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatchUpdateOne is the builder for updating a single Batch entity.
type BatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchMutation
}

// SetSource sets the "source" field.
func (_u *BatchUpdateOne) SetSource(v string) *BatchUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableSource(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *BatchUpdateOne) SetRawText(v string) *BatchUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableRawText(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetImagePath sets the "image_path" field.
func (_u *BatchUpdateOne) SetImagePath(v string) *BatchUpdateOne {
	_u.mutation.SetImagePath(v)
	return _u
}

// SetNillableImagePath sets the "image_path" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableImagePath(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetImagePath(*v)
	}
	return _u
}

// ClearImagePath clears the value of the "image_path" field.
func (_u *BatchUpdateOne) ClearImagePath() *BatchUpdateOne {
	_u.mutation.ClearImagePath()
	return _u
}

// SetSize sets the "size" field.
func (_u *BatchUpdateOne) SetSize(v string) *BatchUpdateOne {
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableSize(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// SetMaxItems sets the "max_items" field.
func (_u *BatchUpdateOne) SetMaxItems(v int) *BatchUpdateOne {
	_u.mutation.ResetMaxItems()
	_u.mutation.SetMaxItems(v)
	return _u
}

// SetNillableMaxItems sets the "max_items" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableMaxItems(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetMaxItems(*v)
	}
	return _u
}

// AddMaxItems adds value to the "max_items" field.
func (_u *BatchUpdateOne) AddMaxItems(v int) *BatchUpdateOne {
	_u.mutation.AddMaxItems(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *BatchUpdateOne) SetStatus(v string) *BatchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableStatus(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetParsedItems sets the "parsed_items" field.
func (_u *BatchUpdateOne) SetParsedItems(v int) *BatchUpdateOne {
	_u.mutation.ResetParsedItems()
	_u.mutation.SetParsedItems(v)
	return _u
}

// SetNillableParsedItems sets the "parsed_items" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableParsedItems(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetParsedItems(*v)
	}
	return _u
}

// AddParsedItems adds value to the "parsed_items" field.
func (_u *BatchUpdateOne) AddParsedItems(v int) *BatchUpdateOne {
	_u.mutation.AddParsedItems(v)
	return _u
}

// SetAttempted sets the "attempted" field.
func (_u *BatchUpdateOne) SetAttempted(v int) *BatchUpdateOne {
	_u.mutation.ResetAttempted()
	_u.mutation.SetAttempted(v)
	return _u
}

// SetNillableAttempted sets the "attempted" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableAttempted(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetAttempted(*v)
	}
	return _u
}

// AddAttempted adds value to the "attempted" field.
func (_u *BatchUpdateOne) AddAttempted(v int) *BatchUpdateOne {
	_u.mutation.AddAttempted(v)
	return _u
}

// SetTruncated sets the "truncated" field.
func (_u *BatchUpdateOne) SetTruncated(v int) *BatchUpdateOne {
	_u.mutation.ResetTruncated()
	_u.mutation.SetTruncated(v)
	return _u
}

// SetNillableTruncated sets the "truncated" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableTruncated(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetTruncated(*v)
	}
	return _u
}

// AddTruncated adds value to the "truncated" field.
func (_u *BatchUpdateOne) AddTruncated(v int) *BatchUpdateOne {
	_u.mutation.AddTruncated(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *BatchUpdateOne) SetErrorMessage(v string) *BatchUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableErrorMessage(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *BatchUpdateOne) ClearErrorMessage() *BatchUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (_u *BatchUpdateOne) SetOcrConfidence(v float32) *BatchUpdateOne {
	_u.mutation.ResetOcrConfidence()
	_u.mutation.SetOcrConfidence(v)
	return _u
}

// SetNillableOcrConfidence sets the "ocr_confidence" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableOcrConfidence(v *float32) *BatchUpdateOne {
	if v != nil {
		_u.SetOcrConfidence(*v)
	}
	return _u
}

// AddOcrConfidence adds value to the "ocr_confidence" field.
func (_u *BatchUpdateOne) AddOcrConfidence(v float32) *BatchUpdateOne {
	_u.mutation.AddOcrConfidence(v)
	return _u
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (_u *BatchUpdateOne) ClearOcrConfidence() *BatchUpdateOne {
	_u.mutation.ClearOcrConfidence()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BatchUpdateOne) SetCreatedAt(v time.Time) *BatchUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableCreatedAt(v *time.Time) *BatchUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *BatchUpdateOne) SetFinishedAt(v time.Time) *BatchUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableFinishedAt(v *time.Time) *BatchUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *BatchUpdateOne) ClearFinishedAt() *BatchUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// AddItemIDs adds the "items" edge to the BatchItem entity by IDs.
func (_u *BatchUpdateOne) AddItemIDs(ids ...uuid.UUID) *BatchUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the BatchItem entity.
func (_u *BatchUpdateOne) AddItems(v ...*BatchItem) *BatchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the BatchMutation object of the builder.
func (_u *BatchUpdateOne) Mutation() *BatchMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the BatchItem entity.
func (_u *BatchUpdateOne) ClearItems() *BatchUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to BatchItem entities by IDs.
func (_u *BatchUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *BatchUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to BatchItem entities.
func (_u *BatchUpdateOne) RemoveItems(v ...*BatchItem) *BatchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the BatchUpdate builder.
func (_u *BatchUpdateOne) Where(ps ...predicate.Batch) *BatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatchUpdateOne) Select(field string, fields ...string) *BatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Batch entity.
func (_u *BatchUpdateOne) Save(ctx context.Context) (*Batch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchUpdateOne) SaveX(ctx context.Context) *Batch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchUpdateOne) check() error {
	if v, ok := _u.mutation.Source(); ok {
		if err := batch.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Batch.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Size(); ok {
		if err := batch.SizeValidator(v); err != nil {
			return &ValidationError{Name: "size", err: fmt.Errorf(`ent: validator failed for field "Batch.size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxItems(); ok {
		if err := batch.MaxItemsValidator(v); err != nil {
			return &ValidationError{Name: "max_items", err: fmt.Errorf(`ent: validator failed for field "Batch.max_items": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := batch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Batch.status": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchUpdateOne) sqlSave(ctx context.Context) (_node *Batch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batch.Table, batch.Columns, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Batch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batch.FieldID)
		for _, f := range fields {
			if !batch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batch.FieldID {
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
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(batch.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(batch.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImagePath(); ok {
		_spec.SetField(batch.FieldImagePath, field.TypeString, value)
	}
	if _u.mutation.ImagePathCleared() {
		_spec.ClearField(batch.FieldImagePath, field.TypeString)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(batch.FieldSize, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxItems(); ok {
		_spec.SetField(batch.FieldMaxItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxItems(); ok {
		_spec.AddField(batch.FieldMaxItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(batch.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParsedItems(); ok {
		_spec.SetField(batch.FieldParsedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedParsedItems(); ok {
		_spec.AddField(batch.FieldParsedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempted(); ok {
		_spec.SetField(batch.FieldAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempted(); ok {
		_spec.AddField(batch.FieldAttempted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Truncated(); ok {
		_spec.SetField(batch.FieldTruncated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTruncated(); ok {
		_spec.AddField(batch.FieldTruncated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(batch.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(batch.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.OcrConfidence(); ok {
		_spec.SetField(batch.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOcrConfidence(); ok {
		_spec.AddField(batch.FieldOcrConfidence, field.TypeFloat32, value)
	}
	if _u.mutation.OcrConfidenceCleared() {
		_spec.ClearField(batch.FieldOcrConfidence, field.TypeFloat32)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(batch.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(batch.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(batch.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Batch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
