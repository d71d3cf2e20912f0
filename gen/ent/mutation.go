// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/plateworks/menugen/gen/ent/batch"
	"github.com/plateworks/menugen/gen/ent/batchitem"
	"github.com/plateworks/menugen/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBatch     = "Batch"
	TypeBatchItem = "BatchItem"
)

// BatchMutation represents an operation that mutates the Batch nodes in the graph.
type BatchMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	source            *string
	raw_text          *string
	image_path        *string
	size              *string
	max_items         *int
	addmax_items      *int
	status            *string
	parsed_items      *int
	addparsed_items   *int
	attempted         *int
	addattempted      *int
	truncated         *int
	addtruncated      *int
	error_message     *string
	ocr_confidence    *float32
	addocr_confidence *float32
	created_at        *time.Time
	finished_at       *time.Time
	clearedFields     map[string]struct{}
	items             map[uuid.UUID]struct{}
	removeditems      map[uuid.UUID]struct{}
	cleareditems      bool
	done              bool
	oldValue          func(context.Context) (*Batch, error)
	predicates        []predicate.Batch
}

var _ ent.Mutation = (*BatchMutation)(nil)

// batchOption allows management of the mutation configuration using functional options.
type batchOption func(*BatchMutation)

// newBatchMutation creates new mutation for the Batch entity.
func newBatchMutation(c config, op Op, opts ...batchOption) *BatchMutation {
	m := &BatchMutation{
		config:        c,
		op:            op,
		typ:           TypeBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchID sets the ID field of the mutation.
func withBatchID(id uuid.UUID) batchOption {
	return func(m *BatchMutation) {
		var (
			err   error
			once  sync.Once
			value *Batch
		)
		m.oldValue = func(ctx context.Context) (*Batch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Batch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatch sets the old Batch of the mutation.
func withBatch(node *Batch) batchOption {
	return func(m *BatchMutation) {
		m.oldValue = func(context.Context) (*Batch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Batch entities.
func (m *BatchMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Batch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSource sets the "source" field.
func (m *BatchMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *BatchMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *BatchMutation) ResetSource() {
	m.source = nil
}

// SetRawText sets the "raw_text" field.
func (m *BatchMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *BatchMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *BatchMutation) ResetRawText() {
	m.raw_text = nil
}

// SetImagePath sets the "image_path" field.
func (m *BatchMutation) SetImagePath(s string) {
	m.image_path = &s
}

// ImagePath returns the value of the "image_path" field in the mutation.
func (m *BatchMutation) ImagePath() (r string, exists bool) {
	v := m.image_path
	if v == nil {
		return
	}
	return *v, true
}

// OldImagePath returns the old "image_path" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldImagePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagePath: %w", err)
	}
	return oldValue.ImagePath, nil
}

// ClearImagePath clears the value of the "image_path" field.
func (m *BatchMutation) ClearImagePath() {
	m.image_path = nil
	m.clearedFields[batch.FieldImagePath] = struct{}{}
}

// ImagePathCleared returns if the "image_path" field was cleared in this mutation.
func (m *BatchMutation) ImagePathCleared() bool {
	_, ok := m.clearedFields[batch.FieldImagePath]
	return ok
}

// ResetImagePath resets all changes to the "image_path" field.
func (m *BatchMutation) ResetImagePath() {
	m.image_path = nil
	delete(m.clearedFields, batch.FieldImagePath)
}

// SetSize sets the "size" field.
func (m *BatchMutation) SetSize(s string) {
	m.size = &s
}

// Size returns the value of the "size" field in the mutation.
func (m *BatchMutation) Size() (r string, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldSize(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// ResetSize resets all changes to the "size" field.
func (m *BatchMutation) ResetSize() {
	m.size = nil
}

// SetMaxItems sets the "max_items" field.
func (m *BatchMutation) SetMaxItems(i int) {
	m.max_items = &i
	m.addmax_items = nil
}

// MaxItems returns the value of the "max_items" field in the mutation.
func (m *BatchMutation) MaxItems() (r int, exists bool) {
	v := m.max_items
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxItems returns the old "max_items" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldMaxItems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxItems: %w", err)
	}
	return oldValue.MaxItems, nil
}

// AddMaxItems adds i to the "max_items" field.
func (m *BatchMutation) AddMaxItems(i int) {
	if m.addmax_items != nil {
		*m.addmax_items += i
	} else {
		m.addmax_items = &i
	}
}

// AddedMaxItems returns the value that was added to the "max_items" field in this mutation.
func (m *BatchMutation) AddedMaxItems() (r int, exists bool) {
	v := m.addmax_items
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxItems resets all changes to the "max_items" field.
func (m *BatchMutation) ResetMaxItems() {
	m.max_items = nil
	m.addmax_items = nil
}

// SetStatus sets the "status" field.
func (m *BatchMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *BatchMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BatchMutation) ResetStatus() {
	m.status = nil
}

// SetParsedItems sets the "parsed_items" field.
func (m *BatchMutation) SetParsedItems(i int) {
	m.parsed_items = &i
	m.addparsed_items = nil
}

// ParsedItems returns the value of the "parsed_items" field in the mutation.
func (m *BatchMutation) ParsedItems() (r int, exists bool) {
	v := m.parsed_items
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedItems returns the old "parsed_items" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldParsedItems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedItems: %w", err)
	}
	return oldValue.ParsedItems, nil
}

// AddParsedItems adds i to the "parsed_items" field.
func (m *BatchMutation) AddParsedItems(i int) {
	if m.addparsed_items != nil {
		*m.addparsed_items += i
	} else {
		m.addparsed_items = &i
	}
}

// AddedParsedItems returns the value that was added to the "parsed_items" field in this mutation.
func (m *BatchMutation) AddedParsedItems() (r int, exists bool) {
	v := m.addparsed_items
	if v == nil {
		return
	}
	return *v, true
}

// ResetParsedItems resets all changes to the "parsed_items" field.
func (m *BatchMutation) ResetParsedItems() {
	m.parsed_items = nil
	m.addparsed_items = nil
}

// SetAttempted sets the "attempted" field.
func (m *BatchMutation) SetAttempted(i int) {
	m.attempted = &i
	m.addattempted = nil
}

// Attempted returns the value of the "attempted" field in the mutation.
func (m *BatchMutation) Attempted() (r int, exists bool) {
	v := m.attempted
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempted returns the old "attempted" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldAttempted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempted: %w", err)
	}
	return oldValue.Attempted, nil
}

// AddAttempted adds i to the "attempted" field.
func (m *BatchMutation) AddAttempted(i int) {
	if m.addattempted != nil {
		*m.addattempted += i
	} else {
		m.addattempted = &i
	}
}

// AddedAttempted returns the value that was added to the "attempted" field in this mutation.
func (m *BatchMutation) AddedAttempted() (r int, exists bool) {
	v := m.addattempted
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempted resets all changes to the "attempted" field.
func (m *BatchMutation) ResetAttempted() {
	m.attempted = nil
	m.addattempted = nil
}

// SetTruncated sets the "truncated" field.
func (m *BatchMutation) SetTruncated(i int) {
	m.truncated = &i
	m.addtruncated = nil
}

// Truncated returns the value of the "truncated" field in the mutation.
func (m *BatchMutation) Truncated() (r int, exists bool) {
	v := m.truncated
	if v == nil {
		return
	}
	return *v, true
}

// OldTruncated returns the old "truncated" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldTruncated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTruncated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTruncated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTruncated: %w", err)
	}
	return oldValue.Truncated, nil
}

// AddTruncated adds i to the "truncated" field.
func (m *BatchMutation) AddTruncated(i int) {
	if m.addtruncated != nil {
		*m.addtruncated += i
	} else {
		m.addtruncated = &i
	}
}

// AddedTruncated returns the value that was added to the "truncated" field in this mutation.
func (m *BatchMutation) AddedTruncated() (r int, exists bool) {
	v := m.addtruncated
	if v == nil {
		return
	}
	return *v, true
}

// ResetTruncated resets all changes to the "truncated" field.
func (m *BatchMutation) ResetTruncated() {
	m.truncated = nil
	m.addtruncated = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *BatchMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *BatchMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *BatchMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[batch.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *BatchMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[batch.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *BatchMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, batch.FieldErrorMessage)
}

// SetOcrConfidence sets the "ocr_confidence" field.
func (m *BatchMutation) SetOcrConfidence(f float32) {
	m.ocr_confidence = &f
	m.addocr_confidence = nil
}

// OcrConfidence returns the value of the "ocr_confidence" field in the mutation.
func (m *BatchMutation) OcrConfidence() (r float32, exists bool) {
	v := m.ocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOcrConfidence returns the old "ocr_confidence" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldOcrConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOcrConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOcrConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOcrConfidence: %w", err)
	}
	return oldValue.OcrConfidence, nil
}

// AddOcrConfidence adds f to the "ocr_confidence" field.
func (m *BatchMutation) AddOcrConfidence(f float32) {
	if m.addocr_confidence != nil {
		*m.addocr_confidence += f
	} else {
		m.addocr_confidence = &f
	}
}

// AddedOcrConfidence returns the value that was added to the "ocr_confidence" field in this mutation.
func (m *BatchMutation) AddedOcrConfidence() (r float32, exists bool) {
	v := m.addocr_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearOcrConfidence clears the value of the "ocr_confidence" field.
func (m *BatchMutation) ClearOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	m.clearedFields[batch.FieldOcrConfidence] = struct{}{}
}

// OcrConfidenceCleared returns if the "ocr_confidence" field was cleared in this mutation.
func (m *BatchMutation) OcrConfidenceCleared() bool {
	_, ok := m.clearedFields[batch.FieldOcrConfidence]
	return ok
}

// ResetOcrConfidence resets all changes to the "ocr_confidence" field.
func (m *BatchMutation) ResetOcrConfidence() {
	m.ocr_confidence = nil
	m.addocr_confidence = nil
	delete(m.clearedFields, batch.FieldOcrConfidence)
}

// SetCreatedAt sets the "created_at" field.
func (m *BatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *BatchMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *BatchMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *BatchMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[batch.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *BatchMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[batch.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *BatchMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, batch.FieldFinishedAt)
}

// AddItemIDs adds the "items" edge to the BatchItem entity by ids.
func (m *BatchMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the BatchItem entity.
func (m *BatchMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the BatchItem entity was cleared.
func (m *BatchMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the BatchItem entity by IDs.
func (m *BatchMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the BatchItem entity.
func (m *BatchMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *BatchMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *BatchMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the BatchMutation builder.
func (m *BatchMutation) Where(ps ...predicate.Batch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Batch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Batch).
func (m *BatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.source != nil {
		fields = append(fields, batch.FieldSource)
	}
	if m.raw_text != nil {
		fields = append(fields, batch.FieldRawText)
	}
	if m.image_path != nil {
		fields = append(fields, batch.FieldImagePath)
	}
	if m.size != nil {
		fields = append(fields, batch.FieldSize)
	}
	if m.max_items != nil {
		fields = append(fields, batch.FieldMaxItems)
	}
	if m.status != nil {
		fields = append(fields, batch.FieldStatus)
	}
	if m.parsed_items != nil {
		fields = append(fields, batch.FieldParsedItems)
	}
	if m.attempted != nil {
		fields = append(fields, batch.FieldAttempted)
	}
	if m.truncated != nil {
		fields = append(fields, batch.FieldTruncated)
	}
	if m.error_message != nil {
		fields = append(fields, batch.FieldErrorMessage)
	}
	if m.ocr_confidence != nil {
		fields = append(fields, batch.FieldOcrConfidence)
	}
	if m.created_at != nil {
		fields = append(fields, batch.FieldCreatedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, batch.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batch.FieldSource:
		return m.Source()
	case batch.FieldRawText:
		return m.RawText()
	case batch.FieldImagePath:
		return m.ImagePath()
	case batch.FieldSize:
		return m.Size()
	case batch.FieldMaxItems:
		return m.MaxItems()
	case batch.FieldStatus:
		return m.Status()
	case batch.FieldParsedItems:
		return m.ParsedItems()
	case batch.FieldAttempted:
		return m.Attempted()
	case batch.FieldTruncated:
		return m.Truncated()
	case batch.FieldErrorMessage:
		return m.ErrorMessage()
	case batch.FieldOcrConfidence:
		return m.OcrConfidence()
	case batch.FieldCreatedAt:
		return m.CreatedAt()
	case batch.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batch.FieldSource:
		return m.OldSource(ctx)
	case batch.FieldRawText:
		return m.OldRawText(ctx)
	case batch.FieldImagePath:
		return m.OldImagePath(ctx)
	case batch.FieldSize:
		return m.OldSize(ctx)
	case batch.FieldMaxItems:
		return m.OldMaxItems(ctx)
	case batch.FieldStatus:
		return m.OldStatus(ctx)
	case batch.FieldParsedItems:
		return m.OldParsedItems(ctx)
	case batch.FieldAttempted:
		return m.OldAttempted(ctx)
	case batch.FieldTruncated:
		return m.OldTruncated(ctx)
	case batch.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case batch.FieldOcrConfidence:
		return m.OldOcrConfidence(ctx)
	case batch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case batch.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Batch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batch.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case batch.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case batch.FieldImagePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagePath(v)
		return nil
	case batch.FieldSize:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case batch.FieldMaxItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxItems(v)
		return nil
	case batch.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case batch.FieldParsedItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedItems(v)
		return nil
	case batch.FieldAttempted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempted(v)
		return nil
	case batch.FieldTruncated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTruncated(v)
		return nil
	case batch.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case batch.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOcrConfidence(v)
		return nil
	case batch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case batch.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Batch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchMutation) AddedFields() []string {
	var fields []string
	if m.addmax_items != nil {
		fields = append(fields, batch.FieldMaxItems)
	}
	if m.addparsed_items != nil {
		fields = append(fields, batch.FieldParsedItems)
	}
	if m.addattempted != nil {
		fields = append(fields, batch.FieldAttempted)
	}
	if m.addtruncated != nil {
		fields = append(fields, batch.FieldTruncated)
	}
	if m.addocr_confidence != nil {
		fields = append(fields, batch.FieldOcrConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batch.FieldMaxItems:
		return m.AddedMaxItems()
	case batch.FieldParsedItems:
		return m.AddedParsedItems()
	case batch.FieldAttempted:
		return m.AddedAttempted()
	case batch.FieldTruncated:
		return m.AddedTruncated()
	case batch.FieldOcrConfidence:
		return m.AddedOcrConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batch.FieldMaxItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxItems(v)
		return nil
	case batch.FieldParsedItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParsedItems(v)
		return nil
	case batch.FieldAttempted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempted(v)
		return nil
	case batch.FieldTruncated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTruncated(v)
		return nil
	case batch.FieldOcrConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOcrConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Batch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(batch.FieldImagePath) {
		fields = append(fields, batch.FieldImagePath)
	}
	if m.FieldCleared(batch.FieldErrorMessage) {
		fields = append(fields, batch.FieldErrorMessage)
	}
	if m.FieldCleared(batch.FieldOcrConfidence) {
		fields = append(fields, batch.FieldOcrConfidence)
	}
	if m.FieldCleared(batch.FieldFinishedAt) {
		fields = append(fields, batch.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchMutation) ClearField(name string) error {
	switch name {
	case batch.FieldImagePath:
		m.ClearImagePath()
		return nil
	case batch.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case batch.FieldOcrConfidence:
		m.ClearOcrConfidence()
		return nil
	case batch.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Batch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchMutation) ResetField(name string) error {
	switch name {
	case batch.FieldSource:
		m.ResetSource()
		return nil
	case batch.FieldRawText:
		m.ResetRawText()
		return nil
	case batch.FieldImagePath:
		m.ResetImagePath()
		return nil
	case batch.FieldSize:
		m.ResetSize()
		return nil
	case batch.FieldMaxItems:
		m.ResetMaxItems()
		return nil
	case batch.FieldStatus:
		m.ResetStatus()
		return nil
	case batch.FieldParsedItems:
		m.ResetParsedItems()
		return nil
	case batch.FieldAttempted:
		m.ResetAttempted()
		return nil
	case batch.FieldTruncated:
		m.ResetTruncated()
		return nil
	case batch.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case batch.FieldOcrConfidence:
		m.ResetOcrConfidence()
		return nil
	case batch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case batch.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Batch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.items != nil {
		edges = append(edges, batch.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case batch.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeditems != nil {
		edges = append(edges, batch.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case batch.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditems {
		edges = append(edges, batch.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchMutation) EdgeCleared(name string) bool {
	switch name {
	case batch.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Batch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchMutation) ResetEdge(name string) error {
	switch name {
	case batch.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown Batch edge %s", name)
}

// BatchItemMutation represents an operation that mutates the BatchItem nodes in the graph.
type BatchItemMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	position        *int
	addposition     *int
	name            *string
	prompt          *string
	status          *string
	failure_reason  *string
	failure_message *string
	image_path      *string
	width           *int
	addwidth        *int
	height          *int
	addheight       *int
	clearedFields   map[string]struct{}
	batch           *uuid.UUID
	clearedbatch    bool
	done            bool
	oldValue        func(context.Context) (*BatchItem, error)
	predicates      []predicate.BatchItem
}

var _ ent.Mutation = (*BatchItemMutation)(nil)

// batchitemOption allows management of the mutation configuration using functional options.
type batchitemOption func(*BatchItemMutation)

// newBatchItemMutation creates new mutation for the BatchItem entity.
func newBatchItemMutation(c config, op Op, opts ...batchitemOption) *BatchItemMutation {
	m := &BatchItemMutation{
		config:        c,
		op:            op,
		typ:           TypeBatchItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchItemID sets the ID field of the mutation.
func withBatchItemID(id uuid.UUID) batchitemOption {
	return func(m *BatchItemMutation) {
		var (
			err   error
			once  sync.Once
			value *BatchItem
		)
		m.oldValue = func(ctx context.Context) (*BatchItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BatchItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatchItem sets the old BatchItem of the mutation.
func withBatchItem(node *BatchItem) batchitemOption {
	return func(m *BatchItemMutation) {
		m.oldValue = func(context.Context) (*BatchItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BatchItem entities.
func (m *BatchItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BatchItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBatchID sets the "batch_id" field.
func (m *BatchItemMutation) SetBatchID(u uuid.UUID) {
	m.batch = &u
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *BatchItemMutation) BatchID() (r uuid.UUID, exists bool) {
	v := m.batch
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldBatchID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *BatchItemMutation) ResetBatchID() {
	m.batch = nil
}

// SetPosition sets the "position" field.
func (m *BatchItemMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *BatchItemMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *BatchItemMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *BatchItemMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *BatchItemMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetName sets the "name" field.
func (m *BatchItemMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BatchItemMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BatchItemMutation) ResetName() {
	m.name = nil
}

// SetPrompt sets the "prompt" field.
func (m *BatchItemMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *BatchItemMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *BatchItemMutation) ResetPrompt() {
	m.prompt = nil
}

// SetStatus sets the "status" field.
func (m *BatchItemMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *BatchItemMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BatchItemMutation) ResetStatus() {
	m.status = nil
}

// SetFailureReason sets the "failure_reason" field.
func (m *BatchItemMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *BatchItemMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *BatchItemMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[batchitem.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *BatchItemMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[batchitem.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *BatchItemMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, batchitem.FieldFailureReason)
}

// SetFailureMessage sets the "failure_message" field.
func (m *BatchItemMutation) SetFailureMessage(s string) {
	m.failure_message = &s
}

// FailureMessage returns the value of the "failure_message" field in the mutation.
func (m *BatchItemMutation) FailureMessage() (r string, exists bool) {
	v := m.failure_message
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureMessage returns the old "failure_message" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldFailureMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureMessage: %w", err)
	}
	return oldValue.FailureMessage, nil
}

// ClearFailureMessage clears the value of the "failure_message" field.
func (m *BatchItemMutation) ClearFailureMessage() {
	m.failure_message = nil
	m.clearedFields[batchitem.FieldFailureMessage] = struct{}{}
}

// FailureMessageCleared returns if the "failure_message" field was cleared in this mutation.
func (m *BatchItemMutation) FailureMessageCleared() bool {
	_, ok := m.clearedFields[batchitem.FieldFailureMessage]
	return ok
}

// ResetFailureMessage resets all changes to the "failure_message" field.
func (m *BatchItemMutation) ResetFailureMessage() {
	m.failure_message = nil
	delete(m.clearedFields, batchitem.FieldFailureMessage)
}

// SetImagePath sets the "image_path" field.
func (m *BatchItemMutation) SetImagePath(s string) {
	m.image_path = &s
}

// ImagePath returns the value of the "image_path" field in the mutation.
func (m *BatchItemMutation) ImagePath() (r string, exists bool) {
	v := m.image_path
	if v == nil {
		return
	}
	return *v, true
}

// OldImagePath returns the old "image_path" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldImagePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImagePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImagePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImagePath: %w", err)
	}
	return oldValue.ImagePath, nil
}

// ClearImagePath clears the value of the "image_path" field.
func (m *BatchItemMutation) ClearImagePath() {
	m.image_path = nil
	m.clearedFields[batchitem.FieldImagePath] = struct{}{}
}

// ImagePathCleared returns if the "image_path" field was cleared in this mutation.
func (m *BatchItemMutation) ImagePathCleared() bool {
	_, ok := m.clearedFields[batchitem.FieldImagePath]
	return ok
}

// ResetImagePath resets all changes to the "image_path" field.
func (m *BatchItemMutation) ResetImagePath() {
	m.image_path = nil
	delete(m.clearedFields, batchitem.FieldImagePath)
}

// SetWidth sets the "width" field.
func (m *BatchItemMutation) SetWidth(i int) {
	m.width = &i
	m.addwidth = nil
}

// Width returns the value of the "width" field in the mutation.
func (m *BatchItemMutation) Width() (r int, exists bool) {
	v := m.width
	if v == nil {
		return
	}
	return *v, true
}

// OldWidth returns the old "width" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldWidth(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWidth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWidth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWidth: %w", err)
	}
	return oldValue.Width, nil
}

// AddWidth adds i to the "width" field.
func (m *BatchItemMutation) AddWidth(i int) {
	if m.addwidth != nil {
		*m.addwidth += i
	} else {
		m.addwidth = &i
	}
}

// AddedWidth returns the value that was added to the "width" field in this mutation.
func (m *BatchItemMutation) AddedWidth() (r int, exists bool) {
	v := m.addwidth
	if v == nil {
		return
	}
	return *v, true
}

// ClearWidth clears the value of the "width" field.
func (m *BatchItemMutation) ClearWidth() {
	m.width = nil
	m.addwidth = nil
	m.clearedFields[batchitem.FieldWidth] = struct{}{}
}

// WidthCleared returns if the "width" field was cleared in this mutation.
func (m *BatchItemMutation) WidthCleared() bool {
	_, ok := m.clearedFields[batchitem.FieldWidth]
	return ok
}

// ResetWidth resets all changes to the "width" field.
func (m *BatchItemMutation) ResetWidth() {
	m.width = nil
	m.addwidth = nil
	delete(m.clearedFields, batchitem.FieldWidth)
}

// SetHeight sets the "height" field.
func (m *BatchItemMutation) SetHeight(i int) {
	m.height = &i
	m.addheight = nil
}

// Height returns the value of the "height" field in the mutation.
func (m *BatchItemMutation) Height() (r int, exists bool) {
	v := m.height
	if v == nil {
		return
	}
	return *v, true
}

// OldHeight returns the old "height" field's value of the BatchItem entity.
// If the BatchItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchItemMutation) OldHeight(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeight: %w", err)
	}
	return oldValue.Height, nil
}

// AddHeight adds i to the "height" field.
func (m *BatchItemMutation) AddHeight(i int) {
	if m.addheight != nil {
		*m.addheight += i
	} else {
		m.addheight = &i
	}
}

// AddedHeight returns the value that was added to the "height" field in this mutation.
func (m *BatchItemMutation) AddedHeight() (r int, exists bool) {
	v := m.addheight
	if v == nil {
		return
	}
	return *v, true
}

// ClearHeight clears the value of the "height" field.
func (m *BatchItemMutation) ClearHeight() {
	m.height = nil
	m.addheight = nil
	m.clearedFields[batchitem.FieldHeight] = struct{}{}
}

// HeightCleared returns if the "height" field was cleared in this mutation.
func (m *BatchItemMutation) HeightCleared() bool {
	_, ok := m.clearedFields[batchitem.FieldHeight]
	return ok
}

// ResetHeight resets all changes to the "height" field.
func (m *BatchItemMutation) ResetHeight() {
	m.height = nil
	m.addheight = nil
	delete(m.clearedFields, batchitem.FieldHeight)
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (m *BatchItemMutation) ClearBatch() {
	m.clearedbatch = true
	m.clearedFields[batchitem.FieldBatchID] = struct{}{}
}

// BatchCleared reports if the "batch" edge to the Batch entity was cleared.
func (m *BatchItemMutation) BatchCleared() bool {
	return m.clearedbatch
}

// BatchIDs returns the "batch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BatchID instead. It exists only for internal usage by the builders.
func (m *BatchItemMutation) BatchIDs() (ids []uuid.UUID) {
	if id := m.batch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBatch resets all changes to the "batch" edge.
func (m *BatchItemMutation) ResetBatch() {
	m.batch = nil
	m.clearedbatch = false
}

// Where appends a list predicates to the BatchItemMutation builder.
func (m *BatchItemMutation) Where(ps ...predicate.BatchItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BatchItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BatchItem).
func (m *BatchItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchItemMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.batch != nil {
		fields = append(fields, batchitem.FieldBatchID)
	}
	if m.position != nil {
		fields = append(fields, batchitem.FieldPosition)
	}
	if m.name != nil {
		fields = append(fields, batchitem.FieldName)
	}
	if m.prompt != nil {
		fields = append(fields, batchitem.FieldPrompt)
	}
	if m.status != nil {
		fields = append(fields, batchitem.FieldStatus)
	}
	if m.failure_reason != nil {
		fields = append(fields, batchitem.FieldFailureReason)
	}
	if m.failure_message != nil {
		fields = append(fields, batchitem.FieldFailureMessage)
	}
	if m.image_path != nil {
		fields = append(fields, batchitem.FieldImagePath)
	}
	if m.width != nil {
		fields = append(fields, batchitem.FieldWidth)
	}
	if m.height != nil {
		fields = append(fields, batchitem.FieldHeight)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batchitem.FieldBatchID:
		return m.BatchID()
	case batchitem.FieldPosition:
		return m.Position()
	case batchitem.FieldName:
		return m.Name()
	case batchitem.FieldPrompt:
		return m.Prompt()
	case batchitem.FieldStatus:
		return m.Status()
	case batchitem.FieldFailureReason:
		return m.FailureReason()
	case batchitem.FieldFailureMessage:
		return m.FailureMessage()
	case batchitem.FieldImagePath:
		return m.ImagePath()
	case batchitem.FieldWidth:
		return m.Width()
	case batchitem.FieldHeight:
		return m.Height()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batchitem.FieldBatchID:
		return m.OldBatchID(ctx)
	case batchitem.FieldPosition:
		return m.OldPosition(ctx)
	case batchitem.FieldName:
		return m.OldName(ctx)
	case batchitem.FieldPrompt:
		return m.OldPrompt(ctx)
	case batchitem.FieldStatus:
		return m.OldStatus(ctx)
	case batchitem.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case batchitem.FieldFailureMessage:
		return m.OldFailureMessage(ctx)
	case batchitem.FieldImagePath:
		return m.OldImagePath(ctx)
	case batchitem.FieldWidth:
		return m.OldWidth(ctx)
	case batchitem.FieldHeight:
		return m.OldHeight(ctx)
	}
	return nil, fmt.Errorf("unknown BatchItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batchitem.FieldBatchID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case batchitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case batchitem.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case batchitem.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case batchitem.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case batchitem.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case batchitem.FieldFailureMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureMessage(v)
		return nil
	case batchitem.FieldImagePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImagePath(v)
		return nil
	case batchitem.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWidth(v)
		return nil
	case batchitem.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeight(v)
		return nil
	}
	return fmt.Errorf("unknown BatchItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchItemMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, batchitem.FieldPosition)
	}
	if m.addwidth != nil {
		fields = append(fields, batchitem.FieldWidth)
	}
	if m.addheight != nil {
		fields = append(fields, batchitem.FieldHeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batchitem.FieldPosition:
		return m.AddedPosition()
	case batchitem.FieldWidth:
		return m.AddedWidth()
	case batchitem.FieldHeight:
		return m.AddedHeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batchitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case batchitem.FieldWidth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWidth(v)
		return nil
	case batchitem.FieldHeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeight(v)
		return nil
	}
	return fmt.Errorf("unknown BatchItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(batchitem.FieldFailureReason) {
		fields = append(fields, batchitem.FieldFailureReason)
	}
	if m.FieldCleared(batchitem.FieldFailureMessage) {
		fields = append(fields, batchitem.FieldFailureMessage)
	}
	if m.FieldCleared(batchitem.FieldImagePath) {
		fields = append(fields, batchitem.FieldImagePath)
	}
	if m.FieldCleared(batchitem.FieldWidth) {
		fields = append(fields, batchitem.FieldWidth)
	}
	if m.FieldCleared(batchitem.FieldHeight) {
		fields = append(fields, batchitem.FieldHeight)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchItemMutation) ClearField(name string) error {
	switch name {
	case batchitem.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	case batchitem.FieldFailureMessage:
		m.ClearFailureMessage()
		return nil
	case batchitem.FieldImagePath:
		m.ClearImagePath()
		return nil
	case batchitem.FieldWidth:
		m.ClearWidth()
		return nil
	case batchitem.FieldHeight:
		m.ClearHeight()
		return nil
	}
	return fmt.Errorf("unknown BatchItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchItemMutation) ResetField(name string) error {
	switch name {
	case batchitem.FieldBatchID:
		m.ResetBatchID()
		return nil
	case batchitem.FieldPosition:
		m.ResetPosition()
		return nil
	case batchitem.FieldName:
		m.ResetName()
		return nil
	case batchitem.FieldPrompt:
		m.ResetPrompt()
		return nil
	case batchitem.FieldStatus:
		m.ResetStatus()
		return nil
	case batchitem.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case batchitem.FieldFailureMessage:
		m.ResetFailureMessage()
		return nil
	case batchitem.FieldImagePath:
		m.ResetImagePath()
		return nil
	case batchitem.FieldWidth:
		m.ResetWidth()
		return nil
	case batchitem.FieldHeight:
		m.ResetHeight()
		return nil
	}
	return fmt.Errorf("unknown BatchItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.batch != nil {
		edges = append(edges, batchitem.EdgeBatch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case batchitem.EdgeBatch:
		if id := m.batch; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbatch {
		edges = append(edges, batchitem.EdgeBatch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchItemMutation) EdgeCleared(name string) bool {
	switch name {
	case batchitem.EdgeBatch:
		return m.clearedbatch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchItemMutation) ClearEdge(name string) error {
	switch name {
	case batchitem.EdgeBatch:
		m.ClearBatch()
		return nil
	}
	return fmt.Errorf("unknown BatchItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchItemMutation) ResetEdge(name string) error {
	switch name {
	case batchitem.EdgeBatch:
		m.ResetBatch()
		return nil
	}
	return fmt.Errorf("unknown BatchItem edge %s", name)
}
