// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/plateworks/menugen/db/ent/schema"
	"github.com/plateworks/menugen/gen/ent/batch"
	"github.com/plateworks/menugen/gen/ent/batchitem"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	batchFields := schema.Batch{}.Fields()
	_ = batchFields
	// batchDescSource is the schema descriptor for source field.
	batchDescSource := batchFields[1].Descriptor()
	// batch.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	batch.SourceValidator = func() func(string) error {
		validators := batchDescSource.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(source string) error {
			for _, fn := range fns {
				if err := fn(source); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// batchDescSize is the schema descriptor for size field.
	batchDescSize := batchFields[4].Descriptor()
	// batch.SizeValidator is a validator for the "size" field. It is called by the builders before save.
	batch.SizeValidator = func() func(string) error {
		validators := batchDescSize.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(size string) error {
			for _, fn := range fns {
				if err := fn(size); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// batchDescMaxItems is the schema descriptor for max_items field.
	batchDescMaxItems := batchFields[5].Descriptor()
	// batch.MaxItemsValidator is a validator for the "max_items" field. It is called by the builders before save.
	batch.MaxItemsValidator = batchDescMaxItems.Validators[0].(func(int) error)
	// batchDescStatus is the schema descriptor for status field.
	batchDescStatus := batchFields[6].Descriptor()
	// batch.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	batch.StatusValidator = func() func(string) error {
		validators := batchDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// batchDescParsedItems is the schema descriptor for parsed_items field.
	batchDescParsedItems := batchFields[7].Descriptor()
	// batch.DefaultParsedItems holds the default value on creation for the parsed_items field.
	batch.DefaultParsedItems = batchDescParsedItems.Default.(int)
	// batchDescAttempted is the schema descriptor for attempted field.
	batchDescAttempted := batchFields[8].Descriptor()
	// batch.DefaultAttempted holds the default value on creation for the attempted field.
	batch.DefaultAttempted = batchDescAttempted.Default.(int)
	// batchDescTruncated is the schema descriptor for truncated field.
	batchDescTruncated := batchFields[9].Descriptor()
	// batch.DefaultTruncated holds the default value on creation for the truncated field.
	batch.DefaultTruncated = batchDescTruncated.Default.(int)
	// batchDescCreatedAt is the schema descriptor for created_at field.
	batchDescCreatedAt := batchFields[12].Descriptor()
	// batch.DefaultCreatedAt holds the default value on creation for the created_at field.
	batch.DefaultCreatedAt = batchDescCreatedAt.Default.(func() time.Time)
	// batchDescID is the schema descriptor for id field.
	batchDescID := batchFields[0].Descriptor()
	// batch.DefaultID holds the default value on creation for the id field.
	batch.DefaultID = batchDescID.Default.(func() uuid.UUID)
	batchitemFields := schema.BatchItem{}.Fields()
	_ = batchitemFields
	// batchitemDescPosition is the schema descriptor for position field.
	batchitemDescPosition := batchitemFields[2].Descriptor()
	// batchitem.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	batchitem.PositionValidator = batchitemDescPosition.Validators[0].(func(int) error)
	// batchitemDescName is the schema descriptor for name field.
	batchitemDescName := batchitemFields[3].Descriptor()
	// batchitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	batchitem.NameValidator = batchitemDescName.Validators[0].(func(string) error)
	// batchitemDescStatus is the schema descriptor for status field.
	batchitemDescStatus := batchitemFields[5].Descriptor()
	// batchitem.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	batchitem.StatusValidator = func() func(string) error {
		validators := batchitemDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// batchitemDescFailureReason is the schema descriptor for failure_reason field.
	batchitemDescFailureReason := batchitemFields[6].Descriptor()
	// batchitem.FailureReasonValidator is a validator for the "failure_reason" field. It is called by the builders before save.
	batchitem.FailureReasonValidator = batchitemDescFailureReason.Validators[0].(func(string) error)
	// batchitemDescID is the schema descriptor for id field.
	batchitemDescID := batchitemFields[0].Descriptor()
	// batchitem.DefaultID holds the default value on creation for the id field.
	batchitem.DefaultID = batchitemDescID.Default.(func() uuid.UUID)
}
