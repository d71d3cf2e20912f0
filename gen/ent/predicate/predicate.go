// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Batch is the predicate function for batch builders.
type Batch func(*sql.Selector)

// BatchItem is the predicate function for batchitem builders.
type BatchItem func(*sql.Selector)
