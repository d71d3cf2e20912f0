// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BatchColumns holds the columns for the "batch" table.
	BatchColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source", Type: field.TypeString},
		{Name: "raw_text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "image_path", Type: field.TypeString, Nullable: true},
		{Name: "size", Type: field.TypeString},
		{Name: "max_items", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString},
		{Name: "parsed_items", Type: field.TypeInt, Default: 0},
		{Name: "attempted", Type: field.TypeInt, Default: 0},
		{Name: "truncated", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "ocr_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
	}
	// BatchTable holds the schema information for the "batch" table.
	BatchTable = &schema.Table{
		Name:       "batch",
		Columns:    BatchColumns,
		PrimaryKey: []*schema.Column{BatchColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "batch_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{BatchColumns[6], BatchColumns[12]},
			},
		},
	}
	// BatchItemColumns holds the columns for the "batch_item" table.
	BatchItemColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "position", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "status", Type: field.TypeString},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "failure_message", Type: field.TypeString, Nullable: true},
		{Name: "image_path", Type: field.TypeString, Nullable: true},
		{Name: "width", Type: field.TypeInt, Nullable: true},
		{Name: "height", Type: field.TypeInt, Nullable: true},
		{Name: "batch_id", Type: field.TypeUUID},
	}
	// BatchItemTable holds the schema information for the "batch_item" table.
	BatchItemTable = &schema.Table{
		Name:       "batch_item",
		Columns:    BatchItemColumns,
		PrimaryKey: []*schema.Column{BatchItemColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "batch_item_batch_items",
				Columns:    []*schema.Column{BatchItemColumns[10]},
				RefColumns: []*schema.Column{BatchColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "batchitem_batch_id_position",
				Unique:  false,
				Columns: []*schema.Column{BatchItemColumns[10], BatchItemColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BatchTable,
		BatchItemTable,
	}
)

func init() {
	BatchTable.Annotation = &entsql.Annotation{
		Table: "batch",
	}
	BatchItemTable.ForeignKeys[0].RefTable = BatchTable
	BatchItemTable.Annotation = &entsql.Annotation{
		Table: "batch_item",
	}
}
