package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/plateworks/menugen/constants"
	"github.com/plateworks/menugen/db/ent/schema/utils"
)

type Batch struct{ ent.Schema }

func (Batch) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "batch"},
	}
}

func (Batch) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("source").NotEmpty().
			Validate(utils.EnumValidator(constants.TextSources...)),
		field.String("raw_text").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("image_path").Optional().Nillable(),
		field.String("size").NotEmpty().
			Validate(utils.EnumValidator(constants.ImageSizes...)),
		field.Int("max_items").Positive(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.BatchStatuses...)),
		field.Int("parsed_items").Default(0),
		field.Int("attempted").Default(0),
		field.Int("truncated").Default(0),
		field.String("error_message").Optional().Nillable(),
		field.Float32("ocr_confidence").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (Batch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("items", BatchItem.Type),
	}
}

func (Batch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
	}
}
