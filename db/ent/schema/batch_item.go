package schema

import (
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

type BatchItem struct{ ent.Schema }

func (BatchItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "batch_item"},
	}
}

func (BatchItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("batch_id", uuid.UUID{}),
		field.Int("position").NonNegative(),
		field.String("name").NotEmpty(),
		field.String("prompt").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.ItemStatuses...)),
		field.String("failure_reason").Optional().Nillable().
			Validate(utils.EnumValidator(constants.FailureReasons...)),
		field.String("failure_message").Optional().Nillable(),
		field.String("image_path").Optional().Nillable(),
		field.Int("width").Optional().Nillable(),
		field.Int("height").Optional().Nillable(),
	}
}

func (BatchItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("batch", Batch.Type).
			Ref("items").
			Field("batch_id").
			Unique().
			Required(),
	}
}

func (BatchItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id", "position"),
	}
}
