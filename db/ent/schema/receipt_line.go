package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/carbux/fuel-receipts/constants"
	"github.com/carbux/fuel-receipts/db/ent/schema/utils"
)

type ReceiptLine struct{ ent.Schema }

func (ReceiptLine) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipt_lines"},
	}
}

func (ReceiptLine) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("receipt_id", uuid.UUID{}),
		field.String("fuel_type").NotEmpty().
			Validate(utils.EnumValidator(constants.FuelTypes...)),
		field.Int64("quantity_milliliters").Positive(),
		field.Int64("unit_price_deci_cents").NonNegative(),
		field.Int("vat_rate_percent").Min(0).Max(100),
		field.Int64("line_total_cents").Optional().Nillable(),
	}
}

func (ReceiptLine) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("receipt", Receipt.Type).
			Ref("lines").
			Field("receipt_id").
			Required().
			Unique(),
	}
}

func (ReceiptLine) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("receipt_id"),
	}
}
