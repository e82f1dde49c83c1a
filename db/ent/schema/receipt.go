package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Receipt struct{ ent.Schema }

func (Receipt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipts"},
	}
}

func (Receipt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("owner_id", uuid.UUID{}).Immutable(),
		// explicit FK so the station edge can share it
		field.UUID("station_id", uuid.UUID{}),
		field.Time("issued_at").Immutable(),
		// money is integer minor units throughout; no floats in the domain
		field.Int64("total_cents").Optional().Nillable(),
		field.Int64("vat_amount_cents").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Receipt) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY receipts -> ONE station (FK: receipts.station_id)
		edge.From("station", Station.Type).
			Ref("receipts").
			Field("station_id").
			Required().
			Unique(),
		// ONE receipt -> MANY lines
		edge.To("lines", ReceiptLine.Type),
	}
}

func (Receipt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "issued_at"),
		index.Fields("station_id"),
	}
}
