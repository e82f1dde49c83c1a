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

type Station struct{ ent.Schema }

func (Station) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "stations"},
	}
}

func (Station) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("owner_id", uuid.UUID{}).Immutable(),
		field.String("name").NotEmpty(),
		field.String("street_name").NotEmpty(),
		field.String("postal_code").NotEmpty(),
		field.String("city").NotEmpty(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Station) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE station -> MANY receipts
		edge.To("receipts", Receipt.Type),
	}
}

func (Station) Indexes() []ent.Index {
	return []ent.Index{
		// identity used by finalize's resolve-or-create; the unique violation
		// on a concurrent identical create is the conflict the finalizer retries
		index.Fields("owner_id", "name", "street_name", "postal_code", "city").Unique(),
	}
}
