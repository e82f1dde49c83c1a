package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/carbux/fuel-receipts/constants"
	"github.com/carbux/fuel-receipts/db/ent/schema/utils"
)

// RetentionDays is how long an import job is kept before it becomes eligible
// for owner-initiated cleanup.
const RetentionDays = 90

type ImportJob struct{ ent.Schema }

func (ImportJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "import_job"},
	}
}

func (ImportJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("owner_id", uuid.UUID{}).Immutable(),
		field.String("status").
			Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(constants.AllStatuses...)),
		// opaque file reference, resolved by the stored-file locator
		field.String("storage_name").NotEmpty().Immutable(),
		field.String("storage_path").NotEmpty().Immutable(),
		field.String("filename").NotEmpty(),
		field.String("mime_type").NotEmpty(),
		field.Int64("file_size").NonNegative(),
		field.Bytes("checksum").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		// draft/issues/fingerprint on success, failure message on FAILED
		field.JSON("result", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.Time("failed_at").Optional().Nillable(),
		field.Time("retain_until").
			Default(func() time.Time { return time.Now().UTC().AddDate(0, 0, RetentionDays) }),
	}
}

func (ImportJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "checksum", "created_at"),
		index.Fields("owner_id", "status", "created_at"),
		index.Fields("status"),
	}
}
