// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ImportJobColumns holds the columns for the "import_job" table.
	ImportJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "storage_name", Type: field.TypeString},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "checksum", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_at", Type: field.TypeTime, Nullable: true},
		{Name: "retain_until", Type: field.TypeTime},
	}
	// ImportJobTable holds the schema information for the "import_job" table.
	ImportJobTable = &schema.Table{
		Name:       "import_job",
		Columns:    ImportJobColumns,
		PrimaryKey: []*schema.Column{ImportJobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "importjob_owner_id_checksum_created_at",
				Unique:  false,
				Columns: []*schema.Column{ImportJobColumns[1], ImportJobColumns[8], ImportJobColumns[10]},
			},
			{
				Name:    "importjob_owner_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ImportJobColumns[1], ImportJobColumns[2], ImportJobColumns[10]},
			},
			{
				Name:    "importjob_status",
				Unique:  false,
				Columns: []*schema.Column{ImportJobColumns[2]},
			},
		},
	}
	// ReceiptsColumns holds the columns for the "receipts" table.
	ReceiptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "issued_at", Type: field.TypeTime},
		{Name: "total_cents", Type: field.TypeInt64, Nullable: true},
		{Name: "vat_amount_cents", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "station_id", Type: field.TypeUUID},
	}
	// ReceiptsTable holds the schema information for the "receipts" table.
	ReceiptsTable = &schema.Table{
		Name:       "receipts",
		Columns:    ReceiptsColumns,
		PrimaryKey: []*schema.Column{ReceiptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "receipts_stations_receipts",
				Columns:    []*schema.Column{ReceiptsColumns[7]},
				RefColumns: []*schema.Column{StationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "receipt_owner_id_issued_at",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[1], ReceiptsColumns[2]},
			},
			{
				Name:    "receipt_station_id",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[7]},
			},
		},
	}
	// ReceiptLinesColumns holds the columns for the "receipt_lines" table.
	ReceiptLinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "fuel_type", Type: field.TypeString},
		{Name: "quantity_milliliters", Type: field.TypeInt64},
		{Name: "unit_price_deci_cents", Type: field.TypeInt64},
		{Name: "vat_rate_percent", Type: field.TypeInt},
		{Name: "line_total_cents", Type: field.TypeInt64, Nullable: true},
		{Name: "receipt_id", Type: field.TypeUUID},
	}
	// ReceiptLinesTable holds the schema information for the "receipt_lines" table.
	ReceiptLinesTable = &schema.Table{
		Name:       "receipt_lines",
		Columns:    ReceiptLinesColumns,
		PrimaryKey: []*schema.Column{ReceiptLinesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "receipt_lines_receipts_lines",
				Columns:    []*schema.Column{ReceiptLinesColumns[6]},
				RefColumns: []*schema.Column{ReceiptsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "receiptline_receipt_id",
				Unique:  false,
				Columns: []*schema.Column{ReceiptLinesColumns[6]},
			},
		},
	}
	// StationsColumns holds the columns for the "stations" table.
	StationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "street_name", Type: field.TypeString},
		{Name: "postal_code", Type: field.TypeString},
		{Name: "city", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StationsTable holds the schema information for the "stations" table.
	StationsTable = &schema.Table{
		Name:       "stations",
		Columns:    StationsColumns,
		PrimaryKey: []*schema.Column{StationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "station_owner_id_name_street_name_postal_code_city",
				Unique:  true,
				Columns: []*schema.Column{StationsColumns[1], StationsColumns[2], StationsColumns[3], StationsColumns[4], StationsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ImportJobTable,
		ReceiptsTable,
		ReceiptLinesTable,
		StationsTable,
	}
)

func init() {
	ImportJobTable.Annotation = &entsql.Annotation{
		Table: "import_job",
	}
	ReceiptsTable.ForeignKeys[0].RefTable = StationsTable
	ReceiptsTable.Annotation = &entsql.Annotation{
		Table: "receipts",
	}
	ReceiptLinesTable.ForeignKeys[0].RefTable = ReceiptsTable
	ReceiptLinesTable.Annotation = &entsql.Annotation{
		Table: "receipt_lines",
	}
	StationsTable.Annotation = &entsql.Annotation{
		Table: "stations",
	}
}
