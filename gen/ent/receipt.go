// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/carbux/fuel-receipts/gen/ent/receipt"
	"github.com/carbux/fuel-receipts/gen/ent/station"
	"github.com/google/uuid"
)

// Receipt is the model entity for the Receipt schema.
type Receipt struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID uuid.UUID `json:"owner_id,omitempty"`
	// StationID holds the value of the "station_id" field.
	StationID uuid.UUID `json:"station_id,omitempty"`
	// IssuedAt holds the value of the "issued_at" field.
	IssuedAt time.Time `json:"issued_at,omitempty"`
	// TotalCents holds the value of the "total_cents" field.
	TotalCents *int64 `json:"total_cents,omitempty"`
	// VatAmountCents holds the value of the "vat_amount_cents" field.
	VatAmountCents *int64 `json:"vat_amount_cents,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReceiptQuery when eager-loading is set.
	Edges        ReceiptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReceiptEdges holds the relations/edges for other nodes in the graph.
type ReceiptEdges struct {
	// Station holds the value of the station edge.
	Station *Station `json:"station,omitempty"`
	// Lines holds the value of the lines edge.
	Lines []*ReceiptLine `json:"lines,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// StationOrErr returns the Station value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReceiptEdges) StationOrErr() (*Station, error) {
	if e.Station != nil {
		return e.Station, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: station.Label}
	}
	return nil, &NotLoadedError{edge: "station"}
}

// LinesOrErr returns the Lines value or an error if the edge
// was not loaded in eager-loading.
func (e ReceiptEdges) LinesOrErr() ([]*ReceiptLine, error) {
	if e.loadedTypes[1] {
		return e.Lines, nil
	}
	return nil, &NotLoadedError{edge: "lines"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Receipt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case receipt.FieldTotalCents, receipt.FieldVatAmountCents:
			values[i] = new(sql.NullInt64)
		case receipt.FieldIssuedAt, receipt.FieldCreatedAt, receipt.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case receipt.FieldID, receipt.FieldOwnerID, receipt.FieldStationID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Receipt fields.
func (_m *Receipt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case receipt.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case receipt.FieldOwnerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value != nil {
				_m.OwnerID = *value
			}
		case receipt.FieldStationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field station_id", values[i])
			} else if value != nil {
				_m.StationID = *value
			}
		case receipt.FieldIssuedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field issued_at", values[i])
			} else if value.Valid {
				_m.IssuedAt = value.Time
			}
		case receipt.FieldTotalCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cents", values[i])
			} else if value.Valid {
				_m.TotalCents = new(int64)
				*_m.TotalCents = value.Int64
			}
		case receipt.FieldVatAmountCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field vat_amount_cents", values[i])
			} else if value.Valid {
				_m.VatAmountCents = new(int64)
				*_m.VatAmountCents = value.Int64
			}
		case receipt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case receipt.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Receipt.
// This includes values selected through modifiers, order, etc.
func (_m *Receipt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryStation queries the "station" edge of the Receipt entity.
func (_m *Receipt) QueryStation() *StationQuery {
	return NewReceiptClient(_m.config).QueryStation(_m)
}

// QueryLines queries the "lines" edge of the Receipt entity.
func (_m *Receipt) QueryLines() *ReceiptLineQuery {
	return NewReceiptClient(_m.config).QueryLines(_m)
}

// Update returns a builder for updating this Receipt.
// Note that you need to call Receipt.Unwrap() before calling this method if this Receipt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Receipt) Update() *ReceiptUpdateOne {
	return NewReceiptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Receipt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Receipt) Unwrap() *Receipt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Receipt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Receipt) String() string {
	var builder strings.Builder
	builder.WriteString("Receipt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("owner_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnerID))
	builder.WriteString(", ")
	builder.WriteString("station_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.StationID))
	builder.WriteString(", ")
	builder.WriteString("issued_at=")
	builder.WriteString(_m.IssuedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.TotalCents; v != nil {
		builder.WriteString("total_cents=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.VatAmountCents; v != nil {
		builder.WriteString("vat_amount_cents=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Receipts is a parsable slice of Receipt.
type Receipts []*Receipt
