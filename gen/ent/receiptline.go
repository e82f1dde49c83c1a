// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/carbux/fuel-receipts/gen/ent/receipt"
	"github.com/carbux/fuel-receipts/gen/ent/receiptline"
	"github.com/google/uuid"
)

// ReceiptLine is the model entity for the ReceiptLine schema.
type ReceiptLine struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ReceiptID holds the value of the "receipt_id" field.
	ReceiptID uuid.UUID `json:"receipt_id,omitempty"`
	// FuelType holds the value of the "fuel_type" field.
	FuelType string `json:"fuel_type,omitempty"`
	// QuantityMilliliters holds the value of the "quantity_milliliters" field.
	QuantityMilliliters int64 `json:"quantity_milliliters,omitempty"`
	// UnitPriceDeciCents holds the value of the "unit_price_deci_cents" field.
	UnitPriceDeciCents int64 `json:"unit_price_deci_cents,omitempty"`
	// VatRatePercent holds the value of the "vat_rate_percent" field.
	VatRatePercent int `json:"vat_rate_percent,omitempty"`
	// LineTotalCents holds the value of the "line_total_cents" field.
	LineTotalCents *int64 `json:"line_total_cents,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ReceiptLineQuery when eager-loading is set.
	Edges        ReceiptLineEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ReceiptLineEdges holds the relations/edges for other nodes in the graph.
type ReceiptLineEdges struct {
	// Receipt holds the value of the receipt edge.
	Receipt *Receipt `json:"receipt,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ReceiptOrErr returns the Receipt value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ReceiptLineEdges) ReceiptOrErr() (*Receipt, error) {
	if e.Receipt != nil {
		return e.Receipt, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: receipt.Label}
	}
	return nil, &NotLoadedError{edge: "receipt"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReceiptLine) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case receiptline.FieldQuantityMilliliters, receiptline.FieldUnitPriceDeciCents, receiptline.FieldVatRatePercent, receiptline.FieldLineTotalCents:
			values[i] = new(sql.NullInt64)
		case receiptline.FieldFuelType:
			values[i] = new(sql.NullString)
		case receiptline.FieldID, receiptline.FieldReceiptID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReceiptLine fields.
func (_m *ReceiptLine) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case receiptline.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case receiptline.FieldReceiptID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field receipt_id", values[i])
			} else if value != nil {
				_m.ReceiptID = *value
			}
		case receiptline.FieldFuelType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fuel_type", values[i])
			} else if value.Valid {
				_m.FuelType = value.String
			}
		case receiptline.FieldQuantityMilliliters:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity_milliliters", values[i])
			} else if value.Valid {
				_m.QuantityMilliliters = value.Int64
			}
		case receiptline.FieldUnitPriceDeciCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_price_deci_cents", values[i])
			} else if value.Valid {
				_m.UnitPriceDeciCents = value.Int64
			}
		case receiptline.FieldVatRatePercent:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field vat_rate_percent", values[i])
			} else if value.Valid {
				_m.VatRatePercent = int(value.Int64)
			}
		case receiptline.FieldLineTotalCents:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field line_total_cents", values[i])
			} else if value.Valid {
				_m.LineTotalCents = new(int64)
				*_m.LineTotalCents = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReceiptLine.
// This includes values selected through modifiers, order, etc.
func (_m *ReceiptLine) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReceipt queries the "receipt" edge of the ReceiptLine entity.
func (_m *ReceiptLine) QueryReceipt() *ReceiptQuery {
	return NewReceiptLineClient(_m.config).QueryReceipt(_m)
}

// Update returns a builder for updating this ReceiptLine.
// Note that you need to call ReceiptLine.Unwrap() before calling this method if this ReceiptLine
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReceiptLine) Update() *ReceiptLineUpdateOne {
	return NewReceiptLineClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReceiptLine entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReceiptLine) Unwrap() *ReceiptLine {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReceiptLine is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReceiptLine) String() string {
	var builder strings.Builder
	builder.WriteString("ReceiptLine(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("receipt_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReceiptID))
	builder.WriteString(", ")
	builder.WriteString("fuel_type=")
	builder.WriteString(_m.FuelType)
	builder.WriteString(", ")
	builder.WriteString("quantity_milliliters=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuantityMilliliters))
	builder.WriteString(", ")
	builder.WriteString("unit_price_deci_cents=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitPriceDeciCents))
	builder.WriteString(", ")
	builder.WriteString("vat_rate_percent=")
	builder.WriteString(fmt.Sprintf("%v", _m.VatRatePercent))
	builder.WriteString(", ")
	if v := _m.LineTotalCents; v != nil {
		builder.WriteString("line_total_cents=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ReceiptLines is a parsable slice of ReceiptLine.
type ReceiptLines []*ReceiptLine
