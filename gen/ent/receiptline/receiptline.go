// Code generated by ent, DO NOT EDIT.

package receiptline

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the receiptline type in the database.
	Label = "receipt_line"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReceiptID holds the string denoting the receipt_id field in the database.
	FieldReceiptID = "receipt_id"
	// FieldFuelType holds the string denoting the fuel_type field in the database.
	FieldFuelType = "fuel_type"
	// FieldQuantityMilliliters holds the string denoting the quantity_milliliters field in the database.
	FieldQuantityMilliliters = "quantity_milliliters"
	// FieldUnitPriceDeciCents holds the string denoting the unit_price_deci_cents field in the database.
	FieldUnitPriceDeciCents = "unit_price_deci_cents"
	// FieldVatRatePercent holds the string denoting the vat_rate_percent field in the database.
	FieldVatRatePercent = "vat_rate_percent"
	// FieldLineTotalCents holds the string denoting the line_total_cents field in the database.
	FieldLineTotalCents = "line_total_cents"
	// EdgeReceipt holds the string denoting the receipt edge name in mutations.
	EdgeReceipt = "receipt"
	// Table holds the table name of the receiptline in the database.
	Table = "receipt_lines"
	// ReceiptTable is the table that holds the receipt relation/edge.
	ReceiptTable = "receipt_lines"
	// ReceiptInverseTable is the table name for the Receipt entity.
	// It exists in this package in order to avoid circular dependency with the "receipt" package.
	ReceiptInverseTable = "receipts"
	// ReceiptColumn is the table column denoting the receipt relation/edge.
	ReceiptColumn = "receipt_id"
)

// Columns holds all SQL columns for receiptline fields.
var Columns = []string{
	FieldID,
	FieldReceiptID,
	FieldFuelType,
	FieldQuantityMilliliters,
	FieldUnitPriceDeciCents,
	FieldVatRatePercent,
	FieldLineTotalCents,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// FuelTypeValidator is a validator for the "fuel_type" field. It is called by the builders before save.
	FuelTypeValidator func(string) error
	// QuantityMillilitersValidator is a validator for the "quantity_milliliters" field. It is called by the builders before save.
	QuantityMillilitersValidator func(int64) error
	// UnitPriceDeciCentsValidator is a validator for the "unit_price_deci_cents" field. It is called by the builders before save.
	UnitPriceDeciCentsValidator func(int64) error
	// VatRatePercentValidator is a validator for the "vat_rate_percent" field. It is called by the builders before save.
	VatRatePercentValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ReceiptLine queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReceiptID orders the results by the receipt_id field.
func ByReceiptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceiptID, opts...).ToFunc()
}

// ByFuelType orders the results by the fuel_type field.
func ByFuelType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFuelType, opts...).ToFunc()
}

// ByQuantityMilliliters orders the results by the quantity_milliliters field.
func ByQuantityMilliliters(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantityMilliliters, opts...).ToFunc()
}

// ByUnitPriceDeciCents orders the results by the unit_price_deci_cents field.
func ByUnitPriceDeciCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitPriceDeciCents, opts...).ToFunc()
}

// ByVatRatePercent orders the results by the vat_rate_percent field.
func ByVatRatePercent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVatRatePercent, opts...).ToFunc()
}

// ByLineTotalCents orders the results by the line_total_cents field.
func ByLineTotalCents(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLineTotalCents, opts...).ToFunc()
}

// ByReceiptField orders the results by receipt field.
func ByReceiptField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newReceiptStep(), sql.OrderByField(field, opts...))
	}
}
func newReceiptStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ReceiptInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ReceiptTable, ReceiptColumn),
	)
}
