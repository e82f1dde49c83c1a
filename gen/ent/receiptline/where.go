// Code generated by ent, DO NOT EDIT.

package receiptline

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/carbux/fuel-receipts/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldLTE(FieldID, id))
}

// ReceiptID applies equality check predicate on the "receipt_id" field. It's identical to ReceiptIDEQ.
func ReceiptID(v uuid.UUID) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldEQ(FieldReceiptID, v))
}

// FuelType applies equality check predicate on the "fuel_type" field. It's identical to FuelTypeEQ.
func FuelType(v string) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldEQ(FieldFuelType, v))
}

// QuantityMilliliters applies equality check predicate on the "quantity_milliliters" field. It's identical to QuantityMillilitersEQ.
func QuantityMilliliters(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldEQ(FieldQuantityMilliliters, v))
}

// UnitPriceDeciCents applies equality check predicate on the "unit_price_deci_cents" field. It's identical to UnitPriceDeciCentsEQ.
func UnitPriceDeciCents(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldEQ(FieldUnitPriceDeciCents, v))
}

// VatRatePercent applies equality check predicate on the "vat_rate_percent" field. It's identical to VatRatePercentEQ.
func VatRatePercent(v int) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldEQ(FieldVatRatePercent, v))
}

// LineTotalCents applies equality check predicate on the "line_total_cents" field. It's identical to LineTotalCentsEQ.
func LineTotalCents(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldEQ(FieldLineTotalCents, v))
}

// ReceiptIDEQ applies the EQ predicate on the "receipt_id" field.
func ReceiptIDEQ(v uuid.UUID) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldEQ(FieldReceiptID, v))
}

// ReceiptIDNEQ applies the NEQ predicate on the "receipt_id" field.
func ReceiptIDNEQ(v uuid.UUID) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldNEQ(FieldReceiptID, v))
}

// ReceiptIDIn applies the In predicate on the "receipt_id" field.
func ReceiptIDIn(vs ...uuid.UUID) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldIn(FieldReceiptID, vs...))
}

// ReceiptIDNotIn applies the NotIn predicate on the "receipt_id" field.
func ReceiptIDNotIn(vs ...uuid.UUID) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldNotIn(FieldReceiptID, vs...))
}

// FuelTypeEQ applies the EQ predicate on the "fuel_type" field.
func FuelTypeEQ(v string) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldEQ(FieldFuelType, v))
}

// FuelTypeNEQ applies the NEQ predicate on the "fuel_type" field.
func FuelTypeNEQ(v string) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldNEQ(FieldFuelType, v))
}

// FuelTypeIn applies the In predicate on the "fuel_type" field.
func FuelTypeIn(vs ...string) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldIn(FieldFuelType, vs...))
}

// FuelTypeNotIn applies the NotIn predicate on the "fuel_type" field.
func FuelTypeNotIn(vs ...string) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldNotIn(FieldFuelType, vs...))
}

// FuelTypeGT applies the GT predicate on the "fuel_type" field.
func FuelTypeGT(v string) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldGT(FieldFuelType, v))
}

// FuelTypeGTE applies the GTE predicate on the "fuel_type" field.
func FuelTypeGTE(v string) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldGTE(FieldFuelType, v))
}

// FuelTypeLT applies the LT predicate on the "fuel_type" field.
func FuelTypeLT(v string) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldLT(FieldFuelType, v))
}

// FuelTypeLTE applies the LTE predicate on the "fuel_type" field.
func FuelTypeLTE(v string) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldLTE(FieldFuelType, v))
}

// FuelTypeContains applies the Contains predicate on the "fuel_type" field.
func FuelTypeContains(v string) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldContains(FieldFuelType, v))
}

// FuelTypeHasPrefix applies the HasPrefix predicate on the "fuel_type" field.
func FuelTypeHasPrefix(v string) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldHasPrefix(FieldFuelType, v))
}

// FuelTypeHasSuffix applies the HasSuffix predicate on the "fuel_type" field.
func FuelTypeHasSuffix(v string) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldHasSuffix(FieldFuelType, v))
}

// FuelTypeEqualFold applies the EqualFold predicate on the "fuel_type" field.
func FuelTypeEqualFold(v string) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldEqualFold(FieldFuelType, v))
}

// FuelTypeContainsFold applies the ContainsFold predicate on the "fuel_type" field.
func FuelTypeContainsFold(v string) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldContainsFold(FieldFuelType, v))
}

// QuantityMillilitersEQ applies the EQ predicate on the "quantity_milliliters" field.
func QuantityMillilitersEQ(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldEQ(FieldQuantityMilliliters, v))
}

// QuantityMillilitersNEQ applies the NEQ predicate on the "quantity_milliliters" field.
func QuantityMillilitersNEQ(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldNEQ(FieldQuantityMilliliters, v))
}

// QuantityMillilitersIn applies the In predicate on the "quantity_milliliters" field.
func QuantityMillilitersIn(vs ...int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldIn(FieldQuantityMilliliters, vs...))
}

// QuantityMillilitersNotIn applies the NotIn predicate on the "quantity_milliliters" field.
func QuantityMillilitersNotIn(vs ...int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldNotIn(FieldQuantityMilliliters, vs...))
}

// QuantityMillilitersGT applies the GT predicate on the "quantity_milliliters" field.
func QuantityMillilitersGT(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldGT(FieldQuantityMilliliters, v))
}

// QuantityMillilitersGTE applies the GTE predicate on the "quantity_milliliters" field.
func QuantityMillilitersGTE(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldGTE(FieldQuantityMilliliters, v))
}

// QuantityMillilitersLT applies the LT predicate on the "quantity_milliliters" field.
func QuantityMillilitersLT(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldLT(FieldQuantityMilliliters, v))
}

// QuantityMillilitersLTE applies the LTE predicate on the "quantity_milliliters" field.
func QuantityMillilitersLTE(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldLTE(FieldQuantityMilliliters, v))
}

// UnitPriceDeciCentsEQ applies the EQ predicate on the "unit_price_deci_cents" field.
func UnitPriceDeciCentsEQ(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldEQ(FieldUnitPriceDeciCents, v))
}

// UnitPriceDeciCentsNEQ applies the NEQ predicate on the "unit_price_deci_cents" field.
func UnitPriceDeciCentsNEQ(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldNEQ(FieldUnitPriceDeciCents, v))
}

// UnitPriceDeciCentsIn applies the In predicate on the "unit_price_deci_cents" field.
func UnitPriceDeciCentsIn(vs ...int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldIn(FieldUnitPriceDeciCents, vs...))
}

// UnitPriceDeciCentsNotIn applies the NotIn predicate on the "unit_price_deci_cents" field.
func UnitPriceDeciCentsNotIn(vs ...int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldNotIn(FieldUnitPriceDeciCents, vs...))
}

// UnitPriceDeciCentsGT applies the GT predicate on the "unit_price_deci_cents" field.
func UnitPriceDeciCentsGT(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldGT(FieldUnitPriceDeciCents, v))
}

// UnitPriceDeciCentsGTE applies the GTE predicate on the "unit_price_deci_cents" field.
func UnitPriceDeciCentsGTE(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldGTE(FieldUnitPriceDeciCents, v))
}

// UnitPriceDeciCentsLT applies the LT predicate on the "unit_price_deci_cents" field.
func UnitPriceDeciCentsLT(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldLT(FieldUnitPriceDeciCents, v))
}

// UnitPriceDeciCentsLTE applies the LTE predicate on the "unit_price_deci_cents" field.
func UnitPriceDeciCentsLTE(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldLTE(FieldUnitPriceDeciCents, v))
}

// VatRatePercentEQ applies the EQ predicate on the "vat_rate_percent" field.
func VatRatePercentEQ(v int) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldEQ(FieldVatRatePercent, v))
}

// VatRatePercentNEQ applies the NEQ predicate on the "vat_rate_percent" field.
func VatRatePercentNEQ(v int) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldNEQ(FieldVatRatePercent, v))
}

// VatRatePercentIn applies the In predicate on the "vat_rate_percent" field.
func VatRatePercentIn(vs ...int) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldIn(FieldVatRatePercent, vs...))
}

// VatRatePercentNotIn applies the NotIn predicate on the "vat_rate_percent" field.
func VatRatePercentNotIn(vs ...int) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldNotIn(FieldVatRatePercent, vs...))
}

// VatRatePercentGT applies the GT predicate on the "vat_rate_percent" field.
func VatRatePercentGT(v int) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldGT(FieldVatRatePercent, v))
}

// VatRatePercentGTE applies the GTE predicate on the "vat_rate_percent" field.
func VatRatePercentGTE(v int) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldGTE(FieldVatRatePercent, v))
}

// VatRatePercentLT applies the LT predicate on the "vat_rate_percent" field.
func VatRatePercentLT(v int) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldLT(FieldVatRatePercent, v))
}

// VatRatePercentLTE applies the LTE predicate on the "vat_rate_percent" field.
func VatRatePercentLTE(v int) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldLTE(FieldVatRatePercent, v))
}

// LineTotalCentsEQ applies the EQ predicate on the "line_total_cents" field.
func LineTotalCentsEQ(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldEQ(FieldLineTotalCents, v))
}

// LineTotalCentsNEQ applies the NEQ predicate on the "line_total_cents" field.
func LineTotalCentsNEQ(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldNEQ(FieldLineTotalCents, v))
}

// LineTotalCentsIn applies the In predicate on the "line_total_cents" field.
func LineTotalCentsIn(vs ...int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldIn(FieldLineTotalCents, vs...))
}

// LineTotalCentsNotIn applies the NotIn predicate on the "line_total_cents" field.
func LineTotalCentsNotIn(vs ...int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldNotIn(FieldLineTotalCents, vs...))
}

// LineTotalCentsGT applies the GT predicate on the "line_total_cents" field.
func LineTotalCentsGT(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldGT(FieldLineTotalCents, v))
}

// LineTotalCentsGTE applies the GTE predicate on the "line_total_cents" field.
func LineTotalCentsGTE(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldGTE(FieldLineTotalCents, v))
}

// LineTotalCentsLT applies the LT predicate on the "line_total_cents" field.
func LineTotalCentsLT(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldLT(FieldLineTotalCents, v))
}

// LineTotalCentsLTE applies the LTE predicate on the "line_total_cents" field.
func LineTotalCentsLTE(v int64) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldLTE(FieldLineTotalCents, v))
}

// LineTotalCentsIsNil applies the IsNil predicate on the "line_total_cents" field.
func LineTotalCentsIsNil() predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldIsNull(FieldLineTotalCents))
}

// LineTotalCentsNotNil applies the NotNil predicate on the "line_total_cents" field.
func LineTotalCentsNotNil() predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.FieldNotNull(FieldLineTotalCents))
}

// HasReceipt applies the HasEdge predicate on the "receipt" edge.
func HasReceipt() predicate.ReceiptLine {
	return predicate.ReceiptLine(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ReceiptTable, ReceiptColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReceiptWith applies the HasEdge predicate on the "receipt" edge with a given conditions (other predicates).
func HasReceiptWith(preds ...predicate.Receipt) predicate.ReceiptLine {
	return predicate.ReceiptLine(func(s *sql.Selector) {
		step := newReceiptStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReceiptLine) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReceiptLine) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReceiptLine) predicate.ReceiptLine {
	return predicate.ReceiptLine(sql.NotPredicates(p))
}
