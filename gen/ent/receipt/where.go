// Code generated by ent, DO NOT EDIT.

package receipt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/carbux/fuel-receipts/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldOwnerID, v))
}

// StationID applies equality check predicate on the "station_id" field. It's identical to StationIDEQ.
func StationID(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldStationID, v))
}

// IssuedAt applies equality check predicate on the "issued_at" field. It's identical to IssuedAtEQ.
func IssuedAt(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldIssuedAt, v))
}

// TotalCents applies equality check predicate on the "total_cents" field. It's identical to TotalCentsEQ.
func TotalCents(v int64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldTotalCents, v))
}

// VatAmountCents applies equality check predicate on the "vat_amount_cents" field. It's identical to VatAmountCentsEQ.
func VatAmountCents(v int64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldVatAmountCents, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldOwnerID, v))
}

// StationIDEQ applies the EQ predicate on the "station_id" field.
func StationIDEQ(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldStationID, v))
}

// StationIDNEQ applies the NEQ predicate on the "station_id" field.
func StationIDNEQ(v uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldStationID, v))
}

// StationIDIn applies the In predicate on the "station_id" field.
func StationIDIn(vs ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldStationID, vs...))
}

// StationIDNotIn applies the NotIn predicate on the "station_id" field.
func StationIDNotIn(vs ...uuid.UUID) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldStationID, vs...))
}

// IssuedAtEQ applies the EQ predicate on the "issued_at" field.
func IssuedAtEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldIssuedAt, v))
}

// IssuedAtNEQ applies the NEQ predicate on the "issued_at" field.
func IssuedAtNEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldIssuedAt, v))
}

// IssuedAtIn applies the In predicate on the "issued_at" field.
func IssuedAtIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldIssuedAt, vs...))
}

// IssuedAtNotIn applies the NotIn predicate on the "issued_at" field.
func IssuedAtNotIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldIssuedAt, vs...))
}

// IssuedAtGT applies the GT predicate on the "issued_at" field.
func IssuedAtGT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldIssuedAt, v))
}

// IssuedAtGTE applies the GTE predicate on the "issued_at" field.
func IssuedAtGTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldIssuedAt, v))
}

// IssuedAtLT applies the LT predicate on the "issued_at" field.
func IssuedAtLT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldIssuedAt, v))
}

// IssuedAtLTE applies the LTE predicate on the "issued_at" field.
func IssuedAtLTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldIssuedAt, v))
}

// TotalCentsEQ applies the EQ predicate on the "total_cents" field.
func TotalCentsEQ(v int64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldTotalCents, v))
}

// TotalCentsNEQ applies the NEQ predicate on the "total_cents" field.
func TotalCentsNEQ(v int64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldTotalCents, v))
}

// TotalCentsIn applies the In predicate on the "total_cents" field.
func TotalCentsIn(vs ...int64) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldTotalCents, vs...))
}

// TotalCentsNotIn applies the NotIn predicate on the "total_cents" field.
func TotalCentsNotIn(vs ...int64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldTotalCents, vs...))
}

// TotalCentsGT applies the GT predicate on the "total_cents" field.
func TotalCentsGT(v int64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldTotalCents, v))
}

// TotalCentsGTE applies the GTE predicate on the "total_cents" field.
func TotalCentsGTE(v int64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldTotalCents, v))
}

// TotalCentsLT applies the LT predicate on the "total_cents" field.
func TotalCentsLT(v int64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldTotalCents, v))
}

// TotalCentsLTE applies the LTE predicate on the "total_cents" field.
func TotalCentsLTE(v int64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldTotalCents, v))
}

// TotalCentsIsNil applies the IsNil predicate on the "total_cents" field.
func TotalCentsIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldTotalCents))
}

// TotalCentsNotNil applies the NotNil predicate on the "total_cents" field.
func TotalCentsNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldTotalCents))
}

// VatAmountCentsEQ applies the EQ predicate on the "vat_amount_cents" field.
func VatAmountCentsEQ(v int64) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldVatAmountCents, v))
}

// VatAmountCentsNEQ applies the NEQ predicate on the "vat_amount_cents" field.
func VatAmountCentsNEQ(v int64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldVatAmountCents, v))
}

// VatAmountCentsIn applies the In predicate on the "vat_amount_cents" field.
func VatAmountCentsIn(vs ...int64) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldVatAmountCents, vs...))
}

// VatAmountCentsNotIn applies the NotIn predicate on the "vat_amount_cents" field.
func VatAmountCentsNotIn(vs ...int64) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldVatAmountCents, vs...))
}

// VatAmountCentsGT applies the GT predicate on the "vat_amount_cents" field.
func VatAmountCentsGT(v int64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldVatAmountCents, v))
}

// VatAmountCentsGTE applies the GTE predicate on the "vat_amount_cents" field.
func VatAmountCentsGTE(v int64) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldVatAmountCents, v))
}

// VatAmountCentsLT applies the LT predicate on the "vat_amount_cents" field.
func VatAmountCentsLT(v int64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldVatAmountCents, v))
}

// VatAmountCentsLTE applies the LTE predicate on the "vat_amount_cents" field.
func VatAmountCentsLTE(v int64) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldVatAmountCents, v))
}

// VatAmountCentsIsNil applies the IsNil predicate on the "vat_amount_cents" field.
func VatAmountCentsIsNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldIsNull(FieldVatAmountCents))
}

// VatAmountCentsNotNil applies the NotNil predicate on the "vat_amount_cents" field.
func VatAmountCentsNotNil() predicate.Receipt {
	return predicate.Receipt(sql.FieldNotNull(FieldVatAmountCents))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Receipt {
	return predicate.Receipt(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasStation applies the HasEdge predicate on the "station" edge.
func HasStation() predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, StationTable, StationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStationWith applies the HasEdge predicate on the "station" edge with a given conditions (other predicates).
func HasStationWith(preds ...predicate.Station) predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := newStationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasLines applies the HasEdge predicate on the "lines" edge.
func HasLines() predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, LinesTable, LinesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLinesWith applies the HasEdge predicate on the "lines" edge with a given conditions (other predicates).
func HasLinesWith(preds ...predicate.ReceiptLine) predicate.Receipt {
	return predicate.Receipt(func(s *sql.Selector) {
		step := newLinesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Receipt) predicate.Receipt {
	return predicate.Receipt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Receipt) predicate.Receipt {
	return predicate.Receipt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Receipt) predicate.Receipt {
	return predicate.Receipt(sql.NotPredicates(p))
}
