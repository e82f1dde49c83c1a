// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carbux/fuel-receipts/gen/ent/predicate"
	"github.com/carbux/fuel-receipts/gen/ent/receipt"
	"github.com/carbux/fuel-receipts/gen/ent/receiptline"
	"github.com/google/uuid"
)

// ReceiptLineUpdate is the builder for updating ReceiptLine entities.
type ReceiptLineUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiptLineMutation
}

// Where appends a list predicates to the ReceiptLineUpdate builder.
func (_u *ReceiptLineUpdate) Where(ps ...predicate.ReceiptLine) *ReceiptLineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReceiptID sets the "receipt_id" field.
func (_u *ReceiptLineUpdate) SetReceiptID(v uuid.UUID) *ReceiptLineUpdate {
	_u.mutation.SetReceiptID(v)
	return _u
}

// SetNillableReceiptID sets the "receipt_id" field if the given value is not nil.
func (_u *ReceiptLineUpdate) SetNillableReceiptID(v *uuid.UUID) *ReceiptLineUpdate {
	if v != nil {
		_u.SetReceiptID(*v)
	}
	return _u
}

// SetFuelType sets the "fuel_type" field.
func (_u *ReceiptLineUpdate) SetFuelType(v string) *ReceiptLineUpdate {
	_u.mutation.SetFuelType(v)
	return _u
}

// SetNillableFuelType sets the "fuel_type" field if the given value is not nil.
func (_u *ReceiptLineUpdate) SetNillableFuelType(v *string) *ReceiptLineUpdate {
	if v != nil {
		_u.SetFuelType(*v)
	}
	return _u
}

// SetQuantityMilliliters sets the "quantity_milliliters" field.
func (_u *ReceiptLineUpdate) SetQuantityMilliliters(v int64) *ReceiptLineUpdate {
	_u.mutation.ResetQuantityMilliliters()
	_u.mutation.SetQuantityMilliliters(v)
	return _u
}

// SetNillableQuantityMilliliters sets the "quantity_milliliters" field if the given value is not nil.
func (_u *ReceiptLineUpdate) SetNillableQuantityMilliliters(v *int64) *ReceiptLineUpdate {
	if v != nil {
		_u.SetQuantityMilliliters(*v)
	}
	return _u
}

// AddQuantityMilliliters adds value to the "quantity_milliliters" field.
func (_u *ReceiptLineUpdate) AddQuantityMilliliters(v int64) *ReceiptLineUpdate {
	_u.mutation.AddQuantityMilliliters(v)
	return _u
}

// SetUnitPriceDeciCents sets the "unit_price_deci_cents" field.
func (_u *ReceiptLineUpdate) SetUnitPriceDeciCents(v int64) *ReceiptLineUpdate {
	_u.mutation.ResetUnitPriceDeciCents()
	_u.mutation.SetUnitPriceDeciCents(v)
	return _u
}

// SetNillableUnitPriceDeciCents sets the "unit_price_deci_cents" field if the given value is not nil.
func (_u *ReceiptLineUpdate) SetNillableUnitPriceDeciCents(v *int64) *ReceiptLineUpdate {
	if v != nil {
		_u.SetUnitPriceDeciCents(*v)
	}
	return _u
}

// AddUnitPriceDeciCents adds value to the "unit_price_deci_cents" field.
func (_u *ReceiptLineUpdate) AddUnitPriceDeciCents(v int64) *ReceiptLineUpdate {
	_u.mutation.AddUnitPriceDeciCents(v)
	return _u
}

// SetVatRatePercent sets the "vat_rate_percent" field.
func (_u *ReceiptLineUpdate) SetVatRatePercent(v int) *ReceiptLineUpdate {
	_u.mutation.ResetVatRatePercent()
	_u.mutation.SetVatRatePercent(v)
	return _u
}

// SetNillableVatRatePercent sets the "vat_rate_percent" field if the given value is not nil.
func (_u *ReceiptLineUpdate) SetNillableVatRatePercent(v *int) *ReceiptLineUpdate {
	if v != nil {
		_u.SetVatRatePercent(*v)
	}
	return _u
}

// AddVatRatePercent adds value to the "vat_rate_percent" field.
func (_u *ReceiptLineUpdate) AddVatRatePercent(v int) *ReceiptLineUpdate {
	_u.mutation.AddVatRatePercent(v)
	return _u
}

// SetLineTotalCents sets the "line_total_cents" field.
func (_u *ReceiptLineUpdate) SetLineTotalCents(v int64) *ReceiptLineUpdate {
	_u.mutation.ResetLineTotalCents()
	_u.mutation.SetLineTotalCents(v)
	return _u
}

// SetNillableLineTotalCents sets the "line_total_cents" field if the given value is not nil.
func (_u *ReceiptLineUpdate) SetNillableLineTotalCents(v *int64) *ReceiptLineUpdate {
	if v != nil {
		_u.SetLineTotalCents(*v)
	}
	return _u
}

// AddLineTotalCents adds value to the "line_total_cents" field.
func (_u *ReceiptLineUpdate) AddLineTotalCents(v int64) *ReceiptLineUpdate {
	_u.mutation.AddLineTotalCents(v)
	return _u
}

// ClearLineTotalCents clears the value of the "line_total_cents" field.
func (_u *ReceiptLineUpdate) ClearLineTotalCents() *ReceiptLineUpdate {
	_u.mutation.ClearLineTotalCents()
	return _u
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_u *ReceiptLineUpdate) SetReceipt(v *Receipt) *ReceiptLineUpdate {
	return _u.SetReceiptID(v.ID)
}

// Mutation returns the ReceiptLineMutation object of the builder.
func (_u *ReceiptLineUpdate) Mutation() *ReceiptLineMutation {
	return _u.mutation
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (_u *ReceiptLineUpdate) ClearReceipt() *ReceiptLineUpdate {
	_u.mutation.ClearReceipt()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiptLineUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptLineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiptLineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptLineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptLineUpdate) check() error {
	if v, ok := _u.mutation.FuelType(); ok {
		if err := receiptline.FuelTypeValidator(v); err != nil {
			return &ValidationError{Name: "fuel_type", err: fmt.Errorf(`ent: validator failed for field "ReceiptLine.fuel_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuantityMilliliters(); ok {
		if err := receiptline.QuantityMillilitersValidator(v); err != nil {
			return &ValidationError{Name: "quantity_milliliters", err: fmt.Errorf(`ent: validator failed for field "ReceiptLine.quantity_milliliters": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPriceDeciCents(); ok {
		if err := receiptline.UnitPriceDeciCentsValidator(v); err != nil {
			return &ValidationError{Name: "unit_price_deci_cents", err: fmt.Errorf(`ent: validator failed for field "ReceiptLine.unit_price_deci_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VatRatePercent(); ok {
		if err := receiptline.VatRatePercentValidator(v); err != nil {
			return &ValidationError{Name: "vat_rate_percent", err: fmt.Errorf(`ent: validator failed for field "ReceiptLine.vat_rate_percent": %w`, err)}
		}
	}
	if _u.mutation.ReceiptCleared() && len(_u.mutation.ReceiptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReceiptLine.receipt"`)
	}
	return nil
}

func (_u *ReceiptLineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receiptline.Table, receiptline.Columns, sqlgraph.NewFieldSpec(receiptline.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FuelType(); ok {
		_spec.SetField(receiptline.FieldFuelType, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuantityMilliliters(); ok {
		_spec.SetField(receiptline.FieldQuantityMilliliters, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedQuantityMilliliters(); ok {
		_spec.AddField(receiptline.FieldQuantityMilliliters, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UnitPriceDeciCents(); ok {
		_spec.SetField(receiptline.FieldUnitPriceDeciCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUnitPriceDeciCents(); ok {
		_spec.AddField(receiptline.FieldUnitPriceDeciCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.VatRatePercent(); ok {
		_spec.SetField(receiptline.FieldVatRatePercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVatRatePercent(); ok {
		_spec.AddField(receiptline.FieldVatRatePercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LineTotalCents(); ok {
		_spec.SetField(receiptline.FieldLineTotalCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLineTotalCents(); ok {
		_spec.AddField(receiptline.FieldLineTotalCents, field.TypeInt64, value)
	}
	if _u.mutation.LineTotalCentsCleared() {
		_spec.ClearField(receiptline.FieldLineTotalCents, field.TypeInt64)
	}
	if _u.mutation.ReceiptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptline.ReceiptTable,
			Columns: []string{receiptline.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptline.ReceiptTable,
			Columns: []string{receiptline.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receiptline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiptLineUpdateOne is the builder for updating a single ReceiptLine entity.
type ReceiptLineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiptLineMutation
}

// SetReceiptID sets the "receipt_id" field.
func (_u *ReceiptLineUpdateOne) SetReceiptID(v uuid.UUID) *ReceiptLineUpdateOne {
	_u.mutation.SetReceiptID(v)
	return _u
}

// SetNillableReceiptID sets the "receipt_id" field if the given value is not nil.
func (_u *ReceiptLineUpdateOne) SetNillableReceiptID(v *uuid.UUID) *ReceiptLineUpdateOne {
	if v != nil {
		_u.SetReceiptID(*v)
	}
	return _u
}

// SetFuelType sets the "fuel_type" field.
func (_u *ReceiptLineUpdateOne) SetFuelType(v string) *ReceiptLineUpdateOne {
	_u.mutation.SetFuelType(v)
	return _u
}

// SetNillableFuelType sets the "fuel_type" field if the given value is not nil.
func (_u *ReceiptLineUpdateOne) SetNillableFuelType(v *string) *ReceiptLineUpdateOne {
	if v != nil {
		_u.SetFuelType(*v)
	}
	return _u
}

// SetQuantityMilliliters sets the "quantity_milliliters" field.
func (_u *ReceiptLineUpdateOne) SetQuantityMilliliters(v int64) *ReceiptLineUpdateOne {
	_u.mutation.ResetQuantityMilliliters()
	_u.mutation.SetQuantityMilliliters(v)
	return _u
}

// SetNillableQuantityMilliliters sets the "quantity_milliliters" field if the given value is not nil.
func (_u *ReceiptLineUpdateOne) SetNillableQuantityMilliliters(v *int64) *ReceiptLineUpdateOne {
	if v != nil {
		_u.SetQuantityMilliliters(*v)
	}
	return _u
}

// AddQuantityMilliliters adds value to the "quantity_milliliters" field.
func (_u *ReceiptLineUpdateOne) AddQuantityMilliliters(v int64) *ReceiptLineUpdateOne {
	_u.mutation.AddQuantityMilliliters(v)
	return _u
}

// SetUnitPriceDeciCents sets the "unit_price_deci_cents" field.
func (_u *ReceiptLineUpdateOne) SetUnitPriceDeciCents(v int64) *ReceiptLineUpdateOne {
	_u.mutation.ResetUnitPriceDeciCents()
	_u.mutation.SetUnitPriceDeciCents(v)
	return _u
}

// SetNillableUnitPriceDeciCents sets the "unit_price_deci_cents" field if the given value is not nil.
func (_u *ReceiptLineUpdateOne) SetNillableUnitPriceDeciCents(v *int64) *ReceiptLineUpdateOne {
	if v != nil {
		_u.SetUnitPriceDeciCents(*v)
	}
	return _u
}

// AddUnitPriceDeciCents adds value to the "unit_price_deci_cents" field.
func (_u *ReceiptLineUpdateOne) AddUnitPriceDeciCents(v int64) *ReceiptLineUpdateOne {
	_u.mutation.AddUnitPriceDeciCents(v)
	return _u
}

// SetVatRatePercent sets the "vat_rate_percent" field.
func (_u *ReceiptLineUpdateOne) SetVatRatePercent(v int) *ReceiptLineUpdateOne {
	_u.mutation.ResetVatRatePercent()
	_u.mutation.SetVatRatePercent(v)
	return _u
}

// SetNillableVatRatePercent sets the "vat_rate_percent" field if the given value is not nil.
func (_u *ReceiptLineUpdateOne) SetNillableVatRatePercent(v *int) *ReceiptLineUpdateOne {
	if v != nil {
		_u.SetVatRatePercent(*v)
	}
	return _u
}

// AddVatRatePercent adds value to the "vat_rate_percent" field.
func (_u *ReceiptLineUpdateOne) AddVatRatePercent(v int) *ReceiptLineUpdateOne {
	_u.mutation.AddVatRatePercent(v)
	return _u
}

// SetLineTotalCents sets the "line_total_cents" field.
func (_u *ReceiptLineUpdateOne) SetLineTotalCents(v int64) *ReceiptLineUpdateOne {
	_u.mutation.ResetLineTotalCents()
	_u.mutation.SetLineTotalCents(v)
	return _u
}

// SetNillableLineTotalCents sets the "line_total_cents" field if the given value is not nil.
func (_u *ReceiptLineUpdateOne) SetNillableLineTotalCents(v *int64) *ReceiptLineUpdateOne {
	if v != nil {
		_u.SetLineTotalCents(*v)
	}
	return _u
}

// AddLineTotalCents adds value to the "line_total_cents" field.
func (_u *ReceiptLineUpdateOne) AddLineTotalCents(v int64) *ReceiptLineUpdateOne {
	_u.mutation.AddLineTotalCents(v)
	return _u
}

// ClearLineTotalCents clears the value of the "line_total_cents" field.
func (_u *ReceiptLineUpdateOne) ClearLineTotalCents() *ReceiptLineUpdateOne {
	_u.mutation.ClearLineTotalCents()
	return _u
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_u *ReceiptLineUpdateOne) SetReceipt(v *Receipt) *ReceiptLineUpdateOne {
	return _u.SetReceiptID(v.ID)
}

// Mutation returns the ReceiptLineMutation object of the builder.
func (_u *ReceiptLineUpdateOne) Mutation() *ReceiptLineMutation {
	return _u.mutation
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (_u *ReceiptLineUpdateOne) ClearReceipt() *ReceiptLineUpdateOne {
	_u.mutation.ClearReceipt()
	return _u
}

// Where appends a list predicates to the ReceiptLineUpdate builder.
func (_u *ReceiptLineUpdateOne) Where(ps ...predicate.ReceiptLine) *ReceiptLineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiptLineUpdateOne) Select(field string, fields ...string) *ReceiptLineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReceiptLine entity.
func (_u *ReceiptLineUpdateOne) Save(ctx context.Context) (*ReceiptLine, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptLineUpdateOne) SaveX(ctx context.Context) *ReceiptLine {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiptLineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptLineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptLineUpdateOne) check() error {
	if v, ok := _u.mutation.FuelType(); ok {
		if err := receiptline.FuelTypeValidator(v); err != nil {
			return &ValidationError{Name: "fuel_type", err: fmt.Errorf(`ent: validator failed for field "ReceiptLine.fuel_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuantityMilliliters(); ok {
		if err := receiptline.QuantityMillilitersValidator(v); err != nil {
			return &ValidationError{Name: "quantity_milliliters", err: fmt.Errorf(`ent: validator failed for field "ReceiptLine.quantity_milliliters": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPriceDeciCents(); ok {
		if err := receiptline.UnitPriceDeciCentsValidator(v); err != nil {
			return &ValidationError{Name: "unit_price_deci_cents", err: fmt.Errorf(`ent: validator failed for field "ReceiptLine.unit_price_deci_cents": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VatRatePercent(); ok {
		if err := receiptline.VatRatePercentValidator(v); err != nil {
			return &ValidationError{Name: "vat_rate_percent", err: fmt.Errorf(`ent: validator failed for field "ReceiptLine.vat_rate_percent": %w`, err)}
		}
	}
	if _u.mutation.ReceiptCleared() && len(_u.mutation.ReceiptIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ReceiptLine.receipt"`)
	}
	return nil
}

func (_u *ReceiptLineUpdateOne) sqlSave(ctx context.Context) (_node *ReceiptLine, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receiptline.Table, receiptline.Columns, sqlgraph.NewFieldSpec(receiptline.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReceiptLine.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receiptline.FieldID)
		for _, f := range fields {
			if !receiptline.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receiptline.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FuelType(); ok {
		_spec.SetField(receiptline.FieldFuelType, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuantityMilliliters(); ok {
		_spec.SetField(receiptline.FieldQuantityMilliliters, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedQuantityMilliliters(); ok {
		_spec.AddField(receiptline.FieldQuantityMilliliters, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UnitPriceDeciCents(); ok {
		_spec.SetField(receiptline.FieldUnitPriceDeciCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUnitPriceDeciCents(); ok {
		_spec.AddField(receiptline.FieldUnitPriceDeciCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.VatRatePercent(); ok {
		_spec.SetField(receiptline.FieldVatRatePercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVatRatePercent(); ok {
		_spec.AddField(receiptline.FieldVatRatePercent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LineTotalCents(); ok {
		_spec.SetField(receiptline.FieldLineTotalCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLineTotalCents(); ok {
		_spec.AddField(receiptline.FieldLineTotalCents, field.TypeInt64, value)
	}
	if _u.mutation.LineTotalCentsCleared() {
		_spec.ClearField(receiptline.FieldLineTotalCents, field.TypeInt64)
	}
	if _u.mutation.ReceiptCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptline.ReceiptTable,
			Columns: []string{receiptline.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptline.ReceiptTable,
			Columns: []string{receiptline.ReceiptColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ReceiptLine{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receiptline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
