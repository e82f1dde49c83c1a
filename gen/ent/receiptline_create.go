// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carbux/fuel-receipts/gen/ent/receipt"
	"github.com/carbux/fuel-receipts/gen/ent/receiptline"
	"github.com/google/uuid"
)

// ReceiptLineCreate is the builder for creating a ReceiptLine entity.
type ReceiptLineCreate struct {
	config
	mutation *ReceiptLineMutation
	hooks    []Hook
}

// SetReceiptID sets the "receipt_id" field.
func (_c *ReceiptLineCreate) SetReceiptID(v uuid.UUID) *ReceiptLineCreate {
	_c.mutation.SetReceiptID(v)
	return _c
}

// SetFuelType sets the "fuel_type" field.
func (_c *ReceiptLineCreate) SetFuelType(v string) *ReceiptLineCreate {
	_c.mutation.SetFuelType(v)
	return _c
}

// SetQuantityMilliliters sets the "quantity_milliliters" field.
func (_c *ReceiptLineCreate) SetQuantityMilliliters(v int64) *ReceiptLineCreate {
	_c.mutation.SetQuantityMilliliters(v)
	return _c
}

// SetUnitPriceDeciCents sets the "unit_price_deci_cents" field.
func (_c *ReceiptLineCreate) SetUnitPriceDeciCents(v int64) *ReceiptLineCreate {
	_c.mutation.SetUnitPriceDeciCents(v)
	return _c
}

// SetVatRatePercent sets the "vat_rate_percent" field.
func (_c *ReceiptLineCreate) SetVatRatePercent(v int) *ReceiptLineCreate {
	_c.mutation.SetVatRatePercent(v)
	return _c
}

// SetLineTotalCents sets the "line_total_cents" field.
func (_c *ReceiptLineCreate) SetLineTotalCents(v int64) *ReceiptLineCreate {
	_c.mutation.SetLineTotalCents(v)
	return _c
}

// SetNillableLineTotalCents sets the "line_total_cents" field if the given value is not nil.
func (_c *ReceiptLineCreate) SetNillableLineTotalCents(v *int64) *ReceiptLineCreate {
	if v != nil {
		_c.SetLineTotalCents(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReceiptLineCreate) SetID(v uuid.UUID) *ReceiptLineCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReceiptLineCreate) SetNillableID(v *uuid.UUID) *ReceiptLineCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetReceipt sets the "receipt" edge to the Receipt entity.
func (_c *ReceiptLineCreate) SetReceipt(v *Receipt) *ReceiptLineCreate {
	return _c.SetReceiptID(v.ID)
}

// Mutation returns the ReceiptLineMutation object of the builder.
func (_c *ReceiptLineCreate) Mutation() *ReceiptLineMutation {
	return _c.mutation
}

// Save creates the ReceiptLine in the database.
func (_c *ReceiptLineCreate) Save(ctx context.Context) (*ReceiptLine, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReceiptLineCreate) SaveX(ctx context.Context) *ReceiptLine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptLineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptLineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReceiptLineCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := receiptline.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReceiptLineCreate) check() error {
	if _, ok := _c.mutation.ReceiptID(); !ok {
		return &ValidationError{Name: "receipt_id", err: errors.New(`ent: missing required field "ReceiptLine.receipt_id"`)}
	}
	if _, ok := _c.mutation.FuelType(); !ok {
		return &ValidationError{Name: "fuel_type", err: errors.New(`ent: missing required field "ReceiptLine.fuel_type"`)}
	}
	if v, ok := _c.mutation.FuelType(); ok {
		if err := receiptline.FuelTypeValidator(v); err != nil {
			return &ValidationError{Name: "fuel_type", err: fmt.Errorf(`ent: validator failed for field "ReceiptLine.fuel_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuantityMilliliters(); !ok {
		return &ValidationError{Name: "quantity_milliliters", err: errors.New(`ent: missing required field "ReceiptLine.quantity_milliliters"`)}
	}
	if v, ok := _c.mutation.QuantityMilliliters(); ok {
		if err := receiptline.QuantityMillilitersValidator(v); err != nil {
			return &ValidationError{Name: "quantity_milliliters", err: fmt.Errorf(`ent: validator failed for field "ReceiptLine.quantity_milliliters": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitPriceDeciCents(); !ok {
		return &ValidationError{Name: "unit_price_deci_cents", err: errors.New(`ent: missing required field "ReceiptLine.unit_price_deci_cents"`)}
	}
	if v, ok := _c.mutation.UnitPriceDeciCents(); ok {
		if err := receiptline.UnitPriceDeciCentsValidator(v); err != nil {
			return &ValidationError{Name: "unit_price_deci_cents", err: fmt.Errorf(`ent: validator failed for field "ReceiptLine.unit_price_deci_cents": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VatRatePercent(); !ok {
		return &ValidationError{Name: "vat_rate_percent", err: errors.New(`ent: missing required field "ReceiptLine.vat_rate_percent"`)}
	}
	if v, ok := _c.mutation.VatRatePercent(); ok {
		if err := receiptline.VatRatePercentValidator(v); err != nil {
			return &ValidationError{Name: "vat_rate_percent", err: fmt.Errorf(`ent: validator failed for field "ReceiptLine.vat_rate_percent": %w`, err)}
		}
	}
	if len(_c.mutation.ReceiptIDs()) == 0 {
		return &ValidationError{Name: "receipt", err: errors.New(`ent: missing required edge "ReceiptLine.receipt"`)}
	}
	return nil
}

func (_c *ReceiptLineCreate) sqlSave(ctx context.Context) (*ReceiptLine, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReceiptLineCreate) createSpec() (*ReceiptLine, *sqlgraph.CreateSpec) {
	var (
		_node = &ReceiptLine{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(receiptline.Table, sqlgraph.NewFieldSpec(receiptline.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FuelType(); ok {
		_spec.SetField(receiptline.FieldFuelType, field.TypeString, value)
		_node.FuelType = value
	}
	if value, ok := _c.mutation.QuantityMilliliters(); ok {
		_spec.SetField(receiptline.FieldQuantityMilliliters, field.TypeInt64, value)
		_node.QuantityMilliliters = value
	}
	if value, ok := _c.mutation.UnitPriceDeciCents(); ok {
		_spec.SetField(receiptline.FieldUnitPriceDeciCents, field.TypeInt64, value)
		_node.UnitPriceDeciCents = value
	}
	if value, ok := _c.mutation.VatRatePercent(); ok {
		_spec.SetField(receiptline.FieldVatRatePercent, field.TypeInt, value)
		_node.VatRatePercent = value
	}
	if value, ok := _c.mutation.LineTotalCents(); ok {
		_spec.SetField(receiptline.FieldLineTotalCents, field.TypeInt64, value)
		_node.LineTotalCents = &value
	}
	if nodes := _c.mutation.ReceiptIDs(); len(nodes) > 0 {
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
		_node.ReceiptID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReceiptLineCreateBulk is the builder for creating many ReceiptLine entities in bulk.
type ReceiptLineCreateBulk struct {
	config
	err      error
	builders []*ReceiptLineCreate
}

// Save creates the ReceiptLine entities in the database.
func (_c *ReceiptLineCreateBulk) Save(ctx context.Context) ([]*ReceiptLine, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReceiptLine, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReceiptLineMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ReceiptLineCreateBulk) SaveX(ctx context.Context) []*ReceiptLine {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptLineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptLineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
