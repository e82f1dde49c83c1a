// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carbux/fuel-receipts/gen/ent/receipt"
	"github.com/carbux/fuel-receipts/gen/ent/receiptline"
	"github.com/carbux/fuel-receipts/gen/ent/station"
	"github.com/google/uuid"
)

// ReceiptCreate is the builder for creating a Receipt entity.
type ReceiptCreate struct {
	config
	mutation *ReceiptMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *ReceiptCreate) SetOwnerID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetStationID sets the "station_id" field.
func (_c *ReceiptCreate) SetStationID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetStationID(v)
	return _c
}

// SetIssuedAt sets the "issued_at" field.
func (_c *ReceiptCreate) SetIssuedAt(v time.Time) *ReceiptCreate {
	_c.mutation.SetIssuedAt(v)
	return _c
}

// SetTotalCents sets the "total_cents" field.
func (_c *ReceiptCreate) SetTotalCents(v int64) *ReceiptCreate {
	_c.mutation.SetTotalCents(v)
	return _c
}

// SetNillableTotalCents sets the "total_cents" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableTotalCents(v *int64) *ReceiptCreate {
	if v != nil {
		_c.SetTotalCents(*v)
	}
	return _c
}

// SetVatAmountCents sets the "vat_amount_cents" field.
func (_c *ReceiptCreate) SetVatAmountCents(v int64) *ReceiptCreate {
	_c.mutation.SetVatAmountCents(v)
	return _c
}

// SetNillableVatAmountCents sets the "vat_amount_cents" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableVatAmountCents(v *int64) *ReceiptCreate {
	if v != nil {
		_c.SetVatAmountCents(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReceiptCreate) SetCreatedAt(v time.Time) *ReceiptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableCreatedAt(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReceiptCreate) SetUpdatedAt(v time.Time) *ReceiptCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableUpdatedAt(v *time.Time) *ReceiptCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReceiptCreate) SetID(v uuid.UUID) *ReceiptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReceiptCreate) SetNillableID(v *uuid.UUID) *ReceiptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetStation sets the "station" edge to the Station entity.
func (_c *ReceiptCreate) SetStation(v *Station) *ReceiptCreate {
	return _c.SetStationID(v.ID)
}

// AddLineIDs adds the "lines" edge to the ReceiptLine entity by IDs.
func (_c *ReceiptCreate) AddLineIDs(ids ...uuid.UUID) *ReceiptCreate {
	_c.mutation.AddLineIDs(ids...)
	return _c
}

// AddLines adds the "lines" edges to the ReceiptLine entity.
func (_c *ReceiptCreate) AddLines(v ...*ReceiptLine) *ReceiptCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLineIDs(ids...)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_c *ReceiptCreate) Mutation() *ReceiptMutation {
	return _c.mutation
}

// Save creates the Receipt in the database.
func (_c *ReceiptCreate) Save(ctx context.Context) (*Receipt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReceiptCreate) SaveX(ctx context.Context) *Receipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReceiptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := receipt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := receipt.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := receipt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReceiptCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Receipt.owner_id"`)}
	}
	if _, ok := _c.mutation.StationID(); !ok {
		return &ValidationError{Name: "station_id", err: errors.New(`ent: missing required field "Receipt.station_id"`)}
	}
	if _, ok := _c.mutation.IssuedAt(); !ok {
		return &ValidationError{Name: "issued_at", err: errors.New(`ent: missing required field "Receipt.issued_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Receipt.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Receipt.updated_at"`)}
	}
	if len(_c.mutation.StationIDs()) == 0 {
		return &ValidationError{Name: "station", err: errors.New(`ent: missing required edge "Receipt.station"`)}
	}
	return nil
}

func (_c *ReceiptCreate) sqlSave(ctx context.Context) (*Receipt, error) {
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

func (_c *ReceiptCreate) createSpec() (*Receipt, *sqlgraph.CreateSpec) {
	var (
		_node = &Receipt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(receipt.Table, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(receipt.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.IssuedAt(); ok {
		_spec.SetField(receipt.FieldIssuedAt, field.TypeTime, value)
		_node.IssuedAt = value
	}
	if value, ok := _c.mutation.TotalCents(); ok {
		_spec.SetField(receipt.FieldTotalCents, field.TypeInt64, value)
		_node.TotalCents = &value
	}
	if value, ok := _c.mutation.VatAmountCents(); ok {
		_spec.SetField(receipt.FieldVatAmountCents, field.TypeInt64, value)
		_node.VatAmountCents = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.StationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receipt.StationTable,
			Columns: []string{receipt.StationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(station.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LinesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   receipt.LinesTable,
			Columns: []string{receipt.LinesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptline.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReceiptCreateBulk is the builder for creating many Receipt entities in bulk.
type ReceiptCreateBulk struct {
	config
	err      error
	builders []*ReceiptCreate
}

// Save creates the Receipt entities in the database.
func (_c *ReceiptCreateBulk) Save(ctx context.Context) ([]*Receipt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Receipt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReceiptMutation)
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
func (_c *ReceiptCreateBulk) SaveX(ctx context.Context) []*Receipt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
