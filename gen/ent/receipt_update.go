// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carbux/fuel-receipts/gen/ent/predicate"
	"github.com/carbux/fuel-receipts/gen/ent/receipt"
	"github.com/carbux/fuel-receipts/gen/ent/receiptline"
	"github.com/carbux/fuel-receipts/gen/ent/station"
	"github.com/google/uuid"
)

// ReceiptUpdate is the builder for updating Receipt entities.
type ReceiptUpdate struct {
	config
	hooks    []Hook
	mutation *ReceiptMutation
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdate) Where(ps ...predicate.Receipt) *ReceiptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStationID sets the "station_id" field.
func (_u *ReceiptUpdate) SetStationID(v uuid.UUID) *ReceiptUpdate {
	_u.mutation.SetStationID(v)
	return _u
}

// SetNillableStationID sets the "station_id" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableStationID(v *uuid.UUID) *ReceiptUpdate {
	if v != nil {
		_u.SetStationID(*v)
	}
	return _u
}

// SetTotalCents sets the "total_cents" field.
func (_u *ReceiptUpdate) SetTotalCents(v int64) *ReceiptUpdate {
	_u.mutation.ResetTotalCents()
	_u.mutation.SetTotalCents(v)
	return _u
}

// SetNillableTotalCents sets the "total_cents" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableTotalCents(v *int64) *ReceiptUpdate {
	if v != nil {
		_u.SetTotalCents(*v)
	}
	return _u
}

// AddTotalCents adds value to the "total_cents" field.
func (_u *ReceiptUpdate) AddTotalCents(v int64) *ReceiptUpdate {
	_u.mutation.AddTotalCents(v)
	return _u
}

// ClearTotalCents clears the value of the "total_cents" field.
func (_u *ReceiptUpdate) ClearTotalCents() *ReceiptUpdate {
	_u.mutation.ClearTotalCents()
	return _u
}

// SetVatAmountCents sets the "vat_amount_cents" field.
func (_u *ReceiptUpdate) SetVatAmountCents(v int64) *ReceiptUpdate {
	_u.mutation.ResetVatAmountCents()
	_u.mutation.SetVatAmountCents(v)
	return _u
}

// SetNillableVatAmountCents sets the "vat_amount_cents" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableVatAmountCents(v *int64) *ReceiptUpdate {
	if v != nil {
		_u.SetVatAmountCents(*v)
	}
	return _u
}

// AddVatAmountCents adds value to the "vat_amount_cents" field.
func (_u *ReceiptUpdate) AddVatAmountCents(v int64) *ReceiptUpdate {
	_u.mutation.AddVatAmountCents(v)
	return _u
}

// ClearVatAmountCents clears the value of the "vat_amount_cents" field.
func (_u *ReceiptUpdate) ClearVatAmountCents() *ReceiptUpdate {
	_u.mutation.ClearVatAmountCents()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReceiptUpdate) SetCreatedAt(v time.Time) *ReceiptUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReceiptUpdate) SetNillableCreatedAt(v *time.Time) *ReceiptUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReceiptUpdate) SetUpdatedAt(v time.Time) *ReceiptUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStation sets the "station" edge to the Station entity.
func (_u *ReceiptUpdate) SetStation(v *Station) *ReceiptUpdate {
	return _u.SetStationID(v.ID)
}

// AddLineIDs adds the "lines" edge to the ReceiptLine entity by IDs.
func (_u *ReceiptUpdate) AddLineIDs(ids ...uuid.UUID) *ReceiptUpdate {
	_u.mutation.AddLineIDs(ids...)
	return _u
}

// AddLines adds the "lines" edges to the ReceiptLine entity.
func (_u *ReceiptUpdate) AddLines(v ...*ReceiptLine) *ReceiptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineIDs(ids...)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdate) Mutation() *ReceiptMutation {
	return _u.mutation
}

// ClearStation clears the "station" edge to the Station entity.
func (_u *ReceiptUpdate) ClearStation() *ReceiptUpdate {
	_u.mutation.ClearStation()
	return _u
}

// ClearLines clears all "lines" edges to the ReceiptLine entity.
func (_u *ReceiptUpdate) ClearLines() *ReceiptUpdate {
	_u.mutation.ClearLines()
	return _u
}

// RemoveLineIDs removes the "lines" edge to ReceiptLine entities by IDs.
func (_u *ReceiptUpdate) RemoveLineIDs(ids ...uuid.UUID) *ReceiptUpdate {
	_u.mutation.RemoveLineIDs(ids...)
	return _u
}

// RemoveLines removes "lines" edges to ReceiptLine entities.
func (_u *ReceiptUpdate) RemoveLines(v ...*ReceiptLine) *ReceiptUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReceiptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReceiptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReceiptUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := receipt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdate) check() error {
	if _u.mutation.StationCleared() && len(_u.mutation.StationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Receipt.station"`)
	}
	return nil
}

func (_u *ReceiptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalCents(); ok {
		_spec.SetField(receipt.FieldTotalCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalCents(); ok {
		_spec.AddField(receipt.FieldTotalCents, field.TypeInt64, value)
	}
	if _u.mutation.TotalCentsCleared() {
		_spec.ClearField(receipt.FieldTotalCents, field.TypeInt64)
	}
	if value, ok := _u.mutation.VatAmountCents(); ok {
		_spec.SetField(receipt.FieldVatAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVatAmountCents(); ok {
		_spec.AddField(receipt.FieldVatAmountCents, field.TypeInt64, value)
	}
	if _u.mutation.VatAmountCentsCleared() {
		_spec.ClearField(receipt.FieldVatAmountCents, field.TypeInt64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinesIDs(); len(nodes) > 0 && !_u.mutation.LinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReceiptUpdateOne is the builder for updating a single Receipt entity.
type ReceiptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReceiptMutation
}

// SetStationID sets the "station_id" field.
func (_u *ReceiptUpdateOne) SetStationID(v uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.SetStationID(v)
	return _u
}

// SetNillableStationID sets the "station_id" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableStationID(v *uuid.UUID) *ReceiptUpdateOne {
	if v != nil {
		_u.SetStationID(*v)
	}
	return _u
}

// SetTotalCents sets the "total_cents" field.
func (_u *ReceiptUpdateOne) SetTotalCents(v int64) *ReceiptUpdateOne {
	_u.mutation.ResetTotalCents()
	_u.mutation.SetTotalCents(v)
	return _u
}

// SetNillableTotalCents sets the "total_cents" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableTotalCents(v *int64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetTotalCents(*v)
	}
	return _u
}

// AddTotalCents adds value to the "total_cents" field.
func (_u *ReceiptUpdateOne) AddTotalCents(v int64) *ReceiptUpdateOne {
	_u.mutation.AddTotalCents(v)
	return _u
}

// ClearTotalCents clears the value of the "total_cents" field.
func (_u *ReceiptUpdateOne) ClearTotalCents() *ReceiptUpdateOne {
	_u.mutation.ClearTotalCents()
	return _u
}

// SetVatAmountCents sets the "vat_amount_cents" field.
func (_u *ReceiptUpdateOne) SetVatAmountCents(v int64) *ReceiptUpdateOne {
	_u.mutation.ResetVatAmountCents()
	_u.mutation.SetVatAmountCents(v)
	return _u
}

// SetNillableVatAmountCents sets the "vat_amount_cents" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableVatAmountCents(v *int64) *ReceiptUpdateOne {
	if v != nil {
		_u.SetVatAmountCents(*v)
	}
	return _u
}

// AddVatAmountCents adds value to the "vat_amount_cents" field.
func (_u *ReceiptUpdateOne) AddVatAmountCents(v int64) *ReceiptUpdateOne {
	_u.mutation.AddVatAmountCents(v)
	return _u
}

// ClearVatAmountCents clears the value of the "vat_amount_cents" field.
func (_u *ReceiptUpdateOne) ClearVatAmountCents() *ReceiptUpdateOne {
	_u.mutation.ClearVatAmountCents()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ReceiptUpdateOne) SetCreatedAt(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ReceiptUpdateOne) SetNillableCreatedAt(v *time.Time) *ReceiptUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReceiptUpdateOne) SetUpdatedAt(v time.Time) *ReceiptUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStation sets the "station" edge to the Station entity.
func (_u *ReceiptUpdateOne) SetStation(v *Station) *ReceiptUpdateOne {
	return _u.SetStationID(v.ID)
}

// AddLineIDs adds the "lines" edge to the ReceiptLine entity by IDs.
func (_u *ReceiptUpdateOne) AddLineIDs(ids ...uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.AddLineIDs(ids...)
	return _u
}

// AddLines adds the "lines" edges to the ReceiptLine entity.
func (_u *ReceiptUpdateOne) AddLines(v ...*ReceiptLine) *ReceiptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLineIDs(ids...)
}

// Mutation returns the ReceiptMutation object of the builder.
func (_u *ReceiptUpdateOne) Mutation() *ReceiptMutation {
	return _u.mutation
}

// ClearStation clears the "station" edge to the Station entity.
func (_u *ReceiptUpdateOne) ClearStation() *ReceiptUpdateOne {
	_u.mutation.ClearStation()
	return _u
}

// ClearLines clears all "lines" edges to the ReceiptLine entity.
func (_u *ReceiptUpdateOne) ClearLines() *ReceiptUpdateOne {
	_u.mutation.ClearLines()
	return _u
}

// RemoveLineIDs removes the "lines" edge to ReceiptLine entities by IDs.
func (_u *ReceiptUpdateOne) RemoveLineIDs(ids ...uuid.UUID) *ReceiptUpdateOne {
	_u.mutation.RemoveLineIDs(ids...)
	return _u
}

// RemoveLines removes "lines" edges to ReceiptLine entities.
func (_u *ReceiptUpdateOne) RemoveLines(v ...*ReceiptLine) *ReceiptUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLineIDs(ids...)
}

// Where appends a list predicates to the ReceiptUpdate builder.
func (_u *ReceiptUpdateOne) Where(ps ...predicate.Receipt) *ReceiptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReceiptUpdateOne) Select(field string, fields ...string) *ReceiptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Receipt entity.
func (_u *ReceiptUpdateOne) Save(ctx context.Context) (*Receipt, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReceiptUpdateOne) SaveX(ctx context.Context) *Receipt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReceiptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReceiptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReceiptUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := receipt.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReceiptUpdateOne) check() error {
	if _u.mutation.StationCleared() && len(_u.mutation.StationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Receipt.station"`)
	}
	return nil
}

func (_u *ReceiptUpdateOne) sqlSave(ctx context.Context) (_node *Receipt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(receipt.Table, receipt.Columns, sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Receipt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, receipt.FieldID)
		for _, f := range fields {
			if !receipt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != receipt.FieldID {
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
	if value, ok := _u.mutation.TotalCents(); ok {
		_spec.SetField(receipt.FieldTotalCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalCents(); ok {
		_spec.AddField(receipt.FieldTotalCents, field.TypeInt64, value)
	}
	if _u.mutation.TotalCentsCleared() {
		_spec.ClearField(receipt.FieldTotalCents, field.TypeInt64)
	}
	if value, ok := _u.mutation.VatAmountCents(); ok {
		_spec.SetField(receipt.FieldVatAmountCents, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVatAmountCents(); ok {
		_spec.AddField(receipt.FieldVatAmountCents, field.TypeInt64, value)
	}
	if _u.mutation.VatAmountCentsCleared() {
		_spec.ClearField(receipt.FieldVatAmountCents, field.TypeInt64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(receipt.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(receipt.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.StationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLinesIDs(); len(nodes) > 0 && !_u.mutation.LinesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LinesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Receipt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{receipt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
