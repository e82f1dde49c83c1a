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
	"github.com/carbux/fuel-receipts/gen/ent/station"
	"github.com/google/uuid"
)

// StationUpdate is the builder for updating Station entities.
type StationUpdate struct {
	config
	hooks    []Hook
	mutation *StationMutation
}

// Where appends a list predicates to the StationUpdate builder.
func (_u *StationUpdate) Where(ps ...predicate.Station) *StationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *StationUpdate) SetName(v string) *StationUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StationUpdate) SetNillableName(v *string) *StationUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStreetName sets the "street_name" field.
func (_u *StationUpdate) SetStreetName(v string) *StationUpdate {
	_u.mutation.SetStreetName(v)
	return _u
}

// SetNillableStreetName sets the "street_name" field if the given value is not nil.
func (_u *StationUpdate) SetNillableStreetName(v *string) *StationUpdate {
	if v != nil {
		_u.SetStreetName(*v)
	}
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *StationUpdate) SetPostalCode(v string) *StationUpdate {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *StationUpdate) SetNillablePostalCode(v *string) *StationUpdate {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *StationUpdate) SetCity(v string) *StationUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *StationUpdate) SetNillableCity(v *string) *StationUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_u *StationUpdate) AddReceiptIDs(ids ...uuid.UUID) *StationUpdate {
	_u.mutation.AddReceiptIDs(ids...)
	return _u
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_u *StationUpdate) AddReceipts(v ...*Receipt) *StationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceiptIDs(ids...)
}

// Mutation returns the StationMutation object of the builder.
func (_u *StationUpdate) Mutation() *StationMutation {
	return _u.mutation
}

// ClearReceipts clears all "receipts" edges to the Receipt entity.
func (_u *StationUpdate) ClearReceipts() *StationUpdate {
	_u.mutation.ClearReceipts()
	return _u
}

// RemoveReceiptIDs removes the "receipts" edge to Receipt entities by IDs.
func (_u *StationUpdate) RemoveReceiptIDs(ids ...uuid.UUID) *StationUpdate {
	_u.mutation.RemoveReceiptIDs(ids...)
	return _u
}

// RemoveReceipts removes "receipts" edges to Receipt entities.
func (_u *StationUpdate) RemoveReceipts(v ...*Receipt) *StationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceiptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StationUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := station.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Station.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreetName(); ok {
		if err := station.StreetNameValidator(v); err != nil {
			return &ValidationError{Name: "street_name", err: fmt.Errorf(`ent: validator failed for field "Station.street_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PostalCode(); ok {
		if err := station.PostalCodeValidator(v); err != nil {
			return &ValidationError{Name: "postal_code", err: fmt.Errorf(`ent: validator failed for field "Station.postal_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := station.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Station.city": %w`, err)}
		}
	}
	return nil
}

func (_u *StationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(station.Table, station.Columns, sqlgraph.NewFieldSpec(station.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(station.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StreetName(); ok {
		_spec.SetField(station.FieldStreetName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(station.FieldPostalCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(station.FieldCity, field.TypeString, value)
	}
	if _u.mutation.ReceiptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   station.ReceiptsTable,
			Columns: []string{station.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceiptsIDs(); len(nodes) > 0 && !_u.mutation.ReceiptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   station.ReceiptsTable,
			Columns: []string{station.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   station.ReceiptsTable,
			Columns: []string{station.ReceiptsColumn},
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
			err = &NotFoundError{station.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StationUpdateOne is the builder for updating a single Station entity.
type StationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StationMutation
}

// SetName sets the "name" field.
func (_u *StationUpdateOne) SetName(v string) *StationUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *StationUpdateOne) SetNillableName(v *string) *StationUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStreetName sets the "street_name" field.
func (_u *StationUpdateOne) SetStreetName(v string) *StationUpdateOne {
	_u.mutation.SetStreetName(v)
	return _u
}

// SetNillableStreetName sets the "street_name" field if the given value is not nil.
func (_u *StationUpdateOne) SetNillableStreetName(v *string) *StationUpdateOne {
	if v != nil {
		_u.SetStreetName(*v)
	}
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *StationUpdateOne) SetPostalCode(v string) *StationUpdateOne {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *StationUpdateOne) SetNillablePostalCode(v *string) *StationUpdateOne {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *StationUpdateOne) SetCity(v string) *StationUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *StationUpdateOne) SetNillableCity(v *string) *StationUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by IDs.
func (_u *StationUpdateOne) AddReceiptIDs(ids ...uuid.UUID) *StationUpdateOne {
	_u.mutation.AddReceiptIDs(ids...)
	return _u
}

// AddReceipts adds the "receipts" edges to the Receipt entity.
func (_u *StationUpdateOne) AddReceipts(v ...*Receipt) *StationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReceiptIDs(ids...)
}

// Mutation returns the StationMutation object of the builder.
func (_u *StationUpdateOne) Mutation() *StationMutation {
	return _u.mutation
}

// ClearReceipts clears all "receipts" edges to the Receipt entity.
func (_u *StationUpdateOne) ClearReceipts() *StationUpdateOne {
	_u.mutation.ClearReceipts()
	return _u
}

// RemoveReceiptIDs removes the "receipts" edge to Receipt entities by IDs.
func (_u *StationUpdateOne) RemoveReceiptIDs(ids ...uuid.UUID) *StationUpdateOne {
	_u.mutation.RemoveReceiptIDs(ids...)
	return _u
}

// RemoveReceipts removes "receipts" edges to Receipt entities.
func (_u *StationUpdateOne) RemoveReceipts(v ...*Receipt) *StationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReceiptIDs(ids...)
}

// Where appends a list predicates to the StationUpdate builder.
func (_u *StationUpdateOne) Where(ps ...predicate.Station) *StationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StationUpdateOne) Select(field string, fields ...string) *StationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Station entity.
func (_u *StationUpdateOne) Save(ctx context.Context) (*Station, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StationUpdateOne) SaveX(ctx context.Context) *Station {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StationUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := station.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Station.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreetName(); ok {
		if err := station.StreetNameValidator(v); err != nil {
			return &ValidationError{Name: "street_name", err: fmt.Errorf(`ent: validator failed for field "Station.street_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PostalCode(); ok {
		if err := station.PostalCodeValidator(v); err != nil {
			return &ValidationError{Name: "postal_code", err: fmt.Errorf(`ent: validator failed for field "Station.postal_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := station.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Station.city": %w`, err)}
		}
	}
	return nil
}

func (_u *StationUpdateOne) sqlSave(ctx context.Context) (_node *Station, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(station.Table, station.Columns, sqlgraph.NewFieldSpec(station.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Station.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, station.FieldID)
		for _, f := range fields {
			if !station.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != station.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(station.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StreetName(); ok {
		_spec.SetField(station.FieldStreetName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(station.FieldPostalCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(station.FieldCity, field.TypeString, value)
	}
	if _u.mutation.ReceiptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   station.ReceiptsTable,
			Columns: []string{station.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReceiptsIDs(); len(nodes) > 0 && !_u.mutation.ReceiptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   station.ReceiptsTable,
			Columns: []string{station.ReceiptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receipt.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReceiptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   station.ReceiptsTable,
			Columns: []string{station.ReceiptsColumn},
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
	_node = &Station{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{station.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
