// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carbux/fuel-receipts/gen/ent/predicate"
	"github.com/carbux/fuel-receipts/gen/ent/receiptline"
)

// ReceiptLineDelete is the builder for deleting a ReceiptLine entity.
type ReceiptLineDelete struct {
	config
	hooks    []Hook
	mutation *ReceiptLineMutation
}

// Where appends a list predicates to the ReceiptLineDelete builder.
func (_d *ReceiptLineDelete) Where(ps ...predicate.ReceiptLine) *ReceiptLineDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ReceiptLineDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReceiptLineDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ReceiptLineDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(receiptline.Table, sqlgraph.NewFieldSpec(receiptline.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ReceiptLineDeleteOne is the builder for deleting a single ReceiptLine entity.
type ReceiptLineDeleteOne struct {
	_d *ReceiptLineDelete
}

// Where appends a list predicates to the ReceiptLineDelete builder.
func (_d *ReceiptLineDeleteOne) Where(ps ...predicate.ReceiptLine) *ReceiptLineDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ReceiptLineDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{receiptline.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ReceiptLineDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
