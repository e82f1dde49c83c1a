// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/carbux/fuel-receipts/gen/ent/importjob"
	"github.com/google/uuid"
)

// ImportJobCreate is the builder for creating a ImportJob entity.
type ImportJobCreate struct {
	config
	mutation *ImportJobMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *ImportJobCreate) SetOwnerID(v uuid.UUID) *ImportJobCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ImportJobCreate) SetStatus(v string) *ImportJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableStatus(v *string) *ImportJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStorageName sets the "storage_name" field.
func (_c *ImportJobCreate) SetStorageName(v string) *ImportJobCreate {
	_c.mutation.SetStorageName(v)
	return _c
}

// SetStoragePath sets the "storage_path" field.
func (_c *ImportJobCreate) SetStoragePath(v string) *ImportJobCreate {
	_c.mutation.SetStoragePath(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *ImportJobCreate) SetFilename(v string) *ImportJobCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *ImportJobCreate) SetMimeType(v string) *ImportJobCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *ImportJobCreate) SetFileSize(v int64) *ImportJobCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetChecksum sets the "checksum" field.
func (_c *ImportJobCreate) SetChecksum(v []byte) *ImportJobCreate {
	_c.mutation.SetChecksum(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *ImportJobCreate) SetResult(v json.RawMessage) *ImportJobCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ImportJobCreate) SetCreatedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableCreatedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ImportJobCreate) SetUpdatedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableUpdatedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ImportJobCreate) SetStartedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableStartedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ImportJobCreate) SetCompletedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableCompletedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetFailedAt sets the "failed_at" field.
func (_c *ImportJobCreate) SetFailedAt(v time.Time) *ImportJobCreate {
	_c.mutation.SetFailedAt(v)
	return _c
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableFailedAt(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetFailedAt(*v)
	}
	return _c
}

// SetRetainUntil sets the "retain_until" field.
func (_c *ImportJobCreate) SetRetainUntil(v time.Time) *ImportJobCreate {
	_c.mutation.SetRetainUntil(v)
	return _c
}

// SetNillableRetainUntil sets the "retain_until" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableRetainUntil(v *time.Time) *ImportJobCreate {
	if v != nil {
		_c.SetRetainUntil(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ImportJobCreate) SetID(v uuid.UUID) *ImportJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ImportJobCreate) SetNillableID(v *uuid.UUID) *ImportJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ImportJobMutation object of the builder.
func (_c *ImportJobCreate) Mutation() *ImportJobMutation {
	return _c.mutation
}

// Save creates the ImportJob in the database.
func (_c *ImportJobCreate) Save(ctx context.Context) (*ImportJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImportJobCreate) SaveX(ctx context.Context) *ImportJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImportJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := importjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := importjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := importjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.RetainUntil(); !ok {
		v := importjob.DefaultRetainUntil()
		_c.mutation.SetRetainUntil(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := importjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImportJobCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "ImportJob.owner_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ImportJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StorageName(); !ok {
		return &ValidationError{Name: "storage_name", err: errors.New(`ent: missing required field "ImportJob.storage_name"`)}
	}
	if v, ok := _c.mutation.StorageName(); ok {
		if err := importjob.StorageNameValidator(v); err != nil {
			return &ValidationError{Name: "storage_name", err: fmt.Errorf(`ent: validator failed for field "ImportJob.storage_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoragePath(); !ok {
		return &ValidationError{Name: "storage_path", err: errors.New(`ent: missing required field "ImportJob.storage_path"`)}
	}
	if v, ok := _c.mutation.StoragePath(); ok {
		if err := importjob.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "ImportJob.storage_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "ImportJob.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := importjob.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ImportJob.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "ImportJob.mime_type"`)}
	}
	if v, ok := _c.mutation.MimeType(); ok {
		if err := importjob.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "ImportJob.mime_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "ImportJob.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := importjob.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ImportJob.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Checksum(); !ok {
		return &ValidationError{Name: "checksum", err: errors.New(`ent: missing required field "ImportJob.checksum"`)}
	}
	if v, ok := _c.mutation.Checksum(); ok {
		if err := importjob.ChecksumValidator(v); err != nil {
			return &ValidationError{Name: "checksum", err: fmt.Errorf(`ent: validator failed for field "ImportJob.checksum": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ImportJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ImportJob.updated_at"`)}
	}
	if _, ok := _c.mutation.RetainUntil(); !ok {
		return &ValidationError{Name: "retain_until", err: errors.New(`ent: missing required field "ImportJob.retain_until"`)}
	}
	return nil
}

func (_c *ImportJobCreate) sqlSave(ctx context.Context) (*ImportJob, error) {
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

func (_c *ImportJobCreate) createSpec() (*ImportJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ImportJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(importjob.Table, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(importjob.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StorageName(); ok {
		_spec.SetField(importjob.FieldStorageName, field.TypeString, value)
		_node.StorageName = value
	}
	if value, ok := _c.mutation.StoragePath(); ok {
		_spec.SetField(importjob.FieldStoragePath, field.TypeString, value)
		_node.StoragePath = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(importjob.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(importjob.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(importjob.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.Checksum(); ok {
		_spec.SetField(importjob.FieldChecksum, field.TypeBytes, value)
		_node.Checksum = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(importjob.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(importjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(importjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(importjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.FailedAt(); ok {
		_spec.SetField(importjob.FieldFailedAt, field.TypeTime, value)
		_node.FailedAt = &value
	}
	if value, ok := _c.mutation.RetainUntil(); ok {
		_spec.SetField(importjob.FieldRetainUntil, field.TypeTime, value)
		_node.RetainUntil = value
	}
	return _node, _spec
}

// ImportJobCreateBulk is the builder for creating many ImportJob entities in bulk.
type ImportJobCreateBulk struct {
	config
	err      error
	builders []*ImportJobCreate
}

// Save creates the ImportJob entities in the database.
func (_c *ImportJobCreateBulk) Save(ctx context.Context) ([]*ImportJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ImportJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImportJobMutation)
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
func (_c *ImportJobCreateBulk) SaveX(ctx context.Context) []*ImportJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImportJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImportJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
