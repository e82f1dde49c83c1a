// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/carbux/fuel-receipts/gen/ent/importjob"
	"github.com/carbux/fuel-receipts/gen/ent/predicate"
)

// ImportJobUpdate is the builder for updating ImportJob entities.
type ImportJobUpdate struct {
	config
	hooks    []Hook
	mutation *ImportJobMutation
}

// Where appends a list predicates to the ImportJobUpdate builder.
func (_u *ImportJobUpdate) Where(ps ...predicate.ImportJob) *ImportJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ImportJobUpdate) SetStatus(v string) *ImportJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableStatus(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ImportJobUpdate) SetFilename(v string) *ImportJobUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableFilename(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *ImportJobUpdate) SetMimeType(v string) *ImportJobUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableMimeType(v *string) *ImportJobUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ImportJobUpdate) SetFileSize(v int64) *ImportJobUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableFileSize(v *int64) *ImportJobUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ImportJobUpdate) AddFileSize(v int64) *ImportJobUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *ImportJobUpdate) SetChecksum(v []byte) *ImportJobUpdate {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *ImportJobUpdate) SetResult(v json.RawMessage) *ImportJobUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *ImportJobUpdate) AppendResult(v json.RawMessage) *ImportJobUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ImportJobUpdate) ClearResult() *ImportJobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ImportJobUpdate) SetUpdatedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ImportJobUpdate) SetStartedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableStartedAt(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ImportJobUpdate) ClearStartedAt() *ImportJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ImportJobUpdate) SetCompletedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableCompletedAt(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ImportJobUpdate) ClearCompletedAt() *ImportJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *ImportJobUpdate) SetFailedAt(v time.Time) *ImportJobUpdate {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableFailedAt(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *ImportJobUpdate) ClearFailedAt() *ImportJobUpdate {
	_u.mutation.ClearFailedAt()
	return _u
}

// SetRetainUntil sets the "retain_until" field.
func (_u *ImportJobUpdate) SetRetainUntil(v time.Time) *ImportJobUpdate {
	_u.mutation.SetRetainUntil(v)
	return _u
}

// SetNillableRetainUntil sets the "retain_until" field if the given value is not nil.
func (_u *ImportJobUpdate) SetNillableRetainUntil(v *time.Time) *ImportJobUpdate {
	if v != nil {
		_u.SetRetainUntil(*v)
	}
	return _u
}

// Mutation returns the ImportJobMutation object of the builder.
func (_u *ImportJobUpdate) Mutation() *ImportJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImportJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImportJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ImportJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := importjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := importjob.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ImportJob.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MimeType(); ok {
		if err := importjob.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "ImportJob.mime_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := importjob.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ImportJob.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Checksum(); ok {
		if err := importjob.ChecksumValidator(v); err != nil {
			return &ValidationError{Name: "checksum", err: fmt.Errorf(`ent: validator failed for field "ImportJob.checksum": %w`, err)}
		}
	}
	return nil
}

func (_u *ImportJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importjob.Table, importjob.Columns, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(importjob.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(importjob.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(importjob.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(importjob.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(importjob.FieldChecksum, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(importjob.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, importjob.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(importjob.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(importjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(importjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(importjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(importjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(importjob.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(importjob.FieldFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RetainUntil(); ok {
		_spec.SetField(importjob.FieldRetainUntil, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImportJobUpdateOne is the builder for updating a single ImportJob entity.
type ImportJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImportJobMutation
}

// SetStatus sets the "status" field.
func (_u *ImportJobUpdateOne) SetStatus(v string) *ImportJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableStatus(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *ImportJobUpdateOne) SetFilename(v string) *ImportJobUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableFilename(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *ImportJobUpdateOne) SetMimeType(v string) *ImportJobUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableMimeType(v *string) *ImportJobUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *ImportJobUpdateOne) SetFileSize(v int64) *ImportJobUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableFileSize(v *int64) *ImportJobUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *ImportJobUpdateOne) AddFileSize(v int64) *ImportJobUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *ImportJobUpdateOne) SetChecksum(v []byte) *ImportJobUpdateOne {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *ImportJobUpdateOne) SetResult(v json.RawMessage) *ImportJobUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *ImportJobUpdateOne) AppendResult(v json.RawMessage) *ImportJobUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ImportJobUpdateOne) ClearResult() *ImportJobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ImportJobUpdateOne) SetUpdatedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ImportJobUpdateOne) SetStartedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableStartedAt(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ImportJobUpdateOne) ClearStartedAt() *ImportJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ImportJobUpdateOne) SetCompletedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableCompletedAt(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ImportJobUpdateOne) ClearCompletedAt() *ImportJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *ImportJobUpdateOne) SetFailedAt(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableFailedAt(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *ImportJobUpdateOne) ClearFailedAt() *ImportJobUpdateOne {
	_u.mutation.ClearFailedAt()
	return _u
}

// SetRetainUntil sets the "retain_until" field.
func (_u *ImportJobUpdateOne) SetRetainUntil(v time.Time) *ImportJobUpdateOne {
	_u.mutation.SetRetainUntil(v)
	return _u
}

// SetNillableRetainUntil sets the "retain_until" field if the given value is not nil.
func (_u *ImportJobUpdateOne) SetNillableRetainUntil(v *time.Time) *ImportJobUpdateOne {
	if v != nil {
		_u.SetRetainUntil(*v)
	}
	return _u
}

// Mutation returns the ImportJobMutation object of the builder.
func (_u *ImportJobUpdateOne) Mutation() *ImportJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ImportJobUpdate builder.
func (_u *ImportJobUpdateOne) Where(ps ...predicate.ImportJob) *ImportJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImportJobUpdateOne) Select(field string, fields ...string) *ImportJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ImportJob entity.
func (_u *ImportJobUpdateOne) Save(ctx context.Context) (*ImportJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImportJobUpdateOne) SaveX(ctx context.Context) *ImportJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImportJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImportJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ImportJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := importjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImportJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := importjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ImportJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := importjob.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "ImportJob.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MimeType(); ok {
		if err := importjob.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "ImportJob.mime_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := importjob.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "ImportJob.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Checksum(); ok {
		if err := importjob.ChecksumValidator(v); err != nil {
			return &ValidationError{Name: "checksum", err: fmt.Errorf(`ent: validator failed for field "ImportJob.checksum": %w`, err)}
		}
	}
	return nil
}

func (_u *ImportJobUpdateOne) sqlSave(ctx context.Context) (_node *ImportJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(importjob.Table, importjob.Columns, sqlgraph.NewFieldSpec(importjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ImportJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, importjob.FieldID)
		for _, f := range fields {
			if !importjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != importjob.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(importjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(importjob.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(importjob.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(importjob.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(importjob.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(importjob.FieldChecksum, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(importjob.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, importjob.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(importjob.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(importjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(importjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(importjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(importjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(importjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(importjob.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(importjob.FieldFailedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RetainUntil(); ok {
		_spec.SetField(importjob.FieldRetainUntil, field.TypeTime, value)
	}
	_node = &ImportJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{importjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
