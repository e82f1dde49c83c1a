// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/carbux/fuel-receipts/gen/ent/importjob"
	"github.com/carbux/fuel-receipts/gen/ent/predicate"
	"github.com/carbux/fuel-receipts/gen/ent/receipt"
	"github.com/carbux/fuel-receipts/gen/ent/receiptline"
	"github.com/carbux/fuel-receipts/gen/ent/station"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeImportJob   = "ImportJob"
	TypeReceipt     = "Receipt"
	TypeReceiptLine = "ReceiptLine"
	TypeStation     = "Station"
)

// ImportJobMutation represents an operation that mutates the ImportJob nodes in the graph.
type ImportJobMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	owner_id      *uuid.UUID
	status        *string
	storage_name  *string
	storage_path  *string
	filename      *string
	mime_type     *string
	file_size     *int64
	addfile_size  *int64
	checksum      *[]byte
	result        *json.RawMessage
	appendresult  json.RawMessage
	created_at    *time.Time
	updated_at    *time.Time
	started_at    *time.Time
	completed_at  *time.Time
	failed_at     *time.Time
	retain_until  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ImportJob, error)
	predicates    []predicate.ImportJob
}

var _ ent.Mutation = (*ImportJobMutation)(nil)

// importjobOption allows management of the mutation configuration using functional options.
type importjobOption func(*ImportJobMutation)

// newImportJobMutation creates new mutation for the ImportJob entity.
func newImportJobMutation(c config, op Op, opts ...importjobOption) *ImportJobMutation {
	m := &ImportJobMutation{
		config:        c,
		op:            op,
		typ:           TypeImportJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImportJobID sets the ID field of the mutation.
func withImportJobID(id uuid.UUID) importjobOption {
	return func(m *ImportJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ImportJob
		)
		m.oldValue = func(ctx context.Context) (*ImportJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ImportJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImportJob sets the old ImportJob of the mutation.
func withImportJob(node *ImportJob) importjobOption {
	return func(m *ImportJobMutation) {
		m.oldValue = func(context.Context) (*ImportJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImportJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImportJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ImportJob entities.
func (m *ImportJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImportJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImportJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ImportJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *ImportJobMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ImportJobMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ImportJobMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetStatus sets the "status" field.
func (m *ImportJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ImportJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ImportJobMutation) ResetStatus() {
	m.status = nil
}

// SetStorageName sets the "storage_name" field.
func (m *ImportJobMutation) SetStorageName(s string) {
	m.storage_name = &s
}

// StorageName returns the value of the "storage_name" field in the mutation.
func (m *ImportJobMutation) StorageName() (r string, exists bool) {
	v := m.storage_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageName returns the old "storage_name" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldStorageName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageName: %w", err)
	}
	return oldValue.StorageName, nil
}

// ResetStorageName resets all changes to the "storage_name" field.
func (m *ImportJobMutation) ResetStorageName() {
	m.storage_name = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *ImportJobMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *ImportJobMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *ImportJobMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetFilename sets the "filename" field.
func (m *ImportJobMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *ImportJobMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *ImportJobMutation) ResetFilename() {
	m.filename = nil
}

// SetMimeType sets the "mime_type" field.
func (m *ImportJobMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *ImportJobMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *ImportJobMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetFileSize sets the "file_size" field.
func (m *ImportJobMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *ImportJobMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *ImportJobMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *ImportJobMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *ImportJobMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetChecksum sets the "checksum" field.
func (m *ImportJobMutation) SetChecksum(b []byte) {
	m.checksum = &b
}

// Checksum returns the value of the "checksum" field in the mutation.
func (m *ImportJobMutation) Checksum() (r []byte, exists bool) {
	v := m.checksum
	if v == nil {
		return
	}
	return *v, true
}

// OldChecksum returns the old "checksum" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldChecksum(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChecksum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChecksum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChecksum: %w", err)
	}
	return oldValue.Checksum, nil
}

// ResetChecksum resets all changes to the "checksum" field.
func (m *ImportJobMutation) ResetChecksum() {
	m.checksum = nil
}

// SetResult sets the "result" field.
func (m *ImportJobMutation) SetResult(jm json.RawMessage) {
	m.result = &jm
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *ImportJobMutation) Result() (r json.RawMessage, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldResult(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// AppendResult adds jm to the "result" field.
func (m *ImportJobMutation) AppendResult(jm json.RawMessage) {
	m.appendresult = append(m.appendresult, jm...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *ImportJobMutation) AppendedResult() (json.RawMessage, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ClearResult clears the value of the "result" field.
func (m *ImportJobMutation) ClearResult() {
	m.result = nil
	m.appendresult = nil
	m.clearedFields[importjob.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *ImportJobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[importjob.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *ImportJobMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
	delete(m.clearedFields, importjob.FieldResult)
}

// SetCreatedAt sets the "created_at" field.
func (m *ImportJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ImportJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ImportJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ImportJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ImportJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ImportJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ImportJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ImportJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ImportJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[importjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ImportJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[importjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ImportJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, importjob.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *ImportJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ImportJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ImportJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[importjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ImportJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[importjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ImportJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, importjob.FieldCompletedAt)
}

// SetFailedAt sets the "failed_at" field.
func (m *ImportJobMutation) SetFailedAt(t time.Time) {
	m.failed_at = &t
}

// FailedAt returns the value of the "failed_at" field in the mutation.
func (m *ImportJobMutation) FailedAt() (r time.Time, exists bool) {
	v := m.failed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedAt returns the old "failed_at" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldFailedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedAt: %w", err)
	}
	return oldValue.FailedAt, nil
}

// ClearFailedAt clears the value of the "failed_at" field.
func (m *ImportJobMutation) ClearFailedAt() {
	m.failed_at = nil
	m.clearedFields[importjob.FieldFailedAt] = struct{}{}
}

// FailedAtCleared returns if the "failed_at" field was cleared in this mutation.
func (m *ImportJobMutation) FailedAtCleared() bool {
	_, ok := m.clearedFields[importjob.FieldFailedAt]
	return ok
}

// ResetFailedAt resets all changes to the "failed_at" field.
func (m *ImportJobMutation) ResetFailedAt() {
	m.failed_at = nil
	delete(m.clearedFields, importjob.FieldFailedAt)
}

// SetRetainUntil sets the "retain_until" field.
func (m *ImportJobMutation) SetRetainUntil(t time.Time) {
	m.retain_until = &t
}

// RetainUntil returns the value of the "retain_until" field in the mutation.
func (m *ImportJobMutation) RetainUntil() (r time.Time, exists bool) {
	v := m.retain_until
	if v == nil {
		return
	}
	return *v, true
}

// OldRetainUntil returns the old "retain_until" field's value of the ImportJob entity.
// If the ImportJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImportJobMutation) OldRetainUntil(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetainUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetainUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetainUntil: %w", err)
	}
	return oldValue.RetainUntil, nil
}

// ResetRetainUntil resets all changes to the "retain_until" field.
func (m *ImportJobMutation) ResetRetainUntil() {
	m.retain_until = nil
}

// Where appends a list predicates to the ImportJobMutation builder.
func (m *ImportJobMutation) Where(ps ...predicate.ImportJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImportJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImportJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ImportJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImportJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImportJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ImportJob).
func (m *ImportJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImportJobMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.owner_id != nil {
		fields = append(fields, importjob.FieldOwnerID)
	}
	if m.status != nil {
		fields = append(fields, importjob.FieldStatus)
	}
	if m.storage_name != nil {
		fields = append(fields, importjob.FieldStorageName)
	}
	if m.storage_path != nil {
		fields = append(fields, importjob.FieldStoragePath)
	}
	if m.filename != nil {
		fields = append(fields, importjob.FieldFilename)
	}
	if m.mime_type != nil {
		fields = append(fields, importjob.FieldMimeType)
	}
	if m.file_size != nil {
		fields = append(fields, importjob.FieldFileSize)
	}
	if m.checksum != nil {
		fields = append(fields, importjob.FieldChecksum)
	}
	if m.result != nil {
		fields = append(fields, importjob.FieldResult)
	}
	if m.created_at != nil {
		fields = append(fields, importjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, importjob.FieldUpdatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, importjob.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, importjob.FieldCompletedAt)
	}
	if m.failed_at != nil {
		fields = append(fields, importjob.FieldFailedAt)
	}
	if m.retain_until != nil {
		fields = append(fields, importjob.FieldRetainUntil)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImportJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case importjob.FieldOwnerID:
		return m.OwnerID()
	case importjob.FieldStatus:
		return m.Status()
	case importjob.FieldStorageName:
		return m.StorageName()
	case importjob.FieldStoragePath:
		return m.StoragePath()
	case importjob.FieldFilename:
		return m.Filename()
	case importjob.FieldMimeType:
		return m.MimeType()
	case importjob.FieldFileSize:
		return m.FileSize()
	case importjob.FieldChecksum:
		return m.Checksum()
	case importjob.FieldResult:
		return m.Result()
	case importjob.FieldCreatedAt:
		return m.CreatedAt()
	case importjob.FieldUpdatedAt:
		return m.UpdatedAt()
	case importjob.FieldStartedAt:
		return m.StartedAt()
	case importjob.FieldCompletedAt:
		return m.CompletedAt()
	case importjob.FieldFailedAt:
		return m.FailedAt()
	case importjob.FieldRetainUntil:
		return m.RetainUntil()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImportJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case importjob.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case importjob.FieldStatus:
		return m.OldStatus(ctx)
	case importjob.FieldStorageName:
		return m.OldStorageName(ctx)
	case importjob.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case importjob.FieldFilename:
		return m.OldFilename(ctx)
	case importjob.FieldMimeType:
		return m.OldMimeType(ctx)
	case importjob.FieldFileSize:
		return m.OldFileSize(ctx)
	case importjob.FieldChecksum:
		return m.OldChecksum(ctx)
	case importjob.FieldResult:
		return m.OldResult(ctx)
	case importjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case importjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case importjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case importjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case importjob.FieldFailedAt:
		return m.OldFailedAt(ctx)
	case importjob.FieldRetainUntil:
		return m.OldRetainUntil(ctx)
	}
	return nil, fmt.Errorf("unknown ImportJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case importjob.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case importjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case importjob.FieldStorageName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageName(v)
		return nil
	case importjob.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case importjob.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case importjob.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case importjob.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case importjob.FieldChecksum:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChecksum(v)
		return nil
	case importjob.FieldResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case importjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case importjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case importjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case importjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case importjob.FieldFailedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedAt(v)
		return nil
	case importjob.FieldRetainUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetainUntil(v)
		return nil
	}
	return fmt.Errorf("unknown ImportJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImportJobMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, importjob.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImportJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case importjob.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImportJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case importjob.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown ImportJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImportJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(importjob.FieldResult) {
		fields = append(fields, importjob.FieldResult)
	}
	if m.FieldCleared(importjob.FieldStartedAt) {
		fields = append(fields, importjob.FieldStartedAt)
	}
	if m.FieldCleared(importjob.FieldCompletedAt) {
		fields = append(fields, importjob.FieldCompletedAt)
	}
	if m.FieldCleared(importjob.FieldFailedAt) {
		fields = append(fields, importjob.FieldFailedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImportJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImportJobMutation) ClearField(name string) error {
	switch name {
	case importjob.FieldResult:
		m.ClearResult()
		return nil
	case importjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case importjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case importjob.FieldFailedAt:
		m.ClearFailedAt()
		return nil
	}
	return fmt.Errorf("unknown ImportJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImportJobMutation) ResetField(name string) error {
	switch name {
	case importjob.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case importjob.FieldStatus:
		m.ResetStatus()
		return nil
	case importjob.FieldStorageName:
		m.ResetStorageName()
		return nil
	case importjob.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case importjob.FieldFilename:
		m.ResetFilename()
		return nil
	case importjob.FieldMimeType:
		m.ResetMimeType()
		return nil
	case importjob.FieldFileSize:
		m.ResetFileSize()
		return nil
	case importjob.FieldChecksum:
		m.ResetChecksum()
		return nil
	case importjob.FieldResult:
		m.ResetResult()
		return nil
	case importjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case importjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case importjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case importjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case importjob.FieldFailedAt:
		m.ResetFailedAt()
		return nil
	case importjob.FieldRetainUntil:
		m.ResetRetainUntil()
		return nil
	}
	return fmt.Errorf("unknown ImportJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImportJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImportJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImportJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImportJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImportJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImportJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImportJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ImportJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImportJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ImportJob edge %s", name)
}

// ReceiptMutation represents an operation that mutates the Receipt nodes in the graph.
type ReceiptMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	owner_id            *uuid.UUID
	issued_at           *time.Time
	total_cents         *int64
	addtotal_cents      *int64
	vat_amount_cents    *int64
	addvat_amount_cents *int64
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	station             *uuid.UUID
	clearedstation      bool
	lines               map[uuid.UUID]struct{}
	removedlines        map[uuid.UUID]struct{}
	clearedlines        bool
	done                bool
	oldValue            func(context.Context) (*Receipt, error)
	predicates          []predicate.Receipt
}

var _ ent.Mutation = (*ReceiptMutation)(nil)

// receiptOption allows management of the mutation configuration using functional options.
type receiptOption func(*ReceiptMutation)

// newReceiptMutation creates new mutation for the Receipt entity.
func newReceiptMutation(c config, op Op, opts ...receiptOption) *ReceiptMutation {
	m := &ReceiptMutation{
		config:        c,
		op:            op,
		typ:           TypeReceipt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReceiptID sets the ID field of the mutation.
func withReceiptID(id uuid.UUID) receiptOption {
	return func(m *ReceiptMutation) {
		var (
			err   error
			once  sync.Once
			value *Receipt
		)
		m.oldValue = func(ctx context.Context) (*Receipt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Receipt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReceipt sets the old Receipt of the mutation.
func withReceipt(node *Receipt) receiptOption {
	return func(m *ReceiptMutation) {
		m.oldValue = func(context.Context) (*Receipt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReceiptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReceiptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Receipt entities.
func (m *ReceiptMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReceiptMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReceiptMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Receipt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *ReceiptMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *ReceiptMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *ReceiptMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetStationID sets the "station_id" field.
func (m *ReceiptMutation) SetStationID(u uuid.UUID) {
	m.station = &u
}

// StationID returns the value of the "station_id" field in the mutation.
func (m *ReceiptMutation) StationID() (r uuid.UUID, exists bool) {
	v := m.station
	if v == nil {
		return
	}
	return *v, true
}

// OldStationID returns the old "station_id" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldStationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStationID: %w", err)
	}
	return oldValue.StationID, nil
}

// ResetStationID resets all changes to the "station_id" field.
func (m *ReceiptMutation) ResetStationID() {
	m.station = nil
}

// SetIssuedAt sets the "issued_at" field.
func (m *ReceiptMutation) SetIssuedAt(t time.Time) {
	m.issued_at = &t
}

// IssuedAt returns the value of the "issued_at" field in the mutation.
func (m *ReceiptMutation) IssuedAt() (r time.Time, exists bool) {
	v := m.issued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldIssuedAt returns the old "issued_at" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldIssuedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssuedAt: %w", err)
	}
	return oldValue.IssuedAt, nil
}

// ResetIssuedAt resets all changes to the "issued_at" field.
func (m *ReceiptMutation) ResetIssuedAt() {
	m.issued_at = nil
}

// SetTotalCents sets the "total_cents" field.
func (m *ReceiptMutation) SetTotalCents(i int64) {
	m.total_cents = &i
	m.addtotal_cents = nil
}

// TotalCents returns the value of the "total_cents" field in the mutation.
func (m *ReceiptMutation) TotalCents() (r int64, exists bool) {
	v := m.total_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCents returns the old "total_cents" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldTotalCents(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCents: %w", err)
	}
	return oldValue.TotalCents, nil
}

// AddTotalCents adds i to the "total_cents" field.
func (m *ReceiptMutation) AddTotalCents(i int64) {
	if m.addtotal_cents != nil {
		*m.addtotal_cents += i
	} else {
		m.addtotal_cents = &i
	}
}

// AddedTotalCents returns the value that was added to the "total_cents" field in this mutation.
func (m *ReceiptMutation) AddedTotalCents() (r int64, exists bool) {
	v := m.addtotal_cents
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalCents clears the value of the "total_cents" field.
func (m *ReceiptMutation) ClearTotalCents() {
	m.total_cents = nil
	m.addtotal_cents = nil
	m.clearedFields[receipt.FieldTotalCents] = struct{}{}
}

// TotalCentsCleared returns if the "total_cents" field was cleared in this mutation.
func (m *ReceiptMutation) TotalCentsCleared() bool {
	_, ok := m.clearedFields[receipt.FieldTotalCents]
	return ok
}

// ResetTotalCents resets all changes to the "total_cents" field.
func (m *ReceiptMutation) ResetTotalCents() {
	m.total_cents = nil
	m.addtotal_cents = nil
	delete(m.clearedFields, receipt.FieldTotalCents)
}

// SetVatAmountCents sets the "vat_amount_cents" field.
func (m *ReceiptMutation) SetVatAmountCents(i int64) {
	m.vat_amount_cents = &i
	m.addvat_amount_cents = nil
}

// VatAmountCents returns the value of the "vat_amount_cents" field in the mutation.
func (m *ReceiptMutation) VatAmountCents() (r int64, exists bool) {
	v := m.vat_amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldVatAmountCents returns the old "vat_amount_cents" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldVatAmountCents(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVatAmountCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVatAmountCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVatAmountCents: %w", err)
	}
	return oldValue.VatAmountCents, nil
}

// AddVatAmountCents adds i to the "vat_amount_cents" field.
func (m *ReceiptMutation) AddVatAmountCents(i int64) {
	if m.addvat_amount_cents != nil {
		*m.addvat_amount_cents += i
	} else {
		m.addvat_amount_cents = &i
	}
}

// AddedVatAmountCents returns the value that was added to the "vat_amount_cents" field in this mutation.
func (m *ReceiptMutation) AddedVatAmountCents() (r int64, exists bool) {
	v := m.addvat_amount_cents
	if v == nil {
		return
	}
	return *v, true
}

// ClearVatAmountCents clears the value of the "vat_amount_cents" field.
func (m *ReceiptMutation) ClearVatAmountCents() {
	m.vat_amount_cents = nil
	m.addvat_amount_cents = nil
	m.clearedFields[receipt.FieldVatAmountCents] = struct{}{}
}

// VatAmountCentsCleared returns if the "vat_amount_cents" field was cleared in this mutation.
func (m *ReceiptMutation) VatAmountCentsCleared() bool {
	_, ok := m.clearedFields[receipt.FieldVatAmountCents]
	return ok
}

// ResetVatAmountCents resets all changes to the "vat_amount_cents" field.
func (m *ReceiptMutation) ResetVatAmountCents() {
	m.vat_amount_cents = nil
	m.addvat_amount_cents = nil
	delete(m.clearedFields, receipt.FieldVatAmountCents)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReceiptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReceiptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReceiptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReceiptMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReceiptMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Receipt entity.
// If the Receipt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReceiptMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearStation clears the "station" edge to the Station entity.
func (m *ReceiptMutation) ClearStation() {
	m.clearedstation = true
	m.clearedFields[receipt.FieldStationID] = struct{}{}
}

// StationCleared reports if the "station" edge to the Station entity was cleared.
func (m *ReceiptMutation) StationCleared() bool {
	return m.clearedstation
}

// StationIDs returns the "station" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StationID instead. It exists only for internal usage by the builders.
func (m *ReceiptMutation) StationIDs() (ids []uuid.UUID) {
	if id := m.station; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStation resets all changes to the "station" edge.
func (m *ReceiptMutation) ResetStation() {
	m.station = nil
	m.clearedstation = false
}

// AddLineIDs adds the "lines" edge to the ReceiptLine entity by ids.
func (m *ReceiptMutation) AddLineIDs(ids ...uuid.UUID) {
	if m.lines == nil {
		m.lines = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.lines[ids[i]] = struct{}{}
	}
}

// ClearLines clears the "lines" edge to the ReceiptLine entity.
func (m *ReceiptMutation) ClearLines() {
	m.clearedlines = true
}

// LinesCleared reports if the "lines" edge to the ReceiptLine entity was cleared.
func (m *ReceiptMutation) LinesCleared() bool {
	return m.clearedlines
}

// RemoveLineIDs removes the "lines" edge to the ReceiptLine entity by IDs.
func (m *ReceiptMutation) RemoveLineIDs(ids ...uuid.UUID) {
	if m.removedlines == nil {
		m.removedlines = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.lines, ids[i])
		m.removedlines[ids[i]] = struct{}{}
	}
}

// RemovedLines returns the removed IDs of the "lines" edge to the ReceiptLine entity.
func (m *ReceiptMutation) RemovedLinesIDs() (ids []uuid.UUID) {
	for id := range m.removedlines {
		ids = append(ids, id)
	}
	return
}

// LinesIDs returns the "lines" edge IDs in the mutation.
func (m *ReceiptMutation) LinesIDs() (ids []uuid.UUID) {
	for id := range m.lines {
		ids = append(ids, id)
	}
	return
}

// ResetLines resets all changes to the "lines" edge.
func (m *ReceiptMutation) ResetLines() {
	m.lines = nil
	m.clearedlines = false
	m.removedlines = nil
}

// Where appends a list predicates to the ReceiptMutation builder.
func (m *ReceiptMutation) Where(ps ...predicate.Receipt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReceiptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReceiptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Receipt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReceiptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReceiptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Receipt).
func (m *ReceiptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReceiptMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.owner_id != nil {
		fields = append(fields, receipt.FieldOwnerID)
	}
	if m.station != nil {
		fields = append(fields, receipt.FieldStationID)
	}
	if m.issued_at != nil {
		fields = append(fields, receipt.FieldIssuedAt)
	}
	if m.total_cents != nil {
		fields = append(fields, receipt.FieldTotalCents)
	}
	if m.vat_amount_cents != nil {
		fields = append(fields, receipt.FieldVatAmountCents)
	}
	if m.created_at != nil {
		fields = append(fields, receipt.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, receipt.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReceiptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case receipt.FieldOwnerID:
		return m.OwnerID()
	case receipt.FieldStationID:
		return m.StationID()
	case receipt.FieldIssuedAt:
		return m.IssuedAt()
	case receipt.FieldTotalCents:
		return m.TotalCents()
	case receipt.FieldVatAmountCents:
		return m.VatAmountCents()
	case receipt.FieldCreatedAt:
		return m.CreatedAt()
	case receipt.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReceiptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case receipt.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case receipt.FieldStationID:
		return m.OldStationID(ctx)
	case receipt.FieldIssuedAt:
		return m.OldIssuedAt(ctx)
	case receipt.FieldTotalCents:
		return m.OldTotalCents(ctx)
	case receipt.FieldVatAmountCents:
		return m.OldVatAmountCents(ctx)
	case receipt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case receipt.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Receipt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case receipt.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case receipt.FieldStationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStationID(v)
		return nil
	case receipt.FieldIssuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssuedAt(v)
		return nil
	case receipt.FieldTotalCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCents(v)
		return nil
	case receipt.FieldVatAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVatAmountCents(v)
		return nil
	case receipt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case receipt.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Receipt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReceiptMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_cents != nil {
		fields = append(fields, receipt.FieldTotalCents)
	}
	if m.addvat_amount_cents != nil {
		fields = append(fields, receipt.FieldVatAmountCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReceiptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case receipt.FieldTotalCents:
		return m.AddedTotalCents()
	case receipt.FieldVatAmountCents:
		return m.AddedVatAmountCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case receipt.FieldTotalCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCents(v)
		return nil
	case receipt.FieldVatAmountCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVatAmountCents(v)
		return nil
	}
	return fmt.Errorf("unknown Receipt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReceiptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(receipt.FieldTotalCents) {
		fields = append(fields, receipt.FieldTotalCents)
	}
	if m.FieldCleared(receipt.FieldVatAmountCents) {
		fields = append(fields, receipt.FieldVatAmountCents)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReceiptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReceiptMutation) ClearField(name string) error {
	switch name {
	case receipt.FieldTotalCents:
		m.ClearTotalCents()
		return nil
	case receipt.FieldVatAmountCents:
		m.ClearVatAmountCents()
		return nil
	}
	return fmt.Errorf("unknown Receipt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReceiptMutation) ResetField(name string) error {
	switch name {
	case receipt.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case receipt.FieldStationID:
		m.ResetStationID()
		return nil
	case receipt.FieldIssuedAt:
		m.ResetIssuedAt()
		return nil
	case receipt.FieldTotalCents:
		m.ResetTotalCents()
		return nil
	case receipt.FieldVatAmountCents:
		m.ResetVatAmountCents()
		return nil
	case receipt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case receipt.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Receipt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReceiptMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.station != nil {
		edges = append(edges, receipt.EdgeStation)
	}
	if m.lines != nil {
		edges = append(edges, receipt.EdgeLines)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReceiptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case receipt.EdgeStation:
		if id := m.station; id != nil {
			return []ent.Value{*id}
		}
	case receipt.EdgeLines:
		ids := make([]ent.Value, 0, len(m.lines))
		for id := range m.lines {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReceiptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedlines != nil {
		edges = append(edges, receipt.EdgeLines)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReceiptMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case receipt.EdgeLines:
		ids := make([]ent.Value, 0, len(m.removedlines))
		for id := range m.removedlines {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReceiptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedstation {
		edges = append(edges, receipt.EdgeStation)
	}
	if m.clearedlines {
		edges = append(edges, receipt.EdgeLines)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReceiptMutation) EdgeCleared(name string) bool {
	switch name {
	case receipt.EdgeStation:
		return m.clearedstation
	case receipt.EdgeLines:
		return m.clearedlines
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReceiptMutation) ClearEdge(name string) error {
	switch name {
	case receipt.EdgeStation:
		m.ClearStation()
		return nil
	}
	return fmt.Errorf("unknown Receipt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReceiptMutation) ResetEdge(name string) error {
	switch name {
	case receipt.EdgeStation:
		m.ResetStation()
		return nil
	case receipt.EdgeLines:
		m.ResetLines()
		return nil
	}
	return fmt.Errorf("unknown Receipt edge %s", name)
}

// ReceiptLineMutation represents an operation that mutates the ReceiptLine nodes in the graph.
type ReceiptLineMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	fuel_type                *string
	quantity_milliliters     *int64
	addquantity_milliliters  *int64
	unit_price_deci_cents    *int64
	addunit_price_deci_cents *int64
	vat_rate_percent         *int
	addvat_rate_percent      *int
	line_total_cents         *int64
	addline_total_cents      *int64
	clearedFields            map[string]struct{}
	receipt                  *uuid.UUID
	clearedreceipt           bool
	done                     bool
	oldValue                 func(context.Context) (*ReceiptLine, error)
	predicates               []predicate.ReceiptLine
}

var _ ent.Mutation = (*ReceiptLineMutation)(nil)

// receiptlineOption allows management of the mutation configuration using functional options.
type receiptlineOption func(*ReceiptLineMutation)

// newReceiptLineMutation creates new mutation for the ReceiptLine entity.
func newReceiptLineMutation(c config, op Op, opts ...receiptlineOption) *ReceiptLineMutation {
	m := &ReceiptLineMutation{
		config:        c,
		op:            op,
		typ:           TypeReceiptLine,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReceiptLineID sets the ID field of the mutation.
func withReceiptLineID(id uuid.UUID) receiptlineOption {
	return func(m *ReceiptLineMutation) {
		var (
			err   error
			once  sync.Once
			value *ReceiptLine
		)
		m.oldValue = func(ctx context.Context) (*ReceiptLine, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReceiptLine.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReceiptLine sets the old ReceiptLine of the mutation.
func withReceiptLine(node *ReceiptLine) receiptlineOption {
	return func(m *ReceiptLineMutation) {
		m.oldValue = func(context.Context) (*ReceiptLine, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReceiptLineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReceiptLineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ReceiptLine entities.
func (m *ReceiptLineMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReceiptLineMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReceiptLineMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReceiptLine.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReceiptID sets the "receipt_id" field.
func (m *ReceiptLineMutation) SetReceiptID(u uuid.UUID) {
	m.receipt = &u
}

// ReceiptID returns the value of the "receipt_id" field in the mutation.
func (m *ReceiptLineMutation) ReceiptID() (r uuid.UUID, exists bool) {
	v := m.receipt
	if v == nil {
		return
	}
	return *v, true
}

// OldReceiptID returns the old "receipt_id" field's value of the ReceiptLine entity.
// If the ReceiptLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptLineMutation) OldReceiptID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceiptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceiptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceiptID: %w", err)
	}
	return oldValue.ReceiptID, nil
}

// ResetReceiptID resets all changes to the "receipt_id" field.
func (m *ReceiptLineMutation) ResetReceiptID() {
	m.receipt = nil
}

// SetFuelType sets the "fuel_type" field.
func (m *ReceiptLineMutation) SetFuelType(s string) {
	m.fuel_type = &s
}

// FuelType returns the value of the "fuel_type" field in the mutation.
func (m *ReceiptLineMutation) FuelType() (r string, exists bool) {
	v := m.fuel_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFuelType returns the old "fuel_type" field's value of the ReceiptLine entity.
// If the ReceiptLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptLineMutation) OldFuelType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFuelType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFuelType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFuelType: %w", err)
	}
	return oldValue.FuelType, nil
}

// ResetFuelType resets all changes to the "fuel_type" field.
func (m *ReceiptLineMutation) ResetFuelType() {
	m.fuel_type = nil
}

// SetQuantityMilliliters sets the "quantity_milliliters" field.
func (m *ReceiptLineMutation) SetQuantityMilliliters(i int64) {
	m.quantity_milliliters = &i
	m.addquantity_milliliters = nil
}

// QuantityMilliliters returns the value of the "quantity_milliliters" field in the mutation.
func (m *ReceiptLineMutation) QuantityMilliliters() (r int64, exists bool) {
	v := m.quantity_milliliters
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantityMilliliters returns the old "quantity_milliliters" field's value of the ReceiptLine entity.
// If the ReceiptLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptLineMutation) OldQuantityMilliliters(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantityMilliliters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantityMilliliters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantityMilliliters: %w", err)
	}
	return oldValue.QuantityMilliliters, nil
}

// AddQuantityMilliliters adds i to the "quantity_milliliters" field.
func (m *ReceiptLineMutation) AddQuantityMilliliters(i int64) {
	if m.addquantity_milliliters != nil {
		*m.addquantity_milliliters += i
	} else {
		m.addquantity_milliliters = &i
	}
}

// AddedQuantityMilliliters returns the value that was added to the "quantity_milliliters" field in this mutation.
func (m *ReceiptLineMutation) AddedQuantityMilliliters() (r int64, exists bool) {
	v := m.addquantity_milliliters
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantityMilliliters resets all changes to the "quantity_milliliters" field.
func (m *ReceiptLineMutation) ResetQuantityMilliliters() {
	m.quantity_milliliters = nil
	m.addquantity_milliliters = nil
}

// SetUnitPriceDeciCents sets the "unit_price_deci_cents" field.
func (m *ReceiptLineMutation) SetUnitPriceDeciCents(i int64) {
	m.unit_price_deci_cents = &i
	m.addunit_price_deci_cents = nil
}

// UnitPriceDeciCents returns the value of the "unit_price_deci_cents" field in the mutation.
func (m *ReceiptLineMutation) UnitPriceDeciCents() (r int64, exists bool) {
	v := m.unit_price_deci_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPriceDeciCents returns the old "unit_price_deci_cents" field's value of the ReceiptLine entity.
// If the ReceiptLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptLineMutation) OldUnitPriceDeciCents(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPriceDeciCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPriceDeciCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPriceDeciCents: %w", err)
	}
	return oldValue.UnitPriceDeciCents, nil
}

// AddUnitPriceDeciCents adds i to the "unit_price_deci_cents" field.
func (m *ReceiptLineMutation) AddUnitPriceDeciCents(i int64) {
	if m.addunit_price_deci_cents != nil {
		*m.addunit_price_deci_cents += i
	} else {
		m.addunit_price_deci_cents = &i
	}
}

// AddedUnitPriceDeciCents returns the value that was added to the "unit_price_deci_cents" field in this mutation.
func (m *ReceiptLineMutation) AddedUnitPriceDeciCents() (r int64, exists bool) {
	v := m.addunit_price_deci_cents
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitPriceDeciCents resets all changes to the "unit_price_deci_cents" field.
func (m *ReceiptLineMutation) ResetUnitPriceDeciCents() {
	m.unit_price_deci_cents = nil
	m.addunit_price_deci_cents = nil
}

// SetVatRatePercent sets the "vat_rate_percent" field.
func (m *ReceiptLineMutation) SetVatRatePercent(i int) {
	m.vat_rate_percent = &i
	m.addvat_rate_percent = nil
}

// VatRatePercent returns the value of the "vat_rate_percent" field in the mutation.
func (m *ReceiptLineMutation) VatRatePercent() (r int, exists bool) {
	v := m.vat_rate_percent
	if v == nil {
		return
	}
	return *v, true
}

// OldVatRatePercent returns the old "vat_rate_percent" field's value of the ReceiptLine entity.
// If the ReceiptLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptLineMutation) OldVatRatePercent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVatRatePercent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVatRatePercent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVatRatePercent: %w", err)
	}
	return oldValue.VatRatePercent, nil
}

// AddVatRatePercent adds i to the "vat_rate_percent" field.
func (m *ReceiptLineMutation) AddVatRatePercent(i int) {
	if m.addvat_rate_percent != nil {
		*m.addvat_rate_percent += i
	} else {
		m.addvat_rate_percent = &i
	}
}

// AddedVatRatePercent returns the value that was added to the "vat_rate_percent" field in this mutation.
func (m *ReceiptLineMutation) AddedVatRatePercent() (r int, exists bool) {
	v := m.addvat_rate_percent
	if v == nil {
		return
	}
	return *v, true
}

// ResetVatRatePercent resets all changes to the "vat_rate_percent" field.
func (m *ReceiptLineMutation) ResetVatRatePercent() {
	m.vat_rate_percent = nil
	m.addvat_rate_percent = nil
}

// SetLineTotalCents sets the "line_total_cents" field.
func (m *ReceiptLineMutation) SetLineTotalCents(i int64) {
	m.line_total_cents = &i
	m.addline_total_cents = nil
}

// LineTotalCents returns the value of the "line_total_cents" field in the mutation.
func (m *ReceiptLineMutation) LineTotalCents() (r int64, exists bool) {
	v := m.line_total_cents
	if v == nil {
		return
	}
	return *v, true
}

// OldLineTotalCents returns the old "line_total_cents" field's value of the ReceiptLine entity.
// If the ReceiptLine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReceiptLineMutation) OldLineTotalCents(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineTotalCents is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineTotalCents requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineTotalCents: %w", err)
	}
	return oldValue.LineTotalCents, nil
}

// AddLineTotalCents adds i to the "line_total_cents" field.
func (m *ReceiptLineMutation) AddLineTotalCents(i int64) {
	if m.addline_total_cents != nil {
		*m.addline_total_cents += i
	} else {
		m.addline_total_cents = &i
	}
}

// AddedLineTotalCents returns the value that was added to the "line_total_cents" field in this mutation.
func (m *ReceiptLineMutation) AddedLineTotalCents() (r int64, exists bool) {
	v := m.addline_total_cents
	if v == nil {
		return
	}
	return *v, true
}

// ClearLineTotalCents clears the value of the "line_total_cents" field.
func (m *ReceiptLineMutation) ClearLineTotalCents() {
	m.line_total_cents = nil
	m.addline_total_cents = nil
	m.clearedFields[receiptline.FieldLineTotalCents] = struct{}{}
}

// LineTotalCentsCleared returns if the "line_total_cents" field was cleared in this mutation.
func (m *ReceiptLineMutation) LineTotalCentsCleared() bool {
	_, ok := m.clearedFields[receiptline.FieldLineTotalCents]
	return ok
}

// ResetLineTotalCents resets all changes to the "line_total_cents" field.
func (m *ReceiptLineMutation) ResetLineTotalCents() {
	m.line_total_cents = nil
	m.addline_total_cents = nil
	delete(m.clearedFields, receiptline.FieldLineTotalCents)
}

// ClearReceipt clears the "receipt" edge to the Receipt entity.
func (m *ReceiptLineMutation) ClearReceipt() {
	m.clearedreceipt = true
	m.clearedFields[receiptline.FieldReceiptID] = struct{}{}
}

// ReceiptCleared reports if the "receipt" edge to the Receipt entity was cleared.
func (m *ReceiptLineMutation) ReceiptCleared() bool {
	return m.clearedreceipt
}

// ReceiptIDs returns the "receipt" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReceiptID instead. It exists only for internal usage by the builders.
func (m *ReceiptLineMutation) ReceiptIDs() (ids []uuid.UUID) {
	if id := m.receipt; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReceipt resets all changes to the "receipt" edge.
func (m *ReceiptLineMutation) ResetReceipt() {
	m.receipt = nil
	m.clearedreceipt = false
}

// Where appends a list predicates to the ReceiptLineMutation builder.
func (m *ReceiptLineMutation) Where(ps ...predicate.ReceiptLine) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReceiptLineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReceiptLineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReceiptLine, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReceiptLineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReceiptLineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReceiptLine).
func (m *ReceiptLineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReceiptLineMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.receipt != nil {
		fields = append(fields, receiptline.FieldReceiptID)
	}
	if m.fuel_type != nil {
		fields = append(fields, receiptline.FieldFuelType)
	}
	if m.quantity_milliliters != nil {
		fields = append(fields, receiptline.FieldQuantityMilliliters)
	}
	if m.unit_price_deci_cents != nil {
		fields = append(fields, receiptline.FieldUnitPriceDeciCents)
	}
	if m.vat_rate_percent != nil {
		fields = append(fields, receiptline.FieldVatRatePercent)
	}
	if m.line_total_cents != nil {
		fields = append(fields, receiptline.FieldLineTotalCents)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReceiptLineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case receiptline.FieldReceiptID:
		return m.ReceiptID()
	case receiptline.FieldFuelType:
		return m.FuelType()
	case receiptline.FieldQuantityMilliliters:
		return m.QuantityMilliliters()
	case receiptline.FieldUnitPriceDeciCents:
		return m.UnitPriceDeciCents()
	case receiptline.FieldVatRatePercent:
		return m.VatRatePercent()
	case receiptline.FieldLineTotalCents:
		return m.LineTotalCents()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReceiptLineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case receiptline.FieldReceiptID:
		return m.OldReceiptID(ctx)
	case receiptline.FieldFuelType:
		return m.OldFuelType(ctx)
	case receiptline.FieldQuantityMilliliters:
		return m.OldQuantityMilliliters(ctx)
	case receiptline.FieldUnitPriceDeciCents:
		return m.OldUnitPriceDeciCents(ctx)
	case receiptline.FieldVatRatePercent:
		return m.OldVatRatePercent(ctx)
	case receiptline.FieldLineTotalCents:
		return m.OldLineTotalCents(ctx)
	}
	return nil, fmt.Errorf("unknown ReceiptLine field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptLineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case receiptline.FieldReceiptID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceiptID(v)
		return nil
	case receiptline.FieldFuelType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFuelType(v)
		return nil
	case receiptline.FieldQuantityMilliliters:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantityMilliliters(v)
		return nil
	case receiptline.FieldUnitPriceDeciCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPriceDeciCents(v)
		return nil
	case receiptline.FieldVatRatePercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVatRatePercent(v)
		return nil
	case receiptline.FieldLineTotalCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineTotalCents(v)
		return nil
	}
	return fmt.Errorf("unknown ReceiptLine field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReceiptLineMutation) AddedFields() []string {
	var fields []string
	if m.addquantity_milliliters != nil {
		fields = append(fields, receiptline.FieldQuantityMilliliters)
	}
	if m.addunit_price_deci_cents != nil {
		fields = append(fields, receiptline.FieldUnitPriceDeciCents)
	}
	if m.addvat_rate_percent != nil {
		fields = append(fields, receiptline.FieldVatRatePercent)
	}
	if m.addline_total_cents != nil {
		fields = append(fields, receiptline.FieldLineTotalCents)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReceiptLineMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case receiptline.FieldQuantityMilliliters:
		return m.AddedQuantityMilliliters()
	case receiptline.FieldUnitPriceDeciCents:
		return m.AddedUnitPriceDeciCents()
	case receiptline.FieldVatRatePercent:
		return m.AddedVatRatePercent()
	case receiptline.FieldLineTotalCents:
		return m.AddedLineTotalCents()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReceiptLineMutation) AddField(name string, value ent.Value) error {
	switch name {
	case receiptline.FieldQuantityMilliliters:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantityMilliliters(v)
		return nil
	case receiptline.FieldUnitPriceDeciCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPriceDeciCents(v)
		return nil
	case receiptline.FieldVatRatePercent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVatRatePercent(v)
		return nil
	case receiptline.FieldLineTotalCents:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLineTotalCents(v)
		return nil
	}
	return fmt.Errorf("unknown ReceiptLine numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReceiptLineMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(receiptline.FieldLineTotalCents) {
		fields = append(fields, receiptline.FieldLineTotalCents)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReceiptLineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReceiptLineMutation) ClearField(name string) error {
	switch name {
	case receiptline.FieldLineTotalCents:
		m.ClearLineTotalCents()
		return nil
	}
	return fmt.Errorf("unknown ReceiptLine nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReceiptLineMutation) ResetField(name string) error {
	switch name {
	case receiptline.FieldReceiptID:
		m.ResetReceiptID()
		return nil
	case receiptline.FieldFuelType:
		m.ResetFuelType()
		return nil
	case receiptline.FieldQuantityMilliliters:
		m.ResetQuantityMilliliters()
		return nil
	case receiptline.FieldUnitPriceDeciCents:
		m.ResetUnitPriceDeciCents()
		return nil
	case receiptline.FieldVatRatePercent:
		m.ResetVatRatePercent()
		return nil
	case receiptline.FieldLineTotalCents:
		m.ResetLineTotalCents()
		return nil
	}
	return fmt.Errorf("unknown ReceiptLine field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReceiptLineMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.receipt != nil {
		edges = append(edges, receiptline.EdgeReceipt)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReceiptLineMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case receiptline.EdgeReceipt:
		if id := m.receipt; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReceiptLineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReceiptLineMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReceiptLineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreceipt {
		edges = append(edges, receiptline.EdgeReceipt)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReceiptLineMutation) EdgeCleared(name string) bool {
	switch name {
	case receiptline.EdgeReceipt:
		return m.clearedreceipt
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReceiptLineMutation) ClearEdge(name string) error {
	switch name {
	case receiptline.EdgeReceipt:
		m.ClearReceipt()
		return nil
	}
	return fmt.Errorf("unknown ReceiptLine unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReceiptLineMutation) ResetEdge(name string) error {
	switch name {
	case receiptline.EdgeReceipt:
		m.ResetReceipt()
		return nil
	}
	return fmt.Errorf("unknown ReceiptLine edge %s", name)
}

// StationMutation represents an operation that mutates the Station nodes in the graph.
type StationMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	owner_id        *uuid.UUID
	name            *string
	street_name     *string
	postal_code     *string
	city            *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	receipts        map[uuid.UUID]struct{}
	removedreceipts map[uuid.UUID]struct{}
	clearedreceipts bool
	done            bool
	oldValue        func(context.Context) (*Station, error)
	predicates      []predicate.Station
}

var _ ent.Mutation = (*StationMutation)(nil)

// stationOption allows management of the mutation configuration using functional options.
type stationOption func(*StationMutation)

// newStationMutation creates new mutation for the Station entity.
func newStationMutation(c config, op Op, opts ...stationOption) *StationMutation {
	m := &StationMutation{
		config:        c,
		op:            op,
		typ:           TypeStation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStationID sets the ID field of the mutation.
func withStationID(id uuid.UUID) stationOption {
	return func(m *StationMutation) {
		var (
			err   error
			once  sync.Once
			value *Station
		)
		m.oldValue = func(ctx context.Context) (*Station, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Station.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStation sets the old Station of the mutation.
func withStation(node *Station) stationOption {
	return func(m *StationMutation) {
		m.oldValue = func(context.Context) (*Station, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Station entities.
func (m *StationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Station.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *StationMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *StationMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the Station entity.
// If the Station object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StationMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *StationMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetName sets the "name" field.
func (m *StationMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StationMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Station entity.
// If the Station object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StationMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *StationMutation) ResetName() {
	m.name = nil
}

// SetStreetName sets the "street_name" field.
func (m *StationMutation) SetStreetName(s string) {
	m.street_name = &s
}

// StreetName returns the value of the "street_name" field in the mutation.
func (m *StationMutation) StreetName() (r string, exists bool) {
	v := m.street_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStreetName returns the old "street_name" field's value of the Station entity.
// If the Station object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StationMutation) OldStreetName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreetName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreetName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreetName: %w", err)
	}
	return oldValue.StreetName, nil
}

// ResetStreetName resets all changes to the "street_name" field.
func (m *StationMutation) ResetStreetName() {
	m.street_name = nil
}

// SetPostalCode sets the "postal_code" field.
func (m *StationMutation) SetPostalCode(s string) {
	m.postal_code = &s
}

// PostalCode returns the value of the "postal_code" field in the mutation.
func (m *StationMutation) PostalCode() (r string, exists bool) {
	v := m.postal_code
	if v == nil {
		return
	}
	return *v, true
}

// OldPostalCode returns the old "postal_code" field's value of the Station entity.
// If the Station object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StationMutation) OldPostalCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostalCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostalCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostalCode: %w", err)
	}
	return oldValue.PostalCode, nil
}

// ResetPostalCode resets all changes to the "postal_code" field.
func (m *StationMutation) ResetPostalCode() {
	m.postal_code = nil
}

// SetCity sets the "city" field.
func (m *StationMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *StationMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Station entity.
// If the Station object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StationMutation) OldCity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ResetCity resets all changes to the "city" field.
func (m *StationMutation) ResetCity() {
	m.city = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Station entity.
// If the Station object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddReceiptIDs adds the "receipts" edge to the Receipt entity by ids.
func (m *StationMutation) AddReceiptIDs(ids ...uuid.UUID) {
	if m.receipts == nil {
		m.receipts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.receipts[ids[i]] = struct{}{}
	}
}

// ClearReceipts clears the "receipts" edge to the Receipt entity.
func (m *StationMutation) ClearReceipts() {
	m.clearedreceipts = true
}

// ReceiptsCleared reports if the "receipts" edge to the Receipt entity was cleared.
func (m *StationMutation) ReceiptsCleared() bool {
	return m.clearedreceipts
}

// RemoveReceiptIDs removes the "receipts" edge to the Receipt entity by IDs.
func (m *StationMutation) RemoveReceiptIDs(ids ...uuid.UUID) {
	if m.removedreceipts == nil {
		m.removedreceipts = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.receipts, ids[i])
		m.removedreceipts[ids[i]] = struct{}{}
	}
}

// RemovedReceipts returns the removed IDs of the "receipts" edge to the Receipt entity.
func (m *StationMutation) RemovedReceiptsIDs() (ids []uuid.UUID) {
	for id := range m.removedreceipts {
		ids = append(ids, id)
	}
	return
}

// ReceiptsIDs returns the "receipts" edge IDs in the mutation.
func (m *StationMutation) ReceiptsIDs() (ids []uuid.UUID) {
	for id := range m.receipts {
		ids = append(ids, id)
	}
	return
}

// ResetReceipts resets all changes to the "receipts" edge.
func (m *StationMutation) ResetReceipts() {
	m.receipts = nil
	m.clearedreceipts = false
	m.removedreceipts = nil
}

// Where appends a list predicates to the StationMutation builder.
func (m *StationMutation) Where(ps ...predicate.Station) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Station, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Station).
func (m *StationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.owner_id != nil {
		fields = append(fields, station.FieldOwnerID)
	}
	if m.name != nil {
		fields = append(fields, station.FieldName)
	}
	if m.street_name != nil {
		fields = append(fields, station.FieldStreetName)
	}
	if m.postal_code != nil {
		fields = append(fields, station.FieldPostalCode)
	}
	if m.city != nil {
		fields = append(fields, station.FieldCity)
	}
	if m.created_at != nil {
		fields = append(fields, station.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case station.FieldOwnerID:
		return m.OwnerID()
	case station.FieldName:
		return m.Name()
	case station.FieldStreetName:
		return m.StreetName()
	case station.FieldPostalCode:
		return m.PostalCode()
	case station.FieldCity:
		return m.City()
	case station.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case station.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case station.FieldName:
		return m.OldName(ctx)
	case station.FieldStreetName:
		return m.OldStreetName(ctx)
	case station.FieldPostalCode:
		return m.OldPostalCode(ctx)
	case station.FieldCity:
		return m.OldCity(ctx)
	case station.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Station field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case station.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case station.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case station.FieldStreetName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreetName(v)
		return nil
	case station.FieldPostalCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostalCode(v)
		return nil
	case station.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case station.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Station field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Station numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Station nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StationMutation) ResetField(name string) error {
	switch name {
	case station.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case station.FieldName:
		m.ResetName()
		return nil
	case station.FieldStreetName:
		m.ResetStreetName()
		return nil
	case station.FieldPostalCode:
		m.ResetPostalCode()
		return nil
	case station.FieldCity:
		m.ResetCity()
		return nil
	case station.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Station field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.receipts != nil {
		edges = append(edges, station.EdgeReceipts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case station.EdgeReceipts:
		ids := make([]ent.Value, 0, len(m.receipts))
		for id := range m.receipts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedreceipts != nil {
		edges = append(edges, station.EdgeReceipts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case station.EdgeReceipts:
		ids := make([]ent.Value, 0, len(m.removedreceipts))
		for id := range m.removedreceipts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreceipts {
		edges = append(edges, station.EdgeReceipts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StationMutation) EdgeCleared(name string) bool {
	switch name {
	case station.EdgeReceipts:
		return m.clearedreceipts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Station unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StationMutation) ResetEdge(name string) error {
	switch name {
	case station.EdgeReceipts:
		m.ResetReceipts()
		return nil
	}
	return fmt.Errorf("unknown Station edge %s", name)
}
