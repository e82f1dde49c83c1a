// Code generated by ent, DO NOT EDIT.

package importjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/carbux/fuel-receipts/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldOwnerID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStatus, v))
}

// StorageName applies equality check predicate on the "storage_name" field. It's identical to StorageNameEQ.
func StorageName(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStorageName, v))
}

// StoragePath applies equality check predicate on the "storage_path" field. It's identical to StoragePathEQ.
func StoragePath(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStoragePath, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFilename, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldMimeType, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFileSize, v))
}

// Checksum applies equality check predicate on the "checksum" field. It's identical to ChecksumEQ.
func Checksum(v []byte) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldChecksum, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldCompletedAt, v))
}

// FailedAt applies equality check predicate on the "failed_at" field. It's identical to FailedAtEQ.
func FailedAt(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFailedAt, v))
}

// RetainUntil applies equality check predicate on the "retain_until" field. It's identical to RetainUntilEQ.
func RetainUntil(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldRetainUntil, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldOwnerID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldStatus, v))
}

// StorageNameEQ applies the EQ predicate on the "storage_name" field.
func StorageNameEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStorageName, v))
}

// StorageNameNEQ applies the NEQ predicate on the "storage_name" field.
func StorageNameNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldStorageName, v))
}

// StorageNameIn applies the In predicate on the "storage_name" field.
func StorageNameIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldStorageName, vs...))
}

// StorageNameNotIn applies the NotIn predicate on the "storage_name" field.
func StorageNameNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldStorageName, vs...))
}

// StorageNameGT applies the GT predicate on the "storage_name" field.
func StorageNameGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldStorageName, v))
}

// StorageNameGTE applies the GTE predicate on the "storage_name" field.
func StorageNameGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldStorageName, v))
}

// StorageNameLT applies the LT predicate on the "storage_name" field.
func StorageNameLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldStorageName, v))
}

// StorageNameLTE applies the LTE predicate on the "storage_name" field.
func StorageNameLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldStorageName, v))
}

// StorageNameContains applies the Contains predicate on the "storage_name" field.
func StorageNameContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldStorageName, v))
}

// StorageNameHasPrefix applies the HasPrefix predicate on the "storage_name" field.
func StorageNameHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldStorageName, v))
}

// StorageNameHasSuffix applies the HasSuffix predicate on the "storage_name" field.
func StorageNameHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldStorageName, v))
}

// StorageNameEqualFold applies the EqualFold predicate on the "storage_name" field.
func StorageNameEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldStorageName, v))
}

// StorageNameContainsFold applies the ContainsFold predicate on the "storage_name" field.
func StorageNameContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldStorageName, v))
}

// StoragePathEQ applies the EQ predicate on the "storage_path" field.
func StoragePathEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStoragePath, v))
}

// StoragePathNEQ applies the NEQ predicate on the "storage_path" field.
func StoragePathNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldStoragePath, v))
}

// StoragePathIn applies the In predicate on the "storage_path" field.
func StoragePathIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldStoragePath, vs...))
}

// StoragePathNotIn applies the NotIn predicate on the "storage_path" field.
func StoragePathNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldStoragePath, vs...))
}

// StoragePathGT applies the GT predicate on the "storage_path" field.
func StoragePathGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldStoragePath, v))
}

// StoragePathGTE applies the GTE predicate on the "storage_path" field.
func StoragePathGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldStoragePath, v))
}

// StoragePathLT applies the LT predicate on the "storage_path" field.
func StoragePathLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldStoragePath, v))
}

// StoragePathLTE applies the LTE predicate on the "storage_path" field.
func StoragePathLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldStoragePath, v))
}

// StoragePathContains applies the Contains predicate on the "storage_path" field.
func StoragePathContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldStoragePath, v))
}

// StoragePathHasPrefix applies the HasPrefix predicate on the "storage_path" field.
func StoragePathHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldStoragePath, v))
}

// StoragePathHasSuffix applies the HasSuffix predicate on the "storage_path" field.
func StoragePathHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldStoragePath, v))
}

// StoragePathEqualFold applies the EqualFold predicate on the "storage_path" field.
func StoragePathEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldStoragePath, v))
}

// StoragePathContainsFold applies the ContainsFold predicate on the "storage_path" field.
func StoragePathContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldStoragePath, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldFilename, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldContainsFold(FieldMimeType, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldFileSize, v))
}

// ChecksumEQ applies the EQ predicate on the "checksum" field.
func ChecksumEQ(v []byte) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldChecksum, v))
}

// ChecksumNEQ applies the NEQ predicate on the "checksum" field.
func ChecksumNEQ(v []byte) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldChecksum, v))
}

// ChecksumIn applies the In predicate on the "checksum" field.
func ChecksumIn(vs ...[]byte) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldChecksum, vs...))
}

// ChecksumNotIn applies the NotIn predicate on the "checksum" field.
func ChecksumNotIn(vs ...[]byte) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldChecksum, vs...))
}

// ChecksumGT applies the GT predicate on the "checksum" field.
func ChecksumGT(v []byte) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldChecksum, v))
}

// ChecksumGTE applies the GTE predicate on the "checksum" field.
func ChecksumGTE(v []byte) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldChecksum, v))
}

// ChecksumLT applies the LT predicate on the "checksum" field.
func ChecksumLT(v []byte) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldChecksum, v))
}

// ChecksumLTE applies the LTE predicate on the "checksum" field.
func ChecksumLTE(v []byte) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldChecksum, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldResult))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldCompletedAt))
}

// FailedAtEQ applies the EQ predicate on the "failed_at" field.
func FailedAtEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldFailedAt, v))
}

// FailedAtNEQ applies the NEQ predicate on the "failed_at" field.
func FailedAtNEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldFailedAt, v))
}

// FailedAtIn applies the In predicate on the "failed_at" field.
func FailedAtIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldFailedAt, vs...))
}

// FailedAtNotIn applies the NotIn predicate on the "failed_at" field.
func FailedAtNotIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldFailedAt, vs...))
}

// FailedAtGT applies the GT predicate on the "failed_at" field.
func FailedAtGT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldFailedAt, v))
}

// FailedAtGTE applies the GTE predicate on the "failed_at" field.
func FailedAtGTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldFailedAt, v))
}

// FailedAtLT applies the LT predicate on the "failed_at" field.
func FailedAtLT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldFailedAt, v))
}

// FailedAtLTE applies the LTE predicate on the "failed_at" field.
func FailedAtLTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldFailedAt, v))
}

// FailedAtIsNil applies the IsNil predicate on the "failed_at" field.
func FailedAtIsNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIsNull(FieldFailedAt))
}

// FailedAtNotNil applies the NotNil predicate on the "failed_at" field.
func FailedAtNotNil() predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotNull(FieldFailedAt))
}

// RetainUntilEQ applies the EQ predicate on the "retain_until" field.
func RetainUntilEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldEQ(FieldRetainUntil, v))
}

// RetainUntilNEQ applies the NEQ predicate on the "retain_until" field.
func RetainUntilNEQ(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNEQ(FieldRetainUntil, v))
}

// RetainUntilIn applies the In predicate on the "retain_until" field.
func RetainUntilIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldIn(FieldRetainUntil, vs...))
}

// RetainUntilNotIn applies the NotIn predicate on the "retain_until" field.
func RetainUntilNotIn(vs ...time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldNotIn(FieldRetainUntil, vs...))
}

// RetainUntilGT applies the GT predicate on the "retain_until" field.
func RetainUntilGT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGT(FieldRetainUntil, v))
}

// RetainUntilGTE applies the GTE predicate on the "retain_until" field.
func RetainUntilGTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldGTE(FieldRetainUntil, v))
}

// RetainUntilLT applies the LT predicate on the "retain_until" field.
func RetainUntilLT(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLT(FieldRetainUntil, v))
}

// RetainUntilLTE applies the LTE predicate on the "retain_until" field.
func RetainUntilLTE(v time.Time) predicate.ImportJob {
	return predicate.ImportJob(sql.FieldLTE(FieldRetainUntil, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ImportJob) predicate.ImportJob {
	return predicate.ImportJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ImportJob) predicate.ImportJob {
	return predicate.ImportJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ImportJob) predicate.ImportJob {
	return predicate.ImportJob(sql.NotPredicates(p))
}
