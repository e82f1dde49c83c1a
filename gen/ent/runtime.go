// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/carbux/fuel-receipts/db/ent/schema"
	"github.com/carbux/fuel-receipts/gen/ent/importjob"
	"github.com/carbux/fuel-receipts/gen/ent/receipt"
	"github.com/carbux/fuel-receipts/gen/ent/receiptline"
	"github.com/carbux/fuel-receipts/gen/ent/station"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	importjobFields := schema.ImportJob{}.Fields()
	_ = importjobFields
	// importjobDescStatus is the schema descriptor for status field.
	importjobDescStatus := importjobFields[2].Descriptor()
	// importjob.DefaultStatus holds the default value on creation for the status field.
	importjob.DefaultStatus = importjobDescStatus.Default.(string)
	// importjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	importjob.StatusValidator = importjobDescStatus.Validators[0].(func(string) error)
	// importjobDescStorageName is the schema descriptor for storage_name field.
	importjobDescStorageName := importjobFields[3].Descriptor()
	// importjob.StorageNameValidator is a validator for the "storage_name" field. It is called by the builders before save.
	importjob.StorageNameValidator = importjobDescStorageName.Validators[0].(func(string) error)
	// importjobDescStoragePath is the schema descriptor for storage_path field.
	importjobDescStoragePath := importjobFields[4].Descriptor()
	// importjob.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	importjob.StoragePathValidator = importjobDescStoragePath.Validators[0].(func(string) error)
	// importjobDescFilename is the schema descriptor for filename field.
	importjobDescFilename := importjobFields[5].Descriptor()
	// importjob.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	importjob.FilenameValidator = importjobDescFilename.Validators[0].(func(string) error)
	// importjobDescMimeType is the schema descriptor for mime_type field.
	importjobDescMimeType := importjobFields[6].Descriptor()
	// importjob.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	importjob.MimeTypeValidator = importjobDescMimeType.Validators[0].(func(string) error)
	// importjobDescFileSize is the schema descriptor for file_size field.
	importjobDescFileSize := importjobFields[7].Descriptor()
	// importjob.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	importjob.FileSizeValidator = importjobDescFileSize.Validators[0].(func(int64) error)
	// importjobDescChecksum is the schema descriptor for checksum field.
	importjobDescChecksum := importjobFields[8].Descriptor()
	// importjob.ChecksumValidator is a validator for the "checksum" field. It is called by the builders before save.
	importjob.ChecksumValidator = importjobDescChecksum.Validators[0].(func([]byte) error)
	// importjobDescCreatedAt is the schema descriptor for created_at field.
	importjobDescCreatedAt := importjobFields[10].Descriptor()
	// importjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	importjob.DefaultCreatedAt = importjobDescCreatedAt.Default.(func() time.Time)
	// importjobDescUpdatedAt is the schema descriptor for updated_at field.
	importjobDescUpdatedAt := importjobFields[11].Descriptor()
	// importjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	importjob.DefaultUpdatedAt = importjobDescUpdatedAt.Default.(func() time.Time)
	// importjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	importjob.UpdateDefaultUpdatedAt = importjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// importjobDescRetainUntil is the schema descriptor for retain_until field.
	importjobDescRetainUntil := importjobFields[15].Descriptor()
	// importjob.DefaultRetainUntil holds the default value on creation for the retain_until field.
	importjob.DefaultRetainUntil = importjobDescRetainUntil.Default.(func() time.Time)
	// importjobDescID is the schema descriptor for id field.
	importjobDescID := importjobFields[0].Descriptor()
	// importjob.DefaultID holds the default value on creation for the id field.
	importjob.DefaultID = importjobDescID.Default.(func() uuid.UUID)
	receiptFields := schema.Receipt{}.Fields()
	_ = receiptFields
	// receiptDescCreatedAt is the schema descriptor for created_at field.
	receiptDescCreatedAt := receiptFields[6].Descriptor()
	// receipt.DefaultCreatedAt holds the default value on creation for the created_at field.
	receipt.DefaultCreatedAt = receiptDescCreatedAt.Default.(func() time.Time)
	// receiptDescUpdatedAt is the schema descriptor for updated_at field.
	receiptDescUpdatedAt := receiptFields[7].Descriptor()
	// receipt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	receipt.DefaultUpdatedAt = receiptDescUpdatedAt.Default.(func() time.Time)
	// receipt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	receipt.UpdateDefaultUpdatedAt = receiptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// receiptDescID is the schema descriptor for id field.
	receiptDescID := receiptFields[0].Descriptor()
	// receipt.DefaultID holds the default value on creation for the id field.
	receipt.DefaultID = receiptDescID.Default.(func() uuid.UUID)
	receiptlineFields := schema.ReceiptLine{}.Fields()
	_ = receiptlineFields
	// receiptlineDescFuelType is the schema descriptor for fuel_type field.
	receiptlineDescFuelType := receiptlineFields[2].Descriptor()
	// receiptline.FuelTypeValidator is a validator for the "fuel_type" field. It is called by the builders before save.
	receiptline.FuelTypeValidator = func() func(string) error {
		validators := receiptlineDescFuelType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(fuel_type string) error {
			for _, fn := range fns {
				if err := fn(fuel_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// receiptlineDescQuantityMilliliters is the schema descriptor for quantity_milliliters field.
	receiptlineDescQuantityMilliliters := receiptlineFields[3].Descriptor()
	// receiptline.QuantityMillilitersValidator is a validator for the "quantity_milliliters" field. It is called by the builders before save.
	receiptline.QuantityMillilitersValidator = receiptlineDescQuantityMilliliters.Validators[0].(func(int64) error)
	// receiptlineDescUnitPriceDeciCents is the schema descriptor for unit_price_deci_cents field.
	receiptlineDescUnitPriceDeciCents := receiptlineFields[4].Descriptor()
	// receiptline.UnitPriceDeciCentsValidator is a validator for the "unit_price_deci_cents" field. It is called by the builders before save.
	receiptline.UnitPriceDeciCentsValidator = receiptlineDescUnitPriceDeciCents.Validators[0].(func(int64) error)
	// receiptlineDescVatRatePercent is the schema descriptor for vat_rate_percent field.
	receiptlineDescVatRatePercent := receiptlineFields[5].Descriptor()
	// receiptline.VatRatePercentValidator is a validator for the "vat_rate_percent" field. It is called by the builders before save.
	receiptline.VatRatePercentValidator = func() func(int) error {
		validators := receiptlineDescVatRatePercent.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(vat_rate_percent int) error {
			for _, fn := range fns {
				if err := fn(vat_rate_percent); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// receiptlineDescID is the schema descriptor for id field.
	receiptlineDescID := receiptlineFields[0].Descriptor()
	// receiptline.DefaultID holds the default value on creation for the id field.
	receiptline.DefaultID = receiptlineDescID.Default.(func() uuid.UUID)
	stationFields := schema.Station{}.Fields()
	_ = stationFields
	// stationDescName is the schema descriptor for name field.
	stationDescName := stationFields[2].Descriptor()
	// station.NameValidator is a validator for the "name" field. It is called by the builders before save.
	station.NameValidator = stationDescName.Validators[0].(func(string) error)
	// stationDescStreetName is the schema descriptor for street_name field.
	stationDescStreetName := stationFields[3].Descriptor()
	// station.StreetNameValidator is a validator for the "street_name" field. It is called by the builders before save.
	station.StreetNameValidator = stationDescStreetName.Validators[0].(func(string) error)
	// stationDescPostalCode is the schema descriptor for postal_code field.
	stationDescPostalCode := stationFields[4].Descriptor()
	// station.PostalCodeValidator is a validator for the "postal_code" field. It is called by the builders before save.
	station.PostalCodeValidator = stationDescPostalCode.Validators[0].(func(string) error)
	// stationDescCity is the schema descriptor for city field.
	stationDescCity := stationFields[5].Descriptor()
	// station.CityValidator is a validator for the "city" field. It is called by the builders before save.
	station.CityValidator = stationDescCity.Validators[0].(func(string) error)
	// stationDescCreatedAt is the schema descriptor for created_at field.
	stationDescCreatedAt := stationFields[6].Descriptor()
	// station.DefaultCreatedAt holds the default value on creation for the created_at field.
	station.DefaultCreatedAt = stationDescCreatedAt.Default.(func() time.Time)
	// stationDescID is the schema descriptor for id field.
	stationDescID := stationFields[0].Descriptor()
	// station.DefaultID holds the default value on creation for the id field.
	station.DefaultID = stationDescID.Default.(func() uuid.UUID)
}
