// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ImportJob is the predicate function for importjob builders.
type ImportJob func(*sql.Selector)

// Receipt is the predicate function for receipt builders.
type Receipt func(*sql.Selector)

// ReceiptLine is the predicate function for receiptline builders.
type ReceiptLine func(*sql.Selector)

// Station is the predicate function for station builders.
type Station func(*sql.Selector)
