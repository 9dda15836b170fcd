package assessment

import (
	"errors"
	"fmt"
)

// ErrPredictionFailed wraps any transport or remote failure from the
// prediction service. Nothing is persisted when it occurs.
var ErrPredictionFailed = errors.New("prediction failed")

// ErrPredictionNotSaved signals that the medical record was written but the
// follow-up prediction write failed. The record is intentionally left in
// place; the client is told the record ID so the inconsistency window is
// visible rather than silent.
var ErrPredictionNotSaved = errors.New("prediction not saved")

// ErrNotFound is returned by repositories when a row does not exist or is
// logically deleted.
var ErrNotFound = errors.New("not found")

// FieldError attributes a persistence failure to a specific form field via
// a stable machine-readable code. It replaces the legacy practice of
// substring-matching backend error text.
type FieldError struct {
	Field string
	Code  string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Code, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Constraint-violation codes surfaced to clients.
const (
	CodeBPOrder          = "bp_order"
	CodeBMIMismatch      = "bmi_mismatch"
	CodeDuplicateRecord  = "duplicate_record"
	CodeConstraintFailed = "constraint_failed"
)
