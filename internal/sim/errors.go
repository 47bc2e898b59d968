package sim

import (
	"errors"
	"fmt"

	"github.com/progracyd/debugblocker/internal/token"
)

// ErrInvalidArgument is returned when Recommend's inputs violate one of
// the shape or range invariants callers are expected to hold. It is a
// sentinel so callers can detect it with errors.Is.
var ErrInvalidArgument = errors.New("debugblocker: invalid argument")

// validateInputs checks input shape and range constraints up front,
// before any computation that would otherwise divide by zero or index
// out of range.
func validateInputs(l, r token.Table, xl, xr token.FieldTable, sumL, sumR token.TokenSums, fields []int, rho float64, k int) error {
	if len(l) == 0 {
		return fmt.Errorf("%w: left table must be non-empty", ErrInvalidArgument)
	}
	if len(r) == 0 {
		return fmt.Errorf("%w: right table must be non-empty", ErrInvalidArgument)
	}
	if len(xl) != len(l) {
		return fmt.Errorf("%w: left field-id table shape mismatch: got %d rows, want %d", ErrInvalidArgument, len(xl), len(l))
	}
	if len(xr) != len(r) {
		return fmt.Errorf("%w: right field-id table shape mismatch: got %d rows, want %d", ErrInvalidArgument, len(xr), len(r))
	}
	for i := range l {
		if len(xl[i]) != len(l[i]) {
			return fmt.Errorf("%w: left field-id row %d shape mismatch: got %d, want %d", ErrInvalidArgument, i, len(xl[i]), len(l[i]))
		}
	}
	for i := range r {
		if len(xr[i]) != len(r[i]) {
			return fmt.Errorf("%w: right field-id row %d shape mismatch: got %d, want %d", ErrInvalidArgument, i, len(xr[i]), len(r[i]))
		}
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: field list must be non-empty", ErrInvalidArgument)
	}
	for _, f := range fields {
		if f < 0 || f >= len(sumL) {
			return fmt.Errorf("%w: field %d has no entry in the left token-sum vector", ErrInvalidArgument, f)
		}
		if f < 0 || f >= len(sumR) {
			return fmt.Errorf("%w: field %d has no entry in the right token-sum vector", ErrInvalidArgument, f)
		}
	}
	if rho <= 0 || rho >= 1 {
		return fmt.Errorf("%w: field_remove_ratio must satisfy 0 < rho < 1, got %v", ErrInvalidArgument, rho)
	}
	if k < 1 {
		return fmt.Errorf("%w: output_size must be >= 1, got %d", ErrInvalidArgument, k)
	}
	return nil
}
