// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for shape and numeric checks.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     still match them with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Value scans are O(r*c) and use the flat buffer when m is *Dense.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is also rejected.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans every entry and rejects NaN/±Inf.
// Custom Matrix implementations are not bound by Dense's write policy,
// so solvers call this before trusting the values.
//
// Errors: ErrNilMatrix, ErrOutOfRange (from a faulty At), ErrNaNInf.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	var bad bool
	err := scan(m, func(v float64) bool {
		bad = math.IsNaN(v) || math.IsInf(v, 0)
		return !bad
	})
	if err != nil {
		return validatorErrorf("ValidateFinite", err)
	}
	if bad {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}

	return nil
}

// IsIntegral reports whether every entry of m is a whole number.
// Non-finite values are never integral.
// Complexity: O(r*c).
func IsIntegral(m Matrix) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, validatorErrorf("IsIntegral", err)
	}
	integral := true
	err := scan(m, func(v float64) bool {
		integral = !math.IsNaN(v) && !math.IsInf(v, 0) && v == math.Trunc(v)
		return integral
	})
	if err != nil {
		return false, validatorErrorf("IsIntegral", err)
	}

	return integral, nil
}

// MaxAbs returns max |m[i][j]| over all entries (0 for an all-zero matrix).
// Complexity: O(r*c).
func MaxAbs(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, validatorErrorf("MaxAbs", err)
	}
	var best float64
	err := scan(m, func(v float64) bool {
		if a := math.Abs(v); a > best {
			best = a
		}
		return true
	})
	if err != nil {
		return 0, validatorErrorf("MaxAbs", err)
	}

	return best, nil
}

// scan visits entries in row-major order until visit returns false.
// *Dense goes through its flat buffer; other implementations through At.
func scan(m Matrix, visit func(v float64) bool) error {
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			if !visit(v) {
				return nil
			}
		}
		return nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err = m.At(i, j)
			if err != nil {
				return err
			}
			if !visit(v) {
				return nil
			}
		}
	}

	return nil
}
