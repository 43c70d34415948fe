// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage used by the QAP solvers.
//
// Contents:
//
//   - Matrix: a bounds-checked two-dimensional float64 interface.
//   - Dense: a row-major implementation backed by one flat slice.
//   - Flatten: a row-major snapshot of any Matrix, with a copy-only fast path
//     for *Dense. Solvers use it to take the interface out of their hot loops.
//   - Validators: shape, finiteness and integrality checks returning sentinels.
//
// Errors are sentinels from errors.go; match them with errors.Is.
package matrix
