// SPDX-License-Identifier: MIT

// Package matrix provides the matrix storage formats and their traversal cursors.
//
// Formats (all implement Matrix):
//   - Dense, StaticDense: row-major flat buffers (RowMajor, RowOriented).
//   - Diagonal: main diagonal only; off-diagonal writes fail (RowOriented).
//   - COO, DOK: unordered assembly formats with relabeling and splitting.
//   - CRS, CCS: compressed row / column storage for kernels and solvers.
//
// Every format hands out a Cursor walking its structural elements in
// row-major order; row-oriented formats also hand out a RowCursor.
// Convert copies between any two formats through those cursors.
//
// Errors are the root mla sentinels, matched with errors.Is.
package matrix
