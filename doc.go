// Package mla is a small linear-algebra substrate: interchangeable matrix and
// vector storage formats behind one cursor-based traversal contract, plus
// BLAS-style kernels and two solvers built on top of it.
//
// What is inside:
//
//	vector/    Dense and SparseCS (compressed) vectors with a forward Cursor
//	matrix/    Dense, StaticDense, Diagonal, COO, DOK, CRS and CCS matrices,
//	           the two-axis Cursor, the row-scoped RowCursor, Convert,
//	           Add/Sub/Transpose
//	blas/      Dot, Axpy, Scale, Asum, Nrm2, Gemv, Syr, Gemm, Syrk
//	reorder/   degree-sort Cuthill-McKee permutation over DOK matrices
//	solvers/   Conjugate Gradient, Cholesky with substitution, direct CCS solve
//	mmio/      Matrix Market coordinate reader (mmap-backed files)
//	cmd/mlasolve  batch solver driven by a YAML file
//
// Every storage object is owned by exactly one holder. Cursors borrow their
// storage and must not outlive it nor be used across a structural mutation.
// Nothing in the library is safe for concurrent writers; callers serialize.
//
// Precondition violations are reported as *Error values wrapping one of the
// sentinels declared in this package, so errors.Is works at every layer:
//
//	if errors.Is(err, mla.ErrDimensionMismatch) { ... }
//
// Callers choose the storage format per instance; nothing is selected
// automatically.
package mla
