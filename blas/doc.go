// SPDX-License-Identifier: MIT

// Package blas implements BLAS-style kernels over the vector and matrix
// capability sets.
//
// Level 1 (vectors):  Dot, Axpy, Scale, Asum, Nrm2.
// Level 2 (mat-vec):  Gemv, Syr.
// Level 3 (mat-mat):  Gemm, Syrk (row-major dense operands only).
//
// Every kernel is written once against the cursor protocol and carries
// fast paths for the concrete formats that allow direct buffer access
// (*vector.Dense, *matrix.Dense, compressed matrices). Results never depend
// on which path runs; tests compare both via an interface-hiding wrapper.
//
// Errors are the root mla sentinels wrapped with the kernel name, e.g.
// "blas.Gemv: A.Cols()=3 != x.Size()=4: mla: dimension mismatch".
// Kernels validate operand shapes before writing anything.
package blas
