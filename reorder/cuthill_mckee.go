// SPDX-License-Identifier: MIT

// Package reorder computes symmetric permutations of square sparse matrices
// and measures their effect on the matrix bandwidth.
//
// The permutation vectors returned here map new indices to old ones
// (order[new] = old) and can be fed directly to SymmetricReorder on
// *matrix.DOK, *matrix.COO or *matrix.Dense.
package reorder

import (
	"sort"

	"github.com/katalvlaran/mla"
	"github.com/katalvlaran/mla/matrix"
)

const (
	opCuthillMcKee = "reorder.CuthillMcKee"
	opDegrees      = "reorder.Degrees"
	opBandwidth    = "reorder.Bandwidth"
)

// Vertex pairs a row index with its off-diagonal degree.
type Vertex struct {
	Index  int
	Degree int
}

// Degrees counts, for every row i, the stored slots (i,j) with j != i.
// The matrix is read as an adjacency structure; values are ignored, so an
// explicit zero slot still counts as an edge.
// Errors: ErrNilArgument, ErrNonSquare.
// Complexity: O(nnz log nnz) (DOK visits its keys in sorted order), Space O(n).
func Degrees(a *matrix.DOK) ([]int, error) {
	if a == nil {
		return nil, mla.Errorf(opDegrees, mla.ErrNilArgument, "matrix is nil")
	}
	if !a.IsSquare() {
		return nil, mla.Errorf(opDegrees, mla.ErrNonSquare, "matrix is %dx%d", a.Rows(), a.Cols())
	}

	deg := make([]int, a.Rows())
	a.Do(func(i, j int, _ float64) bool {
		if i != j {
			deg[i]++
		}
		return true
	})

	return deg, nil
}

// CuthillMcKee returns the degree-sort ordering of a square DOK matrix.
// MAIN DESCRIPTION:
//   - Every vertex is paired with its off-diagonal degree (see Degrees) and
//     the list is stable-sorted by DESCENDING degree; equal degrees keep
//     ascending index order.
//   - The result is the new-to-old index map: order[new] = old.
//
// Behavior highlights:
//   - This is the degree-sort variant only. There is no breadth-first sweep
//     from a minimum-degree vertex as in textbook Cuthill–McKee, so the
//     bandwidth is not guaranteed to shrink. An arrowhead matrix with the hub
//     at row 0 maps to the identity order.
//   - An empty (0×0) matrix yields an empty, non-nil order.
//
// Errors:
//   - ErrNilArgument, ErrNonSquare.
//
// Complexity:
//   - Time O(nnz log nnz + n log n), Space O(n).
func CuthillMcKee(a *matrix.DOK) ([]int, error) {
	deg, err := Degrees(a)
	if err != nil {
		return nil, mla.Wrap(opCuthillMcKee, err)
	}

	vs := make([]Vertex, len(deg))
	for i, d := range deg {
		vs[i] = Vertex{Index: i, Degree: d}
	}
	// stable: ties keep the ascending index order built above
	sort.SliceStable(vs, func(p, q int) bool {
		return vs[p].Degree > vs[q].Degree
	})

	order := make([]int, len(vs))
	for k, v := range vs {
		order[k] = v.Index
	}

	return order, nil
}

// Bandwidth returns max |i-j| over the stored slots of a (0 for an empty
// or diagonal matrix). Accepts any format; the walk follows its cursor.
// Errors: ErrNilArgument.
// Complexity: one full cursor traversal.
func Bandwidth(a matrix.Matrix) (int, error) {
	if a == nil {
		return 0, mla.Errorf(opBandwidth, mla.ErrNilArgument, "matrix is nil")
	}

	bw := 0
	matrix.Walk(a.Cursor(), func(i, j int, v float64) bool {
		if v != 0 {
			bw = max(bw, i-j, j-i)
		}
		return true
	})

	return bw, nil
}
