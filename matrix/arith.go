// SPDX-License-Identifier: MIT

// Package matrix - format-agnostic arithmetic producing Dense results.
//
// Purpose:
//   - Add, Sub and Transpose over any pair of storage formats, reading each
//     operand through its Cursor so sparse inputs cost O(visited) and not O(r*c).
//   - Results are always a freshly allocated *Dense; operands are never mutated.

package matrix

import "github.com/katalvlaran/mla"

const (
	opAdd       = "matrix.Add"
	opSub       = "matrix.Sub"
	opTranspose = "matrix.Transpose"
)

// accumulate adds sign·m into the row-major buffer out (stride cols).
func accumulate(out []float64, cols int, m Matrix, sign float64) {
	if rm, ok := m.(RowMajor); ok {
		for idx, v := range rm.RawData() {
			out[idx] += sign * v
		}
		return
	}
	Walk(m.Cursor(), func(i, j int, v float64) bool {
		out[i*cols+j] += sign * v
		return true
	})
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: validate non-nil operands and identical shapes; allocate Dense.
//   - Stage 2: a is copied in (flat copy for RowMajor, cursor walk otherwise),
//     then sign·b is accumulated the same way.
//
// Complexity:
//   - Time O(r*c) for the allocation plus O(visited(a) + visited(b)).
func addSub(a, b Matrix, sign float64, op string) (*Dense, error) {
	if a == nil || b == nil {
		return nil, mla.Errorf(op, mla.ErrNilArgument, "operand is nil")
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, mla.Wrap(op, err)
	}

	res, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, mla.Wrap(op, err)
	}
	accumulate(res.data, res.c, a, 1)
	accumulate(res.data, res.c, b, sign)

	return res, nil
}

// Add returns A + B as a new Dense, whatever the operand formats.
// Errors: mla.ErrNilArgument, mla.ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns A - B as a new Dense, whatever the operand formats.
// Errors: mla.ErrNilArgument, mla.ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Transpose returns Aᵀ as a new cols×rows Dense.
// Implementation:
//   - RowMajor operands: index swap over the flat buffer.
//   - Otherwise the cursor walk writes res[j,i] = v for every visited (i,j,v).
//
// Errors: mla.ErrNilArgument.
// Complexity: Time O(r*c) (allocation) + O(visited(A)).
func Transpose(m Matrix) (*Dense, error) {
	if m == nil {
		return nil, mla.Errorf(opTranspose, mla.ErrNilArgument, "matrix is nil")
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, mla.Wrap(opTranspose, err)
	}

	if rm, ok := m.(RowMajor); ok {
		src := rm.RawData()
		var i, j, base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = src[base+j]
			}
		}

		return res, nil
	}

	Walk(m.Cursor(), func(i, j int, v float64) bool {
		res.data[j*rows+i] = v
		return true
	})

	return res, nil
}
