// SPDX-License-Identifier: MIT

// Package matrix - format conversion.
//
// Convert is the single generic path between any two formats: the
// destination is resized to the source shape and receives every source
// element whose magnitude exceeds the zero threshold.

package matrix

import (
	"math"

	"github.com/katalvlaran/mla"
)

// Convert copies src into dst, whatever their formats.
// MAIN DESCRIPTION:
//   - Structural copy across storage policies (Dense→CRS, COO→CCS, ...).
//
// Implementation:
//   - Stage 1: validate operands; dst.Resize(src.Rows(), src.Cols()) (destructive).
//   - Stage 2: walk src with its Cursor in row-major order. COO and DOK are
//     read through Do instead: their cursor jumps scan every slot.
//   - Stage 3: dst.Set every element with |v| > threshold (WithZeroThreshold).
//
// Behavior highlights:
//   - Converting to Diagonal fails with mla.ErrReadOnlyElement when src holds
//     an off-diagonal element above the threshold.
//   - src == dst is rejected (the resize would destroy the source).
//
// Errors:
//   - mla.ErrNilArgument, mla.ErrDimensionMismatch (aliasing), dst.Set errors.
//
// Complexity:
//   - Time O(visited(src) · cost(dst.Set)); inserting into CRS/CCS in
//     row-major order is the costly direction for CCS.
func Convert(dst, src Matrix, opts ...Option) error {
	const op = "matrix.Convert"
	if dst == nil || src == nil {
		return mla.Errorf(op, mla.ErrNilArgument, "dst or src is nil")
	}
	if dst == src {
		return mla.Errorf(op, mla.ErrDimensionMismatch, "dst and src are the same matrix")
	}
	o := gatherOptions(opts...)
	if err := dst.Resize(src.Rows(), src.Cols()); err != nil {
		return mla.Wrap(op, err)
	}

	var err error
	copyOne := func(i, j int, v float64) bool {
		if math.Abs(v) <= o.zeroThreshold {
			return true // below the zero-interpretation threshold
		}
		err = dst.Set(i, j, v)
		return err == nil
	}

	switch s := src.(type) {
	case *COO:
		s.Do(copyOne)
	case *DOK:
		s.Do(copyOne)
	default:
		Walk(src.Cursor(), copyOne)
	}
	if err != nil {
		return mla.Wrap(op, err)
	}

	return nil
}
