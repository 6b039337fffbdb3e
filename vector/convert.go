// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"github.com/katalvlaran/mla"
)

// Convert copies src into dst through src's cursor.
// dst is resized to src.Size() (destructive) and receives only elements with
// |v| > threshold; everything else reads back as exactly 0.
//
// Errors: ErrNilArgument, ErrInvalidDimensions (negative/NaN threshold), or the
// first error returned by dst.Set.
// Complexity: O(stored(src) · cost(dst.Set)).
func Convert(dst, src Vector, threshold float64) error {
	const op = "vector.Convert"
	if dst == nil || src == nil {
		return mla.Errorf(op, mla.ErrNilArgument, "dst or src is nil")
	}
	if math.IsNaN(threshold) || threshold < 0 {
		return mla.Errorf(op, mla.ErrInvalidDimensions, "threshold %g must be a non-negative number", threshold)
	}
	if err := dst.Resize(src.Size()); err != nil {
		return mla.Wrap(op, err)
	}

	var x float64
	for c := src.Cursor(); !c.AtEnd(); c.Next() {
		x = c.Element()
		if math.Abs(x) <= threshold {
			continue // below the zero-interpretation threshold
		}
		if err := dst.Set(c.Current(), x); err != nil {
			return mla.Wrap(op, err)
		}
	}

	return nil
}
