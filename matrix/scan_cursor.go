// SPDX-License-Identifier: MIT

// Package matrix - scanCursor: Cursor over an unordered slot set (COO, DOK).
//
// Non-null jumps scan every stored slot, so they cost O(nnz); Element is a
// format lookup. Good enough for the unordered formats, which are assembly
// formats: heavy traversal happens after Convert to CRS/CCS.

package matrix

// scanCursor relies on two format hooks:
//   - each visits every stored slot in any order (stop when f returns false);
//   - lookup returns the stored value at (i, j) or 0.
type scanCursor struct {
	grid
	each   func(f func(i, j int, v float64) bool)
	lookup func(i, j int) float64
}

// Reset moves to the first stored slot in row-major order, or to (0,0) when
// nothing is stored.
func (c *scanCursor) Reset() {
	first := c.nr
	c.each(func(i, _ int, _ float64) bool {
		if i < first {
			first = i
		}
		return true
	})
	c.row, c.col = 0, 0
	if first < c.nr {
		c.row = first
		c.StartCurrentRowNN()
	}
}

func (c *scanCursor) Element() float64 {
	if !c.inside() {
		return 0
	}

	return c.lookup(c.row, c.col)
}

func (c *scanCursor) StartCurrentRowNN() {
	best := c.nc
	row := c.row
	c.each(func(i, j int, _ float64) bool {
		if i == row && j < best {
			best = j
		}
		return true
	})
	c.col = best
}

func (c *scanCursor) StartCurrentColumnNN() {
	best := c.nr
	col := c.col
	c.each(func(i, j int, _ float64) bool {
		if j == col && i < best {
			best = i
		}
		return true
	})
	c.row = best
}

func (c *scanCursor) StartNextRowNN()    { c.row++; c.StartCurrentRowNN() }
func (c *scanCursor) StartNextColumnNN() { c.col++; c.StartCurrentColumnNN() }
