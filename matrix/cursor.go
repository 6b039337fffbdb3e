// SPDX-License-Identifier: MIT

// Package matrix - shared cursor position bookkeeping.
//
// grid implements the format-independent half of Cursor (position reads,
// boundary tests, plain increments). Concrete cursors embed it and add Reset,
// Element and the non-null jumps. The composed StartNext*NN moves are declared
// on each concrete cursor so they dispatch to that format's NN jump.

package matrix

// grid is a (row, col) position inside an nr×nc shape captured at cursor
// creation; a Resize of the bound matrix invalidates it.
type grid struct {
	row, col int
	nr, nc   int
}

func newGrid(nr, nc int) grid { return grid{nr: nr, nc: nc} }

func (g *grid) CurrentRow() int    { return g.row }
func (g *grid) CurrentColumn() int { return g.col }

func (g *grid) AtBeginningOfRow() bool    { return g.col == 0 }
func (g *grid) AtBeginningOfColumn() bool { return g.row == 0 }

func (g *grid) AtEndOfCurrentRow() bool    { return !(g.col < g.nc) }
func (g *grid) AtEndOfCurrentColumn() bool { return !(g.row < g.nr) }
func (g *grid) AtEndOfRows() bool          { return !(g.row < g.nr) }
func (g *grid) AtEndOfColumns() bool       { return !(g.col < g.nc) }

func (g *grid) StartCurrentRow()    { g.col = 0 }
func (g *grid) StartCurrentColumn() { g.row = 0 }

func (g *grid) StartNextRow()    { g.row++; g.col = 0 }
func (g *grid) StartNextColumn() { g.col++; g.row = 0 }

func (g *grid) IncrementRow()    { g.row++ }
func (g *grid) IncrementColumn() { g.col++ }

// inside reports whether the position addresses a valid element.
func (g *grid) inside() bool {
	return g.row >= 0 && g.row < g.nr && g.col >= 0 && g.col < g.nc
}

// Walk visits every position produced by the row-major traversal pattern of c
// and calls f(i, j, v); it stops early when f returns false.
// Formats with structural zeros inside a row report them with v == 0.
//
// Complexity: O(visited positions · cost(Element)).
func Walk(c Cursor, f func(i, j int, v float64) bool) {
	for c.Reset(); !c.AtEndOfRows(); c.StartNextRowNN() {
		for ; !c.AtEndOfCurrentRow(); c.IncrementColumn() {
			if !f(c.CurrentRow(), c.CurrentColumn(), c.Element()) {
				return
			}
		}
	}
}
