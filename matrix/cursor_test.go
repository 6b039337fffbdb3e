package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mla/matrix"
	"github.com/stretchr/testify/require"
)

// cursorFormats are the formats exercised by the boundary tests.
func cursorFormats() []matrix.Format { return matrix.Formats() }

func TestCursor_IncrementAndReset(t *testing.T) {
	for _, f := range cursorFormats() {
		t.Run(f.String(), func(t *testing.T) {
			m := MustNew(t, f, 3, 3)
			c := m.Cursor()

			require.Equal(t, 0, c.CurrentRow())
			c.IncrementRow()
			require.Equal(t, 1, c.CurrentRow())
			require.Equal(t, 0, c.CurrentColumn())
			c.IncrementColumn()
			require.Equal(t, 1, c.CurrentColumn())

			c.Reset()
			require.Equal(t, 0, c.CurrentRow())
			require.Equal(t, 0, c.CurrentColumn())
		})
	}
}

func TestCursor_Boundaries(t *testing.T) {
	for _, f := range cursorFormats() {
		t.Run(f.String(), func(t *testing.T) {
			m := MustNew(t, f, 3, 3)

			c := m.Cursor()
			require.True(t, c.AtBeginningOfColumn())
			require.True(t, c.AtBeginningOfRow())

			c.IncrementColumn()
			c.IncrementColumn()
			require.False(t, c.AtEndOfColumns())
			c.IncrementColumn()
			require.True(t, c.AtEndOfColumns())

			c = m.Cursor()
			c.IncrementRow()
			c.IncrementRow()
			require.False(t, c.AtEndOfRows())
			c.IncrementRow()
			require.True(t, c.AtEndOfRows())
		})
	}
}

func diag123(t *testing.T, f matrix.Format) matrix.Matrix {
	t.Helper()
	m := MustNew(t, f, 3, 3)
	MustSet(t, m, 0, 0, 1)
	MustSet(t, m, 1, 1, 2)
	MustSet(t, m, 2, 2, 3)

	return m
}

func TestCursor_MovingReadsElements(t *testing.T) {
	for _, f := range cursorFormats() {
		t.Run(f.String(), func(t *testing.T) {
			c := diag123(t, f).Cursor()
			c.Reset()
			require.Equal(t, 1.0, c.Element())
			c.IncrementRow()
			require.Equal(t, 0.0, c.Element())
			c.IncrementColumn()
			require.Equal(t, 2.0, c.Element())
			c.IncrementRow()
			require.Equal(t, 0.0, c.Element())
			c.IncrementColumn()
			require.Equal(t, 3.0, c.Element())
		})
	}
}

func TestCursor_EndOfCurrentAxis(t *testing.T) {
	for _, f := range cursorFormats() {
		t.Run(f.String(), func(t *testing.T) {
			c := diag123(t, f).Cursor()
			c.Reset()
			for n := 0; n < 2; n++ {
				c.IncrementRow()
				c.IncrementColumn()
				require.False(t, c.AtEndOfCurrentColumn())
				require.False(t, c.AtEndOfCurrentRow())
			}
			c.IncrementRow()
			c.IncrementColumn()
			require.True(t, c.AtEndOfCurrentColumn())
			require.True(t, c.AtEndOfCurrentRow())
		})
	}
}

func TestCursor_StartNext(t *testing.T) {
	for _, f := range cursorFormats() {
		t.Run(f.String(), func(t *testing.T) {
			c := diag123(t, f).Cursor()
			c.Reset()
			c.StartNextColumn()
			require.Equal(t, 1, c.CurrentColumn())
			require.Equal(t, 0, c.CurrentRow())

			c.Reset()
			c.StartNextRow()
			require.Equal(t, 0, c.CurrentColumn())
			require.Equal(t, 1, c.CurrentRow())
		})
	}
}

// TestCursor_NonNullJumps checks the NN moves on a pattern with an empty row
// and an empty column.
func TestCursor_NonNullJumps(t *testing.T) {
	for _, f := range generalFormats() {
		t.Run(f.String(), func(t *testing.T) {
			m := MustNew(t, f, 4, 5)
			fill(t, m, pattern4x5)
			c := m.Cursor()
			c.Reset()

			dense := f == matrix.FormatDense || f == matrix.FormatStaticDense
			if dense {
				require.Equal(t, [2]int{0, 0}, [2]int{c.CurrentRow(), c.CurrentColumn()})
				return
			}
			require.Equal(t, [2]int{0, 1}, [2]int{c.CurrentRow(), c.CurrentColumn()})

			c.StartNextRowNN()
			require.Equal(t, [2]int{1, 0}, [2]int{c.CurrentRow(), c.CurrentColumn()})
			c.StartNextRowNN() // row 2 is empty
			require.Equal(t, 2, c.CurrentRow())
			require.True(t, c.AtEndOfCurrentRow())
			c.StartNextRowNN()
			require.Equal(t, [2]int{3, 1}, [2]int{c.CurrentRow(), c.CurrentColumn()})

			c.StartNextColumnNN() // column 2: first stored row is 3
			require.Equal(t, [2]int{3, 2}, [2]int{c.CurrentRow(), c.CurrentColumn()})
			c.StartNextColumnNN() // column 3 is empty
			require.True(t, c.AtEndOfCurrentColumn())
			c.StartNextColumnNN()
			require.Equal(t, [2]int{0, 4}, [2]int{c.CurrentRow(), c.CurrentColumn()})
			c.StartCurrentRow()
			require.Equal(t, 0, c.CurrentColumn())
			require.Equal(t, 0, c.CurrentRow())
		})
	}
}

// TestCursor_TraversalVisitsEveryStoredElement checks that the row-major
// pattern reaches every nonzero exactly once, in increasing (row, column) order.
func TestCursor_TraversalVisitsEveryStoredElement(t *testing.T) {
	for _, f := range generalFormats() {
		t.Run(f.String(), func(t *testing.T) {
			m := MustNew(t, f, 4, 5)
			fill(t, m, pattern4x5)

			seen := map[[2]int]float64{}
			last := [2]int{-1, -1}
			matrix.Walk(m.Cursor(), func(i, j int, v float64) bool {
				pos := [2]int{i, j}
				require.True(t, i > last[0] || (i == last[0] && j > last[1]), "order broken at %v", pos)
				last = pos
				if v != 0 {
					_, dup := seen[pos]
					require.False(t, dup)
					seen[pos] = v
				}
				return true
			})

			want := map[[2]int]float64{}
			for i := range pattern4x5 {
				for j, v := range pattern4x5[i] {
					if v != 0 {
						want[[2]int{i, j}] = v
					}
				}
			}
			require.Equal(t, want, seen)
		})
	}
}

func TestCursor_DiagonalTraversal(t *testing.T) {
	m, err := matrix.NewDiagonal(3, 4)
	require.NoError(t, err)
	m.SetEye()
	MustSet(t, m, 2, 2, 5)

	var diag []float64
	matrix.Walk(m.Cursor(), func(i, j int, v float64) bool {
		if i == j {
			diag = append(diag, v)
		}
		return true
	})
	require.Equal(t, []float64{1, 1, 5}, diag)
}

func TestCursor_WalkStopsEarly(t *testing.T) {
	m := MustDense(t, 3, 3)
	n := 0
	matrix.Walk(m.Cursor(), func(int, int, float64) bool {
		n++
		return n < 4
	})
	require.Equal(t, 4, n)
}

// TestRowCursor_VisitsRowsInOrder covers Dense, StaticDense, Diagonal and CRS.
func TestRowCursor_VisitsRowsInOrder(t *testing.T) {
	for _, f := range []matrix.Format{matrix.FormatDense, matrix.FormatStaticDense, matrix.FormatDiagonal, matrix.FormatCRS} {
		t.Run(f.String(), func(t *testing.T) {
			m := diag123(t, f).(matrix.RowOriented)
			rc := m.RowCursor()

			got := map[[2]int]float64{}
			for rc.HasNextNonNullRow() {
				rc.StartNextNonNullRow()
				prev := -1
				for rc.HasNextNonNullRowElement() {
					rc.NextNonNullRowElement()
					require.Greater(t, rc.CurrentColumn(), prev)
					prev = rc.CurrentColumn()
					if v := rc.Element(); v != 0 {
						got[[2]int{rc.CurrentRow(), rc.CurrentColumn()}] = v
					}
				}
			}
			require.Equal(t, map[[2]int]float64{{0, 0}: 1, {1, 1}: 2, {2, 2}: 3}, got)
		})
	}
}

func TestRowCursor_SetElementInPlace(t *testing.T) {
	m, err := matrix.NewCRS(3, 3)
	require.NoError(t, err)
	MustSet(t, m, 0, 2, 1)
	MustSet(t, m, 2, 0, 2)

	rc := m.RowCursor()
	for rc.HasNextNonNullRow() {
		rc.StartNextNonNullRow()
		for rc.HasNextNonNullRowElement() {
			rc.NextNonNullRowElement()
			require.NoError(t, rc.SetElement(rc.Element()*10))
		}
	}
	CompareExact(t, [][]float64{{0, 0, 10}, {0, 0, 0}, {20, 0, 0}}, m)
	require.Equal(t, 2, m.NNZ())
}
