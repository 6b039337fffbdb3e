// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mla"
	"github.com/katalvlaran/mla/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions
// and accepts empty extents.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, mla.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, mla.ErrInvalidDimensions)

	m, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 3, m.Cols())
}

func TestNewDenseFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, mla.ErrDimensionMismatch)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, mla.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, mla.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), mla.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), mla.ErrOutOfRange)
}

func TestDense_GetRowAndColumn(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		require.NoError(t, err)
		require.Equal(t, m.Cols(), row.Size())
		for j := 0; j < m.Cols(); j++ {
			got, err := row.At(j)
			require.NoError(t, err)
			require.Equal(t, MustAt(t, m, i, j), got)
		}
	}
	col, err := m.Column(2)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 6}, col.RawData())

	_, err = m.Row(2)
	require.ErrorIs(t, err, mla.ErrOutOfRange)
	_, err = m.Column(-1)
	require.ErrorIs(t, err, mla.ErrOutOfRange)
}

func TestDense_Permute(t *testing.T) {
	m, err := matrix.NewDenseFrom(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)

	require.NoError(t, m.PermuteRows(0, 2))
	CompareExact(t, [][]float64{{7, 8, 9}, {4, 5, 6}, {1, 2, 3}}, m)

	require.NoError(t, m.PermuteColumns(0, 1))
	CompareExact(t, [][]float64{{8, 7, 9}, {5, 4, 6}, {2, 1, 3}}, m)

	require.ErrorIs(t, m.PermuteRows(0, 3), mla.ErrOutOfRange)
	require.ErrorIs(t, m.PermuteColumns(-1, 0), mla.ErrOutOfRange)
}

func TestDense_SymmetricReorder(t *testing.T) {
	m, err := matrix.NewDenseFrom(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)

	require.NoError(t, m.SymmetricReorder([]int{2, 0, 1}))
	// (p,q) holds old (order[p], order[q]).
	CompareExact(t, [][]float64{{9, 7, 8}, {3, 1, 2}, {6, 4, 5}}, m)

	require.ErrorIs(t, m.SymmetricReorder([]int{0, 0, 1}), mla.ErrInvalidPermutation)
	require.ErrorIs(t, m.SymmetricReorder([]int{0, 1}), mla.ErrDimensionMismatch)
	require.ErrorIs(t, MustDense(t, 2, 3).SymmetricReorder([]int{0, 1}), mla.ErrNonSquare)
}

func TestDense_ResizeReusesBuffer(t *testing.T) {
	m := MustDense(t, 3, 3)
	MustSet(t, m, 2, 2, 5)
	require.NoError(t, m.Resize(2, 4))
	CompareExact(t, [][]float64{{0, 0, 0, 0}, {0, 0, 0, 0}}, m)
	require.Len(t, m.RawData(), 8)
}

func TestDense_String(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4.5})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

func TestStaticDense_FixedShape(t *testing.T) {
	m, err := matrix.NewStaticDense(2, 2)
	require.NoError(t, err)
	MustSet(t, m, 1, 0, 3)

	require.ErrorIs(t, m.Resize(3, 2), mla.ErrFixedShape)
	require.Equal(t, 3.0, MustAt(t, m, 1, 0), "failed resize must leave contents intact")

	require.NoError(t, m.Resize(2, 2))
	require.Equal(t, 0.0, MustAt(t, m, 1, 0))
}

func TestDiagonal_OffDiagonalIsReadOnly(t *testing.T) {
	m, err := matrix.NewDiagonal(3, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 1, 4))
	require.ErrorIs(t, m.Set(0, 1, 1), mla.ErrReadOnlyElement)
	require.ErrorIs(t, m.Set(0, 1, 0), mla.ErrReadOnlyElement)
	require.ErrorIs(t, m.Update(2, 0, func(x float64) float64 { return x }), mla.ErrReadOnlyElement)
	require.Equal(t, 0.0, MustAt(t, m, 0, 1))
	require.Equal(t, 4.0, MustAt(t, m, 1, 1))
	require.Equal(t, 3, m.NNZ())
}
