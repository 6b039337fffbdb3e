package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mla"
	"github.com/katalvlaran/mla/matrix"
	"github.com/stretchr/testify/require"
)

func TestFormats_Declaration(t *testing.T) {
	for _, f := range matrix.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			m := MustNew(t, f, 3, 4)
			require.Equal(t, 3, m.Rows())
			require.Equal(t, 4, m.Cols())
			require.False(t, m.IsSquare())

			_, err := matrix.New(f, -1, 2)
			require.ErrorIs(t, err, mla.ErrInvalidDimensions)
		})
	}
}

func TestFormats_ClearingAndAssigning(t *testing.T) {
	for _, f := range matrix.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			m := MustNew(t, f, 3, 3)
			m.SetZero()
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					require.Equal(t, 0.0, MustAt(t, m, i, j))
				}
			}

			MustSet(t, m, 1, 1, 1)
			require.Equal(t, 1.0, MustAt(t, m, 1, 1))
			require.Equal(t, 0.0, MustAt(t, m, 0, 1))
			require.Equal(t, 0.0, MustAt(t, m, 2, 1))

			m.SetZero()
			require.Equal(t, 0.0, MustAt(t, m, 1, 1))
		})
	}
}

// TestFormats_SetEyeRectangular checks that every format agrees on the
// rectangular identity, both wide and tall.
func TestFormats_SetEyeRectangular(t *testing.T) {
	shapes := []struct{ r, c int }{{3, 5}, {5, 3}, {4, 4}}
	for _, sh := range shapes {
		want := make([][]float64, sh.r)
		for i := range want {
			want[i] = make([]float64, sh.c)
			if i < sh.c {
				want[i][i] = 1
			}
		}
		for _, f := range matrix.Formats() {
			m := MustNew(t, f, sh.r, sh.c)
			m.SetEye()
			CompareExact(t, want, m)
		}
	}
}

func TestFormats_IncrementInsertsSlot(t *testing.T) {
	for _, f := range generalFormats() {
		t.Run(f.String(), func(t *testing.T) {
			m := MustNew(t, f, 3, 3)
			inc := func(x float64) float64 { return x + 1 }
			require.NoError(t, m.Update(2, 1, inc))
			require.NoError(t, m.Update(0, 2, inc))
			require.NoError(t, m.Update(2, 1, inc))
			CompareExact(t, [][]float64{{0, 0, 1}, {0, 0, 0}, {0, 2, 0}}, m)
		})
	}
}

func TestFormats_OutOfRange(t *testing.T) {
	for _, f := range matrix.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			m := MustNew(t, f, 2, 3)
			_, err := m.At(2, 0)
			require.ErrorIs(t, err, mla.ErrOutOfRange)
			_, err = m.At(0, 3)
			require.ErrorIs(t, err, mla.ErrOutOfRange)
			require.ErrorIs(t, m.Set(-1, 0, 1), mla.ErrOutOfRange)
			require.ErrorIs(t, m.Update(0, -1, func(x float64) float64 { return x }), mla.ErrOutOfRange)
		})
	}
}

func TestFormats_ResizeIsDestructive(t *testing.T) {
	for _, f := range matrix.Formats() {
		if f == matrix.FormatStaticDense {
			continue // fixed shape: covered by TestStaticDense_FixedShape
		}
		t.Run(f.String(), func(t *testing.T) {
			m := MustNew(t, f, 2, 2)
			MustSet(t, m, 1, 1, 7)
			require.NoError(t, m.Resize(4, 3))
			require.Equal(t, 4, m.Rows())
			require.Equal(t, 3, m.Cols())
			for i := 0; i < 4; i++ {
				for j := 0; j < 3; j++ {
					require.Equal(t, 0.0, MustAt(t, m, i, j))
				}
			}
			MustSet(t, m, 2, 2, 1)
			require.ErrorIs(t, m.Resize(-1, 0), mla.ErrInvalidDimensions)
		})
	}
}

func TestFormats_CloneIndependence(t *testing.T) {
	for _, f := range generalFormats() {
		t.Run(f.String(), func(t *testing.T) {
			m := MustNew(t, f, 4, 5)
			fill(t, m, pattern4x5)
			cp := m.Clone()
			require.IsType(t, m, cp)
			CompareExact(t, pattern4x5, cp)

			MustSet(t, cp, 0, 1, 99)
			MustSet(t, cp, 2, 2, 99)
			CompareExact(t, pattern4x5, m)
		})
	}
}

// TestFormats_AtNeverInserts guards the read-only lookup contract.
func TestFormats_AtNeverInserts(t *testing.T) {
	for _, f := range []matrix.Format{matrix.FormatCOO, matrix.FormatDOK, matrix.FormatCRS, matrix.FormatCCS} {
		t.Run(f.String(), func(t *testing.T) {
			m := MustNew(t, f, 3, 3).(matrix.Sparse)
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					_ = MustAt(t, m, i, j)
				}
			}
			require.Equal(t, 0, m.NNZ())

			MustSet(t, m, 1, 2, 0)
			require.Equal(t, 1, m.NNZ(), "explicit zero keeps a slot")
			m.SetZero()
			require.Equal(t, 0, m.NNZ())
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range matrix.Formats() {
		got, err := matrix.ParseFormat(f.String())
		require.NoError(t, err)
		require.Equal(t, f, got)
	}
	got, err := matrix.ParseFormat(" CRS ")
	require.NoError(t, err)
	require.Equal(t, matrix.FormatCRS, got)

	_, err = matrix.ParseFormat("csr5")
	require.ErrorIs(t, err, mla.ErrUnsupported)
	_, err = matrix.New(matrix.Format(42), 1, 1)
	require.ErrorIs(t, err, mla.ErrUnsupported)
}

func TestAllClose(t *testing.T) {
	a := MustNew(t, matrix.FormatCRS, 4, 5)
	b := MustNew(t, matrix.FormatDense, 4, 5)
	fill(t, a, pattern4x5)
	fill(t, b, pattern4x5)

	ok, err := matrix.AllClose(a, b)
	require.NoError(t, err)
	require.True(t, ok)

	MustSet(t, b, 0, 0, 1e-6)
	ok, err = matrix.AllClose(a, b)
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = matrix.AllClose(a, b, matrix.WithEpsilon(1e-5))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, MustDense(t, 5, 4))
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(nil, b)
	require.ErrorIs(t, err, mla.ErrNilArgument)
}
