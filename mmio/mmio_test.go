package mmio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mla"
	"github.com/katalvlaran/mla/matrix"
	"github.com/katalvlaran/mla/mmio"
)

func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func read(t *testing.T, doc string, dst matrix.Matrix) mmio.Header {
	t.Helper()
	h, err := mmio.Read(strings.NewReader(doc), dst)
	require.NoError(t, err)

	return h
}

func TestRead_General(t *testing.T) {
	doc := "%%MatrixMarket matrix coordinate real general\n" +
		"% comment line\n" +
		"8 9 2\n" +
		"1 3 4.0\n" +
		"5 6 7.0\n"

	for _, f := range []matrix.Format{matrix.FormatDense, matrix.FormatDOK, matrix.FormatCOO, matrix.FormatCRS, matrix.FormatCCS} {
		t.Run(f.String(), func(t *testing.T) {
			m, err := matrix.New(f, 1, 1)
			require.NoError(t, err)

			h := read(t, doc, m)
			require.Equal(t, mmio.Header{Field: mmio.FieldReal, Symmetry: mmio.General, Rows: 8, Cols: 9, NNZ: 2}, h)
			require.Equal(t, 8, m.Rows())
			require.Equal(t, 9, m.Cols())
			require.Equal(t, 4.0, at(t, m, 0, 2))
			require.Equal(t, 7.0, at(t, m, 4, 5))
			require.Equal(t, 0.0, at(t, m, 2, 0))
			require.Equal(t, 0.0, at(t, m, 5, 4))
		})
	}
}

func TestRead_SymmetricMirrors(t *testing.T) {
	doc := "%%MatrixMarket matrix coordinate real symmetric   \n" +
		"9 9 3\n" +
		"1 3 4.0\n" +
		"5 6 7.0\n" +
		"2 2 1.5\n"

	m, err := matrix.NewDOK(1, 1)
	require.NoError(t, err)
	h := read(t, doc, m)
	require.Equal(t, mmio.Symmetric, h.Symmetry)
	require.Equal(t, 5, m.NNZ())
	require.Equal(t, 4.0, at(t, m, 0, 2))
	require.Equal(t, 4.0, at(t, m, 2, 0))
	require.Equal(t, 7.0, at(t, m, 4, 5))
	require.Equal(t, 7.0, at(t, m, 5, 4))
	require.Equal(t, 1.5, at(t, m, 1, 1))
}

func TestRead_SkewSymmetricNegatesMirror(t *testing.T) {
	doc := "%%MatrixMarket matrix coordinate real skew-symmetric\n" +
		"9 9 2\n" +
		"1 3 4.0\n" +
		"5 6 7.0\n"

	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	h := read(t, doc, m)
	require.Equal(t, mmio.SkewSymmetric, h.Symmetry)
	require.Equal(t, 4.0, at(t, m, 0, 2))
	require.Equal(t, -4.0, at(t, m, 2, 0))
	require.Equal(t, 7.0, at(t, m, 4, 5))
	require.Equal(t, -7.0, at(t, m, 5, 4))
}

func TestRead_PatternAndInteger(t *testing.T) {
	m, err := matrix.NewCRS(1, 1)
	require.NoError(t, err)
	h := read(t, "%%MatrixMarket MATRIX Coordinate Pattern General\n3 3 2\n1 1\n3 2\n", m)
	require.Equal(t, mmio.FieldPattern, h.Field)
	require.Equal(t, 1.0, at(t, m, 0, 0))
	require.Equal(t, 1.0, at(t, m, 2, 1))
	require.Equal(t, 2, m.NNZ())

	d, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	h = read(t, "%%MatrixMarket matrix coordinate integer general\n2 2 1\n2 1 -12\n", d)
	require.Equal(t, mmio.FieldInteger, h.Field)
	require.Equal(t, -12.0, at(t, d, 1, 0))
}

func TestRead_Exponents(t *testing.T) {
	m, err := matrix.NewDOK(1, 1)
	require.NoError(t, err)
	read(t, "%%MatrixMarket matrix coordinate real general\n\n2 2 1\n\n  2 2   1.234e-56  \n", m)
	require.Equal(t, 1.234e-56, at(t, m, 1, 1))
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", mla.ErrParse},
		{"no banner", "3 3 1\n1 1 1\n", mla.ErrParse},
		{"array", "%%MatrixMarket matrix array real general\n2 2\n", mla.ErrUnsupported},
		{"complex", "%%MatrixMarket matrix coordinate complex general\n", mla.ErrUnsupported},
		{"hermitian", "%%MatrixMarket matrix coordinate real hermitian\n", mla.ErrUnsupported},
		{"vector object", "%%MatrixMarket vector coordinate real general\n", mla.ErrUnsupported},
		{"unknown field", "%%MatrixMarket matrix coordinate quaternion general\n", mla.ErrParse},
		{"missing size", "%%MatrixMarket matrix coordinate real general\n% only comments\n", mla.ErrParse},
		{"short size", "%%MatrixMarket matrix coordinate real general\n3 3\n", mla.ErrParse},
		{"negative size", "%%MatrixMarket matrix coordinate real general\n-3 3 0\n", mla.ErrParse},
		{"row out of range", "%%MatrixMarket matrix coordinate real general\n2 2 1\n3 1 1.0\n", mla.ErrParse},
		{"zero column", "%%MatrixMarket matrix coordinate real general\n2 2 1\n1 0 1.0\n", mla.ErrParse},
		{"bad value", "%%MatrixMarket matrix coordinate real general\n2 2 1\n1 1 x\n", mla.ErrParse},
		{"fractional integer", "%%MatrixMarket matrix coordinate integer general\n2 2 1\n1 1 1.5\n", mla.ErrParse},
		{"missing value", "%%MatrixMarket matrix coordinate real general\n2 2 1\n1 1\n", mla.ErrParse},
		{"too few entries", "%%MatrixMarket matrix coordinate real general\n2 2 2\n1 1 1.0\n", mla.ErrParse},
		{"too many entries", "%%MatrixMarket matrix coordinate real general\n2 2 1\n1 1 1.0\n2 2 2.0\n", mla.ErrParse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDOK(1, 1)
			require.NoError(t, err)
			_, err = mmio.Read(strings.NewReader(tc.doc), m)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := mmio.Read(strings.NewReader("%%MatrixMarket matrix coordinate real general\n1 1 0\n"), nil)
	require.ErrorIs(t, err, mla.ErrNilArgument)
}

func TestRead_DestinationErrorsPropagate(t *testing.T) {
	d, err := matrix.NewDiagonal(1, 1)
	require.NoError(t, err)
	_, err = mmio.Read(strings.NewReader("%%MatrixMarket matrix coordinate real general\n2 2 1\n1 2 3.0\n"), d)
	require.ErrorIs(t, err, mla.ErrReadOnlyElement)
}

func TestReadFile_Fixture(t *testing.T) {
	want := map[[2]int]float64{
		{0, 0}: 1, {1, 1}: 10.5, {2, 2}: 0.015, {0, 3}: 6,
		{3, 1}: 250.5, {3, 3}: -280, {3, 4}: 33.32, {4, 4}: 12,
	}

	for _, f := range []matrix.Format{matrix.FormatDOK, matrix.FormatCCS} {
		t.Run(f.String(), func(t *testing.T) {
			m, err := matrix.New(f, 1, 1)
			require.NoError(t, err)
			h, err := mmio.ReadFile(filepath.Join("testdata", "test01.mtx"), m)
			require.NoError(t, err)
			require.Equal(t, 5, h.Rows)
			require.Equal(t, 5, h.Cols)
			require.Equal(t, 8, h.NNZ)

			for i := 0; i < 5; i++ {
				for j := 0; j < 5; j++ {
					require.InDelta(t, want[[2]int{i, j}], at(t, m, i, j), 1e-12, "(%d,%d)", i, j)
				}
			}
		})
	}
}

func TestReadFile_Errors(t *testing.T) {
	dir := t.TempDir()
	m, err := matrix.NewDOK(1, 1)
	require.NoError(t, err)

	_, err = mmio.ReadFile(filepath.Join(dir, "missing.mtx"), m)
	require.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.mtx")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	_, err = mmio.ReadFile(empty, m)
	require.ErrorIs(t, err, mla.ErrParse)

	bad := filepath.Join(dir, "bad.mtx")
	require.NoError(t, os.WriteFile(bad, []byte("%%MatrixMarket matrix coordinate real general\n2 2 1\n9 9 1\n"), 0o600))
	_, err = mmio.ReadFile(bad, m)
	require.ErrorIs(t, err, mla.ErrParse)
}
