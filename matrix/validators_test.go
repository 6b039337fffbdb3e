package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mla"
	"github.com/katalvlaran/mla/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	sq := MustDense(t, 3, 3)
	wide := MustDense(t, 2, 3)

	require.NoError(t, matrix.ValidateNotNil(sq))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), mla.ErrNilArgument)

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(wide), mla.ErrNonSquare)

	require.NoError(t, matrix.ValidateSameShape(sq, sq.Clone()))
	require.ErrorIs(t, matrix.ValidateSameShape(sq, wide), mla.ErrDimensionMismatch)
}

func TestValidatePermutation(t *testing.T) {
	cases := []struct {
		name  string
		order []int
		n     int
		want  error
	}{
		{"identity", []int{0, 1, 2}, 3, nil},
		{"shuffle", []int{2, 0, 1}, 3, nil},
		{"empty", nil, 0, nil},
		{"short", []int{0, 1}, 3, mla.ErrDimensionMismatch},
		{"repeat", []int{0, 1, 1}, 3, mla.ErrInvalidPermutation},
		{"negative", []int{0, -1, 2}, 3, mla.ErrInvalidPermutation},
		{"overflow", []int{0, 1, 3}, 3, mla.ErrInvalidPermutation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidatePermutation(tc.order, tc.n)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}
