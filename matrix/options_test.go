package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mla/matrix"
	"github.com/stretchr/testify/require"
)

func TestWithEpsilon_PanicsOnNonsense(t *testing.T) {
	ExpectPanic(t, func() { matrix.WithEpsilon(-1) })
	ExpectPanic(t, func() { matrix.WithEpsilon(math.NaN()) })
	ExpectPanic(t, func() { matrix.WithEpsilon(math.Inf(1)) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}

func TestWithZeroThreshold_PanicsOnNonsense(t *testing.T) {
	ExpectPanic(t, func() { matrix.WithZeroThreshold(-1e-9) })
	ExpectPanic(t, func() { matrix.WithZeroThreshold(math.NaN()) })
	require.NotPanics(t, func() { matrix.WithZeroThreshold(1e-12) })
}
