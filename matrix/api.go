// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Name every storage format with a Format tag so configuration and tests
//     can pick formats by value (New, ParseFormat).
//   - Thin, intention-revealing helpers (NewIdentity, AllClose) that delegate
//     to the canonical implementations.

package matrix

import (
	"math"
	"strings"

	"github.com/katalvlaran/mla"
)

// Format tags a storage policy.
type Format int

const (
	FormatDense Format = iota
	FormatStaticDense
	FormatDiagonal
	FormatCOO
	FormatDOK
	FormatCRS
	FormatCCS
)

var formatNames = [...]string{
	FormatDense:       "dense",
	FormatStaticDense: "static",
	FormatDiagonal:    "diagonal",
	FormatCOO:         "coo",
	FormatDOK:         "dok",
	FormatCRS:         "crs",
	FormatCCS:         "ccs",
}

// Formats lists every format tag in declaration order.
func Formats() []Format {
	return []Format{FormatDense, FormatStaticDense, FormatDiagonal, FormatCOO, FormatDOK, FormatCRS, FormatCCS}
}

// String returns the lower-case configuration name ("crs", "dense", ...).
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}

	return formatNames[f]
}

// ParseFormat maps a configuration name (case-insensitive) to its Format.
// Errors: mla.ErrUnsupported for an unknown name.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}

	return 0, mla.Errorf("matrix.ParseFormat", mla.ErrUnsupported, "unknown format %q", name)
}

// New allocates an empty rows×cols matrix of the given format.
// Errors: mla.ErrInvalidDimensions, mla.ErrUnsupported (unknown tag).
func New(f Format, rows, cols int) (Matrix, error) {
	switch f {
	case FormatDense:
		return NewDense(rows, cols)
	case FormatStaticDense:
		return NewStaticDense(rows, cols)
	case FormatDiagonal:
		return NewDiagonal(rows, cols)
	case FormatCOO:
		return NewCOO(rows, cols)
	case FormatDOK:
		return NewDOK(rows, cols)
	case FormatCRS:
		return NewCRS(rows, cols)
	case FormatCCS:
		return NewCCS(rows, cols)
	}

	return nil, mla.Errorf("matrix.New", mla.ErrUnsupported, "format tag %d", int(f))
}

// NewIdentity returns I_n as *Dense.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	I.SetEye()

	return I, nil
}

// AllClose reports whether a and b have the same shape and every pair of
// elements differs by at most eps (WithEpsilon, default DefaultEpsilon).
// Formats may differ; comparison goes through At.
// Errors: mla.ErrNilArgument.
// Complexity: O(r*c · cost(At)).
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	if a == nil || b == nil {
		return false, mla.Errorf("matrix.AllClose", mla.ErrNilArgument, "operand is nil")
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}
	o := gatherOptions(opts...)
	var i, j int
	var x, y float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if x, err = a.At(i, j); err != nil {
				return false, err
			}
			if y, err = b.At(i, j); err != nil {
				return false, err
			}
			if math.Abs(x-y) > o.eps {
				return false, nil
			}
		}
	}

	return true, nil
}
