// SPDX-License-Identifier: MIT

// Package mmio reads Matrix Market coordinate files into any matrix format.
//
// Supported banner:
//
//	%%MatrixMarket matrix coordinate {real|integer|pattern} {general|symmetric|skew-symmetric}
//
// Tokens are case-insensitive. Lines starting with '%' and blank lines are
// skipped. The size line is "rows cols nnz"; entries are 1-based
// "i j [value]" lines (pattern entries carry no value and read as 1).
//
// The destination first receives Resize(rows, cols), then one Set per entry.
// For symmetric files every off-diagonal (i,j,v) is mirrored to (j,i,v); for
// skew-symmetric ones to (j,i,-v). The storage format never has to know.
//
// Rejected with ErrUnsupported: array storage, complex fields, hermitian
// symmetry. Malformed text is ErrParse with the offending line number.
package mmio

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/mla"
	"github.com/katalvlaran/mla/matrix"
)

const (
	opRead     = "mmio.Read"
	opReadFile = "mmio.ReadFile"

	banner    = "%%matrixmarket"
	maxLineSz = 1 << 20
)

// Field is the value type declared in the banner.
type Field int

const (
	FieldReal Field = iota
	FieldInteger
	FieldPattern
)

var fieldNames = map[string]Field{
	"real":    FieldReal,
	"integer": FieldInteger,
	"pattern": FieldPattern,
}

func (f Field) String() string {
	for name, v := range fieldNames {
		if v == f {
			return name
		}
	}

	return "unknown"
}

// Symmetry is the structure declared in the banner.
type Symmetry int

const (
	General Symmetry = iota
	Symmetric
	SkewSymmetric
)

var symmetryNames = map[string]Symmetry{
	"general":        General,
	"symmetric":      Symmetric,
	"skew-symmetric": SkewSymmetric,
}

func (s Symmetry) String() string {
	for name, v := range symmetryNames {
		if v == s {
			return name
		}
	}

	return "unknown"
}

// Header is the parsed banner plus the size line.
type Header struct {
	Field    Field
	Symmetry Symmetry
	Rows     int
	Cols     int
	NNZ      int // entry lines in the file (before mirroring)
}

func parseErr(line int, format string, args ...any) error {
	return mla.Errorf(opRead, mla.ErrParse, "line %d: "+format, append([]any{line}, args...)...)
}

// parseBanner validates the first line and returns field and symmetry.
func parseBanner(line string) (Field, Symmetry, error) {
	tok := strings.Fields(strings.ToLower(line))
	if len(tok) != 5 || tok[0] != banner {
		return 0, 0, parseErr(1, "banner %q is not '%%%%MatrixMarket matrix <format> <field> <symmetry>'", line)
	}
	if tok[1] != "matrix" {
		return 0, 0, mla.Errorf(opRead, mla.ErrUnsupported, "object %q", tok[1])
	}
	switch tok[2] {
	case "coordinate":
	case "array":
		return 0, 0, mla.Errorf(opRead, mla.ErrUnsupported, "array storage")
	default:
		return 0, 0, parseErr(1, "unknown format %q", tok[2])
	}

	field, ok := fieldNames[tok[3]]
	if !ok {
		if tok[3] == "complex" {
			return 0, 0, mla.Errorf(opRead, mla.ErrUnsupported, "complex field")
		}
		return 0, 0, parseErr(1, "unknown field %q", tok[3])
	}
	sym, ok := symmetryNames[tok[4]]
	if !ok {
		if tok[4] == "hermitian" {
			return 0, 0, mla.Errorf(opRead, mla.ErrUnsupported, "hermitian symmetry")
		}
		return 0, 0, parseErr(1, "unknown symmetry %q", tok[4])
	}

	return field, sym, nil
}

// Read parses a Matrix Market stream into dst.
// MAIN DESCRIPTION:
//   - Banner, then the size line, then exactly NNZ entry lines.
//   - dst is resized to rows×cols before the first entry is stored.
//
// Errors:
//   - ErrNilArgument (dst), ErrUnsupported, ErrParse (bad tokens, indices
//     outside the declared size, entry count different from NNZ), and any
//     error dst.Resize / dst.Set returns (e.g. ErrFixedShape, ErrReadOnlyElement).
//
// Complexity:
//   - O(file size) parsing plus NNZ Set calls on dst.
func Read(r io.Reader, dst matrix.Matrix) (Header, error) {
	var h Header
	if dst == nil {
		return h, mla.Errorf(opRead, mla.ErrNilArgument, "destination matrix is nil")
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSz)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return h, mla.Wrap(opRead, err)
		}
		return h, parseErr(1, "empty input")
	}
	var err error
	if h.Field, h.Symmetry, err = parseBanner(sc.Text()); err != nil {
		return h, err
	}

	var (
		lineNo  = 1
		sized   bool
		entries int
		fields  []string
		i, j    int
		v       float64
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '%' {
			continue
		}
		fields = strings.Fields(line)

		if !sized {
			if h.Rows, h.Cols, h.NNZ, err = parseSize(lineNo, fields); err != nil {
				return h, err
			}
			if err = dst.Resize(h.Rows, h.Cols); err != nil {
				return h, mla.Wrap(opRead, err)
			}
			sized = true
			continue
		}

		if entries == h.NNZ {
			return h, parseErr(lineNo, "more than the declared %d entries", h.NNZ)
		}
		if i, j, v, err = parseEntry(lineNo, fields, h); err != nil {
			return h, err
		}
		if err = dst.Set(i, j, v); err != nil {
			return h, mla.Wrap(opRead, err)
		}
		if i != j {
			switch h.Symmetry {
			case Symmetric:
				err = dst.Set(j, i, v)
			case SkewSymmetric:
				err = dst.Set(j, i, -v)
			}
			if err != nil {
				return h, mla.Wrap(opRead, err)
			}
		}
		entries++
	}
	if err = sc.Err(); err != nil {
		return h, mla.Wrap(opRead, err)
	}
	if !sized {
		return h, parseErr(lineNo, "missing size line")
	}
	if entries != h.NNZ {
		return h, parseErr(lineNo, "declared %d entries, found %d", h.NNZ, entries)
	}

	return h, nil
}

func parseSize(lineNo int, fields []string) (rows, cols, nnz int, err error) {
	if len(fields) != 3 {
		return 0, 0, 0, parseErr(lineNo, "size line needs 'rows cols nnz', got %d fields", len(fields))
	}
	var dims [3]int
	for k, f := range fields {
		if dims[k], err = strconv.Atoi(f); err != nil || dims[k] < 0 {
			return 0, 0, 0, parseErr(lineNo, "size %q is not a non-negative integer", f)
		}
	}

	return dims[0], dims[1], dims[2], nil
}

func parseEntry(lineNo int, fields []string, h Header) (i, j int, v float64, err error) {
	want := 3
	if h.Field == FieldPattern {
		want = 2
	}
	if len(fields) != want {
		return 0, 0, 0, parseErr(lineNo, "%s entry needs %d fields, got %d", h.Field, want, len(fields))
	}
	if i, err = strconv.Atoi(fields[0]); err != nil || i < 1 || i > h.Rows {
		return 0, 0, 0, parseErr(lineNo, "row %q outside [1,%d]", fields[0], h.Rows)
	}
	if j, err = strconv.Atoi(fields[1]); err != nil || j < 1 || j > h.Cols {
		return 0, 0, 0, parseErr(lineNo, "column %q outside [1,%d]", fields[1], h.Cols)
	}

	switch h.Field {
	case FieldPattern:
		v = 1
	case FieldInteger:
		var n int64
		if n, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
			return 0, 0, 0, parseErr(lineNo, "value %q is not an integer", fields[2])
		}
		v = float64(n)
	default:
		if v, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return 0, 0, 0, parseErr(lineNo, "value %q is not a real number", fields[2])
		}
	}

	return i - 1, j - 1, v, nil
}

// ReadBytes parses an in-memory Matrix Market document into dst.
func ReadBytes(data []byte, dst matrix.Matrix) (Header, error) {
	return Read(bytes.NewReader(data), dst)
}

// ReadFile memory-maps path read-only and parses it into dst.
// Errors: as Read, plus the os / mmap error when the file cannot be opened
// or mapped; an empty file is ErrParse.
func ReadFile(path string, dst matrix.Matrix) (Header, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return Header{}, mla.Wrap(opReadFile, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Header{}, mla.Wrap(opReadFile, err)
	}
	if info.Size() == 0 {
		return Header{}, mla.Errorf(opReadFile, mla.ErrParse, "%s: empty file", path)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return Header{}, mla.Wrap(opReadFile, err)
	}
	defer data.Unmap()

	h, err := ReadBytes(data, dst)
	if err != nil {
		return h, mla.Wrap(opReadFile, err)
	}

	return h, nil
}
