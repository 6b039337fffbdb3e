// SPDX-License-Identifier: MIT

// Package matrix - compressed: the shared core of CRS and CCS.
//
// Representation (major = rows for CRS, columns for CCS):
//   - ptr has length nMajor+1, ptr[0] == 0, non-decreasing, ptr[nMajor] == nnz.
//   - idx[ptr[p]:ptr[p+1]] lists the minor indices of major line p, strictly
//     increasing and inside [0,nMinor).
//   - val[k] is the value of slot k (len(val) == len(idx)).
//
// Mutation model:
//   - find is a binary search inside one major line, O(log line length).
//   - getOrInsert shifts idx/val tails right by one and bumps every downstream
//     ptr entry, O(nnz + nMajor).

package matrix

import (
	"slices"
	"sort"

	"github.com/katalvlaran/mla"
)

type compressed struct {
	nMajor, nMinor int
	ptr            []int
	idx            []int
	val            []float64
}

func newCompressed(nMajor, nMinor int) compressed {
	return compressed{nMajor: nMajor, nMinor: nMinor, ptr: make([]int, nMajor+1)}
}

// line returns the slot range [lo,hi) of major line p.
func (s *compressed) line(p int) (lo, hi int) { return s.ptr[p], s.ptr[p+1] }

// find returns the slot of (p, q), or the insertion slot when absent.
func (s *compressed) find(p, q int) (int, bool) {
	lo, hi := s.line(p)
	k := lo + sort.SearchInts(s.idx[lo:hi], q)

	return k, k < hi && s.idx[k] == q
}

// get returns the stored value at (p, q) or 0.
func (s *compressed) get(p, q int) float64 {
	if k, ok := s.find(p, q); ok {
		return s.val[k]
	}

	return 0
}

// getOrInsert returns the slot of (p, q), inserting a zero slot when absent.
// Assumes (p, q) is in range.
func (s *compressed) getOrInsert(p, q int) int {
	k, ok := s.find(p, q)
	if ok {
		return k
	}
	s.idx = slices.Insert(s.idx, k, q)
	s.val = slices.Insert(s.val, k, 0)
	for t := p + 1; t <= s.nMajor; t++ {
		s.ptr[t]++
	}

	return k
}

// reshape sets the extents and drops every slot, reusing capacity.
func (s *compressed) reshape(nMajor, nMinor int) {
	s.nMajor, s.nMinor = nMajor, nMinor
	if cap(s.ptr) >= nMajor+1 {
		s.ptr = s.ptr[:nMajor+1]
	} else {
		s.ptr = make([]int, nMajor+1)
	}
	s.clearSlots()
}

func (s *compressed) clearSlots() {
	clear(s.ptr)
	s.idx = s.idx[:0]
	s.val = s.val[:0]
}

// eye stores ones at (p, p) for p < min(nMajor, nMinor).
func (s *compressed) eye() {
	s.clearSlots()
	d := min(s.nMajor, s.nMinor)
	for p := 0; p < s.nMajor; p++ {
		if p < d {
			s.idx = append(s.idx, p)
			s.val = append(s.val, 1)
		}
		s.ptr[p+1] = len(s.idx)
	}
}

func (s *compressed) clone() compressed {
	return compressed{
		nMajor: s.nMajor,
		nMinor: s.nMinor,
		ptr:    slices.Clone(s.ptr),
		idx:    slices.Clone(s.idx),
		val:    slices.Clone(s.val),
	}
}

// nextLine returns the first non-empty major line > p, or nMajor.
func (s *compressed) nextLine(p int) int {
	for p++; p < s.nMajor; p++ {
		if s.ptr[p] < s.ptr[p+1] {
			return p
		}
	}

	return s.nMajor
}

// firstMinor returns the smallest minor index stored on line p, or nMinor.
func (s *compressed) firstMinor(p int) int {
	if p < 0 || p >= s.nMajor {
		return s.nMinor
	}
	if lo, hi := s.line(p); lo < hi {
		return s.idx[lo]
	}

	return s.nMinor
}

// firstMajor returns the smallest major line storing minor index q, or nMajor.
// Complexity: O(nMajor · log line length).
func (s *compressed) firstMajor(q int) int {
	if q < 0 || q >= s.nMinor {
		return s.nMajor
	}
	for p := 0; p < s.nMajor; p++ {
		if _, ok := s.find(p, q); ok {
			return p
		}
	}

	return s.nMajor
}

// minLeadingMinor returns the smallest minor index stored anywhere, or nMinor.
// The first slot of each line is its smallest, so O(nMajor).
func (s *compressed) minLeadingMinor() int {
	best := s.nMinor
	for p := 0; p < s.nMajor; p++ {
		if lo, hi := s.line(p); lo < hi && s.idx[lo] < best {
			best = s.idx[lo]
		}
	}

	return best
}

// permuteLines exchanges major lines a and b by rebuilding the arrays.
// Complexity: O(nnz + nMajor).
func (s *compressed) permuteLines(a, b int) {
	if a == b {
		return
	}
	ptr := make([]int, s.nMajor+1)
	idx := make([]int, 0, len(s.idx))
	val := make([]float64, 0, len(s.val))
	var lo, hi int
	for p := 0; p < s.nMajor; p++ {
		lo, hi = s.line(swapLabel(p, a, b))
		idx = append(idx, s.idx[lo:hi]...)
		val = append(val, s.val[lo:hi]...)
		ptr[p+1] = len(idx)
	}
	s.ptr, s.idx, s.val = ptr, idx, val
}

// permuteMinor exchanges minor indices a and b inside every major line,
// restoring the increasing order of each touched line.
// Complexity: O(nnz) plus a short insertion pass per touched line.
func (s *compressed) permuteMinor(a, b int) {
	if a == b {
		return
	}
	var lo, hi, k int
	for p := 0; p < s.nMajor; p++ {
		lo, hi = s.line(p)
		touched := false
		for k = lo; k < hi; k++ {
			if s.idx[k] == a || s.idx[k] == b {
				s.idx[k] = swapLabel(s.idx[k], a, b)
				touched = true
			}
		}
		if touched {
			sortLine(s.idx[lo:hi], s.val[lo:hi])
		}
	}
}

// sortLine orders one line by index (insertion sort; lines are nearly sorted).
func sortLine(idx []int, val []float64) {
	var i, j int
	for i = 1; i < len(idx); i++ {
		for j = i; j > 0 && idx[j-1] > idx[j]; j-- {
			idx[j-1], idx[j] = idx[j], idx[j-1]
			val[j-1], val[j] = val[j], val[j-1]
		}
	}
}

// validate checks every structural invariant listed in the file header.
// Complexity: O(nMajor + nnz).
func (s *compressed) validate(op string) error {
	if len(s.ptr) != s.nMajor+1 {
		return mla.Errorf(op, mla.ErrCorruptStructure, "len(ptr)=%d != %d", len(s.ptr), s.nMajor+1)
	}
	if s.ptr[0] != 0 {
		return mla.Errorf(op, mla.ErrCorruptStructure, "ptr[0]=%d != 0", s.ptr[0])
	}
	if len(s.idx) != len(s.val) || s.ptr[s.nMajor] != len(s.idx) {
		return mla.Errorf(op, mla.ErrCorruptStructure, "ptr[last]=%d, len(idx)=%d, len(val)=%d",
			s.ptr[s.nMajor], len(s.idx), len(s.val))
	}
	var p, lo, hi, k int
	for p = 0; p < s.nMajor; p++ {
		if s.ptr[p] > s.ptr[p+1] {
			return mla.Errorf(op, mla.ErrCorruptStructure, "ptr decreases at %d", p)
		}
	}
	for p = 0; p < s.nMajor; p++ {
		lo, hi = s.line(p)
		for k = lo; k < hi; k++ {
			if s.idx[k] < 0 || s.idx[k] >= s.nMinor {
				return mla.Errorf(op, mla.ErrCorruptStructure, "index %d outside [0,%d) on line %d", s.idx[k], s.nMinor, p)
			}
			if k > lo && s.idx[k] <= s.idx[k-1] {
				return mla.Errorf(op, mla.ErrCorruptStructure, "indices not strictly increasing on line %d", p)
			}
		}
	}

	return nil
}
