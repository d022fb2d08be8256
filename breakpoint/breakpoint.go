// Package breakpoint derives the junction window between mobile element and
// flanking genome from a read sequence.
package breakpoint

import (
	"fmt"
	"math"

	"github.com/antzucaro/matchr"
)

// Cleave is the number of bases kept past the junction on the element side.
const Cleave = 10

// BreakPoint is a fixed-width window around a putative element/genome
// junction.
type BreakPoint struct {
	Sequence string
	// Coordinate is -offset + 1, where offset is the signed distance of the
	// alignment boundary past the element limit.
	Coordinate float64
}

// WindowError is returned when the window implied by an offset does not
// fit in the read sequence.
type WindowError struct {
	SeqLen     int
	Start, End float64
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("breakpoint: window [%v,%v) outside sequence of length %d", e.Start, e.End, e.SeqLen)
}

// Load computes the breakpoint of sequence for the given offset.
func Load(sequence string, offset float64) (BreakPoint, error) {
	var bp BreakPoint
	if err := bp.Update(sequence, offset); err != nil {
		return BreakPoint{}, err
	}
	return bp, nil
}

// Update recomputes bp in place. An offset <= 0 means the boundary sits at
// or inside the limit and the window is the prefix [0, coordinate+Cleave).
// A positive offset means the alignment overshoots, and the window is the
// suffix starting at len(sequence)-offset-Cleave. On error bp is left
// unchanged.
func (bp *BreakPoint) Update(sequence string, offset float64) error {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return &WindowError{SeqLen: len(sequence), Start: offset, End: offset}
	}
	coordinate := -offset + 1
	n := float64(len(sequence))
	var start, end float64
	if offset <= 0 {
		start, end = 0, coordinate+Cleave
	} else {
		start, end = n-offset-Cleave, n
	}
	if start < 0 || end > n {
		return &WindowError{SeqLen: len(sequence), Start: start, End: end}
	}
	bp.Coordinate = coordinate
	bp.Sequence = sequence[int(start):int(end)]
	return nil
}

// IsZero reports whether no breakpoint has been computed.
func (bp BreakPoint) IsZero() bool {
	return bp.Sequence == "" && bp.Coordinate == 0
}

func (bp BreakPoint) String() string {
	return fmt.Sprintf("%s\t%v", bp.Sequence, bp.Coordinate)
}

// Distance returns the Levenshtein distance between the two windows.
func Distance(a, b BreakPoint) int {
	return matchr.Levenshtein(a.Sequence, b.Sequence)
}

// Cluster groups breakpoints whose windows are within maxDist edits of one
// another, using single linkage. Each group lists indices into bps in
// increasing order; groups are ordered by their smallest index.
func Cluster(bps []BreakPoint, maxDist int) [][]int {
	parent := make([]int, len(bps))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	for i := range bps {
		for j := i + 1; j < len(bps); j++ {
			if Distance(bps[i], bps[j]) > maxDist {
				continue
			}
			ri, rj := find(i), find(j)
			if ri == rj {
				continue
			}
			if ri < rj {
				parent[rj] = ri
			} else {
				parent[ri] = rj
			}
		}
	}
	groupOf := map[int]int{}
	var groups [][]int
	for i := range bps {
		r := find(i)
		g, ok := groupOf[r]
		if !ok {
			g = len(groups)
			groupOf[r] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	return groups
}
