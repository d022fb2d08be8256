package chimeric

import (
	"fmt"

	"github.com/grailbio/mobel/anchor"
	"github.com/grailbio/mobel/breakpoint"
)

// Read is one physical read of a pair, with every locus it aligned to.
type Read struct {
	// Sequence is the read sequence as stored on its primary alignment.
	Sequence   string
	MEAnchors  []anchor.MEAnchor
	ChrAnchors []anchor.ChrAnchor
	// Orientation is the aggregate of the MEAnchors' orientations, set by
	// Tag.
	Orientation anchor.Orientation
	// Quality is the mapping quality of the primary alignment.
	Quality    int
	Breakpoint breakpoint.BreakPoint
}

// Seq implements sequence.Sequenced.
func (r *Read) Seq() string { return r.Sequence }

// Tag sets the read orientation by majority vote of its anchors' upstream
// and downstream tags. A tie between nonzero counts is Palindromic; no
// tagged anchors is None.
func (r *Read) Tag() anchor.Orientation {
	var up, down int
	for i := range r.MEAnchors {
		switch r.MEAnchors[i].Orientation {
		case anchor.Upstream:
			up++
		case anchor.Downstream:
			down++
		}
	}
	switch {
	case up > down:
		r.Orientation = anchor.Upstream
	case down > up:
		r.Orientation = anchor.Downstream
	case up > 0:
		r.Orientation = anchor.Palindromic
	default:
		r.Orientation = anchor.None
	}
	return r.Orientation
}

// Edge returns the extremal element boundary among the anchors that agree
// with the read orientation: the smallest left boundary for Upstream, the
// largest right boundary for Downstream. It is 0 for Palindromic, None, or
// when no anchor agrees.
func (r *Read) Edge() int {
	edge, found := 0, false
	for i := range r.MEAnchors {
		a := &r.MEAnchors[i]
		if a.Orientation != r.Orientation {
			continue
		}
		switch r.Orientation {
		case anchor.Upstream:
			if !found || a.CIGAR.LeftBoundary < edge {
				edge = a.CIGAR.LeftBoundary
			}
		case anchor.Downstream:
			if !found || a.CIGAR.RightBoundary > edge {
				edge = a.CIGAR.RightBoundary
			}
		default:
			return 0
		}
		found = true
	}
	return edge
}

// Primary returns the first chromosomal anchor. The registry keeps the
// primary alignment in that slot.
func (r *Read) Primary() (*anchor.ChrAnchor, bool) {
	if len(r.ChrAnchors) == 0 {
		return nil, false
	}
	return &r.ChrAnchors[0], true
}

func (r *Read) String() string {
	if a, ok := r.Primary(); ok {
		return fmt.Sprintf("Chromosome: %s, Position: %d", a.Chromosome, a.Position)
	}
	return fmt.Sprintf("Chromosome: *, Anchors: %d", len(r.MEAnchors))
}
