package anchor

import (
	"fmt"

	"github.com/grailbio/mobel/breakpoint"
	"github.com/grailbio/mobel/cigar"
	"github.com/grailbio/mobel/config"
	"github.com/grailbio/mobel/samflag"
)

// MEAnchor is one alignment of a read to a mobile element reference. A read
// that maps to several element loci owns one MEAnchor per locus.
type MEAnchor struct {
	CIGAR cigar.CIGAR
	Flags int
	// ElementID is the reference name of the element, e.g. "HERVK-LTR5".
	ElementID   string
	Orientation Orientation
	// Position is the 1-based alignment start on the element.
	Position    int
	ElementSize int
	Breakpoint  breakpoint.BreakPoint
}

// NewMEAnchor returns an untagged anchor.
func NewMEAnchor(c cigar.CIGAR, flags int, elementID string, position, elementSize int) MEAnchor {
	return MEAnchor{
		CIGAR:       c,
		Flags:       flags,
		ElementID:   elementID,
		Position:    position,
		ElementSize: elementSize,
	}
}

// Flag implements samflag.Flagged.
func (a *MEAnchor) Flag() int { return a.Flags }

// Pos implements Positioned.
func (a *MEAnchor) Pos() int { return a.Position }

// Tag classifies the alignment against the element edges, stores the result
// in a.Orientation and returns it. The first matching rule wins:
//
//   reverse, left boundary within AnchorLimit of the start      -> Upstream
//   forward, right boundary (nonzero) within AnchorLimit        -> Upstream
//   forward, right boundary within MELimit of the end           -> Downstream
//   reverse, left boundary within AnchorLimit of the end        -> Downstream
//
// Anything else is None.
func (a *MEAnchor) Tag(opts config.Opts) Orientation {
	a.Orientation = tag(a.CIGAR.LeftBoundary, a.CIGAR.RightBoundary, a.ElementSize, samflag.IsReverse(a), opts)
	return a.Orientation
}

func tag(left, right, size int, reverse bool, opts config.Opts) Orientation {
	switch {
	case left <= opts.AnchorLimit && reverse:
		return Upstream
	case right != 0 && right <= opts.AnchorLimit && !reverse:
		return Upstream
	case size-right <= opts.MELimit && size != 0 && !reverse:
		return Downstream
	case size-left <= opts.AnchorLimit && reverse:
		return Downstream
	}
	return None
}

// LoadBreakpoint computes the junction window of seq for a tagged anchor
// whose alignment overhangs the element edge: before position 1 for
// Upstream, past ElementSize for Downstream. Other anchors keep an empty
// breakpoint. Errors are *breakpoint.WindowError.
func (a *MEAnchor) LoadBreakpoint(seq string) error {
	var offset float64
	switch a.Orientation {
	case Upstream:
		if a.CIGAR.LeftBoundary > 0 {
			return nil
		}
		offset = float64(a.CIGAR.LeftBoundary)
	case Downstream:
		if a.CIGAR.RightBoundary <= a.ElementSize {
			return nil
		}
		offset = float64(a.CIGAR.RightBoundary - a.ElementSize)
	default:
		return nil
	}
	return a.Breakpoint.Update(seq, offset)
}

func (a MEAnchor) String() string {
	return fmt.Sprintf("%s\t%d\t%s\t%s", a.ElementID, a.Position, a.CIGAR.Signature, a.Orientation)
}
