// Package sv classifies read pairs whose chromosomal anchors disagree with
// the library geometry into structural variant types.
package sv

import (
	"fmt"

	"github.com/grailbio/mobel/anchor"
	"github.com/grailbio/mobel/breakpoint"
	"github.com/grailbio/mobel/config"
	"github.com/grailbio/mobel/samflag"
	"github.com/pkg/errors"
)

// Type is a structural variant class.
type Type uint8

const (
	None Type = iota
	Deletion
	Duplication
	Inversion
	Insertion
	Translocation
)

var typeNames = [...]string{
	None:          "none",
	Deletion:      "deletion",
	Duplication:   "duplication",
	Inversion:     "inversion",
	Insertion:     "insertion",
	Translocation: "translocation",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "invalid"
}

// ErrNoAnchor is returned when a read of the pair has no chromosomal
// anchor to classify.
var ErrNoAnchor = errors.New("sv: read without chromosomal anchor")

// Read is one read of a pair, with its chromosomal alignments.
type Read struct {
	Sequence   string
	ChrAnchors []anchor.ChrAnchor
	Breakpoint breakpoint.BreakPoint
}

// Pair is a read pair considered for structural variant calling.
type Pair struct {
	Read1, Read2 Read
	Tag          Type
}

// Identify classifies the primary anchors of both reads and stores the
// result in p.Tag. It reports whether any predicate matched.
func (p *Pair) Identify(expectedTLen int, opts config.Opts) (bool, error) {
	a1, a2, err := p.anchors()
	if err != nil {
		return false, err
	}
	var matched bool
	p.Tag, matched = Classify(a1, a2, expectedTLen, opts)
	return matched, nil
}

// BinKey returns "low-high" of the binned primary anchor positions.
func (p *Pair) BinKey(binSize int) (string, error) {
	a1, a2, err := p.anchors()
	if err != nil {
		return "", err
	}
	b1, b2 := a1.Bin(binSize), a2.Bin(binSize)
	if b1 > b2 {
		b1, b2 = b2, b1
	}
	return fmt.Sprintf("%d-%d", b1, b2), nil
}

func (p *Pair) anchors() (a1, a2 *anchor.ChrAnchor, err error) {
	if len(p.Read1.ChrAnchors) == 0 {
		return nil, nil, errors.Wrap(ErrNoAnchor, "read1")
	}
	if len(p.Read2.ChrAnchors) == 0 {
		return nil, nil, errors.Wrap(ErrNoAnchor, "read2")
	}
	return &p.Read1.ChrAnchors[0], &p.Read2.ChrAnchors[0], nil
}

// Classify evaluates, in order, the deletion, duplication, inversion,
// insertion and translocation predicates on the two anchors. The
// predicates are not mutually exclusive: the returned type is the last one
// that matched, and the bool reports whether any did.
//
// TODO: report every matching type once the output tables carry a set of
// types per pair.
func Classify(a1, a2 *anchor.ChrAnchor, expectedTLen int, opts config.Opts) (Type, bool) {
	tag, matched := None, false
	for _, c := range []struct {
		t  Type
		ok bool
	}{
		{Deletion, IsDeletion(a1, a2, expectedTLen)},
		{Duplication, IsDuplication(a1, a2)},
		{Inversion, IsInversion(a1, a2)},
		{Insertion, IsInsertion(a1, a2)},
		{Translocation, IsTranslocation(a1, a2, opts.TranslocationDistance)},
	} {
		if c.ok {
			tag, matched = c.t, true
		}
	}
	return tag, matched
}

// IsDeletion reports whether the anchors are at least expectedTLen apart.
func IsDeletion(a1, a2 *anchor.ChrAnchor, expectedTLen int) bool {
	return distance(a1, a2) >= expectedTLen
}

// IsDuplication reports a positive read1 template length with both reads
// on the forward strand.
func IsDuplication(a1, a2 *anchor.ChrAnchor) bool {
	return a1.TemplateLength > 0 && !samflag.IsReverse(a1) && !samflag.IsReverse(a2)
}

// IsInversion reports both reads on the same strand of the same
// chromosome.
func IsInversion(a1, a2 *anchor.ChrAnchor) bool {
	return samflag.IsReverse(a1) == samflag.IsReverse(a2) && a1.Chromosome == a2.Chromosome
}

// IsInsertion reports either read flagged unmapped.
func IsInsertion(a1, a2 *anchor.ChrAnchor) bool {
	return samflag.Has(a1, samflag.Unmapped) || samflag.Has(a2, samflag.Unmapped)
}

// IsTranslocation reports anchors on different chromosomes or more than
// maxDistance apart.
func IsTranslocation(a1, a2 *anchor.ChrAnchor, maxDistance int) bool {
	return distance(a1, a2) > maxDistance || a1.Chromosome != a2.Chromosome
}

func distance(a1, a2 *anchor.ChrAnchor) int {
	d := a1.Position - a2.Position
	if d < 0 {
		return -d
	}
	return d
}
