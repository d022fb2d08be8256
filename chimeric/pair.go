package chimeric

import (
	"fmt"

	"github.com/grailbio/mobel/anchor"
)

// ChosenAnchor identifies the read of a pair used as chromosomal anchor.
type ChosenAnchor uint8

const (
	NoAnchor ChosenAnchor = iota
	Read1
	Read2
)

func (c ChosenAnchor) String() string {
	switch c {
	case Read1:
		return "read1"
	case Read2:
		return "read2"
	}
	return "none"
}

// Pair is a read pair with mobile element evidence on at least one read.
type Pair struct {
	Read1, Read2 Read
	Chosen       ChosenAnchor
}

// Resolve tags both reads and decides which one anchors the pair in the
// genome:
//
//   read1 \ read2  Upstream        Downstream      Palindromic  None
//   Upstream       smaller edge    -               -            Read2
//   Downstream     -               larger edge     -            Read2
//   Palindromic    -               -               -            -
//   None           Read1           Read1           -            -
//
// When one read carries the element evidence and its mate none, the mate is
// the chromosomal anchor. Equal edges mean the two reads overlap on the
// element and cannot be told apart, so the pair is left unresolved ("-" is
// NoAnchor).
func (p *Pair) Resolve() ChosenAnchor {
	o1, o2 := p.Read1.Tag(), p.Read2.Tag()
	e1, e2 := p.Read1.Edge(), p.Read2.Edge()
	p.Chosen = resolve(o1, o2, e1, e2)
	return p.Chosen
}

func resolve(o1, o2 anchor.Orientation, e1, e2 int) ChosenAnchor {
	switch {
	case o1 == anchor.Upstream && o2 == anchor.Upstream:
		switch {
		case e1 < e2:
			return Read1
		case e1 > e2:
			return Read2
		}
	case o1 == anchor.Downstream && o2 == anchor.Downstream:
		switch {
		case e1 < e2:
			return Read2
		case e1 > e2:
			return Read1
		}
	case (o1 == anchor.Upstream || o1 == anchor.Downstream) && o2 == anchor.None:
		return Read2
	case o1 == anchor.None && (o2 == anchor.Upstream || o2 == anchor.Downstream):
		return Read1
	}
	return NoAnchor
}

// ChrAnchorRead returns the chosen read. It returns false when the pair is
// unresolved.
func (p *Pair) ChrAnchorRead() (*Read, bool) {
	switch p.Chosen {
	case Read1:
		return &p.Read1, true
	case Read2:
		return &p.Read2, true
	}
	return nil, false
}

// MEAnchors returns the element alignments of both reads, read1 first.
func (p *Pair) MEAnchors() []anchor.MEAnchor {
	all := make([]anchor.MEAnchor, 0, len(p.Read1.MEAnchors)+len(p.Read2.MEAnchors))
	all = append(all, p.Read1.MEAnchors...)
	return append(all, p.Read2.MEAnchors...)
}

// PassesMAPQ reports whether the chosen read has a primary chromosomal
// anchor with mapping quality of at least minMAPQ.
func (p *Pair) PassesMAPQ(minMAPQ int) bool {
	r, ok := p.ChrAnchorRead()
	if !ok {
		return false
	}
	a, ok := r.Primary()
	return ok && a.MAPQ >= minMAPQ
}

func (p *Pair) String() string {
	return fmt.Sprintf("%v\n%v\n", &p.Read1, &p.Read2)
}
