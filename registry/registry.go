// Package registry collects the alignments of read pairs by read id: first
// the mobile element alignments that make a pair chimeric, then the
// chromosomal alignments of the pairs already known.
package registry

import (
	"github.com/grailbio/base/log"
	"github.com/grailbio/mobel/anchor"
	"github.com/grailbio/mobel/chimeric"
	"github.com/grailbio/mobel/config"
	"github.com/grailbio/mobel/record"
	"github.com/grailbio/mobel/samflag"
	"github.com/grailbio/mobel/sequence"
)

// Registry maps read ids to chimeric pairs. It is not safe for concurrent
// use.
type Registry struct {
	pairs map[string]*chimeric.Pair
	ids   []string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{pairs: make(map[string]*chimeric.Pair)}
}

// Len returns the number of registered pairs.
func (r *Registry) Len() int { return len(r.ids) }

// IDs returns the registered read ids in insertion order.
func (r *Registry) IDs() []string { return r.ids }

// Get returns the pair registered under id.
func (r *Registry) Get(id string) (*chimeric.Pair, bool) {
	p, ok := r.pairs[id]
	return p, ok
}

// read returns the slot of the pair that v belongs to.
func read(p *chimeric.Pair, flag int) *chimeric.Read {
	if samflag.MustInterpret(flag, samflag.Read2) {
		return &p.Read2
	}
	return &p.Read1
}

// AddME records a mobile element alignment and reports whether it was
// kept. Primary alignments also set the read sequence and quality. The new
// anchor is tagged against the element edges, and its breakpoint is loaded
// when a sequence is known. Unmapped records add no anchor and never
// register a pair; they only fill in the sequence of a registered read.
func (r *Registry) AddME(v record.Values, elementSize int, opts config.Opts) bool {
	p, ok := r.pairs[v.ReadID]
	if v.IsUnmapped() {
		if ok && samflag.IsPrimary(v.Flag) && hasSequence(v.Sequence) {
			rd := read(p, v.Flag)
			rd.Sequence = v.Sequence
			rd.Quality = v.MAPQ
		}
		return false
	}
	if !ok {
		p = &chimeric.Pair{}
		r.pairs[v.ReadID] = p
		r.ids = append(r.ids, v.ReadID)
	}
	rd := read(p, v.Flag)
	if samflag.IsPrimary(v.Flag) && hasSequence(v.Sequence) {
		rd.Sequence = v.Sequence
		rd.Quality = v.MAPQ
	}
	a := anchor.NewMEAnchor(v.CIGAR, v.Flag, v.Scaffold, v.Position, elementSize)
	a.Tag(opts)
	seq := v.Sequence
	if !hasSequence(seq) {
		seq = rd.Sequence
	}
	if hasSequence(seq) {
		if err := a.LoadBreakpoint(seq); err != nil {
			log.Debug.Printf("%s: %s: %v", v.ReadID, v.Scaffold, err)
		}
	}
	rd.MEAnchors = append(rd.MEAnchors, a)
	return true
}

// AddChromosomal records a chromosomal alignment of a read already
// registered by AddME. The alignment is kept only when its sequence is the
// read sequence or its reverse complement. A read whose sequence is still
// unknown (a mate without element alignments) takes it from its primary
// chromosomal alignment. The primary alignment is kept first, ahead of
// secondary alignments seen before it. It reports whether the alignment was
// kept.
func (r *Registry) AddChromosomal(v record.Values) bool {
	p, ok := r.pairs[v.ReadID]
	if !ok || v.IsUnmapped() {
		return false
	}
	rd := read(p, v.Flag)
	if !hasSequence(rd.Sequence) && samflag.IsPrimary(v.Flag) && hasSequence(v.Sequence) {
		rd.Sequence = v.Sequence
		rd.Quality = v.MAPQ
	}
	if !sequence.Matches(rd, v.Sequence) {
		return false
	}
	a := v.ChrAnchor()
	if samflag.IsPrimary(v.Flag) {
		rd.ChrAnchors = append([]anchor.ChrAnchor{a}, rd.ChrAnchors...)
	} else {
		rd.ChrAnchors = append(rd.ChrAnchors, a)
	}
	return true
}

// Resolve chooses the chromosomal anchor read of every pair and returns
// the number of pairs that resolved.
func (r *Registry) Resolve() int {
	n := 0
	for _, id := range r.ids {
		if r.pairs[id].Resolve() != chimeric.NoAnchor {
			n++
		}
	}
	return n
}

func hasSequence(s string) bool {
	return s != "" && s != "*"
}
