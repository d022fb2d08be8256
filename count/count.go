// Package count bins anchored reads along the chromosomes, per strand
// class for mobile element insertions and per bin pair for structural
// variants.
package count

import (
	"fmt"

	"github.com/grailbio/mobel/anchor"
	"github.com/grailbio/mobel/samflag"
	"github.com/grailbio/mobel/sv"
)

// Strand classes of an anchored read. The letter is the strand of the
// chromosomal anchor (Forward, Reverse); the digit the element end the mate
// reaches into (5' is upstream, 3' downstream).
const (
	F5 = "F5"
	F3 = "F3"
	R5 = "R5"
	R3 = "R3"
)

// StrandKeys lists the strand classes in output order.
var StrandKeys = []string{F5, F3, R5, R3}

// Positions maps a bin key to the ids of the reads counted in it.
type Positions map[string][]string

// Add counts readID in bin key.
func (p Positions) Add(key, readID string) {
	p[key] = append(p[key], readID)
}

// Len returns the number of nonempty bins.
func (p Positions) Len() int { return len(p) }

// Reads returns the number of reads counted over all bins.
func (p Positions) Reads() int {
	n := 0
	for _, ids := range p {
		n += len(ids)
	}
	return n
}

// StrandKey returns the strand class of a chromosomal anchor whose mate
// has the given element orientation. Palindromic and None have no class.
func StrandKey(chr *anchor.ChrAnchor, o anchor.Orientation) (string, bool) {
	reverse := samflag.IsReverse(chr)
	switch {
	case o == anchor.Upstream && !reverse:
		return F5, true
	case o == anchor.Downstream && reverse:
		return F3, true
	case o == anchor.Upstream && reverse:
		return R5, true
	case o == anchor.Downstream && !reverse:
		return R3, true
	}
	return "", false
}

// StrandCount counts readID into counts under the bin of chr when the
// anchor strand and the majority orientation of the element anchors agree
// with key:
//
//   F5  forward, upstream >= downstream
//   F3  reverse, upstream <= downstream
//   R5  reverse, upstream >= downstream
//   R3  forward, upstream <= downstream
//
// It reports whether the read was counted.
func StrandCount(readID, key string, chr *anchor.ChrAnchor, me []anchor.MEAnchor, counts Positions, binSize int) bool {
	var up, down int
	for i := range me {
		switch me[i].Orientation {
		case anchor.Upstream:
			up++
		case anchor.Downstream:
			down++
		}
	}
	reverse := samflag.IsReverse(chr)
	var ok bool
	switch key {
	case F5:
		ok = !reverse && up >= down
	case F3:
		ok = reverse && up <= down
	case R5:
		ok = reverse && up >= down
	case R3:
		ok = !reverse && up <= down
	}
	if ok {
		counts.Add(fmt.Sprint(chr.Bin(binSize)), readID)
	}
	return ok
}

// SVCount counts readID under the "low-high" bin pair of the pair's
// primary anchors.
func SVCount(readID string, p *sv.Pair, counts Positions, binSize int) error {
	key, err := p.BinKey(binSize)
	if err != nil {
		return err
	}
	counts.Add(key, readID)
	return nil
}
