package anchor

import (
	"fmt"

	"github.com/grailbio/mobel/cigar"
)

// ChrAnchor is one alignment of a read to the chromosomal reference.
type ChrAnchor struct {
	CIGAR      cigar.CIGAR
	Flags      int
	Chromosome string
	MAPQ       int
	// Position is the 1-based alignment start.
	Position       int
	TemplateLength int
}

// Flag implements samflag.Flagged.
func (a *ChrAnchor) Flag() int { return a.Flags }

// Pos implements Positioned.
func (a *ChrAnchor) Pos() int { return a.Position }

// Bin returns the start of the binSize-wide bin holding the anchor.
func (a *ChrAnchor) Bin(binSize int) int { return Bin(a, binSize) }

func (a ChrAnchor) String() string {
	return fmt.Sprintf("%s\t%d\t%s\t%d", a.Chromosome, a.Position, a.CIGAR.Signature, a.TemplateLength)
}
