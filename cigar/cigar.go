// Package cigar interprets alignment CIGAR strings into clip, match,
// insertion and deletion extents, and derives the genomic boundaries
// covered by the read including its clipped bases.
package cigar

import (
	"strconv"
	"strings"

	"github.com/grailbio/hts/sam"
	"github.com/grailbio/mobel/parse"
)

// Unmapped is the CIGAR signature of a record without an alignment.
const Unmapped = "*"

// CIGAR is an interpreted alignment operation string. A CIGAR is built once
// by Parse or FromSam and is not modified afterwards.
type CIGAR struct {
	// Signature is the operation string the record was built from.
	Signature string
	// LeftClip and RightClip are the leading and trailing soft or hard clip
	// lengths. Consecutive clips on the same side (e.g. "5H10S") add up.
	LeftClip, RightClip int
	// Align holds the lengths of the M operations, in order.
	Align []int
	// Insertion and Deletion hold the I and D lengths, in order.
	Insertion []int
	Deletion  []int
	// LeftBoundary is the 1-based coordinate of the first read base,
	// clipped bases included. RightBoundary is the coordinate of the last
	// one, inclusive:
	//
	//   RightBoundary = LeftBoundary + LeftClip + TotalAligned() + RightClip - 1
	LeftBoundary, RightBoundary int
}

// Parse interprets a CIGAR string for an alignment starting at the 1-based
// position pos. The string "*" yields an unmapped CIGAR (Align == [0], all
// clips and boundaries zero) regardless of pos.
//
// Operators other than H, S, M, I and D are skipped along with their
// lengths. A length that is not a number is reported as a *parse.Error.
func Parse(s string, pos int) (CIGAR, error) {
	if s == Unmapped || s == "" {
		return unmapped(s), nil
	}
	var b builder
	j := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			continue
		}
		n, err := parse.Int("cigar:"+string(c), s[j:i])
		if err != nil {
			return CIGAR{}, err
		}
		b.add(c, n)
		j = i + 1
	}
	if j != len(s) {
		// Trailing length without an operator.
		return CIGAR{}, &parse.Error{Field: "cigar", Value: s}
	}
	return b.finish(s, pos), nil
}

// FromSam interprets an hts CIGAR for an alignment starting at the 1-based
// position pos. An empty CIGAR is treated as "*".
func FromSam(c sam.Cigar, pos int) CIGAR {
	if len(c) == 0 {
		return unmapped(Unmapped)
	}
	var b builder
	for _, co := range c {
		b.add(co.Type().String()[0], co.Len())
	}
	return b.finish(c.String(), pos)
}

func unmapped(signature string) CIGAR {
	if signature == "" {
		signature = Unmapped
	}
	return CIGAR{Signature: signature, Align: []int{0}}
}

// IsUnmapped reports whether the CIGAR was built from "*".
func (c CIGAR) IsUnmapped() bool {
	return c.Signature == Unmapped
}

// TotalAligned returns the summed lengths of all M, I and D operations.
func (c CIGAR) TotalAligned() int {
	return sum(c.Align) + sum(c.Insertion) + sum(c.Deletion)
}

// String returns the signature followed by both boundaries, tab separated.
func (c CIGAR) String() string {
	var sb strings.Builder
	sb.WriteString(c.Signature)
	sb.WriteByte('\t')
	sb.WriteString(strconv.Itoa(c.LeftBoundary))
	sb.WriteByte('\t')
	sb.WriteString(strconv.Itoa(c.RightBoundary))
	return sb.String()
}

type builder struct {
	c CIGAR
}

func (b *builder) add(op byte, n int) {
	switch op {
	case 'H', 'S':
		if len(b.c.Align) == 0 {
			b.c.LeftClip += n
		} else {
			b.c.RightClip += n
		}
	case 'M':
		b.c.Align = append(b.c.Align, n)
	case 'I':
		b.c.Insertion = append(b.c.Insertion, n)
	case 'D':
		b.c.Deletion = append(b.c.Deletion, n)
	}
}

func (b *builder) finish(signature string, pos int) CIGAR {
	c := b.c
	c.Signature = signature
	c.LeftBoundary = pos - c.LeftClip
	c.RightBoundary = c.LeftBoundary + c.LeftClip + c.TotalAligned() + c.RightClip - 1
	return c
}

func sum(v []int) int {
	s := 0
	for _, x := range v {
		s += x
	}
	return s
}
