// Package samflag decodes the 12-bit SAM alignment flag.
//
// Bits are addressed by their 1-based position, matching the way the
// alignment format documents them:
//
//   1  read paired            7  first in pair
//   2  proper pair            8  second in pair
//   3  read unmapped          9  not primary
//   4  mate unmapped          10 fails QC
//   5  read reverse strand    11 duplicate
//   6  mate reverse strand    12 supplementary
package samflag

import (
	"github.com/grailbio/hts/sam"
	"github.com/pkg/errors"
)

// Bit is a 1-based flag bit position.
type Bit int

const (
	Paired Bit = iota + 1
	ProperPair
	Unmapped
	MateUnmapped
	Reverse
	MateReverse
	Read1
	Read2
	Secondary
	QCFail
	Duplicate
	Supplementary
)

// ErrInvalidBitPosition is returned for bit positions outside [1,12].
var ErrInvalidBitPosition = errors.New("samflag: bit position outside [1,12]")

// maxPrimary is the largest flag value without the not-primary,
// fails-QC, duplicate or supplementary bits.
const maxPrimary = 255

// Valid reports whether b is in [1,12].
func (b Bit) Valid() bool {
	return b >= Paired && b <= Supplementary
}

// Mask returns the flag value with only bit b set.
func (b Bit) Mask() int {
	return 1 << uint(b-1)
}

// Interpret reports whether bit p is set in flag.
func Interpret(flag int, p Bit) (bool, error) {
	if !p.Valid() {
		return false, errors.Wrapf(ErrInvalidBitPosition, "bit %d", int(p))
	}
	return flag&p.Mask() != 0, nil
}

// MustInterpret is Interpret for bit positions known to be valid, such as
// the named constants in this package. It panics on an invalid position.
func MustInterpret(flag int, p Bit) bool {
	set, err := Interpret(flag, p)
	if err != nil {
		panic(err)
	}
	return set
}

// IsPrimary reports whether flag describes a primary, QC-passing,
// non-duplicate, non-supplementary alignment.
func IsPrimary(flag int) bool {
	return flag >= 0 && flag <= maxPrimary
}

// Flagged is implemented by records that carry an alignment flag.
type Flagged interface {
	Flag() int
}

// Has reports whether bit p is set on the record's flag. p must be one of
// the named constants.
func Has(f Flagged, p Bit) bool {
	return MustInterpret(f.Flag(), p)
}

// IsReverse reports whether the record is on the reverse strand.
func IsReverse(f Flagged) bool {
	return Has(f, Reverse)
}

// FromSam converts hts flags to a plain integer flag. Bits above
// position 12 are dropped.
func FromSam(f sam.Flags) int {
	return int(f) & (1<<Supplementary - 1)
}
