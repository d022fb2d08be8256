package samflag

import (
	"testing"

	"github.com/grailbio/hts/sam"
	"github.com/grailbio/testutil/expect"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		flag int
		bit  Bit
		want bool
	}{
		{177, Paired, true},
		{177, ProperPair, false},
		{2165, Unmapped, true},
		{133, Read1, false},
		{157, Reverse, true},
		{16, Reverse, true},
		{0, Reverse, false},
		{2048, Supplementary, true},
		{4095, Supplementary, true},
		{1024, Duplicate, true},
	}
	for _, test := range tests {
		got, err := Interpret(test.flag, test.bit)
		expect.NoError(t, err)
		expect.EQ(t, got, test.want, "flag %d bit %d", test.flag, test.bit)
	}
}

func TestInterpretInvalidBit(t *testing.T) {
	for _, p := range []Bit{0, -1, 13, 64} {
		_, err := Interpret(177, p)
		expect.True(t, errors.Is(err, ErrInvalidBitPosition))
		expect.EQ(t, errors.Cause(err), ErrInvalidBitPosition)
	}
	assert.Panics(t, func() { MustInterpret(177, 13) })
}

type flagged int

func (f flagged) Flag() int { return int(f) }

func TestHas(t *testing.T) {
	expect.True(t, Has(flagged(83), Read1))
	expect.True(t, IsReverse(flagged(83)))
	expect.False(t, IsReverse(flagged(163)))
	expect.True(t, Has(flagged(163), Read2))
}

func TestIsPrimary(t *testing.T) {
	expect.True(t, IsPrimary(0))
	expect.True(t, IsPrimary(255))
	expect.False(t, IsPrimary(256))
	expect.False(t, IsPrimary(2129))
}

func TestSam(t *testing.T) {
	expect.EQ(t, Reverse.Mask(), int(sam.Reverse))
	expect.EQ(t, Read2.Mask(), int(sam.Read2))
	expect.EQ(t, Unmapped.Mask(), int(sam.Unmapped))
	expect.EQ(t, FromSam(sam.Paired|sam.MateReverse|sam.Read2), 161)
	expect.EQ(t, FromSam(sam.Flags(1<<12)|sam.Supplementary|sam.Paired), 2049)
}
