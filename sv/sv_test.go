package sv

import (
	"testing"

	"github.com/grailbio/mobel/anchor"
	"github.com/grailbio/mobel/config"
	"github.com/grailbio/testutil/expect"
	"github.com/pkg/errors"
)

func chr(name string, pos, flags, tlen int) anchor.ChrAnchor {
	return anchor.ChrAnchor{Chromosome: name, Position: pos, Flags: flags, TemplateLength: tlen}
}

func TestPredicates(t *testing.T) {
	a, b := chr("chr1", 1000, 0, 0), chr("chr1", 30000, 0, 0)
	expect.True(t, IsDeletion(&a, &b, 500))
	expect.True(t, IsDeletion(&b, &a, 500))
	a, b = chr("chr1", 1900, 0, 0), chr("chr1", 1400, 0, 0)
	expect.True(t, IsDeletion(&a, &b, 500))
	expect.False(t, IsDeletion(&a, &b, 501))

	a, b = chr("chr1", 1000, 65, 300), chr("chr1", 1200, 129, -300)
	expect.True(t, IsDuplication(&a, &b))
	a.TemplateLength = 0
	expect.False(t, IsDuplication(&a, &b))
	a.TemplateLength, b.Flags = 300, 145
	expect.False(t, IsDuplication(&a, &b))

	a, b = chr("chr1", 1000, 83, 0), chr("chr1", 5000, 147, 0)
	expect.True(t, IsInversion(&a, &b))
	b.Chromosome = "chr2"
	expect.False(t, IsInversion(&a, &b))
	b = chr("chr1", 5000, 163, 0)
	expect.False(t, IsInversion(&a, &b))

	a, b = chr("chr1", 1000, 69, 0), chr("chr1", 1000, 137, 0)
	expect.True(t, IsInsertion(&a, &b))
	expect.True(t, IsInsertion(&b, &a))
	a.Flags = 65
	expect.False(t, IsInsertion(&a, &b))

	a, b = chr("chr1", 10, 0, 0), chr("chr7", 809, 0, 0)
	expect.True(t, IsTranslocation(&a, &b, 1000))
	b.Chromosome = "chr1"
	expect.False(t, IsTranslocation(&a, &b, 1000))
	b.Position = 1011
	expect.True(t, IsTranslocation(&a, &b, 1000))
}

func TestClassify(t *testing.T) {
	opts := config.DefaultOpts
	tests := []struct {
		name    string
		a1, a2  anchor.ChrAnchor
		want    Type
		matched bool
	}{
		{"concordant", chr("chr1", 1000, 97, 300), chr("chr1", 1200, 145, -300), None, false},
		{"deletion", chr("chr1", 1000, 97, 900), chr("chr1", 1600, 145, -900), Deletion, true},
		// Deletion, duplication and inversion also hold; the last match wins.
		{"translocation by distance", chr("chr1", 1000, 65, 5000), chr("chr1", 6000, 129, -5000), Translocation, true},
		{"duplication and inversion", chr("chr1", 1000, 65, 200), chr("chr1", 1100, 129, -200), Inversion, true},
		{"insertion", chr("chr1", 1000, 69, 0), chr("chr1", 1000, 137, 0), Insertion, true},
		{"different chromosomes", chr("chr1", 1000, 97, 0), chr("chr5", 1000, 145, 0), Translocation, true},
		{"different chromosomes after deletion", chr("chr1", 1000, 97, 0), chr("chr5", 1800, 145, 0), Translocation, true},
	}
	for _, test := range tests {
		got, matched := Classify(&test.a1, &test.a2, opts.ExpectedTemplateLength, opts)
		expect.EQ(t, got, test.want, test.name)
		expect.EQ(t, matched, test.matched, test.name)

		p := Pair{
			Read1: Read{ChrAnchors: []anchor.ChrAnchor{test.a1}},
			Read2: Read{ChrAnchors: []anchor.ChrAnchor{test.a2}},
		}
		matched, err := p.Identify(opts.ExpectedTemplateLength, opts)
		expect.NoError(t, err)
		expect.EQ(t, p.Tag, test.want, test.name)
		expect.EQ(t, matched, test.matched, test.name)
	}
}

func TestClassifyOpts(t *testing.T) {
	opts := config.DefaultOpts
	opts.TranslocationDistance = 100
	a1, a2 := chr("chr1", 1000, 97, 300), chr("chr1", 1200, 145, -300)
	got, _ := Classify(&a1, &a2, 500, opts)
	expect.EQ(t, got, Translocation)
	got, _ = Classify(&a1, &a2, 150, config.DefaultOpts)
	expect.EQ(t, got, Deletion)
}

func TestIdentifyMissingAnchor(t *testing.T) {
	p := Pair{Read1: Read{ChrAnchors: []anchor.ChrAnchor{chr("chr1", 1, 0, 0)}}}
	_, err := p.Identify(500, config.DefaultOpts)
	expect.True(t, errors.Is(err, ErrNoAnchor))
	_, err = p.BinKey(100)
	expect.True(t, errors.Is(err, ErrNoAnchor))
}

func TestBinKey(t *testing.T) {
	p := Pair{
		Read1: Read{ChrAnchors: []anchor.ChrAnchor{chr("chr1", 5432, 0, 0)}},
		Read2: Read{ChrAnchors: []anchor.ChrAnchor{chr("chr1", 1234, 0, 0)}},
	}
	key, err := p.BinKey(100)
	expect.NoError(t, err)
	expect.EQ(t, key, "1200-5400")
	expect.EQ(t, Translocation.String(), "translocation")
	expect.EQ(t, Type(42).String(), "invalid")
}
