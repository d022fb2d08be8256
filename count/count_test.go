package count

import (
	"testing"

	"github.com/grailbio/mobel/anchor"
	"github.com/grailbio/mobel/sv"
	"github.com/grailbio/testutil/expect"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func meAnchors(os ...anchor.Orientation) []anchor.MEAnchor {
	var as []anchor.MEAnchor
	for _, o := range os {
		as = append(as, anchor.MEAnchor{Orientation: o})
	}
	return as
}

func TestStrandCount(t *testing.T) {
	fwd := &anchor.ChrAnchor{Chromosome: "chr1", Position: 2099, Flags: 129}
	rev := &anchor.ChrAnchor{Chromosome: "chr1", Position: 2150, Flags: 145}
	up := meAnchors(anchor.Upstream, anchor.Upstream, anchor.Downstream)
	down := meAnchors(anchor.Downstream)
	tie := meAnchors(anchor.Upstream, anchor.None, anchor.Downstream)

	tests := []struct {
		key  string
		chr  *anchor.ChrAnchor
		me   []anchor.MEAnchor
		want bool
	}{
		{F5, fwd, up, true},
		{F5, fwd, down, false},
		{F5, rev, up, false},
		{F3, rev, down, true},
		{F3, rev, up, false},
		{F3, fwd, down, false},
		{R5, rev, up, true},
		{R5, fwd, up, false},
		{R3, fwd, down, true},
		{R3, rev, down, false},
		// Ties count in both directions.
		{F5, fwd, tie, true},
		{R3, fwd, tie, true},
		{F3, rev, tie, true},
		{R5, rev, tie, true},
		{"X9", fwd, up, false},
	}
	for _, test := range tests {
		counts := Positions{}
		got := StrandCount("r", test.key, test.chr, test.me, counts, 100)
		expect.EQ(t, got, test.want, "%s %d %v", test.key, test.chr.Flags, test.me)
		if test.want {
			expect.EQ(t, counts.Len(), 1)
		} else {
			expect.EQ(t, counts.Len(), 0)
		}
	}

	counts := Positions{}
	StrandCount("a", F5, fwd, up, counts, 100)
	StrandCount("b", F5, fwd, up, counts, 100)
	StrandCount("c", R5, rev, up, counts, 100)
	expect.EQ(t, counts["2000"], []string{"a", "b"})
	expect.EQ(t, counts["2100"], []string{"c"})
	expect.EQ(t, counts.Reads(), 3)
}

func TestStrandKey(t *testing.T) {
	fwd := &anchor.ChrAnchor{Flags: 65}
	rev := &anchor.ChrAnchor{Flags: 81}
	for _, test := range []struct {
		chr  *anchor.ChrAnchor
		o    anchor.Orientation
		want string
		ok   bool
	}{
		{fwd, anchor.Upstream, F5, true},
		{rev, anchor.Downstream, F3, true},
		{rev, anchor.Upstream, R5, true},
		{fwd, anchor.Downstream, R3, true},
		{fwd, anchor.Palindromic, "", false},
		{rev, anchor.None, "", false},
	} {
		got, ok := StrandKey(test.chr, test.o)
		expect.EQ(t, got, test.want)
		expect.EQ(t, ok, test.ok)
	}
}

func TestSVCount(t *testing.T) {
	counts := Positions{}
	p := &sv.Pair{
		Read1: sv.Read{ChrAnchors: []anchor.ChrAnchor{{Chromosome: "chr1", Position: 5432}}},
		Read2: sv.Read{ChrAnchors: []anchor.ChrAnchor{{Chromosome: "chr1", Position: 1234}}},
	}
	expect.NoError(t, SVCount("r1", p, counts, 100))
	expect.NoError(t, SVCount("r2", p, counts, 100))
	expect.EQ(t, counts["1200-5400"], []string{"r1", "r2"})

	err := SVCount("r3", &sv.Pair{}, counts, 100)
	expect.True(t, errors.Is(err, sv.ErrNoAnchor))
}

func TestBins(t *testing.T) {
	var b Bins
	b.Insert("chr2", F5, "300", []string{"a"}, 0)
	b.Insert("chr1", R3, "1000", []string{"b"}, 0)
	b.Insert("chr1", F5, "1000", []string{"c"}, 0)
	b.Insert("chr1", F5, "900", []string{"d"}, 2)
	b.Insert("chr1", F5, "900", []string{"e"}, 2)
	b.Insert("chr1", "deletion", "900-5000", []string{"f"}, 0)
	expect.EQ(t, b.Len(), 5)

	var got []string
	b.Do(func(e *Entry) bool {
		got = append(got, e.Chromosome+":"+e.Key+":"+e.Class)
		return false
	})
	assert.Equal(t, []string{
		"chr1:900:F5",
		"chr1:900-5000:deletion",
		"chr1:1000:F5",
		"chr1:1000:R3",
		"chr2:300:F5",
	}, got)

	var first *Entry
	b.Do(func(e *Entry) bool {
		first = e
		return true
	})
	expect.EQ(t, first.Reads, []string{"d", "e"})
	expect.EQ(t, first.Threshold, 2)
}
