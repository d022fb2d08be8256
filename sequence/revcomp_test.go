package sequence

import (
	"math/rand"
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		seq, want string
	}{
		{"AAAAAAA", "TTTTTTT"},
		{"MACTHAA", "TTHAGTM"},
		{"CAAGAAC", "GTTCTTG"},
		{"GATTACA", "TGTAATC"},
		{"A!C", "G?T"},
		{"", ""},
	}
	for _, test := range tests {
		expect.EQ(t, ReverseComplement(test.seq), test.want)
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	const alphabet = "ATCG!"
	r := rand.New(rand.NewSource(0))
	for i := 0; i < 200; i++ {
		b := make([]byte, r.Intn(150))
		for j := range b {
			b[j] = alphabet[r.Intn(len(alphabet))]
		}
		s := string(b)
		expect.EQ(t, ReverseComplement(ReverseComplement(s)), s)
	}
}

type read string

func (r read) Seq() string { return string(r) }

func TestMatches(t *testing.T) {
	expect.EQ(t, Reverse(read("GATTACA")), "TGTAATC")
	expect.True(t, Matches(read("GATTACA"), "GATTACA"))
	expect.True(t, Matches(read("GATTACA"), "TGTAATC"))
	expect.False(t, Matches(read("GATTACA"), "GATTACC"))
	expect.False(t, Matches(read(""), ""))
}
