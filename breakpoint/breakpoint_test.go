package breakpoint

import (
	"errors"
	"math"
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		seq    string
		offset float64
		want   BreakPoint
	}{
		{"B1234567890OOOOO", 0, BreakPoint{"B1234567890", 1}},
		{"OOOOO0987654321B", 1, BreakPoint{"0987654321B", 0}},
		{"MMMMMMMMM0987654321B1234567890OOOOO", -19, BreakPoint{"MMMMMMMMM0987654321B1234567890", 20}},
		{"OOOOO0987654321B1234567890MMMMMMMMM", 20, BreakPoint{"0987654321B1234567890MMMMMMMMM", -19}},
	}
	for _, test := range tests {
		got, err := Load(test.seq, test.offset)
		expect.NoError(t, err)
		expect.EQ(t, got, test.want)
	}

	// The window never covers the whole read.
	got, err := Load("MRRRRRRRRRROOOOO", 0)
	expect.NoError(t, err)
	assert.NotEqual(t, BreakPoint{"MRRRRRRRRRROOOOO", 1}, got)
}

func TestLoadWindowError(t *testing.T) {
	tests := []struct {
		seq    string
		offset float64
	}{
		{"SHORT", 0},
		{"B1234567890OOOOO", -10},
		{"OOOOO0987654321B", 7},
		{"", 1},
		{"B1234567890OOOOO", math.NaN()},
		{"B1234567890OOOOO", math.Inf(-1)},
	}
	for _, test := range tests {
		_, err := Load(test.seq, test.offset)
		var werr *WindowError
		expect.True(t, errors.As(err, &werr), "%q %v", test.seq, test.offset)
		expect.EQ(t, werr.SeqLen, len(test.seq))
	}

	// Update leaves the breakpoint untouched on error.
	bp := BreakPoint{"KEEP", 3}
	expect.True(t, bp.Update("SHORT", 0) != nil)
	expect.EQ(t, bp, BreakPoint{"KEEP", 3})
}

func TestDistanceAndCluster(t *testing.T) {
	a := BreakPoint{Sequence: "GATTACAGATTACA"}
	b := BreakPoint{Sequence: "GATTACAGATTACC"}
	c := BreakPoint{Sequence: "CCCCCCCCCCCCCC"}
	d := BreakPoint{Sequence: "GATTACAGATTTCC"}
	expect.EQ(t, Distance(a, a), 0)
	expect.EQ(t, Distance(a, b), 1)

	// d joins a through b (single linkage).
	assert.Equal(t, [][]int{{0, 1, 3}, {2}}, Cluster([]BreakPoint{a, b, c, d}, 1))
	assert.Equal(t, [][]int{{0}, {1}, {2}, {3}}, Cluster([]BreakPoint{a, b, c, d}, 0))
	assert.Nil(t, Cluster(nil, 1))
}

func TestString(t *testing.T) {
	expect.EQ(t, BreakPoint{"GATTACA", -19}.String(), "GATTACA\t-19")
	expect.True(t, BreakPoint{}.IsZero())
}
