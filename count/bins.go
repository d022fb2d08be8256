package count

import (
	"strconv"
	"strings"

	"github.com/biogo/store/llrb"
)

// Entry is one counted bin.
type Entry struct {
	Chromosome string
	// Class is the strand class for element insertions or the variant type
	// for structural variants.
	Class string
	// Key is the bin key as stored in Positions; Start is its first
	// coordinate.
	Key   string
	Start int
	Reads []string
	// Threshold is the read count the bin had to reach to be indexed.
	Threshold int
}

// Compare implements llrb.Comparable: by chromosome, start, key, class.
func (e *Entry) Compare(c llrb.Comparable) int {
	o := c.(*Entry)
	if e.Chromosome != o.Chromosome {
		return strings.Compare(e.Chromosome, o.Chromosome)
	}
	if diff := e.Start - o.Start; diff != 0 {
		return diff
	}
	if e.Key != o.Key {
		return strings.Compare(e.Key, o.Key)
	}
	return strings.Compare(e.Class, o.Class)
}

// Bins is an ordered index of counted bins.
type Bins struct {
	tree llrb.Tree
}

// Insert adds the reads of bin key. Reads of an existing entry are
// appended to.
func (b *Bins) Insert(chromosome, class, key string, reads []string, threshold int) {
	e := &Entry{Chromosome: chromosome, Class: class, Key: key, Start: start(key), Threshold: threshold}
	if c := b.tree.Get(e); c != nil {
		e = c.(*Entry)
	} else {
		b.tree.Insert(e)
	}
	e.Reads = append(e.Reads, reads...)
}

// Len returns the number of entries.
func (b *Bins) Len() int { return b.tree.Len() }

// Do calls fn on every entry in ascending order until fn returns true.
func (b *Bins) Do(fn func(*Entry) bool) {
	b.tree.Do(func(c llrb.Comparable) bool {
		return fn(c.(*Entry))
	})
}

// start parses the leading coordinate of a bin key ("1200" or
// "1200-5400"). Malformed keys sort first.
func start(key string) int {
	if i := strings.IndexByte(key, '-'); i > 0 {
		key = key[:i]
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return -1
	}
	return n
}
