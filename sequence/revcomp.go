// Package sequence holds read sequence helpers shared by the anchor and
// chimeric-read records.
package sequence

// revCompTable maps each byte to its complement. A/T and C/G are swapped,
// '!' and '?' are swapped, and every other byte maps to itself, so that
// ReverseComplement is an involution.
var revCompTable = func() (t [256]byte) {
	for i := range t {
		t[i] = byte(i)
	}
	for _, pair := range [...][2]byte{{'A', 'T'}, {'C', 'G'}, {'!', '?'}} {
		t[pair[0]], t[pair[1]] = pair[1], pair[0]
	}
	return
}()

// ReverseComplement returns the reverse complement of s. Bytes other than
// 'A', 'C', 'G', 'T', '!' and '?' are reversed but not complemented.
func ReverseComplement(s string) string {
	n := len(s)
	out := make([]byte, n)
	for idx, invIdx := 0, n-1; idx < n; idx, invIdx = idx+1, invIdx-1 {
		out[invIdx] = revCompTable[s[idx]]
	}
	return string(out)
}

// Sequenced is implemented by records that carry a read sequence.
type Sequenced interface {
	Seq() string
}

// Reverse returns the reverse complement of the record's sequence.
func Reverse(s Sequenced) string {
	return ReverseComplement(s.Seq())
}

// Matches reports whether b is the sequence of s, in either orientation.
// Empty sequences never match.
func Matches(s Sequenced, b string) bool {
	a := s.Seq()
	if a == "" || len(a) != len(b) {
		return false
	}
	return a == b || Reverse(s) == b
}
