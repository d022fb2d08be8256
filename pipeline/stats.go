package pipeline

import "fmt"

// Stats summarizes a pipeline run.
type Stats struct {
	// Records is the # of alignment records read, over all inputs.
	Records int
	// MEAnchors is the # of element alignments kept.
	MEAnchors int
	// UnknownElements is the # of element alignments to references missing
	// from the library.
	UnknownElements int
	// ChrAnchors is the # of chromosomal alignments kept.
	ChrAnchors int
	// Pairs is the # of read pairs with element evidence.
	Pairs int
	// Resolved is the # of pairs with a chosen chromosomal anchor.
	Resolved int
	// LowMAPQ is the # of resolved pairs dropped by the MAPQ filter.
	LowMAPQ int
	// Counted is the # of strand class counts over all bins.
	Counted int
	// Bins is the # of bins written.
	Bins int
	// SVPairs is the # of read pairs considered for structural variants,
	// and SVTypes[t] the # of pairs classified as sv.Type t.
	SVPairs int
	SVTypes [6]int
}

// Merge adds the field values of the two Stats objects and creates new Stats.
func (s Stats) Merge(o Stats) Stats {
	s.Records += o.Records
	s.MEAnchors += o.MEAnchors
	s.UnknownElements += o.UnknownElements
	s.ChrAnchors += o.ChrAnchors
	s.Pairs += o.Pairs
	s.Resolved += o.Resolved
	s.LowMAPQ += o.LowMAPQ
	s.Counted += o.Counted
	s.Bins += o.Bins
	s.SVPairs += o.SVPairs
	for i, n := range o.SVTypes {
		s.SVTypes[i] += n
	}
	return s
}

func (s Stats) String() string {
	return fmt.Sprintf("records: %d, element anchors: %d (unknown elements: %d), chromosomal anchors: %d, "+
		"pairs: %d, resolved: %d, low mapq: %d, counted: %d, bins: %d, sv pairs: %d",
		s.Records, s.MEAnchors, s.UnknownElements, s.ChrAnchors,
		s.Pairs, s.Resolved, s.LowMAPQ, s.Counted, s.Bins, s.SVPairs)
}
