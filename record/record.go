// Package record converts alignment records, either as split text fields or
// as hts records, into the typed values the anchor loaders consume.
package record

import (
	"strconv"

	"github.com/grailbio/hts/sam"
	"github.com/grailbio/mobel/anchor"
	"github.com/grailbio/mobel/cigar"
	"github.com/grailbio/mobel/parse"
	"github.com/grailbio/mobel/samflag"
)

// Column indices of a tab separated alignment line.
const (
	colReadID   = 0
	colFlag     = 1
	colScaffold = 2
	colPosition = 3
	colMAPQ     = 4
	colCIGAR    = 5
	colTLen     = 8
	colSequence = 9

	// MinFields is the number of columns FromFields requires.
	MinFields = colSequence + 1
)

// Values are the fields of one alignment record.
type Values struct {
	ReadID string
	Flag   int
	// Scaffold is the reference name: a chromosome, or a mobile element.
	Scaffold string
	// Position is 1-based; 0 for unmapped records.
	Position       int
	MAPQ           int
	CIGAR          cigar.CIGAR
	TemplateLength int
	Sequence       string
}

// FromFields parses an already split alignment line. Numeric columns that
// fail to parse, or a short line, yield a *parse.Error.
func FromFields(fields []string) (Values, error) {
	if len(fields) < MinFields {
		return Values{}, &parse.Error{Field: "fields", Value: strconv.Itoa(len(fields))}
	}
	var (
		v   Values
		err error
	)
	v.ReadID = fields[colReadID]
	if v.Flag, err = parse.Int("flag", fields[colFlag]); err != nil {
		return Values{}, err
	}
	v.Scaffold = fields[colScaffold]
	if v.Position, err = parse.Int("position", fields[colPosition]); err != nil {
		return Values{}, err
	}
	if v.MAPQ, err = parse.Int("mapq", fields[colMAPQ]); err != nil {
		return Values{}, err
	}
	if v.CIGAR, err = cigar.Parse(fields[colCIGAR], v.Position); err != nil {
		return Values{}, err
	}
	if v.TemplateLength, err = parse.Int("tlen", fields[colTLen]); err != nil {
		return Values{}, err
	}
	v.Sequence = fields[colSequence]
	return v, nil
}

// FromSam converts an hts record. hts positions are 0-based; Values are
// 1-based like the text format. The returned Values do not share memory
// with r, so r may go back to the record pool.
func FromSam(r *sam.Record) Values {
	v := Values{
		ReadID:         string(append([]byte(nil), r.Name...)),
		Flag:           samflag.FromSam(r.Flags),
		Scaffold:       "*",
		MAPQ:           int(r.MapQ),
		TemplateLength: r.TempLen,
		Sequence:       "*",
	}
	if r.Ref != nil {
		v.Scaffold = r.Ref.Name()
		v.Position = r.Pos + 1
	}
	v.CIGAR = cigar.FromSam(r.Cigar, v.Position)
	if r.Seq.Length > 0 {
		v.Sequence = string(r.Seq.Expand())
	}
	return v
}

// IsUnmapped reports whether the record is flagged unmapped or has no
// alignment.
func (v *Values) IsUnmapped() bool {
	return samflag.MustInterpret(v.Flag, samflag.Unmapped) || v.CIGAR.IsUnmapped()
}

// ChrAnchor returns the record as a chromosomal alignment.
func (v *Values) ChrAnchor() anchor.ChrAnchor {
	return anchor.ChrAnchor{
		CIGAR:          v.CIGAR,
		Flags:          v.Flag,
		Chromosome:     v.Scaffold,
		MAPQ:           v.MAPQ,
		Position:       v.Position,
		TemplateLength: v.TemplateLength,
	}
}
