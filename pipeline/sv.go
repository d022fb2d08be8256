package pipeline

import (
	"context"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/mobel/anchor"
	"github.com/grailbio/mobel/count"
	"github.com/grailbio/mobel/record"
	"github.com/grailbio/mobel/samflag"
	"github.com/grailbio/mobel/sv"
)

// RunSV classifies read pairs by the geometry of their primary chromosomal
// alignments. It writes every classified pair to <Output>.sv.tsv and the
// per bin-pair counts to <Output>.sv_bins.tsv.
func RunSV(ctx context.Context, opts Opts) (Stats, error) {
	var stats Stats
	if err := opts.Validate(); err != nil {
		return stats, err
	}
	var (
		pairs = map[string]*sv.Pair{}
		ids   []string
	)
	err := scan(ctx, opts.ChrAlignment, nil, func(v record.Values) error {
		stats.Records++
		if !samflag.IsPrimary(v.Flag) {
			return nil
		}
		p, ok := pairs[v.ReadID]
		if !ok {
			p = &sv.Pair{}
			pairs[v.ReadID] = p
			ids = append(ids, v.ReadID)
		}
		rd := &p.Read1
		if samflag.MustInterpret(v.Flag, samflag.Read2) {
			rd = &p.Read2
		}
		if len(rd.ChrAnchors) > 0 {
			log.Debug.Printf("%s: duplicate primary alignment", v.ReadID)
			return nil
		}
		rd.Sequence = v.Sequence
		rd.ChrAnchors = append(rd.ChrAnchors, v.ChrAnchor())
		stats.ChrAnchors++
		return nil
	})
	if err != nil {
		return stats, err
	}

	type binClass struct{ chr, class string }
	var (
		rows   []svRow
		counts = map[binClass]count.Positions{}
	)
	for _, id := range ids {
		p := pairs[id]
		if len(p.Read1.ChrAnchors) == 0 || len(p.Read2.ChrAnchors) == 0 {
			continue
		}
		stats.SVPairs++
		a1, a2 := &p.Read1.ChrAnchors[0], &p.Read2.ChrAnchors[0]
		if lowMAPQ(a1, opts.MinMAPQ) || lowMAPQ(a2, opts.MinMAPQ) {
			stats.LowMAPQ++
			continue
		}
		matched, err := p.Identify(opts.ExpectedTemplateLength, opts.Opts)
		if err != nil {
			return stats, err
		}
		if !matched {
			continue
		}
		stats.SVTypes[p.Tag]++
		key := binClass{a1.Chromosome, p.Tag.String()}
		pos, ok := counts[key]
		if !ok {
			pos = count.Positions{}
			counts[key] = pos
		}
		if err := count.SVCount(id, p, pos, opts.BinSize); err != nil {
			return stats, err
		}
		bins, _ := p.BinKey(opts.BinSize)
		rows = append(rows, svRow{
			ReadID:      id,
			Type:        p.Tag.String(),
			Chromosome1: a1.Chromosome,
			Position1:   int64(a1.Position),
			Chromosome2: a2.Chromosome,
			Position2:   int64(a2.Position),
			Bins:        bins,
		})
	}
	log.Printf("%s: %d pairs, %d with a structural variant", opts.ChrAlignment, stats.SVPairs, len(rows))

	bins := &count.Bins{}
	for key, pos := range counts {
		for bin, ids := range pos {
			bins.Insert(key.chr, key.class, bin, ids, 0)
		}
	}
	stats.Bins = bins.Len()

	err = writeTable(ctx, opts.outputPath("sv"), func(w *tsv.RowWriter) error {
		for i := range rows {
			if err := w.Write(&rows[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return stats, err
	}
	err = writeTable(ctx, opts.outputPath("sv_bins"), func(w *tsv.RowWriter) error {
		var err error
		bins.Do(func(e *count.Entry) bool {
			row := binRow{
				Chromosome: e.Chromosome,
				Class:      e.Class,
				Bin:        e.Key,
				Reads:      int64(len(e.Reads)),
				ReadIDs:    strings.Join(e.Reads, ","),
			}
			err = w.Write(&row)
			return err != nil
		})
		return err
	})
	return stats, err
}

// lowMAPQ reports a mapped anchor below minMAPQ. Unmapped reads carry no
// mapping quality and are kept for insertion calls.
func lowMAPQ(a *anchor.ChrAnchor, minMAPQ int) bool {
	return !samflag.Has(a, samflag.Unmapped) && a.MAPQ < minMAPQ
}
