// Package pipeline runs the mobile element and structural variant passes
// over alignment files and writes their tables.
package pipeline

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/hts/sam"
	"github.com/grailbio/mobel/anchor"
	"github.com/grailbio/mobel/breakpoint"
	"github.com/grailbio/mobel/chimeric"
	"github.com/grailbio/mobel/count"
	"github.com/grailbio/mobel/record"
	"github.com/grailbio/mobel/registry"
	"github.com/grailbio/mobel/threshold"
)

// RunME finds mobile element insertions. It loads the element alignments
// and then the chromosomal alignments of the same pairs, resolves the
// chromosomal anchor of every pair, counts the anchors per strand class
// into bins, and writes <Output>.anchors.tsv and <Output>.bins.tsv with the
// bins that reach the per-chromosome coverage threshold.
func RunME(ctx context.Context, opts Opts) (Stats, error) {
	var stats Stats
	if err := opts.Validate(); err != nil {
		return stats, err
	}
	if opts.MEAlignment == "" {
		return stats, errors.E(errors.Invalid, "element alignment is required")
	}
	reg, chrSizes, stats, err := load(ctx, opts)
	if err != nil {
		return stats, err
	}
	stats.Pairs = reg.Len()
	stats.Resolved = reg.Resolve()
	log.Printf("%s: %d pairs with element evidence, %d resolved", opts.MEAlignment, stats.Pairs, stats.Resolved)

	counts := map[string]map[string]count.Positions{}
	var anchors []anchorRow
	for _, id := range reg.IDs() {
		p, _ := reg.Get(id)
		rd, ok := p.ChrAnchorRead()
		if !ok {
			continue
		}
		if !p.PassesMAPQ(opts.MinMAPQ) {
			log.Debug.Printf("%s: chromosomal anchor missing or below mapq %d", id, opts.MinMAPQ)
			stats.LowMAPQ++
			continue
		}
		a, _ := rd.Primary()
		byClass, ok := counts[a.Chromosome]
		if !ok {
			byClass = map[string]count.Positions{}
			counts[a.Chromosome] = byClass
		}
		me := p.MEAnchors()
		for _, key := range count.StrandKeys {
			pos, ok := byClass[key]
			if !ok {
				pos = count.Positions{}
				byClass[key] = pos
			}
			if count.StrandCount(id, key, a, me, pos, opts.BinSize) {
				stats.Counted++
			}
		}
		anchors = append(anchors, newAnchorRow(id, p, a))
	}

	bins, err := thresholdBins(counts, chrSizes, opts)
	if err != nil {
		return stats, err
	}
	stats.Bins = bins.Len()

	err = writeTable(ctx, opts.outputPath("anchors"), func(w *tsv.RowWriter) error {
		for i := range anchors {
			if err := w.Write(&anchors[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return stats, err
	}
	err = writeTable(ctx, opts.outputPath("bins"), func(w *tsv.RowWriter) error {
		var err error
		bins.Do(func(e *count.Entry) bool {
			row := binRow{
				Chromosome: e.Chromosome,
				Class:      e.Class,
				Bin:        e.Key,
				Reads:      int64(len(e.Reads)),
				Threshold:  int64(e.Threshold),
				Junctions:  int64(junctions(reg, e.Reads, opts.BreakpointDistance)),
				ReadIDs:    strings.Join(e.Reads, ","),
			}
			err = w.Write(&row)
			return err != nil
		})
		return err
	})
	return stats, err
}

// load runs the element pass and then the chromosomal pass into a new
// registry. It returns the chromosome lengths from the chromosomal
// alignment header, or nil when the file has none.
func load(ctx context.Context, opts Opts) (*registry.Registry, map[string]int, Stats, error) {
	var (
		stats Stats
		lib   Library
		err   error
		reg   = registry.New()
	)
	if opts.Library != "" {
		if lib, err = LoadLibrary(ctx, opts.Library); err != nil {
			return nil, nil, stats, err
		}
	}
	err = scan(ctx, opts.MEAlignment,
		func(h *sam.Header) error {
			if lib != nil {
				return nil
			}
			if h == nil {
				return errors.E(errors.Invalid, opts.MEAlignment, "has no header: element lengths need a library")
			}
			lib = LibraryFromHeader(h)
			return nil
		},
		func(v record.Values) error {
			stats.Records++
			size, ok := lib[v.Scaffold]
			if !ok && !v.IsUnmapped() {
				log.Debug.Printf("%s: element %s not in library", v.ReadID, v.Scaffold)
				stats.UnknownElements++
				return nil
			}
			if reg.AddME(v, size, opts.Opts) {
				stats.MEAnchors++
			}
			return nil
		})
	if err != nil {
		return nil, nil, stats, err
	}

	var chrSizes map[string]int
	err = scan(ctx, opts.ChrAlignment,
		func(h *sam.Header) error {
			chrSizes = Sizes(h)
			return nil
		},
		func(v record.Values) error {
			stats.Records++
			if reg.AddChromosomal(v) {
				stats.ChrAnchors++
			}
			return nil
		})
	if err != nil {
		return nil, nil, stats, err
	}
	if chrSizes == nil {
		log.Printf("%s: no chromosome lengths, every bin is reported", opts.ChrAlignment)
	}
	return reg, chrSizes, stats, nil
}

// thresholdBins computes the coverage threshold of every chromosome and
// strand class, in parallel over chromosomes, and indexes the bins that
// reach it. Chromosomes of unknown length have threshold 0.
func thresholdBins(counts map[string]map[string]count.Positions, chrSizes map[string]int, opts Opts) (*count.Bins, error) {
	chrs := make([]string, 0, len(counts))
	for chr := range counts {
		chrs = append(chrs, chr)
	}
	sort.Strings(chrs)
	thresholds := make([]map[string]int, len(chrs))
	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}
	if parallelism > len(chrs) {
		parallelism = len(chrs)
	}
	err := traverse.Each(parallelism, func(worker int) error {
		for i := worker; i < len(chrs); i += parallelism {
			size := chrSizes[chrs[i]]
			t := map[string]int{}
			for key, pos := range counts[chrs[i]] {
				if size > 0 {
					t[key] = threshold.Threshold(float64(pos.Reads()), float64(size), pos, opts.Opts)
				}
			}
			thresholds[i] = t
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	bins := &count.Bins{}
	for i, chr := range chrs {
		for key, pos := range counts[chr] {
			min := thresholds[i][key]
			for bin, ids := range pos {
				if len(ids) >= min {
					bins.Insert(chr, key, bin, ids, min)
				}
			}
		}
	}
	return bins, nil
}

// junctions returns the number of distinct breakpoints, up to maxDist
// edits apart, among the element alignments of the given reads.
func junctions(reg *registry.Registry, ids []string, maxDist int) int {
	var bps []breakpoint.BreakPoint
	for _, id := range ids {
		p, ok := reg.Get(id)
		if !ok {
			continue
		}
		for _, a := range p.MEAnchors() {
			if !a.Breakpoint.IsZero() {
				bps = append(bps, a.Breakpoint)
			}
		}
	}
	return len(breakpoint.Cluster(bps, maxDist))
}

func newAnchorRow(id string, p *chimeric.Pair, a *anchor.ChrAnchor) anchorRow {
	mate := &p.Read1
	if p.Chosen == chimeric.Read1 {
		mate = &p.Read2
	}
	row := anchorRow{
		ReadID:      id,
		Chromosome:  a.Chromosome,
		Position:    int64(a.Position),
		CIGAR:       a.CIGAR.Signature,
		TLen:        int64(a.TemplateLength),
		Anchor:      p.Chosen.String(),
		Orientation: mate.Orientation.String(),
	}
	var elements []string
	seen := map[string]bool{}
	for _, me := range mate.MEAnchors {
		if !seen[me.ElementID] {
			seen[me.ElementID] = true
			elements = append(elements, me.ElementID)
		}
		if row.Breakpoint == "" && me.Orientation == mate.Orientation && !me.Breakpoint.IsZero() {
			row.Breakpoint = me.Breakpoint.Sequence
			row.Coordinate = strconv.FormatFloat(me.Breakpoint.Coordinate, 'f', -1, 64)
		}
	}
	row.Elements = strings.Join(elements, ",")
	return row
}
