package main

/*
  mobel finds mobile element insertions and structural variants from
  paired-end reads. The reads are aligned twice, once against a library
  of mobile elements and once against the chromosomal reference.

  Example, both passes:

    mobel -me-alignment=me.bam -chr-alignment=chr.bam -output=sample

  writes sample.anchors.tsv and sample.bins.tsv for element insertions,
  and sample.sv.tsv and sample.sv_bins.tsv for structural variants.
  Headerless alignment lines need -library, a TSV with "name" and "size"
  columns.
*/

import (
	"flag"
	"runtime"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/mobel/config"
	"github.com/grailbio/mobel/pipeline"
)

var (
	mode               = flag.String("mode", "all", "Passes to run: 'me', 'sv' or 'all'")
	meAlignment        = flag.String("me-alignment", "", "Reads aligned against the mobile element library (BAM, SAM or alignment lines)")
	chrAlignment       = flag.String("chr-alignment", "", "Reads aligned against the chromosomal reference")
	library            = flag.String("library", "", "Optional TSV of element names and lengths. By default, taken from the -me-alignment header")
	output             = flag.String("output", "", "Output path prefix")
	gzipOutput         = flag.Bool("gzip", false, "Gzip the output tables")
	breakpointDistance = flag.Int("breakpoint-distance", pipeline.DefaultOpts.BreakpointDistance, "maximum edit distance between breakpoints of the same junction")

	binSize                = flag.Int("bin-size", config.DefaultOpts.BinSize, "width of the genomic bins")
	binOverlap             = flag.Int("bin-overlap", config.DefaultOpts.BinOverlap, "step between overlapping bins")
	meLimit                = flag.Int("me-limit", config.DefaultOpts.MELimit, "distance from the element 3' end within which forward alignments are downstream")
	anchorLimit            = flag.Int("anchor-limit", config.DefaultOpts.AnchorLimit, "distance from the element edges within which clipped alignments are anchored")
	translocationDistance  = flag.Int("translocation-distance", config.DefaultOpts.TranslocationDistance, "position difference above which a pair is a translocation")
	expectedTemplateLength = flag.Int("expected-template-length", config.DefaultOpts.ExpectedTemplateLength, "library insert size")
	minMAPQ                = flag.Int("min-mapq", config.DefaultOpts.MinMAPQ, "drop chromosomal anchors below this mapping quality")
	fdr                    = flag.Float64("fdr", config.DefaultOpts.FalseDiscoveryTolerance, "false discovery tolerance of the coverage threshold")
	poissonSize            = flag.Int("poisson-size", config.DefaultOpts.PoissonSize, "largest bin depth considered by the coverage threshold")
	parallelism            = flag.Int("parallelism", runtime.NumCPU(), "number of chromosomes thresholded in parallel")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() > 0 {
		a := flag.Args()
		log.Fatalf("unparsed flags, please check flag syntax: '%s'", strings.Join(a[len(a)-flag.NArg():], " "))
	}

	opts := pipeline.Opts{
		Opts: config.Opts{
			BinSize:                 *binSize,
			BinOverlap:              *binOverlap,
			MELimit:                 *meLimit,
			AnchorLimit:             *anchorLimit,
			TranslocationDistance:   *translocationDistance,
			ExpectedTemplateLength:  *expectedTemplateLength,
			MinMAPQ:                 *minMAPQ,
			FalseDiscoveryTolerance: *fdr,
			PoissonSize:             *poissonSize,
			Parallelism:             *parallelism,
		},
		MEAlignment:        *meAlignment,
		ChrAlignment:       *chrAlignment,
		Library:            *library,
		Output:             *output,
		Gzip:               *gzipOutput,
		BreakpointDistance: *breakpointDistance,
	}
	if err := opts.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	var runME, runSV bool
	switch *mode {
	case "me":
		runME = true
	case "sv":
		runSV = true
	case "all":
		runME, runSV = true, true
	default:
		log.Fatalf("-mode must be 'me', 'sv' or 'all', got %q", *mode)
	}
	if runME && opts.MEAlignment == "" {
		log.Fatalf("-me-alignment is required in mode %q", *mode)
	}

	ctx := vcontext.Background()
	var stats pipeline.Stats
	if runME {
		s, err := pipeline.RunME(ctx, opts)
		if err != nil {
			log.Fatalf("%v", err)
		}
		stats = stats.Merge(s)
	}
	if runSV {
		s, err := pipeline.RunSV(ctx, opts)
		if err != nil {
			log.Fatalf("%v", err)
		}
		stats = stats.Merge(s)
	}
	log.Printf("%s", stats)
	log.Debug.Printf("exiting")
}
