// Package config holds the thresholds shared by the anchor tagger, the
// structural variant classifier, the binner and the coverage threshold.
// An Opts value is built once at startup and passed explicitly; nothing in
// this module reads configuration from global state.
package config

import (
	"fmt"
	"runtime"

	"github.com/grailbio/base/errors"
)

type Opts struct {
	// BinSize is the width of the genomic bins reads are counted in.
	BinSize int
	// BinOverlap is the step between overlapping bins. It only enters the
	// effective genome length used by the coverage threshold.
	BinOverlap int

	// MELimit is the distance from the 3' end of an element within which a
	// forward alignment is tagged downstream.
	MELimit int
	// AnchorLimit is the distance from the element edges within which
	// clipped alignments are tagged upstream or downstream.
	AnchorLimit int

	// TranslocationDistance is the position difference above which a read
	// pair is considered a translocation.
	TranslocationDistance int
	// ExpectedTemplateLength is the library insert size. Pairs whose anchors
	// are at least this far apart are deletions.
	ExpectedTemplateLength int

	// MinMAPQ drops chromosomal anchors with lower mapping quality.
	MinMAPQ int

	// FalseDiscoveryTolerance and PoissonSize parametrize the coverage
	// threshold: PoissonSize is the largest bin depth considered.
	FalseDiscoveryTolerance float64
	PoissonSize             int

	// Parallelism bounds the number of chromosomes thresholded at once.
	Parallelism int
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	BinSize:                 100,
	BinOverlap:              50,
	MELimit:                 200,
	AnchorLimit:             50,
	TranslocationDistance:   1000,
	ExpectedTemplateLength:  500,
	MinMAPQ:                 20,
	FalseDiscoveryTolerance: 0.001,
	PoissonSize:             30,
	Parallelism:             runtime.NumCPU(),
}

// Validate reports the first inconsistent setting.
func (o Opts) Validate() error {
	switch {
	case o.BinSize <= 0:
		return errors.E(errors.Invalid, fmt.Sprintf("bin size must be positive: %v", o.BinSize))
	case o.BinOverlap <= 0:
		return errors.E(errors.Invalid, fmt.Sprintf("bin overlap must be positive: %v", o.BinOverlap))
	case o.MELimit < 0:
		return errors.E(errors.Invalid, fmt.Sprintf("mobile element limit must not be negative: %v", o.MELimit))
	case o.AnchorLimit < 0:
		return errors.E(errors.Invalid, fmt.Sprintf("anchor limit must not be negative: %v", o.AnchorLimit))
	case o.TranslocationDistance < 0:
		return errors.E(errors.Invalid, fmt.Sprintf("translocation distance must not be negative: %v", o.TranslocationDistance))
	case o.ExpectedTemplateLength <= 0:
		return errors.E(errors.Invalid, fmt.Sprintf("expected template length must be positive: %v", o.ExpectedTemplateLength))
	case o.MinMAPQ < 0:
		return errors.E(errors.Invalid, fmt.Sprintf("minimum MAPQ must not be negative: %v", o.MinMAPQ))
	case o.FalseDiscoveryTolerance <= 0 || o.FalseDiscoveryTolerance >= 1:
		return errors.E(errors.Invalid, fmt.Sprintf("false discovery tolerance must be in (0,1): %v", o.FalseDiscoveryTolerance))
	case o.PoissonSize <= 0:
		return errors.E(errors.Invalid, fmt.Sprintf("poisson size must be positive: %v", o.PoissonSize))
	case o.Parallelism <= 0:
		return errors.E(errors.Invalid, fmt.Sprintf("parallelism must be positive: %v", o.Parallelism))
	}
	return nil
}
