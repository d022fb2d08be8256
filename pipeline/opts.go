package pipeline

import (
	"github.com/grailbio/base/errors"
	"github.com/grailbio/mobel/config"
)

// Opts configures a pipeline run.
type Opts struct {
	config.Opts

	// MEAlignment is the alignment of the reads against the mobile element
	// library: BAM, SAM (optionally compressed), or headerless alignment
	// lines.
	MEAlignment string
	// ChrAlignment is the alignment of the same reads against the
	// chromosomal reference, in one of the same formats.
	ChrAlignment string
	// Library is an optional TSV with "name" and "size" columns giving the
	// element lengths. When empty, lengths come from the MEAlignment header.
	Library string
	// Output is the path prefix of the output tables.
	Output string
	// Gzip compresses the output tables.
	Gzip bool
	// BreakpointDistance is the largest edit distance between breakpoint
	// windows that are counted as the same junction.
	BreakpointDistance int
}

// DefaultOpts is the default pipeline configuration, without paths.
var DefaultOpts = Opts{
	Opts:               config.DefaultOpts,
	BreakpointDistance: 2,
}

// Validate checks the thresholds and the paths the ME pass needs.
func (o *Opts) Validate() error {
	if err := o.Opts.Validate(); err != nil {
		return err
	}
	if o.Output == "" {
		return errors.E(errors.Invalid, "output prefix is required")
	}
	if o.ChrAlignment == "" {
		return errors.E(errors.Invalid, "chromosomal alignment is required")
	}
	if o.BreakpointDistance < 0 {
		return errors.E(errors.Invalid, "breakpoint distance must not be negative")
	}
	return nil
}
