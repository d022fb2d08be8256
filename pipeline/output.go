package pipeline

import (
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/klauspost/compress/gzip"
)

// anchorRow is one line of the <output>.anchors.tsv table: a resolved
// chimeric pair and its chromosomal anchor.
type anchorRow struct {
	ReadID      string `tsv:"read_id"`
	Chromosome  string `tsv:"chromosome"`
	Position    int64  `tsv:"position"`
	CIGAR       string `tsv:"cigar"`
	TLen        int64  `tsv:"tlen"`
	Anchor      string `tsv:"anchor"`
	Orientation string `tsv:"orientation"`
	Elements    string `tsv:"elements"`
	Breakpoint  string `tsv:"breakpoint"`
	Coordinate  string `tsv:"breakpoint_coordinate"`
}

// binRow is one line of the <output>.bins.tsv table.
type binRow struct {
	Chromosome string `tsv:"chromosome"`
	Class      string `tsv:"class"`
	Bin        string `tsv:"bin"`
	Reads      int64  `tsv:"reads"`
	Threshold  int64  `tsv:"threshold"`
	Junctions  int64  `tsv:"junctions"`
	ReadIDs    string `tsv:"read_ids"`
}

// svRow is one line of the <output>.sv.tsv table.
type svRow struct {
	ReadID      string `tsv:"read_id"`
	Type        string `tsv:"type"`
	Chromosome1 string `tsv:"chromosome1"`
	Position1   int64  `tsv:"position1"`
	Chromosome2 string `tsv:"chromosome2"`
	Position2   int64  `tsv:"position2"`
	Bins        string `tsv:"bins"`
}

// outputPath returns the path of table name under the output prefix.
func (o *Opts) outputPath(name string) string {
	path := o.Output + "." + name + ".tsv"
	if o.Gzip {
		path += ".gz"
	}
	return path
}

// writeTable creates path and passes fn a row writer on it. Paths ending in
// .gz are gzip compressed.
func writeTable(ctx context.Context, path string, fn func(w *tsv.RowWriter) error) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return errors.E(err, "create", path)
	}
	defer file.CloseAndReport(ctx, out, &err)
	var (
		w  io.Writer = out.Writer(ctx)
		gz *gzip.Writer
	)
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(w)
		w = gz
	}
	rw := tsv.NewRowWriter(w)
	if err = fn(rw); err != nil {
		return errors.E(err, "write", path)
	}
	if err = rw.Flush(); err != nil {
		return errors.E(err, "write", path)
	}
	if gz != nil {
		if err = gz.Close(); err != nil {
			return errors.E(err, "write", path)
		}
	}
	return nil
}
