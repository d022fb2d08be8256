package pipeline

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"github.com/grailbio/mobel/record"
)

// Format is the layout of an alignment file.
type Format int

const (
	// Lines are headerless tab separated alignment lines, as printed by
	// "samtools view".
	Lines Format = iota
	SAM
	BAM
)

var compressionExts = []string{".gz", ".bz2", ".zst", ".zstd", ".xz"}

// FormatOf guesses the format of path from its extension, ignoring a
// trailing compression extension.
func FormatOf(path string) Format {
	for _, ext := range compressionExts {
		path = strings.TrimSuffix(path, ext)
	}
	switch {
	case strings.HasSuffix(path, ".bam"):
		return BAM
	case strings.HasSuffix(path, ".sam"):
		return SAM
	}
	return Lines
}

// Reader yields the records of an alignment file as record.Values.
type Reader struct {
	in     file.File
	header *sam.Header
	bam    *bam.Reader
	sam    *sam.Reader
	lines  *tsv.Reader
}

// Open opens an alignment file. BAM files are read with their own BGZF
// decompression; other formats are decompressed according to their
// extension.
func Open(ctx context.Context, path string) (*Reader, error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "open", path)
	}
	r := &Reader{in: in}
	var rd io.Reader = in.Reader(ctx)
	switch FormatOf(path) {
	case BAM:
		if r.bam, err = bam.NewReader(rd, 1); err != nil {
			in.Close(ctx) // nolint: errcheck
			return nil, errors.E(err, "read bam header", path)
		}
		r.header = r.bam.Header()
		return r, nil
	}
	if u, _ := compress.NewReaderPath(rd, path); u != nil {
		rd = u
	}
	rd = bufio.NewReaderSize(rd, 64<<10)
	if FormatOf(path) == SAM {
		if r.sam, err = sam.NewReader(rd); err != nil {
			in.Close(ctx) // nolint: errcheck
			return nil, errors.E(err, "read sam header", path)
		}
		r.header = r.sam.Header()
		return r, nil
	}
	r.lines = tsv.NewReader(rd)
	r.lines.Comment = '@'
	r.lines.LazyQuotes = true
	r.lines.FieldsPerRecord = -1
	return r, nil
}

// Header returns the file header, or nil for headerless alignment lines.
func (r *Reader) Header() *sam.Header { return r.header }

// Read returns the next record, or io.EOF at the end of the file.
func (r *Reader) Read() (record.Values, error) {
	switch {
	case r.bam != nil:
		rec, err := r.bam.Read()
		if err != nil {
			return record.Values{}, err
		}
		v := record.FromSam(rec)
		sam.PutInFreePool(rec)
		return v, nil
	case r.sam != nil:
		rec, err := r.sam.Read()
		if err != nil {
			return record.Values{}, err
		}
		return record.FromSam(rec), nil
	}
	fields, err := r.lines.Reader.Read()
	if err != nil {
		return record.Values{}, err
	}
	return record.FromFields(fields)
}

// Close releases the underlying file.
func (r *Reader) Close(ctx context.Context) error {
	if r.bam != nil {
		if err := r.bam.Close(); err != nil {
			r.in.Close(ctx) // nolint: errcheck
			return err
		}
	}
	return r.in.Close(ctx)
}

// scan calls onHeader with the header of path (nil for alignment lines),
// then fn on every record.
func scan(ctx context.Context, path string, onHeader func(h *sam.Header) error, fn func(v record.Values) error) (err error) {
	r, err := Open(ctx, path)
	if err != nil {
		return err
	}
	defer func() {
		if e := r.Close(ctx); e != nil && err == nil {
			err = errors.E(e, "close", path)
		}
	}()
	if onHeader != nil {
		if err := onHeader(r.Header()); err != nil {
			return err
		}
	}
	for {
		v, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.E(err, "read", path)
		}
		if err := fn(v); err != nil {
			return err
		}
	}
}
