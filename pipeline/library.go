package pipeline

import (
	"bufio"
	"context"
	"io"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/grailbio/hts/sam"
)

// Library maps mobile element names to their lengths.
type Library map[string]int

type libraryRow struct {
	Name string `tsv:"name"`
	Size int64  `tsv:"size"`
}

// LoadLibrary reads a TSV with "name" and "size" header columns. Extra
// columns are ignored.
func LoadLibrary(ctx context.Context, path string) (lib Library, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "open library", path)
	}
	defer file.CloseAndReport(ctx, in, &err)
	var rd io.Reader = in.Reader(ctx)
	if u, _ := compress.NewReaderPath(rd, path); u != nil {
		rd = u
	}
	r := tsv.NewReader(bufio.NewReader(rd))
	r.HasHeaderRow = true
	r.Comment = '#'
	lib = Library{}
	var row libraryRow
	for {
		if err := r.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.E(err, "read library", path)
		}
		if row.Size <= 0 {
			return nil, errors.E(errors.Invalid, "library", path, "element", row.Name, "has no length")
		}
		lib[row.Name] = int(row.Size)
	}
	return lib, nil
}

// LibraryFromHeader takes the element lengths from the reference
// sequences of an alignment header.
func LibraryFromHeader(h *sam.Header) Library {
	lib := Library{}
	for _, ref := range h.Refs() {
		lib[ref.Name()] = ref.Len()
	}
	return lib
}

// Sizes returns the reference lengths of an alignment header, or nil.
func Sizes(h *sam.Header) map[string]int {
	if h == nil {
		return nil
	}
	return LibraryFromHeader(h)
}
