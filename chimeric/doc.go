// Package chimeric aggregates the mobile element alignments of a read into
// one read orientation, and resolves which read of a pair is the usable
// chromosomal anchor.
package chimeric
