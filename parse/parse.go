// Package parse converts alignment record fields into numbers. Every
// failure is reported as an *Error naming the offending field, so callers
// never have to guess which column of a record was malformed.
package parse

import (
	"fmt"
	"strconv"
)

// Error is returned when a field that must hold a number does not.
type Error struct {
	// Field names the column or CIGAR operation being parsed, e.g. "flag",
	// "position", "cigar:M".
	Field string
	// Value is the raw text that failed to parse.
	Value string
	Err   error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("parse %s: invalid value %q", e.Field, e.Value)
	}
	return fmt.Sprintf("parse %s: invalid value %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying strconv error, if any.
func (e *Error) Unwrap() error { return e.Err }

// Int parses a base-10 integer.
func Int(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &Error{Field: field, Value: value, Err: unwrapNum(err)}
	}
	return n, nil
}

// Float parses a 64-bit floating point number.
func Float(field, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &Error{Field: field, Value: value, Err: unwrapNum(err)}
	}
	return f, nil
}

// unwrapNum strips the *strconv.NumError wrapper, whose message repeats the
// value we already record.
func unwrapNum(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}
