package parse

import (
	"errors"
	"strconv"
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestInt(t *testing.T) {
	n, err := Int("position", "101")
	expect.NoError(t, err)
	expect.EQ(t, n, 101)

	n, err = Int("tlen", "-350")
	expect.NoError(t, err)
	expect.EQ(t, n, -350)

	_, err = Int("flag", "16x")
	var perr *Error
	expect.True(t, errors.As(err, &perr))
	expect.EQ(t, perr.Field, "flag")
	expect.EQ(t, perr.Value, "16x")
	expect.True(t, errors.Is(err, strconv.ErrSyntax))
	expect.EQ(t, err.Error(), `parse flag: invalid value "16x": invalid syntax`)
}

func TestFloat(t *testing.T) {
	f, err := Float("offset", "-19")
	expect.NoError(t, err)
	expect.EQ(t, f, -19.0)

	_, err = Float("offset", "")
	var perr *Error
	expect.True(t, errors.As(err, &perr))
	expect.EQ(t, perr.Field, "offset")
}
