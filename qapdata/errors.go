package qapdata

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed: a token is not a number, or data follows the distance matrix.
	ErrMalformed = errors.New("qapdata: malformed instance")

	// ErrTruncated: the input ends before n² flow and n² distance values.
	ErrTruncated = errors.New("qapdata: truncated instance")

	// ErrBadSize: n < 1, or an invalid generation range.
	ErrBadSize = errors.New("qapdata: bad instance size")
)

func dataErrorf(op string, err error) error {
	return fmt.Errorf("qapdata.%s: %w", op, err)
}
