package errors

import "errors"

// requested record does not exist.
var ErrMissing = errors.New("missing")

// requested record is found more than expected.
var ErrTooMuch = errors.New("too much")
