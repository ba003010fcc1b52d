package genheap

import "errors"

// ErrInvalidConfig is returned by New when a region capacity is zero or
// the object visitor is nil.
var ErrInvalidConfig = errors.New("genheap: invalid config")

// ErrResourceExhausted is returned by New when the backing store could
// not be acquired.
var ErrResourceExhausted = errors.New("genheap: resource exhausted")
