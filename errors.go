package bitkit

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("workers must be positive")
)

// ErrInvalidRange indicates a bit range that does not fit the words it
// addresses.
//
// The core proxies never return it; only entry points that take plain
// indices validate them.
type ErrInvalidRange struct {
	First int
	Last  int
	Len   int // number of addressable bits
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid bit range [%d, %d) over %d bits", e.First, e.Last, e.Len)
}
