package pma

import "errors"

var (
	// ErrClosed is the value any operation on a PMA panics with after Close
	// has run.
	ErrClosed = errors.New("pma: use of closed PMA")

	// ErrCapacityExceeded is returned when growing the backing array would
	// need to exceed the configured maximum capacity (see WithMaxCapacity
	// and the hard ceiling imposed by spread's fixed-point arithmetic).
	ErrCapacityExceeded = errors.New("pma: capacity exceeds configured maximum")
)
