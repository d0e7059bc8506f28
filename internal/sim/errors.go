package sim

import "errors"

var (
	// ErrAllocFailed is returned by New when the host allocator returns nil
	// or a short buffer.
	ErrAllocFailed = errors.New("host allocation failed")

	// ErrInvalidConfig is returned by New for unusable options.
	ErrInvalidConfig = errors.New("invalid configuration")
)
