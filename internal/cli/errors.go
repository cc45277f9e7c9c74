package cli

import "errors"

// CLI errors cover name lookup only; the library itself has no
// recoverable failures.
var (
	// ErrUnknownDimension indicates a dimension name not in the registry.
	ErrUnknownDimension = errors.New("unknown dimension")

	// ErrUnknownUnit indicates a unit name outside the dimension's closed set.
	ErrUnknownUnit = errors.New("unknown unit")
)
