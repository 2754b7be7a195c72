package maze

import "errors"

var (
	// ErrInvalidArgument reports a caller error, such as passing DirNone
	// where a concrete direction is required.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfBounds reports a coordinate outside the grid it addresses.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
