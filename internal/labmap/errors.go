package labmap

import "errors"

// ErrShapeMismatch reports a border-only operation invoked on a
// room-shaped cell, or a room-only operation invoked on a border-shaped
// cell.
var ErrShapeMismatch = errors.New("cell shape mismatch")
