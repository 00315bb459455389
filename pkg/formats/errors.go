package formats

import "errors"

// OBJ loading errors.
var (
	// ErrOpenOBJ indicates the main mesh file could not be opened.
	ErrOpenOBJ = errors.New("could not open OBJ file")
)
