package tensor

import "errors"

// Errors returned by shape, view and reduction operations.
// Callers should test for them with errors.Is; the returned errors are
// wrapped with the offending shapes.
var (
	ErrIncompatibleShapes   = errors.New("incompatible shapes")
	ErrUnsupportedReduction = errors.New("unsupported reduction")
	ErrInvalidShape         = errors.New("invalid shape")
	ErrInvalidDim           = errors.New("invalid dimension")
	ErrNotContiguous        = errors.New("tensor is not contiguous")
	ErrIndexOutOfRange      = errors.New("index out of range")
)
