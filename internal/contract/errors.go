package contract

import "errors"

// Sentinel errors returned by the contraction pipeline. Callers match
// with errors.Is; the wrapped message carries the offending labels,
// axes and sizes.
var (
	ErrInvalidLabelCount = errors.New("invalid label count in contraction labels")
	ErrOddAxisList       = errors.New("axis list has odd length")
	ErrShapeMismatch     = errors.New("shape mismatch along specified axes")
	ErrInvalidAxisCount  = errors.New("trace requires exactly two axes")
)
