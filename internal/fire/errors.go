package fire

import "errors"

// Domain errors for simulation setup and tuning.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("fire: width and height must be positive")

	// ErrNilSource indicates a missing randomness source.
	ErrNilSource = errors.New("fire: randomness source is nil")

	// ErrParameterBounds indicates a tuning value outside its valid range.
	ErrParameterBounds = errors.New("fire: parameter out of valid bounds")
)
