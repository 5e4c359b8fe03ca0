package geometry

import "errors"

var (
	// ErrSingularTransform is returned when a transform's linear map cannot be inverted
	ErrSingularTransform = errors.New("singular transform")

	// ErrInvalidSurface is returned when an implicit surface is configured with
	// bounds, step size or bisection count it cannot march with
	ErrInvalidSurface = errors.New("invalid implicit surface")
)
