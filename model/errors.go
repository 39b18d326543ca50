package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a grid is created with a non-positive size
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidParameter is returned when a density is outside [0, 1]
	ErrInvalidParameter = errors.New("invalid parameter")
)
