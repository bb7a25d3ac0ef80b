package glint

import "errors"

var (
	// ErrInvalidArgument reports an axis label outside {x, y, z}.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTypeMismatch reports an angle that is not a finite real number.
	ErrTypeMismatch = errors.New("angle must be a finite real number")
	// ErrNoIntersection reports a ray parallel to the focal plane.
	ErrNoIntersection = errors.New("ray does not intersect the focal plane")
)
