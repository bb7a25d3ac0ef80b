package glint

import (
	"fmt"
	"math"

	"github.com/fogleman/pt/pt"
)

// Relative tolerance below which a ray counts as parallel to the focal plane
const PARALLEL_EPSILON = 1e-9

// FocalPlaneParameter returns t such that t·ray lies on the focal plane: the
// plane through the focal point with the focal vector as its normal.
//
// A negative t means the plane is crossed behind the projection centre.
func FocalPlaneParameter(ray, focal pt.Vector) (float64, error) {
	denom := ray.Dot(focal)
	scale := ray.Length() * focal.Length()
	if scale == 0 || math.Abs(denom) <= PARALLEL_EPSILON*scale {
		return 0, fmt.Errorf("ray %v against focal vector %v: %w", ray, focal, ErrNoIntersection)
	}
	return focal.Dot(focal) / denom, nil
}

// IntersectFocalPlane returns the point where ray, starting at the projection
// centre, meets the focal plane.
func IntersectFocalPlane(ray, focal pt.Vector) (pt.Vector, error) {
	t, err := FocalPlaneParameter(ray, focal)
	if err != nil {
		return pt.Vector{}, err
	}
	return ray.MulScalar(t), nil
}
