package glint

import (
	"fmt"

	"github.com/fogleman/pt/pt"
)

// Length of the sun vector relative to the focal length. This only keeps the
// sun longer than the focal vector when drawn.
const SUN_SCALE = 1.5

// Sun holds the direction sunlight travels and its reflection off a
// horizontal surface.
type Sun struct {
	Direction pt.Vector
	Glint     pt.Vector
}

// ComputeSun builds the sun vectors for a clockwise-from-north azimuth and an
// elevation above the horizon, both in radians.
func ComputeSun(spec CameraSpec, azimuth, elevation float64) (Sun, error) {
	rot, err := SunRotation(azimuth, elevation)
	if err != nil {
		return Sun{}, fmt.Errorf("sun rotation: %w", err)
	}

	northHorizon := V(0, SUN_SCALE*spec.FocalLength, 0)

	// Antiparallel: where the light is going, not where it comes from
	direction := rot.Apply(northHorizon).Negate()

	return Sun{
		Direction: direction,
		Glint:     Reflect(direction),
	}, nil
}

// Reflect mirrors a direction off the horizontal (XY) plane.
func Reflect(v pt.Vector) pt.Vector {
	return V(-v.X, -v.Y, v.Z)
}
