package glint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nadir(azimuth, elevation float64) Inputs {
	return Inputs{Azimuth: Radians(azimuth), Elevation: Radians(elevation)}
}

func TestEvaluateNadirCamera(t *testing.T) {
	assert := assert.New(t)
	spec := DefaultCameraSpec()
	f := spec.FocalLength

	scene, err := Evaluate(spec, nadir(0, 70))
	require.NoError(t, err)

	// Sun from the north, so the hotspot falls south of the principal point
	offset := f / math.Tan(Radians(70))
	assert.InDelta(0, scene.Hotspot.Position.X, 1e-9)
	assert.InDelta(-offset, scene.Hotspot.Position.Y, 1e-9)
	assert.InDelta(-f, scene.Hotspot.Position.Z, 1e-9)
	assert.InDelta(offset, scene.Glint.Position.Y, 1e-9)
	assert.InDelta(-f, scene.Glint.Position.Z, 1e-9)

	assert.True(scene.Hotspot.InFront())
	assert.True(scene.HotspotVisible())
	assert.True(scene.GlintVisible())

	hp := scene.ImagePoint(scene.Hotspot.Position)
	assert.InDelta(-offset, hp.Y, 1e-9)
}

func TestEvaluateLowSunLeavesFormat(t *testing.T) {
	scene, err := Evaluate(DefaultCameraSpec(), nadir(0, 45))
	require.NoError(t, err)

	// f/tan(45°) = f is past the half height of the format
	assert.True(t, scene.Hotspot.InFront())
	assert.False(t, scene.HotspotVisible())
	assert.False(t, scene.GlintVisible())
}

func TestEvaluateSunBelowHorizon(t *testing.T) {
	scene, err := Evaluate(DefaultCameraSpec(), nadir(200, -30))
	require.NoError(t, err)

	assert.False(t, scene.Hotspot.InFront())
	assert.Less(t, scene.Hotspot.T, 0.0)
	assert.False(t, scene.HotspotVisible())
}

func TestEvaluateNoIntersection(t *testing.T) {
	_, err := Evaluate(DefaultCameraSpec(), nadir(30, 0))
	assert.ErrorIs(t, err, ErrNoIntersection)
	assert.Contains(t, err.Error(), "hotspot")

	// Camera on its side, looking east, with the sun overhead
	_, err = Evaluate(DefaultCameraSpec(), Inputs{
		Elevation: Radians(90),
		Attitude:  Attitude{Phi: Radians(-90)},
	})
	assert.ErrorIs(t, err, ErrNoIntersection)
}

func TestEvaluateTiltedCamera(t *testing.T) {
	spec := DefaultCameraSpec()
	in := Inputs{
		Azimuth:   Radians(135),
		Elevation: Radians(40),
		Attitude:  Attitude{Omega: Radians(5), Phi: Radians(-3), Kappa: Radians(90)},
	}
	scene, err := Evaluate(spec, in)
	require.NoError(t, err)

	frame, err := ComputeCameraFrame(spec, in.Attitude)
	require.NoError(t, err)
	assert.Equal(t, frame, scene.Camera)

	// Both points lie on the focal plane
	focal := scene.Camera.Focal
	for _, hit := range []Hit{scene.Hotspot, scene.Glint} {
		assert.InDelta(t, 0, hit.Position.Sub(focal).Dot(focal)/focal.Dot(focal), 1e-12)
	}

	// Mapping the rotated corners back lands on the format corners
	ne := scene.ImagePoint(scene.Camera.NE)
	assert.InDelta(t, spec.FormatWidth/2, ne.X, 1e-6)
	assert.InDelta(t, spec.FormatHeight/2, ne.Y, 1e-6)
}

func TestSegments(t *testing.T) {
	scene, err := Evaluate(DefaultCameraSpec(), nadir(0, 70))
	require.NoError(t, err)

	segments := scene.Segments()
	require.Len(t, segments, 9)

	names := []string{}
	for _, s := range segments {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{
		"image x-axis", "image y-axis", "focal axis",
		"edge north", "edge west", "edge south", "edge east",
		"hotspot", "glint",
	}, names)

	assert.Equal(t, scene.Hotspot.Position, segments[7].To)
	assert.Equal(t, HotspotOrng, segments[7].Color)
	assert.Equal(t, scene.Glint.Position, segments[8].To)
	assert.Equal(t, scene.Camera.Origin, segments[8].From)
}

func TestCaptions(t *testing.T) {
	in := Inputs{
		Azimuth:   Radians(135),
		Elevation: Radians(40),
		Attitude:  Attitude{Omega: Radians(5), Phi: Radians(-3), Kappa: Radians(90)},
	}
	assert.Equal(t, "az = 135 // elev = 40", in.SunCaption())
	assert.Equal(t, "opk = (5, -3, 90)", in.AttitudeCaption())
	assert.Equal(t, "#FF9900", hexColor(HotspotOrng))
}
