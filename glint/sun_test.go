package glint

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestComputeSun(t *testing.T) {
	spec := DefaultCameraSpec()
	l := SUN_SCALE * spec.FocalLength

	tests := []struct {
		name      string
		azimuth   float64
		elevation float64
		expect    Sun
	}{
		{"north_horizon", 0, 0, Sun{
			Direction: V(0, -l, 0),
			Glint:     V(0, l, 0),
		}},
		{"east_horizon", 90, 0, Sun{
			Direction: V(-l, 0, 0),
			Glint:     V(l, 0, 0),
		}},
		{"south_horizon", 180, 0, Sun{
			Direction: V(0, l, 0),
			Glint:     V(0, -l, 0),
		}},
		{"zenith", 0, 90, Sun{
			Direction: V(0, 0, -l),
			Glint:     V(0, 0, -l),
		}},
		{"north_east_45", 45, 45, Sun{
			Direction: V(-l/2, -l/2, -l/math.Sqrt2),
			Glint:     V(l/2, l/2, -l/math.Sqrt2),
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sun, err := ComputeSun(spec, Radians(test.azimuth), Radians(test.elevation))
			require.NoError(t, err)
			if diff := cmp.Diff(test.expect, sun, approx); diff != "" {
				t.Errorf("ComputeSun(%v, %v) mismatch (-want +got):\n%s", test.azimuth, test.elevation, diff)
			}
		})
	}
}

func TestComputeSunNorthHorizonIsExact(t *testing.T) {
	spec := DefaultCameraSpec()
	sun, err := ComputeSun(spec, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, V(0, -1.5*spec.FocalLength, 0), sun.Direction)
	assert.Equal(t, V(0, 1.5*spec.FocalLength, 0), sun.Glint)
}

func TestGlintIsReflection(t *testing.T) {
	spec := CameraSpec{FocalLength: 1000, FormatWidth: 800, FormatHeight: 600}
	for _, az := range testAngles {
		for _, el := range []float64{-0.4, 0, 0.2, 1.1} {
			sun, err := ComputeSun(spec, az, el)
			require.NoError(t, err)
			d := sun.Direction
			assert.Equal(t, V(-d.X, -d.Y, d.Z), sun.Glint)
			assert.InDelta(t, SUN_SCALE*spec.FocalLength, d.Length(), 1e-9)
		}
	}
}

func TestComputeSunRejectsNaN(t *testing.T) {
	_, err := ComputeSun(DefaultCameraSpec(), math.NaN(), 0)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Contains(t, err.Error(), "azimuth")
}
