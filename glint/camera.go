package glint

import (
	"fmt"

	"github.com/fogleman/pt/pt"
)

// Default camera body, in pixels
const (
	DEFAULT_FOCAL_LENGTH  = 3652
	DEFAULT_FORMAT_WIDTH  = 5472
	DEFAULT_FORMAT_HEIGHT = 3648
)

// CameraSpec describes a pinhole camera. All values are in pixels.
type CameraSpec struct {
	FocalLength float64
	// Image format along the camera x axis
	FormatWidth float64
	// Image format along the camera y axis
	FormatHeight float64
}

func DefaultCameraSpec() CameraSpec {
	return CameraSpec{
		FocalLength:  DEFAULT_FOCAL_LENGTH,
		FormatWidth:  DEFAULT_FORMAT_WIDTH,
		FormatHeight: DEFAULT_FORMAT_HEIGHT,
	}
}

func (s CameraSpec) halfWidth() float64 {
	return s.FormatWidth / 2
}

func (s CameraSpec) halfHeight() float64 {
	return s.FormatHeight / 2
}

// InFormat reports whether an image-plane point lies inside the image format.
func (s CameraSpec) InFormat(p Point2D) bool {
	return p.X >= -s.halfWidth() && p.X <= s.halfWidth() &&
		p.Y >= -s.halfHeight() && p.Y <= s.halfHeight()
}

// CameraFrame holds the vectors that draw a camera: its projection centre,
// axis indicators, focal vector and the four image corners.
type CameraFrame struct {
	Origin pt.Vector
	XAxis  pt.Vector
	YAxis  pt.Vector
	Focal  pt.Vector
	NE     pt.Vector
	NW     pt.Vector
	SW     pt.Vector
	SE     pt.Vector
}

// ReferenceFrame returns the camera looking straight down, aligned with ENU.
func (s CameraSpec) ReferenceFrame() CameraFrame {
	xx, yy, f := s.halfWidth(), s.halfHeight(), s.FocalLength
	return CameraFrame{
		Origin: V(0, 0, 0),
		XAxis:  V(xx, 0, -f),
		YAxis:  V(0, yy, -f),
		Focal:  V(0, 0, -f),
		NE:     V(xx, yy, -f),
		NW:     V(-xx, yy, -f),
		SW:     V(-xx, -yy, -f),
		SE:     V(xx, -yy, -f),
	}
}

// Rotate applies r to every vector of the frame.
func (c CameraFrame) Rotate(r RotationMatrix) CameraFrame {
	return CameraFrame{
		Origin: r.Apply(c.Origin),
		XAxis:  r.Apply(c.XAxis),
		YAxis:  r.Apply(c.YAxis),
		Focal:  r.Apply(c.Focal),
		NE:     r.Apply(c.NE),
		NW:     r.Apply(c.NW),
		SW:     r.Apply(c.SW),
		SE:     r.Apply(c.SE),
	}
}

// Corners returns the image corners in drawing order.
func (c CameraFrame) Corners() []pt.Vector {
	return []pt.Vector{c.NE, c.NW, c.SW, c.SE}
}

// ComputeCameraFrame orients the reference frame of spec by att.
func ComputeCameraFrame(spec CameraSpec, att Attitude) (CameraFrame, error) {
	rot, err := DirectRotation(att)
	if err != nil {
		return CameraFrame{}, fmt.Errorf("camera rotation: %w", err)
	}
	return spec.ReferenceFrame().Rotate(rot), nil
}
