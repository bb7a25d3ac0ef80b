package glint

import (
	"fmt"
	"image/color"

	"github.com/fogleman/pt/pt"
)

var (
	XAxisRed    = color.RGBA{255, 0, 0, 255}
	YAxisGreen  = color.RGBA{0, 255, 0, 255}
	FocalBlue   = color.RGBA{0, 0, 255, 255}
	EdgeBlack   = color.RGBA{0, 0, 0, 255}
	HotspotOrng = color.RGBA{255, 153, 0, 255}
	GlintYellow = color.RGBA{255, 230, 0, 255}
)

// Inputs are the angles of one evaluation, in radians.
type Inputs struct {
	Azimuth   float64
	Elevation float64
	Attitude  Attitude
}

// Hit is a focal plane intersection together with its ray parameter.
type Hit struct {
	Position pt.Vector
	// Ray parameter; negative when the plane is crossed behind the camera
	T float64
}

// InFront reports whether the plane is crossed in the viewing direction.
func (h Hit) InFront() bool {
	return h.T > 0
}

// Scene is everything needed to draw the camera, the hotspot and the glint.
type Scene struct {
	Spec     CameraSpec
	Inputs   Inputs
	Rotation RotationMatrix
	Camera   CameraFrame
	Sun      Sun
	Hotspot  Hit
	Glint    Hit
}

func intersect(ray, focal pt.Vector) (Hit, error) {
	t, err := FocalPlaneParameter(ray, focal)
	if err != nil {
		return Hit{}, err
	}
	return Hit{Position: ray.MulScalar(t), T: t}, nil
}

// Evaluate runs the full pipeline for one set of inputs. It fails as a whole
// if either the hotspot or the glint ray misses the focal plane.
func Evaluate(spec CameraSpec, in Inputs) (Scene, error) {
	sun, err := ComputeSun(spec, in.Azimuth, in.Elevation)
	if err != nil {
		return Scene{}, err
	}

	rot, err := DirectRotation(in.Attitude)
	if err != nil {
		return Scene{}, fmt.Errorf("camera rotation: %w", err)
	}
	camera := spec.ReferenceFrame().Rotate(rot)

	hotspot, err := intersect(sun.Direction, camera.Focal)
	if err != nil {
		return Scene{}, fmt.Errorf("hotspot: %w", err)
	}
	glint, err := intersect(sun.Glint, camera.Focal)
	if err != nil {
		return Scene{}, fmt.Errorf("glint: %w", err)
	}

	return Scene{
		Spec:     spec,
		Inputs:   in,
		Rotation: rot,
		Camera:   camera,
		Sun:      sun,
		Hotspot:  hotspot,
		Glint:    glint,
	}, nil
}

// ImagePoint maps a world point back into the camera and returns its offset
// from the principal point, in pixels along the image axes.
func (s Scene) ImagePoint(p pt.Vector) Point2D {
	return To2D(s.Rotation.T().Apply(p))
}

// HotspotVisible reports whether the hotspot lands inside the image.
func (s Scene) HotspotVisible() bool {
	return s.Hotspot.InFront() && s.Spec.InFormat(s.ImagePoint(s.Hotspot.Position))
}

// GlintVisible reports whether the glint lands inside the image.
func (s Scene) GlintVisible() bool {
	return s.Glint.InFront() && s.Spec.InFormat(s.ImagePoint(s.Glint.Position))
}

// Segment is a named, coloured line to be drawn.
type Segment struct {
	Name     string
	From, To pt.Vector
	Color    color.RGBA
}

// Segments lists the lines that draw the scene.
func (s Scene) Segments() []Segment {
	c := s.Camera
	return []Segment{
		{"image x-axis", c.Focal, c.XAxis, XAxisRed},
		{"image y-axis", c.Focal, c.YAxis, YAxisGreen},
		{"focal axis", c.Origin, c.Focal, FocalBlue},
		{"edge north", c.NE, c.NW, EdgeBlack},
		{"edge west", c.NW, c.SW, EdgeBlack},
		{"edge south", c.SW, c.SE, EdgeBlack},
		{"edge east", c.SE, c.NE, EdgeBlack},
		{"hotspot", c.Origin, s.Hotspot.Position, HotspotOrng},
		{"glint", c.Origin, s.Glint.Position, GlintYellow},
	}
}

// SunCaption describes the sun angles the way they were entered.
func (in Inputs) SunCaption() string {
	return fmt.Sprintf("az = %.6g // elev = %.6g", Degrees(in.Azimuth), Degrees(in.Elevation))
}

// AttitudeCaption describes the camera attitude in degrees.
func (in Inputs) AttitudeCaption() string {
	return fmt.Sprintf("opk = (%.6g, %.6g, %.6g)", Degrees(in.Attitude.Omega), Degrees(in.Attitude.Phi), Degrees(in.Attitude.Kappa))
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
