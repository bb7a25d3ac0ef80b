package glint

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/fogleman/pt/pt"
)

// Direction the default view looks from: south-east of the camera and above it
var DefaultViewNormal = V(1, -2, 1.5)

type View struct {
	XSize int
	YSize int
	Plane Plane
	// Margin around the camera body, in scene pixels
	Buffer float64
	// These cache the values needed to scale and translate from the scene to the requested image size
	scale      float64
	xTranslate float64
	yTranslate float64
}

func NewView(xSize, ySize int, buffer float64) View {
	return View{
		XSize:  xSize,
		YSize:  ySize,
		Plane:  MakePlane(V(0, 0, 0), DefaultViewNormal),
		Buffer: buffer,
	}
}

func (o View) project(v pt.Vector) Point2D {
	return To2D(o.Plane.Project(v))
}

// BoundingBox of the camera body as seen in the view plane. The hotspot and
// glint rays are left out so a grazing sun cannot shrink the camera to a dot.
func (o View) BoundingBox(c CameraFrame) (XMin, XMax, YMin, YMax float64) {
	path := Path2D{}
	for _, v := range []pt.Vector{c.Origin, c.XAxis, c.YAxis, c.Focal, c.NE, c.NW, c.SW, c.SE} {
		path = append(path, o.project(v))
	}
	return path.BoundingBox()
}

func (view *View) computeScaleAndTranslation(c CameraFrame) {
	XMin, XMax, YMin, YMax := view.BoundingBox(c)
	XMin, XMax = XMin-view.Buffer, XMax+view.Buffer
	YMin, YMax = YMin-view.Buffer, YMax+view.Buffer
	view.xTranslate = -XMin
	view.yTranslate = -YMin
	XScale := float64(view.XSize) / (XMax - XMin)
	YScale := float64(view.YSize) / (YMax - YMin)
	view.scale = math.Min(XScale, YScale)
}

func (o *View) translateAndScale(p Point2D) Point2D {
	return p.Translate(o.xTranslate, o.yTranslate).Scale(o.scale)
}

// Render draws the camera, the hotspot and glint rays, a legend and the input captions.
func (view *View) Render(s Scene) image.Image {
	view.computeScaleAndTranslation(s.Camera)

	c := gg.NewContext(view.XSize, view.YSize)
	c.SetRGB(1, 1, 1)
	c.Clear()

	c.SetLineWidth(2)
	for _, seg := range s.Segments() {
		p1 := view.translateAndScale(view.project(seg.From))
		p2 := view.translateAndScale(view.project(seg.To))
		c.SetColor(seg.Color)
		c.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
		c.Stroke()
	}

	// Legend
	x := float64(view.XSize) - 80
	for i, entry := range []struct {
		name  string
		color color.RGBA
	}{{"hotspot", HotspotOrng}, {"glint", GlintYellow}} {
		y := 20 + float64(i)*16
		c.SetColor(entry.color)
		c.DrawCircle(x, y, 4)
		c.Fill()
		c.SetColor(EdgeBlack)
		c.DrawStringAnchored(entry.name, x+10, y, 0, 0.35)
	}

	c.SetColor(EdgeBlack)
	c.DrawStringAnchored("Sun glint & hotspot visualizer", float64(view.XSize)/2, 14, 0.5, 0.5)
	c.DrawString(s.Inputs.SunCaption(), 10, float64(view.YSize)-26)
	c.DrawString(s.Inputs.AttitudeCaption(), 10, float64(view.YSize)-10)

	return c.Image()
}

// SavePNG renders the scene and writes it to path.
func (view *View) SavePNG(path string, s Scene) error {
	return gg.SavePNG(path, view.Render(s))
}
