package glint

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ImagePlanePlot draws the image format with the hotspot and glint in image
// coordinates. Points crossing the focal plane behind the camera are left out.
func (s Scene) ImagePlanePlot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Image plane"
	p.X.Label.Text = "x (pix)"
	p.Y.Label.Text = "y (pix)"

	xx, yy := s.Spec.halfWidth(), s.Spec.halfHeight()
	format, err := plotter.NewLine(plotter.XYs{
		{X: xx, Y: yy}, {X: -xx, Y: yy}, {X: -xx, Y: -yy}, {X: xx, Y: -yy}, {X: xx, Y: yy},
	})
	if err != nil {
		return nil, fmt.Errorf("format outline: %w", err)
	}
	format.LineStyle.Color = EdgeBlack
	p.Add(format)

	for _, point := range []struct {
		name  string
		hit   Hit
		color color.RGBA
	}{
		{"hotspot", s.Hotspot, HotspotOrng},
		{"glint", s.Glint, GlintYellow},
	} {
		if !point.hit.InFront() {
			continue
		}
		ip := s.ImagePoint(point.hit.Position)
		scatter, err := plotter.NewScatter(plotter.XYs{{X: ip.X, Y: ip.Y}})
		if err != nil {
			return nil, fmt.Errorf("%s marker: %w", point.name, err)
		}
		scatter.GlyphStyle.Color = point.color
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(4)
		p.Add(scatter)
		p.Legend.Add(point.name, scatter)
	}

	return p, nil
}

// SaveImagePlanePlot writes the image plane plot to path; the extension picks the format.
func (s Scene) SaveImagePlanePlot(width, height vg.Length, path string) error {
	p, err := s.ImagePlanePlot()
	if err != nil {
		return err
	}
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("saving image plane plot: %w", err)
	}
	return nil
}
