package glint

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// Projection helpers follow https://github.com/fogleman/choppy/tree/master with some modifications

type Point2D struct {
	X, Y float64
}

// To2D drops the Z component of a vector
func To2D(v pt.Vector) Point2D {
	return Point2D{v.X, v.Y}
}

func (p Point2D) Translate(x, y float64) Point2D {
	return Point2D{p.X + x, p.Y + y}
}

func (p Point2D) Scale(s float64) Point2D {
	return Point2D{p.X * s, p.Y * s}
}

type Path2D []Point2D

// BoundingBox returns the extent of the path. An empty path has an empty box at the origin.
func (p Path2D) BoundingBox() (XMin, XMax, YMin, YMax float64) {
	if len(p) == 0 {
		return
	}
	XMin, YMin = math.Inf(1), math.Inf(1)
	XMax, YMax = math.Inf(-1), math.Inf(-1)
	for _, p := range p {
		XMin = math.Min(XMin, p.X)
		XMax = math.Max(XMax, p.X)
		YMin = math.Min(YMin, p.Y)
		YMax = math.Max(YMax, p.Y)
	}
	return
}

type Plane struct {
	Point  pt.Vector
	Normal pt.Vector
	U, V   pt.Vector
}

func MakePlane(point, normal pt.Vector) Plane {
	u := perpendicular(normal).Normalize()
	v := u.Cross(normal).Normalize()
	return Plane{point, normal, u, v}
}

// Project expresses point in the (U, V) coordinates of the plane
func (p Plane) Project(point pt.Vector) pt.Vector {
	d := point.Sub(p.Point)
	x := d.Dot(p.U)
	y := d.Dot(p.V)
	return V(x, y, 0)
}

func perpendicular(a pt.Vector) pt.Vector {
	if a.X == 0 && a.Y == 0 {
		if a.Z == 0 {
			return pt.Vector{}
		}
		return V(0, 1, 0)
	}
	return V(-a.Y, a.X, 0).Normalize()
}

// IntersectRay finds where the line through ray crosses the plane. Unlike a
// segment test, points behind the ray origin are returned too.
func (p Plane) IntersectRay(ray pt.Ray) (pt.Vector, bool) {
	w := ray.Origin.Sub(p.Point)
	d := p.Normal.Dot(ray.Direction)
	if d > -1e-9 && d < 1e-9 {
		return pt.Vector{}, false
	}
	n := -p.Normal.Dot(w)
	t := n / d
	return ray.Position(t), true
}
