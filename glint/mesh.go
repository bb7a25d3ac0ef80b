package glint

import (
	"fmt"

	"github.com/fogleman/pt/pt"
	"github.com/hpinc/go3mf"
)

const cameraObjectID = 1

func point3D(v pt.Vector) go3mf.Point3D {
	return go3mf.Point3D{float32(v.X), float32(v.Y), float32(v.Z)}
}

// CameraModel builds a 3MF model of the camera pyramid: one triangle from the
// projection centre to each image edge, plus the image plane itself.
// Coordinates are scene pixels written as millimetres.
func CameraModel(c CameraFrame) *go3mf.Model {
	const (
		origin = iota
		ne
		nw
		sw
		se
	)
	mesh := &go3mf.Mesh{}
	for _, v := range []pt.Vector{c.Origin, c.NE, c.NW, c.SW, c.SE} {
		mesh.Vertices.Vertex = append(mesh.Vertices.Vertex, point3D(v))
	}
	for _, t := range [][3]uint32{
		{origin, ne, nw},
		{origin, nw, sw},
		{origin, sw, se},
		{origin, se, ne},
		{ne, sw, nw},
		{ne, se, sw},
	} {
		mesh.Triangles.Triangle = append(mesh.Triangles.Triangle, go3mf.Triangle{V1: t[0], V2: t[1], V3: t[2]})
	}

	model := &go3mf.Model{Units: go3mf.UnitMillimeter}
	model.Resources.Objects = append(model.Resources.Objects, &go3mf.Object{
		ID:   cameraObjectID,
		Name: "camera",
		Mesh: mesh,
	})
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: cameraObjectID})
	return model
}

// SaveCamera3MF writes the camera pyramid to a 3MF file.
func SaveCamera3MF(path string, c CameraFrame) error {
	w, err := go3mf.CreateWriter(path)
	if err != nil {
		return fmt.Errorf("creating 3mf file: %w", err)
	}
	if err := w.Encode(CameraModel(c)); err != nil {
		w.Close()
		return fmt.Errorf("encoding camera model: %w", err)
	}
	return w.Close()
}
