package glint

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fogleman/pt/pt"
)

// JSON schema types
type PointJSON struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
	Size float64 `json:"size,omitempty"`
	Name string  `json:"name,omitempty"`
}

type PathJSON struct {
	Points    []PointJSON `json:"points"`
	Name      string      `json:"name,omitempty"`
	Color     string      `json:"color,omitempty"`
	Thickness float64     `json:"thickness,omitempty"`
}

type ImagePointJSON struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	InFront bool    `json:"inFront"`
	Visible bool    `json:"visible"`
}

type SceneJSON struct {
	Caption  []string                  `json:"caption,omitempty"`
	Points   []PointJSON               `json:"points"`
	Paths    []PathJSON                `json:"paths"`
	Image    map[string]ImagePointJSON `json:"image"`
	Rotation [3][3]float64             `json:"rotation"`
}

// Conversion functions
func VectorToJSON(v pt.Vector) PointJSON {
	return PointJSON{
		X:    v.X,
		Y:    v.Y,
		Z:    v.Z,
		Size: 1.0,
	}
}

func namedPoint(name string, v pt.Vector) PointJSON {
	p := VectorToJSON(v)
	p.Name = name
	return p
}

func SegmentToJSON(s Segment) PathJSON {
	return PathJSON{
		Points:    []PointJSON{VectorToJSON(s.From), VectorToJSON(s.To)},
		Name:      s.Name,
		Color:     hexColor(s.Color),
		Thickness: 2,
	}
}

// SceneToJSON converts a scene into the annotation schema read by the viewer.
func SceneToJSON(s Scene) SceneJSON {
	c := s.Camera
	out := SceneJSON{
		Caption: []string{s.Inputs.SunCaption(), s.Inputs.AttitudeCaption()},
		Points: []PointJSON{
			namedPoint("origin", c.Origin),
			namedPoint("focal", c.Focal),
			namedPoint("ne", c.NE),
			namedPoint("nw", c.NW),
			namedPoint("sw", c.SW),
			namedPoint("se", c.SE),
			namedPoint("hotspot", s.Hotspot.Position),
			namedPoint("glint", s.Glint.Position),
		},
		Image: map[string]ImagePointJSON{},
	}

	for _, seg := range s.Segments() {
		out.Paths = append(out.Paths, SegmentToJSON(seg))
	}

	hotspot := s.ImagePoint(s.Hotspot.Position)
	out.Image["hotspot"] = ImagePointJSON{hotspot.X, hotspot.Y, s.Hotspot.InFront(), s.HotspotVisible()}
	glint := s.ImagePoint(s.Glint.Position)
	out.Image["glint"] = ImagePointJSON{glint.X, glint.Y, s.Glint.InFront(), s.GlintVisible()}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.Rotation[i][j] = s.Rotation.At(i, j)
		}
	}
	return out
}

// SaveSceneJSON saves the points and paths of a scene to a JSON file
func SaveSceneJSON(filename string, s Scene) error {
	data, err := json.MarshalIndent(SceneToJSON(s), "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling scene: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}
