package config

import (
	goglint "github.com/jdginn/go-sun-glint/glint"
)

// Config represents the complete configuration for one hotspot & glint evaluation
type Config struct {
	Metadata Metadata `yaml:"metadata"`
	Camera   Camera   `yaml:"camera"`
	Sun      Sun      `yaml:"sun"`
	Attitude Attitude `yaml:"attitude"`
	Output   Output   `yaml:"output"`
	Logging  Logging  `yaml:"logging"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit"`
	RunID     string `yaml:"run_id"`
}

type Camera struct {
	FocalLength float64 `yaml:"focal_length"` // pixels
	Format      Format  `yaml:"format"`
}

type Format struct {
	Width  float64 `yaml:"width"`  // pixels
	Height float64 `yaml:"height"` // pixels
}

type Sun struct {
	Azimuth   float64 `yaml:"azimuth"`   // degrees clockwise from north
	Elevation float64 `yaml:"elevation"` // degrees above the horizon
}

type Attitude struct {
	Omega float64 `yaml:"omega"` // degrees
	Phi   float64 `yaml:"phi"`   // degrees
	Kappa float64 `yaml:"kappa"` // degrees
}

type Output struct {
	Directory string `yaml:"directory"`
	Render    Render `yaml:"render"`
	Plot      Plot   `yaml:"plot"`
}

type Render struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Buffer float64 `yaml:"buffer"` // scene pixels around the camera
}

type Plot struct {
	Width  float64 `yaml:"width"`  // inches
	Height float64 `yaml:"height"` // inches
}

type Logging struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a Config for the reference camera looking straight down
// with the sun due north at 45 degrees.
func Default() *Config {
	spec := goglint.DefaultCameraSpec()
	return &Config{
		Camera: Camera{
			FocalLength: spec.FocalLength,
			Format: Format{
				Width:  spec.FormatWidth,
				Height: spec.FormatHeight,
			},
		},
		Sun: Sun{
			Azimuth:   0,
			Elevation: 45,
		},
		Output: Output{
			Directory: "runs",
			Render: Render{
				Width:  800,
				Height: 800,
				Buffer: 500,
			},
			Plot: Plot{
				Width:  6,
				Height: 4,
			},
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Create converts the camera section into a core camera spec
func (c Camera) Create() goglint.CameraSpec {
	return goglint.CameraSpec{
		FocalLength:  c.FocalLength,
		FormatWidth:  c.Format.Width,
		FormatHeight: c.Format.Height,
	}
}

// Create converts the attitude section into radians
func (a Attitude) Create() goglint.Attitude {
	return goglint.Attitude{
		Omega: goglint.Radians(a.Omega),
		Phi:   goglint.Radians(a.Phi),
		Kappa: goglint.Radians(a.Kappa),
	}
}

// Inputs gathers the sun and attitude sections into core inputs
func (c *Config) Inputs() goglint.Inputs {
	return goglint.Inputs{
		Azimuth:   goglint.Radians(c.Sun.Azimuth),
		Elevation: goglint.Radians(c.Sun.Elevation),
		Attitude:  c.Attitude.Create(),
	}
}
