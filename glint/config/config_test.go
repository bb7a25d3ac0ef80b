package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goglint "github.com/jdginn/go-sun-glint/glint"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	assert := assert.New(t)
	cfg := Default()

	assert.Equal(goglint.DefaultCameraSpec(), cfg.Camera.Create())
	assert.EqualValues(45, cfg.Sun.Elevation)
	assert.Equal(800, cfg.Output.Render.Width)
	assert.EqualValues(500, cfg.Output.Render.Buffer)
	assert.Equal("info", cfg.Logging.Level)
	assert.Empty(cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
camera:
  focal_length: 1000
  format:
    width: 800
    height: 600
sun:
  azimuth: 135
  elevation: 40
attitude:
  omega: 5
  phi: -3
  kappa: 90
output:
  directory: out
logging:
  level: debug
  file: logs/glint.log
`)

	cfg, err := LoadFromFile(path, LoadOptions{ValidateImmediately: true, ResolvePaths: true})
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(goglint.CameraSpec{FocalLength: 1000, FormatWidth: 800, FormatHeight: 600}, cfg.Camera.Create())
	assert.Equal(filepath.Join(filepath.Dir(path), "out"), cfg.Output.Directory)
	assert.Equal(filepath.Join(filepath.Dir(path), "logs", "glint.log"), cfg.Logging.File)
	// Sections missing from the file keep their defaults
	assert.Equal(800, cfg.Output.Render.Height)

	in := cfg.Inputs()
	assert.InDelta(goglint.Radians(135), in.Azimuth, 1e-12)
	assert.InDelta(goglint.Radians(40), in.Elevation, 1e-12)
	assert.InDelta(goglint.Radians(-3), in.Attitude.Phi, 1e-12)
	assert.InDelta(goglint.Radians(90), in.Attitude.Kappa, 1e-12)
}

func TestLoadFromFileKeepsAbsolutePaths(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "elsewhere")
	path := writeConfig(t, "output:\n  directory: "+abs+"\n")

	cfg, err := LoadFromFile(path, LoadOptions{ResolvePaths: true})
	require.NoError(t, err)
	assert.Equal(t, abs, cfg.Output.Directory)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"), LoadOptions{})
	assert.ErrorContains(t, err, "reading config file")

	_, err = LoadFromFile(writeConfig(t, "camera: [1, 2"), LoadOptions{})
	assert.ErrorContains(t, err, "parsing config file")

	_, err = LoadFromFile(writeConfig(t, "camera:\n  focal_length: -1\n"), LoadOptions{ValidateImmediately: true})
	assert.ErrorContains(t, err, "camera.focal_length")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Camera.Format.Width = 0
	cfg.Sun.Elevation = 91
	cfg.Output.Directory = ""
	cfg.Output.Render.Buffer = -1
	cfg.Logging.Level = "loud"

	fields := []string{}
	for _, err := range cfg.Validate() {
		fields = append(fields, err.Field)
	}
	assert.ElementsMatch(t, []string{
		"camera.format.width",
		"sun.elevation",
		"output.directory",
		"output.render.buffer",
		"logging.level",
	}, fields)
}

func TestFormatValidationErrors(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("", FormatValidationErrors(nil))

	out := FormatValidationErrors([]ValidationError{
		{Field: "sun.elevation", Message: "must be between -90 and 90"},
		{Field: "camera.focal_length", Message: "must be positive"},
		{Field: "camera", Message: "missing"},
	})
	assert.True(strings.HasPrefix(out, "Validation Errors:\n"))
	assert.Contains(out, "CAMERA:\n  - focal_length: must be positive\n  - general: missing\n")
	assert.Contains(out, "SUN:\n  - elevation: must be between -90 and 90\n")
	assert.Less(strings.Index(out, "CAMERA"), strings.Index(out, "SUN"))
}

func TestSaveToFile(t *testing.T) {
	cfg := Default()
	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, SaveToFile(cfg, path))

	loaded, err := LoadFromFile(path, LoadOptions{ValidateImmediately: true})
	require.NoError(t, err)
	assert.NotEmpty(t, loaded.Metadata.Timestamp)
	assert.Len(t, loaded.Metadata.RunID, 36)
	assert.Equal(t, cfg.Camera, loaded.Camera)
}
