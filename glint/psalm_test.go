package glint

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveSceneJSON(t *testing.T) {
	scene, err := Evaluate(DefaultCameraSpec(), nadir(0, 70))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "annotations.json")
	require.NoError(t, SaveSceneJSON(path, scene))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got SceneJSON
	require.NoError(t, json.Unmarshal(data, &got))

	assert := assert.New(t)
	assert.Len(got.Paths, 9)
	assert.Equal("hotspot", got.Paths[7].Name)
	assert.Equal("#FF9900", got.Paths[7].Color)
	assert.Len(got.Points, 8)
	assert.Equal("glint", got.Points[7].Name)
	assert.InDelta(scene.Glint.Position.Y, got.Points[7].Y, 1e-9)

	assert.True(got.Image["hotspot"].Visible)
	assert.True(got.Image["glint"].InFront)
	assert.Equal([]string{"az = 0 // elev = 70", "opk = (0, 0, 0)"}, got.Caption)
	assert.Equal([3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, got.Rotation)
}
