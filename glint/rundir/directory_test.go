package rundir

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRunID(t *testing.T) {
	id := GenerateRunID()
	assert.Regexp(t, regexp.MustCompile(`^[a-z]+-[a-z]+-\d{8}-\d{6}\.\d{3}$`), id)
}

func TestCreate(t *testing.T) {
	root := filepath.Join(t.TempDir(), "runs")

	run, err := Create(root)
	require.NoError(t, err)

	info, err := os.Stat(run.Path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.True(t, filepath.IsAbs(run.Path))
	assert.Equal(t, filepath.Join(run.Path, "scene.png"), run.GetFilePath("scene.png"))

	target, err := os.Readlink(filepath.Join(root, LatestSymlink))
	require.NoError(t, err)
	assert.Equal(t, run.ID, target)
}

func TestCopyConfigFile(t *testing.T) {
	run, err := Create(filepath.Join(t.TempDir(), "runs"))
	require.NoError(t, err)

	src := filepath.Join(t.TempDir(), "sun.yaml")
	require.NoError(t, os.WriteFile(src, []byte("sun:\n  azimuth: 90\n"), 0644))

	require.NoError(t, run.CopyConfigFile(src))
	data, err := os.ReadFile(run.GetFilePath("sun.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "sun:\n  azimuth: 90\n", string(data))

	assert.Error(t, run.CopyConfigFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
