package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sun.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestCheckNadirHighSun(t *testing.T) {
	// Straight down with the sun near the zenith: both points sit close to the principal point
	hotspot, glint, err := CheckCmd{Config: writeConfig(t, "sun:\n  azimuth: 30\n  elevation: 85\n")}.check()
	require.NoError(t, err)
	assert.True(t, hotspot)
	assert.True(t, glint)
}

func TestCheckLowSun(t *testing.T) {
	hotspot, glint, err := CheckCmd{Config: writeConfig(t, "sun:\n  azimuth: 30\n  elevation: 10\n")}.check()
	require.NoError(t, err)
	assert.False(t, hotspot)
	assert.False(t, glint)

	err = CheckCmd{Config: writeConfig(t, "sun:\n  azimuth: 30\n  elevation: 10\n"), Strict: true}.Run()
	assert.Error(t, err)
}

func TestCheckInvalid(t *testing.T) {
	_, _, err := CheckCmd{Config: writeConfig(t, "camera:\n  focal_length: -1\n")}.check()
	assert.ErrorContains(t, err, "CAMERA")
}
