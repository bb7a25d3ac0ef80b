package rundir

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/jdginn/go-sun-glint/internal/logger"
)

const LatestSymlink = "latest"

type RunDir struct {
	Path      string    // Absolute path to run directory
	ID        string    // Unique run identifier
	Timestamp time.Time // When the run was created
}

// Create makes a new run directory under root and points root/latest at it
func Create(root string) (*RunDir, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating runs directory: %w", err)
	}

	id := GenerateRunID()

	absPath, err := filepath.Abs(filepath.Join(root, id))
	if err != nil {
		return nil, fmt.Errorf("getting absolute path: %w", err)
	}

	if err := os.Mkdir(absPath, 0755); err != nil {
		return nil, fmt.Errorf("creating run directory: %w", err)
	}

	latestPath := filepath.Join(root, LatestSymlink)
	_ = os.Remove(latestPath) // Remove existing symlink if it exists
	if err := os.Symlink(id, latestPath); err != nil {
		// Don't fail if symlink creation fails
		logger.Warn("failed to create latest symlink", zap.String("path", latestPath), zap.Error(err))
	}

	return &RunDir{
		Path:      absPath,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}, nil
}

// GetFilePath returns the absolute path for a file in the run directory
func (r *RunDir) GetFilePath(filename string) string {
	return filepath.Join(r.Path, filename)
}

// CopyConfigFile copies the provided config file to the run directory
func (r *RunDir) CopyConfigFile(srcPath string) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	destPath := r.GetFilePath(filepath.Base(srcPath))
	if err := os.WriteFile(destPath, content, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
