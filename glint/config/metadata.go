package config

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MetadataCollector handles collecting metadata for runs
type MetadataCollector struct {
	timestamp time.Time
	gitCommit string
	runID     string
}

// NewMetadataCollector creates a new MetadataCollector with current timestamp.
// Outside a git checkout the commit is left empty.
func NewMetadataCollector() (*MetadataCollector, error) {
	runID, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("generating run id: %w", err)
	}

	// Not fatal: runs may happen outside a checkout
	gitCommit, _ := getCurrentGitCommit()

	return &MetadataCollector{
		timestamp: time.Now().UTC(),
		gitCommit: gitCommit,
		runID:     runID.String(),
	}, nil
}

// getCurrentGitCommit gets the current git commit hash
func getCurrentGitCommit() (string, error) {
	cmd := exec.Command("git", "rev-parse", "HEAD")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// PopulateMetadata fills in the metadata fields of the config
func (mc *MetadataCollector) PopulateMetadata(config *Config) {
	config.Metadata.Timestamp = mc.timestamp.Format("2006-01-02 15:04:05")
	config.Metadata.GitCommit = mc.gitCommit
	config.Metadata.RunID = mc.runID
}
