package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths is the single source of truth for the directories the application
// touches.
type Paths struct {
	InputDir  string
	OutputDir string
	LogsDir   string
}

// NewPaths derives the path set from configuration. The logs directory is
// the parent of the configured log file.
func NewPaths(cfg *Config) *Paths {
	return &Paths{
		InputDir:  cfg.Processing.InputDir,
		OutputDir: cfg.Processing.OutputDir,
		LogsDir:   filepath.Dir(cfg.Logging.FilePath),
	}
}

// DocumentDir returns the per-document output folder, named after the
// document's source identifier.
func (p *Paths) DocumentDir(source string) string {
	return filepath.Join(p.OutputDir, source)
}

// EnsureDirectories creates the output and log directories.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.OutputDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
