// Package workspace manages the ephemeral directory that remote source
// snapshots are cloned into for the duration of a build.
package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/rondayan42/requiem-wiki/internal/logfields"
)

// Manager handles workspace directory lifecycle.
type Manager struct {
	baseDir string
	tempDir string
}

// NewManager creates a new workspace manager rooted at baseDir (os.TempDir
// when empty). Each Create call produces a fresh timestamped directory.
func NewManager(baseDir string) *Manager {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	return &Manager{baseDir: baseDir}
}

// Create creates a timestamped workspace directory.
func (m *Manager) Create() error {
	timestamp := time.Now().Format("20060102-150405")
	tempDir := filepath.Join(m.baseDir, fmt.Sprintf("wikibuild-%s", timestamp))

	if err := os.MkdirAll(tempDir, 0o750); err != nil {
		return fmt.Errorf("failed to create workspace directory: %w", err)
	}

	m.tempDir = tempDir
	slog.Info("Created workspace", logfields.Path(tempDir))
	return nil
}

// GetPath returns the path to the workspace directory.
func (m *Manager) GetPath() string {
	return m.tempDir
}

// CreateSubdir creates a subdirectory within the workspace.
func (m *Manager) CreateSubdir(name string) (string, error) {
	if m.tempDir == "" {
		return "", fmt.Errorf("workspace not created")
	}
	subdir := filepath.Join(m.tempDir, name)
	if err := os.MkdirAll(subdir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}
	return subdir, nil
}

// Cleanup removes the workspace directory.
func (m *Manager) Cleanup() error {
	if m.tempDir == "" {
		return nil
	}
	if err := os.RemoveAll(m.tempDir); err != nil {
		return fmt.Errorf("failed to cleanup workspace: %w", err)
	}
	slog.Info("Cleaned up workspace", logfields.Path(m.tempDir))
	m.tempDir = ""
	return nil
}
