// Package file implements ports.SystemLoader for YAML system files.
package file

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seatwise/auctioneer/pkg/domain"
)

// Loader reads a bidding system from a single YAML document on disk.
type Loader struct {
	path string
}

// NewLoader creates a loader for the given system file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load implements ports.SystemLoader.
func (l *Loader) Load() (*domain.System, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read system file: %w", err)
	}
	var system domain.System
	if err := yaml.Unmarshal(data, &system); err != nil {
		return nil, fmt.Errorf("parse system file %s: %w", l.path, err)
	}
	if len(system.Openings) == 0 {
		return nil, fmt.Errorf("system file %s defines no openings", l.path)
	}
	return &system, nil
}
