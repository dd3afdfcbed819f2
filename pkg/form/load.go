package form

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadSnapshot reads a snapshot from a YAML file, for evaluating a request
// from the command line.
func LoadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading snapshot file: %w", err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parsing snapshot YAML: %w", err)
	}
	return snap, nil
}
