package rates

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rateFile is the on-disk shape of a rate-table override.
type rateFile struct {
	Units Table `yaml:"units"`
}

// Load parses a rate table from YAML. Season cells may be numbers or null
// ("not offered"); omitting a tier removes it for that unit entirely.
func Load(data []byte) (Table, error) {
	var f rateFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rate table YAML: %w", err)
	}
	if len(f.Units) == 0 {
		return nil, fmt.Errorf("rate table defines no units")
	}
	if errs := f.Units.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("rate table invalid: %v (and %d more)", errs[0], len(errs)-1)
	}
	return f.Units, nil
}

// LoadFile reads a rate-table override from a YAML file.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rate table file: %w", err)
	}
	return Load(data)
}
