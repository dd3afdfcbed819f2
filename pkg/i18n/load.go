package i18n

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadBundle reads a language bundle from a YAML file and registers it on
// the provider, overriding a built-in bundle of the same language. Missing
// keys keep falling back to the default language.
func (p *Provider) LoadBundle(lang, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading language bundle: %w", err)
	}

	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("parsing language bundle YAML: %w", err)
	}

	// Copy-on-write so the shared built-in map is never mutated.
	bundles := make(map[string]Bundle, len(p.bundles)+1)
	for k, v := range p.bundles {
		bundles[k] = v
	}
	bundles[lang] = b
	p.bundles = bundles
	return nil
}
