// Package i18n maps the engine's stable ids (document categories, diagnostic
// reason codes) to display strings. The engine itself never sees localized
// text; callers pick a provider for the active language.
package i18n

import (
	"github.com/aniolquer/node-smart-form/pkg/documents"
)

// DefaultLanguage is used when a requested language has no bundle.
const DefaultLanguage = "es"

// DocumentText is the label and helper description shown above a document
// upload field.
type DocumentText struct {
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// Bundle holds every display string for one language.
type Bundle struct {
	Documents map[documents.Category]DocumentText `yaml:"documents"`
	Reasons   map[string]string                   `yaml:"reasons"`
}

// Provider resolves ids for one language, falling back to the default
// language and finally to the raw id. It satisfies form.Messages.
type Provider struct {
	lang    string
	bundles map[string]Bundle
}

// NewProvider returns a provider for the given language over the built-in
// bundles (Spanish and English).
func NewProvider(lang string) *Provider {
	return &Provider{lang: lang, bundles: builtinBundles}
}

// Languages lists the languages the built-in bundles cover.
func Languages() []string {
	return []string{"es", "en"}
}

// Reason resolves a diagnostic reason code.
func (p *Provider) Reason(code string) string {
	if b, ok := p.bundles[p.lang]; ok {
		if msg, ok := b.Reasons[code]; ok {
			return msg
		}
	}
	if msg, ok := p.bundles[DefaultLanguage].Reasons[code]; ok {
		return msg
	}
	return code
}

// DocumentLabel resolves a document-category label.
func (p *Provider) DocumentLabel(c documents.Category) string {
	return p.documentText(c).Label
}

// DocumentDescription resolves the helper text under a document label.
func (p *Provider) DocumentDescription(c documents.Category) string {
	return p.documentText(c).Description
}

func (p *Provider) documentText(c documents.Category) DocumentText {
	if b, ok := p.bundles[p.lang]; ok {
		if t, ok := b.Documents[c]; ok {
			return t
		}
	}
	if t, ok := p.bundles[DefaultLanguage].Documents[c]; ok {
		return t
	}
	return DocumentText{Label: string(c)}
}
