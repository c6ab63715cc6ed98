package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*
var styles embed.FS

//go:embed templates/*
var templates embed.FS

//go:embed rules/default.json
var defaultRules []byte

//go:embed placeholders/skip.txt
var sampleSkipPlaceholders []byte

//go:embed placeholders/localized.txt
var sampleLocalizedPlaceholders []byte

// RubyStyleName is the default stylesheet for ruby-annotated HTML output.
const RubyStyleName = "ruby"

// DefaultRules returns the embedded sample rule set JSON. It demonstrates
// the three-list layout and both key spellings; real deployments supply
// their own generated rule file.
func DefaultRules() []byte {
	out := make([]byte, len(defaultRules))
	copy(out, defaultRules)
	return out
}

// SampleSkipPlaceholders returns the embedded sample %...% sentinel list.
func SampleSkipPlaceholders() []byte {
	out := make([]byte, len(sampleSkipPlaceholders))
	copy(out, sampleSkipPlaceholders)
	return out
}

// SampleLocalizedPlaceholders returns the embedded sample @...@ sentinel list.
func SampleLocalizedPlaceholders() []byte {
	out := make([]byte, len(sampleLocalizedPlaceholders))
	copy(out, sampleLocalizedPlaceholders)
	return out
}

// EmbeddedLoader loads assets from the embedded filesystem.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a CSS style by name, without the .css extension.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}

// LoadTemplate loads an HTML template by name, without the .html extension.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
