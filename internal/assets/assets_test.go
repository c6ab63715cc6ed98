package assets

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		asset   string
		wantErr bool
	}{
		{name: "simple name", asset: "ruby", wantErr: false},
		{name: "name with dash", asset: "ruby-large", wantErr: false},
		{name: "empty", asset: "", wantErr: true},
		{name: "path separator", asset: "styles/ruby", wantErr: true},
		{name: "backslash", asset: `styles\ruby`, wantErr: true},
		{name: "parent traversal", asset: "..", wantErr: true},
		{name: "embedded traversal", asset: "a..b", wantErr: true},
		{name: "null byte", asset: "ruby\x00", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.asset)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAssetName(%q) error = %v, wantErr %v", tt.asset, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("error = %v, want ErrInvalidAssetName", err)
			}
		})
	}
}

func TestEmbeddedLoaderLoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	css, err := loader.LoadStyle(RubyStyleName)
	if err != nil {
		t.Fatalf("LoadStyle(%q) error = %v", RubyStyleName, err)
	}
	if !strings.Contains(css, "ruby") {
		t.Error("ruby stylesheet does not mention ruby elements")
	}

	if _, err := loader.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(missing) error = %v, want ErrStyleNotFound", err)
	}
	if _, err := loader.LoadStyle("../escape"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadStyle with traversal error = %v, want ErrInvalidAssetName", err)
	}
}

func TestEmbeddedLoaderLoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	for _, name := range []string{"index", "result"} {
		html, err := loader.LoadTemplate(name)
		if err != nil {
			t.Fatalf("LoadTemplate(%q) error = %v", name, err)
		}
		if !strings.Contains(html, "<!DOCTYPE html>") {
			t.Errorf("template %q is not an HTML document", name)
		}
	}

	if _, err := loader.LoadTemplate("missing"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(missing) error = %v, want ErrTemplateNotFound", err)
	}
}

func TestDefaultRulesIsValidJSON(t *testing.T) {
	t.Parallel()

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(DefaultRules(), &raw); err != nil {
		t.Fatalf("embedded rule set is not valid JSON: %v", err)
	}
	if len(raw) == 0 {
		t.Error("embedded rule set is empty")
	}
}

func TestSamplePlaceholders(t *testing.T) {
	t.Parallel()

	skip := strings.TrimSpace(string(SampleSkipPlaceholders()))
	if skip == "" {
		t.Fatal("sample skip placeholder list is empty")
	}
	for _, line := range strings.Split(skip, "\n") {
		if !strings.HasPrefix(line, "%") || !strings.HasSuffix(line, "%") {
			t.Errorf("skip placeholder %q is not %%-delimited", line)
		}
	}

	localized := strings.TrimSpace(string(SampleLocalizedPlaceholders()))
	if localized == "" {
		t.Fatal("sample localized placeholder list is empty")
	}
	for _, line := range strings.Split(localized, "\n") {
		if !strings.HasPrefix(line, "@") || !strings.HasSuffix(line, "@") {
			t.Errorf("localized placeholder %q is not @-delimited", line)
		}
	}
}

func TestReturnedAssetsAreCopies(t *testing.T) {
	t.Parallel()

	first := DefaultRules()
	first[0] = 'X'
	second := DefaultRules()
	if second[0] == 'X' {
		t.Error("DefaultRules() returns a shared slice")
	}
}
