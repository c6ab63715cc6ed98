package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestConvertLineBreaks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "newline becomes br",
			input:    "unua\ndua",
			expected: "unua<br>\ndua",
		},
		{
			name:     "single space preserved",
			input:    "a b",
			expected: "a b",
		},
		{
			name:     "space run becomes nbsp entities",
			input:    "a   b",
			expected: "a&nbsp;&nbsp;&nbsp;b",
		},
		{
			name:     "empty text",
			input:    "",
			expected: "",
		},
		{
			name:     "mixed spaces and newlines",
			input:    "a  b\nc",
			expected: "a&nbsp;&nbsp;b<br>\nc",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ConvertLineBreaks(tt.input)
			if got != tt.expected {
				t.Errorf("ConvertLineBreaks(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWrapHTML(t *testing.T) {
	t.Parallel()

	t.Run("with style", func(t *testing.T) {
		t.Parallel()

		got := WrapHTML("saluton", "ruby rt { font-size: 0.5em; }")
		for _, want := range []string{
			"<!DOCTYPE html>",
			`<html lang="eo">`,
			"<style>\nruby rt { font-size: 0.5em; }\n</style>",
			"saluton",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("WrapHTML() missing %q in:\n%s", want, got)
			}
		}
	})

	t.Run("empty style omits style block", func(t *testing.T) {
		t.Parallel()

		got := WrapHTML("saluton", "")
		if strings.Contains(got, "<style>") {
			t.Errorf("WrapHTML() with empty style contains a style block:\n%s", got)
		}
		if !strings.Contains(got, "saluton") {
			t.Errorf("WrapHTML() missing body text:\n%s", got)
		}
	})
}

func TestHTMLDocumentFormatterFormat(t *testing.T) {
	t.Parallel()

	f := &HTMLDocumentFormatter{}
	got := f.Format(context.Background(), "unua\ndua", "body {}")

	if !strings.Contains(got, "unua<br>\ndua") {
		t.Errorf("Format() did not convert line breaks:\n%s", got)
	}
	if !strings.Contains(got, "<style>") {
		t.Errorf("Format() did not include the style block:\n%s", got)
	}
}

func TestHTMLDocumentFormatterCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &HTMLDocumentFormatter{}
	if got := f.Format(ctx, "teksto", "body {}"); got != "teksto" {
		t.Errorf("Format() with cancelled context = %q, want input unchanged", got)
	}
}
