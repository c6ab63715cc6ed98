package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestGoldmarkRendererRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "heading",
			input:    "# Saluton",
			contains: []string{"<h1", "Saluton", "</h1>"},
		},
		{
			name:     "emphasis",
			input:    "mi *ŝatas* kafon",
			contains: []string{"<em>ŝatas</em>"},
		},
		{
			name:     "gfm table",
			input:    "| vorto | kanji |\n|---|---|\n| kafo | 珈琲 |",
			contains: []string{"<table>", "<td>珈琲</td>"},
		},
		{
			name:     "inline ruby markup survives",
			input:    "mi <ruby>ŝatas<rt>好き</rt></ruby> kafon",
			contains: []string{"<ruby>ŝatas<rt>好き</rt></ruby>"},
		},
		{
			name:     "fenced code block highlighted with classes",
			input:    "```go\nfunc main() {}\n```",
			contains: []string{"<code", "main"},
		},
	}

	r := NewGoldmarkRenderer()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := r.Render(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Render(%q) missing %q in:\n%s", tt.input, want, got)
				}
			}
		})
	}
}

func TestGoldmarkRendererCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewGoldmarkRenderer()
	if _, err := r.Render(ctx, "# Saluton"); err == nil {
		t.Error("Render() with cancelled context should fail")
	}
}
