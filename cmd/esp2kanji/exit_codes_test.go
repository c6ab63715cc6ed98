package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	esp2kanji "github.com/takatakatake/go-esp2kanji"
	"github.com/takatakatake/go-esp2kanji/internal/config"
	"github.com/takatakatake/go-esp2kanji/internal/pipeline"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "unknown error", err: errors.New("boom"), want: ExitGeneral},

		{name: "browser connect", err: esp2kanji.ErrBrowserConnect, want: ExitBrowser},
		{name: "page load", err: esp2kanji.ErrPageLoad, want: ExitBrowser},
		{name: "pdf generation", err: esp2kanji.ErrPDFGeneration, want: ExitBrowser},

		{name: "file not found", err: os.ErrNotExist, want: ExitIO},
		{name: "permission", err: os.ErrPermission, want: ExitIO},
		{name: "no input", err: ErrNoInput, want: ExitIO},
		{name: "read input", err: ErrReadInput, want: ExitIO},
		{name: "write output", err: ErrWriteOutput, want: ExitIO},
		{name: "rule file missing", err: esp2kanji.ErrRuleFileNotFound, want: ExitIO},
		{name: "placeholder file", err: pipeline.ErrPlaceholderFile, want: ExitIO},

		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, want: ExitUsage},
		{name: "empty text", err: esp2kanji.ErrEmptyText, want: ExitUsage},
		{name: "invalid format", err: esp2kanji.ErrInvalidFormat, want: ExitUsage},
		{name: "invalid notation", err: esp2kanji.ErrInvalidNotation, want: ExitUsage},
		{name: "invalid workers", err: esp2kanji.ErrInvalidWorkers, want: ExitUsage},
		{name: "markdown needs html", err: esp2kanji.ErrMarkdownNeedsHTML, want: ExitUsage},
		{name: "pdf needs html", err: esp2kanji.ErrPDFNeedsHTML, want: ExitUsage},
		{name: "rule parse", err: esp2kanji.ErrRuleParse, want: ExitUsage},
		{name: "invalid rule", err: esp2kanji.ErrInvalidRule, want: ExitUsage},
		{name: "invalid timeout", err: ErrInvalidTimeout, want: ExitUsage},

		{
			name: "wrapped errors resolve",
			err:  fmt.Errorf("loading: %w", esp2kanji.ErrRuleFileNotFound),
			want: ExitIO,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
