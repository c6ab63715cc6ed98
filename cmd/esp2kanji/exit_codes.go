package main

import (
	"errors"
	"os"

	esp2kanji "github.com/takatakatake/go-esp2kanji"
	"github.com/takatakatake/go-esp2kanji/internal/config"
	"github.com/takatakatake/go-esp2kanji/internal/pipeline"
)

// Exit codes for the esp2kanji CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // successful conversion
	ExitGeneral = 1 // general/unexpected error
	ExitUsage   = 2 // invalid flags, config, or validation
	ExitIO      = 3 // file not found, permission denied
	ExitBrowser = 4 // browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must wrap with %w.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, esp2kanji.ErrBrowserConnect) ||
		errors.Is(err, esp2kanji.ErrPageCreate) ||
		errors.Is(err, esp2kanji.ErrPageLoad) ||
		errors.Is(err, esp2kanji.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, esp2kanji.ErrRuleFileNotFound) ||
		errors.Is(err, pipeline.ErrPlaceholderFile) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, esp2kanji.ErrEmptyText) ||
		errors.Is(err, esp2kanji.ErrInvalidFormat) ||
		errors.Is(err, esp2kanji.ErrInvalidNotation) ||
		errors.Is(err, esp2kanji.ErrInvalidWorkers) ||
		errors.Is(err, esp2kanji.ErrMarkdownNeedsHTML) ||
		errors.Is(err, esp2kanji.ErrPDFNeedsHTML) ||
		errors.Is(err, esp2kanji.ErrRuleParse) ||
		errors.Is(err, esp2kanji.ErrInvalidRule) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
