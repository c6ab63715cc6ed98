package esp2kanji

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyText         = errors.New("input text cannot be empty")
	ErrInvalidFormat     = errors.New("invalid output format")
	ErrInvalidNotation   = errors.New("invalid character notation")
	ErrInvalidWorkers    = errors.New("invalid worker count")
	ErrPDFNeedsHTML      = errors.New("PDF output requires an HTML format")
	ErrMarkdownNeedsHTML = errors.New("markdown input requires an HTML format")

	// Rule set errors.
	ErrRuleFileNotFound = errors.New("rule file not found")
	ErrRuleParse        = errors.New("failed to parse rule set")
	ErrInvalidRule      = errors.New("invalid replacement rule")

	// ErrPoolClosed is returned by ConverterPool.Acquire after Close.
	ErrPoolClosed = errors.New("converter pool is closed")

	// Browser/PDF errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
