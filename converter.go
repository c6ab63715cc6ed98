package esp2kanji

import (
	"context"
	"fmt"

	"github.com/takatakatake/go-esp2kanji/internal/assets"
	"github.com/takatakatake/go-esp2kanji/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.Normalizer        = (*pipeline.UnicodeNormalizer)(nil)
	_ pipeline.Engine            = (*pipeline.Replacer)(nil)
	_ pipeline.NotationConverter = (*pipeline.DigraphConverter)(nil)
	_ pipeline.DocumentFormatter = (*pipeline.HTMLDocumentFormatter)(nil)
	_ pipeline.MarkdownRenderer  = (*pipeline.GoldmarkRenderer)(nil)
	_ pdfRenderer                = (*rodRenderer)(nil)
)

// Converter orchestrates the Esperanto-to-Kanji substitution pipeline.
// Create with NewConverter, run with Convert, and Close when done.
// A Converter is safe for concurrent use: every stage is read-only after
// construction.
type Converter struct {
	cfg        converterConfig
	normalizer pipeline.Normalizer
	engine     pipeline.Engine
	notation   pipeline.NotationConverter
	formatter  pipeline.DocumentFormatter
	markdown   pipeline.MarkdownRenderer
	pdf        pdfRenderer
}

// NewConverter creates a Converter with default configuration. Use options
// to supply rules, placeholder lists, workers, and timeouts.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:        converterConfig{timeout: defaultTimeout},
		normalizer: &pipeline.UnicodeNormalizer{},
		notation:   &pipeline.DigraphConverter{},
		formatter:  &pipeline.HTMLDocumentFormatter{},
		markdown:   pipeline.NewGoldmarkRenderer(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.rules == nil {
		rules, err := ParseRuleSet(assets.DefaultRules())
		if err != nil {
			return nil, fmt.Errorf("parsing embedded rule set: %w", err)
		}
		c.cfg.rules = rules
	}

	if c.cfg.style == "" {
		style, err := assets.NewEmbeddedLoader().LoadStyle(assets.RubyStyleName)
		if err != nil {
			return nil, fmt.Errorf("loading ruby stylesheet: %w", err)
		}
		c.cfg.style = style
	}

	c.engine = &pipeline.Replacer{
		Global:             toPipelineRules(c.cfg.rules.Global),
		Localized:          toPipelineRules(c.cfg.rules.Localized),
		TwoChar:            toPipelineRules(c.cfg.rules.TwoChar),
		SkipSentinels:      c.cfg.skipSentinels,
		LocalizedSentinels: c.cfg.localizedSentinels,
	}

	// Created lazily by tests that inject a fake; production always uses rod.
	if c.pdf == nil {
		c.pdf = newRodRenderer(c.cfg.timeout)
	}

	return c, nil
}

// Convert runs the full pipeline. The context is used for cancellation.
// Recovers from internal panics to prevent crashes from propagating.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	format := input.Format
	if format == "" {
		format = FormatText
	}
	notation := input.Notation
	if notation == "" {
		notation = NotationCircumflex
	}

	text := c.normalizer.Normalize(ctx, input.Text)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if c.cfg.workers >= 2 {
		text, err = c.replaceParallel(ctx, text, c.cfg.workers)
		if err != nil {
			return nil, err
		}
	} else {
		text = c.engine.Replace(ctx, text)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	text = c.notation.Convert(ctx, text, notation)

	style := ""
	if format == FormatRubyHTML {
		style = c.cfg.style
	}

	switch {
	case input.Markdown:
		fragment, renderErr := c.markdown.Render(ctx, text)
		if renderErr != nil {
			return nil, fmt.Errorf("rendering markdown: %w", renderErr)
		}
		text = pipeline.WrapHTML(fragment, style)
	case IsHTMLFormat(format):
		text = c.formatter.Format(ctx, text, style)
	}

	res := &Result{Text: text}

	if input.PDF {
		pdfBytes, pdfErr := c.pdf.ToPDF(ctx, text)
		if pdfErr != nil {
			return nil, fmt.Errorf("rendering PDF: %w", pdfErr)
		}
		res.PDF = pdfBytes
	}

	return res, nil
}

// Close releases resources (headless Chrome browser, if one was launched).
func (c *Converter) Close() error {
	if c.pdf != nil {
		return c.pdf.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
//
// This is a TRUST BOUNDARY for direct library users who build Input by
// hand; the CLI validates flags earlier and both paths converge here.
func (c *Converter) validateInput(input Input) error {
	if input.Text == "" {
		return ErrEmptyText
	}
	if input.Format != "" && !IsValidFormat(input.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, input.Format)
	}
	if input.Notation != "" && !IsValidNotation(input.Notation) {
		return fmt.Errorf("%w: %q", ErrInvalidNotation, input.Notation)
	}
	if input.Markdown && !IsHTMLFormat(input.Format) {
		return fmt.Errorf("%w: got %q", ErrMarkdownNeedsHTML, input.Format)
	}
	if input.PDF && !IsHTMLFormat(input.Format) {
		return fmt.Errorf("%w: got %q", ErrPDFNeedsHTML, input.Format)
	}
	return nil
}
