package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	esp2kanji "github.com/takatakatake/go-esp2kanji"
	"github.com/takatakatake/go-esp2kanji/internal/config"
	"github.com/takatakatake/go-esp2kanji/internal/fileutil"
	"github.com/takatakatake/go-esp2kanji/internal/pipeline"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput        = errors.New("no input specified")
	ErrReadInput      = errors.New("failed to read input file")
	ErrWriteOutput    = errors.New("failed to write output file")
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrConverterInit  = errors.New("failed to initialize converter")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// FileToConvert represents a single input to process. An InputPath of "-"
// reads stdin; an OutputPath of "-" writes stdout.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// conversionParams groups parameters shared across the batch.
type conversionParams struct {
	format   string
	notation string
	markdown bool
	pdf      bool
	env      *Environment
}

// runConvertCommand parses flags, builds the pool, and runs the batch.
func runConvertCommand(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return ExitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runConvert(ctx, positional, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positional []string, flags *convertFlags, env *Environment) error {
	cfg, err := loadAndMergeConfig(&flags.common, func(c *config.Config) {
		mergeConvertFlags(flags, c)
	})
	if err != nil {
		return err
	}

	if !esp2kanji.IsValidFormat(cfg.Format) {
		return fmt.Errorf("%w: %q", esp2kanji.ErrInvalidFormat, cfg.Format)
	}
	if !esp2kanji.IsValidNotation(cfg.Notation) {
		return fmt.Errorf("%w: %q", esp2kanji.ErrInvalidNotation, cfg.Notation)
	}
	if cfg.Workers < 0 || cfg.Workers > esp2kanji.MaxWorkers {
		return fmt.Errorf("%w: %d (max %d)", esp2kanji.ErrInvalidWorkers, cfg.Workers, esp2kanji.MaxWorkers)
	}

	opts, err := converterOptions(cfg)
	if err != nil {
		return err
	}

	files, err := resolveFiles(positional, flags.output, cfg)
	if err != nil {
		return err
	}

	params := &conversionParams{
		format:   cfg.Format,
		notation: cfg.Notation,
		markdown: flags.markdown,
		pdf:      flags.pdf,
		env:      env,
	}

	poolSize := esp2kanji.ResolvePoolSize(0)
	if poolSize > len(files) {
		poolSize = len(files)
	}
	pool := newConverterPool(poolSize, opts...)
	defer pool.Close()

	results := convertBatch(ctx, pool, files, params)
	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// loadAndMergeConfig loads the named config (or defaults) and merges CLI
// flags on top; flags win.
func loadAndMergeConfig(common *commonFlags, merge func(*config.Config)) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if common.config != "" {
		loaded, err := config.LoadConfig(common.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	merge(cfg)
	return cfg, nil
}

// mergeConvertFlags overlays non-empty convert flags onto the config.
func mergeConvertFlags(flags *convertFlags, cfg *config.Config) {
	if flags.rules != "" {
		cfg.Rules = flags.rules
	}
	if flags.skipPlaceholders != "" {
		cfg.Placeholders.Skip = flags.skipPlaceholders
	}
	if flags.localizedPlaceholders != "" {
		cfg.Placeholders.Localized = flags.localizedPlaceholders
	}
	if flags.format != "" {
		cfg.Format = flags.format
	}
	if flags.notation != "" {
		cfg.Notation = flags.notation
	}
	if flags.workers != 0 {
		cfg.Workers = flags.workers
	}
	if flags.timeout != "" {
		cfg.Timeout = flags.timeout
	}
}

// converterOptions translates config into library options, loading rule and
// placeholder files as needed.
func converterOptions(cfg *config.Config) ([]esp2kanji.Option, error) {
	var opts []esp2kanji.Option

	if cfg.Rules != "" {
		rules, err := esp2kanji.LoadRuleSet(cfg.Rules)
		if err != nil {
			return nil, err
		}
		opts = append(opts, esp2kanji.WithRules(rules))
	}
	if cfg.Placeholders.Skip != "" {
		sentinels, err := pipeline.LoadPlaceholders(cfg.Placeholders.Skip)
		if err != nil {
			return nil, err
		}
		opts = append(opts, esp2kanji.WithSkipPlaceholders(sentinels))
	}
	if cfg.Placeholders.Localized != "" {
		sentinels, err := pipeline.LoadPlaceholders(cfg.Placeholders.Localized)
		if err != nil {
			return nil, err
		}
		opts = append(opts, esp2kanji.WithLocalizedPlaceholders(sentinels))
	}
	if cfg.Workers >= 2 {
		opts = append(opts, esp2kanji.WithWorkers(cfg.Workers))
	}
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, cfg.Timeout)
		}
		opts = append(opts, esp2kanji.WithTimeout(d))
	}
	return opts, nil
}

// resolveFiles pairs each input with its output path.
func resolveFiles(positional []string, output string, cfg *config.Config) ([]FileToConvert, error) {
	if len(positional) == 0 {
		return nil, ErrNoInput
	}

	ext := outputExt(cfg.Format)
	outputDir := cfg.Output.DefaultDir

	// Single input with an explicit non-directory output keeps it as-is.
	if len(positional) == 1 && output != "" && !isDir(output) {
		return []FileToConvert{{InputPath: positional[0], OutputPath: output}}, nil
	}
	if output != "" {
		outputDir = output
	}

	files := make([]FileToConvert, 0, len(positional))
	for _, in := range positional {
		if in == "-" {
			files = append(files, FileToConvert{InputPath: "-", OutputPath: "-"})
			continue
		}
		base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in)) + ext
		dir := outputDir
		if dir == "" {
			dir = filepath.Dir(in)
		}
		files = append(files, FileToConvert{InputPath: in, OutputPath: filepath.Join(dir, base)})
	}
	return files, nil
}

// outputExt returns the output file extension for a format.
func outputExt(format string) string {
	if esp2kanji.IsHTMLFormat(format) {
		return ".html"
	}
	return ".txt"
}

// isDir returns true if path exists and is a directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// convertBatch processes files concurrently using the converter pool.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			conv, err := pool.Acquire(ctx)
			if err != nil {
				// Converter creation failed, mark remaining jobs as failed
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       fmt.Errorf("%w: %v", ErrConverterInit, err),
					}
				}
				return
			}
			defer pool.Release(conv)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single input and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	finish := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	text, err := readInput(f.InputPath)
	if err != nil {
		return finish(fmt.Errorf("%w: %v", ErrReadInput, err))
	}

	res, err := conv.Convert(ctx, esp2kanji.Input{
		Text:     text,
		Format:   params.format,
		Notation: params.notation,
		Markdown: params.markdown,
		PDF:      params.pdf,
	})
	if err != nil {
		return finish(err)
	}

	if err := writeOutput(f.OutputPath, res.Text, params.env); err != nil {
		return finish(err)
	}

	if params.pdf && f.OutputPath != "-" {
		pdfPath := strings.TrimSuffix(f.OutputPath, filepath.Ext(f.OutputPath)) + ".pdf"
		// #nosec G306 -- PDFs are meant to be readable
		if err := os.WriteFile(pdfPath, res.PDF, filePermissions); err != nil {
			return finish(fmt.Errorf("%w: %v", ErrWriteOutput, err))
		}
	}

	return finish(nil)
}

// readInput reads an input file or stdin ("-").
func readInput(path string) (string, error) {
	if path == "-" {
		content, err := io.ReadAll(os.Stdin)
		return string(content), err
	}
	return fileutil.ReadTextFile(path)
}

// writeOutput writes converted text to a file or stdout ("-").
func writeOutput(path, text string, env *Environment) error {
	if path == "-" {
		_, err := io.WriteString(env.Stdout, text)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	// #nosec G306 -- converted text is meant to be readable
	if err := os.WriteFile(path, []byte(text), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// printResults outputs conversion results and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}
		if quiet || r.OutputPath == "-" {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}
	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(results)-failed, failed)
	}
	return failed
}
