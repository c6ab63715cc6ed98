package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common                commonFlags
	output                string
	rules                 string
	skipPlaceholders      string
	localizedPlaceholders string
	format                string
	notation              string
	workers               int
	timeout               string
	markdown              bool
	pdf                   bool
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common                commonFlags
	addr                  string
	rules                 string
	skipPlaceholders      string
	localizedPlaceholders string
	timeout               string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addRuleFlags adds rule and placeholder source flags to a FlagSet.
func addRuleFlags(fs *flag.FlagSet, rules, skip, localized *string) {
	fs.StringVarP(rules, "rules", "r", "", "replacement rule JSON file (\"\" = built-in sample)")
	fs.StringVar(skip, "skip-placeholders", "", "sentinel list file for %...% spans")
	fs.StringVar(localized, "localized-placeholders", "", "sentinel list file for @...@ spans")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVarP(&f.format, "format", "f", "", "output format: ruby-html, html, parentheses, text")
	fs.StringVarP(&f.notation, "notation", "n", "", "diacritic notation: circumflex, x, caret")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel chunk workers (0/1 = serial)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF render timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.markdown, "markdown", false, "treat input as Markdown (HTML formats only)")
	fs.BoolVar(&f.pdf, "pdf", false, "also render the HTML output to PDF")

	addCommonFlags(fs, &f.common)
	addRuleFlags(fs, &f.rules, &f.skipPlaceholders, &f.localizedPlaceholders)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags.
func parseServeFlags(args []string) (*serveFlags, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	f := &serveFlags{}

	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (default :8080)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF render timeout (e.g., 30s, 2m)")

	addCommonFlags(fs, &f.common)
	addRuleFlags(fs, &f.rules, &f.skipPlaceholders, &f.localizedPlaceholders)

	fs.Usage = func() { printServeUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
