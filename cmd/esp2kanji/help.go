package main

import (
	"fmt"
	"io"
)

// printUsage writes the top-level usage text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `esp2kanji - replace Esperanto text with Kanji and ruby annotations

Usage:
  esp2kanji [convert] [flags] <input.txt>...   convert files (or - for stdin)
  esp2kanji serve [flags]                      run the web form UI
  esp2kanji check <rules.json>                 diagnose a rule file
  esp2kanji version                            print the version
  esp2kanji help                               show this help

Run "esp2kanji convert --help" or "esp2kanji serve --help" for flags.

Marking spans in input text:
  %...%   the enclosed text (up to 50 chars) is never replaced
  @...@   only the localized rule list applies to the enclosed text
`)
}

// printConvertUsage writes usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: esp2kanji convert [flags] <input.txt>...

Converts each input file (or stdin with "-") and writes the result next to
the source, or into the --output file/directory.

Flags:
  -o, --output                  output file or directory
  -r, --rules                   replacement rule JSON file
      --skip-placeholders       sentinel list file for %...% spans
      --localized-placeholders  sentinel list file for @...@ spans
  -f, --format                  ruby-html, html, parentheses, text
  -n, --notation                circumflex, x, caret
  -w, --workers                 parallel chunk workers (0/1 = serial)
      --markdown                treat input as Markdown (HTML formats only)
      --pdf                     also render the HTML output to PDF
  -t, --timeout                 PDF render timeout (e.g., 30s)
  -c, --config                  config file name or path
  -q, --quiet                   only show errors
  -v, --verbose                 show detailed timing
`)
}

// printServeUsage writes usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprint(w, `Usage: esp2kanji serve [flags]

Runs the web form UI: paste or upload Esperanto text, pick a format and
notation, preview the result, and download it.

Flags:
  -a, --addr                    listen address (default :8080)
  -r, --rules                   default replacement rule JSON file
      --skip-placeholders       sentinel list file for %...% spans
      --localized-placeholders  sentinel list file for @...@ spans
  -t, --timeout                 PDF render timeout (e.g., 30s)
  -c, --config                  config file name or path
`)
}
