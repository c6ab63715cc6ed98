// Package esp2kanji replaces Esperanto text with Kanji-equivalent
// substitutions and optionally annotates them with ruby (phonetic guide)
// markup, for presentation as HTML or plain text.
//
// # Quick Start
//
// Create a converter with a rule set, then convert:
//
//	rules, err := esp2kanji.LoadRuleSet("rules.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	conv, err := esp2kanji.NewConverter(esp2kanji.WithRules(rules))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//
//	result, err := conv.Convert(ctx, esp2kanji.Input{
//	    Text:   "mi ŝatas kafon",
//	    Format: esp2kanji.FormatRubyHTML,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("out.html", []byte(result.Text), 0o644)
//
// # Substitution Pipeline
//
// Conversion runs these stages:
//
//  1. Normalization (NFC, line endings, diacritics folded to circumflex)
//  2. Placeholder guard: %...% spans are protected, @...@ spans scoped
//  3. Ordered safe-replace passes: localized, global, two-character roots
//  4. Diacritic notation conversion (circumflex, x-digraph, caret-digraph)
//  5. Output formatting (ruby HTML document, plain HTML, or bare text)
//
// Text wrapped in %...% is skipped entirely and restored byte-identical.
// Text wrapped in @...@ has only the localized rule list applied inside.
//
// # Parallel Processing
//
// Use WithWorkers to split large inputs into line-aligned chunks and run the
// substitution engine per chunk. Chunk boundaries never sever a marked span,
// so parallel and serial runs produce identical output:
//
//	conv, err := esp2kanji.NewConverter(
//	    esp2kanji.WithRules(rules),
//	    esp2kanji.WithWorkers(4),
//	)
//
// For batch conversion across files, ConverterPool manages reusable
// converter instances.
//
// # PDF Output
//
// HTML output can be rendered to PDF with headless Chrome via go-rod. The
// browser is launched lazily on first use; set ROD_BROWSER_BIN to use a
// pre-installed binary in containers.
package esp2kanji
