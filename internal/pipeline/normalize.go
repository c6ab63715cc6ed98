package pipeline

import (
	"context"
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// crlfOrCR normalizes Windows and old-Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Normalizer defines the contract for input text normalization.
type Normalizer interface {
	Normalize(ctx context.Context, text string) string
}

// UnicodeNormalizer canonicalizes input before the replacement passes:
// NFC composition (so "c + combining circumflex" matches rule sources
// written with precomposed ĉ), \n line endings, and diacritics folded to
// circumflex form.
type UnicodeNormalizer struct{}

// Normalize applies all normalization steps.
func (n *UnicodeNormalizer) Normalize(ctx context.Context, text string) string {
	if ctx.Err() != nil {
		return text
	}

	text = norm.NFC.String(text)
	text = crlfOrCR.ReplaceAllString(text, "\n")
	text = FoldToCircumflex(text)
	return text
}
