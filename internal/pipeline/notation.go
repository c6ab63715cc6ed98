package pipeline

import (
	"context"
	"strings"
)

// Notation targets for Esperanto diacritic output.
const (
	NotationCircumflex = "circumflex" // ĉ ĝ ĥ ĵ ŝ ŭ
	NotationX          = "x"          // cx gx hx jx sx ux
	NotationCaret      = "caret"      // c^ g^ h^ j^ s^ u^
)

// Digraph tables are ordered pairs rather than maps so replacement order is
// deterministic. The pairs are disjoint, so order does not affect the result,
// but deterministic passes make failures reproducible.

// xToCircumflex folds x-digraph notation into circumflex letters.
// Both "Cx" and "CX" spellings map to the uppercase letter.
var xToCircumflex = [][2]string{
	{"cx", "ĉ"}, {"gx", "ĝ"}, {"hx", "ĥ"}, {"jx", "ĵ"}, {"sx", "ŝ"}, {"ux", "ŭ"},
	{"Cx", "Ĉ"}, {"Gx", "Ĝ"}, {"Hx", "Ĥ"}, {"Jx", "Ĵ"}, {"Sx", "Ŝ"}, {"Ux", "Ŭ"},
	{"CX", "Ĉ"}, {"GX", "Ĝ"}, {"HX", "Ĥ"}, {"JX", "Ĵ"}, {"SX", "Ŝ"}, {"UX", "Ŭ"},
}

// caretToCircumflex folds caret-digraph notation into circumflex letters.
var caretToCircumflex = [][2]string{
	{"c^", "ĉ"}, {"g^", "ĝ"}, {"h^", "ĥ"}, {"j^", "ĵ"}, {"s^", "ŝ"}, {"u^", "ŭ"},
	{"C^", "Ĉ"}, {"G^", "Ĝ"}, {"H^", "Ĥ"}, {"J^", "Ĵ"}, {"S^", "Ŝ"}, {"U^", "Ŭ"},
}

// circumflexToX expands circumflex letters into x-digraph notation.
var circumflexToX = [][2]string{
	{"ĉ", "cx"}, {"ĝ", "gx"}, {"ĥ", "hx"}, {"ĵ", "jx"}, {"ŝ", "sx"}, {"ŭ", "ux"},
	{"Ĉ", "Cx"}, {"Ĝ", "Gx"}, {"Ĥ", "Hx"}, {"Ĵ", "Jx"}, {"Ŝ", "Sx"}, {"Ŭ", "Ux"},
}

// circumflexToCaret expands circumflex letters into caret-digraph notation.
var circumflexToCaret = [][2]string{
	{"ĉ", "c^"}, {"ĝ", "g^"}, {"ĥ", "h^"}, {"ĵ", "j^"}, {"ŝ", "s^"}, {"ŭ", "u^"},
	{"Ĉ", "C^"}, {"Ĝ", "G^"}, {"Ĥ", "H^"}, {"Ĵ", "J^"}, {"Ŝ", "S^"}, {"Ŭ", "U^"},
}

// applyPairs applies ordered literal replacements to text.
func applyPairs(text string, pairs [][2]string) string {
	for _, p := range pairs {
		text = strings.ReplaceAll(text, p[0], p[1])
	}
	return text
}

// FoldToCircumflex converts x-digraph and caret-digraph notation into
// circumflex letters. It is the canonical form used during substitution.
func FoldToCircumflex(text string) string {
	text = applyPairs(text, xToCircumflex)
	text = applyPairs(text, caretToCircumflex)
	return text
}

// IsValidNotation reports whether target is a known notation name.
func IsValidNotation(target string) bool {
	switch target {
	case NotationCircumflex, NotationX, NotationCaret:
		return true
	}
	return false
}

// NotationConverter rewrites Esperanto diacritics between notations.
type NotationConverter interface {
	Convert(ctx context.Context, text, target string) string
}

// DigraphConverter implements NotationConverter using ordered literal passes.
// Unknown targets leave the text unchanged.
type DigraphConverter struct{}

// Convert rewrites text into the target notation. Input may mix all three
// notations; everything is folded to circumflex first, then expanded.
func (d *DigraphConverter) Convert(ctx context.Context, text, target string) string {
	if ctx.Err() != nil {
		return text
	}

	text = FoldToCircumflex(text)
	switch target {
	case NotationX:
		return applyPairs(text, circumflexToX)
	case NotationCaret:
		return applyPairs(text, circumflexToCaret)
	}
	return text
}
