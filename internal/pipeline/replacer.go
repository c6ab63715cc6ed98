package pipeline

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

// Marked-span patterns. Spans are single-line: `.` does not match newlines,
// which is what keeps line-aligned chunk splitting safe (see chunk.go).
var (
	// %...% protects up to 50 characters from every replacement pass.
	skipSpanPattern = regexp.MustCompile(`%(.{1,50}?)%`)

	// @...@ scopes up to 18 characters to the localized rule list only.
	localizedSpanPattern = regexp.MustCompile(`@(.{1,18}?)@`)
)

// Rule is a single ordered replacement: From is the source literal, To the
// Kanji/markup target, and Placeholder the per-rule sentinel that prevents
// later rules from touching already-substituted spans.
type Rule struct {
	From        string
	To          string
	Placeholder string
}

// Engine applies the full multi-pass substitution to a piece of text.
// Callers splitting one text into chunks compute a SpanPlan over the whole
// text and run each chunk through ReplaceWithPlan.
type Engine interface {
	Replace(ctx context.Context, text string) string
	PlanSpans(text string) *SpanPlan
	ReplaceWithPlan(ctx context.Context, text string, plan *SpanPlan) string
}

// Replacer is the ordered, placeholder-safe substitution engine. Rule lists
// and placeholder lists are read-only after construction, so a single
// Replacer may be shared by parallel workers.
type Replacer struct {
	Global    []Rule
	Localized []Rule
	TwoChar   []Rule

	// SkipSentinels and LocalizedSentinels guard marked spans. A nil list
	// means sentinels are generated on demand (unbounded); a non-nil list
	// bounds how many spans are guarded, and excess spans are processed as
	// ordinary text.
	SkipSentinels      []string
	LocalizedSentinels []string
}

// guardedSpan records one marked span swapped for a sentinel.
type guardedSpan struct {
	original string // full span, delimiters included
	sentinel string
	restore  string // text put back after all passes
}

// SpanPlan pairs the marked spans of a text with their sentinels. A bounded
// sentinel list is budgeted while the plan is built, so a plan computed over
// a whole text guards exactly the spans a serial run over that text would,
// no matter how the text is later chunked.
type SpanPlan struct {
	skip      []guardedSpan
	localized []guardedSpan
}

// PlanSpans scans text and assigns a sentinel to every distinct marked span.
// Skip spans are collected first; localized spans are scanned on the guarded
// text, so an @...@ inside a %...% span is never collected.
func (r *Replacer) PlanSpans(text string) *SpanPlan {
	skipMatches := skipSpanPattern.FindAllString(text, -1)
	skip := r.collectSpans(skipMatches, r.SkipSentinels, GenerateSkipSentinel, func(m string) string {
		// Restored verbatim, % delimiters included, so the enclosed
		// substring is byte-identical in the output.
		return m
	})

	localizedMatches := localizedSpanPattern.FindAllString(swapSpans(text, skip), -1)
	localized := r.collectSpans(localizedMatches, r.LocalizedSentinels, GenerateLocalizedSentinel, func(m string) string {
		// The @ delimiters are consumed: restoration inserts the interior
		// with only the localized rule list applied.
		interior := strings.TrimSuffix(strings.TrimPrefix(m, "@"), "@")
		return safeReplace(interior, r.Localized)
	})

	return &SpanPlan{skip: skip, localized: localized}
}

// Replace runs the passes in order: skip guard, localized scope, global
// rules, two-character roots, then restoration. Context cancellation stops
// work between passes and returns the text as-is.
func (r *Replacer) Replace(ctx context.Context, text string) string {
	return r.ReplaceWithPlan(ctx, text, r.PlanSpans(text))
}

// ReplaceWithPlan is Replace with span guarding taken from a precomputed
// plan instead of a scan of text. Spans absent from the chunk swap nothing
// and restore nothing, so chunks of one text processed under one plan
// concatenate to the same bytes as a serial Replace of the whole text.
func (r *Replacer) ReplaceWithPlan(ctx context.Context, text string, plan *SpanPlan) string {
	if ctx.Err() != nil {
		return text
	}

	text = swapSpans(text, plan.skip)
	text = swapSpans(text, plan.localized)

	if ctx.Err() != nil {
		return restoreSpans(restoreSpans(text, plan.localized), plan.skip)
	}

	text = safeReplace(text, r.Global)
	text = r.replaceTwoCharRoots(text)

	text = restoreSpans(text, plan.localized)
	text = restoreSpans(text, plan.skip)
	return text
}

// collectSpans pairs distinct matches with sentinels, computing each span's
// restoration text. Matches beyond a bounded sentinel list are dropped.
func (r *Replacer) collectSpans(matches, sentinels []string, generate func(int) string, restore func(string) string) []guardedSpan {
	seen := make(map[string]bool, len(matches))
	var spans []guardedSpan
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true

		var sentinel string
		if sentinels == nil {
			sentinel = generate(len(spans))
		} else {
			if len(spans) >= len(sentinels) {
				break
			}
			sentinel = sentinels[len(spans)]
		}
		spans = append(spans, guardedSpan{original: m, sentinel: sentinel, restore: restore(m)})
	}
	return spans
}

// swapSpans replaces span text with sentinels, longest span first so a span
// whose text contains a shorter span's text is consumed whole.
func swapSpans(text string, spans []guardedSpan) string {
	ordered := make([]guardedSpan, len(spans))
	copy(ordered, spans)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].original) > len(ordered[j].original)
	})
	for _, sp := range ordered {
		text = strings.ReplaceAll(text, sp.original, sp.sentinel)
	}
	return text
}

// restoreSpans puts guarded spans back in reverse guard order.
func restoreSpans(text string, spans []guardedSpan) string {
	for i := len(spans) - 1; i >= 0; i-- {
		text = strings.ReplaceAll(text, spans[i].sentinel, spans[i].restore)
	}
	return text
}

// safeReplace applies rules in list order using two phases: every matching
// rule first swaps its source for its sentinel, then all sentinels are
// resolved to targets. Earlier rules therefore win, and no rule is ever
// applied to text produced by another rule.
func safeReplace(text string, rules []Rule) string {
	type resolution struct {
		sentinel string
		to       string
	}
	var pending []resolution

	for _, rule := range rules {
		if rule.From == "" || !strings.Contains(text, rule.From) {
			continue
		}
		text = strings.ReplaceAll(text, rule.From, rule.Placeholder)
		pending = append(pending, resolution{rule.Placeholder, rule.To})
	}
	for _, res := range pending {
		text = strings.ReplaceAll(text, res.sentinel, res.to)
	}
	return text
}

// replaceTwoCharRoots runs the two-character-root list twice. Sentinels from
// the first pass stay in place during the second, so a root uncovered by a
// neighboring substitution can match without disturbing finished spans.
// Both passes resolve in one combined restore.
func (r *Replacer) replaceTwoCharRoots(text string) string {
	type resolution struct {
		sentinel string
		to       string
	}
	var pending []resolution

	for _, rule := range r.TwoChar {
		if rule.From == "" || !strings.Contains(text, rule.From) {
			continue
		}
		text = strings.ReplaceAll(text, rule.From, rule.Placeholder)
		pending = append(pending, resolution{rule.Placeholder, rule.To})
	}
	for i, rule := range r.TwoChar {
		if rule.From == "" || !strings.Contains(text, rule.From) {
			continue
		}
		sentinel := secondPassSentinel(i)
		text = strings.ReplaceAll(text, rule.From, sentinel)
		pending = append(pending, resolution{sentinel, rule.To})
	}
	for _, res := range pending {
		text = strings.ReplaceAll(text, res.sentinel, res.to)
	}
	return text
}
