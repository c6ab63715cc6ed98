package esp2kanji

import "time"

// Output format constants.
const (
	// FormatRubyHTML emits a standalone HTML document carrying the ruby
	// sizing stylesheet, for rule sets whose targets contain <ruby> markup.
	FormatRubyHTML = "ruby-html"

	// FormatHTML emits a standalone HTML document without the ruby styles.
	FormatHTML = "html"

	// FormatParentheses emits bare text for rule sets whose targets carry
	// parenthetical annotations such as 珈琲(kafo).
	FormatParentheses = "parentheses"

	// FormatText emits bare replaced text.
	FormatText = "text"
)

// Notation constants for Esperanto diacritic output.
const (
	NotationCircumflex = "circumflex" // ĉ ĝ ĥ ĵ ŝ ŭ
	NotationX          = "x"          // cx gx hx jx sx ux
	NotationCaret      = "caret"      // c^ g^ h^ j^ s^ u^
)

// IsValidFormat reports whether format names a known output format.
func IsValidFormat(format string) bool {
	switch format {
	case FormatRubyHTML, FormatHTML, FormatParentheses, FormatText:
		return true
	}
	return false
}

// IsHTMLFormat reports whether format produces an HTML document.
func IsHTMLFormat(format string) bool {
	return format == FormatRubyHTML || format == FormatHTML
}

// IsValidNotation reports whether notation names a known diacritic notation.
func IsValidNotation(notation string) bool {
	switch notation {
	case NotationCircumflex, NotationX, NotationCaret:
		return true
	}
	return false
}

// Input contains conversion parameters for a single run.
type Input struct {
	Text     string // Esperanto text (required)
	Format   string // output format (default: FormatText)
	Notation string // diacritic notation (default: NotationCircumflex)
	Markdown bool   // treat Text as Markdown; requires an HTML format
	PDF      bool   // also render the HTML output to PDF
}

// Result holds the conversion output. Text is the replaced text (a full
// HTML document for HTML formats); PDF is set only when Input.PDF was true.
type Result struct {
	Text string
	PDF  []byte
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout            time.Duration
	workers            int
	rules              *RuleSet
	skipSentinels      []string
	localizedSentinels []string
	style              string
}

// Defaults and bounds.
const (
	defaultTimeout = 30 * time.Second

	// MaxWorkers caps parallel chunk workers.
	MaxWorkers = 8
)

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("esp2kanji: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithWorkers enables parallel processing with n chunk workers. Values
// below 2 keep the serial path; values above MaxWorkers are clamped.
func WithWorkers(n int) Option {
	return func(c *Converter) {
		if n > MaxWorkers {
			n = MaxWorkers
		}
		c.cfg.workers = n
	}
}

// WithRules sets the replacement rule set. Without this option the embedded
// sample rule set is used.
func WithRules(rules *RuleSet) Option {
	return func(c *Converter) {
		c.cfg.rules = rules
	}
}

// WithSkipPlaceholders supplies the sentinel list guarding %...% spans.
// Without it sentinels are generated internally and unbounded.
func WithSkipPlaceholders(sentinels []string) Option {
	return func(c *Converter) {
		c.cfg.skipSentinels = sentinels
	}
}

// WithLocalizedPlaceholders supplies the sentinel list capturing @...@
// spans. Without it sentinels are generated internally and unbounded.
func WithLocalizedPlaceholders(sentinels []string) Option {
	return func(c *Converter) {
		c.cfg.localizedSentinels = sentinels
	}
}

// WithStyle overrides the stylesheet embedded in ruby-html output.
func WithStyle(css string) Option {
	return func(c *Converter) {
		c.cfg.style = css
	}
}
