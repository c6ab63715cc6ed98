package esp2kanji

import (
	"testing"
	"time"
)

func TestIsValidFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		valid  bool
		isHTML bool
	}{
		{FormatRubyHTML, true, true},
		{FormatHTML, true, true},
		{FormatParentheses, true, false},
		{FormatText, true, false},
		{"", false, false},
		{"pdf", false, false},
		{"Ruby-HTML", false, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			if got := IsValidFormat(tt.format); got != tt.valid {
				t.Errorf("IsValidFormat(%q) = %v, want %v", tt.format, got, tt.valid)
			}
			if got := IsHTMLFormat(tt.format); got != tt.isHTML {
				t.Errorf("IsHTMLFormat(%q) = %v, want %v", tt.format, got, tt.isHTML)
			}
		})
	}
}

func TestWithTimeout(t *testing.T) {
	t.Parallel()

	t.Run("sets the timeout", func(t *testing.T) {
		t.Parallel()

		conv := testConverter(t, WithRules(testRules(t)), WithTimeout(5*time.Second))
		if conv.cfg.timeout != 5*time.Second {
			t.Errorf("timeout = %v, want 5s", conv.cfg.timeout)
		}
	})

	t.Run("panics on non-positive duration", func(t *testing.T) {
		t.Parallel()

		defer func() {
			if recover() == nil {
				t.Error("WithTimeout(0) did not panic")
			}
		}()
		WithTimeout(0)
	})
}

func TestWithWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "serial stays serial", n: 0, want: 0},
		{name: "two workers", n: 2, want: 2},
		{name: "above cap clamps", n: 100, want: MaxWorkers},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := testConverter(t, WithRules(testRules(t)), WithWorkers(tt.n))
			if conv.cfg.workers != tt.want {
				t.Errorf("workers = %d, want %d", conv.cfg.workers, tt.want)
			}
		})
	}
}

func TestWithPlaceholderOptions(t *testing.T) {
	t.Parallel()

	skip := []string{"%1854%", "%1855%"}
	localized := []string{"@5134@"}

	conv := testConverter(t,
		WithRules(testRules(t)),
		WithSkipPlaceholders(skip),
		WithLocalizedPlaceholders(localized),
	)

	if len(conv.cfg.skipSentinels) != 2 {
		t.Errorf("skip sentinels = %d, want 2", len(conv.cfg.skipSentinels))
	}
	if len(conv.cfg.localizedSentinels) != 1 {
		t.Errorf("localized sentinels = %d, want 1", len(conv.cfg.localizedSentinels))
	}
}

func TestWithStyle(t *testing.T) {
	t.Parallel()

	conv := testConverter(t, WithRules(testRules(t)), WithStyle("body { margin: 0; }"))
	if conv.cfg.style != "body { margin: 0; }" {
		t.Errorf("style = %q, want the provided CSS", conv.cfg.style)
	}
}
