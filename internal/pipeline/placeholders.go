package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Sentinel tokens use Unicode Private Use Area delimiters so they cannot
// collide with input text, rule sources, or rule targets, and pass through
// every replacement pass untouched.
const (
	skipSentinelStart      = "\uE010"
	skipSentinelEnd        = "\uE011"
	localizedSentinelStart = "\uE012"
	localizedSentinelEnd   = "\uE013"
	ruleSentinelStart      = "\uE014"
	ruleSentinelEnd        = "\uE015"
	secondPassStart        = "\uE016"
	secondPassEnd          = "\uE017"
)

// ErrPlaceholderFile indicates a placeholder list file could not be read.
var ErrPlaceholderFile = errors.New("failed to read placeholder list")

// GenerateSkipSentinel returns the i-th generated sentinel for %...% spans.
func GenerateSkipSentinel(i int) string {
	return skipSentinelStart + strconv.Itoa(i) + skipSentinelEnd
}

// GenerateLocalizedSentinel returns the i-th generated sentinel for @...@ spans.
func GenerateLocalizedSentinel(i int) string {
	return localizedSentinelStart + strconv.Itoa(i) + localizedSentinelEnd
}

// RuleSentinel returns a per-rule sentinel for rules whose JSON entry omits
// one. The kind prefix keeps the three rule lists disjoint.
func RuleSentinel(kind string, i int) string {
	return ruleSentinelStart + kind + strconv.Itoa(i) + ruleSentinelEnd
}

// secondPassSentinel returns the sentinel used by the second two-character
// root pass. Kept separate from RuleSentinel so first-pass sentinels survive
// until the combined restore.
func secondPassSentinel(i int) string {
	return secondPassStart + strconv.Itoa(i) + secondPassEnd
}

// LoadPlaceholders reads a placeholder list: one sentinel per line, blank
// lines skipped, surrounding whitespace trimmed.
func LoadPlaceholders(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlaceholderFile, err)
	}
	defer f.Close()

	var placeholders []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		placeholders = append(placeholders, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlaceholderFile, err)
	}
	return placeholders, nil
}
