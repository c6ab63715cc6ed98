package pipeline

import "strings"

// SplitChunks splits text into at most n chunks for parallel processing.
// Chunks are line-aligned: boundaries fall only after a newline. Marked
// spans (%...% and @...@) cannot contain newlines, so a boundary can never
// sever a span, and concatenating the chunks reproduces the input exactly.
func SplitChunks(text string, n int) []string {
	if n <= 1 || text == "" {
		return []string{text}
	}

	lines := strings.SplitAfter(text, "\n")
	if n > len(lines) {
		n = len(lines)
	}

	chunks := make([]string, 0, n)
	// Distribute lines evenly; the first (len(lines) % n) chunks get one extra.
	base := len(lines) / n
	extra := len(lines) % n
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < extra {
			size++
		}
		chunks = append(chunks, strings.Join(lines[start:start+size], ""))
		start += size
	}
	return chunks
}
