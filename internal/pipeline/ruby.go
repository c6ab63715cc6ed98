package pipeline

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// multiSpacePattern matches runs of two or more spaces for &nbsp; expansion.
var multiSpacePattern = regexp.MustCompile(` {2,}`)

// htmlDocTemplate wraps converted text in a standalone HTML5 document.
// The first %s receives the <style> block (possibly empty), the second the body.
const htmlDocTemplate = `<!DOCTYPE html>
<html lang="eo">
<head>
<meta charset="utf-8">
<title>Esperanto Kanji Conversion</title>
%s</head>
<body>
%s
</body>
</html>`

// DocumentFormatter turns replaced text into a presentable HTML document.
type DocumentFormatter interface {
	Format(ctx context.Context, text, style string) string
}

// HTMLDocumentFormatter converts plain replaced text to HTML: newlines
// become <br>, space runs become &nbsp;, and the result is wrapped in a
// document carrying the ruby stylesheet.
type HTMLDocumentFormatter struct{}

// Format converts line breaks and wraps the text in an HTML document.
func (f *HTMLDocumentFormatter) Format(ctx context.Context, text, style string) string {
	if ctx.Err() != nil {
		return text
	}
	return WrapHTML(ConvertLineBreaks(text), style)
}

// ConvertLineBreaks prepares replaced text for HTML presentation: each
// newline becomes <br> and each run of two or more spaces becomes the same
// number of &nbsp; entities, preserving source-text alignment.
func ConvertLineBreaks(text string) string {
	text = multiSpacePattern.ReplaceAllStringFunc(text, func(spaces string) string {
		return strings.Repeat("&nbsp;", len(spaces))
	})
	return strings.ReplaceAll(text, "\n", "<br>\n")
}

// WrapHTML wraps a body fragment in a standalone HTML document. An empty
// style omits the <style> block.
func WrapHTML(body, style string) string {
	styleBlock := ""
	if style != "" {
		styleBlock = "<style>\n" + style + "\n</style>\n"
	}
	return fmt.Sprintf(htmlDocTemplate, styleBlock, body)
}
