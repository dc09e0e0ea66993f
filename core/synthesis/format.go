package synthesis

import "regexp"

// Presentation glue: model output often runs headings and list items together
// on one line. These rewrites insert the missing newlines. This is a
// text-normalization step, kept separate from retrieval logic.
var (
	// a bold heading like "**Summary:**" following text on the same line;
	// the trailing colon keeps inline bold spans untouched
	headingPattern = regexp.MustCompile(`([^\n]) (\*\*[^*\n]+:\*\*)`)
	// a numbered list item like "1. " following text on the same line
	numberedItemPattern = regexp.MustCompile(`([^\n.\d]) (\d+\. )`)
	// a bullet item following text on the same line
	bulletItemPattern = regexp.MustCompile(`([^\n]) (• )`)
	// collapse three or more consecutive newlines
	excessNewlinePattern = regexp.MustCompile(`\n{3,}`)
)

// NormalizeAnswer inserts newlines before headings, numbered list items and
// bullets so answers render as structured text.
func NormalizeAnswer(answer string) string {
	normalized := headingPattern.ReplaceAllString(answer, "$1\n\n$2")
	normalized = numberedItemPattern.ReplaceAllString(normalized, "$1\n$2")
	normalized = bulletItemPattern.ReplaceAllString(normalized, "$1\n$2")
	normalized = excessNewlinePattern.ReplaceAllString(normalized, "\n\n")
	return normalized
}
