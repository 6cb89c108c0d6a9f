package extractor

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	tagPattern        = regexp.MustCompile(`</?[A-Za-z!][^<>]*>`)
	whitespacePattern = regexp.MustCompile(`[\s\v\x{85}\p{Z}]+`)

	entityReplacer = strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&apos;", "'",
	)
)

// StripHTML flattens rich-text field content to single-spaced plain text.
// Tags become a space, a small set of named entities is decoded, whitespace
// runs collapse and the result is trimmed and NFC-composed. Only tag-shaped
// markup counts as a tag, so "3 < 5 og 6 > 2" keeps its words.
//
// The passes repeat until the text stops changing, so an encoded tag such as
// "&lt;b&gt;" cannot resurface on a second call: StripHTML(StripHTML(x)) is
// always StripHTML(x). Offsets reported by the scanner refer to this output.
func StripHTML(raw string) string {
	// After the first pass the text is NFC, and every later pass that
	// changes anything makes it strictly shorter, so the loop ends.
	s := normalizeOnce(raw)
	for {
		next := normalizeOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}

func normalizeOnce(s string) string {
	s = norm.NFC.String(s)
	s = tagPattern.ReplaceAllString(s, " ")
	s = entityReplacer.Replace(s)
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
