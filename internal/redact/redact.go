// Package redact produces an anonymised copy of a scanned text for the
// caller to review. The scanner itself never rewrites text.
package redact

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/extractor"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
)

// Strategy picks the replacement text for a finding.
type Strategy int

const (
	// Placeholder replaces every finding with its type label, e.g. [NAVN].
	Placeholder Strategy = iota
	// Suggestion replaces names with the first suggested role, e.g.
	// "brukeren", and everything else with a placeholder.
	Suggestion
)

// Replacement returns the text that stands in for f.
func Replacement(f models.Finding, s Strategy) string {
	if s == Suggestion && (f.Type == models.TypeName || f.Type == models.TypeFullName) && f.Suggestion != "" {
		role, _, _ := strings.Cut(f.Suggestion, " / ")
		return role
	}
	return "[" + strings.ToUpper(models.TypeLabel(f.Type)) + "]"
}

// Text normalizes raw the way the scanner does and replaces every finding of
// res, which must come from scanning raw. Overlapping findings are replaced
// as one span covering all of them, labelled by the one starting first (the
// longer one at the same start).
func Text(raw string, res models.ScanResult, s Strategy) string {
	return Apply(extractor.StripHTML(raw), res.Warnings, s)
}

// Apply replaces findings in already normalized text. Findings whose offset
// does not point at their match are skipped.
func Apply(text string, findings []models.Finding, s Strategy) string {
	runes := []rune(text)

	spans := make([]models.Finding, 0, len(findings))
	for _, f := range findings {
		end := f.Offset + utf8.RuneCountInString(f.Match)
		if f.Offset < 0 || end > len(runes) || string(runes[f.Offset:end]) != f.Match {
			continue
		}
		spans = append(spans, f)
	}
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Offset != spans[j].Offset {
			return spans[i].Offset < spans[j].Offset
		}
		return utf8.RuneCountInString(spans[i].Match) > utf8.RuneCountInString(spans[j].Match)
	})

	var b strings.Builder
	pos := 0
	for i := 0; i < len(spans); {
		lead := spans[i]
		end := lead.Offset + utf8.RuneCountInString(lead.Match)
		for i++; i < len(spans) && spans[i].Offset < end; i++ {
			end = max(end, spans[i].Offset+utf8.RuneCountInString(spans[i].Match))
		}
		b.WriteString(string(runes[pos:lead.Offset]))
		b.WriteString(Replacement(lead, s))
		pos = end
	}
	b.WriteString(string(runes[pos:]))
	return b.String()
}

// Literal replaces every occurrence of each match in the caller's own copy
// of a field, which may still contain markup. Longer matches go first so a
// full name is not split by its own first name.
func Literal(text string, findings []models.Finding, s Strategy) string {
	ordered := append([]models.Finding(nil), findings...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Match) > len(ordered[j].Match)
	})
	for _, f := range ordered {
		if f.Match == "" {
			continue
		}
		text = strings.ReplaceAll(text, f.Match, Replacement(f, s))
	}
	return text
}
