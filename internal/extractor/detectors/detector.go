package detectors

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
)

// leadingBoundary replaces \b at the start of a pattern. RE2's \b only knows
// ASCII word characters, so it never fires next to æ, ø or å.
const leadingBoundary = `(?:^|[^\p{L}\p{N}_])`

// nameToken is a capitalised word, optionally hyphenated (Anne-Lise).
const nameToken = `\p{Lu}\p{Ll}+(?:-\p{Lu}\p{Ll}+)?`

// RawMatch is one candidate produced by a pattern, before the scanner decides
// what to do with it. Offsets are rune offsets into the scanned text.
type RawMatch struct {
	Pattern      string
	Text         string
	Offset       int
	Groups       []string
	GroupOffsets []int // -1 when the group did not participate
}

// Group returns capture group i (1-based) or "" when absent.
func (m RawMatch) Group(i int) string {
	if i < 1 || i > len(m.Groups) {
		return ""
	}
	return m.Groups[i-1]
}

// GroupOffset returns the rune offset of capture group i, or -1.
func (m RawMatch) GroupOffset(i int) int {
	if i < 1 || i > len(m.GroupOffsets) {
		return -1
	}
	return m.GroupOffsets[i-1]
}

// Pattern is a named regular expression with Unicode-aware word boundaries.
type Pattern struct {
	Name    string
	re      *regexp.Regexp
	bounded bool
}

// Bounded compiles body so that it only matches at word boundaries.
func Bounded(name, body string) *Pattern {
	return &Pattern{
		Name:    name,
		re:      regexp.MustCompile(leadingBoundary + `(` + body + `)`),
		bounded: true,
	}
}

// Unbounded compiles body as-is.
func Unbounded(name, body string) *Pattern {
	return &Pattern{
		Name: name,
		re:   regexp.MustCompile(`(` + body + `)`),
	}
}

// FindAll yields every non-overlapping match of the pattern in text.
func (p *Pattern) FindAll(text string) []RawMatch {
	locs := p.re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	var found []RawMatch
	for _, loc := range locs {
		start, end := loc[2], loc[3]
		if p.bounded && !boundaryAt(text, end) {
			continue
		}

		m := RawMatch{
			Pattern: p.Name,
			Text:    text[start:end],
			Offset:  runeOffset(text, start),
		}
		for g := 4; g+1 < len(loc); g += 2 {
			if loc[g] < 0 {
				m.Groups = append(m.Groups, "")
				m.GroupOffsets = append(m.GroupOffsets, -1)
				continue
			}
			m.Groups = append(m.Groups, text[loc[g]:loc[g+1]])
			m.GroupOffsets = append(m.GroupOffsets, runeOffset(text, loc[g]))
		}
		found = append(found, m)
	}
	return found
}

// boundaryAt reports whether byte index i in text is not followed by a word rune.
func boundaryAt(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
}

func runeOffset(text string, byteIdx int) int {
	return utf8.RuneCountInString(text[:byteIdx])
}

// Detector defines the interface for one group of the pattern bank
type Detector interface {
	Detect(content string) []RawMatch
	Type() models.FindingType
}

// BaseRegexDetector runs its patterns in order and concatenates the matches
type BaseRegexDetector struct {
	Patterns []*Pattern
	Label    models.FindingType
}

func (d *BaseRegexDetector) Detect(content string) []RawMatch {
	var found []RawMatch
	for _, p := range d.Patterns {
		found = append(found, p.FindAll(content)...)
	}
	return found
}

func (d *BaseRegexDetector) Type() models.FindingType {
	return d.Label
}
