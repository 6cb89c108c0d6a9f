package pii

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/extractor/detectors"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/lexicon"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
)

const (
	// a contextual name within this many runes of a finding for the same
	// text is already covered
	coverTolerance = 30
	// a full name upgrades an earlier name finding anchored this close
	anchorTolerance = 5
)

// pass is the state of one scan over normalized text.
type pass struct {
	text  string
	runes []rune
	lex   *lexicon.Lexicon
	bank  *detectors.Bank
	arena arena
}

// before returns up to n runes preceding offset, without a word cut in half
// at the start of the window.
func (p *pass) before(offset, n int) string {
	if offset > len(p.runes) {
		offset = len(p.runes)
	}
	start := offset - n
	if start < 0 {
		start = 0
	}
	for start > 0 && start < offset && isWordRune(p.runes[start-1]) {
		start++
	}
	return string(p.runes[start:offset])
}

// span returns the text between two rune offsets.
func (p *pass) span(start, end int) string {
	return string(p.runes[start:end])
}

func (p *pass) emit(t models.FindingType, match string, offset int, c models.Confidence) findingID {
	return p.arena.add(models.Finding{
		Match:      match,
		Type:       t,
		Message:    message(t, match),
		Offset:     offset,
		Confidence: c,
	})
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}

func isEdgePunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// dictionary flags every single token that is a known name and not a safe
// word. Normalized text is single-spaced, so the running offset is exact.
func (p *pass) dictionary() {
	offset := 0
	for _, tok := range strings.Split(p.text, " ") {
		word := strings.TrimLeftFunc(tok, isEdgePunct)
		lead := utf8.RuneCountInString(tok) - utf8.RuneCountInString(word)
		word = strings.TrimRightFunc(word, isEdgePunct)
		if word != "" && p.lex.IsName(word) {
			p.emit(models.TypeName, word, offset+lead, models.ConfidenceHigh)
		}
		offset += utf8.RuneCountInString(tok) + 1
	}
}

// triggers finds names by the phrasing around them, including names that are
// missing from the dictionary.
func (p *pass) triggers() {
	for _, m := range p.bank.Triggers.Detect(p.text) {
		if m.Pattern == detectors.TriggerPair {
			// "X og Y" is too common between capitalised words to trust
			// unless one side is a known name
			if !p.lex.IsName(m.Group(1)) && !p.lex.IsName(m.Group(2)) {
				continue
			}
			p.contextualName(m.Group(1), m.GroupOffset(1))
			p.contextualName(m.Group(2), m.GroupOffset(2))
			continue
		}
		p.contextualName(m.Group(1), m.GroupOffset(1))
	}
}

func (p *pass) contextualName(name string, offset int) {
	if name == "" || p.lex.IsSafeWord(name) {
		return
	}
	if p.arena.covered(name, offset, coverTolerance) {
		return
	}
	c := models.ConfidenceMedium
	if p.lex.IsKnownName(name) || p.lex.IsKnownSurname(name) {
		c = models.ConfidenceHigh
	}
	p.emit(models.TypeName, name, offset, c)
}

// fullNames accepts two or three capitalised words when the first is a known
// first name or the second a known surname or first name. A name finding
// already anchored at the same start is upgraded instead of duplicated.
func (p *pass) fullNames() {
	for _, m := range p.bank.FullNames.Detect(p.text) {
		var tokens []string
		var offsets []int
		for g := 1; g <= 3; g++ {
			if tok := m.Group(g); tok != "" {
				tokens = append(tokens, tok)
				offsets = append(offsets, m.GroupOffset(g))
			}
		}

		// sentence openers such as "Møtte Kari Olsen" lose their first word
		for len(tokens) >= 2 && p.lex.IsSafeWord(tokens[0]) && !p.lex.IsKnownName(tokens[0]) {
			tokens, offsets = tokens[1:], offsets[1:]
		}
		if len(tokens) < 2 || !p.acceptFullName(tokens) {
			continue
		}

		start := offsets[0]
		last := len(tokens) - 1
		full := p.span(start, offsets[last]+utf8.RuneCountInString(tokens[last]))

		if id, ok := p.arena.anchoredName(tokens[0], start, anchorTolerance); ok {
			p.arena.upgrade(id, upgrade{
				Match:      full,
				Offset:     start,
				Type:       models.TypeFullName,
				Message:    message(models.TypeFullName, full),
				Confidence: models.ConfidenceHigh,
			})
			continue
		}

		c := models.ConfidenceMedium
		if p.lex.IsKnownName(tokens[0]) && p.anyKnown(tokens[1:]) {
			c = models.ConfidenceHigh
		}
		p.emit(models.TypeFullName, full, start, c)
	}
}

func (p *pass) acceptFullName(tokens []string) bool {
	return p.lex.IsKnownName(tokens[0]) ||
		p.lex.IsKnownSurname(tokens[1]) ||
		p.lex.IsKnownName(tokens[1])
}

func (p *pass) anyKnown(tokens []string) bool {
	for _, t := range tokens {
		if p.lex.IsKnownSurname(t) || p.lex.IsKnownName(t) {
			return true
		}
	}
	return false
}

// relationships reports kinship phrases even when the name inside was
// flagged by an earlier pass: the relation itself identifies the family.
func (p *pass) relationships() {
	for _, m := range p.bank.Relationships.Detect(p.text) {
		if p.lex.IsSafeWord(m.Group(1)) {
			continue
		}
		p.emit(models.TypeRelationship, m.Text, m.Offset, models.ConfidenceHigh)
	}
}

// locations skips "X skolen" phrases whose first word is an everyday word.
func (p *pass) locations() {
	for _, m := range p.bank.Locations.Detect(p.text) {
		if m.Pattern == "institution" {
			if first, _, _ := strings.Cut(m.Text, " "); p.lex.IsSafeWord(first) {
				continue
			}
		}
		p.emit(models.TypeLocation, m.Text, m.Offset, models.ConfidenceMedium)
	}
}

// dates separates explicit ages from dates that may give away a birth date.
func (p *pass) dates() {
	for _, m := range p.bank.Dates.Detect(p.text) {
		if detectors.IsAge(m) {
			id := p.emit(models.TypeDate, m.Text, m.Offset, models.ConfidenceHigh)
			p.arena.findings[id].Message = formatAge(m.Text)
			continue
		}
		p.emit(models.TypeDate, m.Text, m.Offset, models.ConfidenceMedium)
	}
}

func (p *pass) simple(d detectors.Detector, c models.Confidence) {
	for _, m := range d.Detect(p.text) {
		p.emit(d.Type(), m.Text, m.Offset, c)
	}
}
