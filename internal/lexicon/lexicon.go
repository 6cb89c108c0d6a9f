// Package lexicon holds the static word lists the scanner classifies tokens
// against: known first names, known surnames and safe words.
package lexicon

import (
	"bufio"
	_ "embed"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed data/first_names.txt
var firstNamesData string

//go:embed data/surnames.txt
var surnamesData string

//go:embed data/safe_words.txt
var safeWordsData string

// MinNameLength is the shortest token, in runes, that can be a name.
const MinNameLength = 3

// Lexicon is read-only after construction and safe for concurrent use.
type Lexicon struct {
	firstNames map[string]struct{}
	surnames   map[string]struct{}
	safeWords  map[string]struct{}
}

// Options extends the embedded lists, typically from configuration.
type Options struct {
	ExtraFirstNames []string
	ExtraSurnames   []string
	ExtraSafeWords  []string
}

// New builds a lexicon from the embedded lists plus opts.
func New(opts Options) *Lexicon {
	l := &Lexicon{
		firstNames: make(map[string]struct{}, 256),
		surnames:   make(map[string]struct{}, 128),
		safeWords:  make(map[string]struct{}, 256),
	}
	loadList(firstNamesData, l.firstNames)
	loadList(surnamesData, l.surnames)
	loadList(safeWordsData, l.safeWords)
	addAll(l.firstNames, opts.ExtraFirstNames)
	addAll(l.surnames, opts.ExtraSurnames)
	addAll(l.safeWords, opts.ExtraSafeWords)
	return l
}

var (
	defaultLexicon *Lexicon
	defaultOnce    sync.Once
)

// Default returns the shared lexicon built from the embedded lists only.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		defaultLexicon = New(Options{})
	})
	return defaultLexicon
}

// loadList reads one word per line, skipping blanks and # comments
func loadList(data string, into map[string]struct{}) {
	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		into[fold(line)] = struct{}{}
	}
}

func addAll(into map[string]struct{}, words []string) {
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			into[fold(w)] = struct{}{}
		}
	}
}

// fold lower-cases with Norwegian rules. A Caser is stateful, so each call
// gets its own.
func fold(w string) string {
	return cases.Lower(language.Norwegian).String(w)
}

func (l *Lexicon) has(set map[string]struct{}, w string, gated bool) bool {
	if gated && utf8.RuneCountInString(w) < MinNameLength {
		return false
	}
	_, ok := set[fold(w)]
	return ok
}

// IsKnownName reports dictionary membership of a first name.
func (l *Lexicon) IsKnownName(w string) bool {
	return l.has(l.firstNames, w, true)
}

// IsKnownSurname reports dictionary membership of a surname.
func (l *Lexicon) IsKnownSurname(w string) bool {
	return l.has(l.surnames, w, true)
}

// IsSafeWord reports whether w must never be flagged as a name.
func (l *Lexicon) IsSafeWord(w string) bool {
	return l.has(l.safeWords, w, false)
}

// IsName is the single-token classification: safe words win over both
// name lists.
func (l *Lexicon) IsName(w string) bool {
	if l.IsSafeWord(w) {
		return false
	}
	return l.IsKnownName(w) || l.IsKnownSurname(w)
}

// Size returns the number of entries in each list.
func (l *Lexicon) Size() (firstNames, surnames, safeWords int) {
	return len(l.firstNames), len(l.surnames), len(l.safeWords)
}
