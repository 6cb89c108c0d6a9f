// Package pii scans free-text case-report fields for Norwegian personal data.
//
// A scan is a pure function of its input and the read-only lexicon and
// pattern bank, so a Scanner can be shared between goroutines. Results are
// advisory: an empty result does not prove that a text is free of PII.
package pii

import (
	"strings"
	"sync"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/extractor"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/extractor/detectors"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/lexicon"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
)

// Scanner runs the detection passes over one field at a time.
type Scanner struct {
	lex  *lexicon.Lexicon
	bank *detectors.Bank
}

// New creates a scanner. Nil arguments fall back to the shared defaults.
func New(lex *lexicon.Lexicon, bank *detectors.Bank) *Scanner {
	if lex == nil {
		lex = lexicon.Default()
	}
	if bank == nil {
		bank = detectors.DefaultBank()
	}
	return &Scanner{lex: lex, bank: bank}
}

var (
	defaultScanner *Scanner
	defaultOnce    sync.Once
)

// Default returns a scanner over the embedded lexicon.
func Default() *Scanner {
	defaultOnce.Do(func() {
		defaultScanner = New(nil, nil)
	})
	return defaultScanner
}

// ScanForPII scans one field with the default scanner.
func ScanForPII(text string) models.ScanResult {
	return Default().Scan(text)
}

// ScanMultipleFields scans each field independently with the default scanner.
func ScanMultipleFields(fields map[string]string) models.MultiFieldScanResult {
	return Default().ScanFields(fields)
}

// Scan normalizes text and runs every pass in order: dictionary, contextual
// triggers, full names, relationships, locations, dates, addresses, phones,
// emails and national ID numbers. The accumulated findings are resolved,
// given suggestions and aggregated.
func (s *Scanner) Scan(text string) models.ScanResult {
	if strings.TrimSpace(text) == "" {
		return Aggregate(nil)
	}
	clean := extractor.StripHTML(text)
	if clean == "" {
		return Aggregate(nil)
	}

	p := &pass{
		text:  clean,
		runes: []rune(clean),
		lex:   s.lex,
		bank:  s.bank,
	}
	p.dictionary()
	p.triggers()
	p.fullNames()
	p.relationships()
	p.locations()
	p.dates()
	p.simple(p.bank.Addresses, models.ConfidenceMedium)
	p.simple(p.bank.Phones, models.ConfidenceHigh)
	p.simple(p.bank.Emails, models.ConfidenceHigh)
	p.simple(p.bank.SSNs, models.ConfidenceHigh)

	warnings := Resolve(p.arena.findings)
	for i := range warnings {
		warnings[i].Suggestion = Suggest(warnings[i].Type, p.before(warnings[i].Offset, ContextWindow))
	}
	return Aggregate(warnings)
}

// ScanFields scans every field in isolation. Findings are never correlated
// or deduplicated across fields.
func (s *Scanner) ScanFields(fields map[string]string) models.MultiFieldScanResult {
	results := make(map[string]models.ScanResult, len(fields))
	for name, text := range fields {
		results[name] = s.Scan(text)
	}
	return Combine(results, nil)
}
