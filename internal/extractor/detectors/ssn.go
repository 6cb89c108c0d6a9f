package detectors

import (
	"unicode"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
)

// fødselsnummer: six date digits and five personal digits, optionally split
var ssnPattern = Bounded("ssn", `\d{6}[\s-]?\d{5}`)

// SSNDigits is the exact digit count of a Norwegian national ID number.
const SSNDigits = 11

type SSNDetector struct {
	BaseRegexDetector
}

func NewSSNDetector() *SSNDetector {
	return &SSNDetector{
		BaseRegexDetector: BaseRegexDetector{
			Patterns: []*Pattern{ssnPattern},
			Label:    models.TypeSSN,
		},
	}
}

// Detect keeps candidates with exactly eleven digits once separators are gone.
func (d *SSNDetector) Detect(content string) []RawMatch {
	candidates := d.BaseRegexDetector.Detect(content)
	var verified []RawMatch
	for _, m := range candidates {
		if countDigits(m.Text) == SSNDigits {
			verified = append(verified, m)
		}
	}
	return verified
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
