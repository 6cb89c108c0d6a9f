package detectors

import (
	"regexp"
	"strings"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
)

// Norwegian subscriber numbers are eight digits starting with 2-9, written
// compact, as 3-2-3 or as 2-2-2-2, optionally behind +47 / 0047.
var phonePattern = Bounded("phone",
	`(?:(?:\+|00)47[\s-]?)?(?:[2-9]\d{7}|[2-9]\d{2}[\s-]\d{2}[\s-]\d{3}|[2-9]\d[\s-]\d{2}[\s-]\d{2}[\s-]\d{2})`)

// referenceMarker matches the tail of text that introduces a case or
// reference number, e.g. "saksnr. " or "ref: ".
var referenceMarker = regexp.MustCompile(
	`(?i)(?:^|[^\p{L}])(?:saks?\s?nr|saksnummer|saks-?id|ref|referanse|referansenr|journal\s?nr|journalnummer|arkiv\s?nr|arkivnummer|vedtak\s?nr|dok\s?nr|id|nr)\.?\s?[:#]?\s?#?$`)

// referenceWindow is how many runes before a number are checked for a marker.
const referenceWindow = 25

type PhoneDetector struct {
	BaseRegexDetector
}

func NewPhoneDetector() *PhoneDetector {
	return &PhoneDetector{
		BaseRegexDetector: BaseRegexDetector{
			Patterns: []*Pattern{phonePattern},
			Label:    models.TypePhone,
		},
	}
}

// Detect drops numbers that directly follow a case or reference marker.
func (d *PhoneDetector) Detect(content string) []RawMatch {
	candidates := d.BaseRegexDetector.Detect(content)
	if len(candidates) == 0 {
		return nil
	}

	runes := []rune(content)
	var verified []RawMatch
	for _, m := range candidates {
		start := m.Offset - referenceWindow
		if start < 0 {
			start = 0
		}
		before := strings.TrimRight(string(runes[start:m.Offset]), " ")
		if referenceMarker.MatchString(before) {
			continue
		}
		verified = append(verified, m)
	}
	return verified
}
