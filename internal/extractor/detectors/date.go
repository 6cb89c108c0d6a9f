package detectors

import (
	"strings"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
)

// AgePrefix marks patterns that state an explicit age rather than a date.
const AgePrefix = "age"

var months = []string{
	"januar", "februar", "mars", "april", "mai", "juni", "juli", "august",
	"september", "oktober", "november", "desember",
	"jan", "feb", "mar", "apr", "jun", "jul", "aug", "sep", "sept", "okt", "nov", "des",
}

// DateDetector finds dates that may reveal a birth date, and age statements
type DateDetector struct {
	BaseRegexDetector
}

func NewDateDetector() *DateDetector {
	return &DateDetector{
		BaseRegexDetector: BaseRegexDetector{
			Patterns: []*Pattern{
				Bounded(AgePrefix+"_years_old", `\d{1,2}\s?år\sgamm(?:elt|el|le)`),
				Bounded(AgePrefix+"_aaring", `\d{1,2}\s?-?\s?åring`),
				Bounded(AgePrefix+"_turns", `(?i:fyller|fylte|fyller\ssnart)\s\d{1,2}(?:\sår)?`),
				Bounded(AgePrefix+"_label", `(?i:alder):?\s\d{1,2}(?:\sår)?`),
				Bounded("date_numeric", `\d{1,2}[./-]\d{1,2}[./-](?:\d{4}|\d{2})`),
				Bounded("date_iso", `(?:19|20)\d{2}-\d{2}-\d{2}`),
				Bounded("date_month", `\d{1,2}\.?\s(?i:`+alt(months...)+`)(?:\.?\s(?:19|20)\d{2})?`),
				Bounded("born_year", `(?i:født|f\.)\s(?:i\s)?(?:19|20)\d{2}`),
			},
			Label: models.TypeDate,
		},
	}
}

// IsAge reports whether m came from an explicit age statement.
func IsAge(m RawMatch) bool {
	return strings.HasPrefix(m.Pattern, AgePrefix)
}
