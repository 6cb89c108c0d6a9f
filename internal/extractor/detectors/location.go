package detectors

import (
	"strings"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
)

var institutions = []string{
	"skole", "skolen", "barneskole", "ungdomsskole", "videregående skole", "videregående",
	"barnehage", "barnehagen", "aktivitetsskole", "fritidsklubb", "ungdomsklubb",
}

// Oslo boroughs and neighbourhoods small enough to narrow down a family.
var districts = []string{
	"Grünerløkka", "Grønland", "Tøyen", "Holmlia", "Furuset", "Stovner", "Romsås",
	"Mortensrud", "Haugerud", "Vestli", "Majorstuen", "Frogner", "Sagene", "Bjerke",
	"Grorud", "Ellingsrud", "Lindeberg", "Søndre Nordstrand", "Gamle Oslo", "Nordre Aker",
	"Vestre Aker", "Alna", "Ullern", "Østensjø", "Nordstrand", "St. Hanshaugen", "Bøler",
	"Manglerud", "Lambertseter", "Kalbakken", "Veitvet", "Linderud", "Rommen", "Hellerud",
	"Tveita", "Bjørndal", "Prinsdal", "Hauketo", "Torshov", "Sinsen", "Kampen",
	"Vålerenga", "Ensjø", "Helsfyr", "Bislett", "Lørenskog", "Rasta",
}

// determiners open generic phrases such as "En skole" or "Den barnehagen".
var determiners = map[string]bool{
	"en": true, "ei": true, "et": true, "den": true, "det": true, "de": true,
	"denne": true, "dette": true, "disse": true, "min": true, "din": true, "sin": true,
	"vår": true, "hans": true, "hennes": true, "deres": true, "ny": true, "nye": true,
	"samme": true, "annen": true, "andre": true, "hver": true, "ingen": true, "noen": true,
}

// prepositions open phrases such as "På skolen" or "Etter skolen".
var prepositions = map[string]bool{
	"på": true, "etter": true, "før": true, "fra": true, "til": true, "i": true,
	"ved": true, "mot": true, "om": true, "under": true, "utenfor": true, "inne": true,
	"hjem": true, "bak": true, "foran": true, "nær": true, "mellom": true, "gjennom": true,
}

// genericCompounds are institution compounds that name no particular place.
var genericCompounds = map[string]bool{
	"ungdomsskole": true, "ungdomsskolen": true, "barneskole": true, "barneskolen": true,
	"grunnskole": true, "grunnskolen": true, "aktivitetsskolen": true, "sommerskolen": true,
	"nærskolen": true, "privatskolen": true, "kulturskolen": true, "fritidsskolen": true,
	"familiebarnehage": true, "familiebarnehagen": true, "nærbarnehagen": true,
}

// LocationDetector finds named schools, kindergartens and districts
type LocationDetector struct {
	BaseRegexDetector
}

func NewLocationDetector() *LocationDetector {
	return &LocationDetector{
		BaseRegexDetector: BaseRegexDetector{
			Patterns: []*Pattern{
				Bounded("institution", `\p{Lu}\p{Ll}+\s(?i:`+alt(institutions...)+`)`),
				Bounded("institution_compound", `\p{Lu}\p{Ll}{2,}(?:skolen|skole|barnehagen|barnehage)`),
				Bounded("district", alt(districts...)),
			},
			Label: models.TypeLocation,
		},
	}
}

// Detect drops generic phrases that start with a determiner or a preposition,
// or that are a plain institution word.
func (d *LocationDetector) Detect(content string) []RawMatch {
	candidates := d.BaseRegexDetector.Detect(content)
	var verified []RawMatch
	for _, m := range candidates {
		first := strings.ToLower(strings.Fields(m.Text)[0])
		if determiners[first] || prepositions[first] {
			continue
		}
		if m.Pattern == "institution_compound" && genericCompounds[strings.ToLower(m.Text)] {
			continue
		}
		verified = append(verified, m)
	}
	return verified
}
