package detectors

import (
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
)

var streetSuffixes = []string{
	"gata", "gaten", "gate", "veien", "vegen", "vei", "veg", "allé", "alle",
	"plass", "plassen", "stien", "sti", "bakken", "svingen", "terrasse",
	"torget", "brygge", "ringen", "lia", "åsen",
}

// AddressDetector finds street addresses and postal code + place pairs
type AddressDetector struct {
	BaseRegexDetector
}

func NewAddressDetector() *AddressDetector {
	return &AddressDetector{
		BaseRegexDetector: BaseRegexDetector{
			Patterns: []*Pattern{
				Bounded("street", `\p{Lu}\p{Ll}*(?:`+alt(streetSuffixes...)+`)\s\d{1,4}[A-Za-z]?`),
				Bounded("street_words", `\p{Lu}\p{Ll}+s?\s(?:gate|vei|veg|allé|plass)\s\d{1,4}[A-Za-z]?`),
				Bounded("postal", `\d{4}\s\p{Lu}\p{Ll}+`),
			},
			Label: models.TypeAddress,
		},
	}
}
