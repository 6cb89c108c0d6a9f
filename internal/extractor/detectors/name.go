package detectors

import (
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
)

// Trigger pattern names. The scanner uses them to pick a suggestion class and
// to apply pair-specific acceptance.
const (
	TriggerMeeting     = "meeting"
	TriggerContact     = "contact"
	TriggerTransport   = "transport"
	TriggerObservation = "observation"
	TriggerVisit       = "visit"
	TriggerTogether    = "together"
	TriggerPair        = "pair"
	TriggerPossessive  = "possessive"
)

func trigger(name string, phrases ...string) *Pattern {
	return Bounded(name, `(?i:`+alt(phrases...)+`)\s(`+nameToken+`)`)
}

var triggerPatterns = []*Pattern{
	trigger(TriggerMeeting,
		"møte med", "møtte", "møter", "samtale med", "samtalen med", "i samtale med",
		"snakket med", "snakker med", "snakke med", "pratet med", "prat med", "prate med"),
	trigger(TriggerContact,
		"ringte til", "ringte", "ringt til", "ringer til", "kontaktet", "kontakt med",
		"telefon med", "telefonsamtale med", "sms til", "sendte melding til",
		"melding fra", "e-post til", "mail til"),
	trigger(TriggerTransport,
		"hentet", "henter", "hente", "kjørte", "kjører", "kjøre", "fulgte", "følger", "fulgt"),
	trigger(TriggerObservation,
		"observerte", "observert", "observerer", "så at", "la merke til at"),
	trigger(TriggerVisit,
		"besøkte", "besøker", "besøk hos", "besøk til", "hjemmebesøk hos", "var hos", "hjemme hos"),
	trigger(TriggerTogether,
		"sammen med", "i lag med", "med følge av"),
	Bounded(TriggerPair, `(`+nameToken+`)\s(?:og|eller)\s(`+nameToken+`)`),
	Bounded(TriggerPossessive, `(`+nameToken+`)(?:'s|s|')\s(?:`+alt(possessed...)+`)`),
	Bounded(TriggerPossessive, `(`+nameToken+`)\s(?:sin|sitt|sine)\s\p{Ll}+`),
}

// TriggerDetector finds names by the social-work phrasing around them.
// Every match carries one or two name groups.
type TriggerDetector struct {
	BaseRegexDetector
}

func NewTriggerDetector() *TriggerDetector {
	return &TriggerDetector{
		BaseRegexDetector: BaseRegexDetector{
			Patterns: triggerPatterns,
			Label:    models.TypeName,
		},
	}
}

var relationshipPatterns = []*Pattern{
	Bounded("relation_to", `(?i:`+alt(kinship...)+`)\s(?:til|åt)\s(`+nameToken+`)`),
	Bounded("relation_possessive", `(`+nameToken+`)(?:'s|s|')\s(?i:`+alt(kinship...)+`)`),
	Bounded("relation_sin", `(`+nameToken+`)\s(?:sin|sitt|sine)\s(?i:`+alt(kinship...)+`)`),
	Bounded("family", `(?i:familien|familie)\s(`+nameToken+`)`),
}

// RelationshipDetector finds kinship phrases tied to a name. Group 1 is the name.
type RelationshipDetector struct {
	BaseRegexDetector
}

func NewRelationshipDetector() *RelationshipDetector {
	return &RelationshipDetector{
		BaseRegexDetector: BaseRegexDetector{
			Patterns: relationshipPatterns,
			Label:    models.TypeRelationship,
		},
	}
}

// FullNameDetector matches two or three consecutive capitalised words. Groups
// 1-3 are the tokens; the scanner decides whether they form a name.
type FullNameDetector struct {
	BaseRegexDetector
}

func NewFullNameDetector() *FullNameDetector {
	return &FullNameDetector{
		BaseRegexDetector: BaseRegexDetector{
			Patterns: []*Pattern{
				Bounded("full_name", `(`+nameToken+`)\s(`+nameToken+`)(?:\s(`+nameToken+`))?`),
			},
			Label: models.TypeFullName,
		},
	}
}
