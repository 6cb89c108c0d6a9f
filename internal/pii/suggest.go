package pii

import (
	"fmt"
	"strings"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
)

// ContextWindow is how many runes before a finding decide its suggestion.
const ContextWindow = 30

// nameContexts map phrasing before a name to a replacement, checked in order.
var nameContexts = []struct {
	keywords   []string
	suggestion string
}{
	{[]string{"møte", "møtt", "samtale", "snakk", "prat"}, "brukeren / ungdommen"},
	{[]string{"hent", "kjør", "fulgt", "følge"}, "ungdommen"},
	{[]string{"besøk", "hjemme", "hos"}, "hjemmebesøk hos brukeren"},
	{[]string{"ring", "kontakt", "telefon", "sms", "melding", "e-post", "mail"}, "foresatte / kontaktpersonen"},
}

const defaultNameSuggestion = "brukeren / ungdommen / eleven / deltakeren"

var typeSuggestions = map[models.FindingType]string{
	models.TypeSSN:          "fjern fødselsnummeret umiddelbart",
	models.TypePhone:        "fjern telefonnummeret",
	models.TypeEmail:        "fjern e-postadressen",
	models.TypeDate:         "bruk aldersgruppe, f.eks. «ungdom 15–17 år»",
	models.TypeAddress:      "bruk generelt område, f.eks. «bydelen»",
	models.TypeLocation:     "bruk generell stedsbeskrivelse, f.eks. «skolen» eller «nærmiljøet»",
	models.TypeRelationship: "bruk rollen uten navn, f.eks. «mor» eller «foresatt»",
}

// Suggest maps a finding type and the text just before it to a Norwegian
// anonymisation phrase. A keyword counts when a word of the context starts
// with it, so "ringte" is contact while "vurdering" is not.
func Suggest(t models.FindingType, context string) string {
	if t != models.TypeName && t != models.TypeFullName {
		return typeSuggestions[t]
	}
	words := strings.FieldsFunc(strings.ToLower(context), func(r rune) bool { return !isWordRune(r) })
	for _, c := range nameContexts {
		for _, kw := range c.keywords {
			for _, w := range words {
				if strings.HasPrefix(w, kw) {
					return c.suggestion
				}
			}
		}
	}
	return defaultNameSuggestion
}

var messageFormats = map[models.FindingType]string{
	models.TypeName:         "Mulig personnavn: «%s»",
	models.TypeFullName:     "Fullt navn: «%s»",
	models.TypeRelationship: "Familierelasjon med navn: «%s»",
	models.TypeLocation:     "Identifiserbart sted: «%s»",
	models.TypeDate:         "Dato som kan avsløre fødselsdato: «%s»",
	models.TypeAddress:      "Adresse: «%s»",
	models.TypePhone:        "Telefonnummer: «%s»",
	models.TypeEmail:        "E-postadresse: «%s»",
	models.TypeSSN:          "Fødselsnummer: «%s»",
}

const ageMessageFormat = "Alder oppgitt: «%s»"

func message(t models.FindingType, match string) string {
	return fmt.Sprintf(messageFormats[t], match)
}

func formatAge(match string) string {
	return fmt.Sprintf(ageMessageFormat, match)
}
