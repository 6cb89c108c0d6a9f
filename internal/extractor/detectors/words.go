package detectors

import (
	"regexp"
	"sort"
	"strings"
)

// alt builds a regexp alternation, longest word first. Go picks the first
// alternative that lets the whole expression match, so "mor" listed before
// "mormor" would otherwise win and then fail the trailing boundary check.
func alt(words ...string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i]) > len(sorted[j])
	})
	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = strings.ReplaceAll(regexp.QuoteMeta(w), " ", `\s`)
	}
	return strings.Join(quoted, "|")
}

// kinship nouns used by relationship phrases and possessive triggers
var kinship = []string{
	"mor", "far", "mamma", "pappa", "bror", "søster", "søsken",
	"halvbror", "halvsøster", "stebror", "stesøster", "stefar", "stemor",
	"bestemor", "bestefar", "besteforeldre", "farmor", "farfar", "mormor", "morfar",
	"tante", "onkel", "fetter", "kusine", "foreldre", "foresatte", "verge",
	"fosterfar", "fostermor", "fosterforeldre", "sønn", "datter", "barn",
}

var possessed = []string{
	"hjem", "rom", "skole", "klasse", "lærer", "kontaktlærer", "venn", "venner",
	"kjæreste", "sak", "situasjon", "behov", "plan", "oppfølging", "familie",
	"mor", "far", "mamma", "pappa", "bror", "søster", "foreldre",
}
