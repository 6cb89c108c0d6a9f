package pii

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
)

func finding(t models.FindingType, match string, offset int, c models.Confidence) models.Finding {
	return models.Finding{Type: t, Match: match, Offset: offset, Confidence: c, Message: match}
}

func TestDedupKey(t *testing.T) {
	f := finding(models.TypeName, "Aryan", 23, models.ConfidenceHigh)
	assert.Equal(t, "name:aryan:2", DedupKey(f))
}

func TestResolve(t *testing.T) {
	in := []models.Finding{
		finding(models.TypeName, "Aryan", 9, models.ConfidenceMedium),
		finding(models.TypePhone, "98765432", 20, models.ConfidenceHigh),
		finding(models.TypeName, "aryan", 5, models.ConfidenceHigh),
		finding(models.TypeName, "Aryan", 8, models.ConfidenceLow),
		finding(models.TypeName, "Aryan", 40, models.ConfidenceLow),
		finding(models.TypeRelationship, "Aryan", 9, models.ConfidenceHigh),
	}
	out := Resolve(in)

	require.Len(t, out, 4)
	// the upgrade keeps the slot of the first occurrence
	assert.Equal(t, "aryan", out[0].Match)
	assert.Equal(t, models.ConfidenceHigh, out[0].Confidence)
	assert.Equal(t, models.TypePhone, out[1].Type)
	assert.Equal(t, 40, out[2].Offset)
	assert.Equal(t, models.TypeRelationship, out[3].Type)
}

func TestResolveTieKeepsFirst(t *testing.T) {
	out := Resolve([]models.Finding{
		finding(models.TypeDate, "15.03.2010", 5, models.ConfidenceMedium),
		finding(models.TypeDate, "15.03.2010", 6, models.ConfidenceMedium),
	})
	require.Len(t, out, 1)
	assert.Equal(t, 5, out[0].Offset)
}

func TestAggregate(t *testing.T) {
	empty := Aggregate(nil)
	assert.False(t, empty.HasPII)
	assert.NotNil(t, empty.Warnings)
	assert.NotNil(t, empty.Counts)
	assert.Equal(t, models.ConfidenceNone, empty.MaxConfidence)

	res := Aggregate([]models.Finding{
		finding(models.TypeLocation, "Tøyen", 0, models.ConfidenceMedium),
		finding(models.TypeLocation, "Holmlia", 20, models.ConfidenceLow),
	})
	assert.True(t, res.HasPII)
	assert.Equal(t, 2, res.Counts[models.TypeLocation])
	assert.Equal(t, models.ConfidenceMedium, res.MaxConfidence)
}

func TestArenaUpgradeIsMonotonic(t *testing.T) {
	var a arena
	id := a.add(finding(models.TypeName, "Jan", 0, models.ConfidenceHigh))
	a.upgrade(id, upgrade{
		Match:      "Jan Hansen",
		Type:       models.TypeFullName,
		Message:    "m",
		Confidence: models.ConfidenceMedium,
	})
	f := a.findings[id]
	assert.Equal(t, models.TypeFullName, f.Type)
	assert.Equal(t, models.ConfidenceHigh, f.Confidence)
	assert.Equal(t, "Jan Hansen", f.Match)

	other := a.add(finding(models.TypePhone, "98765432", 20, models.ConfidenceLow))
	a.upgrade(other, upgrade{Match: "98765432", Offset: 20, Type: models.TypeFullName, Confidence: models.ConfidenceHigh})
	assert.Equal(t, models.TypePhone, a.findings[other].Type)
	assert.Equal(t, models.ConfidenceHigh, a.findings[other].Confidence)
}

func TestArenaLookups(t *testing.T) {
	var a arena
	a.add(finding(models.TypeName, "Kari", 10, models.ConfidenceHigh))
	a.add(finding(models.TypeRelationship, "Emma", 50, models.ConfidenceHigh))

	assert.True(t, a.covered("kari", 35, 30))
	assert.False(t, a.covered("kari", 41, 30))

	id, ok := a.anchoredName("Kari", 14, 5)
	assert.True(t, ok)
	assert.Equal(t, findingID(0), id)
	_, ok = a.anchoredName("Kari", 16, 5)
	assert.False(t, ok)
	_, ok = a.anchoredName("Emma", 50, 5)
	assert.False(t, ok, "only name findings anchor an upgrade")
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		typ      models.FindingType
		context  string
		expected string
	}{
		{models.TypeName, "Hadde samtale med ", "brukeren / ungdommen"},
		{models.TypeName, "Kjørte ", "ungdommen"},
		{models.TypeFullName, "Var hjemme hos ", "hjemmebesøk hos brukeren"},
		{models.TypeName, "Sendte SMS til ", "foresatte / kontaktpersonen"},
		{models.TypeName, "", defaultNameSuggestion},
		// meeting wins over contact when both appear
		{models.TypeName, "Ringte etter møtet med ", "brukeren / ungdommen"},
		{models.TypeName, "Etter vurdering ", defaultNameSuggestion},
		{models.TypeName, "Bekymring for ", defaultNameSuggestion},
		{models.TypeName, "Ingen endring hos ", "hjemmebesøk hos brukeren"},
		{models.TypeName, "Sendte e-post til ", "foresatte / kontaktpersonen"},
		{models.TypeSSN, "Møte med ", "fjern fødselsnummeret umiddelbart"},
		{models.TypeAddress, "", "bruk generelt område, f.eks. «bydelen»"},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ)+"/"+tt.context, func(t *testing.T) {
			assert.Equal(t, tt.expected, Suggest(tt.typ, tt.context))
		})
	}
}

func TestCombineAndAtLeast(t *testing.T) {
	results := map[string]models.ScanResult{
		"a": ScanForPII("Født 15.03.2010"),
		"b": ScanForPII("Ring 98765432"),
	}

	all := Combine(results, nil)
	assert.Equal(t, 2, all.TotalWarnings)
	assert.True(t, all.HasPII)

	high := Combine(results, AtLeast(models.ConfidenceHigh))
	assert.Equal(t, 1, high.TotalWarnings)
	assert.False(t, high.Results["a"].HasPII)
	assert.Equal(t, models.ConfidenceNone, high.Results["a"].MaxConfidence)

	assert.Equal(t, results["a"], AtLeast(models.ConfidenceNone)(results["a"]))
}
