package whitelist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/pii"
)

func TestLoadAndAdd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "whitelist.txt")
	require.NoError(t, os.WriteFile(path, []byte("# godkjent\nUngdomsLoftet\n\n"), 0o644))

	w, err := NewWhitelist(path)
	require.NoError(t, err)
	assert.True(t, w.Contains("ungdomsloftet"))
	assert.True(t, w.Contains("  UngdomsLoftet "))
	assert.False(t, w.Contains("# godkjent"))
	assert.Equal(t, 1, w.Len())

	require.NoError(t, w.Add("Kari Nordmann"))
	require.NoError(t, w.Add("kari nordmann"))
	require.NoError(t, w.Add("   "))
	assert.Equal(t, []string{"Kari Nordmann", "UngdomsLoftet"}, w.Values())

	reloaded, err := NewWhitelist(path)
	require.NoError(t, err)
	assert.True(t, reloaded.Contains("KARI NORDMANN"))
	assert.Equal(t, 2, reloaded.Len())
}

func TestMissingFileStartsEmpty(t *testing.T) {
	w, err := NewWhitelist(filepath.Join(t.TempDir(), "none.txt"))
	require.NoError(t, err)
	assert.Equal(t, 0, w.Len())
}

func TestFilter(t *testing.T) {
	w, err := NewWhitelist("")
	require.NoError(t, err)

	res := pii.ScanForPII("Jan Hansen møtte brukeren. Ring 98765432")
	require.True(t, res.HasPII)
	assert.Equal(t, res, w.Filter(res))

	require.NoError(t, w.Add("98765432"))
	filtered := w.Filter(res)
	assert.Zero(t, filtered.Counts[models.TypePhone])
	for _, f := range filtered.Warnings {
		assert.NotEqual(t, "98765432", f.Match)
	}
	assert.Equal(t, len(res.Warnings)-1, len(filtered.Warnings))

	multi := w.FilterFields(pii.ScanMultipleFields(map[string]string{
		"a": "Ring 98765432",
		"b": "Møte med Aryan",
	}))
	assert.False(t, multi.Results["a"].HasPII)
	assert.True(t, multi.Results["b"].HasPII)
	assert.Equal(t, 1, multi.TotalWarnings)
	assert.True(t, multi.HasPII)
}
