package reporting

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/pii"
)

func sampleReport() *Report {
	r := NewReport()
	r.Summary.RootPath = "/data"
	r.AddResult(models.DocumentResult{
		FilePath: "b.txt",
		Scan: pii.ScanMultipleFields(map[string]string{
			"body": "Møte med Aryan. Fødselsnummer 01020312345",
		}),
	})
	r.AddResult(models.DocumentResult{
		FilePath: "a.txt",
		Scan:     pii.ScanMultipleFields(map[string]string{"body": "Brukeren trives godt på skolen"}),
	})
	err := errors.New("permission denied")
	r.AddResult(models.DocumentResult{FilePath: "c.pdf", Error: err, ErrorMsg: err.Error()})
	r.Finalize()
	return r
}

func TestAddResult(t *testing.T) {
	r := sampleReport()
	assert.Equal(t, int64(3), r.Summary.TotalFilesScanned)
	assert.Equal(t, int64(1), r.Summary.TotalFilesWithPII)
	assert.Equal(t, int64(2), r.Summary.TotalPIIFound)
	assert.Equal(t, int64(1), r.Summary.FailedFiles)
	assert.Equal(t, int64(1), r.Summary.CountsByType[models.TypeSSN])
	assert.Equal(t, int64(1), r.Summary.CountsByType[models.TypeName])

	require.Len(t, r.Documents, 2)
	assert.Equal(t, "b.txt", r.Documents[0].FilePath)
	assert.Len(t, r.Failures(), 1)
}

func TestRowsAreOrdered(t *testing.T) {
	rows := sampleReport().Rows()
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "b.txt", row.FilePath)
		assert.Equal(t, "body", row.Field)
	}
	assert.Equal(t, models.SeverityOf(rows[0].Finding.Type), rows[0].Severity)
	assert.GreaterOrEqual(t, rows[0].Finding.Confidence.Rank(), rows[1].Finding.Confidence.Rank())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().WriteJSON(&buf))

	var decoded struct {
		Summary struct {
			TotalPIIFound int64            `json:"total_pii_found"`
			CountsByType  map[string]int64 `json:"counts_by_type"`
		} `json:"summary"`
		Documents []struct {
			FilePath string `json:"file_path"`
		} `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, int64(2), decoded.Summary.TotalPIIFound)
	assert.Equal(t, int64(1), decoded.Summary.CountsByType["ssn"])
	assert.Len(t, decoded.Documents, 2)
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().RenderHTML(&buf))
	html := buf.String()

	assert.Contains(t, html, "Fødselsnummer")
	assert.Contains(t, html, "Kritisk")
	assert.Contains(t, html, "fjern fødselsnummeret umiddelbart")
	assert.Contains(t, html, "permission denied")
	assert.Contains(t, html, `class="critical"`)
}

func TestSaveFiles(t *testing.T) {
	dir := t.TempDir()
	r := sampleReport()
	require.NoError(t, r.SaveJSON(filepath.Join(dir, "r.json")))
	require.NoError(t, r.SaveHTML(filepath.Join(dir, "r.html")))

	info, err := os.Stat(filepath.Join(dir, "r.html"))
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestEmptyReportRenders(t *testing.T) {
	var buf bytes.Buffer
	r := NewReport()
	r.Finalize()
	require.NoError(t, r.RenderHTML(&buf))
	assert.Contains(t, buf.String(), "Ingen personopplysninger funnet")
}
