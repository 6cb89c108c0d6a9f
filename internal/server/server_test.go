package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/config"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/pii"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/reporting"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/storage"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/whitelist"
)

func newTestServer(t *testing.T) (*httptest.Server, *whitelist.Whitelist) {
	t.Helper()
	wl, err := whitelist.NewWhitelist(filepath.Join(t.TempDir(), "whitelist.txt"))
	require.NoError(t, err)

	report := reporting.NewReport()
	report.AddResult(models.DocumentResult{
		FilePath: "notat.txt",
		Scan:     pii.ScanMultipleFields(map[string]string{"body": "Ring 98765432"}),
	})
	report.Finalize()

	ts := httptest.NewServer(NewServer(config.DefaultConfig(), report, wl).Handler())
	t.Cleanup(ts.Close)
	return ts, wl
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestScanEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := post(t, ts.URL+"/api/scan", `{"text":"Møte med Aryan om fremtidsplaner"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var res models.ScanResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.HasPII)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "Aryan", res.Warnings[0].Match)
	assert.Equal(t, 9, res.Warnings[0].Offset)
	assert.Equal(t, 1, res.Counts[models.TypeName])
}

func TestScanEndpointEmptyText(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := post(t, ts.URL+"/api/scan", `{"text":""}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.Equal(t, false, raw["hasPii"])
	assert.Equal(t, []any{}, raw["warnings"])
	assert.Equal(t, "none", raw["maxConfidence"])
}

func TestScanFieldsEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := post(t, ts.URL+"/api/scan/fields", `{"fields":{"notat":"Ring 98765432","vurdering":"Brukeren trives"}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res models.MultiFieldScanResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.True(t, res.HasPII)
	assert.Equal(t, 1, res.TotalWarnings)
	assert.False(t, res.Results["vurdering"].HasPII)
}

func TestWhitelistEndpoint(t *testing.T) {
	ts, wl := newTestServer(t)

	resp := post(t, ts.URL+"/whitelist", `{"value":"Aryan"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, wl.Contains("aryan"))

	resp = post(t, ts.URL+"/api/scan", `{"text":"Møte med Aryan om fremtidsplaner"}`)
	var res models.ScanResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	assert.False(t, res.HasPII)

	assert.Equal(t, http.StatusBadRequest, post(t, ts.URL+"/whitelist", `{"value":""}`).StatusCode)
	assert.Equal(t, http.StatusBadRequest, post(t, ts.URL+"/whitelist", `not json`).StatusCode)
}

func TestReportPage(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	resp2, err := http.Get(ts.URL + "/api/scan")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp2.StatusCode)
}

func TestHistoryAndFeedback(t *testing.T) {
	require.NoError(t, storage.Init(filepath.Join(t.TempDir(), "server.db")))
	scan, err := storage.CreateScan("/data")
	require.NoError(t, err)
	require.NoError(t, storage.SaveResult(scan.ID, models.DocumentResult{
		FilePath: "a.txt",
		Scan:     pii.ScanMultipleFields(map[string]string{"body": "Ring 98765432"}),
	}))
	stored, err := storage.GetScanByID(scan.ID)
	require.NoError(t, err)
	require.Len(t, stored.Findings, 1)

	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/scans")
	require.NoError(t, err)
	defer resp.Body.Close()
	var scans []storage.ScanModel
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&scans))
	require.Len(t, scans, 1)
	assert.Equal(t, "/data", scans[0].RootPath)

	url := ts.URL + "/api/findings/" + jsonID(stored.Findings[0].ID) + "/feedback"
	assert.Equal(t, http.StatusNoContent, post(t, url, `{"feedback":"Incorrect"}`).StatusCode)
	assert.Equal(t, http.StatusBadRequest, post(t, url, `{"feedback":"kanskje"}`).StatusCode)
	assert.Equal(t, http.StatusNotFound, post(t, ts.URL+"/api/findings/999/feedback", `{"feedback":"Correct"}`).StatusCode)
	assert.Equal(t, http.StatusBadRequest, post(t, ts.URL+"/api/findings/abc/feedback", `{"feedback":"Correct"}`).StatusCode)
}

func jsonID(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
