package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/pii"
)

func setupDB(t *testing.T) {
	t.Helper()
	require.NoError(t, Init(filepath.Join(t.TempDir(), "test.db")))
	t.Cleanup(func() {
		if sqlDB, err := DB.DB(); err == nil {
			sqlDB.Close()
		}
	})
}

func doc(path string, fields map[string]string) models.DocumentResult {
	return models.DocumentResult{
		FilePath: path,
		FileType: ".txt",
		Scan:     pii.ScanMultipleFields(fields),
	}
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, Fingerprint("Kari Olsen"), Fingerprint(" kari olsen "))
	assert.NotEqual(t, Fingerprint("Kari Olsen"), Fingerprint("Kari Hansen"))
	assert.Len(t, Fingerprint("x"), 16)
}

func TestScanLifecycle(t *testing.T) {
	setupDB(t)

	scan, err := CreateScan("/data/rapporter")
	require.NoError(t, err)
	assert.Equal(t, StatusRunning, scan.Status)

	require.NoError(t, SaveResult(scan.ID, doc("a.txt", map[string]string{
		"body": "Møte med Aryan. Ring 98765432",
	})))
	require.NoError(t, SaveResult(scan.ID, doc("b.txt", map[string]string{
		"body": "Aryan var fornøyd",
	})))
	require.NoError(t, SaveResult(scan.ID, doc("c.txt", map[string]string{
		"body": "Brukeren trives godt på skolen",
	})))
	require.NoError(t, CompleteScan(scan, 3, 2, 3))

	stored, err := GetScanByID(scan.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, stored.Status)
	assert.Equal(t, int64(3), stored.TotalFiles)
	require.Len(t, stored.Findings, 3)

	for _, f := range stored.Findings {
		assert.NotContains(t, f.Fingerprint, "Aryan")
		assert.Equal(t, "body", f.Field)
		assert.NotEmpty(t, f.Severity)
	}

	counts, err := TypeCounts(scan.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts["name"])
	assert.Equal(t, int64(1), counts["phone"])

	rec, err := Recurring(scan.ID, 10)
	require.NoError(t, err)
	require.Len(t, rec, 1)
	assert.Equal(t, Fingerprint("Aryan"), rec[0].Fingerprint)
	assert.Equal(t, int64(2), rec[0].Files)

	scans, err := GetAllScans()
	require.NoError(t, err)
	assert.Len(t, scans, 1)
}

func TestUpdateFeedback(t *testing.T) {
	setupDB(t)

	scan, err := CreateScan("x")
	require.NoError(t, err)
	require.NoError(t, SaveResult(scan.ID, doc("a.txt", map[string]string{"body": "Ring 98765432"})))

	stored, err := GetScanByID(scan.ID)
	require.NoError(t, err)
	require.Len(t, stored.Findings, 1)
	id := stored.Findings[0].ID

	require.NoError(t, UpdateFeedback(id, FeedbackIncorrect))
	assert.ErrorIs(t, UpdateFeedback(id, "maybe"), ErrInvalidFeedback)
	assert.ErrorIs(t, UpdateFeedback(9999, FeedbackCorrect), gorm.ErrRecordNotFound)

	stored, err = GetScanByID(scan.ID)
	require.NoError(t, err)
	assert.Equal(t, FeedbackIncorrect, stored.Findings[0].Feedback)
}
