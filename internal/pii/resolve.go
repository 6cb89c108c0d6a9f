package pii

import (
	"strconv"
	"strings"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
)

// OffsetBucket is the width, in runes, of the window in which two findings
// with the same type and text count as one.
const OffsetBucket = 10

// DedupKey identifies a finding for conflict resolution.
func DedupKey(f models.Finding) string {
	return string(f.Type) + ":" + strings.ToLower(f.Match) + ":" + strconv.Itoa(f.Offset/OffsetBucket)
}

// Resolve keeps the highest-confidence finding per DedupKey. Ties keep the
// first one seen and survivors keep the position of the first occurrence.
func Resolve(findings []models.Finding) []models.Finding {
	out := make([]models.Finding, 0, len(findings))
	index := make(map[string]int, len(findings))
	for _, f := range findings {
		key := DedupKey(f)
		if i, ok := index[key]; ok {
			if f.Confidence.Rank() > out[i].Confidence.Rank() {
				out[i] = f
			}
			continue
		}
		index[key] = len(out)
		out = append(out, f)
	}
	return out
}

// Aggregate derives the scan result from a resolved finding list.
func Aggregate(warnings []models.Finding) models.ScanResult {
	if warnings == nil {
		warnings = []models.Finding{}
	}
	res := models.ScanResult{
		HasPII:        len(warnings) > 0,
		Warnings:      warnings,
		Counts:        make(map[models.FindingType]int),
		MaxConfidence: models.ConfidenceNone,
	}
	for _, w := range warnings {
		res.Counts[w.Type]++
		if w.Confidence.Rank() > res.MaxConfidence.Rank() {
			res.MaxConfidence = w.Confidence
		}
	}
	return res
}

// Combine builds a multi-field result, passing each field through fn first
// when fn is not nil.
func Combine(results map[string]models.ScanResult, fn func(models.ScanResult) models.ScanResult) models.MultiFieldScanResult {
	out := models.MultiFieldScanResult{
		Results: make(map[string]models.ScanResult, len(results)),
	}
	for name, res := range results {
		if fn != nil {
			res = fn(res)
		}
		out.Results[name] = res
		out.TotalWarnings += len(res.Warnings)
		out.HasPII = out.HasPII || res.HasPII
	}
	return out
}

// AtLeast returns a filter that keeps findings at or above min.
func AtLeast(min models.Confidence) func(models.ScanResult) models.ScanResult {
	return func(res models.ScanResult) models.ScanResult {
		if min == models.ConfidenceNone {
			return res
		}
		return Aggregate(models.FilterByConfidence(res.Warnings, min))
	}
}
