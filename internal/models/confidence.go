package models

import (
	"fmt"
	"sort"
	"strings"
)

// Confidence is the ordinal certainty of a finding.
type Confidence string

const (
	ConfidenceNone   Confidence = "none"
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Rank orders confidence levels: high > medium > low > none.
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether c is ranked at or above min.
func (c Confidence) AtLeast(min Confidence) bool {
	return c.Rank() >= min.Rank()
}

// ParseConfidence accepts "high", "medium", "low", "none" or "" (none).
func ParseConfidence(s string) (Confidence, error) {
	switch c := Confidence(strings.ToLower(strings.TrimSpace(s))); c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow, ConfidenceNone:
		return c, nil
	case "":
		return ConfidenceNone, nil
	default:
		return ConfidenceNone, fmt.Errorf("unknown confidence level %q", s)
	}
}

// SortByConfidence orders findings high first. Equal levels keep their
// relative order, so the result is still deterministic.
func SortByConfidence(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Confidence.Rank() > findings[j].Confidence.Rank()
	})
}

// FilterByConfidence returns the findings ranked at or above min.
func FilterByConfidence(findings []Finding, min Confidence) []Finding {
	out := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if f.Confidence.AtLeast(min) {
			out = append(out, f)
		}
	}
	return out
}
