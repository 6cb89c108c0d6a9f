package pii

import (
	"strings"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
)

type findingID int

// arena accumulates findings in emission order. IDs are indexes and stay
// stable for the whole scan; findings are never removed before resolution.
type arena struct {
	findings []models.Finding
}

func (a *arena) add(f models.Finding) findingID {
	a.findings = append(a.findings, f)
	return findingID(len(a.findings) - 1)
}

// covered reports whether a finding for the same text already sits within
// tolerance runes of offset.
func (a *arena) covered(match string, offset, tolerance int) bool {
	for _, f := range a.findings {
		if strings.EqualFold(f.Match, match) && abs(f.Offset-offset) <= tolerance {
			return true
		}
	}
	return false
}

// anchoredName finds a name finding for word starting within tolerance runes
// of offset.
func (a *arena) anchoredName(word string, offset, tolerance int) (findingID, bool) {
	for i, f := range a.findings {
		if f.Type == models.TypeName && strings.EqualFold(f.Match, word) && abs(f.Offset-offset) <= tolerance {
			return findingID(i), true
		}
	}
	return 0, false
}

// upgrade describes how a finding is widened in place.
type upgrade struct {
	Match      string
	Offset     int
	Type       models.FindingType
	Message    string
	Confidence models.Confidence
}

// upgrade widens finding id. The type may only move from name to full_name
// and confidence never drops, whatever u asks for.
func (a *arena) upgrade(id findingID, u upgrade) {
	f := &a.findings[id]
	f.Match = u.Match
	f.Offset = u.Offset
	f.Message = u.Message
	if f.Type == models.TypeName && u.Type == models.TypeFullName {
		f.Type = u.Type
	}
	if u.Confidence.Rank() > f.Confidence.Rank() {
		f.Confidence = u.Confidence
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
