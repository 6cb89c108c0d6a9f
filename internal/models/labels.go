package models

// Severity is the display priority of a finding type.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
)

// SeverityOf classifies a finding type for display prioritisation.
func SeverityOf(t FindingType) Severity {
	switch t {
	case TypeSSN, TypeFullName:
		return SeverityCritical
	case TypeName, TypeEmail, TypePhone, TypeRelationship:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}

var typeLabels = map[FindingType]string{
	TypeName:         "Navn",
	TypeFullName:     "Fullt navn",
	TypeDate:         "Dato/alder",
	TypeAddress:      "Adresse",
	TypePhone:        "Telefonnummer",
	TypeEmail:        "E-post",
	TypeSSN:          "Fødselsnummer",
	TypeRelationship: "Familierelasjon",
	TypeLocation:     "Sted",
}

// TypeLabel returns the Norwegian display label for t.
func TypeLabel(t FindingType) string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return string(t)
}

// ConfidenceLabel returns the Norwegian severity label for c.
func ConfidenceLabel(c Confidence) string {
	switch c {
	case ConfidenceHigh:
		return "Kritisk"
	case ConfidenceMedium:
		return "Gjennomgå"
	case ConfidenceLow:
		return "Til info"
	default:
		return ""
	}
}
