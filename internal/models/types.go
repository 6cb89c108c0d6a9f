package models

import "time"

// FindingType is the closed set of PII categories the scanner reports.
type FindingType string

const (
	TypeName         FindingType = "name"
	TypeFullName     FindingType = "full_name"
	TypeDate         FindingType = "date"
	TypeAddress      FindingType = "address"
	TypePhone        FindingType = "phone"
	TypeEmail        FindingType = "email"
	TypeSSN          FindingType = "ssn"
	TypeRelationship FindingType = "relationship"
	TypeLocation     FindingType = "location"
)

// AllTypes lists every FindingType in display order.
var AllTypes = []FindingType{
	TypeSSN, TypeFullName, TypeName, TypeRelationship, TypePhone,
	TypeEmail, TypeAddress, TypeLocation, TypeDate,
}

// Finding represents one suspected PII occurrence in normalized text
type Finding struct {
	Match      string      `json:"match"`
	Type       FindingType `json:"type"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
	Offset     int         `json:"offset"` // rune offset into the normalized text
	Confidence Confidence  `json:"confidence"`
}

// ScanResult is the outcome of scanning a single field
type ScanResult struct {
	HasPII        bool                `json:"hasPii"`
	Warnings      []Finding           `json:"warnings"`
	Counts        map[FindingType]int `json:"counts"`
	MaxConfidence Confidence          `json:"maxConfidence"`
}

// MultiFieldScanResult holds independent results for a set of named fields.
type MultiFieldScanResult struct {
	Results       map[string]ScanResult `json:"results"`
	TotalWarnings int                   `json:"totalWarnings"`
	HasPII        bool                  `json:"hasPii"`
}

// DocumentResult represents the outcome of scanning a single file
type DocumentResult struct {
	FilePath  string               `json:"file_path"`
	FileType  string               `json:"file_type"`
	Size      int64                `json:"size"`
	Scan      MultiFieldScanResult `json:"scan"`
	Error     error                `json:"-"` // Internal error tracking
	ErrorMsg  string               `json:"error,omitempty"`
	ScanTime  time.Duration        `json:"scan_time"`
	Timestamp time.Time            `json:"timestamp"`
}

// Job represents a file to be scanned by a worker
type Job struct {
	FilePath string
}
