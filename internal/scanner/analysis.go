package scanner

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/models"
	"github.com/creaotrhubn26/tidsflyt-piiscan/internal/pii"
)

// errUnsupported marks files the factory refuses; they are not failures.
var errUnsupported = errors.New("unsupported file type")

// ScanFile extracts the fields of one document and scans them. Read errors
// are recorded on the result.
func (s *Scanner) ScanFile(path string) models.DocumentResult {
	start := time.Now()
	res := models.DocumentResult{
		FilePath:  path,
		Timestamp: start,
	}

	info, err := os.Stat(path)
	if err != nil {
		return fail(res, err)
	}
	res.Size = info.Size()

	ex, ext, err := s.factory.ExtractorFor(path)
	res.FileType = ext
	if err != nil {
		return fail(res, fmt.Errorf("%w: %s", errUnsupported, ext))
	}

	if s.cfg.Verbose {
		log.Printf("[SCAN] scanning file: %s (%s)", path, ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return fail(res, fmt.Errorf("failed to open file: %w", err))
	}
	defer file.Close()

	fields, err := ex.Extract(file)
	if err != nil {
		if s.cfg.Verbose {
			log.Printf("[ERROR] extraction failed for %s: %v", path, err)
		}
		return fail(res, fmt.Errorf("extraction failed: %w", err))
	}

	res.Scan = s.filter(s.engine.ScanFields(fields))
	if s.cfg.Verbose && res.Scan.HasPII {
		log.Printf("[MATCH] %s: %d findings in %d fields", path, res.Scan.TotalWarnings, len(fields))
	}

	res.ScanTime = time.Since(start)
	return res
}

// filter applies the whitelist and the confidence floor to every field.
func (s *Scanner) filter(res models.MultiFieldScanResult) models.MultiFieldScanResult {
	atLeast := pii.AtLeast(s.minConfidence)
	return pii.Combine(res.Results, func(r models.ScanResult) models.ScanResult {
		return atLeast(s.Whitelist.Filter(r))
	})
}

func fail(res models.DocumentResult, err error) models.DocumentResult {
	res.Error = err
	res.ErrorMsg = err.Error()
	return res
}
