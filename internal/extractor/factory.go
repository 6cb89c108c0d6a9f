package extractor

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// FieldExtractor turns a document into named text fields. Each field is
// scanned on its own, so a field should hold one coherent piece of text.
type FieldExtractor interface {
	Extract(reader io.Reader) (map[string]string, error)
}

// Factory handles creation of the extractor for a file
type Factory struct{}

// NewFactory creates a new extractor factory
func NewFactory() *Factory {
	return &Factory{}
}

// ExtractorFor returns the FieldExtractor for path based on its extension
func (f *Factory) ExtractorFor(path string) (FieldExtractor, string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if !f.IsSupported(ext) {
		return nil, ext, fmt.Errorf("unsupported file extension: %s", ext)
	}

	var ex FieldExtractor
	switch ext {
	case ".pdf":
		ex = &PDFExtractor{}
	case ".xlsx", ".xlsm":
		ex = &ExcelExtractor{}
	default:
		// .txt, .md, .html, .csv, exported journal notes
		ex = &TextExtractor{}
	}

	return ex, ext, nil
}

// IsSupported checks if the file extension is supported for scanning
func (f *Factory) IsSupported(ext string) bool {
	switch ext {
	// Block strict binaries / media
	case ".exe", ".dll", ".so", ".dylib", ".bin":
		return false
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp":
		return false
	case ".mp3", ".mp4", ".wav", ".avi", ".mov", ".mkv":
		return false
	case ".zip", ".tar", ".gz", ".rar", ".7z", ".iso":
		return false
	// legacy Office formats need a converter first
	case ".doc", ".xls", ".ppt":
		return false
	default:
		return true
	}
}
