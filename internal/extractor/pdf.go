package extractor

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ledongthuc/pdf"
)

// PageFieldPrefix names PDF page fields: side-1, side-2, ...
const PageFieldPrefix = "side-"

// PDFExtractor reads each page of a PDF into its own field.
type PDFExtractor struct{}

func (e *PDFExtractor) Extract(reader io.Reader) (map[string]string, error) {
	// ledongthuc/pdf needs an io.ReaderAt and the size
	var readerAt io.ReaderAt
	var size int64

	switch r := reader.(type) {
	case *os.File:
		stat, err := r.Stat()
		if err != nil {
			return nil, err
		}
		readerAt = r
		size = stat.Size()
	case *bytes.Reader:
		readerAt = r
		size = int64(r.Len())
	default:
		data, err := io.ReadAll(reader)
		if err != nil {
			return nil, err
		}
		readerAt = bytes.NewReader(data)
		size = int64(len(data))
	}

	doc, err := pdf.NewReader(readerAt, size)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	fields := make(map[string]string)
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("[PDF] skipping page %d: %v", i, err)
			continue
		}
		if content == "" {
			continue
		}
		fields[fmt.Sprintf("%s%d", PageFieldPrefix, i)] = content
	}

	return fields, nil
}
