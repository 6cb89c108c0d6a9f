package extractor

import (
	"fmt"
	"io"
	"strings"
)

// BodyField is the field name for documents that hold a single text.
const BodyField = "body"

// MaxTextBytes caps how much of a text file is read. Case notes are short;
// anything larger is almost certainly an export or a log.
const MaxTextBytes = 8 << 20

// TextExtractor reads plain text and HTML into a single body field.
// Markup is left in place; the scanner strips it.
type TextExtractor struct{}

func (e *TextExtractor) Extract(reader io.Reader) (map[string]string, error) {
	data, err := io.ReadAll(io.LimitReader(reader, MaxTextBytes))
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}
	text := strings.ToValidUTF8(string(sanitizeBytes(data)), " ")
	return map[string]string{BodyField: text}, nil
}

// sanitizeBytes replaces control bytes with spaces but keeps tabs, newlines
// and every byte above 0x7F so UTF-8 survives.
func sanitizeBytes(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		if (b >= 32 && b != 127) || b == 9 || b == 10 || b == 13 {
			out[i] = b
		} else {
			out[i] = ' '
		}
	}
	return out
}
