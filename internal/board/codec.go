package board

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/models"
)

// Export file defaults
const (
	ExportFileName = "kanban-backup.json"
	ExportMIMEType = "application/json"
)

// Encode serializes doc in the compact form kept in storage
func Encode(doc models.Document) ([]byte, error) {
	data, err := encode(doc, "")
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(data, []byte("\n")), nil
}

// EncodePretty serializes doc as the export file: two-space indent, trailing newline
func EncodePretty(doc models.Document) ([]byte, error) {
	return encode(doc, "  ")
}

// encode writes text as-is, without escaping &, < and >
func encode(doc models.Document, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses untrusted JSON into a Document. Anything that is not JSON,
// lacks boards or currentBoard, or does not fit the typed model fails with
// ErrInvalidFormat. The result is not normalized.
func Decode(data []byte) (models.Document, error) {
	return decode(data, documentSchemaURL)
}

// decodeStored is Decode for the persisted value, where a missing or empty
// currentBoard is left for Normalize to repair.
func decodeStored(data []byte) (models.Document, error) {
	return decode(data, storedSchemaURL)
}

func decode(data []byte, schemaURL string) (models.Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.Document{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if err := validateShape(schemaURL, raw); err != nil {
		return models.Document{}, err
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Document{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return doc, nil
}
