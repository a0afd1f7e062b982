package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/handiism/tracker-convert/internal/export/dto"
	"github.com/handiism/tracker-convert/internal/model"
)

// ErrMalformedExport is returned when the export is not a JSON array of objects.
//
// Malformed fields inside an item never cause this error; only the shape of
// the document does:
//   - The file is not valid JSON
//   - The top-level value is not an array
//   - An array element is not an object
var ErrMalformedExport = errors.New("malformed collection export")

// Parser decodes vinyl/CD tracker exports into source records.
//
// Example usage:
//
//	parser := NewParser()
//
//	data, _ := os.ReadFile("vinyl-cd-tracker-data.json")
//	records, err := parser.ParseRecords(data)
//	if errors.Is(err, ErrMalformedExport) {
//	    log.Fatal(err)
//	}
//
//	for _, rec := range records {
//	    fmt.Println(rec.AlbumArtists)
//	}
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseRecords decodes an export document into source records, in document order.
//
// Each item is resolved into a fully defaulted model.SourceRecord:
// absent, null and wrongly typed fields take their default values.
//
// Returns an error wrapping ErrMalformedExport if the document is not a
// JSON array of objects.
func (p *Parser) ParseRecords(data []byte) ([]model.SourceRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: top-level value is not an array", ErrMalformedExport)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedExport, err)
	}

	records := make([]model.SourceRecord, 0, len(items))
	for i, raw := range items {
		item, err := dto.DecodeItem(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", ErrMalformedExport, i, err)
		}
		records = append(records, item.ToRecord())
	}

	return records, nil
}
