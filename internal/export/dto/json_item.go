package dto

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/handiism/tracker-convert/internal/model"
)

// ErrNotObject is returned when an export item is not a JSON object.
var ErrNotObject = errors.New("item is not a JSON object")

// JSONItem represents one raw item of the vinyl/CD tracker export.
//
// Every field is kept as raw JSON so a value of the wrong type never fails
// decoding; ToRecord resolves each field to its default instead. Keys are
// matched exactly, unlike encoding/json struct decoding which folds case.
type JSONItem struct {
	Wanted       json.RawMessage
	Types        json.RawMessage
	AlbumArtists json.RawMessage
	ID           json.RawMessage
	AlbumName    json.RawMessage
	ImageURL     json.RawMessage
	ReleaseDate  json.RawMessage
	AlbumLink    json.RawMessage
	Genres       json.RawMessage
}

// DecodeItem decodes a raw export item.
//
// Returns ErrNotObject if raw is null, a scalar or an array.
func DecodeItem(raw json.RawMessage) (*JSONItem, error) {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 || v[0] != '{' {
		return nil, ErrNotObject
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(v, &fields); err != nil {
		return nil, err
	}

	return &JSONItem{
		Wanted:       fields["wanted"],
		Types:        fields["types"],
		AlbumArtists: fields["albumArtists"],
		ID:           fields["id"],
		AlbumName:    fields["albumName"],
		ImageURL:     fields["imageUrl"],
		ReleaseDate:  fields["releaseDate"],
		AlbumLink:    fields["albumLink"],
		Genres:       fields["genres"],
	}, nil
}

// ToRecord converts JSONItem to a model.SourceRecord.
func (ji *JSONItem) ToRecord() model.SourceRecord {
	rec := model.SourceRecord{
		Wanted:       Truthy(ji.Wanted),
		Types:        FormatFlags(ji.Types),
		AlbumArtists: Artists(ji.AlbumArtists),
		Genres:       StringList(ji.Genres),
	}

	if len(ji.ID) > 0 {
		rec.ID = append(json.RawMessage(nil), ji.ID...)
	}
	if name, ok := String(ji.AlbumName); ok {
		rec.AlbumName = &name
	}
	rec.ImageURL, _ = String(ji.ImageURL)
	rec.ReleaseDate, _ = String(ji.ReleaseDate)
	rec.AlbumLink, _ = String(ji.AlbumLink)

	return rec
}
