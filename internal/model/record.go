package model

import "encoding/json"

// FormatFlag is one entry of an export item's "types" mapping.
type FormatFlag struct {
	// Key is the raw format key as it appears in the export, e.g. "vinyl" or "reissue".
	Key string

	// Set reports whether the key's value was truthy.
	Set bool
}

// SourceRecord represents one item of a vinyl/CD tracker export.
//
// Every field holds its default when the export omitted it or stored a
// value of the wrong type:
//   - Wanted is false
//   - Types, AlbumArtists and Genres are empty
//   - AlbumName is nil
//   - ImageURL, ReleaseDate and AlbumLink are empty strings
//
// ID is kept as the raw JSON value because the export stores it as an
// integer, a float or a numeric string depending on its age.
type SourceRecord struct {
	// Wanted marks the item as a wishlist entry.
	Wanted bool

	// Types holds the format flags in the order they appear in the export.
	// A key repeated in the export appears once, at its first position,
	// with the last value seen.
	Types []FormatFlag

	// AlbumArtists lists the album artists in export order.
	AlbumArtists []string

	// ID is the raw "id" value, nil when absent.
	ID json.RawMessage

	// AlbumName is the album title, nil when absent or null.
	AlbumName *string

	// ImageURL is the cover art URL.
	ImageURL string

	// ReleaseDate is the release date exactly as the export formats it.
	ReleaseDate string

	// AlbumLink is a link to the album page.
	AlbumLink string

	// Genres lists the genres in export order.
	Genres []string
}

// HasFormat reports whether the given format key is present and truthy.
func (r *SourceRecord) HasFormat(key string) bool {
	for _, f := range r.Types {
		if f.Key == key {
			return f.Set
		}
	}
	return false
}
