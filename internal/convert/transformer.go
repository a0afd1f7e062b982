package convert

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/handiism/tracker-convert/internal/model"
)

// standardFormats lists the export keys checked first, in output order.
// "cd" maps to "CD", not "Cd"; the tracker matches on that exact token.
var standardFormats = []struct {
	key   string
	label string
}{
	{"vinyl", model.FormatVinyl},
	{"cd", model.FormatCD},
	{"cassette", model.FormatCassette},
	{"digital", model.FormatDigital},
}

// FallbackKind identifies a field that was filled in with a default.
type FallbackKind int

const (
	// FallbackAddedAt means the id could not be read as a number.
	FallbackAddedAt FallbackKind = iota

	// FallbackFormat means no format flag was set and Digital was assumed.
	FallbackFormat
)

// Fallback records a default that replaced missing or unreadable source data.
type Fallback struct {
	// Index is the position of the record in the export.
	Index int

	Kind FallbackKind
}

// Result is the outcome of transforming an export.
type Result struct {
	// Items holds one tracker item per source record, in export order.
	Items []model.TrackerItem

	// Collection is the number of items with the Collection status.
	Collection int

	// Wishlist is the number of items with the Wishlist status.
	Wishlist int

	// Fallbacks lists the defaults applied, in export order.
	Fallbacks []Fallback
}

// Total returns the number of converted items.
func (r *Result) Total() int {
	return len(r.Items)
}

// Transform maps source records to tracker items.
//
// Each record is mapped on its own; the only cross-record input is its
// position, which becomes the item's customOrder. The returned counts
// always satisfy Collection + Wishlist == len(Items).
//
// Transform has no side effects and never fails.
func Transform(records []model.SourceRecord) Result {
	result := Result{
		Items: make([]model.TrackerItem, 0, len(records)),
	}

	for i := range records {
		item, fallbacks := transformRecord(i, &records[i])
		result.Items = append(result.Items, item)
		result.Fallbacks = append(result.Fallbacks, fallbacks...)

		if item.IsWishlist() {
			result.Wishlist++
		}
	}

	result.Collection = len(result.Items) - result.Wishlist
	return result
}

// transformRecord maps a single record at export position index.
func transformRecord(index int, rec *model.SourceRecord) (model.TrackerItem, []Fallback) {
	var fallbacks []Fallback

	status := model.StatusCollection
	if rec.Wanted {
		status = model.StatusWishlist
	}

	formats := deriveFormats(rec)
	if len(formats) == 0 {
		fallbacks = append(fallbacks, Fallback{Index: index, Kind: FallbackFormat})
	}

	addedAt, ok := parseTimestamp(rec.ID)
	if !ok {
		fallbacks = append(fallbacks, Fallback{Index: index, Kind: FallbackAddedAt})
	}

	item := model.NewItemBuilder(index).
		Title(rec.AlbumName).
		Artists(rec.AlbumArtists).
		CoverURL(rec.ImageURL).
		ReleaseDate(rec.ReleaseDate).
		URL(rec.AlbumLink).
		Formats(formats).
		Status(status).
		AddedAt(addedAt).
		Genres(rec.Genres).
		Build()

	return item, fallbacks
}

// deriveFormats returns the format labels for a record.
//
// The standard keys are checked first. Only when none of them is set are
// the remaining keys used, capitalized, in export order and without
// duplicates. An empty result is left for the builder to default.
func deriveFormats(rec *model.SourceRecord) []string {
	var formats []string
	for _, sf := range standardFormats {
		if rec.HasFormat(sf.key) {
			formats = append(formats, sf.label)
		}
	}
	if len(formats) > 0 {
		return formats
	}

	for _, flag := range rec.Types {
		if !flag.Set {
			continue
		}
		label := capitalize(flag.Key)
		if !contains(formats, label) {
			formats = append(formats, label)
		}
	}

	return formats
}

// capitalize title-cases the first character and lower-cases the rest.
//
//	capitalize("reissue") // "Reissue"
//	capitalize("LP")      // "Lp"
//	capitalize("boxSet")  // "Boxset"
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToTitle(r)) + cases.Lower(language.Und).String(s[size:])
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
