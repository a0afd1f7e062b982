package model

// Status is the shelf an item belongs to in the tracker.
type Status string

const (
	// StatusCollection marks an item the user owns.
	StatusCollection Status = "Collection"

	// StatusWishlist marks an item the user wants.
	StatusWishlist Status = "Wishlist"
)

// Format labels understood by the tracker.
const (
	FormatVinyl    = "Vinyl"
	FormatCD       = "CD"
	FormatCassette = "Cassette"
	FormatDigital  = "Digital"
)

// TrackerItem represents one entry of the tracker's import file.
//
// Field order matches the order the tracker writes in its own exports.
type TrackerItem struct {
	// Title is the album title. It is encoded as null when unknown.
	Title *string `json:"title"`

	// Artist lists the album artists.
	Artist []string `json:"artist"`

	// CoverURL is omitted from the encoded item when empty.
	CoverURL string `json:"coverUrl,omitempty"`

	// ReleaseDate is omitted from the encoded item when empty.
	ReleaseDate string `json:"releaseDate,omitempty"`

	// URL is omitted from the encoded item when empty.
	URL string `json:"url,omitempty"`

	// Format lists the physical or digital formats. Never empty.
	Format []string `json:"format"`

	Status Status `json:"status"`

	// Rating is always zero on import.
	Rating int `json:"rating"`

	// AddedAt is the timestamp the item was added, 0 when unknown.
	AddedAt int64 `json:"addedAt"`

	// CustomOrder is the item's position in the export.
	CustomOrder int `json:"customOrder"`

	Genres []string `json:"genres"`
}

// IsWishlist returns true if the item sits on the wishlist.
func (t *TrackerItem) IsWishlist() bool {
	return t.Status == StatusWishlist
}

// ItemBuilder assembles a TrackerItem.
//
// Optional string fields are only set when the supplied value is non-empty,
// so a built item never carries an empty coverUrl, releaseDate or url.
// Build returns an independent copy; the builder can be discarded or reused.
//
// Example:
//
//	item := NewItemBuilder(3).
//	    Artists([]string{"Artist"}).
//	    URL("").           // ignored
//	    Formats(nil).      // falls back to Digital
//	    Build()
type ItemBuilder struct {
	item TrackerItem
}

// NewItemBuilder starts an item at the given export position.
//
// The item defaults to the Collection status, an empty artist list, an
// empty genre list and a zero rating.
func NewItemBuilder(order int) *ItemBuilder {
	return &ItemBuilder{
		item: TrackerItem{
			Artist:      []string{},
			Status:      StatusCollection,
			CustomOrder: order,
			Genres:      []string{},
		},
	}
}

// Title sets the album title. A nil title is kept and encoded as null.
func (b *ItemBuilder) Title(title *string) *ItemBuilder {
	if title != nil {
		t := *title
		b.item.Title = &t
	} else {
		b.item.Title = nil
	}
	return b
}

// Artists sets the artist list.
func (b *ItemBuilder) Artists(artists []string) *ItemBuilder {
	b.item.Artist = cloneStrings(artists)
	return b
}

// CoverURL sets the cover art URL if non-empty.
func (b *ItemBuilder) CoverURL(url string) *ItemBuilder {
	if url != "" {
		b.item.CoverURL = url
	}
	return b
}

// ReleaseDate sets the release date if non-empty.
func (b *ItemBuilder) ReleaseDate(date string) *ItemBuilder {
	if date != "" {
		b.item.ReleaseDate = date
	}
	return b
}

// URL sets the album link if non-empty.
func (b *ItemBuilder) URL(url string) *ItemBuilder {
	if url != "" {
		b.item.URL = url
	}
	return b
}

// Formats sets the format list.
func (b *ItemBuilder) Formats(formats []string) *ItemBuilder {
	b.item.Format = cloneStrings(formats)
	return b
}

// Status sets the shelf.
func (b *ItemBuilder) Status(status Status) *ItemBuilder {
	b.item.Status = status
	return b
}

// AddedAt sets the added-at timestamp.
func (b *ItemBuilder) AddedAt(ts int64) *ItemBuilder {
	b.item.AddedAt = ts
	return b
}

// Genres sets the genre list.
func (b *ItemBuilder) Genres(genres []string) *ItemBuilder {
	b.item.Genres = cloneStrings(genres)
	return b
}

// Build returns the finished item. An empty format list becomes [Digital].
func (b *ItemBuilder) Build() TrackerItem {
	item := b.item
	item.Artist = cloneStrings(item.Artist)
	item.Genres = cloneStrings(item.Genres)
	if len(item.Format) == 0 {
		item.Format = []string{FormatDigital}
	} else {
		item.Format = cloneStrings(item.Format)
	}
	if item.Title != nil {
		t := *item.Title
		item.Title = &t
	}
	return item
}

// cloneStrings copies s, returning an empty non-nil slice for nil input
// so the list encodes as [] rather than null.
func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
