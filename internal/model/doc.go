// Package model defines the core data structures used throughout
// the tracker-convert application.
//
// # SourceRecord
//
// SourceRecord is one item of a vinyl/CD tracker export, already resolved
// into plain Go values. Absent, null and wrongly typed fields have been
// replaced by their defaults by the time a SourceRecord exists:
//
//	rec := model.SourceRecord{
//	    Wanted:       true,
//	    Types:        []model.FormatFlag{{Key: "vinyl", Set: true}},
//	    AlbumArtists: []string{"Solo"},
//	}
//
// # TrackerItem
//
// TrackerItem is one entry in the target tracker's JSON array. Items are
// assembled with an ItemBuilder so optional fields are only included when
// they carry a value:
//
//	item := model.NewItemBuilder(0).
//	    Title(&title).
//	    Artists(rec.AlbumArtists).
//	    CoverURL(rec.ImageURL).
//	    Formats([]string{model.FormatVinyl}).
//	    Status(model.StatusWishlist).
//	    Build()
//
// Empty coverUrl, releaseDate and url values never appear in the encoded
// item; title is always encoded, as null when unknown.
package model
