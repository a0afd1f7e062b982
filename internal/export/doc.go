// Package export decodes the JSON export written by the vinyl/CD tracker.
//
// The export is a JSON array of loosely typed objects. Items written by
// different versions of the tracker disagree on field types: albumArtists
// may be a string or a list, id may be a number or a numeric string, and
// any field may be missing or null.
//
// # Parsing
//
//	parser := export.NewParser()
//	records, err := parser.ParseRecords(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Only a document that is not an array of objects is rejected. Inside an
// item every field has a fallback, see model.SourceRecord.
//
// # Truthiness
//
// The tracker stores flags such as "wanted" and the entries of "types" as
// whatever value was at hand: booleans, 0/1, strings. The dto package
// applies one rule to all of them: null, false, 0, "", [] and {} are unset,
// anything else is set.
package export
