// Package convert turns a vinyl/CD tracker export into the tracker's
// import format.
//
// # Transform
//
// Transform is the whole mapping. It is pure and never fails:
//
//	result := convert.Transform(records)
//	fmt.Println(result.Total(), result.Collection, result.Wishlist)
//
// For every record at position i:
//
//  1. status is Wishlist when "wanted" is set, Collection otherwise
//  2. format comes from the vinyl, cd, cassette and digital flags, in that
//     order; cd becomes "CD". When none is set, the other set keys are used,
//     capitalized and de-duplicated. The last resort is ["Digital"]
//  3. artist is always a list
//  4. addedAt is the id truncated to an integer, 0 when unreadable
//  5. title, coverUrl, releaseDate, url and genres are copied
//  6. customOrder is i and rating is 0
//
// Empty coverUrl, releaseDate and url values are left out of the item.
//
// # Manager
//
// The Manager wraps Transform with the file handling of one run:
//
//	manager := convert.NewManager(settings, logger, func(event convert.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	summary, err := manager.Run(ctx)
//	if errors.Is(err, convert.ErrInputNotFound) {
//	    return // "File not found" was already reported
//	}
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// Verbose events name every record that needed a default, so lossy
// conversions can be audited.
package convert
