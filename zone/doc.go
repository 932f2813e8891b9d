// Package zone implements fixed-offset timezone arithmetic for the clock
// face.
//
// A Zone is nothing more than a display name and a signed UTC offset in
// minutes. Offsets never change at runtime: there is no timezone database
// lookup and no daylight-saving awareness. Converting the local wall clock
// into a zone's wall clock is pure integer math:
//
//	zone minutes = local minutes + (zone offset - local offset)
//
// normalized into a single day. Noon and later is PM; midnight is AM.
//
// The package also parses the two offset spellings accepted by
// configuration: "+05:30" (hours and minutes) and "330" (raw signed
// minutes), plus comma-separated NAME=OFFSET zone lists.
package zone
