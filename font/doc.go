// Package font provides the cell-glyph faces the clock face draws with,
// and the handle table that owns them.
//
// A terminal has no scalable fonts, so a "font" here is a fixed-height
// glyph face: the thin face is one cell row of plain text for zone labels,
// the thick face rasterizes '0'-'9' and ':' into five rows of block cells,
// seven-segment style, for the time string.
//
// Faces are loaded into a Table and addressed by opaque Handle values for
// their whole lifetime: load at startup, resolve while drawing, unload at
// teardown. Handle 0 is reserved and always invalid. The table is not safe
// for concurrent use; it belongs to the single goroutine driving the face.
package font
