// Package face implements the clock face as a Bubble Tea model.
//
// The face is a vertical stack of panels, one per configured zone, sized to
// equal thirds of the terminal (the last panel absorbs remainder rows). A
// panel draws its zone's name in the thin face over the zone's wall-clock
// time in thick block digits, on a white fill during that zone's AM hours
// and inverted video during PM.
//
// Rendering is driven entirely by the host program loop: a tick aligned to
// the minute (or second) boundary captures the current time once and marks
// every panel dirty; the next View call re-renders dirty panels and serves
// the rest from cache. Panels derive their zone's time from the shared
// captured value with pure arithmetic, so draw order between panels never
// matters.
//
// The package logger is a no-op unless SetLogger installs one before the
// program starts.
package face
