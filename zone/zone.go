package zone

import (
	"fmt"
	"time"
)

// MaxZones is the height of the panel stack: the face splits the screen
// into at most this many rows, one per zone.
const MaxZones = 3

// Zone is one configured timezone entry. Entries are immutable after
// startup; the face only ever reads them.
type Zone struct {
	Name   string
	Offset Offset
}

// Default returns the stock zone set shown when nothing is configured.
func Default() []Zone {
	return []Zone{
		{Name: "US Central", Offset: -6 * 60},
		{Name: "US Eastern", Offset: -5 * 60},
		{Name: "India", Offset: 5*60 + 30},
	}
}

// WallTime is a wall-clock reading: hour, minute and second of day.
// Calendar fields are deliberately absent; the face never shows them.
type WallTime struct {
	Hour int // 0-23
	Min  int // 0-59
	Sec  int // 0-59
}

// At captures the wall-clock fields of t.
func At(t time.Time) WallTime {
	return WallTime{Hour: t.Hour(), Min: t.Minute(), Sec: t.Second()}
}

const minutesPerDay = 24 * 60

// Convert derives a zone's wall clock from a local reading: the local time
// is normalized to UTC by removing the local offset, then shifted by the
// zone's own offset. The input is never modified and the result hour and
// minute are in range for any offset pair, including deltas spanning
// several days. Seconds pass through unchanged; offsets are whole minutes.
func Convert(t WallTime, zone, local Offset) WallTime {
	delta := int(zone) - int(local)
	total := (t.Hour*60 + t.Min + delta) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return WallTime{Hour: total / 60, Min: total % 60, Sec: t.Sec}
}

// IsPM reports whether t falls in the second half of the day. Noon (12:00)
// is PM; midnight (0:00) is AM.
func (t WallTime) IsPM() bool { return t.Hour >= 12 }

// Format renders the reading for display: "15:04" in 24-hour mode or the
// zero-padded 12-hour "03:04" otherwise, with seconds appended on request.
// The AM/PM half never appears in text; the face signals it with color.
func (t WallTime) Format(twentyFourHour, withSeconds bool) string {
	h := t.Hour
	if !twentyFourHour {
		h %= 12
		if h == 0 {
			h = 12
		}
	}
	if withSeconds {
		return fmt.Sprintf("%02d:%02d:%02d", h, t.Min, t.Sec)
	}
	return fmt.Sprintf("%02d:%02d", h, t.Min)
}
