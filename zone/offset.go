package zone

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tzface/tzface/errors"
)

// Offset is a timezone's distance east of UTC, in minutes. Zones west of
// Greenwich carry negative offsets.
type Offset int

// maxOffset bounds accepted offsets to one day either side of UTC.
const maxOffset = 24 * 60

// String renders the offset in the "+05:30" form used by flags and logs.
func (o Offset) String() string {
	m := int(o)
	sign := "+"
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%02d:%02d", sign, m/60, m%60)
}

// Minutes returns the offset as a plain minute count.
func (o Offset) Minutes() int { return int(o) }

// ParseOffset parses a UTC offset. Two spellings are accepted: "H:MM" with
// an optional sign ("+05:30", "-6:00"), and a raw signed minute count
// ("330", "-360"). The minutes field of the H:MM form must be below 60, and
// the result must lie within one day of UTC.
func ParseOffset(s string) (Offset, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.InvalidInput(errors.PhaseConfig, "empty offset")
	}

	sign := 1
	rest := s
	switch s[0] {
	case '+':
		rest = s[1:]
	case '-':
		sign = -1
		rest = s[1:]
	}
	if rest == "" {
		return 0, errors.InvalidInput(errors.PhaseConfig, "offset %q has no digits", s)
	}

	var total int
	if h, m, ok := strings.Cut(rest, ":"); ok {
		hours, err := strconv.Atoi(h)
		if err != nil || hours < 0 {
			return 0, errors.InvalidInput(errors.PhaseConfig, "bad hours in offset %q", s)
		}
		mins, err := strconv.Atoi(m)
		if err != nil || mins < 0 {
			return 0, errors.InvalidInput(errors.PhaseConfig, "bad minutes in offset %q", s)
		}
		if mins > 59 {
			return 0, errors.OutOfRange(errors.PhaseConfig, s, "minutes field must be below 60")
		}
		total = hours*60 + mins
	} else {
		mins, err := strconv.Atoi(rest)
		if err != nil || mins < 0 {
			return 0, errors.InvalidInput(errors.PhaseConfig, "offset %q is neither H:MM nor minutes", s)
		}
		total = mins
	}

	if total > maxOffset {
		return 0, errors.OutOfRange(errors.PhaseConfig, s, "offset beyond one day from UTC")
	}
	return Offset(sign * total), nil
}

// Local reports the UTC offset of the zone this process runs in. The value
// is read once from the system clock's zone; it stands in for the device
// configuration a watch would carry.
func Local() Offset {
	_, secs := time.Now().Zone()
	return Offset(secs / 60)
}
