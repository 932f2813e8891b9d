package zone

import (
	"fmt"
	"strings"

	"github.com/tzface/tzface/errors"
)

// ParseList parses a comma-separated zone list of NAME=OFFSET entries:
//
//	US Central=-6:00,US Eastern=-5:00,India=+5:30
//
// Offsets take either spelling ParseOffset accepts. Empty entries (such as
// a trailing comma leaves behind) are skipped; anything else without an '='
// is an error. Between one and MaxZones zones are allowed.
func ParseList(s string) ([]Zone, error) {
	zones := make([]Zone, 0, MaxZones)
	for i, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, off, found := strings.Cut(entry, "=")
		if !found {
			return nil, errors.InvalidInput(errors.PhaseConfig, "entry %d: %q has no offset", i+1, entry)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errors.InvalidInput(errors.PhaseConfig, "entry %d: %q has no name", i+1, entry)
		}
		o, err := ParseOffset(off)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err,
				fmt.Sprintf("entry %d (%s)", i+1, name))
		}
		zones = append(zones, Zone{Name: name, Offset: o})
	}

	if len(zones) == 0 {
		return nil, errors.InvalidInput(errors.PhaseConfig, "no zones in %q", s)
	}
	if len(zones) > MaxZones {
		return nil, errors.OutOfRange(errors.PhaseConfig, len(zones),
			fmt.Sprintf("at most %d zones fit the panel stack", MaxZones))
	}
	return zones, nil
}
