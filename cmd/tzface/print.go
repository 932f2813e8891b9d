package main

import (
	"fmt"
	"io"

	"github.com/tzface/tzface/face"
	"github.com/tzface/tzface/zone"
)

// printFrame writes one line per zone and returns. This is the face's
// degraded form for pipes, scripts, and status bars.
func printFrame(w io.Writer, cfg face.Config) error {
	now := zone.At(cfg.Clock.Now())
	for _, z := range cfg.Zones {
		t := zone.Convert(now, z.Offset, cfg.Local)
		if _, err := fmt.Fprintf(w, "%-20s %s\n", z.Name, t.Format(cfg.TwentyFourHour, cfg.Seconds)); err != nil {
			return err
		}
	}
	return nil
}
