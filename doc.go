// Package tzface renders a three-timezone clock face in the terminal.
//
// The face is a vertical stack of up to three fixed-size panels, one per
// configured timezone. Each panel shows the zone's name in a small face and
// its wall-clock time in thick block digits, and the whole frame is redrawn
// once per minute rather than patched incrementally. A panel whose zone is
// in the PM draws in inverted video (light text on a dark fill) as a "it is
// night there" cue.
//
// # Architecture Overview
//
// The module is organized into small packages with distinct responsibilities:
//
//	tzface/          Root package with the Clock time-source contract
//	├── cmd/tzface/  The terminal binary: flags, env, logger, program start
//	├── zone/        Timezone entries, UTC offsets, wall-clock arithmetic
//	├── font/        Cell-glyph faces and the handle-based font table
//	├── face/        The watchface itself: panels, tick handling, rendering
//	└── errors/      Structured error types shared across packages
//
// The event loop, terminal ownership, and frame delivery belong to Bubble
// Tea; this module only supplies the model callbacks. All time arithmetic
// is plain integer minute math on fixed UTC offsets: there is no timezone
// database and no daylight-saving handling.
//
// # Quick Start
//
// Build a face for three zones and hand it to Bubble Tea:
//
//	zones, err := zone.ParseList("US Central=-6:00,US Eastern=-5:00,India=+5:30")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	m, err := face.New(face.Config{
//	    Zones: zones,
//	    Local: zone.Local(),
//	    Clock: tzface.SystemClock{},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer m.Close()
//
//	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Time Model
//
// The current time is captured once per tick and shared by every panel
// rendered in that minute. Panels derive their zone's time from the shared
// value with pure arithmetic; nothing mutates the captured time between
// ticks, so panel draw order never matters.
package tzface
