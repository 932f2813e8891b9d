package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/tzface/tzface/zone"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestBuildConfig_Defaults(t *testing.T) {
	t.Setenv("TZFACE_ZONES", "")
	t.Setenv("TZFACE_LOCAL", "")

	cfg, err := buildConfig("", "", false, false)
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}
	if len(cfg.Zones) != zone.MaxZones {
		t.Errorf("zones = %d, want the stock %d", len(cfg.Zones), zone.MaxZones)
	}
	if !cfg.TwentyFourHour {
		t.Error("TwentyFourHour = false, want 24-hour default")
	}
	if cfg.Clock == nil {
		t.Error("Clock = nil, want system clock")
	}
}

func TestBuildConfig_EnvFallback(t *testing.T) {
	t.Setenv("TZFACE_ZONES", "Tokyo=+9:00")
	t.Setenv("TZFACE_LOCAL", "-5:00")

	cfg, err := buildConfig("", "", false, false)
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}
	if len(cfg.Zones) != 1 || cfg.Zones[0].Name != "Tokyo" {
		t.Errorf("zones = %v, want Tokyo from environment", cfg.Zones)
	}
	if cfg.Local != -5*60 {
		t.Errorf("local = %d, want -300", cfg.Local)
	}
}

func TestBuildConfig_FlagBeatsEnv(t *testing.T) {
	t.Setenv("TZFACE_ZONES", "Tokyo=+9:00")

	cfg, err := buildConfig("Oslo=+1:00", "", false, false)
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}
	if len(cfg.Zones) != 1 || cfg.Zones[0].Name != "Oslo" {
		t.Errorf("zones = %v, want Oslo from flag", cfg.Zones)
	}
}

func TestBuildConfig_BadInput(t *testing.T) {
	if _, err := buildConfig("Oslo", "", false, false); err == nil {
		t.Error("buildConfig() with offsetless zone: error = nil, want parse failure")
	}
	if _, err := buildConfig("", "late", false, false); err == nil {
		t.Error("buildConfig() with bad local offset: error = nil, want parse failure")
	}
}

func TestPrintFrame(t *testing.T) {
	cfg, err := buildConfig("Ahead=+1:00,Home=+0:00", "+0:00", false, false)
	if err != nil {
		t.Fatalf("buildConfig() error = %v", err)
	}
	cfg.Clock = fixedClock{now: time.Date(2025, 6, 7, 23, 30, 0, 0, time.UTC)}

	var buf bytes.Buffer
	if err := printFrame(&buf, cfg); err != nil {
		t.Fatalf("printFrame() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("printFrame() wrote %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "Ahead") || !strings.Contains(lines[0], "00:30") {
		t.Errorf("line 0 = %q, want Ahead at 00:30", lines[0])
	}
	if !strings.Contains(lines[1], "Home") || !strings.Contains(lines[1], "23:30") {
		t.Errorf("line 1 = %q, want Home at 23:30", lines[1])
	}
}
