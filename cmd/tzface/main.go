package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tzface/tzface"
	"github.com/tzface/tzface/face"
	"github.com/tzface/tzface/zone"
)

func main() {
	var (
		zonesFlag  = flag.String("zones", "", "Zones to show, top to bottom (US Central=-6:00,India=+5:30)")
		localFlag  = flag.String("local", "", "UTC offset the system clock runs in (default: detected)")
		twelveHour = flag.Bool("12h", false, "12-hour clock instead of 24-hour")
		secs       = flag.Bool("secs", false, "Tick and display seconds")
		printOnce  = flag.Bool("print", false, "Print one frame to stdout and exit")
		debugFile  = flag.String("debug", "", "Write debug logs to this file")
	)
	flag.Parse()

	if err := run(*zonesFlag, *localFlag, *twelveHour, *secs, *printOnce, *debugFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(zonesStr, localStr string, twelveHour, secs, printOnce bool, debugFile string) error {
	if debugFile != "" {
		logger, err := debugLogger(debugFile)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer logger.Sync()
		face.SetLogger(logger)
	}

	cfg, err := buildConfig(zonesStr, localStr, twelveHour, secs)
	if err != nil {
		return err
	}

	// Pipes and scripts get the one-shot form; the full-screen face only
	// makes sense on a terminal.
	if printOnce || !term.IsTerminal(int(os.Stdout.Fd())) {
		return printFrame(os.Stdout, cfg)
	}
	return runFace(cfg)
}

// buildConfig resolves flags over environment over defaults. A .env file in
// the working directory is folded into the environment on startup.
func buildConfig(zonesStr, localStr string, twelveHour, secs bool) (face.Config, error) {
	if zonesStr == "" {
		zonesStr = os.Getenv("TZFACE_ZONES")
	}
	if localStr == "" {
		localStr = os.Getenv("TZFACE_LOCAL")
	}

	zones := zone.Default()
	if zonesStr != "" {
		var err error
		zones, err = zone.ParseList(zonesStr)
		if err != nil {
			return face.Config{}, err
		}
	}

	local := zone.Local()
	if localStr != "" {
		var err error
		local, err = zone.ParseOffset(localStr)
		if err != nil {
			return face.Config{}, err
		}
	}

	return face.Config{
		Zones:          zones,
		Local:          local,
		TwentyFourHour: !twelveHour,
		Seconds:        secs,
		Clock:          tzface.SystemClock{},
	}, nil
}

func runFace(cfg face.Config) error {
	m, err := face.New(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// debugLogger builds a development-format logger writing to path. The face
// owns the terminal's alternate screen, so logs cannot go to stderr.
func debugLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
