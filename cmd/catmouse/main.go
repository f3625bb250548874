package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mshel/catmouse/internal/game"
	"github.com/Mshel/catmouse/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

const defaultScript = "scripts/escape.lua"

func main() {
	cfg := game.DefaultConfig()

	flag.IntVar(&cfg.SearchDepth, "depth", cfg.SearchDepth, "plies the cat looks ahead")
	flag.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "half-moves before the match is a draw")
	flag.DurationVar(&cfg.ThinkingDelay, "delay", cfg.ThinkingDelay, "pause before the cat replies")
	flag.IntVar(&cfg.GridSize, "grid", cfg.GridSize, "side length of the board")
	script := flag.String("script", "", "Lua script steering the mouse")
	headless := flag.Bool("headless", false, "play one match without the terminal UI")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	logFile := flag.String("log-file", os.Getenv("CATMOUSE_LOG_FILE"), "write logs to this file")
	flag.Parse()

	logger, closeLog := setupLogger(*logFile, *logLevel, *headless)
	defer closeLog()
	log.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", "err", err)
	}

	scriptPath := *script
	if scriptPath == "" && *headless {
		scriptPath = defaultScript
	}

	var pilot game.Pilot
	if scriptPath != "" {
		luaPilot, err := game.NewLuaPilotFromFile(scriptPath)
		if err != nil {
			log.Fatal("Could not load pilot script", "path", scriptPath, "err", err)
		}
		defer luaPilot.Close()
		pilot = luaPilot
	}

	if *headless {
		if err := runHeadless(cfg, pilot, logger); err != nil {
			log.Error("Match aborted", "err", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(ui.NewControllerModel(cfg, pilot, logger, 0, 0), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}
}

// setupLogger writes to the log file when one is given. Without a file the
// TUI stays quiet so log lines do not tear the alt screen.
func setupLogger(path, level string, headless bool) (*log.Logger, func()) {
	var out io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal("Could not open log file", "path", path, "err", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case !headless:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{ReportTimestamp: true})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warn("Unknown log level, falling back to info", "level", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger, closeFn
}

func runHeadless(cfg game.Config, pilot game.Pilot, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gm, err := game.NewGameManager(cfg, game.WithLogger(logger))
	if err != nil {
		return err
	}

	runner := game.NewMatchRunner(gm, pilot)
	runner.Logger = logger

	snap, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s after %d/%d turns: mouse %v, cat %v\n",
		snap.Phase, snap.Turn, snap.MaxTurns, snap.State.EvaderPos, snap.State.PursuerPos)
	return nil
}
