package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/pagebreak/internal/audio"
	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/core"
	"github.com/vovakirdan/pagebreak/internal/games/breakout"
	"github.com/vovakirdan/pagebreak/internal/games/tetris"
	"github.com/vovakirdan/pagebreak/internal/platform/tui"
	"github.com/vovakirdan/pagebreak/internal/storage"
)

// logFile is where full-screen commands log; stderr belongs to the TUI.
const logFile = "pagebreak.log"

// runtimeConfig builds the game config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// openServices opens the score store, the speaker and a logger. With
// toFile the logger writes to ~/.pagebreak/pagebreak.log. The returned
// function releases everything.
func openServices(toFile bool) (tui.Services, func()) {
	var out io.Writer = os.Stderr
	var f *os.File
	if toFile {
		out = io.Discard
		if dir := config.AppDir(); dir != "" && os.MkdirAll(dir, 0o755) == nil {
			if lf, err := os.OpenFile(filepath.Join(dir, logFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				f, out = lf, lf
			}
		}
	}
	logger := newLogger(out, "pagebreak")

	svc := tui.Services{Logger: logger}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - games still work
		logger.Warn("could not open scores database", "error", err)
	} else {
		svc.Store = store
	}

	if flagSound {
		player, err := audio.Open()
		if err != nil {
			logger.Warn("sound disabled", "error", err)
		}
		svc.Sound = player
	}

	return svc, func() {
		if svc.Sound != nil {
			svc.Sound.Close()
		}
		if svc.Store != nil {
			if err := svc.Store.Close(); err != nil {
				logger.Warn("could not close scores database", "error", err)
			}
		}
		if f != nil {
			f.Close()
		}
	}
}

// applyGameFlags hands --config and --difficulty to the game about to be
// created.
func applyGameFlags(gameID string, preset config.DifficultyPreset) {
	switch gameID {
	case "breakout", "breakout_survival":
		breakout.SetConfigPath(flagConfig)
		breakout.SetDifficultyPreset(preset)
	case "tetris":
		tetris.SetConfigPath(flagConfig)
		tetris.SetDifficultyPreset(preset)
	}
}
