package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/iburimskiy/matrix-rain/internal/app"
	"github.com/iburimskiy/matrix-rain/internal/config"
)

// defined flags
var (
	widthFlag      = flag.Int("width", 0, "Window width in pixels (0 = fit the monitor)")
	heightFlag     = flag.Int("height", 0, "Window height in pixels (0 = fit the monitor)")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen mode")
	logFileFlag    = flag.Bool("logfile", true, "Write logs to a file instead of the console")
	logLevelFlag   = flag.String("loglevel", "info", "Log level (debug, info, warn, error)")
)

func main() {
	flag.Parse()
	setupLogging()

	p := config.Default()
	p.Width, p.Height = windowSize()
	p.Fullscreen = *fullscreenFlag

	cfg, err := config.New(p)
	if err != nil {
		fatal(err)
	}

	ebiten.SetWindowSize(p.Width, p.Height)
	ebiten.SetWindowTitle("Matrix Rain")
	ebiten.SetFullscreen(p.Fullscreen)

	g, err := app.New(cfg)
	if err != nil {
		fatal(err)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

func setupLogging() {
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		level = slog.LevelInfo
	}
	slog.SetLogLoggerLevel(level)
	if *logFileFlag {
		log.SetOutput(&lumberjack.Logger{
			Filename:   filepath.Join("logs", "matrix-rain.log"),
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}
}

// windowSize resolves the initial window dimensions: explicit flags win,
// otherwise the window fits the monitor up to 1200x800, and everything is
// clamped to the configurable range.
func windowSize() (int, int) {
	w, h := *widthFlag, *heightFlag
	if w == 0 || h == 0 {
		monW, monH := ebiten.Monitor().Size()
		if w == 0 {
			w = min(1200, monW)
		}
		if h == 0 {
			h = min(800, monH)
		}
	}
	return clamp(w, 640, 7680), clamp(h, 480, 4320)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// fatal reports an unrecoverable startup or display error and exits.
func fatal(err error) {
	slog.Error("fatal error", "err", err)
	if derr := zenity.Error(err.Error(), zenity.Title("Matrix Rain")); derr != nil {
		slog.Warn("could not show error dialog", "err", derr)
	}
	log.Fatal(err)
}
