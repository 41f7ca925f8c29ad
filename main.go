package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/vinyl-deck/internal/config"
	"github.com/iburimskiy/vinyl-deck/internal/deck"
	"github.com/iburimskiy/vinyl-deck/internal/game"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (optional, uses embedded defaults)")
	tracksPath := flag.String("tracks", "", "Path to CSV track list (overrides deck.tracks_file)")
	exportPath := flag.String("export-tracks", "", "Write the active track list as CSV to this path and exit")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *tracksPath != "" {
		cfg.Deck.TracksFile = *tracksPath
	}
	var tracks []deck.Track
	if cfg.Deck.TracksFile != "" {
		tracks, err = deck.LoadTracksFile(cfg.Deck.TracksFile)
		if err != nil {
			slog.Error("failed to load track list", "path", cfg.Deck.TracksFile, "error", err)
			os.Exit(1)
		}
	}

	if *exportPath != "" {
		if err := exportTracks(*exportPath, tracks); err != nil {
			slog.Error("failed to export track list", "path", *exportPath, "error", err)
			os.Exit(1)
		}
		slog.Info("track list exported", "path", *exportPath)
		return
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	g := game.New(cfg, tracks, logger)
	slog.Info("deck started", "tracks", len(tracks), "tps", cfg.Window.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game loop exited", "error", err)
		os.Exit(1)
	}
}

// exportTracks writes tracks, or the built-in list when none were loaded, as
// a CSV template that -tracks reads back.
func exportTracks(path string, tracks []deck.Track) error {
	if len(tracks) == 0 {
		tracks = deck.DefaultTracks()
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := deck.WriteTracks(f, tracks); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
