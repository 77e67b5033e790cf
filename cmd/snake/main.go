package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arshith183/snake-io-game/pkg/audio"
	"github.com/arshith183/snake-io-game/pkg/config"
	"github.com/arshith183/snake-io-game/pkg/game"
	"github.com/arshith183/snake-io-game/pkg/input"
	"github.com/arshith183/snake-io-game/pkg/renderer"
	"github.com/arshith183/snake-io-game/pkg/store"
	"github.com/gdamore/tcell/v2"
)

// backend is a store that serves both engine collaborator roles
type backend interface {
	game.HighScoreStore
	game.SessionStore
}

func parseFlags() config.Settings {
	s := config.Default()
	flag.IntVar(&s.TileCount, "grid", s.TileCount, "cells per side of the board")
	flag.DurationVar(&s.Speed, "speed", s.Speed, "delay between ticks")
	flag.StringVar(&s.Store, "store", s.Store, "high score store: sqlite, file or memory")
	flag.StringVar(&s.DBPath, "db", s.DBPath, "sqlite database path")
	flag.StringVar(&s.FilePath, "file", s.FilePath, "json stats path")
	flag.StringVar(&s.UI, "ui", s.UI, "display: ansi or screen")
	flag.BoolVar(&s.Sound, "sound", s.Sound, "play sound effects")
	flag.Int64Var(&s.Seed, "seed", s.Seed, "random seed, 0 seeds from the clock")
	flag.StringVar(&s.LogPath, "log", s.LogPath, "log file path")
	flag.Parse()
	return s
}

func openStore(s config.Settings) (backend, func(), error) {
	switch s.Store {
	case config.StoreSQLite:
		db, err := store.OpenSQLite(s.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil
	case config.StoreFile:
		f, err := store.OpenFile(s.FilePath)
		if err != nil {
			return nil, nil, err
		}
		return f, func() {}, nil
	}
	return store.NewMemory(), func() {}, nil
}

func main() {
	settings := parseFlags()
	if err := settings.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid settings:", err)
		os.Exit(2)
	}

	// Frames own the terminal; logs go to a file
	logFile, err := os.OpenFile(settings.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error opening log file:", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	if err := run(settings); err != nil {
		log.Printf("snake: %v", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Println("\n  Thanks for playing! 👋")
}

func run(settings config.Settings) error {
	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	db, closeStore, err := openStore(settings)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeStore()

	g, err := game.NewGame(game.Options{
		TileCount: settings.TileCount,
		Rand:      rand.New(rand.NewSource(seed)),
		Store:     db,
	})
	if err != nil {
		return err
	}

	recorder := game.NewRecorder(db, config.RecordBuffer)
	defer recorder.Close()

	var listener game.Listener
	if settings.Sound {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer sound.Cleanup()
			listener = sound
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := game.ControllerConfig{
		Game:     g,
		Listener: listener,
		Recorder: recorder,
		Interval: settings.Speed,
	}

	var ctrl *game.Controller
	switch settings.UI {
	case config.UIScreen:
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := screen.Init(); err != nil {
			return err
		}
		defer screen.Fini()
		screen.HideCursor()

		cfg.Renderer = renderer.NewScreenRenderer(screen)
		ctrl = game.NewController(cfg)
		go input.NewScreenSource(screen).Forward(ctx, ctrl.Commands())
	default:
		keys := input.NewKeyboardHandler()
		if err := keys.Start(); err != nil {
			return fmt.Errorf("open keyboard: %w", err)
		}
		defer keys.Stop()

		term := renderer.NewTerminalRenderer(os.Stdout, settings.TileCount)
		term.HideCursor()
		defer term.ShowCursor()

		cfg.Renderer = term
		ctrl = game.NewController(cfg)
		go keys.Forward(ctx, ctrl.Commands())
	}

	log.Printf("snake: grid=%d speed=%v store=%s ui=%s seed=%d",
		settings.TileCount, settings.Speed, settings.Store, settings.UI, seed)

	err = ctrl.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
