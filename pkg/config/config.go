package config

import (
	"errors"
	"fmt"
	"time"
)

// Board dimensions
const (
	DefaultTileCount = 20 // Cells per side; the snake spawns at the centre
)

// Timing
const (
	GameSpeed = 100 * time.Millisecond // Fixed delay between ticks
)

// Scoring and food settings
const (
	FoodScore        = 10
	GoldenFoodScore  = 50
	GoldenFoodChance = 0.2 // Chance to spawn golden food when regular food is eaten
	MaxFoodAttempts  = 100 // Random placement tries before scanning for a free cell
)

// Persistence
const (
	DefaultDBPath   = "data/snake.db"
	DefaultFilePath = "data/snake.json"
	DefaultLogPath  = "snake.log"
	RecordBuffer    = 64 // Pending session summaries before the recorder drops
)

// Emoji characters for rendering
const (
	CharEmpty  = "  " // Two spaces to match emoji width
	CharWall   = "⬜"
	CharHead   = "🟢"
	CharBody   = "🟩"
	CharFood   = "🔴"
	CharGolden = "🌟"
	CharCrash  = "💥"
)

// Store backends
const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
	StoreMemory = "memory"
)

// UI backends
const (
	UIANSI   = "ansi"
	UIScreen = "screen"
)

// Settings holds the runtime-tunable values, overridden from flags in cmd/snake
type Settings struct {
	TileCount int
	Speed     time.Duration
	Store     string
	DBPath    string
	FilePath  string
	UI        string
	Sound     bool
	Seed      int64 // Zero means seed from the clock
	LogPath   string
}

// Default returns the settings used when no flag overrides them
func Default() Settings {
	return Settings{
		TileCount: DefaultTileCount,
		Speed:     GameSpeed,
		Store:     StoreSQLite,
		DBPath:    DefaultDBPath,
		FilePath:  DefaultFilePath,
		UI:        UIANSI,
		Sound:     true,
		LogPath:   DefaultLogPath,
	}
}

// Validate rejects settings the game cannot run with
func (s Settings) Validate() error {
	if s.TileCount < 1 {
		return errors.New("grid size must be at least 1")
	}
	if s.Speed <= 0 {
		return errors.New("speed must be positive")
	}
	switch s.Store {
	case StoreSQLite, StoreFile, StoreMemory:
	default:
		return fmt.Errorf("unknown store backend: %q", s.Store)
	}
	switch s.UI {
	case UIANSI, UIScreen:
	default:
		return fmt.Errorf("unknown ui backend: %q", s.UI)
	}
	return nil
}
