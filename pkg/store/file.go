package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/arshith183/snake-io-game/pkg/game"
)

// maxHistory bounds the sessions kept in the JSON document
const maxHistory = 100

type fileStats struct {
	HighScore int                   `json:"highScore"`
	Sessions  []game.SessionSummary `json:"sessions"`
}

// File keeps the high score and recent sessions in a JSON document
type File struct {
	mu    sync.Mutex
	path  string
	stats fileStats
}

// OpenFile reads the document at path; a missing file starts empty
func OpenFile(path string) (*File, error) {
	f := &File{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read stats: %w", err)
	}
	if err := json.Unmarshal(data, &f.stats); err != nil {
		return nil, fmt.Errorf("decode stats %s: %w", path, err)
	}
	return f, nil
}

func (f *File) LoadHighScore() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats.HighScore, nil
}

func (f *File) SaveHighScore(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stats.HighScore = score
	return f.flush()
}

func (f *File) SaveSession(s game.SessionSummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stats.Sessions = append(f.stats.Sessions, s)
	if n := len(f.stats.Sessions); n > maxHistory {
		f.stats.Sessions = f.stats.Sessions[n-maxHistory:]
	}
	return f.flush()
}

// Sessions returns a copy of the stored history, oldest first
func (f *File) Sessions() []game.SessionSummary {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]game.SessionSummary(nil), f.stats.Sessions...)
}

// flush writes the document through a temp file so a crash never leaves it half written
func (f *File) flush() error {
	data, err := json.MarshalIndent(f.stats, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return os.Rename(tmp, f.path)
}
