package store

import (
	"sync"

	"github.com/arshith183/snake-io-game/pkg/game"
)

// Memory keeps everything in process; nothing survives a restart
type Memory struct {
	mu        sync.Mutex
	highScore int
	sessions  []game.SessionSummary
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) LoadHighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.highScore, nil
}

func (m *Memory) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.highScore = score
	return nil
}

func (m *Memory) SaveSession(s game.SessionSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = append(m.sessions, s)
	return nil
}

func (m *Memory) Sessions() []game.SessionSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]game.SessionSummary(nil), m.sessions...)
}
