package game

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/arshith183/snake-io-game/pkg/config"
)

// ErrInvalidGrid is returned by NewGame for a board without cells
var ErrInvalidGrid = errors.New("game: tile count must be at least 1")

// Options configures a new Game
type Options struct {
	TileCount int
	Rand      *rand.Rand     // nil seeds from the clock
	Store     HighScoreStore // nil keeps the high score in memory only
}

// Game is the simulation engine. It owns all mutable state of one session
// and is advanced one cell per Tick. Game is not safe for concurrent use;
// Controller serializes every call onto a single goroutine.
type Game struct {
	tileCount int
	rng       *rand.Rand
	store     HighScoreStore

	phase     Phase
	snake     []Point // Head first
	velocity  Point   // Motion applied by the last tick (or by Start)
	pending   Point   // Latest accepted request, applied by the next tick
	food      Point
	golden    *Point
	crash     *Point
	score     int
	highScore int
}

// NewGame creates an idle game with a fresh board.
// The high score is read from the store once, here.
func NewGame(opts Options) (*Game, error) {
	if opts.TileCount < 1 {
		return nil, ErrInvalidGrid
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		tileCount: opts.TileCount,
		rng:       rng,
		store:     opts.Store,
	}
	if g.store != nil {
		hs, err := g.store.LoadHighScore()
		if err != nil {
			return nil, fmt.Errorf("load high score: %w", err)
		}
		g.highScore = hs
	}
	if err := g.Restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// Start begins moving right. Valid from Idle or Over.
func (g *Game) Start() bool {
	if g.phase != PhaseIdle && g.phase != PhaseOver {
		return false
	}
	g.phase = PhaseRunning
	g.velocity = DirRight.Vector()
	g.pending = g.velocity
	g.crash = nil
	return true
}

// Pause stops ticking. Only valid while running.
func (g *Game) Pause() bool {
	if g.phase != PhaseRunning {
		return false
	}
	g.phase = PhasePaused
	return true
}

// Resume continues a paused game
func (g *Game) Resume() bool {
	if g.phase != PhasePaused {
		return false
	}
	g.phase = PhaseRunning
	return true
}

// TogglePause switches between running and paused
func (g *Game) TogglePause() bool {
	if g.phase == PhasePaused {
		return g.Resume()
	}
	return g.Pause()
}

// Restart resets the board from any phase. The high score is kept.
func (g *Game) Restart() error {
	center := g.tileCount / 2
	g.snake = []Point{{X: center, Y: center}}
	g.velocity = Point{}
	g.pending = Point{}
	g.score = 0
	g.golden = nil
	g.crash = nil

	food, err := g.generateFood()
	if err != nil {
		g.phase = PhaseOver
		return fmt.Errorf("place food: %w", err)
	}
	g.food = food
	g.phase = PhaseIdle
	return nil
}

// SetDirection queues a heading for the next tick. A request along the axis
// the snake is already moving on is rejected, so it can never turn back into
// its own neck. The latest accepted request before a tick wins.
func (g *Game) SetDirection(d Direction) bool {
	if g.phase != PhaseRunning && g.phase != PhasePaused {
		return false
	}
	v := d.Vector()
	if v == (Point{}) {
		return false
	}
	if g.velocity.X != 0 && v.X != 0 {
		return false
	}
	if g.velocity.Y != 0 && v.Y != 0 {
		return false
	}
	g.pending = v
	return true
}

// Tick advances the snake by one cell. It is a no-op unless running.
// ErrBoardFull is returned when eaten food cannot be replaced; the game is
// over at that point.
func (g *Game) Tick() (Event, error) {
	if g.phase != PhaseRunning {
		return EventNone, nil
	}

	g.velocity = g.pending
	newHead := g.snake[0].Add(g.velocity)

	if !g.inBounds(newHead) {
		g.gameOver(newHead)
		return EventHitWall, nil
	}
	if g.onSnake(newHead) {
		g.gameOver(newHead)
		return EventHitSelf, nil
	}

	g.snake = append([]Point{newHead}, g.snake...)

	ev := EventMoved
	switch {
	case newHead == g.food:
		g.score += config.FoodScore
		ev = EventAteFood
		food, err := g.generateFood()
		if err != nil {
			g.phase = PhaseOver
			g.updateHighScore()
			return ev, fmt.Errorf("replace food: %w", err)
		}
		g.food = food
		g.maybeSpawnGolden()
	case g.golden != nil && newHead == *g.golden:
		g.score += config.GoldenFoodScore
		g.golden = nil
		ev = EventAteGolden
	default:
		g.snake = g.snake[:len(g.snake)-1]
	}

	g.updateHighScore()
	return ev, nil
}

// Snapshot returns a copy of the state for rendering
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:     g.phase,
		TileCount: g.tileCount,
		Snake:     append([]Point(nil), g.snake...),
		Velocity:  g.velocity,
		Food:      g.food,
		Score:     g.score,
		HighScore: g.highScore,
	}
	if g.golden != nil {
		p := *g.golden
		s.GoldenFood = &p
	}
	if g.crash != nil {
		p := *g.crash
		s.CrashPoint = &p
	}
	return s
}

// Phase returns the current lifecycle state
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the score of the current session
func (g *Game) Score() int {
	return g.score
}

// Len returns the snake length
func (g *Game) Len() int {
	return len(g.snake)
}

func (g *Game) inBounds(p Point) bool {
	return p.X >= 0 && p.X < g.tileCount && p.Y >= 0 && p.Y < g.tileCount
}

func (g *Game) gameOver(at Point) {
	g.phase = PhaseOver
	g.crash = &at
}

// updateHighScore records a new best and hands it to the store
func (g *Game) updateHighScore() {
	if g.score <= g.highScore {
		return
	}
	g.highScore = g.score
	if g.store == nil {
		return
	}
	if err := g.store.SaveHighScore(g.highScore); err != nil {
		log.Printf("save high score %d: %v", g.highScore, err)
	}
}
