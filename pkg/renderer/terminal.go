package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/arshith183/snake-io-game/pkg/config"
	"github.com/arshith183/snake-io-game/pkg/game"
)

// TerminalRenderer draws frames with ANSI escape codes
type TerminalRenderer struct {
	out    io.Writer
	board  [][]int
	buffer strings.Builder
}

// Cell types for the board
const (
	cellEmpty = iota
	cellWall
	cellHead
	cellBody
	cellFood
	cellGolden
	cellCrash
)

// NewTerminalRenderer creates a renderer for a tileCount grid framed by walls
func NewTerminalRenderer(out io.Writer, tileCount int) *TerminalRenderer {
	r := &TerminalRenderer{out: out}
	r.allocate(tileCount)
	return r
}

// Pre-allocate board to reduce GC pressure
func (r *TerminalRenderer) allocate(tileCount int) {
	size := tileCount + 2
	r.board = make([][]int, size)
	for i := range r.board {
		r.board[i] = make([]int, size)
	}
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Fprint(r.out, "\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Fprint(r.out, "\033[?25l")
}

// Render writes one full frame for the snapshot
func (r *TerminalRenderer) Render(s game.Snapshot) {
	if len(r.board) != s.TileCount+2 {
		r.allocate(s.TileCount)
	}
	r.buffer.Reset()
	r.buffer.WriteString("\033[H\033[2J\033[3J")

	size := len(r.board)
	for y := range r.board {
		for x := range r.board[y] {
			if x == 0 || y == 0 || x == size-1 || y == size-1 {
				r.board[y][x] = cellWall
			} else {
				r.board[y][x] = cellEmpty
			}
		}
	}

	// Grid coordinates are shifted by one for the wall frame
	r.set(s.Food, cellFood)
	if s.GoldenFood != nil {
		r.set(*s.GoldenFood, cellGolden)
	}
	for i := len(s.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			r.set(s.Snake[i], cellHead)
		} else {
			r.set(s.Snake[i], cellBody)
		}
	}
	if s.CrashPoint != nil {
		r.set(*s.CrashPoint, cellCrash)
	}

	r.buffer.WriteString("\n  🐍 SNAKE GAME 🐍\n")
	r.buffer.WriteString(fmt.Sprintf("  Score: %d  |  High Score: %d  |  Length: %d\n\n",
		s.Score, s.HighScore, len(s.Snake)))

	for _, row := range r.board {
		r.buffer.WriteString("  ")
		for _, cell := range row {
			r.buffer.WriteString(glyph(cell))
		}
		r.buffer.WriteString("\n")
	}

	r.buffer.WriteString("\n  Use WASD or Arrow keys to move\n")
	r.buffer.WriteString("  Enter to start, P to pause, R to restart, Q to quit\n")

	switch s.Phase {
	case game.PhaseIdle:
		r.buffer.WriteString("\n  ▶️  Press Enter to start\n")
	case game.PhasePaused:
		r.buffer.WriteString("\n  ⏸️  PAUSED - Press P to continue\n")
	case game.PhaseOver:
		r.buffer.WriteString(fmt.Sprintf("\n  💀 GAME OVER! Final Score: %d\n", s.Score))
		r.buffer.WriteString("  Press R to restart or Q to quit\n")
	}

	io.WriteString(r.out, r.buffer.String())
}

// set marks a grid cell, ignoring anything outside the frame
func (r *TerminalRenderer) set(p game.Point, cell int) {
	x, y := p.X+1, p.Y+1
	if y < 0 || y >= len(r.board) || x < 0 || x >= len(r.board[y]) {
		return
	}
	r.board[y][x] = cell
}

func glyph(cell int) string {
	switch cell {
	case cellWall:
		return config.CharWall
	case cellHead:
		return config.CharHead
	case cellBody:
		return config.CharBody
	case cellFood:
		return config.CharFood
	case cellGolden:
		return config.CharGolden
	case cellCrash:
		return config.CharCrash
	}
	return config.CharEmpty
}
