package renderer

import (
	"fmt"

	"github.com/arshith183/snake-io-game/pkg/game"
	"github.com/gdamore/tcell/v2"
)

// Board origin on screen; row 0 holds the score line
const (
	boardTop  = 2
	boardLeft = 2
)

var (
	styleDefault = tcell.StyleDefault
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHead    = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleBody    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleFood    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleGolden  = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleCrash   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon)
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
)

// ScreenRenderer draws frames on a tcell screen. Each grid cell is two
// columns wide so the board looks square.
type ScreenRenderer struct {
	screen tcell.Screen
}

func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

func (r *ScreenRenderer) Render(s game.Snapshot) {
	r.screen.Clear()

	drawText(r.screen, boardLeft, 0,
		fmt.Sprintf("SNAKE  Score: %d  High Score: %d  Length: %d", s.Score, s.HighScore, len(s.Snake)),
		styleDefault.Bold(true))

	for i := -1; i <= s.TileCount; i++ {
		r.cell(game.Point{X: i, Y: -1}, '▒', styleWall)
		r.cell(game.Point{X: i, Y: s.TileCount}, '▒', styleWall)
		r.cell(game.Point{X: -1, Y: i}, '▒', styleWall)
		r.cell(game.Point{X: s.TileCount, Y: i}, '▒', styleWall)
	}

	r.cell(s.Food, '●', styleFood)
	if s.GoldenFood != nil {
		r.cell(*s.GoldenFood, '★', styleGolden)
	}
	for i := len(s.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			r.cell(s.Snake[i], '█', styleHead)
		} else {
			r.cell(s.Snake[i], '█', styleBody)
		}
	}
	if s.CrashPoint != nil {
		r.cell(*s.CrashPoint, 'X', styleCrash)
	}

	centerX := boardLeft + s.TileCount + 2
	centerY := boardTop + (s.TileCount+2)/2
	footerY := boardTop + s.TileCount + 3
	switch s.Phase {
	case game.PhaseIdle:
		drawCentered(r.screen, centerX, centerY, " Press Enter to start ", styleOverlay)
	case game.PhasePaused:
		drawCentered(r.screen, centerX, centerY, " PAUSED ", styleOverlay)
	case game.PhaseOver:
		drawCentered(r.screen, centerX, centerY-1, " GAME OVER ", styleOverlay)
		drawCentered(r.screen, centerX, centerY+1, fmt.Sprintf(" Final Score: %d ", s.Score), styleOverlay)
	}
	drawText(r.screen, boardLeft, footerY, "WASD/Arrows move  Enter start  P pause  R restart  Q quit", styleDefault)

	r.screen.Show()
}

// cell paints a grid cell; -1 and TileCount address the wall frame
func (r *ScreenRenderer) cell(p game.Point, ch rune, st tcell.Style) {
	x := boardLeft + (p.X+1)*2
	y := boardTop + p.Y + 1
	r.screen.SetContent(x, y, ch, nil, st)
	r.screen.SetContent(x+1, y, ch, nil, st)
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for i, ch := range []rune(text) {
		s.SetContent(x+i, y, ch, nil, st)
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	x := cx - len([]rune(text))/2
	drawText(s, x, cy, text, st)
}
