package renderer

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/arshith183/snake-io-game/pkg/config"
	"github.com/arshith183/snake-io-game/pkg/game"
	"github.com/gdamore/tcell/v2"
)

func sampleSnapshot(phase game.Phase) game.Snapshot {
	golden := game.Point{X: 0, Y: 4}
	return game.Snapshot{
		Phase:      phase,
		TileCount:  5,
		Snake:      []game.Point{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}},
		Food:       game.Point{X: 4, Y: 0},
		GoldenFood: &golden,
		Score:      30,
		HighScore:  80,
	}
}

func TestTerminalRenderIdle(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(&out, 5)
	r.Render(sampleSnapshot(game.PhaseIdle))
	frame := out.String()

	checks := map[string]int{
		config.CharHead:   1,
		config.CharBody:   2,
		config.CharFood:   1,
		config.CharGolden: 1,
		config.CharWall:   24,
		config.CharCrash:  0,
	}
	for glyph, want := range checks {
		if got := strings.Count(frame, glyph); got != want {
			t.Errorf("Expected %d x %q, got %d", want, glyph, got)
		}
	}
	if !strings.Contains(frame, "Score: 30  |  High Score: 80  |  Length: 3") {
		t.Errorf("Missing score line in frame:\n%s", frame)
	}
	if !strings.Contains(frame, "Press Enter to start") {
		t.Error("Idle frame should prompt to start")
	}
}

func TestTerminalRenderGameOver(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(&out, 5)
	s := sampleSnapshot(game.PhaseOver)
	crash := game.Point{X: 5, Y: 2}
	s.CrashPoint = &crash
	r.Render(s)
	frame := out.String()

	if !strings.Contains(frame, "GAME OVER! Final Score: 30") {
		t.Errorf("Missing game over overlay:\n%s", frame)
	}
	if strings.Count(frame, config.CharCrash) != 1 {
		t.Error("Crash point should be drawn once, on the wall")
	}
	if strings.Count(frame, config.CharWall) != 23 {
		t.Errorf("Crash should replace one wall cell, got %d walls", strings.Count(frame, config.CharWall))
	}
}

func TestTerminalRenderResizes(t *testing.T) {
	var out bytes.Buffer
	r := NewTerminalRenderer(&out, 20)
	r.Render(sampleSnapshot(game.PhasePaused))

	if len(r.board) != 7 {
		t.Errorf("Expected board to follow the snapshot size, got %d rows", len(r.board))
	}
	if !strings.Contains(out.String(), "PAUSED") {
		t.Error("Paused frame should say so")
	}
}

func BenchmarkTerminalRender(b *testing.B) {
	r := NewTerminalRenderer(io.Discard, config.DefaultTileCount)
	s := sampleSnapshot(game.PhaseRunning)
	s.TileCount = config.DefaultTileCount

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(s)
	}
}

// mockScreen is a minimal tcell.Screen that remembers what was drawn
type mockScreen struct {
	tcell.Screen
	cells map[[2]int]rune
	shown int
}

func newMockScreen() *mockScreen {
	return &mockScreen{cells: make(map[[2]int]rune)}
}

func (m *mockScreen) Clear() { m.cells = make(map[[2]int]rune) }
func (m *mockScreen) Show()  { m.shown++ }
func (m *mockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = mainc
}

func (m *mockScreen) row(y int) string {
	var sb strings.Builder
	for x := 0; x < 80; x++ {
		if r, ok := m.cells[[2]int{x, y}]; ok {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

func TestScreenRender(t *testing.T) {
	screen := newMockScreen()
	r := NewScreenRenderer(screen)
	r.Render(sampleSnapshot(game.PhaseRunning))

	if screen.shown != 1 {
		t.Errorf("Expected one Show per frame, got %d", screen.shown)
	}
	// Head (2,2) lands on column 2+(2+1)*2 and row 2+2+1
	if got := screen.cells[[2]int{8, 5}]; got != '█' {
		t.Errorf("Expected head block at (8,5), got %q", got)
	}
	if got := screen.cells[[2]int{12, 3}]; got != '●' {
		t.Errorf("Expected food at (12,3), got %q", got)
	}
	if got := screen.cells[[2]int{4, 7}]; got != '★' {
		t.Errorf("Expected golden food at (4,7), got %q", got)
	}
	if got := screen.cells[[2]int{2, 2}]; got != '▒' {
		t.Errorf("Expected wall corner at (2,2), got %q", got)
	}
	if !strings.Contains(screen.row(0), "Score: 30  High Score: 80  Length: 3") {
		t.Errorf("Missing score line: %q", screen.row(0))
	}
}

func TestScreenRenderGameOver(t *testing.T) {
	screen := newMockScreen()
	r := NewScreenRenderer(screen)
	r.Render(sampleSnapshot(game.PhaseOver))

	found := false
	for y := 0; y < 12; y++ {
		if strings.Contains(screen.row(y), "GAME OVER") {
			found = true
		}
	}
	if !found {
		t.Error("Game over overlay not drawn")
	}
}

func TestScreenRenderSimulation(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	NewScreenRenderer(screen).Render(sampleSnapshot(game.PhasePaused))
}
