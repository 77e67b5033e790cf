package input

import (
	"context"
	"testing"
	"time"

	"github.com/arshith183/snake-io-game/pkg/game"
	"github.com/eiannone/keyboard"
	"github.com/gdamore/tcell/v2"
)

func TestToCommand(t *testing.T) {
	tests := []struct {
		name string
		in   KeyInput
		want game.Command
	}{
		{"arrow up", KeyInput{Key: keyboard.KeyArrowUp}, game.Command{Type: game.CmdDirection, Direction: game.DirUp}},
		{"arrow left", KeyInput{Key: keyboard.KeyArrowLeft}, game.Command{Type: game.CmdDirection, Direction: game.DirLeft}},
		{"w", KeyInput{Char: 'w'}, game.Command{Type: game.CmdDirection, Direction: game.DirUp}},
		{"S", KeyInput{Char: 'S'}, game.Command{Type: game.CmdDirection, Direction: game.DirDown}},
		{"a", KeyInput{Char: 'a'}, game.Command{Type: game.CmdDirection, Direction: game.DirLeft}},
		{"d", KeyInput{Char: 'd'}, game.Command{Type: game.CmdDirection, Direction: game.DirRight}},
		{"enter", KeyInput{Key: keyboard.KeyEnter}, game.Command{Type: game.CmdStart}},
		{"space", KeyInput{Key: keyboard.KeySpace}, game.Command{Type: game.CmdTogglePause}},
		{"p", KeyInput{Char: 'p'}, game.Command{Type: game.CmdTogglePause}},
		{"r", KeyInput{Char: 'R'}, game.Command{Type: game.CmdRestart}},
		{"q", KeyInput{Char: 'q'}, game.Command{Type: game.CmdQuit}},
		{"esc", KeyInput{Key: keyboard.KeyEsc}, game.Command{Type: game.CmdQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToCommand(tt.in)
			if !ok {
				t.Fatalf("Expected %+v to map to a command", tt.in)
			}
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}

	if _, ok := ToCommand(KeyInput{Char: 'x'}); ok {
		t.Error("Unmapped key should not produce a command")
	}
}

func TestKeyCommand(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want game.Command
	}{
		{tcell.KeyRight, 0, game.Command{Type: game.CmdDirection, Direction: game.DirRight}},
		{tcell.KeyDown, 0, game.Command{Type: game.CmdDirection, Direction: game.DirDown}},
		{tcell.KeyRune, 'a', game.Command{Type: game.CmdDirection, Direction: game.DirLeft}},
		{tcell.KeyRune, 'p', game.Command{Type: game.CmdTogglePause}},
		{tcell.KeyRune, ' ', game.Command{Type: game.CmdTogglePause}},
		{tcell.KeyEnter, 0, game.Command{Type: game.CmdStart}},
		{tcell.KeyEscape, 0, game.Command{Type: game.CmdQuit}},
	}

	for _, tt := range tests {
		got, ok := keyCommand(tt.key, tt.r)
		if !ok || got != tt.want {
			t.Errorf("Key %v %q: expected %+v, got %+v (ok=%v)", tt.key, tt.r, tt.want, got, ok)
		}
	}

	if _, ok := keyCommand(tcell.KeyTab, 0); ok {
		t.Error("Tab should not produce a command")
	}
}

func TestScreenSourceStopsWithScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	done := make(chan struct{})
	go func() {
		NewScreenSource(screen).Forward(context.Background(), make(chan game.Command))
		close(done)
	}()

	screen.Fini()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Forward kept polling a finalized screen")
	}
}
