package input

import (
	"context"

	"github.com/arshith183/snake-io-game/pkg/game"
	"github.com/gdamore/tcell/v2"
)

// ScreenSource turns tcell key events into game commands
type ScreenSource struct {
	screen tcell.Screen
}

func NewScreenSource(screen tcell.Screen) *ScreenSource {
	return &ScreenSource{screen: screen}
}

// Forward polls the screen until ctx is done or the screen is finalized.
// Non-key events are ignored; every frame repaints the whole board anyway.
func (s *ScreenSource) Forward(ctx context.Context, out chan<- game.Command) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		cmd, ok := KeyCommand(key)
		if !ok {
			continue
		}
		select {
		case out <- cmd:
		case <-ctx.Done():
			return
		}
	}
}

// KeyCommand maps a tcell key event to a game command
func KeyCommand(ev *tcell.EventKey) (game.Command, bool) {
	return keyCommand(ev.Key(), ev.Rune())
}

func keyCommand(key tcell.Key, r rune) (game.Command, bool) {
	switch key {
	case tcell.KeyUp:
		return game.Command{Type: game.CmdDirection, Direction: game.DirUp}, true
	case tcell.KeyDown:
		return game.Command{Type: game.CmdDirection, Direction: game.DirDown}, true
	case tcell.KeyLeft:
		return game.Command{Type: game.CmdDirection, Direction: game.DirLeft}, true
	case tcell.KeyRight:
		return game.Command{Type: game.CmdDirection, Direction: game.DirRight}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Command{Type: game.CmdQuit}, true
	case tcell.KeyEnter:
		return game.Command{Type: game.CmdStart}, true
	case tcell.KeyRune:
		return ToCommand(KeyInput{Char: r})
	}
	return game.Command{}, false
}
