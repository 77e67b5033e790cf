package input

import (
	"context"

	"github.com/arshith183/snake-io-game/pkg/game"
	"github.com/eiannone/keyboard"
)

// KeyboardHandler reads raw key presses from the terminal
type KeyboardHandler struct {
	inputChan chan KeyInput
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput),
	}
}

// Start begins listening for keyboard input
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.inputChan <- KeyInput{Char: char, Key: key}
		}
	}()

	return nil
}

// Stop releases the terminal
func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// GetInputChan returns the input channel
func (h *KeyboardHandler) GetInputChan() <-chan KeyInput {
	return h.inputChan
}

// Forward translates key presses into commands until ctx is done
func (h *KeyboardHandler) Forward(ctx context.Context, out chan<- game.Command) {
	for {
		select {
		case <-ctx.Done():
			return
		case in := <-h.inputChan:
			cmd, ok := ToCommand(in)
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
}

// ToCommand maps a key press to a game command
func ToCommand(in KeyInput) (game.Command, bool) {
	if dir, ok := ParseDirection(in); ok {
		return game.Command{Type: game.CmdDirection, Direction: dir}, true
	}
	switch {
	case IsQuit(in):
		return game.Command{Type: game.CmdQuit}, true
	case IsStart(in):
		return game.Command{Type: game.CmdStart}, true
	case IsPause(in):
		return game.Command{Type: game.CmdTogglePause}, true
	case IsRestart(in):
		return game.Command{Type: game.CmdRestart}, true
	}
	return game.Command{}, false
}

// ParseDirection parses a key input into a direction
func ParseDirection(in KeyInput) (game.Direction, bool) {
	// Handle arrow keys
	switch in.Key {
	case keyboard.KeyArrowUp:
		return game.DirUp, true
	case keyboard.KeyArrowDown:
		return game.DirDown, true
	case keyboard.KeyArrowLeft:
		return game.DirLeft, true
	case keyboard.KeyArrowRight:
		return game.DirRight, true
	}

	// Handle WASD keys
	return runeDirection(in.Char)
}

// IsQuit checks if the input is a quit command
func IsQuit(in KeyInput) bool {
	return in.Key == keyboard.KeyEsc || in.Key == keyboard.KeyCtrlC || in.Char == 'q' || in.Char == 'Q'
}

// IsStart checks if the input is a start command
func IsStart(in KeyInput) bool {
	return in.Key == keyboard.KeyEnter || in.Char == 'g' || in.Char == 'G'
}

// IsRestart checks if the input is a restart command
func IsRestart(in KeyInput) bool {
	return in.Char == 'r' || in.Char == 'R'
}

// IsPause checks if the input is a pause command
func IsPause(in KeyInput) bool {
	return in.Key == keyboard.KeySpace || in.Char == 'p' || in.Char == 'P' || in.Char == ' '
}

func runeDirection(r rune) (game.Direction, bool) {
	switch r {
	case 'w', 'W':
		return game.DirUp, true
	case 's', 'S':
		return game.DirDown, true
	case 'a', 'A':
		return game.DirLeft, true
	case 'd', 'D':
		return game.DirRight, true
	}
	return game.DirNone, false
}
