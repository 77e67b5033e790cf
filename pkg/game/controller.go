package game

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Renderer draws a snapshot. It is called on the loop goroutine, so the
// frame is complete before the next tick is computed.
type Renderer interface {
	Render(s Snapshot)
}

// Listener is notified of every tick outcome (sound effects, stats)
type Listener interface {
	OnEvent(ev Event, s Snapshot)
}

// CommandType identifies a player request
type CommandType int

const (
	CmdDirection CommandType = iota
	CmdStart
	CmdPause
	CmdResume
	CmdTogglePause
	CmdRestart
	CmdQuit
)

// Command is a request from an input source
type Command struct {
	Type      CommandType
	Direction Direction // Only for CmdDirection
}

// ControllerConfig wires the collaborators of a Controller.
// Only Game and Renderer are required.
type ControllerConfig struct {
	Game     *Game
	Renderer Renderer
	Listener Listener
	Recorder *Recorder
	Clock    Clock         // Defaults to SystemClock
	Interval time.Duration // Delay between ticks
}

// Controller runs the fixed-delay game loop. All engine calls happen on the
// goroutine executing Run; input sources only send Commands.
type Controller struct {
	game     *Game
	renderer Renderer
	listener Listener
	recorder *Recorder
	clock    Clock
	interval time.Duration

	commands  chan Command
	timer     Timer
	startedAt time.Time
}

// NewController creates a controller for an idle game
func NewController(cfg ControllerConfig) *Controller {
	clock := cfg.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	return &Controller{
		game:     cfg.Game,
		renderer: cfg.Renderer,
		listener: cfg.Listener,
		recorder: cfg.Recorder,
		clock:    clock,
		interval: cfg.Interval,
		commands: make(chan Command, 16),
	}
}

// Submit queues a command for the loop. It blocks while the queue is full.
func (c *Controller) Submit(cmd Command) {
	c.commands <- cmd
}

// Commands exposes the queue so input sources can forward into it directly
func (c *Controller) Commands() chan<- Command {
	return c.commands
}

// Run drives the game until a quit command, context cancellation, or a fatal
// board error. It renders once up front, after every tick and after every
// command.
func (c *Controller) Run(ctx context.Context) error {
	defer c.cancelTick()
	c.renderer.Render(c.game.Snapshot())

	for {
		var tickC <-chan time.Time
		if c.timer != nil {
			tickC = c.timer.C()
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-c.commands:
			if cmd.Type == CmdQuit {
				return nil
			}
			if err := c.handle(cmd); err != nil {
				return err
			}
			c.renderer.Render(c.game.Snapshot())
		case <-tickC:
			c.timer = nil
			if err := c.step(); err != nil {
				return err
			}
		}
	}
}

func (c *Controller) handle(cmd Command) error {
	switch cmd.Type {
	case CmdDirection:
		c.game.SetDirection(cmd.Direction)
	case CmdStart:
		if c.game.Start() {
			c.startedAt = c.clock.Now()
			c.scheduleTick()
		}
	case CmdPause:
		if c.game.Pause() {
			c.cancelTick()
		}
	case CmdResume:
		if c.game.Resume() {
			c.scheduleTick()
		}
	case CmdTogglePause:
		if c.game.TogglePause() {
			if c.game.Phase() == PhaseRunning {
				c.scheduleTick()
			} else {
				c.cancelTick()
			}
		}
	case CmdRestart:
		c.cancelTick()
		return c.game.Restart()
	}
	return nil
}

// step runs one tick, renders it, and schedules the next one
func (c *Controller) step() error {
	ev, err := c.game.Tick()
	snap := c.game.Snapshot()
	c.renderer.Render(snap)
	if c.listener != nil && ev != EventNone {
		c.listener.OnEvent(ev, snap)
	}

	if snap.Phase == PhaseOver {
		c.record(ev, snap, err)
	}
	if err != nil {
		return err
	}
	if snap.Phase == PhaseRunning {
		c.scheduleTick()
	}
	return nil
}

func (c *Controller) record(ev Event, snap Snapshot, err error) {
	if c.recorder == nil {
		return
	}
	cause := ev.String()
	if err != nil {
		cause = "board_full"
	}
	c.recorder.Record(SessionSummary{
		ID:        uuid.NewString(),
		StartedAt: c.startedAt,
		EndedAt:   c.clock.Now(),
		Score:     snap.Score,
		Length:    len(snap.Snake),
		Cause:     cause,
	})
}

func (c *Controller) scheduleTick() {
	if c.timer != nil {
		return
	}
	c.timer = c.clock.NewTimer(c.interval)
}

func (c *Controller) cancelTick() {
	if c.timer == nil {
		return
	}
	c.timer.Stop()
	c.timer = nil
}
