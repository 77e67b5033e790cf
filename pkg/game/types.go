package game

import "time"

// Point represents a cell on the game board
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p moved by the velocity v
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Direction is a requested heading
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Vector returns the unit velocity for the direction
func (d Direction) Vector() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	case DirRight:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Phase is the lifecycle state of a game session
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	}
	return "unknown"
}

// Event describes what a tick did
type Event int

const (
	EventNone      Event = iota // Tick was ignored
	EventMoved                  // Snake moved without eating
	EventAteFood                // Regular food eaten
	EventAteGolden              // Golden food eaten
	EventHitWall                // Game over: left the board
	EventHitSelf                // Game over: ran into its own body
)

func (e Event) String() string {
	switch e {
	case EventMoved:
		return "moved"
	case EventAteFood:
		return "ate_food"
	case EventAteGolden:
		return "ate_golden"
	case EventHitWall:
		return "hit_wall"
	case EventHitSelf:
		return "hit_self"
	}
	return "none"
}

// IsCollision reports whether the event ended the game
func (e Event) IsCollision() bool {
	return e == EventHitWall || e == EventHitSelf
}

// Snapshot is a copy of the game state for rendering.
// It shares no memory with the Game it was taken from.
type Snapshot struct {
	Phase      Phase   `json:"phase"`
	TileCount  int     `json:"tileCount"`
	Snake      []Point `json:"snake"`
	Velocity   Point   `json:"velocity"`
	Food       Point   `json:"food"`
	GoldenFood *Point  `json:"goldenFood,omitempty"`
	CrashPoint *Point  `json:"crashPoint,omitempty"`
	Score      int     `json:"score"`
	HighScore  int     `json:"highScore"`
}

// Head returns the first snake segment
func (s Snapshot) Head() Point {
	if len(s.Snake) == 0 {
		return Point{}
	}
	return s.Snake[0]
}

// HighScoreStore persists the best score across sessions
type HighScoreStore interface {
	// LoadHighScore returns 0 when nothing has been stored yet
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// SessionSummary is the record kept for a finished game
type SessionSummary struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"startedAt"`
	EndedAt   time.Time `json:"endedAt"`
	Score     int       `json:"score"`
	Length    int       `json:"length"`
	Cause     string    `json:"cause"`
}

// SessionStore persists finished game summaries
type SessionStore interface {
	SaveSession(s SessionSummary) error
}
