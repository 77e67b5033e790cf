package game

import "time"

// Timer is a cancelable one-shot timer
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// Clock schedules the next tick and reports wall time.
// Tests swap in a manual clock to step the loop without sleeping.
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) Timer
}

// SystemClock is the Clock backed by package time
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) NewTimer(d time.Duration) Timer {
	return systemTimer{time.NewTimer(d)}
}

type systemTimer struct {
	t *time.Timer
}

func (s systemTimer) C() <-chan time.Time { return s.t.C }
func (s systemTimer) Stop() bool          { return s.t.Stop() }
