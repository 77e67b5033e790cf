package audio

import (
	"log"
	"sync"
	"time"

	"github.com/arshith183/snake-io-game/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays short effects for engine events. It implements
// game.Listener; until Initialize succeeds every call is silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// OnEvent plays the effect matching a tick outcome
func (sm *SoundManager) OnEvent(ev game.Event, _ game.Snapshot) {
	tones := effectTones(ev)
	if tones == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}

	streamer, err := newEffect(sampleRate, tones)
	if err != nil {
		log.Printf("audio: build %s effect: %v", ev, err)
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

func effectTones(ev game.Event) []tone {
	switch ev {
	case game.EventAteFood:
		return eatTones
	case game.EventAteGolden:
		return goldenTones
	case game.EventHitWall, game.EventHitSelf:
		return crashTones
	}
	return nil
}
