package game

import (
	"log"
	"sync"
)

// Recorder persists finished session summaries off the game loop
type Recorder struct {
	store      SessionStore
	recordChan chan SessionSummary
	wg         sync.WaitGroup
	mu         sync.Mutex
	closed     bool
}

// NewRecorder starts a background writer that keeps up to buffer pending summaries
func NewRecorder(store SessionStore, buffer int) *Recorder {
	r := &Recorder{
		store:      store,
		recordChan: make(chan SessionSummary, buffer),
	}

	r.wg.Add(1)
	go r.writeLoop()

	return r
}

// Record queues a summary. Non-blocking (drops if full).
func (r *Recorder) Record(s SessionSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	select {
	case r.recordChan <- s:
	default:
		log.Printf("recorder: queue full, dropping session %s", s.ID)
	}
}

// Close drains pending summaries and stops the writer
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.recordChan)
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Recorder) writeLoop() {
	defer r.wg.Done()

	for s := range r.recordChan {
		if err := r.store.SaveSession(s); err != nil {
			log.Printf("recorder: save session %s: %v", s.ID, err)
		}
	}
}
