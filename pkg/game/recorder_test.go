package game

import (
	"sync"
	"testing"
)

type memorySessions struct {
	mu    sync.Mutex
	saved []SessionSummary
}

func (m *memorySessions) SaveSession(s SessionSummary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved = append(m.saved, s)
	return nil
}

// blockingSessions holds the writer inside SaveSession until released
type blockingSessions struct {
	memorySessions
	entered chan struct{}
	release chan struct{}
}

func (b *blockingSessions) SaveSession(s SessionSummary) error {
	b.entered <- struct{}{}
	<-b.release
	return b.memorySessions.SaveSession(s)
}

func TestRecorderWritesAllOnClose(t *testing.T) {
	store := &memorySessions{}
	r := NewRecorder(store, 8)

	for i := 0; i < 5; i++ {
		r.Record(SessionSummary{ID: string(rune('a' + i)), Score: i * 10})
	}
	r.Close()

	if len(store.saved) != 5 {
		t.Fatalf("Expected 5 sessions written, got %d", len(store.saved))
	}
	if store.saved[4].Score != 40 {
		t.Errorf("Expected sessions in order, last score %d", store.saved[4].Score)
	}

	r.Record(SessionSummary{ID: "late"})
	r.Close()
	if len(store.saved) != 5 {
		t.Errorf("Record after close should be ignored, got %d sessions", len(store.saved))
	}
}

func TestRecorderDropsWhenFull(t *testing.T) {
	store := &blockingSessions{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	r := NewRecorder(store, 1)

	r.Record(SessionSummary{ID: "first"})
	<-store.entered
	r.Record(SessionSummary{ID: "second"}) // fills the buffer
	r.Record(SessionSummary{ID: "third"})  // dropped

	close(store.release)
	go func() {
		for range store.entered {
		}
	}()
	r.Close()
	close(store.entered)

	if len(store.saved) != 2 {
		t.Fatalf("Expected 2 sessions written, got %d", len(store.saved))
	}
	if store.saved[1].ID != "second" {
		t.Errorf("Expected the buffered session to be kept, got %s", store.saved[1].ID)
	}
}
