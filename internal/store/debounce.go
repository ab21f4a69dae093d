package store

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultDebounce is how long the writer waits after the last change to a
// logical store before persisting it.
const DefaultDebounce = 750 * time.Millisecond

// Writer coalesces rapid mutations into a single backend write per logical
// store. Each Schedule call resets that store's timer; when it fires, the
// snapshot function captures the current state and the blob is written.
// There is no explicit cancellation: a later mutation simply restarts the
// timer. Write failures are logged, never retried; the in-memory store
// stays authoritative for the session.
type Writer struct {
	backend Backend
	delay   time.Duration
	log     *log.Logger

	mu      sync.Mutex
	timers  map[string]*time.Timer
	pending map[string]func() (any, error)
}

// NewWriter creates a debounced writer over the backend. A nil logger
// silently discards write failures, so callers should pass one.
func NewWriter(backend Backend, delay time.Duration, logger *log.Logger) *Writer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Writer{
		backend: backend,
		delay:   delay,
		log:     logger,
		timers:  make(map[string]*time.Timer),
		pending: make(map[string]func() (any, error)),
	}
}

// Schedule records that the logical store changed. snapshot must return the
// value to serialize; it runs when the debounce fires, so it observes the
// latest state rather than the state at call time.
func (w *Writer) Schedule(key string, snapshot func() (any, error)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[key] = snapshot
	if t, ok := w.timers[key]; ok {
		t.Reset(w.delay)
		return
	}
	w.timers[key] = time.AfterFunc(w.delay, func() {
		w.flushKey(key)
	})
}

func (w *Writer) flushKey(key string) {
	w.mu.Lock()
	snapshot := w.pending[key]
	delete(w.pending, key)
	delete(w.timers, key)
	w.mu.Unlock()

	if snapshot == nil {
		return
	}
	w.write(key, snapshot)
}

func (w *Writer) write(key string, snapshot func() (any, error)) {
	v, err := snapshot()
	if err != nil {
		w.logError("snapshotting store", key, err)
		return
	}
	if err := SaveJSON(w.backend, key, v); err != nil {
		w.logError("persisting store", key, err)
	}
}

// Flush synchronously writes every pending store. Called on shutdown so a
// debounce window at exit does not drop the last edits.
func (w *Writer) Flush() {
	w.mu.Lock()
	pending := w.pending
	w.pending = make(map[string]func() (any, error))
	for key, t := range w.timers {
		t.Stop()
		delete(w.timers, key)
	}
	w.mu.Unlock()

	for key, snapshot := range pending {
		w.write(key, snapshot)
	}
}

func (w *Writer) logError(msg, key string, err error) {
	if w.log != nil {
		w.log.Error(msg, "store", key, "error", err)
	}
}
