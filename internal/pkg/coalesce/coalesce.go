// Package coalesce collapses bursts of writes to the same key into a
// single flush carrying the final value, the server-side counterpart of
// the client's debounced field persistence.
package coalesce

import (
	"sync"
	"time"
)

type Flusher func(key string, value any)

type Writer struct {
	window time.Duration
	flush  Flusher

	mu      sync.Mutex
	pending map[string]*entry
	closed  bool
}

type entry struct {
	timer *time.Timer
	value any
}

// NewWriter builds a coalescing writer. Each key gets an independent
// timer; only the last value set within a window is flushed.
func NewWriter(window time.Duration, flush Flusher) *Writer {
	if window <= 0 {
		window = 800 * time.Millisecond
	}
	return &Writer{
		window:  window,
		flush:   flush,
		pending: make(map[string]*entry),
	}
}

// Set records the latest value for key and restarts its window.
func (w *Writer) Set(key string, value any) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	if e, ok := w.pending[key]; ok {
		e.value = value
		e.timer.Reset(w.window)
		return
	}

	e := &entry{value: value}
	e.timer = time.AfterFunc(w.window, func() { w.fire(key) })
	w.pending[key] = e
}

// Flush forces an immediate write of the pending value for key, if any.
func (w *Writer) Flush(key string) {
	w.mu.Lock()
	e, ok := w.pending[key]
	if ok {
		e.timer.Stop()
		delete(w.pending, key)
	}
	w.mu.Unlock()

	if ok && w.flush != nil {
		w.flush(key, e.value)
	}
}

// Close stops all timers and flushes everything still pending.
func (w *Writer) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	remaining := w.pending
	w.pending = make(map[string]*entry)
	for _, e := range remaining {
		e.timer.Stop()
	}
	w.mu.Unlock()

	if w.flush == nil {
		return
	}
	for k, e := range remaining {
		w.flush(k, e.value)
	}
}

func (w *Writer) fire(key string) {
	w.mu.Lock()
	e, ok := w.pending[key]
	if ok {
		delete(w.pending, key)
	}
	w.mu.Unlock()

	if ok && w.flush != nil {
		w.flush(key, e.value)
	}
}
