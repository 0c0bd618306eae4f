package coalesce

import (
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu     sync.Mutex
	calls  int
	lastKV [2]any
}

func (r *recorder) flush(key string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.lastKV = [2]any{key, value}
}

func (r *recorder) snapshot() (int, [2]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls, r.lastKV
}

func TestWriter_BurstCollapsesToOneFlush(t *testing.T) {
	rec := &recorder{}
	w := NewWriter(30*time.Millisecond, rec.flush)
	defer w.Close()

	w.Set("cv:1:job_title", "Dev")
	w.Set("cv:1:job_title", "Devel")
	w.Set("cv:1:job_title", "Developer")

	time.Sleep(120 * time.Millisecond)

	calls, last := rec.snapshot()
	if calls != 1 {
		t.Fatalf("expected exactly 1 flush, got %d", calls)
	}
	if last[0] != "cv:1:job_title" || last[1] != "Developer" {
		t.Fatalf("flush must carry the final value, got %v", last)
	}
}

func TestWriter_IndependentKeys(t *testing.T) {
	rec := &recorder{}
	w := NewWriter(20*time.Millisecond, rec.flush)
	defer w.Close()

	w.Set("a", 1)
	w.Set("b", 2)

	time.Sleep(100 * time.Millisecond)

	calls, _ := rec.snapshot()
	if calls != 2 {
		t.Fatalf("expected 2 flushes for 2 keys, got %d", calls)
	}
}

func TestWriter_CloseFlushesPending(t *testing.T) {
	rec := &recorder{}
	w := NewWriter(time.Hour, rec.flush)

	w.Set("k", "v")
	w.Close()

	calls, last := rec.snapshot()
	if calls != 1 {
		t.Fatalf("close must flush pending writes, got %d calls", calls)
	}
	if last[1] != "v" {
		t.Fatalf("unexpected flushed value %v", last[1])
	}

	// Writes after close are dropped.
	w.Set("k", "w")
	time.Sleep(20 * time.Millisecond)
	calls, _ = rec.snapshot()
	if calls != 1 {
		t.Fatalf("set after close must be ignored, got %d calls", calls)
	}
}

func TestWriter_ExplicitFlush(t *testing.T) {
	rec := &recorder{}
	w := NewWriter(time.Hour, rec.flush)
	defer w.Close()

	w.Set("k", 42)
	w.Flush("k")

	calls, last := rec.snapshot()
	if calls != 1 || last[1] != 42 {
		t.Fatalf("expected immediate flush of 42, got calls=%d last=%v", calls, last)
	}

	// Nothing pending anymore.
	w.Flush("k")
	calls, _ = rec.snapshot()
	if calls != 1 {
		t.Fatalf("flush with nothing pending must be a no-op, got %d", calls)
	}
}
