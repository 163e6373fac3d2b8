package constellation

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

// presentingRecorder counts Present calls.
type presentingRecorder struct {
	Recorder
	presented int
}

func (p *presentingRecorder) Present() { p.presented++ }

func TestRunner_StepOnce(t *testing.T) {
	f := newTestField(7)
	f.Resize(200, 200)
	canvas := &presentingRecorder{}
	r := NewRunner(f, canvas, 0)

	var seen []uint64
	r.OnFrame = func(frame uint64) { seen = append(seen, frame) }

	r.StepOnce()
	r.StepOnce()

	if r.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", r.Frames())
	}
	if canvas.presented != 2 {
		t.Errorf("Present called %d times, want 2", canvas.presented)
	}
	if canvas.Count(OpClear) != 2 {
		t.Errorf("Clear called %d times, want 2", canvas.Count(OpClear))
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("OnFrame frames = %v, want [1 2]", seen)
	}
}

func TestRunner_StopHaltsLoop(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newTestField(7)
	f.Resize(200, 200)
	r := NewRunner(f, &Recorder{}, time.Millisecond)

	var once sync.Once
	firstFrame := make(chan struct{})
	r.OnFrame = func(uint64) { once.Do(func() { close(firstFrame) }) }

	r.Start(context.Background())
	select {
	case <-firstFrame:
	case <-time.After(2 * time.Second):
		t.Fatal("runner produced no frame")
	}

	r.Stop()
	if r.Running() {
		t.Error("runner still running after Stop")
	}
	stopped := r.Frames()
	time.Sleep(10 * time.Millisecond)
	if r.Frames() != stopped {
		t.Errorf("frames advanced after Stop: %d -> %d", stopped, r.Frames())
	}

	// second Stop is a no-op
	r.Stop()
}

func TestRunner_StopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewRunner(newTestField(1), nil, 0)
	r.Stop()
	r.Wait()
}

func TestRunner_ContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newTestField(7)
	f.Resize(100, 100)
	r := NewRunner(f, &Recorder{}, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)
	cancel()
	r.Wait()

	if r.Running() {
		t.Error("runner still running after context cancel")
	}
}

func TestRunner_DoAppliesBetweenFrames(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newTestField(7)
	f.Resize(100, 100)
	r := NewRunner(f, &Recorder{}, time.Millisecond)
	r.Start(context.Background())
	defer r.Stop()

	r.Do(func(f *Field) {
		f.Resize(800, 400)
		f.SetCursor(20, 20)
	})

	var count int
	var cursor Cursor
	r.Do(func(f *Field) {
		count = f.Count()
		cursor = f.Cursor()
	})
	if count != 40 {
		t.Errorf("count after resize = %d, want 40", count)
	}
	if !cursor.Valid || cursor.X != 20 || cursor.Y != 20 {
		t.Errorf("cursor = %+v, want valid (20, 20)", cursor)
	}
}
