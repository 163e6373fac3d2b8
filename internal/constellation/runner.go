package constellation

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultFrameInterval is roughly one display refresh.
const DefaultFrameInterval = time.Second / 60

// Runner drives a Field on its own goroutine for hosts without a game loop
// of their own (terminal preview, headless tools).
//
// Frames never overlap. Events that change the field (cursor, resize,
// reconfigure) are applied through Do, which runs between two frames.
type Runner struct {
	field    *Field
	canvas   Canvas
	interval time.Duration

	// OnFrame is called after each frame while the runner lock is held.
	OnFrame func(frame uint64)

	mu      sync.Mutex
	running bool
	frames  uint64
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewRunner creates a stopped runner. A non-positive interval falls back to
// DefaultFrameInterval.
func NewRunner(field *Field, canvas Canvas, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Runner{
		field:    field,
		canvas:   canvas,
		interval: interval,
	}
}

// Start begins stepping the field. It is non-blocking; calling it on a
// running runner does nothing.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true
	r.stopCh = make(chan struct{})
	r.doneCh = make(chan struct{})

	go r.run(ctx, r.stopCh, r.doneCh)
}

// Stop halts the loop and waits for the current frame to finish.
// It is safe to call more than once and on a runner that never started.
func (r *Runner) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	stopCh, doneCh := r.stopCh, r.doneCh
	r.mu.Unlock()

	close(stopCh)
	<-doneCh
}

// Wait blocks until the loop exits, either through Stop or through the
// context given to Start.
func (r *Runner) Wait() {
	r.mu.Lock()
	doneCh := r.doneCh
	r.mu.Unlock()
	if doneCh != nil {
		<-doneCh
	}
}

// Running reports whether the loop is active.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Do runs fn against the field between two frames.
func (r *Runner) Do(fn func(f *Field)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.field)
}

// Frames returns how many frames have been drawn.
func (r *Runner) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// StepOnce draws a single frame synchronously.
func (r *Runner) StepOnce() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stepLocked()
}

func (r *Runner) stepLocked() {
	r.field.Step(r.canvas)
	if p, ok := r.canvas.(Presenter); ok {
		p.Present()
	}
	r.frames++
	if r.OnFrame != nil {
		r.OnFrame(r.frames)
	}
}

func (r *Runner) run(ctx context.Context, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.mu.Lock()
			r.running = false
			r.mu.Unlock()
			log.Printf("[Constellation] runner context done after %d frames", r.Frames())
			return
		case <-stopCh:
			return
		case <-ticker.C:
			r.StepOnce()
		}
	}
}
