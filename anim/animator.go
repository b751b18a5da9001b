// Package anim advances a fixed frame table on a caller-supplied clock.
// The animator never reads the system time itself, which keeps it
// deterministic under synthetic timestamps.
package anim

import (
	"errors"
	"time"
)

var (
	// ErrNoFrames is returned when an animator is built without frames.
	ErrNoFrames = errors.New("animator requires at least one frame")
	// ErrInterval is returned for a zero or negative interval, which
	// would degrade the animator to advancing on every call.
	ErrInterval = errors.New("animator interval must be positive")
)

// Animator steps through a frame table at most once per Advance call,
// gated by the configured interval. Missed intervals are dropped, never
// batched, so a stalled host catches up by one frame instead of jumping.
type Animator struct {
	frames   []string
	interval time.Duration

	// cycles limits how many full passes over the frame table are
	// played. Zero means forever.
	cycles int

	index     int
	last      time.Time
	paused    bool
	completed int
	done      bool
}

// New creates an animator over a copy of frames. Empty frames or a
// non-positive interval is a configuration error and is never silently
// fixed up.
func New(frames []string, interval time.Duration) (*Animator, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if interval <= 0 {
		return nil, ErrInterval
	}

	return &Animator{
		frames:   append([]string(nil), frames...),
		interval: interval,
	}, nil
}

// WithCycles limits the animation to n full passes over the frame table,
// after which Advance becomes a no-op and Done reports true. n <= 0
// restores the default of repeating forever.
func (a *Animator) WithCycles(n int) *Animator {
	if n < 0 {
		n = 0
	}
	a.cycles = n
	return a
}

// Advance moves to the next frame when at least one interval has elapsed
// since the last advance. It reports whether the index changed. No matter
// how much time has passed, the index moves at most one step per call.
func (a *Animator) Advance(now time.Time) bool {
	if a.done {
		return false
	}
	if a.paused {
		// Shift the baseline so unpausing does not jump a frame.
		a.last = now
		return false
	}
	if a.last.IsZero() {
		// First call after construction or Reset records the baseline.
		a.last = now
		return false
	}
	if now.Sub(a.last) < a.interval {
		return false
	}

	a.last = now
	next := a.index + 1
	if next < len(a.frames) {
		a.index = next
		return true
	}

	a.completed++
	if a.cycles > 0 && a.completed >= a.cycles {
		a.done = true
		return false
	}

	a.index = 0
	return len(a.frames) > 1
}

// Frame returns the current frame. It has no side effects and may be
// called any number of times between advances.
func (a *Animator) Frame() string {
	return a.frames[a.index]
}

// Index returns the current frame index.
func (a *Animator) Index() int {
	return a.index
}

// Interval returns the configured advance interval, useful for hosts
// scheduling their tick cadence.
func (a *Animator) Interval() time.Duration {
	return a.interval
}

// Done reports whether a cycle-limited animation has finished.
func (a *Animator) Done() bool {
	return a.done
}

// Pause freezes the animation. Advance keeps accepting timestamps but
// does not move the index while paused.
func (a *Animator) Pause() {
	a.paused = true
}

// Unpause resumes a paused animation.
func (a *Animator) Unpause() {
	a.paused = false
}

// Paused reports whether the animation is paused.
func (a *Animator) Paused() bool {
	return a.paused
}

// Reset returns to the first frame and the construction-time baseline.
func (a *Animator) Reset() {
	a.index = 0
	a.last = time.Time{}
	a.paused = false
	a.completed = 0
	a.done = false
}
