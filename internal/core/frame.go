package core

import "time"

// FrameGate enforces a minimum frame interval. A frame is only processed
// once strictly more than the target duration has passed since the last
// processed frame; the real elapsed time is then handed to the simulation.
// Early frames are dropped and nothing is accumulated.
type FrameGate struct {
	target time.Duration
	last   time.Time
}

// NewFrameGate creates a gate targeting fps frames per second, starting at now.
func NewFrameGate(fps int, now time.Time) *FrameGate {
	if fps <= 0 {
		fps = 60
	}
	return &FrameGate{
		target: time.Second / time.Duration(fps),
		last:   now,
	}
}

// Target returns the minimum frame interval.
func (f *FrameGate) Target() time.Duration {
	return f.target
}

// Ready reports whether a frame should run at now and, if so, the elapsed
// time since the previous processed frame.
func (f *FrameGate) Ready(now time.Time) (time.Duration, bool) {
	elapsed := now.Sub(f.last)
	if elapsed <= f.target {
		return 0, false
	}
	f.last = now
	return elapsed, true
}
