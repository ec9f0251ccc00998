package runner

import "time"

// FrameClock estimates frames per second from the timestamps seen during
// the last second, and derives the delta factor referenceFPS / fps that
// normalizes per-tick physics.
type FrameClock struct {
	window    time.Duration
	reference float64
	maxDelta  float64 // 0 disables the clamp

	times []time.Time
	delta float64
}

// NewFrameClock creates a clock with a one second window.
func NewFrameClock(referenceFPS, maxDelta float64) *FrameClock {
	c := &FrameClock{
		window:    time.Second,
		reference: referenceFPS,
		maxDelta:  maxDelta,
	}
	c.Reset()
	return c
}

// Reset forgets all samples.
func (c *FrameClock) Reset() {
	c.times = c.times[:0]
	c.delta = 1
}

// Observe records a frame at now and drops samples at or before now - 1s.
func (c *FrameClock) Observe(now time.Time) {
	cutoff := now.Add(-c.window)
	i := 0
	for i < len(c.times) && !c.times[i].After(cutoff) {
		i++
	}
	c.times = append(c.times[:0], c.times[i:]...)
	c.times = append(c.times, now)

	c.delta = c.reference / float64(len(c.times))
	if c.maxDelta > 0 && c.delta > c.maxDelta {
		c.delta = c.maxDelta
	}
}

// FPS returns the number of frames observed in the last second.
func (c *FrameClock) FPS() int {
	return len(c.times)
}

// Delta returns the frame-time normalization factor.
func (c *FrameClock) Delta() float64 {
	return c.delta
}
