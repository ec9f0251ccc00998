package runner

import (
	"testing"
	"time"
)

func feed(c *FrameClock, start time.Time, fps, frames int) time.Time {
	interval := time.Second / time.Duration(fps)
	now := start
	for i := 0; i < frames; i++ {
		now = start.Add(time.Duration(i) * interval)
		c.Observe(now)
	}
	return now
}

func TestFrameClock(t *testing.T) {
	tests := []struct {
		name      string
		fps       int
		frames    int
		maxDelta  float64
		wantFPS   int
		wantDelta float64
	}{
		{"steady 50", 50, 100, 4, 50, 1.2},
		{"steady 25", 25, 75, 4, 25, 2.4},
		{"steady 100", 100, 200, 4, 100, 0.6},
		{"first frame clamped", 60, 1, 4, 1, 4},
		{"first frame unclamped", 60, 1, 0, 1, 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewFrameClock(60, tc.maxDelta)
			feed(c, time.Unix(1000, 0), tc.fps, tc.frames)

			if c.FPS() != tc.wantFPS {
				t.Errorf("FPS() = %d, expected %d", c.FPS(), tc.wantFPS)
			}
			if c.Delta() != tc.wantDelta {
				t.Errorf("Delta() = %v, expected %v", c.Delta(), tc.wantDelta)
			}
		})
	}
}

func TestFrameClockWindowEdge(t *testing.T) {
	c := NewFrameClock(60, 0)
	start := time.Unix(0, 0)

	c.Observe(start)
	c.Observe(start.Add(500 * time.Millisecond))
	// A sample exactly one second old falls out of the window
	c.Observe(start.Add(time.Second))

	if c.FPS() != 2 {
		t.Errorf("FPS() = %d, expected 2", c.FPS())
	}
}

func TestFrameClockStall(t *testing.T) {
	c := NewFrameClock(60, 4)
	last := feed(c, time.Unix(0, 0), 60, 60)

	// After a long pause only the new frame is left in the window
	c.Observe(last.Add(5 * time.Second))
	if c.FPS() != 1 || c.Delta() != 4 {
		t.Errorf("after stall FPS=%d Delta=%v, expected 1 and 4", c.FPS(), c.Delta())
	}

	c.Reset()
	if c.FPS() != 0 || c.Delta() != 1 {
		t.Errorf("after Reset FPS=%d Delta=%v", c.FPS(), c.Delta())
	}
}
