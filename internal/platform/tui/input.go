package tui

// holdLatch emulates a held key. Terminals report presses but no
// releases, so each press keeps the key down for a number of ticks and
// keyboard auto-repeat keeps refreshing it.
type holdLatch struct {
	ticks int
	left  int
}

func newHoldLatch(ticks int) holdLatch {
	if ticks < 1 {
		ticks = 1
	}
	return holdLatch{ticks: ticks}
}

func (h *holdLatch) Press() {
	h.left = h.ticks
}

func (h *holdLatch) Held() bool {
	return h.left > 0
}

// Tick consumes one tick of the hold.
func (h *holdLatch) Tick() {
	if h.left > 0 {
		h.left--
	}
}
