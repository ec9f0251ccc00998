package session

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tux-runner/internal/core"
)

func newTestTracker() (*Tracker, *bytes.Buffer) {
	var buf bytes.Buffer
	tr := NewTracker(log.New(&buf), "runner")

	clock := time.Unix(0, 0)
	tr.now = func() time.Time {
		clock = clock.Add(250 * time.Millisecond)
		return clock
	}
	return tr, &buf
}

func started() core.StepResult {
	return core.StepResult{
		State:  core.GameState{Running: true},
		Events: []core.Event{{Kind: core.EventRunStarted}},
	}
}

func ended(score int) core.StepResult {
	return core.StepResult{
		State:  core.GameState{Score: score, GameOver: true},
		Events: []core.Event{{Kind: core.EventRunEnded, Score: score}},
	}
}

func TestTrackerRun(t *testing.T) {
	tr, buf := newTestTracker()

	tr.Observe(started())
	id := tr.RunID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("run ID %q is not a UUID: %v", id, err)
	}

	for i := 0; i < 5; i++ {
		tr.Observe(core.StepResult{State: core.GameState{Running: true}})
	}
	tr.Observe(ended(42))

	if tr.RunID() != "" {
		t.Error("run ID should be cleared after the run ends")
	}

	out := buf.String()
	for _, want := range []string{"run started", "run ended", "game=runner", "run=" + id, "score=42", "ticks=5", "duration=250ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestTrackerSummary(t *testing.T) {
	tr, buf := newTestTracker()

	for _, score := range []int{10, 30, 20} {
		tr.Observe(started())
		tr.Observe(ended(score))
	}

	if got := tr.Summary(); got != (Summary{Runs: 3, Best: 30}) {
		t.Errorf("Summary = %+v", got)
	}

	tr.Close()
	if !strings.Contains(buf.String(), "session ended") {
		t.Error("Close should log the summary")
	}
}

func TestTrackerIgnoresIdleTicks(t *testing.T) {
	tr, buf := newTestTracker()
	for i := 0; i < 10; i++ {
		tr.Observe(core.StepResult{})
	}
	if buf.Len() != 0 || tr.Summary().Runs != 0 {
		t.Errorf("idle ticks should not log, got %q", buf.String())
	}
}
