// Package session logs the runs played in one frontend session.
package session

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tux-runner/internal/core"
)

// Summary is the outcome of a session.
type Summary struct {
	Runs int
	Best int
}

// Tracker follows step results and logs each run with its own ID.
type Tracker struct {
	logger *log.Logger
	game   string
	now    func() time.Time

	runID   string
	started time.Time
	ticks   int
	summary Summary
}

// NewTracker creates a tracker for the given game.
func NewTracker(logger *log.Logger, gameID string) *Tracker {
	return &Tracker{
		logger: logger.With("game", gameID),
		game:   gameID,
		now:    time.Now,
	}
}

// Observe records the result of one tick.
func (t *Tracker) Observe(res core.StepResult) {
	if res.State.Running && t.runID != "" {
		t.ticks++
	}

	for _, ev := range res.Events {
		switch ev.Kind {
		case core.EventRunStarted:
			t.runID = uuid.NewString()
			t.started = t.now()
			t.ticks = 0
			t.summary.Runs++
			t.logger.Info("run started", "run", t.runID, "attempt", t.summary.Runs)

		case core.EventRunEnded:
			if ev.Score > t.summary.Best {
				t.summary.Best = ev.Score
			}
			t.logger.Info("run ended",
				"run", t.runID,
				"score", ev.Score,
				"best", t.summary.Best,
				"ticks", t.ticks,
				"duration", t.now().Sub(t.started).Round(time.Millisecond),
			)
			t.runID = ""
		}
	}
}

// RunID returns the ID of the run in progress, or "" between runs.
func (t *Tracker) RunID() string {
	return t.runID
}

// Summary returns the runs played so far and the best score.
func (t *Tracker) Summary() Summary {
	return t.summary
}

// Close logs the session summary.
func (t *Tracker) Close() {
	t.logger.Info("session ended", "runs", t.summary.Runs, "best", t.summary.Best)
}
