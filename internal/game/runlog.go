package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dungeoncrawl/internal/ecs"
	"dungeoncrawl/internal/gamelog"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	RunID        string    `json:"run_id"`
	Seed         int64     `json:"seed"`
	Turns        int       `json:"turns"`
	Kills        int       `json:"kills"`
	DamageDealt  int       `json:"damage_dealt"`
	DamageTaken  int       `json:"damage_taken"`
	Defeated     bool      `json:"defeated"`
	CauseOfDeath string    `json:"cause_of_death,omitempty"` // source of the defeating hit
	EndedAt      time.Time `json:"ended_at"`
}

// runTracker is a Sink that folds event notices into a RunLog.
type runTracker struct {
	log    RunLog
	player ecs.EntityID
	turns  int
}

func newRunTracker(runID string, seed int64) *runTracker {
	return &runTracker{log: RunLog{RunID: runID, Seed: seed}}
}

// Emit implements gamelog.Sink.
func (t *runTracker) Emit(e gamelog.Event) {
	switch e.Kind {
	case gamelog.Damage:
		if e.Target == t.player {
			t.log.DamageTaken += e.Amount
		} else if e.Source == t.player {
			t.log.DamageDealt += e.Amount
		}
	case gamelog.Death:
		t.log.Kills++
	case gamelog.PlayerDefeated:
		t.log.Defeated = true
		if e.SourceName != "" {
			t.log.CauseOfDeath = e.SourceName
		}
	}
}

// snapshot returns the log as of now.
func (t *runTracker) snapshot() RunLog {
	l := t.log
	l.Turns = t.turns
	l.EndedAt = time.Now().UTC()
	return l
}

// RunLog returns the statistics gathered so far.
func (g *Game) RunLog() RunLog { return g.runLog.snapshot() }

// SaveRunLog appends the run as a single JSON line to runs.jsonl in the run
// log directory.
func (g *Game) SaveRunLog() error {
	dir, err := runLogDir()
	if err != nil {
		return err
	}
	return saveRunLog(dir, g.RunLog())
}

func saveRunLog(dir string, log RunLog) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating run log dir: %w", err)
	}
	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encoding run log: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing run log: %w", err)
	}
	return nil
}

// runLogDir returns the directory where run logs are stored.
// That is $XDG_DATA_HOME/dungeoncrawl,
// defaulting to ~/.local/share/dungeoncrawl.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locating home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "dungeoncrawl"), nil
}
