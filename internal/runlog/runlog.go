// Package runlog records generation runs and the artifacts they produced
// in a SQLite database. History is best-effort: callers downgrade every
// failure here to a warning, a broken history DB never fails a build.
package runlog

import (
	"time"

	"github.com/Jvryan92/StategyDECK/internal/generate"
)

// Run is one recorded generation run.
type Run struct {
	ID        string
	Started   time.Time
	Elapsed   time.Duration
	CSVPath   string
	Generated int
	PNGs      int
}

// Artifact is one file a run wrote.
type Artifact struct {
	RunID   string
	Path    string
	Kind    string // "svg" or "png"
	Mode    string
	Finish  string
	SizePx  int
	Context string
}

// Store abstracts run history storage.
type Store interface {
	// Record persists one run and its artifacts.
	Record(run Run, files []generate.Artifact) error

	// Runs returns the most recent runs, newest first. limit 0 = all.
	Runs(limit int) ([]Run, error)
	// Artifacts returns the files a run wrote, in write order.
	Artifacts(runID string) ([]Artifact, error)

	// Clean removes runs older than days, returning the removed count.
	Clean(days int) (int, error)
	// Clear deletes all history.
	Clear() error

	Close() error
	Path() string
}

// DayCutoff returns the moment days ago from now.
func DayCutoff(days int) time.Time {
	return time.Now().AddDate(0, 0, -days)
}
