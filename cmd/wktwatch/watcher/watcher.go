// Package watcher sweeps a directory of .wkt files, parsing each with
// dispatch.Parse and reporting rejects through the installed wkterror
// sink, and can run that sweep on a cron schedule. Grounded on
// rtcmlogger/logger.Writer's use of github.com/goblimey/go-tools/clock
// for a fake-clock-friendly design and rtcmlogger/log.Writer's use of
// github.com/robfig/cron for scheduling.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goblimey/go-tools/clock"
	"github.com/goblimey/go-wktcrs/dispatch"
	"github.com/robfig/cron"
)

// Result is one file's validation outcome.
type Result struct {
	Path  string
	Error error
}

// Sweep parses every *.wkt file directly inside dir and returns one
// Result per file. It never itself returns an error for a malformed WKT
// document - that's carried per-file in Result.Error - only for a
// directory it could not read.
func Sweep(dir string, strict bool) ([]Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dir, err)
	}

	var results []Result
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".wkt") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			results = append(results, Result{Path: path, Error: err})
			continue
		}
		_, werr := dispatch.Parse(raw, strict)
		if werr != nil {
			results = append(results, Result{Path: path, Error: werr})
			continue
		}
		results = append(results, Result{Path: path})
	}
	return results, nil
}

// Scheduler runs Sweep on a cron schedule until Stop is called.
type Scheduler struct {
	clock  clock.Clock
	cron   *cron.Cron
	dir    string
	strict bool
	onDone func([]Result)
}

// NewScheduler builds a Scheduler with the real system clock. onDone is
// called with each sweep's results, typically to log rejects.
func NewScheduler(dir, schedule string, strict bool, onDone func([]Result)) (*Scheduler, error) {
	return newSchedulerWithClock(clock.NewSystemClock(), dir, schedule, strict, onDone)
}

// newSchedulerWithClock is exercised directly by tests that supply a
// fake clock instead of the real one.
func newSchedulerWithClock(c clock.Clock, dir, schedule string, strict bool, onDone func([]Result)) (*Scheduler, error) {
	s := &Scheduler{
		clock:  c,
		cron:   cron.New(),
		dir:    dir,
		strict: strict,
		onDone: onDone,
	}
	if err := s.cron.AddFunc(schedule, s.runOnce); err != nil {
		return nil, fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
	}
	return s, nil
}

func (s *Scheduler) runOnce() {
	results, err := Sweep(s.dir, s.strict)
	if err != nil {
		if s.onDone != nil {
			s.onDone([]Result{{Path: s.dir, Error: err}})
		}
		return
	}
	if s.onDone != nil {
		s.onDone(results)
	}
}

// Start begins the cron schedule. It returns immediately; sweeps run in
// the cron library's own goroutine.
func (s *Scheduler) Start() { s.cron.Start() }

// Stop halts the cron schedule.
func (s *Scheduler) Stop() { s.cron.Stop() }
