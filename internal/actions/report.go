package actions

import (
	"fmt"
	"sync"

	"gitlaunch.dev/gitlaunch/internal/output"
	"gitlaunch.dev/gitlaunch/internal/scaffold"
)

// Step names recorded in Report.Events, in the order they complete
const (
	EventRepository = "repository"
	EventIdentity   = "identity"
	EventScaffold   = "scaffold"
	EventKeys       = "keys"
	EventCreateRepo = "api:create-repo"
	EventAddKey     = "api:add-key"
	EventLink       = "link"
	EventCommit     = "commit"
	EventPush       = "push"
)

// Report is the outcome of a run. Remote provisioning runs concurrently with
// the rest of the pipeline, so access goes through the mutex.
type Report struct {
	mu sync.Mutex

	Initialized   bool
	IdentitySet   []string
	Scaffold      scaffold.Result
	KeyGenerated  bool
	UseSSH        bool
	RepoCreated   bool
	KeyRegistered bool
	RemoteURL     string
	RemoteUpdated bool
	Committed     bool
	Pushed        bool
	Warnings      []string
	Events        []string
	splog         *output.Splog
}

func newReport(splog *output.Splog) *Report {
	return &Report{splog: splog}
}

// warn logs a warning and records it
func (r *Report) warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	r.mu.Lock()
	r.Warnings = append(r.Warnings, msg)
	r.mu.Unlock()
	r.splog.Warn("%s", msg)
}

// record appends a completed step
func (r *Report) record(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, event)
}

// update runs fn while holding the report lock
func (r *Report) update(fn func(r *Report)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r)
}

// WarningCount returns the number of warnings recorded so far
func (r *Report) WarningCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Warnings)
}

// EventIndex returns the position of event in Events, or -1
func (r *Report) EventIndex(event string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.Events {
		if e == event {
			return i
		}
	}
	return -1
}
