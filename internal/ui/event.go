// Package ui renders a live bubbletea progress view over a project build,
// driven by a stream of per-file pipeline events.
package ui

// Status is a file's progress through the compile pipeline.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports one file's transition. File == "" marks a project-wide
// transition (e.g. "linking") rather than a per-file one.
type Event struct {
	File   string
	Status Status
	Err    error
}
