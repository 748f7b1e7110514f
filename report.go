package depmerge

import (
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/depmerge/pkg/merge"
)

// Status is the outcome of one manifest.
type Status string

// Manifest outcomes.
const (
	// StatusMerged means every key was settled and the result written.
	StatusMerged Status = "merged"
	// StatusSkipped means the manifest was abandoned: a resolver asked to
	// skip it or a key had no valid resolution.
	StatusSkipped Status = "skipped"
	// StatusFailed means the manifest could not be read, parsed or written.
	StatusFailed Status = "failed"
	// StatusAborted means the whole run was stopped on this manifest.
	StatusAborted Status = "aborted"
)

// Decision is a per-key decision tagged with the entry kind.
type Decision struct {
	Kind           string `json:"kind" yaml:"kind"`
	merge.Decision `yaml:",inline"`
}

// Report describes how one manifest was merged.
type Report struct {
	Manifest  string        `json:"manifest" yaml:"manifest"`
	Status    Status        `json:"status" yaml:"status"`
	Reason    string        `json:"reason,omitempty" yaml:"reason,omitempty"`
	StartedAt utc.Time      `json:"startedAt" yaml:"startedAt"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	Decisions []Decision    `json:"decisions" yaml:"decisions"`
}

func newReport(name string) *Report {
	return &Report{
		Manifest:  name,
		StartedAt: utc.Now(),
	}
}

func (r *Report) finish(status Status, err error) {
	r.Status = status
	if err != nil {
		r.Reason = err.Error()
	}
	r.Duration = time.Since(r.StartedAt.Time)
}

// Summary counts the decisions of a report.
type Summary struct {
	Total     int `json:"total" yaml:"total"`
	Automatic int `json:"automatic" yaml:"automatic"`
	Escalated int `json:"escalated" yaml:"escalated"`
	Deleted   int `json:"deleted" yaml:"deleted"`
	Unchanged int `json:"unchanged" yaml:"unchanged"`
}

// Summary counts the report's decisions.
func (r *Report) Summary() Summary {
	var s Summary
	for _, d := range r.Decisions {
		s.Total++
		if d.Escalated {
			s.Escalated++
		} else {
			s.Automatic++
		}
		if d.Deleted {
			s.Deleted++
		}
		if d.Pattern.IsNoChanges() {
			s.Unchanged++
		}
	}
	return s
}

// BatchResult collects the reports of a run over several manifests.
type BatchResult struct {
	Reports []*Report `json:"reports" yaml:"reports"`
}

// Count returns how many manifests ended with status.
func (b *BatchResult) Count(status Status) int {
	n := 0
	for _, r := range b.Reports {
		if r.Status == status {
			n++
		}
	}
	return n
}
