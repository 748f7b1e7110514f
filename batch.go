package depmerge

import (
	"context"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/depmerge/pkg/errors"
	"github.com/agentstation/depmerge/pkg/manifest"
)

// Job names the files of one manifest merge. Output defaults to Local, which
// is what a git merge driver expects.
type Job struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Base     string `json:"base" yaml:"base"`
	Local    string `json:"local" yaml:"local"`
	Incoming string `json:"incoming" yaml:"incoming"`
	Output   string `json:"output,omitempty" yaml:"output,omitempty"`
}

// Validate checks that the job names its sides.
func (j Job) Validate() error {
	if j.Local == "" {
		return errors.NewValidationError("local", j.Local, "local manifest path is required")
	}
	if j.Incoming == "" {
		return errors.NewValidationError("incoming", j.Incoming, "incoming manifest path is required")
	}
	return nil
}

func (j Job) name() string {
	if j.Name != "" {
		return j.Name
	}
	return j.Local
}

func (j Job) output() string {
	if j.Output != "" {
		return j.Output
	}
	return j.Local
}

// jobFile is the layout of a batch file.
type jobFile struct {
	Jobs []Job `yaml:"jobs"`
}

// LoadJobs reads a batch file. Relative paths are taken relative to the
// file's directory.
func LoadJobs(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var f jobFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	dir := filepath.Dir(path)
	rel := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	for i := range f.Jobs {
		j := &f.Jobs[i]
		if err := j.Validate(); err != nil {
			return nil, errors.WrapValidation("jobs", err)
		}
		j.Base, j.Local, j.Incoming, j.Output = rel(j.Base), rel(j.Local), rel(j.Incoming), rel(j.Output)
	}
	return f.Jobs, nil
}

// MergeFiles loads the three revisions named by job, merges them and writes
// the result. A missing base or incoming file is an empty revision.
func (m *Merger) MergeFiles(ctx context.Context, job Job) (*Report, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	fail := func(err error) (*Report, error) {
		report := newReport(job.name())
		report.finish(StatusFailed, err)
		m.hooks.report(report)
		return report, err
	}

	base := &manifest.Snapshot{}
	if job.Base != "" {
		var err error
		if base, err = manifest.Load(job.Base); err != nil {
			return fail(err)
		}
	}
	local, err := manifest.Load(job.Local)
	if err != nil {
		return fail(err)
	}
	incoming, err := manifest.Load(job.Incoming)
	if err != nil {
		return fail(err)
	}

	merged, report, err := m.MergeSnapshots(ctx, job.name(), base, local, incoming)
	if err != nil {
		return report, err
	}

	if err := manifest.Save(job.output(), merged); err != nil {
		report.Status = StatusFailed
		report.Reason = err.Error()
		return report, err
	}
	return report, nil
}

// Run merges every job in order. A job that is skipped or fails is recorded
// and the run moves on; an AbortRun signal or a cancelled context stops the
// run and is returned along with the reports gathered so far.
func (m *Merger) Run(ctx context.Context, jobs []Job) (*BatchResult, error) {
	result := &BatchResult{}
	log := m.options.logger

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		report, err := m.MergeFiles(ctx, job)
		if report == nil {
			// invalid job, nothing was attempted
			report = newReport(job.name())
			report.finish(StatusFailed, err)
		}
		result.Reports = append(result.Reports, report)

		switch {
		case err == nil:
			log.Info().Str("manifest", report.Manifest).Msg("Merged")
		case errors.IsAbortRun(err):
			log.Warn().Str("manifest", report.Manifest).Err(err).Msg("Run aborted")
			return result, err
		case errors.IsAbortFile(err), errors.IsInvalidResolution(err):
			log.Warn().Str("manifest", report.Manifest).Err(err).Msg("Skipped")
		default:
			log.Error().Str("manifest", report.Manifest).Err(err).Msg("Failed")
		}
	}

	return result, nil
}
