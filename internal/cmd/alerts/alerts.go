// Package alerts prints short status notices for people at a terminal,
// such as the outcome of a batch run.
package alerts

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/agentstation/depmerge"
)

// Alert represents a status notification.
type Alert struct {
	Level   Level
	Message string
	Details []string
	Err     error
}

// New creates a new alert with the given level and message.
func New(level Level, message string) *Alert {
	return &Alert{Level: level, Message: message}
}

// WithError adds an underlying error to the alert.
func (a *Alert) WithError(err error) *Alert {
	a.Err = err
	return a
}

// WithDetails adds additional context details to the alert.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

// String returns a string representation of the alert.
func (a *Alert) String() string {
	message := fmt.Sprintf("%s %s", a.Level.Icon(), a.Message)
	if a.Err != nil {
		message += fmt.Sprintf(": %v", a.Err)
	}
	return message
}

// Writer prints alerts, colored when the destination is a terminal.
type Writer struct {
	w     io.Writer
	color bool
}

// NewWriter returns a Writer for w. noColor disables color even on a
// terminal.
func NewWriter(w io.Writer, noColor bool) *Writer {
	return &Writer{w: w, color: !noColor && isTerminal(w)}
}

// Write prints the alert and its details.
func (w *Writer) Write(a *Alert) error {
	line := a.String()
	if w.color {
		line = a.Level.Color() + line + resetColor
	}
	if _, err := fmt.Fprintln(w.w, line); err != nil {
		return err
	}
	for _, detail := range a.Details {
		if _, err := fmt.Fprintf(w.w, "   %s\n", detail); err != nil {
			return err
		}
	}
	return nil
}

// ForBatch summarizes a batch run. Manifests that were not merged are
// listed as details.
func ForBatch(result *depmerge.BatchResult) *Alert {
	total := len(result.Reports)
	merged := result.Count(depmerge.StatusMerged)

	level := LevelSuccess
	switch {
	case result.Count(depmerge.StatusAborted) > 0 || result.Count(depmerge.StatusFailed) > 0:
		level = LevelError
	case merged < total:
		level = LevelWarning
	}

	a := New(level, fmt.Sprintf("%d of %d manifests merged", merged, total))
	for _, r := range result.Reports {
		if r.Status != depmerge.StatusMerged {
			a.WithDetails(fmt.Sprintf("%s: %s", r.Manifest, r.Status))
		}
	}
	return a
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
