// Package table converts merge reports into rows for table output.
package table

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/agentstation/depmerge"
	"github.com/agentstation/depmerge/pkg/constants"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents data formatted for table output.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// DecisionsToTableData lists the per-key decisions of a report. Wide output
// adds the entry kind and the deletion flag.
func DecisionsToTableData(report *depmerge.Report, wide bool) Data {
	headers := []string{"Key", "Pattern", "Source", "Resolution"}
	if wide {
		headers = append([]string{"Kind"}, headers...)
		headers = append(headers, "Deleted")
	}

	rows := make([][]string, 0, len(report.Decisions))
	for _, d := range report.Decisions {
		resolution := "auto"
		if d.Escalated {
			resolution = "escalated"
		}
		row := []string{d.Key, d.Pattern.String(), d.Source.String(), resolution}
		if wide {
			row = append([]string{d.Kind}, row...)
			row = append(row, strconv.FormatBool(d.Deleted))
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows}
}

// ReportsToTableData summarizes one row per manifest.
func ReportsToTableData(reports []*depmerge.Report, wide bool) Data {
	headers := []string{"Manifest", "Status", "Keys", "Auto", "Escalated", "Deleted"}
	align := []Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight}
	if wide {
		headers = append(headers, "Started", "Duration", "Reason")
		align = append(align, AlignLeft, AlignRight, AlignLeft)
	}

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		s := r.Summary()
		row := []string{
			r.Manifest,
			string(r.Status),
			strconv.Itoa(s.Total),
			strconv.Itoa(s.Automatic),
			strconv.Itoa(s.Escalated),
			strconv.Itoa(s.Deleted),
		}
		if wide {
			reason := r.Reason
			if reason == "" {
				reason = "-"
			}
			row = append(row,
				r.StartedAt.Time.Format(constants.TimeFormatReport),
				FormatDuration(r.Duration),
				reason)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// FormatDuration renders d rounded to a readable precision.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.Round(10 * time.Millisecond).String()
	}
}

// Reports renders a run summary, one row per manifest.
type Reports []*depmerge.Report

// TableData implements the output table layout.
func (r Reports) TableData(wide bool) Data {
	return ReportsToTableData(r, wide)
}

// Decisions renders the per-key decisions of one manifest.
type Decisions struct {
	*depmerge.Report
}

// TableData implements the output table layout.
func (d Decisions) TableData(wide bool) Data {
	return DecisionsToTableData(d.Report, wide)
}

// MarshalJSON keeps the structured formats identical to the report itself.
func (d Decisions) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Report)
}

// MarshalYAML keeps the structured formats identical to the report itself.
func (d Decisions) MarshalYAML() (any, error) {
	return d.Report, nil
}
