// Package diff computes line-based deltas between two text outputs.
package diff

import (
	"strings"

	"snapcheck/pkg/model"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Lines diffs baseline against candidate line by line and returns the
// report. Both inputs are treated as opaque text; a missing trailing
// newline still counts as a final line.
func Lines(baseline, candidate string) *model.DiffReport {
	report := &model.DiffReport{}
	if baseline == candidate {
		if baseline != "" {
			report.Changes = append(report.Changes, model.Change{
				Type:          model.ChangeEqual,
				Lines:         splitLines(baseline),
				BaselineLine:  1,
				CandidateLine: 1,
			})
		}
		return report
	}

	dmp := diffmatchpatch.New()
	c1, c2, lineArray := dmp.DiffLinesToChars(baseline, candidate)
	diffs := dmp.DiffMain(c1, c2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	baseLine, candLine := 1, 1
	for _, d := range diffs {
		lines := splitLines(d.Text)
		if len(lines) == 0 {
			continue
		}
		change := model.Change{
			Lines:         lines,
			BaselineLine:  baseLine,
			CandidateLine: candLine,
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			change.Type = model.ChangeEqual
			baseLine += len(lines)
			candLine += len(lines)
		case diffmatchpatch.DiffDelete:
			change.Type = model.ChangeDelete
			baseLine += len(lines)
		case diffmatchpatch.DiffInsert:
			change.Type = model.ChangeInsert
			candLine += len(lines)
		}
		report.Changes = append(report.Changes, change)
	}

	return report
}

// splitLines breaks diff text into its lines. The trailing newline of the
// last line is not a line of its own.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
