package model

import "strings"

type ChangeType string

const (
	ChangeEqual  ChangeType = "equal"
	ChangeDelete ChangeType = "delete"
	ChangeInsert ChangeType = "insert"
)

// Change is one run of consecutive lines sharing a change type.
// BaselineLine and CandidateLine are the 1-based positions where the run
// starts in each file; a delete run has no candidate position of its own
// and vice versa, those fields then point at the next line in that file.
type Change struct {
	Type          ChangeType `json:"type"`
	Lines         []string   `json:"lines"`
	BaselineLine  int        `json:"baseline_line"`
	CandidateLine int        `json:"candidate_line"`
}

// DiffReport is the ordered line-based delta between a baseline and a
// candidate output. Equal runs are retained so the report can render with
// context.
type DiffReport struct {
	Changes []Change `json:"changes"`
}

// Empty reports whether baseline and candidate are identical.
func (r *DiffReport) Empty() bool {
	for _, c := range r.Changes {
		if c.Type != ChangeEqual {
			return false
		}
	}
	return true
}

// Render formats the report as prefixed lines: "- " for baseline-only
// lines, "+ " for candidate-only lines, two spaces for unchanged lines.
// An empty report renders as the empty string.
func (r *DiffReport) Render() string {
	if r.Empty() {
		return ""
	}
	var sb strings.Builder
	for _, c := range r.Changes {
		prefix := "  "
		switch c.Type {
		case ChangeDelete:
			prefix = "- "
		case ChangeInsert:
			prefix = "+ "
		}
		for _, line := range c.Lines {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Stats returns the number of deleted and inserted lines.
func (r *DiffReport) Stats() (deleted, inserted int) {
	for _, c := range r.Changes {
		switch c.Type {
		case ChangeDelete:
			deleted += len(c.Lines)
		case ChangeInsert:
			inserted += len(c.Lines)
		}
	}
	return deleted, inserted
}
