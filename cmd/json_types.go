package cmd

// reportForJSON is the machine-readable view of a diff report. Equal runs
// are omitted; only actual changes are listed.
type reportForJSON struct {
	Target  string          `json:"target"`
	Changed bool            `json:"changed"`
	Changes []changeForJSON `json:"changes"`
}

type changeForJSON struct {
	Type          string   `json:"type"`
	BaselineLine  int      `json:"baseline_line"`
	CandidateLine int      `json:"candidate_line"`
	Lines         []string `json:"lines"`
}

// targetForJSON is the machine-readable view of a configured target with
// its resolved artifact paths.
type targetForJSON struct {
	Name      string   `json:"name"`
	Command   string   `json:"command"`
	Args      []string `json:"args,omitempty"`
	Baseline  string   `json:"baseline"`
	Candidate string   `json:"candidate"`
	Diff      string   `json:"diff"`
}
