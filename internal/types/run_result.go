package types

// IterationRecord joins the candidate of one iteration with its validation
// and judge outcomes. Records are appended to the run log in strictly
// increasing iteration order and never modified afterwards.
type IterationRecord struct {
	Iteration  int              `json:"iteration"`
	Candidate  Candidate        `json:"candidate"`
	Validation ValidationResult `json:"validation"`
	Scores     QualityScores    `json:"scores"`
}

// RunResult is the final output of one quality-loop run. Degraded is set
// when no iteration produced a valid letter and the last candidate was
// returned as a fallback.
type RunResult struct {
	Text         string            `json:"text"`
	Scores       QualityScores     `json:"scores"`
	Validation   ValidationResult  `json:"validation"`
	Iterations   int               `json:"iterations"`
	IterationLog []IterationRecord `json:"iteration_log"`
	Degraded     bool              `json:"degraded,omitempty"`
}
