package types

// Candidate is one generated cover-letter draft. Candidates are immutable
// once produced; later iterations supersede earlier ones but never modify
// them.
type Candidate struct {
	Iteration int    `json:"iteration"` // 1-based
	Text      string `json:"text"`
	Model     string `json:"model"`
}
