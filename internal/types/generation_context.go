// Package types defines the shared data structures passed between the
// cover-letter generation pipeline stages.
package types

// JobPosting holds the job fields the generator and judge consume.
type JobPosting struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements,omitempty"`
}

// CVSummary is the condensed view of the user's CV used for prompt assembly.
type CVSummary struct {
	Skills          string   `json:"skills,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
	Highlights      []string `json:"highlights,omitempty"`
}

// StyleProfile captures the structured writing-style signals extracted from
// the user's own cover letters.
type StyleProfile struct {
	Tone           string   `json:"tone"`
	SentenceLength string   `json:"sentence_length"`
	Connectives    []string `json:"connectives,omitempty"`
	Salutation     string   `json:"salutation,omitempty"`
}

// Quote is an optional company quote suggested by research for the opening.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
}

// CompanyIntel is the optional company-intelligence block assembled from
// research. A zero value means no research was available; the pipeline runs
// without it.
type CompanyIntel struct {
	Values    []string `json:"values,omitempty"`
	News      []string `json:"news,omitempty"`
	TechStack []string `json:"tech_stack,omitempty"`
	Quote     *Quote   `json:"quote,omitempty"`
}

// HasContent reports whether any intelligence was collected.
func (c *CompanyIntel) HasContent() bool {
	if c == nil {
		return false
	}
	return len(c.Values) > 0 || len(c.News) > 0 || len(c.TechStack) > 0 || c.Quote != nil
}

// GenerationContext is the immutable snapshot assembled once per run by the
// context fetcher. All loop iterations read from the same context; nothing
// mutates it after assembly.
type GenerationContext struct {
	UserID         string       `json:"user_id"`
	Job            JobPosting   `json:"job"`
	CV             CVSummary    `json:"cv"`
	WritingSamples []string     `json:"writing_samples,omitempty"`
	StyleExemplar  string       `json:"style_exemplar,omitempty"`
	Style          StyleProfile `json:"style"`
	Intel          CompanyIntel `json:"intel,omitempty"`
}
