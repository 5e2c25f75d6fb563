package types

// QualityScores is the structured verdict of the LLM quality judge. Each
// sub-score is in [0,10]; OverallScore is computed by the judge itself, not
// by the caller. The three optional blocks are deterministic heuristics the
// judge layers on top of the LLM verdict.
type QualityScores struct {
	Naturalness      float64  `json:"naturalness_score"`
	StyleMatch       float64  `json:"style_match_score"`
	CompanyRelevance float64  `json:"company_relevance_score"`
	Individuality    float64  `json:"individuality_score"`
	OverallScore     float64  `json:"overall_score"`
	Issues           []string `json:"issues"`
	Suggestions      []string `json:"suggestions"`

	CompanySpecificity *CompanySpecificity `json:"company_specificity,omitempty"`
	ToneCheck          *ToneCheck          `json:"tone_check,omitempty"`
	QuoteIntegration   *QuoteIntegration   `json:"quote_integration,omitempty"`
}

// CompanySpecificity reports how tailored the letter is to the target
// company, computed without an LLM call.
type CompanySpecificity struct {
	CompanyNameCount  int    `json:"company_name_count"`
	HasSpecificValues bool   `json:"has_specific_values"`
	HasLocation       bool   `json:"has_location"`
	HasProject        bool   `json:"has_specific_project"`
	Score             int    `json:"specificity_score"` // 1-10
	Note              string `json:"specificity_note"`
}

// ToneCheck reports on the authenticity of the letter's opening and closing.
type ToneCheck struct {
	OpeningScore        int    `json:"opening_score"` // 1-10
	ClosingScore        int    `json:"closing_score"` // 1-10
	GenericOpening      bool   `json:"is_generic_opening"`
	EnthusiasticClosing bool   `json:"is_overly_enthusiastic_closing"`
	Note                string `json:"tone_note"`
}

// QuoteIntegration reports whether and how well a company quote was woven
// into the letter.
type QuoteIntegration struct {
	HasQuote  bool   `json:"has_quote"`
	Source    string `json:"quote_source,omitempty"`
	Relevance int    `json:"quote_relevance"` // 1-10
	HasBridge bool   `json:"quote_bridge"`
	Note      string `json:"quote_quality_note"`
}

// ZeroScores returns an all-zero score record carrying a single explanatory
// issue. Used when the judge is skipped or its response cannot be parsed.
func ZeroScores(issue string, suggestions ...string) *QualityScores {
	return &QualityScores{
		Issues:      []string{issue},
		Suggestions: suggestions,
	}
}
