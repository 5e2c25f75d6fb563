package types

// ValidationStats holds the counters gathered while validating a letter.
type ValidationStats struct {
	WordCount            int `json:"word_count"`
	ParagraphCount       int `json:"paragraph_count"`
	KeyEntityMentions    int `json:"key_entity_mentions"`
	ForbiddenPhraseCount int `json:"forbidden_phrase_count"`
}

// ValidationResult is the outcome of the deterministic letter checks.
// Invariant: IsValid == (len(Errors) == 0).
type ValidationResult struct {
	IsValid  bool            `json:"is_valid"`
	Errors   []string        `json:"errors"`
	Warnings []string        `json:"warnings"`
	Stats    ValidationStats `json:"stats"`
}
