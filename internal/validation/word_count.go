package validation

import (
	"fmt"
	"strings"
)

// CountWords counts whitespace-separated tokens in the letter.
// An empty or all-whitespace letter counts as zero words.
func CountWords(letter string) int {
	return len(strings.Fields(letter))
}

// CheckWordCount validates the letter length against the hard and ideal
// word-count bounds. The hard bounds produce errors, the ideal range a
// warning.
func CheckWordCount(letter string) (wordCount int, errors, warnings []string) {
	wordCount = CountWords(letter)

	switch {
	case wordCount < MinWords:
		errors = append(errors, fmt.Sprintf("Word count too low: %d words (minimum: %d)", wordCount, MinWords))
	case wordCount > MaxWords:
		errors = append(errors, fmt.Sprintf("Word count too high: %d words (maximum: %d)", wordCount, MaxWords))
	case wordCount < IdealMinWords || wordCount > IdealMaxWords:
		warnings = append(warnings, fmt.Sprintf("Word count outside ideal range: %d words (ideal: %d-%d)", wordCount, IdealMinWords, IdealMaxWords))
	}

	return wordCount, errors, warnings
}
