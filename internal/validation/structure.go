package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var paragraphSep = regexp.MustCompile(`\n{2,}`)

// SplitParagraphs splits the letter on blank lines and drops empty chunks.
func SplitParagraphs(letter string) []string {
	var paragraphs []string
	for _, p := range paragraphSep.Split(letter, -1) {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// CheckStructure validates the paragraph layout of the letter. Too few
// paragraphs is an error; too many, or several very short ones, are
// warnings.
func CheckStructure(letter string) (paragraphCount int, errors, warnings []string) {
	paragraphs := SplitParagraphs(letter)
	paragraphCount = len(paragraphs)

	if paragraphCount < MinParagraphs {
		errors = append(errors, fmt.Sprintf("Too few paragraphs: %d (minimum: %d)", paragraphCount, MinParagraphs))
	} else if paragraphCount > MaxIdealParagraphs {
		warnings = append(warnings, fmt.Sprintf("Many paragraphs: %d (ideal: 3-4)", paragraphCount))
	}

	short := 0
	for _, p := range paragraphs {
		if len(strings.Fields(p)) < ShortParagraphWords {
			short++
		}
	}
	if short > 1 {
		warnings = append(warnings, fmt.Sprintf("%d paragraphs are very short (< %d words)", short, ShortParagraphWords))
	}

	return paragraphCount, errors, warnings
}
