// Package validation provides deterministic quality checks for generated
// cover letters. All checks are pure text functions; the same letter and
// company name always produce the same result.
package validation

import (
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/types"
)

// Word count thresholds
const (
	MinWords      = 200
	MaxWords      = 400
	IdealMinWords = 250
	IdealMaxWords = 350
)

// Paragraph thresholds
const (
	MinParagraphs       = 2
	MaxIdealParagraphs  = 5
	ShortParagraphWords = 20
)

// ValidateLetter runs all hard checks on a generated letter.
// Errors make the letter invalid; warnings are advisory only.
// Invariant: result.IsValid == (len(result.Errors) == 0).
func ValidateLetter(letter, companyName string) *types.ValidationResult {
	var errors []string
	var warnings []string

	// 1. Word count
	wordCount, wcErrors, wcWarnings := CheckWordCount(letter)
	errors = append(errors, wcErrors...)
	warnings = append(warnings, wcWarnings...)

	// 2. Company name mentions
	mentions, cmErrors, cmWarnings := CheckCompanyMentions(letter, companyName)
	errors = append(errors, cmErrors...)
	warnings = append(warnings, cmWarnings...)

	// 3. Forbidden phrases
	fpErrors, forbiddenCount := CheckForbiddenPhrases(letter, DefaultForbiddenPhrases())
	errors = append(errors, fpErrors...)

	// 4. Paragraph structure
	paragraphCount, stErrors, stWarnings := CheckStructure(letter)
	errors = append(errors, stErrors...)
	warnings = append(warnings, stWarnings...)

	return &types.ValidationResult{
		IsValid:  len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
		Stats: types.ValidationStats{
			WordCount:            wordCount,
			ParagraphCount:       paragraphCount,
			KeyEntityMentions:    mentions,
			ForbiddenPhraseCount: forbiddenCount,
		},
	}
}
