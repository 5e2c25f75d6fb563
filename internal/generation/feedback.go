package generation

import (
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/types"
)

// MaxFeedbackItems bounds the feedback block injected into the next
// attempt. A short list keeps the model focused on the worst problems.
const MaxFeedbackItems = 3

// Feedback prefixes distinguish hard failures from advisories in the
// injected block.
const (
	ValidationErrorPrefix = "VALIDATION ERROR: "
	WarningPrefix         = "WARNING: "
)

// BuildFeedback turns the previous iteration's findings into instructions
// for the next attempt. Validation errors come first, then warnings, then
// judge suggestions, truncated to MaxFeedbackItems. Only the immediately
// preceding iteration feeds in; older findings are dropped on purpose so
// stale advice cannot accumulate.
func BuildFeedback(validation *types.ValidationResult, scores *types.QualityScores) []string {
	var feedback []string

	if validation != nil {
		if !validation.IsValid {
			for _, e := range validation.Errors {
				feedback = append(feedback, ValidationErrorPrefix+e)
			}
		}
		for _, w := range validation.Warnings {
			feedback = append(feedback, WarningPrefix+w)
		}
	}

	if scores != nil && scores.OverallScore > 0 {
		feedback = append(feedback, scores.Suggestions...)
	}

	if len(feedback) > MaxFeedbackItems {
		feedback = feedback[:MaxFeedbackItems]
	}
	return feedback
}
