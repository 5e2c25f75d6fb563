// Package judge scores generated cover letters with an LLM oracle and a set
// of deterministic heuristics layered on top.
package judge

import (
	"context"
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/llm"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/prompts"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/schemas"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/types"
)

//go:embed quality_scores.schema.json
var qualityScoresSchema string

// Sentinel content returned when the judge response cannot be parsed.
// The run continues with zero scores instead of failing.
const (
	ParseFailureIssue      = "Failed to parse AI judgment"
	ParseFailureSuggestion = "Retry generation"
)

// Judge evaluates letters against the user's reference style and the target
// company.
type Judge struct {
	llm  llm.Client
	tier llm.ModelTier
}

// New creates a Judge using the standard model tier.
func New(client llm.Client) *Judge {
	return &Judge{llm: client, tier: llm.TierStandard}
}

// NewWithTier creates a Judge using a specific model tier.
func NewWithTier(client llm.Client, tier llm.ModelTier) *Judge {
	return &Judge{llm: client, tier: tier}
}

// Evaluate scores a letter. A transport failure returns a non-nil error so
// the caller can retry. A response that cannot be parsed or fails the schema
// returns zero scores with a nil error; the letter simply scores 0 and the
// loop moves on.
func (j *Judge) Evaluate(ctx context.Context, letter string, gctx *types.GenerationContext) (*types.QualityScores, error) {
	prompt := prompts.Format(prompts.MustGet("judge.json", "evaluate"), map[string]string{
		"CoverLetter":    letter,
		"ReferenceStyle": referenceStyle(gctx),
		"CompanyValues":  strings.Join(gctx.Intel.Values, ", "),
		"JobDescription": gctx.Job.Description,
	})

	raw, err := j.llm.GenerateJSON(ctx, prompt, j.tier)
	if err != nil {
		return nil, &APICallError{Message: "quality evaluation failed", Cause: err}
	}

	scores := parseScores(raw)
	j.applyHeuristics(letter, gctx.Job.Company, scores)
	return scores, nil
}

// parseScores validates and decodes the raw judge response. Any failure
// yields the zero-score sentinel.
func parseScores(raw string) *types.QualityScores {
	if err := schemas.ValidateJSONString(qualityScoresSchema, raw); err != nil {
		return types.ZeroScores(ParseFailureIssue, ParseFailureSuggestion)
	}

	var scores types.QualityScores
	if err := json.Unmarshal([]byte(raw), &scores); err != nil {
		return types.ZeroScores(ParseFailureIssue, ParseFailureSuggestion)
	}
	return &scores
}

// applyHeuristics runs the deterministic checks and folds their findings
// into the score record.
func (j *Judge) applyHeuristics(letter, companyName string, scores *types.QualityScores) {
	specificity := EvaluateCompanySpecificity(letter, companyName)
	tone := EvaluateTone(letter)
	quote := EvaluateQuoteIntegration(letter)

	if specificity.Score < 7 {
		scores.Issues = append(scores.Issues, specificity.Note)
	}
	if tone.GenericOpening {
		scores.Suggestions = append(scores.Suggestions, "Avoid generic opening phrases. Start with quote or direct value connection.")
	}
	if quote.HasQuote && !quote.HasBridge {
		scores.Suggestions = append(scores.Suggestions, "Connect your quote more strongly to company values.")
	}

	scores.CompanySpecificity = specificity
	scores.ToneCheck = tone
	if quote.HasQuote {
		scores.QuoteIntegration = quote
	}
}

// referenceStyle renders the style target for the judge prompt. A verbatim
// exemplar letter wins over the structured profile.
func referenceStyle(gctx *types.GenerationContext) string {
	if gctx.StyleExemplar != "" {
		return gctx.StyleExemplar
	}
	data, err := json.Marshal(gctx.Style)
	if err != nil {
		return ""
	}
	return string(data)
}
