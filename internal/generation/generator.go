// Package generation assembles cover-letter prompts and produces draft
// candidates through the LLM client.
package generation

import (
	"context"
	"fmt"

	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/llm"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/types"
)

// DefaultTemperature is the sampling temperature for letter drafts.
// Non-zero so repeated attempts can diverge.
const DefaultTemperature float32 = 0.7

// Generator produces cover-letter candidates.
type Generator struct {
	llm         llm.Client
	tier        llm.ModelTier
	temperature float32
}

// New creates a Generator on the advanced model tier with the default
// sampling temperature.
func New(client llm.Client) *Generator {
	return &Generator{
		llm:         client,
		tier:        llm.TierAdvanced,
		temperature: DefaultTemperature,
	}
}

// NewWithTier creates a Generator on a specific model tier.
func NewWithTier(client llm.Client, tier llm.ModelTier, temperature float32) *Generator {
	return &Generator{llm: client, tier: tier, temperature: temperature}
}

// Generate produces one letter draft. The feedback slice carries findings
// from the immediately preceding attempt; pass nil on the first attempt.
// Transport errors propagate unchanged so the caller can decide on retries.
// The returned candidate has no iteration number; the loop assigns it.
func (g *Generator) Generate(ctx context.Context, gctx *types.GenerationContext, feedback []string) (*types.Candidate, error) {
	prompt, err := buildPrompt(gctx, feedback)
	if err != nil {
		return nil, fmt.Errorf("failed to build generation prompt: %w", err)
	}

	text, err := g.llm.GenerateCreative(ctx, prompt, g.tier, g.temperature)
	if err != nil {
		return nil, &APICallError{Message: "letter generation failed", Cause: err}
	}

	return &types.Candidate{
		Text:  text,
		Model: g.llm.GetModel(g.tier),
	}, nil
}
