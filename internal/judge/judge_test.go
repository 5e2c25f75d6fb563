package judge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/llm"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/types"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateContentFunc  func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GenerateCreativeFunc func(ctx context.Context, prompt string, tier llm.ModelTier, temperature float32) (string, error)
	GenerateJSONFunc     func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GetModelFunc         func(tier llm.ModelTier) string
	CloseFunc            func() error
}

func (m *MockLLMClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt, tier)
	}
	return "", nil
}

func (m *MockLLMClient) GenerateCreative(ctx context.Context, prompt string, tier llm.ModelTier, temperature float32) (string, error) {
	if m.GenerateCreativeFunc != nil {
		return m.GenerateCreativeFunc(ctx, prompt, tier, temperature)
	}
	return "", nil
}

func (m *MockLLMClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt, tier)
	}
	return "{}", nil
}

func (m *MockLLMClient) GetModel(tier llm.ModelTier) string {
	if m.GetModelFunc != nil {
		return m.GetModelFunc(tier)
	}
	return "mock-model"
}

func (m *MockLLMClient) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

func testContext() *types.GenerationContext {
	return &types.GenerationContext{
		UserID: "user-1",
		Job: types.JobPosting{
			ID:          "job-1",
			Title:       "Backend Engineer",
			Company:     "Acme",
			Description: "Go services at scale",
		},
		Style: types.StyleProfile{
			Tone:           "professional",
			SentenceLength: "medium",
		},
		Intel: types.CompanyIntel{
			Values: []string{"Ownership", "Craft"},
		},
	}
}

const validJudgeResponse = `{
	"naturalness_score": 8,
	"style_match_score": 7,
	"company_relevance_score": 9,
	"individuality_score": 8,
	"overall_score": 8,
	"issues": ["Only 1 sentence starts with conjunction (need 3+)"],
	"suggestions": ["Start more sentences with Daher/Deshalb"]
}`

func TestEvaluate_Success(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return validJudgeResponse, nil
		},
	}

	j := New(mockClient)
	scores, err := j.Evaluate(context.Background(), "Acme ist toll. Acme eben.", testContext())

	require.NoError(t, err)
	assert.Equal(t, 8.0, scores.Naturalness)
	assert.Equal(t, 7.0, scores.StyleMatch)
	assert.Equal(t, 9.0, scores.CompanyRelevance)
	assert.Equal(t, 8.0, scores.Individuality)
	assert.Equal(t, 8.0, scores.OverallScore)
	assert.Contains(t, scores.Issues, "Only 1 sentence starts with conjunction (need 3+)")
}

func TestEvaluate_AttachesHeuristics(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return validJudgeResponse, nil
		},
	}

	j := New(mockClient)
	scores, err := j.Evaluate(context.Background(), "Acme ist toll. Acme eben.", testContext())

	require.NoError(t, err)
	require.NotNil(t, scores.CompanySpecificity)
	require.NotNil(t, scores.ToneCheck)
	assert.Equal(t, 2, scores.CompanySpecificity.CompanyNameCount)
	assert.Nil(t, scores.QuoteIntegration) // no quote in the letter
}

func TestEvaluate_ParseFailure_ReturnsZeroScores(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "I am not JSON at all", nil
		},
	}

	j := New(mockClient)
	scores, err := j.Evaluate(context.Background(), "ein Brief", testContext())

	require.NoError(t, err)
	assert.Equal(t, 0.0, scores.OverallScore)
	assert.Equal(t, 0.0, scores.Naturalness)
	assert.Contains(t, scores.Issues, ParseFailureIssue)
	assert.Contains(t, scores.Suggestions, ParseFailureSuggestion)
}

func TestEvaluate_SchemaViolation_ReturnsZeroScores(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			// overall_score above the allowed range
			return `{"naturalness_score": 8, "style_match_score": 7, "company_relevance_score": 9, "individuality_score": 8, "overall_score": 15}`, nil
		},
	}

	j := New(mockClient)
	scores, err := j.Evaluate(context.Background(), "ein Brief", testContext())

	require.NoError(t, err)
	assert.Equal(t, 0.0, scores.OverallScore)
	assert.Contains(t, scores.Issues, ParseFailureIssue)
}

func TestEvaluate_TransportError(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "", errors.New("connection reset by peer")
		},
	}

	j := New(mockClient)
	scores, err := j.Evaluate(context.Background(), "ein Brief", testContext())

	require.Error(t, err)
	assert.Nil(t, scores)

	var apiErr *APICallError
	require.True(t, errors.As(err, &apiErr))
	assert.Contains(t, apiErr.Error(), "quality evaluation failed")
}

func TestEvaluate_PromptContainsContext(t *testing.T) {
	var capturedPrompt string
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
			capturedPrompt = prompt
			return validJudgeResponse, nil
		},
	}

	j := New(mockClient)
	_, err := j.Evaluate(context.Background(), "der Brieftext", testContext())

	require.NoError(t, err)
	assert.Contains(t, capturedPrompt, "der Brieftext")
	assert.Contains(t, capturedPrompt, "Ownership, Craft")
	assert.Contains(t, capturedPrompt, "Go services at scale")
}
