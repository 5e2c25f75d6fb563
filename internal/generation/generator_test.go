package generation

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
			ID:           "job-1",
			Title:        "Backend Engineer",
			Company:      "Acme",
			Description:  "Go services at scale",
			Requirements: []string{"Go", "PostgreSQL"},
		},
		CV: types.CVSummary{
			Skills:          "Go, Kubernetes",
			ExperienceYears: 6,
		},
		Style: types.StyleProfile{
			Tone:           "professional",
			SentenceLength: "medium",
			Connectives:    []string{"Daher", "Zudem"},
			Salutation:     "Sehr geehrte Damen und Herren",
		},
		Intel: types.CompanyIntel{
			Values: []string{"Ownership"},
			Quote:  &types.Quote{Text: "Wir bauen für Menschen", Author: "Maria Schmidt"},
		},
	}
}

func TestGenerate_Success(t *testing.T) {
	var capturedTemp float32
	mockClient := &MockLLMClient{
		GenerateCreativeFunc: func(_ context.Context, _ string, _ llm.ModelTier, temp float32) (string, error) {
			capturedTemp = temp
			return "Sehr geehrte Damen und Herren, ...", nil
		},
		GetModelFunc: func(_ llm.ModelTier) string { return "gemini-2.5-pro" },
	}

	g := New(mockClient)
	candidate, err := g.Generate(context.Background(), testContext(), nil)

	require.NoError(t, err)
	assert.Equal(t, "Sehr geehrte Damen und Herren, ...", candidate.Text)
	assert.Equal(t, "gemini-2.5-pro", candidate.Model)
	assert.Equal(t, DefaultTemperature, capturedTemp)
}

func TestGenerate_PromptContainsContext(t *testing.T) {
	var capturedPrompt string
	mockClient := &MockLLMClient{
		GenerateCreativeFunc: func(_ context.Context, prompt string, _ llm.ModelTier, _ float32) (string, error) {
			capturedPrompt = prompt
			return "Brief", nil
		},
	}

	g := New(mockClient)
	_, err := g.Generate(context.Background(), testContext(), nil)

	require.NoError(t, err)
	assert.Contains(t, capturedPrompt, "Backend Engineer")
	assert.Contains(t, capturedPrompt, "Acme")
	assert.Contains(t, capturedPrompt, "Go, Kubernetes")
	assert.Contains(t, capturedPrompt, "- Go\n- PostgreSQL")
	assert.Contains(t, capturedPrompt, "Sehr geehrte Damen und Herren")
	assert.Contains(t, capturedPrompt, `"Wir bauen für Menschen" - Maria Schmidt`)
	assert.Contains(t, capturedPrompt, "PREVIOUS FEEDBACK TO ADDRESS:\n(none)")
}

func TestGenerate_FeedbackInjected(t *testing.T) {
	var capturedPrompt string
	mockClient := &MockLLMClient{
		GenerateCreativeFunc: func(_ context.Context, prompt string, _ llm.ModelTier, _ float32) (string, error) {
			capturedPrompt = prompt
			return "Brief", nil
		},
	}

	feedback := []string{
		"VALIDATION ERROR: Word count too low: 150 words (minimum: 200)",
		"WARNING: Company name only mentioned once (recommend: 2-3 times)",
	}

	g := New(mockClient)
	_, err := g.Generate(context.Background(), testContext(), feedback)

	require.NoError(t, err)
	assert.Contains(t, capturedPrompt, "VALIDATION ERROR: Word count too low")
	assert.Contains(t, capturedPrompt, "WARNING: Company name only mentioned once")
}

func TestGenerate_TransportError(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateCreativeFunc: func(_ context.Context, _ string, _ llm.ModelTier, _ float32) (string, error) {
			return "", errors.New("tls handshake timeout")
		},
	}

	g := New(mockClient)
	candidate, err := g.Generate(context.Background(), testContext(), nil)

	require.Error(t, err)
	assert.Nil(t, candidate)

	var apiErr *APICallError
	require.True(t, errors.As(err, &apiErr))
}

func TestGenerate_MissingIntelRendersPlaceholder(t *testing.T) {
	var capturedPrompt string
	mockClient := &MockLLMClient{
		GenerateCreativeFunc: func(_ context.Context, prompt string, _ llm.ModelTier, _ float32) (string, error) {
			capturedPrompt = prompt
			return "Brief", nil
		},
	}

	gctx := testContext()
	gctx.Intel = types.CompanyIntel{}

	g := New(mockClient)
	_, err := g.Generate(context.Background(), gctx, nil)

	require.NoError(t, err)
	assert.Contains(t, capturedPrompt, "COMPANY INTEL:\n(none)")
	assert.Contains(t, capturedPrompt, "INCORPORATE QUOTE:\n(none)")
}
