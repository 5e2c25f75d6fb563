package research

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/fetch"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/llm"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/prompts"
)

// minPageTextLength is the minimum extracted text length worth sending to
// the extraction model.
const minPageTextLength = 100

// maxPageTextLength caps the page text included in the extraction prompt.
const maxPageTextLength = 8000

// Store caches enrichment results. Freshness policy (7 days) lives in the
// store implementation.
type Store interface {
	// GetFreshCompanyResearch returns a cached record or (nil, nil) on miss.
	GetFreshCompanyResearch(ctx context.Context, companySlug string) (*EnrichmentResult, error)
	// SaveCompanyResearch persists a record and returns its id.
	SaveCompanyResearch(ctx context.Context, result *EnrichmentResult) (string, error)
}

// Enricher collects public company intelligence. Only company-level data is
// gathered, never employee data.
type Enricher struct {
	llm   llm.Client
	store Store
}

// NewEnricher creates an Enricher. store may be nil to disable caching.
func NewEnricher(client llm.Client, store Store) *Enricher {
	return &Enricher{llm: client, store: store}
}

// Enrich returns intelligence for a company, from cache when fresh. When
// websiteURL is set the company page is fetched and mined; otherwise the
// model is queried directly. Failures degrade to an empty, zero-confidence
// result rather than an error: letters can always be generated without
// intelligence.
func (e *Enricher) Enrich(ctx context.Context, companySlug, companyName, websiteURL string) *EnrichmentResult {
	if e.store != nil {
		cached, err := e.store.GetFreshCompanyResearch(ctx, companySlug)
		if err != nil {
			fmt.Printf("Warning: research cache lookup failed for %s: %v\n", companySlug, err)
		} else if cached != nil {
			fmt.Printf("✅ Research cache HIT: %s\n", companySlug)
			return cached
		} else {
			fmt.Printf("❌ Research cache MISS: %s\n", companySlug)
		}
	}

	result := e.fetchIntel(ctx, companySlug, companyName, websiteURL)

	if e.store != nil && result.Confidence > 0 {
		id, err := e.store.SaveCompanyResearch(ctx, result)
		if err != nil {
			fmt.Printf("Warning: failed to cache research for %s: %v\n", companySlug, err)
		} else {
			result.ID = id
		}
	}

	return result
}

// fetchIntel gathers fresh intelligence from the company page or, lacking
// one, from the model's own knowledge.
func (e *Enricher) fetchIntel(ctx context.Context, companySlug, companyName, websiteURL string) *EnrichmentResult {
	empty := &EnrichmentResult{
		CompanySlug: companySlug,
		CompanyName: companyName,
	}

	prompt, ok := e.buildIntelPrompt(ctx, companyName, websiteURL)
	if !ok {
		return empty
	}

	raw, err := e.llm.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		fmt.Printf("❌ Enrichment failed for %s: %v\n", companySlug, err)
		return empty
	}

	var payload struct {
		Values    []string `json:"values"`
		News      []string `json:"news"`
		TechStack []string `json:"tech_stack"`
		Quote     *struct {
			Text   string `json:"text"`
			Author string `json:"author"`
		} `json:"quote"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &payload); err != nil {
		fmt.Printf("❌ Failed to parse enrichment response for %s: %v\n", companySlug, err)
		return empty
	}

	result := &EnrichmentResult{
		CompanySlug: companySlug,
		CompanyName: companyName,
		Values:      payload.Values,
		News:        payload.News,
		TechStack:   payload.TechStack,
	}
	if payload.Quote != nil {
		result.QuoteText = strings.TrimSpace(payload.Quote.Text)
		result.QuoteAuthor = strings.TrimSpace(payload.Quote.Author)
	}
	result.Confidence = confidence(result)
	return result
}

// buildIntelPrompt prefers mining the real company page; the direct
// knowledge query is the fallback.
func (e *Enricher) buildIntelPrompt(ctx context.Context, companyName, websiteURL string) (string, bool) {
	if websiteURL != "" {
		pageText := fetchPageText(ctx, websiteURL)
		if len(pageText) >= minPageTextLength {
			if len(pageText) > maxPageTextLength {
				pageText = truncateAtRune(pageText, maxPageTextLength) + "..."
			}
			return llm.BuildExtractionPrompt(llm.CompanyIntelSchema(), pageText), true
		}
	}

	template, err := prompts.Get("research.json", "company-intel")
	if err != nil {
		return "", false
	}
	return prompts.Format(template, map[string]string{"Company": companyName}), true
}

// fetchPageText retrieves and extracts the main text of a company page.
// Any failure returns an empty string; enrichment continues without it.
func fetchPageText(ctx context.Context, pageURL string) string {
	result, err := fetch.URL(ctx, pageURL, nil)
	if err != nil {
		fmt.Printf("Warning: failed to fetch company page %s: %v\n", pageURL, err)
		return ""
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.CompanyPageSelectors())
	if err != nil {
		fmt.Printf("Warning: failed to extract company page text: %v\n", err)
		return ""
	}
	return text
}

// truncateAtRune cuts s to at most max bytes without splitting a UTF-8
// rune. German page text is full of multi-byte characters; a byte-index
// cut would leave an invalid sequence at the boundary.
func truncateAtRune(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// confidence scores data completeness, weighted toward recent news.
func confidence(r *EnrichmentResult) float64 {
	score := 0.0
	if len(r.News) > 0 {
		score += 0.4
	}
	if len(r.Values) > 0 {
		score += 0.3
	}
	if len(r.TechStack) > 0 {
		score += 0.3
	}
	return score
}
