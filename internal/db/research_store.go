package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/research"
)

// GetFreshCompanyResearch returns cached research for a company that is
// newer than DefaultResearchTTL, or (nil, nil) on a cache miss. Implements
// research.Store.
func (db *DB) GetFreshCompanyResearch(ctx context.Context, companySlug string) (*research.EnrichmentResult, error) {
	cutoff := time.Now().Add(-DefaultResearchTTL)

	var result research.EnrichmentResult
	var valuesJSON, newsJSON, techJSON []byte
	var quoteText, quoteAuthor *string

	err := db.pool.QueryRow(ctx,
		`SELECT id, company_slug, company_name, confidence_score, values, news, tech_stack,
		        quote_text, quote_author
		 FROM company_research
		 WHERE company_slug = $1 AND created_at > $2
		 ORDER BY created_at DESC LIMIT 1`,
		companySlug, cutoff,
	).Scan(&result.ID, &result.CompanySlug, &result.CompanyName,
		&result.Confidence, &valuesJSON, &newsJSON, &techJSON,
		&quoteText, &quoteAuthor)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company research: %w", err)
	}

	if err := unmarshalList(valuesJSON, &result.Values); err != nil {
		return nil, err
	}
	if err := unmarshalList(newsJSON, &result.News); err != nil {
		return nil, err
	}
	if err := unmarshalList(techJSON, &result.TechStack); err != nil {
		return nil, err
	}
	if quoteText != nil {
		result.QuoteText = *quoteText
	}
	if quoteAuthor != nil {
		result.QuoteAuthor = *quoteAuthor
	}

	return &result, nil
}

// SaveCompanyResearch upserts a research record by company slug and returns
// its ID. Implements research.Store.
func (db *DB) SaveCompanyResearch(ctx context.Context, result *research.EnrichmentResult) (string, error) {
	valuesJSON, err := json.Marshal(result.Values)
	if err != nil {
		return "", fmt.Errorf("failed to marshal research values: %w", err)
	}
	newsJSON, err := json.Marshal(result.News)
	if err != nil {
		return "", fmt.Errorf("failed to marshal research news: %w", err)
	}
	techJSON, err := json.Marshal(result.TechStack)
	if err != nil {
		return "", fmt.Errorf("failed to marshal research tech stack: %w", err)
	}

	var id string
	err = db.pool.QueryRow(ctx,
		`INSERT INTO company_research (company_slug, company_name, confidence_score, values, news, tech_stack, quote_text, quote_author)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (company_slug) DO UPDATE
		 SET company_name = $2, confidence_score = $3, values = $4, news = $5,
		     tech_stack = $6, quote_text = $7, quote_author = $8, created_at = NOW()
		 RETURNING id`,
		result.CompanySlug, result.CompanyName, result.Confidence,
		valuesJSON, newsJSON, techJSON, result.QuoteText, result.QuoteAuthor,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to save company research: %w", err)
	}
	return id, nil
}

func unmarshalList(raw []byte, dst *[]string) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to unmarshal research list: %w", err)
	}
	return nil
}
