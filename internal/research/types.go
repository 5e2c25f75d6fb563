// Package research provides company enrichment: public facts about the
// target company used to ground cover letters.
package research

import "github.com/yannikgaletto-art/job-automation-saas-sub000/internal/types"

// EnrichmentResult is one enrichment record, cached per company slug.
type EnrichmentResult struct {
	ID          string   `json:"id,omitempty"`
	CompanySlug string   `json:"company_slug"`
	CompanyName string   `json:"company_name"`
	Confidence  float64  `json:"confidence_score"`
	Values      []string `json:"values"`
	News        []string `json:"news"`
	TechStack   []string `json:"tech_stack"`
	QuoteText   string   `json:"quote_text,omitempty"`
	QuoteAuthor string   `json:"quote_author,omitempty"`
}

// Intel converts the enrichment record into the pipeline's company
// intelligence block.
func (r *EnrichmentResult) Intel() types.CompanyIntel {
	intel := types.CompanyIntel{
		Values:    r.Values,
		News:      r.News,
		TechStack: r.TechStack,
	}
	if r.QuoteText != "" {
		intel.Quote = &types.Quote{
			Text:   r.QuoteText,
			Author: r.QuoteAuthor,
		}
	}
	return intel
}
