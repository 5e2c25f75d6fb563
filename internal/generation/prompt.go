package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/prompts"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/types"
)

// buildPrompt renders the generation template with every context section.
// Optional sections render as "(none)" so the template shape stays stable
// across runs.
func buildPrompt(gctx *types.GenerationContext, feedback []string) (string, error) {
	template, err := prompts.Get("generation.json", "cover-letter")
	if err != nil {
		return "", err
	}
	system, err := prompts.Get("generation.json", "system")
	if err != nil {
		return "", err
	}

	candidate, err := json.Marshal(gctx.CV)
	if err != nil {
		return "", fmt.Errorf("failed to marshal CV summary: %w", err)
	}

	style, err := json.Marshal(gctx.Style)
	if err != nil {
		return "", fmt.Errorf("failed to marshal style profile: %w", err)
	}

	body := prompts.Format(template, map[string]string{
		"JobTitle":     orDefault(gctx.Job.Title, "Application"),
		"Company":      orDefault(gctx.Job.Company, "Company"),
		"Candidate":    string(candidate),
		"Requirements": renderRequirements(gctx.Job),
		"CompanyIntel": renderIntel(&gctx.Intel),
		"Style":        renderStyle(string(style), gctx.StyleExemplar),
		"Quote":        renderQuote(gctx.Intel.Quote),
		"Feedback":     renderFeedback(feedback),
	})

	return system + "\n\n" + body, nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func renderRequirements(job types.JobPosting) string {
	if len(job.Requirements) == 0 {
		return job.Description
	}
	return "- " + strings.Join(job.Requirements, "\n- ")
}

func renderIntel(intel *types.CompanyIntel) string {
	if !intel.HasContent() {
		return "(none)"
	}
	data, err := json.Marshal(intel)
	if err != nil {
		return "(none)"
	}
	return string(data)
}

func renderStyle(profile, exemplar string) string {
	if exemplar == "" {
		return profile
	}
	return profile + "\n\nREFERENCE LETTER (imitate this voice):\n" + exemplar
}

func renderQuote(quote *types.Quote) string {
	if quote == nil || quote.Text == "" {
		return "(none)"
	}
	if quote.Author == "" {
		return fmt.Sprintf("%q", quote.Text)
	}
	return fmt.Sprintf("%q - %s", quote.Text, quote.Author)
}

func renderFeedback(feedback []string) string {
	if len(feedback) == 0 {
		return "(none)"
	}
	return strings.Join(feedback, "\n")
}
