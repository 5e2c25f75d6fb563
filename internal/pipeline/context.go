package pipeline

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/db"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/research"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/style"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/types"
)

// logPrefix is used to distinguish concurrent log output
type logPrefix string

const (
	prefixProfile  logPrefix = "[Profile]  "
	prefixResearch logPrefix = "[Research] "
)

// JobSource loads the job posting for a run.
type JobSource interface {
	GetJobPosting(ctx context.Context, jobID string) (*types.JobPosting, error)
}

// ProfileSource loads the user's CV metadata and writing samples.
type ProfileSource interface {
	GetUserProfile(ctx context.Context, userID string) (*db.UserProfile, error)
	GetWritingSamples(ctx context.Context, userID string, limit int) ([]db.WritingSample, error)
}

// StyleAnalyzer derives a style profile from a writing sample.
type StyleAnalyzer interface {
	Analyze(ctx context.Context, sample string) types.StyleProfile
}

// CompanyEnricher provides company intelligence.
type CompanyEnricher interface {
	Enrich(ctx context.Context, companySlug, companyName, websiteURL string) *research.EnrichmentResult
}

// ContextBuilder assembles the immutable generation context for one run.
// The user-profile branch and the company-research branch run in parallel.
type ContextBuilder struct {
	Jobs     JobSource
	Profiles ProfileSource
	Style    StyleAnalyzer
	Enricher CompanyEnricher
}

// BuildOptions carries per-run inputs for context assembly. Job may be set
// directly for file-based runs; otherwise it is loaded by JobID.
type BuildOptions struct {
	UserID            string
	JobID             string
	Job               *types.JobPosting
	CompanyWebsiteURL string
}

// Build assembles the generation context. The job posting is required;
// profile, style, and research all degrade to workable defaults.
func (b *ContextBuilder) Build(ctx context.Context, opts BuildOptions) (*types.GenerationContext, error) {
	job := opts.Job
	if job == nil {
		if b.Jobs == nil {
			return nil, fmt.Errorf("no job posting provided and no job source configured")
		}
		loaded, err := b.Jobs.GetJobPosting(ctx, opts.JobID)
		if err != nil {
			return nil, fmt.Errorf("failed to load job posting: %w", err)
		}
		if loaded == nil {
			return nil, fmt.Errorf("job posting not found: %s", opts.JobID)
		}
		job = loaded
	}

	gctx := &types.GenerationContext{
		UserID: opts.UserID,
		Job:    *job,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return b.buildProfileBranch(gCtx, opts.UserID, gctx)
	})

	g.Go(func() error {
		b.buildResearchBranch(gCtx, job.Company, opts.CompanyWebsiteURL, gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return gctx, nil
}

// buildProfileBranch loads CV metadata and writing samples, then derives the
// style profile from the newest sample.
func (b *ContextBuilder) buildProfileBranch(ctx context.Context, userID string, gctx *types.GenerationContext) error {
	prefix := prefixProfile

	if b.Profiles != nil {
		profile, err := b.Profiles.GetUserProfile(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load user profile: %w", err)
		}
		if profile != nil {
			gctx.CV = types.CVSummary{
				Skills:          profile.Skills,
				ExperienceYears: profile.ExperienceYears,
				Highlights:      profile.Highlights,
			}
		} else {
			fmt.Printf("%sWarning: no profile found for user %s\n", prefix, userID)
		}

		samples, err := b.Profiles.GetWritingSamples(ctx, userID, db.MaxWritingSamples)
		if err != nil {
			return fmt.Errorf("failed to load writing samples: %w", err)
		}
		for _, s := range samples {
			gctx.WritingSamples = append(gctx.WritingSamples, s.Text)
		}
	}

	// Newest sample anchors both the exemplar and the structured profile.
	if len(gctx.WritingSamples) > 0 {
		gctx.StyleExemplar = gctx.WritingSamples[0]
	}

	if b.Style != nil {
		gctx.Style = b.Style.Analyze(ctx, gctx.StyleExemplar)
	} else {
		gctx.Style = style.DefaultProfile()
	}

	fmt.Printf("%s✅ Profile branch complete (%d samples)\n", prefix, len(gctx.WritingSamples))
	return nil
}

// buildResearchBranch gathers company intelligence. Research never fails a
// run; at worst the intel block stays empty.
func (b *ContextBuilder) buildResearchBranch(ctx context.Context, companyName, websiteURL string, gctx *types.GenerationContext) {
	prefix := prefixResearch

	if b.Enricher == nil || companyName == "" {
		fmt.Printf("%sSkipping company research\n", prefix)
		return
	}

	result := b.Enricher.Enrich(ctx, CompanySlug(companyName), companyName, websiteURL)
	gctx.Intel = result.Intel()

	fmt.Printf("%s✅ Research branch complete (confidence: %.1f)\n", prefix, result.Confidence)
}

// CompanySlug normalizes a company name into a cache key.
func CompanySlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
