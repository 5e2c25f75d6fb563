package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/db"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/generation"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/judge"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/llm"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/observability"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/research"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/style"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/types"
)

// ProgressEvent represents a progress update during a generation run
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when run progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for one generation run
type RunOptions struct {
	UserID            string
	JobID             string
	Job               *types.JobPosting // Optional: direct injection instead of JobID lookup
	CompanyWebsiteURL string
	APIKey            string
	DatabaseURL       string
	Verbose           bool
	OnProgress        ProgressCallback
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			Content: content,
		})
	}
}

// Run step names reported via progress events.
const (
	StepContext  = "context"
	StepLoop     = "quality_loop"
	StepComplete = "complete"
)

// RunQualityLoop orchestrates one full cover-letter generation run: context
// assembly, the quality loop, and persistence of the outcome.
func RunQualityLoop(ctx context.Context, opts RunOptions) (*types.RunResult, error) {
	printer := observability.NewPrinter(os.Stdout)

	// Database is optional; without it the run skips caching and auditing.
	var database *db.DB
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
		} else {
			defer database.Close()
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
		}
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	fmt.Printf("Step 1/3: Assembling generation context...\n")
	builder := newContextBuilder(client, database)
	gctx, err := builder.Build(ctx, BuildOptions{
		UserID:            opts.UserID,
		JobID:             opts.JobID,
		Job:               opts.Job,
		CompanyWebsiteURL: opts.CompanyWebsiteURL,
	})
	if err != nil {
		return nil, fmt.Errorf("context assembly failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintContext(gctx)
	}
	emitProgress(&opts, StepContext,
		fmt.Sprintf("Assembled context: %s at %s", gctx.Job.Title, gctx.Job.Company), nil)

	// Create run record for auditing
	var runID uuid.UUID
	if database != nil {
		runID, err = database.CreateGenerationRun(ctx, opts.UserID, gctx.Job.ID)
		if err != nil {
			fmt.Printf("Warning: Failed to create run record: %v\n", err)
		} else if opts.Verbose {
			fmt.Printf("[VERBOSE] Created generation run: %s\n", runID)
		}
	}

	var audit AuditFunc
	if database != nil && runID != uuid.Nil {
		audit = func(ctx context.Context, record *types.IterationRecord) error {
			return database.InsertIterationRecord(ctx, runID, record)
		}
	}

	fmt.Printf("Step 2/3: Running quality loop...\n")
	loop := NewLoop(generation.New(client), judge.New(client), audit, DefaultLoopConfig())
	result, err := loop.Run(ctx, gctx)
	if err != nil {
		if database != nil && runID != uuid.Nil {
			_ = database.FailGenerationRun(ctx, runID, err.Error())
		}
		return nil, fmt.Errorf("quality loop failed: %w", err)
	}
	emitProgress(&opts, StepLoop,
		fmt.Sprintf("Quality loop finished after %d iterations", result.Iterations), nil)

	fmt.Printf("Step 3/3: Recording outcome...\n")
	if database != nil && runID != uuid.Nil {
		status := db.RunStatusCompleted
		if result.Degraded {
			status = db.RunStatusDegraded
		}
		_ = database.CompleteGenerationRun(ctx, runID, &db.CompleteRunInput{
			Status:       status,
			Letter:       result.Text,
			OverallScore: result.Scores.OverallScore,
			Iterations:   result.Iterations,
			Degraded:     result.Degraded,
		})
	}

	if opts.Verbose {
		printer.PrintValidation(&result.Validation)
		printer.PrintScores(&result.Scores)
		printer.PrintRunResult(result)
	}
	emitProgress(&opts, StepComplete,
		fmt.Sprintf("Run complete (score: %.1f/10, degraded: %t)", result.Scores.OverallScore, result.Degraded), result)

	fmt.Printf("Done! Cover letter generated in %d iteration(s).\n", result.Iterations)
	return result, nil
}

// newContextBuilder wires the context builder from the shared LLM client and
// an optional database. Without a database the job must be injected and the
// research cache is disabled.
func newContextBuilder(client llm.Client, database *db.DB) *ContextBuilder {
	builder := &ContextBuilder{
		Style: style.NewAnalyzer(client),
	}
	if database != nil {
		builder.Jobs = database
		builder.Profiles = database
		builder.Enricher = research.NewEnricher(client, database)
	} else {
		builder.Enricher = research.NewEnricher(client, nil)
	}
	return builder
}
