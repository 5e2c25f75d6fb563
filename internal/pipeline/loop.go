// Package pipeline provides the high-level orchestration for cover-letter
// generation: the validate-then-judge quality loop and the run entry point.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/generation"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/types"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/validation"
)

// Loop limits. The target score gates early exit; a letter below it gets
// another attempt until the iteration budget runs out.
const (
	MaxIterations = 3
	TargetScore   = 8.0

	DefaultGenerateTimeout = 45 * time.Second
	DefaultJudgeTimeout    = 20 * time.Second
)

// SkippedJudgeIssue marks score records of candidates that never reached
// the judge because validation failed.
const SkippedJudgeIssue = "Validation failed - skipped quality check"

// Generator produces one letter draft per call.
type Generator interface {
	Generate(ctx context.Context, gctx *types.GenerationContext, feedback []string) (*types.Candidate, error)
}

// Judge scores one letter per call.
type Judge interface {
	Evaluate(ctx context.Context, letter string, gctx *types.GenerationContext) (*types.QualityScores, error)
}

// AuditFunc persists one iteration record. Failures are logged and ignored;
// auditing never blocks a run.
type AuditFunc func(ctx context.Context, record *types.IterationRecord) error

// LoopConfig holds the tunable parameters of the quality loop.
type LoopConfig struct {
	MaxIterations   int
	TargetScore     float64
	GenerateTimeout time.Duration
	JudgeTimeout    time.Duration
}

// DefaultLoopConfig returns the standard loop parameters.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		MaxIterations:   MaxIterations,
		TargetScore:     TargetScore,
		GenerateTimeout: DefaultGenerateTimeout,
		JudgeTimeout:    DefaultJudgeTimeout,
	}
}

// Loop is the iteration controller. It owns no state between runs; every
// Run starts fresh from the generation context.
type Loop struct {
	generator Generator
	judge     Judge
	audit     AuditFunc
	config    LoopConfig
}

// NewLoop creates a Loop. audit may be nil to disable per-iteration
// persistence.
func NewLoop(generator Generator, judge Judge, audit AuditFunc, config LoopConfig) *Loop {
	return &Loop{
		generator: generator,
		judge:     judge,
		audit:     audit,
		config:    config,
	}
}

// Run executes the quality loop: generate, validate, judge (only when
// valid), repeat until the target score is reached or the iteration budget
// is spent. Transient LLM failures abandon the current iteration; the run
// fails only when no iteration completed at all.
func (l *Loop) Run(ctx context.Context, gctx *types.GenerationContext) (*types.RunResult, error) {
	var records []types.IterationRecord
	var feedback []string
	var lastErr error

	for iteration := 1; iteration <= l.config.MaxIterations; iteration++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fmt.Printf("🚀 Generation iteration %d/%d...\n", iteration, l.config.MaxIterations)

		candidate, err := l.generateWithRetry(ctx, gctx, feedback)
		if err != nil {
			fmt.Printf("Warning: iteration %d abandoned: %v\n", iteration, err)
			lastErr = err
			feedback = nil
			continue
		}
		candidate.Iteration = iteration

		result := validation.ValidateLetter(candidate.Text, gctx.Job.Company)
		status := "PASSED"
		if !result.IsValid {
			status = "FAILED"
		}
		fmt.Printf("✅ Validation %d: %s (%d errors, %d warnings)\n", iteration, status, len(result.Errors), len(result.Warnings))

		var scores *types.QualityScores
		if result.IsValid {
			scores, err = l.judgeWithRetry(ctx, candidate.Text, gctx)
			if err != nil {
				fmt.Printf("Warning: iteration %d abandoned: %v\n", iteration, err)
				lastErr = err
				feedback = nil
				continue
			}
		} else {
			// Cost-saving short-circuit: invalid letters never reach the judge.
			scores = types.ZeroScores(SkippedJudgeIssue)
			fmt.Printf("❌ Iteration %d: validation failed, skipping quality judge\n", iteration)
		}

		record := types.IterationRecord{
			Iteration:  iteration,
			Candidate:  *candidate,
			Validation: *result,
			Scores:     *scores,
		}
		records = append(records, record)

		if l.audit != nil {
			if err := l.audit(ctx, &record); err != nil {
				fmt.Printf("Warning: failed to save iteration audit: %v\n", err)
			}
		}

		if result.IsValid && scores.OverallScore >= l.config.TargetScore {
			fmt.Printf("✅ Quality target reached! (Validation: PASSED, Score: %.1f/10)\n", scores.OverallScore)
			break
		}

		// Feedback for the next attempt comes from this iteration only.
		feedback = generation.BuildFeedback(result, scores)
	}

	return finalize(records, lastErr)
}

// finalize picks the winning candidate: best valid score, earliest on
// ties. With no valid candidate the last recorded one is returned with
// Degraded set. An empty log means every iteration was abandoned and the
// run fails.
func finalize(records []types.IterationRecord, lastErr error) (*types.RunResult, error) {
	if len(records) == 0 {
		if lastErr != nil {
			return nil, fmt.Errorf("all iterations failed: %w", lastErr)
		}
		return nil, errors.New("no iterations completed")
	}

	var best *types.IterationRecord
	for i := range records {
		rec := &records[i]
		if !rec.Validation.IsValid {
			continue
		}
		// Strict > keeps the earliest record on equal scores.
		if best == nil || rec.Scores.OverallScore > best.Scores.OverallScore {
			best = rec
		}
	}

	degraded := false
	if best == nil {
		fmt.Printf("⚠️ No valid cover letter after %d iterations, returning last attempt\n", len(records))
		best = &records[len(records)-1]
		degraded = true
	} else if best.Scores.OverallScore < TargetScore {
		fmt.Printf("✅ Picked best valid attempt: iteration %d (Score: %.1f/10)\n", best.Iteration, best.Scores.OverallScore)
	}

	return &types.RunResult{
		Text:         best.Candidate.Text,
		Scores:       best.Scores,
		Validation:   best.Validation,
		Iterations:   len(records),
		IterationLog: records,
		Degraded:     degraded,
	}, nil
}

func (l *Loop) generateWithRetry(ctx context.Context, gctx *types.GenerationContext, feedback []string) (*types.Candidate, error) {
	var candidate *types.Candidate
	err := withRetry(ctx, func() error {
		callCtx, cancel := context.WithTimeout(ctx, l.config.GenerateTimeout)
		defer cancel()

		c, err := l.generator.Generate(callCtx, gctx, feedback)
		if err != nil {
			return err
		}
		candidate = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return candidate, nil
}

func (l *Loop) judgeWithRetry(ctx context.Context, letter string, gctx *types.GenerationContext) (*types.QualityScores, error) {
	var scores *types.QualityScores
	err := withRetry(ctx, func() error {
		callCtx, cancel := context.WithTimeout(ctx, l.config.JudgeTimeout)
		defer cancel()

		s, err := l.judge.Evaluate(callCtx, letter, gctx)
		if err != nil {
			return err
		}
		scores = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return scores, nil
}
