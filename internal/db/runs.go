package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/types"
)

// CreateGenerationRun creates a new generation run record and returns its ID
func (db *DB) CreateGenerationRun(ctx context.Context, userID, jobID string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO generation_runs (user_id, job_id, status)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		userID, jobID, RunStatusRunning,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create generation run: %w", err)
	}
	return id, nil
}

// CompleteGenerationRun records the final outcome of a generation run
func (db *DB) CompleteGenerationRun(ctx context.Context, runID uuid.UUID, input *CompleteRunInput) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE generation_runs
		 SET status = $1, letter = $2, overall_score = $3, iterations = $4,
		     degraded = $5, completed_at = NOW()
		 WHERE id = $6`,
		input.Status, nullIfEmpty(input.Letter), input.OverallScore,
		input.Iterations, input.Degraded, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete generation run: %w", err)
	}
	return nil
}

// FailGenerationRun marks a run as failed with an error message
func (db *DB) FailGenerationRun(ctx context.Context, runID uuid.UUID, errorMsg string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE generation_runs
		 SET status = $1, error_message = $2, completed_at = NOW()
		 WHERE id = $3`,
		RunStatusFailed, nullIfEmpty(errorMsg), runID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark generation run failed: %w", err)
	}
	return nil
}

// InsertIterationRecord stores one quality-loop iteration for auditing.
// Validation and scores are stored as JSON documents.
func (db *DB) InsertIterationRecord(ctx context.Context, runID uuid.UUID, record *types.IterationRecord) error {
	validationJSON, err := json.Marshal(record.Validation)
	if err != nil {
		return fmt.Errorf("failed to marshal validation result: %w", err)
	}
	scoresJSON, err := json.Marshal(record.Scores)
	if err != nil {
		return fmt.Errorf("failed to marshal quality scores: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO generation_iterations (run_id, iteration, letter, model, validation, scores)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		runID, record.Iteration, record.Candidate.Text, record.Candidate.Model,
		validationJSON, scoresJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to insert iteration record: %w", err)
	}
	return nil
}

// GetGenerationRun retrieves a generation run by ID. Returns (nil, nil) when
// the run does not exist.
func (db *DB) GetGenerationRun(ctx context.Context, runID uuid.UUID) (*GenerationRun, error) {
	var run GenerationRun
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_id, status, letter, overall_score, error_message,
		        iterations, degraded, created_at, completed_at
		 FROM generation_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.UserID, &run.JobID, &run.Status, &run.Letter,
		&run.OverallScore, &run.ErrorMessage, &run.Iterations, &run.Degraded,
		&run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get generation run: %w", err)
	}
	return &run, nil
}

// ListGenerationRuns retrieves recent runs for a user, newest first
func (db *DB) ListGenerationRuns(ctx context.Context, userID string, limit int) ([]GenerationRun, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, job_id, status, letter, overall_score, error_message,
		        iterations, degraded, created_at, completed_at
		 FROM generation_runs
		 WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list generation runs: %w", err)
	}
	defer rows.Close()

	var runs []GenerationRun
	for rows.Next() {
		var run GenerationRun
		if err := rows.Scan(&run.ID, &run.UserID, &run.JobID, &run.Status,
			&run.Letter, &run.OverallScore, &run.ErrorMessage, &run.Iterations,
			&run.Degraded, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generation run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}
