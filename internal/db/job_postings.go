package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/types"
)

// GetJobPosting retrieves a job posting by ID. Returns (nil, nil) when the
// job does not exist.
func (db *DB) GetJobPosting(ctx context.Context, jobID string) (*types.JobPosting, error) {
	var job types.JobPosting
	var requirementsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, title, company, description, requirements
		 FROM job_postings WHERE id = $1`,
		jobID,
	).Scan(&job.ID, &job.Title, &job.Company, &job.Description, &requirementsJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}

	if len(requirementsJSON) > 0 {
		if err := json.Unmarshal(requirementsJSON, &job.Requirements); err != nil {
			return nil, fmt.Errorf("failed to unmarshal job requirements: %w", err)
		}
	}

	return &job, nil
}

// CreateJobPosting stores a job posting and returns its ID.
func (db *DB) CreateJobPosting(ctx context.Context, job *types.JobPosting) (string, error) {
	requirementsJSON, err := json.Marshal(job.Requirements)
	if err != nil {
		return "", fmt.Errorf("failed to marshal job requirements: %w", err)
	}

	var id string
	err = db.pool.QueryRow(ctx,
		`INSERT INTO job_postings (title, company, description, requirements)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		job.Title, job.Company, job.Description, requirementsJSON,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create job posting: %w", err)
	}
	return id, nil
}
