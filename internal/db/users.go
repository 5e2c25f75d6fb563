package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// MaxWritingSamples caps how many user letters are loaded per run. Two
// samples are enough to anchor the style without bloating the prompt.
const MaxWritingSamples = 2

// GetUserProfile retrieves a user's CV metadata. Returns (nil, nil) when the
// user has no profile.
func (db *DB) GetUserProfile(ctx context.Context, userID string) (*UserProfile, error) {
	var profile UserProfile
	var highlightsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT user_id, full_name, skills, experience_years, highlights, updated_at
		 FROM user_profiles WHERE user_id = $1`,
		userID,
	).Scan(&profile.UserID, &profile.FullName, &profile.Skills,
		&profile.ExperienceYears, &highlightsJSON, &profile.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	if len(highlightsJSON) > 0 {
		if err := json.Unmarshal(highlightsJSON, &profile.Highlights); err != nil {
			return nil, fmt.Errorf("failed to unmarshal highlights: %w", err)
		}
	}

	return &profile, nil
}

// GetWritingSamples retrieves the user's most recent writing samples, newest
// first, capped at limit (MaxWritingSamples when limit <= 0).
func (db *DB) GetWritingSamples(ctx context.Context, userID string, limit int) ([]WritingSample, error) {
	if limit <= 0 {
		limit = MaxWritingSamples
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, text, created_at
		 FROM writing_samples
		 WHERE user_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get writing samples: %w", err)
	}
	defer rows.Close()

	var samples []WritingSample
	for rows.Next() {
		var s WritingSample
		if err := rows.Scan(&s.ID, &s.UserID, &s.Text, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan writing sample: %w", err)
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// SaveWritingSample stores a user-authored cover letter as a style exemplar.
func (db *DB) SaveWritingSample(ctx context.Context, userID, text string) (*WritingSample, error) {
	var s WritingSample
	err := db.pool.QueryRow(ctx,
		`INSERT INTO writing_samples (user_id, text)
		 VALUES ($1, $2)
		 RETURNING id, user_id, text, created_at`,
		userID, text,
	).Scan(&s.ID, &s.UserID, &s.Text, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save writing sample: %w", err)
	}
	return &s, nil
}
