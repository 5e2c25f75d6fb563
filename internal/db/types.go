package db

import (
	"time"

	"github.com/google/uuid"
)

// GenerationRunStatus constants
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusDegraded  = "degraded"
	RunStatusFailed    = "failed"
)

// DefaultResearchTTL is how long cached company research stays fresh.
const DefaultResearchTTL = 7 * 24 * time.Hour

// GenerationRun is one quality-loop run record.
type GenerationRun struct {
	ID           uuid.UUID  `json:"id"`
	UserID       string     `json:"user_id"`
	JobID        string     `json:"job_id"`
	Status       string     `json:"status"`
	Letter       *string    `json:"letter,omitempty"`
	OverallScore *float64   `json:"overall_score,omitempty"`
	ErrorMessage *string    `json:"error_message,omitempty"`
	Iterations   int        `json:"iterations"`
	Degraded     bool       `json:"degraded"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// CompleteRunInput carries the final outcome of a generation run.
type CompleteRunInput struct {
	Status       string
	Letter       string
	OverallScore float64
	Iterations   int
	Degraded     bool
}

// UserProfile holds the CV metadata and contact fields needed for prompt
// assembly.
type UserProfile struct {
	UserID          string    `json:"user_id"`
	FullName        string    `json:"full_name"`
	Skills          string    `json:"skills,omitempty"`
	ExperienceYears int       `json:"experience_years,omitempty"`
	Highlights      []string  `json:"highlights,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// WritingSample is one user-authored cover letter kept as a style exemplar.
type WritingSample struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidRunStatus checks if a generation run status value is valid
func ValidRunStatus(status string) bool {
	switch status {
	case RunStatusRunning, RunStatusCompleted, RunStatusDegraded, RunStatusFailed:
		return true
	default:
		return false
	}
}
