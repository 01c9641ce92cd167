package savedjob

import (
	"context"
	"time"

	"nexthire/internal/common"
)

// SavedJob is a bookmark; one row per (user, job) pair.
type SavedJob struct {
	ID        common.UUID `json:"id"`
	UserID    common.UUID `json:"user_id"`
	JobID     common.UUID `json:"job_id"`
	Note      string      `json:"note,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type Repository interface {
	Create(ctx context.Context, item SavedJob) (*SavedJob, error)
	Delete(ctx context.Context, userID, jobID common.UUID) error
	ListByUser(ctx context.Context, userID common.UUID) ([]SavedJob, error)
}
