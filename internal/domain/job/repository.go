package job

import (
	"context"

	"nexthire/internal/common"
)

// Filter narrows the public listing. Zero values mean "no constraint".
type Filter struct {
	Query           string
	Location        string
	Type            EmploymentType
	ExperienceLevel ExperienceLevel
	Remote          *bool
	Limit           int
	Offset          int
}

type Repository interface {
	Create(ctx context.Context, posting Job) (*Job, error)
	Update(ctx context.Context, posting Job) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*Job, error)
	ListActive(ctx context.Context, filter Filter) ([]Job, error)
	ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]Job, error)
	IncrementViews(ctx context.Context, id common.UUID) error
	// SyncApplicationsCount recounts non-withdrawn applications for the job
	// and persists the result in one statement, returning the new count.
	SyncApplicationsCount(ctx context.Context, id common.UUID) (int, error)
}
