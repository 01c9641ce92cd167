package application

import (
	"context"

	"nexthire/internal/common"
)

type Repository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	Update(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID common.UUID) (*Application, error)
	ListByApplicant(ctx context.Context, applicantID common.UUID) ([]Application, error)
	ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]Application, error)
	CountByStatusForRecruiter(ctx context.Context, recruiterID common.UUID) (map[Status]int, error)
}
