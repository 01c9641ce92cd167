package app

import (
	"context"
	"strings"

	"nexthire/internal/common"
	"nexthire/internal/domain/job"
	"nexthire/internal/domain/savedjob"
)

type SavedJobService struct {
	repo savedjob.Repository
	jobs job.Repository
}

func NewSavedJobService(repo savedjob.Repository, jobs job.Repository) *SavedJobService {
	return &SavedJobService{repo: repo, jobs: jobs}
}

func (s *SavedJobService) Save(ctx context.Context, userID, jobID common.UUID, note string) (*savedjob.SavedJob, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, savedjob.SavedJob{
		UserID: userID,
		JobID:  jobID,
		Note:   strings.TrimSpace(note),
	})
}

func (s *SavedJobService) Unsave(ctx context.Context, userID, jobID common.UUID) error {
	return s.repo.Delete(ctx, userID, jobID)
}

func (s *SavedJobService) List(ctx context.Context, userID common.UUID) ([]savedjob.SavedJob, error) {
	return s.repo.ListByUser(ctx, userID)
}
