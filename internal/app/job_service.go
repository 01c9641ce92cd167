package app

import (
	"context"
	"strings"
	"time"

	"nexthire/internal/common"
	"nexthire/internal/domain/job"
)

const defaultDeadlineDays = 30

type JobService struct {
	repo   job.Repository
	logger Logger
}

func NewJobService(repo job.Repository, logger Logger) *JobService {
	return &JobService{repo: repo, logger: logger}
}

func (s *JobService) Create(ctx context.Context, posting job.Job) (*job.Job, error) {
	if err := validateJob(posting); err != nil {
		return nil, err
	}
	if posting.Status == "" {
		posting.Status = job.StatusDraft
	}
	normalized, err := normalizeJobStatus(posting.Status)
	if err != nil {
		return nil, err
	}
	posting.Status = normalized
	if posting.Deadline.IsZero() {
		posting.Deadline = time.Now().UTC().AddDate(0, 0, defaultDeadlineDays)
	}
	posting.Tags = job.DeriveTags(posting.Title, posting.Skills)
	posting.ViewsCount = 0
	posting.ApplicationsCount = 0
	return s.repo.Create(ctx, posting)
}

func (s *JobService) Update(ctx context.Context, posting job.Job) (*job.Job, error) {
	current, err := s.repo.GetByID(ctx, posting.ID)
	if err != nil {
		return nil, err
	}
	if current.RecruiterID != posting.RecruiterID {
		return nil, common.NewError(common.CodeForbidden, "job belongs to another recruiter", nil)
	}
	if err := validateJob(posting); err != nil {
		return nil, err
	}
	if posting.Status == "" {
		posting.Status = current.Status
	}
	normalized, err := normalizeJobStatus(posting.Status)
	if err != nil {
		return nil, err
	}
	posting.Status = normalized
	if posting.Deadline.IsZero() {
		posting.Deadline = current.Deadline
	}
	posting.Tags = job.DeriveTags(posting.Title, posting.Skills)
	posting.ViewsCount = current.ViewsCount
	posting.ApplicationsCount = current.ApplicationsCount
	posting.CreatedAt = current.CreatedAt
	return s.repo.Update(ctx, posting)
}

func (s *JobService) UpdateStatus(ctx context.Context, recruiterID, jobID common.UUID, status job.Status) (*job.Job, error) {
	posting, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if posting.RecruiterID != recruiterID {
		return nil, common.NewError(common.CodeForbidden, "job belongs to another recruiter", nil)
	}
	normalized, err := normalizeJobStatus(status)
	if err != nil {
		return nil, err
	}
	posting.Status = normalized
	return s.repo.Update(ctx, *posting)
}

// Delete closes the posting; jobs are never hard-deleted so applications
// keep a valid reference.
func (s *JobService) Delete(ctx context.Context, recruiterID, jobID common.UUID) error {
	_, err := s.UpdateStatus(ctx, recruiterID, jobID, job.StatusClosed)
	return err
}

// Get serves the public detail view: active postings for everyone, any
// status for the owner. Non-owner views bump the counter best-effort.
func (s *JobService) Get(ctx context.Context, id, viewerID common.UUID) (*job.Job, error) {
	posting, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if posting.RecruiterID == viewerID {
		return posting, nil
	}
	if posting.Status != job.StatusActive {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	if err := s.repo.IncrementViews(ctx, id); err != nil {
		s.logError("failed to increment job views: " + err.Error())
	} else {
		posting.ViewsCount++
	}
	return posting, nil
}

// GetByRecruiter serves the owner's detail view: any status, no view
// counting, Forbidden for everyone else.
func (s *JobService) GetByRecruiter(ctx context.Context, recruiterID, jobID common.UUID) (*job.Job, error) {
	posting, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if posting.RecruiterID != recruiterID {
		return nil, common.NewError(common.CodeForbidden, "job belongs to another recruiter", nil)
	}
	return posting, nil
}

func (s *JobService) ListActive(ctx context.Context, filter job.Filter) ([]job.Job, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.ListActive(ctx, filter)
}

func (s *JobService) ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]job.Job, error) {
	return s.repo.ListByRecruiter(ctx, recruiterID)
}

func validateJob(posting job.Job) error {
	fields := map[string]string{}
	title := strings.TrimSpace(posting.Title)
	if len(title) < 4 || len(title) > 120 {
		fields["title"] = "title must be between 4 and 120 characters"
	}
	if strings.TrimSpace(posting.Company) == "" {
		fields["company"] = "company is required"
	}
	if strings.TrimSpace(posting.Description) == "" {
		fields["description"] = "description is required"
	}
	switch posting.Type {
	case job.TypeFullTime, job.TypePartTime, job.TypeContract, job.TypeInternship:
	default:
		fields["type"] = "type must be full-time, part-time, contract, or internship"
	}
	switch posting.ExperienceLevel {
	case job.LevelEntry, job.LevelMid, job.LevelSenior, job.LevelLead:
	default:
		fields["experience_level"] = "experience_level must be entry, mid, senior, or lead"
	}
	if posting.Salary.Min < 0 {
		fields["salary.min"] = "salary minimum must not be negative"
	}
	if posting.Salary.Max < posting.Salary.Min {
		fields["salary.max"] = "salary maximum must not be below the minimum"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid job", fields)
	}
	return nil
}

func normalizeJobStatus(status job.Status) (job.Status, error) {
	normalized := job.Status(strings.ToLower(strings.TrimSpace(string(status))))
	switch normalized {
	case job.StatusDraft, job.StatusActive, job.StatusPaused, job.StatusClosed:
		return normalized, nil
	default:
		return "", common.NewValidationError("invalid job status", map[string]string{"status": "status must be draft, active, paused, or closed"})
	}
}

func (s *JobService) logError(msg string) {
	if s.logger != nil {
		s.logger.Error(msg)
	}
}
