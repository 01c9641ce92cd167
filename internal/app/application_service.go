package app

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"nexthire/internal/common"
	"nexthire/internal/domain/application"
	"nexthire/internal/domain/job"
	"nexthire/internal/domain/notification"
	"nexthire/internal/domain/user"
)

type ApplicationService struct {
	repo          application.Repository
	jobs          job.Repository
	notifications notification.Repository
	logger        Logger
}

func NewApplicationService(repo application.Repository, jobs job.Repository, notifications notification.Repository, logger Logger) *ApplicationService {
	return &ApplicationService{repo: repo, jobs: jobs, notifications: notifications, logger: logger}
}

const (
	coverLetterMinLength = 50
	coverLetterMaxLength = 2000
)

type SubmitInput struct {
	JobID          common.UUID
	CoverLetter    string
	ExpectedSalary application.ExpectedSalary
	Experience     string
	Resume         *application.ResumeMeta
}

func (s *ApplicationService) Submit(ctx context.Context, applicantID common.UUID, input SubmitInput) (*application.Application, error) {
	if err := validateSubmit(input); err != nil {
		return nil, err
	}
	posting, err := s.jobs.GetByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if posting.Status != job.StatusActive {
		return nil, common.NewError(common.CodeInvalidState, "job is not accepting applications", nil)
	}
	if _, err := s.repo.FindByJobAndApplicant(ctx, input.JobID, applicantID); err == nil {
		return nil, common.NewError(common.CodeConflict, "already applied to this job", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	app := application.Application{
		JobID:          input.JobID,
		ApplicantID:    applicantID,
		CoverLetter:    strings.TrimSpace(input.CoverLetter),
		ExpectedSalary: input.ExpectedSalary,
		Experience:     strings.TrimSpace(input.Experience),
		Resume:         input.Resume,
	}
	app.RecordTransition(application.StatusPending, applicantID, "", time.Now().UTC())
	created, err := s.repo.Create(ctx, app)
	if err != nil {
		return nil, err
	}
	if _, err := s.jobs.SyncApplicationsCount(ctx, posting.ID); err != nil {
		return nil, err
	}
	s.notify(ctx, notification.Notification{
		RecipientID: posting.RecruiterID,
		Type:        notification.TypeApplicationSubmitted,
		Title:       "New application",
		Message:     fmt.Sprintf("A new application was submitted for %q", posting.Title),
		Ref:         notification.Ref{Kind: notification.RefApplication, ID: created.ID},
	})
	return created, nil
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID common.UUID, status application.Status, note string, recruiterID common.UUID) (*application.Application, error) {
	app, posting, err := s.getOwned(ctx, applicationID, recruiterID)
	if err != nil {
		return nil, err
	}
	next, err := application.ParseStatus(strings.ToLower(strings.TrimSpace(string(status))))
	if err != nil {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be pending, reviewing, shortlisted, interviewed, accepted, or rejected"})
	}
	if !application.RecruiterSettable(next) {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "withdrawn is applicant-only"})
	}
	if app.IsWithdrawn {
		return nil, common.NewError(common.CodeInvalidTransition, "application is withdrawn", nil)
	}
	if application.IsTerminal(app.Status) && next != app.Status {
		return nil, common.NewError(common.CodeInvalidTransition, "application status is final", nil)
	}
	app.RecordTransition(next, recruiterID, note, time.Now().UTC())
	if note != "" {
		app.RecruiterNotes = note
	}
	updated, err := s.repo.Update(ctx, *app)
	if err != nil {
		return nil, err
	}
	if _, err := s.jobs.SyncApplicationsCount(ctx, posting.ID); err != nil {
		return nil, err
	}
	s.notify(ctx, notification.Notification{
		RecipientID: app.ApplicantID,
		Type:        notification.TypeStatusChanged,
		Title:       "Application update",
		Message:     fmt.Sprintf("Your application for %q is now %s", posting.Title, next),
		Ref:         notification.Ref{Kind: notification.RefApplication, ID: app.ID},
	})
	return updated, nil
}

// ScheduleInterview attaches the schedule and force-sets the status to
// interviewed, whatever the application was in before. Retroactive
// scheduling never leaves an earlier status behind.
func (s *ApplicationService) ScheduleInterview(ctx context.Context, applicationID common.UUID, recruiterID common.UUID, details application.Interview) (*application.Application, error) {
	app, posting, err := s.getOwned(ctx, applicationID, recruiterID)
	if err != nil {
		return nil, err
	}
	if app.IsWithdrawn {
		return nil, common.NewError(common.CodeInvalidTransition, "application is withdrawn", nil)
	}
	if err := validateInterview(details); err != nil {
		return nil, err
	}
	app.Interview = &details
	app.RecordTransition(application.StatusInterviewed, recruiterID, "interview scheduled", time.Now().UTC())
	updated, err := s.repo.Update(ctx, *app)
	if err != nil {
		return nil, err
	}
	s.notify(ctx, notification.Notification{
		RecipientID: app.ApplicantID,
		Type:        notification.TypeInterviewScheduled,
		Title:       "Interview scheduled",
		Message:     fmt.Sprintf("An interview was scheduled for your application to %q", posting.Title),
		Ref:         notification.Ref{Kind: notification.RefApplication, ID: app.ID},
	})
	return updated, nil
}

func (s *ApplicationService) Withdraw(ctx context.Context, applicationID, applicantID common.UUID, reason string) (*application.Application, error) {
	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.ApplicantID != applicantID {
		return nil, common.NewError(common.CodeForbidden, "application belongs to another applicant", nil)
	}
	if !application.CanWithdraw(app.Status) {
		if app.Status == application.StatusWithdrawn {
			return nil, common.NewError(common.CodeInvalidTransition, "application is already withdrawn", nil)
		}
		return nil, common.NewError(common.CodeInvalidTransition, "application status is final", nil)
	}
	now := time.Now().UTC()
	app.IsWithdrawn = true
	app.WithdrawnAt = &now
	app.WithdrawReason = strings.TrimSpace(reason)
	app.RecordTransition(application.StatusWithdrawn, applicantID, app.WithdrawReason, now)
	updated, err := s.repo.Update(ctx, *app)
	if err != nil {
		return nil, err
	}
	if _, err := s.jobs.SyncApplicationsCount(ctx, app.JobID); err != nil {
		return nil, err
	}
	if posting, err := s.jobs.GetByID(ctx, app.JobID); err == nil {
		s.notify(ctx, notification.Notification{
			RecipientID: posting.RecruiterID,
			Type:        notification.TypeApplicationWithdrawn,
			Title:       "Application withdrawn",
			Message:     fmt.Sprintf("An application for %q was withdrawn", posting.Title),
			Ref:         notification.Ref{Kind: notification.RefApplication, ID: app.ID},
		})
	}
	return updated, nil
}

// Get authorizes the applicant and the owning recruiter; everyone else is
// rejected with Forbidden. The response deliberately reveals existence.
func (s *ApplicationService) Get(ctx context.Context, id, viewerID common.UUID, viewerRole user.Role) (*application.Application, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.ApplicantID == viewerID {
		return app, nil
	}
	if viewerRole == user.RoleRecruiter {
		posting, err := s.jobs.GetByID(ctx, app.JobID)
		if err != nil {
			return nil, err
		}
		if posting.RecruiterID == viewerID {
			return app, nil
		}
	}
	return nil, common.NewError(common.CodeForbidden, "application belongs to another user", nil)
}

func (s *ApplicationService) ListByApplicant(ctx context.Context, applicantID common.UUID) ([]application.Application, error) {
	return s.repo.ListByApplicant(ctx, applicantID)
}

func (s *ApplicationService) ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]application.Application, error) {
	return s.repo.ListByRecruiter(ctx, recruiterID)
}

func (s *ApplicationService) StatsByRecruiter(ctx context.Context, recruiterID common.UUID) (map[application.Status]int, error) {
	return s.repo.CountByStatusForRecruiter(ctx, recruiterID)
}

func (s *ApplicationService) getOwned(ctx context.Context, applicationID, recruiterID common.UUID) (*application.Application, *job.Job, error) {
	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, nil, err
	}
	posting, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, nil, err
	}
	if posting.RecruiterID != recruiterID {
		return nil, nil, common.NewError(common.CodeForbidden, "application belongs to another recruiter", nil)
	}
	return app, posting, nil
}

// notify is best-effort: a failed notification write never fails the
// operation that produced it.
func (s *ApplicationService) notify(ctx context.Context, item notification.Notification) {
	if s.notifications == nil {
		return
	}
	if _, err := s.notifications.Create(ctx, item); err != nil {
		s.logError("failed to create notification: " + err.Error())
	}
}

func validateSubmit(input SubmitInput) error {
	fields := map[string]string{}
	if input.JobID == "" {
		fields["job_id"] = "job_id is required"
	}
	letter := strings.TrimSpace(input.CoverLetter)
	if length := utf8.RuneCountInString(letter); length < coverLetterMinLength || length > coverLetterMaxLength {
		fields["cover_letter"] = fmt.Sprintf("cover letter must be between %d and %d characters", coverLetterMinLength, coverLetterMaxLength)
	}
	if input.ExpectedSalary.Amount < 0 {
		fields["expected_salary.amount"] = "amount must not be negative"
	}
	if input.Resume != nil {
		if input.Resume.Filename == "" || input.Resume.Path == "" {
			fields["resume"] = "resume metadata must include filename and path"
		}
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid application", fields)
	}
	return nil
}

func validateInterview(details application.Interview) error {
	fields := map[string]string{}
	if details.ScheduledAt.IsZero() {
		fields["scheduled_at"] = "scheduled_at is required"
	}
	if details.Duration <= 0 {
		fields["duration"] = "duration must be positive"
	}
	if strings.TrimSpace(details.Type) == "" {
		fields["type"] = "type is required"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid interview", fields)
	}
	return nil
}

func (s *ApplicationService) logError(msg string) {
	if s.logger != nil {
		s.logger.Error(msg)
	}
}
