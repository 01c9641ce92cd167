package app

import (
	"context"
	"sync"
	"time"

	"nexthire/internal/common"
	"nexthire/internal/domain/application"
	"nexthire/internal/domain/auth"
	"nexthire/internal/domain/job"
	"nexthire/internal/domain/notification"
	"nexthire/internal/domain/savedjob"
	"nexthire/internal/domain/user"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*user.User
	byID    map[common.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*user.User),
		byID:    make(map[common.UUID]*user.User),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, account user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[account.Email]; exists {
		return nil, common.NewError(common.CodeConflict, "email already registered", nil)
	}
	account.ID = common.NewUUID()
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now
	stored := account
	r.byEmail[account.Email] = &stored
	r.byID[account.ID] = &stored
	return cloneUser(&stored), nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byID[id]
	if account == nil {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	return cloneUser(account), nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byEmail[email]
	if account == nil {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	return cloneUser(account), nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, account user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.byID[account.ID]
	if stored == nil {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	account.CreatedAt = stored.CreatedAt
	account.UpdatedAt = time.Now().UTC()
	*stored = account
	return cloneUser(stored), nil
}

func (r *fakeUserRepo) SetActive(ctx context.Context, id common.UUID, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byID[id]
	if account == nil {
		return common.NewError(common.CodeNotFound, "user not found", nil)
	}
	account.IsActive = active
	return nil
}

func cloneUser(account *user.User) *user.User {
	copied := *account
	copied.Skills = append([]string(nil), account.Skills...)
	return &copied
}

type fakeRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]auth.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]auth.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) Store(ctx context.Context, token auth.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token.Token] = token
	return nil
}

func (r *fakeRefreshTokenRepo) GetByToken(ctx context.Context, token string) (*auth.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	value, ok := r.tokens[token]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "refresh token not found", nil)
	}
	copied := value
	return &copied, nil
}

func (r *fakeRefreshTokenRepo) Revoke(ctx context.Context, token string, revokedAtUnix int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	value, ok := r.tokens[token]
	if !ok {
		return common.NewError(common.CodeNotFound, "refresh token not found", nil)
	}
	revokedAt := time.Unix(revokedAtUnix, 0).UTC()
	value.RevokedAt = &revokedAt
	r.tokens[token] = value
	return nil
}

func (r *fakeRefreshTokenRepo) RevokeAll(ctx context.Context, userID common.UUID, revokedAtUnix int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	revokedAt := time.Unix(revokedAtUnix, 0).UTC()
	for key, value := range r.tokens {
		if value.UserID == userID {
			value.RevokedAt = &revokedAt
			r.tokens[key] = value
		}
	}
	return nil
}

type fakeJobRepo struct {
	mu           sync.Mutex
	byID         map[common.UUID]*job.Job
	applications *fakeApplicationRepo
	lastFilter   job.Filter
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{byID: make(map[common.UUID]*job.Job)}
}

func (r *fakeJobRepo) Create(ctx context.Context, posting job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posting.ID = common.NewUUID()
	now := time.Now().UTC()
	posting.CreatedAt = now
	posting.UpdatedAt = now
	stored := posting
	r.byID[posting.ID] = &stored
	return cloneJob(&stored), nil
}

func (r *fakeJobRepo) Update(ctx context.Context, posting job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.byID[posting.ID]
	if stored == nil {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	posting.UpdatedAt = time.Now().UTC()
	*stored = posting
	return cloneJob(stored), nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posting := r.byID[id]
	if posting == nil {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	return cloneJob(posting), nil
}

func (r *fakeJobRepo) ListActive(ctx context.Context, filter job.Filter) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFilter = filter
	var items []job.Job
	for _, posting := range r.byID {
		if posting.Status == job.StatusActive {
			items = append(items, *cloneJob(posting))
		}
	}
	return items, nil
}

func (r *fakeJobRepo) ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Job
	for _, posting := range r.byID {
		if posting.RecruiterID == recruiterID {
			items = append(items, *cloneJob(posting))
		}
	}
	return items, nil
}

func (r *fakeJobRepo) IncrementViews(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	posting := r.byID[id]
	if posting == nil {
		return common.NewError(common.CodeNotFound, "job not found", nil)
	}
	posting.ViewsCount++
	return nil
}

func (r *fakeJobRepo) SyncApplicationsCount(ctx context.Context, id common.UUID) (int, error) {
	count := 0
	if r.applications != nil {
		count = r.applications.countActiveForJob(id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	posting := r.byID[id]
	if posting == nil {
		return 0, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	posting.ApplicationsCount = count
	return count, nil
}

func cloneJob(posting *job.Job) *job.Job {
	copied := *posting
	copied.Requirements = append([]string(nil), posting.Requirements...)
	copied.Responsibilities = append([]string(nil), posting.Responsibilities...)
	copied.Benefits = append([]string(nil), posting.Benefits...)
	copied.Skills = append([]string(nil), posting.Skills...)
	copied.Tags = append([]string(nil), posting.Tags...)
	return &copied
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*application.Application
	jobs *fakeJobRepo
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{byID: make(map[common.UUID]*application.Application)}
}

// newFakeStores wires the job and application fakes to each other so the
// applications-count sync and recruiter-scoped listings behave like the
// real schema.
func newFakeStores() (*fakeJobRepo, *fakeApplicationRepo) {
	jobs := newFakeJobRepo()
	applications := newFakeApplicationRepo()
	jobs.applications = applications
	applications.jobs = jobs
	return jobs, applications
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.JobID == app.JobID && existing.ApplicantID == app.ApplicantID {
			return nil, common.NewError(common.CodeConflict, "already applied to this job", nil)
		}
	}
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	stored := app
	r.byID[app.ID] = &stored
	return cloneApplication(&stored), nil
}

func (r *fakeApplicationRepo) Update(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.byID[app.ID]
	if stored == nil {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	app.UpdatedAt = time.Now().UTC()
	*stored = app
	return cloneApplication(stored), nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app := r.byID[id]
	if app == nil {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	return cloneApplication(app), nil
}

func (r *fakeApplicationRepo) FindByJobAndApplicant(ctx context.Context, jobID, applicantID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.byID {
		if app.JobID == jobID && app.ApplicantID == applicantID {
			return cloneApplication(app), nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *fakeApplicationRepo) ListByApplicant(ctx context.Context, applicantID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, app := range r.byID {
		if app.ApplicantID == applicantID {
			items = append(items, *cloneApplication(app))
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, app := range r.byID {
		if r.ownedBy(app.JobID, recruiterID) {
			items = append(items, *cloneApplication(app))
		}
	}
	return items, nil
}

func (r *fakeApplicationRepo) CountByStatusForRecruiter(ctx context.Context, recruiterID common.UUID) (map[application.Status]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := make(map[application.Status]int)
	for _, app := range r.byID {
		if r.ownedBy(app.JobID, recruiterID) {
			stats[app.Status]++
		}
	}
	return stats, nil
}

func (r *fakeApplicationRepo) ownedBy(jobID, recruiterID common.UUID) bool {
	if r.jobs == nil {
		return false
	}
	r.jobs.mu.Lock()
	defer r.jobs.mu.Unlock()
	posting := r.jobs.byID[jobID]
	return posting != nil && posting.RecruiterID == recruiterID
}

func (r *fakeApplicationRepo) countActiveForJob(jobID common.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, app := range r.byID {
		if app.JobID == jobID && app.Status != application.StatusWithdrawn {
			count++
		}
	}
	return count
}

func cloneApplication(app *application.Application) *application.Application {
	copied := *app
	copied.StatusHistory = append([]application.StatusChange(nil), app.StatusHistory...)
	if app.Resume != nil {
		resume := *app.Resume
		copied.Resume = &resume
	}
	if app.Interview != nil {
		interview := *app.Interview
		copied.Interview = &interview
	}
	return &copied
}

type fakeNotificationRepo struct {
	mu    sync.Mutex
	items []notification.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, item notification.Notification) (*notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = common.NewUUID()
	item.CreatedAt = time.Now().UTC()
	r.items = append(r.items, item)
	copied := item
	return &copied, nil
}

func (r *fakeNotificationRepo) ListByRecipient(ctx context.Context, recipientID common.UUID, limit, offset int) ([]notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []notification.Notification
	for _, item := range r.items {
		if item.RecipientID == recipientID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id, recipientID common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id && r.items[i].RecipientID == recipientID {
			r.items[i].Read = true
			return nil
		}
	}
	return common.NewError(common.CodeNotFound, "notification not found", nil)
}

func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context, recipientID common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].RecipientID == recipientID {
			r.items[i].Read = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) forRecipient(recipientID common.UUID) []notification.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []notification.Notification
	for _, item := range r.items {
		if item.RecipientID == recipientID {
			items = append(items, item)
		}
	}
	return items
}

type fakeSavedJobRepo struct {
	mu    sync.Mutex
	items map[string]savedjob.SavedJob
}

func newFakeSavedJobRepo() *fakeSavedJobRepo {
	return &fakeSavedJobRepo{items: make(map[string]savedjob.SavedJob)}
}

func savedKey(userID, jobID common.UUID) string {
	return string(userID) + "/" + string(jobID)
}

func (r *fakeSavedJobRepo) Create(ctx context.Context, item savedjob.SavedJob) (*savedjob.SavedJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := savedKey(item.UserID, item.JobID)
	if _, exists := r.items[key]; exists {
		return nil, common.NewError(common.CodeConflict, "job already saved", nil)
	}
	item.ID = common.NewUUID()
	item.CreatedAt = time.Now().UTC()
	r.items[key] = item
	copied := item
	return &copied, nil
}

func (r *fakeSavedJobRepo) Delete(ctx context.Context, userID, jobID common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := savedKey(userID, jobID)
	if _, exists := r.items[key]; !exists {
		return common.NewError(common.CodeNotFound, "saved job not found", nil)
	}
	delete(r.items, key)
	return nil
}

func (r *fakeSavedJobRepo) ListByUser(ctx context.Context, userID common.UUID) ([]savedjob.SavedJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []savedjob.SavedJob
	for _, item := range r.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}
