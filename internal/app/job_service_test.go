package app

import (
	"context"
	"testing"

	"nexthire/internal/common"
	"nexthire/internal/domain/job"
)

func validJob(recruiterID common.UUID) job.Job {
	return job.Job{
		RecruiterID:     recruiterID,
		Title:           "Senior Go Developer",
		Company:         "Acme",
		Location:        "Berlin",
		Type:            job.TypeFullTime,
		ExperienceLevel: job.LevelSenior,
		Description:     "Own the payments platform",
		Skills:          []string{"Go", "PostgreSQL"},
		Salary:          job.Salary{Min: 70000, Max: 95000, Currency: "EUR", Period: "yearly"},
	}
}

func TestJobServiceCreate_DefaultsDraftAndTags(t *testing.T) {
	jobs := newFakeJobRepo()
	service := NewJobService(jobs, nil)

	created, err := service.Create(context.Background(), validJob(common.NewUUID()))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.Status != job.StatusDraft {
		t.Fatalf("expected draft status, got %s", created.Status)
	}
	if created.Deadline.IsZero() {
		t.Fatalf("expected a default deadline")
	}
	if len(created.Tags) == 0 {
		t.Fatalf("expected derived tags")
	}
	if created.ViewsCount != 0 || created.ApplicationsCount != 0 {
		t.Fatalf("expected zeroed counters, got %d/%d", created.ViewsCount, created.ApplicationsCount)
	}
}

func TestJobServiceCreate_Validates(t *testing.T) {
	jobs := newFakeJobRepo()
	service := NewJobService(jobs, nil)

	cases := []struct {
		name   string
		mutate func(*job.Job)
	}{
		{"short title", func(j *job.Job) { j.Title = "Go" }},
		{"missing company", func(j *job.Job) { j.Company = " " }},
		{"missing description", func(j *job.Job) { j.Description = "" }},
		{"bad type", func(j *job.Job) { j.Type = "gig" }},
		{"bad level", func(j *job.Job) { j.ExperienceLevel = "guru" }},
		{"negative salary", func(j *job.Job) { j.Salary.Min = -1 }},
		{"inverted salary", func(j *job.Job) { j.Salary.Min = 100; j.Salary.Max = 50 }},
	}
	for _, tc := range cases {
		posting := validJob(common.NewUUID())
		tc.mutate(&posting)
		_, err := service.Create(context.Background(), posting)
		if !common.Is(err, common.CodeValidation) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestJobServiceUpdate_PreservesCountersAndOwnership(t *testing.T) {
	jobs := newFakeJobRepo()
	service := NewJobService(jobs, nil)
	recruiterID := common.NewUUID()

	created, err := service.Create(context.Background(), validJob(recruiterID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	created.ViewsCount = 7
	created.ApplicationsCount = 3
	if _, err := jobs.Update(context.Background(), *created); err != nil {
		t.Fatalf("seed counters: %v", err)
	}

	edited := validJob(recruiterID)
	edited.ID = created.ID
	edited.Title = "Staff Go Developer"
	edited.ViewsCount = 999

	updated, err := service.Update(context.Background(), edited)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Title != "Staff Go Developer" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
	if updated.ViewsCount != 7 || updated.ApplicationsCount != 3 {
		t.Fatalf("expected counters preserved, got %d/%d", updated.ViewsCount, updated.ApplicationsCount)
	}

	edited.RecruiterID = common.NewUUID()
	_, err = service.Update(context.Background(), edited)
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden for foreign recruiter, got %v", err)
	}
}

func TestJobServiceUpdateStatus_RejectsUnknown(t *testing.T) {
	jobs := newFakeJobRepo()
	service := NewJobService(jobs, nil)
	recruiterID := common.NewUUID()

	created, err := service.Create(context.Background(), validJob(recruiterID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := service.UpdateStatus(context.Background(), recruiterID, created.ID, "ACTIVE"); err != nil {
		t.Fatalf("expected case-insensitive status, got %v", err)
	}
	_, err = service.UpdateStatus(context.Background(), recruiterID, created.ID, "archived")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestJobServiceDelete_ClosesInsteadOfRemoving(t *testing.T) {
	jobs := newFakeJobRepo()
	service := NewJobService(jobs, nil)
	recruiterID := common.NewUUID()

	created, err := service.Create(context.Background(), validJob(recruiterID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := service.Delete(context.Background(), recruiterID, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	stored, err := jobs.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("expected job to remain, got %v", err)
	}
	if stored.Status != job.StatusClosed {
		t.Fatalf("expected closed status, got %s", stored.Status)
	}
}

func TestJobServiceGet_HidesNonActiveFromPublic(t *testing.T) {
	jobs := newFakeJobRepo()
	service := NewJobService(jobs, nil)
	recruiterID := common.NewUUID()

	created, err := service.Create(context.Background(), validJob(recruiterID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := service.Get(context.Background(), created.ID, recruiterID); err != nil {
		t.Fatalf("owner should see draft, got %v", err)
	}
	_, err = service.Get(context.Background(), created.ID, common.NewUUID())
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found for public draft view, got %v", err)
	}

	if _, err := service.UpdateStatus(context.Background(), recruiterID, created.ID, job.StatusActive); err != nil {
		t.Fatalf("activate: %v", err)
	}
	viewed, err := service.Get(context.Background(), created.ID, common.NewUUID())
	if err != nil {
		t.Fatalf("public active view: %v", err)
	}
	if viewed.ViewsCount != 1 {
		t.Fatalf("expected view counter bump, got %d", viewed.ViewsCount)
	}

	owner, err := service.Get(context.Background(), created.ID, recruiterID)
	if err != nil {
		t.Fatalf("owner view: %v", err)
	}
	if owner.ViewsCount != 1 {
		t.Fatalf("owner view should not bump the counter, got %d", owner.ViewsCount)
	}
}

func TestJobServiceGetByRecruiter_OwnerOnlyWithoutViewBump(t *testing.T) {
	jobs := newFakeJobRepo()
	service := NewJobService(jobs, nil)
	recruiterID := common.NewUUID()

	created, err := service.Create(context.Background(), validJob(recruiterID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := service.UpdateStatus(context.Background(), recruiterID, created.ID, job.StatusActive); err != nil {
		t.Fatalf("activate: %v", err)
	}

	owned, err := service.GetByRecruiter(context.Background(), recruiterID, created.ID)
	if err != nil {
		t.Fatalf("owner view: %v", err)
	}
	if owned.ViewsCount != 0 {
		t.Fatalf("owner view must not count, got %d", owned.ViewsCount)
	}

	// A foreign recruiter probing an active posting gets Forbidden and
	// leaves the counter alone.
	_, err = service.GetByRecruiter(context.Background(), common.NewUUID(), created.ID)
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	stored, _ := jobs.GetByID(context.Background(), created.ID)
	if stored.ViewsCount != 0 {
		t.Fatalf("foreign probe bumped the counter to %d", stored.ViewsCount)
	}
}

func TestJobServiceListActive_ClampsLimit(t *testing.T) {
	jobs := newFakeJobRepo()
	service := NewJobService(jobs, nil)

	if _, err := service.ListActive(context.Background(), job.Filter{Limit: -5, Offset: -1}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if jobs.lastFilter.Limit != 20 || jobs.lastFilter.Offset != 0 {
		t.Fatalf("expected clamped defaults, got %+v", jobs.lastFilter)
	}
	if _, err := service.ListActive(context.Background(), job.Filter{Limit: 500}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if jobs.lastFilter.Limit != 20 {
		t.Fatalf("expected oversized limit clamped, got %d", jobs.lastFilter.Limit)
	}
}
