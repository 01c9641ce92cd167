package app

import (
	"context"
	"testing"

	"nexthire/internal/common"
)

func TestSavedJobServiceSave_RequiresExistingJob(t *testing.T) {
	jobs := newFakeJobRepo()
	saved := newFakeSavedJobRepo()
	service := NewSavedJobService(saved, jobs)
	userID := common.NewUUID()

	_, err := service.Save(context.Background(), userID, common.NewUUID(), "")
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found for missing job, got %v", err)
	}

	posting := seedActiveJob(t, jobs, common.NewUUID())
	item, err := service.Save(context.Background(), userID, posting.ID, "  follow up next week ")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if item.Note != "follow up next week" {
		t.Fatalf("expected trimmed note, got %q", item.Note)
	}

	_, err = service.Save(context.Background(), userID, posting.ID, "")
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict on duplicate save, got %v", err)
	}
}

func TestSavedJobServiceUnsaveAndList(t *testing.T) {
	jobs := newFakeJobRepo()
	saved := newFakeSavedJobRepo()
	service := NewSavedJobService(saved, jobs)
	userID := common.NewUUID()
	posting := seedActiveJob(t, jobs, common.NewUUID())

	if _, err := service.Save(context.Background(), userID, posting.ID, ""); err != nil {
		t.Fatalf("save: %v", err)
	}
	items, err := service.List(context.Background(), userID)
	if err != nil || len(items) != 1 {
		t.Fatalf("expected one saved job, got %v %v", items, err)
	}
	if err := service.Unsave(context.Background(), userID, posting.ID); err != nil {
		t.Fatalf("unsave: %v", err)
	}
	err = service.Unsave(context.Background(), userID, posting.ID)
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found on repeat unsave, got %v", err)
	}
}
