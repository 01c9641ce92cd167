package application_test

import (
	"testing"
	"time"

	"nexthire/internal/common"
	"nexthire/internal/domain/application"
)

func TestParseStatus_ValidValues(t *testing.T) {
	valid := []string{"pending", "reviewing", "shortlisted", "interviewed", "accepted", "rejected", "withdrawn"}
	for _, s := range valid {
		got, err := application.ParseStatus(s)
		if err != nil {
			t.Errorf("ParseStatus(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseStatus(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseStatus_InvalidValue(t *testing.T) {
	for _, s := range []string{"", "PENDING", "archived", "open"} {
		if _, err := application.ParseStatus(s); err == nil {
			t.Errorf("ParseStatus(%q) expected error, got nil", s)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	for _, s := range []application.Status{application.StatusAccepted, application.StatusRejected} {
		if !application.IsTerminal(s) {
			t.Errorf("IsTerminal(%s) should return true", s)
		}
	}
	for _, s := range []application.Status{
		application.StatusPending,
		application.StatusReviewing,
		application.StatusShortlisted,
		application.StatusInterviewed,
		application.StatusWithdrawn,
	} {
		if application.IsTerminal(s) {
			t.Errorf("IsTerminal(%s) should return false", s)
		}
	}
}

func TestCanWithdraw(t *testing.T) {
	for _, s := range []application.Status{
		application.StatusPending,
		application.StatusReviewing,
		application.StatusShortlisted,
		application.StatusInterviewed,
	} {
		if !application.CanWithdraw(s) {
			t.Errorf("CanWithdraw(%s) should return true", s)
		}
	}
	for _, s := range []application.Status{
		application.StatusAccepted,
		application.StatusRejected,
		application.StatusWithdrawn,
	} {
		if application.CanWithdraw(s) {
			t.Errorf("CanWithdraw(%s) should return false", s)
		}
	}
}

func TestRecruiterSettable(t *testing.T) {
	if application.RecruiterSettable(application.StatusWithdrawn) {
		t.Error("RecruiterSettable(withdrawn) should return false")
	}
	for _, s := range []application.Status{
		application.StatusPending,
		application.StatusReviewing,
		application.StatusShortlisted,
		application.StatusInterviewed,
		application.StatusAccepted,
		application.StatusRejected,
	} {
		if !application.RecruiterSettable(s) {
			t.Errorf("RecruiterSettable(%s) should return true", s)
		}
	}
}

func TestRecordTransition_AppendsInOrder(t *testing.T) {
	var app application.Application
	actor := common.NewUUID()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	app.RecordTransition(application.StatusPending, actor, "", base)
	app.RecordTransition(application.StatusReviewing, actor, "note", base.Add(time.Hour))

	if app.Status != application.StatusReviewing {
		t.Fatalf("Status = %s, want reviewing", app.Status)
	}
	if len(app.StatusHistory) != 2 {
		t.Fatalf("len(StatusHistory) = %d, want 2", len(app.StatusHistory))
	}
	first, second := app.StatusHistory[0], app.StatusHistory[1]
	if first.Status != application.StatusPending || second.Status != application.StatusReviewing {
		t.Fatalf("history out of order: %+v", app.StatusHistory)
	}
	if second.Note != "note" || second.ActorID != actor {
		t.Fatalf("unexpected second entry %+v", second)
	}
	if !second.ChangedAt.After(first.ChangedAt) {
		t.Fatalf("timestamps not monotone: %v then %v", first.ChangedAt, second.ChangedAt)
	}
}
