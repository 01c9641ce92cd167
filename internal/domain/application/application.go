package application

import (
	"time"

	"nexthire/internal/common"
)

type ExpectedSalary struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Period   string `json:"period"`
}

// ResumeMeta is the upload collaborator's output; the lifecycle only
// stores it, it never touches file contents.
type ResumeMeta struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
}

type Interview struct {
	ScheduledAt time.Time `json:"scheduled_at"`
	Duration    int       `json:"duration"`
	Type        string    `json:"type"`
	Location    string    `json:"location,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// StatusChange is one append-only audit entry: who moved the application
// where, when, and why.
type StatusChange struct {
	Status    Status      `json:"status"`
	ChangedAt time.Time   `json:"changed_at"`
	ActorID   common.UUID `json:"actor_id"`
	Note      string      `json:"note,omitempty"`
}

type Application struct {
	ID             common.UUID    `json:"id"`
	JobID          common.UUID    `json:"job_id"`
	ApplicantID    common.UUID    `json:"applicant_id"`
	Status         Status         `json:"status"`
	CoverLetter    string         `json:"cover_letter"`
	ExpectedSalary ExpectedSalary `json:"expected_salary"`
	Experience     string         `json:"experience,omitempty"`
	Resume         *ResumeMeta    `json:"resume,omitempty"`
	RecruiterNotes string         `json:"recruiter_notes,omitempty"`
	Interview      *Interview     `json:"interview,omitempty"`
	StatusHistory  []StatusChange `json:"status_history"`
	IsWithdrawn    bool           `json:"is_withdrawn"`
	WithdrawnAt    *time.Time     `json:"withdrawn_at,omitempty"`
	WithdrawReason string         `json:"withdraw_reason,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// RecordTransition appends the audit entry and moves the status. Every
// mutating operation goes through here so the history never skips a change.
func (a *Application) RecordTransition(status Status, actorID common.UUID, note string, at time.Time) {
	a.Status = status
	a.StatusHistory = append(a.StatusHistory, StatusChange{
		Status:    status,
		ChangedAt: at,
		ActorID:   actorID,
		Note:      note,
	})
}
