package notification

import (
	"time"

	"nexthire/internal/common"
)

type RefKind string

const (
	RefJob         RefKind = "job"
	RefApplication RefKind = "application"
)

// Ref pairs the referenced entity kind with its id so the two can never
// drift apart.
type Ref struct {
	Kind RefKind     `json:"kind"`
	ID   common.UUID `json:"id"`
}

type Type string

const (
	TypeApplicationSubmitted Type = "application.submitted"
	TypeStatusChanged        Type = "application.status_changed"
	TypeInterviewScheduled   Type = "application.interview_scheduled"
	TypeApplicationWithdrawn Type = "application.withdrawn"
)

type Notification struct {
	ID          common.UUID `json:"id"`
	RecipientID common.UUID `json:"recipient_id"`
	Type        Type        `json:"type"`
	Title       string      `json:"title"`
	Message     string      `json:"message"`
	Ref         Ref         `json:"ref"`
	Read        bool        `json:"read"`
	CreatedAt   time.Time   `json:"created_at"`
}
