package job

import (
	"time"

	"nexthire/internal/common"
)

type Status string

const (
	StatusDraft  Status = "draft"
	StatusActive Status = "active"
	StatusPaused Status = "paused"
	StatusClosed Status = "closed"
)

type EmploymentType string

const (
	TypeFullTime   EmploymentType = "full-time"
	TypePartTime   EmploymentType = "part-time"
	TypeContract   EmploymentType = "contract"
	TypeInternship EmploymentType = "internship"
)

type ExperienceLevel string

const (
	LevelEntry  ExperienceLevel = "entry"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
	LevelLead   ExperienceLevel = "lead"
)

type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
	Period   string `json:"period"`
}

type Job struct {
	ID                common.UUID     `json:"id"`
	RecruiterID       common.UUID     `json:"recruiter_id"`
	Title             string          `json:"title"`
	Company           string          `json:"company"`
	Location          string          `json:"location"`
	Type              EmploymentType  `json:"type"`
	Remote            bool            `json:"remote"`
	Salary            Salary          `json:"salary"`
	ExperienceLevel   ExperienceLevel `json:"experience_level"`
	Description       string          `json:"description"`
	Requirements      []string        `json:"requirements"`
	Responsibilities  []string        `json:"responsibilities"`
	Benefits          []string        `json:"benefits"`
	Skills            []string        `json:"skills"`
	Status            Status          `json:"status"`
	ViewsCount        int             `json:"views_count"`
	ApplicationsCount int             `json:"applications_count"`
	Tags              []string        `json:"tags"`
	Deadline          time.Time       `json:"deadline"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
