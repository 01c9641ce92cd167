package user

import (
	"time"

	"nexthire/internal/common"
)

type Role string

const (
	RoleJobseeker Role = "jobseeker"
	RoleRecruiter Role = "recruiter"
)

type User struct {
	ID               common.UUID `json:"id"`
	Email            string      `json:"email"`
	PasswordHash     string      `json:"-"`
	Name             string      `json:"name"`
	Role             Role        `json:"role"`
	IsActive         bool        `json:"is_active"`
	ProfileCompleted bool        `json:"profile_completed"`
	Skills           []string    `json:"skills,omitempty"`
	Experience       string      `json:"experience,omitempty"`
	Company          string      `json:"company,omitempty"`
	Position         string      `json:"position,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
