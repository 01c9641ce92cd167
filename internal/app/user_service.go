package app

import (
	"context"
	"strings"

	"nexthire/internal/common"
	"nexthire/internal/domain/user"
)

type UserService struct {
	users user.Repository
}

func NewUserService(users user.Repository) *UserService {
	return &UserService{users: users}
}

// ProfileUpdate carries optional field updates; nil means "leave as is".
type ProfileUpdate struct {
	Name            *string
	Skills          []string
	Experience      *string
	Company         *string
	Position        *string
	CompleteProfile bool
}

func (s *UserService) Get(ctx context.Context, id common.UUID) (*user.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id common.UUID, update ProfileUpdate) (*user.User, error) {
	account, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, common.NewValidationError("invalid profile", map[string]string{"name": "name must not be empty"})
		}
		account.Name = strings.TrimSpace(*update.Name)
	}
	switch account.Role {
	case user.RoleJobseeker:
		if update.Skills != nil {
			account.Skills = update.Skills
		}
		if update.Experience != nil {
			account.Experience = *update.Experience
		}
	case user.RoleRecruiter:
		if update.Company != nil {
			account.Company = strings.TrimSpace(*update.Company)
		}
		if update.Position != nil {
			account.Position = strings.TrimSpace(*update.Position)
		}
	}
	if update.CompleteProfile {
		if err := validateProfileComplete(*account); err != nil {
			return nil, err
		}
		account.ProfileCompleted = true
	}
	return s.users.UpdateProfile(ctx, *account)
}

func (s *UserService) Deactivate(ctx context.Context, id common.UUID) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}
	return s.users.SetActive(ctx, id, false)
}

// validateProfileComplete checks role-specific required fields; the
// requirements only bind once completion is requested.
func validateProfileComplete(account user.User) error {
	fields := map[string]string{}
	switch account.Role {
	case user.RoleJobseeker:
		if len(account.Skills) == 0 {
			fields["skills"] = "at least one skill is required"
		}
		if strings.TrimSpace(account.Experience) == "" {
			fields["experience"] = "experience is required"
		}
	case user.RoleRecruiter:
		if account.Company == "" {
			fields["company"] = "company is required"
		}
		if account.Position == "" {
			fields["position"] = "position is required"
		}
	}
	if len(fields) > 0 {
		return common.NewValidationError("profile is incomplete", fields)
	}
	return nil
}
