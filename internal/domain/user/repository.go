package user

import (
	"context"

	"nexthire/internal/common"
)

type Repository interface {
	Create(ctx context.Context, account User) (*User, error)
	GetByID(ctx context.Context, id common.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, account User) (*User, error)
	SetActive(ctx context.Context, id common.UUID, active bool) error
}
