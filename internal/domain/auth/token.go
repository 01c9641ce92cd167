package auth

import (
	"context"
	"time"

	"nexthire/internal/common"
)

type RefreshToken struct {
	ID        common.UUID
	UserID    common.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

type RefreshTokenRepository interface {
	Store(ctx context.Context, token RefreshToken) error
	GetByToken(ctx context.Context, token string) (*RefreshToken, error)
	Revoke(ctx context.Context, token string, revokedAtUnix int64) error
	RevokeAll(ctx context.Context, userID common.UUID, revokedAtUnix int64) error
}
