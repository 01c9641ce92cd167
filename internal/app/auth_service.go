package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"nexthire/internal/common"
	"nexthire/internal/domain/auth"
	"nexthire/internal/domain/user"
	"nexthire/internal/security"
)

type Logger interface {
	Info(msg string)
	Error(msg string)
}

type AuthService struct {
	users         user.Repository
	refreshTokens auth.RefreshTokenRepository
	jwtProvider   *security.JWTProvider
	logger        Logger
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(users user.Repository, refreshTokens auth.RefreshTokenRepository, jwtProvider *security.JWTProvider, logger Logger, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		users:         users,
		refreshTokens: refreshTokens,
		jwtProvider:   jwtProvider,
		logger:        logger,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLength = 8

func (s *AuthService) Register(ctx context.Context, email, password, name, role string) (*auth.TokenPair, *user.User, error) {
	fields := map[string]string{}
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		fields["email"] = "invalid email address"
	}
	if len(password) < minPasswordLength {
		fields["password"] = fmt.Sprintf("password must be at least %d characters", minPasswordLength)
	}
	if strings.TrimSpace(name) == "" {
		fields["name"] = "name is required"
	}
	normalizedRole, err := normalizeRole(role)
	if err != nil {
		fields["role"] = "role must be jobseeker or recruiter"
	}
	if len(fields) > 0 {
		return nil, nil, common.NewValidationError("invalid registration", fields)
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	account, err := s.users.Create(ctx, user.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(name),
		Role:         normalizedRole,
		IsActive:     true,
	})
	if err != nil {
		return nil, nil, err
	}
	pair, err := s.issueTokens(ctx, account)
	if err != nil {
		return nil, nil, err
	}
	s.logInfo(fmt.Sprintf("user registered user_id=%s role=%s", account.ID, account.Role))
	return pair, account, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*auth.TokenPair, *user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	account, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
		}
		return nil, nil, err
	}
	if !security.CheckPassword(account.PasswordHash, password) {
		s.logInfo(fmt.Sprintf("login failed user_id=%s", account.ID))
		return nil, nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
	}
	if !account.IsActive {
		return nil, nil, common.NewError(common.CodeUnauthorized, "account is deactivated", nil)
	}
	pair, err := s.issueTokens(ctx, account)
	if err != nil {
		return nil, nil, err
	}
	s.logInfo(fmt.Sprintf("user logged in user_id=%s", account.ID))
	return pair, account, nil
}

func (s *AuthService) Refresh(ctx context.Context, token string) (*auth.TokenPair, *user.User, error) {
	stored, err := s.refreshTokens.GetByToken(ctx, token)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, nil, common.NewError(common.CodeUnauthorized, "invalid refresh token", nil)
		}
		return nil, nil, err
	}
	if stored.RevokedAt != nil {
		return nil, nil, common.NewError(common.CodeUnauthorized, "refresh token revoked", nil)
	}
	if stored.ExpiresAt.Before(time.Now().UTC()) {
		return nil, nil, common.NewError(common.CodeUnauthorized, "refresh token expired", nil)
	}
	account, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, nil, err
	}
	if !account.IsActive {
		return nil, nil, common.NewError(common.CodeUnauthorized, "account is deactivated", nil)
	}
	if err := s.refreshTokens.Revoke(ctx, token, time.Now().UTC().Unix()); err != nil {
		return nil, nil, err
	}
	pair, err := s.issueTokens(ctx, account)
	if err != nil {
		return nil, nil, err
	}
	return pair, account, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	err := s.refreshTokens.Revoke(ctx, token, time.Now().UTC().Unix())
	if err == nil {
		s.logInfo("user logged out")
	}
	return err
}

func (s *AuthService) issueTokens(ctx context.Context, account *user.User) (*auth.TokenPair, error) {
	accessToken, expiresAt, err := s.jwtProvider.Generate(account.ID, string(account.Role), s.accessTTL)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue access token", err)
	}
	refreshValue, err := generateRefreshToken()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue refresh token", err)
	}
	now := time.Now().UTC()
	if err := s.refreshTokens.Store(ctx, auth.RefreshToken{
		ID:        common.NewUUID(),
		UserID:    account.ID,
		Token:     refreshValue,
		ExpiresAt: now.Add(s.refreshTTL),
		CreatedAt: now,
	}); err != nil {
		s.logError("failed to store refresh token: " + err.Error())
		return nil, err
	}
	return &auth.TokenPair{AccessToken: accessToken, RefreshToken: refreshValue, ExpiresAt: expiresAt}, nil
}

func generateRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func normalizeRole(role string) (user.Role, error) {
	normalized := user.Role(strings.ToLower(strings.TrimSpace(role)))
	switch normalized {
	case user.RoleJobseeker, user.RoleRecruiter:
		return normalized, nil
	default:
		return "", common.NewValidationError("invalid role", map[string]string{"role": "role must be jobseeker or recruiter"})
	}
}

func (s *AuthService) logInfo(msg string) {
	if s.logger != nil {
		s.logger.Info(msg)
	}
}

func (s *AuthService) logError(msg string) {
	if s.logger != nil {
		s.logger.Error(msg)
	}
}
