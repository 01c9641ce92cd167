package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"nexthire/internal/common"
	"nexthire/internal/domain/user"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, password_hash, name, role, is_active, profile_completed, skills, experience, company, position, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, account user.User) (*user.User, error) {
	account.ID = common.NewUUID()
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO users (id, email, password_hash, name, role, is_active, profile_completed, skills, experience, company, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		account.ID, account.Email, account.PasswordHash, account.Name, account.Role, account.IsActive, account.ProfileCompleted,
		pq.Array(account.Skills), account.Experience, account.Company, account.Position, account.CreatedAt, account.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "email already registered", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create user", err)
	}
	return &account, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, account user.User) (*user.User, error) {
	account.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE users SET name = $1, profile_completed = $2, skills = $3, experience = $4, company = $5, position = $6, updated_at = $7
		WHERE id = $8`,
		account.Name, account.ProfileCompleted, pq.Array(account.Skills), account.Experience, account.Company, account.Position, account.UpdatedAt, account.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update user", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "user not found", sql.ErrNoRows)
	}
	return &account, nil
}

func (r *UserRepository) SetActive(ctx context.Context, id common.UUID, active bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET is_active = $1, updated_at = $2 WHERE id = $3`, active, time.Now().UTC(), id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update user", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "user not found", sql.ErrNoRows)
	}
	return nil
}

func scanUser(row *sql.Row) (*user.User, error) {
	var account user.User
	if err := row.Scan(&account.ID, &account.Email, &account.PasswordHash, &account.Name, &account.Role, &account.IsActive, &account.ProfileCompleted,
		pq.Array(&account.Skills), &account.Experience, &account.Company, &account.Position, &account.CreatedAt, &account.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "user not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load user", err)
	}
	return &account, nil
}
