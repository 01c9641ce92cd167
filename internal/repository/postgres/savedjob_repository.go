package postgres

import (
	"context"
	"database/sql"
	"time"

	"nexthire/internal/common"
	"nexthire/internal/domain/savedjob"
)

type SavedJobRepository struct {
	db *sql.DB
}

func NewSavedJobRepository(db *sql.DB) *SavedJobRepository {
	return &SavedJobRepository{db: db}
}

func (r *SavedJobRepository) Create(ctx context.Context, item savedjob.SavedJob) (*savedjob.SavedJob, error) {
	item.ID = common.NewUUID()
	item.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO saved_jobs (id, user_id, job_id, note, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		item.ID, item.UserID, item.JobID, item.Note, item.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "job already saved", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to save job", err)
	}
	return &item, nil
}

func (r *SavedJobRepository) Delete(ctx context.Context, userID, jobID common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to unsave job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "saved job not found", sql.ErrNoRows)
	}
	return nil
}

func (r *SavedJobRepository) ListByUser(ctx context.Context, userID common.UUID) ([]savedjob.SavedJob, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, user_id, job_id, note, created_at
		FROM saved_jobs WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list saved jobs", err)
	}
	defer rows.Close()
	var items []savedjob.SavedJob
	for rows.Next() {
		var item savedjob.SavedJob
		if err := rows.Scan(&item.ID, &item.UserID, &item.JobID, &item.Note, &item.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan saved job", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to iterate saved jobs", err)
	}
	return items, nil
}
