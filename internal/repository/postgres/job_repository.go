package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"nexthire/internal/common"
	"nexthire/internal/domain/application"
	"nexthire/internal/domain/job"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `id, recruiter_id, title, company, location, employment_type, remote,
	salary_min, salary_max, salary_currency, salary_period, experience_level, description,
	requirements, responsibilities, benefits, skills, status, views_count, applications_count,
	tags, deadline, created_at, updated_at`

func (r *JobRepository) Create(ctx context.Context, posting job.Job) (*job.Job, error) {
	posting.ID = common.NewUUID()
	now := time.Now().UTC()
	posting.CreatedAt = now
	posting.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO jobs (id, recruiter_id, title, company, location, employment_type, remote,
		salary_min, salary_max, salary_currency, salary_period, experience_level, description,
		requirements, responsibilities, benefits, skills, status, views_count, applications_count, tags, deadline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`,
		posting.ID, posting.RecruiterID, posting.Title, posting.Company, posting.Location, posting.Type, posting.Remote,
		posting.Salary.Min, posting.Salary.Max, posting.Salary.Currency, posting.Salary.Period, posting.ExperienceLevel, posting.Description,
		pq.Array(posting.Requirements), pq.Array(posting.Responsibilities), pq.Array(posting.Benefits), pq.Array(posting.Skills),
		posting.Status, posting.ViewsCount, posting.ApplicationsCount, pq.Array(posting.Tags), posting.Deadline, posting.CreatedAt, posting.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &posting, nil
}

func (r *JobRepository) Update(ctx context.Context, posting job.Job) (*job.Job, error) {
	posting.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET title = $1, company = $2, location = $3, employment_type = $4, remote = $5,
		salary_min = $6, salary_max = $7, salary_currency = $8, salary_period = $9, experience_level = $10, description = $11,
		requirements = $12, responsibilities = $13, benefits = $14, skills = $15, status = $16, tags = $17, deadline = $18, updated_at = $19
		WHERE id = $20 AND recruiter_id = $21`,
		posting.Title, posting.Company, posting.Location, posting.Type, posting.Remote,
		posting.Salary.Min, posting.Salary.Max, posting.Salary.Currency, posting.Salary.Period, posting.ExperienceLevel, posting.Description,
		pq.Array(posting.Requirements), pq.Array(posting.Responsibilities), pq.Array(posting.Benefits), pq.Array(posting.Skills),
		posting.Status, pq.Array(posting.Tags), posting.Deadline, posting.UpdatedAt, posting.ID, posting.RecruiterID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return &posting, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	posting, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return posting, nil
}

func (r *JobRepository) ListActive(ctx context.Context, filter job.Filter) ([]job.Job, error) {
	conditions := []string{"status = $1"}
	args := []any{job.StatusActive}
	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, "%"+q+"%", strings.ToLower(q))
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR $%d = ANY(tags))", len(args)-1, len(args)))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		conditions = append(conditions, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conditions = append(conditions, fmt.Sprintf("employment_type = $%d", len(args)))
	}
	if filter.ExperienceLevel != "" {
		args = append(args, filter.ExperienceLevel)
		conditions = append(conditions, fmt.Sprintf("experience_level = $%d", len(args)))
	}
	if filter.Remote != nil {
		args = append(args, *filter.Remote)
		conditions = append(conditions, fmt.Sprintf("remote = $%d", len(args)))
	}
	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		jobColumns, strings.Join(conditions, " AND "), len(args)-1, len(args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *JobRepository) ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE recruiter_id = $1 ORDER BY created_at DESC`, recruiterID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list recruiter jobs", err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *JobRepository) IncrementViews(ctx context.Context, id common.UUID) error {
	_, err := r.db.ExecContext(ctx, `UPDATE jobs SET views_count = views_count + 1 WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to increment views", err)
	}
	return nil
}

// SyncApplicationsCount recomputes the counter from the applications table
// in a single statement so concurrent writers cannot interleave between the
// read and the write.
func (r *JobRepository) SyncApplicationsCount(ctx context.Context, id common.UUID) (int, error) {
	row := r.db.QueryRowContext(ctx, `UPDATE jobs SET applications_count = (
			SELECT COUNT(*) FROM applications a WHERE a.job_id = jobs.id AND a.status <> $2
		), updated_at = $3 WHERE id = $1 RETURNING applications_count`,
		id, application.StatusWithdrawn, time.Now().UTC())
	var count int
	if err := row.Scan(&count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return 0, common.NewError(common.CodeInternal, "failed to sync applications count", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*job.Job, error) {
	var posting job.Job
	if err := row.Scan(&posting.ID, &posting.RecruiterID, &posting.Title, &posting.Company, &posting.Location, &posting.Type, &posting.Remote,
		&posting.Salary.Min, &posting.Salary.Max, &posting.Salary.Currency, &posting.Salary.Period, &posting.ExperienceLevel, &posting.Description,
		pq.Array(&posting.Requirements), pq.Array(&posting.Responsibilities), pq.Array(&posting.Benefits), pq.Array(&posting.Skills),
		&posting.Status, &posting.ViewsCount, &posting.ApplicationsCount, pq.Array(&posting.Tags), &posting.Deadline, &posting.CreatedAt, &posting.UpdatedAt); err != nil {
		return nil, err
	}
	return &posting, nil
}

func collectJobs(rows *sql.Rows) ([]job.Job, error) {
	var items []job.Job
	for rows.Next() {
		posting, err := scanJob(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
		}
		items = append(items, *posting)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to iterate jobs", err)
	}
	return items, nil
}
