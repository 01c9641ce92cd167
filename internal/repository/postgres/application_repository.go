package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"nexthire/internal/common"
	"nexthire/internal/domain/application"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, job_id, applicant_id, status, cover_letter,
	expected_salary_amount, expected_salary_currency, expected_salary_period, experience,
	resume_filename, resume_path, resume_size, recruiter_notes,
	interview_scheduled_at, interview_duration, interview_type, interview_location, interview_notes,
	status_history, is_withdrawn, withdrawn_at, withdraw_reason, created_at, updated_at`

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	history, err := json.Marshal(app.StatusHistory)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to encode status history", err)
	}
	resumeFilename, resumePath, resumeSize := resumeFields(app.Resume)
	ivAt, ivDuration, ivType, ivLocation, ivNotes := interviewFields(app.Interview)
	_, err = r.db.ExecContext(ctx, `INSERT INTO applications (id, job_id, applicant_id, status, cover_letter,
		expected_salary_amount, expected_salary_currency, expected_salary_period, experience,
		resume_filename, resume_path, resume_size, recruiter_notes,
		interview_scheduled_at, interview_duration, interview_type, interview_location, interview_notes,
		status_history, is_withdrawn, withdrawn_at, withdraw_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`,
		app.ID, app.JobID, app.ApplicantID, app.Status, app.CoverLetter,
		app.ExpectedSalary.Amount, app.ExpectedSalary.Currency, app.ExpectedSalary.Period, app.Experience,
		resumeFilename, resumePath, resumeSize, app.RecruiterNotes,
		ivAt, ivDuration, ivType, ivLocation, ivNotes,
		history, app.IsWithdrawn, app.WithdrawnAt, app.WithdrawReason, app.CreatedAt, app.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "already applied to this job", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) Update(ctx context.Context, app application.Application) (*application.Application, error) {
	app.UpdatedAt = time.Now().UTC()
	history, err := json.Marshal(app.StatusHistory)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to encode status history", err)
	}
	resumeFilename, resumePath, resumeSize := resumeFields(app.Resume)
	ivAt, ivDuration, ivType, ivLocation, ivNotes := interviewFields(app.Interview)
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1, recruiter_notes = $2,
		resume_filename = $3, resume_path = $4, resume_size = $5,
		interview_scheduled_at = $6, interview_duration = $7, interview_type = $8, interview_location = $9, interview_notes = $10,
		status_history = $11, is_withdrawn = $12, withdrawn_at = $13, withdraw_reason = $14, updated_at = $15
		WHERE id = $16`,
		app.Status, app.RecruiterNotes,
		resumeFilename, resumePath, resumeSize,
		ivAt, ivDuration, ivType, ivLocation, ivNotes,
		history, app.IsWithdrawn, app.WithdrawnAt, app.WithdrawReason, app.UpdatedAt, app.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return app, nil
}

func (r *ApplicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 AND applicant_id = $2`, jobID, applicantID)
	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return app, nil
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID common.UUID) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE applicant_id = $1 ORDER BY created_at DESC`, applicantID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *ApplicationRepository) ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+prefixColumns("a", applicationColumns)+`
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.recruiter_id = $1
		ORDER BY a.created_at DESC`, recruiterID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list recruiter applications", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *ApplicationRepository) CountByStatusForRecruiter(ctx context.Context, recruiterID common.UUID) (map[application.Status]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.status, COUNT(*)
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.recruiter_id = $1
		GROUP BY a.status`, recruiterID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to count applications", err)
	}
	defer rows.Close()
	counts := make(map[application.Status]int)
	for rows.Next() {
		var status application.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application counts", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to iterate application counts", err)
	}
	return counts, nil
}

func scanApplication(row rowScanner) (*application.Application, error) {
	var app application.Application
	var resumeFilename, resumePath sql.NullString
	var resumeSize sql.NullInt64
	var ivAt sql.NullTime
	var ivDuration sql.NullInt64
	var ivType, ivLocation, ivNotes sql.NullString
	var history []byte
	var withdrawnAt sql.NullTime
	if err := row.Scan(&app.ID, &app.JobID, &app.ApplicantID, &app.Status, &app.CoverLetter,
		&app.ExpectedSalary.Amount, &app.ExpectedSalary.Currency, &app.ExpectedSalary.Period, &app.Experience,
		&resumeFilename, &resumePath, &resumeSize, &app.RecruiterNotes,
		&ivAt, &ivDuration, &ivType, &ivLocation, &ivNotes,
		&history, &app.IsWithdrawn, &withdrawnAt, &app.WithdrawReason, &app.CreatedAt, &app.UpdatedAt); err != nil {
		return nil, err
	}
	if resumeFilename.Valid {
		app.Resume = &application.ResumeMeta{
			Filename: resumeFilename.String,
			Path:     resumePath.String,
			Size:     resumeSize.Int64,
		}
	}
	if ivAt.Valid {
		app.Interview = &application.Interview{
			ScheduledAt: ivAt.Time,
			Duration:    int(ivDuration.Int64),
			Type:        ivType.String,
			Location:    ivLocation.String,
			Notes:       ivNotes.String,
		}
	}
	if withdrawnAt.Valid {
		t := withdrawnAt.Time
		app.WithdrawnAt = &t
	}
	if len(history) > 0 {
		if err := json.Unmarshal(history, &app.StatusHistory); err != nil {
			return nil, err
		}
	}
	return &app, nil
}

func collectApplications(rows *sql.Rows) ([]application.Application, error) {
	var items []application.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, *app)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to iterate applications", err)
	}
	return items, nil
}

func resumeFields(resume *application.ResumeMeta) (sql.NullString, sql.NullString, sql.NullInt64) {
	if resume == nil {
		return sql.NullString{}, sql.NullString{}, sql.NullInt64{}
	}
	return sql.NullString{String: resume.Filename, Valid: true},
		sql.NullString{String: resume.Path, Valid: true},
		sql.NullInt64{Int64: resume.Size, Valid: true}
}

func interviewFields(iv *application.Interview) (sql.NullTime, sql.NullInt64, sql.NullString, sql.NullString, sql.NullString) {
	if iv == nil {
		return sql.NullTime{}, sql.NullInt64{}, sql.NullString{}, sql.NullString{}, sql.NullString{}
	}
	return sql.NullTime{Time: iv.ScheduledAt, Valid: true},
		sql.NullInt64{Int64: int64(iv.Duration), Valid: true},
		sql.NullString{String: iv.Type, Valid: true},
		sql.NullString{String: iv.Location, Valid: true},
		sql.NullString{String: iv.Notes, Valid: true}
}
