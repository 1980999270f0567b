package repository

import (
	"context"
	"errors"

	"jobghar/internal/database"
	"jobghar/internal/domain/application"
	"jobghar/internal/domain/job"

	"github.com/jackc/pgx/v5"
)

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `id, applicant_id, applicant_name, applicant_email, job_slug, job_title, cv, cover_letter, status, applied_at`

// Create inserts the application and bumps the job counter in a single
// transaction, so the record and the denormalized count never diverge.
func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return application.Application{}, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	row := tx.QueryRow(ctx,
		`INSERT INTO applications (applicant_id, applicant_name, applicant_email, job_slug, job_title, cv, cover_letter)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+applicationColumns,
		a.ApplicantID, a.ApplicantName, a.ApplicantEmail, a.JobSlug, a.JobTitle, a.CV, a.CoverLetter,
	)
	created, err := scanApplication(row)
	if err != nil {
		if isUniqueViolation(err) {
			return application.Application{}, application.ErrDuplicate
		}
		return application.Application{}, err
	}

	affected, err := tx.Exec(ctx,
		`UPDATE jobs SET applications_count = applications_count + 1, updated_at = now() WHERE slug = $1`,
		a.JobSlug,
	)
	if err != nil {
		return application.Application{}, err
	}
	if affected == 0 {
		return application.Application{}, job.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return application.Application{}, err
	}
	return created, nil
}

func (r *PostgresApplicationRepository) ExistsByApplicantAndSlug(ctx context.Context, applicantID int64, jobSlug string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE applicant_id = $1 AND job_slug = $2)`,
		applicantID, jobSlug,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id int64) (application.Application, error) {
	row := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) GetByIDAndEmail(ctx context.Context, id int64, email string) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1 AND applicant_email = $2`,
		id, email,
	)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) ListByApplicant(ctx context.Context, applicantID int64) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+`
		 FROM applications
		 WHERE applicant_id = $1
		 ORDER BY applied_at DESC`,
		applicantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows)
}

func (r *PostgresApplicationRepository) ListByJobSlugAndStatus(ctx context.Context, jobSlug string, status application.Status) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+`
		 FROM applications
		 WHERE job_slug = $1 AND status = $2
		 ORDER BY applied_at DESC`,
		jobSlug, status,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApplications(rows)
}

func (r *PostgresApplicationRepository) SetStatus(ctx context.Context, id int64, status application.Status) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE applications SET status = $2 WHERE id = $1 RETURNING `+applicationColumns,
		id, status,
	)
	return scanApplication(row)
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	err := row.Scan(
		&a.ID, &a.ApplicantID, &a.ApplicantName, &a.ApplicantEmail,
		&a.JobSlug, &a.JobTitle, &a.CV, &a.CoverLetter, &a.Status, &a.AppliedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func collectApplications(rows database.Rows) ([]application.Application, error) {
	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
