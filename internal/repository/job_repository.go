package repository

import (
	"context"
	"errors"

	"jobghar/internal/database"
	"jobghar/internal/domain/job"
	"jobghar/internal/domain/user"

	"github.com/jackc/pgx/v5"
)

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, slug, company, description, location, salary, job_type, category, is_active, employer_id, applications_count, deadline, created_at, updated_at`

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (title, slug, company, description, location, salary, job_type, category, is_active, employer_id, deadline)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+jobColumns,
		j.Title, j.Slug, j.Company, j.Description, j.Location, j.Salary,
		j.JobType, j.Category, j.IsActive, j.EmployerID, j.Deadline,
	)
	created, err := scanJob(row)
	if err != nil {
		if isUniqueViolation(err) {
			return job.Job{}, job.ErrDuplicateSlug
		}
		return job.Job{}, err
	}
	return created, nil
}

func (r *PostgresJobRepository) GetBySlug(ctx context.Context, slug string) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT j.id, j.title, j.slug, j.company, j.description, j.location, j.salary,
		        j.job_type, j.category, j.is_active, j.employer_id, j.applications_count,
		        j.deadline, j.created_at, j.updated_at,
		        u.id, u.name, u.email, u.role
		 FROM jobs j
		 JOIN users u ON u.id = j.employer_id
		 WHERE j.slug = $1`,
		slug,
	)

	var j job.Job
	var emp user.User
	err := row.Scan(
		&j.ID, &j.Title, &j.Slug, &j.Company, &j.Description, &j.Location, &j.Salary,
		&j.JobType, &j.Category, &j.IsActive, &j.EmployerID, &j.ApplicationsCount,
		&j.Deadline, &j.CreatedAt, &j.UpdatedAt,
		&emp.ID, &emp.Name, &emp.Email, &emp.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}

	j.Employer = &emp
	return j, nil
}

func (r *PostgresJobRepository) ListActive(ctx context.Context, limit, offset int) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE is_active
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *PostgresJobRepository) ListActiveByEmployerEmail(ctx context.Context, email string) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT j.id, j.title, j.slug, j.company, j.description, j.location, j.salary,
		        j.job_type, j.category, j.is_active, j.employer_id, j.applications_count,
		        j.deadline, j.created_at, j.updated_at
		 FROM jobs j
		 JOIN users u ON u.id = j.employer_id
		 WHERE j.is_active AND u.email = $1
		 ORDER BY j.created_at DESC`,
		email,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectJobs(rows)
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE jobs
		 SET title = $2, company = $3, description = $4, location = $5, salary = $6,
		     job_type = $7, category = $8, deadline = $9, updated_at = now()
		 WHERE slug = $1
		 RETURNING `+jobColumns,
		j.Slug, j.Title, j.Company, j.Description, j.Location, j.Salary,
		j.JobType, j.Category, j.Deadline,
	)
	updated, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return updated, nil
}

func (r *PostgresJobRepository) SetInactive(ctx context.Context, slug string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs SET is_active = FALSE, updated_at = now() WHERE slug = $1`,
		slug,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) IncrementApplicationsCount(ctx context.Context, slug string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE jobs SET applications_count = applications_count + 1, updated_at = now() WHERE slug = $1`,
		slug,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return job.ErrNotFound
	}
	return nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Slug, &j.Company, &j.Description, &j.Location, &j.Salary,
		&j.JobType, &j.Category, &j.IsActive, &j.EmployerID, &j.ApplicationsCount,
		&j.Deadline, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return job.Job{}, err
	}
	return j, nil
}

func collectJobs(rows database.Rows) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
