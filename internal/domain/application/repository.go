package application

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("application not found")
	ErrDuplicate = errors.New("application already exists for this job")
)

type Repository interface {
	// Create inserts the application and bumps the parent job's
	// applications counter in one transaction. A duplicate
	// (applicant, jobSlug) pair surfaces as ErrDuplicate even when
	// two identical requests race past the existence check.
	Create(ctx context.Context, a Application) (Application, error)

	ExistsByApplicantAndSlug(ctx context.Context, applicantID int64, jobSlug string) (bool, error)

	GetByID(ctx context.Context, id int64) (Application, error)
	GetByIDAndEmail(ctx context.Context, id int64, email string) (Application, error)

	ListByApplicant(ctx context.Context, applicantID int64) ([]Application, error)
	ListByJobSlugAndStatus(ctx context.Context, jobSlug string, status Status) ([]Application, error)

	SetStatus(ctx context.Context, id int64, status Status) (Application, error)
}
