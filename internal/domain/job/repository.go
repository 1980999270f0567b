package job

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("job not found")
	ErrDuplicateSlug = errors.New("job slug already exists")
)

type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)

	// GetBySlug resolves the employer relation and ignores the active flag.
	GetBySlug(ctx context.Context, slug string) (Job, error)

	// ListActive returns active jobs newest first.
	ListActive(ctx context.Context, limit, offset int) ([]Job, error)
	ListActiveByEmployerEmail(ctx context.Context, email string) ([]Job, error)

	Update(ctx context.Context, j Job) (Job, error)
	SetInactive(ctx context.Context, slug string) error

	// IncrementApplicationsCount is a single atomic UPDATE; it never
	// read-modify-writes the counter at the application layer.
	IncrementApplicationsCount(ctx context.Context, slug string) error
}
