package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"jobghar/internal/domain/job"
	"jobghar/internal/domain/user"
	"jobghar/internal/pkg/slug"
)

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrNotEmployer       = errors.New("only employers can create jobs")
	ErrNotJobOwner       = errors.New("job belongs to another employer")
	ErrDeadlineNotFuture = errors.New("deadline must be a future date")
)

const (
	defaultJobsPage  = 1
	defaultJobsLimit = 10

	jobsListKeyPrefix  = "jobs:list:"
	jobsListKeyPattern = "jobs:list:*"
)

type CreateJobInput struct {
	Title       string
	Company     string
	Description string
	Location    string
	Salary      int64
	JobType     string
	Category    string
	Deadline    time.Time
}

type UpdateJobInput struct {
	Title       *string
	Company     *string
	Description *string
	Location    *string
	Salary      *int64
	JobType     *string
	Category    *string
	Deadline    *time.Time
}

// JobListCache is the cache-aside surface for the public job listing.
// A nil cache disables caching without changing behavior.
type JobListCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, in CreateJobInput, employer user.User) (job.Job, error)
	GetAllJobs(ctx context.Context, page, limit int) ([]job.Job, error)
	GetJobBySlug(ctx context.Context, slug string) (job.Job, error)
	UpdateJob(ctx context.Context, slug string, patch UpdateJobInput, employer user.User) (job.Job, error)
	DeleteJob(ctx context.Context, slug string, employer user.User) error
	GetJobsByEmployer(ctx context.Context, email string) ([]job.Job, error)
	IncreaseApplicationsCount(ctx context.Context, slug string) error
}

type Jobs struct {
	jobs   job.Repository
	cache  JobListCache
	logger *log.Logger

	now func() time.Time
}

func NewJobUsecase(jobs job.Repository, cache JobListCache, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, cache: cache, logger: logger, now: time.Now}
}

func (u *Jobs) CreateJob(ctx context.Context, in CreateJobInput, employer user.User) (job.Job, error) {
	if employer.Role != user.RoleEmployer {
		return job.Job{}, ErrNotEmployer
	}

	title := strings.TrimSpace(in.Title)
	company := strings.TrimSpace(in.Company)
	if title == "" || company == "" || strings.TrimSpace(in.Description) == "" || strings.TrimSpace(in.Location) == "" {
		return job.Job{}, ErrInvalidInput
	}

	jobType, ok := job.ParseType(in.JobType)
	if !ok {
		return job.Job{}, ErrInvalidInput
	}
	category, ok := job.ParseCategory(in.Category)
	if !ok {
		return job.Job{}, ErrInvalidInput
	}

	if !in.Deadline.After(u.now()) {
		return job.Job{}, ErrDeadlineNotFuture
	}

	created, err := u.jobs.Create(ctx, job.Job{
		Title:       title,
		Slug:        slug.Make(title, company),
		Company:     company,
		Description: in.Description,
		Location:    in.Location,
		Salary:      in.Salary,
		JobType:     jobType,
		Category:    category,
		IsActive:    true,
		EmployerID:  employer.ID,
		Deadline:    in.Deadline,
	})
	if err != nil {
		return job.Job{}, ErrInternal
	}

	u.invalidateListing(ctx)
	return created, nil
}

func (u *Jobs) GetAllJobs(ctx context.Context, page, limit int) ([]job.Job, error) {
	if page < 1 {
		page = defaultJobsPage
	}
	if limit < 1 {
		limit = defaultJobsLimit
	}

	key := fmt.Sprintf("%s%d:%d", jobsListKeyPrefix, page, limit)
	if u.cache != nil {
		var cached []job.Job
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache HIT: %s", key)
			}
			return cached, nil
		}
	}

	jobs, err := u.jobs.ListActive(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, jobs, 0)
	}
	return jobs, nil
}

func (u *Jobs) GetJobBySlug(ctx context.Context, slug string) (job.Job, error) {
	j, err := u.jobs.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) UpdateJob(ctx context.Context, jobSlug string, patch UpdateJobInput, employer user.User) (job.Job, error) {
	j, err := u.jobs.GetBySlug(ctx, jobSlug)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}

	if j.EmployerID != employer.ID {
		return job.Job{}, ErrNotJobOwner
	}

	if patch.Title != nil {
		j.Title = *patch.Title
	}
	if patch.Company != nil {
		j.Company = *patch.Company
	}
	if patch.Description != nil {
		j.Description = *patch.Description
	}
	if patch.Location != nil {
		j.Location = *patch.Location
	}
	if patch.Salary != nil {
		j.Salary = *patch.Salary
	}
	if patch.JobType != nil {
		t, ok := job.ParseType(*patch.JobType)
		if !ok {
			return job.Job{}, ErrInvalidInput
		}
		j.JobType = t
	}
	if patch.Category != nil {
		c, ok := job.ParseCategory(*patch.Category)
		if !ok {
			return job.Job{}, ErrInvalidInput
		}
		j.Category = c
	}
	if patch.Deadline != nil {
		j.Deadline = *patch.Deadline
	}

	updated, err := u.jobs.Update(ctx, j)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}

	u.invalidateListing(ctx)
	return updated, nil
}

func (u *Jobs) DeleteJob(ctx context.Context, jobSlug string, employer user.User) error {
	j, err := u.jobs.GetBySlug(ctx, jobSlug)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}

	if j.EmployerID != employer.ID {
		return ErrNotJobOwner
	}

	if err := u.jobs.SetInactive(ctx, jobSlug); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}

	u.invalidateListing(ctx)
	return nil
}

func (u *Jobs) GetJobsByEmployer(ctx context.Context, email string) ([]job.Job, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrInvalidInput
	}

	jobs, err := u.jobs.ListActiveByEmployerEmail(ctx, email)
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *Jobs) IncreaseApplicationsCount(ctx context.Context, slug string) error {
	if err := u.jobs.IncrementApplicationsCount(ctx, slug); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrJobNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Jobs) invalidateListing(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, jobsListKeyPattern); err != nil && u.logger != nil {
		u.logger.Printf("[Jobs] Cache invalidation failed: %v", err)
	}
}
