package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobghar/internal/domain/application"
	"jobghar/internal/domain/job"
	"jobghar/internal/domain/user"
)

var (
	ErrCVRequired          = errors.New("cv file is required")
	ErrApplicantNotFound   = errors.New("applicant not found")
	ErrAlreadyApplied      = errors.New("already applied for this job")
	ErrDeadlinePassed      = errors.New("job application deadline has passed")
	ErrApplicationNotFound = errors.New("application not found")
)

type ApplyInput struct {
	JobSlug     string
	CoverLetter string
}

// ApplicationNotifier fans a freshly accepted application out to
// listeners (the employer websocket feed). Best effort only.
type ApplicationNotifier interface {
	ApplicationReceived(a application.Application)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, in ApplyInput, seekerID int64, cvRef string) (application.Application, error)
	GetMyApplications(ctx context.Context, seekerID int64) ([]application.Application, error)
	FindOneApplication(ctx context.Context, id int64, seekerEmail string) (application.Application, error)
	FindOneApplicationForEmployer(ctx context.Context, id int64) (application.Application, error)
	GetJobApplications(ctx context.Context, jobSlug, status string) ([]application.Application, error)
	MarkAsReviewed(ctx context.Context, id int64) (application.Application, error)
}

type Applications struct {
	applications application.Repository
	jobs         job.Repository
	users        user.Repository
	notifier     ApplicationNotifier

	now func() time.Time
}

func NewApplicationUsecase(applications application.Repository, jobs job.Repository, users user.Repository, notifier ApplicationNotifier) *Applications {
	return &Applications{applications: applications, jobs: jobs, users: users, notifier: notifier, now: time.Now}
}

func (u *Applications) Apply(ctx context.Context, in ApplyInput, seekerID int64, cvRef string) (application.Application, error) {
	if strings.TrimSpace(cvRef) == "" {
		return application.Application{}, ErrCVRequired
	}
	jobSlug := strings.TrimSpace(in.JobSlug)
	if jobSlug == "" {
		return application.Application{}, ErrInvalidInput
	}

	applicant, err := u.users.GetByID(ctx, seekerID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return application.Application{}, ErrApplicantNotFound
		}
		return application.Application{}, ErrInternal
	}

	exists, err := u.applications.ExistsByApplicantAndSlug(ctx, applicant.ID, jobSlug)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if exists {
		return application.Application{}, ErrAlreadyApplied
	}

	target, err := u.jobs.GetBySlug(ctx, jobSlug)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, ErrJobNotFound
		}
		return application.Application{}, ErrInternal
	}

	if target.Deadline.Before(u.now()) {
		return application.Application{}, ErrDeadlinePassed
	}

	// The insert and the job counter bump commit together; the unique
	// (applicant, job_slug) index settles any race the existence check
	// above let through.
	created, err := u.applications.Create(ctx, application.Application{
		ApplicantID:    applicant.ID,
		ApplicantName:  applicant.Name,
		ApplicantEmail: applicant.Email,
		JobSlug:        jobSlug,
		JobTitle:       target.Title,
		CV:             cvRef,
		CoverLetter:    in.CoverLetter,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrDuplicate):
			return application.Application{}, ErrAlreadyApplied
		case errors.Is(err, job.ErrNotFound):
			return application.Application{}, ErrJobNotFound
		default:
			return application.Application{}, ErrInternal
		}
	}

	if u.notifier != nil {
		u.notifier.ApplicationReceived(created)
	}
	return created, nil
}

func (u *Applications) GetMyApplications(ctx context.Context, seekerID int64) ([]application.Application, error) {
	apps, err := u.applications.ListByApplicant(ctx, seekerID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

// FindOneApplication scopes the lookup to the caller's email, so a
// seeker probing another seeker's application id gets not-found.
func (u *Applications) FindOneApplication(ctx context.Context, id int64, seekerEmail string) (application.Application, error) {
	a, err := u.applications.GetByIDAndEmail(ctx, id, normalizeEmail(seekerEmail))
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, ErrInternal
	}
	return a, nil
}

// FindOneApplicationForEmployer returns any application by id. There is
// deliberately no check that the caller's job owns it; role gating
// happens at the route layer. See DESIGN.md for the tradeoff.
func (u *Applications) FindOneApplicationForEmployer(ctx context.Context, id int64) (application.Application, error) {
	a, err := u.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, ErrInternal
	}
	return a, nil
}

func (u *Applications) GetJobApplications(ctx context.Context, jobSlug, status string) ([]application.Application, error) {
	jobSlug = strings.TrimSpace(jobSlug)
	if jobSlug == "" {
		return nil, ErrInvalidInput
	}

	st := application.StatusSubmitted
	if strings.TrimSpace(status) != "" {
		parsed, ok := application.ParseStatus(status)
		if !ok || (parsed != application.StatusSubmitted && parsed != application.StatusReviewed) {
			return nil, ErrInvalidInput
		}
		st = parsed
	}

	apps, err := u.applications.ListByJobSlugAndStatus(ctx, jobSlug, st)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

// MarkAsReviewed transitions unconditionally, even from a terminal
// status; current product behavior, kept as-is.
func (u *Applications) MarkAsReviewed(ctx context.Context, id int64) (application.Application, error) {
	a, err := u.applications.SetStatus(ctx, id, application.StatusReviewed)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, ErrInternal
	}
	return a, nil
}
