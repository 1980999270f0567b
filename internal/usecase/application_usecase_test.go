package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobghar/internal/domain/application"
	"jobghar/internal/domain/job"
	"jobghar/internal/domain/user"
)

func applicationFixtures() (*mockApplicationRepo, *mockJobRepo, *mockUserRepo) {
	apps := newMockApplicationRepo()
	jobs := newMockJobRepo()
	users := newMockUserRepo()

	users.add(user.User{ID: testSeeker.ID, Name: testSeeker.Name, Email: testSeeker.Email, Role: user.RoleSeeker})
	jobs.bySlug["frontend-developer-google-abc123"] = job.Job{
		ID:         1,
		Title:      "Frontend Developer",
		Slug:       "frontend-developer-google-abc123",
		EmployerID: testEmployer.ID,
		IsActive:   true,
		Deadline:   time.Now().Add(48 * time.Hour),
	}
	return apps, jobs, users
}

func TestApplications_Apply(t *testing.T) {
	apps, jobs, users := applicationFixtures()
	notifier := &mockNotifier{}
	uc := NewApplicationUsecase(apps, jobs, users, notifier)

	created, err := uc.Apply(context.Background(), ApplyInput{
		JobSlug:     "frontend-developer-google-abc123",
		CoverLetter: "I am keen.",
	}, testSeeker.ID, "/uploads/cvs/cv.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if created.Status != application.StatusSubmitted {
		t.Fatalf("expected submitted status, got %q", created.Status)
	}
	if created.ApplicantName != testSeeker.Name || created.ApplicantEmail != testSeeker.Email {
		t.Fatalf("applicant snapshot missing: %+v", created)
	}
	if created.JobTitle != "Frontend Developer" {
		t.Fatalf("job title snapshot missing, got %q", created.JobTitle)
	}
	if created.CV != "/uploads/cvs/cv.pdf" {
		t.Fatalf("unexpected cv ref: %q", created.CV)
	}
	if len(notifier.received) != 1 || notifier.received[0].ID != created.ID {
		t.Fatalf("expected one notification for the new application")
	}
}

func TestApplications_Apply_MissingCV(t *testing.T) {
	apps, jobs, users := applicationFixtures()
	uc := NewApplicationUsecase(apps, jobs, users, nil)

	_, err := uc.Apply(context.Background(), ApplyInput{JobSlug: "frontend-developer-google-abc123"}, testSeeker.ID, "  ")
	if !errors.Is(err, ErrCVRequired) {
		t.Fatalf("expected ErrCVRequired, got %v", err)
	}
}

func TestApplications_Apply_UnknownApplicant(t *testing.T) {
	apps, jobs, users := applicationFixtures()
	uc := NewApplicationUsecase(apps, jobs, users, nil)

	_, err := uc.Apply(context.Background(), ApplyInput{JobSlug: "frontend-developer-google-abc123"}, 404, "/uploads/cvs/cv.pdf")
	if !errors.Is(err, ErrApplicantNotFound) {
		t.Fatalf("expected ErrApplicantNotFound, got %v", err)
	}
}

func TestApplications_Apply_AlreadyApplied(t *testing.T) {
	apps, jobs, users := applicationFixtures()
	apps.exists = true
	uc := NewApplicationUsecase(apps, jobs, users, nil)

	_, err := uc.Apply(context.Background(), ApplyInput{JobSlug: "frontend-developer-google-abc123"}, testSeeker.ID, "/uploads/cvs/cv.pdf")
	if !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
	if apps.created != nil {
		t.Fatalf("duplicate must not reach the repository")
	}
}

func TestApplications_Apply_DuplicateRace(t *testing.T) {
	apps, jobs, users := applicationFixtures()
	apps.createErr = application.ErrDuplicate
	notifier := &mockNotifier{}
	uc := NewApplicationUsecase(apps, jobs, users, notifier)

	_, err := uc.Apply(context.Background(), ApplyInput{JobSlug: "frontend-developer-google-abc123"}, testSeeker.ID, "/uploads/cvs/cv.pdf")
	if !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied from insert conflict, got %v", err)
	}
	if len(notifier.received) != 0 {
		t.Fatalf("failed apply must not notify")
	}
}

func TestApplications_Apply_JobNotFound(t *testing.T) {
	apps, jobs, users := applicationFixtures()
	uc := NewApplicationUsecase(apps, jobs, users, nil)

	_, err := uc.Apply(context.Background(), ApplyInput{JobSlug: "ghost-job-000000"}, testSeeker.ID, "/uploads/cvs/cv.pdf")
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplications_Apply_DeadlinePassed(t *testing.T) {
	apps, jobs, users := applicationFixtures()
	uc := NewApplicationUsecase(apps, jobs, users, nil)
	uc.now = func() time.Time { return time.Now().Add(100 * 24 * time.Hour) }

	_, err := uc.Apply(context.Background(), ApplyInput{JobSlug: "frontend-developer-google-abc123"}, testSeeker.ID, "/uploads/cvs/cv.pdf")
	if !errors.Is(err, ErrDeadlinePassed) {
		t.Fatalf("expected ErrDeadlinePassed, got %v", err)
	}
}

func TestApplications_GetMyApplications(t *testing.T) {
	apps, jobs, users := applicationFixtures()
	apps.add(application.Application{ID: 1, ApplicantID: testSeeker.ID, JobSlug: "a"})
	apps.add(application.Application{ID: 2, ApplicantID: 999, JobSlug: "b"})
	uc := NewApplicationUsecase(apps, jobs, users, nil)

	mine, err := uc.GetMyApplications(context.Background(), testSeeker.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != 1 {
		t.Fatalf("expected only the caller's applications, got %+v", mine)
	}
}

func TestApplications_FindOneApplication_ScopedToCaller(t *testing.T) {
	apps, jobs, users := applicationFixtures()
	apps.add(application.Application{ID: 5, ApplicantID: 999, ApplicantEmail: "other@example.com"})
	uc := NewApplicationUsecase(apps, jobs, users, nil)

	// A seeker probing someone else's application id gets not-found,
	// not forbidden.
	_, err := uc.FindOneApplication(context.Background(), 5, testSeeker.Email)
	if !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}

	got, err := uc.FindOneApplication(context.Background(), 5, "Other@Example.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != 5 {
		t.Fatalf("expected application 5, got %d", got.ID)
	}
}

func TestApplications_FindOneApplicationForEmployer_Unscoped(t *testing.T) {
	apps, jobs, users := applicationFixtures()
	apps.add(application.Application{ID: 9, ApplicantID: 999, JobSlug: "someone-elses-job-xyz000"})
	uc := NewApplicationUsecase(apps, jobs, users, nil)

	got, err := uc.FindOneApplicationForEmployer(context.Background(), 9)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != 9 {
		t.Fatalf("expected application 9, got %d", got.ID)
	}

	if _, err := uc.FindOneApplicationForEmployer(context.Background(), 404); !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestApplications_GetJobApplications(t *testing.T) {
	apps, jobs, users := applicationFixtures()
	apps.add(application.Application{ID: 1, JobSlug: "j", Status: application.StatusSubmitted})
	apps.add(application.Application{ID: 2, JobSlug: "j", Status: application.StatusReviewed})
	uc := NewApplicationUsecase(apps, jobs, users, nil)

	got, err := uc.GetJobApplications(context.Background(), "j", "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Status != application.StatusSubmitted {
		t.Fatalf("expected submitted default filter, got %+v", got)
	}

	got, err = uc.GetJobApplications(context.Background(), "j", "reviewed")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected reviewed application, got %+v", got)
	}
}

func TestApplications_GetJobApplications_StatusValidation(t *testing.T) {
	apps, jobs, users := applicationFixtures()
	uc := NewApplicationUsecase(apps, jobs, users, nil)

	for _, status := range []string{"accepted", "rejected", "bogus"} {
		if _, err := uc.GetJobApplications(context.Background(), "j", status); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("status %q: expected ErrInvalidInput, got %v", status, err)
		}
	}

	if _, err := uc.GetJobApplications(context.Background(), "  ", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty slug, got %v", err)
	}
}

func TestApplications_MarkAsReviewed(t *testing.T) {
	apps, jobs, users := applicationFixtures()
	apps.add(application.Application{ID: 3, Status: application.StatusSubmitted})
	apps.add(application.Application{ID: 4, Status: application.StatusRejected})
	uc := NewApplicationUsecase(apps, jobs, users, nil)

	got, err := uc.MarkAsReviewed(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != application.StatusReviewed {
		t.Fatalf("expected reviewed status, got %q", got.Status)
	}

	// The transition is unconditional; a rejected application flips too.
	got, err = uc.MarkAsReviewed(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != application.StatusReviewed {
		t.Fatalf("expected reviewed status from rejected, got %q", got.Status)
	}

	if _, err := uc.MarkAsReviewed(context.Background(), 404); !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}
