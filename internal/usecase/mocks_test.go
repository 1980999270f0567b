package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jobghar/internal/domain/application"
	"jobghar/internal/domain/job"
	"jobghar/internal/domain/user"
)

type mockUserRepo struct {
	byID    map[int64]user.User
	byEmail map[string]user.User
	tokens  map[int64]string

	createErr error
	created   *user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byID:    map[int64]user.User{},
		byEmail: map[string]user.User{},
		tokens:  map[int64]string{},
	}
}

func (m *mockUserRepo) add(u user.User) {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	if m.createErr != nil {
		return user.User{}, m.createErr
	}
	if _, ok := m.byEmail[u.Email]; ok {
		return user.User{}, user.ErrDuplicateEmail
	}
	u.ID = int64(len(m.byID) + 1)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.add(u)
	m.created = &u
	return u, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *mockUserRepo) UpdateAccessToken(_ context.Context, id int64, token string) error {
	if _, ok := m.byID[id]; !ok {
		return user.ErrNotFound
	}
	m.tokens[id] = token
	return nil
}

type mockJobRepo struct {
	bySlug      map[string]job.Job
	byEmployer  map[string][]job.Job
	listed      []job.Job
	inactivated []string
	incremented []string

	createErr    error
	updateErr    error
	incrementErr error

	created    *job.Job
	updated    *job.Job
	lastLimit  int
	lastOffset int
}

func newMockJobRepo() *mockJobRepo {
	return &mockJobRepo{
		bySlug:     map[string]job.Job{},
		byEmployer: map[string][]job.Job{},
	}
}

func (m *mockJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	if m.createErr != nil {
		return job.Job{}, m.createErr
	}
	j.ID = int64(len(m.bySlug) + 1)
	m.bySlug[j.Slug] = j
	m.created = &j
	return j, nil
}

func (m *mockJobRepo) GetBySlug(_ context.Context, slug string) (job.Job, error) {
	j, ok := m.bySlug[slug]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (m *mockJobRepo) ListActive(_ context.Context, limit, offset int) ([]job.Job, error) {
	m.lastLimit = limit
	m.lastOffset = offset
	return m.listed, nil
}

func (m *mockJobRepo) ListActiveByEmployerEmail(_ context.Context, email string) ([]job.Job, error) {
	return m.byEmployer[email], nil
}

func (m *mockJobRepo) Update(_ context.Context, j job.Job) (job.Job, error) {
	if m.updateErr != nil {
		return job.Job{}, m.updateErr
	}
	if _, ok := m.bySlug[j.Slug]; !ok {
		return job.Job{}, job.ErrNotFound
	}
	m.bySlug[j.Slug] = j
	m.updated = &j
	return j, nil
}

func (m *mockJobRepo) SetInactive(_ context.Context, slug string) error {
	j, ok := m.bySlug[slug]
	if !ok {
		return job.ErrNotFound
	}
	j.IsActive = false
	m.bySlug[slug] = j
	m.inactivated = append(m.inactivated, slug)
	return nil
}

func (m *mockJobRepo) IncrementApplicationsCount(_ context.Context, slug string) error {
	if m.incrementErr != nil {
		return m.incrementErr
	}
	j, ok := m.bySlug[slug]
	if !ok {
		return job.ErrNotFound
	}
	j.ApplicationsCount++
	m.bySlug[slug] = j
	m.incremented = append(m.incremented, slug)
	return nil
}

type mockApplicationRepo struct {
	byID map[int64]application.Application

	exists    bool
	existsErr error
	createErr error

	created    *application.Application
	lastStatus application.Status
	nextID     int64
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{byID: map[int64]application.Application{}}
}

func (m *mockApplicationRepo) add(a application.Application) {
	m.byID[a.ID] = a
}

func (m *mockApplicationRepo) Create(_ context.Context, a application.Application) (application.Application, error) {
	if m.createErr != nil {
		return application.Application{}, m.createErr
	}
	m.nextID++
	a.ID = m.nextID
	a.Status = application.StatusSubmitted
	a.AppliedAt = time.Now()
	m.byID[a.ID] = a
	m.created = &a
	return a, nil
}

func (m *mockApplicationRepo) ExistsByApplicantAndSlug(_ context.Context, _ int64, _ string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.exists, nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id int64) (application.Application, error) {
	a, ok := m.byID[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (m *mockApplicationRepo) GetByIDAndEmail(_ context.Context, id int64, email string) (application.Application, error) {
	a, ok := m.byID[id]
	if !ok || a.ApplicantEmail != email {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (m *mockApplicationRepo) ListByApplicant(_ context.Context, applicantID int64) ([]application.Application, error) {
	var out []application.Application
	for _, a := range m.byID {
		if a.ApplicantID == applicantID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) ListByJobSlugAndStatus(_ context.Context, jobSlug string, status application.Status) ([]application.Application, error) {
	m.lastStatus = status
	var out []application.Application
	for _, a := range m.byID {
		if a.JobSlug == jobSlug && a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) SetStatus(_ context.Context, id int64, status application.Status) (application.Application, error) {
	a, ok := m.byID[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	a.Status = status
	m.byID[id] = a
	return a, nil
}

type mockJobListCache struct {
	entries  map[string][]byte
	deleted  []string
	getErr   error
	setCalls int
}

func newMockJobListCache() *mockJobListCache {
	return &mockJobListCache{entries: map[string][]byte{}}
}

func (m *mockJobListCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	if m.getErr != nil {
		return false, m.getErr
	}
	raw, ok := m.entries[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("unmarshal cached value: %w", err)
	}
	return true, nil
}

func (m *mockJobListCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[key] = raw
	m.setCalls++
	return nil
}

func (m *mockJobListCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.deleted = append(m.deleted, pattern)
	m.entries = map[string][]byte{}
	return nil
}

type mockNotifier struct {
	received []application.Application
}

func (m *mockNotifier) ApplicationReceived(a application.Application) {
	m.received = append(m.received, a)
}
