package handlers

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/R3Claimers/InsiderJobs/auth"
	"github.com/R3Claimers/InsiderJobs/models"
	"github.com/R3Claimers/InsiderJobs/storage"
)

// memStore is an in-memory Store for handler tests
type memStore struct {
	mu        sync.Mutex
	seq       int
	companies map[string]models.Company
	jobs      map[string]models.Job
	apps      map[string]models.JobApplication
	users     map[string]models.User
}

func newMemStore() *memStore {
	return &memStore{
		companies: map[string]models.Company{},
		jobs:      map[string]models.Job{},
		apps:      map[string]models.JobApplication{},
		users:     map[string]models.User{},
	}
}

func (s *memStore) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *memStore) CreateCompany(ctx context.Context, company *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	company.Email = strings.ToLower(company.Email)
	for _, c := range s.companies {
		if c.Email == company.Email {
			return storage.ErrAlreadyExists
		}
	}
	company.ID = s.nextID("company")
	s.companies[company.ID] = *company
	return nil
}

func (s *memStore) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.companies[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &c, nil
}

func (s *memStore) GetCompanyByEmail(ctx context.Context, email string) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.companies {
		if c.Email == strings.ToLower(email) {
			return &c, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *memStore) CreateJob(ctx context.Context, job *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job.ID = s.nextID("job")
	s.jobs[job.ID] = *job
	return nil
}

func (s *memStore) GetJob(ctx context.Context, id string) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &j, nil
}

func (s *memStore) filterJobs(keep func(models.Job) bool) []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Job{}
	for _, j := range s.jobs {
		if keep(j) {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].Date.After(out[k].Date) })
	return out
}

func (s *memStore) ListJobsByCompany(ctx context.Context, companyID string) ([]models.Job, error) {
	return s.filterJobs(func(j models.Job) bool { return j.CompanyID == companyID }), nil
}

func (s *memStore) ListVisibleJobs(ctx context.Context) ([]models.Job, error) {
	return s.filterJobs(func(j models.Job) bool { return j.Visible }), nil
}

func (s *memStore) SetJobVisibility(ctx context.Context, id string, visible bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[id]
	if !ok {
		return storage.ErrNotFound
	}
	j.Visible = visible
	s.jobs[id] = j
	return nil
}

func (s *memStore) DeleteJob(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.jobs, id)
	for appID, a := range s.apps {
		if a.JobID == id {
			delete(s.apps, appID)
		}
	}
	return nil
}

func (s *memStore) CreateApplication(ctx context.Context, app *models.JobApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	app.ID = storage.ApplicationID(app.UserID, app.JobID)
	if _, ok := s.apps[app.ID]; ok {
		return storage.ErrAlreadyExists
	}
	if app.Status == "" {
		app.Status = models.StatusPending
	}
	s.apps[app.ID] = *app
	return nil
}

func (s *memStore) GetApplication(ctx context.Context, id string) (*models.JobApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.apps[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &a, nil
}

func (s *memStore) filterApps(keep func(models.JobApplication) bool) []models.JobApplication {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.JobApplication{}
	for _, a := range s.apps {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out
}

func (s *memStore) FindApplication(ctx context.Context, userID, jobID string) (*models.JobApplication, error) {
	apps := s.filterApps(func(a models.JobApplication) bool { return a.UserID == userID && a.JobID == jobID })
	if len(apps) == 0 {
		return nil, storage.ErrNotFound
	}
	return &apps[0], nil
}

func (s *memStore) ListApplicationsByCompany(ctx context.Context, companyID string) ([]models.JobApplication, error) {
	return s.filterApps(func(a models.JobApplication) bool { return a.CompanyID == companyID }), nil
}

func (s *memStore) ListApplicationsByUser(ctx context.Context, userID string) ([]models.JobApplication, error) {
	return s.filterApps(func(a models.JobApplication) bool { return a.UserID == userID }), nil
}

func (s *memStore) CountApplicationsByJob(ctx context.Context, jobID string) (int, error) {
	return len(s.filterApps(func(a models.JobApplication) bool { return a.JobID == jobID })), nil
}

func (s *memStore) UpdateApplicationStatus(ctx context.Context, id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.apps[id]
	if !ok {
		return storage.ErrNotFound
	}
	a.Status = status
	s.apps[id] = a
	return nil
}

func (s *memStore) UpsertGoogleUser(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.users[user.ID]; ok {
		existing.Name = user.Name
		existing.Email = user.Email
		existing.Image = user.Image
		s.users[user.ID] = existing
		return &existing, nil
	}
	if user.Skills == nil {
		user.Skills = []string{}
	}
	s.users[user.ID] = *user
	return user, nil
}

func (s *memStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (s *memStore) UpdateUserResume(ctx context.Context, id, resumeURL string, skills []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	u.Resume = resumeURL
	u.Skills = skills
	s.users[id] = u
	return nil
}

// memUploader records uploads and returns a fake public URL
type memUploader struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (u *memUploader) Upload(ctx context.Context, folder, ownerID, filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.objects == nil {
		u.objects = map[string][]byte{}
	}
	url := "https://storage.test/" + folder + "/" + ownerID + "/" + filename
	u.objects[url] = data
	return url, nil
}

func (u *memUploader) Delete(ctx context.Context, url string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.objects[url]; !ok {
		return fmt.Errorf("no object %s", url)
	}
	delete(u.objects, url)
	return nil
}

type stubVerifier map[string]*auth.GoogleUserInfo

func (v stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.GoogleUserInfo, error) {
	info, ok := v[idToken]
	if !ok {
		return nil, fmt.Errorf("unknown token %q", idToken)
	}
	return info, nil
}

type stubSearcher struct {
	cities []models.CitySuggestion
	err    error
	calls  []string
}

func (s *stubSearcher) Search(ctx context.Context, query string) ([]models.CitySuggestion, error) {
	s.calls = append(s.calls, query)
	return s.cities, s.err
}
