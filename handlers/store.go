package handlers

import (
	"context"
	"io"

	"github.com/R3Claimers/InsiderJobs/auth"
	"github.com/R3Claimers/InsiderJobs/models"
	"github.com/R3Claimers/InsiderJobs/storage"
)

// CompanyStore persists recruiter accounts
type CompanyStore interface {
	CreateCompany(ctx context.Context, company *models.Company) error
	GetCompany(ctx context.Context, id string) (*models.Company, error)
	GetCompanyByEmail(ctx context.Context, email string) (*models.Company, error)
}

// JobStore persists job postings
type JobStore interface {
	CreateJob(ctx context.Context, job *models.Job) error
	GetJob(ctx context.Context, id string) (*models.Job, error)
	ListJobsByCompany(ctx context.Context, companyID string) ([]models.Job, error)
	ListVisibleJobs(ctx context.Context) ([]models.Job, error)
	SetJobVisibility(ctx context.Context, id string, visible bool) error
	DeleteJob(ctx context.Context, id string) error
}

// ApplicationStore persists job applications
type ApplicationStore interface {
	CreateApplication(ctx context.Context, app *models.JobApplication) error
	GetApplication(ctx context.Context, id string) (*models.JobApplication, error)
	FindApplication(ctx context.Context, userID, jobID string) (*models.JobApplication, error)
	ListApplicationsByCompany(ctx context.Context, companyID string) ([]models.JobApplication, error)
	ListApplicationsByUser(ctx context.Context, userID string) ([]models.JobApplication, error)
	CountApplicationsByJob(ctx context.Context, jobID string) (int, error)
	UpdateApplicationStatus(ctx context.Context, id, status string) error
}

// UserStore persists job seekers
type UserStore interface {
	UpsertGoogleUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUserResume(ctx context.Context, id, resumeURL string, skills []string) error
}

// Store is everything the job board persists. storage.FirestoreClient implements it.
type Store interface {
	CompanyStore
	JobStore
	ApplicationStore
	UserStore
}

// Uploader stores uploaded files and returns their public URL
type Uploader interface {
	Upload(ctx context.Context, folder, ownerID, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}

// IdentityVerifier checks ID tokens issued to job seekers
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.GoogleUserInfo, error)
}

// LocationSearcher returns city suggestions for a query
type LocationSearcher interface {
	Search(ctx context.Context, query string) ([]models.CitySuggestion, error)
}

// SkillExtractor reports the known skills found in a stored resume
type SkillExtractor interface {
	ExtractSkills(path string) []string
}

var (
	_ Store    = (*storage.FirestoreClient)(nil)
	_ Uploader = (*storage.CloudStorageClient)(nil)
)
