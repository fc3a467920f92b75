package storage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/R3Claimers/InsiderJobs/models"
)

func setJobID(j *models.Job, id string) { j.ID = id }

// CreateJob stores a new job posting
func (f *FirestoreClient) CreateJob(ctx context.Context, job *models.Job) error {
	job.ID = uuid.NewString()
	if job.Date.IsZero() {
		job.Date = time.Now()
	}

	if _, err := f.client.Collection(jobsCollection).Doc(job.ID).Create(ctx, job); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// GetJob retrieves a job by ID
func (f *FirestoreClient) GetJob(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	if err := getDoc(ctx, f.client.Collection(jobsCollection).Doc(id), &job); err != nil {
		return nil, err
	}
	job.ID = id
	return &job, nil
}

// ListJobsByCompany returns all jobs of a company, newest first
func (f *FirestoreClient) ListJobsByCompany(ctx context.Context, companyID string) ([]models.Job, error) {
	q := f.client.Collection(jobsCollection).Where("companyId", "==", companyID)
	jobs, err := queryAll(ctx, q, setJobID)
	if err != nil {
		return nil, err
	}
	sortJobsNewestFirst(jobs)
	return jobs, nil
}

// ListVisibleJobs returns every job currently open to applicants, newest first
func (f *FirestoreClient) ListVisibleJobs(ctx context.Context) ([]models.Job, error) {
	q := f.client.Collection(jobsCollection).Where("visible", "==", true)
	jobs, err := queryAll(ctx, q, setJobID)
	if err != nil {
		return nil, err
	}
	sortJobsNewestFirst(jobs)
	return jobs, nil
}

// SetJobVisibility updates the visible flag of a job
func (f *FirestoreClient) SetJobVisibility(ctx context.Context, id string, visible bool) error {
	_, err := f.client.Collection(jobsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "visible", Value: visible},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update job visibility: %w", err)
	}
	return nil
}

// DeleteJob removes a job together with every application made to it
func (f *FirestoreClient) DeleteJob(ctx context.Context, id string) error {
	jobRef := f.client.Collection(jobsCollection).Doc(id)
	appsQuery := f.client.Collection(applicationsCollection).Where("jobId", "==", id)

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		apps, err := tx.Documents(appsQuery).GetAll()
		if err != nil {
			return fmt.Errorf("failed to list applications: %w", err)
		}
		for _, doc := range apps {
			if err := tx.Delete(doc.Ref); err != nil {
				return err
			}
		}
		return tx.Delete(jobRef)
	})
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

func sortJobsNewestFirst(jobs []models.Job) {
	sort.SliceStable(jobs, func(i, j int) bool { return jobs[i].Date.After(jobs[j].Date) })
}
