package storage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	firestorepb "cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/R3Claimers/InsiderJobs/models"
)

func setApplicationID(a *models.JobApplication, id string) { a.ID = id }

// ApplicationID is the document ID of a user's application to a job. One
// document per pair makes a second application fail at create time.
func ApplicationID(userID, jobID string) string {
	return userID + "_" + jobID
}

// CreateApplication stores a new job application, or returns ErrAlreadyExists
// if the user already applied to the job
func (f *FirestoreClient) CreateApplication(ctx context.Context, app *models.JobApplication) error {
	app.ID = ApplicationID(app.UserID, app.JobID)
	if app.Date.IsZero() {
		app.Date = time.Now()
	}
	if app.Status == "" {
		app.Status = models.StatusPending
	}

	if _, err := f.client.Collection(applicationsCollection).Doc(app.ID).Create(ctx, app); err != nil {
		return createErr(err, "application")
	}
	return nil
}

// GetApplication retrieves an application by ID
func (f *FirestoreClient) GetApplication(ctx context.Context, id string) (*models.JobApplication, error) {
	var app models.JobApplication
	if err := getDoc(ctx, f.client.Collection(applicationsCollection).Doc(id), &app); err != nil {
		return nil, err
	}
	app.ID = id
	return &app, nil
}

// FindApplication returns the application of a user to a job, or ErrNotFound
func (f *FirestoreClient) FindApplication(ctx context.Context, userID, jobID string) (*models.JobApplication, error) {
	return f.GetApplication(ctx, ApplicationID(userID, jobID))
}

// ListApplicationsByCompany returns every application to a company's jobs
func (f *FirestoreClient) ListApplicationsByCompany(ctx context.Context, companyID string) ([]models.JobApplication, error) {
	q := f.client.Collection(applicationsCollection).Where("companyId", "==", companyID)
	return listApplications(ctx, q)
}

// ListApplicationsByUser returns every application a user made
func (f *FirestoreClient) ListApplicationsByUser(ctx context.Context, userID string) ([]models.JobApplication, error) {
	q := f.client.Collection(applicationsCollection).Where("userId", "==", userID)
	return listApplications(ctx, q)
}

// listApplications runs q and orders the result newest first
func listApplications(ctx context.Context, q firestore.Query) ([]models.JobApplication, error) {
	apps, err := queryAll(ctx, q, setApplicationID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(apps, func(i, j int) bool { return apps[i].Date.After(apps[j].Date) })
	return apps, nil
}

// CountApplicationsByJob counts applications to a job with a server-side aggregation
func (f *FirestoreClient) CountApplicationsByJob(ctx context.Context, jobID string) (int, error) {
	q := f.client.Collection(applicationsCollection).Where("jobId", "==", jobID)
	res, err := q.NewAggregationQuery().WithCount("all").Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}

	v, ok := res["all"].(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("unexpected aggregation result type %T", res["all"])
	}
	return int(v.GetIntegerValue()), nil
}

// UpdateApplicationStatus sets the status of an application
func (f *FirestoreClient) UpdateApplicationStatus(ctx context.Context, id, newStatus string) error {
	_, err := f.client.Collection(applicationsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: newStatus},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update application status: %w", err)
	}
	return nil
}
