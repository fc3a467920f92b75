package handlers

import (
	"context"
	"log"

	"github.com/R3Claimers/InsiderJobs/models"
)

// resolver loads the documents referenced by applications and jobs, fetching
// each one at most once per request. Dangling references resolve to nil.
type resolver struct {
	store     Store
	companies map[string]*models.Company
	jobs      map[string]*models.Job
	users     map[string]*models.User
}

func newResolver(store Store) *resolver {
	return &resolver{
		store:     store,
		companies: map[string]*models.Company{},
		jobs:      map[string]*models.Job{},
		users:     map[string]*models.User{},
	}
}

func (r *resolver) company(ctx context.Context, id string) *models.Company {
	if c, ok := r.companies[id]; ok {
		return c
	}
	c, err := r.store.GetCompany(ctx, id)
	if err != nil {
		log.Printf("[Populate] company %s: %v", id, err)
		c = nil
	}
	r.companies[id] = c
	return c
}

func (r *resolver) job(ctx context.Context, id string) *models.Job {
	if j, ok := r.jobs[id]; ok {
		return j
	}
	j, err := r.store.GetJob(ctx, id)
	if err != nil {
		log.Printf("[Populate] job %s: %v", id, err)
		j = nil
	}
	r.jobs[id] = j
	return j
}

func (r *resolver) user(ctx context.Context, id string) *models.User {
	if u, ok := r.users[id]; ok {
		return u
	}
	u, err := r.store.GetUser(ctx, id)
	if err != nil {
		log.Printf("[Populate] user %s: %v", id, err)
		u = nil
	}
	r.users[id] = u
	return u
}

func (r *resolver) withCompany(ctx context.Context, job models.Job) models.JobWithCompany {
	return models.JobWithCompany{Job: job, Company: r.company(ctx, job.CompanyID).Summary()}
}

func (r *resolver) applicantView(ctx context.Context, app models.JobApplication) models.ApplicantView {
	return models.ApplicantView{
		ID:     app.ID,
		Status: app.Status,
		Date:   app.Date,
		User:   r.user(ctx, app.UserID).Summary(),
		Job:    r.job(ctx, app.JobID).Summary(),
	}
}

func (r *resolver) userApplicationView(ctx context.Context, app models.JobApplication, withCompany bool) models.UserApplicationView {
	view := models.UserApplicationView{
		ID:     app.ID,
		Status: app.Status,
		Date:   app.Date,
		Job:    r.job(ctx, app.JobID).Summary(),
	}
	if withCompany {
		view.Company = r.company(ctx, app.CompanyID).Summary()
	}
	return view
}
