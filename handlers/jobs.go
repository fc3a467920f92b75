package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/R3Claimers/InsiderJobs/auth"
	"github.com/R3Claimers/InsiderJobs/models"
)

const relatedJobsLimit = 4

// JobsHandler serves the public job listing
type JobsHandler struct {
	store Store
}

// NewJobsHandler creates a new jobs handler
func NewJobsHandler(store Store) *JobsHandler {
	return &JobsHandler{store: store}
}

// ListJobs returns every open job with its company
// @Summary List open jobs
// @Tags Jobs
// @Produce json
// @Success 200 {object} models.JobsResponse "Open jobs, newest first"
// @Router /jobs [get]
func (h *JobsHandler) ListJobs(c *gin.Context) {
	ctx := c.Request.Context()
	jobs, err := h.store.ListVisibleJobs(ctx)
	if err != nil {
		failInternal(c, "JobsHandler", err)
		return
	}

	r := newResolver(h.store)
	out := make([]models.JobWithCompany, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, r.withCompany(ctx, job))
	}

	c.JSON(http.StatusOK, models.JobsResponse{Success: true, Jobs: out})
}

// GetJob returns one job with up to four other open jobs of the same company.
// A job seeker token is optional and only fills in Applied.
// @Summary Job details
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} models.JobDetailResponse "Job with related jobs"
// @Failure 404 {object} models.MessageResponse "Job not found"
// @Router /jobs/{id} [get]
func (h *JobsHandler) GetJob(c *gin.Context) {
	ctx := c.Request.Context()
	job, err := h.store.GetJob(ctx, c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			fail(c, http.StatusNotFound, "Job not found")
			return
		}
		failInternal(c, "JobsHandler", err)
		return
	}
	if !job.Visible {
		fail(c, http.StatusNotFound, "Job not found")
		return
	}

	companyJobs, err := h.store.ListJobsByCompany(ctx, job.CompanyID)
	if err != nil {
		failInternal(c, "JobsHandler", err)
		return
	}

	r := newResolver(h.store)
	related := make([]models.JobWithCompany, 0, relatedJobsLimit)
	for _, other := range companyJobs {
		if len(related) == relatedJobsLimit {
			break
		}
		if other.ID == job.ID || !other.Visible {
			continue
		}
		related = append(related, r.withCompany(ctx, other))
	}

	c.JSON(http.StatusOK, models.JobDetailResponse{
		Success:     true,
		Job:         r.withCompany(ctx, *job),
		RelatedJobs: related,
		Applied:     h.hasApplied(c, job.ID),
	})
}

// hasApplied reports whether the optional session belongs to a job seeker
// who already applied to jobID
func (h *JobsHandler) hasApplied(c *gin.Context, jobID string) bool {
	claims := auth.GetAuthClaims(c)
	if claims == nil || claims.Role != auth.RoleUser {
		return false
	}
	_, err := h.store.FindApplication(c.Request.Context(), claims.Subject, jobID)
	if err != nil && !isNotFound(err) {
		log.Printf("[JobsHandler] Application lookup failed: %v", err)
	}
	return err == nil
}
