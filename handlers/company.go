package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/R3Claimers/InsiderJobs/auth"
	"github.com/R3Claimers/InsiderJobs/models"
	"github.com/R3Claimers/InsiderJobs/storage"
)

const maxConcurrentCounts = 5

// CompanyHandler handles recruiter accounts and their job postings
type CompanyHandler struct {
	store       Store
	uploader    Uploader
	jwtService  *auth.JWTService
	maxUpload   int64
	frontendURL string
	now         func() time.Time
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(store Store, uploader Uploader, jwtService *auth.JWTService, maxUpload int64, frontendURL string) *CompanyHandler {
	return &CompanyHandler{
		store:       store,
		uploader:    uploader,
		jwtService:  jwtService,
		maxUpload:   maxUpload,
		frontendURL: frontendURL,
		now:         time.Now,
	}
}

// Register creates a company account with a logo
// @Summary Register a company
// @Description Register a recruiter account. The logo is stored in Cloud Storage.
// @Tags Company
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Company name"
// @Param email formData string true "Login email"
// @Param password formData string true "Password"
// @Param image formData file true "Company logo"
// @Success 201 {object} models.CompanyAuthResponse "Company registered"
// @Failure 400 {object} models.MessageResponse "Missing Details"
// @Failure 409 {object} models.MessageResponse "Company already registered"
// @Failure 500 {object} models.MessageResponse "Internal server error"
// @Router /company/register [post]
func (h *CompanyHandler) Register(c *gin.Context) {
	if h.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)
	}

	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	image, err := c.FormFile("image")

	if name == "" || email == "" || password == "" || err != nil {
		fail(c, http.StatusBadRequest, "Missing Details")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.store.GetCompanyByEmail(ctx, email); err == nil {
		fail(c, http.StatusConflict, "Company already registered")
		return
	} else if !isNotFound(err) {
		failInternal(c, "CompanyHandler", err)
		return
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		failInternal(c, "CompanyHandler", err)
		return
	}

	file, err := image.Open()
	if err != nil {
		fail(c, http.StatusBadRequest, "Failed to read image")
		return
	}
	defer file.Close()

	imageURL, err := h.uploader.Upload(ctx, storage.LogoFolder, email, image.Filename, file)
	if err != nil {
		failInternal(c, "CompanyHandler", err)
		return
	}

	company := &models.Company{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		Image:    imageURL,
	}
	if err := h.store.CreateCompany(ctx, company); err != nil {
		if delErr := h.uploader.Delete(ctx, imageURL); delErr != nil {
			log.Printf("[CompanyHandler] Failed to delete orphaned logo %s: %v", imageURL, delErr)
		}
		if errors.Is(err, storage.ErrAlreadyExists) {
			fail(c, http.StatusConflict, "Company already registered")
			return
		}
		failInternal(c, "CompanyHandler", err)
		return
	}

	token, err := h.jwtService.GenerateToken(company.ID, company.Email, auth.RoleCompany)
	if err != nil {
		failInternal(c, "CompanyHandler", err)
		return
	}

	log.Printf("[CompanyHandler] Company registered: %s", company.Email)
	c.JSON(http.StatusCreated, models.CompanyAuthResponse{
		Success: true,
		Company: company,
		Token:   token,
	})
}

// Login authenticates a company
// @Summary Company login
// @Description Login with email and password to get a session token
// @Tags Company
// @Accept json
// @Produce json
// @Param request body models.CompanyLoginRequest true "Login request"
// @Success 200 {object} models.CompanyAuthResponse "Login successful"
// @Failure 400 {object} models.MessageResponse "Missing Details"
// @Failure 401 {object} models.MessageResponse "Invalid email or password"
// @Router /company/login [post]
func (h *CompanyHandler) Login(c *gin.Context) {
	var req models.CompanyLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing Details")
		return
	}

	company, err := h.store.GetCompanyByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if isNotFound(err) {
			fail(c, http.StatusUnauthorized, "Invalid email")
			return
		}
		failInternal(c, "CompanyHandler", err)
		return
	}

	if !auth.CheckPassword(req.Password, company.Password) {
		fail(c, http.StatusUnauthorized, "Invalid password")
		return
	}

	token, err := h.jwtService.GenerateToken(company.ID, company.Email, auth.RoleCompany)
	if err != nil {
		failInternal(c, "CompanyHandler", err)
		return
	}

	log.Printf("[CompanyHandler] Company logged in: %s", company.Email)
	c.JSON(http.StatusOK, models.CompanyAuthResponse{
		Success: true,
		Company: company,
		Token:   token,
	})
}

// GetCompany returns the authenticated company
// @Summary Current company
// @Tags Company
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.CompanyResponse "Company data"
// @Failure 401 {object} models.MessageResponse "Unauthorized"
// @Failure 404 {object} models.MessageResponse "Company not found"
// @Router /company/company [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.store.GetCompany(c.Request.Context(), auth.SubjectID(c))
	if err != nil {
		if isNotFound(err) {
			fail(c, http.StatusNotFound, "Company not found")
			return
		}
		failInternal(c, "CompanyHandler", err)
		return
	}

	c.JSON(http.StatusOK, models.CompanyResponse{Success: true, Company: company})
}

// PostJob publishes a new job for the authenticated company
// @Summary Post a job
// @Tags Company
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.PostJobRequest true "Job details"
// @Success 201 {object} models.NewJobResponse "Job created"
// @Failure 400 {object} models.MessageResponse "Missing Details"
// @Router /company/post-job [post]
func (h *CompanyHandler) PostJob(c *gin.Context) {
	var req models.PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing Details")
		return
	}

	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Location:    req.Location,
		Level:       req.Level,
		Salary:      req.Salary,
		CompanyID:   auth.SubjectID(c),
		Date:        h.now(),
		Visible:     true,
	}
	if err := h.store.CreateJob(c.Request.Context(), job); err != nil {
		failInternal(c, "CompanyHandler", err)
		return
	}

	log.Printf("[CompanyHandler] Job %s posted by %s", job.ID, job.CompanyID)
	c.JSON(http.StatusCreated, models.NewJobResponse{Success: true, NewJob: job})
}

// Applicants lists applications to the company's jobs
// @Summary Company applicants
// @Description Applications with applicant (name, image, resume) and job populated
// @Tags Company
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApplicantsResponse "Applications"
// @Router /company/applicants [get]
func (h *CompanyHandler) Applicants(c *gin.Context) {
	ctx := c.Request.Context()
	apps, err := h.store.ListApplicationsByCompany(ctx, auth.SubjectID(c))
	if err != nil {
		failInternal(c, "CompanyHandler", err)
		return
	}

	r := newResolver(h.store)
	views := make([]models.ApplicantView, 0, len(apps))
	for _, app := range apps {
		views = append(views, r.applicantView(ctx, app))
	}

	c.JSON(http.StatusOK, models.ApplicantsResponse{Success: true, Applications: views})
}

// ListJobs lists the company's jobs with applicant counts
// @Summary Company jobs
// @Tags Company
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.CompanyJobsResponse "Jobs with applicant counts"
// @Router /company/list-jobs [get]
func (h *CompanyHandler) ListJobs(c *gin.Context) {
	ctx := c.Request.Context()
	jobs, err := h.store.ListJobsByCompany(ctx, auth.SubjectID(c))
	if err != nil {
		failInternal(c, "CompanyHandler", err)
		return
	}

	data, err := h.countApplicants(ctx, jobs)
	if err != nil {
		failInternal(c, "CompanyHandler", err)
		return
	}

	c.JSON(http.StatusOK, models.CompanyJobsResponse{Success: true, JobsData: data})
}

// countApplicants runs the per-job aggregation queries in parallel, keeping job order
func (h *CompanyHandler) countApplicants(ctx context.Context, jobs []models.Job) ([]models.JobWithApplicants, error) {
	data := make([]models.JobWithApplicants, len(jobs))
	errs := make([]error, len(jobs))

	// Use semaphore to limit concurrency
	sem := make(chan struct{}, maxConcurrentCounts)
	var wg sync.WaitGroup

	for i := range jobs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			count, err := h.store.CountApplicationsByJob(ctx, jobs[i].ID)
			data[i] = models.JobWithApplicants{Job: jobs[i], Applicants: count}
			errs[i] = err
		}(i)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return data, nil
}

// ChangeApplicationStatus accepts or rejects an application
// @Summary Change application status
// @Tags Company
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Param request body models.ApplicationStatusRequest true "New status"
// @Success 200 {object} models.MessageResponse "Status updated successfully"
// @Failure 400 {object} models.MessageResponse "Invalid status"
// @Failure 403 {object} models.MessageResponse "Not authorized"
// @Failure 404 {object} models.MessageResponse "Application not found"
// @Router /company/application-status/{id} [patch]
func (h *CompanyHandler) ChangeApplicationStatus(c *gin.Context) {
	var req models.ApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidApplicationStatus(req.Status) {
		fail(c, http.StatusBadRequest, "Invalid status")
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")
	app, err := h.store.GetApplication(ctx, id)
	if err != nil {
		if isNotFound(err) {
			fail(c, http.StatusNotFound, "Application not found")
			return
		}
		failInternal(c, "CompanyHandler", err)
		return
	}

	if app.CompanyID != auth.SubjectID(c) {
		fail(c, http.StatusForbidden, "Not authorized to modify this application")
		return
	}

	if err := h.store.UpdateApplicationStatus(ctx, id, req.Status); err != nil {
		failInternal(c, "CompanyHandler", err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "Status updated successfully"})
}

// ChangeVisibility toggles whether a job accepts applications
// @Summary Toggle job visibility
// @Tags Company
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} models.JobResponse "Job visibility updated"
// @Failure 403 {object} models.MessageResponse "Not authorized"
// @Failure 404 {object} models.MessageResponse "Job not found"
// @Router /company/job-visibility/{id} [patch]
func (h *CompanyHandler) ChangeVisibility(c *gin.Context) {
	job, ok := h.ownedJob(c, "modify")
	if !ok {
		return
	}

	job.Visible = !job.Visible
	if err := h.store.SetJobVisibility(c.Request.Context(), job.ID, job.Visible); err != nil {
		failInternal(c, "CompanyHandler", err)
		return
	}

	c.JSON(http.StatusOK, models.JobResponse{Success: true, Message: "Job visibility updated", Job: job})
}

// DeleteJob removes a job and every application to it
// @Summary Delete a job
// @Tags Company
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} models.MessageResponse "Job deleted successfully"
// @Failure 403 {object} models.MessageResponse "Not authorized"
// @Failure 404 {object} models.MessageResponse "Job not found"
// @Router /company/job/{id} [delete]
func (h *CompanyHandler) DeleteJob(c *gin.Context) {
	job, ok := h.ownedJob(c, "delete")
	if !ok {
		return
	}

	if err := h.store.DeleteJob(c.Request.Context(), job.ID); err != nil {
		failInternal(c, "CompanyHandler", err)
		return
	}

	log.Printf("[CompanyHandler] Job %s deleted", job.ID)
	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "Job deleted successfully"})
}

// Report returns analytics for the authenticated company
// @Summary Company report
// @Description Totals, visibility and status breakdown, average salary, jobs grouped by category, location and level, recent jobs and applications
// @Tags Company
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ReportResponse "Company report"
// @Failure 404 {object} models.MessageResponse "Company not found"
// @Router /company/report [get]
func (h *CompanyHandler) Report(c *gin.Context) {
	ctx := c.Request.Context()
	companyID := auth.SubjectID(c)

	company, err := h.store.GetCompany(ctx, companyID)
	if err != nil {
		if isNotFound(err) {
			fail(c, http.StatusNotFound, "Company not found")
			return
		}
		failInternal(c, "CompanyHandler", err)
		return
	}

	jobs, err := h.store.ListJobsByCompany(ctx, companyID)
	if err != nil {
		failInternal(c, "CompanyHandler", err)
		return
	}

	apps, err := h.store.ListApplicationsByCompany(ctx, companyID)
	if err != nil {
		failInternal(c, "CompanyHandler", err)
		return
	}

	r := newResolver(h.store)
	for i := range jobs {
		r.jobs[jobs[i].ID] = &jobs[i]
	}
	views := make([]models.UserApplicationView, 0, len(apps))
	for _, app := range apps {
		views = append(views, r.userApplicationView(ctx, app, false))
	}

	report := models.BuildCompanyReport(jobs, views, h.now())
	report.Company = company.Summary()
	report.FrontendURL = h.frontendURL

	c.JSON(http.StatusOK, models.ReportResponse{Success: true, Report: report})
}

// ownedJob loads the :id job and checks it belongs to the caller. It writes
// the error response itself when it returns false.
func (h *CompanyHandler) ownedJob(c *gin.Context, action string) (*models.Job, bool) {
	job, err := h.store.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			fail(c, http.StatusNotFound, "Job not found")
			return nil, false
		}
		failInternal(c, "CompanyHandler", err)
		return nil, false
	}

	if job.CompanyID != auth.SubjectID(c) {
		fail(c, http.StatusForbidden, "Not authorized to "+action+" this job")
		return nil, false
	}
	return job, true
}
