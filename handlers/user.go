package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/R3Claimers/InsiderJobs/auth"
	"github.com/R3Claimers/InsiderJobs/models"
	"github.com/R3Claimers/InsiderJobs/resume"
	"github.com/R3Claimers/InsiderJobs/storage"
)

// UserHandler handles job seeker accounts, applications and resumes
type UserHandler struct {
	store      Store
	uploader   Uploader
	jwtService *auth.JWTService
	identity   IdentityVerifier
	extractor  SkillExtractor
	maxUpload  int64
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	store Store,
	uploader Uploader,
	jwtService *auth.JWTService,
	identity IdentityVerifier,
	extractor SkillExtractor,
	maxUpload int64,
) *UserHandler {
	return &UserHandler{
		store:      store,
		uploader:   uploader,
		jwtService: jwtService,
		identity:   identity,
		extractor:  extractor,
		maxUpload:  maxUpload,
	}
}

// GoogleAuth signs a job seeker in with a Google ID token
// @Summary Job seeker sign-in
// @Description Verify a Google ID token, create the user on first sign-in and return a session token
// @Tags Users
// @Accept json
// @Produce json
// @Param request body models.GoogleAuthRequest true "Google ID token"
// @Success 200 {object} models.UserAuthResponse "Signed in"
// @Failure 400 {object} models.MessageResponse "Missing Details"
// @Failure 401 {object} models.MessageResponse "Invalid Google token"
// @Router /users/auth/google [post]
func (h *UserHandler) GoogleAuth(c *gin.Context) {
	var req models.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing Details")
		return
	}

	ctx := c.Request.Context()
	info, err := h.identity.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		log.Printf("[UserHandler] Google token rejected: %v", err)
		fail(c, http.StatusUnauthorized, "Invalid Google token")
		return
	}

	user, err := h.store.UpsertGoogleUser(ctx, &models.User{
		ID:       info.UserID(),
		Name:     info.Name,
		Email:    info.Email,
		Image:    info.Picture,
		GoogleID: info.GoogleID,
	})
	if err != nil {
		failInternal(c, "UserHandler", err)
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Email, auth.RoleUser)
	if err != nil {
		failInternal(c, "UserHandler", err)
		return
	}

	log.Printf("[UserHandler] User signed in: %s", user.Email)
	c.JSON(http.StatusOK, models.UserAuthResponse{Success: true, User: user, Token: token})
}

// GetUser returns the authenticated job seeker
// @Summary Current user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse "User data"
// @Failure 404 {object} models.MessageResponse "User Not Found"
// @Router /users/user [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.store.GetUser(c.Request.Context(), auth.SubjectID(c))
	if err != nil {
		if isNotFound(err) {
			fail(c, http.StatusNotFound, "User Not Found")
			return
		}
		failInternal(c, "UserHandler", err)
		return
	}

	c.JSON(http.StatusOK, models.UserResponse{Success: true, User: user})
}

// Apply submits an application to an open job
// @Summary Apply for a job
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ApplyRequest true "Job to apply for"
// @Success 201 {object} models.MessageResponse "Applied Successfully"
// @Failure 404 {object} models.MessageResponse "Job Not Found"
// @Failure 409 {object} models.MessageResponse "Already Applied"
// @Router /users/apply [post]
func (h *UserHandler) Apply(c *gin.Context) {
	var req models.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing Details")
		return
	}

	ctx := c.Request.Context()
	userID := auth.SubjectID(c)

	if _, err := h.store.FindApplication(ctx, userID, req.JobID); err == nil {
		fail(c, http.StatusConflict, "Already Applied")
		return
	} else if !isNotFound(err) {
		failInternal(c, "UserHandler", err)
		return
	}

	job, err := h.store.GetJob(ctx, req.JobID)
	if err != nil && !isNotFound(err) {
		failInternal(c, "UserHandler", err)
		return
	}
	if job == nil || !job.Visible {
		fail(c, http.StatusNotFound, "Job Not Found")
		return
	}

	app := &models.JobApplication{
		UserID:    userID,
		CompanyID: job.CompanyID,
		JobID:     job.ID,
		Status:    models.StatusPending,
	}
	if err := h.store.CreateApplication(ctx, app); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			fail(c, http.StatusConflict, "Already Applied")
			return
		}
		failInternal(c, "UserHandler", err)
		return
	}

	log.Printf("[UserHandler] User %s applied to job %s", userID, job.ID)
	c.JSON(http.StatusCreated, models.MessageResponse{Success: true, Message: "Applied Successfully"})
}

// Applications lists the job seeker's applications
// @Summary User applications
// @Description Applications with company and job populated
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserApplicationsResponse "Applications"
// @Router /users/applications [get]
func (h *UserHandler) Applications(c *gin.Context) {
	ctx := c.Request.Context()
	apps, err := h.store.ListApplicationsByUser(ctx, auth.SubjectID(c))
	if err != nil {
		failInternal(c, "UserHandler", err)
		return
	}

	r := newResolver(h.store)
	views := make([]models.UserApplicationView, 0, len(apps))
	for _, app := range apps {
		views = append(views, r.userApplicationView(ctx, app, true))
	}

	c.JSON(http.StatusOK, models.UserApplicationsResponse{Success: true, Applications: views})
}

// UpdateResume stores a new resume and the skills detected in it
// @Summary Upload resume
// @Description Upload a PDF, DOCX or TXT resume. Known skills are extracted and saved on the profile.
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume formData file true "Resume file"
// @Success 200 {object} models.ResumeResponse "Resume Updated"
// @Failure 400 {object} models.MessageResponse "Resume file is required"
// @Failure 404 {object} models.MessageResponse "User Not Found"
// @Router /users/resume [put]
func (h *UserHandler) UpdateResume(c *gin.Context) {
	if h.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)
	}

	header, err := c.FormFile("resume")
	if err != nil {
		fail(c, http.StatusBadRequest, "Resume file is required")
		return
	}
	if !resume.IsSupportedFormat(header.Filename) {
		fail(c, http.StatusBadRequest, "Unsupported resume format, use PDF, DOCX or TXT")
		return
	}

	ctx := c.Request.Context()
	userID := auth.SubjectID(c)
	user, err := h.store.GetUser(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			fail(c, http.StatusNotFound, "User Not Found")
			return
		}
		failInternal(c, "UserHandler", err)
		return
	}

	tmp, err := os.CreateTemp("", "resume-*"+filepath.Ext(header.Filename))
	if err != nil {
		failInternal(c, "UserHandler", err)
		return
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveUploadedFile(header, tmpPath); err != nil {
		failInternal(c, "UserHandler", err)
		return
	}

	skills := h.extractor.ExtractSkills(tmpPath)

	f, err := os.Open(tmpPath)
	if err != nil {
		failInternal(c, "UserHandler", err)
		return
	}
	defer f.Close()

	resumeURL, err := h.uploader.Upload(ctx, storage.ResumeFolder, userID, header.Filename, f)
	if err != nil {
		failInternal(c, "UserHandler", err)
		return
	}

	if err := h.store.UpdateUserResume(ctx, userID, resumeURL, skills); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fail(c, http.StatusNotFound, "User Not Found")
			return
		}
		failInternal(c, "UserHandler", err)
		return
	}

	// The previous file is unreferenced now
	if user.Resume != "" && user.Resume != resumeURL {
		if err := h.uploader.Delete(ctx, user.Resume); err != nil {
			log.Printf("[UserHandler] Failed to delete old resume %s: %v", user.Resume, err)
		}
	}

	log.Printf("[UserHandler] Resume updated for %s: %d skills", userID, len(skills))
	c.JSON(http.StatusOK, models.ResumeResponse{
		Success: true,
		Message: "Resume Updated",
		Resume:  resumeURL,
		Skills:  skills,
	})
}
