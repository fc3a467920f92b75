package models

// ErrorResponse represents an API error response
// @Description Standard error response used by middleware and tool endpoints
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"email is required"`
}

// MessageResponse is the envelope every job-board endpoint answers with on failure
// @Description Success flag with a human readable message
type MessageResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Missing Details"`
}

// HealthResponse represents health check response
// @Description Server health status
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Version   string `json:"version" example:"1.0.0"`
	Timestamp string `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// CompanyLoginRequest represents company login request
// @Description Company login request
type CompanyLoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"hr@slack.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// CompanyAuthResponse is returned after company registration or login
// @Description Company with session token
type CompanyAuthResponse struct {
	Success bool     `json:"success" example:"true"`
	Company *Company `json:"company"`
	Token   string   `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// GoogleAuthRequest represents Google SSO authentication request
// @Description Google SSO authentication request
type GoogleAuthRequest struct {
	IDToken string `json:"idToken" binding:"required" example:"eyJhbGciOiJSUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// UserAuthResponse is returned after a job seeker signs in
// @Description Job seeker with session token
type UserAuthResponse struct {
	Success bool   `json:"success" example:"true"`
	User    *User  `json:"user"`
	Token   string `json:"token"`
}

// PostJobRequest is the body of POST /company/post-job
// @Description New job posting
type PostJobRequest struct {
	Title       string `json:"title" binding:"required" example:"Senior Go Engineer"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required" example:"Programming"`
	Location    string `json:"location" binding:"required" example:"Bangalore, Karnataka"`
	Salary      int    `json:"salary" binding:"min=0" example:"120000"`
	Level       string `json:"level" binding:"required" example:"Senior Level"`
}

// ApplicationStatusRequest is the body of PATCH /company/application-status/:id
// @Description New application status
type ApplicationStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Accepted"`
}

// ApplyRequest is the body of POST /users/apply
// @Description Job application request
type ApplyRequest struct {
	JobID string `json:"jobId" binding:"required"`
}

// ResumeResponse is returned after a resume upload
// @Description Resume URL and the skills detected in it
type ResumeResponse struct {
	Success bool     `json:"success" example:"true"`
	Message string   `json:"message" example:"Resume Updated"`
	Resume  string   `json:"resume"`
	Skills  []string `json:"skills"`
}
