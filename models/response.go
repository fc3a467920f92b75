package models

// CompanyResponse is the body of GET /company/company
type CompanyResponse struct {
	Success bool     `json:"success" example:"true"`
	Company *Company `json:"company"`
}

// NewJobResponse is returned after a job is posted
type NewJobResponse struct {
	Success bool `json:"success" example:"true"`
	NewJob  *Job `json:"newJob"`
}

// JobResponse carries a single job with a message
type JobResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Job visibility updated"`
	Job     *Job   `json:"job"`
}

// CompanyJobsResponse lists a company's jobs with applicant counts
type CompanyJobsResponse struct {
	Success  bool                `json:"success" example:"true"`
	JobsData []JobWithApplicants `json:"jobsData"`
}

// ApplicantsResponse lists the applications a company received
type ApplicantsResponse struct {
	Success      bool            `json:"success" example:"true"`
	Applications []ApplicantView `json:"applications"`
}

// ReportResponse wraps a company analytics report
type ReportResponse struct {
	Success bool          `json:"success" example:"true"`
	Report  CompanyReport `json:"report"`
}

// JobsResponse lists open jobs
type JobsResponse struct {
	Success bool             `json:"success" example:"true"`
	Jobs    []JobWithCompany `json:"jobs"`
}

// JobDetailResponse is a job with other open jobs of the same company
type JobDetailResponse struct {
	Success     bool             `json:"success" example:"true"`
	Job         JobWithCompany   `json:"job"`
	RelatedJobs []JobWithCompany `json:"relatedJobs"`
	// Applied is set when the caller is a signed-in job seeker who applied to Job
	Applied bool `json:"applied"`
}

// TokenResponse carries a freshly issued session token
type TokenResponse struct {
	Success bool   `json:"success" example:"true"`
	Token   string `json:"token"`
}

// UserResponse is the body of GET /users/user
type UserResponse struct {
	Success bool  `json:"success" example:"true"`
	User    *User `json:"user"`
}

// UserApplicationsResponse lists the applications of a job seeker
type UserApplicationsResponse struct {
	Success      bool                  `json:"success" example:"true"`
	Applications []UserApplicationView `json:"applications"`
}
