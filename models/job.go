package models

import "time"

// Company represents a recruiter account in Firestore
// @Description Company account information
type Company struct {
	ID        string    `json:"_id" firestore:"-" example:"0b6f1c7e-3c1b-4f6e-9a55-0d1f1b8c2a11"`
	Name      string    `json:"name" firestore:"name" example:"Slack"`
	Email     string    `json:"email" firestore:"email" example:"hr@slack.com"`
	Password  string    `json:"-" firestore:"password"` // Hashed password, never sent to client
	Image     string    `json:"image" firestore:"image" example:"https://storage.googleapis.com/bucket/logos/slack.png"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// CompanySummary is the subset of a company embedded in job and application payloads
type CompanySummary struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Image string `json:"image"`
}

// Summary returns the public view of the company
func (c *Company) Summary() *CompanySummary {
	if c == nil {
		return nil
	}
	return &CompanySummary{ID: c.ID, Name: c.Name, Email: c.Email, Image: c.Image}
}

// Job represents a job posting stored in Firestore
// @Description Job posting
type Job struct {
	ID          string    `json:"_id" firestore:"-"`
	Title       string    `json:"title" firestore:"title" example:"Senior Go Engineer"`
	Description string    `json:"description" firestore:"description"`
	Category    string    `json:"category" firestore:"category" example:"Programming"`
	Location    string    `json:"location" firestore:"location" example:"Bangalore, Karnataka"`
	Level       string    `json:"level" firestore:"level" example:"Senior Level"`
	Salary      int       `json:"salary" firestore:"salary" example:"120000"`
	CompanyID   string    `json:"companyId" firestore:"companyId"`
	Date        time.Time `json:"date" firestore:"date"`
	Visible     bool      `json:"visible" firestore:"visible"`
}

// JobWithCompany is a job with its company populated
type JobWithCompany struct {
	Job
	Company *CompanySummary `json:"company"`
}

// JobWithApplicants is a job with its applicant count, as listed on the company dashboard
type JobWithApplicants struct {
	Job
	Applicants int `json:"applicants"`
}

// Application status constants
const (
	StatusPending  = "Pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

// ValidApplicationStatus reports whether s is one of the known statuses
func ValidApplicationStatus(s string) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// JobApplication links a job seeker to a job
// @Description Job application
type JobApplication struct {
	ID        string    `json:"_id" firestore:"-"`
	UserID    string    `json:"userId" firestore:"userId"`
	CompanyID string    `json:"companyId" firestore:"companyId"`
	JobID     string    `json:"jobId" firestore:"jobId"`
	Status    string    `json:"status" firestore:"status" example:"Pending"`
	Date      time.Time `json:"date" firestore:"date"`
}

// ApplicantView is an application as seen by the hiring company
type ApplicantView struct {
	ID     string       `json:"_id"`
	Status string       `json:"status"`
	Date   time.Time    `json:"date"`
	User   *UserSummary `json:"userId"`
	Job    *JobSummary  `json:"jobId"`
}

// UserApplicationView is an application as seen by the applicant
type UserApplicationView struct {
	ID      string          `json:"_id"`
	Status  string          `json:"status"`
	Date    time.Time       `json:"date"`
	Company *CompanySummary `json:"companyId"`
	Job     *JobSummary     `json:"jobId"`
}

// JobSummary is the subset of a job embedded in application payloads
type JobSummary struct {
	ID       string `json:"_id"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Category string `json:"category,omitempty"`
	Level    string `json:"level,omitempty"`
	Salary   int    `json:"salary,omitempty"`
}

// Summary returns the embedded view of the job
func (j *Job) Summary() *JobSummary {
	if j == nil {
		return nil
	}
	return &JobSummary{
		ID:       j.ID,
		Title:    j.Title,
		Location: j.Location,
		Category: j.Category,
		Level:    j.Level,
		Salary:   j.Salary,
	}
}
