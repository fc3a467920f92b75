package models

import "time"

// User represents a job seeker in Firestore
// @Description Job seeker account information
type User struct {
	ID        string    `json:"_id" firestore:"-"`
	Name      string    `json:"name" firestore:"name" example:"Jane Doe"`
	Email     string    `json:"email" firestore:"email" example:"jane@example.com"`
	Image     string    `json:"image" firestore:"image"`
	Resume    string    `json:"resume" firestore:"resume" example:"https://storage.googleapis.com/bucket/resumes/jane.pdf"`
	Skills    []string  `json:"skills" firestore:"skills"`
	GoogleID  string    `json:"-" firestore:"googleId,omitempty"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// UserSummary is the subset of a user embedded in applicant payloads
type UserSummary struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Image  string `json:"image"`
	Resume string `json:"resume"`
}

// Summary returns the embedded view of the user
func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{ID: u.ID, Name: u.Name, Image: u.Image, Resume: u.Resume}
}
