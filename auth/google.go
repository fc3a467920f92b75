package auth

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/R3Claimers/InsiderJobs/config"
)

// GoogleAuthService verifies job seeker identities issued by Google
type GoogleAuthService struct {
	clientID string
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

// GoogleUserInfo represents user info from Google token
type GoogleUserInfo struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

// UserID is the document ID job seekers are stored under
func (u *GoogleUserInfo) UserID() string {
	return "google_" + u.GoogleID
}

// NewGoogleAuthService creates a new Google auth service
func NewGoogleAuthService(cfg *config.Config) *GoogleAuthService {
	return &GoogleAuthService{
		clientID: cfg.GoogleClientID,
		validate: idtoken.Validate,
	}
}

// VerifyIDToken verifies a Google ID token and returns user info
func (s *GoogleAuthService) VerifyIDToken(ctx context.Context, idToken string) (*GoogleUserInfo, error) {
	if s.clientID == "" {
		return nil, errors.New("Google Client ID not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify ID token: %w", err)
	}

	return userInfoFromPayload(payload)
}

func userInfoFromPayload(payload *idtoken.Payload) (*GoogleUserInfo, error) {
	if payload.Subject == "" {
		return nil, errors.New("subject not found in token")
	}

	userInfo := &GoogleUserInfo{GoogleID: payload.Subject}

	if email, ok := payload.Claims["email"].(string); ok {
		userInfo.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		userInfo.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		userInfo.Picture = picture
	}

	if userInfo.Email == "" {
		return nil, errors.New("email not found in token")
	}
	if userInfo.Name == "" {
		userInfo.Name = userInfo.Email
	}

	return userInfo, nil
}
