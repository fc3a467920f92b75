package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/R3Claimers/InsiderJobs/config"
	"github.com/R3Claimers/InsiderJobs/models"
)

const (
	companiesCollection     = "companies"
	companyEmailsCollection = "companyEmails"
	jobsCollection          = "jobs"
	applicationsCollection  = "applications"
	usersCollection         = "users"
)

var (
	// ErrNotFound is returned when a document does not exist
	ErrNotFound = errors.New("document not found")
	// ErrAlreadyExists is returned when a unique document is created twice
	ErrAlreadyExists = errors.New("document already exists")
)

// FirestoreClient wraps Firestore operations
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// getDoc loads a single document into dst, mapping NotFound to ErrNotFound
func getDoc(ctx context.Context, ref *firestore.DocumentRef, dst interface{}) error {
	doc, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get %s/%s: %w", ref.Parent.ID, ref.ID, err)
	}
	if err := doc.DataTo(dst); err != nil {
		return fmt.Errorf("failed to parse %s/%s: %w", ref.Parent.ID, ref.ID, err)
	}
	return nil
}

// createErr maps a failed Create to ErrAlreadyExists when the document is taken
func createErr(err error, what string) error {
	if status.Code(err) == codes.AlreadyExists {
		return ErrAlreadyExists
	}
	return fmt.Errorf("failed to create %s: %w", what, err)
}

// queryAll runs q and decodes every document, letting setID attach the document ID
func queryAll[T any](ctx context.Context, q firestore.Query, setID func(*T, string)) ([]T, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []T
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query documents: %w", err)
		}

		var v T
		if err := doc.DataTo(&v); err != nil {
			return nil, fmt.Errorf("failed to parse document %s: %w", doc.Ref.ID, err)
		}
		setID(&v, doc.Ref.ID)
		out = append(out, v)
	}
	return out, nil
}

// UpsertGoogleUser creates the user on first sign-in, otherwise refreshes the
// profile fields the identity provider owns. user.ID must be set.
func (f *FirestoreClient) UpsertGoogleUser(ctx context.Context, user *models.User) (*models.User, error) {
	docRef := f.client.Collection(usersCollection).Doc(user.ID)
	now := time.Now()

	var existing models.User
	err := getDoc(ctx, docRef, &existing)
	switch {
	case errors.Is(err, ErrNotFound):
		user.CreatedAt = now
		user.UpdatedAt = now
		if user.Skills == nil {
			user.Skills = []string{}
		}
		if _, err := docRef.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return user, nil
	case err != nil:
		return nil, err
	}

	_, err = docRef.Set(ctx, map[string]interface{}{
		"name":      user.Name,
		"email":     user.Email,
		"image":     user.Image,
		"googleId":  user.GoogleID,
		"updatedAt": now,
	}, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	existing.ID = user.ID
	existing.Name = user.Name
	existing.Email = user.Email
	existing.Image = user.Image
	existing.UpdatedAt = now
	return &existing, nil
}

// GetUser retrieves a user by ID
func (f *FirestoreClient) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := getDoc(ctx, f.client.Collection(usersCollection).Doc(id), &user); err != nil {
		return nil, err
	}
	user.ID = id
	return &user, nil
}

// UpdateUserResume stores the resume URL and the skills detected in it
func (f *FirestoreClient) UpdateUserResume(ctx context.Context, id, resumeURL string, skills []string) error {
	if skills == nil {
		skills = []string{}
	}
	_, err := f.client.Collection(usersCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "resume", Value: resumeURL},
		{Path: "skills", Value: skills},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update resume: %w", err)
	}
	return nil
}
