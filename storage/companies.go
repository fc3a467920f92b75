package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/R3Claimers/InsiderJobs/models"
)

// companyEmail reserves a login email for one company
type companyEmail struct {
	CompanyID string `firestore:"companyId"`
}

// CreateCompany stores a new company. Emails are unique: the email is claimed
// in companyEmails in the same transaction that creates the company, so two
// concurrent registrations cannot both succeed.
func (f *FirestoreClient) CreateCompany(ctx context.Context, company *models.Company) error {
	company.Email = strings.ToLower(strings.TrimSpace(company.Email))

	// Companies registered before email claims existed are only found by query.
	if _, err := f.GetCompanyByEmail(ctx, company.Email); err == nil {
		return ErrAlreadyExists
	} else if err != ErrNotFound {
		return fmt.Errorf("failed to check company existence: %w", err)
	}

	company.ID = uuid.NewString()
	company.CreatedAt = time.Now()

	claimRef := f.client.Collection(companyEmailsCollection).Doc(EmailKey(company.Email))
	companyRef := f.client.Collection(companiesCollection).Doc(company.ID)

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(claimRef, companyEmail{CompanyID: company.ID}); err != nil {
			return err
		}
		return tx.Create(companyRef, company)
	})
	if err != nil {
		return createErr(err, "company")
	}
	return nil
}

// EmailKey turns a normalized email into a valid document ID
func EmailKey(email string) string {
	return strings.ReplaceAll(email, "/", "%2F")
}

// GetCompany retrieves a company by ID
func (f *FirestoreClient) GetCompany(ctx context.Context, id string) (*models.Company, error) {
	var company models.Company
	if err := getDoc(ctx, f.client.Collection(companiesCollection).Doc(id), &company); err != nil {
		return nil, err
	}
	company.ID = id
	return &company, nil
}

// GetCompanyByEmail retrieves a company by its login email
func (f *FirestoreClient) GetCompanyByEmail(ctx context.Context, email string) (*models.Company, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	iter := f.client.Collection(companiesCollection).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query company: %w", err)
	}

	var company models.Company
	if err := doc.DataTo(&company); err != nil {
		return nil, fmt.Errorf("failed to parse company data: %w", err)
	}
	company.ID = doc.Ref.ID
	return &company, nil
}
