package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/storage"

	"github.com/R3Claimers/InsiderJobs/config"
)

// Folders used for uploaded objects
const (
	LogoFolder   = "logos"
	ResumeFolder = "resumes"
)

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// CloudStorageClient wraps Google Cloud Storage operations
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

// NewCloudStorageClient creates a new Cloud Storage client
func NewCloudStorageClient(ctx context.Context, cfg *config.Config) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloud Storage client: %w", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: cfg.UploadBucket,
	}, nil
}

// Close closes the Cloud Storage client
func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// Upload stores r under folder/owner and returns the public URL of the object
func (c *CloudStorageClient) Upload(ctx context.Context, folder, ownerID, filename string, r io.Reader) (string, error) {
	objectName := ObjectName(folder, ownerID, filename, time.Now())

	wc := c.client.Bucket(c.bucketName).Object(objectName).NewWriter(ctx)
	wc.ContentType = ContentType(filepath.Ext(filename))

	if _, err := io.Copy(wc, r); err != nil {
		wc.Close()
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	return PublicURL(c.bucketName, objectName), nil
}

// Delete removes an object previously returned by Upload
func (c *CloudStorageClient) Delete(ctx context.Context, url string) error {
	prefix := PublicURL(c.bucketName, "")
	if !strings.HasPrefix(url, prefix) {
		return fmt.Errorf("invalid object URL format")
	}

	obj := c.client.Bucket(c.bucketName).Object(strings.TrimPrefix(url, prefix))
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

// ObjectName builds the bucket path for an upload, e.g. resumes/<owner>/<unix><ext>
func ObjectName(folder, ownerID, filename string, at time.Time) string {
	owner := unsafeNameChars.ReplaceAllString(ownerID, "_")
	if owner == "" {
		owner = "anonymous"
	}
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s/%s/%d%s", folder, owner, at.Unix(), ext)
}

// PublicURL returns the public URL of an object
func PublicURL(bucket, objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectName)
}

// ContentType maps a file extension to the content type stored with the object
func ContentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
