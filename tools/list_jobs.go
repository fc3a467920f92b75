package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/R3Claimers/InsiderJobs/models"
)

const defaultJobLimit = 20

// JobLister lists jobs open to applicants
type JobLister interface {
	ListVisibleJobs(ctx context.Context) ([]models.Job, error)
}

// ListJobsTool lets agents browse open job postings
type ListJobsTool struct {
	jobs JobLister
}

// NewListJobsTool creates a new job listing tool
func NewListJobsTool(jobs JobLister) *ListJobsTool {
	return &ListJobsTool{jobs: jobs}
}

func (t *ListJobsTool) Name() string {
	return "list_jobs"
}

func (t *ListJobsTool) Description() string {
	return `List open job postings, newest first.
Optional filters match case-insensitively against the title, category and location.`
}

func (t *ListJobsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"keyword": map[string]interface{}{
				"type":        "string",
				"description": "Text the job title must contain",
			},
			"category": map[string]interface{}{
				"type":        "string",
				"description": "Job category, e.g. Programming",
			},
			"location": map[string]interface{}{
				"type":        "string",
				"description": "Text the job location must contain",
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of jobs (default 20)",
			},
		},
	}
}

// ListJobsInput represents the input for job listing
type ListJobsInput struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
	Location string `json:"location"`
	Limit    int    `json:"limit"`
}

func (t *ListJobsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in ListJobsInput
	if err := decodeInput(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}

	jobs, err := t.jobs.ListVisibleJobs(ctx)
	if err != nil {
		return NewErrorResult(fmt.Sprintf("failed to list jobs: %v", err))
	}

	return NewSuccessResult(FilterJobs(jobs, in))
}

// FilterJobs applies the listing filters, keeping input order
func FilterJobs(jobs []models.Job, in ListJobsInput) []models.Job {
	limit := in.Limit
	if limit <= 0 {
		limit = defaultJobLimit
	}

	out := make([]models.Job, 0, limit)
	for _, job := range jobs {
		if len(out) == limit {
			break
		}
		if !containsFold(job.Title, in.Keyword) ||
			!containsFold(job.Location, in.Location) ||
			(in.Category != "" && !strings.EqualFold(job.Category, in.Category)) {
			continue
		}
		out = append(out, job)
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
