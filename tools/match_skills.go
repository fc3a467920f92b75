package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/R3Claimers/InsiderJobs/resume"
)

// MatchResumeSkillsTool reports which known skills a resume text mentions
type MatchResumeSkillsTool struct{}

// NewMatchResumeSkillsTool creates a new skill matching tool
func NewMatchResumeSkillsTool() *MatchResumeSkillsTool {
	return &MatchResumeSkillsTool{}
}

func (t *MatchResumeSkillsTool) Name() string {
	return "match_resume_skills"
}

func (t *MatchResumeSkillsTool) Description() string {
	return fmt.Sprintf(`Find known skills mentioned in resume text.
Matching is case-insensitive substring containment against: %s.
Skills are returned in that order.`, strings.Join(resume.KnownSkills, ", "))
}

func (t *MatchResumeSkillsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Plain resume text",
			},
		},
		"required": []string{"text"},
	}
}

// MatchResumeSkillsInput represents the input for skill matching
type MatchResumeSkillsInput struct {
	Text string `json:"text"`
}

// MatchResumeSkillsOutput lists the matched skills
type MatchResumeSkillsOutput struct {
	Skills []string `json:"skills"`
}

func (t *MatchResumeSkillsTool) Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in MatchResumeSkillsInput
	if err := decodeInput(input, &in); err != nil {
		return NewErrorResult(fmt.Sprintf("invalid input: %v", err))
	}
	if strings.TrimSpace(in.Text) == "" {
		return NewErrorResult("text is required")
	}

	return NewSuccessResult(MatchResumeSkillsOutput{Skills: resume.MatchSkills(in.Text, resume.KnownSkills)})
}
