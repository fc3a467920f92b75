package resume

import (
	"fmt"
	"log"
	"os"

	"github.com/R3Claimers/InsiderJobs/metrics"
)

// Extractor reads stored resumes and reports the known skills they mention.
type Extractor struct {
	vocabulary []string
	metrics    *metrics.Manager
}

// NewExtractor creates an extractor over KnownSkills. m may be nil.
func NewExtractor(m *metrics.Manager) *Extractor {
	return &Extractor{vocabulary: KnownSkills, metrics: m}
}

// ExtractSkills never fails: unreadable or unparsable files are logged and
// yield an empty list.
func (e *Extractor) ExtractSkills(path string) []string {
	skills, err := e.extract(path)
	if err != nil {
		log.Printf("[Resume] Error extracting skills from %s: %v", path, err)
		e.metrics.RecordSkillExtraction(metrics.ExtractionFailed, 0)
		return []string{}
	}

	outcome := metrics.ExtractionMatched
	if len(skills) == 0 {
		outcome = metrics.ExtractionEmpty
	}
	e.metrics.RecordSkillExtraction(outcome, len(skills))
	return skills
}

func (e *Extractor) extract(path string) (skills []string, err error) {
	// The PDF parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			skills, err = nil, fmt.Errorf("parser panic: %v", r)
		}
	}()

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	text, err := ExtractText(path, content)
	if err != nil {
		return nil, err
	}

	return MatchSkills(text, e.vocabulary), nil
}

// ExtractSkills runs an extractor without metrics.
func ExtractSkills(path string) []string {
	return NewExtractor(nil).ExtractSkills(path)
}
