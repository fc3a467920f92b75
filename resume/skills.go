// Package resume extracts known skills from uploaded resume documents.
package resume

import "strings"

// KnownSkills is the vocabulary resumes are matched against, in report order.
var KnownSkills = []string{
	"JavaScript",
	"React",
	"Node.js",
	"MongoDB",
	"Express",
	"HTML",
	"CSS",
	"Python",
	"Java",
	"SQL",
	"Docker",
	"AWS",
	"C++",
	"TypeScript",
}

// MatchSkills returns the vocabulary entries contained in text, ignoring
// case, in vocabulary order. Matching is plain substring containment, so a
// text mentioning "javascript" reports both JavaScript and Java.
func MatchSkills(text string, vocabulary []string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0, len(vocabulary))
	for _, skill := range vocabulary {
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
		}
	}
	return found
}
