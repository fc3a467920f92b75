package resume

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/R3Claimers/InsiderJobs/metrics"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestMatchSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"vocabulary order", "Experienced in javascript and docker projects", []string{"JavaScript", "Java", "Docker"}},
		{"case insensitive", "PYTHON, Sql and aws", []string{"Python", "SQL", "AWS"}},
		{"symbols", "Wrote C++ and Node.js services", []string{"Node.js", "C++"}},
		{"document order ignored", "TypeScript then React", []string{"React", "TypeScript"}},
		{"nothing", "Gardening and cooking", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchSkills(tt.text, KnownSkills))
		})
	}
}

func TestExtractSkillsPlainText(t *testing.T) {
	path := writeFile(t, "resume.txt", []byte("Experienced in javascript and docker projects"))

	skills := ExtractSkills(path)
	assert.Equal(t, []string{"JavaScript", "Java", "Docker"}, skills)
	assert.Contains(t, skills, "JavaScript")
	assert.Contains(t, skills, "Docker")
}

func TestExtractSkillsNeverFails(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		skills := ExtractSkills(filepath.Join(t.TempDir(), "nope.pdf"))
		assert.NotNil(t, skills)
		assert.Empty(t, skills)
	})

	t.Run("corrupt pdf", func(t *testing.T) {
		path := writeFile(t, "broken.pdf", []byte("%PDF-1.4 javascript docker not really a pdf"))
		assert.NotPanics(t, func() {
			assert.Empty(t, ExtractSkills(path))
		})
	})

	t.Run("corrupt docx", func(t *testing.T) {
		path := writeFile(t, "broken.docx", []byte("PK but no archive"))
		assert.Empty(t, ExtractSkills(path))
	})
}

func writeDocx(t *testing.T, documentXML string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestExtractSkillsDocx(t *testing.T) {
	path := writeDocx(t, `<w:document><w:body><w:p><w:r><w:t>Python</w:t></w:r></w:p><w:p><w:r><w:t>MongoDB &amp; Express</w:t></w:r></w:p></w:body></w:document>`)

	assert.Equal(t, []string{"MongoDB", "Express", "Python"}, ExtractSkills(path))
}

func TestExtractDocxJoinsSplitRuns(t *testing.T) {
	doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		`<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>Java</w:t></w:r><w:proofErr w:type="spellStart"/><w:r><w:t>Script</w:t></w:r>` +
		`<w:r><w:t xml:space="preserve"> and Dock</w:t></w:r><w:r><w:t>er</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>AWS</w:t></w:r><w:r><w:tab/><w:t>Node.js &amp; SQL</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	content, err := os.ReadFile(writeDocx(t, doc))
	require.NoError(t, err)

	text, err := ExtractText("resume.docx", content)
	require.NoError(t, err)
	assert.Equal(t, "JavaScript and Docker\nAWS Node.js & SQL", text)

	assert.Equal(t, []string{"JavaScript", "Node.js", "Java", "SQL", "Docker", "AWS"}, MatchSkills(text, KnownSkills))
}

func TestExtractorRecordsMetrics(t *testing.T) {
	m := metrics.NewManager()
	e := NewExtractor(m)

	e.ExtractSkills(writeFile(t, "a.txt", []byte("docker")))
	e.ExtractSkills(writeFile(t, "b.txt", []byte("nothing here")))
	e.ExtractSkills(filepath.Join(t.TempDir(), "missing.txt"))

	n, err := testutil.GatherAndCount(m.Registry(), "insiderjobs_resume_skill_extractions_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n, "matched, empty and failed series")
}

func TestIsSupportedFormat(t *testing.T) {
	assert.True(t, IsSupportedFormat("cv.PDF"))
	assert.True(t, IsSupportedFormat("cv.docx"))
	assert.False(t, IsSupportedFormat("cv.exe"))
	assert.False(t, IsSupportedFormat("cv"))
}
