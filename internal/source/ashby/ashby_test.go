package ashby

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aijobs-engine/internal/source"
)

func writeBlob(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "acme.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse(t *testing.T) {
	path := writeBlob(t, `{
		"jobs": [
			{
				"id": "abc-123",
				"title": "Software Engineer",
				"location": "San Francisco, CA | New York, NY",
				"publishedAt": "2025-03-10T14:32:00Z",
				"jobUrl": "https://jobs.ashbyhq.com/acme/abc-123",
				"compensation": {
					"scrapeableCompensationSalarySummary": "$150K – $180K",
					"summaryComponents": [
						{"compensationType": "Salary", "minValue": 150000, "maxValue": 180000, "currencyCode": "USD", "interval": "1 YEAR"}
					]
				}
			}
		]
	}`)

	jobs, err := Parse(path, "Acme", source.Options{})
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "San Francisco, CA", jobs[0].Location)
	assert.Equal(t, "New York, NY", jobs[1].Location)
	for _, j := range jobs {
		assert.Equal(t, "https://jobs.ashbyhq.com/acme/abc-123", j.URL)
		assert.Equal(t, "Software Engineer", j.Title)
		assert.Equal(t, "abc-123", j.ATSID)
		assert.Equal(t, "ashby", j.ATSType)
		assert.Equal(t, "2025-03-10T14:32:00Z", j.PostedAt)
		assert.Equal(t, "$150K – $180K", j.SalarySummary)
		assert.Equal(t, "USD", j.SalaryCurrency)
		assert.Equal(t, "1 YEAR", j.SalaryPeriod)
	}
}

func TestParseApplyURLFallbackAndSkips(t *testing.T) {
	path := writeBlob(t, `{
		"jobs": [
			{"id": "1", "title": "Has Apply", "applyUrl": "https://jobs.ashbyhq.com/acme/1/apply", "location": "Remote"},
			{"id": "2", "title": "No URL", "location": "Remote"}
		]
	}`)

	jobs, err := Parse(path, "Acme", source.Options{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "https://jobs.ashbyhq.com/acme/1/apply", jobs[0].URL)
	assert.Empty(t, jobs[0].PostedAt)
}

func TestParseBadFile(t *testing.T) {
	path := writeBlob(t, `{not json`)
	_, err := Parse(path, "Acme", source.Options{})
	assert.Error(t, err)

	_, err = Parse(filepath.Join(t.TempDir(), "missing.json"), "Acme", source.Options{})
	assert.Error(t, err)
}
