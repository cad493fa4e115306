package bespoke

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aijobs-engine/internal/source"
)

func writeSite(t *testing.T, site, content string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, site), 0o755))
	path := JSONPath(dir, site)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir, path
}

func TestIsSite(t *testing.T) {
	assert.True(t, IsSite("amazon"))
	assert.True(t, IsSite("cursor"))
	assert.False(t, IsSite("acme"))
}

func TestParseAmazonEpochSeconds(t *testing.T) {
	_, path := writeSite(t, "amazon", `{
		"last_scraped": "2025-03-10T14:00:00Z",
		"jobs": [
			{
				"id": "2901",
				"title": "Applied Scientist",
				"url": "https://www.amazon.jobs/en/jobs/2901",
				"location": "Seattle, WA",
				"createdDate": 1710079920
			}
		]
	}`)

	jobs, err := Parse(path, "amazon", source.Options{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Amazon", jobs[0].Company)
	assert.Equal(t, "amazon", jobs[0].ATSType)
	assert.Equal(t, "2024-03-10T14:12:00Z", jobs[0].PostedAt)
}

func TestParseAppleLooseDateAndLocationsList(t *testing.T) {
	_, path := writeSite(t, "apple", `{
		"jobs": [
			{
				"positionId": "2005",
				"title": "ML Engineer",
				"url": "https://jobs.apple.com/en-us/details/2005",
				"locations": ["Cupertino", "Austin"],
				"location": "Cupertino",
				"postingDate": "Mar 10, 2025"
			}
		]
	}`)

	jobs, err := Parse(path, "apple", source.Options{})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Cupertino", jobs[0].Location)
	assert.Equal(t, "Austin", jobs[1].Location)
	for _, j := range jobs {
		assert.Equal(t, "Apple", j.Company)
		assert.Equal(t, "2005", j.ATSID)
		assert.Equal(t, "2025-03-10T00:00:00Z", j.PostedAt)
	}
}

func TestParseUberCreationDate(t *testing.T) {
	_, path := writeSite(t, "uber", `{
		"jobs": [
			{
				"id": 77,
				"title": "Staff Engineer",
				"url": "https://www.uber.com/careers/77",
				"location": "N/A",
				"creation_date": "2025-03-10T14:32:00Z"
			}
		]
	}`)

	jobs, err := Parse(path, "uber", source.Options{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Uber", jobs[0].Company)
	assert.Equal(t, "", jobs[0].Location)
	assert.Equal(t, "2025-03-10T14:32:00Z", jobs[0].PostedAt)
}

func TestParseOtherSitesOmitPostedAt(t *testing.T) {
	_, path := writeSite(t, "nvidia", `{
		"jobs": [
			{"eightfold_id": "e1", "title": "GPU Engineer", "url": "https://nvidia.eightfold.ai/e1", "location": "Santa Clara", "posted_at": "2025-03-01"}
		]
	}`)

	jobs, err := Parse(path, "nvidia", source.Options{})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "NVIDIA", jobs[0].Company)
	assert.Equal(t, "e1", jobs[0].ATSID)
	assert.Empty(t, jobs[0].PostedAt)
}
