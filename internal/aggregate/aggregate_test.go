package aggregate

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aijobs-engine/internal/config"
	"aijobs-engine/internal/domain"
	"aijobs-engine/internal/resolver"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "ashby/companies.csv",
		"name,url\nAcme,https://jobs.ashbyhq.com/acme\nNintendo,https://jobs.ashbyhq.com/nintendo\n")

	writeFile(t, dir, "ashby/companies/acme.json", `{
		"jobs": [
			{
				"id": "1",
				"title": "Engineer",
				"jobUrl": "https://jobs.ashbyhq.com/acme/1",
				"location": "San Francisco, CA",
				"publishedAt": "2025-03-10T14:32:00Z",
				"descriptionPlain": "Salary: $150,000 - $180,000 per year. Requires 5+ years of experience."
			},
			{
				"id": "2",
				"title": "Researcher",
				"jobUrl": "https://jobs.ashbyhq.com/acme/2",
				"location": "Atlantis Prime"
			},
			{
				"id": "1",
				"title": "Engineer II",
				"jobUrl": "https://jobs.ashbyhq.com/acme/1",
				"location": "San Francisco, CA"
			}
		]
	}`)

	writeFile(t, dir, "ashby/companies/nintendo.json", `{
		"jobs": [
			{"id": "n1", "title": "TEST build verification", "jobUrl": "https://jobs.ashbyhq.com/nintendo/n1", "location": "Tokyo"}
		]
	}`)

	agg := New(config.Default(), dir, "")
	jobs, err := agg.Run(context.Background(), []string{"Acme", "Nintendo"}, false)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	// Duplicate URL keeps the last row in the first row's position.
	assert.Equal(t, "https://jobs.ashbyhq.com/acme/1", jobs[0].URL)
	assert.Equal(t, "Engineer II", jobs[0].Title)
	assert.Equal(t, "ashby", jobs[0].ATSType)
	assert.Equal(t, "Acme", jobs[0].Company)

	// Geocoded and enriched from the blob's description.
	require.NotNil(t, jobs[0].Lat)
	assert.InDelta(t, 37.7749, *jobs[0].Lat, 0.01)
	assert.Equal(t, "$150K - $180K", jobs[0].SalarySummary)
	assert.Equal(t, "USD", jobs[0].SalaryCurrency)
	assert.Equal(t, "5", jobs[0].Experience)

	// Unresolvable location ends up in the missing-locations report.
	assert.Nil(t, jobs[1].Lat)
	b, err := os.ReadFile(filepath.Join(dir, "missing_locations.json"))
	require.NoError(t, err)
	var report struct {
		Count           int      `json:"count"`
		UniqueLocations []string `json:"unique_locations"`
	}
	require.NoError(t, json.Unmarshal(b, &report))
	assert.Equal(t, 1, report.Count)
	assert.Contains(t, report.UniqueLocations, "Atlantis Prime")

	// Both companies were observed on exactly one ATS, so the learned map
	// pins them there.
	learned, err := resolver.LoadLearned(dir)
	require.NoError(t, err)
	require.NotNil(t, learned["acme"])
	assert.Equal(t, domain.ATSAshby, *learned["acme"])
	require.NotNil(t, learned["nintendo"])
	assert.Equal(t, domain.ATSAshby, *learned["nintendo"])
}

func TestRunATSFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ashby/companies.csv", "name,url\nAcme,https://jobs.ashbyhq.com/acme\n")
	writeFile(t, dir, "lever/lever_companies.csv", "name,url\nAcme,https://jobs.lever.co/acme\n")
	writeFile(t, dir, "ashby/companies/acme.json", `{
		"jobs": [{"id": "1", "title": "Engineer", "jobUrl": "https://jobs.ashbyhq.com/acme/1", "location": "Remote"}]
	}`)
	writeFile(t, dir, "lever/companies/acme.json", `[
		{"id": "l1", "text": "Engineer", "hostedUrl": "https://jobs.lever.co/acme/l1", "categories": {"location": "Remote"}}
	]`)

	agg := New(config.Default(), dir, domain.ATSLever)
	jobs, err := agg.Run(context.Background(), []string{"Acme"}, false)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, domain.ATSLever, jobs[0].ATSType)
}

func TestDedupeRows(t *testing.T) {
	jobs := []domain.Job{
		{URL: "https://x/a", Location: "Austin", Title: "First"},
		{URL: "https://x/a", Location: "Berlin", Title: "First"},
		{URL: "https://x/b", Location: "Austin", Title: "B"},
		{URL: "https://x/a", Location: "Austin", Title: "Last"},
	}
	out := dedupeRows(jobs)
	require.Len(t, out, 3)
	assert.Equal(t, "Last", out[0].Title)
	assert.Equal(t, "Berlin", out[1].Location)
	assert.Equal(t, "B", out[2].Title)
}

func TestRunMultiLocationFanOut(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ashby/companies.csv", "name,url\nAcme,https://jobs.ashbyhq.com/acme\n")
	writeFile(t, dir, "ashby/companies/acme.json", `{
		"jobs": [
			{"id": "1", "title": "Engineer", "jobUrl": "https://jobs.ashbyhq.com/acme/1", "location": "San Francisco, CA | New York, NY"}
		]
	}`)

	agg := New(config.Default(), dir, "")
	jobs, err := agg.Run(context.Background(), []string{"Acme"}, false)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, jobs[0].URL, jobs[1].URL)
	assert.Equal(t, "San Francisco, CA", jobs[0].Location)
	assert.Equal(t, "New York, NY", jobs[1].Location)
	require.NotNil(t, jobs[0].Lat)
	require.NotNil(t, jobs[1].Lat)
	assert.NotEqual(t, *jobs[0].Lat, *jobs[1].Lat)
}

func TestRunDefaultSetIsBuiltinWatchlist(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ashby/companies.csv",
		"name,url\nAcme,https://jobs.ashbyhq.com/acme\nOpenAI,https://jobs.ashbyhq.com/openai\n")
	writeFile(t, dir, "ashby/companies/acme.json", `{
		"jobs": [{"id": "1", "title": "Engineer", "jobUrl": "https://jobs.ashbyhq.com/acme/1", "location": "Remote"}]
	}`)
	writeFile(t, dir, "ashby/companies/openai.json", `{
		"jobs": [{"id": "o1", "title": "Engineer", "jobUrl": "https://jobs.ashbyhq.com/openai/o1", "location": "Remote"}]
	}`)
	// Overlay entry left behind by an earlier ad-hoc run.
	writeFile(t, dir, "ai_companies.json", `{"acme": null}`)

	agg := New(config.Default(), dir, "")
	jobs, err := agg.Run(context.Background(), nil, false)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "OpenAI", jobs[0].Company)
}

func TestRunMissingBlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ashby/companies.csv", "name,url\nGhost,https://jobs.ashbyhq.com/ghost\n")

	agg := New(config.Default(), dir, "")
	jobs, err := agg.Run(context.Background(), []string{"Ghost"}, false)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}
