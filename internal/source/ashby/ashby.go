// Package ashby parses Ashby per-company JSON blobs into canonical job rows.
package ashby

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"aijobs-engine/internal/domain"
	"aijobs-engine/internal/source"
)

type apiResponse struct {
	Jobs []job `json:"jobs"`
}

type job struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Location     string          `json:"location"`
	PublishedAt  string          `json:"publishedAt"`
	JobURL       string          `json:"jobUrl"`
	ApplyURL     string          `json:"applyUrl"`
	Compensation json.RawMessage `json:"compensation"`
}

// Parse reads an Ashby JSON blob and emits one row per split location.
// posted_at comes from publishedAt; salary fields come from the shared
// compensation extractor.
func Parse(jsonPath, company string, opts source.Options) ([]domain.Job, error) {
	b, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("ashby read %s: %w", jsonPath, err)
	}

	var resp apiResponse
	if err := json.Unmarshal(b, &resp); err != nil {
		return nil, fmt.Errorf("ashby decode %s: %w", jsonPath, err)
	}

	var out []domain.Job
	for _, j := range resp.Jobs {
		url := j.JobURL
		if url == "" {
			url = j.ApplyURL
		}
		if url == "" {
			log.Printf("[ashby] company=%q skipping job with no url title=%q", company, j.Title)
			continue
		}

		comp := source.ExtractCompensation(j.Compensation)

		postedAt := ""
		if j.PublishedAt != "" {
			if iso, ok := source.ParseISO(j.PublishedAt); ok {
				postedAt = iso
			}
		}

		base := domain.Job{
			URL:            url,
			Title:          source.CleanText(j.Title),
			Company:        company,
			ATSID:          j.ID,
			ATSType:        domain.ATSAshby,
			SalaryCurrency: comp.Currency,
			SalaryPeriod:   comp.Period,
			SalarySummary:  comp.Summary,
			PostedAt:       postedAt,
		}
		out = append(out, source.Expand(base, j.Location, company, opts)...)
	}
	return out, nil
}
