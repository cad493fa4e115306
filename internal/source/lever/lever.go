// Package lever parses Lever postings-API JSON blobs.
package lever

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"aijobs-engine/internal/domain"
	"aijobs-engine/internal/source"
)

type posting struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	HostedURL  string `json:"hostedUrl"`
	ApplyURL   string `json:"applyUrl"`
	CreatedAt  any    `json:"createdAt"`
	Country    string `json:"country"`
	Categories *struct {
		Location     string   `json:"location"`
		AllLocations []string `json:"allLocations"`
	} `json:"categories"`
}

// Parse reads a Lever JSON blob. The file is either a bare postings array or
// an object wrapping one under "postings" or "jobs". createdAt arrives as
// epoch milliseconds or an ISO string depending on the endpoint.
func Parse(jsonPath, company string, opts source.Options) ([]domain.Job, error) {
	b, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("lever read %s: %w", jsonPath, err)
	}

	var postings []posting
	if err := json.Unmarshal(b, &postings); err != nil {
		var wrapper struct {
			Postings []posting `json:"postings"`
			Jobs     []posting `json:"jobs"`
		}
		if err := json.Unmarshal(b, &wrapper); err != nil {
			return nil, fmt.Errorf("lever decode %s: %w", jsonPath, err)
		}
		postings = wrapper.Postings
		if len(postings) == 0 {
			postings = wrapper.Jobs
		}
	}

	var out []domain.Job
	for _, p := range postings {
		url := p.HostedURL
		if url == "" {
			url = p.ApplyURL
		}
		if url == "" {
			log.Printf("[lever] company=%q skipping posting with no url title=%q", company, p.Text)
			continue
		}

		loc := ""
		if p.Categories != nil {
			loc = p.Categories.Location
			if loc == "" && len(p.Categories.AllLocations) > 0 {
				var parts []string
				for _, l := range p.Categories.AllLocations {
					if l != "" {
						parts = append(parts, l)
					}
				}
				loc = strings.Join(parts, ", ")
			}
		}
		if loc == "" {
			loc = p.Country
		}

		base := domain.Job{
			URL:      url,
			Title:    source.CleanText(p.Text),
			Company:  company,
			ATSID:    p.ID,
			ATSType:  domain.ATSLever,
			PostedAt: source.PostedAtFromRaw(p.CreatedAt, source.ParseEpochMillis),
		}
		out = append(out, source.Expand(base, loc, company, opts)...)
	}
	return out, nil
}
