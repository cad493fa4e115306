// Package greenhouse parses Greenhouse board-API JSON blobs.
package greenhouse

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"aijobs-engine/internal/domain"
	"aijobs-engine/internal/source"
)

type apiResponse struct {
	Jobs []job `json:"jobs"`
}

type job struct {
	ID             json.Number `json:"id"`
	Title          string      `json:"title"`
	AbsoluteURL    string      `json:"absolute_url"`
	UpdatedAt      string      `json:"updated_at"`
	FirstPublished string      `json:"first_published"`
	Content        string      `json:"content"`
	Location       *struct {
		Name string `json:"name"`
	} `json:"location"`
	Metadata []metadata `json:"metadata"`
	Offices  []office   `json:"offices"`
}

type metadata struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

type office struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Parse reads a Greenhouse JSON blob. Salary comes only from metadata entries
// whose name mentions salary; posted_at prefers updated_at over
// first_published. Cloudflare postings get their workplace-type-only
// locations resolved in cloudflare.go.
func Parse(jsonPath, company string, opts source.Options) ([]domain.Job, error) {
	b, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("greenhouse read %s: %w", jsonPath, err)
	}

	var resp apiResponse
	if err := json.Unmarshal(b, &resp); err != nil {
		return nil, fmt.Errorf("greenhouse decode %s: %w", jsonPath, err)
	}

	var out []domain.Job
	for _, j := range resp.Jobs {
		if j.AbsoluteURL == "" {
			log.Printf("[greenhouse] company=%q skipping job with no url title=%q", company, j.Title)
			continue
		}

		loc := ""
		if j.Location != nil {
			loc = j.Location.Name
		}
		loc = resolveCloudflareLocation(company, j, loc, opts)

		salarySummary := ""
		for _, m := range j.Metadata {
			if strings.Contains(strings.ToLower(m.Name), "salary") {
				salarySummary = metaString(m.Value)
				if salarySummary != "" {
					break
				}
			}
		}

		postedAt := ""
		if j.UpdatedAt != "" {
			postedAt, _ = source.ParseISO(j.UpdatedAt)
		}
		if postedAt == "" && j.FirstPublished != "" {
			postedAt, _ = source.ParseISO(j.FirstPublished)
		}

		base := domain.Job{
			URL:           j.AbsoluteURL,
			Title:         source.CleanText(j.Title),
			Company:       company,
			ATSID:         j.ID.String(),
			ATSType:       domain.ATSGreenhouse,
			SalarySummary: salarySummary,
			PostedAt:      postedAt,
		}
		out = append(out, source.Expand(base, loc, company, opts)...)
	}
	return out, nil
}

// metaString renders a metadata value that may arrive as a string, number, or
// list of strings.
func metaString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, "; ")
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}
