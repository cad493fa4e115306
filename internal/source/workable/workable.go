// Package workable parses Workable job-board JSON blobs.
package workable

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

type wjob struct {
	Title          string            `json:"title"`
	URL            string            `json:"url"`
	ApplicationURL string            `json:"application_url"`
	Shortcode      json.RawMessage   `json:"shortcode"`
	Code           json.RawMessage   `json:"code"`
	Locations      []json.RawMessage `json:"locations"`
	City           string            `json:"city"`
	State          string            `json:"state"`
	Country        string            `json:"country"`
	PublishedOn    string            `json:"published_on"`
	CreatedAt      string            `json:"created_at"`
}

type structuredLocation struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

// Parse reads a Workable JSON blob. The file is either a bare array or an
// object wrapping one under "results" or "jobs". Dates are date-only strings
// assumed UTC midnight, published_on preferred over created_at.
func Parse(jsonPath, company string, opts source.Options) ([]domain.Job, error) {
	b, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("workable read %s: %w", jsonPath, err)
	}

	var jobs []wjob
	if err := json.Unmarshal(b, &jobs); err != nil {
		var wrapper struct {
			Results []wjob `json:"results"`
			Jobs    []wjob `json:"jobs"`
		}
		if err := json.Unmarshal(b, &wrapper); err != nil {
			return nil, fmt.Errorf("workable decode %s: %w", jsonPath, err)
		}
		jobs = wrapper.Results
		if len(jobs) == 0 {
			jobs = wrapper.Jobs
		}
	}

	var out []domain.Job
	for _, j := range jobs {
		url := j.URL
		if url == "" {
			url = j.ApplicationURL
		}
		if url == "" {
			log.Printf("[workable] company=%q skipping job with no url title=%q", company, j.Title)
			continue
		}

		loc := locationString(j)

		postedAt := ""
		if j.PublishedOn != "" {
			postedAt, _ = source.ParseDateOnly(j.PublishedOn)
		}
		if postedAt == "" && j.CreatedAt != "" {
			postedAt, _ = source.ParseDateOnly(j.CreatedAt)
		}

		id := rawString(j.Shortcode)
		if id == "" {
			id = rawString(j.Code)
		}

		base := domain.Job{
			URL:      url,
			Title:    source.CleanText(j.Title),
			Company:  company,
			ATSID:    id,
			ATSType:  domain.ATSWorkable,
			PostedAt: postedAt,
		}
		out = append(out, source.Expand(base, loc, company, opts)...)
	}
	return out, nil
}

// locationString joins the locations list entries ("City, Region, Country"
// per entry), falling back to the flat city/state/country fields.
func locationString(j wjob) string {
	if len(j.Locations) > 0 {
		var parts []string
		for _, raw := range j.Locations {
			var sl structuredLocation
			if err := json.Unmarshal(raw, &sl); err == nil {
				if p := joinNonEmpty(sl.City, sl.Region, sl.Country); p != "" {
					parts = append(parts, p)
				}
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err == nil && s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	}
	return joinNonEmpty(j.City, j.State, j.Country)
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

// rawString renders an id field that may arrive as a string or number.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatInt(int64(n), 10)
	}
	return ""
}
