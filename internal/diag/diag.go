// Package diag writes the run's diagnostic artifacts: the missing-locations
// report and the Cloudflare location-failure log.
package diag

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

const (
	missingLocationsFile   = "missing_locations.json"
	cloudflareFailuresFile = "cloudflare_location_failures.jsonl"
)

// MissingLocation is one job whose location had no atlas match.
type MissingLocation struct {
	Location string `json:"location"`
	Company  string `json:"company"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

type missingReport struct {
	GeneratedAt     string            `json:"generated_at"`
	Count           int               `json:"count"`
	UniqueLocations []string          `json:"unique_locations"`
	Records         []MissingLocation `json:"records"`
}

// WriteMissingLocations replaces the missing-locations report with this run's
// misses. The report carries the total count, the sorted set of distinct
// location strings, and the per-job records.
func WriteMissingLocations(dataDir string, records []MissingLocation) error {
	uniq := map[string]bool{}
	for _, r := range records {
		uniq[r.Location] = true
	}
	locs := make([]string, 0, len(uniq))
	for l := range uniq {
		locs = append(locs, l)
	}
	sort.Strings(locs)

	report := missingReport{
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
		Count:           len(records),
		UniqueLocations: locs,
		Records:         records,
	}
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("diag marshal missing locations: %w", err)
	}
	path := filepath.Join(dataDir, missingLocationsFile)
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("diag write %s: %w", path, err)
	}
	return nil
}

// CloudflareFailure records a Cloudflare posting whose real location could not
// be recovered from metadata, offices, or the description.
type CloudflareFailure struct {
	URL           string `json:"url"`
	Title         string `json:"title"`
	WorkplaceType string `json:"workplace_type"`
	Snippet       string `json:"description_snippet"`
	RecordedAt    string `json:"recorded_at"`
}

// AppendCloudflareFailure appends one JSONL record to the failure log.
// Best-effort: callers log the error and keep going.
func AppendCloudflareFailure(dataDir string, rec CloudflareFailure) error {
	if rec.RecordedAt == "" {
		rec.RecordedAt = time.Now().UTC().Format(time.RFC3339)
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("diag marshal cloudflare failure: %w", err)
	}
	path := filepath.Join(dataDir, cloudflareFailuresFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("diag open %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("diag append %s: %w", path, err)
	}
	return nil
}
