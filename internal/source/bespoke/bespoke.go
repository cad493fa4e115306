// Package bespoke parses the JSON written by the custom per-site scrapers
// (Google, Microsoft, NVIDIA, Amazon, Meta, TikTok, Cursor, Apple, Uber).
// Every scraper writes the same wrapped shape to <site>/<site>.json, but the
// per-job fields drift, so parsing is loose maps.
package bespoke

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"aijobs-engine/internal/domain"
	"aijobs-engine/internal/source"
)

// JSONPath returns where a site's scraper writes its blob, relative to the
// data dir.
func JSONPath(dataDir, site string) string {
	return filepath.Join(dataDir, site, site+".json")
}

// IsSite reports whether a normalized company name is one of the bespoke
// scraper keys.
func IsSite(name string) bool {
	for _, s := range domain.BespokeSources {
		if s == name {
			return true
		}
	}
	return false
}

// Parse reads a bespoke site's JSON blob. The site name doubles as the
// ats_type tag; the display company name is the title-cased site.
func Parse(jsonPath, site string, opts source.Options) ([]domain.Job, error) {
	b, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("bespoke read %s: %w", jsonPath, err)
	}

	var data map[string]any
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("bespoke decode %s: %w", jsonPath, err)
	}

	list, _ := data["jobs"].([]any)
	company := displayName(site)

	var out []domain.Job
	for _, item := range list {
		j, ok := item.(map[string]any)
		if !ok {
			continue
		}
		url := source.Str(j, "url")
		if url == "" {
			log.Printf("[%s] skipping job with no url title=%q", site, source.Str(j, "title", "name"))
			continue
		}

		base := domain.Job{
			URL:      url,
			Title:    source.CleanText(source.Str(j, "title", "name")),
			Company:  company,
			ATSID:    source.Str(j, "id", "positionId", "eightfold_id", "reqId"),
			ATSType:  site,
			PostedAt: postedAt(site, j),
		}
		out = append(out, source.Expand(base, locationString(j), company, opts)...)
	}
	return out, nil
}

// postedAt applies the per-site timestamp rule. Sites without a reliable
// posting date omit the field.
func postedAt(site string, j map[string]any) string {
	switch site {
	case "amazon":
		return source.PostedAtFromRaw(j["createdDate"], source.ParseEpochSeconds)
	case "apple":
		if s := source.Str(j, "postingDate"); s != "" {
			if iso, ok := source.ParseLoose(s); ok {
				return iso
			}
		}
	case "uber":
		if s := source.Str(j, "creation_date", "creationDate"); s != "" {
			if iso, ok := source.ParseLoose(s); ok {
				return iso
			}
		}
	}
	return ""
}

// locationString prefers the locations list (joined so the splitter fans the
// job out per city) over the single backward-compatibility field.
func locationString(j map[string]any) string {
	if list, ok := j["locations"].([]any); ok && len(list) > 0 {
		var parts []string
		for _, v := range list {
			if s, ok := v.(string); ok && s != "" && s != "N/A" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}
	loc := source.Str(j, "location", "city")
	if loc == "N/A" {
		return ""
	}
	return loc
}

func displayName(site string) string {
	switch site {
	case "nvidia":
		return "NVIDIA"
	case "tiktok":
		return "TikTok"
	}
	if site == "" {
		return site
	}
	return strings.ToUpper(site[:1]) + site[1:]
}
