package greenhouse

import (
	"encoding/json"
	"html"
	"log"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"aijobs-engine/internal/diag"
	"aijobs-engine/internal/source"
)

// Cloudflare publishes the workplace type ("Hybrid", "Distributed") in the
// location field and hides the actual cities elsewhere in the posting.

var workplaceTypes = []string{"Hybrid", "In-Office", "In Office", "Distributed"}

var availableLocRe = regexp.MustCompile(`(?i)Available Locations?:\s*([^.\n]+)`)

// resolveCloudflareLocation rewrites a workplace-type-only Cloudflare
// location into "<city> (<type>)" entries, trying the Job Posting Location
// metadata, then the offices list, then an Available Locations scan of the
// description. When every strategy fails the generic string is kept and a
// failure record is appended to the diagnostic log.
func resolveCloudflareLocation(company string, j job, loc string, opts source.Options) string {
	if !strings.EqualFold(strings.TrimSpace(company), "Cloudflare") {
		return loc
	}
	wt := workplaceType(loc)
	if wt == "" {
		return loc
	}

	cities := metadataLocations(j)
	if len(cities) == 0 {
		cities = officeLocations(j)
	}
	if len(cities) == 0 {
		cities = descriptionLocations(j.Content)
	}
	if len(cities) == 0 {
		rec := diag.CloudflareFailure{
			URL:           j.AbsoluteURL,
			Title:         j.Title,
			WorkplaceType: wt,
			Snippet:       descriptionSnippet(j.Content),
		}
		if err := diag.AppendCloudflareFailure(opts.DataDir, rec); err != nil {
			log.Printf("[greenhouse] cloudflare failure log: %v", err)
		}
		return loc
	}

	tagged := make([]string, 0, len(cities))
	for _, c := range cities {
		tagged = append(tagged, c+" ("+wt+")")
	}
	return strings.Join(tagged, "; ")
}

// workplaceType returns the workplace type carried by the first segment of a
// workplace-type-only location, or "" when the location looks like a real
// place.
func workplaceType(loc string) string {
	first := strings.TrimSpace(strings.SplitN(loc, ";", 2)[0])
	for _, wt := range workplaceTypes {
		if strings.EqualFold(first, wt) || strings.Contains(first, wt) {
			return wt
		}
	}
	return ""
}

func metadataLocations(j job) []string {
	for _, m := range j.Metadata {
		if !strings.EqualFold(strings.TrimSpace(m.Name), "Job Posting Location") {
			continue
		}
		var list []string
		if err := json.Unmarshal(m.Value, &list); err == nil {
			return trimNonEmpty(list)
		}
		var s string
		if err := json.Unmarshal(m.Value, &s); err == nil && strings.TrimSpace(s) != "" {
			return []string{strings.TrimSpace(s)}
		}
	}
	return nil
}

func officeLocations(j job) []string {
	var out []string
	for _, o := range j.Offices {
		loc := o.Location
		if loc == "" {
			loc = o.Name
		}
		if loc = strings.TrimSpace(loc); loc != "" {
			out = append(out, loc)
		}
	}
	return out
}

// descriptionLocations scans the entity-decoded, tag-stripped description for
// an "Available Locations:" line and splits its comma list.
func descriptionLocations(content string) []string {
	text := descriptionText(content)
	m := availableLocRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	parts := strings.Split(m[1], ",")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(p), "and "))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func descriptionText(content string) string {
	decoded := html.UnescapeString(content)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(decoded))
	if err != nil {
		return decoded
	}
	return source.CleanText(doc.Text())
}

// descriptionSnippet caps the logged description at 200 bytes without
// splitting a multi-byte rune.
func descriptionSnippet(content string) string {
	text := descriptionText(content)
	if len(text) <= 200 {
		return text
	}
	cut := 200
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

func trimNonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
