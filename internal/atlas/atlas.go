// Package atlas resolves free-form job-posting location strings to
// coordinates using a static lookup table with layered fallback rules.
// The chain is ordered to favor precision before recall; callers log misses
// into the missing-locations report.
package atlas

import (
	"regexp"
	"sort"
	"strings"
)

var (
	cityStateRe = regexp.MustCompile(`([A-Za-z\s]+,\s*[A-Z]{2})`)
	workplaceRe = regexp.MustCompile(`\s*\((Hybrid|In-Office|In Office|Distributed)\)\s*$`)

	// Office-name patterns, tried in order. Each captures the city fragment.
	officeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)office\s*-\s*([^,;]+)`),       // "Office - City"
		regexp.MustCompile(`(?i)([^,;]+)\s+office`),           // "City Office"
		regexp.MustCompile(`(?i)office,\s*([^,;]+)`),          // "Office, City"
		regexp.MustCompile(`(?i)([a-z\s]+),\s*[a-z]+\s+office`), // "City, Country Office"
	}
	officeSuffixRe = regexp.MustCompile(`(?i)\s*(office|location|offices)\s*$`)
)

// lowerKeys is built once from coordinates for case-insensitive matching;
// sortedKeys keeps the substring fallbacks deterministic.
var (
	lowerKeys  map[string]Coord
	sortedKeys []string
)

func init() {
	lowerKeys = make(map[string]Coord, len(coordinates))
	sortedKeys = make([]string, 0, len(coordinates))
	for k, c := range coordinates {
		lowerKeys[strings.ToLower(k)] = c
		sortedKeys = append(sortedKeys, k)
	}
	sort.Strings(sortedKeys)
}

// Lookup returns the coordinates for a raw location string. ok is false when
// no rule matches.
func Lookup(raw string) (lat, lon float64, ok bool) {
	loc := strings.TrimSpace(raw)
	if loc == "" {
		return 0, 0, false
	}

	loc = normalizeTypos(loc)

	// Pipe-separated locations keep only the first part ("USA | Relocate" -> "USA").
	if strings.Contains(loc, " | ") {
		loc = strings.TrimSpace(strings.SplitN(loc, " | ", 2)[0])
	}

	if c, found := keyMatch(loc); found {
		return c.Lat, c.Lon, true
	}

	// "Foster City, CA (Hybrid) In office M,W,F" -> "Foster City, CA"
	if m := cityStateRe.FindStringSubmatch(loc); m != nil {
		if c, found := keyMatch(strings.TrimSpace(m[1])); found {
			return c.Lat, c.Lon, true
		}
	}

	if strings.Contains(loc, " - Data Center") {
		base := strings.TrimSpace(strings.ReplaceAll(loc, " - Data Center", ""))
		if c, found := keyMatch(base); found {
			return c.Lat, c.Lon, true
		}
	}

	if stripped := workplaceRe.ReplaceAllString(loc, ""); stripped != loc {
		if c, found := keyMatch(strings.TrimSpace(stripped)); found {
			return c.Lat, c.Lon, true
		}
	}

	// Substring pass: atlas city prefix contained in the input, or input
	// contained in a key.
	locLower := strings.ToLower(loc)
	for _, k := range sortedKeys {
		c := coordinates[k]
		kl := strings.ToLower(k)
		city := strings.TrimSpace(strings.SplitN(kl, ",", 2)[0])
		if strings.Contains(locLower, city) || strings.Contains(kl, locLower) {
			return c.Lat, c.Lon, true
		}
	}

	// Office-name heuristics ("San Francisco Office", "Office - Bangalore").
	if city := extractOfficeCity(loc); city != "" {
		cityLower := strings.ToLower(city)
		for _, k := range sortedKeys {
			c := coordinates[k]
			kl := strings.ToLower(k)
			keyCity := strings.TrimSpace(strings.SplitN(kl, ",", 2)[0])
			if keyCity == cityLower || strings.Contains(kl, cityLower) {
				return c.Lat, c.Lon, true
			}
		}
	}

	return 0, 0, false
}

func normalizeTypos(loc string) string {
	loc = strings.ReplaceAll(loc, "Sao Paolo", "São Paulo")
	loc = strings.ReplaceAll(loc, "Sao Paulo", "São Paulo")
	loc = strings.ReplaceAll(loc, "São Paolo", "São Paulo")
	return loc
}

// keyMatch is the exact-then-case-insensitive lookup every fallback retries.
func keyMatch(loc string) (Coord, bool) {
	if c, ok := coordinates[loc]; ok {
		return c, true
	}
	if c, ok := lowerKeys[strings.ToLower(loc)]; ok {
		return c, true
	}
	return Coord{}, false
}

// extractOfficeCity pulls a city name out of office-style locations like
// "San Francisco Office" or "Office - Bangalore". Returns "" when no pattern
// applies.
func extractOfficeCity(loc string) string {
	for _, re := range officeRes {
		if m := re.FindStringSubmatch(loc); m != nil {
			city := strings.TrimSpace(officeSuffixRe.ReplaceAllString(m[1], ""))
			if city != "" {
				return city
			}
		}
	}
	if m := cityStateRe.FindStringSubmatch(loc); m != nil {
		return strings.TrimSpace(m[1])
	}
	// Last resort: any atlas city prefix appearing in the string once the
	// word "office" is removed.
	cleaned := strings.ReplaceAll(strings.ToLower(loc), "office", " ")
	for _, k := range sortedKeys {
		city := strings.TrimSpace(strings.ToLower(strings.SplitN(k, ",", 2)[0]))
		if len(city) > 2 && strings.Contains(cleaned, city) {
			return city
		}
	}
	return ""
}
