// Package resolver maps free-form company names to (ats, slug) pairs via the
// per-ATS registry CSVs, and maintains the learned name-to-ATS map that
// narrows future searches.
package resolver

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"aijobs-engine/internal/domain"
)

// Match is one resolved company: which ATS hosts it, the board slug, and the
// display name the registry carries.
type Match struct {
	ATS         string
	Slug        string
	DisplayName string
}

// atsRegistry names each ATS's registry CSV and companies dir relative to the
// data dir. Iteration uses domain's ATS ordering so results are stable.
var atsRegistry = map[string]struct {
	csvFile      string
	companiesDir string
}{
	domain.ATSAshby:      {filepath.Join("ashby", "companies.csv"), filepath.Join("ashby", "companies")},
	domain.ATSGreenhouse: {filepath.Join("greenhouse", "greenhouse_companies.csv"), filepath.Join("greenhouse", "companies")},
	domain.ATSLever:      {filepath.Join("lever", "lever_companies.csv"), filepath.Join("lever", "companies")},
	domain.ATSWorkable:   {filepath.Join("workable", "workable_companies.csv"), filepath.Join("workable", "companies")},
	domain.ATSRippling:   {filepath.Join("rippling", "rippling_companies.csv"), filepath.Join("rippling", "companies")},
}

// atsOrder fixes the search order across registries.
var atsOrder = []string{
	domain.ATSAshby, domain.ATSGreenhouse, domain.ATSLever,
	domain.ATSWorkable, domain.ATSRippling,
}

var nameSuffixes = []string{
	" Inc", " Inc.", " LLC", " Ltd", " Ltd.",
	" Corp", " Corp.", " Co", " Co.",
}

// Normalize strips a trailing corporate suffix and casefolds. The suffix
// match is case-sensitive on the trailing text, mirroring how the registries
// were built.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	for _, suffix := range nameSuffixes {
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSpace(name[:len(name)-len(suffix)])
			break
		}
	}
	return strings.ToLower(name)
}

// Resolver searches the registry CSVs under DataDir.
type Resolver struct {
	DataDir string
}

// CompaniesDir returns where an ATS's per-company blobs live.
func (r *Resolver) CompaniesDir(ats string) string {
	return filepath.Join(r.DataDir, atsRegistry[ats].companiesDir)
}

// Resolve finds every registry row whose normalized name equals the
// normalized input. atsFilter narrows the search to one ATS when non-empty.
// Duplicate (ats, lowercase slug) pairs keep their first occurrence.
func (r *Resolver) Resolve(name, atsFilter string) ([]Match, error) {
	want := Normalize(name)
	var matches []Match

	for _, ats := range atsOrder {
		if atsFilter != "" && ats != atsFilter {
			continue
		}
		rows, err := r.readRegistry(ats)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, row := range rows {
			if Normalize(row.name) != want {
				continue
			}
			matches = append(matches, Match{
				ATS:         ats,
				Slug:        SlugFromURL(row.url, ats),
				DisplayName: row.name,
			})
		}
	}

	seen := make(map[string]bool, len(matches))
	out := matches[:0]
	for _, m := range matches {
		key := m.ATS + "\x00" + strings.ToLower(m.Slug)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m)
	}
	return out, nil
}

type registryRow struct {
	name string
	url  string
}

// readRegistry reads an ATS registry CSV by header, tolerating extra columns
// and short rows.
func (r *Resolver) readRegistry(ats string) ([]registryRow, error) {
	path := filepath.Join(r.DataDir, atsRegistry[ats].csvFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("resolver read %s header: %w", path, err)
	}
	nameIdx, urlIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(strings.ToLower(h)) {
		case "name":
			nameIdx = i
		case "url":
			urlIdx = i
		}
	}
	if nameIdx < 0 || urlIdx < 0 {
		return nil, fmt.Errorf("resolver %s: missing name/url columns", path)
	}

	var rows []registryRow
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("resolver read %s: %w", path, err)
		}
		if nameIdx >= len(rec) || urlIdx >= len(rec) {
			continue
		}
		name := strings.TrimSpace(rec[nameIdx])
		u := strings.TrimSpace(rec[urlIdx])
		if name == "" || u == "" {
			continue
		}
		rows = append(rows, registryRow{name: name, url: u})
	}
	return rows, nil
}

// SlugFromURL extracts the board slug from a registry URL. Rippling keeps
// the first path segment (its URLs end in /jobs); the hosted boards use the
// whole path, URL-decoded.
func SlugFromURL(raw, ats string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "unknown"
	}
	path := strings.Trim(u.Path, "/")

	var slug string
	switch ats {
	case domain.ATSRippling:
		slug = firstSegment(path)
	case domain.ATSAshby, domain.ATSGreenhouse, domain.ATSLever, domain.ATSWorkable:
		slug = path
	default:
		slug = firstSegment(path)
	}
	if decoded, err := url.PathUnescape(slug); err == nil {
		slug = decoded
	}
	if slug == "" {
		return "unknown"
	}
	return slug
}

func firstSegment(path string) string {
	if path == "" {
		return ""
	}
	return strings.SplitN(path, "/", 2)[0]
}
