package enrich

import (
	"encoding/json"
	"html"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"aijobs-engine/internal/domain"
)

// Library retrieves long-form job descriptions from the per-company JSON
// blobs on disk. The path map is built once; blobs are loaded lazily and
// cached for the run.
type Library struct {
	paths map[string]string
	cache map[string][]map[string]any
}

// NewLibrary walks dataDir for */companies/*.json and maps each file stem
// (exact and lowercased) to its path.
func NewLibrary(dataDir string) *Library {
	lib := &Library{
		paths: make(map[string]string),
		cache: make(map[string][]map[string]any),
	}
	filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if filepath.Base(filepath.Dir(path)) != "companies" || !strings.HasSuffix(path, ".json") {
			return nil
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".json")
		lib.paths[stem] = path
		lib.paths[strings.ToLower(strings.TrimSpace(stem))] = path
		return nil
	})
	return lib
}

// Description finds a job's long-form description, matching by URL first,
// then ats_id, then title.
func (l *Library) Description(j domain.Job) (string, bool) {
	jobs, ok := l.jobsFor(j.Company)
	if !ok {
		return "", false
	}

	// URL equality is the most reliable key.
	for _, raw := range jobs {
		u := strField(raw, "jobUrl", "url", "absolute_url", "hostedUrl")
		if u != "" && u == j.URL {
			if d := description(raw, j.ATSType); d != "" {
				return d, true
			}
		}
	}

	if j.ATSID != "" && (j.ATSType == domain.ATSAshby || j.ATSType == domain.ATSLever || j.ATSType == domain.ATSGreenhouse) {
		for _, raw := range jobs {
			if idStr(raw["id"]) == j.ATSID {
				if d := description(raw, j.ATSType); d != "" {
					return d, true
				}
			}
		}
	}

	want := strings.ToLower(strings.TrimSpace(j.Title))
	for _, raw := range jobs {
		if t := strField(raw, "title"); t != "" && strings.ToLower(strings.TrimSpace(t)) == want {
			if d := description(raw, j.ATSType); d != "" {
				return d, true
			}
		}
	}
	return "", false
}

func (l *Library) jobsFor(company string) ([]map[string]any, bool) {
	key := strings.ToLower(strings.TrimSpace(company))
	if jobs, ok := l.cache[key]; ok {
		return jobs, jobs != nil
	}

	path, ok := l.paths[company]
	if !ok {
		path, ok = l.paths[key]
	}
	if !ok {
		l.cache[key] = nil
		return nil, false
	}

	b, err := os.ReadFile(path)
	if err != nil {
		l.cache[key] = nil
		return nil, false
	}

	var list []any
	var wrapper map[string]any
	if err := json.Unmarshal(b, &wrapper); err == nil {
		list, _ = wrapper["jobs"].([]any)
	} else if err := json.Unmarshal(b, &list); err != nil {
		l.cache[key] = nil
		return nil, false
	}

	jobs := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			jobs = append(jobs, m)
		}
	}
	l.cache[key] = jobs
	return jobs, true
}

var blankRunRe = regexp.MustCompile(`\n\s*\n`)

// description applies the per-source cleanup that makes a blob's description
// usable by the regex extractors.
func description(raw map[string]any, atsType string) string {
	switch atsType {
	case domain.ATSLever:
		return leverDescription(raw)
	case domain.ATSGreenhouse:
		return greenhouseDescription(strField(raw, "content"))
	}
	d := strField(raw, "descriptionPlain", "description", "text")
	if d == "" || strings.HasPrefix(d, "<") {
		// Raw HTML with no plain alternative is left to the tag-stripping
		// pass inside the extractors.
		if d == "" {
			d = strField(raw, "descriptionHtml")
		}
	}
	return strings.TrimSpace(d)
}

// greenhouseDescription entity-decodes the content field but keeps the tag
// structure; the extractors strip tags themselves.
func greenhouseDescription(content string) string {
	if content == "" {
		return ""
	}
	decoded := html.UnescapeString(content)
	decoded = strings.ReplaceAll(decoded, "\u00a0", " ")
	decoded = blankRunRe.ReplaceAllString(decoded, "\n\n")
	return strings.TrimSpace(decoded)
}

// leverDescription concatenates descriptionPlain, each lists entry (header
// plus tag-stripped content), and additionalPlain, which often carries the
// salary disclosure.
func leverDescription(raw map[string]any) string {
	var parts []string
	if d := strField(raw, "descriptionPlain"); d != "" {
		parts = append(parts, strings.TrimSpace(d))
	}
	if lists, ok := raw["lists"].([]any); ok {
		for _, item := range lists {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			content := stripTags(strField(entry, "content"))
			if content == "" {
				continue
			}
			if header := strings.TrimSpace(strField(entry, "text")); header != "" {
				parts = append(parts, header+"\n"+content)
			} else {
				parts = append(parts, content)
			}
		}
	}
	if d := strField(raw, "additionalPlain"); d != "" {
		parts = append(parts, strings.TrimSpace(d))
	}
	return strings.Join(parts, "\n\n")
}

func stripTags(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(doc.Text())
}

func strField(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func idStr(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatInt(int64(t), 10)
	}
	return ""
}
