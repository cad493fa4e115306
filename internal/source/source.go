// Package source holds the pieces shared by every ATS adapter: the parse
// contract, location splitting, per-company location overrides, and
// timestamp normalization.
package source

import (
	"strings"

	"aijobs-engine/internal/domain"
)

// ParseFunc turns a per-company JSON blob into canonical job rows with
// locations already split. Adapters tolerate schema drift: missing fields
// become empty strings, a bad job is skipped, a bad file yields an empty
// list with the error returned for logging.
type ParseFunc func(jsonPath, company string, opts Options) ([]domain.Job, error)

// Options carries the per-run knobs adapters need.
type Options struct {
	// Overrides maps lowercase company -> lowercase raw location ->
	// replacement string, applied before splitting.
	Overrides map[string]map[string]string

	// DataDir is the project root; adapters that write diagnostics
	// (Cloudflare failures) resolve their log paths against it.
	DataDir string
}

// OverrideLocation applies the per-company location normalization hook.
// Returns the input unchanged when no rule matches.
func (o Options) OverrideLocation(company, loc string) string {
	rules, ok := o.Overrides[strings.ToLower(strings.TrimSpace(company))]
	if !ok {
		return loc
	}
	if repl, ok := rules[strings.ToLower(strings.TrimSpace(loc))]; ok {
		return repl
	}
	return loc
}

// SplitLocations splits a multi-location string into individual fragments.
// `|` wins over `;`; a `;` inside a pipe-split fragment is deliberately not
// re-split. Fragments are trimmed and empties dropped; when everything
// drops, a single empty entry survives so downstream still emits one row.
func SplitLocations(loc string) []string {
	var parts []string
	if strings.Contains(loc, "|") {
		parts = strings.Split(loc, "|")
	} else {
		parts = strings.Split(loc, ";")
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}

// Expand applies the override hook, splits the raw location, and emits one
// copy of base per fragment. Every non-location field is shared.
func Expand(base domain.Job, rawLoc, company string, opts Options) []domain.Job {
	locs := SplitLocations(opts.OverrideLocation(company, rawLoc))
	out := make([]domain.Job, 0, len(locs))
	for _, l := range locs {
		j := base
		j.Location = l
		out = append(out, j)
	}
	return out
}

// CleanText collapses whitespace runs and non-breaking spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// Str pulls a string field out of a loosely-typed job map, trying keys in
// order. Numbers are not coerced; use this for fields that are strings at
// the source.
func Str(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
