// Package aggregate drives one pipeline run: resolve companies, refresh and
// parse their blobs, geolocate, filter, and enrich the combined rows.
package aggregate

import (
	"context"
	"log"
	"os"
	"sort"

	"aijobs-engine/internal/atlas"
	"aijobs-engine/internal/config"
	"aijobs-engine/internal/diag"
	"aijobs-engine/internal/domain"
	"aijobs-engine/internal/enrich"
	"aijobs-engine/internal/freshness"
	"aijobs-engine/internal/resolver"
	"aijobs-engine/internal/source"
	"aijobs-engine/internal/source/ashby"
	"aijobs-engine/internal/source/bespoke"
	"aijobs-engine/internal/source/greenhouse"
	"aijobs-engine/internal/source/lever"
	"aijobs-engine/internal/source/rippling"
	"aijobs-engine/internal/source/workable"
)

// adapters dispatches registry-backed ATS parsing.
var adapters = map[string]source.ParseFunc{
	domain.ATSAshby:      ashby.Parse,
	domain.ATSGreenhouse: greenhouse.Parse,
	domain.ATSLever:      lever.Parse,
	domain.ATSWorkable:   workable.Parse,
	domain.ATSRippling:   rippling.Parse,
}

// Aggregator wires the pipeline's stages together for a run.
type Aggregator struct {
	Cfg       config.Config
	DataDir   string
	Resolver  *resolver.Resolver
	Refresher *freshness.Refresher
	ATSFilter string // restrict resolution to one ATS when non-empty
}

func New(cfg config.Config, dataDir, atsFilter string) *Aggregator {
	return &Aggregator{
		Cfg:       cfg,
		DataDir:   dataDir,
		Resolver:  &resolver.Resolver{DataDir: dataDir},
		Refresher: freshness.NewRefresher(dataDir, cfg.Refresh.Commands, cfg.Refresh.RequestsPerSec, cfg.Refresh.Burst),
		ATSFilter: atsFilter,
	}
}

// Run executes one aggregation cycle and returns the canonical rows.
// companies empty or useAIMap set means the built-in watchlist.
func (a *Aggregator) Run(ctx context.Context, companies []string, useAIMap bool) ([]domain.Job, error) {
	learned, err := resolver.LoadLearned(a.DataDir)
	if err != nil {
		log.Printf("[aggregate] learned map: %v", err)
		learned = map[string]*string{}
	}

	// Default runs aggregate the built-in watchlist; the learned map only
	// narrows each name to its ATS below. Overlay entries from ad-hoc runs
	// must not grow the default set.
	if useAIMap || len(companies) == 0 {
		companies = companies[:0]
		for name := range resolver.AICompanies {
			companies = append(companies, name)
		}
		sort.Strings(companies)
	}

	opts := source.Options{
		Overrides: a.Cfg.NormalizedOverrides(),
		DataDir:   a.DataDir,
	}

	var jobs []domain.Job
	observed := make(map[string]map[string]bool) // normalized name -> ats set

	for _, name := range companies {
		normalized := resolver.Normalize(name)

		if bespoke.IsSite(normalized) {
			rows := a.gatherBespoke(ctx, normalized, opts)
			if len(rows) > 0 {
				markObserved(observed, normalized, normalized)
				jobs = append(jobs, rows...)
			}
			continue
		}

		filter := a.ATSFilter
		if filter == "" {
			if hint, ok := learned[normalized]; ok && hint != nil {
				filter = *hint
			}
		}

		matches, err := a.Resolver.Resolve(name, filter)
		if err != nil {
			log.Printf("[aggregate] resolve %q: %v", name, err)
			continue
		}
		if len(matches) == 0 {
			continue
		}
		log.Printf("[aggregate] %q: %d match(es)", name, len(matches))

		for _, m := range matches {
			rows := a.gatherATS(ctx, m, opts)
			if len(rows) > 0 {
				markObserved(observed, normalized, m.ATS)
				jobs = append(jobs, rows...)
			}
		}
	}

	jobs = a.dropDirtyTitles(jobs)
	jobs = dedupeRows(jobs)
	a.geolocate(jobs)

	lib := enrich.NewLibrary(a.DataDir)
	enrich.Apply(jobs, lib)

	a.updateLearned(learned, observed)

	log.Printf("[aggregate] %d jobs total", len(jobs))
	return jobs, nil
}

func (a *Aggregator) gatherATS(ctx context.Context, m resolver.Match, opts source.Options) []domain.Job {
	parse, ok := adapters[m.ATS]
	if !ok {
		return nil
	}
	path := a.Refresher.EnsureFresh(ctx, m.ATS, a.Resolver.CompaniesDir(m.ATS), m.Slug, m.DisplayName, a.Cfg.FreshnessWindow(m.ATS))
	if _, err := os.Stat(path); err != nil {
		log.Printf("[aggregate] %s/%s: no blob at %s", m.ATS, m.Slug, path)
		return nil
	}
	rows, err := parse(path, m.DisplayName, opts)
	if err != nil {
		log.Printf("[aggregate] %s/%s: %v", m.ATS, m.Slug, err)
		return nil
	}
	log.Printf("[aggregate] %s/%s: %d jobs", m.ATS, m.Slug, len(rows))
	return rows
}

func (a *Aggregator) gatherBespoke(ctx context.Context, site string, opts source.Options) []domain.Job {
	path := bespoke.JSONPath(a.DataDir, site)
	if !freshness.IsFresh(path, a.Cfg.FreshnessWindow(site)) {
		if err := a.Refresher.Refresh(ctx, site, site, site); err != nil {
			log.Printf("[aggregate] %v", err)
		}
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	rows, err := bespoke.Parse(path, site, opts)
	if err != nil {
		log.Printf("[aggregate] %s: %v", site, err)
		return nil
	}
	log.Printf("[aggregate] %s: %d jobs", site, len(rows))
	return rows
}

// geolocate resolves coordinates in place and writes the missing-locations
// report for whatever the atlas could not place.
func (a *Aggregator) geolocate(jobs []domain.Job) {
	var missing []diag.MissingLocation
	for i := range jobs {
		j := &jobs[i]
		lat, lon, ok := atlas.Lookup(j.Location)
		if ok {
			j.Lat, j.Lon = &lat, &lon
			continue
		}
		if j.Location != "" {
			missing = append(missing, diag.MissingLocation{
				Location: j.Location,
				Company:  j.Company,
				Title:    j.Title,
				URL:      j.URL,
			})
		}
	}
	if len(missing) > 0 {
		log.Printf("[aggregate] %d jobs with unresolved locations", len(missing))
	}
	if err := diag.WriteMissingLocations(a.DataDir, missing); err != nil {
		log.Printf("[aggregate] %v", err)
	}
}

func (a *Aggregator) dropDirtyTitles(jobs []domain.Job) []domain.Job {
	out := jobs[:0]
	dropped := 0
	for _, j := range jobs {
		if a.Cfg.IsDirtyTitle(j.Company, j.Title) {
			dropped++
			continue
		}
		out = append(out, j)
	}
	if dropped > 0 {
		log.Printf("[aggregate] dropped %d dirty-title rows", dropped)
	}
	return out
}

// dedupeRows keeps the last row per (url, location), preserving first-seen
// order. A multi-location posting stays one row per location; only genuine
// duplicates collapse.
func dedupeRows(jobs []domain.Job) []domain.Job {
	idx := make(map[string]int, len(jobs))
	var out []domain.Job
	for _, j := range jobs {
		key := j.URL + "\x00" + j.Location
		if i, ok := idx[key]; ok {
			out[i] = j
			continue
		}
		idx[key] = len(out)
		out = append(out, j)
	}
	return out
}

func markObserved(observed map[string]map[string]bool, name, ats string) {
	if observed[name] == nil {
		observed[name] = make(map[string]bool)
	}
	observed[name][ats] = true
}

// updateLearned persists the name-to-ATS hints: a company seen on exactly one
// ATS gets pinned there; ambiguous ones fall back to search-all.
func (a *Aggregator) updateLearned(learned map[string]*string, observed map[string]map[string]bool) {
	for name, set := range observed {
		if len(set) == 1 {
			for ats := range set {
				v := ats
				learned[name] = &v
			}
		} else {
			learned[name] = nil
		}
	}
	if err := resolver.SaveLearned(a.DataDir, learned); err != nil {
		log.Printf("[aggregate] %v", err)
	}
}
