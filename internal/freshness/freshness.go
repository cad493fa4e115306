// Package freshness decides when a per-company JSON blob is stale and drives
// the external scraper commands that refresh it.
package freshness

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// IsFresh reports whether a JSON blob is younger than maxAge. The blob's own
// last_scraped field wins when present and parseable; otherwise file mtime.
// Anything unreadable counts as stale.
func IsFresh(path string, maxAge time.Duration) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var envelope struct {
		LastScraped string `json:"last_scraped"`
	}
	if err := json.Unmarshal(b, &envelope); err == nil && envelope.LastScraped != "" {
		if t, ok := parseLastScraped(envelope.LastScraped); ok {
			return time.Since(t) < maxAge
		}
	}
	return time.Since(info.ModTime()) < maxAge
}

// parseLastScraped accepts RFC 3339 with or without offset; naive values are
// assumed UTC (older scrapers wrote local naive timestamps).
func parseLastScraped(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ResolveJSONPath finds the blob for a slug under an ATS companies dir.
// Scrapers URL-encode slashes in slugs into the filename, so both spellings
// are tried; the plain name is returned when neither exists so the caller
// has a stable path to report.
func ResolveJSONPath(companiesDir, slug string) string {
	plain := filepath.Join(companiesDir, slug+".json")
	if _, err := os.Stat(plain); err == nil {
		return plain
	}
	encoded := filepath.Join(companiesDir, url.QueryEscape(slug)+".json")
	if _, err := os.Stat(encoded); err == nil {
		return encoded
	}
	return plain
}

// Refresher runs configured scraper commands, one limiter per source so a
// burst of stale companies on the same ATS doesn't hammer its API.
type Refresher struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	commands map[string][]string
	dataDir  string
	rps      float64
	burst    int
}

// NewRefresher builds a refresher from the per-source command table. Each
// command is argv-style; occurrences of {slug} and {company} are substituted
// before exec.
func NewRefresher(dataDir string, commands map[string][]string, reqPerSec float64, burst int) *Refresher {
	if reqPerSec <= 0 {
		reqPerSec = 0.5
	}
	if burst <= 0 {
		burst = 1
	}
	return &Refresher{
		limiters: make(map[string]*rate.Limiter),
		commands: commands,
		dataDir:  dataDir,
		rps:      reqPerSec,
		burst:    burst,
	}
}

func (r *Refresher) limiterFor(sourceName string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()
	if lim, ok := r.limiters[sourceName]; ok {
		return lim
	}
	lim := rate.NewLimiter(rate.Limit(r.rps), r.burst)
	r.limiters[sourceName] = lim
	return lim
}

// Refresh synchronously runs the scraper for one company. No configured
// command is not an error: the aggregator falls back to whatever blob is on
// disk.
func (r *Refresher) Refresh(ctx context.Context, sourceName, slug, company string) error {
	argv, ok := r.commands[sourceName]
	if !ok || len(argv) == 0 {
		return nil
	}
	if err := r.limiterFor(sourceName).Wait(ctx); err != nil {
		return err
	}

	args := make([]string, len(argv))
	for i, a := range argv {
		a = strings.ReplaceAll(a, "{slug}", slug)
		a = strings.ReplaceAll(a, "{company}", company)
		args[i] = a
	}

	log.Printf("[freshness] refreshing %s/%s: %s", sourceName, slug, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = r.dataDir
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("refresh %s/%s: %w", sourceName, slug, err)
	}
	return nil
}

// EnsureFresh refreshes a company's blob when stale and re-resolves its path
// afterwards. Refresh failures are logged, not fatal; a stale blob is better
// than no blob.
func (r *Refresher) EnsureFresh(ctx context.Context, sourceName, companiesDir, slug, company string, maxAge time.Duration) string {
	path := ResolveJSONPath(companiesDir, slug)
	if IsFresh(path, maxAge) {
		return path
	}
	if err := r.Refresh(ctx, sourceName, slug, company); err != nil {
		log.Printf("[freshness] %v", err)
	}
	return ResolveJSONPath(companiesDir, slug)
}
