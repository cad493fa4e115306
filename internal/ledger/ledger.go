// Package ledger owns the rolling output files: the canonical snapshot, the
// dated per-day snapshot, and the cumulative new/removed ledgers. Writes are
// atomic and serialized across processes with a lock file.
package ledger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"

	"aijobs-engine/internal/domain"
)

const (
	newLedgerFile = "new_ai.csv"
	rmLedgerFile  = "rm_ai.csv"
	lockFile      = ".ai_ledger.lock"

	snapshotDateLayout = "02-01-2006"
	dateAddedLayout    = "02-01-2006-15-04"
)

var datedSnapshotRe = regexp.MustCompile(`^ai-\d{2}-\d{2}-\d{4}\.csv$`)

// Writer emits this run's artifacts. DataDir holds the dated snapshots and
// ledgers; SnapshotPath is the canonical snapshot (may live elsewhere, e.g.
// map/public/ai.csv).
type Writer struct {
	DataDir      string
	SnapshotPath string
}

// Write persists the run: preserve first-seen dates, write both snapshots,
// then update the two ledgers against the most recent previous snapshot.
func (w *Writer) Write(jobs []domain.Job, now time.Time) error {
	lock := flock.New(filepath.Join(w.DataDir, lockFile))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("ledger lock: %w", err)
	}
	defer lock.Unlock()

	today := now.UTC().Format(snapshotDateLayout)
	prev := w.previousSnapshot(today)

	w.preserveDates(jobs, now)

	records := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		records = append(records, jobRecord(j))
	}

	if err := os.MkdirAll(filepath.Dir(w.SnapshotPath), 0o755); err != nil {
		return fmt.Errorf("ledger mkdir: %w", err)
	}
	if err := writeCSV(w.SnapshotPath, domain.Fields, records); err != nil {
		return err
	}
	datedPath := filepath.Join(w.DataDir, "ai-"+today+".csv")
	if err := writeCSV(datedPath, domain.Fields, records); err != nil {
		return err
	}
	log.Printf("[ledger] wrote %d rows to %s and %s", len(jobs), w.SnapshotPath, datedPath)

	current := make(map[string]domain.Job, len(jobs))
	for _, j := range jobs {
		current[j.URL] = j
	}

	var g errgroup.Group
	g.Go(func() error { return w.updateNewLedger(current, jobs, prev, now) })
	g.Go(func() error { return w.updateRemovedLedger(current, prev) })
	return g.Wait()
}

// preserveDates keeps the first-seen date for URLs already known, consulting
// the canonical snapshot first and then prior dated snapshots newest-first.
// Unknown URLs are stamped now.
func (w *Writer) preserveDates(jobs []domain.Job, now time.Time) {
	known := make(map[string]string)

	merge := func(rows []Row) {
		for _, r := range rows {
			if r.Job.Date != "" {
				if _, ok := known[r.Job.URL]; !ok {
					known[r.Job.URL] = r.Job.Date
				}
			}
		}
	}

	if rows, err := readRows(w.SnapshotPath); err == nil {
		merge(rows)
	}
	for _, path := range w.datedSnapshots("") {
		rows, err := readRows(path)
		if err != nil {
			continue
		}
		merge(rows)
	}

	stamp := now.UTC().Truncate(time.Second).Format("2006-01-02T15:04:05Z")
	for i := range jobs {
		if d, ok := known[jobs[i].URL]; ok {
			jobs[i].Date = d
		} else if jobs[i].Date == "" {
			jobs[i].Date = stamp
		}
	}
}

// datedSnapshots lists ai-DD-MM-YYYY.csv files sorted newest mtime first,
// excluding the file for excludeDate when non-empty.
func (w *Writer) datedSnapshots(excludeDate string) []string {
	entries, err := os.ReadDir(w.DataDir)
	if err != nil {
		return nil
	}
	type dated struct {
		path  string
		mtime time.Time
	}
	var files []dated
	for _, e := range entries {
		name := e.Name()
		if !datedSnapshotRe.MatchString(name) {
			continue
		}
		if excludeDate != "" && name == "ai-"+excludeDate+".csv" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, dated{filepath.Join(w.DataDir, name), info.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].mtime.After(files[j].mtime) })

	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.path
	}
	return out
}

// previousSnapshot loads the most recent dated snapshot before today, keyed
// by URL. nil when this is the first run.
func (w *Writer) previousSnapshot(today string) map[string]domain.Job {
	paths := w.datedSnapshots(today)
	if len(paths) == 0 {
		return nil
	}
	rows, err := readRows(paths[0])
	if err != nil {
		log.Printf("[ledger] previous snapshot %s: %v", paths[0], err)
		return nil
	}
	prev := make(map[string]domain.Job, len(rows))
	for _, r := range rows {
		prev[r.Job.URL] = r.Job
	}
	return prev
}

// updateNewLedger garbage-collects rows that left the snapshot, then appends
// today's newly-seen jobs stamped with date_added. Without a previous
// snapshot there is nothing "new", but the existing ledger is still
// re-validated against the current rows.
func (w *Writer) updateNewLedger(current map[string]domain.Job, jobs []domain.Job, prev map[string]domain.Job, now time.Time) error {
	path := filepath.Join(w.DataDir, newLedgerFile)

	existing, err := readRows(path)
	if err != nil && !os.IsNotExist(err) {
		log.Printf("[ledger] reading %s: %v", path, err)
	}

	var kept []Row
	seen := make(map[string]bool)
	for _, r := range existing {
		if _, active := current[r.Job.URL]; active && !seen[r.Job.URL] {
			kept = append(kept, r)
			seen[r.Job.URL] = true
		}
	}

	added := 0
	if prev != nil {
		stamp := now.Format(dateAddedLayout)
		for _, j := range jobs {
			if _, existed := prev[j.URL]; existed || seen[j.URL] {
				continue
			}
			kept = append(kept, Row{Job: j, DateAdded: stamp})
			seen[j.URL] = true
			added++
		}
	}

	header := append(append([]string{}, domain.Fields...), "date_added")
	records := make([][]string, 0, len(kept))
	for _, r := range kept {
		records = append(records, append(jobRecord(r.Job), r.DateAdded))
	}
	if err := writeCSV(path, header, records); err != nil {
		return err
	}
	log.Printf("[ledger] new ledger: %d added today, %d still active", added, len(kept)-added)
	return nil
}

// updateRemovedLedger retains previously-removed rows still absent, drops
// reappeared ones, adds today's removals, and deletes the file when nothing
// is left.
func (w *Writer) updateRemovedLedger(current map[string]domain.Job, prev map[string]domain.Job) error {
	path := filepath.Join(w.DataDir, rmLedgerFile)

	existing, err := readRows(path)
	if err != nil && !os.IsNotExist(err) {
		log.Printf("[ledger] reading %s: %v", path, err)
	}

	var kept []Row
	seen := make(map[string]bool)
	for _, r := range existing {
		if _, active := current[r.Job.URL]; active || seen[r.Job.URL] {
			continue
		}
		kept = append(kept, r)
		seen[r.Job.URL] = true
	}

	var newlyRemoved []domain.Job
	for url, j := range prev {
		if _, active := current[url]; active || seen[url] {
			continue
		}
		newlyRemoved = append(newlyRemoved, j)
		seen[url] = true
	}
	sort.Slice(newlyRemoved, func(i, j int) bool { return newlyRemoved[i].URL < newlyRemoved[j].URL })
	for _, j := range newlyRemoved {
		kept = append(kept, Row{Job: j})
	}
	removed := len(newlyRemoved)

	if len(kept) == 0 {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("ledger remove %s: %w", path, err)
		}
		log.Printf("[ledger] removed ledger empty, deleted %s", rmLedgerFile)
		return nil
	}

	records := make([][]string, 0, len(kept))
	for _, r := range kept {
		records = append(records, jobRecord(r.Job))
	}
	if err := writeCSV(path, domain.Fields, records); err != nil {
		return err
	}
	log.Printf("[ledger] removed ledger: %d removed today, %d total", removed, len(kept))
	return nil
}
