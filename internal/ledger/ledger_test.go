package ledger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aijobs-engine/internal/domain"
)

func job(url, title string) domain.Job {
	return domain.Job{URL: url, Title: title, Company: "Acme", ATSType: domain.ATSAshby}
}

func urls(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Job.URL
	}
	return out
}

func TestWriteCycle(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{DataDir: dir, SnapshotPath: filepath.Join(dir, "ai.csv")}

	a, b, c, d := job("https://x/a", "A"), job("https://x/b", "B"), job("https://x/c", "C"), job("https://x/d", "D")

	// Day 1: first run, nothing is "new" or "removed" yet.
	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, w.Write([]domain.Job{a, b, c}, day1))

	rows, err := readRows(w.SnapshotPath)
	require.NoError(t, err)
	assert.Equal(t, []string{a.URL, b.URL, c.URL}, urls(rows))
	for _, r := range rows {
		assert.Equal(t, "2025-03-10T09:00:00Z", r.Job.Date)
	}

	_, err = os.Stat(filepath.Join(dir, "ai-10-03-2025.csv"))
	require.NoError(t, err)

	newRows, err := readRows(filepath.Join(dir, newLedgerFile))
	require.NoError(t, err)
	assert.Empty(t, newRows)
	_, err = os.Stat(filepath.Join(dir, rmLedgerFile))
	assert.True(t, os.IsNotExist(err))

	// Day 2: A disappears, D appears.
	day2 := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	require.NoError(t, w.Write([]domain.Job{b, c, d}, day2))

	rows, err = readRows(w.SnapshotPath)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2025-03-10T09:00:00Z", rows[0].Job.Date, "first-seen date survives")
	assert.Equal(t, "2025-03-11T09:00:00Z", rows[2].Job.Date)

	newRows, err = readRows(filepath.Join(dir, newLedgerFile))
	require.NoError(t, err)
	require.Len(t, newRows, 1)
	assert.Equal(t, d.URL, newRows[0].Job.URL)
	assert.Equal(t, "11-03-2025-09-00", newRows[0].DateAdded)

	rmRows, err := readRows(filepath.Join(dir, rmLedgerFile))
	require.NoError(t, err)
	require.Len(t, rmRows, 1)
	assert.Equal(t, a.URL, rmRows[0].Job.URL)

	// Day 3: A reappears. It leaves the removed ledger, which empties and is
	// deleted, and it keeps its original first-seen date.
	day3 := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	require.NoError(t, w.Write([]domain.Job{a, b, c, d}, day3))

	_, err = os.Stat(filepath.Join(dir, rmLedgerFile))
	assert.True(t, os.IsNotExist(err))

	rows, err = readRows(w.SnapshotPath)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "2025-03-10T09:00:00Z", rows[0].Job.Date)

	newRows, err = readRows(filepath.Join(dir, newLedgerFile))
	require.NoError(t, err)
	assert.Equal(t, []string{d.URL, a.URL}, urls(newRows))
}

func TestNewLedgerGarbageCollection(t *testing.T) {
	dir := t.TempDir()
	w := &Writer{DataDir: dir, SnapshotPath: filepath.Join(dir, "ai.csv")}

	a, b := job("https://x/a", "A"), job("https://x/b", "B")

	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, w.Write([]domain.Job{a}, day1))

	day2 := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	require.NoError(t, w.Write([]domain.Job{a, b}, day2))

	// Day 3: B leaves again, so its new-ledger row is collected.
	day3 := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	require.NoError(t, w.Write([]domain.Job{a}, day3))

	newRows, err := readRows(filepath.Join(dir, newLedgerFile))
	require.NoError(t, err)
	assert.Empty(t, newRows)

	rmRows, err := readRows(filepath.Join(dir, rmLedgerFile))
	require.NoError(t, err)
	require.Len(t, rmRows, 1)
	assert.Equal(t, b.URL, rmRows[0].Job.URL)
}

func TestReadRowsDropsLegacyColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"url,title,location,company,employment_type,is_remote,salary_min,salary_max,date\n"+
			"https://x/a,Engineer,Austin,Acme,FullTime,true,100000,150000,2025-03-10T09:00:00Z\n"), 0o644))

	rows, err := readRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	j := rows[0].Job
	assert.Equal(t, "https://x/a", j.URL)
	assert.Equal(t, "Engineer", j.Title)
	assert.Equal(t, "Austin", j.Location)
	assert.Equal(t, "2025-03-10T09:00:00Z", j.Date)
	assert.Empty(t, j.SalarySummary)
	assert.Nil(t, j.Lat)
}

func TestCoordRoundTrip(t *testing.T) {
	lat := 30.2672
	j := job("https://x/a", "A")
	j.Lat = &lat

	path := filepath.Join(t.TempDir(), "snap.csv")
	require.NoError(t, writeCSV(path, domain.Fields, [][]string{jobRecord(j)}))

	rows, err := readRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Job.Lat)
	assert.InDelta(t, 30.2672, *rows[0].Job.Lat, 1e-9)
	assert.Nil(t, rows[0].Job.Lon)
}
