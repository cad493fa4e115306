package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"aijobs-engine/internal/domain"
)

// Row is one ledger entry: a snapshot job plus the new-ledger timestamp.
type Row struct {
	Job       domain.Job
	DateAdded string // DD-MM-YYYY-HH-MM, new ledger only
}

func jobRecord(j domain.Job) []string {
	return []string{
		j.URL, j.Title, j.Location, j.Company, j.ATSID, j.ATSType,
		j.SalaryCurrency, j.SalaryPeriod, j.SalarySummary, j.Experience,
		formatCoord(j.Lat), formatCoord(j.Lon), j.PostedAt, j.Date,
	}
}

func formatCoord(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func parseCoord(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// readRows reads a snapshot or ledger CSV by header, in file order. Unknown
// and deprecated legacy columns (employment_type, is_remote, salary_min,
// salary_max) are dropped on read.
func readRows(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ledger read %s header: %w", path, err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.ToLower(h))] = i
	}
	get := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ledger read %s: %w", path, err)
		}
		rows = append(rows, Row{
			Job: domain.Job{
				URL:            get(rec, "url"),
				Title:          get(rec, "title"),
				Location:       get(rec, "location"),
				Company:        get(rec, "company"),
				ATSID:          get(rec, "ats_id"),
				ATSType:        get(rec, "ats_type"),
				SalaryCurrency: get(rec, "salary_currency"),
				SalaryPeriod:   get(rec, "salary_period"),
				SalarySummary:  get(rec, "salary_summary"),
				Experience:     get(rec, "experience"),
				Lat:            parseCoord(get(rec, "lat")),
				Lon:            parseCoord(get(rec, "lon")),
				PostedAt:       get(rec, "posted_at"),
				Date:           get(rec, "date"),
			},
			DateAdded: get(rec, "date_added"),
		})
	}
	return rows, nil
}

// writeCSV writes rows atomically: temp file in the target dir, fsync,
// rename over the destination.
func writeCSV(path string, header []string, records [][]string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".ledger-*.csv")
	if err != nil {
		return fmt.Errorf("ledger temp for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("ledger write %s: %w", path, err)
	}
	if err := w.WriteAll(records); err != nil {
		tmp.Close()
		return fmt.Errorf("ledger write %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("ledger write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("ledger sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("ledger close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("ledger rename %s: %w", path, err)
	}
	return nil
}
